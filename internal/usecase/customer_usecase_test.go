package usecase

import (
	"context"
	"errors"
	"testing"

	"carwash/internal/domain/entities"
	"carwash/internal/usecase/interfaces"
	mock_interfaces "carwash/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validCustomer() entities.Customer {
	return entities.Customer{
		IDNumber:       "123456789",
		FullName:       "John Doe",
		Province:       "San José",
		Canton:         "Central",
		District:       "Carmen",
		ExactAddress:   "100 metros norte del parque central",
		Phone:          "8888-8888",
		WashPreference: entities.WashPreferenceWeekly,
	}
}

func TestCustomerUseCase_GetByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "404").Return(entities.Customer{}, nil)

		_, err := uc.GetByID(context.Background(), "404")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("found with trimmed id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "123456789").Return(validCustomer(), nil)

		c, err := uc.GetByID(context.Background(), " 123456789 ")
		if err != nil || c.FullName != "John Doe" {
			t.Fatalf("unexpected result: %+v %v", c, err)
		}
	})
}

func TestCustomerUseCase_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockICustomerRepository(ctrl)
	uc := NewCustomerUseCase(repo)

	other := validCustomer()
	other.IDNumber = "987654321"
	other.FullName = "María González"
	other.Province = "Alajuela"
	other.WashPreference = entities.WashPreferenceMonthly
	repo.EXPECT().GetAll(gomock.Any()).Return([]entities.Customer{validCustomer(), other}, nil).Times(2)

	res, err := uc.Search(context.Background(), "MONTHLY")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res) != 1 || res[0].IDNumber != "987654321" {
		t.Fatalf("unexpected search result: %+v", res)
	}

	res, _ = uc.Search(context.Background(), "")
	if len(res) != 2 {
		t.Fatalf("expected unfiltered list, got %d", len(res))
	}
}

func TestCustomerUseCase_Create(t *testing.T) {
	t.Run("collects every validation message", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)

		_, err := uc.Create(context.Background(), entities.Customer{})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(vErr.Messages) != 8 {
			t.Fatalf("expected 8 messages, got %v", vErr.Messages)
		}
		if vErr.Messages[0] != "ID Number is required." {
			t.Fatalf("unexpected first message %q", vErr.Messages[0])
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "123456789").Return(validCustomer(), nil)

		_, err := uc.Create(context.Background(), validCustomer())
		var vErr *ValidationError
		if !errors.As(err, &vErr) || vErr.Messages[0] != "A customer with that ID already exists." {
			t.Fatalf("expected duplicate validation error, got %v", err)
		}
	})

	t.Run("repository race maps to already exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "123456789").Return(entities.Customer{}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(entities.Customer{}, interfaces.ErrRecordExists)

		_, err := uc.Create(context.Background(), validCustomer())
		if !errors.Is(err, ErrCustomerAlreadyExists) {
			t.Fatalf("expected ErrCustomerAlreadyExists, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "123456789").Return(entities.Customer{}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) {
				if c.IDNumber != "123456789" {
					t.Fatalf("expected trimmed id, got %q", c.IDNumber)
				}
				return c, nil
			},
		)

		in := validCustomer()
		in.IDNumber = " 123456789 "
		if _, err := uc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCustomerUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "404").Return(entities.Customer{}, nil)

		_, err := uc.Update(context.Background(), "404", validCustomer())
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "123456789").Return(validCustomer(), nil)

		in := validCustomer()
		in.Phone = " "
		_, err := uc.Update(context.Background(), "123456789", in)
		var vErr *ValidationError
		if !errors.As(err, &vErr) || len(vErr.Messages) != 1 || vErr.Messages[0] != "Phone is required." {
			t.Fatalf("expected phone validation error, got %v", err)
		}
	})

	t.Run("path id wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "123456789").Return(validCustomer(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Customer{})).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) { return c, nil },
		)

		in := validCustomer()
		in.IDNumber = "something-else"
		in.FullName = "John Updated"
		got, err := uc.Update(context.Background(), "123456789", in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.IDNumber != "123456789" || got.FullName != "John Updated" {
			t.Fatalf("unexpected customer: %+v", got)
		}
	})
}

func TestCustomerUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "404").Return(entities.Customer{}, nil)

		if err := uc.Delete(context.Background(), "404"); !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "123456789").Return(validCustomer(), nil)
		repo.EXPECT().Delete(gomock.Any(), "123456789").Return(nil)

		if err := uc.Delete(context.Background(), "123456789"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
