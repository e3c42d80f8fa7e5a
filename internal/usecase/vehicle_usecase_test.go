package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"carwash/internal/domain/entities"
	mock_interfaces "carwash/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, time.March, 15, 10, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func validVehicle() entities.Vehicle {
	return entities.Vehicle{
		LicensePlate: "ABC123",
		Brand:        "Toyota",
		Model:        "Camry",
		Traction:     "FWD",
		Color:        "Blue",
		CustomerID:   "123456789",
	}
}

func TestVehicleUseCase_Create(t *testing.T) {
	t.Run("missing fields skip lookups", func(t *testing.T) {
		uc := NewVehicleUseCase(nil, nil).WithClock(fixedClock)

		_, err := uc.Create(context.Background(), entities.Vehicle{})
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(vErr.Messages) != 6 {
			t.Fatalf("expected 6 messages, got %v", vErr.Messages)
		}
	})

	t.Run("future service date, unknown owner and duplicate plate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewVehicleUseCase(repo, customers).WithClock(fixedClock)

		customers.EXPECT().GetByID(gomock.Any(), "123456789").Return(entities.Customer{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "ABC123").Return(validVehicle(), nil)

		in := validVehicle()
		future := fixedNow.Add(24 * time.Hour)
		in.LastServiceDate = &future

		_, err := uc.Create(context.Background(), in)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		want := []string{
			"The last service date cannot be in the future.",
			"The selected customer does not exist.",
			"A vehicle with that license plate already exists.",
		}
		if len(vErr.Messages) != len(want) {
			t.Fatalf("expected %v, got %v", want, vErr.Messages)
		}
		for i := range want {
			if vErr.Messages[i] != want[i] {
				t.Fatalf("message %d: expected %q, got %q", i, want[i], vErr.Messages[i])
			}
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewVehicleUseCase(repo, customers).WithClock(fixedClock)

		customers.EXPECT().GetByID(gomock.Any(), "123456789").Return(entities.Customer{IDNumber: "123456789"}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "ABC123").Return(entities.Vehicle{}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Vehicle{})).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) { return v, nil },
		)

		in := validVehicle()
		serviced := fixedNow.Add(-time.Hour)
		in.LastServiceDate = &serviced
		got, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.LicensePlate != "ABC123" {
			t.Fatalf("unexpected vehicle: %+v", got)
		}
	})

	t.Run("stores the trimmed customer id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewVehicleUseCase(repo, customers).WithClock(fixedClock)

		customers.EXPECT().GetByID(gomock.Any(), "123456789").Return(entities.Customer{IDNumber: "123456789"}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "ABC123").Return(entities.Vehicle{}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Vehicle{})).DoAndReturn(
			func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
				if v.CustomerID != "123456789" {
					t.Fatalf("expected trimmed customer id, got %q", v.CustomerID)
				}
				return v, nil
			},
		)

		in := validVehicle()
		in.CustomerID = " 123456789 "
		got, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.CustomerID != "123456789" {
			t.Fatalf("unexpected customer id %q", got.CustomerID)
		}
	})

	t.Run("customer lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewVehicleUseCase(nil, customers).WithClock(fixedClock)

		customers.EXPECT().GetByID(gomock.Any(), "123456789").Return(entities.Customer{}, errors.New("boom"))

		_, err := uc.Create(context.Background(), validVehicle())
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestVehicleUseCase_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
	customers := mock_interfaces.NewMockICustomerRepository(ctrl)
	uc := NewVehicleUseCase(repo, customers).WithClock(fixedClock)

	repo.EXPECT().GetByID(gomock.Any(), "ABC123").Return(validVehicle(), nil)
	customers.EXPECT().GetByID(gomock.Any(), "987654321").Return(entities.Customer{IDNumber: "987654321"}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Vehicle{})).DoAndReturn(
		func(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) { return v, nil },
	)

	in := validVehicle()
	in.LicensePlate = ""
	in.CustomerID = "  987654321\t"
	in.Color = "Black"
	got, err := uc.Update(context.Background(), "ABC123", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.LicensePlate != "ABC123" || got.CustomerID != "987654321" || got.Color != "Black" {
		t.Fatalf("unexpected vehicle: %+v", got)
	}
}

func TestVehicleUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIVehicleRepository(ctrl)
	uc := NewVehicleUseCase(repo, nil)

	repo.EXPECT().GetByID(gomock.Any(), "NOPE").Return(entities.Vehicle{}, nil)

	if err := uc.Delete(context.Background(), "NOPE"); !errors.Is(err, ErrVehicleNotFound) {
		t.Fatalf("expected ErrVehicleNotFound, got %v", err)
	}
}
