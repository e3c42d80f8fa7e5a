package usecase

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"carwash/internal/domain/entities"
	mock_interfaces "carwash/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func validEmployee() entities.Employee {
	return entities.Employee{
		ID:                      "EMP001",
		BirthDate:               time.Date(1990, time.May, 15, 0, 0, 0, 0, time.UTC),
		HireDate:                time.Date(2020, time.March, 10, 0, 0, 0, 0, time.UTC),
		DailySalary:             decimal.NewFromInt(50000),
		AccumulatedVacationDays: 15,
	}
}

func TestEmployeeUseCase_Create(t *testing.T) {
	t.Run("generates id when omitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewEmployeeUseCase(repo).WithClock(fixedClock)

		repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(entities.Employee{}, nil)
		repo.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.Employee{})).DoAndReturn(
			func(_ context.Context, e entities.Employee) (entities.Employee, error) { return e, nil },
		)

		in := validEmployee()
		in.ID = ""
		got, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !regexp.MustCompile(`^EMP[0-9A-F]{8}$`).MatchString(got.ID) {
			t.Fatalf("unexpected generated id %q", got.ID)
		}
	})

	t.Run("date rules", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
		uc := NewEmployeeUseCase(repo).WithClock(fixedClock)

		repo.EXPECT().GetByID(gomock.Any(), "EMP001").Return(validEmployee(), nil)

		in := validEmployee()
		in.HireDate = fixedNow.AddDate(0, 1, 0)
		in.BirthDate = in.HireDate.AddDate(1, 0, 0)
		terminated := in.HireDate
		in.TerminationDate = &terminated

		_, err := uc.Create(context.Background(), in)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		want := []string{
			"The date of birth must be prior to the date of hiring.",
			"The employee must be at least 18 years old at the time of hiring.",
			"The termination date must be after the hire date.",
			"The hiring date cannot be in the future.",
			"An employee with that ID already exists.",
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
}

func TestEmployeeUseCase_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIEmployeeRepository(ctrl)
	uc := NewEmployeeUseCase(repo).WithClock(fixedClock)

	repo.EXPECT().GetByID(gomock.Any(), "EMP001").Return(validEmployee(), nil)
	repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Employee{})).DoAndReturn(
		func(_ context.Context, e entities.Employee) (entities.Employee, error) { return e, nil },
	)

	in := validEmployee()
	in.ID = "IGNORED"
	terminated := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	severance := decimal.NewFromInt(250000)
	in.TerminationDate = &terminated
	in.SeveranceAmount = &severance

	got, err := uc.Update(context.Background(), "EMP001", in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != "EMP001" || got.TerminationDate == nil {
		t.Fatalf("unexpected employee: %+v", got)
	}
}

func TestAgeOn(t *testing.T) {
	birth := time.Date(2000, time.June, 15, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		on   time.Time
		want int
	}{
		{time.Date(2018, time.June, 14, 0, 0, 0, 0, time.UTC), 17},
		{time.Date(2018, time.June, 15, 0, 0, 0, 0, time.UTC), 18},
		{time.Date(2018, time.June, 15, 23, 0, 0, 0, time.UTC), 18},
		{time.Date(2019, time.January, 1, 0, 0, 0, 0, time.UTC), 18},
	}
	for _, tc := range cases {
		if got := ageOn(birth, tc.on); got != tc.want {
			t.Fatalf("ageOn(%s) = %d, want %d", tc.on.Format(time.DateOnly), got, tc.want)
		}
	}
}
