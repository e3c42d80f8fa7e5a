package usecase

import (
	"context"
	"errors"
	"testing"

	"carwash/internal/domain/entities"
	mock_interfaces "carwash/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type reportMocks struct {
	customers *mock_interfaces.MockICustomerRepository
	vehicles  *mock_interfaces.MockIVehicleRepository
	washes    *mock_interfaces.MockICarWashRepository
}

func newReportUseCase(t *testing.T) (*ReportUseCase, reportMocks) {
	ctrl := gomock.NewController(t)
	m := reportMocks{
		customers: mock_interfaces.NewMockICustomerRepository(ctrl),
		vehicles:  mock_interfaces.NewMockIVehicleRepository(ctrl),
		washes:    mock_interfaces.NewMockICarWashRepository(ctrl),
	}
	return NewReportUseCase(m.customers, m.vehicles, m.washes).WithClock(fixedClock), m
}

func TestReportUseCase_ClientsToContact(t *testing.T) {
	t.Run("builds report from snapshots", func(t *testing.T) {
		uc, m := newReportUseCase(t)

		m.customers.EXPECT().GetAll(gomock.Any()).Return([]entities.Customer{
			{IDNumber: "C1", FullName: "Ana", WashPreference: entities.WashPreferenceMonthly},
		}, nil)
		m.vehicles.EXPECT().GetAll(gomock.Any()).Return([]entities.Vehicle{{LicensePlate: "V1", CustomerID: "C1"}}, nil)
		m.washes.EXPECT().GetAll(gomock.Any()).Return([]entities.CarWash{
			{ID: "W1", VehicleLicensePlate: "V1", ClientID: "C1", WashType: entities.WashTypeBasic, CreationDate: fixedNow.AddDate(0, 0, -40)},
		}, nil)

		report, err := uc.ClientsToContact(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.TotalClients != 1 || report.Clients[0].Priority != 75 {
			t.Fatalf("unexpected report: %+v", report)
		}
		if !report.GeneratedAt.Equal(fixedNow) {
			t.Fatalf("expected generated at clock time, got %s", report.GeneratedAt)
		}
	})

	t.Run("repository failure aborts", func(t *testing.T) {
		uc, m := newReportUseCase(t)

		m.customers.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
		m.vehicles.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("disk"))

		_, err := uc.ClientsToContact(context.Background())
		if err == nil || err.Error() != "load vehicles: disk" {
			t.Fatalf("expected wrapped error, got %v", err)
		}
	})
}

func TestReportUseCase_WashStatistics(t *testing.T) {
	uc, m := newReportUseCase(t)

	m.customers.EXPECT().GetAll(gomock.Any()).Return(nil, nil)
	m.washes.EXPECT().GetAll(gomock.Any()).Return(nil, nil)

	stats, err := uc.WashStatistics(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalCarWashes != 0 || stats.AverageServiceInterval != 0 || !stats.RevenueLastMonth.IsZero() {
		t.Fatalf("unexpected statistics: %+v", stats)
	}
}

func TestReportUseCase_CustomerActivity(t *testing.T) {
	t.Run("unknown customer does no aggregation", func(t *testing.T) {
		uc, m := newReportUseCase(t)

		m.customers.EXPECT().GetByID(gomock.Any(), "404").Return(entities.Customer{}, nil)

		_, err := uc.CustomerActivity(context.Background(), "404")
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m := newReportUseCase(t)

		m.customers.EXPECT().GetByID(gomock.Any(), "C1").Return(entities.Customer{IDNumber: "C1"}, nil)
		m.vehicles.EXPECT().GetAll(gomock.Any()).Return([]entities.Vehicle{{LicensePlate: "V1", CustomerID: "C1"}}, nil)
		m.washes.EXPECT().GetAll(gomock.Any()).Return([]entities.CarWash{
			{ID: "W1", VehicleLicensePlate: "V1", ClientID: "C1", WashType: entities.WashTypeDeluxe, CreationDate: fixedNow},
		}, nil)

		activity, err := uc.CustomerActivity(context.Background(), "C1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if activity.TotalVehicles != 1 || activity.TotalWashes != 1 || activity.VehicleDetails[0].WashCount != 1 {
			t.Fatalf("unexpected activity: %+v", activity)
		}
	})
}
