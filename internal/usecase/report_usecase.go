package usecase

import (
	"carwash/internal/domain/reporting"
	"carwash/internal/usecase/interfaces"
	"context"
	"fmt"
	"strings"
)

// IReportUseCase computes the read-only business reports. Each call takes a
// fresh snapshot of the repositories; a failed read aborts the whole report.
type IReportUseCase interface {
	ClientsToContact(ctx context.Context) (reporting.ClientsToContactReport, error)
	WashStatistics(ctx context.Context) (reporting.WashStatistics, error)
	CustomerActivity(ctx context.Context, customerID string) (reporting.CustomerActivity, error)
}

type ReportUseCase struct {
	customers interfaces.ICustomerRepository
	vehicles  interfaces.IVehicleRepository
	washes    interfaces.ICarWashRepository
	now       Clock
}

var _ IReportUseCase = (*ReportUseCase)(nil)

func NewReportUseCase(
	customers interfaces.ICustomerRepository,
	vehicles interfaces.IVehicleRepository,
	washes interfaces.ICarWashRepository,
) *ReportUseCase {
	return &ReportUseCase{customers: customers, vehicles: vehicles, washes: washes, now: systemClock}
}

// WithClock pins the reference time of every report.
func (u *ReportUseCase) WithClock(now Clock) *ReportUseCase {
	u.now = now
	return u
}

func (u *ReportUseCase) ClientsToContact(ctx context.Context) (reporting.ClientsToContactReport, error) {
	customers, err := u.customers.GetAll(ctx)
	if err != nil {
		return reporting.ClientsToContactReport{}, fmt.Errorf("load customers: %w", err)
	}
	vehicles, err := u.vehicles.GetAll(ctx)
	if err != nil {
		return reporting.ClientsToContactReport{}, fmt.Errorf("load vehicles: %w", err)
	}
	washes, err := u.washes.GetAll(ctx)
	if err != nil {
		return reporting.ClientsToContactReport{}, fmt.Errorf("load car washes: %w", err)
	}
	return reporting.ClientsToContact(customers, vehicles, washes, u.now()), nil
}

func (u *ReportUseCase) WashStatistics(ctx context.Context) (reporting.WashStatistics, error) {
	customers, err := u.customers.GetAll(ctx)
	if err != nil {
		return reporting.WashStatistics{}, fmt.Errorf("load customers: %w", err)
	}
	washes, err := u.washes.GetAll(ctx)
	if err != nil {
		return reporting.WashStatistics{}, fmt.Errorf("load car washes: %w", err)
	}
	return reporting.Statistics(customers, washes, u.now()), nil
}

func (u *ReportUseCase) CustomerActivity(ctx context.Context, customerID string) (reporting.CustomerActivity, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return reporting.CustomerActivity{}, ErrInvalidCustomerID
	}

	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return reporting.CustomerActivity{}, fmt.Errorf("load customer: %w", err)
	}
	if customer.IDNumber == "" {
		return reporting.CustomerActivity{}, ErrCustomerNotFound
	}

	vehicles, err := u.vehicles.GetAll(ctx)
	if err != nil {
		return reporting.CustomerActivity{}, fmt.Errorf("load vehicles: %w", err)
	}
	washes, err := u.washes.GetAll(ctx)
	if err != nil {
		return reporting.CustomerActivity{}, fmt.Errorf("load car washes: %w", err)
	}
	return reporting.Activity(customer, vehicles, washes, u.now()), nil
}
