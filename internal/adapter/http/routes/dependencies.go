package routes

import (
	"carwash/internal/adapter/persistence/repository"
	"carwash/internal/config"
	"carwash/internal/infrastructure/notifications"
	"carwash/internal/usecase"
	"carwash/internal/usecase/interfaces"
	"context"
	"fmt"
	"log"
)

// Dependencies holds the use cases the HTTP layer and background jobs share.
type Dependencies struct {
	Customers usecase.ICustomerUseCase
	Vehicles  usecase.IVehicleUseCase
	Employees usecase.IEmployeeUseCase
	CarWashes usecase.ICarWashUseCase
	Reports   usecase.IReportUseCase
	Reminders usecase.IContactReminderUseCase
}

func NewDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	customerRepo := repository.NewCustomerMemoryRepository()
	vehicleRepo := repository.NewVehicleMemoryRepository()
	employeeRepo := repository.NewEmployeeMemoryRepository()
	carWashRepo := repository.NewCarWashMemoryRepository()

	if cfg.Seed.Enabled {
		if err := repository.SeedData(ctx, customerRepo, vehicleRepo, employeeRepo, carWashRepo); err != nil {
			return nil, fmt.Errorf("seed data: %w", err)
		}
		log.Printf("[seed] sample data loaded")
	}

	reports := usecase.NewReportUseCase(customerRepo, vehicleRepo, carWashRepo)

	return &Dependencies{
		Customers: usecase.NewCustomerUseCase(customerRepo),
		Vehicles:  usecase.NewVehicleUseCase(vehicleRepo, customerRepo),
		Employees: usecase.NewEmployeeUseCase(employeeRepo),
		CarWashes: usecase.NewCarWashUseCase(carWashRepo, customerRepo, vehicleRepo, employeeRepo),
		Reports:   reports,
		Reminders: usecase.NewContactReminderUseCase(reports, newNotifier(cfg.Twilio)),
	}, nil
}

func newNotifier(cfg config.TwilioConfig) interfaces.INotifier {
	if !cfg.Configured() {
		log.Printf("[reminder] twilio not configured, reminders will only be logged")
		return notifications.LogNotifier{}
	}
	return notifications.NewTwilioNotifier(cfg.AccountSID, cfg.AuthToken, cfg.FromNumber, cfg.DefaultCountryCode)
}
