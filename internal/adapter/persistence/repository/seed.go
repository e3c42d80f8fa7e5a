package repository

import (
	"context"
	"fmt"
	"time"

	"carwash/internal/domain/entities"
	"carwash/internal/domain/pricing"
	"carwash/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// SeedData loads the sample rows the service ships with.
func SeedData(
	ctx context.Context,
	customers interfaces.ICustomerRepository,
	vehicles interfaces.IVehicleRepository,
	employees interfaces.IEmployeeRepository,
	washes interfaces.ICarWashRepository,
) error {
	for _, c := range sampleCustomers() {
		if _, err := customers.Save(ctx, c); err != nil {
			return fmt.Errorf("seed customer %s: %w", c.IDNumber, err)
		}
	}

	lastService := date(2024, time.January, 15)
	if _, err := vehicles.Save(ctx, entities.Vehicle{
		LicensePlate:            "ABC123",
		Brand:                   "Toyota",
		Model:                   "Camry",
		Traction:                "FWD",
		Color:                   "Blue",
		LastServiceDate:         &lastService,
		HasNanoCeramicTreatment: true,
		CustomerID:              "123456789",
	}); err != nil {
		return fmt.Errorf("seed vehicle ABC123: %w", err)
	}

	if _, err := employees.Save(ctx, entities.Employee{
		ID:                      "EMP001",
		BirthDate:               date(1990, time.May, 15),
		HireDate:                date(2020, time.March, 10),
		DailySalary:             decimal.NewFromInt(50000),
		AccumulatedVacationDays: 15,
	}); err != nil {
		return fmt.Errorf("seed employee EMP001: %w", err)
	}

	obs := "Cliente satisfecho con el servicio premium"
	wash := pricing.CalculatePrices(entities.CarWash{
		ID:                  "CW001",
		VehicleLicensePlate: "ABC123",
		ClientID:            "123456789",
		EmployeeID:          "EMP001",
		WashType:            entities.WashTypePremium,
		Status:              entities.WashStatusInProgress,
		CreationDate:        date(2024, time.January, 20),
		Observations:        &obs,
	})
	if _, err := washes.Save(ctx, wash); err != nil {
		return fmt.Errorf("seed car wash CW001: %w", err)
	}
	return nil
}

func sampleCustomers() []entities.Customer {
	return []entities.Customer{
		{
			IDNumber:       "123456789",
			FullName:       "John Doe",
			Province:       "San José",
			Canton:         "Central",
			District:       "Carmen",
			ExactAddress:   "100 metros norte del parque central",
			Phone:          "8888-8888",
			WashPreference: entities.WashPreferenceWeekly,
		},
		{
			IDNumber:       "987654321",
			FullName:       "María González",
			Province:       "Alajuela",
			Canton:         "Alajuela",
			District:       "Alajuela",
			ExactAddress:   "200 metros sur de la iglesia",
			Phone:          "7777-7777",
			WashPreference: entities.WashPreferenceMonthly,
		},
		{
			IDNumber:       "456789123",
			FullName:       "Carlos Rodríguez",
			Province:       "Cartago",
			Canton:         "Cartago",
			District:       "Oriental",
			ExactAddress:   "Del mall 300 metros este",
			Phone:          "6666-6666",
			WashPreference: entities.WashPreferenceBiweekly,
		},
		{
			IDNumber:       "321654987",
			FullName:       "Ana Jiménez",
			Province:       "Heredia",
			Canton:         "Heredia",
			District:       "Heredia",
			ExactAddress:   "Frente al hospital",
			Phone:          "5555-5555",
			WashPreference: entities.WashPreferenceOther,
		},
		{
			IDNumber:       "789456123",
			FullName:       "Luis Fernández",
			Province:       "Puntarenas",
			Canton:         "Puntarenas",
			District:       "Puntarenas",
			ExactAddress:   "Cerca del puerto",
			Phone:          "4444-4444",
			WashPreference: entities.WashPreferenceWeekly,
		},
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
