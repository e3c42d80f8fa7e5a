package usecase

import (
	"carwash/internal/domain/entities"
	"carwash/internal/usecase/interfaces"
	"context"

	"github.com/samber/lo"
	"github.com/samber/mo"
)

// CarWashDetails is a wash joined with the customer and vehicle it points at.
// A reference whose target no longer exists resolves to mo.None.
type CarWashDetails struct {
	Wash     entities.CarWash
	Customer mo.Option[entities.Customer]
	Vehicle  mo.Option[entities.Vehicle]
}

type carWashJoin struct {
	customers map[string]entities.Customer
	vehicles  map[string]entities.Vehicle
}

func loadCarWashJoin(ctx context.Context, customers interfaces.ICustomerRepository, vehicles interfaces.IVehicleRepository) (carWashJoin, error) {
	allCustomers, err := customers.GetAll(ctx)
	if err != nil {
		return carWashJoin{}, err
	}
	allVehicles, err := vehicles.GetAll(ctx)
	if err != nil {
		return carWashJoin{}, err
	}
	return carWashJoin{
		customers: lo.KeyBy(allCustomers, func(c entities.Customer) string { return c.IDNumber }),
		vehicles:  lo.KeyBy(allVehicles, func(v entities.Vehicle) string { return v.LicensePlate }),
	}, nil
}

func (j carWashJoin) resolve(w entities.CarWash) CarWashDetails {
	return CarWashDetails{
		Wash:     w,
		Customer: lookup(j.customers, w.ClientID),
		Vehicle:  lookup(j.vehicles, w.VehicleLicensePlate),
	}
}

func (j carWashJoin) resolveAll(washes []entities.CarWash) []CarWashDetails {
	return lo.Map(washes, func(w entities.CarWash, _ int) CarWashDetails { return j.resolve(w) })
}

func lookup[K comparable, V any](m map[K]V, key K) mo.Option[V] {
	v, ok := m[key]
	return mo.TupleToOption(v, ok)
}
