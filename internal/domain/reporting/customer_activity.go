package reporting

import (
	"slices"
	"time"

	"carwash/internal/domain/entities"

	"github.com/samber/lo"
)

// Activity builds the activity report of one customer. vehicles and washes
// may hold other customers' records; they are filtered here.
func Activity(customer entities.Customer, vehicles []entities.Vehicle, washes []entities.CarWash, now time.Time) CustomerActivity {
	owned := lo.Filter(vehicles, func(v entities.Vehicle, _ int) bool { return v.CustomerID == customer.IDNumber })
	history := lo.Filter(washes, func(w entities.CarWash, _ int) bool { return w.ClientID == customer.IDNumber })
	slices.SortStableFunc(history, func(a, b entities.CarWash) int { return b.CreationDate.Compare(a.CreationDate) })

	activity := CustomerActivity{
		Customer:         customer,
		TotalVehicles:    len(owned),
		TotalWashes:      len(history),
		FavoriteWashType: favoriteWashType(history),
		TotalSpent:       sumTotals(history),
		WashHistory:      history,
		GeneratedAt:      now,
	}
	if len(history) > 0 {
		last := history[0].CreationDate
		activity.LastWashDate = &last
	}

	activity.VehicleDetails = lo.Map(owned, func(v entities.Vehicle, _ int) VehicleActivity {
		row := VehicleActivity{
			LicensePlate: v.LicensePlate,
			Brand:        v.Brand,
			Model:        v.Model,
			Color:        v.Color,
			WashCount:    lo.CountBy(history, func(w entities.CarWash) bool { return w.VehicleLicensePlate == v.LicensePlate }),
		}
		if w, ok := lo.Find(history, func(w entities.CarWash) bool { return w.VehicleLicensePlate == v.LicensePlate }); ok {
			washed := w.CreationDate
			row.LastWash = &washed
		}
		return row
	})

	return activity
}

// favoriteWashType is the most frequent type; ties go to the type declared
// first in entities.WashTypes.
func favoriteWashType(history []entities.CarWash) *entities.WashType {
	if len(history) == 0 {
		return nil
	}
	counts := lo.CountValuesBy(history, func(w entities.CarWash) entities.WashType { return w.WashType })

	var (
		best      entities.WashType
		bestCount int
	)
	for _, t := range entities.WashTypes {
		if counts[t] > bestCount {
			best, bestCount = t, counts[t]
		}
	}
	if bestCount == 0 {
		// only unknown types present
		best = history[0].WashType
	}
	return &best
}
