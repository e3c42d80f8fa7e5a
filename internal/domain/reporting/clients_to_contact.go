// Package reporting computes the read-only aggregate reports over snapshots
// of customers, vehicles and washes.
package reporting

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"carwash/internal/domain/entities"

	"github.com/samber/lo"
)

const (
	maxDaysPriority     = 50
	priorityPerVehicle  = 10
	defaultContactDays  = 30
	defaultBasePriority = 50
)

var contactOffsetDays = map[entities.WashPreference]int{
	entities.WashPreferenceWeekly:   7,
	entities.WashPreferenceBiweekly: 14,
	entities.WashPreferenceMonthly:  30,
	entities.WashPreferenceOther:    90,
}

var basePriority = map[entities.WashPreference]int{
	entities.WashPreferenceWeekly:   100,
	entities.WashPreferenceBiweekly: 80,
	entities.WashPreferenceMonthly:  60,
	entities.WashPreferenceOther:    40,
}

// RecommendedContactDate is now plus the cadence of the customer preference.
func RecommendedContactDate(pref entities.WashPreference, now time.Time) time.Time {
	days, ok := contactOffsetDays[pref]
	if !ok {
		days = defaultContactDays
	}
	return now.AddDate(0, 0, days)
}

// Priority scores how urgently a customer should be contacted.
func Priority(pref entities.WashPreference, maxDaysSinceLastWash, vehiclesNeedingWash int) int {
	base, ok := basePriority[pref]
	if !ok {
		base = defaultBasePriority
	}
	return base + min(maxDaysSinceLastWash/7, maxDaysPriority) + priorityPerVehicle*vehiclesNeedingWash
}

// ClientsToContact lists the customers with at least one vehicle whose last
// wash is one month old or older (or that was never washed), highest priority
// first.
func ClientsToContact(customers []entities.Customer, vehicles []entities.Vehicle, washes []entities.CarWash, now time.Time) ClientsToContactReport {
	oneMonthAgo := now.AddDate(0, -1, 0)
	vehiclesByCustomer := lo.GroupBy(vehicles, func(v entities.Vehicle) string { return v.CustomerID })
	washesByPlate := lo.GroupBy(washes, func(w entities.CarWash) string { return w.VehicleLicensePlate })

	clients := make([]ClientToContact, 0)
	for _, customer := range customers {
		owned := vehiclesByCustomer[customer.IDNumber]
		if len(owned) == 0 {
			continue
		}

		rows := make([]VehicleContactStatus, 0, len(owned))
		for _, v := range owned {
			rows = append(rows, vehicleContactStatus(v, washesByPlate[v.LicensePlate], oneMonthAgo, now))
		}

		needing := lo.CountBy(rows, func(r VehicleContactStatus) bool { return r.NeedsContact })
		if needing == 0 {
			continue
		}

		maxDays := lo.MaxBy(rows, func(a, b VehicleContactStatus) bool { return a.DaysSinceLastWash > b.DaysSinceLastWash }).DaysSinceLastWash
		avgDays := float64(lo.SumBy(rows, func(r VehicleContactStatus) int { return r.DaysSinceLastWash })) / float64(len(rows))

		clients = append(clients, ClientToContact{
			Customer:                 customer,
			Vehicles:                 rows,
			TotalVehicles:            len(rows),
			VehiclesNeedingWash:      needing,
			RecommendedContactDate:   RecommendedContactDate(customer.WashPreference, now),
			Priority:                 Priority(customer.WashPreference, maxDays, needing),
			AverageDaysSinceLastWash: avgDays,
		})
	}

	slices.SortStableFunc(clients, func(a, b ClientToContact) int {
		if c := cmp.Compare(b.Priority, a.Priority); c != 0 {
			return c
		}
		return cmp.Compare(b.AverageDaysSinceLastWash, a.AverageDaysSinceLastWash)
	})

	report := ClientsToContactReport{
		Clients:      clients,
		TotalClients: len(clients),
		GeneratedAt:  now,
	}
	if len(clients) == 0 {
		report.Message = "No clients need to be contacted at this time."
	} else {
		report.Message = fmt.Sprintf("Found %d clients that need to be contacted.", len(clients))
	}
	return report
}

func vehicleContactStatus(v entities.Vehicle, washes []entities.CarWash, oneMonthAgo, now time.Time) VehicleContactStatus {
	row := VehicleContactStatus{
		LicensePlate:            v.LicensePlate,
		Brand:                   v.Brand,
		Model:                   v.Model,
		Color:                   v.Color,
		HasNanoCeramicTreatment: v.HasNanoCeramicTreatment,
	}

	last, ok := MostRecentWash(washes)
	if ok {
		washed := last.CreationDate
		washType := last.WashType
		row.LastWashDate = &washed
		row.LastWashType = &washType
		row.DaysSinceLastWash = DaysBetween(washed, now)
		row.NeedsContact = !washed.After(oneMonthAgo)
		return row
	}

	reference := now.AddDate(-1, 0, 0)
	if v.LastServiceDate != nil {
		reference = *v.LastServiceDate
	}
	row.DaysSinceLastWash = DaysBetween(reference, now)
	row.NeedsContact = true
	return row
}

// MostRecentWash returns the wash with the latest CreationDate. Among equal
// dates the earliest in input order wins.
func MostRecentWash(washes []entities.CarWash) (entities.CarWash, bool) {
	if len(washes) == 0 {
		return entities.CarWash{}, false
	}
	best := washes[0]
	for _, w := range washes[1:] {
		if w.CreationDate.After(best.CreationDate) {
			best = w
		}
	}
	return best, true
}

// DaysBetween counts whole elapsed days from start to end, truncated toward
// zero.
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start) / (24 * time.Hour))
}
