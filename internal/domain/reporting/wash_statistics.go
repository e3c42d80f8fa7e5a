package reporting

import (
	"cmp"
	"slices"
	"time"

	"carwash/internal/domain/entities"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const (
	statisticsMonthDays = 30
	statisticsWeekDays  = 7
)

// Statistics summarises wash volume, mix and revenue. Counts over the last 30
// and last 7 days include washes created exactly on the window boundary.
func Statistics(customers []entities.Customer, washes []entities.CarWash, now time.Time) WashStatistics {
	lastMonth := now.AddDate(0, 0, -statisticsMonthDays)
	lastWeek := now.AddDate(0, 0, -statisticsWeekDays)

	recent := lo.Filter(washes, func(w entities.CarWash, _ int) bool { return !w.CreationDate.Before(lastMonth) })

	return WashStatistics{
		TotalCarWashes:         len(washes),
		CarWashesLastMonth:     len(recent),
		CarWashesLastWeek:      lo.CountBy(washes, func(w entities.CarWash) bool { return !w.CreationDate.Before(lastWeek) }),
		WashTypeDistribution:   washTypeDistribution(washes),
		StatusDistribution:     statusDistribution(washes),
		RevenueLastMonth:       sumTotals(recent),
		AverageServiceInterval: averageServiceInterval(customers, washes),
		GeneratedAt:            now,
	}
}

// washTypeDistribution orders groups by count descending; equal counts keep
// the order in which the type first appears.
func washTypeDistribution(washes []entities.CarWash) []WashTypeCount {
	counts := lo.CountValuesBy(washes, func(w entities.CarWash) entities.WashType { return w.WashType })
	order := lo.Uniq(lo.Map(washes, func(w entities.CarWash, _ int) entities.WashType { return w.WashType }))

	dist := lo.Map(order, func(t entities.WashType, _ int) WashTypeCount {
		return WashTypeCount{WashType: t, Count: counts[t]}
	})
	slices.SortStableFunc(dist, func(a, b WashTypeCount) int { return cmp.Compare(b.Count, a.Count) })
	return dist
}

func statusDistribution(washes []entities.CarWash) []StatusCount {
	counts := lo.CountValuesBy(washes, func(w entities.CarWash) entities.WashStatus { return w.Status })
	order := lo.Uniq(lo.Map(washes, func(w entities.CarWash, _ int) entities.WashStatus { return w.Status }))

	return lo.Map(order, func(s entities.WashStatus, _ int) StatusCount {
		return StatusCount{Status: s, Count: counts[s]}
	})
}

func sumTotals(washes []entities.CarWash) decimal.Decimal {
	return lo.Reduce(washes, func(acc decimal.Decimal, w entities.CarWash, _ int) decimal.Decimal {
		return acc.Add(w.TotalPrice)
	}, decimal.Zero)
}

// averageServiceInterval is the mean, over customers with two or more washes,
// of each customer's mean gap in days between consecutive washes.
func averageServiceInterval(customers []entities.Customer, washes []entities.CarWash) float64 {
	byClient := lo.GroupBy(washes, func(w entities.CarWash) string { return w.ClientID })

	var intervals []float64
	for _, c := range customers {
		history := slices.Clone(byClient[c.IDNumber])
		if len(history) < 2 {
			continue
		}
		slices.SortStableFunc(history, func(a, b entities.CarWash) int { return a.CreationDate.Compare(b.CreationDate) })

		gaps := make([]float64, 0, len(history)-1)
		for i := 1; i < len(history); i++ {
			gaps = append(gaps, history[i].CreationDate.Sub(history[i-1].CreationDate).Hours()/24)
		}
		intervals = append(intervals, lo.Mean(gaps))
	}

	if len(intervals) == 0 {
		return 0
	}
	return lo.Mean(intervals)
}
