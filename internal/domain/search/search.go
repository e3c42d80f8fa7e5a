// Package search implements the case-insensitive substring filter used by the
// /search endpoints.
package search

import (
	"strconv"
	"strings"
	"time"

	"carwash/internal/domain/entities"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// DateLayout is the dd/MM/yyyy form dates are matched against.
const DateLayout = "02/01/2006"

// Filter keeps the items for which term is a case-insensitive substring of at
// least one field returned by fields. Input order is preserved. An empty term
// returns items unchanged.
func Filter[T any](items []T, term string, fields func(T) []string) []T {
	if term == "" {
		return items
	}
	needle := strings.ToLower(term)
	return lo.Filter(items, func(item T, _ int) bool {
		return lo.ContainsBy(fields(item), func(field string) bool {
			return field != "" && strings.Contains(strings.ToLower(field), needle)
		})
	})
}

func CustomerFields(c entities.Customer) []string {
	return []string{
		c.IDNumber,
		c.FullName,
		c.Province,
		c.Canton,
		c.District,
		c.ExactAddress,
		c.Phone,
		string(c.WashPreference),
	}
}

func VehicleFields(v entities.Vehicle) []string {
	return []string{
		v.LicensePlate,
		v.Brand,
		v.Model,
		v.Traction,
		v.Color,
		optionalDate(v.LastServiceDate),
		strconv.FormatBool(v.HasNanoCeramicTreatment),
	}
}

func EmployeeFields(e entities.Employee) []string {
	fields := []string{
		e.ID,
		e.BirthDate.Format(DateLayout),
		e.HireDate.Format(DateLayout),
		strconv.Itoa(e.AccumulatedVacationDays),
		optionalDate(e.TerminationDate),
	}
	fields = append(fields, money(e.DailySalary)...)
	if e.SeveranceAmount != nil {
		fields = append(fields, money(*e.SeveranceAmount)...)
	}
	return fields
}

func CarWashFields(w entities.CarWash) []string {
	fields := []string{
		w.ID,
		w.VehicleLicensePlate,
		w.ClientID,
		w.EmployeeID,
		string(w.WashType),
		w.WashType.DisplayName(),
		string(w.Status),
		w.Status.DisplayName(),
		w.CreationDate.Format(DateLayout),
		lo.FromPtr(w.Observations),
	}
	fields = append(fields, money(w.BasePrice)...)
	return append(fields, money(w.TotalPrice)...)
}

func optionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

// money matches an amount both as entered (9040) and as displayed with two
// decimals (9040.00).
func money(d decimal.Decimal) []string {
	return []string{d.String(), d.StringFixed(2)}
}
