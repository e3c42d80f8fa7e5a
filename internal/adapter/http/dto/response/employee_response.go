package response

import (
	"carwash/internal/domain/entities"
	"time"
)

type EmployeeResponse struct {
	ID                      string     `json:"id"`
	BirthDate               time.Time  `json:"birth_date"`
	HireDate                time.Time  `json:"hire_date"`
	DailySalary             float64    `json:"daily_salary"`
	AccumulatedVacationDays int        `json:"accumulated_vacation_days"`
	TerminationDate         *time.Time `json:"termination_date"`
	SeveranceAmount         *float64   `json:"severance_amount"`
}

func FromEmployee(e entities.Employee) EmployeeResponse {
	res := EmployeeResponse{
		ID:                      e.ID,
		BirthDate:               e.BirthDate,
		HireDate:                e.HireDate,
		DailySalary:             e.DailySalary.InexactFloat64(),
		AccumulatedVacationDays: e.AccumulatedVacationDays,
		TerminationDate:         e.TerminationDate,
	}
	if e.SeveranceAmount != nil {
		amount := e.SeveranceAmount.InexactFloat64()
		res.SeveranceAmount = &amount
	}
	return res
}

func FromEmployees(es []entities.Employee) []EmployeeResponse {
	return mapAll(es, FromEmployee)
}
