package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                      string           `json:"id"`
	BirthDate               time.Time        `json:"birth_date"`
	HireDate                time.Time        `json:"hire_date"`
	DailySalary             decimal.Decimal  `json:"daily_salary"`
	AccumulatedVacationDays int              `json:"accumulated_vacation_days"`
	TerminationDate         *time.Time       `json:"termination_date,omitempty"`
	SeveranceAmount         *decimal.Decimal `json:"severance_amount,omitempty"`
}
