package request

import (
	"carwash/internal/domain/entities"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// EmployeeRequest leaves ID empty to have one generated.
type EmployeeRequest struct {
	ID                      string           `json:"id"`
	BirthDate               *Date            `json:"birth_date" binding:"required"`
	HireDate                *Date            `json:"hire_date" binding:"required"`
	DailySalary             *decimal.Decimal `json:"daily_salary" binding:"required"`
	AccumulatedVacationDays int              `json:"accumulated_vacation_days"`
	TerminationDate         *Date            `json:"termination_date"`
	SeveranceAmount         *decimal.Decimal `json:"severance_amount"`
}

func (r EmployeeRequest) ToEntity() entities.Employee {
	return entities.Employee{
		ID:                      r.ID,
		BirthDate:               r.BirthDate.value(),
		HireDate:                r.HireDate.value(),
		AccumulatedVacationDays: r.AccumulatedVacationDays,
		DailySalary:             lo.FromPtr(r.DailySalary),
		TerminationDate:         r.TerminationDate.ptr(),
		SeveranceAmount:         r.SeveranceAmount,
	}
}
