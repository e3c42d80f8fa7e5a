package request

import (
	"carwash/internal/domain/entities"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// CarWashRequest carries what a client may set on a wash. Prices are always
// computed server side; only price_to_agree is read, and only for La Joya.
type CarWashRequest struct {
	ID                  string           `json:"id"`
	VehicleLicensePlate string           `json:"vehicle_license_plate"`
	ClientID            string           `json:"client_id"`
	EmployeeID          string           `json:"employee_id"`
	WashType            string           `json:"wash_type"`
	PriceToAgree        *decimal.Decimal `json:"price_to_agree"`
	Status              string           `json:"status"`
	CreationDate        *Date            `json:"creation_date"`
	Observations        *string          `json:"observations"`
}

func (r CarWashRequest) ToEntity() entities.CarWash {
	return entities.CarWash{
		ID:                  r.ID,
		VehicleLicensePlate: r.VehicleLicensePlate,
		ClientID:            r.ClientID,
		EmployeeID:          r.EmployeeID,
		WashType:            entities.WashType(r.WashType),
		Status:              entities.WashStatus(r.Status),
		CreationDate:        r.CreationDate.value(),
		PriceToAgree:        r.PriceToAgree,
		Observations:        lo.EmptyableToPtr(lo.FromPtr(r.Observations)),
	}
}
