package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// CarWash is a single wash service.
//
// BasePrice, IVA and TotalPrice are derived from WashType (and PriceToAgree
// for La Joya) and must be recomputed with pricing.CalculatePrices before the
// record is stored.
type CarWash struct {
	ID                  string           `json:"id"`
	VehicleLicensePlate string           `json:"vehicle_license_plate"`
	ClientID            string           `json:"client_id"`
	EmployeeID          string           `json:"employee_id"`
	WashType            WashType         `json:"wash_type"`
	BasePrice           decimal.Decimal  `json:"base_price"`
	PriceToAgree        *decimal.Decimal `json:"price_to_agree,omitempty"`
	IVA                 decimal.Decimal  `json:"iva"`
	TotalPrice          decimal.Decimal  `json:"total_price"`
	Status              WashStatus       `json:"status"`
	CreationDate        time.Time        `json:"creation_date"`
	Observations        *string          `json:"observations,omitempty"`
}
