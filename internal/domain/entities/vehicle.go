package entities

import "time"

// Vehicle is identified by its license plate and references its owner by
// CustomerID. The reference is resolved by value on every read.
type Vehicle struct {
	LicensePlate            string     `json:"license_plate"`
	Brand                   string     `json:"brand"`
	Model                   string     `json:"model"`
	Traction                string     `json:"traction"`
	Color                   string     `json:"color"`
	LastServiceDate         *time.Time `json:"last_service_date,omitempty"`
	HasNanoCeramicTreatment bool       `json:"has_nano_ceramic_treatment"`
	CustomerID              string     `json:"customer_id"`
}
