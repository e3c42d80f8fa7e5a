package request

import "carwash/internal/domain/entities"

type VehicleRequest struct {
	LicensePlate            string `json:"license_plate"`
	Brand                   string `json:"brand"`
	Model                   string `json:"model"`
	Traction                string `json:"traction"`
	Color                   string `json:"color"`
	LastServiceDate         *Date  `json:"last_service_date"`
	HasNanoCeramicTreatment bool   `json:"has_nano_ceramic_treatment"`
	CustomerID              string `json:"customer_id"`
}

func (r VehicleRequest) ToEntity() entities.Vehicle {
	return entities.Vehicle{
		LicensePlate:            r.LicensePlate,
		Brand:                   r.Brand,
		Model:                   r.Model,
		Traction:                r.Traction,
		Color:                   r.Color,
		LastServiceDate:         r.LastServiceDate.ptr(),
		HasNanoCeramicTreatment: r.HasNanoCeramicTreatment,
		CustomerID:              r.CustomerID,
	}
}
