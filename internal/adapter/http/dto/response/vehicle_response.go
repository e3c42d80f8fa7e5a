package response

import (
	"carwash/internal/domain/entities"
	"time"
)

type VehicleResponse struct {
	LicensePlate            string     `json:"license_plate"`
	Brand                   string     `json:"brand"`
	Model                   string     `json:"model"`
	Traction                string     `json:"traction"`
	Color                   string     `json:"color"`
	LastServiceDate         *time.Time `json:"last_service_date"`
	HasNanoCeramicTreatment bool       `json:"has_nano_ceramic_treatment"`
	CustomerID              string     `json:"customer_id"`
}

func FromVehicle(v entities.Vehicle) VehicleResponse {
	return VehicleResponse{
		LicensePlate:            v.LicensePlate,
		Brand:                   v.Brand,
		Model:                   v.Model,
		Traction:                v.Traction,
		Color:                   v.Color,
		LastServiceDate:         v.LastServiceDate,
		HasNanoCeramicTreatment: v.HasNanoCeramicTreatment,
		CustomerID:              v.CustomerID,
	}
}

func FromVehicles(vs []entities.Vehicle) []VehicleResponse {
	return mapAll(vs, FromVehicle)
}
