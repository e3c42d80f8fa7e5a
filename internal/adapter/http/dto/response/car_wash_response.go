package response

import (
	"carwash/internal/domain/entities"
	"carwash/internal/usecase"
	"time"

	"github.com/samber/lo"
)

// CarWashResponse embeds the resolved customer and vehicle; either is null
// when the wash points at a record that no longer exists.
type CarWashResponse struct {
	ID                  string            `json:"id"`
	VehicleLicensePlate string            `json:"vehicle_license_plate"`
	ClientID            string            `json:"client_id"`
	EmployeeID          string            `json:"employee_id"`
	WashType            string            `json:"wash_type"`
	WashTypeName        string            `json:"wash_type_name"`
	WashTypeDescription string            `json:"wash_type_description"`
	BasePrice           float64           `json:"base_price"`
	PriceToAgree        *float64          `json:"price_to_agree"`
	IVA                 float64           `json:"iva"`
	TotalPrice          float64           `json:"total_price"`
	Status              string            `json:"status"`
	StatusName          string            `json:"status_name"`
	CreationDate        time.Time         `json:"creation_date"`
	Observations        *string           `json:"observations"`
	Customer            *CustomerResponse `json:"customer"`
	Vehicle             *VehicleResponse  `json:"vehicle"`
}

func FromCarWash(w entities.CarWash) CarWashResponse {
	res := CarWashResponse{
		ID:                  w.ID,
		VehicleLicensePlate: w.VehicleLicensePlate,
		ClientID:            w.ClientID,
		EmployeeID:          w.EmployeeID,
		WashType:            string(w.WashType),
		WashTypeName:        w.WashType.DisplayName(),
		WashTypeDescription: w.WashType.Description(),
		BasePrice:           w.BasePrice.InexactFloat64(),
		IVA:                 w.IVA.InexactFloat64(),
		TotalPrice:          w.TotalPrice.InexactFloat64(),
		Status:              string(w.Status),
		StatusName:          w.Status.DisplayName(),
		CreationDate:        w.CreationDate,
		Observations:        w.Observations,
	}
	if w.PriceToAgree != nil {
		res.PriceToAgree = lo.ToPtr(w.PriceToAgree.InexactFloat64())
	}
	return res
}

func FromCarWashDetails(d usecase.CarWashDetails) CarWashResponse {
	res := FromCarWash(d.Wash)
	if c, ok := d.Customer.Get(); ok {
		res.Customer = lo.ToPtr(FromCustomer(c))
	}
	if v, ok := d.Vehicle.Get(); ok {
		res.Vehicle = lo.ToPtr(FromVehicle(v))
	}
	return res
}

func FromCarWashDetailsList(ds []usecase.CarWashDetails) []CarWashResponse {
	return mapAll(ds, FromCarWashDetails)
}

func mapAll[T, R any](items []T, fn func(T) R) []R {
	return lo.Map(items, func(item T, _ int) R { return fn(item) })
}
