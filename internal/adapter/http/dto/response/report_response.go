package response

import (
	"carwash/internal/domain/entities"
	"carwash/internal/domain/reporting"
	"time"

	"github.com/samber/lo"
)

type VehicleContactResponse struct {
	LicensePlate            string     `json:"license_plate"`
	Brand                   string     `json:"brand"`
	Model                   string     `json:"model"`
	Color                   string     `json:"color"`
	LastWashDate            *time.Time `json:"last_wash_date"`
	DaysSinceLastWash       int        `json:"days_since_last_wash"`
	NeedsContact            bool       `json:"needs_contact"`
	LastWashType            *string    `json:"last_wash_type"`
	HasNanoCeramicTreatment bool       `json:"has_nano_ceramic_treatment"`
}

type ClientToContactResponse struct {
	Customer                 CustomerResponse         `json:"customer"`
	Vehicles                 []VehicleContactResponse `json:"vehicles"`
	TotalVehicles            int                      `json:"total_vehicles"`
	VehiclesNeedingWash      int                      `json:"vehicles_needing_wash"`
	RecommendedContactDate   time.Time                `json:"recommended_contact_date"`
	Priority                 int                      `json:"priority"`
	AverageDaysSinceLastWash float64                  `json:"average_days_since_last_wash"`
}

type ClientsToContactResponse struct {
	Message      string                    `json:"message"`
	Clients      []ClientToContactResponse `json:"clients"`
	TotalClients int                       `json:"total_clients"`
	GeneratedAt  time.Time                 `json:"generated_at"`
}

type WashTypeCountResponse struct {
	WashType string `json:"wash_type"`
	Name     string `json:"name"`
	Count    int    `json:"count"`
}

type StatusCountResponse struct {
	Status string `json:"status"`
	Name   string `json:"name"`
	Count  int    `json:"count"`
}

type WashStatisticsResponse struct {
	TotalCarWashes         int                     `json:"total_car_washes"`
	CarWashesLastMonth     int                     `json:"car_washes_last_month"`
	CarWashesLastWeek      int                     `json:"car_washes_last_week"`
	WashTypeDistribution   []WashTypeCountResponse `json:"wash_type_distribution"`
	StatusDistribution     []StatusCountResponse   `json:"status_distribution"`
	RevenueLastMonth       float64                 `json:"revenue_last_month"`
	AverageServiceInterval float64                 `json:"average_service_interval"`
	GeneratedAt            time.Time               `json:"generated_at"`
}

type VehicleActivityResponse struct {
	LicensePlate string     `json:"license_plate"`
	Brand        string     `json:"brand"`
	Model        string     `json:"model"`
	Color        string     `json:"color"`
	LastWash     *time.Time `json:"last_wash"`
	WashCount    int        `json:"wash_count"`
}

type CustomerActivityResponse struct {
	Customer         CustomerResponse          `json:"customer"`
	TotalVehicles    int                       `json:"total_vehicles"`
	TotalWashes      int                       `json:"total_washes"`
	LastWashDate     *time.Time                `json:"last_wash_date"`
	FavoriteWashType *string                   `json:"favorite_wash_type"`
	TotalSpent       float64                   `json:"total_spent"`
	WashHistory      []CarWashResponse         `json:"wash_history"`
	VehicleDetails   []VehicleActivityResponse `json:"vehicle_details"`
	GeneratedAt      time.Time                 `json:"generated_at"`
}

func FromClientsToContact(r reporting.ClientsToContactReport) ClientsToContactResponse {
	return ClientsToContactResponse{
		Message:      r.Message,
		Clients:      mapAll(r.Clients, fromClientToContact),
		TotalClients: r.TotalClients,
		GeneratedAt:  r.GeneratedAt,
	}
}

func fromClientToContact(c reporting.ClientToContact) ClientToContactResponse {
	return ClientToContactResponse{
		Customer: FromCustomer(c.Customer),
		Vehicles: mapAll(c.Vehicles, func(v reporting.VehicleContactStatus) VehicleContactResponse {
			return VehicleContactResponse{
				LicensePlate:            v.LicensePlate,
				Brand:                   v.Brand,
				Model:                   v.Model,
				Color:                   v.Color,
				LastWashDate:            v.LastWashDate,
				DaysSinceLastWash:       v.DaysSinceLastWash,
				NeedsContact:            v.NeedsContact,
				LastWashType:            washTypeName(v.LastWashType),
				HasNanoCeramicTreatment: v.HasNanoCeramicTreatment,
			}
		}),
		TotalVehicles:            c.TotalVehicles,
		VehiclesNeedingWash:      c.VehiclesNeedingWash,
		RecommendedContactDate:   c.RecommendedContactDate,
		Priority:                 c.Priority,
		AverageDaysSinceLastWash: c.AverageDaysSinceLastWash,
	}
}

func FromWashStatistics(s reporting.WashStatistics) WashStatisticsResponse {
	return WashStatisticsResponse{
		TotalCarWashes:     s.TotalCarWashes,
		CarWashesLastMonth: s.CarWashesLastMonth,
		CarWashesLastWeek:  s.CarWashesLastWeek,
		WashTypeDistribution: mapAll(s.WashTypeDistribution, func(d reporting.WashTypeCount) WashTypeCountResponse {
			return WashTypeCountResponse{WashType: string(d.WashType), Name: d.WashType.DisplayName(), Count: d.Count}
		}),
		StatusDistribution: mapAll(s.StatusDistribution, func(d reporting.StatusCount) StatusCountResponse {
			return StatusCountResponse{Status: string(d.Status), Name: d.Status.DisplayName(), Count: d.Count}
		}),
		RevenueLastMonth:       s.RevenueLastMonth.InexactFloat64(),
		AverageServiceInterval: s.AverageServiceInterval,
		GeneratedAt:            s.GeneratedAt,
	}
}

func FromCustomerActivity(a reporting.CustomerActivity) CustomerActivityResponse {
	return CustomerActivityResponse{
		Customer:         FromCustomer(a.Customer),
		TotalVehicles:    a.TotalVehicles,
		TotalWashes:      a.TotalWashes,
		LastWashDate:     a.LastWashDate,
		FavoriteWashType: washTypeName(a.FavoriteWashType),
		TotalSpent:       a.TotalSpent.InexactFloat64(),
		WashHistory:      mapAll(a.WashHistory, FromCarWash),
		VehicleDetails: mapAll(a.VehicleDetails, func(v reporting.VehicleActivity) VehicleActivityResponse {
			return VehicleActivityResponse{
				LicensePlate: v.LicensePlate,
				Brand:        v.Brand,
				Model:        v.Model,
				Color:        v.Color,
				LastWash:     v.LastWash,
				WashCount:    v.WashCount,
			}
		}),
		GeneratedAt: a.GeneratedAt,
	}
}

func washTypeName(t *entities.WashType) *string {
	if t == nil {
		return nil
	}
	return lo.ToPtr(t.DisplayName())
}
