package reporting

import (
	"time"

	"carwash/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// VehicleContactStatus is one vehicle row of the clients-to-contact report.
type VehicleContactStatus struct {
	LicensePlate            string
	Brand                   string
	Model                   string
	Color                   string
	LastWashDate            *time.Time
	DaysSinceLastWash       int
	NeedsContact            bool
	LastWashType            *entities.WashType
	HasNanoCeramicTreatment bool
}

type ClientToContact struct {
	Customer                 entities.Customer
	Vehicles                 []VehicleContactStatus
	TotalVehicles            int
	VehiclesNeedingWash      int
	RecommendedContactDate   time.Time
	Priority                 int
	AverageDaysSinceLastWash float64
}

type ClientsToContactReport struct {
	Message      string
	Clients      []ClientToContact
	TotalClients int
	GeneratedAt  time.Time
}

type WashTypeCount struct {
	WashType entities.WashType
	Count    int
}

type StatusCount struct {
	Status entities.WashStatus
	Count  int
}

type WashStatistics struct {
	TotalCarWashes         int
	CarWashesLastMonth     int
	CarWashesLastWeek      int
	WashTypeDistribution   []WashTypeCount
	StatusDistribution     []StatusCount
	RevenueLastMonth       decimal.Decimal
	AverageServiceInterval float64
	GeneratedAt            time.Time
}

type VehicleActivity struct {
	LicensePlate string
	Brand        string
	Model        string
	Color        string
	LastWash     *time.Time
	WashCount    int
}

type CustomerActivity struct {
	Customer         entities.Customer
	TotalVehicles    int
	TotalWashes      int
	LastWashDate     *time.Time
	FavoriteWashType *entities.WashType
	TotalSpent       decimal.Decimal
	WashHistory      []entities.CarWash
	VehicleDetails   []VehicleActivity
	GeneratedAt      time.Time
}
