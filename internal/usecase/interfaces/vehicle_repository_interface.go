package interfaces

import (
	"carwash/internal/domain/entities"
	"context"
)

// IVehicleRepository stores vehicles keyed by LicensePlate.

type IVehicleRepository interface {
	GetAll(ctx context.Context) ([]entities.Vehicle, error)
	GetByID(ctx context.Context, licensePlate string) (entities.Vehicle, error)
	Save(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Update(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Delete(ctx context.Context, licensePlate string) error
}
