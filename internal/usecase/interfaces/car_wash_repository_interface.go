package interfaces

import (
	"carwash/internal/domain/entities"
	"context"
)

// ICarWashRepository stores washes keyed by ID. GetAll returns washes in
// insertion order; report tie-breaking relies on it.
type ICarWashRepository interface {
	GetAll(ctx context.Context) ([]entities.CarWash, error)
	GetByID(ctx context.Context, id string) (entities.CarWash, error)
	Save(ctx context.Context, w entities.CarWash) (entities.CarWash, error)
	Update(ctx context.Context, w entities.CarWash) (entities.CarWash, error)
	Delete(ctx context.Context, id string) error
}
