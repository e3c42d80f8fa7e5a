package interfaces

import (
	"carwash/internal/domain/entities"
	"context"
)

// ICustomerRepository stores customers keyed by IDNumber.
//
// GetByID returns a zero Customer (empty IDNumber) when nothing matches.
// Save fails with ErrRecordExists, Update and Delete with ErrRecordNotFound.

type ICustomerRepository interface {
	GetAll(ctx context.Context) ([]entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Save(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Update(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}
