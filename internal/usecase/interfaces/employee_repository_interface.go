package interfaces

import (
	"carwash/internal/domain/entities"
	"context"
)

type IEmployeeRepository interface {
	GetAll(ctx context.Context) ([]entities.Employee, error)
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	Save(ctx context.Context, e entities.Employee) (entities.Employee, error)
	Update(ctx context.Context, e entities.Employee) (entities.Employee, error)
	Delete(ctx context.Context, id string) error
}
