package repository

import (
	"context"
	"log"

	"carwash/internal/domain/entities"
	"carwash/internal/usecase/interfaces"
)

type EmployeeMemoryRepository struct {
	store *memoryStore[entities.Employee]
}

var _ interfaces.IEmployeeRepository = (*EmployeeMemoryRepository)(nil)

func NewEmployeeMemoryRepository() *EmployeeMemoryRepository {
	return &EmployeeMemoryRepository{
		store: newMemoryStore(func(e entities.Employee) string { return e.ID }),
	}
}

func (r *EmployeeMemoryRepository) GetAll(_ context.Context) ([]entities.Employee, error) {
	return r.store.all(), nil
}

func (r *EmployeeMemoryRepository) GetByID(_ context.Context, id string) (entities.Employee, error) {
	e, _ := r.store.get(id)
	return e, nil
}

func (r *EmployeeMemoryRepository) Save(_ context.Context, e entities.Employee) (entities.Employee, error) {
	if err := r.store.insert(e); err != nil {
		log.Printf("[employee][repository] save failed id=%s err=%v", e.ID, err)
		return entities.Employee{}, err
	}
	return e, nil
}

func (r *EmployeeMemoryRepository) Update(_ context.Context, e entities.Employee) (entities.Employee, error) {
	if err := r.store.replace(e); err != nil {
		log.Printf("[employee][repository] update failed id=%s err=%v", e.ID, err)
		return entities.Employee{}, err
	}
	return e, nil
}

func (r *EmployeeMemoryRepository) Delete(_ context.Context, id string) error {
	return r.store.remove(id)
}
