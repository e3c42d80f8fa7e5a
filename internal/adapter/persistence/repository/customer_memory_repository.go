package repository

import (
	"context"
	"log"

	"carwash/internal/domain/entities"
	"carwash/internal/usecase/interfaces"
)

// CustomerMemoryRepository keeps customers in process memory, keyed by IDNumber.
type CustomerMemoryRepository struct {
	store *memoryStore[entities.Customer]
}

var _ interfaces.ICustomerRepository = (*CustomerMemoryRepository)(nil)

func NewCustomerMemoryRepository() *CustomerMemoryRepository {
	return &CustomerMemoryRepository{
		store: newMemoryStore(func(c entities.Customer) string { return c.IDNumber }),
	}
}

func (r *CustomerMemoryRepository) GetAll(_ context.Context) ([]entities.Customer, error) {
	return r.store.all(), nil
}

func (r *CustomerMemoryRepository) GetByID(_ context.Context, id string) (entities.Customer, error) {
	c, _ := r.store.get(id)
	return c, nil
}

func (r *CustomerMemoryRepository) Save(_ context.Context, c entities.Customer) (entities.Customer, error) {
	if err := r.store.insert(c); err != nil {
		log.Printf("[customer][repository] save failed id=%s err=%v", c.IDNumber, err)
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerMemoryRepository) Update(_ context.Context, c entities.Customer) (entities.Customer, error) {
	if err := r.store.replace(c); err != nil {
		log.Printf("[customer][repository] update failed id=%s err=%v", c.IDNumber, err)
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerMemoryRepository) Delete(_ context.Context, id string) error {
	return r.store.remove(id)
}
