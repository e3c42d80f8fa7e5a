package repository

import (
	"context"
	"log"

	"carwash/internal/domain/entities"
	"carwash/internal/usecase/interfaces"
)

// CarWashMemoryRepository keeps washes in insertion order, which the reports
// use as the stable tie-break order.
type CarWashMemoryRepository struct {
	store *memoryStore[entities.CarWash]
}

var _ interfaces.ICarWashRepository = (*CarWashMemoryRepository)(nil)

func NewCarWashMemoryRepository() *CarWashMemoryRepository {
	return &CarWashMemoryRepository{
		store: newMemoryStore(func(w entities.CarWash) string { return w.ID }),
	}
}

func (r *CarWashMemoryRepository) GetAll(_ context.Context) ([]entities.CarWash, error) {
	return r.store.all(), nil
}

func (r *CarWashMemoryRepository) GetByID(_ context.Context, id string) (entities.CarWash, error) {
	w, _ := r.store.get(id)
	return w, nil
}

func (r *CarWashMemoryRepository) Save(_ context.Context, w entities.CarWash) (entities.CarWash, error) {
	if err := r.store.insert(w); err != nil {
		log.Printf("[carwash][repository] save failed id=%s err=%v", w.ID, err)
		return entities.CarWash{}, err
	}
	return w, nil
}

func (r *CarWashMemoryRepository) Update(_ context.Context, w entities.CarWash) (entities.CarWash, error) {
	if err := r.store.replace(w); err != nil {
		log.Printf("[carwash][repository] update failed id=%s err=%v", w.ID, err)
		return entities.CarWash{}, err
	}
	return w, nil
}

func (r *CarWashMemoryRepository) Delete(_ context.Context, id string) error {
	return r.store.remove(id)
}
