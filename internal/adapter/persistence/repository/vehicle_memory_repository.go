package repository

import (
	"context"
	"log"

	"carwash/internal/domain/entities"
	"carwash/internal/usecase/interfaces"
)

// VehicleMemoryRepository keeps vehicles in process memory, keyed by license plate.
type VehicleMemoryRepository struct {
	store *memoryStore[entities.Vehicle]
}

var _ interfaces.IVehicleRepository = (*VehicleMemoryRepository)(nil)

func NewVehicleMemoryRepository() *VehicleMemoryRepository {
	return &VehicleMemoryRepository{
		store: newMemoryStore(func(v entities.Vehicle) string { return v.LicensePlate }),
	}
}

func (r *VehicleMemoryRepository) GetAll(_ context.Context) ([]entities.Vehicle, error) {
	return r.store.all(), nil
}

func (r *VehicleMemoryRepository) GetByID(_ context.Context, id string) (entities.Vehicle, error) {
	v, _ := r.store.get(id)
	return v, nil
}

func (r *VehicleMemoryRepository) Save(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	if err := r.store.insert(v); err != nil {
		log.Printf("[vehicle][repository] save failed id=%s err=%v", v.LicensePlate, err)
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleMemoryRepository) Update(_ context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	if err := r.store.replace(v); err != nil {
		log.Printf("[vehicle][repository] update failed id=%s err=%v", v.LicensePlate, err)
		return entities.Vehicle{}, err
	}
	return v, nil
}

func (r *VehicleMemoryRepository) Delete(_ context.Context, id string) error {
	return r.store.remove(id)
}
