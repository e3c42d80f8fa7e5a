package usecase

import (
	"carwash/internal/domain/entities"
	"carwash/internal/domain/search"
	"carwash/internal/usecase/interfaces"
	"context"
	"errors"
	"log"
	"strings"
)

var (
	ErrVehicleNotFound      = errors.New("vehicle not found")
	ErrVehicleAlreadyExists = errors.New("vehicle already exists")
	ErrInvalidLicensePlate  = errors.New("invalid license plate")
)

// IVehicleUseCase manages vehicles keyed by license plate.
type IVehicleUseCase interface {
	List(ctx context.Context) ([]entities.Vehicle, error)
	Search(ctx context.Context, term string) ([]entities.Vehicle, error)
	GetByID(ctx context.Context, plate string) (entities.Vehicle, error)
	Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error)
	Update(ctx context.Context, plate string, v entities.Vehicle) (entities.Vehicle, error)
	Delete(ctx context.Context, plate string) error
}

type VehicleUseCase struct {
	repo      interfaces.IVehicleRepository
	customers interfaces.ICustomerRepository
	now       Clock
}

var _ IVehicleUseCase = (*VehicleUseCase)(nil)

func NewVehicleUseCase(repo interfaces.IVehicleRepository, customers interfaces.ICustomerRepository) *VehicleUseCase {
	return &VehicleUseCase{repo: repo, customers: customers, now: systemClock}
}

// WithClock replaces the time source used for the service date rule.
func (u *VehicleUseCase) WithClock(now Clock) *VehicleUseCase {
	u.now = now
	return u
}

func (u *VehicleUseCase) List(ctx context.Context) ([]entities.Vehicle, error) {
	return u.repo.GetAll(ctx)
}

func (u *VehicleUseCase) Search(ctx context.Context, term string) ([]entities.Vehicle, error) {
	all, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return search.Filter(all, term, search.VehicleFields), nil
}

func (u *VehicleUseCase) GetByID(ctx context.Context, plate string) (entities.Vehicle, error) {
	plate = strings.TrimSpace(plate)
	if plate == "" {
		return entities.Vehicle{}, ErrInvalidLicensePlate
	}

	v, err := u.repo.GetByID(ctx, plate)
	if err != nil {
		return entities.Vehicle{}, err
	}
	if v.LicensePlate == "" {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return v, nil
}

func (u *VehicleUseCase) Create(ctx context.Context, v entities.Vehicle) (entities.Vehicle, error) {
	v.LicensePlate = strings.TrimSpace(v.LicensePlate)
	v.CustomerID = strings.TrimSpace(v.CustomerID)

	val := &validator{}
	val.require(v.LicensePlate, "License plate is required.")
	if err := u.validateFields(ctx, val, v); err != nil {
		return entities.Vehicle{}, err
	}

	if v.LicensePlate != "" {
		existing, err := u.repo.GetByID(ctx, v.LicensePlate)
		if err != nil {
			return entities.Vehicle{}, err
		}
		val.check(existing.LicensePlate == "", "A vehicle with that license plate already exists.")
	}
	if err := val.err(); err != nil {
		return entities.Vehicle{}, err
	}

	saved, err := u.repo.Save(ctx, v)
	if errors.Is(err, interfaces.ErrRecordExists) {
		return entities.Vehicle{}, ErrVehicleAlreadyExists
	}
	if err != nil {
		return entities.Vehicle{}, err
	}
	log.Printf("[vehicle][usecase] created plate=%s customer=%s", saved.LicensePlate, saved.CustomerID)
	return saved, nil
}

func (u *VehicleUseCase) Update(ctx context.Context, plate string, v entities.Vehicle) (entities.Vehicle, error) {
	if _, err := u.GetByID(ctx, plate); err != nil {
		return entities.Vehicle{}, err
	}
	v.CustomerID = strings.TrimSpace(v.CustomerID)

	val := &validator{}
	if err := u.validateFields(ctx, val, v); err != nil {
		return entities.Vehicle{}, err
	}
	if err := val.err(); err != nil {
		return entities.Vehicle{}, err
	}

	v.LicensePlate = strings.TrimSpace(plate)
	updated, err := u.repo.Update(ctx, v)
	if errors.Is(err, interfaces.ErrRecordNotFound) {
		return entities.Vehicle{}, ErrVehicleNotFound
	}
	return updated, err
}

func (u *VehicleUseCase) Delete(ctx context.Context, plate string) error {
	if _, err := u.GetByID(ctx, plate); err != nil {
		return err
	}

	err := u.repo.Delete(ctx, strings.TrimSpace(plate))
	if errors.Is(err, interfaces.ErrRecordNotFound) {
		return ErrVehicleNotFound
	}
	return err
}

// validateFields collects rule violations into val. The returned error is a
// repository fault, not a validation failure.
func (u *VehicleUseCase) validateFields(ctx context.Context, val *validator, v entities.Vehicle) error {
	val.require(v.Brand, "Brand is required.")
	val.require(v.Model, "Model is required.")
	val.require(v.Traction, "Traction is required.")
	val.require(v.Color, "Color is required.")
	val.require(v.CustomerID, "Customer ID is required.")
	if v.LastServiceDate != nil {
		val.check(!v.LastServiceDate.After(u.now()), "The last service date cannot be in the future.")
	}

	if v.CustomerID == "" {
		return nil
	}
	owner, err := u.customers.GetByID(ctx, v.CustomerID)
	if err != nil {
		return err
	}
	val.check(owner.IDNumber != "", "The selected customer does not exist.")
	return nil
}
