package usecase

import (
	"carwash/internal/domain/entities"
	"carwash/internal/domain/pricing"
	"carwash/internal/domain/search"
	"carwash/internal/usecase/interfaces"
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

var (
	ErrCarWashNotFound      = errors.New("car wash not found")
	ErrCarWashAlreadyExists = errors.New("car wash already exists")
	ErrInvalidCarWashID     = errors.New("invalid car wash id")
)

// ICarWashUseCase records washes. Every read returns washes joined with their
// customer and vehicle; every write reprices the wash.
type ICarWashUseCase interface {
	List(ctx context.Context) ([]CarWashDetails, error)
	Search(ctx context.Context, term string) ([]CarWashDetails, error)
	GetByID(ctx context.Context, id string) (CarWashDetails, error)
	ListByCustomer(ctx context.Context, customerID string) ([]CarWashDetails, error)
	ListByVehicle(ctx context.Context, plate string) ([]CarWashDetails, error)
	Create(ctx context.Context, w entities.CarWash) (CarWashDetails, error)
	Update(ctx context.Context, id string, w entities.CarWash) (CarWashDetails, error)
	Delete(ctx context.Context, id string) error
}

type CarWashUseCase struct {
	repo      interfaces.ICarWashRepository
	customers interfaces.ICustomerRepository
	vehicles  interfaces.IVehicleRepository
	employees interfaces.IEmployeeRepository
	now       Clock
}

var _ ICarWashUseCase = (*CarWashUseCase)(nil)

func NewCarWashUseCase(
	repo interfaces.ICarWashRepository,
	customers interfaces.ICustomerRepository,
	vehicles interfaces.IVehicleRepository,
	employees interfaces.IEmployeeRepository,
) *CarWashUseCase {
	return &CarWashUseCase{repo: repo, customers: customers, vehicles: vehicles, employees: employees, now: systemClock}
}

// WithClock replaces the time source used for default creation dates.
func (u *CarWashUseCase) WithClock(now Clock) *CarWashUseCase {
	u.now = now
	return u
}

func (u *CarWashUseCase) List(ctx context.Context) ([]CarWashDetails, error) {
	return u.listWhere(ctx, nil)
}

func (u *CarWashUseCase) Search(ctx context.Context, term string) ([]CarWashDetails, error) {
	all, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return u.join(ctx, search.Filter(all, term, search.CarWashFields))
}

func (u *CarWashUseCase) ListByCustomer(ctx context.Context, customerID string) ([]CarWashDetails, error) {
	customerID = strings.TrimSpace(customerID)
	return u.listWhere(ctx, func(w entities.CarWash) bool { return w.ClientID == customerID })
}

func (u *CarWashUseCase) ListByVehicle(ctx context.Context, plate string) ([]CarWashDetails, error) {
	plate = strings.TrimSpace(plate)
	return u.listWhere(ctx, func(w entities.CarWash) bool { return w.VehicleLicensePlate == plate })
}

func (u *CarWashUseCase) GetByID(ctx context.Context, id string) (CarWashDetails, error) {
	w, err := u.get(ctx, id)
	if err != nil {
		return CarWashDetails{}, err
	}
	j, err := loadCarWashJoin(ctx, u.customers, u.vehicles)
	if err != nil {
		return CarWashDetails{}, err
	}
	return j.resolve(w), nil
}

func (u *CarWashUseCase) Create(ctx context.Context, w entities.CarWash) (CarWashDetails, error) {
	w = trimReferences(w)
	w.ID = strings.TrimSpace(w.ID)
	if w.ID == "" {
		w.ID = NewCarWashID()
	}
	if w.Status == "" {
		w.Status = entities.WashStatusScheduled
	}
	if w.CreationDate.IsZero() {
		w.CreationDate = u.now()
	}

	v := &validator{}
	existing, err := u.repo.GetByID(ctx, w.ID)
	if err != nil {
		return CarWashDetails{}, err
	}
	v.check(existing.ID == "", "A car wash with that ID already exists.")

	j, err := u.validate(ctx, v, w)
	if err != nil {
		return CarWashDetails{}, err
	}
	if err := v.err(); err != nil {
		return CarWashDetails{}, err
	}

	saved, err := u.repo.Save(ctx, pricing.CalculatePrices(w))
	if errors.Is(err, interfaces.ErrRecordExists) {
		return CarWashDetails{}, ErrCarWashAlreadyExists
	}
	if err != nil {
		return CarWashDetails{}, err
	}
	log.Printf("[carwash][usecase] created id=%s type=%s total=%s", saved.ID, saved.WashType, saved.TotalPrice)
	return j.resolve(saved), nil
}

func (u *CarWashUseCase) Update(ctx context.Context, id string, w entities.CarWash) (CarWashDetails, error) {
	current, err := u.get(ctx, id)
	if err != nil {
		return CarWashDetails{}, err
	}

	w = trimReferences(w)
	w.ID = current.ID
	w.CreationDate = current.CreationDate
	if w.Status == "" {
		w.Status = current.Status
	}

	v := &validator{}
	j, err := u.validate(ctx, v, w)
	if err != nil {
		return CarWashDetails{}, err
	}
	if err := v.err(); err != nil {
		return CarWashDetails{}, err
	}

	updated, err := u.repo.Update(ctx, pricing.CalculatePrices(w))
	if errors.Is(err, interfaces.ErrRecordNotFound) {
		return CarWashDetails{}, ErrCarWashNotFound
	}
	if err != nil {
		return CarWashDetails{}, err
	}
	log.Printf("[carwash][usecase] updated id=%s status=%s total=%s", updated.ID, updated.Status, updated.TotalPrice)
	return j.resolve(updated), nil
}

func (u *CarWashUseCase) Delete(ctx context.Context, id string) error {
	w, err := u.get(ctx, id)
	if err != nil {
		return err
	}

	err = u.repo.Delete(ctx, w.ID)
	if errors.Is(err, interfaces.ErrRecordNotFound) {
		return ErrCarWashNotFound
	}
	return err
}

func (u *CarWashUseCase) get(ctx context.Context, id string) (entities.CarWash, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CarWash{}, ErrInvalidCarWashID
	}

	w, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.CarWash{}, err
	}
	if w.ID == "" {
		return entities.CarWash{}, ErrCarWashNotFound
	}
	return w, nil
}

func (u *CarWashUseCase) listWhere(ctx context.Context, keep func(entities.CarWash) bool) ([]CarWashDetails, error) {
	all, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if keep != nil {
		all = lo.Filter(all, func(w entities.CarWash, _ int) bool { return keep(w) })
	}
	return u.join(ctx, all)
}

func (u *CarWashUseCase) join(ctx context.Context, washes []entities.CarWash) ([]CarWashDetails, error) {
	j, err := loadCarWashJoin(ctx, u.customers, u.vehicles)
	if err != nil {
		return nil, err
	}
	return j.resolveAll(washes), nil
}

// validate collects rule violations into v and returns the join used to
// check references, so callers can resolve the saved wash with it.
func (u *CarWashUseCase) validate(ctx context.Context, v *validator, w entities.CarWash) (carWashJoin, error) {
	v.require(w.VehicleLicensePlate, "Vehicle license plate is required.")
	v.require(w.ClientID, "Client ID is required.")
	v.require(w.EmployeeID, "Employee ID is required.")
	v.check(w.WashType.IsValid(), "Wash type must be one of Basic, Premium, Deluxe, LaJoya.")
	v.check(w.Status.IsValid(), "Wash status must be one of InProgress, Billed, Scheduled.")
	if w.WashType == entities.WashTypeLaJoya {
		v.check(w.PriceToAgree != nil && w.PriceToAgree.IsPositive(), "You must specify a price for the 'La Joya' wash.")
	}

	j, err := loadCarWashJoin(ctx, u.customers, u.vehicles)
	if err != nil {
		return carWashJoin{}, err
	}

	customer := lookup(j.customers, w.ClientID)
	vehicle := lookup(j.vehicles, w.VehicleLicensePlate)
	if w.ClientID != "" {
		v.check(customer.IsPresent(), "The selected customer does not exist.")
	}
	if w.VehicleLicensePlate != "" {
		v.check(vehicle.IsPresent(), "The selected vehicle does not exist.")
	}
	if c, ok := customer.Get(); ok {
		if veh, ok := vehicle.Get(); ok {
			v.check(veh.CustomerID == c.IDNumber, "The selected vehicle does not belong to the selected customer.")
		}
	}

	if strings.TrimSpace(w.EmployeeID) != "" {
		e, err := u.employees.GetByID(ctx, w.EmployeeID)
		if err != nil {
			return carWashJoin{}, err
		}
		v.check(e.ID != "", "The selected employee does not exist.")
	}
	return j, nil
}

func trimReferences(w entities.CarWash) entities.CarWash {
	w.VehicleLicensePlate = strings.TrimSpace(w.VehicleLicensePlate)
	w.ClientID = strings.TrimSpace(w.ClientID)
	w.EmployeeID = strings.TrimSpace(w.EmployeeID)
	return w
}

// NewCarWashID returns an identifier of the form CW1A2B3C4D.
func NewCarWashID() string {
	return "CW" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
