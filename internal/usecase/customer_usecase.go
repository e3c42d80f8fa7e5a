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
	ErrCustomerNotFound      = errors.New("customer not found")
	ErrCustomerAlreadyExists = errors.New("customer already exists")
	ErrInvalidCustomerID     = errors.New("invalid customer id")
)

// ICustomerUseCase manages the customer registry. Deleting a customer leaves
// their vehicles and washes in place.
type ICustomerUseCase interface {
	List(ctx context.Context) ([]entities.Customer, error)
	Search(ctx context.Context, term string) ([]entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	Update(ctx context.Context, id string, c entities.Customer) (entities.Customer, error)
	Delete(ctx context.Context, id string) error
}

type CustomerUseCase struct {
	repo interfaces.ICustomerRepository
}

var _ ICustomerUseCase = (*CustomerUseCase)(nil)

func NewCustomerUseCase(repo interfaces.ICustomerRepository) *CustomerUseCase {
	return &CustomerUseCase{repo: repo}
}

func (u *CustomerUseCase) List(ctx context.Context) ([]entities.Customer, error) {
	return u.repo.GetAll(ctx)
}

func (u *CustomerUseCase) Search(ctx context.Context, term string) ([]entities.Customer, error) {
	all, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return search.Filter(all, term, search.CustomerFields), nil
}

func (u *CustomerUseCase) GetByID(ctx context.Context, id string) (entities.Customer, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Customer{}, ErrInvalidCustomerID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Customer{}, err
	}
	if c.IDNumber == "" {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return c, nil
}

func (u *CustomerUseCase) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	c.IDNumber = strings.TrimSpace(c.IDNumber)

	v := &validator{}
	v.require(c.IDNumber, "ID Number is required.")
	validateCustomerFields(v, c)

	if c.IDNumber != "" {
		existing, err := u.repo.GetByID(ctx, c.IDNumber)
		if err != nil {
			return entities.Customer{}, err
		}
		v.check(existing.IDNumber == "", "A customer with that ID already exists.")
	}
	if err := v.err(); err != nil {
		return entities.Customer{}, err
	}

	saved, err := u.repo.Save(ctx, c)
	if errors.Is(err, interfaces.ErrRecordExists) {
		return entities.Customer{}, ErrCustomerAlreadyExists
	}
	if err != nil {
		return entities.Customer{}, err
	}
	log.Printf("[customer][usecase] created id=%s", saved.IDNumber)
	return saved, nil
}

func (u *CustomerUseCase) Update(ctx context.Context, id string, c entities.Customer) (entities.Customer, error) {
	if _, err := u.GetByID(ctx, id); err != nil {
		return entities.Customer{}, err
	}

	v := &validator{}
	validateCustomerFields(v, c)
	if err := v.err(); err != nil {
		return entities.Customer{}, err
	}

	// the path identity wins over the payload
	c.IDNumber = strings.TrimSpace(id)
	updated, err := u.repo.Update(ctx, c)
	if errors.Is(err, interfaces.ErrRecordNotFound) {
		return entities.Customer{}, ErrCustomerNotFound
	}
	return updated, err
}

func (u *CustomerUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}

	err := u.repo.Delete(ctx, strings.TrimSpace(id))
	if errors.Is(err, interfaces.ErrRecordNotFound) {
		return ErrCustomerNotFound
	}
	if err == nil {
		log.Printf("[customer][usecase] deleted id=%s", strings.TrimSpace(id))
	}
	return err
}

func validateCustomerFields(v *validator, c entities.Customer) {
	v.require(c.FullName, "Full Name is required.")
	v.require(c.Province, "Province is required.")
	v.require(c.Canton, "Canton is required.")
	v.require(c.District, "District is required.")
	v.require(c.ExactAddress, "Exact Address is required.")
	v.require(c.Phone, "Phone is required.")
	v.check(c.WashPreference.IsValid(), "Wash Preference must be one of Weekly, Biweekly, Monthly, Other.")
}
