package usecase

import (
	"carwash/internal/domain/entities"
	"carwash/internal/domain/search"
	"carwash/internal/usecase/interfaces"
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmployeeNotFound      = errors.New("employee not found")
	ErrEmployeeAlreadyExists = errors.New("employee already exists")
	ErrInvalidEmployeeID     = errors.New("invalid employee id")
)

const minimumHiringAge = 18

// IEmployeeUseCase manages the staff roster.
type IEmployeeUseCase interface {
	List(ctx context.Context) ([]entities.Employee, error)
	Search(ctx context.Context, term string) ([]entities.Employee, error)
	GetByID(ctx context.Context, id string) (entities.Employee, error)
	Create(ctx context.Context, e entities.Employee) (entities.Employee, error)
	Update(ctx context.Context, id string, e entities.Employee) (entities.Employee, error)
	Delete(ctx context.Context, id string) error
}

type EmployeeUseCase struct {
	repo interfaces.IEmployeeRepository
	now  Clock
}

var _ IEmployeeUseCase = (*EmployeeUseCase)(nil)

func NewEmployeeUseCase(repo interfaces.IEmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, now: systemClock}
}

// WithClock replaces the time source used for the hiring date rule.
func (u *EmployeeUseCase) WithClock(now Clock) *EmployeeUseCase {
	u.now = now
	return u
}

func (u *EmployeeUseCase) List(ctx context.Context) ([]entities.Employee, error) {
	return u.repo.GetAll(ctx)
}

func (u *EmployeeUseCase) Search(ctx context.Context, term string) ([]entities.Employee, error) {
	all, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return search.Filter(all, term, search.EmployeeFields), nil
}

func (u *EmployeeUseCase) GetByID(ctx context.Context, id string) (entities.Employee, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Employee{}, ErrInvalidEmployeeID
	}

	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Employee{}, err
	}
	if e.ID == "" {
		return entities.Employee{}, ErrEmployeeNotFound
	}
	return e, nil
}

func (u *EmployeeUseCase) Create(ctx context.Context, e entities.Employee) (entities.Employee, error) {
	e.ID = strings.TrimSpace(e.ID)
	if e.ID == "" {
		e.ID = NewEmployeeID()
	}

	v := &validator{}
	u.validateDates(v, e)

	existing, err := u.repo.GetByID(ctx, e.ID)
	if err != nil {
		return entities.Employee{}, err
	}
	v.check(existing.ID == "", "An employee with that ID already exists.")
	if err := v.err(); err != nil {
		return entities.Employee{}, err
	}

	saved, err := u.repo.Save(ctx, e)
	if errors.Is(err, interfaces.ErrRecordExists) {
		return entities.Employee{}, ErrEmployeeAlreadyExists
	}
	if err != nil {
		return entities.Employee{}, err
	}
	log.Printf("[employee][usecase] created id=%s", saved.ID)
	return saved, nil
}

func (u *EmployeeUseCase) Update(ctx context.Context, id string, e entities.Employee) (entities.Employee, error) {
	if _, err := u.GetByID(ctx, id); err != nil {
		return entities.Employee{}, err
	}

	v := &validator{}
	u.validateDates(v, e)
	if err := v.err(); err != nil {
		return entities.Employee{}, err
	}

	e.ID = strings.TrimSpace(id)
	updated, err := u.repo.Update(ctx, e)
	if errors.Is(err, interfaces.ErrRecordNotFound) {
		return entities.Employee{}, ErrEmployeeNotFound
	}
	return updated, err
}

func (u *EmployeeUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}

	err := u.repo.Delete(ctx, strings.TrimSpace(id))
	if errors.Is(err, interfaces.ErrRecordNotFound) {
		return ErrEmployeeNotFound
	}
	return err
}

func (u *EmployeeUseCase) validateDates(v *validator, e entities.Employee) {
	v.check(e.BirthDate.Before(e.HireDate), "The date of birth must be prior to the date of hiring.")
	v.check(ageOn(e.BirthDate, e.HireDate) >= minimumHiringAge, "The employee must be at least 18 years old at the time of hiring.")
	if e.TerminationDate != nil {
		v.check(e.TerminationDate.After(e.HireDate), "The termination date must be after the hire date.")
	}
	v.check(!e.HireDate.After(u.now()), "The hiring date cannot be in the future.")
}

// NewEmployeeID returns an identifier of the form EMP1A2B3C4D.
func NewEmployeeID() string {
	return "EMP" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

// ageOn is the number of completed years between birth and the calendar date
// of on.
func ageOn(birth, on time.Time) int {
	age := on.Year() - birth.Year()
	if dateOnly(birth).After(dateOnly(on).AddDate(-age, 0, 0)) {
		age--
	}
	return age
}
