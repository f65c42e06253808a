package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
)

var (
	ErrExpenseNotFound      = errors.New("expense not found")
	ErrInvalidExpenseID     = errors.New("invalid expense id")
	ErrExpenseDescription   = errors.New("expense description is required")
	ErrInvalidExpenseAmount = errors.New("expense amount must be positive")
	ErrInvalidExpenseDate   = errors.New("expense date is required")
)

// IExpenseUseCase records shop outflows (rent, parts restocking, utilities)
// so the dashboard can net them against order income.
type IExpenseUseCase interface {
	Create(ctx context.Context, e entities.Expense) (entities.Expense, error)
	GetByID(ctx context.Context, id string) (entities.Expense, error)
	List(ctx context.Context) ([]entities.Expense, error)
	ListByPeriod(ctx context.Context, from, to time.Time) ([]entities.Expense, error)
	Update(ctx context.Context, e entities.Expense) (entities.Expense, error)
	Delete(ctx context.Context, id string) error
}

type ExpenseUseCase struct {
	repo interfaces.IExpenseRepository
}

var _ IExpenseUseCase = (*ExpenseUseCase)(nil)

func NewExpenseUseCase(repo interfaces.IExpenseRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo}
}

func validateExpense(e entities.Expense) (entities.Expense, error) {
	e.Description = strings.TrimSpace(e.Description)
	e.Category = strings.TrimSpace(e.Category)
	if e.Description == "" {
		return entities.Expense{}, ErrExpenseDescription
	}
	if !e.Amount.IsPositive() {
		return entities.Expense{}, ErrInvalidExpenseAmount
	}
	if e.Date.IsZero() {
		return entities.Expense{}, ErrInvalidExpenseDate
	}
	return e, nil
}

func (u *ExpenseUseCase) Create(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	e, err := validateExpense(e)
	if err != nil {
		return entities.Expense{}, err
	}
	now := time.Now().UTC()
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now
	created, err := u.repo.Create(ctx, e)
	if err != nil {
		log.Printf("[expense][usecase] create failed description=%q err=%v", e.Description, err)
		return entities.Expense{}, err
	}
	log.Printf("[expense][usecase] created id=%s amount=%s", created.ID, created.Amount)
	return created, nil
}

func (u *ExpenseUseCase) GetByID(ctx context.Context, id string) (entities.Expense, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Expense{}, ErrInvalidExpenseID
	}
	e, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Expense{}, err
	}
	if e.ID == "" {
		return entities.Expense{}, ErrExpenseNotFound
	}
	return e, nil
}

func (u *ExpenseUseCase) List(ctx context.Context) ([]entities.Expense, error) {
	return u.repo.List(ctx)
}

// ListByPeriod filters expenses by date, bounds inclusive. A zero bound is
// open on that side. Filtering happens here; expense volume is small enough
// that the store is read whole.
func (u *ExpenseUseCase) ListByPeriod(ctx context.Context, from, to time.Time) ([]entities.Expense, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Expense, 0, len(all))
	for _, e := range all {
		if !from.IsZero() && e.Date.Before(from) {
			continue
		}
		if !to.IsZero() && e.Date.After(to) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (u *ExpenseUseCase) Update(ctx context.Context, e entities.Expense) (entities.Expense, error) {
	if strings.TrimSpace(e.ID) == "" {
		return entities.Expense{}, ErrInvalidExpenseID
	}
	id := strings.TrimSpace(e.ID)
	e, err := validateExpense(e)
	if err != nil {
		return entities.Expense{}, err
	}
	e.ID = id
	current, err := u.GetByID(ctx, e.ID)
	if err != nil {
		return entities.Expense{}, err
	}
	e.CreatedAt = current.CreatedAt
	e.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, e)
}

func (u *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidExpenseID
	}
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}
