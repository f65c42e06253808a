package interfaces

import (
	"context"

	"oficina_os/internal/domain/entities"
)

// IExpenseRepository abstracts DynamoDB persistence for Expense.

type IExpenseRepository interface {
	Create(ctx context.Context, e entities.Expense) (entities.Expense, error)
	GetByID(ctx context.Context, id string) (entities.Expense, error)
	List(ctx context.Context) ([]entities.Expense, error)
	Update(ctx context.Context, e entities.Expense) (entities.Expense, error)
	Delete(ctx context.Context, id string) error
}
