package request

import (
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/pkg"
)

type ExpenseRequest struct {
	Description string    `json:"description" binding:"required"`
	Category    string    `json:"category"`
	AmountCents int64     `json:"amount_cents" binding:"required"`
	Date        time.Time `json:"date" binding:"required"`
}

func (r ExpenseRequest) ToEntity(id string) entities.Expense {
	return entities.Expense{
		ID:          id,
		Description: r.Description,
		Category:    r.Category,
		Amount:      pkg.CentsToDecimal(r.AmountCents),
		Date:        r.Date,
	}
}
