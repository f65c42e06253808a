package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is one shop expense entry (rent, parts restock, utilities, ...).
//
// Storage model (DynamoDB):
//   - PK: id

type Expense struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Category    string          `json:"category,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
