package order

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"oficina_os/internal/domain/entities"
)

// ErrInvalidPayment rejects a settlement with a non-positive amount or a
// missing payment date. No state is changed on rejection.
var ErrInvalidPayment = errors.New("invalid payment")

// SettlementInput is a user-entered payment event against an order's
// outstanding balance.
type SettlementInput struct {
	Amount decimal.Decimal
	Date   time.Time
	Method string

	// StatusOverride, when set, is applied unconditionally instead of the
	// derived status.
	StatusOverride *entities.OrderStatus
}

// SettlementUpdate is the partial-update record produced by Settle. Only
// the listed fields are pushed to persistence; Status nil means the order's
// current status is left untouched.
type SettlementUpdate struct {
	AmountPaid    decimal.Decimal
	AmountPending decimal.Decimal
	PaymentMethod string
	DeliveryDate  time.Time
	Status        *entities.OrderStatus
}

// Settle computes the paid/pending amounts and the resulting status for a
// payment against o. The pending balance is floored at zero; it never goes
// negative no matter how large the payment.
//
// Settle is a pure computation and is NOT idempotent: applying the same
// input twice double-counts the payment. De-duplicating retries is the
// caller's job (the editor disables its save control while a request is
// outstanding); see the settlement tests, which pin this behavior.
func Settle(o entities.ServiceOrder, in SettlementInput, statuses []entities.OrderStatus) (SettlementUpdate, error) {
	if !in.Amount.IsPositive() || in.Date.IsZero() {
		return SettlementUpdate{}, ErrInvalidPayment
	}

	total := o.NetTotal()
	newPaid := o.AmountPaid.Add(in.Amount)
	newPending := total.Sub(newPaid)
	if newPending.IsNegative() {
		newPending = decimal.Zero
	}

	update := SettlementUpdate{
		AmountPaid:    newPaid,
		AmountPending: newPending,
		PaymentMethod: in.Method,
		DeliveryDate:  in.Date,
	}

	switch {
	case in.StatusOverride != nil:
		update.Status = in.StatusOverride
	case newPending.IsZero():
		if st, ok := ResolveFinalStatus(statuses); ok {
			update.Status = &st
		}
	default:
		if st, ok := ResolvePartialStatus(statuses); ok {
			update.Status = &st
		}
	}

	return update, nil
}
