package order

import (
	"errors"

	"oficina_os/internal/domain/entities"
)

// SessionState is the editor lifecycle state. Persistence never happens
// through a state transition; saving is a separate explicit action available
// only while editing.

type SessionState string

const (
	SessionEditing        SessionState = "editing"
	SessionConfirmPending SessionState = "confirm_pending"
	SessionClosed         SessionState = "closed"
)

var ErrInvalidSessionState = errors.New("invalid session state transition")

// EditSession holds the live editable state of one order editor together
// with the snapshot taken when it opened. The snapshot is fixed for the
// session's lifetime and used solely for dirty-checking.
type EditSession struct {
	state    SessionState
	snapshot entities.ServiceOrder
	order    entities.ServiceOrder
	ledger   *Ledger
}

// OpenSession snapshots the order (scalar fields and full item list) and
// returns a session in the editing state. The catalog snapshot backs the
// ledger's stage-from-catalog lookups.
func OpenSession(o entities.ServiceOrder, catalog Catalog) *EditSession {
	ledger := NewLedger(catalog, o.Items)
	// The ledger normalizes seeded line totals; snapshot the normalized form
	// so reopening an untouched order is never reported dirty.
	snap := copyOrder(o)
	snap.Items = ledger.Items()
	live := copyOrder(o)
	live.Items = nil
	return &EditSession{
		state:    SessionEditing,
		snapshot: snap,
		order:    live,
		ledger:   ledger,
	}
}

func (s *EditSession) State() SessionState { return s.state }

// Order exposes the live scalar order fields for mutation while editing.
// Items are owned by the ledger.
func (s *EditSession) Order() *entities.ServiceOrder { return &s.order }

// Ledger exposes the session's line-item ledger.
func (s *EditSession) Ledger() *Ledger { return s.ledger }

// IsDirty reports whether the live state differs from the opening snapshot.
// The comparison is structural and value-based: scalar order fields plus the
// full item collection, order-sensitive.
func (s *EditSession) IsDirty() bool {
	if !orderFieldsEqual(s.snapshot, s.order) {
		return true
	}
	return !itemsEqual(s.snapshot.Items, s.ledger.items)
}

// RequestClose asks to close the editor. A clean session closes immediately;
// a dirty one moves to confirm-pending so the caller can prompt the user.
func (s *EditSession) RequestClose() SessionState {
	if s.state != SessionEditing {
		return s.state
	}
	if s.IsDirty() {
		s.state = SessionConfirmPending
	} else {
		s.state = SessionClosed
	}
	return s.state
}

// ConfirmDiscard abandons unsaved changes and closes the session.
func (s *EditSession) ConfirmDiscard() error {
	if s.state != SessionConfirmPending {
		return ErrInvalidSessionState
	}
	s.state = SessionClosed
	return nil
}

// CancelClose returns a confirm-pending session to editing, keeping all
// in-memory changes.
func (s *EditSession) CancelClose() error {
	if s.state != SessionConfirmPending {
		return ErrInvalidSessionState
	}
	s.state = SessionEditing
	return nil
}

func copyOrder(o entities.ServiceOrder) entities.ServiceOrder {
	out := o
	if o.DeliveryDate != nil {
		d := *o.DeliveryDate
		out.DeliveryDate = &d
	}
	out.Items = make([]entities.OrderLineItem, len(o.Items))
	copy(out.Items, o.Items)
	return out
}

// orderFieldsEqual compares the scalar order fields. Monetary values are
// compared by value (decimal.Decimal has multiple representations of the
// same amount); a nil delivery date is distinct from any set date.
func orderFieldsEqual(a, b entities.ServiceOrder) bool {
	if a.ID != b.ID ||
		a.ClientID != b.ClientID ||
		a.EquipmentTypeID != b.EquipmentTypeID ||
		a.BrandID != b.BrandID ||
		a.Model != b.Model ||
		a.ReportedProblem != b.ReportedProblem ||
		a.TechnicalNotes != b.TechnicalNotes ||
		a.StatusID != b.StatusID ||
		a.PaymentMethod != b.PaymentMethod {
		return false
	}
	if !a.AmountPaid.Equal(b.AmountPaid) {
		return false
	}
	if (a.DeliveryDate == nil) != (b.DeliveryDate == nil) {
		return false
	}
	if a.DeliveryDate != nil && !a.DeliveryDate.Equal(*b.DeliveryDate) {
		return false
	}
	return true
}

func itemsEqual(a, b []entities.OrderLineItem) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !itemEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func itemEqual(a, b entities.OrderLineItem) bool {
	return a.ID == b.ID &&
		a.Kind == b.Kind &&
		a.Description == b.Description &&
		a.Quantity == b.Quantity &&
		a.UnitPrice.Equal(b.UnitPrice) &&
		a.Discount.Equal(b.Discount) &&
		a.ProductID == b.ProductID &&
		a.ServiceID == b.ServiceID
}
