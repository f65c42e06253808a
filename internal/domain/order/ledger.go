package order

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"oficina_os/internal/domain/entities"
)

var (
	ErrMissingDescription   = errors.New("line item description is required")
	ErrMissingUnitPrice     = errors.New("line item unit price is required")
	ErrConflictingReference = errors.New("line item references both a product and a service")
	ErrItemNotFound         = errors.New("line item not found")
	ErrCatalogEntryNotFound = errors.New("catalog entry not found")
	ErrNoStagedCandidate    = errors.New("no staged candidate")
)

// Catalog is the immutable snapshot of product/service reference lists the
// ledger stages candidates from. It is fetched once per edit session and not
// refreshed mid-session.
type Catalog struct {
	Products []entities.Product
	Services []entities.CatalogService
}

// ItemCandidate is the not-yet-committed input for a new line item: either a
// staged catalog selection or a free-text entry typed by the user.
type ItemCandidate struct {
	Kind        entities.ItemKind
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	Discount    decimal.Decimal
	ProductID   string
	ServiceID   string
}

// ItemPatch is a partial line-item update. Nil fields are left untouched.
type ItemPatch struct {
	Kind        *entities.ItemKind
	Description *string
	Quantity    *int
	UnitPrice   *decimal.Decimal
	Discount    *decimal.Decimal
}

// Aggregates holds the order totals derived from the current item list.
type Aggregates struct {
	Gross    decimal.Decimal
	Discount decimal.Decimal
	Net      decimal.Decimal
}

// Ledger owns the in-memory line-item collection of the order being edited
// and keeps every derived amount consistent with its current contents.
//
// Validation failures never mutate state: callers receive an explicit
// rejection error and decide whether to surface it. Aggregates are always
// computed fresh from the live collection, never cached.
type Ledger struct {
	catalog Catalog
	items   []entities.OrderLineItem
	staged  *ItemCandidate
}

// NewLedger creates a ledger over a catalog snapshot, seeded with the
// order's existing items. LineTotal of every seeded item is recomputed so
// the derived-field invariant holds from the first read.
func NewLedger(catalog Catalog, existing []entities.OrderLineItem) *Ledger {
	items := make([]entities.OrderLineItem, len(existing))
	copy(items, existing)
	for i := range items {
		items[i].LineTotal = items[i].ComputedTotal()
	}
	return &Ledger{catalog: catalog, items: items}
}

// AddItem validates the candidate and appends it as a new line item with a
// fresh local id. A zero unit price is rejected as missing: the legacy
// system treated it that way and whether a free zero-price line (e.g. a
// warranty service) should be allowed is an open product question.
func (l *Ledger) AddItem(c ItemCandidate) (entities.OrderLineItem, error) {
	if strings.TrimSpace(c.Description) == "" {
		return entities.OrderLineItem{}, ErrMissingDescription
	}
	if !c.UnitPrice.IsPositive() {
		return entities.OrderLineItem{}, ErrMissingUnitPrice
	}
	// Catalog back-references are mutually exclusive; free-text entries
	// carry neither.
	if c.ProductID != "" && c.ServiceID != "" {
		return entities.OrderLineItem{}, ErrConflictingReference
	}

	qty := c.Quantity
	if qty <= 0 {
		qty = 1
	}

	item := entities.OrderLineItem{
		ID:          entities.NewLocalItemID(),
		Kind:        c.Kind,
		Description: strings.TrimSpace(c.Description),
		Quantity:    qty,
		UnitPrice:   c.UnitPrice,
		Discount:    c.Discount,
		ProductID:   c.ProductID,
		ServiceID:   c.ServiceID,
	}
	item.LineTotal = item.ComputedTotal()

	l.items = append(l.items, item)
	return item, nil
}

// StageFromCatalog looks up a catalog entry and stages a candidate
// pre-filled with its description and price. It does not add a line item;
// the user may still change the selection before committing via AddStaged.
func (l *Ledger) StageFromCatalog(kind entities.ItemKind, entryID string) (ItemCandidate, error) {
	switch kind {
	case entities.ItemKindProduct:
		for _, p := range l.catalog.Products {
			if p.ID == entryID {
				c := ItemCandidate{
					Kind:        entities.ItemKindProduct,
					Description: p.Label,
					Quantity:    1,
					UnitPrice:   p.Price,
					ProductID:   p.ID,
				}
				l.staged = &c
				return c, nil
			}
		}
	case entities.ItemKindService:
		for _, s := range l.catalog.Services {
			if s.ID == entryID {
				c := ItemCandidate{
					Kind:        entities.ItemKindService,
					Description: s.Label,
					Quantity:    1,
					UnitPrice:   s.Price,
					ServiceID:   s.ID,
				}
				l.staged = &c
				return c, nil
			}
		}
	}
	return ItemCandidate{}, ErrCatalogEntryNotFound
}

// Candidate returns the currently staged candidate, if any.
func (l *Ledger) Candidate() (ItemCandidate, bool) {
	if l.staged == nil {
		return ItemCandidate{}, false
	}
	return *l.staged, true
}

// SetCandidate replaces the staged candidate, letting callers adjust a
// catalog selection (quantity, discount) before committing it.
func (l *Ledger) SetCandidate(c ItemCandidate) {
	l.staged = &c
}

// AddStaged commits the staged candidate as a line item and clears the
// stage. The stage survives a rejected commit so the user can correct it.
func (l *Ledger) AddStaged() (entities.OrderLineItem, error) {
	if l.staged == nil {
		return entities.OrderLineItem{}, ErrNoStagedCandidate
	}
	item, err := l.AddItem(*l.staged)
	if err != nil {
		return entities.OrderLineItem{}, err
	}
	l.staged = nil
	return item, nil
}

// UpdateItem applies a partial update to an existing item. LineTotal is
// recomputed whenever a field of the total formula changes, so the derived
// invariant is never observable as violated between calls.
func (l *Ledger) UpdateItem(id entities.ItemID, patch ItemPatch) (entities.OrderLineItem, error) {
	idx := l.indexOf(id)
	if idx < 0 {
		return entities.OrderLineItem{}, ErrItemNotFound
	}

	item := l.items[idx]
	if patch.Kind != nil {
		item.Kind = *patch.Kind
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	recompute := false
	if patch.Quantity != nil {
		item.Quantity = *patch.Quantity
		recompute = true
	}
	if patch.UnitPrice != nil {
		item.UnitPrice = *patch.UnitPrice
		recompute = true
	}
	if patch.Discount != nil {
		item.Discount = *patch.Discount
		recompute = true
	}
	if recompute {
		item.LineTotal = item.ComputedTotal()
	}

	l.items[idx] = item
	return item, nil
}

// RemoveItem removes an existing item by id.
func (l *Ledger) RemoveItem(id entities.ItemID) error {
	idx := l.indexOf(id)
	if idx < 0 {
		return ErrItemNotFound
	}
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	return nil
}

// Items returns a copy of the current line-item collection in insertion
// order.
func (l *Ledger) Items() []entities.OrderLineItem {
	out := make([]entities.OrderLineItem, len(l.items))
	copy(out, l.items)
	return out
}

// Totals computes the aggregate amounts fresh from the current collection.
func (l *Ledger) Totals() Aggregates {
	gross := decimal.Zero
	discount := decimal.Zero
	for _, it := range l.items {
		gross = gross.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
		discount = discount.Add(it.Discount)
	}
	return Aggregates{
		Gross:    gross,
		Discount: discount,
		Net:      gross.Sub(discount),
	}
}

// PendingBalance is the net total minus the given up-front paid amount.
func (l *Ledger) PendingBalance(amountPaid decimal.Decimal) decimal.Decimal {
	return l.Totals().Net.Sub(amountPaid)
}

func (l *Ledger) indexOf(id entities.ItemID) int {
	for i, it := range l.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}
