package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemKind discriminates product and service line items.

type ItemKind string

const (
	ItemKindProduct ItemKind = "product"
	ItemKindService ItemKind = "service"
)

// ItemIDKind tags whether a line-item id was generated locally in an edit
// session or assigned by persistence.

type ItemIDKind string

const (
	ItemIDKindLocal     ItemIDKind = "local"
	ItemIDKindPersisted ItemIDKind = "persisted"
)

// ItemID is an explicit tagged identifier for order line items. The tag is
// decided at creation time; "is this item new" is never inferred from the
// shape of the id string.
type ItemID struct {
	Kind  ItemIDKind `json:"kind"`
	Value string     `json:"value"`
}

func NewLocalItemID() ItemID {
	return ItemID{Kind: ItemIDKindLocal, Value: uuid.NewString()}
}

func PersistedItemID(value string) ItemID {
	return ItemID{Kind: ItemIDKindPersisted, Value: value}
}

// IsNew reports whether the item has not been persisted yet.
func (id ItemID) IsNew() bool {
	return id.Kind == ItemIDKindLocal
}

func (id ItemID) IsZero() bool {
	return id.Value == ""
}

// OrderLineItem is one product or service entry attached to a service order.
//
// LineTotal is derived: Quantity*UnitPrice - Discount. It is recomputed by
// the ledger on every mutation and must never be stored independently of its
// inputs without recomputation.
type OrderLineItem struct {
	ID          ItemID          `json:"id"`
	Kind        ItemKind        `json:"kind"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"`
	LineTotal   decimal.Decimal `json:"line_total"`

	// Optional catalog back-references; mutually exclusive. Both empty for
	// free-text entries.
	ProductID string `json:"product_id,omitempty"`
	ServiceID string `json:"service_id,omitempty"`
}

// ComputedTotal returns Quantity*UnitPrice - Discount from the item inputs.
func (i OrderLineItem) ComputedTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity))).Sub(i.Discount)
}

// ServiceOrder is one repair/service engagement with a client.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (client_id-index): client_id
//   - items are stored inline on the order item; saves replace the full list
//
// All aggregate amounts are computed fresh from Items on every read. The
// persisted net_total attribute exists only as the save payload's summary.

type ServiceOrder struct {
	ID              string          `json:"id"`
	ClientID        string          `json:"client_id"`
	EquipmentTypeID string          `json:"equipment_type_id,omitempty"`
	BrandID         string          `json:"brand_id,omitempty"`
	Model           string          `json:"model,omitempty"`
	ReportedProblem string          `json:"reported_problem,omitempty"`
	TechnicalNotes  string          `json:"technical_notes,omitempty"`
	StatusID        string          `json:"status_id,omitempty"`
	AmountPaid      decimal.Decimal `json:"amount_paid"`
	PaymentMethod   string          `json:"payment_method,omitempty"`
	DeliveryDate    *time.Time      `json:"delivery_date,omitempty"`
	Items           []OrderLineItem `json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// GrossTotal is the sum of quantity*unit_price over items.
func (o ServiceOrder) GrossTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

// DiscountTotal is the sum of discounts over items.
func (o ServiceOrder) DiscountTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.Discount)
	}
	return total
}

// NetTotal is GrossTotal - DiscountTotal.
func (o ServiceOrder) NetTotal() decimal.Decimal {
	return o.GrossTotal().Sub(o.DiscountTotal())
}

// PendingBalance is NetTotal - AmountPaid. It may be negative on a draft
// with an overpaid up-front amount; only settlement clamps at zero.
func (o ServiceOrder) PendingBalance() decimal.Decimal {
	return o.NetTotal().Sub(o.AmountPaid)
}
