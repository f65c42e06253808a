package request

import (
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/pkg"
)

// OrderItemRequest is one line item in the whole-payload order save.
//
// An empty `id` marks a row created in the current edit session; the server
// assigns the persisted id at save time. Monetary fields travel as integer
// cents: currency inputs track minor units and convert at the model
// boundary, never as floats.
type OrderItemRequest struct {
	ID             string `json:"id"`
	Kind           string `json:"kind" binding:"required"`
	Description    string `json:"description" binding:"required"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents" binding:"required"`
	DiscountCents  int64  `json:"discount_cents"`
	ProductID      string `json:"product_id"`
	ServiceID      string `json:"service_id"`
}

// ServiceOrderRequest is the editor's save payload: the order scalar fields
// plus the full replacement item list.
type ServiceOrderRequest struct {
	ID              string             `json:"id"`
	ClientID        string             `json:"client_id" binding:"required"`
	EquipmentTypeID string             `json:"equipment_type_id"`
	BrandID         string             `json:"brand_id"`
	Model           string             `json:"model"`
	ReportedProblem string             `json:"reported_problem"`
	TechnicalNotes  string             `json:"technical_notes"`
	StatusID        string             `json:"status_id"`
	AmountPaidCents int64              `json:"amount_paid_cents"`
	DeliveryDate    *time.Time         `json:"delivery_date"`
	Items           []OrderItemRequest `json:"items"`
}

// ToEntity converts the payload into the domain order, translating cents to
// decimal units. Line totals are left zero; the save path recomputes them.
func (r ServiceOrderRequest) ToEntity() entities.ServiceOrder {
	items := make([]entities.OrderLineItem, 0, len(r.Items))
	for _, it := range r.Items {
		item := entities.OrderLineItem{
			Kind:        entities.ItemKind(it.Kind),
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   pkg.CentsToDecimal(it.UnitPriceCents),
			Discount:    pkg.CentsToDecimal(it.DiscountCents),
			ProductID:   it.ProductID,
			ServiceID:   it.ServiceID,
		}
		if it.ID != "" {
			item.ID = entities.PersistedItemID(it.ID)
		}
		items = append(items, item)
	}

	return entities.ServiceOrder{
		ID:              r.ID,
		ClientID:        r.ClientID,
		EquipmentTypeID: r.EquipmentTypeID,
		BrandID:         r.BrandID,
		Model:           r.Model,
		ReportedProblem: r.ReportedProblem,
		TechnicalNotes:  r.TechnicalNotes,
		StatusID:        r.StatusID,
		AmountPaid:      pkg.CentsToDecimal(r.AmountPaidCents),
		DeliveryDate:    r.DeliveryDate,
		Items:           items,
	}
}
