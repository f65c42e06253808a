package response

import (
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/pkg"
)

type OrderItemResponse struct {
	ID             string `json:"id"`
	Kind           string `json:"kind"`
	Description    string `json:"description"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	DiscountCents  int64  `json:"discount_cents"`
	LineTotalCents int64  `json:"line_total_cents"`
	ProductID      string `json:"product_id,omitempty"`
	ServiceID      string `json:"service_id,omitempty"`
}

// ServiceOrderResponse carries the order plus every derived aggregate,
// computed fresh from the item list at response time.
type ServiceOrderResponse struct {
	ID                  string              `json:"id"`
	ClientID            string              `json:"client_id"`
	EquipmentTypeID     string              `json:"equipment_type_id,omitempty"`
	BrandID             string              `json:"brand_id,omitempty"`
	Model               string              `json:"model,omitempty"`
	ReportedProblem     string              `json:"reported_problem,omitempty"`
	TechnicalNotes      string              `json:"technical_notes,omitempty"`
	StatusID            string              `json:"status_id,omitempty"`
	AmountPaidCents     int64               `json:"amount_paid_cents"`
	PaymentMethod       string              `json:"payment_method,omitempty"`
	DeliveryDate        *time.Time          `json:"delivery_date,omitempty"`
	Items               []OrderItemResponse `json:"items"`
	GrossTotalCents     int64               `json:"gross_total_cents"`
	DiscountTotalCents  int64               `json:"discount_total_cents"`
	NetTotalCents       int64               `json:"net_total_cents"`
	PendingBalanceCents int64               `json:"pending_balance_cents"`
	CreatedAt           time.Time           `json:"created_at"`
	UpdatedAt           time.Time           `json:"updated_at"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ID:             it.ID.Value,
			Kind:           string(it.Kind),
			Description:    it.Description,
			Quantity:       it.Quantity,
			UnitPriceCents: pkg.DecimalToCents(it.UnitPrice),
			DiscountCents:  pkg.DecimalToCents(it.Discount),
			LineTotalCents: pkg.DecimalToCents(it.LineTotal),
			ProductID:      it.ProductID,
			ServiceID:      it.ServiceID,
		})
	}

	return ServiceOrderResponse{
		ID:                  o.ID,
		ClientID:            o.ClientID,
		EquipmentTypeID:     o.EquipmentTypeID,
		BrandID:             o.BrandID,
		Model:               o.Model,
		ReportedProblem:     o.ReportedProblem,
		TechnicalNotes:      o.TechnicalNotes,
		StatusID:            o.StatusID,
		AmountPaidCents:     pkg.DecimalToCents(o.AmountPaid),
		PaymentMethod:       o.PaymentMethod,
		DeliveryDate:        o.DeliveryDate,
		Items:               items,
		GrossTotalCents:     pkg.DecimalToCents(o.GrossTotal()),
		DiscountTotalCents:  pkg.DecimalToCents(o.DiscountTotal()),
		NetTotalCents:       pkg.DecimalToCents(o.NetTotal()),
		PendingBalanceCents: pkg.DecimalToCents(o.PendingBalance()),
		CreatedAt:           o.CreatedAt,
		UpdatedAt:           o.UpdatedAt,
	}
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}
