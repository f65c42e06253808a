package response

import (
	"oficina_os/internal/usecase"
	"oficina_os/pkg"
)

type StatusCountResponse struct {
	StatusID string `json:"status_id"`
	Label    string `json:"label"`
	Count    int    `json:"count"`
}

type DashboardResponse struct {
	TotalOrders        int                   `json:"total_orders"`
	StatusCounts       []StatusCountResponse `json:"status_counts"`
	AmountPaidCents    int64                 `json:"amount_paid_cents"`
	AmountPendingCents int64                 `json:"amount_pending_cents"`
	ExpenseTotalCents  int64                 `json:"expense_total_cents"`
	NetIncomeCents     int64                 `json:"net_income_cents"`
}

func FromDashboard(d usecase.Dashboard) DashboardResponse {
	counts := make([]StatusCountResponse, 0, len(d.StatusCounts))
	for _, c := range d.StatusCounts {
		counts = append(counts, StatusCountResponse{StatusID: c.StatusID, Label: c.Label, Count: c.Count})
	}

	return DashboardResponse{
		TotalOrders:        d.TotalOrders,
		StatusCounts:       counts,
		AmountPaidCents:    pkg.DecimalToCents(d.AmountPaid),
		AmountPendingCents: pkg.DecimalToCents(d.AmountPending),
		ExpenseTotalCents:  pkg.DecimalToCents(d.ExpenseTotal),
		NetIncomeCents:     pkg.DecimalToCents(d.NetIncome),
	}
}

// OrderCoverResponse is the printable front page of an order: the order
// itself, its client, and the taxonomy labels already resolved.
type OrderCoverResponse struct {
	Order               ServiceOrderResponse `json:"order"`
	Client              ClientResponse       `json:"client"`
	BrandLabel          string               `json:"brand_label,omitempty"`
	EquipmentTypeLabel  string               `json:"equipment_type_label,omitempty"`
	StatusLabel         string               `json:"status_label,omitempty"`
	GrossTotalCents     int64                `json:"gross_total_cents"`
	DiscountTotalCents  int64                `json:"discount_total_cents"`
	NetTotalCents       int64                `json:"net_total_cents"`
	PendingBalanceCents int64                `json:"pending_balance_cents"`
}

func FromOrderCover(c usecase.OrderCover) OrderCoverResponse {
	return OrderCoverResponse{
		Order:               FromServiceOrder(c.Order),
		Client:              FromClient(c.Client),
		BrandLabel:          c.BrandLabel,
		EquipmentTypeLabel:  c.EquipmentTypeLabel,
		StatusLabel:         c.StatusLabel,
		GrossTotalCents:     pkg.DecimalToCents(c.GrossTotal),
		DiscountTotalCents:  pkg.DecimalToCents(c.DiscountTotal),
		NetTotalCents:       pkg.DecimalToCents(c.NetTotal),
		PendingBalanceCents: pkg.DecimalToCents(c.PendingBalance),
	}
}

type ClientReportRowResponse struct {
	Client       ClientResponse `json:"client"`
	OrderCount   int            `json:"order_count"`
	RevenueCents int64          `json:"revenue_cents"`
	PendingCents int64          `json:"pending_cents"`
}

func FromClientReport(rows []usecase.ClientReportRow) []ClientReportRowResponse {
	out := make([]ClientReportRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ClientReportRowResponse{
			Client:       FromClient(r.Client),
			OrderCount:   r.OrderCount,
			RevenueCents: pkg.DecimalToCents(r.Revenue),
			PendingCents: pkg.DecimalToCents(r.Pending),
		})
	}
	return out
}
