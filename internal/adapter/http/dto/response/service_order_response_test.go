package response

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"oficina_os/internal/domain/entities"
)

func TestFromServiceOrder(t *testing.T) {
	now := time.Now().UTC()
	o := entities.ServiceOrder{
		ID:         "os-1",
		ClientID:   "client-1",
		StatusID:   "st-open",
		AmountPaid: decimal.RequireFromString("40"),
		Items: []entities.OrderLineItem{
			{
				ID:          entities.PersistedItemID("item-1"),
				Kind:        entities.ItemKindProduct,
				Description: "Tela 15.6",
				Quantity:    2,
				UnitPrice:   decimal.RequireFromString("350"),
				Discount:    decimal.RequireFromString("50"),
				LineTotal:   decimal.RequireFromString("650"),
				ProductID:   "prod-1",
			},
			{
				ID:          entities.PersistedItemID("item-2"),
				Kind:        entities.ItemKindService,
				Description: "Formatação",
				Quantity:    1,
				UnitPrice:   decimal.RequireFromString("80"),
				LineTotal:   decimal.RequireFromString("80"),
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromServiceOrder(o)
	if res.ID != "os-1" || res.ClientID != "client-1" || res.StatusID != "st-open" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if len(res.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(res.Items))
	}
	if res.Items[0].ID != "item-1" || res.Items[0].Kind != "product" || res.Items[0].LineTotalCents != 65000 {
		t.Fatalf("unexpected first item: %+v", res.Items[0])
	}
	if res.GrossTotalCents != 78000 || res.DiscountTotalCents != 5000 || res.NetTotalCents != 73000 {
		t.Fatalf("unexpected totals: %+v", res)
	}
	if res.AmountPaidCents != 4000 || res.PendingBalanceCents != 69000 {
		t.Fatalf("unexpected balance fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}
