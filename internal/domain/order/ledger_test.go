package order

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"oficina_os/internal/domain/entities"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testCatalog() Catalog {
	return Catalog{
		Products: []entities.Product{
			{ID: "prod-1", Label: "SSD 1TB", Price: dec("350")},
			{ID: "prod-2", Label: "Fonte 500W", Price: dec("220.90")},
		},
		Services: []entities.CatalogService{
			{ID: "serv-1", Label: "Formatação", Price: dec("80")},
		},
	}
}

func TestLedger_AddItem(t *testing.T) {
	t.Run("rejects empty description", func(t *testing.T) {
		l := NewLedger(testCatalog(), nil)
		_, err := l.AddItem(ItemCandidate{Description: "   ", UnitPrice: dec("10")})
		if !errors.Is(err, ErrMissingDescription) {
			t.Fatalf("expected ErrMissingDescription, got %v", err)
		}
		if len(l.Items()) != 0 {
			t.Fatalf("collection must be unchanged after rejection")
		}
	})

	t.Run("rejects zero unit price", func(t *testing.T) {
		l := NewLedger(testCatalog(), nil)
		_, err := l.AddItem(ItemCandidate{Description: "Limpeza", UnitPrice: decimal.Zero})
		if !errors.Is(err, ErrMissingUnitPrice) {
			t.Fatalf("expected ErrMissingUnitPrice, got %v", err)
		}
		if len(l.Items()) != 0 {
			t.Fatalf("collection must be unchanged after rejection")
		}
	})

	t.Run("rejects item referencing both catalogs", func(t *testing.T) {
		l := NewLedger(testCatalog(), nil)
		_, err := l.AddItem(ItemCandidate{
			Description: "SSD 1TB",
			UnitPrice:   dec("350"),
			ProductID:   "prod-1",
			ServiceID:   "serv-1",
		})
		if !errors.Is(err, ErrConflictingReference) {
			t.Fatalf("expected ErrConflictingReference, got %v", err)
		}
		if len(l.Items()) != 0 {
			t.Fatalf("collection must be unchanged after rejection")
		}
	})

	t.Run("defaults quantity to 1 and assigns local id", func(t *testing.T) {
		l := NewLedger(testCatalog(), nil)
		item, err := l.AddItem(ItemCandidate{
			Kind:        entities.ItemKindService,
			Description: "Formatação",
			UnitPrice:   dec("80"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if item.Quantity != 1 {
			t.Fatalf("expected default quantity 1, got %d", item.Quantity)
		}
		if !item.ID.IsNew() || item.ID.Value == "" {
			t.Fatalf("expected fresh local id, got %+v", item.ID)
		}
		if !item.LineTotal.Equal(dec("80")) {
			t.Fatalf("expected line total 80, got %s", item.LineTotal)
		}
	})

	t.Run("line total invariant", func(t *testing.T) {
		l := NewLedger(testCatalog(), nil)
		item, err := l.AddItem(ItemCandidate{
			Kind:        entities.ItemKindProduct,
			Description: "SSD 1TB",
			Quantity:    3,
			UnitPrice:   dec("350"),
			Discount:    dec("50"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !item.LineTotal.Equal(dec("1000")) {
			t.Fatalf("expected 3*350-50 = 1000, got %s", item.LineTotal)
		}
	})
}

func TestLedger_UpdateItem(t *testing.T) {
	t.Run("unknown id", func(t *testing.T) {
		l := NewLedger(testCatalog(), nil)
		_, err := l.UpdateItem(entities.NewLocalItemID(), ItemPatch{})
		if !errors.Is(err, ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("recomputes line total on formula fields", func(t *testing.T) {
		l := NewLedger(testCatalog(), nil)
		item, err := l.AddItem(ItemCandidate{Description: "SSD 1TB", Quantity: 1, UnitPrice: dec("350")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		qty := 2
		discount := dec("30")
		updated, err := l.UpdateItem(item.ID, ItemPatch{Quantity: &qty, Discount: &discount})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.LineTotal.Equal(dec("670")) {
			t.Fatalf("expected 2*350-30 = 670, got %s", updated.LineTotal)
		}

		price := dec("300")
		updated, err = l.UpdateItem(item.ID, ItemPatch{UnitPrice: &price})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !updated.LineTotal.Equal(dec("570")) {
			t.Fatalf("expected 2*300-30 = 570, got %s", updated.LineTotal)
		}
	})

	t.Run("description change keeps total", func(t *testing.T) {
		l := NewLedger(testCatalog(), nil)
		item, _ := l.AddItem(ItemCandidate{Description: "SSD", Quantity: 2, UnitPrice: dec("100"), Discount: dec("10")})

		desc := "SSD NVMe"
		updated, err := l.UpdateItem(item.ID, ItemPatch{Description: &desc})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Description != "SSD NVMe" || !updated.LineTotal.Equal(dec("190")) {
			t.Fatalf("unexpected item after description update: %+v", updated)
		}
	})
}

func TestLedger_RemoveItem(t *testing.T) {
	l := NewLedger(testCatalog(), nil)
	first, _ := l.AddItem(ItemCandidate{Description: "SSD", UnitPrice: dec("350")})
	second, _ := l.AddItem(ItemCandidate{Description: "Formatação", UnitPrice: dec("80")})

	if err := l.RemoveItem(first.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := l.Items()
	if len(items) != 1 || items[0].ID != second.ID {
		t.Fatalf("unexpected items after removal: %+v", items)
	}

	if err := l.RemoveItem(first.ID); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound on repeated removal, got %v", err)
	}
}

func TestLedger_StageFromCatalog(t *testing.T) {
	t.Run("unknown entry", func(t *testing.T) {
		l := NewLedger(testCatalog(), nil)
		_, err := l.StageFromCatalog(entities.ItemKindProduct, "missing")
		if !errors.Is(err, ErrCatalogEntryNotFound) {
			t.Fatalf("expected ErrCatalogEntryNotFound, got %v", err)
		}
	})

	t.Run("stage then commit", func(t *testing.T) {
		l := NewLedger(testCatalog(), nil)
		c, err := l.StageFromCatalog(entities.ItemKindService, "serv-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Description != "Formatação" || !c.UnitPrice.Equal(dec("80")) || c.ServiceID != "serv-1" {
			t.Fatalf("unexpected staged candidate: %+v", c)
		}
		if len(l.Items()) != 0 {
			t.Fatalf("staging must not add a line item")
		}

		// The user can adjust the selection before committing.
		c.Discount = dec("10")
		l.SetCandidate(c)

		item, err := l.AddStaged()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !item.LineTotal.Equal(dec("70")) {
			t.Fatalf("expected 80-10 = 70, got %s", item.LineTotal)
		}
		if _, ok := l.Candidate(); ok {
			t.Fatalf("stage must be cleared after commit")
		}
	})

	t.Run("commit without stage", func(t *testing.T) {
		l := NewLedger(testCatalog(), nil)
		if _, err := l.AddStaged(); !errors.Is(err, ErrNoStagedCandidate) {
			t.Fatalf("expected ErrNoStagedCandidate, got %v", err)
		}
	})
}

func TestLedger_AggregatesAlwaysFresh(t *testing.T) {
	l := NewLedger(testCatalog(), nil)
	item, _ := l.AddItem(ItemCandidate{Description: "SSD", Quantity: 2, UnitPrice: dec("100")})

	if got := l.Totals(); !got.Net.Equal(dec("200")) {
		t.Fatalf("expected net 200, got %s", got.Net)
	}

	// Mutate and re-read without any explicit recalculate call.
	discount := dec("25")
	if _, err := l.UpdateItem(item.ID, ItemPatch{Discount: &discount}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := l.Totals()
	if !got.Gross.Equal(dec("200")) || !got.Discount.Equal(dec("25")) || !got.Net.Equal(dec("175")) {
		t.Fatalf("unexpected aggregates: %+v", got)
	}

	if err := l.RemoveItem(item.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := l.Totals(); !got.Net.Equal(decimal.Zero) {
		t.Fatalf("expected net 0 after removal, got %s", got.Net)
	}
}

func TestLedger_EndToEndScenario(t *testing.T) {
	l := NewLedger(testCatalog(), nil)

	if _, err := l.AddItem(ItemCandidate{
		Kind:        entities.ItemKindProduct,
		Description: "SSD 1TB",
		Quantity:    1,
		UnitPrice:   dec("350"),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := l.AddItem(ItemCandidate{
		Kind:        entities.ItemKindService,
		Description: "Formatação",
		Quantity:    1,
		UnitPrice:   dec("80"),
		Discount:    dec("10"),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := l.Totals()
	if !got.Gross.Equal(dec("430")) || !got.Discount.Equal(dec("10")) || !got.Net.Equal(dec("420")) {
		t.Fatalf("unexpected aggregates: gross=%s discount=%s net=%s", got.Gross, got.Discount, got.Net)
	}
	if pending := l.PendingBalance(dec("100")); !pending.Equal(dec("320")) {
		t.Fatalf("expected pending 320, got %s", pending)
	}
}
