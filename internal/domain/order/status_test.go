package order

import (
	"testing"

	"oficina_os/internal/domain/entities"
)

func TestDefaultInitialStatus(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		statuses := []entities.OrderStatus{
			{ID: "st-1", Label: "Recebida", IsInitial: true},
			{ID: "st-2", Label: "Aberta"},
		}
		st, ok := DefaultInitialStatus(statuses)
		if !ok || st.ID != "st-1" {
			t.Fatalf("expected flagged initial status, got %+v ok=%v", st, ok)
		}
	})

	t.Run("label fallback", func(t *testing.T) {
		statuses := []entities.OrderStatus{
			{ID: "st-1", Label: "Finalizada"},
			{ID: "st-2", Label: "Aberta"},
		}
		st, ok := DefaultInitialStatus(statuses)
		if !ok || st.ID != "st-2" {
			t.Fatalf("expected Aberta by label, got %+v ok=%v", st, ok)
		}
	})

	t.Run("no match", func(t *testing.T) {
		if _, ok := DefaultInitialStatus([]entities.OrderStatus{{ID: "st-1", Label: "Entregue"}}); ok {
			t.Fatalf("expected no match")
		}
	})
}

func TestFoldLabel(t *testing.T) {
	cases := map[string]string{
		"Concluída":  "concluida",
		"FINALIZADA": "finalizada",
		"Em Análise": "em analise",
	}
	for in, want := range cases {
		if got := foldLabel(in); got != want {
			t.Fatalf("foldLabel(%q) = %q, want %q", in, got, want)
		}
	}
}
