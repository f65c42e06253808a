package order

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"oficina_os/internal/domain/entities"
)

// Status resolution prefers the explicit taxonomy flags. Label-substring
// matching exists only as a compatibility fallback for externally seeded
// catalogs that carry labels without flags ("Aberta", "Parcial",
// "Finalizada", "Concluída"). Tokens are compared accent-folded and
// case-insensitive.
var (
	initialLabelTokens = []string{"abert"}
	partialLabelTokens = []string{"parcial"}
	finalLabelTokens   = []string{"finalizad", "concluid"}
)

// DefaultInitialStatus picks the status a new order is created with.
func DefaultInitialStatus(statuses []entities.OrderStatus) (entities.OrderStatus, bool) {
	return resolve(statuses, func(st entities.OrderStatus) bool { return st.IsInitial }, initialLabelTokens)
}

// ResolvePartialStatus picks the status for a partially paid order.
func ResolvePartialStatus(statuses []entities.OrderStatus) (entities.OrderStatus, bool) {
	return resolve(statuses, func(st entities.OrderStatus) bool { return st.IsPartial }, partialLabelTokens)
}

// ResolveFinalStatus picks the status for a fully paid order.
func ResolveFinalStatus(statuses []entities.OrderStatus) (entities.OrderStatus, bool) {
	return resolve(statuses, func(st entities.OrderStatus) bool { return st.IsFinal }, finalLabelTokens)
}

func resolve(statuses []entities.OrderStatus, flagged func(entities.OrderStatus) bool, tokens []string) (entities.OrderStatus, bool) {
	for _, st := range statuses {
		if flagged(st) {
			return st, true
		}
	}
	// Legacy fallback: accent-folded substring match on the label.
	for _, st := range statuses {
		label := foldLabel(st.Label)
		for _, token := range tokens {
			if strings.Contains(label, token) {
				return st, true
			}
		}
	}
	return entities.OrderStatus{}, false
}

var labelFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldLabel lowercases and strips combining marks so "Concluída" matches
// the token "concluid".
func foldLabel(s string) string {
	folded, _, err := transform.String(labelFolder, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
