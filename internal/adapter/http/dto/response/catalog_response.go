package response

import (
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/pkg"
)

// CatalogEntryResponse serves both products and catalog services; the
// two entities share the same shape on the wire.
type CatalogEntryResponse struct {
	ID         string    `json:"id"`
	Label      string    `json:"label"`
	PriceCents int64     `json:"price_cents"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func FromProduct(p entities.Product) CatalogEntryResponse {
	return CatalogEntryResponse{
		ID:         p.ID,
		Label:      p.Label,
		PriceCents: pkg.DecimalToCents(p.Price),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func FromProducts(products []entities.Product) []CatalogEntryResponse {
	out := make([]CatalogEntryResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

func FromCatalogService(s entities.CatalogService) CatalogEntryResponse {
	return CatalogEntryResponse{
		ID:         s.ID,
		Label:      s.Label,
		PriceCents: pkg.DecimalToCents(s.Price),
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
	}
}

func FromCatalogServices(services []entities.CatalogService) []CatalogEntryResponse {
	out := make([]CatalogEntryResponse, 0, len(services))
	for _, s := range services {
		out = append(out, FromCatalogService(s))
	}
	return out
}
