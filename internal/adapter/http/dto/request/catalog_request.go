package request

import (
	"oficina_os/internal/domain/entities"
	"oficina_os/pkg"
)

// CatalogEntryRequest covers both catalog tables (products and services):
// a labeled price in integer cents.
type CatalogEntryRequest struct {
	Label      string `json:"label" binding:"required"`
	PriceCents int64  `json:"price_cents" binding:"required"`
}

func (r CatalogEntryRequest) ToProduct(id string) entities.Product {
	return entities.Product{
		ID:    id,
		Label: r.Label,
		Price: pkg.CentsToDecimal(r.PriceCents),
	}
}

func (r CatalogEntryRequest) ToCatalogService(id string) entities.CatalogService {
	return entities.CatalogService{
		ID:    id,
		Label: r.Label,
		Price: pkg.CentsToDecimal(r.PriceCents),
	}
}
