package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// Catalog entities are the read-only reference lists an order editor works
// against: products and services carry a suggested unit price, brands and
// equipment types are plain labels.
//
// Storage model (DynamoDB):
//   - PK: id (one table per entity)

type Product struct {
	ID        string          `json:"id"`
	Label     string          `json:"label"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CatalogService is a labor/service catalog entry ("Formatação",
// "Troca de tela", ...). Named to avoid colliding with use-case services.
type CatalogService struct {
	ID        string          `json:"id"`
	Label     string          `json:"label"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type Brand struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type EquipmentType struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
