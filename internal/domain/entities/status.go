package entities

import "time"

// OrderStatus is one entry of the order status taxonomy ("Aberta",
// "Parcial", "Finalizada", ...).
//
// The boolean flags are the primary classification used by settlement and
// by new-order defaulting. Externally seeded catalogs may carry labels only;
// for those the domain falls back to label matching (see domain/order).
//
// Storage model (DynamoDB):
//   - PK: id

type OrderStatus struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	IsInitial bool      `json:"is_initial"`
	IsPartial bool      `json:"is_partial"`
	IsFinal   bool      `json:"is_final"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
