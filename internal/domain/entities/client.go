package entities

import "time"

// Client is a repair-shop customer.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Clients are the only required reference on a service order: an order
// cannot be saved without one.

type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	Document  string    `json:"document,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
