package response

import (
	"time"

	"oficina_os/internal/domain/entities"
)

// LabelResponse serves brands and equipment types.
type LabelResponse struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromBrand(b entities.Brand) LabelResponse {
	return LabelResponse{ID: b.ID, Label: b.Label, CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
}

func FromBrands(brands []entities.Brand) []LabelResponse {
	out := make([]LabelResponse, 0, len(brands))
	for _, b := range brands {
		out = append(out, FromBrand(b))
	}
	return out
}

func FromEquipmentType(e entities.EquipmentType) LabelResponse {
	return LabelResponse{ID: e.ID, Label: e.Label, CreatedAt: e.CreatedAt, UpdatedAt: e.UpdatedAt}
}

func FromEquipmentTypes(types []entities.EquipmentType) []LabelResponse {
	out := make([]LabelResponse, 0, len(types))
	for _, e := range types {
		out = append(out, FromEquipmentType(e))
	}
	return out
}

type StatusResponse struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	IsInitial bool      `json:"is_initial"`
	IsPartial bool      `json:"is_partial"`
	IsFinal   bool      `json:"is_final"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromOrderStatus(s entities.OrderStatus) StatusResponse {
	return StatusResponse{
		ID:        s.ID,
		Label:     s.Label,
		IsInitial: s.IsInitial,
		IsPartial: s.IsPartial,
		IsFinal:   s.IsFinal,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func FromOrderStatuses(statuses []entities.OrderStatus) []StatusResponse {
	out := make([]StatusResponse, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, FromOrderStatus(s))
	}
	return out
}
