package request

import "oficina_os/internal/domain/entities"

type LabelRequest struct {
	Label string `json:"label" binding:"required"`
}

func (r LabelRequest) ToBrand(id string) entities.Brand {
	return entities.Brand{ID: id, Label: r.Label}
}

func (r LabelRequest) ToEquipmentType(id string) entities.EquipmentType {
	return entities.EquipmentType{ID: id, Label: r.Label}
}

// StatusRequest carries the label plus the classification flags used by
// new-order defaulting and settlement status resolution.
type StatusRequest struct {
	Label     string `json:"label" binding:"required"`
	IsInitial bool   `json:"is_initial"`
	IsPartial bool   `json:"is_partial"`
	IsFinal   bool   `json:"is_final"`
}

func (r StatusRequest) ToEntity(id string) entities.OrderStatus {
	return entities.OrderStatus{
		ID:        id,
		Label:     r.Label,
		IsInitial: r.IsInitial,
		IsPartial: r.IsPartial,
		IsFinal:   r.IsFinal,
	}
}
