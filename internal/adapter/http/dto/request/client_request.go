package request

import "oficina_os/internal/domain/entities"

type ClientRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Document string `json:"document"`
}

func (r ClientRequest) ToEntity(id string) entities.Client {
	return entities.Client{
		ID:       id,
		Name:     r.Name,
		Phone:    r.Phone,
		Email:    r.Email,
		Document: r.Document,
	}
}
