package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
)

var (
	ErrClientNotFound  = errors.New("client not found")
	ErrInvalidClientID = errors.New("invalid client id")
	ErrClientName      = errors.New("client name is required")
)

// IClientUseCase covers the client registry. Name is the only required
// field; contact and document fields are free-form.
type IClientUseCase interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	Update(ctx context.Context, c entities.Client) (entities.Client, error)
	Delete(ctx context.Context, id string) error
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

func normalizeClient(c entities.Client) entities.Client {
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Email = strings.TrimSpace(c.Email)
	c.Document = strings.TrimSpace(c.Document)
	return c
}

func (u *ClientUseCase) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	c = normalizeClient(c)
	if c.Name == "" {
		return entities.Client{}, ErrClientName
	}
	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		log.Printf("[client][usecase] create failed name=%q err=%v", c.Name, err)
		return entities.Client{}, err
	}
	log.Printf("[client][usecase] created id=%s", created.ID)
	return created, nil
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}

func (u *ClientUseCase) Update(ctx context.Context, c entities.Client) (entities.Client, error) {
	c = normalizeClient(c)
	if strings.TrimSpace(c.ID) == "" {
		return entities.Client{}, ErrInvalidClientID
	}
	if c.Name == "" {
		return entities.Client{}, ErrClientName
	}
	current, err := u.GetByID(ctx, c.ID)
	if err != nil {
		return entities.Client{}, err
	}
	c.CreatedAt = current.CreatedAt
	c.UpdatedAt = time.Now().UTC()
	updated, err := u.repo.Update(ctx, c)
	if err != nil {
		log.Printf("[client][usecase] update failed id=%s err=%v", c.ID, err)
		return entities.Client{}, err
	}
	return updated, nil
}

func (u *ClientUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidClientID
	}
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	if err := u.repo.Delete(ctx, id); err != nil {
		log.Printf("[client][usecase] delete failed id=%s err=%v", id, err)
		return err
	}
	log.Printf("[client][usecase] deleted id=%s", id)
	return nil
}
