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
	ErrProductNotFound        = errors.New("product not found")
	ErrCatalogServiceNotFound = errors.New("catalog service not found")
	ErrInvalidCatalogID       = errors.New("invalid catalog id")
	ErrCatalogLabel           = errors.New("catalog label is required")
	ErrCatalogPrice           = errors.New("catalog price must be positive")
)

// ICatalogUseCase manages the two reusable price lists: parts (products)
// and labor (services). Entries only seed new order line items; editing an
// entry never touches lines already written to an order.
type ICatalogUseCase interface {
	CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	GetProductByID(ctx context.Context, id string) (entities.Product, error)
	ListProducts(ctx context.Context) ([]entities.Product, error)
	UpdateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	DeleteProduct(ctx context.Context, id string) error

	CreateService(ctx context.Context, s entities.CatalogService) (entities.CatalogService, error)
	GetServiceByID(ctx context.Context, id string) (entities.CatalogService, error)
	ListServices(ctx context.Context) ([]entities.CatalogService, error)
	UpdateService(ctx context.Context, s entities.CatalogService) (entities.CatalogService, error)
	DeleteService(ctx context.Context, id string) error
}

type CatalogUseCase struct {
	products interfaces.IProductRepository
	services interfaces.IServiceCatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(products interfaces.IProductRepository, services interfaces.IServiceCatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, services: services}
}

func (u *CatalogUseCase) CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.Label = strings.TrimSpace(p.Label)
	if p.Label == "" {
		return entities.Product{}, ErrCatalogLabel
	}
	if !p.Price.IsPositive() {
		return entities.Product{}, ErrCatalogPrice
	}
	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	created, err := u.products.Create(ctx, p)
	if err != nil {
		log.Printf("[catalog][usecase] product create failed label=%q err=%v", p.Label, err)
		return entities.Product{}, err
	}
	log.Printf("[catalog][usecase] product created id=%s", created.ID)
	return created, nil
}

func (u *CatalogUseCase) GetProductByID(ctx context.Context, id string) (entities.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Product{}, ErrInvalidCatalogID
	}
	p, err := u.products.GetByID(ctx, id)
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *CatalogUseCase) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return u.products.List(ctx)
}

func (u *CatalogUseCase) UpdateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.Label = strings.TrimSpace(p.Label)
	if strings.TrimSpace(p.ID) == "" {
		return entities.Product{}, ErrInvalidCatalogID
	}
	if p.Label == "" {
		return entities.Product{}, ErrCatalogLabel
	}
	if !p.Price.IsPositive() {
		return entities.Product{}, ErrCatalogPrice
	}
	current, err := u.GetProductByID(ctx, p.ID)
	if err != nil {
		return entities.Product{}, err
	}
	p.CreatedAt = current.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	return u.products.Update(ctx, p)
}

func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCatalogID
	}
	if _, err := u.GetProductByID(ctx, id); err != nil {
		return err
	}
	return u.products.Delete(ctx, id)
}

func (u *CatalogUseCase) CreateService(ctx context.Context, s entities.CatalogService) (entities.CatalogService, error) {
	s.Label = strings.TrimSpace(s.Label)
	if s.Label == "" {
		return entities.CatalogService{}, ErrCatalogLabel
	}
	if !s.Price.IsPositive() {
		return entities.CatalogService{}, ErrCatalogPrice
	}
	now := time.Now().UTC()
	s.ID = uuid.NewString()
	s.CreatedAt = now
	s.UpdatedAt = now
	created, err := u.services.Create(ctx, s)
	if err != nil {
		log.Printf("[catalog][usecase] service create failed label=%q err=%v", s.Label, err)
		return entities.CatalogService{}, err
	}
	log.Printf("[catalog][usecase] service created id=%s", created.ID)
	return created, nil
}

func (u *CatalogUseCase) GetServiceByID(ctx context.Context, id string) (entities.CatalogService, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.CatalogService{}, ErrInvalidCatalogID
	}
	s, err := u.services.GetByID(ctx, id)
	if err != nil {
		return entities.CatalogService{}, err
	}
	if s.ID == "" {
		return entities.CatalogService{}, ErrCatalogServiceNotFound
	}
	return s, nil
}

func (u *CatalogUseCase) ListServices(ctx context.Context) ([]entities.CatalogService, error) {
	return u.services.List(ctx)
}

func (u *CatalogUseCase) UpdateService(ctx context.Context, s entities.CatalogService) (entities.CatalogService, error) {
	s.Label = strings.TrimSpace(s.Label)
	if strings.TrimSpace(s.ID) == "" {
		return entities.CatalogService{}, ErrInvalidCatalogID
	}
	if s.Label == "" {
		return entities.CatalogService{}, ErrCatalogLabel
	}
	if !s.Price.IsPositive() {
		return entities.CatalogService{}, ErrCatalogPrice
	}
	current, err := u.GetServiceByID(ctx, s.ID)
	if err != nil {
		return entities.CatalogService{}, err
	}
	s.CreatedAt = current.CreatedAt
	s.UpdatedAt = time.Now().UTC()
	return u.services.Update(ctx, s)
}

func (u *CatalogUseCase) DeleteService(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidCatalogID
	}
	if _, err := u.GetServiceByID(ctx, id); err != nil {
		return err
	}
	return u.services.Delete(ctx, id)
}
