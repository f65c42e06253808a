package interfaces

import (
	"context"

	"oficina_os/internal/domain/entities"
)

// IProductRepository abstracts DynamoDB persistence for the product catalog.

type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}

// IServiceCatalogRepository abstracts DynamoDB persistence for the service
// (labor) catalog.

type IServiceCatalogRepository interface {
	Create(ctx context.Context, s entities.CatalogService) (entities.CatalogService, error)
	GetByID(ctx context.Context, id string) (entities.CatalogService, error)
	List(ctx context.Context) ([]entities.CatalogService, error)
	Update(ctx context.Context, s entities.CatalogService) (entities.CatalogService, error)
	Delete(ctx context.Context, id string) error
}
