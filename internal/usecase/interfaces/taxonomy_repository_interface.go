package interfaces

import (
	"context"

	"oficina_os/internal/domain/entities"
)

// IBrandRepository abstracts DynamoDB persistence for equipment brands.

type IBrandRepository interface {
	Create(ctx context.Context, b entities.Brand) (entities.Brand, error)
	GetByID(ctx context.Context, id string) (entities.Brand, error)
	List(ctx context.Context) ([]entities.Brand, error)
	Update(ctx context.Context, b entities.Brand) (entities.Brand, error)
	Delete(ctx context.Context, id string) error
}

// IEquipmentTypeRepository abstracts DynamoDB persistence for equipment types.

type IEquipmentTypeRepository interface {
	Create(ctx context.Context, e entities.EquipmentType) (entities.EquipmentType, error)
	GetByID(ctx context.Context, id string) (entities.EquipmentType, error)
	List(ctx context.Context) ([]entities.EquipmentType, error)
	Update(ctx context.Context, e entities.EquipmentType) (entities.EquipmentType, error)
	Delete(ctx context.Context, id string) error
}

// IStatusRepository abstracts DynamoDB persistence for the order status
// taxonomy.

type IStatusRepository interface {
	Create(ctx context.Context, s entities.OrderStatus) (entities.OrderStatus, error)
	GetByID(ctx context.Context, id string) (entities.OrderStatus, error)
	List(ctx context.Context) ([]entities.OrderStatus, error)
	Update(ctx context.Context, s entities.OrderStatus) (entities.OrderStatus, error)
	Delete(ctx context.Context, id string) error
}
