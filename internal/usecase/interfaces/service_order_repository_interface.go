package interfaces

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"oficina_os/internal/domain/entities"
)

// OrderSettlementFields is the partial update pushed by the settlement path.
// Only these fields are touched on the order row; an empty StatusID leaves
// the current status in place.
type OrderSettlementFields struct {
	AmountPaid    decimal.Decimal
	AmountPending decimal.Decimal
	PaymentMethod string
	DeliveryDate  time.Time
	StatusID      string
}

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// The repository must:
//   - save order and full item list atomically, replacing the prior set
//     (items live inline on the order item, so the put is the replace)
//   - apply the settlement partial update conditionally on existence
//   - answer usage counts so taxonomy deletes can surface integrity
//     violations

type IServiceOrderRepository interface {
	SaveWithItems(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.ServiceOrder, error)
	UpdateFields(ctx context.Context, id string, fields OrderSettlementFields) (entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error

	CountByClientID(ctx context.Context, clientID string) (int, error)
	CountByBrandID(ctx context.Context, brandID string) (int, error)
	CountByEquipmentTypeID(ctx context.Context, equipmentTypeID string) (int, error)
	CountByStatusID(ctx context.Context, statusID string) (int, error)
}
