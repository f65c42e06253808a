package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/domain/order"
	"oficina_os/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound  = errors.New("service order not found")
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrClientRequired = errors.New("client is required")
	ErrInvalidItem    = errors.New("invalid line item")
)

// IServiceOrderUseCase exposes service order operations.
//
// SaveWithItems is the single whole-payload save: the item list always
// replaces the order's prior set, totals are recomputed server-side through
// the ledger, and the returned order carries the authoritative amounts.

type IServiceOrderUseCase interface {
	SaveWithItems(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error)
	GetByID(ctx context.Context, id string) (entities.ServiceOrder, error)
	List(ctx context.Context) ([]entities.ServiceOrder, error)
	ListByClientID(ctx context.Context, clientID string) ([]entities.ServiceOrder, error)
	Delete(ctx context.Context, id string) error
}

type ServiceOrderUseCase struct {
	repo       interfaces.IServiceOrderRepository
	statusRepo interfaces.IStatusRepository
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(repo interfaces.IServiceOrderRepository, statusRepo interfaces.IStatusRepository) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{repo: repo, statusRepo: statusRepo}
}

func (u *ServiceOrderUseCase) SaveWithItems(ctx context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
	o.ClientID = strings.TrimSpace(o.ClientID)
	if o.ClientID == "" {
		return entities.ServiceOrder{}, ErrClientRequired
	}

	// Run every item through the ledger: this enforces the line invariants
	// (description and unit price present, quantity defaulted, line totals
	// recomputed) with the exact same rules the editor applies.
	ledger := order.NewLedger(order.Catalog{}, nil)
	for i, it := range o.Items {
		if _, err := ledger.AddItem(order.ItemCandidate{
			Kind:        it.Kind,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Discount:    it.Discount,
			ProductID:   it.ProductID,
			ServiceID:   it.ServiceID,
		}); err != nil {
			return entities.ServiceOrder{}, fmt.Errorf("%w (item %d): %w", ErrInvalidItem, i+1, err)
		}
	}

	// Local ids become persisted ids at save time; ids already persisted are
	// kept so the replaced set stays addressable.
	normalized := ledger.Items()
	for i := range normalized {
		original := o.Items[i].ID
		if original.IsZero() || original.IsNew() {
			normalized[i].ID = entities.PersistedItemID(uuid.NewString())
		} else {
			normalized[i].ID = original
		}
	}
	o.Items = normalized

	if strings.TrimSpace(o.StatusID) == "" {
		statuses, err := u.statusRepo.List(ctx)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		if st, ok := order.DefaultInitialStatus(statuses); ok {
			o.StatusID = st.ID
		}
	}

	now := time.Now().UTC()
	if o.ID == "" {
		o.ID = uuid.NewString()
		o.CreatedAt = now
	} else {
		// The save is a full item replace; creation time survives from the
		// stored order, everything else comes from the payload.
		current, err := u.repo.GetByID(ctx, o.ID)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		if current.ID != "" {
			o.CreatedAt = current.CreatedAt
		} else {
			o.CreatedAt = now
		}
	}
	o.UpdatedAt = now

	saved, err := u.repo.SaveWithItems(ctx, o)
	if err != nil {
		log.Printf("[os][usecase] save failed order_id=%s err=%v", o.ID, err)
		return entities.ServiceOrder{}, err
	}
	log.Printf("[os][usecase] save success order_id=%s items=%d net_total=%s", saved.ID, len(saved.Items), saved.NetTotal())
	return saved, nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id string) (entities.ServiceOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if o.ID == "" {
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *ServiceOrderUseCase) List(ctx context.Context) ([]entities.ServiceOrder, error) {
	return u.repo.List(ctx)
}

func (u *ServiceOrderUseCase) ListByClientID(ctx context.Context, clientID string) ([]entities.ServiceOrder, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.repo.ListByClientID(ctx, clientID)
}

func (u *ServiceOrderUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if o.ID == "" {
		return ErrOrderNotFound
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		log.Printf("[os][usecase] delete failed order_id=%s err=%v", id, err)
		return err
	}
	log.Printf("[os][usecase] delete success order_id=%s", id)
	return nil
}
