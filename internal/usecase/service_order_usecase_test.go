package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"

	"oficina_os/internal/domain/entities"
	mock_interfaces "oficina_os/internal/usecase/interfaces/mocks"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestServiceOrderUseCase_SaveWithItems(t *testing.T) {
	t.Run("client required", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil)
		_, err := uc.SaveWithItems(context.Background(), entities.ServiceOrder{ClientID: "   "})
		if !errors.Is(err, ErrClientRequired) {
			t.Fatalf("expected ErrClientRequired, got %v", err)
		}
	})

	t.Run("item without description rejected", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil)
		o := entities.ServiceOrder{
			ClientID: "client-1",
			StatusID: "status-1",
			Items: []entities.OrderLineItem{
				{Kind: entities.ItemKindProduct, Description: "  ", Quantity: 1, UnitPrice: dec("10")},
			},
		}
		_, err := uc.SaveWithItems(context.Background(), o)
		if !errors.Is(err, ErrInvalidItem) {
			t.Fatalf("expected ErrInvalidItem, got %v", err)
		}
	})

	t.Run("item with zero price rejected", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil)
		o := entities.ServiceOrder{
			ClientID: "client-1",
			StatusID: "status-1",
			Items: []entities.OrderLineItem{
				{Kind: entities.ItemKindService, Description: "Limpeza", Quantity: 1},
			},
		}
		_, err := uc.SaveWithItems(context.Background(), o)
		if !errors.Is(err, ErrInvalidItem) {
			t.Fatalf("expected ErrInvalidItem, got %v", err)
		}
	})

	t.Run("item referencing both catalogs rejected", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil)
		o := entities.ServiceOrder{
			ClientID: "client-1",
			StatusID: "status-1",
			Items: []entities.OrderLineItem{
				{Kind: entities.ItemKindProduct, Description: "SSD 1TB", Quantity: 1, UnitPrice: dec("350"), ProductID: "prod-1", ServiceID: "serv-1"},
			},
		}
		_, err := uc.SaveWithItems(context.Background(), o)
		if !errors.Is(err, ErrInvalidItem) {
			t.Fatalf("expected ErrInvalidItem, got %v", err)
		}
	})

	t.Run("new order gets id, default status and persisted item ids", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		statusRepo := mock_interfaces.NewMockIStatusRepository(ctrl)
		uc := NewServiceOrderUseCase(repo, statusRepo)

		statusRepo.EXPECT().List(gomock.Any()).Return([]entities.OrderStatus{
			{ID: "st-final", Label: "Finalizada", IsFinal: true},
			{ID: "st-open", Label: "Aberta", IsInitial: true},
		}, nil)

		repo.EXPECT().SaveWithItems(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.ID == "" || o.CreatedAt.IsZero() || o.UpdatedAt.IsZero() {
					t.Fatalf("expected id and timestamps, got %+v", o)
				}
				if o.StatusID != "st-open" {
					t.Fatalf("expected default status st-open, got %q", o.StatusID)
				}
				if len(o.Items) != 2 {
					t.Fatalf("expected 2 items, got %d", len(o.Items))
				}
				for _, it := range o.Items {
					if it.ID.IsNew() || it.ID.IsZero() {
						t.Fatalf("expected persisted item id, got %+v", it.ID)
					}
				}
				if !o.Items[0].LineTotal.Equal(dec("650")) {
					t.Fatalf("expected recomputed line total 650, got %s", o.Items[0].LineTotal)
				}
				if o.Items[1].Quantity != 1 {
					t.Fatalf("expected defaulted quantity 1, got %d", o.Items[1].Quantity)
				}
				return o, nil
			},
		)

		o := entities.ServiceOrder{
			ClientID: " client-1 ",
			Items: []entities.OrderLineItem{
				{Kind: entities.ItemKindProduct, Description: "SSD 1TB", Quantity: 2, UnitPrice: dec("350"), Discount: dec("50")},
				{Kind: entities.ItemKindService, Description: "Instalação", UnitPrice: dec("80")},
			},
		}
		saved, err := uc.SaveWithItems(context.Background(), o)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !saved.NetTotal().Equal(dec("730")) {
			t.Fatalf("expected net total 730, got %s", saved.NetTotal())
		}
	})

	t.Run("existing order keeps persisted item ids and status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo, nil)

		kept := entities.PersistedItemID("item-db-1")
		created := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1", ClientID: "client-1", CreatedAt: created}, nil)
		repo.EXPECT().SaveWithItems(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.ID != "os-1" {
					t.Fatalf("expected os-1, got %q", o.ID)
				}
				if !o.CreatedAt.Equal(created) {
					t.Fatalf("expected original created_at, got %v", o.CreatedAt)
				}
				if o.Items[0].ID != kept {
					t.Fatalf("expected kept item id, got %+v", o.Items[0].ID)
				}
				if o.Items[1].ID.IsNew() {
					t.Fatalf("expected local id converted to persisted, got %+v", o.Items[1].ID)
				}
				return o, nil
			},
		)

		o := entities.ServiceOrder{
			ID:       "os-1",
			ClientID: "client-1",
			StatusID: "st-open",
			Items: []entities.OrderLineItem{
				{ID: kept, Kind: entities.ItemKindProduct, Description: "Fonte 600W", Quantity: 1, UnitPrice: dec("420")},
				{ID: entities.NewLocalItemID(), Kind: entities.ItemKindService, Description: "Troca de fonte", Quantity: 1, UnitPrice: dec("90")},
			},
		}
		if _, err := uc.SaveWithItems(context.Background(), o); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo, nil)

		repo.EXPECT().SaveWithItems(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, errors.New("db"))

		_, err := uc.SaveWithItems(context.Background(), entities.ServiceOrder{ClientID: "client-1", StatusID: "st-open"})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestServiceOrderUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil)
		_, err := uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "os-x").Return(entities.ServiceOrder{}, nil)

		_, err := uc.GetByID(context.Background(), "os-x")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1"}, nil)

		o, err := uc.GetByID(context.Background(), " os-1 ")
		if err != nil || o.ID != "os-1" {
			t.Fatalf("unexpected result: %+v, %v", o, err)
		}
	})
}

func TestServiceOrderUseCase_ListByClientID(t *testing.T) {
	t.Run("invalid client id", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil, nil)
		_, err := uc.ListByClientID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo, nil)

		repo.EXPECT().ListByClientID(gomock.Any(), "client-1").Return([]entities.ServiceOrder{{ID: "os-1"}}, nil)

		orders, err := uc.ListByClientID(context.Background(), "client-1")
		if err != nil || len(orders) != 1 {
			t.Fatalf("unexpected result: %+v, %v", orders, err)
		}
	})
}

func TestServiceOrderUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "os-x").Return(entities.ServiceOrder{}, nil)

		if err := uc.Delete(context.Background(), "os-x"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "os-1").Return(entities.ServiceOrder{ID: "os-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "os-1").Return(nil)

		if err := uc.Delete(context.Background(), "os-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
