package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"oficina_os/internal/domain/entities"
	mock_interfaces "oficina_os/internal/usecase/interfaces/mocks"
)

func TestCatalogUseCase_Products(t *testing.T) {
	t.Run("label required", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		_, err := uc.CreateProduct(context.Background(), entities.Product{Label: "  ", Price: dec("10")})
		if !errors.Is(err, ErrCatalogLabel) {
			t.Fatalf("expected ErrCatalogLabel, got %v", err)
		}
	})

	t.Run("zero price rejected", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		_, err := uc.CreateProduct(context.Background(), entities.Product{Label: "SSD 1TB"})
		if !errors.Is(err, ErrCatalogPrice) {
			t.Fatalf("expected ErrCatalogPrice, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(products, nil)

		products.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Product{})).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if p.ID == "" || p.Label != "SSD 1TB" || !p.Price.Equal(dec("350")) {
					t.Fatalf("unexpected product: %+v", p)
				}
				return p, nil
			},
		)

		p, err := uc.CreateProduct(context.Background(), entities.Product{Label: " SSD 1TB ", Price: dec("350")})
		if err != nil || p.ID == "" {
			t.Fatalf("unexpected result: %+v, %v", p, err)
		}
	})

	t.Run("update keeps created timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(products, nil)

		created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
		products.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{ID: "p-1", Label: "SSD 512GB", Price: dec("200"), CreatedAt: created}, nil)
		products.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Product{})).DoAndReturn(
			func(_ context.Context, p entities.Product) (entities.Product, error) {
				if !p.CreatedAt.Equal(created) {
					t.Fatalf("expected original created_at, got %v", p.CreatedAt)
				}
				return p, nil
			},
		)

		if _, err := uc.UpdateProduct(context.Background(), entities.Product{ID: "p-1", Label: "SSD 1TB", Price: dec("350")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewCatalogUseCase(products, nil)

		products.EXPECT().GetByID(gomock.Any(), "p-x").Return(entities.Product{}, nil)

		_, err := uc.GetProductByID(context.Background(), "p-x")
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})
}

func TestCatalogUseCase_Services(t *testing.T) {
	t.Run("negative price rejected", func(t *testing.T) {
		uc := NewCatalogUseCase(nil, nil)
		_, err := uc.CreateService(context.Background(), entities.CatalogService{Label: "Formatação", Price: dec("-5")})
		if !errors.Is(err, ErrCatalogPrice) {
			t.Fatalf("expected ErrCatalogPrice, got %v", err)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		services := mock_interfaces.NewMockIServiceCatalogRepository(ctrl)
		uc := NewCatalogUseCase(nil, services)

		services.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.CatalogService{})).DoAndReturn(
			func(_ context.Context, s entities.CatalogService) (entities.CatalogService, error) {
				if s.ID == "" || s.Label != "Formatação" {
					t.Fatalf("unexpected service: %+v", s)
				}
				return s, nil
			},
		)

		s, err := uc.CreateService(context.Background(), entities.CatalogService{Label: "Formatação", Price: dec("80")})
		if err != nil || s.ID == "" {
			t.Fatalf("unexpected result: %+v, %v", s, err)
		}
	})

	t.Run("delete not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		services := mock_interfaces.NewMockIServiceCatalogRepository(ctrl)
		uc := NewCatalogUseCase(nil, services)

		services.EXPECT().GetByID(gomock.Any(), "s-x").Return(entities.CatalogService{}, nil)

		if err := uc.DeleteService(context.Background(), "s-x"); !errors.Is(err, ErrCatalogServiceNotFound) {
			t.Fatalf("expected ErrCatalogServiceNotFound, got %v", err)
		}
	})
}
