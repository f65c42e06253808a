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

func TestClientUseCase_Create(t *testing.T) {
	t.Run("name required", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Client{Name: "   "})
		if !errors.Is(err, ErrClientName) {
			t.Fatalf("expected ErrClientName, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if c.ID == "" || c.Name != "Maria Souza" || c.Phone != "11 98888-0000" {
					t.Fatalf("unexpected client: %+v", c)
				}
				if c.CreatedAt.IsZero() || c.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return c, nil
			},
		)

		c, err := uc.Create(context.Background(), entities.Client{Name: " Maria Souza ", Phone: " 11 98888-0000 "})
		if err != nil || c.ID == "" {
			t.Fatalf("unexpected result: %+v, %v", c, err)
		}
	})
}

func TestClientUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewClientUseCase(nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "c-x").Return(entities.Client{}, nil)

		_, err := uc.GetByID(context.Background(), "c-x")
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})
}

func TestClientUseCase_Update(t *testing.T) {
	t.Run("keeps created timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		created := time.Date(2025, 11, 2, 9, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", Name: "Old", CreatedAt: created}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Client{})).DoAndReturn(
			func(_ context.Context, c entities.Client) (entities.Client, error) {
				if !c.CreatedAt.Equal(created) {
					t.Fatalf("expected original created_at, got %v", c.CreatedAt)
				}
				if c.UpdatedAt.Equal(created) {
					t.Fatalf("expected refreshed updated_at")
				}
				return c, nil
			},
		)

		if _, err := uc.Update(context.Background(), entities.Client{ID: "c-1", Name: "Maria"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "c-x").Return(entities.Client{}, nil)

		_, err := uc.Update(context.Background(), entities.Client{ID: "c-x", Name: "Maria"})
		if !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})
}

func TestClientUseCase_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIClientRepository(ctrl)
		uc := NewClientUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Client{ID: "c-1", Name: "Maria"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "c-1").Return(nil)

		if err := uc.Delete(context.Background(), "c-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
