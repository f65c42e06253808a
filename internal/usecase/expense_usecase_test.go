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

func TestExpenseUseCase_Create(t *testing.T) {
	date := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("description required", func(t *testing.T) {
		uc := NewExpenseUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Expense{Description: " ", Amount: dec("100"), Date: date})
		if !errors.Is(err, ErrExpenseDescription) {
			t.Fatalf("expected ErrExpenseDescription, got %v", err)
		}
	})

	t.Run("amount must be positive", func(t *testing.T) {
		uc := NewExpenseUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Expense{Description: "Aluguel", Date: date})
		if !errors.Is(err, ErrInvalidExpenseAmount) {
			t.Fatalf("expected ErrInvalidExpenseAmount, got %v", err)
		}
	})

	t.Run("date required", func(t *testing.T) {
		uc := NewExpenseUseCase(nil)
		_, err := uc.Create(context.Background(), entities.Expense{Description: "Aluguel", Amount: dec("100")})
		if !errors.Is(err, ErrInvalidExpenseDate) {
			t.Fatalf("expected ErrInvalidExpenseDate, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := NewExpenseUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Expense{})).DoAndReturn(
			func(_ context.Context, e entities.Expense) (entities.Expense, error) {
				if e.ID == "" || e.Description != "Aluguel" || e.Category != "fixo" {
					t.Fatalf("unexpected expense: %+v", e)
				}
				if e.CreatedAt.IsZero() || e.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return e, nil
			},
		)

		e, err := uc.Create(context.Background(), entities.Expense{Description: " Aluguel ", Category: " fixo ", Amount: dec("1200"), Date: date})
		if err != nil || e.ID == "" {
			t.Fatalf("unexpected result: %+v, %v", e, err)
		}
	})
}

func TestExpenseUseCase_Update(t *testing.T) {
	t.Run("keeps created timestamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := NewExpenseUseCase(repo)

		created := time.Date(2025, 12, 1, 8, 0, 0, 0, time.UTC)
		repo.EXPECT().GetByID(gomock.Any(), "ex-1").Return(entities.Expense{ID: "ex-1", Description: "Aluguel", Amount: dec("1200"), Date: created, CreatedAt: created}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Expense{})).DoAndReturn(
			func(_ context.Context, e entities.Expense) (entities.Expense, error) {
				if !e.CreatedAt.Equal(created) {
					t.Fatalf("expected original created_at, got %v", e.CreatedAt)
				}
				if !e.Amount.Equal(dec("1350")) {
					t.Fatalf("expected updated amount, got %s", e.Amount)
				}
				return e, nil
			},
		)

		if _, err := uc.Update(context.Background(), entities.Expense{ID: "ex-1", Description: "Aluguel", Amount: dec("1350"), Date: created}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestExpenseUseCase_ListByPeriod(t *testing.T) {
	jan := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	mar := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	all := []entities.Expense{
		{ID: "ex-jan", Description: "Aluguel", Amount: dec("1200"), Date: jan},
		{ID: "ex-feb", Description: "Aluguel", Amount: dec("1200"), Date: feb},
		{ID: "ex-mar", Description: "Aluguel", Amount: dec("1200"), Date: mar},
	}

	t.Run("bounds inclusive", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := NewExpenseUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(all, nil)

		got, err := uc.ListByPeriod(context.Background(), feb, feb)
		if err != nil || len(got) != 1 || got[0].ID != "ex-feb" {
			t.Fatalf("unexpected result: %+v, %v", got, err)
		}
	})

	t.Run("open lower bound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := NewExpenseUseCase(repo)

		repo.EXPECT().List(gomock.Any()).Return(all, nil)

		got, err := uc.ListByPeriod(context.Background(), time.Time{}, feb)
		if err != nil || len(got) != 2 {
			t.Fatalf("unexpected result: %+v, %v", got, err)
		}
	})
}

func TestExpenseUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIExpenseRepository(ctrl)
		uc := NewExpenseUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "ex-x").Return(entities.Expense{}, nil)

		if err := uc.Delete(context.Background(), "ex-x"); !errors.Is(err, ErrExpenseNotFound) {
			t.Fatalf("expected ErrExpenseNotFound, got %v", err)
		}
	})
}
