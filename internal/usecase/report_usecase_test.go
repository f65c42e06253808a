package usecase

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"oficina_os/internal/domain/entities"
	mock_interfaces "oficina_os/internal/usecase/interfaces/mocks"
)

func TestReportUseCase_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	statusRepo := mock_interfaces.NewMockIStatusRepository(ctrl)
	expenseRepo := mock_interfaces.NewMockIExpenseRepository(ctrl)
	uc := NewReportUseCase(orderRepo, nil, nil, nil, statusRepo, expenseRepo)

	o1 := orderWithNet("os-1", "100")
	o1.AmountPaid = dec("40")
	o2 := orderWithNet("os-2", "200")
	o2.AmountPaid = dec("200")
	o2.StatusID = "st-final"

	orderRepo.EXPECT().List(gomock.Any()).Return([]entities.ServiceOrder{o1, o2}, nil)
	statusRepo.EXPECT().List(gomock.Any()).Return(settleStatuses(), nil)
	expenseRepo.EXPECT().List(gomock.Any()).Return([]entities.Expense{
		{ID: "ex-1", Description: "Aluguel", Amount: dec("120")},
		{ID: "ex-2", Description: "Energia", Amount: dec("30")},
	}, nil)

	d, err := uc.Dashboard(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.TotalOrders != 2 {
		t.Fatalf("expected 2 orders, got %d", d.TotalOrders)
	}
	if !d.AmountPaid.Equal(dec("240")) {
		t.Fatalf("expected paid 240, got %s", d.AmountPaid)
	}
	if !d.AmountPending.Equal(dec("60")) {
		t.Fatalf("expected pending 60, got %s", d.AmountPending)
	}
	if !d.ExpenseTotal.Equal(dec("150")) {
		t.Fatalf("expected expenses 150, got %s", d.ExpenseTotal)
	}
	if !d.NetIncome.Equal(dec("90")) {
		t.Fatalf("expected net income 90, got %s", d.NetIncome)
	}

	counts := map[string]int{}
	for _, sc := range d.StatusCounts {
		counts[sc.StatusID] = sc.Count
	}
	if counts["st-open"] != 1 || counts["st-final"] != 1 || counts["st-partial"] != 0 {
		t.Fatalf("unexpected status counts: %+v", d.StatusCounts)
	}
}

func TestReportUseCase_OrderCover(t *testing.T) {
	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewReportUseCase(orderRepo, nil, nil, nil, nil, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "os-x").Return(entities.ServiceOrder{}, nil)

		_, err := uc.OrderCover(context.Background(), "os-x")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("resolves labels and totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
		brandRepo := mock_interfaces.NewMockIBrandRepository(ctrl)
		equipRepo := mock_interfaces.NewMockIEquipmentTypeRepository(ctrl)
		statusRepo := mock_interfaces.NewMockIStatusRepository(ctrl)
		uc := NewReportUseCase(orderRepo, clientRepo, brandRepo, equipRepo, statusRepo, nil)

		o := orderWithNet("os-1", "100")
		o.AmountPaid = dec("40")
		o.BrandID = "b-1"
		o.EquipmentTypeID = "e-1"
		o.Model = "Inspiron 15"

		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(o, nil)
		clientRepo.EXPECT().GetByID(gomock.Any(), "client-1").Return(entities.Client{ID: "client-1", Name: "Maria"}, nil)
		brandRepo.EXPECT().GetByID(gomock.Any(), "b-1").Return(entities.Brand{ID: "b-1", Label: "Dell"}, nil)
		equipRepo.EXPECT().GetByID(gomock.Any(), "e-1").Return(entities.EquipmentType{ID: "e-1", Label: "Notebook"}, nil)
		statusRepo.EXPECT().GetByID(gomock.Any(), "st-open").Return(entities.OrderStatus{ID: "st-open", Label: "Aberta"}, nil)

		cover, err := uc.OrderCover(context.Background(), "os-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cover.Client.Name != "Maria" || cover.BrandLabel != "Dell" || cover.EquipmentTypeLabel != "Notebook" || cover.StatusLabel != "Aberta" {
			t.Fatalf("unexpected cover: %+v", cover)
		}
		if !cover.NetTotal.Equal(dec("100")) || !cover.PendingBalance.Equal(dec("60")) {
			t.Fatalf("unexpected totals: net=%s pending=%s", cover.NetTotal, cover.PendingBalance)
		}
	})
}

func TestReportUseCase_ClientReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
	clientRepo := mock_interfaces.NewMockIClientRepository(ctrl)
	uc := NewReportUseCase(orderRepo, clientRepo, nil, nil, nil, nil)

	clientRepo.EXPECT().List(gomock.Any()).Return([]entities.Client{
		{ID: "client-1", Name: "Maria"},
		{ID: "client-2", Name: "João"},
	}, nil)

	o1 := orderWithNet("os-1", "100")
	o1.AmountPaid = dec("100")
	o2 := orderWithNet("os-2", "50")
	o2.AmountPaid = dec("20")
	orderRepo.EXPECT().List(gomock.Any()).Return([]entities.ServiceOrder{o1, o2}, nil)

	rows, err := uc.ClientReport(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].OrderCount != 2 || !rows[0].Revenue.Equal(dec("120")) || !rows[0].Pending.Equal(dec("30")) {
		t.Fatalf("unexpected row for client-1: %+v", rows[0])
	}
	if rows[1].OrderCount != 0 {
		t.Fatalf("expected no orders for client-2, got %+v", rows[1])
	}
}
