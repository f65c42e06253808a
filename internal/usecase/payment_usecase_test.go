package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase/interfaces"
	mock_interfaces "oficina_os/internal/usecase/interfaces/mocks"
)

func orderWithNet(id, net string) entities.ServiceOrder {
	return entities.ServiceOrder{
		ID:       id,
		ClientID: "client-1",
		StatusID: "st-open",
		Items: []entities.OrderLineItem{
			{
				ID:          entities.PersistedItemID("item-1"),
				Kind:        entities.ItemKindService,
				Description: "Reparo",
				Quantity:    1,
				UnitPrice:   dec(net),
				LineTotal:   dec(net),
			},
		},
	}
}

func settleStatuses() []entities.OrderStatus {
	return []entities.OrderStatus{
		{ID: "st-open", Label: "Aberta", IsInitial: true},
		{ID: "st-partial", Label: "Parcialmente Paga", IsPartial: true},
		{ID: "st-final", Label: "Finalizada", IsFinal: true},
	}
}

func TestPaymentUseCase_SettleOrder(t *testing.T) {
	payDate := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	t.Run("invalid order id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.SettleOrder(context.Background(), SettleOrderInput{OrderID: "  "})
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewPaymentUseCase(nil, orderRepo, nil, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "os-x").Return(entities.ServiceOrder{}, nil)

		_, err := uc.SettleOrder(context.Background(), SettleOrderInput{OrderID: "os-x", Amount: dec("10"), Date: payDate})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("zero amount rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		statusRepo := mock_interfaces.NewMockIStatusRepository(ctrl)
		uc := NewPaymentUseCase(nil, orderRepo, statusRepo, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(orderWithNet("os-1", "100"), nil)
		statusRepo.EXPECT().List(gomock.Any()).Return(settleStatuses(), nil)

		_, err := uc.SettleOrder(context.Background(), SettleOrderInput{OrderID: "os-1", Date: payDate})
		if !errors.Is(err, ErrInvalidPayment) {
			t.Fatalf("expected ErrInvalidPayment, got %v", err)
		}
	})

	t.Run("partial payment records payment and pushes partial status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		statusRepo := mock_interfaces.NewMockIStatusRepository(ctrl)
		uc := NewPaymentUseCase(repo, orderRepo, statusRepo, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(orderWithNet("os-1", "100"), nil)
		statusRepo.EXPECT().List(gomock.Any()).Return(settleStatuses(), nil)
		updateCall := orderRepo.EXPECT().UpdateFields(gomock.Any(), "os-1", gomock.AssignableToTypeOf(interfaces.OrderSettlementFields{})).DoAndReturn(
			func(_ context.Context, _ string, f interfaces.OrderSettlementFields) (entities.ServiceOrder, error) {
				if !f.AmountPaid.Equal(dec("40")) || !f.AmountPending.Equal(dec("60")) {
					t.Fatalf("unexpected amounts: %+v", f)
				}
				if f.StatusID != "st-partial" || f.PaymentMethod != "pix" || !f.DeliveryDate.Equal(payDate) {
					t.Fatalf("unexpected fields: %+v", f)
				}
				o := orderWithNet("os-1", "100")
				o.AmountPaid = f.AmountPaid
				o.StatusID = f.StatusID
				return o, nil
			},
		)
		// The balance moves first; the history row is appended after.
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderPayment{})).After(updateCall).DoAndReturn(
			func(_ context.Context, p entities.OrderPayment) (entities.OrderPayment, error) {
				if p.ID == "" || p.OrderID != "os-1" || !p.Amount.Equal(dec("40")) || p.Method != "pix" {
					t.Fatalf("unexpected payment: %+v", p)
				}
				return p, nil
			},
		)

		res, err := uc.SettleOrder(context.Background(), SettleOrderInput{
			OrderID: "os-1", Amount: dec("40"), Date: payDate, Method: "pix",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Order.StatusID != "st-partial" || !res.Payment.Amount.Equal(dec("40")) {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("full payment resolves final status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		statusRepo := mock_interfaces.NewMockIStatusRepository(ctrl)
		uc := NewPaymentUseCase(repo, orderRepo, statusRepo, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(orderWithNet("os-1", "100"), nil)
		statusRepo.EXPECT().List(gomock.Any()).Return(settleStatuses(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.OrderPayment) (entities.OrderPayment, error) { return p, nil },
		)
		orderRepo.EXPECT().UpdateFields(gomock.Any(), "os-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, f interfaces.OrderSettlementFields) (entities.ServiceOrder, error) {
				if !f.AmountPending.IsZero() || f.StatusID != "st-final" {
					t.Fatalf("unexpected fields: %+v", f)
				}
				return orderWithNet("os-1", "100"), nil
			},
		)

		if _, err := uc.SettleOrder(context.Background(), SettleOrderInput{
			OrderID: "os-1", Amount: dec("100"), Date: payDate, Method: "dinheiro",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("order update failure leaves no payment row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		statusRepo := mock_interfaces.NewMockIStatusRepository(ctrl)
		uc := NewPaymentUseCase(repo, orderRepo, statusRepo, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(orderWithNet("os-1", "100"), nil)
		statusRepo.EXPECT().List(gomock.Any()).Return(settleStatuses(), nil)
		orderRepo.EXPECT().UpdateFields(gomock.Any(), "os-1", gomock.Any()).Return(entities.ServiceOrder{}, errors.New("dynamodb unavailable"))
		// No Create expectation: the controller fails the test if a payment
		// row is written when the balance never moved.

		if _, err := uc.SettleOrder(context.Background(), SettleOrderInput{
			OrderID: "os-1", Amount: dec("40"), Date: payDate, Method: "pix",
		}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("order deleted mid settle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		statusRepo := mock_interfaces.NewMockIStatusRepository(ctrl)
		uc := NewPaymentUseCase(repo, orderRepo, statusRepo, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(orderWithNet("os-1", "100"), nil)
		statusRepo.EXPECT().List(gomock.Any()).Return(settleStatuses(), nil)
		// The conditional update misses: the repository reports a vanished
		// order as a zero value with nil error.
		orderRepo.EXPECT().UpdateFields(gomock.Any(), "os-1", gomock.Any()).Return(entities.ServiceOrder{}, nil)

		_, err := uc.SettleOrder(context.Background(), SettleOrderInput{
			OrderID: "os-1", Amount: dec("40"), Date: payDate, Method: "pix",
		})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("status override must exist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		statusRepo := mock_interfaces.NewMockIStatusRepository(ctrl)
		uc := NewPaymentUseCase(nil, orderRepo, statusRepo, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(orderWithNet("os-1", "100"), nil)
		statusRepo.EXPECT().List(gomock.Any()).Return(settleStatuses(), nil)

		_, err := uc.SettleOrder(context.Background(), SettleOrderInput{
			OrderID: "os-1", Amount: dec("10"), Date: payDate, StatusOverride: "st-missing",
		})
		if !errors.Is(err, ErrStatusNotFound) {
			t.Fatalf("expected ErrStatusNotFound, got %v", err)
		}
	})

	t.Run("status override wins over derivation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		statusRepo := mock_interfaces.NewMockIStatusRepository(ctrl)
		uc := NewPaymentUseCase(repo, orderRepo, statusRepo, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(orderWithNet("os-1", "100"), nil)
		statusRepo.EXPECT().List(gomock.Any()).Return(settleStatuses(), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.OrderPayment) (entities.OrderPayment, error) { return p, nil },
		)
		orderRepo.EXPECT().UpdateFields(gomock.Any(), "os-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, f interfaces.OrderSettlementFields) (entities.ServiceOrder, error) {
				if f.StatusID != "st-open" {
					t.Fatalf("expected override st-open, got %q", f.StatusID)
				}
				return orderWithNet("os-1", "100"), nil
			},
		)

		if _, err := uc.SettleOrder(context.Background(), SettleOrderInput{
			OrderID: "os-1", Amount: dec("100"), Date: payDate, StatusOverride: "st-open",
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway payload without gateway configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		statusRepo := mock_interfaces.NewMockIStatusRepository(ctrl)
		uc := NewPaymentUseCase(nil, orderRepo, statusRepo, nil)

		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(orderWithNet("os-1", "100"), nil)
		statusRepo.EXPECT().List(gomock.Any()).Return(settleStatuses(), nil)

		_, err := uc.SettleOrder(context.Background(), SettleOrderInput{
			OrderID: "os-1", Amount: dec("10"), Date: payDate,
			GatewayPayload: json.RawMessage(`{"payment_method_id":"pix"}`),
		})
		if !errors.Is(err, ErrPaymentGatewayNotAvailable) {
			t.Fatalf("expected ErrPaymentGatewayNotAvailable, got %v", err)
		}
	})

	t.Run("online charge enriches payload and keeps provider id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
		orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		statusRepo := mock_interfaces.NewMockIStatusRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(repo, orderRepo, statusRepo, gateway)

		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(orderWithNet("os-1", "100"), nil)
		statusRepo.EXPECT().List(gomock.Any()).Return(settleStatuses(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("invalid payload sent to gateway: %v", err)
				}
				if m["external_reference"] != "os-1" {
					t.Fatalf("expected external_reference os-1, got %v", m["external_reference"])
				}
				if m["transaction_amount"] != 40.0 {
					t.Fatalf("expected transaction_amount 40, got %v", m["transaction_amount"])
				}
				return "mp-123", "approved", json.RawMessage(`{"id":"mp-123","status":"approved"}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.OrderPayment) (entities.OrderPayment, error) {
				if p.ID != "mp-123" {
					t.Fatalf("expected provider payment id, got %q", p.ID)
				}
				if len(p.GatewayPayloadRaw) == 0 {
					t.Fatalf("expected gateway response persisted")
				}
				return p, nil
			},
		)
		orderRepo.EXPECT().UpdateFields(gomock.Any(), "os-1", gomock.Any()).Return(orderWithNet("os-1", "100"), nil)

		if _, err := uc.SettleOrder(context.Background(), SettleOrderInput{
			OrderID: "os-1", Amount: dec("40"), Date: payDate, Method: "pix",
			GatewayPayload: json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"x@y.z"}}`),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orderRepo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		statusRepo := mock_interfaces.NewMockIStatusRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(nil, orderRepo, statusRepo, gateway)

		orderRepo.EXPECT().GetByID(gomock.Any(), "os-1").Return(orderWithNet("os-1", "100"), nil)
		statusRepo.EXPECT().List(gomock.Any()).Return(settleStatuses(), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"error":"unauthorized","status":401}`))

		_, err := uc.SettleOrder(context.Background(), SettleOrderInput{
			OrderID: "os-1", Amount: dec("10"), Date: payDate,
			GatewayPayload: json.RawMessage(`{"payment_method_id":"pix"}`),
		})
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("gateway helper classifiers", func(t *testing.T) {
		if isGatewayBadRequest(nil) || isGatewayUnauthorized(nil) {
			t.Fatalf("nil checks should be false")
		}
		if !isGatewayBadRequest(errors.New(`{"error":"bad_request"}`)) {
			t.Fatalf("expected bad request true")
		}
		if !isGatewayUnauthorized(errors.New(`{"status":401}`)) {
			t.Fatalf("expected unauthorized true")
		}
	})
}

func TestPaymentUseCase_ListByOrderID(t *testing.T) {
	t.Run("invalid order id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil)
		_, err := uc.ListByOrderID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil, nil, nil)

		repo.EXPECT().ListByOrderID(gomock.Any(), "os-1").Return([]entities.OrderPayment{{ID: "p-1"}}, nil)

		payments, err := uc.ListByOrderID(context.Background(), "os-1")
		if err != nil || len(payments) != 1 {
			t.Fatalf("unexpected result: %+v, %v", payments, err)
		}
	})
}
