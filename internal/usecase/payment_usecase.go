package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/domain/order"
	"oficina_os/internal/usecase/interfaces"
)

var (
	ErrInvalidPayment             = errors.New("invalid payment")
	ErrStatusNotFound             = errors.New("status not found")
	ErrPaymentGatewayNotAvailable = errors.New("payment gateway not available")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
)

// SettleOrderInput is the payment event recorded against a persisted order.
// GatewayPayload, when present, makes the settlement charge the payment
// online through the configured gateway before recording it; otherwise the
// payment is recorded as received at the counter.
type SettleOrderInput struct {
	OrderID        string
	Amount         decimal.Decimal
	Date           time.Time
	Method         string
	StatusOverride string
	GatewayPayload json.RawMessage
}

// SettleOrderResult carries the updated order and the recorded payment.
type SettleOrderResult struct {
	Order   entities.ServiceOrder
	Payment entities.OrderPayment
}

// IPaymentUseCase exposes the settlement path: compute new paid/pending
// amounts, resolve the resulting status, optionally charge online, record
// the payment, and push the partial order update.
//
// The operation is NOT retry-safe: repeating it with the same input records
// a second payment. The editor's disable-while-saving guard is the
// anti-double-submit mechanism.

type IPaymentUseCase interface {
	SettleOrder(ctx context.Context, in SettleOrderInput) (SettleOrderResult, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error)
}

type PaymentUseCase struct {
	repo       interfaces.IOrderPaymentRepository
	orderRepo  interfaces.IServiceOrderRepository
	statusRepo interfaces.IStatusRepository
	gateway    interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	repo interfaces.IOrderPaymentRepository,
	orderRepo interfaces.IServiceOrderRepository,
	statusRepo interfaces.IStatusRepository,
	gateway interfaces.IPaymentGateway,
) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, orderRepo: orderRepo, statusRepo: statusRepo, gateway: gateway}
}

func (u *PaymentUseCase) SettleOrder(ctx context.Context, in SettleOrderInput) (SettleOrderResult, error) {
	in.OrderID = strings.TrimSpace(in.OrderID)
	if in.OrderID == "" {
		return SettleOrderResult{}, ErrInvalidOrderID
	}
	log.Printf("[payment][usecase] settle start order_id=%s amount=%s method=%s", in.OrderID, in.Amount, in.Method)

	o, err := u.orderRepo.GetByID(ctx, in.OrderID)
	if err != nil {
		return SettleOrderResult{}, err
	}
	if o.ID == "" {
		return SettleOrderResult{}, ErrOrderNotFound
	}

	statuses, err := u.statusRepo.List(ctx)
	if err != nil {
		return SettleOrderResult{}, err
	}

	settleIn := order.SettlementInput{
		Amount: in.Amount,
		Date:   in.Date,
		Method: in.Method,
	}
	if override := strings.TrimSpace(in.StatusOverride); override != "" {
		st, ok := findStatus(statuses, override)
		if !ok {
			return SettleOrderResult{}, ErrStatusNotFound
		}
		settleIn.StatusOverride = &st
	}

	update, err := order.Settle(o, settleIn, statuses)
	if err != nil {
		log.Printf("[payment][usecase] settle rejected order_id=%s err=%v", in.OrderID, err)
		return SettleOrderResult{}, ErrInvalidPayment
	}

	payment := entities.OrderPayment{
		ID:      uuid.NewString(),
		OrderID: in.OrderID,
		Amount:  in.Amount,
		Method:  in.Method,
		Date:    in.Date,
	}

	if len(in.GatewayPayload) > 0 {
		if u.gateway == nil {
			return SettleOrderResult{}, ErrPaymentGatewayNotAvailable
		}
		providerID, providerStatus, providerResp, err := u.chargeOnline(ctx, o, in)
		if err != nil {
			log.Printf("[payment][usecase] gateway charge failed order_id=%s err=%v", in.OrderID, err)
			return SettleOrderResult{}, err
		}
		log.Printf("[payment][usecase] gateway charge success order_id=%s provider_payment_id=%s provider_status=%s", in.OrderID, providerID, providerStatus)
		payment.ID = providerID
		payment.GatewayPayloadRaw = providerResp
	}

	fields := interfaces.OrderSettlementFields{
		AmountPaid:    update.AmountPaid,
		AmountPending: update.AmountPending,
		PaymentMethod: update.PaymentMethod,
		DeliveryDate:  update.DeliveryDate,
	}
	if update.Status != nil {
		fields.StatusID = update.Status.ID
	}

	// The partial order update goes first: it is conditional on the order
	// still existing, so a failure here leaves no payment row behind. The
	// payment record is appended only once the balance has moved.
	updated, err := u.orderRepo.UpdateFields(ctx, in.OrderID, fields)
	if err != nil {
		log.Printf("[payment][usecase] order update failed order_id=%s err=%v", in.OrderID, err)
		return SettleOrderResult{}, err
	}
	if updated.ID == "" {
		log.Printf("[payment][usecase] order vanished during settle order_id=%s", in.OrderID)
		return SettleOrderResult{}, ErrOrderNotFound
	}

	created, err := u.repo.Create(ctx, payment)
	if err != nil {
		// The balance already moved; surface the error loudly so the missing
		// history row can be reconstructed from the order's amounts.
		log.Printf("[payment][usecase] payment record failed after order update order_id=%s payment_id=%s err=%v", in.OrderID, payment.ID, err)
		return SettleOrderResult{}, err
	}
	log.Printf("[payment][usecase] settle success order_id=%s paid=%s pending=%s status_id=%s",
		in.OrderID, update.AmountPaid, update.AmountPending, fields.StatusID)

	return SettleOrderResult{Order: updated, Payment: created}, nil
}

// chargeOnline enriches the caller's gateway payload and submits it. The
// order is the source of truth for linkage; the entered amount is the source
// of truth for the charge.
func (u *PaymentUseCase) chargeOnline(ctx context.Context, o entities.ServiceOrder, in SettleOrderInput) (string, string, json.RawMessage, error) {
	payload := in.GatewayPayload
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		return "", "", nil, ErrInvalidPayment
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = o.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Ordem de serviço %s", o.ID)
	}
	reqMap["transaction_amount"] = in.Amount.InexactFloat64()
	if b, err := json.Marshal(reqMap); err == nil {
		payload = b
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		switch {
		case isGatewayUnauthorized(err):
			return "", "", nil, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return "", "", nil, ErrPaymentGatewayBadRequest
		default:
			return "", "", nil, err
		}
	}
	return providerID, providerStatus, providerResp, nil
}

func (u *PaymentUseCase) ListByOrderID(ctx context.Context, orderID string) ([]entities.OrderPayment, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, ErrInvalidOrderID
	}
	return u.repo.ListByOrderID(ctx, orderID)
}

func findStatus(statuses []entities.OrderStatus, id string) (entities.OrderStatus, bool) {
	for _, st := range statuses {
		if st.ID == id {
			return st, true
		}
	}
	return entities.OrderStatus{}, false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
