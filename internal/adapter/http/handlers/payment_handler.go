package handlers

import (
	"encoding/json"
	"errors"
	"log"
	request "oficina_os/internal/adapter/http/dto/request"
	response "oficina_os/internal/adapter/http/dto/response"
	"oficina_os/internal/usecase"
	"oficina_os/pkg"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
)

// PaymentHandler handles HTTP requests for order settlements.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// SettleOrder records a payment against the order in the path and returns
// the payment plus the order as it stands afterwards.
func (h *PaymentHandler) SettleOrder(c *gin.Context) {
	orderID := c.Param("id")
	log.Printf("[payment][handler] settle start order_id=%s", orderID)

	var payload request.SettlePaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload order_id=%s err=%v", orderID, err)
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	gatewayPayload := normalizeGatewayPayload(payload.GatewayPayload)
	if gatewayPayload == nil && len(payload.GatewayPayload) > 0 && isPaymentGatewayMockEnabled() {
		log.Printf("[payment][handler] payload invalid in mock mode; fallback to empty payload order_id=%s", orderID)
		gatewayPayload = json.RawMessage("{}")
	}

	result, err := h.usecase.SettleOrder(c.Request.Context(), usecase.SettleOrderInput{
		OrderID:        orderID,
		Amount:         pkg.CentsToDecimal(payload.AmountCents),
		Date:           payload.Date,
		Method:         payload.Method,
		StatusOverride: payload.StatusID,
		GatewayPayload: gatewayPayload,
	})
	if err != nil {
		log.Printf("[payment][handler] settle failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] settle success order_id=%s payment_id=%s", orderID, result.Payment.ID)

	c.JSON(http.StatusCreated, response.FromSettlement(result))
}

// ListPayments returns the full payment history of an order, oldest first
// in whatever order the store yields.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	orderID := c.Param("id")

	payments, err := h.usecase.ListByOrderID(c.Request.Context(), orderID)
	if err != nil {
		log.Printf("[payment][handler] list failed order_id=%s err=%v", orderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderPayments(payments))
}

// normalizeGatewayPayload drops JSON null and whitespace-only payloads so
// the use case only ever sees a real provider request or nothing.
func normalizeGatewayPayload(raw json.RawMessage) json.RawMessage {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	if !json.Valid(raw) {
		return nil
	}
	return raw
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidPayment), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotAvailable):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Service order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStatusNotFound):
		return pkg.NewDomainErrorSimple("STATUS_NOT_FOUND", "Order status not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
