package response

import (
	"encoding/json"
	"time"

	"oficina_os/internal/domain/entities"
	"oficina_os/internal/usecase"
	"oficina_os/pkg"
)

type OrderPaymentResponse struct {
	ID             string          `json:"id"`
	OrderID        string          `json:"order_id"`
	AmountCents    int64           `json:"amount_cents"`
	Method         string          `json:"method,omitempty"`
	Date           time.Time       `json:"date"`
	GatewayPayload json.RawMessage `json:"gateway_payload,omitempty"`
}

func FromOrderPayment(p entities.OrderPayment) OrderPaymentResponse {
	return OrderPaymentResponse{
		ID:             p.ID,
		OrderID:        p.OrderID,
		AmountCents:    pkg.DecimalToCents(p.Amount),
		Method:         p.Method,
		Date:           p.Date,
		GatewayPayload: p.GatewayPayloadRaw,
	}
}

func FromOrderPayments(payments []entities.OrderPayment) []OrderPaymentResponse {
	out := make([]OrderPaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, FromOrderPayment(p))
	}
	return out
}

// SettlementResponse returns the recorded payment together with the
// order as it stands after the settlement was applied.
type SettlementResponse struct {
	Order   ServiceOrderResponse `json:"order"`
	Payment OrderPaymentResponse `json:"payment"`
}

func FromSettlement(r usecase.SettleOrderResult) SettlementResponse {
	return SettlementResponse{
		Order:   FromServiceOrder(r.Order),
		Payment: FromOrderPayment(r.Payment),
	}
}
