package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// OrderPayment is one settlement recorded against a service order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (order_id-index): order_id
//
// Gateway payload:
//   - GatewayPayloadRaw keeps the provider response body (JSON) for
//     traceability when the payment was charged online. Empty for payments
//     recorded manually at the counter.

type OrderPayment struct {
	ID      string          `json:"id"`
	OrderID string          `json:"order_id"`
	Amount  decimal.Decimal `json:"amount"`
	Method  string          `json:"method"`
	Date    time.Time       `json:"date"`

	GatewayPayloadRaw json.RawMessage `json:"gateway_payload_raw,omitempty"`
}
