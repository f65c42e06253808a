package request

import (
	"encoding/json"
	"time"
)

// SettlePaymentRequest is the "mark as paid" payload against a persisted
// order. Amount travels as integer cents.
//
// `gateway_payload` is optional; when present it is forwarded as-is (raw
// JSON) to the payment provider, which tolerates varying provider schemas.
type SettlePaymentRequest struct {
	AmountCents    int64           `json:"amount_cents" binding:"required"`
	Date           time.Time       `json:"date" binding:"required"`
	Method         string          `json:"method"`
	StatusID       string          `json:"status_id"`
	GatewayPayload json.RawMessage `json:"gateway_payload"`
}
