package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// Payment is a Mercado Pago charge settled against a finalized service
// order.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (service_order_id-index): service_order_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - MPPayload is an optional parsed representation, useful for
//     querying/debugging. Both are persisted because MP integrations vary
//     in schema.

type Payment struct {
	ID             string        `json:"id"`
	ServiceOrderID string        `json:"service_order_id"`
	Date           time.Time     `json:"date"`
	Status         PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
