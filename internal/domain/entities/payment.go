package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus is the outcome of a customer payment captured at delivery.
type PaymentStatus string

const (
	PaymentStatusPendiente PaymentStatus = "pendiente"
	PaymentStatusAprobado  PaymentStatus = "aprobado"
	PaymentStatusNegado    PaymentStatus = "negado"
)

// DeliveryPayment is the payment record created when an order is marked
// as delivered and the customer settles the budget total.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// ProviderPayloadRaw keeps the gateway's original JSON response for audit;
// ProviderPayload is the parsed representation, useful for debugging.
type DeliveryPayment struct {
	ID      string        `json:"id"`
	OrderID string        `json:"order_id"`
	Amount  float64       `json:"amount"`
	Date    time.Time     `json:"date"`
	Status  PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
