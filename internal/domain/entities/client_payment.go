package entities

import (
	"encoding/json"
	"strings"
	"time"
)

// PaymentStatus represents the provider outcome of a client payment.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusRejected PaymentStatus = "rejected"
)

// PaymentStatusFromProvider maps a Mercado Pago status string onto PaymentStatus.
// Anything that is neither approved nor a final refusal stays pending.
func PaymentStatusFromProvider(raw string) PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "approved", "authorized":
		return PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return PaymentStatusRejected
	}
	return PaymentStatusPending
}

// ClientPayment is a down-payment or progress payment charged to the client of a
// project through the payment gateway.
//
// Storage model (DynamoDB):
//   - PK: id (provider payment id)
//   - GSI1 (project_id-index): project_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original response body for audit.
//   - ProviderPayload is the parsed form, handy when debugging.
//
// TransactionID is set when an approved payment was booked as cash_in.
type ClientPayment struct {
	ID            string        `json:"id"`
	ProjectID     string        `json:"project_id"`
	Amount        Money         `json:"amount"`
	Date          time.Time     `json:"date"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transaction_id,omitempty"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
