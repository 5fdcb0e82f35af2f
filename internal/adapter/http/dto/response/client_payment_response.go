package response

import (
	"time"

	"rab_service/internal/domain/entities"
)

type ClientPaymentResponse struct {
	PaymentID     string    `json:"payment_id"`
	ProjectID     string    `json:"project_id"`
	Amount        int64     `json:"amount"`
	PaymentDate   time.Time `json:"payment_date"`
	Status        string    `json:"status"`
	TransactionID string    `json:"transaction_id,omitempty"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromClientPayment(p entities.ClientPayment) ClientPaymentResponse {
	return ClientPaymentResponse{
		PaymentID:     p.ID,
		ProjectID:     p.ProjectID,
		Amount:        int64(p.Amount),
		PaymentDate:   p.Date,
		Status:        string(p.Status),
		TransactionID: p.TransactionID,
		MPPayloadRaw:  string(p.ProviderPayloadRaw),
		MPPayload:     p.ProviderPayload,
	}
}

func FromClientPayments(items []entities.ClientPayment) []ClientPaymentResponse {
	out := make([]ClientPaymentResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromClientPayment(p))
	}
	return out
}
