package request

import (
	"encoding/json"
	"time"

	"rab_service/internal/domain/entities"
	"rab_service/internal/usecase"
)

type RecordTransactionRequest struct {
	Category    string     `json:"category" binding:"required"`
	Amount      int64      `json:"amount"`
	Date        *time.Time `json:"date"`
	Description string     `json:"description"`
	Reference   string     `json:"reference"`
}

func (r RecordTransactionRequest) ToInput(projectID string) (usecase.RecordTransactionInput, error) {
	category, err := entities.ParseTransactionCategory(r.Category)
	if err != nil {
		return usecase.RecordTransactionInput{}, err
	}
	in := usecase.RecordTransactionInput{
		ProjectID:   projectID,
		Category:    category,
		Amount:      entities.Money(r.Amount),
		Description: r.Description,
		Reference:   r.Reference,
	}
	if r.Date != nil {
		in.Date = *r.Date
	}
	return in, nil
}

// ClientPaymentCreateRequest charges the project's client. amount is in minor
// currency units; mp_payload is forwarded to Mercado Pago as-is, after enrichment.
type ClientPaymentCreateRequest struct {
	Amount    int64           `json:"amount" binding:"required"`
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}
