package interfaces

import (
	"context"

	"rab_service/internal/domain/entities"
)

// IClientPaymentRepository abstracts persistence for ClientPayment.

type IClientPaymentRepository interface {
	Create(ctx context.Context, p entities.ClientPayment) (entities.ClientPayment, error)
	GetByID(ctx context.Context, id string) (entities.ClientPayment, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.ClientPayment, error)
}
