package interfaces

import (
	"context"

	"rab_service/internal/domain/entities"
)

// IProjectRepository persists projects provisioned by estimate approvals.
//
// Delete is idempotent and removes the project's transactions and client payments with it.
type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	GetByID(ctx context.Context, id string) (entities.Project, error)
	Delete(ctx context.Context, id string) error
}

// ITransactionRepository persists the ledger of a project.
type ITransactionRepository interface {
	Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	ListByProjectID(ctx context.Context, projectID string) ([]entities.Transaction, error)
}
