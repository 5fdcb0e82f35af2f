package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"rab_service/internal/domain/entities"
	"rab_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrInvalidProjectID = errors.New("invalid project id")
)

// RecordTransactionInput describes a ledger entry. A zero Date means "now".
type RecordTransactionInput struct {
	ProjectID   string
	Category    entities.TransactionCategory
	Amount      entities.Money
	Date        time.Time
	Description string
	Reference   string
}

// IProjectLedgerUseCase exposes projects, their transactions and the derived
// financial progress.
type IProjectLedgerUseCase interface {
	GetProject(ctx context.Context, projectID string) (entities.Project, error)
	RecordTransaction(ctx context.Context, in RecordTransactionInput) (entities.Transaction, error)
	ListTransactions(ctx context.Context, projectID string) ([]entities.Transaction, error)
	GetProgress(ctx context.Context, projectID string) (entities.FinancialProgress, error)
}

type ProjectLedgerUseCase struct {
	projectRepo interfaces.IProjectRepository
	txRepo      interfaces.ITransactionRepository
	now         func() time.Time
	newID       func() string
	log         *zap.Logger
}

var _ IProjectLedgerUseCase = (*ProjectLedgerUseCase)(nil)

func NewProjectLedgerUseCase(projectRepo interfaces.IProjectRepository, txRepo interfaces.ITransactionRepository) *ProjectLedgerUseCase {
	return &ProjectLedgerUseCase{
		projectRepo: projectRepo,
		txRepo:      txRepo,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
		log:         zap.L().Named("ledger.usecase"),
	}
}

func (u *ProjectLedgerUseCase) GetProject(ctx context.Context, projectID string) (entities.Project, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Project{}, ErrInvalidProjectID
	}
	p, err := u.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return entities.Project{}, persistenceError(err)
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectLedgerUseCase) RecordTransaction(ctx context.Context, in RecordTransactionInput) (entities.Transaction, error) {
	project, err := u.GetProject(ctx, in.ProjectID)
	if err != nil {
		return entities.Transaction{}, err
	}

	now := u.now()
	date := in.Date
	if date.IsZero() {
		date = now
	}
	tx := entities.Transaction{
		ID:          u.newID(),
		ProjectID:   project.ID,
		Category:    in.Category,
		Amount:      in.Amount,
		Date:        date.UTC(),
		Description: strings.TrimSpace(in.Description),
		Reference:   strings.TrimSpace(in.Reference),
		CreatedAt:   now,
	}
	if err := tx.Validate(); err != nil {
		return entities.Transaction{}, err
	}

	created, err := u.txRepo.Create(ctx, tx)
	if err != nil {
		u.log.Error("[ledger][usecase] record failed", zap.String("project_id", project.ID), zap.Error(err))
		return entities.Transaction{}, persistenceError(err)
	}
	u.log.Info("[ledger][usecase] recorded",
		zap.String("project_id", project.ID),
		zap.String("transaction_id", created.ID),
		zap.String("category", string(created.Category)),
		zap.Int64("amount", int64(created.Amount)),
	)
	return created, nil
}

func (u *ProjectLedgerUseCase) ListTransactions(ctx context.Context, projectID string) ([]entities.Transaction, error) {
	project, err := u.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	txs, err := u.txRepo.ListByProjectID(ctx, project.ID)
	if err != nil {
		return nil, persistenceError(err)
	}
	return txs, nil
}

// GetProgress aggregates the current ledger. It is recomputed on every call.
func (u *ProjectLedgerUseCase) GetProgress(ctx context.Context, projectID string) (entities.FinancialProgress, error) {
	project, err := u.GetProject(ctx, projectID)
	if err != nil {
		return entities.FinancialProgress{}, err
	}
	txs, err := u.txRepo.ListByProjectID(ctx, project.ID)
	if err != nil {
		return entities.FinancialProgress{}, persistenceError(err)
	}
	return entities.ComputeFinancialProgress(project, txs), nil
}
