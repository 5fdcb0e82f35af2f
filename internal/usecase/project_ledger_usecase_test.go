package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"rab_service/internal/domain/entities"
	mock_interfaces "rab_service/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestProjectLedgerUseCase_GetProgress(t *testing.T) {
	t.Run("project not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		txs := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewProjectLedgerUseCase(projects, txs)

		projects.EXPECT().GetByID(gomock.Any(), "prj-1").Return(entities.Project{}, nil)

		if _, err := uc.GetProgress(context.Background(), "prj-1"); !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("over budget ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		txs := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewProjectLedgerUseCase(projects, txs)

		projects.EXPECT().GetByID(gomock.Any(), "prj-1").Return(entities.Project{ID: "prj-1", BudgetValue: 100_000_000}, nil)
		txs.EXPECT().ListByProjectID(gomock.Any(), "prj-1").Return([]entities.Transaction{
			{ProjectID: "prj-1", Category: entities.TransactionCategoryCashIn, Amount: 30_000_000},
			{ProjectID: "prj-1", Category: entities.TransactionCategoryMaterial, Amount: 70_000_000},
			{ProjectID: "prj-1", Category: entities.TransactionCategoryLabor, Amount: 50_000_000},
			{ProjectID: "prj-1", Category: entities.TransactionCategoryPayable, Amount: 999},
		}, nil)

		got, err := uc.GetProgress(context.Background(), "prj-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.IncomePct.Equal(decimal.NewFromInt(30)) || !got.ExpensePct.Equal(decimal.NewFromInt(120)) || got.Balance != -90_000_000 {
			t.Fatalf("unexpected progress: %+v", got)
		}
	})

	t.Run("ledger failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		txs := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewProjectLedgerUseCase(projects, txs)

		projects.EXPECT().GetByID(gomock.Any(), "prj-1").Return(entities.Project{ID: "prj-1", BudgetValue: 1}, nil)
		txs.EXPECT().ListByProjectID(gomock.Any(), "prj-1").Return(nil, errors.New("db"))

		if _, err := uc.GetProgress(context.Background(), "prj-1"); !errors.Is(err, ErrPersistenceFailure) {
			t.Fatalf("expected ErrPersistenceFailure, got %v", err)
		}
	})
}

func TestProjectLedgerUseCase_RecordTransaction(t *testing.T) {
	t.Run("empty project id", func(t *testing.T) {
		uc := NewProjectLedgerUseCase(nil, nil)
		_, err := uc.RecordTransaction(context.Background(), RecordTransactionInput{})
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectLedgerUseCase(projects, nil)

		projects.EXPECT().GetByID(gomock.Any(), "prj-1").Return(entities.Project{ID: "prj-1"}, nil)

		_, err := uc.RecordTransaction(context.Background(), RecordTransactionInput{ProjectID: "prj-1", Category: "refund", Amount: 10})
		if !errors.Is(err, entities.ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("success defaults the date", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		projects := mock_interfaces.NewMockIProjectRepository(ctrl)
		txs := mock_interfaces.NewMockITransactionRepository(ctrl)
		uc := NewProjectLedgerUseCase(projects, txs)
		uc.now = func() time.Time { return fixedNow }

		projects.EXPECT().GetByID(gomock.Any(), "prj-1").Return(entities.Project{ID: "prj-1"}, nil)
		txs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
				if tx.ID == "" || !tx.Date.Equal(fixedNow) || tx.Category != entities.TransactionCategoryMaterial {
					t.Fatalf("unexpected transaction: %+v", tx)
				}
				return tx, nil
			},
		)

		_, err := uc.RecordTransaction(context.Background(), RecordTransactionInput{
			ProjectID: "prj-1",
			Category:  entities.TransactionCategoryMaterial,
			Amount:    2_500_000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
