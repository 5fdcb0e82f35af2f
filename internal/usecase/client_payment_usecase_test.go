package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"rab_service/internal/domain/entities"
	mock_interfaces "rab_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type paymentFixture struct {
	repo     *mock_interfaces.MockIClientPaymentRepository
	projects *mock_interfaces.MockIProjectRepository
	txs      *mock_interfaces.MockITransactionRepository
	gateway  *mock_interfaces.MockIPaymentGateway
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	ctrl := gomock.NewController(t)
	return &paymentFixture{
		repo:     mock_interfaces.NewMockIClientPaymentRepository(ctrl),
		projects: mock_interfaces.NewMockIProjectRepository(ctrl),
		txs:      mock_interfaces.NewMockITransactionRepository(ctrl),
		gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
}

func (f *paymentFixture) useCase(opts PaymentOptions) *ClientPaymentUseCase {
	return NewClientPaymentUseCase(f.repo, f.projects, f.txs, f.gateway, opts)
}

func TestClientPaymentUseCase_CollectPayment_Validations(t *testing.T) {
	t.Run("empty project id", func(t *testing.T) {
		uc := NewClientPaymentUseCase(nil, nil, nil, nil, PaymentOptions{})
		_, err := uc.CollectPayment(context.Background(), " ", 10, json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("non positive amount", func(t *testing.T) {
		uc := NewClientPaymentUseCase(nil, nil, nil, nil, PaymentOptions{})
		_, err := uc.CollectPayment(context.Background(), "prj-1", 0, json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidPaymentAmount) {
			t.Fatalf("expected ErrInvalidPaymentAmount, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewClientPaymentUseCase(nil, nil, nil, nil, PaymentOptions{})
		_, err := uc.CollectPayment(context.Background(), "prj-1", 10, json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewClientPaymentUseCase(nil, nil, nil, nil, PaymentOptions{})
		_, err := uc.CollectPayment(context.Background(), "prj-1", 10, json.RawMessage(`{"payment_method_id":"pix"}`))
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})

	t.Run("project not found", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.projects.EXPECT().GetByID(gomock.Any(), "prj-1").Return(entities.Project{}, nil)

		_, err := f.useCase(PaymentOptions{}).CollectPayment(context.Background(), "prj-1", 10, json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("missing payment method", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.projects.EXPECT().GetByID(gomock.Any(), "prj-1").Return(entities.Project{ID: "prj-1"}, nil)

		_, err := f.useCase(PaymentOptions{}).CollectPayment(context.Background(), "prj-1", 10, json.RawMessage(`{"payer":{"email":"a@b.c"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestClientPaymentUseCase_CollectPayment(t *testing.T) {
	t.Run("approved payment books cash_in", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.projects.EXPECT().GetByID(gomock.Any(), "prj-1").Return(entities.Project{ID: "prj-1", Name: "Gudang"}, nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("payload: %v", err)
				}
				if m["transaction_amount"] != 150000.0 || m["external_reference"] != "prj-1" {
					t.Fatalf("unexpected enrichment: %v", m)
				}
				return "991", "approved", json.RawMessage(`{"id":991,"status":"approved"}`), nil
			},
		)
		f.txs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tx entities.Transaction) (entities.Transaction, error) {
				if tx.Category != entities.TransactionCategoryCashIn || tx.Amount != 15_000_000 || tx.Reference != "991" {
					t.Fatalf("unexpected transaction: %+v", tx)
				}
				return tx, nil
			},
		)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.ClientPayment) (entities.ClientPayment, error) { return p, nil },
		)

		payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"email":"client@test.com"}}`)
		got, err := f.useCase(PaymentOptions{}).CollectPayment(context.Background(), "prj-1", 15_000_000, payload)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "991" || got.Status != entities.PaymentStatusApproved || got.TransactionID == "" {
			t.Fatalf("unexpected payment: %+v", got)
		}
	})

	t.Run("rejected payment books nothing", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.projects.EXPECT().GetByID(gomock.Any(), "prj-1").Return(entities.Project{ID: "prj-1"}, nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("992", "rejected", json.RawMessage(`{"status":"rejected"}`), nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.ClientPayment) (entities.ClientPayment, error) { return p, nil },
		)

		got, err := f.useCase(PaymentOptions{MockMode: true}).CollectPayment(context.Background(), "prj-1", 100, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.PaymentStatusRejected || got.TransactionID != "" {
			t.Fatalf("unexpected payment: %+v", got)
		}
	})

	t.Run("gateway errors are classified", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.projects.EXPECT().GetByID(gomock.Any(), "prj-1").Return(entities.Project{ID: "prj-1"}, nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New(`{"message":"unauthorized","error":"unauthorized","status":401}`))

		_, err := f.useCase(PaymentOptions{MockMode: true}).CollectPayment(context.Background(), "prj-1", 100, nil)
		if !errors.Is(err, ErrPaymentGatewayUnauthorized) {
			t.Fatalf("expected ErrPaymentGatewayUnauthorized, got %v", err)
		}
	})

	t.Run("sandbox payer defaults", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.projects.EXPECT().GetByID(gomock.Any(), "prj-1").Return(entities.Project{ID: "prj-1"}, nil)
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m struct {
					Payer map[string]any `json:"payer"`
				}
				_ = json.Unmarshal(payload, &m)
				if m.Payer["email"] != "buyer@sandbox.test" || m.Payer["id"] != nil {
					t.Fatalf("expected sandbox payer mapping, got %v", m.Payer)
				}
				return "993", "in_process", nil, nil
			},
		)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.ClientPayment) (entities.ClientPayment, error) { return p, nil },
		)

		opts := PaymentOptions{AccessToken: "TEST-123", TestPayerUserID: "42", TestPayerEmail: "buyer@sandbox.test"}
		payload := json.RawMessage(`{"payment_method_id":"pix","payer":{"id":"42"}}`)
		got, err := f.useCase(opts).CollectPayment(context.Background(), "prj-1", 100, payload)
		if err != nil || got.Status != entities.PaymentStatusPending {
			t.Fatalf("expected pending payment, got %+v err=%v", got, err)
		}
	})
}

func TestClientPaymentUseCase_Queries(t *testing.T) {
	t.Run("get missing", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.ClientPayment{}, nil)
		if _, err := f.useCase(PaymentOptions{}).GetByID(context.Background(), "p-1"); !errors.Is(err, ErrClientPaymentNotFound) {
			t.Fatalf("expected ErrClientPaymentNotFound, got %v", err)
		}
	})

	t.Run("list by project", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.repo.EXPECT().ListByProjectID(gomock.Any(), "prj-1").Return([]entities.ClientPayment{{ID: "p-1"}}, nil)
		got, err := f.useCase(PaymentOptions{}).ListByProjectID(context.Background(), "prj-1")
		if err != nil || len(got) != 1 {
			t.Fatalf("unexpected result: %v err=%v", got, err)
		}
	})
}
