package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"rab_service/internal/adapter/http/handlers/mocks"
	"rab_service/internal/domain/entities"
	"rab_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestClientPaymentHandler_CollectPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientPaymentUseCase(ctrl)

		r := gin.New()
		r.POST("/v1/projects/:project_id/payments", NewClientPaymentHandler(uc).CollectPayment)

		w := serve(r, http.MethodPost, "/v1/projects/prj-1/payments", `{"mp_payload":{}}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("null payload is forwarded as empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientPaymentUseCase(ctrl)

		r := gin.New()
		r.POST("/v1/projects/:project_id/payments", NewClientPaymentHandler(uc).CollectPayment)

		uc.EXPECT().CollectPayment(gomock.Any(), "prj-1", entities.Money(5_000_000), gomock.Nil()).
			Return(entities.ClientPayment{}, usecase.ErrInvalidMPPayload)

		w := serve(r, http.MethodPost, "/v1/projects/prj-1/payments", `{"amount":5000000,"mp_payload":null}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("gateway unauthorized", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientPaymentUseCase(ctrl)

		r := gin.New()
		r.POST("/v1/projects/:project_id/payments", NewClientPaymentHandler(uc).CollectPayment)

		uc.EXPECT().CollectPayment(gomock.Any(), "prj-1", entities.Money(100), gomock.Any()).
			Return(entities.ClientPayment{}, usecase.ErrPaymentGatewayUnauthorized)

		w := serve(r, http.MethodPost, "/v1/projects/prj-1/payments", `{"amount":100,"mp_payload":{"token":"x"}}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIClientPaymentUseCase(ctrl)

		r := gin.New()
		r.POST("/v1/projects/:project_id/payments", NewClientPaymentHandler(uc).CollectPayment)

		uc.EXPECT().CollectPayment(gomock.Any(), "prj-1", entities.Money(100), gomock.Any()).
			Return(entities.ClientPayment{ID: "991", ProjectID: "prj-1", Amount: 100, Status: entities.PaymentStatusApproved, TransactionID: "tx-1"}, nil)

		w := serve(r, http.MethodPost, "/v1/projects/prj-1/payments", `{"amount":100,"mp_payload":{"token":"x"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body["payment_id"] != "991" || body["transaction_id"] != "tx-1" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestClientPaymentHandler_GetPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIClientPaymentUseCase(ctrl)

	r := gin.New()
	r.GET("/v1/payments/:payment_id", NewClientPaymentHandler(uc).GetPayment)

	uc.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.ClientPayment{}, usecase.ErrClientPaymentNotFound)

	w := serve(r, http.MethodGet, "/v1/payments/nope", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
