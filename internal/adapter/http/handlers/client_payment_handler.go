package handlers

import (
	"bytes"
	"errors"
	"net/http"

	request "rab_service/internal/adapter/http/dto/request"
	response "rab_service/internal/adapter/http/dto/response"
	"rab_service/internal/domain/entities"
	"rab_service/internal/usecase"
	"rab_service/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ClientPaymentHandler charges project clients through the payment gateway.
type ClientPaymentHandler struct {
	usecase usecase.IClientPaymentUseCase
	log     *zap.Logger
}

func NewClientPaymentHandler(uc usecase.IClientPaymentUseCase) *ClientPaymentHandler {
	return &ClientPaymentHandler{usecase: uc, log: zap.L().Named("payment.handler")}
}

// CollectPayment godoc
// @Summary      Collect a client payment
// @Description  Charges the client via Mercado Pago. Approved payments are booked as cash_in.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        project_id  path      string                               true  "Project ID"
// @Param        body        body      request.ClientPaymentCreateRequest  true  "Amount and provider payload"
// @Success      200         {object}  response.ClientPaymentResponse
// @Failure      400         {object}  map[string]interface{}
// @Failure      404         {object}  map[string]interface{}
// @Router       /projects/{project_id}/payments [post]
func (h *ClientPaymentHandler) CollectPayment(c *gin.Context) {
	projectID := c.Param("project_id")
	log := h.log.With(zap.String("project_id", projectID))
	log.Info("[payment][handler] collect start")

	var payload request.ClientPaymentCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Warn("[payment][handler] invalid payload", zap.Error(err))
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	mpPayload := payload.MPPayload
	if trimmed := bytes.TrimSpace(mpPayload); len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		mpPayload = nil
	}

	created, err := h.usecase.CollectPayment(c.Request.Context(), projectID, entities.Money(payload.Amount), mpPayload)
	if err != nil {
		log.Warn("[payment][handler] collect failed", zap.Error(err))
		appErr := mapClientPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info("[payment][handler] collect success",
		zap.String("payment_id", created.ID),
		zap.String("status", string(created.Status)),
	)
	c.JSON(http.StatusOK, response.FromClientPayment(created))
}

func (h *ClientPaymentHandler) ListPayments(c *gin.Context) {
	items, err := h.usecase.ListByProjectID(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		appErr := mapClientPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClientPayments(items))
}

func (h *ClientPaymentHandler) GetPayment(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("payment_id"))
	if err != nil {
		appErr := mapClientPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClientPayment(p))
}

func mapClientPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID), errors.Is(err, usecase.ErrInvalidMPPayload),
		errors.Is(err, usecase.ErrInvalidPaymentAmount), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrClientPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPersistenceFailure):
		return pkg.NewDomainError("PERSISTENCE_FAILURE", "Storage unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
