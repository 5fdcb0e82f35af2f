package handlers

import (
	"errors"
	"net/http"

	request "rab_service/internal/adapter/http/dto/request"
	response "rab_service/internal/adapter/http/dto/response"
	"rab_service/internal/domain/entities"
	"rab_service/internal/usecase"
	"rab_service/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidEstimatePayload = pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate payload", http.StatusBadRequest)

// EstimateHandler exposes the bill-of-quantities editor and the estimate lifecycle.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

// CreateEstimate godoc
// @Summary      Create estimate
// @Description  Opens a draft estimate with no lines
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        body  body      request.CreateEstimateRequest  true  "Estimate header"
// @Success      201   {object}  response.EstimateDocumentResponse
// @Failure      400   {object}  map[string]interface{}
// @Router       /estimates [post]
func (h *EstimateHandler) CreateEstimate(c *gin.Context) {
	var payload request.CreateEstimateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}

	doc, err := h.usecase.CreateEstimate(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondEstimateError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimateDocument(doc))
}

// ListEstimates godoc
// @Summary  List estimates
// @Tags     estimates
// @Produce  json
// @Success  200  {array}  response.EstimateResponse
// @Router   /estimates [get]
func (h *EstimateHandler) ListEstimates(c *gin.Context) {
	items, err := h.usecase.List(c.Request.Context())
	if err != nil {
		respondEstimateError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimates(items))
}

// GetEstimate godoc
// @Summary  Get estimate with its lines
// @Tags     estimates
// @Produce  json
// @Param    id   path      string  true  "Estimate ID"
// @Success  200  {object}  response.EstimateDocumentResponse
// @Failure  404  {object}  map[string]interface{}
// @Router   /estimates/{id} [get]
func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	doc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondEstimateError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateDocument(doc))
}

func (h *EstimateHandler) AddCategory(c *gin.Context) {
	var payload request.CategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	doc, err := h.usecase.AddCategory(c.Request.Context(), c.Param("id"), payload.Label)
	if err != nil {
		respondEstimateError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimateDocument(doc))
}

func (h *EstimateHandler) RenameCategory(c *gin.Context) {
	var payload request.CategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	doc, err := h.usecase.RenameCategory(c.Request.Context(), c.Param("id"), c.Param("line_id"), payload.Label)
	if err != nil {
		respondEstimateError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateDocument(doc))
}

// AddLineItem appends an empty line item under the category in the path.
func (h *EstimateHandler) AddLineItem(c *gin.Context) {
	doc, err := h.usecase.AddLeaf(c.Request.Context(), c.Param("id"), c.Param("line_id"))
	if err != nil {
		respondEstimateError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromEstimateDocument(doc))
}

// UpdateLineItem godoc
// @Summary  Edit a line item
// @Tags     estimates
// @Accept   json
// @Produce  json
// @Param    id       path      string                          true  "Estimate ID"
// @Param    line_id  path      string                          true  "Line ID"
// @Param    body     body      request.UpdateLineItemRequest  true  "Fields to change"
// @Success  200      {object}  response.EstimateDocumentResponse
// @Router   /estimates/{id}/items/{line_id} [patch]
func (h *EstimateHandler) UpdateLineItem(c *gin.Context) {
	var payload request.UpdateLineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	doc, err := h.usecase.UpdateLeaf(c.Request.Context(), c.Param("id"), c.Param("line_id"), payload.ToLeafUpdate())
	if err != nil {
		respondEstimateError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateDocument(doc))
}

func (h *EstimateHandler) ApplyCatalogEntry(c *gin.Context) {
	var payload request.ApplyCatalogEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	doc, err := h.usecase.ApplyCatalogEntry(c.Request.Context(), c.Param("id"), c.Param("line_id"), payload.EntryID)
	if err != nil {
		respondEstimateError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateDocument(doc))
}

func (h *EstimateHandler) RemoveLine(c *gin.Context) {
	doc, err := h.usecase.RemoveLine(c.Request.Context(), c.Param("id"), c.Param("line_id"))
	if err != nil {
		respondEstimateError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateDocument(doc))
}

func (h *EstimateHandler) SetTaxPercentage(c *gin.Context) {
	var payload request.SetTaxPercentageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	doc, err := h.usecase.SetTaxPercentage(c.Request.Context(), c.Param("id"), *payload.TaxPercentage)
	if err != nil {
		respondEstimateError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateDocument(doc))
}

// TransitionStatus godoc
// @Summary      Change estimate status
// @Description  Approving provisions a project. Leaving approved deletes it and needs confirm_destructive.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        id    path      string                            true  "Estimate ID"
// @Param        body  body      request.TransitionStatusRequest  true  "Target status"
// @Success      200   {object}  response.EstimateDocumentResponse
// @Failure      409   {object}  map[string]interface{}
// @Failure      428   {object}  map[string]interface{}
// @Failure      502   {object}  map[string]interface{}
// @Router       /estimates/{id}/status [patch]
func (h *EstimateHandler) TransitionStatus(c *gin.Context) {
	var payload request.TransitionStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEstimatePayload.HTTPStatus, errInvalidEstimatePayload.ToHTTPError())
		return
	}
	to, err := entities.ParseEstimateStatus(payload.Status)
	if err != nil {
		respondEstimateError(c, err)
		return
	}

	doc, err := h.usecase.TransitionStatus(c.Request.Context(), c.Param("id"), to, payload.Reason, payload.ConfirmDestructive)
	if err != nil {
		respondEstimateError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromEstimateDocument(doc))
}

func respondEstimateError(c *gin.Context, err error) {
	appErr := mapEstimateError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapEstimateError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEstimateID), errors.Is(err, usecase.ErrInvalidLineID),
		errors.Is(err, entities.ErrInvalidStatus), errors.Is(err, entities.ErrNotALeaf):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidInput):
		return pkg.NewDomainErrorSimple("INVALID_ESTIMATE_INPUT", "Invalid estimate input", http.StatusBadRequest).WithDetails(err)
	case errors.Is(err, entities.ErrNotACategory):
		return pkg.NewDomainErrorSimple("NOT_A_CATEGORY", "Line is not a category", http.StatusBadRequest)
	case errors.Is(err, entities.ErrCapacityExceeded):
		return pkg.NewDomainErrorSimple("CATEGORY_CAPACITY_EXCEEDED", "No category letters left", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrEstimateNotFound):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_FOUND", "Estimate not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrLineNotFound):
		return pkg.NewDomainErrorSimple("LINE_NOT_FOUND", "Estimate line not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrCatalogEntryNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ENTRY_NOT_FOUND", "Price catalog entry not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrApprovalConflict):
		return pkg.NewDomainErrorSimple("APPROVAL_CONFLICT", "Estimate is already linked to a project", http.StatusConflict)
	case errors.Is(err, usecase.ErrConfirmationRequired):
		return pkg.NewDomainErrorSimple("CONFIRMATION_REQUIRED", "Leaving approved deletes the linked project; resend with confirm_destructive=true", http.StatusPreconditionRequired)
	case errors.Is(err, usecase.ErrConcurrentModification):
		return pkg.NewDomainErrorSimple("CONCURRENT_MODIFICATION", "Estimate was modified concurrently, reload and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrDestructiveTransitionFailed):
		return pkg.NewDomainError("DESTRUCTIVE_TRANSITION_FAILED", "Linked project could not be deleted; estimate left unchanged", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPersistenceFailure):
		return pkg.NewDomainError("PERSISTENCE_FAILURE", "Storage unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
