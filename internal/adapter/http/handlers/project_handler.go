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

var errInvalidTransactionPayload = pkg.NewDomainErrorSimple("INVALID_TRANSACTION_INPUT", "Invalid transaction payload", http.StatusBadRequest)

// ProjectHandler exposes projects created by estimate approval and their ledger.
type ProjectHandler struct {
	usecase usecase.IProjectLedgerUseCase
}

func NewProjectHandler(uc usecase.IProjectLedgerUseCase) *ProjectHandler {
	return &ProjectHandler{usecase: uc}
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	p, err := h.usecase.GetProject(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		respondProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProject(p))
}

// GetProgress godoc
// @Summary      Project financial progress
// @Description  Income and expense as a percentage of the budget, plus balance
// @Tags         projects
// @Produce      json
// @Param        project_id  path      string  true  "Project ID"
// @Success      200         {object}  response.ProgressResponse
// @Failure      404         {object}  map[string]interface{}
// @Router       /projects/{project_id}/progress [get]
func (h *ProjectHandler) GetProgress(c *gin.Context) {
	progress, err := h.usecase.GetProgress(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		respondProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromProgress(progress))
}

func (h *ProjectHandler) RecordTransaction(c *gin.Context) {
	var payload request.RecordTransactionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTransactionPayload.HTTPStatus, errInvalidTransactionPayload.ToHTTPError())
		return
	}
	in, err := payload.ToInput(c.Param("project_id"))
	if err != nil {
		respondProjectError(c, err)
		return
	}

	tx, err := h.usecase.RecordTransaction(c.Request.Context(), in)
	if err != nil {
		respondProjectError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromTransaction(tx))
}

func (h *ProjectHandler) ListTransactions(c *gin.Context) {
	txs, err := h.usecase.ListTransactions(c.Request.Context(), c.Param("project_id"))
	if err != nil {
		respondProjectError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTransactions(txs))
}

func respondProjectError(c *gin.Context, err error) {
	appErr := mapProjectError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapProjectError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProjectID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidInput):
		return errInvalidTransactionPayload.WithDetails(err)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPersistenceFailure):
		return pkg.NewDomainError("PERSISTENCE_FAILURE", "Storage unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
