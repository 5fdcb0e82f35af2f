package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "rab_service/internal/adapter/http/dto/request"
	response "rab_service/internal/adapter/http/dto/response"
	"rab_service/internal/domain/entities"
	"rab_service/internal/usecase"
	"rab_service/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid price catalog payload", http.StatusBadRequest)

// CatalogHandler serves the price catalog used to populate estimate lines.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// Search godoc
// @Summary  Search the price catalog
// @Tags     catalog
// @Produce  json
// @Param    q      query     string  false  "Description substring"
// @Param    limit  query     int     false  "Maximum results"
// @Success  200    {array}   response.CatalogEntryResponse
// @Router   /catalog [get]
func (h *CatalogHandler) Search(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
			return
		}
		limit = n
	}

	items, err := h.usecase.Search(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogEntries(items))
}

func (h *CatalogHandler) GetEntry(c *gin.Context) {
	entry, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogEntry(entry))
}

func (h *CatalogHandler) CreateEntry(c *gin.Context) {
	var payload request.CatalogEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}
	entry, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromCatalogEntry(entry))
}

// UpdateEntry replaces the editable fields of an entry. Estimate lines filled
// from it earlier keep their values.
func (h *CatalogHandler) UpdateEntry(c *gin.Context) {
	var payload request.CatalogEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}
	entry, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCatalogEntry(entry))
}

func respondCatalogError(c *gin.Context, err error) {
	appErr := mapCatalogError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrInvalidInput):
		return errInvalidCatalogPayload.WithDetails(err)
	case errors.Is(err, entities.ErrCatalogEntryNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ENTRY_NOT_FOUND", "Price catalog entry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPersistenceFailure):
		return pkg.NewDomainError("PERSISTENCE_FAILURE", "Storage unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
