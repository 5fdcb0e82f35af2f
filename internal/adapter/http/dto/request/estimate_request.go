package request

import (
	"rab_service/internal/domain/entities"
	"rab_service/internal/usecase"

	"github.com/shopspring/decimal"
)

// CreateEstimateRequest opens a new draft. tax_percentage accepts a number or a
// decimal string; when omitted the configured default applies.
type CreateEstimateRequest struct {
	Title         string           `json:"title" binding:"required"`
	ProjectType   string           `json:"project_type"`
	ClientName    string           `json:"client_name"`
	Location      string           `json:"location"`
	TaxPercentage *decimal.Decimal `json:"tax_percentage" swaggertype:"string"`
}

func (r CreateEstimateRequest) ToInput() usecase.CreateEstimateInput {
	return usecase.CreateEstimateInput{
		Title:         r.Title,
		ProjectType:   r.ProjectType,
		ClientName:    r.ClientName,
		Location:      r.Location,
		TaxPercentage: r.TaxPercentage,
	}
}

type CategoryRequest struct {
	Label string `json:"label" binding:"required"`
}

// UpdateLineItemRequest is a partial update; omitted fields are left unchanged.
// unit_price is in minor currency units.
type UpdateLineItemRequest struct {
	Description  *string          `json:"description"`
	Unit         *string          `json:"unit"`
	Quantity     *decimal.Decimal `json:"quantity" swaggertype:"string"`
	UnitPrice    *int64           `json:"unit_price"`
	CostCategory *string          `json:"cost_category"`
}

func (r UpdateLineItemRequest) ToLeafUpdate() entities.LeafUpdate {
	u := entities.LeafUpdate{
		Description:  r.Description,
		Unit:         r.Unit,
		Quantity:     r.Quantity,
		CostCategory: r.CostCategory,
	}
	if r.UnitPrice != nil {
		m := entities.Money(*r.UnitPrice)
		u.UnitPrice = &m
	}
	return u
}

type ApplyCatalogEntryRequest struct {
	EntryID string `json:"entry_id" binding:"required"`
}

type SetTaxPercentageRequest struct {
	TaxPercentage *decimal.Decimal `json:"tax_percentage" binding:"required" swaggertype:"string"`
}

// TransitionStatusRequest moves an estimate through its lifecycle. Leaving
// approved deletes the linked project, so it requires confirm_destructive.
type TransitionStatusRequest struct {
	Status             string `json:"status" binding:"required"`
	Reason             string `json:"reason"`
	ConfirmDestructive bool   `json:"confirm_destructive"`
}
