package request

import (
	"rab_service/internal/domain/entities"
	"rab_service/internal/usecase"
)

// CatalogEntryRequest creates or replaces a price catalog entry. unit_price is in
// minor currency units.
type CatalogEntryRequest struct {
	Description string `json:"description" binding:"required"`
	Unit        string `json:"unit"`
	UnitPrice   int64  `json:"unit_price"`
	Category    string `json:"category"`
}

func (r CatalogEntryRequest) ToInput() usecase.CatalogEntryInput {
	return usecase.CatalogEntryInput{
		Description: r.Description,
		Unit:        r.Unit,
		UnitPrice:   entities.Money(r.UnitPrice),
		Category:    r.Category,
	}
}
