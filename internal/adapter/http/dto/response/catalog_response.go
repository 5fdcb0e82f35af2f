package response

import "rab_service/internal/domain/entities"

type CatalogEntryResponse struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Unit        string `json:"unit"`
	UnitPrice   int64  `json:"unit_price"`
	Category    string `json:"category,omitempty"`
}

func FromCatalogEntry(e entities.PriceCatalogEntry) CatalogEntryResponse {
	return CatalogEntryResponse{
		ID:          e.ID,
		Description: e.Description,
		Unit:        e.Unit,
		UnitPrice:   int64(e.UnitPrice),
		Category:    e.Category,
	}
}

func FromCatalogEntries(items []entities.PriceCatalogEntry) []CatalogEntryResponse {
	out := make([]CatalogEntryResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromCatalogEntry(e))
	}
	return out
}
