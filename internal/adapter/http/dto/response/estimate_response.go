package response

import (
	"time"

	"rab_service/internal/domain/entities"
)

// Amounts are in minor currency units; the *_display fields render them in
// major units with two decimals.
type EstimateResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	ProjectType     string    `json:"project_type,omitempty"`
	ClientName      string    `json:"client_name"`
	Location        string    `json:"location"`
	LinkedProjectID string    `json:"linked_project_id,omitempty"`
	TaxPercentage   string    `json:"tax_percentage"`
	Subtotal        int64     `json:"subtotal"`
	TaxAmount       int64     `json:"tax_amount"`
	Total           int64     `json:"total"`
	TotalDisplay    string    `json:"total_display"`
	Status          string    `json:"status"`
	RejectionReason string    `json:"rejection_reason,omitempty"`
	Version         int64     `json:"version"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type EstimateLineResponse struct {
	ID             string `json:"id"`
	ParentID       string `json:"parent_id,omitempty"`
	IsCategory     bool   `json:"is_category"`
	ItemNumber     string `json:"item_number"`
	Label          string `json:"label,omitempty"`
	Description    string `json:"description,omitempty"`
	Unit           string `json:"unit,omitempty"`
	Quantity       string `json:"quantity,omitempty"`
	UnitPrice      int64  `json:"unit_price"`
	LineTotal      int64  `json:"line_total"`
	CostCategory   string `json:"cost_category,omitempty"`
	CatalogEntryID string `json:"catalog_entry_id,omitempty"`
	Position       int    `json:"position"`
}

type EstimateDocumentResponse struct {
	EstimateResponse
	Lines []EstimateLineResponse `json:"lines"`
}

func FromEstimate(e entities.Estimate) EstimateResponse {
	return EstimateResponse{
		ID:              e.ID,
		Title:           e.Title,
		ProjectType:     e.ProjectType,
		ClientName:      e.ClientName,
		Location:        e.Location,
		LinkedProjectID: e.LinkedProjectID,
		TaxPercentage:   e.TaxPercentage.String(),
		Subtotal:        int64(e.Subtotal),
		TaxAmount:       int64(e.TaxAmount),
		Total:           int64(e.Total),
		TotalDisplay:    e.Total.Format(),
		Status:          string(e.Status),
		RejectionReason: e.RejectionReason,
		Version:         e.Version,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func FromEstimates(items []entities.Estimate) []EstimateResponse {
	out := make([]EstimateResponse, 0, len(items))
	for _, e := range items {
		out = append(out, FromEstimate(e))
	}
	return out
}

func FromEstimateDocument(doc entities.EstimateDocument) EstimateDocumentResponse {
	lines := make([]EstimateLineResponse, 0, len(doc.Lines))
	for _, l := range doc.Lines {
		r := EstimateLineResponse{
			ID:             l.ID,
			ParentID:       l.ParentID,
			IsCategory:     l.IsCategory,
			ItemNumber:     l.ItemNumber,
			Label:          l.Label,
			Description:    l.Description,
			Unit:           l.Unit,
			UnitPrice:      int64(l.UnitPrice),
			LineTotal:      int64(l.LineTotal),
			CostCategory:   l.CostCategory,
			CatalogEntryID: l.CatalogEntryID,
			Position:       l.Position,
		}
		if !l.IsCategory {
			r.Quantity = l.Quantity.String()
		}
		lines = append(lines, r)
	}
	return EstimateDocumentResponse{EstimateResponse: FromEstimate(doc.Estimate), Lines: lines}
}
