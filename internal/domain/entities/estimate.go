package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// EstimateStatus represents the lifecycle of a budget estimate (RAB).
//
// Domain notes:
//   - Any status may move to any other; approvals can be reversed.
//   - Approval is the only point where a Project is provisioned.
type EstimateStatus string

const (
	EstimateStatusDraft    EstimateStatus = "draft"
	EstimateStatusBidding  EstimateStatus = "bidding"
	EstimateStatusApproved EstimateStatus = "approved"
	EstimateStatusRejected EstimateStatus = "rejected"
)

func (s EstimateStatus) Valid() bool {
	switch s {
	case EstimateStatusDraft, EstimateStatusBidding, EstimateStatusApproved, EstimateStatusRejected:
		return true
	}
	return false
}

// ParseEstimateStatus normalizes user input ("Approved ", "bidding") into a status.
func ParseEstimateStatus(raw string) (EstimateStatus, error) {
	s := EstimateStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, raw)
	}
	return s, nil
}

// Estimate is the header of a budget estimate (Rencana Anggaran Biaya).
//
// Subtotal, TaxAmount and Total are derived from the line tree and are only ever
// written by Recalculate. LinkedProjectID is set if and only if Status is approved.
// Version is bumped by the storage layer on every write (optimistic concurrency).
type Estimate struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	ProjectType     string          `json:"project_type,omitempty"`
	ClientName      string          `json:"client_name"`
	Location        string          `json:"location"`
	LinkedProjectID string          `json:"linked_project_id,omitempty"`
	TaxPercentage   decimal.Decimal `json:"tax_percentage"`
	Subtotal        Money           `json:"subtotal"`
	TaxAmount       Money           `json:"tax_amount"`
	Total           Money           `json:"total"`
	Status          EstimateStatus  `json:"status"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	Version         int64           `json:"version"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// EstimateDocument is an estimate header together with its ordered lines.
type EstimateDocument struct {
	Estimate
	Lines []EstimateLine `json:"lines"`
}

// NewEstimate builds an empty draft.
func NewEstimate(id, title, projectType, clientName, location string, taxPercentage decimal.Decimal, now time.Time) (Estimate, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Estimate{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	if err := ValidateTaxPercentage(taxPercentage); err != nil {
		return Estimate{}, err
	}
	return Estimate{
		ID:            id,
		Title:         title,
		ProjectType:   strings.TrimSpace(projectType),
		ClientName:    strings.TrimSpace(clientName),
		Location:      strings.TrimSpace(location),
		TaxPercentage: taxPercentage,
		Status:        EstimateStatusDraft,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// Recalculate derives subtotal, tax and total from the tree. On error the
// header is left unchanged.
func (e *Estimate) Recalculate(tree *EstimateLineTree) error {
	subtotal, err := tree.checkedSubtotal(-1, EstimateLine{})
	if err != nil {
		return err
	}
	tax, err := subtotal.PercentageOf(e.TaxPercentage)
	if err != nil {
		return err
	}
	total, err := subtotal.AddChecked(tax)
	if err != nil {
		return err
	}
	e.Subtotal, e.TaxAmount, e.Total = subtotal, tax, total
	return nil
}

// SetTaxPercentage changes the tax rate and recalculates. Values outside [0, 100]
// are rejected and leave the estimate untouched.
func (e *Estimate) SetTaxPercentage(pct decimal.Decimal, tree *EstimateLineTree) error {
	if err := ValidateTaxPercentage(pct); err != nil {
		return err
	}
	prev := e.TaxPercentage
	e.TaxPercentage = pct
	if err := e.Recalculate(tree); err != nil {
		e.TaxPercentage = prev
		return err
	}
	return nil
}

func ValidateTaxPercentage(pct decimal.Decimal) error {
	if pct.IsNegative() || pct.GreaterThan(hundred) {
		return fmt.Errorf("%w: tax percentage must be between 0 and 100, got %s", ErrInvalidInput, pct.String())
	}
	return nil
}
