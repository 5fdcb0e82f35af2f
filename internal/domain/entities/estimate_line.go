package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// EstimateLine is a node of the bill of quantities.
//
// Category nodes carry a letter (A..H) as ItemNumber and a Label. Leaves carry
// "<letter>.<n>" and the priced fields; LineTotal is always UnitPrice * Quantity.
type EstimateLine struct {
	ID             string          `json:"id"`
	ParentID       string          `json:"parent_id,omitempty"`
	IsCategory     bool            `json:"is_category"`
	ItemNumber     string          `json:"item_number"`
	Label          string          `json:"label,omitempty"`
	Description    string          `json:"description,omitempty"`
	Unit           string          `json:"unit,omitempty"`
	Quantity       decimal.Decimal `json:"quantity"`
	UnitPrice      Money           `json:"unit_price"`
	LineTotal      Money           `json:"line_total"`
	CostCategory   string          `json:"cost_category,omitempty"`
	CatalogEntryID string          `json:"catalog_entry_id,omitempty"`
	Position       int             `json:"position"`
}

// LeafUpdate lists the editable fields of a line item. Nil fields are left unchanged.
type LeafUpdate struct {
	Description  *string
	Unit         *string
	Quantity     *decimal.Decimal
	UnitPrice    *Money
	CostCategory *string
}

func (u LeafUpdate) validate() error {
	if u.Quantity != nil && u.Quantity.IsNegative() {
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}
	if u.UnitPrice != nil {
		if err := validateNonNegativeMoney("unit_price", *u.UnitPrice); err != nil {
			return err
		}
	}
	return nil
}

func (u LeafUpdate) applyTo(l *EstimateLine) error {
	if u.Description != nil {
		l.Description = strings.TrimSpace(*u.Description)
	}
	if u.Unit != nil {
		l.Unit = strings.TrimSpace(*u.Unit)
	}
	if u.Quantity != nil {
		l.Quantity = *u.Quantity
	}
	if u.UnitPrice != nil {
		l.UnitPrice = *u.UnitPrice
	}
	if u.CostCategory != nil {
		l.CostCategory = strings.TrimSpace(*u.CostCategory)
	}
	return l.recomputeTotal()
}

func (l *EstimateLine) recomputeTotal() error {
	if l.IsCategory {
		l.LineTotal = 0
		return nil
	}
	total, err := l.UnitPrice.MultiplyByQuantity(l.Quantity)
	if err != nil {
		return fmt.Errorf("line %s: %w", l.ItemNumber, err)
	}
	l.LineTotal = total
	return nil
}
