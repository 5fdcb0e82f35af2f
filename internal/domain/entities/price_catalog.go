package entities

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// PriceCatalogEntry is a reusable unit-price reference (Analisa Harga Satuan).
//
// Entries are copied into estimate lines, never referenced: editing an entry later
// does not change lines that were populated from it.
type PriceCatalogEntry struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Unit        string    `json:"unit"`
	UnitPrice   Money     `json:"unit_price"`
	Category    string    `json:"category"`
	Position    int64     `json:"position"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (e PriceCatalogEntry) Validate() error {
	if strings.TrimSpace(e.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	return validateNonNegativeMoney("unit_price", e.UnitPrice)
}

// ApplyTo copies description, unit, unit price and category into a leaf line and
// recomputes its total. The line is left untouched when the new total is out of range.
func (e PriceCatalogEntry) ApplyTo(line *EstimateLine) error {
	if line == nil {
		return fmt.Errorf("%w: nil line", ErrInvalidInput)
	}
	if line.IsCategory {
		return ErrNotALeaf
	}
	if err := validateNonNegativeMoney("unit_price", e.UnitPrice); err != nil {
		return err
	}
	updated := *line
	updated.Description = e.Description
	updated.Unit = e.Unit
	updated.UnitPrice = e.UnitPrice
	updated.CostCategory = e.Category
	updated.CatalogEntryID = e.ID
	if err := updated.recomputeTotal(); err != nil {
		return err
	}
	*line = updated
	return nil
}

// PriceCatalog is a read-only, insertion-ordered view over catalog entries.
type PriceCatalog struct {
	entries []PriceCatalogEntry
}

func NewPriceCatalog(entries []PriceCatalogEntry) PriceCatalog {
	cp := make([]PriceCatalogEntry, len(entries))
	copy(cp, entries)
	sort.SliceStable(cp, func(i, j int) bool { return cp[i].Position < cp[j].Position })
	return PriceCatalog{entries: cp}
}

// Search returns entries whose description contains query, case-insensitively,
// in catalog order. An empty query matches nothing.
func (c PriceCatalog) Search(query string) []PriceCatalogEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []PriceCatalogEntry{}
	}
	out := make([]PriceCatalogEntry, 0)
	for _, e := range c.entries {
		if strings.Contains(strings.ToLower(e.Description), q) {
			out = append(out, e)
		}
	}
	return out
}

func (c PriceCatalog) Len() int {
	return len(c.entries)
}
