package entities

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxCategories is the number of category letters available to one estimate.
const MaxCategories = 8

const categoryLetters = "ABCDEFGH"

// EstimateLineTree owns the category/item hierarchy of one estimate together with
// its derived numbering and totals.
//
// Lines are kept flat, in display order: every category is followed by its items.
// A new category goes to the end; a new item goes after the last item of its category.
// Item numbers are contiguous per category and are rewritten whenever a sibling is
// removed. Category letters are never rewritten; a freed letter is reused by the
// next AddCategory.
type EstimateLineTree struct {
	lines []EstimateLine
	newID func() string
}

func NewEstimateLineTree() *EstimateLineTree {
	return &EstimateLineTree{newID: uuid.NewString}
}

// RestoreEstimateLineTree rebuilds a tree from persisted lines.
//
// Stored numbering and totals are ignored and derived again; structural violations
// (unknown parent, duplicate or invalid letter, too many categories) are rejected.
func RestoreEstimateLineTree(lines []EstimateLine) (*EstimateLineTree, error) {
	sorted := make([]EstimateLine, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Position < sorted[j].Position })

	var categories []EstimateLine
	children := map[string][]EstimateLine{}
	letters := map[string]bool{}
	for _, l := range sorted {
		if strings.TrimSpace(l.ID) == "" {
			return nil, fmt.Errorf("%w: line without id", ErrInvalidInput)
		}
		if l.IsCategory {
			if len(l.ItemNumber) != 1 || !strings.Contains(categoryLetters, l.ItemNumber) {
				return nil, fmt.Errorf("%w: invalid category letter %q", ErrInvalidInput, l.ItemNumber)
			}
			if letters[l.ItemNumber] {
				return nil, fmt.Errorf("%w: duplicate category letter %q", ErrInvalidInput, l.ItemNumber)
			}
			letters[l.ItemNumber] = true
			l.ParentID = ""
			categories = append(categories, l)
			continue
		}
		children[l.ParentID] = append(children[l.ParentID], l)
	}
	if len(categories) > MaxCategories {
		return nil, ErrCapacityExceeded
	}

	t := NewEstimateLineTree()
	seen := 0
	for _, c := range categories {
		if err := c.recomputeTotal(); err != nil {
			return nil, err
		}
		t.lines = append(t.lines, c)
		for _, leaf := range children[c.ID] {
			if err := leaf.recomputeTotal(); err != nil {
				return nil, err
			}
			t.lines = append(t.lines, leaf)
			seen++
		}
		t.renumber(c.ID)
	}
	if orphans := countLeaves(sorted) - seen; orphans > 0 {
		return nil, fmt.Errorf("%w: %d line items reference a missing category", ErrInvalidInput, orphans)
	}
	if _, err := t.checkedSubtotal(-1, EstimateLine{}); err != nil {
		return nil, err
	}
	return t, nil
}

// AddCategory appends a category using the lowest free letter.
func (t *EstimateLineTree) AddCategory(label string) (EstimateLine, error) {
	letter, ok := t.nextFreeLetter()
	if !ok {
		return EstimateLine{}, ErrCapacityExceeded
	}
	line := EstimateLine{
		ID:         t.newID(),
		IsCategory: true,
		ItemNumber: letter,
		Label:      strings.TrimSpace(label),
		Quantity:   decimal.Zero,
	}
	t.lines = append(t.lines, line)
	return t.lineAt(len(t.lines) - 1), nil
}

// AddLeaf appends an empty item as the last child of the given category.
func (t *EstimateLineTree) AddLeaf(parentCategoryID string) (EstimateLine, error) {
	idx := t.indexOf(parentCategoryID)
	if idx < 0 {
		return EstimateLine{}, ErrLineNotFound
	}
	parent := t.lines[idx]
	if !parent.IsCategory {
		return EstimateLine{}, ErrNotACategory
	}

	insertAt := idx + 1
	count := 0
	for i := idx + 1; i < len(t.lines) && t.lines[i].ParentID == parent.ID; i++ {
		insertAt = i + 1
		count++
	}

	leaf := EstimateLine{
		ID:         t.newID(),
		ParentID:   parent.ID,
		ItemNumber: fmt.Sprintf("%s.%d", parent.ItemNumber, count+1),
		Quantity:   decimal.Zero,
	}
	t.lines = append(t.lines, EstimateLine{})
	copy(t.lines[insertAt+1:], t.lines[insertAt:])
	t.lines[insertAt] = leaf
	return t.lineAt(insertAt), nil
}

// UpdateLeaf applies an edit to an item. Validation happens before any field is
// touched, so a rejected edit leaves the line unchanged.
func (t *EstimateLineTree) UpdateLeaf(id string, u LeafUpdate) (EstimateLine, error) {
	idx := t.indexOf(id)
	if idx < 0 {
		return EstimateLine{}, ErrLineNotFound
	}
	if t.lines[idx].IsCategory {
		return EstimateLine{}, ErrNotALeaf
	}
	if err := u.validate(); err != nil {
		return EstimateLine{}, err
	}
	updated := t.lines[idx]
	if err := u.applyTo(&updated); err != nil {
		return EstimateLine{}, err
	}
	if _, err := t.checkedSubtotal(idx, updated); err != nil {
		return EstimateLine{}, err
	}
	t.lines[idx] = updated
	return t.lineAt(idx), nil
}

// RenameCategory changes a category label. Numbering is unaffected.
func (t *EstimateLineTree) RenameCategory(id, label string) (EstimateLine, error) {
	idx := t.indexOf(id)
	if idx < 0 {
		return EstimateLine{}, ErrLineNotFound
	}
	if !t.lines[idx].IsCategory {
		return EstimateLine{}, ErrNotACategory
	}
	t.lines[idx].Label = strings.TrimSpace(label)
	return t.lineAt(idx), nil
}

// ApplyCatalogEntry populates an item from a catalog entry (copy semantics).
func (t *EstimateLineTree) ApplyCatalogEntry(id string, entry PriceCatalogEntry) (EstimateLine, error) {
	idx := t.indexOf(id)
	if idx < 0 {
		return EstimateLine{}, ErrLineNotFound
	}
	line := t.lines[idx]
	if err := entry.ApplyTo(&line); err != nil {
		return EstimateLine{}, err
	}
	if _, err := t.checkedSubtotal(idx, line); err != nil {
		return EstimateLine{}, err
	}
	t.lines[idx] = line
	return t.lineAt(idx), nil
}

// RemoveLine deletes an item (renumbering its siblings) or a category with all its items.
func (t *EstimateLineTree) RemoveLine(id string) error {
	idx := t.indexOf(id)
	if idx < 0 {
		return ErrLineNotFound
	}
	target := t.lines[idx]

	kept := t.lines[:0]
	for _, l := range t.lines {
		if l.ID == target.ID || (target.IsCategory && l.ParentID == target.ID) {
			continue
		}
		kept = append(kept, l)
	}
	t.lines = kept

	if !target.IsCategory {
		t.renumber(target.ParentID)
	}
	return nil
}

// Subtotal is the sum of every item total. Categories contribute nothing.
// Edits that would push it past MaxAmount are rejected, so the sum always fits.
func (t *EstimateLineTree) Subtotal() Money {
	total, _ := t.checkedSubtotal(-1, EstimateLine{})
	return total
}

// checkedSubtotal sums item totals with the line at idx replaced by candidate
// (idx < 0 sums the tree as is).
func (t *EstimateLineTree) checkedSubtotal(idx int, candidate EstimateLine) (Money, error) {
	var total Money
	for i, l := range t.lines {
		if i == idx {
			l = candidate
		}
		if l.IsCategory {
			continue
		}
		next, err := total.AddChecked(l.LineTotal)
		if err != nil {
			return 0, fmt.Errorf("%w: estimate subtotal exceeds the supported range", ErrInvalidInput)
		}
		total = next
	}
	return total, nil
}

// Lines returns a copy of all lines in display order with Position filled in.
func (t *EstimateLineTree) Lines() []EstimateLine {
	out := make([]EstimateLine, len(t.lines))
	for i := range t.lines {
		out[i] = t.lineAt(i)
	}
	return out
}

func (t *EstimateLineTree) Line(id string) (EstimateLine, bool) {
	idx := t.indexOf(id)
	if idx < 0 {
		return EstimateLine{}, false
	}
	return t.lineAt(idx), true
}

func (t *EstimateLineTree) CategoryCount() int {
	n := 0
	for _, l := range t.lines {
		if l.IsCategory {
			n++
		}
	}
	return n
}

func (t *EstimateLineTree) nextFreeLetter() (string, bool) {
	used := map[string]bool{}
	for _, l := range t.lines {
		if l.IsCategory {
			used[l.ItemNumber] = true
		}
	}
	for _, r := range categoryLetters {
		if !used[string(r)] {
			return string(r), true
		}
	}
	return "", false
}

func (t *EstimateLineTree) renumber(categoryID string) {
	idx := t.indexOf(categoryID)
	if idx < 0 {
		return
	}
	letter := t.lines[idx].ItemNumber
	n := 0
	for i := range t.lines {
		if t.lines[i].ParentID != categoryID || t.lines[i].IsCategory {
			continue
		}
		n++
		t.lines[i].ItemNumber = fmt.Sprintf("%s.%d", letter, n)
	}
}

func (t *EstimateLineTree) indexOf(id string) int {
	if id == "" {
		return -1
	}
	for i := range t.lines {
		if t.lines[i].ID == id {
			return i
		}
	}
	return -1
}

func (t *EstimateLineTree) lineAt(i int) EstimateLine {
	l := t.lines[i]
	l.Position = i
	return l
}

func countLeaves(lines []EstimateLine) int {
	n := 0
	for _, l := range lines {
		if !l.IsCategory {
			n++
		}
	}
	return n
}
