package entities

import "errors"

// Domain validation and structural errors. Callers wrap them with context using
// fmt.Errorf("%w: ...") so errors.Is keeps working across layers.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrLineNotFound         = errors.New("estimate line not found")
	ErrNotACategory         = errors.New("line is not a category")
	ErrNotALeaf             = errors.New("line is not a line item")
	ErrCapacityExceeded     = errors.New("category capacity exceeded")
	ErrApprovalConflict     = errors.New("estimate already linked to a project")
	ErrInvalidStatus        = errors.New("invalid estimate status")
	ErrCatalogEntryNotFound = errors.New("price catalog entry not found")
)
