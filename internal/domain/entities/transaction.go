package entities

import (
	"fmt"
	"strings"
	"time"
)

// TransactionCategory classifies a ledger entry of a project.
type TransactionCategory string

const (
	TransactionCategoryMaterial   TransactionCategory = "material"
	TransactionCategoryLabor      TransactionCategory = "labor"
	TransactionCategoryEquipment  TransactionCategory = "equipment"
	TransactionCategoryVendor     TransactionCategory = "vendor"
	TransactionCategoryOverhead   TransactionCategory = "overhead"
	TransactionCategoryCashIn     TransactionCategory = "cash_in"
	TransactionCategoryReceivable TransactionCategory = "receivable"
	TransactionCategoryAsset      TransactionCategory = "asset"
	TransactionCategoryPayable    TransactionCategory = "payable"
)

// IsExpense reports whether the category counts toward project spending.
func (c TransactionCategory) IsExpense() bool {
	switch c {
	case TransactionCategoryMaterial, TransactionCategoryLabor, TransactionCategoryEquipment,
		TransactionCategoryVendor, TransactionCategoryOverhead:
		return true
	}
	return false
}

// IsIncome reports whether the category is money received from the client.
func (c TransactionCategory) IsIncome() bool {
	return c == TransactionCategoryCashIn
}

func (c TransactionCategory) Valid() bool {
	switch c {
	case TransactionCategoryReceivable, TransactionCategoryAsset, TransactionCategoryPayable:
		return true
	}
	return c.IsExpense() || c.IsIncome()
}

func ParseTransactionCategory(raw string) (TransactionCategory, error) {
	c := TransactionCategory(strings.ToLower(strings.TrimSpace(raw)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: unknown transaction category %q", ErrInvalidInput, raw)
	}
	return c, nil
}

// Transaction is a ledger entry recorded against a project.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (project_id-index): project_id
type Transaction struct {
	ID          string              `json:"id"`
	ProjectID   string              `json:"project_id"`
	Category    TransactionCategory `json:"category"`
	Amount      Money               `json:"amount"`
	Date        time.Time           `json:"date"`
	Description string              `json:"description,omitempty"`
	Reference   string              `json:"reference,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
}

func (t Transaction) Validate() error {
	if strings.TrimSpace(t.ProjectID) == "" {
		return fmt.Errorf("%w: project_id is required", ErrInvalidInput)
	}
	if !t.Category.Valid() {
		return fmt.Errorf("%w: unknown transaction category %q", ErrInvalidInput, t.Category)
	}
	return validateNonNegativeMoney("amount", t.Amount)
}
