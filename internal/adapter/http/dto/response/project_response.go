package response

import (
	"time"

	"rab_service/internal/domain/entities"
)

type ProjectResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	BudgetValue int64     `json:"budget_value"`
	Status      string    `json:"status"`
	EstimateID  string    `json:"estimate_id"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		BudgetValue: int64(p.BudgetValue),
		Status:      string(p.Status),
		EstimateID:  p.EstimateID,
		CreatedAt:   p.CreatedAt,
	}
}

type TransactionResponse struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	Category    string    `json:"category"`
	Amount      int64     `json:"amount"`
	Date        time.Time `json:"date"`
	Description string    `json:"description,omitempty"`
	Reference   string    `json:"reference,omitempty"`
}

func FromTransaction(t entities.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Category:    string(t.Category),
		Amount:      int64(t.Amount),
		Date:        t.Date,
		Description: t.Description,
		Reference:   t.Reference,
	}
}

func FromTransactions(items []entities.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(items))
	for _, t := range items {
		out = append(out, FromTransaction(t))
	}
	return out
}

// ProgressResponse carries the raw percentages (may exceed 100) and the values
// capped to [0, 100] for progress bars.
type ProgressResponse struct {
	ProjectID         string `json:"project_id"`
	BudgetValue       int64  `json:"budget_value"`
	IncomeTotal       int64  `json:"income_total"`
	ExpenseTotal      int64  `json:"expense_total"`
	IncomePct         string `json:"income_pct"`
	ExpensePct        string `json:"expense_pct"`
	IncomePctDisplay  string `json:"income_pct_display"`
	ExpensePctDisplay string `json:"expense_pct_display"`
	Balance           int64  `json:"balance"`
}

func FromProgress(p entities.FinancialProgress) ProgressResponse {
	return ProgressResponse{
		ProjectID:         p.ProjectID,
		BudgetValue:       int64(p.BudgetValue),
		IncomeTotal:       int64(p.IncomeTotal),
		ExpenseTotal:      int64(p.ExpenseTotal),
		IncomePct:         p.IncomePct.StringFixed(1),
		ExpensePct:        p.ExpensePct.StringFixed(1),
		IncomePctDisplay:  entities.ClampPercentForDisplay(p.IncomePct).StringFixed(1),
		ExpensePctDisplay: entities.ClampPercentForDisplay(p.ExpensePct).StringFixed(1),
		Balance:           int64(p.Balance),
	}
}
