package entities

import "github.com/shopspring/decimal"

// FinancialProgress is the derived income/expense view of a project. It is never
// persisted; recompute it from the current ledger.
//
// Percentages are relative to the project budget, rounded to one decimal place and
// not clamped: 120.0 means spending is 20% over budget. Balance may be negative.
type FinancialProgress struct {
	ProjectID    string          `json:"project_id"`
	BudgetValue  Money           `json:"budget_value"`
	IncomeTotal  Money           `json:"income_total"`
	ExpenseTotal Money           `json:"expense_total"`
	IncomePct    decimal.Decimal `json:"income_pct"`
	ExpensePct   decimal.Decimal `json:"expense_pct"`
	Balance      Money           `json:"balance"`
}

// ComputeFinancialProgress aggregates a project's transactions.
//
// Transactions with categories that are neither income nor expense (receivable,
// asset, payable, or anything unrecognized) are ignored. Transactions belonging to
// another project are ignored too. A project without a budget reports all zeros,
// whatever its ledger holds.
func ComputeFinancialProgress(project Project, txs []Transaction) FinancialProgress {
	if project.BudgetValue <= 0 {
		return FinancialProgress{
			ProjectID:   project.ID,
			BudgetValue: project.BudgetValue,
			IncomePct:   decimal.Zero,
			ExpensePct:  decimal.Zero,
		}
	}

	var income, expense Money
	for _, tx := range txs {
		if tx.ProjectID != "" && tx.ProjectID != project.ID {
			continue
		}
		switch {
		case tx.Category.IsIncome():
			income = income.Add(tx.Amount)
		case tx.Category.IsExpense():
			expense = expense.Add(tx.Amount)
		}
	}

	return FinancialProgress{
		ProjectID:    project.ID,
		BudgetValue:  project.BudgetValue,
		IncomeTotal:  income,
		ExpenseTotal: expense,
		IncomePct:    percentOfBudget(income, project.BudgetValue),
		ExpensePct:   percentOfBudget(expense, project.BudgetValue),
		Balance:      income.Subtract(expense),
	}
}

func percentOfBudget(amount, budget Money) decimal.Decimal {
	ratio := decimal.NewFromInt(int64(amount)).Mul(hundred).Div(decimal.NewFromInt(int64(budget)))
	return roundHalfUpPlaces(ratio, 1)
}

// ClampPercentForDisplay caps a percentage at 100 for progress bars.
func ClampPercentForDisplay(pct decimal.Decimal) decimal.Decimal {
	if pct.GreaterThan(hundred) {
		return hundred
	}
	if pct.IsNegative() {
		return decimal.Zero
	}
	return pct
}
