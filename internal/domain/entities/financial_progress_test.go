package entities

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func tx(cat TransactionCategory, amount Money) Transaction {
	return Transaction{ProjectID: "prj-1", Category: cat, Amount: amount}
}

func TestComputeFinancialProgress(t *testing.T) {
	t.Run("over budget and negative balance are valid", func(t *testing.T) {
		project := Project{ID: "prj-1", BudgetValue: 100_000_000}
		txs := []Transaction{
			tx(TransactionCategoryCashIn, 20_000_000),
			tx(TransactionCategoryCashIn, 10_000_000),
			tx(TransactionCategoryMaterial, 50_000_000),
			tx(TransactionCategoryLabor, 30_000_000),
			tx(TransactionCategoryEquipment, 20_000_000),
			tx(TransactionCategoryVendor, 15_000_000),
			tx(TransactionCategoryOverhead, 5_000_000),
		}
		got := ComputeFinancialProgress(project, txs)
		assert.True(t, got.IncomePct.Equal(decimal.RequireFromString("30.0")), got.IncomePct.String())
		assert.True(t, got.ExpensePct.Equal(decimal.RequireFromString("120.0")), got.ExpensePct.String())
		assert.Equal(t, Money(-90_000_000), got.Balance)
		assert.Equal(t, Money(30_000_000), got.IncomeTotal)
		assert.Equal(t, Money(120_000_000), got.ExpenseTotal)
	})

	t.Run("zero budget yields zeros whatever the ledger holds", func(t *testing.T) {
		project := Project{ID: "prj-1", BudgetValue: 0}
		got := ComputeFinancialProgress(project, []Transaction{
			tx(TransactionCategoryCashIn, 5_000),
			tx(TransactionCategoryMaterial, 9_000),
		})
		assert.True(t, got.IncomePct.IsZero())
		assert.True(t, got.ExpensePct.IsZero())
		assert.Equal(t, Money(0), got.Balance)
	})

	t.Run("non income or expense categories are ignored", func(t *testing.T) {
		project := Project{ID: "prj-1", BudgetValue: 1_000}
		got := ComputeFinancialProgress(project, []Transaction{
			tx(TransactionCategoryReceivable, 500),
			tx(TransactionCategoryAsset, 500),
			tx(TransactionCategoryPayable, 500),
			tx(TransactionCategory("mystery"), 500),
			tx(TransactionCategoryCashIn, 100),
			{ProjectID: "prj-other", Category: TransactionCategoryMaterial, Amount: 700},
		})
		assert.Equal(t, Money(100), got.Balance)
		assert.True(t, got.IncomePct.Equal(decimal.NewFromInt(10)))
		assert.True(t, got.ExpensePct.IsZero())
	})

	t.Run("percentages round half up to one decimal", func(t *testing.T) {
		project := Project{ID: "prj-1", BudgetValue: 3_000}
		got := ComputeFinancialProgress(project, []Transaction{
			tx(TransactionCategoryCashIn, 1_000),
			tx(TransactionCategoryMaterial, 2_000),
		})
		assert.Equal(t, "33.3", got.IncomePct.StringFixed(1))
		assert.Equal(t, "66.7", got.ExpensePct.StringFixed(1))

		project.BudgetValue = 2_000
		got = ComputeFinancialProgress(project, []Transaction{tx(TransactionCategoryCashIn, 1)})
		assert.Equal(t, "0.1", got.IncomePct.StringFixed(1))
	})

	t.Run("empty ledger", func(t *testing.T) {
		got := ComputeFinancialProgress(Project{ID: "prj-1", BudgetValue: 1}, nil)
		assert.True(t, got.IncomePct.IsZero())
		assert.Equal(t, Money(0), got.Balance)
	})
}

func TestClampPercentForDisplay(t *testing.T) {
	assert.True(t, ClampPercentForDisplay(decimal.NewFromInt(120)).Equal(decimal.NewFromInt(100)))
	assert.True(t, ClampPercentForDisplay(decimal.RequireFromString("99.9")).Equal(decimal.RequireFromString("99.9")))
	assert.True(t, ClampPercentForDisplay(decimal.NewFromInt(-3)).IsZero())
}

func TestTransactionCategory(t *testing.T) {
	assert.True(t, TransactionCategoryOverhead.IsExpense())
	assert.False(t, TransactionCategoryPayable.IsExpense())
	assert.True(t, TransactionCategoryCashIn.IsIncome())
	assert.True(t, TransactionCategoryReceivable.Valid())

	c, err := ParseTransactionCategory(" CASH_IN ")
	assert.NoError(t, err)
	assert.Equal(t, TransactionCategoryCashIn, c)

	_, err = ParseTransactionCategory("refund")
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.ErrorIs(t, Transaction{ProjectID: "p", Category: TransactionCategoryLabor, Amount: -1}.Validate(), ErrInvalidInput)
	assert.NoError(t, Transaction{ProjectID: "p", Category: TransactionCategoryLabor, Amount: 0}.Validate())
}
