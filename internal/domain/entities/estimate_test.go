package entities

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEstimate(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	e, err := NewEstimate("est-1", "  Rumah Tinggal 2 Lantai ", "residential", " PT Maju ", "Bandung", decimal.NewFromInt(11), now)
	require.NoError(t, err)
	assert.Equal(t, "Rumah Tinggal 2 Lantai", e.Title)
	assert.Equal(t, "PT Maju", e.ClientName)
	assert.Equal(t, EstimateStatusDraft, e.Status)
	assert.Empty(t, e.LinkedProjectID)
	assert.Equal(t, Money(0), e.Total)
	assert.Equal(t, now, e.CreatedAt)

	_, err = NewEstimate("est-2", "   ", "", "", "", decimal.Zero, now)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewEstimate("est-3", "x", "", "", "", decimal.NewFromInt(101), now)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEstimate_RecalculateAndTax(t *testing.T) {
	tree := newTestTree()
	a, _ := tree.AddCategory("Struktur")
	leaf, _ := tree.AddLeaf(a.ID)
	_, err := tree.UpdateLeaf(leaf.ID, LeafUpdate{Quantity: qty("10"), UnitPrice: price(1_000_000)})
	require.NoError(t, err)

	e := Estimate{TaxPercentage: decimal.NewFromInt(11)}
	require.NoError(t, e.Recalculate(tree))
	assert.Equal(t, Money(10_000_000), e.Subtotal)
	assert.Equal(t, Money(1_100_000), e.TaxAmount)
	assert.Equal(t, Money(11_100_000), e.Total)

	t.Run("tax change is independent of the previous rate", func(t *testing.T) {
		for _, pct := range []string{"0", "12.5", "11", "100", "11"} {
			require.NoError(t, e.SetTaxPercentage(decimal.RequireFromString(pct), tree))
			want, err := e.Subtotal.PercentageOf(decimal.RequireFromString(pct))
			require.NoError(t, err)
			assert.Equal(t, want, e.TaxAmount)
			assert.Equal(t, e.Subtotal.Add(want), e.Total)
		}
		assert.Equal(t, Money(1_100_000), e.TaxAmount)
	})

	t.Run("out of range rate is rejected and nothing changes", func(t *testing.T) {
		before := e
		assert.ErrorIs(t, e.SetTaxPercentage(decimal.NewFromInt(-1), tree), ErrInvalidInput)
		assert.ErrorIs(t, e.SetTaxPercentage(decimal.RequireFromString("100.01"), tree), ErrInvalidInput)
		assert.Equal(t, before, e)
	})
}

func TestEstimate_TotalOutOfRange(t *testing.T) {
	tree := newTestTree()
	a, _ := tree.AddCategory("Struktur")
	leaf, _ := tree.AddLeaf(a.ID)
	_, err := tree.UpdateLeaf(leaf.ID, LeafUpdate{Quantity: qty("1"), UnitPrice: price(4_000_000_000_000_000_000)})
	require.NoError(t, err)

	e := Estimate{TaxPercentage: decimal.Zero}
	require.NoError(t, e.Recalculate(tree))
	assert.Equal(t, Money(4_000_000_000_000_000_000), e.Total)

	before := e
	err = e.SetTaxPercentage(decimal.NewFromInt(100), tree)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, before, e)
	assert.False(t, e.Total.IsNegative())
}

func TestParseEstimateStatus(t *testing.T) {
	s, err := ParseEstimateStatus(" Approved ")
	require.NoError(t, err)
	assert.Equal(t, EstimateStatusApproved, s)

	_, err = ParseEstimateStatus("cancelled")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
