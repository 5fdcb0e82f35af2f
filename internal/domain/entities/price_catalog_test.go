package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() PriceCatalog {
	return NewPriceCatalog([]PriceCatalogEntry{
		{ID: "c3", Description: "Pasangan Bata Merah 1:4", Unit: "m2", UnitPrice: 135_000, Category: "material", Position: 3},
		{ID: "c1", Description: "Galian Tanah Biasa", Unit: "m3", UnitPrice: 85_000, Category: "labor", Position: 1},
		{ID: "c2", Description: "Beton K-225", Unit: "m3", UnitPrice: 1_150_000, Category: "material", Position: 2},
		{ID: "c4", Description: "Plesteran Bata 1:4", Unit: "m2", UnitPrice: 60_000, Category: "labor", Position: 4},
	})
}

func TestPriceCatalog_Search(t *testing.T) {
	catalog := sampleCatalog()
	require.Equal(t, 4, catalog.Len())

	t.Run("case insensitive substring in catalog order", func(t *testing.T) {
		got := catalog.Search("BATA")
		require.Len(t, got, 2)
		assert.Equal(t, "c3", got[0].ID)
		assert.Equal(t, "c4", got[1].ID)
	})

	t.Run("empty query matches nothing", func(t *testing.T) {
		assert.Empty(t, catalog.Search(""))
		assert.Empty(t, catalog.Search("   "))
		assert.NotNil(t, catalog.Search(""))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, catalog.Search("keramik"))
	})
}

func TestPriceCatalogEntry_ApplyTo(t *testing.T) {
	entry := PriceCatalogEntry{ID: "c1", Description: "Galian Tanah Biasa", Unit: "m3", UnitPrice: 85_000, Category: "labor"}

	line := EstimateLine{ID: "l1", ParentID: "cat", Quantity: *qty("2")}
	require.NoError(t, entry.ApplyTo(&line))
	assert.Equal(t, "Galian Tanah Biasa", line.Description)
	assert.Equal(t, "m3", line.Unit)
	assert.Equal(t, Money(85_000), line.UnitPrice)
	assert.Equal(t, "labor", line.CostCategory)
	assert.Equal(t, "c1", line.CatalogEntryID)
	assert.Equal(t, Money(170_000), line.LineTotal)

	category := EstimateLine{ID: "cat", IsCategory: true}
	assert.ErrorIs(t, entry.ApplyTo(&category), ErrNotALeaf)

	assert.ErrorIs(t, PriceCatalogEntry{Description: "x", UnitPrice: -1}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, PriceCatalogEntry{Description: " ", UnitPrice: 1}.Validate(), ErrInvalidInput)
}
