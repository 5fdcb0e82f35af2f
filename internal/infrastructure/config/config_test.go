package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("DEFAULT_TAX_PERCENTAGE", "")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, StorageDynamoDB, cfg.Storage)
	assert.Equal(t, "price_catalog", cfg.DynamoDB.CatalogTable)
	assert.Equal(t, 10*time.Second, cfg.Lock.TTL)
	assert.Equal(t, 5, cfg.CatalogSearchLimit)
	assert.True(t, cfg.DefaultTaxPercentage.Equal(decimal.NewFromInt(11)))
	assert.False(t, cfg.Payments.MockMode)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "SQLite")
	t.Setenv("DATABASE_DSN", "file::memory:")
	t.Setenv("DEFAULT_TAX_PERCENTAGE", "12.5")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("LOCK_WAIT", "250ms")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StorageSQLite, cfg.Storage)
	assert.True(t, cfg.DefaultTaxPercentage.Equal(decimal.RequireFromString("12.5")))
	assert.True(t, cfg.Payments.MockMode)
	assert.Equal(t, 250*time.Millisecond, cfg.Lock.Wait)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "mongo")
		t.Setenv("DEFAULT_TAX_PERCENTAGE", "")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("tax", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "")
		t.Setenv("DEFAULT_TAX_PERCENTAGE", "140")
		_, err := Load()
		assert.Error(t, err)
	})
}
