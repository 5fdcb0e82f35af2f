package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

// Config is the process configuration, read from the environment (and a .env
// file loaded by godotenv/autoload before main runs).
type Config struct {
	Port     int
	LogLevel string

	Storage  string
	SQLDSN   string
	DynamoDB DynamoDBConfig

	Redis RedisConfig
	Lock  LockConfig

	Payments PaymentsConfig

	CatalogSearchLimit   int
	DefaultTaxPercentage decimal.Decimal
}

type DynamoDBConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string

	EstimatesTable    string
	ProjectsTable     string
	TransactionsTable string
	CatalogTable      string
	PaymentsTable     string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// LockConfig bounds how long a document lock is held and waited for.
type LockConfig struct {
	TTL  time.Duration
	Wait time.Duration
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string
	MockMode               bool
	TestPayerEmail         string
	TestPayerUserID        string
}

// Load reads the configuration through viper. Unset keys fall back to defaults that
// work against a local DynamoDB and no Redis.
func Load() (Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	tax, err := decimal.NewFromString(strings.TrimSpace(v.GetString("DEFAULT_TAX_PERCENTAGE")))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DEFAULT_TAX_PERCENTAGE: %w", err)
	}

	cfg := Config{
		Port:     v.GetInt("PORT"),
		LogLevel: v.GetString("LOG_LEVEL"),
		Storage:  strings.ToLower(strings.TrimSpace(v.GetString("STORAGE_DRIVER"))),
		SQLDSN:   v.GetString("DATABASE_DSN"),
		DynamoDB: DynamoDBConfig{
			Region:            v.GetString("AWS_REGION"),
			Endpoint:          v.GetString("DYNAMODB_ENDPOINT"),
			AccessKeyID:       v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:   v.GetString("AWS_SECRET_ACCESS_KEY"),
			EstimatesTable:    v.GetString("ESTIMATES_TABLE"),
			ProjectsTable:     v.GetString("PROJECTS_TABLE"),
			TransactionsTable: v.GetString("TRANSACTIONS_TABLE"),
			CatalogTable:      v.GetString("PRICE_CATALOG_TABLE"),
			PaymentsTable:     v.GetString("PAYMENTS_TABLE"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Lock: LockConfig{
			TTL:  v.GetDuration("LOCK_TTL"),
			Wait: v.GetDuration("LOCK_WAIT"),
		},
		Payments: PaymentsConfig{
			MercadoPagoAccessToken: v.GetString("MERCADOPAGO_ACCESS_TOKEN"),
			MockMode:               v.GetBool("PAYMENT_GATEWAY_MOCK") || v.GetBool("MERCADOPAGO_MOCK"),
			TestPayerEmail:         v.GetString("MERCADOPAGO_TEST_PAYER_EMAIL"),
			TestPayerUserID:        v.GetString("MERCADOPAGO_TEST_PAYER_USER_ID"),
		},
		CatalogSearchLimit:   v.GetInt("CATALOG_SEARCH_LIMIT"),
		DefaultTaxPercentage: tax,
	}
	return cfg, cfg.Validate()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", 8080)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORAGE_DRIVER", StorageDynamoDB)
	v.SetDefault("DATABASE_DSN", "file:rab.db?cache=shared")

	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("AWS_ACCESS_KEY_ID", "local")
	v.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	v.SetDefault("ESTIMATES_TABLE", "estimates")
	v.SetDefault("PROJECTS_TABLE", "projects")
	v.SetDefault("TRANSACTIONS_TABLE", "transactions")
	v.SetDefault("PRICE_CATALOG_TABLE", "price_catalog")
	v.SetDefault("PAYMENTS_TABLE", "payments")

	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("LOCK_TTL", "10s")
	v.SetDefault("LOCK_WAIT", "3s")

	v.SetDefault("CATALOG_SEARCH_LIMIT", 5)
	v.SetDefault("DEFAULT_TAX_PERCENTAGE", "11")
}

func (c Config) Validate() error {
	switch c.Storage {
	case StorageDynamoDB, StoragePostgres, StorageSQLite:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.Storage)
	}
	if c.Storage != StorageDynamoDB && strings.TrimSpace(c.SQLDSN) == "" {
		return fmt.Errorf("DATABASE_DSN is required for %s storage", c.Storage)
	}
	if c.Port <= 0 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.Lock.TTL <= 0 || c.Lock.Wait < 0 {
		return fmt.Errorf("invalid lock timings ttl=%s wait=%s", c.Lock.TTL, c.Lock.Wait)
	}
	if c.DefaultTaxPercentage.IsNegative() || c.DefaultTaxPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("DEFAULT_TAX_PERCENTAGE must be between 0 and 100, got %s", c.DefaultTaxPercentage)
	}
	return nil
}
