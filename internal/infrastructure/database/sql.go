package database

import (
	"fmt"

	appconfig "rab_service/internal/infrastructure/config"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenSQL opens the relational store selected by cfg.Storage.
func OpenSQL(cfg appconfig.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Storage {
	case appconfig.StoragePostgres:
		dialector = postgres.Open(cfg.SQLDSN)
	case appconfig.StorageSQLite:
		dialector = sqlite.Open(cfg.SQLDSN)
	default:
		return nil, fmt.Errorf("storage %q is not a SQL driver", cfg.Storage)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(gormLogLevel(cfg.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Storage, err)
	}
	zap.L().Named("database").Info("[database] sql store opened", zap.String("driver", cfg.Storage))
	return db, nil
}

func gormLogLevel(level string) logger.LogLevel {
	switch level {
	case "debug":
		return logger.Info
	case "warn", "info":
		return logger.Warn
	}
	return logger.Error
}
