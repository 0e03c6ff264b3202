// Package infra provides the concrete adapters behind the pkg contracts:
// the database connection, gorm repositories, identity providers and the
// rate-limiter store.
package infra

import (
	"errors"
	"time"

	"github.com/amirasaad/payflow/infra/repository/account"
	"github.com/amirasaad/payflow/infra/repository/transaction"
	"github.com/amirasaad/payflow/infra/repository/user"
	"github.com/amirasaad/payflow/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDBConnection opens a pooled gorm connection to Postgres. Query logging
// is verbose only in development.
func NewDBConnection(cfg config.DB, appEnv string) (*gorm.DB, error) {
	if cfg.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	logMode := logger.Silent
	if appEnv == "development" {
		logMode = logger.Info
	}

	conn, err := gorm.Open(postgres.Open(cfg.Url), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		// Surfaces duplicate-key violations as gorm.ErrDuplicatedKey, which
		// the local identity strategy relies on.
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(1 * time.Hour)

	return conn, nil
}

// AutoMigrate creates or updates the schema for all persisted models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&account.Account{},
		&transaction.Transaction{},
		&user.User{},
	)
}
