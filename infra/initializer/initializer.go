// Package initializer wires configuration into concrete dependencies for the
// two binaries.
package initializer

import (
	"fmt"
	"log/slog"

	"github.com/amirasaad/payflow/infra"
	"github.com/amirasaad/payflow/infra/cache"
	"github.com/amirasaad/payflow/infra/provider/gotrue"
	"github.com/amirasaad/payflow/infra/provider/local"
	infrarepo "github.com/amirasaad/payflow/infra/repository"
	"github.com/amirasaad/payflow/pkg/config"
	"github.com/amirasaad/payflow/pkg/processor"
	"github.com/amirasaad/payflow/pkg/provider"
	"github.com/amirasaad/payflow/pkg/repository"
	"github.com/gofiber/fiber/v2"
)

// PaymentDeps holds the wired dependencies of the payment service.
type PaymentDeps struct {
	Uow            repository.UnitOfWork
	Processor      processor.Processor
	LimiterStorage fiber.Storage
	Logger         *slog.Logger
}

// UserDeps holds the wired dependencies of the user service.
type UserDeps struct {
	Identity       provider.Identity
	LimiterStorage fiber.Storage
	Logger         *slog.Logger
}

// InitializePaymentService builds the payment service dependency graph.
func InitializePaymentService(cfg *config.App, logger *slog.Logger) (*PaymentDeps, error) {
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err = infra.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return &PaymentDeps{
		Uow:            infrarepo.NewUoW(db),
		Processor:      processor.NewSimulated(cfg.Processor.Delay, logger),
		LimiterStorage: limiterStorage(cfg, logger),
		Logger:         logger,
	}, nil
}

// InitializeUserService builds the user service dependency graph. The
// identity provider is chosen by cfg.Identity.Strategy.
func InitializeUserService(cfg *config.App, logger *slog.Logger) (*UserDeps, error) {
	var identity provider.Identity
	switch cfg.Identity.Strategy {
	case "local":
		db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		if err = infra.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate schema: %w", err)
		}
		identity = local.New(infrarepo.NewUoW(db), cfg.Jwt, logger)
	case "gotrue":
		identity = gotrue.New(cfg.Identity, logger)
	default:
		return nil, fmt.Errorf("unknown identity strategy %q", cfg.Identity.Strategy)
	}
	return &UserDeps{
		Identity:       identity,
		LimiterStorage: limiterStorage(cfg, logger),
		Logger:         logger,
	}, nil
}

// limiterStorage returns a Redis-backed store when configured, nil otherwise
// (the limiter then uses its in-memory default).
func limiterStorage(cfg *config.App, logger *slog.Logger) fiber.Storage {
	if cfg.Redis.URL == "" {
		return nil
	}
	store, err := cache.NewLimiterStore(cfg.Redis.URL, cfg.Redis.KeyPrefix, logger)
	if err != nil {
		logger.Warn("redis unavailable, falling back to in-memory rate limiting", "error", err)
		return nil
	}
	return store
}
