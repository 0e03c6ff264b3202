package main

import (
	"fmt"

	"github.com/amirasaad/payflow/infra/initializer"
	"github.com/amirasaad/payflow/pkg/config"
	"github.com/amirasaad/payflow/webapi"
	log "github.com/charmbracelet/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}
	logger := initializer.SetupLogger(cfg.Log)

	deps, err := initializer.InitializeUserService(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	app := webapi.NewUserApp(deps, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.UserPort)
	logger.Info("starting user service",
		"env", cfg.Env,
		"address", addr,
		"identityStrategy", cfg.Identity.Strategy,
	)
	return app.Listen(addr)
}
