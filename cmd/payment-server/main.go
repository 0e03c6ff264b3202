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

	deps, err := initializer.InitializePaymentService(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	app := webapi.NewPaymentApp(deps, cfg)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.PaymentPort)
	logger.Info("starting payment service",
		"env", cfg.Env,
		"address", addr,
		"processorDelay", cfg.Processor.Delay,
	)
	return app.Listen(addr)
}
