package config

import (
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads configuration from the environment. When envFilePath is given
// the file is loaded first; a missing file is not an error so containerized
// deployments can rely on real environment variables alone.
func Load(envFilePath ...string) (*App, error) {
	if err := godotenv.Load(envFilePath...); err != nil {
		slog.Warn("no .env file found, using system environment variables")
	} else {
		slog.Info("environment variables loaded from .env file")
	}
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	slog.Info("app config loaded",
		"env", cfg.Env,
		"db", maskValue(cfg.DB.Url),
		"identityStrategy", cfg.Identity.Strategy,
		"processorDelay", cfg.Processor.Delay,
	)
	return &cfg, nil
}

// maskValue hides all but a short prefix of a sensitive value in logs.
func maskValue(v string) string {
	const visible = 12
	if len(v) <= visible {
		return "***"
	}
	return v[:visible] + "***"
}
