// Package logger configures the application's logging and observability.
//
// It builds the zerolog root logger from config and owns the optional
// New Relic integration, which instruments the codebase and forwards
// traces when a license key is configured.
package logger

import (
	"os"
	"time"

	"itemsvc/internal/config"

	"github.com/rs/zerolog"
)

// New builds the application root logger from config.
//
// Format "console" produces human-friendly output for local development;
// anything else emits JSON for log pipelines. Unknown levels fall back to
// info rather than failing, since config validation already rejected
// truly invalid values.
func New(cfg *config.Config) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Observability.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Observability.Logging.Format == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	} else {
		logger = zerolog.New(os.Stderr)
	}

	logger = logger.Level(level).With().
		Timestamp().
		Str("service", cfg.Observability.ServiceName).
		Str("env", cfg.Observability.Environment).
		Logger()

	return &logger
}
