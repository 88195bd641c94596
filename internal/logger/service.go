package logger

import (
	"fmt"

	"itemsvc/internal/config"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
)

// LoggerService wraps the optional New Relic application instance.
//
// When no license key is configured the service still exists but
// GetApplication returns nil, and every consumer treats that as "tracing
// disabled" and degrades to a no-op.
type LoggerService struct {
	nrApp *newrelic.Application
}

// NewLoggerService initializes the New Relic application from config.
//
// An empty license key is not an error; it simply disables APM. A present
// but rejected key is surfaced so a misconfigured production deploy does
// not silently run untraced.
func NewLoggerService(cfg *config.Config, log *zerolog.Logger) (*LoggerService, error) {
	if cfg.Observability.NewRelic.LicenseKey == "" {
		log.Info().Msg("new relic disabled, no license key configured")
		return &LoggerService{}, nil
	}

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.Observability.ServiceName),
		newrelic.ConfigLicense(cfg.Observability.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(cfg.Observability.NewRelic.DistributedTracingEnabled),
		newrelic.ConfigAppLogForwardingEnabled(cfg.Observability.NewRelic.AppLogForwardingEnabled),
	)
	if err != nil {
		return nil, fmt.Errorf("initializing new relic application: %w", err)
	}

	log.Info().Str("app", cfg.Observability.ServiceName).Msg("new relic enabled")

	return &LoggerService{nrApp: nrApp}, nil
}

// GetApplication returns the New Relic application, or nil when APM is
// disabled.
func (s *LoggerService) GetApplication() *newrelic.Application {
	if s == nil {
		return nil
	}
	return s.nrApp
}

// WithTraceContext returns a child logger carrying the transaction's
// trace and span ids, so log lines correlate with distributed traces.
func WithTraceContext(logger zerolog.Logger, txn *newrelic.Transaction) zerolog.Logger {
	if txn == nil {
		return logger
	}

	md := txn.GetTraceMetadata()
	builder := logger.With()
	if md.TraceID != "" {
		builder = builder.Str("trace.id", md.TraceID)
	}
	if md.SpanID != "" {
		builder = builder.Str("span.id", md.SpanID)
	}
	return builder.Logger()
}
