package config

import (
	"fmt"
)

// ObservabilityConfig groups configuration for telemetry: structured
// logging and the optional New Relic APM integration. It can be omitted
// entirely, in which case DefaultObservabilityConfig applies.
type ObservabilityConfig struct {
	// ServiceName identifies this service in logs and traces. It is forced
	// to "itemsvc" during config loading regardless of input.
	ServiceName string `koanf:"service_name"`

	// Environment labels telemetry by runtime environment (local,
	// staging, production). Forced to Primary.Env during loading.
	Environment string `koanf:"environment"`

	// Logging controls structured logger behavior.
	Logging LoggingConfig `koanf:"logging"`

	// NewRelic controls the APM integration. An empty license key
	// disables it and all instrumentation degrades to no-ops.
	NewRelic NewRelicConfig `koanf:"new_relic"`
}

// LoggingConfig holds application logging configuration.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level"`

	// Format selects "json" or "console" output.
	Format string `koanf:"format"`
}

// NewRelicConfig holds configuration for New Relic APM and tracing.
type NewRelicConfig struct {
	// LicenseKey is the New Relic ingest key. Empty means "not configured".
	LicenseKey string `koanf:"license_key"`

	// AppLogForwardingEnabled forwards application logs to New Relic.
	AppLogForwardingEnabled bool `koanf:"app_log_forwarding_enabled"`

	// DistributedTracingEnabled enables cross-service trace propagation.
	DistributedTracingEnabled bool `koanf:"distributed_tracing_enabled"`
}

// DefaultObservabilityConfig provides the defaults used when the
// observability block is absent from the environment: info-level JSON
// logging and no APM.
func DefaultObservabilityConfig() *ObservabilityConfig {
	return &ObservabilityConfig{
		ServiceName: "itemsvc",
		Environment: "local",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		NewRelic: NewRelicConfig{},
	}
}

// Validate checks the observability block for values the rest of the app
// cannot work with. Level and format get defaults instead of errors so a
// partially specified block stays usable.
func (o *ObservabilityConfig) Validate() error {
	if o.Logging.Level == "" {
		o.Logging.Level = "info"
	}
	if o.Logging.Format == "" {
		o.Logging.Format = "json"
	}

	switch o.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logging level %q", o.Logging.Level)
	}

	switch o.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("unknown logging format %q", o.Logging.Format)
	}

	return nil
}
