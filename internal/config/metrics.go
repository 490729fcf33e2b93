package config

import "strings"

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string `validate:"omitempty,numeric"`
	OtlpEndpoint string
	ServiceName  string `validate:"required"`
	OtlpInsecure bool
}

// TracingConfig controls span export. An empty endpoint disables export.
type TracingConfig struct {
	Endpoint    string
	Insecure    bool
	ServiceName string
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `validate:"oneof=debug info warn warning error"`
	Format string `validate:"oneof=text json"`
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}

func loadTracing() TracingConfig {
	return TracingConfig{
		Endpoint:    envOrDefault(envTracesEndpoint, ""),
		Insecure:    boolEnvOrDefault(envOtelInsecure, true),
		ServiceName: envOrDefault(envOtelService, defaultServiceName),
	}
}

func loadLogging() LoggingConfig {
	return LoggingConfig{
		Level:  strings.ToLower(envOrDefault(envLogLevel, defaultLogLevel)),
		Format: strings.ToLower(envOrDefault(envLogFormat, defaultLogFormat)),
	}
}
