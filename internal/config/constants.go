package config

import "time"

const (
	envPort           = "PORT"
	envProvider       = "PROVIDER"
	envMetricsPort    = "METRICS_PORT"
	envMetricsOn      = "METRICS_ENABLED"
	envOtelEndpoint   = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService    = "OTEL_SERVICE_NAME"
	envOtelInsecure   = "OTEL_EXPORTER_OTLP_INSECURE"
	envTracesEndpoint = "OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"
	envLogLevel       = "LOG_LEVEL"
	envLogFormat      = "LOG_FORMAT"

	envCosmicBucket  = "COSMIC_BUCKET_SLUG"
	envCosmicRead    = "COSMIC_READ_KEY"
	envCosmicWrite   = "COSMIC_WRITE_KEY"
	envCosmicBaseURL = "COSMIC_BASE_URL"
	envCosmicTimeout = "COSMIC_TIMEOUT"
	envCosmicRPS     = "COSMIC_RPS"

	// Provider names accepted by PROVIDER.
	ProviderCosmic  = "cosmic"
	ProviderFixture = "fixture"

	defaultPort          = "4000"
	defaultProvider      = ProviderCosmic
	defaultMetricsPort   = "9090"
	defaultServiceName   = "game-catalog-service"
	defaultLogLevel      = "info"
	defaultLogFormat     = "text"
	defaultCosmicBaseURL = "https://api.cosmicjs.com/v3"
	defaultCosmicTimeout = 10 * Duration(time.Second)
)

// dotenvFiles are loaded in order when present; earlier files win and real
// environment variables always win.
var dotenvFiles = []string{".env.local", ".env"}
