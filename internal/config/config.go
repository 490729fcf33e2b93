package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port     string        `validate:"required,numeric"`
	Provider string        `validate:"oneof=cosmic fixture"`
	Cosmic   CosmicConfig  `validate:"-"`
	Metrics  MetricsConfig
	Tracing  TracingConfig
	Logging  LoggingConfig
}

// Load reads configuration from environment variables with sensible
// defaults. Optional .env.local and .env files fill in unset variables.
func Load() Config {
	_ = loadDotenv(dotenvFiles...)
	return fromEnv()
}

func fromEnv() Config {
	return Config{
		Port:     envOrDefault(envPort, defaultPort),
		Provider: strings.ToLower(envOrDefault(envProvider, defaultProvider)),
		Cosmic:   loadCosmic(),
		Metrics:  loadMetrics(),
		Tracing:  loadTracing(),
		Logging:  loadLogging(),
	}
}

var validate = validator.New()

// Validate reports configuration that cannot start the server. Cosmic
// credentials are only required when the cosmic provider is selected.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return describe(err)
	}
	if c.Provider == ProviderCosmic {
		if err := validate.Struct(c.Cosmic); err != nil {
			return describe(err)
		}
	}
	return nil
}

func describe(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
