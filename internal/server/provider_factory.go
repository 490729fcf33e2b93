package server

import (
	"log/slog"

	"github.com/preston-bernstein/game-catalog-service/internal/config"
	"github.com/preston-bernstein/game-catalog-service/internal/metrics"
	"github.com/preston-bernstein/game-catalog-service/internal/providers"
	"github.com/preston-bernstein/game-catalog-service/internal/providers/cosmic"
	"github.com/preston-bernstein/game-catalog-service/internal/providers/fixture"
)

// providerFactory assembles the object store with shared wrappers (rate limit + instrumentation).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.ObjectStore {
	name, base := selectStore(cfg, f.logger)
	if name == config.ProviderCosmic {
		base = providers.NewRateLimitedStore(base, cfg.Cosmic.RPS, 1, f.logger)
	}
	return providers.NewInstrumentedStore(base, f.logger, f.metrics, name)
}

func selectStore(cfg config.Config, logger *slog.Logger) (string, providers.ObjectStore) {
	switch cfg.Provider {
	case config.ProviderCosmic:
		return config.ProviderCosmic, cosmic.NewClient(cosmic.Config{
			BaseURL:    cfg.Cosmic.BaseURL,
			BucketSlug: cfg.Cosmic.BucketSlug,
			ReadKey:    cfg.Cosmic.ReadKey,
			Timeout:    cfg.Cosmic.Timeout,
		})
	case config.ProviderFixture, "":
		return config.ProviderFixture, fixture.New()
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return config.ProviderFixture, fixture.New()
	}
}
