package providers

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"
)

// rateLimitedStore paces calls to the wrapped store so the bucket's request
// quota is not exceeded.
type rateLimitedStore struct {
	next    ObjectStore
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedStore returns a store that allows at most rps requests per
// second with the given burst. A non-positive rps disables pacing and returns
// next unchanged.
func NewRateLimitedStore(next ObjectStore, rps float64, burst int, logger *slog.Logger) ObjectStore {
	if rps <= 0 {
		return next
	}
	if burst <= 0 {
		burst = 1
	}
	return &rateLimitedStore{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		logger:  logger,
	}
}

func (s *rateLimitedStore) FindObjects(ctx context.Context, q Query) ([]Object, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.next.FindObjects(ctx, q)
}

func (s *rateLimitedStore) FindObject(ctx context.Context, q Query) (Object, error) {
	if err := s.wait(ctx); err != nil {
		return Object{}, err
	}
	return s.next.FindObject(ctx, q)
}

func (s *rateLimitedStore) wait(ctx context.Context) error {
	if s.next == nil {
		logWithProvider(ctx, s.logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		return ErrProviderUnavailable
	}
	if err := s.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, s.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled", "err", err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return err
	}
	return nil
}
