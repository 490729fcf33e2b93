package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/game-catalog-service/internal/logging"
	"github.com/preston-bernstein/game-catalog-service/internal/metrics"
)

// instrumentedStore records latency, errors and rate limit hits for every
// upstream call. Not-found responses count as successful attempts.
type instrumentedStore struct {
	inner    ObjectStore
	logger   *slog.Logger
	recorder *metrics.Recorder
	name     string
	now      func() time.Time
}

// NewInstrumentedStore wraps the given store with metrics and logging.
func NewInstrumentedStore(inner ObjectStore, logger *slog.Logger, recorder *metrics.Recorder, name string) ObjectStore {
	return &instrumentedStore{
		inner:    inner,
		logger:   logger,
		recorder: recorder,
		name:     name,
		now:      time.Now,
	}
}

func (s *instrumentedStore) FindObjects(ctx context.Context, q Query) ([]Object, error) {
	if s.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := s.now()
	objects, err := s.inner.FindObjects(ctx, q)
	s.observe(ctx, q, start, len(objects), err)
	return objects, err
}

func (s *instrumentedStore) FindObject(ctx context.Context, q Query) (Object, error) {
	if s.inner == nil {
		return Object{}, ErrProviderUnavailable
	}
	start := s.now()
	obj, err := s.inner.FindObject(ctx, q)
	count := 0
	if err == nil {
		count = 1
	}
	s.observe(ctx, q, start, count, err)
	return obj, err
}

func (s *instrumentedStore) observe(ctx context.Context, q Query, start time.Time, count int, err error) {
	duration := s.now().Sub(start)

	attemptErr := err
	if IsNotFound(err) {
		attemptErr = nil
	}
	s.recorder.RecordProviderAttempt(s.name, duration, attemptErr)

	if rlErr, ok := AsRateLimitError(err); ok {
		s.recorder.RecordRateLimit(s.name, rlErr.RetryAfter)
	}

	logger := logging.FromContext(ctx, s.logger)
	args := []any{
		slog.String(logging.FieldObjectType, q.Type),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	}
	if attemptErr != nil {
		logWithProvider(ctx, logger, slog.LevelWarn, s.name, "provider fetch failed", append(args, slog.Any("err", attemptErr))...)
		return
	}
	logWithProvider(ctx, logger, slog.LevelDebug, s.name, "provider fetch", append(args, slog.Int(logging.FieldCount, count))...)
}
