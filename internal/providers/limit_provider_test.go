package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	calls   int
	objects []Object
	err     error
}

func (s *stubStore) FindObjects(ctx context.Context, q Query) ([]Object, error) {
	s.calls++
	return s.objects, s.err
}

func (s *stubStore) FindObject(ctx context.Context, q Query) (Object, error) {
	s.calls++
	if s.err != nil {
		return Object{}, s.err
	}
	if len(s.objects) == 0 {
		return Object{}, ErrNotFound
	}
	return s.objects[0], nil
}

func TestRateLimitedStoreDisabledReturnsInner(t *testing.T) {
	inner := &stubStore{}
	got := NewRateLimitedStore(inner, 0, 0, nil)

	assert.Same(t, inner, got)
}

func TestRateLimitedStorePacesCalls(t *testing.T) {
	inner := &stubStore{objects: []Object{{ID: "1"}}}
	store := NewRateLimitedStore(inner, 50, 1, nil)

	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := store.FindObjects(context.Background(), Query{Type: "games"})
		require.NoError(t, err)
	}
	// burst of 1 at 50rps means two waits of ~20ms each.
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	assert.Equal(t, 3, inner.calls)
}

func TestRateLimitedStoreRespectsCanceledContext(t *testing.T) {
	inner := &stubStore{}
	store := NewRateLimitedStore(inner, 0.001, 1, nil)

	// drain the single token so the next call must wait
	_, _ = store.FindObject(context.Background(), Query{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := store.FindObject(ctx, Query{})

	assert.True(t, errors.Is(err, context.Canceled), "got %v", err)
	assert.Equal(t, 1, inner.calls)
}

func TestRateLimitedStoreHandlesNilInner(t *testing.T) {
	store := NewRateLimitedStore(nil, 10, 1, nil)

	_, err := store.FindObjects(context.Background(), Query{})
	assert.ErrorIs(t, err, ErrProviderUnavailable)
}
