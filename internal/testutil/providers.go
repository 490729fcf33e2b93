package testutil

import (
	"context"

	"github.com/preston-bernstein/game-catalog-service/internal/providers"
)

// StaticStore returns the provided objects for every query.
type StaticStore struct {
	Objects []providers.Object
}

func (s StaticStore) FindObjects(ctx context.Context, q providers.Query) ([]providers.Object, error) {
	_ = ctx
	_ = q
	return s.Objects, nil
}

func (s StaticStore) FindObject(ctx context.Context, q providers.Query) (providers.Object, error) {
	_ = ctx
	_ = q
	if len(s.Objects) == 0 {
		return providers.Object{}, providers.ErrNotFound
	}
	return s.Objects[0], nil
}

// ErrStore always returns the provided error.
type ErrStore struct {
	Err error
}

func (s ErrStore) FindObjects(ctx context.Context, q providers.Query) ([]providers.Object, error) {
	return nil, s.Err
}

func (s ErrStore) FindObject(ctx context.Context, q providers.Query) (providers.Object, error) {
	return providers.Object{}, s.Err
}

// UnavailableStore returns ErrProviderUnavailable.
type UnavailableStore struct{}

func (UnavailableStore) FindObjects(ctx context.Context, q providers.Query) ([]providers.Object, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableStore) FindObject(ctx context.Context, q providers.Query) (providers.Object, error) {
	return providers.Object{}, providers.ErrProviderUnavailable
}
