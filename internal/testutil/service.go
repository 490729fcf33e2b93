package testutil

import (
	"github.com/preston-bernstein/game-catalog-service/internal/app/catalog"
	"github.com/preston-bernstein/game-catalog-service/internal/providers"
	"github.com/preston-bernstein/game-catalog-service/internal/providers/fixture"
)

// NewFixtureCatalog builds a catalog service backed by the embedded fixture dataset.
func NewFixtureCatalog() *catalog.Service {
	return catalog.NewService(fixture.New())
}

// NewCatalogWithStore builds a catalog service over the given store.
func NewCatalogWithStore(store providers.ObjectStore) *catalog.Service {
	return catalog.NewService(store)
}
