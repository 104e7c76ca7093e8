package repository

import (
	"context"

	"github.com/ganot/assetgrid/internal/domain/asset"
)

// AssetRepository is the loader collaborator: it supplies the initial asset
// forest and accepts seed rows. It is deliberately not a full CRUD surface;
// after the initial load the collection evolves in memory only.
type AssetRepository interface {
	// ListForest returns the stored assets assembled into a forest: roots
	// newest-first, children under their parents in position order.
	ListForest(ctx context.Context) ([]asset.Asset, error)
	// Create stores one asset row. parentID is empty for roots; position
	// fixes the sibling order.
	Create(ctx context.Context, a asset.Asset, parentID string, position int) error
	// Count returns the number of stored asset rows at all depths.
	Count(ctx context.Context) (int, error)
}

// PreferenceStore is the client-local key/value substrate. The serialized
// column order per table variant is the only state persisted through it.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
