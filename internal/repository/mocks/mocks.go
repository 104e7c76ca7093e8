package mocks

import (
	"context"

	"github.com/ganot/assetgrid/internal/domain/asset"
	"github.com/stretchr/testify/mock"
)

// AssetRepository is a mock for repository.AssetRepository.
type AssetRepository struct {
	mock.Mock
}

func (m *AssetRepository) ListForest(ctx context.Context) ([]asset.Asset, error) {
	args := m.Called(ctx)
	if forest, ok := args.Get(0).([]asset.Asset); ok {
		return forest, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AssetRepository) Create(ctx context.Context, a asset.Asset, parentID string, position int) error {
	args := m.Called(ctx, a, parentID, position)
	return args.Error(0)
}

func (m *AssetRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// PreferenceStore is a mock for repository.PreferenceStore.
type PreferenceStore struct {
	mock.Mock
}

func (m *PreferenceStore) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *PreferenceStore) Set(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}
