package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ganot/assetgrid/internal/repository"
)

// PreferenceStore implements repository.PreferenceStore for SQLite
type PreferenceStore struct {
	db *DB
}

// NewPreferenceStore creates a new PreferenceStore
func NewPreferenceStore(db *DB) *PreferenceStore {
	return &PreferenceStore{db: db}
}

// Get retrieves the value stored under key.
func (s *PreferenceStore) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get preference: %w", err)
	}
	return value, nil
}

// Set stores the value under key, replacing any previous value.
func (s *PreferenceStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to set preference: %w", err)
	}
	return nil
}
