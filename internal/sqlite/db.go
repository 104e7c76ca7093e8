package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations creates the schema.
func (db *DB) RunMigrations() error {
	migration := `
-- Assets table. parent_id links child assets to their parent row for the
-- hierarchical table variants; position fixes sibling order.
CREATE TABLE IF NOT EXISTS assets (
    id TEXT PRIMARY KEY,
    serial TEXT NOT NULL,
    category TEXT NOT NULL,
    brand TEXT NOT NULL,
    type TEXT NOT NULL,
    vehicle TEXT NOT NULL,
    status_state TEXT NOT NULL CHECK(status_state IN ('operational', 'maintenance', 'repair', 'inspection')),
    status_level INTEGER,
    end_date TIMESTAMP,
    parent_id TEXT,
    position INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (parent_id) REFERENCES assets(id)
);
CREATE INDEX IF NOT EXISTS idx_asset_parent ON assets(parent_id);
CREATE INDEX IF NOT EXISTS idx_asset_created ON assets(created_at);

-- Client-local preferences: one serialized value per key. The persisted
-- column order per table variant is the only thing stored here.
CREATE TABLE IF NOT EXISTS preferences (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
