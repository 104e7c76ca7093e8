package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/ganot/assetgrid/internal/domain/asset"
	"github.com/ganot/assetgrid/internal/repository"
)

// AssetRepository implements repository.AssetRepository for SQLite
type AssetRepository struct {
	db *DB
}

// NewAssetRepository creates a new AssetRepository
func NewAssetRepository(db *DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// Create stores one asset row under an optional parent.
func (r *AssetRepository) Create(ctx context.Context, a asset.Asset, parentID string, position int) error {
	query := `
		INSERT INTO assets (
			id, serial, category, brand, type, vehicle,
			status_state, status_level, end_date, parent_id, position, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var parent any
	if parentID != "" {
		parent = parentID
	}

	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Serial,
		a.Category,
		a.Brand,
		a.Type,
		a.Vehicle,
		a.Status.State,
		a.Status.Level,
		a.EndDate,
		parent,
		position,
		time.Now().UTC(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("unknown parent %q: %w", parentID, repository.ErrNotFound)
		}
		return fmt.Errorf("failed to create asset: %w", err)
	}

	return nil
}

// Count returns the number of stored asset rows.
func (r *AssetRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM assets`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count assets: %w", err)
	}
	return n, nil
}

type assetRow struct {
	asset    asset.Asset
	parentID string
	position int
	created  time.Time
}

// ListForest loads all asset rows and assembles them into a forest: roots
// newest-first, children attached under their parents in position order.
// Rows pointing at a missing parent are treated as roots rather than
// dropped.
func (r *AssetRepository) ListForest(ctx context.Context) ([]asset.Asset, error) {
	query := `
		SELECT
			id, serial, category, brand, type, vehicle,
			status_state, status_level, end_date, parent_id, position, created_at
		FROM assets
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var all []assetRow
	for rows.Next() {
		var (
			row      assetRow
			level    sql.NullInt64
			endDate  sql.NullTime
			parentID sql.NullString
		)
		err := rows.Scan(
			&row.asset.ID,
			&row.asset.Serial,
			&row.asset.Category,
			&row.asset.Brand,
			&row.asset.Type,
			&row.asset.Vehicle,
			&row.asset.Status.State,
			&level,
			&endDate,
			&parentID,
			&row.position,
			&row.created,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		if level.Valid {
			v := int(level.Int64)
			row.asset.Status.Level = &v
		}
		if endDate.Valid {
			t := endDate.Time
			row.asset.EndDate = &t
		}
		if parentID.Valid {
			row.parentID = parentID.String
		}
		all = append(all, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assets: %w", err)
	}

	return assemble(all), nil
}

func assemble(all []assetRow) []asset.Asset {
	known := make(map[string]bool, len(all))
	for _, row := range all {
		known[row.asset.ID] = true
	}

	children := make(map[string][]assetRow)
	var roots []assetRow
	for _, row := range all {
		if row.parentID != "" && known[row.parentID] {
			children[row.parentID] = append(children[row.parentID], row)
		} else {
			roots = append(roots, row)
		}
	}

	// roots newest-first, so fresh assets surface at the top
	sort.SliceStable(roots, func(i, j int) bool {
		return roots[i].created.After(roots[j].created)
	})

	var build func(row assetRow) asset.Asset
	build = func(row assetRow) asset.Asset {
		a := row.asset
		kids := children[a.ID]
		sort.SliceStable(kids, func(i, j int) bool {
			return kids[i].position < kids[j].position
		})
		for _, kid := range kids {
			a.Children = append(a.Children, build(kid))
		}
		return a
	}

	out := make([]asset.Asset, 0, len(roots))
	for _, root := range roots {
		out = append(out, build(root))
	}
	return out
}
