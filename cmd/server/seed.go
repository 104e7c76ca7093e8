package main

import (
	"context"
	"time"

	"github.com/ganot/assetgrid/internal/domain/asset"
	"github.com/ganot/assetgrid/internal/sqlite"
)

// seedDemo fills an empty database with a small demo fleet. A non-empty
// database is left untouched.
func seedDemo(ctx context.Context, repo *sqlite.AssetRepository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	june := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	level := 2

	rows := []struct {
		a        asset.Asset
		parentID string
		position int
	}{
		{a: asset.Asset{ID: "A1", Serial: "SN-1001", Category: "Vehicle", Brand: "Volvo", Type: "Truck",
			Vehicle: "Truck-1", Status: asset.Status{State: asset.StateOperational}}},
		{a: asset.Asset{ID: "A1-a", Serial: "SN-1002", Category: "Equipment", Brand: "Bosch", Type: "Tail lift",
			Vehicle: "Truck-1", Status: asset.Status{State: asset.StateOperational}}, parentID: "A1"},
		{a: asset.Asset{ID: "A1-b", Serial: "SN-1003", Category: "Equipment", Brand: "Webasto", Type: "Heater",
			Vehicle: "Truck-1", EndDate: &june,
			Status: asset.Status{State: asset.StateMaintenance, Level: &level}}, parentID: "A1", position: 1},
		{a: asset.Asset{ID: "B2", Serial: "SN-2001", Category: "Trailer", Brand: "Schmitz", Type: "Curtainsider",
			Vehicle: "Trailer-1", Status: asset.Status{State: asset.StateInspection}}},
	}

	for _, row := range rows {
		if err := repo.Create(ctx, row.a, row.parentID, row.position); err != nil {
			return err
		}
	}
	return nil
}
