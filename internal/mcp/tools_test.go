package mcp

import (
	"context"
	"encoding/json"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ganot/assetgrid/internal/domain/asset"
	"github.com/ganot/assetgrid/internal/domain/layout"
	"github.com/ganot/assetgrid/internal/domain/table"
	"github.com/ganot/assetgrid/internal/inventory"
	"github.com/ganot/assetgrid/internal/repository"
	"github.com/ganot/assetgrid/internal/repository/mocks"
)

type memPrefs struct {
	values map[string]string
}

func (m *memPrefs) Get(_ context.Context, key string) (string, error) {
	v, ok := m.values[key]
	if !ok {
		return "", repository.ErrNotFound
	}
	return v, nil
}

func (m *memPrefs) Set(_ context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

func testForest() []asset.Asset {
	return []asset.Asset{
		{
			ID: "A1", Serial: "SN-100", Category: "Vehicle", Brand: "Volvo", Type: "Truck", Vehicle: "Truck-1",
			Status: asset.Status{State: asset.StateOperational},
			Children: []asset.Asset{
				{ID: "A1-a", Serial: "SN-101", Category: "Equipment", Brand: "Bosch", Type: "Lift", Vehicle: "Truck-1",
					Status: asset.Status{State: asset.StateOperational}},
			},
		},
		{ID: "B2", Serial: "SN-200", Category: "Trailer", Brand: "Schmitz", Type: "Trailer", Vehicle: "Trailer-1",
			Status: asset.Status{State: asset.StateMaintenance}},
	}
}

func newTestSession(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	repo := &mocks.AssetRepository{}
	repo.On("ListForest", mock.Anything).Return(testForest(), nil)
	svc := inventory.NewService(repo, nil)
	require.NoError(t, svc.Load(ctx))

	server := NewServer(Config{
		Inventory: svc,
		Layouts:   layout.NewSet(ctx, &memPrefs{values: map[string]string{}}, nil),
		Sessions:  table.NewSessions(),
	})

	serverTransport, clientTransport := sdkmcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = clientSession.Close() })

	return clientSession
}

func callTool(t *testing.T, cs *sdkmcp.ClientSession, name string, args map[string]any, out any) *sdkmcp.CallToolResult {
	t.Helper()

	res, err := cs.CallTool(context.Background(), &sdkmcp.CallToolParams{Name: name, Arguments: args})
	require.NoError(t, err)
	if out != nil && !res.IsError {
		data, err := json.Marshal(res.StructuredContent)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, out))
	}
	return res
}

func TestListAssetsTool(t *testing.T) {
	cs := newTestSession(t)

	var snap inventory.Snapshot
	res := callTool(t, cs, "list_assets", map[string]any{}, &snap)
	require.False(t, res.IsError)
	require.Len(t, snap.Assets, 2)
	require.Equal(t, int64(1), snap.Version)
}

func TestUpdateAssetFieldToolNestedChild(t *testing.T) {
	cs := newTestSession(t)

	var snap inventory.Snapshot
	res := callTool(t, cs, "update_asset_field", map[string]any{
		"id": "A1-a", "field": "vehicle", "value": "Trailer-2",
	}, &snap)
	require.False(t, res.IsError)

	child, ok := asset.Find(snap.Assets, "A1-a")
	require.True(t, ok)
	require.Equal(t, "Trailer-2", child.Vehicle)
	require.Equal(t, int64(2), snap.Version)

	parent, ok := asset.Find(snap.Assets, "A1")
	require.True(t, ok)
	require.Equal(t, "Truck-1", parent.Vehicle)
}

func TestUpdateAssetFieldToolUnknownAsset(t *testing.T) {
	cs := newTestSession(t)

	res := callTool(t, cs, "update_asset_field", map[string]any{
		"id": "nope", "field": "serial", "value": "x",
	}, nil)
	require.True(t, res.IsError)
}

func TestUpdateAssetFieldToolUnknownField(t *testing.T) {
	cs := newTestSession(t)

	res := callTool(t, cs, "update_asset_field", map[string]any{
		"id": "A1", "field": "id", "value": "A9",
	}, nil)
	require.True(t, res.IsError)
}

func TestAddAssetTool(t *testing.T) {
	cs := newTestSession(t)

	var snap inventory.Snapshot
	res := callTool(t, cs, "add_asset", map[string]any{
		"serial": "SN-300", "category": "Vehicle", "brand": "MAN",
		"type": "Truck", "vehicle": "Truck-2", "status_state": "operational",
	}, &snap)
	require.False(t, res.IsError)
	require.Len(t, snap.Assets, 3)
	require.Equal(t, "SN-300", snap.Assets[0].Serial)
}

func TestRemoveAssetsTool(t *testing.T) {
	cs := newTestSession(t)

	var snap inventory.Snapshot
	res := callTool(t, cs, "remove_assets", map[string]any{"ids": []string{"B2"}}, &snap)
	require.False(t, res.IsError)
	require.Len(t, snap.Assets, 1)
}

func TestListCategoriesTool(t *testing.T) {
	cs := newTestSession(t)

	var result categoriesResult
	res := callTool(t, cs, "list_categories", map[string]any{}, &result)
	require.False(t, res.IsError)
	require.Equal(t, []string{"Equipment", "Trailer", "Vehicle"}, result.Categories)
}

func TestMoveColumnTool(t *testing.T) {
	cs := newTestSession(t)

	var result layoutResult
	res := callTool(t, cs, "move_column", map[string]any{
		"variant": "assetTable", "src": "brand", "dst": "id",
	}, &result)
	require.False(t, res.IsError)
	require.Equal(t, []layout.Column{
		layout.ColumnBrand, layout.ColumnID, layout.ColumnSerial, layout.ColumnCategory,
		layout.ColumnType, layout.ColumnVehicle, layout.ColumnStatus,
	}, result.Order)
}

func TestColumnLayoutToolUnknownVariant(t *testing.T) {
	cs := newTestSession(t)

	res := callTool(t, cs, "get_column_layout", map[string]any{"variant": "assetTable_v9"}, nil)
	require.True(t, res.IsError)
}

func TestSortTableTool(t *testing.T) {
	cs := newTestSession(t)

	var st table.State
	res := callTool(t, cs, "sort_table", map[string]any{
		"variant": "assetTable", "column": "serial",
	}, &st)
	require.False(t, res.IsError)
	require.Equal(t, []table.Sort{{Column: layout.ColumnSerial, Direction: table.SortAsc}}, st.Sorting)
}

func TestMapError(t *testing.T) {
	require.Nil(t, MapError(nil))
	require.Equal(t, "ASSET_NOT_FOUND", MapError(asset.ErrAssetNotFound).Code)
	require.Equal(t, "DUPLICATE_ID", MapError(asset.ErrDuplicateID).Code)
	require.Equal(t, "UNKNOWN_VARIANT", MapError(layout.ErrUnknownVariant).Code)
	require.Nil(t, MapError(context.Canceled))
}
