package testserver

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/ganot/assetgrid/internal/domain/asset"
	"github.com/ganot/assetgrid/internal/domain/layout"
	"github.com/ganot/assetgrid/internal/domain/table"
	"github.com/ganot/assetgrid/internal/inventory"
	"github.com/ganot/assetgrid/internal/mcp"
	"github.com/ganot/assetgrid/internal/sqlite"
	"github.com/ganot/assetgrid/internal/transport"
)

// TestServer is a fully wired grid server on an in-memory database.
type TestServer struct {
	Server    *httptest.Server
	DB        *sqlite.DB
	Assets    *sqlite.AssetRepository
	Inventory *inventory.Service
	Layouts   *layout.Set
}

// New seeds the database via seed (may be nil), loads the inventory, and
// starts an HTTP server with the REST and MCP surfaces mounted.
func New(t *testing.T, seed func(t *testing.T, assets *sqlite.AssetRepository)) *TestServer {
	t.Helper()
	ctx := context.Background()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	assetRepo := sqlite.NewAssetRepository(db)
	prefs := sqlite.NewPreferenceStore(db)

	if seed != nil {
		seed(t, assetRepo)
	}

	svc := inventory.NewService(assetRepo, nil)
	require.NoError(t, svc.Load(ctx))

	layouts := layout.NewSet(ctx, prefs, nil)
	sessions := table.NewSessions()

	mcpServer := mcp.NewServer(mcp.Config{
		Inventory: svc,
		Layouts:   layouts,
		Sessions:  sessions,
	})
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return mcpServer }, nil)

	server := httptest.NewServer(transport.NewServer(svc, layouts, sessions, mcpHandler))

	ts := &TestServer{
		Server:    server,
		DB:        db,
		Assets:    assetRepo,
		Inventory: svc,
		Layouts:   layouts,
	}

	t.Cleanup(func() {
		server.Close()
		_ = db.Close()
	})

	return ts
}

// SeedAsset inserts one asset row directly through the repository.
func (ts *TestServer) SeedAsset(t *testing.T, a asset.Asset, parentID string, position int) {
	t.Helper()
	require.NoError(t, ts.Assets.Create(context.Background(), a, parentID, position))
}
