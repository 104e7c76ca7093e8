package mcp

import (
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ganot/assetgrid/internal/domain/asset"
	"github.com/ganot/assetgrid/internal/domain/layout"
	"github.com/ganot/assetgrid/internal/domain/table"
	"github.com/ganot/assetgrid/internal/inventory"
)

const serverInstructions = `assetgrid exposes a hierarchical asset inventory and its table configuration.

Core concepts:
- Asset: one inventory item (vehicle or equipment), optionally with child assets.
- Snapshot: the full asset forest plus a version number; every mutation bumps the version.
- Variant: one of three table renderings (assetTable, assetTable_v1, assetTable_v2), each with its own column order persisted across restarts.
- Table state: per-session sorting, filters, selection, expansion, and paging. Pass a session id via the Mcp-Session-Id header (HTTP) or _meta.session_id (stdio).

Typical flow:
1) list_assets to read the current snapshot.
2) update_asset_field / add_asset / remove_assets to mutate; each returns the new snapshot.
3) get_column_layout / move_column / set_column_order / toggle_column to arrange columns per variant.
`

// InventoryService defines the asset collection operations needed by MCP.
type InventoryService interface {
	Snapshot() inventory.Snapshot
	Get(id string) (asset.Asset, error)
	AddAsset(a asset.Asset) (inventory.Snapshot, error)
	ReplaceField(id string, edit asset.Edit) inventory.Snapshot
	RemoveAssets(ids ...string) inventory.Snapshot
	Categories() []string
}

// Config contains server configuration.
type Config struct {
	Inventory InventoryService
	Layouts   *layout.Set
	Sessions  *table.Sessions
	Logger    *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and
// middleware.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "assetgrid",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	server.AddReceivingMiddleware(sessionMiddleware())
	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg)

	return server
}
