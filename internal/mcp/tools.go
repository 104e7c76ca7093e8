package mcp

import (
	"context"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ganot/assetgrid/internal/domain/asset"
	"github.com/ganot/assetgrid/internal/domain/layout"
	"github.com/ganot/assetgrid/internal/domain/table"
	"github.com/ganot/assetgrid/internal/inventory"
)

type emptyParams struct{}

type getAssetParams struct {
	ID string `json:"id"`
}

type addAssetParams struct {
	ID          string     `json:"id,omitempty"`
	Serial      string     `json:"serial"`
	Category    string     `json:"category"`
	Brand       string     `json:"brand"`
	Type        string     `json:"type"`
	Vehicle     string     `json:"vehicle"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	StatusState string     `json:"status_state"`
	StatusLevel *int       `json:"status_level,omitempty"`
}

type updateAssetFieldParams struct {
	ID          string     `json:"id"`
	Field       string     `json:"field"`
	Value       string     `json:"value,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	StatusState string     `json:"status_state,omitempty"`
	StatusLevel *int       `json:"status_level,omitempty"`
}

type removeAssetsParams struct {
	IDs []string `json:"ids"`
}

type categoriesResult struct {
	Categories []string `json:"categories"`
}

type variantParams struct {
	Variant string `json:"variant"`
}

type layoutResult struct {
	Variant layout.Variant `json:"variant"`
	layout.Layout
}

type moveColumnParams struct {
	Variant string `json:"variant"`
	Src     string `json:"src"`
	Dst     string `json:"dst"`
}

type setColumnOrderParams struct {
	Variant string   `json:"variant"`
	Order   []string `json:"order"`
}

type toggleColumnParams struct {
	Variant string `json:"variant"`
	Column  string `json:"column"`
}

type sortTableParams struct {
	Variant string `json:"variant"`
	Column  string `json:"column"`
}

type filterTableParams struct {
	Variant string `json:"variant"`
	Column  string `json:"column,omitempty"`
	Value   string `json:"value"`
}

type rowSelectionParams struct {
	Variant string `json:"variant"`
	ID      string `json:"id"`
}

func registerTools(server *sdkmcp.Server, cfg Config) {
	inv := cfg.Inventory
	layouts := cfg.Layouts
	sessions := cfg.Sessions

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_assets",
		Description: "Get the current asset snapshot: the full hierarchy plus its version",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, _ emptyParams) (*sdkmcp.CallToolResult, inventory.Snapshot, error) {
		return nil, inv.Snapshot(), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_asset",
		Description: "Get one asset (including its children) by ID",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, p getAssetParams) (*sdkmcp.CallToolResult, asset.Asset, error) {
		a, err := inv.Get(p.ID)
		if err != nil {
			return nil, asset.Asset{}, mapError(err)
		}
		return nil, a, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "add_asset",
		Description: "Add a new root-level asset; it appears at the top of the table",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, p addAssetParams) (*sdkmcp.CallToolResult, inventory.Snapshot, error) {
		snap, err := inv.AddAsset(asset.Asset{
			ID:       p.ID,
			Serial:   p.Serial,
			Category: p.Category,
			Brand:    p.Brand,
			Type:     p.Type,
			Vehicle:  p.Vehicle,
			EndDate:  p.EndDate,
			Status:   asset.Status{State: asset.StatusState(p.StatusState), Level: p.StatusLevel},
		})
		if err != nil {
			return nil, inventory.Snapshot{}, mapError(err)
		}
		return nil, snap, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_asset_field",
		Description: "Replace one field of one asset anywhere in the hierarchy",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, p updateAssetFieldParams) (*sdkmcp.CallToolResult, inventory.Snapshot, error) {
		var status *asset.Status
		if p.StatusState != "" {
			status = &asset.Status{State: asset.StatusState(p.StatusState), Level: p.StatusLevel}
		}
		edit, err := asset.EditRequest{
			Field:   asset.Field(p.Field),
			Text:    p.Value,
			EndDate: p.EndDate,
			Status:  status,
		}.Edit()
		if err != nil {
			return nil, inventory.Snapshot{}, mapError(err)
		}
		if _, err := inv.Get(p.ID); err != nil {
			return nil, inventory.Snapshot{}, mapError(err)
		}
		return nil, inv.ReplaceField(p.ID, edit), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "remove_assets",
		Description: "Remove assets (and their subtrees) by ID; unknown IDs are ignored",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, p removeAssetsParams) (*sdkmcp.CallToolResult, inventory.Snapshot, error) {
		return nil, inv.RemoveAssets(p.IDs...), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_categories",
		Description: "List the distinct asset categories, sorted",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, _ emptyParams) (*sdkmcp.CallToolResult, categoriesResult, error) {
		return nil, categoriesResult{Categories: inv.Categories()}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_column_layout",
		Description: "Get the column order and visibility for one table variant",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, p variantParams) (*sdkmcp.CallToolResult, layoutResult, error) {
		pol, err := policyFor(layouts, p.Variant)
		if err != nil {
			return nil, layoutResult{}, err
		}
		return nil, layoutResult{Variant: pol.Variant(), Layout: pol.Layout()}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "move_column",
		Description: "Move a column to another column's position, as in a drag-and-drop reorder; the result is persisted",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, p moveColumnParams) (*sdkmcp.CallToolResult, layoutResult, error) {
		pol, err := policyFor(layouts, p.Variant)
		if err != nil {
			return nil, layoutResult{}, err
		}
		l := pol.Move(ctx, layout.Column(p.Src), layout.Column(p.Dst))
		return nil, layoutResult{Variant: pol.Variant(), Layout: l}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "set_column_order",
		Description: "Replace the full column order for one variant; invalid permutations are rejected",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, p setColumnOrderParams) (*sdkmcp.CallToolResult, layoutResult, error) {
		pol, err := policyFor(layouts, p.Variant)
		if err != nil {
			return nil, layoutResult{}, err
		}
		order := make([]layout.Column, len(p.Order))
		for i, c := range p.Order {
			order[i] = layout.Column(c)
		}
		l := pol.SetOrder(ctx, order)
		return nil, layoutResult{Variant: pol.Variant(), Layout: l}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "toggle_column",
		Description: "Toggle a column's visibility; the selection column cannot be hidden",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, p toggleColumnParams) (*sdkmcp.CallToolResult, layoutResult, error) {
		pol, err := policyFor(layouts, p.Variant)
		if err != nil {
			return nil, layoutResult{}, err
		}
		l := pol.ToggleVisibility(layout.Column(p.Column))
		return nil, layoutResult{Variant: pol.Variant(), Layout: l}, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_table_state",
		Description: "Get the current session's table state (sorting, filters, selection, paging) for one variant",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, p variantParams) (*sdkmcp.CallToolResult, table.State, error) {
		v, err := layout.ParseVariant(p.Variant)
		if err != nil {
			return nil, table.State{}, mapError(err)
		}
		return nil, sessions.Get(getSessionID(ctx), v), nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "sort_table",
		Description: "Cycle a column's sort through ascending, descending, and off",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, p sortTableParams) (*sdkmcp.CallToolResult, table.State, error) {
		v, err := layout.ParseVariant(p.Variant)
		if err != nil {
			return nil, table.State{}, mapError(err)
		}
		st := sessions.Update(getSessionID(ctx), v, func(st table.State) table.State {
			return st.ToggleSort(layout.Column(p.Column))
		})
		return nil, st, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "filter_table",
		Description: "Set a column filter or the global filter; filtering resets to the first page",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, p filterTableParams) (*sdkmcp.CallToolResult, table.State, error) {
		v, err := layout.ParseVariant(p.Variant)
		if err != nil {
			return nil, table.State{}, mapError(err)
		}
		st := sessions.Update(getSessionID(ctx), v, func(st table.State) table.State {
			if p.Column == "" {
				return st.WithGlobalFilter(p.Value)
			}
			return st.WithFilter(layout.Column(p.Column), p.Value)
		})
		return nil, st, nil
	})

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "toggle_row_selection",
		Description: "Toggle one row's selection; the flat variant keeps at most one row selected",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, p rowSelectionParams) (*sdkmcp.CallToolResult, table.State, error) {
		v, err := layout.ParseVariant(p.Variant)
		if err != nil {
			return nil, table.State{}, mapError(err)
		}
		st := sessions.Update(getSessionID(ctx), v, func(st table.State) table.State {
			return st.ToggleSelected(p.ID)
		})
		return nil, st, nil
	})
}

func policyFor(layouts *layout.Set, variant string) (*layout.Policy, error) {
	v, err := layout.ParseVariant(variant)
	if err != nil {
		return nil, mapError(err)
	}
	pol, err := layouts.For(v)
	if err != nil {
		return nil, mapError(err)
	}
	return pol, nil
}
