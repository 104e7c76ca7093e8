package transport

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ganot/assetgrid/internal/domain/asset"
	"github.com/ganot/assetgrid/internal/domain/layout"
	"github.com/ganot/assetgrid/internal/domain/table"
	"github.com/ganot/assetgrid/internal/inventory"
)

// InventoryService defines the asset collection operations the grid API
// needs.
type InventoryService interface {
	Snapshot() inventory.Snapshot
	Get(id string) (asset.Asset, error)
	AddAsset(a asset.Asset) (inventory.Snapshot, error)
	ReplaceField(id string, edit asset.Edit) inventory.Snapshot
	RemoveAssets(ids ...string) inventory.Snapshot
	Categories() []string
}

// Server wires the grid HTTP API.
type Server struct {
	inventory InventoryService
	layouts   *layout.Set
	sessions  *table.Sessions
}

// NewServer creates the API router. mcpHandler, when non-nil, is mounted at
// /mcp for assistant clients alongside the grid REST surface.
func NewServer(inv InventoryService, layouts *layout.Set, sessions *table.Sessions, mcpHandler http.Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(SessionMiddleware)

	srv := &Server{inventory: inv, layouts: layouts, sessions: sessions}

	r.Get("/health", srv.handleHealth)
	if mcpHandler != nil {
		r.Handle("/mcp", mcpHandler)
		r.Handle("/mcp/*", mcpHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/assets", srv.handleListAssets)
		r.Post("/assets", srv.handleAddAsset)
		r.Delete("/assets", srv.handleRemoveAssets)
		r.Get("/assets/{id}", srv.handleGetAsset)
		r.Patch("/assets/{id}", srv.handleEditAsset)
		r.Get("/categories", srv.handleCategories)

		r.Route("/layouts/{variant}", func(r chi.Router) {
			r.Get("/", srv.handleGetLayout)
			r.Post("/move", srv.handleMoveColumn)
			r.Put("/order", srv.handleSetOrder)
			r.Post("/visibility", srv.handleToggleVisibility)
		})

		r.Route("/table/{variant}", func(r chi.Router) {
			r.Get("/", srv.handleGetTableState)
			r.Post("/sort", srv.handleToggleSort)
			r.Post("/filter", srv.handleSetFilter)
			r.Post("/select", srv.handleToggleSelect)
			r.Delete("/select", srv.handleClearSelection)
			r.Post("/expand", srv.handleToggleExpand)
			r.Post("/page", srv.handleSetPage)
			r.Post("/page-size", srv.handleSetPageSize)
		})
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleListAssets(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.inventory.Snapshot())
}

func (s *Server) handleGetAsset(w http.ResponseWriter, r *http.Request) {
	a, err := s.inventory.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleAddAsset(w http.ResponseWriter, r *http.Request) {
	var a asset.Asset
	if !decodeBody(w, r, &a) {
		return
	}
	snap, err := s.inventory.AddAsset(a)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, snap)
}

type editAssetRequest struct {
	Field   asset.Field   `json:"field"`
	Value   string        `json:"value,omitempty"`
	EndDate *time.Time    `json:"endDate,omitempty"`
	Status  *asset.Status `json:"status,omitempty"`
}

func (s *Server) handleEditAsset(w http.ResponseWriter, r *http.Request) {
	var req editAssetRequest
	if !decodeBody(w, r, &req) {
		return
	}
	edit, err := asset.EditRequest{
		Field:   req.Field,
		Text:    req.Value,
		EndDate: req.EndDate,
		Status:  req.Status,
	}.Edit()
	if err != nil {
		writeError(w, err)
		return
	}

	id := chi.URLParam(r, "id")
	if _, err := s.inventory.Get(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.inventory.ReplaceField(id, edit))
}

type removeAssetsRequest struct {
	IDs []string `json:"ids"`
}

func (s *Server) handleRemoveAssets(w http.ResponseWriter, r *http.Request) {
	var req removeAssetsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	writeJSON(w, http.StatusOK, s.inventory.RemoveAssets(req.IDs...))
}

func (s *Server) handleCategories(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.inventory.Categories())
}

type layoutResponse struct {
	Variant layout.Variant `json:"variant"`
	layout.Layout
}

func (s *Server) policyFor(w http.ResponseWriter, r *http.Request) (*layout.Policy, bool) {
	v, err := layout.ParseVariant(chi.URLParam(r, "variant"))
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	p, err := s.layouts.For(v)
	if err != nil {
		writeError(w, err)
		return nil, false
	}
	return p, true
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	p, ok := s.policyFor(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, layoutResponse{Variant: p.Variant(), Layout: p.Layout()})
}

type moveColumnRequest struct {
	Src layout.Column `json:"src"`
	Dst layout.Column `json:"dst"`
}

func (s *Server) handleMoveColumn(w http.ResponseWriter, r *http.Request) {
	p, ok := s.policyFor(w, r)
	if !ok {
		return
	}
	var req moveColumnRequest
	if !decodeBody(w, r, &req) {
		return
	}
	l := p.Move(r.Context(), req.Src, req.Dst)
	writeJSON(w, http.StatusOK, layoutResponse{Variant: p.Variant(), Layout: l})
}

type setOrderRequest struct {
	Order []layout.Column `json:"order"`
}

func (s *Server) handleSetOrder(w http.ResponseWriter, r *http.Request) {
	p, ok := s.policyFor(w, r)
	if !ok {
		return
	}
	var req setOrderRequest
	if !decodeBody(w, r, &req) {
		return
	}
	l := p.SetOrder(r.Context(), req.Order)
	writeJSON(w, http.StatusOK, layoutResponse{Variant: p.Variant(), Layout: l})
}

type toggleColumnRequest struct {
	Column layout.Column `json:"column"`
}

func (s *Server) handleToggleVisibility(w http.ResponseWriter, r *http.Request) {
	p, ok := s.policyFor(w, r)
	if !ok {
		return
	}
	var req toggleColumnRequest
	if !decodeBody(w, r, &req) {
		return
	}
	l := p.ToggleVisibility(req.Column)
	writeJSON(w, http.StatusOK, layoutResponse{Variant: p.Variant(), Layout: l})
}

func (s *Server) tableVariant(w http.ResponseWriter, r *http.Request) (layout.Variant, bool) {
	v, err := layout.ParseVariant(chi.URLParam(r, "variant"))
	if err != nil {
		writeError(w, err)
		return "", false
	}
	return v, true
}

func (s *Server) handleGetTableState(w http.ResponseWriter, r *http.Request) {
	v, ok := s.tableVariant(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.sessions.Get(SessionID(r.Context()), v))
}

func (s *Server) updateTableState(w http.ResponseWriter, r *http.Request, fn func(table.State) table.State) {
	v, ok := s.tableVariant(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, s.sessions.Update(SessionID(r.Context()), v, fn))
}

func (s *Server) handleToggleSort(w http.ResponseWriter, r *http.Request) {
	var req toggleColumnRequest
	if !decodeBody(w, r, &req) {
		return
	}
	s.updateTableState(w, r, func(st table.State) table.State {
		return st.ToggleSort(req.Column)
	})
}

type setFilterRequest struct {
	Column layout.Column `json:"column,omitempty"`
	Value  string        `json:"value"`
}

func (s *Server) handleSetFilter(w http.ResponseWriter, r *http.Request) {
	var req setFilterRequest
	if !decodeBody(w, r, &req) {
		return
	}
	s.updateTableState(w, r, func(st table.State) table.State {
		if req.Column == "" {
			return st.WithGlobalFilter(req.Value)
		}
		return st.WithFilter(req.Column, req.Value)
	})
}

type rowRequest struct {
	ID string `json:"id"`
}

func (s *Server) handleToggleSelect(w http.ResponseWriter, r *http.Request) {
	var req rowRequest
	if !decodeBody(w, r, &req) {
		return
	}
	s.updateTableState(w, r, func(st table.State) table.State {
		return st.ToggleSelected(req.ID)
	})
}

func (s *Server) handleClearSelection(w http.ResponseWriter, r *http.Request) {
	s.updateTableState(w, r, table.State.ClearSelection)
}

func (s *Server) handleToggleExpand(w http.ResponseWriter, r *http.Request) {
	var req rowRequest
	if !decodeBody(w, r, &req) {
		return
	}
	s.updateTableState(w, r, func(st table.State) table.State {
		return st.ToggleExpanded(req.ID)
	})
}

type setPageRequest struct {
	Index int `json:"index"`
}

func (s *Server) handleSetPage(w http.ResponseWriter, r *http.Request) {
	var req setPageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rows := asset.Count(s.inventory.Snapshot().Assets)
	s.updateTableState(w, r, func(st table.State) table.State {
		return st.SetPage(req.Index, rows)
	})
}

type setPageSizeRequest struct {
	Size int `json:"size"`
}

func (s *Server) handleSetPageSize(w http.ResponseWriter, r *http.Request) {
	var req setPageSizeRequest
	if !decodeBody(w, r, &req) {
		return
	}
	s.updateTableState(w, r, func(st table.State) table.State {
		return st.WithPageSize(req.Size)
	})
}
