package table

import "github.com/ganot/assetgrid/internal/domain/layout"

// SortDirection is the direction of one sort entry.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Sort is one entry of the sorting state.
type Sort struct {
	Column    layout.Column `json:"column"`
	Direction SortDirection `json:"direction"`
}

// State is the UI state of one table instance: sorting, filters, selection,
// expansion, and pagination. It is an immutable value; every transition
// returns a new State and the previous one stays valid for any observer
// still holding it. The actual row ordering, filtering, and page slicing are
// the grid library's business; State only tracks what the user asked for.
type State struct {
	Variant      layout.Variant           `json:"variant"`
	Sorting      []Sort                   `json:"sorting,omitempty"`
	Filters      map[layout.Column]string `json:"filters,omitempty"`
	GlobalFilter string                   `json:"globalFilter,omitempty"`
	Selected     map[string]bool          `json:"selected,omitempty"`
	Expanded     map[string]bool          `json:"expanded,omitempty"`
	ExpandAll    bool                     `json:"expandAll"`
	PageIndex    int                      `json:"pageIndex"`
	PageSize     int                      `json:"pageSize"`
}

// DefaultPageSize matches the grid library's default.
const DefaultPageSize = 10

// NewState returns the initial state for a table variant. Tree variants
// start fully expanded; the flat variant is single-select.
func NewState(v layout.Variant) State {
	return State{
		Variant:   v,
		ExpandAll: v.HasSelection(),
		PageSize:  DefaultPageSize,
	}
}

// MultiSelect reports whether the variant allows more than one selected row.
func (s State) MultiSelect() bool {
	return s.Variant.HasSelection()
}

// ToggleSort cycles a column through none → asc → desc → none. Sorting is
// single-column, matching the prototypes.
func (s State) ToggleSort(c layout.Column) State {
	if len(s.Sorting) == 1 && s.Sorting[0].Column == c {
		if s.Sorting[0].Direction == SortAsc {
			s.Sorting = []Sort{{Column: c, Direction: SortDesc}}
		} else {
			s.Sorting = nil
		}
		return s
	}
	s.Sorting = []Sort{{Column: c, Direction: SortAsc}}
	return s
}

// WithFilter sets or clears one column filter.
func (s State) WithFilter(c layout.Column, value string) State {
	filters := make(map[layout.Column]string, len(s.Filters)+1)
	for k, v := range s.Filters {
		filters[k] = v
	}
	if value == "" {
		delete(filters, c)
	} else {
		filters[c] = value
	}
	if len(filters) == 0 {
		filters = nil
	}
	s.Filters = filters
	return s.resetPage()
}

// WithGlobalFilter sets the search-all-assets filter.
func (s State) WithGlobalFilter(value string) State {
	s.GlobalFilter = value
	return s.resetPage()
}

// ToggleSelected flips one row's selection. In single-select variants,
// selecting a row clears any previous selection.
func (s State) ToggleSelected(id string) State {
	selected := make(map[string]bool, len(s.Selected)+1)
	if s.MultiSelect() {
		for k := range s.Selected {
			selected[k] = true
		}
	} else if s.Selected[id] {
		// re-clicking the single selected row deselects it
		s.Selected = nil
		return s
	}
	if selected[id] {
		delete(selected, id)
	} else {
		selected[id] = true
	}
	if len(selected) == 0 {
		selected = nil
	}
	s.Selected = selected
	return s
}

// ClearSelection drops all selected rows.
func (s State) ClearSelection() State {
	s.Selected = nil
	return s
}

// SelectedIDs returns the selected row ids in unspecified order.
func (s State) SelectedIDs() []string {
	out := make([]string, 0, len(s.Selected))
	for id := range s.Selected {
		out = append(out, id)
	}
	return out
}

// ToggleExpanded flips one row's expansion. Rows default to the ExpandAll
// setting, so the map records deviations from it.
func (s State) ToggleExpanded(id string) State {
	expanded := make(map[string]bool, len(s.Expanded)+1)
	for k, v := range s.Expanded {
		expanded[k] = v
	}
	cur, ok := expanded[id]
	if !ok {
		cur = s.ExpandAll
	}
	expanded[id] = !cur
	s.Expanded = expanded
	return s
}

// IsExpanded reports whether a row is expanded.
func (s State) IsExpanded(id string) bool {
	if v, ok := s.Expanded[id]; ok {
		return v
	}
	return s.ExpandAll
}

// PageCount returns the number of pages for a row count.
func (s State) PageCount(rows int) int {
	if s.PageSize <= 0 || rows <= 0 {
		return 1
	}
	return (rows + s.PageSize - 1) / s.PageSize
}

// SetPage moves to a page index, clamped to [0, PageCount-1] for the given
// row count.
func (s State) SetPage(index, rows int) State {
	last := s.PageCount(rows) - 1
	if index < 0 {
		index = 0
	}
	if index > last {
		index = last
	}
	s.PageIndex = index
	return s
}

// NextPage advances one page, clamped.
func (s State) NextPage(rows int) State {
	return s.SetPage(s.PageIndex+1, rows)
}

// PrevPage goes back one page, clamped.
func (s State) PrevPage(rows int) State {
	return s.SetPage(s.PageIndex-1, rows)
}

// WithPageSize changes the page size and resets to the first page.
func (s State) WithPageSize(size int) State {
	if size > 0 {
		s.PageSize = size
	}
	return s.resetPage()
}

func (s State) resetPage() State {
	s.PageIndex = 0
	return s
}
