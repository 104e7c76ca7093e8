package table_test

import (
	"testing"

	"github.com/ganot/assetgrid/internal/domain/layout"
	"github.com/ganot/assetgrid/internal/domain/table"
	"github.com/stretchr/testify/require"
)

func TestToggleSortCycles(t *testing.T) {
	s := table.NewState(layout.VariantFlat)

	s = s.ToggleSort(layout.ColumnBrand)
	require.Equal(t, []table.Sort{{Column: "brand", Direction: table.SortAsc}}, s.Sorting)

	s = s.ToggleSort(layout.ColumnBrand)
	require.Equal(t, []table.Sort{{Column: "brand", Direction: table.SortDesc}}, s.Sorting)

	s = s.ToggleSort(layout.ColumnBrand)
	require.Empty(t, s.Sorting)
}

func TestToggleSortSwitchesColumn(t *testing.T) {
	s := table.NewState(layout.VariantFlat).
		ToggleSort(layout.ColumnBrand).
		ToggleSort(layout.ColumnSerial)
	require.Equal(t, []table.Sort{{Column: "serial", Direction: table.SortAsc}}, s.Sorting)
}

func TestFiltersResetPage(t *testing.T) {
	s := table.NewState(layout.VariantFlat).SetPage(3, 100)
	require.Equal(t, 3, s.PageIndex)

	s = s.WithFilter(layout.ColumnCategory, "Heavy")
	require.Equal(t, 0, s.PageIndex)
	require.Equal(t, "Heavy", s.Filters[layout.ColumnCategory])

	s = s.WithFilter(layout.ColumnCategory, "")
	require.Empty(t, s.Filters)

	s = s.WithGlobalFilter("truck")
	require.Equal(t, "truck", s.GlobalFilter)
}

func TestSingleSelect(t *testing.T) {
	s := table.NewState(layout.VariantFlat)
	require.False(t, s.MultiSelect())

	s = s.ToggleSelected("A1")
	require.Equal(t, []string{"A1"}, s.SelectedIDs())

	// selecting another row replaces the selection
	s = s.ToggleSelected("B2")
	require.Equal(t, []string{"B2"}, s.SelectedIDs())

	// re-clicking deselects
	s = s.ToggleSelected("B2")
	require.Empty(t, s.SelectedIDs())
}

func TestMultiSelect(t *testing.T) {
	s := table.NewState(layout.VariantTree1)
	require.True(t, s.MultiSelect())

	s = s.ToggleSelected("A1").ToggleSelected("A1-a")
	require.ElementsMatch(t, []string{"A1", "A1-a"}, s.SelectedIDs())

	s = s.ToggleSelected("A1")
	require.Equal(t, []string{"A1-a"}, s.SelectedIDs())

	require.Empty(t, s.ClearSelection().SelectedIDs())
}

func TestSelectionIsImmutable(t *testing.T) {
	before := table.NewState(layout.VariantTree1).ToggleSelected("A1")
	after := before.ToggleSelected("B2")
	require.Equal(t, []string{"A1"}, before.SelectedIDs())
	require.ElementsMatch(t, []string{"A1", "B2"}, after.SelectedIDs())
}

func TestExpansionDefaults(t *testing.T) {
	tree := table.NewState(layout.VariantTree1)
	require.True(t, tree.IsExpanded("A1"), "tree variants start expanded")

	collapsed := tree.ToggleExpanded("A1")
	require.False(t, collapsed.IsExpanded("A1"))
	require.True(t, collapsed.IsExpanded("B2"))
	require.True(t, tree.IsExpanded("A1"), "previous state unaffected")

	flat := table.NewState(layout.VariantFlat)
	require.False(t, flat.IsExpanded("A1"))
}

func TestPaginationClamping(t *testing.T) {
	s := table.NewState(layout.VariantFlat)
	require.Equal(t, 3, s.PageCount(25))
	require.Equal(t, 1, s.PageCount(0))

	s = s.SetPage(99, 25)
	require.Equal(t, 2, s.PageIndex)

	s = s.NextPage(25)
	require.Equal(t, 2, s.PageIndex, "cannot advance past the last page")

	s = s.PrevPage(25).PrevPage(25).PrevPage(25)
	require.Equal(t, 0, s.PageIndex)

	s = s.SetPage(2, 25).WithPageSize(25)
	require.Equal(t, 0, s.PageIndex)
	require.Equal(t, 1, s.PageCount(25))
}
