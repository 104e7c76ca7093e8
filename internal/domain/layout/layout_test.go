package layout_test

import (
	"testing"

	"github.com/ganot/assetgrid/internal/domain/layout"
	"github.com/stretchr/testify/require"
)

func TestDefaultOrder(t *testing.T) {
	require.Equal(t, []layout.Column{
		"id", "serial", "category", "brand", "type", "vehicle", "status",
	}, layout.DefaultOrder(layout.VariantFlat))

	for _, v := range []layout.Variant{layout.VariantTree1, layout.VariantTree2} {
		order := layout.DefaultOrder(v)
		require.Equal(t, layout.ColumnSelect, order[0])
		require.True(t, v.HasSelection())
	}
	require.False(t, layout.VariantFlat.HasSelection())
}

func TestStorageKey(t *testing.T) {
	require.Equal(t, "assetTableColumnOrder", layout.VariantFlat.StorageKey())
	require.Equal(t, "assetTable_v1ColumnOrder", layout.VariantTree1.StorageKey())
	require.Equal(t, "assetTable_v2ColumnOrder", layout.VariantTree2.StorageKey())
}

func TestMove(t *testing.T) {
	order := layout.DefaultOrder(layout.VariantFlat)

	moved := layout.Move(order, layout.ColumnBrand, layout.ColumnID)
	require.Equal(t, []layout.Column{
		"brand", "id", "serial", "category", "type", "vehicle", "status",
	}, moved)

	// original order untouched
	require.Equal(t, layout.DefaultOrder(layout.VariantFlat), order)
}

func TestMove_RoundTripRestoresOrder(t *testing.T) {
	order := layout.DefaultOrder(layout.VariantTree1)

	moved := layout.Move(order, layout.ColumnVehicle, layout.ColumnSerial)
	require.NotEqual(t, order, moved)

	// moving back to the column now occupying the original slot restores
	// the permutation
	restored := layout.Move(moved, layout.ColumnVehicle, layout.ColumnType)
	require.Equal(t, order, restored)
}

func TestMove_NoOps(t *testing.T) {
	order := layout.DefaultOrder(layout.VariantFlat)

	require.Equal(t, order, layout.Move(order, layout.ColumnBrand, layout.ColumnBrand))
	require.Equal(t, order, layout.Move(order, layout.Column("bogus"), layout.ColumnID))
	require.Equal(t, order, layout.Move(order, layout.ColumnID, layout.ColumnSelect))
}

func TestIsPermutationOf(t *testing.T) {
	def := layout.DefaultOrder(layout.VariantFlat)

	require.True(t, layout.IsPermutationOf(layout.Move(def, "status", "id"), def))
	require.False(t, layout.IsPermutationOf(def[1:], def))
	require.False(t, layout.IsPermutationOf(append([]layout.Column{"bogus"}, def[1:]...), def))

	dup := append([]layout.Column(nil), def...)
	dup[0] = dup[1]
	require.False(t, layout.IsPermutationOf(dup, def))
}

func TestToggleVisibility(t *testing.T) {
	l := layout.DefaultLayout(layout.VariantTree1)
	require.True(t, l.Visible(layout.ColumnBrand))

	l2 := l.ToggleVisibility(layout.ColumnBrand)
	require.False(t, l2.Visible(layout.ColumnBrand))
	require.True(t, l.Visible(layout.ColumnBrand), "toggle must not mutate the receiver")
	require.Equal(t, l.Order, l2.Order)

	l3 := l2.ToggleVisibility(layout.ColumnBrand)
	require.True(t, l3.Visible(layout.ColumnBrand))

	// the selection column can never be hidden
	require.True(t, l.ToggleVisibility(layout.ColumnSelect).Visible(layout.ColumnSelect))
}
