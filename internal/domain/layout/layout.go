package layout

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Column identifies one table column.
type Column string

const (
	ColumnSelect   Column = "select"
	ColumnID       Column = "id"
	ColumnSerial   Column = "serial"
	ColumnCategory Column = "category"
	ColumnBrand    Column = "brand"
	ColumnType     Column = "type"
	ColumnVehicle  Column = "vehicle"
	ColumnEndDate  Column = "endDate"
	ColumnStatus   Column = "status"
)

// Variant identifies one table variant. Each variant has its own column set,
// default order, and persistence key.
type Variant string

const (
	// VariantFlat is the plain paginated table without hierarchy.
	VariantFlat Variant = "assetTable"
	// VariantTree1 is the indented-tree prototype with row checkboxes.
	VariantTree1 Variant = "assetTable_v1"
	// VariantTree2 is the tree prototype with vertical indentation guides.
	VariantTree2 Variant = "assetTable_v2"
)

// StorageKey returns the preference-store key holding the persisted column
// order for this variant.
func (v Variant) StorageKey() string {
	return string(v) + "ColumnOrder"
}

// HasSelection reports whether the variant carries the mandatory leading
// selection column.
func (v Variant) HasSelection() bool {
	return v != VariantFlat
}

// DefaultOrder returns the variant's hard-coded default column permutation.
func DefaultOrder(v Variant) []Column {
	if v == VariantFlat {
		return []Column{
			ColumnID, ColumnSerial, ColumnCategory, ColumnBrand,
			ColumnType, ColumnVehicle, ColumnStatus,
		}
	}
	return []Column{
		ColumnSelect, ColumnID, ColumnSerial, ColumnCategory, ColumnBrand,
		ColumnType, ColumnVehicle, ColumnEndDate, ColumnStatus,
	}
}

// Layout is the user-controlled column arrangement for one table variant.
// Order is always a permutation of the variant's column set. Hidden maps
// column to hidden; absent means visible.
type Layout struct {
	Order  []Column        `json:"order"`
	Hidden map[Column]bool `json:"hidden,omitempty"`
}

// DefaultLayout returns the variant's initial layout: default order, all
// columns visible.
func DefaultLayout(v Variant) Layout {
	return Layout{Order: DefaultOrder(v)}
}

// Visible reports whether a column is currently shown.
func (l Layout) Visible(c Column) bool {
	return !l.Hidden[c]
}

// WithOrder returns a copy of the layout with a new order. The caller is
// responsible for passing a valid permutation.
func (l Layout) WithOrder(order []Column) Layout {
	l.Order = append([]Column(nil), order...)
	return l
}

// ToggleVisibility returns a copy of the layout with one column's visibility
// flipped. Order is unaffected. The selection column cannot be hidden.
func (l Layout) ToggleVisibility(c Column) Layout {
	if c == ColumnSelect {
		return l
	}
	hidden := make(map[Column]bool, len(l.Hidden)+1)
	for k, v := range l.Hidden {
		hidden[k] = v
	}
	if hidden[c] {
		delete(hidden, c)
	} else {
		hidden[c] = true
	}
	l.Hidden = hidden
	return l
}

// Move returns a new order with src removed from its position and reinserted
// at dst's current position; elements between the two shift by one slot.
// It is a no-op when src == dst or when either column is absent.
func Move(order []Column, src, dst Column) []Column {
	if src == dst {
		return order
	}
	from, to := indexOf(order, src), indexOf(order, dst)
	if from < 0 || to < 0 {
		return order
	}
	out := append([]Column(nil), order...)
	col := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]Column{col}, out[to:]...)...)
	return out
}

// IsPermutationOf reports whether order contains exactly the given columns:
// never missing one, never containing an unknown or duplicated one.
func IsPermutationOf(order, want []Column) bool {
	if len(order) != len(want) {
		return false
	}
	return mapset.NewThreadUnsafeSet(order...).Equal(mapset.NewThreadUnsafeSet(want...))
}

func indexOf(order []Column, c Column) int {
	for i, v := range order {
		if v == c {
			return i
		}
	}
	return -1
}
