package asset

import "time"

// StatusState represents the operational condition of an asset
type StatusState string

const (
	StateOperational StatusState = "operational"
	StateMaintenance StatusState = "maintenance"
	StateRepair      StatusState = "repair"
	StateInspection  StatusState = "inspection"
)

// ValidState reports whether s is one of the known status states.
func ValidState(s StatusState) bool {
	switch s {
	case StateOperational, StateMaintenance, StateRepair, StateInspection:
		return true
	}
	return false
}

// Status is the structured status value of an asset. Level is an optional
// severity/progress number shown next to the state icon.
type Status struct {
	State StatusState `json:"state"`
	Level *int        `json:"level,omitempty"`
}

// Asset represents one inventory item (vehicle or equipment). Children
// carries hierarchical child assets in the tree table variants; depth is
// derived from nesting and never stored. A nil and an empty Children slice
// both mean the asset is a leaf.
type Asset struct {
	ID       string     `json:"id"`
	Serial   string     `json:"serial"`
	Category string     `json:"category"`
	Brand    string     `json:"brand"`
	Type     string     `json:"type"`
	Vehicle  string     `json:"vehicle"`
	EndDate  *time.Time `json:"endDate,omitempty"`
	Status   Status     `json:"status"`
	Children []Asset    `json:"children,omitempty"`
}

// Leaf reports whether the asset has no children and is therefore not
// expandable in the tree variants.
func (a Asset) Leaf() bool {
	return len(a.Children) == 0
}
