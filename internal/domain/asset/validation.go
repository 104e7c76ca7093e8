package asset

import "strings"

// ValidateNew validates the fields required to add a new asset. The editing
// UI submits the add-item form only with these populated; this is the
// backend half of that contract.
func ValidateNew(a Asset) error {
	if strings.TrimSpace(a.Serial) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(a.Category) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(a.Brand) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(a.Type) == "" {
		return ErrInvalidInput
	}
	if strings.TrimSpace(a.Vehicle) == "" {
		return ErrInvalidInput
	}
	if !ValidState(a.Status.State) {
		return ErrInvalidInput
	}
	return nil
}
