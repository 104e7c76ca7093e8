package mcp

import (
	"errors"
	"fmt"

	"github.com/ganot/assetgrid/internal/domain/asset"
	"github.com/ganot/assetgrid/internal/domain/layout"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, asset.ErrAssetNotFound):
		return &APIError{Code: "ASSET_NOT_FOUND", Message: "asset not found", RecoveryHint: "Call list_assets to see current ids"}
	case errors.Is(err, asset.ErrDuplicateID):
		return &APIError{Code: "DUPLICATE_ID", Message: "asset id already exists", RecoveryHint: "Omit id to have one generated"}
	case errors.Is(err, asset.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, layout.ErrUnknownVariant):
		return &APIError{Code: "UNKNOWN_VARIANT", Message: err.Error(), RecoveryHint: "Valid variants: assetTable, assetTable_v1, assetTable_v2"}
	default:
		return nil
	}
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
