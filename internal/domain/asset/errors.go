package asset

import "errors"

var (
	// ErrAssetNotFound indicates the asset doesn't exist in the snapshot.
	ErrAssetNotFound = errors.New("asset not found")
	// ErrDuplicateID indicates an add would reuse an existing asset id.
	ErrDuplicateID = errors.New("duplicate asset id")
	// ErrInvalidInput indicates invalid input for asset operations.
	ErrInvalidInput = errors.New("invalid asset input")
)
