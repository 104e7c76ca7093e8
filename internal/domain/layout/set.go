package layout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ErrUnknownVariant indicates a variant name no table renders.
var ErrUnknownVariant = errors.New("unknown table variant")

// Variants lists every table variant, in presentation order.
var Variants = []Variant{VariantFlat, VariantTree1, VariantTree2}

// ParseVariant validates a caller-supplied variant name.
func ParseVariant(s string) (Variant, error) {
	v := Variant(s)
	switch v {
	case VariantFlat, VariantTree1, VariantTree2:
		return v, nil
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownVariant)
}

// Set holds one Policy per table variant, all backed by the same
// preference store.
type Set struct {
	policies map[Variant]*Policy
}

// NewSet loads a policy for every variant.
func NewSet(ctx context.Context, store PreferenceStore, logger *slog.Logger) *Set {
	policies := make(map[Variant]*Policy, len(Variants))
	for _, v := range Variants {
		policies[v] = NewPolicy(ctx, v, store, logger)
	}
	return &Set{policies: policies}
}

// For returns the policy for a variant.
func (s *Set) For(v Variant) (*Policy, error) {
	p, ok := s.policies[v]
	if !ok {
		return nil, fmt.Errorf("%q: %w", v, ErrUnknownVariant)
	}
	return p, nil
}
