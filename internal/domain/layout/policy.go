package layout

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
)

// PreferenceStore persists the serialized column order per table variant.
// It is the client-local key/value substrate; the column order is the only
// state ever written through it.
type PreferenceStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// Policy owns the column layout for one table variant. Transitions are
// serialized and synchronous; every order change is written through the
// preference store so a reload reconstructs the last order. A failed write
// degrades to "preference not remembered" and is never surfaced.
type Policy struct {
	variant Variant
	store   PreferenceStore
	logger  *slog.Logger

	mu     sync.Mutex
	layout Layout
}

// NewPolicy creates a policy for the variant and loads any persisted order.
// Corrupt or invalid persisted state is treated as absent: the policy falls
// back to the variant's default order silently.
func NewPolicy(ctx context.Context, variant Variant, store PreferenceStore, logger *slog.Logger) *Policy {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Policy{
		variant: variant,
		store:   store,
		logger:  logger,
		layout:  DefaultLayout(variant),
	}
	p.load(ctx)
	return p
}

// Variant returns the table variant this policy belongs to.
func (p *Policy) Variant() Variant {
	return p.variant
}

// Layout returns the current layout snapshot.
func (p *Policy) Layout() Layout {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.layout
}

// Order returns the current column order.
func (p *Policy) Order() []Column {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.layout.Order
}

// Move commits a drag-reorder gesture: src is removed from its position and
// reinserted at dst's position. No-op gestures (same column, unknown column)
// leave the order untouched and are not persisted.
func (p *Policy) Move(ctx context.Context, src, dst Column) Layout {
	p.mu.Lock()
	defer p.mu.Unlock()

	moved := Move(p.layout.Order, src, dst)
	if same(moved, p.layout.Order) {
		return p.layout
	}
	p.layout = p.layout.WithOrder(moved)
	p.persist(ctx)
	return p.layout
}

// SetOrder adopts a full order, typically echoed back by the grid library
// after a drag commit. Invalid permutations are rejected silently.
func (p *Policy) SetOrder(ctx context.Context, order []Column) Layout {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !IsPermutationOf(order, DefaultOrder(p.variant)) {
		p.logger.Warn("rejecting invalid column order", "variant", p.variant)
		return p.layout
	}
	if same(order, p.layout.Order) {
		return p.layout
	}
	p.layout = p.layout.WithOrder(order)
	p.persist(ctx)
	return p.layout
}

// ToggleVisibility flips one column's visibility. Visibility is session
// state only and is never persisted.
func (p *Policy) ToggleVisibility(c Column) Layout {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.layout = p.layout.ToggleVisibility(c)
	return p.layout
}

func (p *Policy) load(ctx context.Context) {
	raw, err := p.store.Get(ctx, p.variant.StorageKey())
	if err != nil || raw == "" {
		// first run, or the substrate is unavailable; keep the default
		return
	}

	var order []Column
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		p.logger.Warn("discarding malformed persisted column order",
			"variant", p.variant, "error", err)
		return
	}

	// A persisted order written before the selection column existed is still
	// usable once the mandatory column is restored at the front.
	if p.variant.HasSelection() && indexOf(order, ColumnSelect) < 0 {
		order = append([]Column{ColumnSelect}, order...)
	}

	if !IsPermutationOf(order, DefaultOrder(p.variant)) {
		p.logger.Warn("discarding persisted column order that no longer matches the column set",
			"variant", p.variant)
		return
	}

	p.layout = p.layout.WithOrder(order)
}

func (p *Policy) persist(ctx context.Context) {
	data, err := json.Marshal(p.layout.Order)
	if err != nil {
		p.logger.Warn("failed to serialize column order", "variant", p.variant, "error", err)
		return
	}
	if err := p.store.Set(ctx, p.variant.StorageKey(), string(data)); err != nil {
		p.logger.Warn("failed to persist column order", "variant", p.variant, "error", err)
	}
}

func same(a, b []Column) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
