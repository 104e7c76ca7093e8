package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ganot/assetgrid/internal/domain/asset"
	"github.com/ganot/assetgrid/internal/repository"
	"github.com/google/uuid"
)

// Snapshot is an immutable view of the whole asset collection at one point
// in time. Updates never mutate a published snapshot; each transition
// produces a new one with a higher version.
type Snapshot struct {
	Assets  []asset.Asset `json:"assets"`
	Version int64         `json:"version"`
}

// Service owns the canonical asset collection. The loader supplies it once
// at startup; afterwards it evolves purely through field replacements, root
// prepends, and removals, each publishing a fresh snapshot to subscribers.
// Transitions are serialized; readers always see a complete snapshot.
type Service struct {
	assets repository.AssetRepository
	logger *slog.Logger

	mu       sync.Mutex
	snapshot Snapshot
	subs     map[int]chan Snapshot
	nextSub  int
}

// NewService creates a new inventory service.
func NewService(assets repository.AssetRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		assets: assets,
		logger: logger,
		subs:   map[int]chan Snapshot{},
	}
}

// Load fetches the initial collection from the loader. It is called once at
// startup; calling it again replaces the in-memory collection wholesale.
func (s *Service) Load(ctx context.Context) error {
	forest, err := s.assets.ListForest(ctx)
	if err != nil {
		return fmt.Errorf("loading assets: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = Snapshot{Assets: forest, Version: s.snapshot.Version + 1}
	s.logger.Info("asset collection loaded", "assets", asset.Count(forest))
	s.publishLocked()
	return nil
}

// Snapshot returns the current snapshot.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// ReplaceField applies a single-field edit to the asset with the given id
// and returns the resulting snapshot. An unknown id is a silent no-op: the
// editing UI only submits ids drawn from currently rendered rows, so there
// is nothing to report and no new snapshot is published.
func (s *Service) ReplaceField(id string, edit asset.Edit) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := asset.ReplaceField(s.snapshot.Assets, id, edit)
	if len(updated) == 0 || &updated[0] == &s.snapshot.Assets[0] {
		// unknown id: the store returned the input unchanged
		return s.snapshot
	}
	s.snapshot = Snapshot{Assets: updated, Version: s.snapshot.Version + 1}
	s.logger.Debug("asset field replaced", "id", id, "field", edit.Field(), "version", s.snapshot.Version)
	s.publishLocked()
	return s.snapshot
}

// AddAsset validates the new asset, assigns a UUID when the caller supplied
// no id, and prepends it to the roots. Duplicate ids are rejected here:
// the tree store itself never checks, so this is the enforcement point for
// its uniqueness precondition.
func (s *Service) AddAsset(a asset.Asset) (Snapshot, error) {
	if err := asset.ValidateNew(a); err != nil {
		return Snapshot{}, err
	}
	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := asset.Find(s.snapshot.Assets, a.ID); exists {
		return Snapshot{}, fmt.Errorf("adding asset %q: %w", a.ID, asset.ErrDuplicateID)
	}

	s.snapshot = Snapshot{
		Assets:  asset.PrependRoot(s.snapshot.Assets, a),
		Version: s.snapshot.Version + 1,
	}
	s.logger.Info("asset added", "id", a.ID, "vehicle", a.Vehicle)
	s.publishLocked()
	return s.snapshot, nil
}

// RemoveAssets drops the listed assets and their subtrees. Unknown ids are
// ignored.
func (s *Service) RemoveAssets(ids ...string) Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := asset.Count(s.snapshot.Assets)
	updated := asset.RemoveByID(s.snapshot.Assets, ids...)
	if asset.Count(updated) == before {
		return s.snapshot
	}
	s.snapshot = Snapshot{Assets: updated, Version: s.snapshot.Version + 1}
	s.logger.Info("assets removed", "requested", len(ids), "removed", before-asset.Count(updated))
	s.publishLocked()
	return s.snapshot
}

// Get returns one asset by id.
func (s *Service) Get(id string) (asset.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := asset.Find(s.snapshot.Assets, id)
	if !ok {
		return asset.Asset{}, asset.ErrAssetNotFound
	}
	return a, nil
}

// Categories returns the distinct categories in the current snapshot.
func (s *Service) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return asset.Categories(s.snapshot.Assets)
}

// Subscribe registers a read-only snapshot feed for the rendering layer.
// The current snapshot is delivered immediately; afterwards every published
// snapshot is sent. Slow consumers miss intermediate snapshots rather than
// blocking an update. The returned cancel func releases the subscription.
func (s *Service) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Snapshot, 1)
	ch <- s.snapshot
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch

	cancel := func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

func (s *Service) publishLocked() {
	for _, ch := range s.subs {
		select {
		case ch <- s.snapshot:
		default:
			// drop the stale pending snapshot and queue the newest
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- s.snapshot:
			default:
			}
		}
	}
}
