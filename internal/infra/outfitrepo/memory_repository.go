package outfitrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/fitr-app/fitr-backend/internal/domain/outfit"
)

// MemoryRepository keeps outfit history in process memory for tests/dev.
type MemoryRepository struct {
	mu      sync.RWMutex
	byOwner map[string][]outfit.Outfit
}

// NewMemoryRepository constructs the repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byOwner: make(map[string][]outfit.Outfit)}
}

// Save appends one outfit to the owner's history.
func (r *MemoryRepository) Save(_ context.Context, o outfit.Outfit) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byOwner[o.OwnerID] = append(r.byOwner[o.OwnerID], o)
	return nil
}

// ListByOwner returns the owner's outfits, newest first.
func (r *MemoryRepository) ListByOwner(_ context.Context, ownerID string) ([]outfit.Outfit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]outfit.Outfit, len(r.byOwner[ownerID]))
	copy(out, r.byOwner[ownerID])
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

var _ outfit.History = (*MemoryRepository)(nil)
