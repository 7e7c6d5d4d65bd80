package wardroberepo

import (
	"context"
	"sort"
	"sync"

	"github.com/fitr-app/fitr-backend/internal/domain/wardrobe"
)

// MemoryRepository is an in-memory wardrobe for tests/dev.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string]map[string]wardrobe.ClothingItem
}

// NewMemoryRepository constructs a repository backed by process memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]map[string]wardrobe.ClothingItem)}
}

// ListClean implements wardrobe.Repository.
func (r *MemoryRepository) ListClean(_ context.Context, ownerID string) ([]wardrobe.ClothingItem, error) {
	return r.list(ownerID, func(item wardrobe.ClothingItem) bool { return !item.Soiled }), nil
}

// ListAll implements wardrobe.Repository.
func (r *MemoryRepository) ListAll(_ context.Context, ownerID string) ([]wardrobe.ClothingItem, error) {
	return r.list(ownerID, func(wardrobe.ClothingItem) bool { return true }), nil
}

// ListSoiled implements wardrobe.Repository.
func (r *MemoryRepository) ListSoiled(_ context.Context, ownerID string) ([]wardrobe.ClothingItem, error) {
	return r.list(ownerID, func(item wardrobe.ClothingItem) bool { return item.Soiled }), nil
}

// Save inserts or replaces an item.
func (r *MemoryRepository) Save(_ context.Context, item wardrobe.ClothingItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	owned, ok := r.items[item.OwnerID]
	if !ok {
		owned = make(map[string]wardrobe.ClothingItem)
		r.items[item.OwnerID] = owned
	}
	owned[item.ID] = item
	return nil
}

// Delete removes an item if present.
func (r *MemoryRepository) Delete(_ context.Context, ownerID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items[ownerID], itemID)
	return nil
}

// SetSoiled flips the laundry flag on one item.
func (r *MemoryRepository) SetSoiled(_ context.Context, ownerID, itemID string, soiled bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[ownerID][itemID]
	if !ok {
		return nil
	}
	item.Soiled = soiled
	r.items[ownerID][itemID] = item
	return nil
}

// WashAll marks every soiled item clean and reports how many changed.
func (r *MemoryRepository) WashAll(_ context.Context, ownerID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	washed := 0
	for id, item := range r.items[ownerID] {
		if item.Soiled {
			item.Soiled = false
			r.items[ownerID][id] = item
			washed++
		}
	}
	return washed, nil
}

// list snapshots the owner's items in created-at descending order, the
// canonical ordering recommendation determinism relies on.
func (r *MemoryRepository) list(ownerID string, keep func(wardrobe.ClothingItem) bool) []wardrobe.ClothingItem {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]wardrobe.ClothingItem, 0, len(r.items[ownerID]))
	for _, item := range r.items[ownerID] {
		if keep(item) {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

var _ wardrobe.Repository = (*MemoryRepository)(nil)
