package outfitcache

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/fitr-app/fitr-backend/internal/domain/outfit"
)

type cachedOutfit struct {
	payload   outfit.Outfit
	expiresAt time.Time
}

// MemoryStore is an in-memory recommendation cache for tests/dev. Entries
// are held per owner so invalidation never bleeds across owners.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]map[string]cachedOutfit
}

// NewMemoryStore constructs a cache backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]map[string]cachedOutfit)}
}

// Get implements outfit.Cache.
func (s *MemoryStore) Get(_ context.Context, ownerID, vibe string) (outfit.Outfit, bool, error) {
	key := vibeKey(vibe)
	s.mu.RLock()
	entry, ok := s.entries[ownerID][key]
	s.mu.RUnlock()
	if !ok {
		return outfit.Outfit{}, false, nil
	}
	if hasExpired(entry.expiresAt) {
		s.mu.Lock()
		delete(s.entries[ownerID], key)
		s.mu.Unlock()
		return outfit.Outfit{}, false, nil
	}
	return entry.payload, true, nil
}

// Put caches a recommendation with optional TTL.
func (s *MemoryStore) Put(_ context.Context, o outfit.Outfit, ttl time.Duration) error {
	exp := time.Time{}
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	owned, ok := s.entries[o.OwnerID]
	if !ok {
		owned = make(map[string]cachedOutfit)
		s.entries[o.OwnerID] = owned
	}
	owned[vibeKey(o.Vibe)] = cachedOutfit{payload: o, expiresAt: exp}
	return nil
}

// Invalidate drops every cached vibe for the owner.
func (s *MemoryStore) Invalidate(_ context.Context, ownerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, ownerID)
	return nil
}

func vibeKey(vibe string) string {
	return strings.ToLower(vibe)
}

func hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(time.Now())
}

var _ outfit.Cache = (*MemoryStore)(nil)
