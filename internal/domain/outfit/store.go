package outfit

import (
	"context"
	"time"
)

// Cache holds recent recommendations keyed by owner and vibe. Caching wraps
// the recommender from the outside; the recommender itself never caches.
type Cache interface {
	Get(ctx context.Context, ownerID, vibe string) (Outfit, bool, error)
	Put(ctx context.Context, o Outfit, ttl time.Duration) error
	// Invalidate drops every cached vibe for the owner, used after any
	// wardrobe mutation.
	Invalidate(ctx context.Context, ownerID string) error
}

// History persists produced outfits for later browsing.
type History interface {
	Save(ctx context.Context, o Outfit) error
	// ListByOwner returns outfits in created-at descending order.
	ListByOwner(ctx context.Context, ownerID string) ([]Outfit, error)
}
