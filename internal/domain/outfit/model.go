package outfit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fitr-app/fitr-backend/internal/domain/wardrobe"
	"github.com/fitr-app/fitr-backend/internal/domain/weather"
	"github.com/fitr-app/fitr-backend/pkg/metrics"
)

// Source records which path produced a recommendation.
const (
	SourceOracle = "oracle"
	SourceLocal  = "local"
)

// Outfit is the value returned to callers. It is created fresh on every
// recommendation and never mutated by the core afterwards.
type Outfit struct {
	ID          uuid.UUID               `json:"id"`
	OwnerID     string                  `json:"user_id"`
	Items       []wardrobe.ClothingItem `json:"items"`
	Weather     weather.Snapshot        `json:"weather"`
	Vibe        string                  `json:"vibe,omitempty"`
	Description string                  `json:"description"`
	Source      string                  `json:"source"`
	TokenUsage  *metrics.TokenUsage     `json:"tokenUsage,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
}

// Request carries the inputs for one recommendation call. Items must be the
// owner's usable wardrobe in created-at descending order; an empty Vibe skips
// the oracle and goes straight to the local recommender.
type Request struct {
	OwnerID string
	Vibe    string
	Weather weather.Snapshot
	Items   []wardrobe.ClothingItem
}

// Selection is what the oracle answers with: chosen item ids plus a
// human-readable description. An empty id list is the oracle's explicit
// "no viable outfit" signal, distinct from a transport failure.
type Selection struct {
	ItemIDs     []string
	Description string
	Usage       *metrics.TokenUsage
}

// Oracle is the external recommendation service consulted for vibe-based
// outfits. One request/response exchange per call, no internal retries; the
// call may suspend and must honor ctx cancellation.
type Oracle interface {
	Recommend(ctx context.Context, vibe string, snap weather.Snapshot, items []wardrobe.ClothingItem) (Selection, error)
}

// Config tunes the recommendation domain.
type Config struct {
	HighWindThreshold float64
}
