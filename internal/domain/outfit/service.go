package outfit

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fitr-app/fitr-backend/internal/domain/wardrobe"
	"github.com/fitr-app/fitr-backend/internal/domain/weather"
	apperrors "github.com/fitr-app/fitr-backend/pkg/errors"
)

// Service is the single entry point for outfit recommendation, implementing
// the oracle-first local-fallback policy.
type Service interface {
	Recommend(ctx context.Context, req Request) (Outfit, error)
}

type service struct {
	cfg    Config
	oracle Oracle
	logger *slog.Logger
	now    func() time.Time
	newID  func() uuid.UUID
}

// NewService wires up the recommendation domain.
func NewService(cfg Config, oracle Oracle, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		oracle: oracle,
		logger: logger.With("component", "outfit.service"),
		now:    time.Now,
		newID:  uuid.New,
	}
}

// Recommend returns an outfit or a tagged failure. Only insufficient_wardrobe
// and invalid_input ever reach callers; oracle failures are logged and
// recovered by the local recommender.
func (s *service) Recommend(ctx context.Context, req Request) (Outfit, error) {
	if strings.TrimSpace(req.OwnerID) == "" {
		return Outfit{}, apperrors.Wrap("invalid_input", "owner id cannot be empty", nil)
	}
	if err := req.Weather.Validate(); err != nil {
		return Outfit{}, apperrors.Wrap("invalid_input", "malformed weather snapshot", err)
	}

	// The catalog already excludes soiled items, but a soiled item must never
	// be emitted even if one slips through.
	usable := dropSoiled(req.Items)
	if len(usable) < 2 {
		return Outfit{}, apperrors.Wrap("insufficient_wardrobe", "at least two usable clothing items are required", nil)
	}

	vibe := strings.TrimSpace(req.Vibe)
	if vibe != "" {
		o, err := s.tryOracle(ctx, req, vibe, usable)
		if err == nil {
			return o, nil
		}
		if ctx.Err() != nil {
			return Outfit{}, ctx.Err()
		}
		s.logger.Warn("oracle recommendation failed, falling back to local",
			"owner", req.OwnerID, "code", apperrors.CodeOf(err), "error", err)
	}

	return s.recommendLocal(req, vibe, usable)
}

// tryOracle performs one exchange with the oracle and normalizes its answer
// into a valid outfit.
func (s *service) tryOracle(ctx context.Context, req Request, vibe string, usable []wardrobe.ClothingItem) (Outfit, error) {
	sel, err := s.oracle.Recommend(ctx, vibe, req.Weather, usable)
	if err != nil {
		if apperrors.CodeOf(err) != "" {
			return Outfit{}, err
		}
		return Outfit{}, apperrors.Wrap("oracle_unavailable", "oracle request failed", err)
	}
	if len(sel.ItemIDs) == 0 {
		return Outfit{}, apperrors.Wrap("no_viable_outfit", "oracle found no viable combination", nil)
	}

	// Ids outside the candidate set are hallucinations and silently dropped.
	// The selection must still hold at least two items after the drop and the
	// exclusive-group pass; anything thinner goes back to the local path.
	byID := make(map[string]wardrobe.ClothingItem, len(usable))
	for _, item := range usable {
		byID[item.ID] = item
	}
	resolved := make([]wardrobe.ClothingItem, 0, len(sel.ItemIDs))
	seen := make(map[string]struct{}, len(sel.ItemIDs))
	for _, id := range sel.ItemIDs {
		item, ok := byID[id]
		if !ok {
			s.logger.Debug("oracle returned unknown item id", "owner", req.OwnerID, "item_id", id)
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		resolved = append(resolved, item)
	}
	// Mandatory even though the oracle is told not to violate the constraint.
	resolved = wardrobe.DedupeByExclusiveGroup(resolved)
	if len(resolved) < 2 {
		return Outfit{}, apperrors.Wrap("no_viable_outfit", "oracle selection resolved to fewer than two usable items", nil)
	}

	return Outfit{
		ID:          s.newID(),
		OwnerID:     req.OwnerID,
		Items:       resolved,
		Weather:     req.Weather,
		Vibe:        vibe,
		Description: sel.Description,
		Source:      SourceOracle,
		TokenUsage:  sel.Usage,
		CreatedAt:   s.now(),
	}, nil
}

// recommendLocal builds the deterministic offline outfit. It performs no I/O
// and never suspends.
func (s *service) recommendLocal(req Request, vibe string, usable []wardrobe.ClothingItem) (Outfit, error) {
	if len(usable) == 0 {
		return Outfit{}, apperrors.Wrap("insufficient_wardrobe", "no clothing items available", nil)
	}

	tags := weather.DeriveTags(req.Weather, s.cfg.HighWindThreshold)
	selected := selectFallbackItems(usable, tags)

	return Outfit{
		ID:          s.newID(),
		OwnerID:     req.OwnerID,
		Items:       selected,
		Weather:     req.Weather,
		Vibe:        vibe,
		Description: fallbackDescription(selected, req.Weather),
		Source:      SourceLocal,
		CreatedAt:   s.now(),
	}, nil
}

func dropSoiled(items []wardrobe.ClothingItem) []wardrobe.ClothingItem {
	out := make([]wardrobe.ClothingItem, 0, len(items))
	for _, item := range items {
		if item.Soiled {
			continue
		}
		out = append(out, item)
	}
	return out
}
