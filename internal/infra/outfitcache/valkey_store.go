package outfitcache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/fitr-app/fitr-backend/internal/domain/outfit"
)

// ValkeyStore caches recommendations in a Valkey-compatible database.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a cache backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "outfit"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

// Get implements outfit.Cache.
func (s *ValkeyStore) Get(ctx context.Context, ownerID, vibe string) (outfit.Outfit, bool, error) {
	cmd := s.client.B().Get().Key(s.entryKey(ownerID, vibe)).Build()
	payload, err := s.client.Do(ctx, cmd).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return outfit.Outfit{}, false, nil
		}
		return outfit.Outfit{}, false, err
	}
	var o outfit.Outfit
	if err := json.Unmarshal([]byte(payload), &o); err != nil {
		return outfit.Outfit{}, false, err
	}
	return o, true, nil
}

// Put caches a recommendation with optional TTL.
func (s *ValkeyStore) Put(ctx context.Context, o outfit.Outfit, ttl time.Duration) error {
	payload, err := json.Marshal(o)
	if err != nil {
		return err
	}
	key := s.entryKey(o.OwnerID, o.Vibe)
	if err := s.setString(ctx, key, string(payload), ttl); err != nil {
		return err
	}
	// Track the owner's live keys so Invalidate can find them.
	return s.client.Do(ctx, s.client.B().Sadd().Key(s.ownerKey(o.OwnerID)).Member(key).Build()).Error()
}

// Invalidate drops every cached vibe for the owner.
func (s *ValkeyStore) Invalidate(ctx context.Context, ownerID string) error {
	ownerKey := s.ownerKey(ownerID)
	members, err := s.client.Do(ctx, s.client.B().Smembers().Key(ownerKey).Build()).AsStrSlice()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil
		}
		return err
	}
	if len(members) > 0 {
		if err := s.client.Do(ctx, s.client.B().Del().Key(members...).Build()).Error(); err != nil {
			return err
		}
	}
	return s.client.Do(ctx, s.client.B().Del().Key(ownerKey).Build()).Error()
}

func (s *ValkeyStore) setString(ctx context.Context, key, value string, ttl time.Duration) error {
	builder := s.client.B().Set().Key(key).Value(value)
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) entryKey(ownerID, vibe string) string {
	return s.prefix + ":rec:" + ownerID + ":" + strings.ToLower(vibe)
}

func (s *ValkeyStore) ownerKey(ownerID string) string {
	return s.prefix + ":owner:" + ownerID
}

var _ outfit.Cache = (*ValkeyStore)(nil)
