package wardrobe

import "context"

// Repository persists clothing items. Implementations must return items in
// created-at descending order; recommendation determinism relies on it.
type Repository interface {
	// ListClean returns the owner's non-soiled items.
	ListClean(ctx context.Context, ownerID string) ([]ClothingItem, error)
	// ListAll returns every item the owner has, soiled or not.
	ListAll(ctx context.Context, ownerID string) ([]ClothingItem, error)
	// ListSoiled returns the owner's laundry basket.
	ListSoiled(ctx context.Context, ownerID string) ([]ClothingItem, error)
	// Save inserts or replaces an item.
	Save(ctx context.Context, item ClothingItem) error
	// Delete removes an item; deleting an unknown id is not an error.
	Delete(ctx context.Context, ownerID, itemID string) error
	// SetSoiled flips the laundry flag on one item.
	SetSoiled(ctx context.Context, ownerID, itemID string, soiled bool) error
	// WashAll marks every soiled item of the owner clean again.
	WashAll(ctx context.Context, ownerID string) (int, error)
}
