package outfitrepo

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fitr-app/fitr-backend/internal/domain/outfit"
	"github.com/fitr-app/fitr-backend/internal/domain/wardrobe"
	"github.com/fitr-app/fitr-backend/internal/domain/weather"
)

// PostgresRepository implements outfit.History using pgx. Items and weather
// are stored as JSONB documents; the engine never queries inside them.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Save inserts one outfit row.
func (r *PostgresRepository) Save(ctx context.Context, o outfit.Outfit) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}
	snapshot, err := json.Marshal(o.Weather)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO outfits (id, owner_id, vibe, description, source, items, weather, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, o.ID, o.OwnerID, o.Vibe, o.Description, o.Source, items, snapshot, o.CreatedAt)
	return err
}

// ListByOwner returns the owner's outfits, newest first.
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]outfit.Outfit, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, owner_id, vibe, description, source, items, weather, created_at
		FROM outfits
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var outfits []outfit.Outfit
	for rows.Next() {
		var (
			o        outfit.Outfit
			items    []byte
			snapshot []byte
		)
		if err := rows.Scan(&o.ID, &o.OwnerID, &o.Vibe, &o.Description, &o.Source, &items, &snapshot, &o.CreatedAt); err != nil {
			return nil, err
		}
		var decoded []wardrobe.ClothingItem
		if err := json.Unmarshal(items, &decoded); err != nil {
			return nil, err
		}
		o.Items = decoded
		var snap weather.Snapshot
		if err := json.Unmarshal(snapshot, &snap); err != nil {
			return nil, err
		}
		o.Weather = snap
		outfits = append(outfits, o)
	}
	return outfits, rows.Err()
}

var _ outfit.History = (*PostgresRepository)(nil)
