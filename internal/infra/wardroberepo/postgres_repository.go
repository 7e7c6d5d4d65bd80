package wardroberepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fitr-app/fitr-backend/internal/domain/wardrobe"
)

// PostgresRepository implements wardrobe.Repository using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs the repository.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const selectColumns = `id, owner_id, type, color, name, image_url, weather_tags, style_tags, dirty, created_at`

// ListClean fetches the owner's non-soiled items, newest first.
func (r *PostgresRepository) ListClean(ctx context.Context, ownerID string) ([]wardrobe.ClothingItem, error) {
	return r.query(ctx, `
		SELECT `+selectColumns+`
		FROM clothing_items
		WHERE owner_id = $1 AND dirty = FALSE
		ORDER BY created_at DESC, id DESC
	`, ownerID)
}

// ListAll fetches every item of the owner, newest first.
func (r *PostgresRepository) ListAll(ctx context.Context, ownerID string) ([]wardrobe.ClothingItem, error) {
	return r.query(ctx, `
		SELECT `+selectColumns+`
		FROM clothing_items
		WHERE owner_id = $1
		ORDER BY created_at DESC, id DESC
	`, ownerID)
}

// ListSoiled fetches the owner's laundry basket, newest first.
func (r *PostgresRepository) ListSoiled(ctx context.Context, ownerID string) ([]wardrobe.ClothingItem, error) {
	return r.query(ctx, `
		SELECT `+selectColumns+`
		FROM clothing_items
		WHERE owner_id = $1 AND dirty = TRUE
		ORDER BY created_at DESC, id DESC
	`, ownerID)
}

// Save upserts an item row.
func (r *PostgresRepository) Save(ctx context.Context, item wardrobe.ClothingItem) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO clothing_items (id, owner_id, type, color, name, image_url, weather_tags, style_tags, dirty, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			type = EXCLUDED.type,
			color = EXCLUDED.color,
			name = EXCLUDED.name,
			image_url = EXCLUDED.image_url,
			weather_tags = EXCLUDED.weather_tags,
			style_tags = EXCLUDED.style_tags,
			dirty = EXCLUDED.dirty
	`, item.ID, item.OwnerID, string(item.Type), item.Color, item.Name, item.ImageURL,
		weatherTagsToStrings(item.WeatherTags), styleTagsToStrings(item.StyleTags), item.Soiled, item.CreatedAt)
	return err
}

// Delete removes an item row; missing rows are not an error.
func (r *PostgresRepository) Delete(ctx context.Context, ownerID, itemID string) error {
	_, err := r.pool.Exec(ctx, `
		DELETE FROM clothing_items
		WHERE owner_id = $1 AND id = $2
	`, ownerID, itemID)
	return err
}

// SetSoiled flips the laundry flag on one row.
func (r *PostgresRepository) SetSoiled(ctx context.Context, ownerID, itemID string, soiled bool) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE clothing_items
		SET dirty = $3
		WHERE owner_id = $1 AND id = $2
	`, ownerID, itemID, soiled)
	return err
}

// WashAll marks every soiled row of the owner clean again.
func (r *PostgresRepository) WashAll(ctx context.Context, ownerID string) (int, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE clothing_items
		SET dirty = FALSE
		WHERE owner_id = $1 AND dirty = TRUE
	`, ownerID)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

func (r *PostgresRepository) query(ctx context.Context, sql string, args ...any) ([]wardrobe.ClothingItem, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []wardrobe.ClothingItem
	for rows.Next() {
		item, err := scanClothingItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func scanClothingItem(row pgx.Row) (wardrobe.ClothingItem, error) {
	var (
		item        wardrobe.ClothingItem
		itemType    string
		weatherTags []string
		styleTags   []string
	)
	if err := row.Scan(&item.ID, &item.OwnerID, &itemType, &item.Color, &item.Name,
		&item.ImageURL, &weatherTags, &styleTags, &item.Soiled, &item.CreatedAt); err != nil {
		return wardrobe.ClothingItem{}, err
	}
	item.Type = wardrobe.ClothingType(itemType)
	item.WeatherTags = make([]wardrobe.WeatherTag, 0, len(weatherTags))
	for _, tag := range weatherTags {
		item.WeatherTags = append(item.WeatherTags, wardrobe.WeatherTag(tag))
	}
	item.StyleTags = make([]wardrobe.StyleTag, 0, len(styleTags))
	for _, tag := range styleTags {
		item.StyleTags = append(item.StyleTags, wardrobe.StyleTag(tag))
	}
	return item, nil
}

func weatherTagsToStrings(tags []wardrobe.WeatherTag) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, string(tag))
	}
	return out
}

func styleTagsToStrings(tags []wardrobe.StyleTag) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		out = append(out, string(tag))
	}
	return out
}

var _ wardrobe.Repository = (*PostgresRepository)(nil)
