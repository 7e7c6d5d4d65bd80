package wardroberepo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fitr-app/fitr-backend/internal/domain/wardrobe"
)

func TestMemoryRepositoryLifecycle(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	base := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	items := []wardrobe.ClothingItem{
		{ID: "tee", OwnerID: "user-1", Type: wardrobe.TypeTShirt, CreatedAt: base},
		{ID: "jeans", OwnerID: "user-1", Type: wardrobe.TypeJeans, CreatedAt: base.Add(time.Hour)},
		{ID: "coat", OwnerID: "user-1", Type: wardrobe.TypeCoat, Soiled: true, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "hat", OwnerID: "user-2", Type: wardrobe.TypeAccessory, CreatedAt: base},
	}
	for _, item := range items {
		require.NoError(t, repo.Save(ctx, item))
	}

	all, err := repo.ListAll(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, []string{"coat", "jeans", "tee"}, listIDs(all))

	clean, err := repo.ListClean(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, []string{"jeans", "tee"}, listIDs(clean))

	soiled, err := repo.ListSoiled(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, []string{"coat"}, listIDs(soiled))

	// Owners never see each other's wardrobes.
	other, err := repo.ListAll(ctx, "user-2")
	require.NoError(t, err)
	require.Equal(t, []string{"hat"}, listIDs(other))
}

func TestMemoryRepositorySoilAndWash(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, wardrobe.ClothingItem{ID: "tee", OwnerID: "user-1"}))
	require.NoError(t, repo.Save(ctx, wardrobe.ClothingItem{ID: "jeans", OwnerID: "user-1"}))

	require.NoError(t, repo.SetSoiled(ctx, "user-1", "tee", true))
	require.NoError(t, repo.SetSoiled(ctx, "user-1", "missing", true))

	soiled, err := repo.ListSoiled(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, soiled, 1)

	washed, err := repo.WashAll(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, 1, washed)

	soiled, err = repo.ListSoiled(ctx, "user-1")
	require.NoError(t, err)
	require.Empty(t, soiled)
}

func TestMemoryRepositoryDelete(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, wardrobe.ClothingItem{ID: "tee", OwnerID: "user-1"}))
	require.NoError(t, repo.Delete(ctx, "user-1", "tee"))
	// Deleting an unknown id is not an error.
	require.NoError(t, repo.Delete(ctx, "user-1", "tee"))

	all, err := repo.ListAll(ctx, "user-1")
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestMemoryRepositoryStableOrderOnEqualTimestamps(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	ts := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, wardrobe.ClothingItem{ID: "a", OwnerID: "user-1", CreatedAt: ts}))
	require.NoError(t, repo.Save(ctx, wardrobe.ClothingItem{ID: "b", OwnerID: "user-1", CreatedAt: ts}))

	for i := 0; i < 5; i++ {
		all, err := repo.ListAll(ctx, "user-1")
		require.NoError(t, err)
		require.Equal(t, []string{"b", "a"}, listIDs(all))
	}
}

func listIDs(items []wardrobe.ClothingItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}
