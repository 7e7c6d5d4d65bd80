package outfit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fitr-app/fitr-backend/internal/domain/wardrobe"
	"github.com/fitr-app/fitr-backend/internal/domain/weather"
)

func TestSelectFallbackItemsMildDay(t *testing.T) {
	items := []wardrobe.ClothingItem{
		{ID: "tee", Type: wardrobe.TypeTShirt, Color: "blue", WeatherTags: []wardrobe.WeatherTag{wardrobe.TagHot, wardrobe.TagWarm}},
		{ID: "jeans", Type: wardrobe.TypeJeans, Color: "blue", WeatherTags: []wardrobe.WeatherTag{wardrobe.TagWarm, wardrobe.TagCool}},
		{ID: "shoes", Type: wardrobe.TypeShoes, Color: "white", WeatherTags: []wardrobe.WeatherTag{wardrobe.TagWarm, wardrobe.TagCool}},
	}
	snap := weather.Snapshot{Temperature: 22, Condition: weather.ConditionSunny}
	tags := weather.DeriveTags(snap, weather.DefaultHighWindThreshold)

	selected := selectFallbackItems(items, tags)
	require.Equal(t, []string{"tee", "jeans", "shoes"}, itemIDs(selected))

	desc := fallbackDescription(selected, snap)
	require.Equal(t, "For today's weather (22°C, Sunny), I recommend wearing your blue t-shirt, blue jeans and white shoes.", desc)
}

func TestSelectFallbackItemsDeterministic(t *testing.T) {
	items := []wardrobe.ClothingItem{
		{ID: "shirt", Type: wardrobe.TypeShirt},
		{ID: "tee", Type: wardrobe.TypeTShirt},
		{ID: "pants", Type: wardrobe.TypePants},
		{ID: "shoes", Type: wardrobe.TypeShoes},
	}
	tags := []wardrobe.WeatherTag{wardrobe.TagWarm}

	first := selectFallbackItems(items, tags)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, selectFallbackItems(items, tags))
	}
}

func TestSelectFallbackItemsColdLayering(t *testing.T) {
	cold := []wardrobe.WeatherTag{wardrobe.TagCold}
	items := []wardrobe.ClothingItem{
		{ID: "jacket", Type: wardrobe.TypeJacket, WeatherTags: cold},
		{ID: "coat", Type: wardrobe.TypeCoat, WeatherTags: cold},
		{ID: "sweater", Type: wardrobe.TypeSweater, WeatherTags: cold},
		{ID: "shirt", Type: wardrobe.TypeShirt, WeatherTags: cold},
		{ID: "pants", Type: wardrobe.TypePants, WeatherTags: cold},
		{ID: "boots", Type: wardrobe.TypeShoes, WeatherTags: cold},
	}

	selected := selectFallbackItems(items, cold)
	require.Equal(t, []string{"coat", "sweater", "shirt", "pants", "boots"}, itemIDs(selected))
}

func TestSelectFallbackItemsJacketWhenNoCoat(t *testing.T) {
	cold := []wardrobe.WeatherTag{wardrobe.TagCold}
	items := []wardrobe.ClothingItem{
		{ID: "jacket", Type: wardrobe.TypeJacket, WeatherTags: cold},
		{ID: "shirt", Type: wardrobe.TypeShirt, WeatherTags: cold},
		{ID: "jeans", Type: wardrobe.TypeJeans, WeatherTags: cold},
	}

	selected := selectFallbackItems(items, cold)
	require.Equal(t, []string{"jacket", "shirt", "jeans"}, itemIDs(selected))
}

func TestSelectFallbackItemsDressSubstitution(t *testing.T) {
	items := []wardrobe.ClothingItem{
		{ID: "dress", Type: wardrobe.TypeDress},
		{ID: "heels", Type: wardrobe.TypeShoes},
	}

	selected := selectFallbackItems(items, []wardrobe.WeatherTag{wardrobe.TagWarm})
	require.Equal(t, []string{"heels", "dress"}, itemIDs(selected))
}

func TestSelectFallbackItemsNoDressWhenTopPresent(t *testing.T) {
	items := []wardrobe.ClothingItem{
		{ID: "tee", Type: wardrobe.TypeTShirt},
		{ID: "dress", Type: wardrobe.TypeDress},
		{ID: "shoes", Type: wardrobe.TypeShoes},
	}

	selected := selectFallbackItems(items, []wardrobe.WeatherTag{wardrobe.TagWarm})
	require.NotContains(t, itemIDs(selected), "dress")
}

func TestSelectFallbackItemsTopUpToTwo(t *testing.T) {
	items := []wardrobe.ClothingItem{
		{ID: "scarf", Type: wardrobe.TypeAccessory},
		{ID: "belt", Type: wardrobe.TypeAccessory},
		{ID: "hat", Type: wardrobe.TypeAccessory},
	}

	selected := selectFallbackItems(items, []wardrobe.WeatherTag{wardrobe.TagCool})
	require.Equal(t, []string{"scarf", "belt"}, itemIDs(selected))
}

func TestSelectFallbackItemsUnsuitableWardrobeStillDresses(t *testing.T) {
	// Nothing matches the derived tags; the whole wardrobe becomes the pool.
	hot := []wardrobe.WeatherTag{wardrobe.TagHot}
	items := []wardrobe.ClothingItem{
		{ID: "tee", Type: wardrobe.TypeTShirt, WeatherTags: hot},
		{ID: "shorts", Type: wardrobe.TypeShorts, WeatherTags: hot},
	}

	selected := selectFallbackItems(items, []wardrobe.WeatherTag{wardrobe.TagCold})
	require.Equal(t, []string{"tee", "shorts"}, itemIDs(selected))
}

func TestFallbackDescription(t *testing.T) {
	snap := weather.Snapshot{Temperature: 9.8, Condition: weather.ConditionRainy}

	require.Equal(t,
		"For today's weather (9°C, Rainy), I couldn't find suitable items in your wardrobe.",
		fallbackDescription(nil, snap))

	one := []wardrobe.ClothingItem{{Type: wardrobe.TypeCoat, Color: "black"}}
	require.Equal(t,
		"For today's weather (9°C, Rainy), I recommend wearing your black coat.",
		fallbackDescription(one, snap))

	two := []wardrobe.ClothingItem{
		{Type: wardrobe.TypeCoat, Color: "black"},
		{Type: wardrobe.TypeJeans, Color: "blue"},
	}
	require.Equal(t,
		"For today's weather (9°C, Rainy), I recommend wearing your black coat and blue jeans.",
		fallbackDescription(two, snap))
}

func itemIDs(items []wardrobe.ClothingItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}
