package wardrobe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	require.Equal(t, "blue t-shirt", ClothingItem{Type: TypeTShirt, Color: "blue"}.Label())
	require.Equal(t, "white shoes", ClothingItem{Type: TypeShoes, Color: "white"}.Label())
	require.Equal(t, "black dress", ClothingItem{Type: TypeDress, Color: "black"}.Label())
}

func TestClothingTypeValid(t *testing.T) {
	require.True(t, TypeTShirt.Valid())
	require.True(t, TypeOther.Valid())
	require.False(t, ClothingType("Hat").Valid())
	require.False(t, ClothingType("").Valid())
}

func TestHasWeatherTag(t *testing.T) {
	item := ClothingItem{WeatherTags: []WeatherTag{TagCold, TagSnowy}}
	require.True(t, item.HasWeatherTag(TagCold))
	require.False(t, item.HasWeatherTag(TagHot))
}
