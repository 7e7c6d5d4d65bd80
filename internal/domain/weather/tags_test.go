package weather

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fitr-app/fitr-backend/internal/domain/wardrobe"
)

func TestDeriveTagsTemperatureBands(t *testing.T) {
	cases := []struct {
		temperature float64
		want        wardrobe.WeatherTag
	}{
		{30, wardrobe.TagHot},
		{25.1, wardrobe.TagHot},
		{25, wardrobe.TagWarm},
		{19, wardrobe.TagWarm},
		{18, wardrobe.TagCool},
		{10.5, wardrobe.TagCool},
		{10, wardrobe.TagCold},
		{0, wardrobe.TagCold},
		{-12, wardrobe.TagCold},
	}
	for _, tc := range cases {
		tags := DeriveTags(Snapshot{Temperature: tc.temperature, Condition: ConditionSunny}, DefaultHighWindThreshold)
		require.Equal(t, []wardrobe.WeatherTag{tc.want}, tags, "temperature %v", tc.temperature)
	}
}

func TestDeriveTagsConditions(t *testing.T) {
	rainy := DeriveTags(Snapshot{Temperature: 15, Condition: ConditionRainy}, DefaultHighWindThreshold)
	require.Equal(t, []wardrobe.WeatherTag{wardrobe.TagCool, wardrobe.TagRainy}, rainy)

	snowy := DeriveTags(Snapshot{Temperature: -2, Condition: ConditionSnowy}, DefaultHighWindThreshold)
	require.Equal(t, []wardrobe.WeatherTag{wardrobe.TagCold, wardrobe.TagSnowy}, snowy)

	// Stormy and foggy add no condition tag.
	stormy := DeriveTags(Snapshot{Temperature: 20, Condition: ConditionStormy}, DefaultHighWindThreshold)
	require.Equal(t, []wardrobe.WeatherTag{wardrobe.TagWarm}, stormy)
}

func TestDeriveTagsHighWind(t *testing.T) {
	calm := DeriveTags(Snapshot{Temperature: 20, Condition: ConditionSunny, WindSpeed: 30}, 30)
	require.NotContains(t, calm, wardrobe.TagWindy)

	gusty := DeriveTags(Snapshot{Temperature: 20, Condition: ConditionSunny, WindSpeed: 31}, 30)
	require.Contains(t, gusty, wardrobe.TagWindy)

	// A windy condition never yields the tag twice.
	windy := DeriveTags(Snapshot{Temperature: 20, Condition: ConditionWindy, WindSpeed: 50}, 30)
	require.Equal(t, []wardrobe.WeatherTag{wardrobe.TagWarm, wardrobe.TagWindy}, windy)

	// Threshold of zero disables the wind-speed rule.
	disabled := DeriveTags(Snapshot{Temperature: 20, Condition: ConditionSunny, WindSpeed: 100}, 0)
	require.NotContains(t, disabled, wardrobe.TagWindy)
}

func TestFilterBySuitability(t *testing.T) {
	items := []wardrobe.ClothingItem{
		{ID: "coat", WeatherTags: []wardrobe.WeatherTag{wardrobe.TagCold}},
		{ID: "tee", WeatherTags: []wardrobe.WeatherTag{wardrobe.TagHot, wardrobe.TagWarm}},
		{ID: "untagged"},
	}

	cold := FilterBySuitability(items, []wardrobe.WeatherTag{wardrobe.TagCold})
	require.Len(t, cold, 1)
	require.Equal(t, "coat", cold[0].ID)

	none := FilterBySuitability(items, []wardrobe.WeatherTag{wardrobe.TagSnowy})
	require.Empty(t, none)
}

func TestSnapshotValidate(t *testing.T) {
	valid := Snapshot{Temperature: 18, Condition: ConditionCloudy}
	require.NoError(t, valid.Validate())

	require.Error(t, Snapshot{Temperature: math.NaN(), Condition: ConditionSunny}.Validate())
	require.Error(t, Snapshot{Temperature: math.Inf(1), Condition: ConditionSunny}.Validate())
	require.Error(t, Snapshot{Temperature: 18, Condition: "Apocalyptic"}.Validate())
	require.Error(t, Snapshot{Temperature: 18}.Validate())
}

func TestDefaultSnapshot(t *testing.T) {
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	snap := DefaultSnapshot("Berlin", now)
	require.NoError(t, snap.Validate())
	require.Equal(t, 18.0, snap.Temperature)
	require.Equal(t, ConditionCloudy, snap.Condition)
	require.Equal(t, "Berlin", snap.Location)
	require.Equal(t, now, snap.Timestamp)
}
