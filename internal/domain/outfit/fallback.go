package outfit

import (
	"fmt"
	"strings"

	"github.com/fitr-app/fitr-backend/internal/domain/wardrobe"
	"github.com/fitr-app/fitr-backend/internal/domain/weather"
)

// selectFallbackItems is the offline recommender: a greedy pass over the
// wardrobe in its given order, one slot at a time, no backtracking. Identical
// inputs always produce identical selections.
func selectFallbackItems(items []wardrobe.ClothingItem, tags []wardrobe.WeatherTag) []wardrobe.ClothingItem {
	pool := weather.FilterBySuitability(items, tags)
	if len(pool) == 0 {
		pool = items
	}

	var selected []wardrobe.ClothingItem
	chosen := make(map[string]struct{})
	pick := func(match func(wardrobe.ClothingItem) bool) bool {
		for _, item := range pool {
			if _, taken := chosen[item.ID]; taken {
				continue
			}
			if match(item) {
				selected = append(selected, item)
				chosen[item.ID] = struct{}{}
				return true
			}
		}
		return false
	}

	// Cold calls for layers: coat preferred over jacket, plus one sweater.
	if weather.HasTag(tags, wardrobe.TagCold) {
		if !pick(ofType(wardrobe.TypeCoat)) {
			pick(ofType(wardrobe.TypeJacket))
		}
		pick(ofType(wardrobe.TypeSweater))
	}

	topFound := pick(ofType(wardrobe.TypeShirt, wardrobe.TypeTShirt))
	bottomFound := pick(ofType(wardrobe.TypePants, wardrobe.TypeJeans, wardrobe.TypeShorts, wardrobe.TypeSkirt))
	pick(ofType(wardrobe.TypeShoes))

	// A dress covers both missing slots at once.
	if !topFound && !bottomFound {
		pick(ofType(wardrobe.TypeDress))
	}

	// Never return fewer than two items while the wardrobe can supply them.
	for _, item := range pool {
		if len(selected) >= 2 {
			break
		}
		if _, taken := chosen[item.ID]; taken {
			continue
		}
		selected = append(selected, item)
		chosen[item.ID] = struct{}{}
	}

	return selected
}

func ofType(types ...wardrobe.ClothingType) func(wardrobe.ClothingItem) bool {
	return func(item wardrobe.ClothingItem) bool {
		for _, t := range types {
			if item.Type == t {
				return true
			}
		}
		return false
	}
}

// fallbackDescription renders the fixed local template, e.g.
// "For today's weather (22°C, Sunny), I recommend wearing your blue t-shirt,
// blue jeans and white shoes."
func fallbackDescription(items []wardrobe.ClothingItem, snap weather.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "For today's weather (%d°C, %s), ", int(snap.Temperature), snap.Condition)

	switch len(items) {
	case 0:
		b.WriteString("I couldn't find suitable items in your wardrobe.")
	case 1:
		fmt.Fprintf(&b, "I recommend wearing your %s.", items[0].Label())
	default:
		labels := make([]string, 0, len(items))
		for _, item := range items {
			labels = append(labels, item.Label())
		}
		last := labels[len(labels)-1]
		fmt.Fprintf(&b, "I recommend wearing your %s and %s.", strings.Join(labels[:len(labels)-1], ", "), last)
	}
	return b.String()
}
