package weather

import (
	"errors"

	"github.com/fitr-app/fitr-backend/internal/domain/wardrobe"
)

var (
	errNonFiniteTemperature = errors.New("temperature must be finite")
	errUnknownCondition     = errors.New("unknown weather condition")
)

// DefaultHighWindThreshold is the wind speed above which a snapshot counts as
// windy even when the provider reports another condition.
const DefaultHighWindThreshold = 30.0

// DeriveTags maps a snapshot to the wardrobe tags it calls for. Exactly one
// temperature band is always present, so the result is never empty.
func DeriveTags(s Snapshot, highWindThreshold float64) []wardrobe.WeatherTag {
	tags := make([]wardrobe.WeatherTag, 0, 3)

	switch {
	case s.Temperature > 25:
		tags = append(tags, wardrobe.TagHot)
	case s.Temperature > 18:
		tags = append(tags, wardrobe.TagWarm)
	case s.Temperature > 10:
		tags = append(tags, wardrobe.TagCool)
	default:
		tags = append(tags, wardrobe.TagCold)
	}

	switch s.Condition {
	case ConditionRainy:
		tags = append(tags, wardrobe.TagRainy)
	case ConditionSnowy:
		tags = append(tags, wardrobe.TagSnowy)
	case ConditionWindy:
		tags = append(tags, wardrobe.TagWindy)
	}

	if s.Condition != ConditionWindy && highWindThreshold > 0 && s.WindSpeed > highWindThreshold {
		tags = append(tags, wardrobe.TagWindy)
	}

	return tags
}

// FilterBySuitability retains items whose weather tags intersect the wanted
// set. Suitability is a soft preference: callers fall back to the unfiltered
// wardrobe when nothing matches.
func FilterBySuitability(items []wardrobe.ClothingItem, wanted []wardrobe.WeatherTag) []wardrobe.ClothingItem {
	out := make([]wardrobe.ClothingItem, 0, len(items))
	for _, item := range items {
		for _, tag := range wanted {
			if item.HasWeatherTag(tag) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// HasTag reports membership in a derived tag set.
func HasTag(tags []wardrobe.WeatherTag, tag wardrobe.WeatherTag) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
