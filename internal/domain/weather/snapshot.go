package weather

import (
	"math"
	"time"
)

// Condition is the normalized sky condition. Richer provider strings are
// mapped onto this set at the infra boundary.
type Condition string

const (
	ConditionSunny  Condition = "Sunny"
	ConditionCloudy Condition = "Cloudy"
	ConditionRainy  Condition = "Rainy"
	ConditionSnowy  Condition = "Snowy"
	ConditionStormy Condition = "Stormy"
	ConditionWindy  Condition = "Windy"
	ConditionFoggy  Condition = "Foggy"
)

var knownConditions = map[Condition]struct{}{
	ConditionSunny:  {},
	ConditionCloudy: {},
	ConditionRainy:  {},
	ConditionSnowy:  {},
	ConditionStormy: {},
	ConditionWindy:  {},
	ConditionFoggy:  {},
}

// Valid reports whether the condition belongs to the closed set.
func (c Condition) Valid() bool {
	_, ok := knownConditions[c]
	return ok
}

// Snapshot is a point-in-time weather reading. Humidity, wind speed and
// location only feed description text; selection logic reads temperature,
// condition and wind speed.
type Snapshot struct {
	Temperature float64   `json:"temperature"`
	Condition   Condition `json:"condition"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Location    string    `json:"location"`
	Timestamp   time.Time `json:"date"`
}

// Validate rejects snapshots the recommendation core cannot reason about.
func (s Snapshot) Validate() error {
	if math.IsNaN(s.Temperature) || math.IsInf(s.Temperature, 0) {
		return errNonFiniteTemperature
	}
	if !s.Condition.Valid() {
		return errUnknownCondition
	}
	return nil
}

// DefaultSnapshot is the conventional reading callers substitute when the
// provider cannot produce one. The core has no "weather unavailable" case.
func DefaultSnapshot(location string, now time.Time) Snapshot {
	return Snapshot{
		Temperature: 18,
		Condition:   ConditionCloudy,
		Humidity:    60,
		WindSpeed:   8,
		Location:    location,
		Timestamp:   now,
	}
}
