package weather

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueryByCoordinates(t *testing.T) {
	require.True(t, Query{Lat: 52.52, Lon: 13.405, HasCoords: true}.ByCoordinates())
	// (0, 0) is a valid position when marked as set.
	require.True(t, Query{Lat: 0, Lon: 0, HasCoords: true}.ByCoordinates())
	require.False(t, Query{Lat: 52.52, Lon: 13.405}.ByCoordinates())
	require.False(t, Query{City: "Berlin", Lat: 52.52, Lon: 13.405, HasCoords: true}.ByCoordinates())
	require.False(t, Query{}.ByCoordinates())
}
