package openweather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/fitr-app/fitr-backend/internal/domain/weather"
)

func TestCurrentByCity(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"q":     r.URL.Query().Get("q"),
			"units": r.URL.Query().Get("units"),
			"appid": r.URL.Query().Get("appid"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"weather":[{"main":"Rain","description":"light rain"}],
			"main":{"temp":14.3,"humidity":82},
			"wind":{"speed":21.5},
			"name":"Berlin"
		}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	fixed := time.Date(2025, 4, 2, 7, 30, 0, 0, time.UTC)
	client.now = func() time.Time { return fixed }

	snap, err := client.Current(context.Background(), weather.Query{City: "Berlin"})
	require.NoError(t, err)
	require.Equal(t, "Berlin", gotQuery["q"])
	require.Equal(t, "metric", gotQuery["units"])
	require.Equal(t, "test-key", gotQuery["appid"])
	require.Equal(t, 14.3, snap.Temperature)
	require.Equal(t, weather.ConditionRainy, snap.Condition)
	require.Equal(t, 82, snap.Humidity)
	require.Equal(t, 21.5, snap.WindSpeed)
	require.Equal(t, "Berlin", snap.Location)
	require.Equal(t, fixed, snap.Timestamp)
}

func TestCurrentByCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "52.52", r.URL.Query().Get("lat"))
		require.Equal(t, "13.405", r.URL.Query().Get("lon"))
		require.Empty(t, r.URL.Query().Get("q"))
		w.Write([]byte(`{"weather":[{"main":"Clear"}],"main":{"temp":27,"humidity":40},"wind":{"speed":5},"name":"Berlin"}`))
	}))
	defer server.Close()

	client := NewClient("test-key", server.URL)
	snap, err := client.Current(context.Background(), weather.Query{Lat: 52.52, Lon: 13.405})
	require.NoError(t, err)
	require.Equal(t, weather.ConditionSunny, snap.Condition)
	require.Equal(t, 27.0, snap.Temperature)
}

func TestCurrentUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"cod":401,"message":"Invalid API key"}`, http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient("bad-key", server.URL)
	_, err := client.Current(context.Background(), weather.Query{City: "Berlin"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=401")
}

func TestMapCondition(t *testing.T) {
	cases := map[string]weather.Condition{
		"Clear":        weather.ConditionSunny,
		"Clouds":       weather.ConditionCloudy,
		"Rain":         weather.ConditionRainy,
		"Drizzle":      weather.ConditionRainy,
		"Snow":         weather.ConditionSnowy,
		"Thunderstorm": weather.ConditionStormy,
		"Squall":       weather.ConditionWindy,
		"Tornado":      weather.ConditionWindy,
		"Mist":         weather.ConditionFoggy,
		"Haze":         weather.ConditionFoggy,
		"Sand":         weather.ConditionCloudy,
		"":             weather.ConditionCloudy,
	}
	for main, want := range cases {
		require.Equal(t, want, mapCondition(main), "main %q", main)
	}
}
