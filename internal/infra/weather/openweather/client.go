package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fitr-app/fitr-backend/internal/domain/weather"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Client fetches current conditions from OpenWeatherMap.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	now        func() time.Time
}

// NewClient builds an API client. Responses are requested in metric units.
func NewClient(apiKey, baseURL string) *Client {
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		now: time.Now,
	}
}

// Current retrieves one snapshot for a city or coordinate pair.
func (c *Client) Current(ctx context.Context, q weather.Query) (weather.Snapshot, error) {
	params := url.Values{}
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")
	if strings.TrimSpace(q.City) != "" {
		params.Set("q", q.City)
	} else {
		params.Set("lat", strconv.FormatFloat(q.Lat, 'f', -1, 64))
		params.Set("lon", strconv.FormatFloat(q.Lon, 'f', -1, 64))
	}

	endpoint := c.baseURL + "?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return weather.Snapshot{}, fmt.Errorf("weather request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return weather.Snapshot{}, fmt.Errorf("read weather response: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return weather.Snapshot{}, fmt.Errorf("decode weather response: %w", err)
	}

	return c.normalize(raw), nil
}

type apiResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Name string `json:"name"`
}

func (c *Client) normalize(raw apiResponse) weather.Snapshot {
	condition := weather.ConditionCloudy
	if len(raw.Weather) > 0 {
		condition = mapCondition(raw.Weather[0].Main)
	}
	return weather.Snapshot{
		Temperature: raw.Main.Temp,
		Condition:   condition,
		Humidity:    raw.Main.Humidity,
		WindSpeed:   raw.Wind.Speed,
		Location:    raw.Name,
		Timestamp:   c.now(),
	}
}

// mapCondition folds OpenWeatherMap condition groups onto the domain set.
func mapCondition(main string) weather.Condition {
	switch strings.ToLower(strings.TrimSpace(main)) {
	case "clear":
		return weather.ConditionSunny
	case "clouds":
		return weather.ConditionCloudy
	case "rain", "drizzle":
		return weather.ConditionRainy
	case "snow":
		return weather.ConditionSnowy
	case "thunderstorm":
		return weather.ConditionStormy
	case "squall", "tornado":
		return weather.ConditionWindy
	case "mist", "fog", "haze", "smoke":
		return weather.ConditionFoggy
	default:
		return weather.ConditionCloudy
	}
}

var _ weather.Provider = (*Client)(nil)
