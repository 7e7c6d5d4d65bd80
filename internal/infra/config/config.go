package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP           HTTPConfig           `yaml:"http"`
	LLM            LLMConfig            `yaml:"llm"`
	Oracle         OracleConfig         `yaml:"oracle"`
	Weather        WeatherConfig        `yaml:"weather"`
	Recommendation RecommendationConfig `yaml:"recommendation"`
	Postgres       PostgresConfig       `yaml:"postgres"`
	Cache          CacheConfig          `yaml:"cache"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// LLMConfig contains ChatGPT/OpenAI settings.
type LLMConfig struct {
	APIKey      string  `yaml:"apiKey"`
	BaseURL     string  `yaml:"baseUrl"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
}

// OracleConfig controls the outfit oracle exchange.
type OracleConfig struct {
	Prompt          string `yaml:"prompt"`
	MaxPromptTokens int    `yaml:"maxPromptTokens"`
}

// WeatherConfig contains OpenWeatherMap settings.
type WeatherConfig struct {
	APIKey          string `yaml:"apiKey"`
	BaseURL         string `yaml:"baseUrl"`
	DefaultLocation string `yaml:"defaultLocation"`
}

// RecommendationConfig tunes the recommendation engine and its cache.
type RecommendationConfig struct {
	HighWindThreshold float64       `yaml:"highWindThreshold"`
	CacheTTL          time.Duration `yaml:"cacheTtl"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// CacheConfig contains connection information for the recommendation cache.
type CacheConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitAndTrim(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = isTrue(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("ORACLE_PROMPT"); v != "" {
		cfg.Oracle.Prompt = v
	}
	if v := os.Getenv("ORACLE_MAX_PROMPT_TOKENS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Oracle.MaxPromptTokens = parsed
		}
	}
	if v := os.Getenv("WEATHER_API_KEY"); v != "" {
		cfg.Weather.APIKey = v
	}
	if v := os.Getenv("WEATHER_BASE_URL"); v != "" {
		cfg.Weather.BaseURL = v
	}
	if v := os.Getenv("WEATHER_DEFAULT_LOCATION"); v != "" {
		cfg.Weather.DefaultLocation = v
	}
	if v := os.Getenv("RECOMMENDATION_HIGH_WIND_THRESHOLD"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Recommendation.HighWindThreshold = parsed
		}
	}
	if v := os.Getenv("RECOMMENDATION_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Recommendation.CacheTTL = parsed
		}
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		cfg.Postgres.DSN = v
	}
	if v := os.Getenv("POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("CACHE_ENABLED"); v != "" {
		cfg.Cache.Enabled = isTrue(v)
	}
	if v := os.Getenv("CACHE_ADDR"); v != "" {
		cfg.Cache.Addr = v
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		LLM: LLMConfig{
			Model:       "gpt-4o-mini",
			Temperature: 0.4,
		},
		Oracle: OracleConfig{
			Prompt:          "You are a personal stylist who assembles daily outfits from the user's own wardrobe, matching the requested vibe and the current weather.",
			MaxPromptTokens: 6000,
		},
		Weather: WeatherConfig{
			BaseURL:         "https://api.openweathermap.org/data/2.5/weather",
			DefaultLocation: "Unknown",
		},
		Recommendation: RecommendationConfig{
			HighWindThreshold: 30,
			CacheTTL:          30 * time.Minute,
		},
		Postgres: PostgresConfig{
			MaxConns: 4,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.LLM.Model == "" {
		return errors.New("llm.model cannot be empty")
	}
	if c.Oracle.Prompt == "" {
		return errors.New("oracle.prompt cannot be empty")
	}
	if c.Oracle.MaxPromptTokens < 0 {
		return errors.New("oracle.maxPromptTokens cannot be negative")
	}
	if c.Recommendation.HighWindThreshold < 0 {
		return errors.New("recommendation.highWindThreshold cannot be negative")
	}
	if c.Recommendation.CacheTTL < 0 {
		return errors.New("recommendation.cacheTtl cannot be negative")
	}
	if c.Cache.Enabled && strings.TrimSpace(c.Cache.Addr) == "" {
		return errors.New("cache.addr cannot be empty when the cache is enabled")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	return nil
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if clean := strings.TrimSpace(part); clean != "" {
			out = append(out, clean)
		}
	}
	return out
}

func isTrue(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}
