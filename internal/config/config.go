package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"mood-weather/internal/debug"
	"mood-weather/internal/logger"
)

const (
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	DefaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
	DefaultArchiveURL   = "https://archive-api.open-meteo.com/v1/era5"
	DefaultUserAgent    = "mood-weather/1.0"
)

// Config holds every environment-tunable setting of both apps.
type Config struct {
	Debug debug.Config

	// DataDir overrides the platform storage directory when set.
	DataDir string

	PromptInterval time.Duration
	RedrawInterval time.Duration

	GeocodingURL  string
	ForecastURL   string
	ArchiveURL    string
	HTTPTimeout   time.Duration
	UserAgent     string
	FrameInterval time.Duration
}

func Default() Config {
	return Config{
		Debug:          debug.DefaultConfig(),
		PromptInterval: 5 * time.Second,
		RedrawInterval: 100 * time.Millisecond,
		GeocodingURL:   DefaultGeocodingURL,
		ForecastURL:    DefaultForecastURL,
		ArchiveURL:     DefaultArchiveURL,
		HTTPTimeout:    30 * time.Second,
		UserAgent:      DefaultUserAgent,
		FrameInterval:  33 * time.Millisecond,
	}
}

// Load reads an optional .env file and then the process environment.
func Load() Config {
	// a missing .env is the normal case
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function, falling back to Default for
// anything unset or unparsable.
func FromEnv(getenv func(string) string) Config {
	cfg := Default()

	if getenv("PRODUCTION") == "true" {
		cfg.Debug = debug.ProductionConfig()
	}
	if v := getenv("LOG_LEVEL"); v != "" {
		cfg.Debug.LogLevel = logger.ParseLevel(v)
	} else if getenv("DEBUG") == "1" {
		cfg.Debug.LogLevel = logger.DebugLevel
	}
	if v := getenv("JSON_LOGS"); v != "" {
		cfg.Debug.UseJSONLogging = parseBool(v, cfg.Debug.UseJSONLogging)
	}

	cfg.DataDir = strings.TrimSpace(getenv("MOOD_WEATHER_DATA_DIR"))
	cfg.PromptInterval = parseDuration(getenv("MOOD_PROMPT_INTERVAL"), cfg.PromptInterval)
	cfg.RedrawInterval = parseDuration(getenv("MOOD_REDRAW_INTERVAL"), cfg.RedrawInterval)
	cfg.GeocodingURL = stringOr(getenv("WEATHER_GEOCODING_URL"), cfg.GeocodingURL)
	cfg.ForecastURL = stringOr(getenv("WEATHER_FORECAST_URL"), cfg.ForecastURL)
	cfg.ArchiveURL = stringOr(getenv("WEATHER_ARCHIVE_URL"), cfg.ArchiveURL)
	cfg.HTTPTimeout = parseDuration(getenv("WEATHER_HTTP_TIMEOUT"), cfg.HTTPTimeout)
	cfg.UserAgent = stringOr(getenv("WEATHER_USER_AGENT"), cfg.UserAgent)
	cfg.FrameInterval = parseDuration(getenv("WEATHER_FRAME_INTERVAL"), cfg.FrameInterval)

	return cfg
}

func stringOr(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}

func parseDuration(v string, fallback time.Duration) time.Duration {
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

func parseBool(v string, fallback bool) bool {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
