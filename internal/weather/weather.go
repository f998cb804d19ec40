// Package weather resolves a US city/state to coordinates and looks up one
// day of weather from Open-Meteo, preferring the forecast source and falling
// back to the archive.
package weather

import (
	"errors"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimestampLayout = "2006-01-02 15:04:05"
	AutoTimezone    = "auto"
)

type Source string

const (
	SourceForecast Source = "forecast"
	SourceArchive  Source = "archive"
)

var (
	ErrNoResults    = errors.New("no geocoding results")
	ErrNoUSMatch    = errors.New("no US match")
	ErrNoDaily      = errors.New("no daily data returned")
	ErrDateNotFound = errors.New("requested date not in response")
	ErrMissingValue = errors.New("missing value")
)

// FetchedWeather is one successful lookup. It is written once and never
// changed; the JSON form is one line of the local log.
type FetchedWeather struct {
	Timestamp       string  `json:"timestamp"`
	City            string  `json:"city"`
	State           string  `json:"state"`
	Date            string  `json:"date"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Timezone        string  `json:"timezone"`
	Source          string  `json:"source"`
	TempMaxC        float64 `json:"temp_max_c"`
	TempMinC        float64 `json:"temp_min_c"`
	PrecipitationMM float64 `json:"precipitation_mm"`
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
