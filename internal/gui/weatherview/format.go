// Package weatherview is the Weather App window. It drives a
// session.Session: form edits write into it, and a frame ticker drains
// finished fetches and redraws.
package weatherview

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"mood-weather/internal/weather"
)

// ParseDate reads the date field as a local calendar day.
func ParseDate(text string) (time.Time, error) {
	d, err := time.ParseInLocation(weather.DateLayout, strings.TrimSpace(text), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", strings.TrimSpace(text))
	}
	return d, nil
}

type Row struct {
	Label string
	Value string
}

// ResultRows is the last-result grid.
func ResultRows(w weather.FetchedWeather) []Row {
	return []Row{
		{"Location:", fmt.Sprintf("%s, %s", w.City, w.State)},
		{"Date:", w.Date},
		{"Coords:", fmt.Sprintf("%.4f, %.4f", w.Latitude, w.Longitude)},
		{"Timezone:", w.Timezone},
		{"Source:", w.Source},
		{"Temp max/min:", fmt.Sprintf("%.1f / %.1f °C", w.TempMaxC, w.TempMinC)},
		{"Precip:", fmt.Sprintf("%.1f mm", w.PrecipitationMM)},
	}
}

// EntryTitle is the collapsed heading of one log entry.
func EntryTitle(w weather.FetchedWeather) string {
	return fmt.Sprintf("%s · %s, %s", w.Timestamp, w.City, w.State)
}

// EntryDetail is the expanded body of one log entry.
func EntryDetail(w weather.FetchedWeather) string {
	data, err := json.MarshalIndent(w, "", "  ")
	if err != nil {
		return ""
	}
	return string(data)
}
