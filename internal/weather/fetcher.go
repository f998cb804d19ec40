package weather

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"mood-weather/internal/debug"
)

// API is the subset of Client the fetch flow needs.
type API interface {
	Geocode(ctx context.Context, city string) (GeoResponse, error)
	Daily(ctx context.Context, source Source, lat, lon float64, date, timezone string) (DailyResponse, error)
}

// Location is a resolved geocoding result with the normalised names that end
// up in FetchedWeather.
type Location struct {
	Latitude  float64
	Longitude float64
	Timezone  string
	City      string
	State     string
}

// Fetcher runs geocode → forecast → archive for one request.
type Fetcher struct {
	api    API
	logger debug.Logger
	timing debug.TimingTracker
	now    func() time.Time
}

func NewFetcher(api API, dc debug.Coordinator) *Fetcher {
	return &Fetcher{
		api:    api,
		logger: dc.Logger(),
		timing: dc.TimingTracker(),
		now:    time.Now,
	}
}

// Fetch resolves city/state and returns the weather for date. When the
// forecast attempt fails for any reason the archive is tried for the same
// date and location, and its error is the one returned.
func (f *Fetcher) Fetch(ctx context.Context, city, state string, date time.Time) (FetchedWeather, error) {
	requestID := uuid.NewString()
	fields := map[string]interface{}{
		"request_id": requestID,
		"city":       city,
		"state":      state,
		"date":       FormatDate(date),
	}
	f.logger.Debug("Fetcher", "fetch started", fields)

	loc, err := f.Geocode(ctx, city, state)
	if err != nil {
		f.logger.Error("Fetcher", err, fields)
		return FetchedWeather{}, err
	}

	dateStr := FormatDate(date)
	result, err := f.fetchDay(ctx, SourceForecast, loc, dateStr)
	if err != nil {
		f.logger.Warning("Fetcher", "forecast failed, trying archive", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})

		result, err = f.fetchDay(ctx, SourceArchive, loc, dateStr)
		if err != nil {
			f.logger.Error("Fetcher", err, fields)
			return FetchedWeather{}, err
		}
	}

	result.City = loc.City
	result.State = loc.State

	f.logger.Info("Fetcher", "fetch completed", map[string]interface{}{
		"request_id": requestID,
		"source":     result.Source,
		"city":       result.City,
		"state":      result.State,
	})
	return result, nil
}

// Geocode resolves free-text city and state to one US place.
func (f *Fetcher) Geocode(ctx context.Context, city, state string) (Location, error) {
	tctx := f.timing.StartTiming(ctx, "geocode")
	defer f.timing.EndTiming(tctx)

	stateName := ResolveStateName(state)
	resp, err := f.api.Geocode(ctx, city)
	if err != nil {
		return Location{}, err
	}
	if resp.Results == nil {
		return Location{}, fmt.Errorf("%w for '%s, %s'", ErrNoResults, city, state)
	}

	place, ok := SelectPlace(resp.Results, stateName)
	if !ok {
		return Location{}, fmt.Errorf("%w for '%s, %s'", ErrNoUSMatch, city, state)
	}

	return Location{
		Latitude:  place.Latitude,
		Longitude: place.Longitude,
		Timezone:  place.Timezone,
		City:      place.Name,
		State:     stateName,
	}, nil
}

func (f *Fetcher) fetchDay(ctx context.Context, source Source, loc Location, date string) (FetchedWeather, error) {
	tctx := f.timing.StartTiming(ctx, string(source))
	defer f.timing.EndTiming(tctx)

	resp, err := f.api.Daily(ctx, source, loc.Latitude, loc.Longitude, date, loc.Timezone)
	if err != nil {
		return FetchedWeather{}, err
	}

	fw, err := ExtractDay(resp, loc.Latitude, loc.Longitude, date, source, f.now())
	if err != nil {
		return FetchedWeather{}, fmt.Errorf("%s: %w", source, err)
	}
	return fw, nil
}

// Describe is the one-line status shown after a successful fetch.
func Describe(w FetchedWeather) string {
	return fmt.Sprintf("%s on %s → max: %.1f°C | min: %.1f°C | precip: %.1f mm (%s)",
		w.City, w.Date, w.TempMaxC, w.TempMinC, w.PrecipitationMM, w.Source)
}

// TrimInputs returns the form values as the background fetch receives them.
func TrimInputs(city, state string) (string, string) {
	return strings.TrimSpace(city), strings.TrimSpace(state)
}
