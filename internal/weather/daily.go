package weather

import (
	"fmt"
	"time"
)

// DailyBlock is the daily time series. Values are pointers because the API
// reports gaps as null.
type DailyBlock struct {
	Time             []string   `json:"time"`
	TemperatureMax   []*float64 `json:"temperature_2m_max"`
	TemperatureMin   []*float64 `json:"temperature_2m_min"`
	PrecipitationSum []*float64 `json:"precipitation_sum"`
}

type DailyResponse struct {
	Daily    *DailyBlock `json:"daily"`
	Timezone string      `json:"timezone"`
}

// ExtractDay reads the values for date out of resp. Max and min temperature
// are required; precipitation defaults to 0.
func ExtractDay(resp DailyResponse, lat, lon float64, date string, source Source, now time.Time) (FetchedWeather, error) {
	if resp.Daily == nil {
		return FetchedWeather{}, ErrNoDaily
	}
	daily := resp.Daily

	idx := -1
	for i, t := range daily.Time {
		if t == date {
			idx = i
			break
		}
	}
	if idx < 0 {
		return FetchedWeather{}, fmt.Errorf("%w: %s", ErrDateNotFound, date)
	}

	tmax, ok := valueAt(daily.TemperatureMax, idx)
	if !ok {
		return FetchedWeather{}, fmt.Errorf("%w: tmax", ErrMissingValue)
	}
	tmin, ok := valueAt(daily.TemperatureMin, idx)
	if !ok {
		return FetchedWeather{}, fmt.Errorf("%w: tmin", ErrMissingValue)
	}
	precip, _ := valueAt(daily.PrecipitationSum, idx)

	tz := resp.Timezone
	if tz == "" {
		tz = AutoTimezone
	}

	return FetchedWeather{
		Timestamp:       now.Format(TimestampLayout),
		Date:            date,
		Latitude:        lat,
		Longitude:       lon,
		Timezone:        tz,
		Source:          string(source),
		TempMaxC:        tmax,
		TempMinC:        tmin,
		PrecipitationMM: precip,
	}, nil
}

func valueAt(series []*float64, idx int) (float64, bool) {
	if idx >= len(series) || series[idx] == nil {
		return 0, false
	}
	return *series[idx], true
}
