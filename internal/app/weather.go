package app

import (
	"context"
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"mood-weather/internal/config"
	"mood-weather/internal/gui/weatherview"
	"mood-weather/internal/shutdown"
	"mood-weather/internal/weather"
	"mood-weather/internal/weather/journal"
	"mood-weather/internal/weather/session"
)

const fetchDrainTimeout = 5 * time.Second

// NewWeatherApp builds the Weather App on the desktop driver.
func NewWeatherApp(cfg config.Config) (*Application, error) {
	return newWeatherApp(fyneapp.NewWithID(WeatherAppID), cfg)
}

func newWeatherApp(fyneApp fyne.App, cfg config.Config) (*Application, error) {
	a := newApplication(fyneApp, WeatherAppName, fyne.NewSize(WeatherWindowWidth, WeatherWindowHeight), cfg)
	logger := a.debugCoord.Logger()

	log := journal.New(journal.DefaultPath(a.dataDir))
	entries, err := log.Load()
	if err != nil {
		logger.Warning("WeatherApp", "log unreadable, starting with what was parsed", map[string]interface{}{
			"path":  log.Path(),
			"error": err.Error(),
		})
	}

	client := weather.NewClient(weather.Endpoints{
		Geocoding: cfg.GeocodingURL,
		Forecast:  cfg.ForecastURL,
		Archive:   cfg.ArchiveURL,
	}, cfg.UserAgent, cfg.HTTPTimeout)
	fetcher := weather.NewFetcher(client, a.debugCoord)

	sess := session.New(a.lifecycle.Context(), fetcher, log, entries, a.debugCoord)
	view := weatherview.NewView(a.window, sess, cfg.FrameInterval)
	a.view = view

	a.lifecycle.Register("session", shutdown.Func(func() {
		ctx, cancel := context.WithTimeout(context.Background(), fetchDrainTimeout)
		defer cancel()
		if err := sess.Shutdown(ctx); err != nil {
			logger.Warning("WeatherApp", "fetch still running at exit", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}))
	a.lifecycle.Register("view", view)

	logger.Info("WeatherApp", "initialization complete", map[string]interface{}{
		"entries":  len(entries),
		"log_path": log.Path(),
		"forecast": cfg.ForecastURL,
	})
	return a, nil
}
