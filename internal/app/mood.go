package app

import (
	"time"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"

	"mood-weather/internal/config"
	"mood-weather/internal/gui/moodview"
	"mood-weather/internal/mood"
	"mood-weather/internal/mood/chart/raster"
	"mood-weather/internal/shutdown"
)

// NewMoodTracker builds the Mood Tracker on the desktop driver.
func NewMoodTracker(cfg config.Config) (*Application, error) {
	return newMoodTracker(fyneapp.NewWithID(MoodAppID), cfg)
}

func newMoodTracker(fyneApp fyne.App, cfg config.Config) (*Application, error) {
	a := newApplication(fyneApp, MoodAppName, fyne.NewSize(MoodWindowWidth, MoodWindowHeight), cfg)
	logger := a.debugCoord.Logger()

	store := mood.NewStore(a.dataDir)
	settings, err := store.Load()
	if err != nil {
		logger.Warning("MoodTracker", "settings unreadable, starting empty", map[string]interface{}{
			"path":  store.Path(),
			"error": err.Error(),
		})
	}

	tracker := mood.NewTracker(settings)
	scheduler := mood.NewPromptScheduler(time.Now(), cfg.PromptInterval)

	view := moodview.NewView(a.window, cfg.RedrawInterval)
	controller := moodview.NewController(tracker, store, scheduler, view.Dialogs(), raster.Encode, a.debugCoord)
	view.SetController(controller)
	a.view = view

	a.lifecycle.Register("settings", shutdown.Func(controller.Flush))
	a.lifecycle.Register("view", view)

	logger.Info("MoodTracker", "initialization complete", map[string]interface{}{
		"entries":         len(settings.Entries),
		"days":            len(settings.History),
		"settings_path":   store.Path(),
		"prompt_interval": cfg.PromptInterval.String(),
	})
	return a, nil
}
