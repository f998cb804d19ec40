package app

import (
	"os"

	"fyne.io/fyne/v2"

	"mood-weather/internal/config"
	"mood-weather/internal/debug"
	"mood-weather/internal/shutdown"
)

const (
	MoodAppID      = "com.moodweather.moodtracker"
	MoodAppName    = "Mood Tracker"
	WeatherAppID   = "com.moodweather.weather"
	WeatherAppName = "Local Weather (Open-Meteo)"
	AppVersion     = "1.0.0"

	MoodWindowWidth     = 720
	MoodWindowHeight    = 640
	WeatherWindowWidth  = 1200
	WeatherWindowHeight = 640
)

// View is what both windows expose to the bootstrap.
type View interface {
	GetMainContainer() fyne.CanvasObject
	Start()
	Shutdown()
}

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	view       View
	debugCoord debug.Coordinator
	lifecycle  *shutdown.Manager
	dataDir    string
}

func newApplication(fyneApp fyne.App, name string, size fyne.Size, cfg config.Config) *Application {
	window := fyneApp.NewWindow(name)
	window.Resize(size)
	window.CenterOnScreen()
	window.SetMaster()

	debugCoord := debug.NewCoordinator(cfg.Debug)
	lifecycle := shutdown.NewManager(debugCoord.Logger())
	lifecycle.Register("debug", shutdown.Func(debugCoord.Shutdown))

	a := &Application{
		fyneApp:    fyneApp,
		window:     window,
		debugCoord: debugCoord,
		lifecycle:  lifecycle,
		dataDir:    resolveDataDir(fyneApp, cfg),
	}

	debugCoord.Logger().Info("Application", "starting application", map[string]interface{}{
		"name":          name,
		"version":       AppVersion,
		"data_dir":      a.dataDir,
		"window_width":  size.Width,
		"window_height": size.Height,
		"log_level":     cfg.Debug.LogLevel.String(),
	})
	return a
}

// resolveDataDir prefers the explicit override, then the fyne storage root,
// then the user config directory.
func resolveDataDir(fyneApp fyne.App, cfg config.Config) string {
	if cfg.DataDir != "" {
		return cfg.DataDir
	}
	if root := fyneApp.Storage().RootURI(); root != nil && root.Path() != "" {
		return root.Path()
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	return "."
}

func (a *Application) DataDir() string { return a.dataDir }
