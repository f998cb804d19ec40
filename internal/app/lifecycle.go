package app

import (
	"context"

	"fyne.io/fyne/v2"
)

// Run shows the window and blocks until the event loop ends, then shuts the
// registered components down in reverse order. Cancelling ctx, a signal or
// closing the window all end the loop.
func (a *Application) Run(ctx context.Context) error {
	logger := a.debugCoord.Logger()

	a.window.SetContent(a.view.GetMainContainer())
	a.window.SetCloseIntercept(func() {
		logger.Info("Application", "shutdown requested", nil)
		a.lifecycle.Request()
		a.window.Close()
	})

	a.lifecycle.Listen()
	go a.quitOnRequest(ctx)

	a.view.Start()
	logger.Info("Application", "GUI displayed", nil)
	a.window.ShowAndRun()

	a.Shutdown()
	return nil
}

func (a *Application) quitOnRequest(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-a.lifecycle.Context().Done():
	}

	select {
	case <-a.lifecycle.Done():
		return
	default:
	}
	fyne.Do(a.fyneApp.Quit)
}

// Shutdown runs once; later calls are no-ops.
func (a *Application) Shutdown() {
	a.lifecycle.Shutdown()
}
