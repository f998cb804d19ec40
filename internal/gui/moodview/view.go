package moodview

import (
	"io"
	"slices"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"mood-weather/internal/gui/components"
	"mood-weather/internal/mood"
	"mood-weather/internal/mood/chart"
)

// View owns the widgets. Every method runs on the fyne goroutine except
// Start and Shutdown.
type View struct {
	window     fyne.Window
	controller *Controller
	redraw     time.Duration

	statusBar   *components.StatusBar
	chart       *components.MoodChart
	sessionList *widget.List
	content     fyne.CanvasObject

	lines   []string
	history []mood.DailySummary
	prompt  dialog.Dialog

	stop     chan struct{}
	stopOnce sync.Once
}

func NewView(window fyne.Window, redraw time.Duration) *View {
	v := &View{
		window: window,
		redraw: redraw,
		stop:   make(chan struct{}),
	}
	v.setupComponents()
	return v
}

// Dialogs returns the window-backed file pickers for the controller.
func (v *View) Dialogs() Dialogs {
	return fyneDialogs{window: v.window}
}

func (v *View) SetController(controller *Controller) {
	v.controller = controller
	controller.SetOnChange(v.refresh)
	v.setupLayout()
	v.refresh()
}

func (v *View) setupComponents() {
	v.statusBar = components.NewStatusBar("")
	v.chart = components.NewMoodChart()
	v.sessionList = widget.NewList(
		func() int { return len(v.lines) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(v.lines[id])
		},
	)
}

func (v *View) setupLayout() {
	header := container.NewVBox(
		widget.NewLabelWithStyle("Mood Tracker", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		v.statusBar.GetContainer(),
	)

	exportRow := container.NewHBox(
		widget.NewButton("Save Log (.txt)", v.controller.SaveText),
		widget.NewButton("Save Log as PDF", v.controller.SavePDF),
		widget.NewButton("Save Chart (.png)", v.controller.SaveChart),
	)

	top := container.NewVBox(
		header,
		v.moodButtons(),
		widget.NewSeparator(),
		widget.NewLabel(chart.Title),
		v.chart,
		exportRow,
	)

	sessionBox := container.NewBorder(
		widget.NewLabelWithStyle("Session Log", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		nil, nil, nil,
		v.sessionList,
	)

	v.content = container.NewBorder(top, nil, nil, nil, sessionBox)
}

func (v *View) moodButtons() *fyne.Container {
	row := container.NewHBox()
	for _, level := range mood.Levels {
		row.Add(widget.NewButton(level.Name(), func() { v.controller.Pick(level) }))
	}
	return row
}

func (v *View) refresh() {
	if v.controller == nil {
		return
	}

	v.statusBar.SetStatus(v.controller.Status())
	v.statusBar.SetDetail("Next check-in " + v.controller.NextPrompt().Format("15:04:05"))

	history := v.controller.History()
	if !slices.Equal(history, v.history) {
		v.history = history
		v.chart.SetHistory(history)
	}

	lines := v.controller.SessionLines()
	if !slices.Equal(lines, v.lines) {
		v.lines = lines
		v.sessionList.Refresh()
	}

	v.syncPrompt()
}

// syncPrompt shows or hides the check-in dialog to match the tracker.
func (v *View) syncPrompt() {
	visible := v.controller.PromptVisible()
	switch {
	case visible && v.prompt == nil:
		skip := widget.NewButton("Skip", v.controller.Skip)
		content := container.NewVBox(
			widget.NewLabel("How do you feel right now?"),
			v.moodButtons(),
			container.NewHBox(skip),
		)
		v.prompt = dialog.NewCustomWithoutButtons("Quick mood check", content, v.window)
		v.prompt.Show()
	case !visible && v.prompt != nil:
		v.prompt.Hide()
		v.prompt = nil
	}
}

// Start runs the redraw ticker until Shutdown.
func (v *View) Start() {
	go func() {
		ticker := time.NewTicker(v.redraw)
		defer ticker.Stop()

		for {
			select {
			case now := <-ticker.C:
				fyne.Do(func() {
					v.controller.Tick(now)
					v.refresh()
				})
			case <-v.stop:
				return
			}
		}
	}()
}

func (v *View) Shutdown() {
	v.stopOnce.Do(func() { close(v.stop) })
}

func (v *View) GetMainContainer() fyne.CanvasObject {
	return v.content
}

type fyneDialogs struct {
	window fyne.Window
}

func (d fyneDialogs) OpenFont(callback func(io.ReadCloser, error)) {
	dlg := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
		if err != nil {
			callback(nil, err)
			return
		}
		if r == nil {
			callback(nil, nil)
			return
		}
		callback(r, nil)
	}, d.window)
	dlg.SetFilter(storage.NewExtensionFileFilter([]string{".ttf"}))
	dlg.Show()
}

func (d fyneDialogs) SaveFile(defaultName string, extensions []string, callback func(io.WriteCloser, string, error)) {
	dlg := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			callback(nil, "", err)
			return
		}
		if w == nil {
			callback(nil, "", nil)
			return
		}
		callback(w, w.URI().Path(), nil)
	}, d.window)
	dlg.SetFileName(defaultName)
	dlg.SetFilter(storage.NewExtensionFileFilter(extensions))
	dlg.Show()
}
