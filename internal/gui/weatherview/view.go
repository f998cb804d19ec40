package weatherview

import (
	"fmt"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"mood-weather/internal/gui/components"
	"mood-weather/internal/weather"
	"mood-weather/internal/weather/scene"
	"mood-weather/internal/weather/session"
)

const (
	ControlsWidth = 320
	LogWidth      = 300
)

type View struct {
	window  fyne.Window
	session *session.Session
	frame   time.Duration
	mode    scene.Mode

	cityEntry  *widget.Entry
	stateEntry *widget.Entry
	dateEntry  *widget.Entry
	modeSelect *widget.Select
	fetchBtn   *widget.Button
	spinner    *widget.ProgressBarInfinite
	statusBar  *components.StatusBar
	resultBox  *fyne.Container
	resultGrid *fyne.Container
	logList    *widget.Accordion
	scene      *components.Scene
	content    fyne.CanvasObject

	shownEntries int
	shownLast    *weather.FetchedWeather
	shownLoading bool

	stop     chan struct{}
	stopOnce sync.Once
}

func NewView(window fyne.Window, s *session.Session, frame time.Duration) *View {
	v := &View{
		window:       window,
		session:      s,
		frame:        frame,
		mode:         scene.Auto,
		shownEntries: -1,
		stop:         make(chan struct{}),
	}
	v.setupComponents()
	v.setupLayout()
	v.refresh()
	return v
}

func (v *View) setupComponents() {
	s := v.session

	v.cityEntry = widget.NewEntry()
	v.cityEntry.SetText(s.City)
	v.cityEntry.OnChanged = func(text string) { s.City = text }

	v.stateEntry = widget.NewEntry()
	v.stateEntry.SetText(s.State)
	v.stateEntry.OnChanged = func(text string) { s.State = text }

	v.dateEntry = widget.NewEntry()
	v.dateEntry.SetPlaceHolder("YYYY-MM-DD")
	v.dateEntry.SetText(weather.FormatDate(s.Date))
	v.dateEntry.Validator = func(text string) error {
		_, err := ParseDate(text)
		return err
	}

	names := make([]string, len(scene.Modes))
	for i, m := range scene.Modes {
		names[i] = m.String()
	}
	v.modeSelect = widget.NewSelect(names, func(name string) { v.mode = scene.ParseMode(name) })
	v.modeSelect.SetSelected(scene.Auto.String())

	v.fetchBtn = widget.NewButton("Fetch Weather", v.Fetch)
	v.fetchBtn.Importance = widget.HighImportance
	v.spinner = widget.NewProgressBarInfinite()
	v.spinner.Hide()

	v.statusBar = components.NewStatusBar(s.Status)
	v.resultGrid = container.NewGridWithColumns(2)
	v.resultBox = container.NewVBox(
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Last Result", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		v.resultGrid,
	)
	v.resultBox.Hide()

	v.logList = widget.NewAccordion()
	v.scene = components.NewScene()
}

func (v *View) setupLayout() {
	header := container.NewVBox(
		widget.NewLabelWithStyle("Local Weather (Open-Meteo)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Enter City, State, and Date. Click Fetch."),
	)

	form := widget.NewForm(
		widget.NewFormItem("City:", v.cityEntry),
		widget.NewFormItem("State:", v.stateEntry),
		widget.NewFormItem("Date:", v.dateEntry),
		widget.NewFormItem("Animation:", v.modeSelect),
	)

	controls := container.NewVBox(
		form,
		container.NewBorder(nil, nil, v.fetchBtn, nil, v.spinner),
		widget.NewSeparator(),
		v.statusBar.GetContainer(),
		v.resultBox,
	)

	logPanel := container.NewBorder(
		container.NewVBox(
			widget.NewLabelWithStyle("Log", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			container.NewHBox(
				widget.NewButton("Export CSV", v.ExportCSV),
				widget.NewButton("Clear log", v.ClearLog),
			),
			widget.NewSeparator(),
		),
		nil, nil, nil,
		container.NewVScroll(v.logList),
	)

	body := container.NewHSplit(
		container.NewVScroll(controls),
		container.NewHSplit(v.scene, logPanel),
	)
	body.SetOffset(0.3)

	v.content = container.NewBorder(header, nil, nil, nil, body)
}

// Fetch copies the form into the session and starts a background fetch.
func (v *View) Fetch() {
	date, err := ParseDate(v.dateEntry.Text)
	if err != nil {
		v.session.Status = fmt.Sprintf("Error: %v", err)
		v.refresh()
		return
	}
	v.session.City = v.cityEntry.Text
	v.session.State = v.stateEntry.Text
	v.session.Date = date
	v.session.StartFetch()
	v.refresh()
}

func (v *View) ExportCSV() {
	v.session.ExportCSV()
	v.refresh()
}

func (v *View) ClearLog() {
	v.session.ClearLog()
	v.refresh()
}

// Frame is one tick of the UI loop: apply finished fetches, then redraw.
func (v *View) Frame(now time.Time) {
	v.session.Drain()
	v.refresh()
	v.scene.SetFrame(scene.ModeFor(v.mode, v.session.Last), v.session.Loading, now)
}

func (v *View) refresh() {
	s := v.session

	v.statusBar.SetStatus("Status: " + s.Status)
	v.statusBar.SetDetail(fmt.Sprintf("%d logged", len(s.Entries)))

	if s.Loading != v.shownLoading {
		v.shownLoading = s.Loading
		if s.Loading {
			v.fetchBtn.Disable()
			v.spinner.Show()
			v.spinner.Start()
		} else {
			v.fetchBtn.Enable()
			v.spinner.Stop()
			v.spinner.Hide()
		}
	}

	if s.Last != v.shownLast {
		v.shownLast = s.Last
		v.showResult(s.Last)
	}

	if len(s.Entries) != v.shownEntries {
		v.shownEntries = len(s.Entries)
		v.showLog(s.Newest())
	}
}

func (v *View) showResult(last *weather.FetchedWeather) {
	if last == nil {
		v.resultBox.Hide()
		return
	}
	var cells []fyne.CanvasObject
	for _, row := range ResultRows(*last) {
		cells = append(cells, widget.NewLabel(row.Label), widget.NewLabel(row.Value))
	}
	v.resultGrid.Objects = cells
	v.resultGrid.Refresh()
	v.resultBox.Show()
}

func (v *View) showLog(entries []weather.FetchedWeather) {
	items := make([]*widget.AccordionItem, 0, len(entries))
	for _, e := range entries {
		detail := widget.NewLabelWithStyle(EntryDetail(e), fyne.TextAlignLeading, fyne.TextStyle{Monospace: true})
		items = append(items, widget.NewAccordionItem(EntryTitle(e), detail))
	}
	v.logList.Items = items
	v.logList.Refresh()
}

// Start runs the frame ticker until Shutdown.
func (v *View) Start() {
	go func() {
		ticker := time.NewTicker(v.frame)
		defer ticker.Stop()

		for {
			select {
			case now := <-ticker.C:
				fyne.Do(func() { v.Frame(now) })
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
