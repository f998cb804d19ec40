package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"mood-weather/internal/mood"
	"mood-weather/internal/mood/chart"
)

const (
	MoodChartHeight   = 160
	MoodChartMinWidth = 320
)

// MoodChart draws chart.Layout for the current history at whatever size
// the container gives it.
type MoodChart struct {
	widget.BaseWidget
	history []mood.DailySummary
}

func NewMoodChart() *MoodChart {
	c := &MoodChart{}
	c.ExtendBaseWidget(c)
	return c
}

func (c *MoodChart) SetHistory(history []mood.DailySummary) {
	c.history = history
	c.Refresh()
}

func (c *MoodChart) CreateRenderer() fyne.WidgetRenderer {
	r := &moodChartRenderer{chart: c}
	r.rebuild(fyne.NewSize(MoodChartMinWidth, MoodChartHeight))
	return r
}

type moodChartRenderer struct {
	chart   *MoodChart
	size    fyne.Size
	objects []fyne.CanvasObject
}

func (r *moodChartRenderer) Layout(size fyne.Size) {
	r.rebuild(size)
}

func (r *moodChartRenderer) MinSize() fyne.Size {
	return fyne.NewSize(MoodChartMinWidth, MoodChartHeight)
}

func (r *moodChartRenderer) Refresh() {
	r.rebuild(r.size)
	canvas.Refresh(r.chart)
}

func (r *moodChartRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *moodChartRenderer) Destroy() {}

func (r *moodChartRenderer) rebuild(size fyne.Size) {
	r.size = size
	layout := chart.Layout(r.chart.history, size.Width, size.Height)

	frame := canvas.NewRectangle(chart.Background)
	frame.StrokeColor = chart.Border
	frame.StrokeWidth = 1
	frame.CornerRadius = 8
	placeRect(frame, layout.Frame)

	objects := []fyne.CanvasObject{frame}
	if layout.Empty() {
		text := canvas.NewText(layout.Placeholder, chart.TextColor)
		text.Alignment = fyne.TextAlignCenter
		textSize := text.MinSize()
		text.Move(fyne.NewPos(0, (size.Height-textSize.Height)/2))
		text.Resize(fyne.NewSize(size.Width, textSize.Height))
		objects = append(objects, text)
	}
	for _, bar := range layout.Bars {
		rect := canvas.NewRectangle(bar.Color)
		rect.CornerRadius = 4
		placeRect(rect, bar.Rect)
		objects = append(objects, rect)
	}
	r.objects = objects
}

func placeRect(obj fyne.CanvasObject, r chart.Rect) {
	obj.Move(fyne.NewPos(r.X0, r.Y0))
	obj.Resize(fyne.NewSize(r.Width(), r.Height()))
}
