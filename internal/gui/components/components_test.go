package components

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mood-weather/internal/mood"
	"mood-weather/internal/mood/chart"
	"mood-weather/internal/weather/scene"
)

func TestStatusBar(t *testing.T) {
	test.NewApp()

	sb := NewStatusBar("Ready")
	assert.Equal(t, "Ready", sb.Status())

	sb.SetStatus("Fetching…")
	sb.SetDetail("3 entries")
	assert.Equal(t, "Fetching…", sb.Status())
	assert.Equal(t, "3 entries", sb.detailLabel.Text)
}

func TestMoodChartPlaceholder(t *testing.T) {
	test.NewApp()

	c := NewMoodChart()
	r := test.WidgetRenderer(c)
	r.Layout(fyne.NewSize(400, MoodChartHeight))

	objects := r.Objects()
	require.Len(t, objects, 2)
	text, ok := objects[1].(*canvas.Text)
	require.True(t, ok)
	assert.Equal(t, chart.Placeholder, text.Text)
}

func TestMoodChartBars(t *testing.T) {
	test.NewApp()

	c := NewMoodChart()
	r := test.WidgetRenderer(c)
	c.SetHistory([]mood.DailySummary{
		{Date: "2024-01-02", Mood: mood.Sad},
		{Date: "2024-01-01", Mood: mood.Happy},
	})
	r.Layout(fyne.NewSize(400, MoodChartHeight))

	objects := r.Objects()
	require.Len(t, objects, 3)
	first := objects[1].(*canvas.Rectangle)
	assert.Equal(t, mood.Happy.Color(), first.FillColor)
	assert.Equal(t, float32(MoodChartHeight-2*chart.Margin), first.Size().Height)
}

func TestSceneRendersBuiltShapes(t *testing.T) {
	test.NewApp()

	s := NewScene()
	r := test.WidgetRenderer(s)
	r.Layout(fyne.NewSize(300, 300))

	s.SetFrame(scene.Snow, false, s.start.Add(time.Second))
	assert.Len(t, r.Objects(), len(scene.Build(scene.Snow, 1, 300, false)))

	s.SetFrame(scene.Sunny, true, s.start.Add(2*time.Second))
	assert.Len(t, r.Objects(), len(scene.Build(scene.Sunny, 2, 300, true)))
}

func TestSceneCentresSquare(t *testing.T) {
	test.NewApp()

	s := NewScene()
	r := test.WidgetRenderer(s)
	r.Layout(fyne.NewSize(500, 300))

	s.SetFrame(scene.Rain, false, s.start)
	var rect *canvas.Rectangle
	for _, o := range r.Objects() {
		if rr, ok := o.(*canvas.Rectangle); ok {
			rect = rr
		}
	}
	require.NotNil(t, rect)
	assert.Equal(t, fyne.NewPos(102, 2), rect.Position())
}
