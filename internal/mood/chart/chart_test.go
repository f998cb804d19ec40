package chart

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mood-weather/internal/mood"
)

func TestLayoutEmptyHistoryRendersPlaceholder(t *testing.T) {
	c := Layout(nil, 400, 160)

	assert.True(t, c.Empty())
	assert.Equal(t, Placeholder, c.Placeholder)
	assert.Empty(t, c.Bars)
}

func TestLayoutUsesLastFourteenInDateOrder(t *testing.T) {
	var history []mood.DailySummary
	// reverse order on purpose
	for day := 20; day >= 1; day-- {
		history = append(history, mood.DailySummary{
			Date: fmt.Sprintf("2024-01-%02d", day),
			Mood: mood.Level(day % 5),
		})
	}

	c := Layout(history, 400, 160)

	require.Len(t, c.Bars, MaxDays)
	for i, bar := range c.Bars {
		assert.Equal(t, fmt.Sprintf("2024-01-%02d", i+7), bar.Date)
		if i > 0 {
			assert.Greater(t, bar.Rect.X0, c.Bars[i-1].Rect.X0)
		}
	}
}

func TestLayoutBarHeightsAndColors(t *testing.T) {
	history := []mood.DailySummary{
		{Date: "2024-01-01", Mood: mood.Angry},
		{Date: "2024-01-02", Mood: mood.Okay},
		{Date: "2024-01-03", Mood: mood.Happy},
	}

	c := Layout(history, 300, 160)

	require.Len(t, c.Bars, 3)
	plotH := c.Plot.Height()
	assert.InDelta(t, 136, plotH, 0.001)
	assert.InDelta(t, 0, c.Bars[0].Rect.Height(), 0.001)
	assert.InDelta(t, plotH/2, c.Bars[1].Rect.Height(), 0.001)
	assert.InDelta(t, plotH, c.Bars[2].Rect.Height(), 0.001)

	for _, b := range c.Bars {
		assert.Equal(t, c.Plot.Y1, b.Rect.Y1)
		assert.Equal(t, b.Mood.Color(), b.Color)
	}

	barW := c.Plot.Width() / 3
	assert.InDelta(t, c.Plot.X0+BarInset, c.Bars[0].Rect.X0, 0.001)
	assert.InDelta(t, barW-2*BarInset, c.Bars[0].Rect.Width(), 0.001)
}

func TestLayoutIsDeterministic(t *testing.T) {
	history := []mood.DailySummary{{Date: "2024-01-01", Mood: mood.Good}}
	assert.Equal(t, Layout(history, 200, 100), Layout(history, 200, 100))
}

func TestLayoutTinyFrameDoesNotInvertBars(t *testing.T) {
	history := make([]mood.DailySummary, 14)
	for i := range history {
		history[i] = mood.DailySummary{Date: fmt.Sprintf("2024-02-%02d", i+1), Mood: mood.Good}
	}

	c := Layout(history, 30, 10)

	for _, b := range c.Bars {
		assert.GreaterOrEqual(t, b.Rect.Width(), float32(0))
		assert.GreaterOrEqual(t, b.Rect.Height(), float32(0))
	}
}
