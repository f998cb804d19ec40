package raster

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mood-weather/internal/mood"
	"mood-weather/internal/mood/chart"
)

func TestRenderPaintsBarsInMoodColor(t *testing.T) {
	c := chart.Layout([]mood.DailySummary{{Date: "2024-01-05", Mood: mood.Happy}}, 200, 120)
	bar := c.Bars[0].Rect

	img, err := Render(c)
	require.NoError(t, err)

	r, g, b, _ := img.At(int(bar.X0+bar.X1)/2, int(bar.Y0+bar.Y1)/2).RGBA()
	want := mood.Happy.Color()
	assert.Equal(t, uint32(want.R), r>>8)
	assert.Equal(t, uint32(want.G), g>>8)
	assert.Equal(t, uint32(want.B), b>>8)
}

func TestEncodeWritesPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, chart.Layout(nil, 160, 80)))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 160, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
}

func TestRenderRejectsEmptyFrame(t *testing.T) {
	_, err := Render(chart.Chart{})
	assert.Error(t, err)
}

func TestHersheyTextIsASCII(t *testing.T) {
	assert.Equal(t, "No data yet - log a mood!", hersheyText(chart.Placeholder))
	assert.Equal(t, "caf? ok", hersheyText("café ok"))
}
