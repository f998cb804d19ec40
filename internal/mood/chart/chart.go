// Package chart lays out the mood bar chart. It is pure geometry; fyne and
// the PNG rasteriser both draw from the same Chart.
package chart

import (
	"image/color"
	"sort"

	"mood-weather/internal/mood"
)

const (
	MaxDays     = 14
	Margin      = 12
	BarInset    = 4
	Title       = "Last 14 days"
	Placeholder = "No data yet — log a mood!"
)

var (
	Background = color.NRGBA{R: 20, G: 20, B: 20, A: 255}
	Border     = color.NRGBA{R: 80, G: 80, B: 80, A: 255}
	TextColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

type Rect struct {
	X0, Y0, X1, Y1 float32
}

func (r Rect) Width() float32  { return r.X1 - r.X0 }
func (r Rect) Height() float32 { return r.Y1 - r.Y0 }

type Bar struct {
	Date  string
	Mood  mood.Level
	Rect  Rect
	Color color.NRGBA
}

// Chart is the full drawing for one frame. Exactly one of Bars and
// Placeholder is set.
type Chart struct {
	Frame       Rect
	Plot        Rect
	Bars        []Bar
	Placeholder string
}

func (c Chart) Empty() bool { return c.Placeholder != "" }

// Recent returns at most MaxDays summaries, the latest ones, in date order.
func Recent(history []mood.DailySummary) []mood.DailySummary {
	sorted := make([]mood.DailySummary, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	if len(sorted) > MaxDays {
		sorted = sorted[len(sorted)-MaxDays:]
	}
	return sorted
}

// Layout places one bar per recent day inside a width×height frame.
func Layout(history []mood.DailySummary, width, height float32) Chart {
	c := Chart{Frame: Rect{0, 0, width, height}}
	c.Plot = Rect{Margin, Margin, width - Margin, height - Margin}
	if c.Plot.X1 < c.Plot.X0 {
		c.Plot.X1 = c.Plot.X0
	}
	if c.Plot.Y1 < c.Plot.Y0 {
		c.Plot.Y1 = c.Plot.Y0
	}

	days := Recent(history)
	if len(days) == 0 {
		c.Placeholder = Placeholder
		return c
	}

	barW := c.Plot.Width() / float32(len(days))
	c.Bars = make([]Bar, 0, len(days))
	for i, d := range days {
		x0 := c.Plot.X0 + float32(i)*barW + BarInset
		x1 := x0 + barW - 2*BarInset
		if x1 < x0 {
			x1 = x0
		}

		h := clamp01(float32(d.Mood)/float32(mood.MaxLevel)) * c.Plot.Height()
		y1 := c.Plot.Y1

		c.Bars = append(c.Bars, Bar{
			Date:  d.Date,
			Mood:  d.Mood,
			Rect:  Rect{x0, y1 - h, x1, y1},
			Color: d.Mood.Color(),
		})
	}
	return c
}

func clamp01(v float32) float32 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
