// Package mood holds the Mood Tracker's state: the fixed mood scale, the
// append-only entry log, the per-day rollup and the prompt scheduler.
package mood

import (
	"image/color"
	"time"
)

const (
	TimestampLayout = "2006-01-02 15:04:05"
	DateLayout      = "2006-01-02"
)

// Level is a mood value on the fixed 0..4 scale.
type Level int

const (
	Angry Level = iota
	Sad
	Okay
	Good
	Happy
)

// MaxLevel is the top of the scale; chart bar heights are relative to it.
const MaxLevel = Happy

// Levels lists the scale from best to worst, the order the buttons appear in.
var Levels = []Level{Happy, Good, Okay, Sad, Angry}

// Name returns the display name. Values outside the scale read as Angry.
func (l Level) Name() string {
	switch l {
	case Happy:
		return "Happy"
	case Good:
		return "Good"
	case Okay:
		return "Okay"
	case Sad:
		return "Sad"
	default:
		return "Angry"
	}
}

func (l Level) Color() color.NRGBA {
	switch l {
	case Happy:
		return color.NRGBA{R: 90, G: 220, B: 120, A: 255}
	case Good:
		return color.NRGBA{R: 160, G: 220, B: 120, A: 255}
	case Okay:
		return color.NRGBA{R: 220, G: 220, B: 120, A: 255}
	case Sad:
		return color.NRGBA{R: 230, G: 170, B: 120, A: 255}
	default:
		return color.NRGBA{R: 230, G: 120, B: 120, A: 255}
	}
}

func (l Level) Valid() bool {
	return l >= Angry && l <= Happy
}

// Entry is one recorded mood choice. Entries are never edited or removed.
type Entry struct {
	Timestamp string `toml:"timestamp"`
	Mood      Level  `toml:"mood"`
}

// DailySummary is the latest mood recorded on a calendar day.
type DailySummary struct {
	Date string `toml:"date"`
	Mood Level  `toml:"mood"`
}

// Settings is the persisted unit: both collections, saved together.
type Settings struct {
	History []DailySummary `toml:"history"`
	Entries []Entry        `toml:"entries"`
}

func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}
