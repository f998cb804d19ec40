package mood

import (
	"sort"
	"time"
)

// Tracker is the Mood Tracker's application state. It is owned by the UI
// goroutine and is not safe for concurrent use.
type Tracker struct {
	settings      Settings
	dirty         bool
	promptVisible bool
}

func NewTracker(settings Settings) *Tracker {
	return &Tracker{settings: settings}
}

// Record appends an entry stamped with now and overwrites the rollup for
// now's local date. It marks the state dirty and dismisses the prompt.
func (t *Tracker) Record(level Level, now time.Time) {
	now = now.Local()
	t.settings.Entries = append(t.settings.Entries, Entry{
		Timestamp: now.Format(TimestampLayout),
		Mood:      level,
	})

	key := DateKey(now)
	found := false
	for i := range t.settings.History {
		if t.settings.History[i].Date == key {
			t.settings.History[i].Mood = level
			found = true
			break
		}
	}
	if !found {
		t.settings.History = append(t.settings.History, DailySummary{Date: key, Mood: level})
	}

	t.dirty = true
	t.promptVisible = false
}

// Entries returns a copy of the full log, oldest first.
func (t *Tracker) Entries() []Entry {
	out := make([]Entry, len(t.settings.Entries))
	copy(out, t.settings.Entries)
	return out
}

// SortedHistory sorts the rollup by date and returns a copy.
func (t *Tracker) SortedHistory() []DailySummary {
	sort.SliceStable(t.settings.History, func(i, j int) bool {
		return t.settings.History[i].Date < t.settings.History[j].Date
	})
	out := make([]DailySummary, len(t.settings.History))
	copy(out, t.settings.History)
	return out
}

func (t *Tracker) Settings() Settings {
	return Settings{
		History: append([]DailySummary(nil), t.settings.History...),
		Entries: t.Entries(),
	}
}

// Flush hands the settings to save when dirty. The dirty flag is cleared
// even if save fails so a broken disk does not turn every redraw into a write.
func (t *Tracker) Flush(save func(Settings) error) error {
	if !t.dirty {
		return nil
	}
	t.dirty = false
	return save(t.Settings())
}

func (t *Tracker) ShowPrompt()         { t.promptVisible = true }
func (t *Tracker) DismissPrompt()      { t.promptVisible = false }
func (t *Tracker) PromptVisible() bool { return t.promptVisible }
