// Package moodview is the Mood Tracker window: a Controller holding the
// operations and their status strings, and a fyne View driving it.
package moodview

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"mood-weather/internal/debug"
	"mood-weather/internal/mood"
	"mood-weather/internal/mood/chart"
	"mood-weather/internal/mood/export"
)

const (
	StatusNoEntries    = "No entries to save yet."
	StatusNoFont       = "PDF export cancelled (no font selected)."
	StatusPDFCancelled = "PDF export cancelled."

	ChartExportWidth  = 640
	ChartExportHeight = 160
)

// Dialogs are the file pickers the exports need. Callbacks receive a nil
// reader or writer when the user cancels.
type Dialogs interface {
	OpenFont(callback func(font io.ReadCloser, err error))
	SaveFile(defaultName string, extensions []string, callback func(w io.WriteCloser, path string, err error))
}

type Saver interface {
	Save(settings mood.Settings) error
}

// ChartEncoder writes a chart image; the application wires the OpenCV
// rasteriser in.
type ChartEncoder func(w io.Writer, c chart.Chart) error

// Controller runs on the UI goroutine only.
type Controller struct {
	tracker   *mood.Tracker
	saver     Saver
	scheduler *mood.PromptScheduler
	dialogs   Dialogs
	encode    ChartEncoder
	logger    debug.Logger
	timing    debug.TimingTracker
	now       func() time.Time

	status   string
	onChange func()
}

func NewController(tracker *mood.Tracker, saver Saver, scheduler *mood.PromptScheduler, dialogs Dialogs, encode ChartEncoder, dc debug.Coordinator) *Controller {
	return &Controller{
		tracker:   tracker,
		saver:     saver,
		scheduler: scheduler,
		dialogs:   dialogs,
		encode:    encode,
		logger:    dc.Logger(),
		timing:    dc.TimingTracker(),
		now:       time.Now,
	}
}

// SetOnChange registers the view refresh hook, called after any state change.
func (c *Controller) SetOnChange(fn func()) {
	c.onChange = fn
}

func (c *Controller) Status() string { return c.status }

func (c *Controller) PromptVisible() bool { return c.tracker.PromptVisible() }

func (c *Controller) NextPrompt() time.Time { return c.scheduler.Next() }

func (c *Controller) setStatus(status string) {
	c.status = status
	c.changed()
}

func (c *Controller) changed() {
	if c.onChange != nil {
		c.onChange()
	}
}

// Pick records level for now. Used by both the main buttons and the prompt.
// Levels outside the five moods are ignored.
func (c *Controller) Pick(level mood.Level) {
	if !level.Valid() {
		c.logger.Warning("MoodController", "ignored unknown mood", map[string]interface{}{
			"mood": int(level),
		})
		return
	}
	c.tracker.Record(level, c.now())
	c.logger.Info("MoodController", "mood recorded", map[string]interface{}{
		"mood": level.Name(),
	})
	c.changed()
}

func (c *Controller) Skip() {
	c.tracker.DismissPrompt()
	c.logger.Debug("MoodController", "prompt skipped", nil)
	c.changed()
}

// Tick is the redraw step: it raises the prompt when the schedule is due and
// saves pending changes. It reports whether the prompt was raised.
func (c *Controller) Tick(now time.Time) bool {
	raised := false
	if c.scheduler.Due(now) {
		c.tracker.ShowPrompt()
		raised = true
	}

	c.Flush()
	return raised
}

// Flush saves pending changes now. Failures are logged only.
func (c *Controller) Flush() {
	if err := c.tracker.Flush(c.saver.Save); err != nil {
		c.logger.Error("MoodController", err, map[string]interface{}{
			"operation": "save_settings",
		})
	}
}

// SessionLines is the visible log, newest first.
func (c *Controller) SessionLines() []string {
	entries := c.tracker.Entries()
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[len(entries)-1-i] = fmt.Sprintf("%s  —  %s", e.Timestamp, e.Mood.Name())
	}
	return lines
}

func (c *Controller) History() []mood.DailySummary {
	return c.tracker.SortedHistory()
}

// SaveText asks for a destination and writes the plain-text log. Cancelling
// the dialog leaves the status unchanged.
func (c *Controller) SaveText() {
	entries := c.tracker.Entries()
	content, err := export.Text(entries)
	if errors.Is(err, export.ErrNoEntries) {
		c.setStatus(StatusNoEntries)
		return
	}

	name := export.DefaultFileName("txt", c.now())
	c.dialogs.SaveFile(name, []string{".txt"}, func(w io.WriteCloser, path string, err error) {
		if err != nil {
			c.fail("Failed to save TXT: %v", err, "save_txt")
			return
		}
		if w == nil {
			return
		}

		if err := writeAndClose(w, []byte(content)); err != nil {
			c.fail("Failed to save TXT: %v", err, "save_txt")
			return
		}
		c.saved(path, "save_txt", len(entries))
	})
}

// SavePDF picks a font, then a destination, then renders. The document is
// built in memory so a bad font never leaves a partial PDF behind.
func (c *Controller) SavePDF() {
	entries := c.tracker.Entries()
	if len(entries) == 0 {
		c.setStatus(StatusNoEntries)
		return
	}

	c.dialogs.OpenFont(func(font io.ReadCloser, err error) {
		if err != nil {
			c.fail("Failed to open font: %v", err, "save_pdf")
			return
		}
		if font == nil {
			c.setStatus(StatusNoFont)
			return
		}

		name := export.DefaultFileName("pdf", c.now())
		c.dialogs.SaveFile(name, []string{".pdf"}, func(w io.WriteCloser, path string, err error) {
			defer font.Close()
			if err != nil {
				c.fail("Failed to save PDF: %v", err, "save_pdf")
				return
			}
			if w == nil {
				c.setStatus(StatusPDFCancelled)
				return
			}

			data, err := io.ReadAll(font)
			if err != nil {
				w.Close()
				c.fail("Failed to open font: %v", err, "save_pdf")
				return
			}

			ctx := c.timing.StartTiming(context.Background(), "pdf_export")
			var buf bytes.Buffer
			err = export.PDF(&buf, entries, data)
			c.timing.EndTiming(ctx)
			if err != nil {
				w.Close()
				if errors.Is(err, export.ErrFontLoad) {
					c.fail("Failed to load font: %v", err, "save_pdf")
				} else {
					c.fail("Failed to save PDF: %v", err, "save_pdf")
				}
				return
			}

			if err := writeAndClose(w, buf.Bytes()); err != nil {
				c.fail("Failed to save PDF: %v", err, "save_pdf")
				return
			}
			c.saved(path, "save_pdf", len(entries))
		})
	})
}

// SaveChart writes the current chart as a PNG.
func (c *Controller) SaveChart() {
	layout := chart.Layout(c.tracker.SortedHistory(), ChartExportWidth, ChartExportHeight)
	name := fmt.Sprintf("mood_chart_%s.png", c.now().Format("20060102_150405"))

	c.dialogs.SaveFile(name, []string{".png"}, func(w io.WriteCloser, path string, err error) {
		if err != nil {
			c.fail("Failed to save PNG: %v", err, "save_png")
			return
		}
		if w == nil {
			return
		}

		var buf bytes.Buffer
		if err := c.encode(&buf, layout); err != nil {
			w.Close()
			c.fail("Failed to save PNG: %v", err, "save_png")
			return
		}
		if err := writeAndClose(w, buf.Bytes()); err != nil {
			c.fail("Failed to save PNG: %v", err, "save_png")
			return
		}
		c.saved(path, "save_png", len(layout.Bars))
	})
}

func (c *Controller) fail(format string, err error, operation string) {
	c.logger.Error("MoodController", err, map[string]interface{}{"operation": operation})
	c.setStatus(fmt.Sprintf(format, err))
}

func (c *Controller) saved(path, operation string, count int) {
	c.logger.Info("MoodController", "export saved", map[string]interface{}{
		"operation": operation,
		"path":      path,
		"count":     count,
	})
	c.setStatus(fmt.Sprintf("Saved: %s", path))
}

func writeAndClose(w io.WriteCloser, data []byte) error {
	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}
