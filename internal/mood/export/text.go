// Package export flattens the mood entry log into plain text or PDF.
package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mood-weather/internal/mood"
)

const DocumentTitle = "Mood Tracker — Session Log"

var ErrNoEntries = errors.New("no entries to save yet")

// Line renders one entry the way it appears in every export.
func Line(e mood.Entry) string {
	return fmt.Sprintf("%s — %s", e.Timestamp, e.Mood.Name())
}

func Lines(entries []mood.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = Line(e)
	}
	return out
}

// Text renders the session log document.
func Text(entries []mood.Entry) (string, error) {
	if len(entries) == 0 {
		return "", ErrNoEntries
	}

	var b strings.Builder
	b.WriteString(DocumentTitle + "\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for _, e := range entries {
		b.WriteString(Line(e))
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// DefaultFileName suggests session_log_YYYYMMDD_HHMMSS.<ext>.
func DefaultFileName(ext string, now time.Time) string {
	return fmt.Sprintf("session_log_%s.%s", now.Format("20060102_150405"), ext)
}
