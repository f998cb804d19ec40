package export

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"

	"mood-weather/internal/mood"
)

func TestWrapWidthForA4(t *testing.T) {
	assert.Equal(t, 72, A4.WrapWidth())

	narrow := A4
	narrow.Width = 60
	assert.Equal(t, 25, narrow.WrapWidth())
}

func TestWrapIsCharacterBased(t *testing.T) {
	assert.Equal(t, []string{"short"}, Wrap("short", 10))
	assert.Equal(t, []string{"abcd", "efgh", "ij"}, Wrap("abcdefghij", 4))
	// multi-byte runes are never split
	assert.Equal(t, []string{"——", "——"}, Wrap("————", 2))
}

func TestPaginateFirstPageStartsBelowRule(t *testing.T) {
	pages := A4.Paginate([]string{"one", "two"})

	require.Len(t, pages, 1)
	assert.Equal(t, []PlacedLine{{Y: 31, Text: "one"}, {Y: 37, Text: "two"}}, pages[0].Lines)
	assert.Equal(t, 15.0, A4.TitleY())
	assert.Equal(t, 25.0, A4.RuleY())
}

func TestPaginateBreaksBeforeBottomMargin(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d", i)
	}

	pages := A4.Paginate(lines)

	require.Len(t, pages, 3)
	assert.Len(t, pages[0].Lines, 40)
	assert.Len(t, pages[1].Lines, 43)
	assert.Len(t, pages[2].Lines, 17)
	assert.Equal(t, 15.0, pages[1].Lines[0].Y)
	assert.Equal(t, "line 40", pages[1].Lines[0].Text)

	limit := A4.Height - A4.MarginBottom - A4.LineHeight
	for _, p := range pages {
		for _, l := range p.Lines {
			assert.Less(t, l.Y, limit)
		}
	}
}

func TestPaginateWrapsLongLines(t *testing.T) {
	long := strings.Repeat("x", 150)

	pages := A4.Paginate([]string{long})

	require.Len(t, pages[0].Lines, 3)
	assert.Len(t, pages[0].Lines[0].Text, 72)
	assert.Len(t, pages[0].Lines[2].Text, 6)
}

func TestPDFWritesDocument(t *testing.T) {
	entries := []mood.Entry{
		{Timestamp: "2024-01-05 09:00:00", Mood: mood.Good},
		{Timestamp: "2024-01-05 10:00:00", Mood: mood.Sad},
	}

	var buf bytes.Buffer
	require.NoError(t, PDF(&buf, entries, goregular.TTF))

	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestPDFFailures(t *testing.T) {
	entries := []mood.Entry{{Timestamp: "2024-01-05 09:00:00", Mood: mood.Good}}

	var buf bytes.Buffer
	assert.ErrorIs(t, PDF(&buf, nil, goregular.TTF), ErrNoEntries)
	assert.ErrorIs(t, PDF(&buf, entries, []byte("not a font")), ErrFontLoad)
	assert.Zero(t, buf.Len())
}
