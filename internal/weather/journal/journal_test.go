package journal

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mood-weather/internal/weather"
)

func sample(city string, tmax float64) weather.FetchedWeather {
	return weather.FetchedWeather{
		Timestamp:       "2024-01-06 09:00:00",
		City:            city,
		State:           "Texas",
		Date:            "2024-01-05",
		Latitude:        30.2671530,
		Longitude:       -97.7430608,
		Timezone:        "America/Chicago",
		Source:          "forecast",
		TempMaxC:        tmax,
		TempMinC:        3.14159,
		PrecipitationMM: 0.005,
	}
}

func newJournal(t *testing.T) *Journal {
	t.Helper()
	return New(DefaultPath(t.TempDir()))
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	entries, err := newJournal(t).Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestAppendCreatesFileAndLoadsInOrder(t *testing.T) {
	j := newJournal(t)
	_, err := os.Stat(filepath.Dir(j.Path()))
	require.True(t, os.IsNotExist(err))

	require.NoError(t, j.Append(sample("Austin", 14)))
	require.NoError(t, j.Append(sample("Dallas", 11)))

	entries, err := j.Load()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Austin", entries[0].City)
	assert.Equal(t, "Dallas", entries[1].City)
	assert.Equal(t, sample("Austin", 14), entries[0])
}

func TestLoadSkipsMalformedLines(t *testing.T) {
	j := newJournal(t)
	require.NoError(t, j.Append(sample("Austin", 14)))

	f, err := os.OpenFile(j.Path(), os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("{\"city\": \"broken\"\n\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, j.Append(sample("Dallas", 11)))

	entries, err := j.Load()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "Austin", entries[0].City)
	assert.Equal(t, "Dallas", entries[1].City)
}

func TestLoadSkipsOversizedLine(t *testing.T) {
	j := newJournal(t)
	require.NoError(t, j.Append(sample("Austin", 14)))

	f, err := os.OpenFile(j.Path(), os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString(strings.Repeat("x", 2<<20) + "\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	require.NoError(t, j.Append(sample("Dallas", 11)))
	require.NoError(t, j.Append(sample("Houston", 17)))

	entries, err := j.Load()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "Austin", entries[0].City)
	assert.Equal(t, "Dallas", entries[1].City)
	assert.Equal(t, "Houston", entries[2].City)
}

func TestLoadReadsFinalLineWithoutNewline(t *testing.T) {
	j := newJournal(t)
	require.NoError(t, j.Append(sample("Austin", 14)))

	data, err := os.ReadFile(j.Path())
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(j.Path(), []byte(strings.TrimRight(string(data), "\n")), 0o644))

	entries, err := j.Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Austin", entries[0].City)
}

func TestClearThenLoadIsEmpty(t *testing.T) {
	j := newJournal(t)
	require.NoError(t, j.Append(sample("Austin", 14)))

	require.NoError(t, j.Clear())

	info, err := os.Stat(j.Path())
	require.NoError(t, err)
	assert.Zero(t, info.Size())

	entries, err := j.Load()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestClearWithoutExistingLog(t *testing.T) {
	j := newJournal(t)
	require.NoError(t, j.Clear())
	assert.FileExists(t, j.Path())
}

func TestExportCSVFormatting(t *testing.T) {
	j := newJournal(t)

	path, err := j.ExportCSV([]weather.FetchedWeather{sample("Austin", 14.256)})
	require.NoError(t, err)
	assert.Equal(t, strings.TrimSuffix(j.Path(), ".jsonl")+".csv", path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"timestamp,city,state,date,latitude,longitude,timezone,source,temp_max_c,temp_min_c,precipitation_mm\n"+
			"2024-01-06 09:00:00,Austin,Texas,2024-01-05,30.26715,-97.74306,America/Chicago,forecast,14.26,3.14,0.01\n",
		string(data))
}

func TestExportAfterClearUsesInMemoryEntries(t *testing.T) {
	j := newJournal(t)
	stale := []weather.FetchedWeather{sample("Austin", 14), sample("Dallas", 11)}
	for _, e := range stale {
		require.NoError(t, j.Append(e))
	}
	require.NoError(t, j.Clear())

	path, err := j.ExportCSV(stale)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "2024-01-06 09:00:00,Austin,"))
	assert.True(t, strings.HasPrefix(lines[2], "2024-01-06 09:00:00,Dallas,"))
}

func TestExportEmptyWritesHeaderOnly(t *testing.T) {
	path, err := newJournal(t).ExportCSV(nil)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(CSVHeader, ",")+"\n", string(data))
}
