// Package journal keeps the local weather log: one JSON record per line,
// appended on every successful fetch, with a sibling CSV export.
package journal

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"mood-weather/internal/weather"
)

const FileName = "weather_log.jsonl"

// CSVHeader is the fixed column order of the export.
var CSVHeader = []string{
	"timestamp", "city", "state", "date", "latitude", "longitude",
	"timezone", "source", "temp_max_c", "temp_min_c", "precipitation_mm",
}

type Journal struct {
	path string
}

func New(path string) *Journal {
	return &Journal{path: path}
}

// DefaultPath is the log location under an application data directory.
func DefaultPath(dataDir string) string {
	return filepath.Join(dataDir, "local_weather_app", FileName)
}

func (j *Journal) Path() string { return j.path }

// CSVPath is the log path with its extension replaced by .csv.
func (j *Journal) CSVPath() string {
	return strings.TrimSuffix(j.path, filepath.Ext(j.path)) + ".csv"
}

// Load reads every parseable record in file order. Blank and malformed lines
// are skipped. A missing file is an empty log.
func (j *Journal) Load() ([]weather.FetchedWeather, error) {
	f, err := os.Open(j.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open log %s: %w", j.path, err)
	}
	defer f.Close()

	var entries []weather.FetchedWeather
	r := bufio.NewReader(f)
	for {
		raw, rerr := r.ReadBytes('\n')
		if line := bytes.TrimSpace(raw); len(line) > 0 {
			var e weather.FetchedWeather
			if err := json.Unmarshal(line, &e); err == nil {
				entries = append(entries, e)
			}
		}
		if errors.Is(rerr, io.EOF) {
			return entries, nil
		}
		if rerr != nil {
			return entries, fmt.Errorf("read log %s: %w", j.path, rerr)
		}
	}
}

// Append writes entry as one line, creating the directory and file as needed.
func (j *Journal) Append(entry weather.FetchedWeather) error {
	if err := os.MkdirAll(filepath.Dir(j.path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode log line: %w", err)
	}

	f, err := os.OpenFile(j.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log for append: %s: %w", j.path, err)
	}
	if _, err := f.Write(append(line, '\n')); err != nil {
		f.Close()
		return fmt.Errorf("write log line: %w", err)
	}
	return f.Close()
}

// ExportCSV rewrites the CSV sibling of the log from entries and returns its
// path. The log file itself is not read.
func (j *Journal) ExportCSV(entries []weather.FetchedWeather) (string, error) {
	path := j.CSVPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	w := csv.NewWriter(f)
	if err := w.Write(CSVHeader); err != nil {
		f.Close()
		return "", err
	}
	for _, e := range entries {
		if err := w.Write(Record(e)); err != nil {
			f.Close()
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return "", err
	}
	return path, f.Close()
}

// Record is the CSV row for e: coordinates to 5 decimals, temperatures and
// precipitation to 2.
func Record(e weather.FetchedWeather) []string {
	return []string{
		e.Timestamp,
		e.City,
		e.State,
		e.Date,
		strconv.FormatFloat(e.Latitude, 'f', 5, 64),
		strconv.FormatFloat(e.Longitude, 'f', 5, 64),
		e.Timezone,
		e.Source,
		strconv.FormatFloat(e.TempMaxC, 'f', 2, 64),
		strconv.FormatFloat(e.TempMinC, 'f', 2, 64),
		strconv.FormatFloat(e.PrecipitationMM, 'f', 2, 64),
	}
}

// Clear replaces the log with an empty file. The CSV export is left alone.
func (j *Journal) Clear() error {
	if err := os.Remove(j.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove log: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(j.path), 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.Create(j.path)
	if err != nil {
		return err
	}
	return f.Close()
}
