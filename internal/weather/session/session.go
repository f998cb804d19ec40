// Package session holds the Weather App state owned by the UI goroutine: the
// form, the busy flag, the last result and the in-memory log mirror. Fetches
// run on a background goroutine and report back through a channel that the
// UI drains once per frame.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"mood-weather/internal/debug"
	"mood-weather/internal/weather"
)

const (
	StatusReady    = "Ready"
	StatusFetching = "Fetching…"
	StatusCleared  = "Log cleared"

	DefaultCity  = "Phoenix"
	DefaultState = "AZ"
)

type Fetcher interface {
	Fetch(ctx context.Context, city, state string, date time.Time) (weather.FetchedWeather, error)
}

// Journal is the persistent side of the log mirror.
type Journal interface {
	Path() string
	Append(entry weather.FetchedWeather) error
	ExportCSV(entries []weather.FetchedWeather) (string, error)
	Clear() error
}

// Outcome is the single message a fetch goroutine sends before exiting.
type Outcome struct {
	Result weather.FetchedWeather
	Err    error
}

// Session is not safe for concurrent use; every method except the fetch
// goroutine body runs on the UI goroutine.
type Session struct {
	City  string
	State string
	Date  time.Time

	Status  string
	Loading bool
	Last    *weather.FetchedWeather
	Entries []weather.FetchedWeather

	ctx     context.Context
	fetcher Fetcher
	journal Journal
	logger  debug.Logger
	results chan Outcome
	wg      sync.WaitGroup
}

// New builds a session seeded with previously logged entries. ctx bounds the
// background fetches and is normally the process shutdown context.
func New(ctx context.Context, fetcher Fetcher, journal Journal, entries []weather.FetchedWeather, dc debug.Coordinator) *Session {
	return &Session{
		City:    DefaultCity,
		State:   DefaultState,
		Date:    time.Now(),
		Status:  StatusReady,
		Entries: entries,
		ctx:     ctx,
		fetcher: fetcher,
		journal: journal,
		logger:  dc.Logger(),
		results: make(chan Outcome, 4),
	}
}

// StartFetch snapshots the trimmed form and runs one fetch in the background.
// It does nothing and returns false while a fetch is already pending.
func (s *Session) StartFetch() bool {
	if s.Loading {
		return false
	}
	city, state := weather.TrimInputs(s.City, s.State)
	date := s.Date

	s.Loading = true
	s.Status = StatusFetching

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		result, err := s.fetcher.Fetch(s.ctx, city, state, date)
		s.results <- Outcome{Result: result, Err: err}
	}()
	return true
}

// Drain applies every outcome already waiting without blocking and reports
// how many it applied.
func (s *Session) Drain() int {
	n := 0
	for {
		select {
		case out := <-s.results:
			s.apply(out)
			n++
		default:
			return n
		}
	}
}

func (s *Session) apply(out Outcome) {
	s.Loading = false
	if out.Err != nil {
		s.Status = fmt.Sprintf("Error: %v", out.Err)
		return
	}

	result := out.Result
	s.Status = weather.Describe(result)
	s.Last = &result
	if err := s.journal.Append(result); err != nil {
		s.logger.Error("Session", err, map[string]interface{}{"path": s.journal.Path()})
		s.Status = fmt.Sprintf("Saved result, but failed to log: %v", err)
	}
	s.Entries = append(s.Entries, result)
}

// ExportCSV writes the in-memory entries next to the log.
func (s *Session) ExportCSV() {
	path, err := s.journal.ExportCSV(s.Entries)
	if err != nil {
		s.logger.Error("Session", err, map[string]interface{}{"operation": "export_csv"})
		s.Status = fmt.Sprintf("Export failed: %v", err)
		return
	}
	s.logger.Info("Session", "csv exported", map[string]interface{}{"path": path, "entries": len(s.Entries)})
	s.Status = fmt.Sprintf("Exported CSV alongside log at %s", s.journal.Path())
}

// ClearLog empties the log file and, only if that worked, the mirror.
func (s *Session) ClearLog() {
	if err := s.journal.Clear(); err != nil {
		s.logger.Error("Session", err, map[string]interface{}{"operation": "clear_log"})
		s.Status = fmt.Sprintf("Clear failed: %v", err)
		return
	}
	s.Entries = nil
	s.Status = StatusCleared
}

// Newest returns the entries newest first.
func (s *Session) Newest() []weather.FetchedWeather {
	out := make([]weather.FetchedWeather, len(s.Entries))
	for i, e := range s.Entries {
		out[len(s.Entries)-1-i] = e
	}
	return out
}

// Shutdown waits for in-flight fetches to deliver, bounded by ctx.
func (s *Session) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
