package timing

import (
	"context"
	"sort"
	"sync"
	"time"
)

type timingKey struct{}

// Recorder receives every completed measurement. The debug coordinator
// forwards them to the logger.
type Recorder interface {
	Record(operation string, elapsed time.Duration)
}

type TimingInfo struct {
	Operation string
	StartTime time.Time
}

type Tracker struct {
	timings  map[string][]time.Duration
	mu       sync.RWMutex
	recorder Recorder
	enabled  bool
	now      func() time.Time
}

func NewTracker(recorder Recorder) *Tracker {
	return &Tracker{
		timings:  make(map[string][]time.Duration),
		recorder: recorder,
		enabled:  true,
		now:      time.Now,
	}
}

// StartTiming derives a context carrying the start of operation.
func (tt *Tracker) StartTiming(ctx context.Context, operation string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if !tt.isEnabled() {
		return ctx
	}

	return context.WithValue(ctx, timingKey{}, TimingInfo{
		Operation: operation,
		StartTime: tt.now(),
	})
}

func (tt *Tracker) EndTiming(ctx context.Context) {
	if !tt.isEnabled() {
		return
	}

	info, ok := ctx.Value(timingKey{}).(TimingInfo)
	if !ok {
		return
	}

	elapsed := tt.now().Sub(info.StartTime)

	tt.mu.Lock()
	tt.timings[info.Operation] = append(tt.timings[info.Operation], elapsed)
	tt.mu.Unlock()

	if tt.recorder != nil {
		tt.recorder.Record(info.Operation, elapsed)
	}
}

func (tt *Tracker) GetTimings(operation string) []time.Duration {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	timings := tt.timings[operation]
	if timings == nil {
		return nil
	}

	result := make([]time.Duration, len(timings))
	copy(result, timings)
	return result
}

// Operations lists every operation with at least one measurement, sorted.
func (tt *Tracker) Operations() []string {
	tt.mu.RLock()
	defer tt.mu.RUnlock()

	ops := make([]string, 0, len(tt.timings))
	for op := range tt.timings {
		ops = append(ops, op)
	}
	sort.Strings(ops)
	return ops
}

func (tt *Tracker) GetAverageTime(operation string) time.Duration {
	timings := tt.GetTimings(operation)
	if len(timings) == 0 {
		return 0
	}

	var total time.Duration
	for _, d := range timings {
		total += d
	}
	return total / time.Duration(len(timings))
}

func (tt *Tracker) SetEnabled(enabled bool) {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	tt.enabled = enabled
}

func (tt *Tracker) isEnabled() bool {
	tt.mu.RLock()
	defer tt.mu.RUnlock()
	return tt.enabled
}
