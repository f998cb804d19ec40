package timing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	operation string
	elapsed   time.Duration
}

type sliceRecorder struct{ got []recorded }

func (s *sliceRecorder) Record(operation string, elapsed time.Duration) {
	s.got = append(s.got, recorded{operation, elapsed})
}

func TestTrackerRecordsElapsed(t *testing.T) {
	rec := &sliceRecorder{}
	tr := NewTracker(rec)

	clock := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	tr.now = func() time.Time { return clock }

	ctx := tr.StartTiming(context.Background(), "geocode")
	clock = clock.Add(250 * time.Millisecond)
	tr.EndTiming(ctx)

	require.Len(t, rec.got, 1)
	assert.Equal(t, "geocode", rec.got[0].operation)
	assert.Equal(t, 250*time.Millisecond, rec.got[0].elapsed)
	assert.Equal(t, []time.Duration{250 * time.Millisecond}, tr.GetTimings("geocode"))
	assert.Equal(t, 250*time.Millisecond, tr.GetAverageTime("geocode"))
}

func TestTrackerDisabledIsInert(t *testing.T) {
	rec := &sliceRecorder{}
	tr := NewTracker(rec)
	tr.SetEnabled(false)

	ctx := tr.StartTiming(context.Background(), "forecast")
	tr.EndTiming(ctx)

	assert.Empty(t, rec.got)
	assert.Nil(t, tr.GetTimings("forecast"))
	assert.Zero(t, tr.GetAverageTime("forecast"))
}

func TestEndTimingWithoutStartIsIgnored(t *testing.T) {
	tr := NewTracker(nil)
	tr.EndTiming(context.Background())
	assert.Nil(t, tr.GetTimings("anything"))
}

func TestOperationsAreSorted(t *testing.T) {
	tr := NewTracker(nil)
	for _, op := range []string{"forecast", "archive", "forecast", "geocode"} {
		tr.EndTiming(tr.StartTiming(context.Background(), op))
	}

	assert.Equal(t, []string{"archive", "forecast", "geocode"}, tr.Operations())
}
