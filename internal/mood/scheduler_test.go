package mood

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPromptSchedulerFiresAfterInterval(t *testing.T) {
	start := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)
	s := NewPromptScheduler(start, 5*time.Second)

	assert.False(t, s.Due(start))
	assert.False(t, s.Due(start.Add(4900*time.Millisecond)))
	assert.True(t, s.Due(start.Add(5*time.Second)))
	assert.Equal(t, start.Add(10*time.Second), s.Next())
	assert.False(t, s.Due(start.Add(6*time.Second)))
}

func TestPromptSchedulerCollapsesMissedTicks(t *testing.T) {
	start := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)
	s := NewPromptScheduler(start, 5*time.Second)

	// an hour of suspend
	wake := start.Add(time.Hour)
	assert.True(t, s.Due(wake))
	assert.False(t, s.Due(wake.Add(100*time.Millisecond)))
	assert.Equal(t, wake.Add(5*time.Second), s.Next())
}
