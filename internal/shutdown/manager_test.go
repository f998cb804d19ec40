package shutdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"mood-weather/internal/logger"
)

func TestShutdownRunsInReverseOrderOnce(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})

	var order []string
	m.Register("journal", Func(func() { order = append(order, "journal") }))
	m.Register("session", Func(func() { order = append(order, "session") }))

	m.Shutdown()
	m.Shutdown()

	assert.Equal(t, []string{"session", "journal"}, order)
	assert.Error(t, m.Context().Err())

	select {
	case <-m.Done():
	default:
		t.Fatal("done channel not closed")
	}
}

func TestShutdownDoesNotWaitForeverOnStuckComponent(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})
	m.timeout = 20 * time.Millisecond

	block := make(chan struct{})
	defer close(block)
	m.Register("stuck", Func(func() { <-block }))

	finished := make(chan struct{})
	go func() {
		m.Shutdown()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("shutdown blocked on stuck component")
	}
}

func TestRequestCancelsContextWithoutRunningComponents(t *testing.T) {
	m := NewManager(logger.NoOpLogger{})
	ran := false
	m.Register("flush", Func(func() { ran = true }))

	m.Request()

	assert.Error(t, m.Context().Err())
	assert.False(t, ran)
	select {
	case <-m.Done():
		t.Fatal("done closed before Shutdown")
	default:
	}

	m.Shutdown()
	assert.True(t, ran)
}
