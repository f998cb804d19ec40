package debug

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"mood-weather/internal/logger"
)

func TestCoordinatorForwardsTimingsToLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.LogLevel = logger.DebugLevel
	dc := NewCoordinatorWithLogger(cfg, logger.NewZerolog(&buf, logger.DebugLevel))

	tt := dc.TimingTracker()
	ctx := tt.StartTiming(context.Background(), "archive")
	tt.EndTiming(ctx)

	assert.Len(t, tt.GetTimings("archive"), 1)
	assert.Contains(t, buf.String(), `"operation":"archive"`)
}

func TestProductionConfigDisablesTiming(t *testing.T) {
	dc := NewCoordinatorWithLogger(ProductionConfig(), logger.NoOpLogger{})

	tt := dc.TimingTracker()
	tt.EndTiming(tt.StartTiming(context.Background(), "geocode"))

	assert.Nil(t, tt.GetTimings("geocode"))
}

func TestShutdownLogsTimingSummary(t *testing.T) {
	var buf bytes.Buffer
	dc := NewCoordinatorWithLogger(DefaultConfig(), logger.NewZerolog(&buf, logger.DebugLevel))

	tt := dc.TimingTracker()
	tt.EndTiming(tt.StartTiming(context.Background(), "forecast"))
	tt.EndTiming(tt.StartTiming(context.Background(), "forecast"))
	buf.Reset()

	dc.Shutdown()

	out := buf.String()
	assert.Contains(t, out, `"message":"operation summary"`)
	assert.Contains(t, out, `"operation":"forecast"`)
	assert.Contains(t, out, `"count":2`)
}
