package debug

import (
	"context"
	"time"

	"mood-weather/internal/logger"
)

// Logger is re-exported so callers holding a Coordinator need only this package.
type Logger = logger.Logger

// TimingTracker measures operation performance
type TimingTracker interface {
	StartTiming(ctx context.Context, operation string) context.Context
	EndTiming(ctx context.Context)
	GetTimings(operation string) []time.Duration
}

// Coordinator combines the debug capabilities shared by both apps
type Coordinator interface {
	Logger() Logger
	TimingTracker() TimingTracker
	Shutdown()
}
