package debug

import (
	"time"

	"mood-weather/internal/debug/timing"
	"mood-weather/internal/logger"
)

type Config struct {
	EnableLogging        bool
	EnableTimingTracking bool
	UseJSONLogging       bool
	LogLevel             logger.LogLevel
}

func DefaultConfig() Config {
	return Config{
		EnableLogging:        true,
		EnableTimingTracking: true,
		UseJSONLogging:       false,
		LogLevel:             logger.InfoLevel,
	}
}

func ProductionConfig() Config {
	return Config{
		EnableLogging:        true,
		EnableTimingTracking: false,
		UseJSONLogging:       true,
		LogLevel:             logger.ErrorLevel,
	}
}

type DebugCoordinator struct {
	logger        Logger
	timingTracker *timing.Tracker
}

func NewCoordinator(config Config) *DebugCoordinator {
	var log Logger
	switch {
	case !config.EnableLogging:
		log = logger.NoOpLogger{}
	case config.UseJSONLogging:
		log = logger.NewJSONLogger(config.LogLevel)
	default:
		log = logger.NewConsoleLogger(config.LogLevel)
	}

	return NewCoordinatorWithLogger(config, log)
}

// NewCoordinatorWithLogger is used by tests and by callers that already own a logger.
func NewCoordinatorWithLogger(config Config, log Logger) *DebugCoordinator {
	tracker := timing.NewTracker(&timingLogRecorder{logger: log})
	tracker.SetEnabled(config.EnableTimingTracking)

	return &DebugCoordinator{
		logger:        log,
		timingTracker: tracker,
	}
}

func (dc *DebugCoordinator) Logger() Logger {
	return dc.logger
}

func (dc *DebugCoordinator) TimingTracker() TimingTracker {
	return dc.timingTracker
}

// Shutdown stops timing and logs the average duration of each measured operation.
func (dc *DebugCoordinator) Shutdown() {
	dc.timingTracker.SetEnabled(false)
	for _, op := range dc.timingTracker.Operations() {
		dc.logger.Debug("Timing", "operation summary", map[string]interface{}{
			"operation": op,
			"count":     len(dc.timingTracker.GetTimings(op)),
			"avg_ms":    dc.timingTracker.GetAverageTime(op).Milliseconds(),
		})
	}
	dc.logger.Debug("DebugCoordinator", "shutdown completed", nil)
}

type timingLogRecorder struct {
	logger Logger
}

func (r *timingLogRecorder) Record(operation string, elapsed time.Duration) {
	r.logger.Debug("Timing", "operation completed", map[string]interface{}{
		"operation":  operation,
		"elapsed_ms": elapsed.Milliseconds(),
	})
}
