package engine

import (
	"context"
	"log/slog"
)

// LoggingObserver is a simple observer that logs all events using structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a new logging observer
func NewLoggingObserver() *LoggingObserver {
	return &LoggingObserver{
		logger: slog.Default(),
	}
}

// OnEvent implements the Observer interface
// Errors are logged at warn level, every other phase at debug level
func (lo *LoggingObserver) OnEvent(event Event) {
	level := slog.LevelDebug
	if event.Type == EventError {
		level = slog.LevelWarn
	}
	lo.logger.Log(context.Background(), level, "command_lifecycle",
		slog.String("event", string(event.Type)),
		slog.String("command_id", event.CommandID),
		slog.Time("timestamp", event.Timestamp),
		slog.Any("data", event.Data),
	)
}
