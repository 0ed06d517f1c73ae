package engine

import "time"

// EventType represents different lifecycle phases of a command
type EventType string

const (
	EventLexStart   EventType = "lex_start"
	EventLexEnd     EventType = "lex_end"
	EventParseStart EventType = "parse_start"
	EventParseEnd   EventType = "parse_end"
	EventExecStart  EventType = "exec_start"
	EventExecEnd    EventType = "exec_end"
	EventError      EventType = "error"
)

// Event represents a lifecycle event of one command
type Event struct {
	Type      EventType // Type of event
	CommandID string    // Command ID for tracing
	Timestamp time.Time // When the event occurred
	Data      any       // Phase-specific data (e.g., line, token count, statement, result)
}

// Observer interface for event subscribers
// Observers receive events at major execution phases
type Observer interface {
	OnEvent(event Event)
}
