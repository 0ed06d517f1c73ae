package engine

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// commandSeq numbers commands in arrival order within the process
var commandSeq uint64

// Command is the context of one executed command line
type Command struct {
	ID        string    // unique command identifier for tracing
	Seq       uint64    // arrival order
	Line      string    // the command line as read
	Active    bool      // whether the command is still running
	StartTime time.Time // when the command began
}

// NewCommand creates a new command context with a unique ID
func NewCommand(line string) *Command {
	return &Command{
		ID:        uuid.New().String(),
		Seq:       atomic.AddUint64(&commandSeq, 1),
		Line:      line,
		Active:    true,
		StartTime: time.Now(),
	}
}

// Close marks the command as finished
func (c *Command) Close() {
	c.Active = false
}

// Elapsed returns the time since the command started
func (c *Command) Elapsed() time.Duration {
	return time.Since(c.StartTime)
}
