package engine

import (
	stderrors "errors"
	"fmt"
	"io"
	"time"

	"github.com/leengari/minisql/internal/domain/schema"
	"github.com/leengari/minisql/internal/executor"
	"github.com/leengari/minisql/internal/parser"
	"github.com/leengari/minisql/internal/parser/lexer"
)

// Session is the state shared by every command of one run: the table
// registry and the quiet flag
type Session struct {
	DB    *schema.Database
	Quiet bool
}

// NewSession creates a session with an empty database
func NewSession(quiet bool) *Session {
	return &Session{DB: schema.NewDatabase(), Quiet: quiet}
}

// CommandError is a failed command. It renders as the one diagnostic line
// written for the command.
type CommandError struct {
	Op  string // command word, empty when the command was not recognized
	Err error
}

func (e *CommandError) Error() string {
	if e.Op == "" {
		return "Error: unrecognized command"
	}
	return fmt.Sprintf("Error during %s: %v", e.Op, e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// Engine is the main entry point for executing command lines
type Engine struct {
	session   *Session
	observers []Observer // Observers for lifecycle events
}

// New creates a new Engine instance
func New(session *Session) *Engine {
	return &Engine{
		session:   session,
		observers: make([]Observer, 0),
	}
}

// Session returns the engine's session
func (e *Engine) Session() *Session {
	return e.session
}

// Execute processes one command line and returns its result.
// next supplies INSERT data lines. Command failures are returned as
// *CommandError; a failure to read data lines wraps executor.ErrReadInput.
func (e *Engine) Execute(line string, next executor.LineReader) (*executor.Result, error) {
	cmd := NewCommand(line)
	defer cmd.Close()

	// 1. Tokenize
	e.notify(Event{Type: EventLexStart, CommandID: cmd.ID, Data: line})
	tokens := lexer.Tokenize(line)
	e.notify(Event{Type: EventLexEnd, CommandID: cmd.ID, Data: len(tokens)})

	// 2. Parse
	e.notify(Event{Type: EventParseStart, CommandID: cmd.ID})
	p := parser.New(tokens)
	stmt, err := p.Parse()
	if stderrors.Is(err, parser.ErrEmptyCommand) {
		return &executor.Result{}, nil
	}
	if stderrors.Is(err, parser.ErrUnrecognizedCommand) {
		return nil, e.fail(cmd, &CommandError{Err: err})
	}
	if err != nil {
		return nil, e.fail(cmd, &CommandError{Op: p.Command(), Err: err})
	}
	e.notify(Event{Type: EventParseEnd, CommandID: cmd.ID, Data: stmt.String()})

	// 3. Execute
	e.notify(Event{Type: EventExecStart, CommandID: cmd.ID})
	result, err := executor.Execute(stmt, e.session.DB, next)
	if stderrors.Is(err, executor.ErrReadInput) {
		return nil, e.fail(cmd, err)
	}
	if err != nil {
		return nil, e.fail(cmd, &CommandError{Op: stmt.TokenLiteral(), Err: err})
	}
	e.notify(Event{Type: EventExecEnd, CommandID: cmd.ID, Data: map[string]any{
		"rows_affected": result.Affected,
		"rows_returned": len(result.Rows),
		"elapsed":       cmd.Elapsed().String(),
	}})

	return result, nil
}

// Run executes one command line and writes its output, or its diagnostic
// line, to w. It reports whether the session should end. Only write
// failures and broken input are returned as errors.
func (e *Engine) Run(w io.Writer, line string, next executor.LineReader) (bool, error) {
	result, err := e.Execute(line, next)

	var cmdErr *CommandError
	if stderrors.As(err, &cmdErr) {
		_, werr := fmt.Fprintln(w, cmdErr.Error())
		return false, werr
	}
	if err != nil {
		return false, err
	}

	if err := result.Render(w, e.session.Quiet); err != nil {
		return false, err
	}
	return result.Quit, nil
}

// AddObserver registers an observer to receive lifecycle events
func (e *Engine) AddObserver(observer Observer) {
	e.observers = append(e.observers, observer)
}

// RemoveObserver unregisters an observer
func (e *Engine) RemoveObserver(observer Observer) {
	for i, o := range e.observers {
		if o == observer {
			e.observers = append(e.observers[:i], e.observers[i+1:]...)
			return
		}
	}
}

// fail reports an error event and returns err
func (e *Engine) fail(cmd *Command, err error) error {
	e.notify(Event{Type: EventError, CommandID: cmd.ID, Data: err.Error()})
	return err
}

// notify sends an event to all registered observers
func (e *Engine) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range e.observers {
		observer.OnEvent(event)
	}
}
