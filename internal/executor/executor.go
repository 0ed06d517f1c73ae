package executor

import (
	"fmt"
	"io"

	"github.com/leengari/minisql/internal/domain/schema"
	"github.com/leengari/minisql/internal/domain/value"
	"github.com/leengari/minisql/internal/parser/ast"
)

// Result is the outcome of one command.
// Columns and Rows are only rendered for PRINT and JOIN (Tabular) and never
// in quiet mode; Message is always rendered when set.
type Result struct {
	Columns  []string
	Rows     []value.Row
	Tabular  bool
	Message  string
	Affected int  // rows added, deleted, printed or joined
	Quit     bool // the session should end
}

// LineReader returns the next input line. It returns io.EOF when input is exhausted.
type LineReader func() (string, error)

// Execute runs one parsed statement against the database.
// next supplies the data lines of an INSERT and may be nil for other commands.
func Execute(stmt ast.Statement, db *schema.Database, next LineReader) (*Result, error) {
	switch s := stmt.(type) {
	case *ast.CommentStatement:
		return &Result{}, nil
	case *ast.QuitStatement:
		return &Result{Message: "Thanks for using!", Quit: true}, nil
	case *ast.CreateStatement:
		return executeCreate(s, db)
	case *ast.RemoveStatement:
		return executeRemove(s, db)
	case *ast.InsertStatement:
		return executeInsert(s, db, next)
	case *ast.PrintStatement:
		return executePrint(s, db)
	case *ast.DeleteStatement:
		return executeDelete(s, db)
	case *ast.GenerateStatement:
		return executeGenerate(s, db)
	case *ast.JoinStatement:
		return executeJoin(s, db)
	default:
		return nil, fmt.Errorf("unsupported statement type: %T", stmt)
	}
}

// Render writes the result as the command's output text
func (r *Result) Render(w io.Writer, quiet bool) error {
	if r.Tabular && !quiet {
		for _, col := range r.Columns {
			if _, err := fmt.Fprintf(w, "%s ", col); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}

		for _, row := range r.Rows {
			for _, v := range row {
				if _, err := fmt.Fprintf(w, "%s ", v); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}

	if r.Message != "" {
		if _, err := fmt.Fprintln(w, r.Message); err != nil {
			return err
		}
	}
	return nil
}
