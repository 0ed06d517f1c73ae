package executor

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/leengari/minisql/internal/domain/schema"
	"github.com/leengari/minisql/internal/parser/ast"
	"github.com/leengari/minisql/internal/parser/lexer"
	"github.com/leengari/minisql/internal/query/operations/crud"
)

// ErrReadInput marks a failure to read INSERT data lines. Unlike command
// errors it means the input stream is broken.
var ErrReadInput = stderrors.New("error reading from input")

// executeInsert handles INSERT. All RowCount data lines are read before the
// table is touched, so lines after a bad row are consumed and never run as
// commands. A missing line at end of input counts as an empty row.
func executeInsert(stmt *ast.InsertStatement, db *schema.Database, next LineReader) (*Result, error) {
	rows, err := readDataLines(next, stmt.RowCount)
	if err != nil {
		return nil, err
	}

	table, err := db.GetTable(stmt.TableName)
	if err != nil {
		return nil, err
	}

	res, err := crud.Insert(table, rows)
	if err != nil {
		return &Result{Affected: res.Inserted}, err
	}

	return &Result{
		Affected: res.Inserted,
		Message: fmt.Sprintf("Added %d rows to %s from position %d to %d",
			res.Inserted, stmt.TableName, res.First, res.Last),
	}, nil
}

// readDataLines reads up to n data lines. Rows are collected as they are
// read, so the count only bounds the loop. When input ends early one empty
// row stands in for the first missing line, which fails the arity check.
func readDataLines(next LineReader, n int) ([][]string, error) {
	var rows [][]string
	if next == nil {
		return [][]string{nil}, nil
	}
	for i := 0; i < n; i++ {
		line, err := next()
		if stderrors.Is(err, io.EOF) {
			return append(rows, nil), nil
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrReadInput, i+1, err)
		}
		rows = append(rows, lexer.Fields(line))
	}
	return rows, nil
}
