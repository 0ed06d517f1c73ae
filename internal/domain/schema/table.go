package schema

import (
	"fmt"
	"sync"

	"github.com/leengari/minisql/internal/domain/errors"
	"github.com/leengari/minisql/internal/domain/index"
	"github.com/leengari/minisql/internal/domain/value"
)

// Table represents a table with its schema, rows, and per-column indexes.
// A row's position in Rows is its identity; Indexes store those positions,
// so any change to row order must be followed by a full index rebuild while
// the write lock is still held.
type Table struct {
	mu      sync.RWMutex
	Name    string
	Schema  *TableSchema
	Rows    []value.Row
	Indexes map[string]index.Index // column name -> at most one index
}

// NewTable creates an empty table for the schema
func NewTable(s *TableSchema) *Table {
	return &Table{
		Name:    s.TableName,
		Schema:  s,
		Rows:    make([]value.Row, 0),
		Indexes: make(map[string]index.Index),
	}
}

// Lock acquires an exclusive lock on the table for write operations
func (t *Table) Lock() {
	t.mu.Lock()
}

// Unlock releases the exclusive lock
func (t *Table) Unlock() {
	t.mu.Unlock()
}

// RLock acquires a read lock on the table for read operations
func (t *Table) RLock() {
	t.mu.RLock()
}

// RUnlock releases the read lock
func (t *Table) RUnlock() {
	t.mu.RUnlock()
}

// ResolveColumn returns the position of a column or a ColumnNotFoundError
func (t *Table) ResolveColumn(name string) (int, error) {
	i, ok := t.Schema.ColumnIndex(name)
	if !ok {
		return -1, &errors.ColumnNotFoundError{TableName: t.Name, ColumnName: name}
	}
	return i, nil
}

// ResolveColumns resolves a projection list in order
func (t *Table) ResolveColumns(names []string) ([]int, error) {
	out := make([]int, len(names))
	for i, name := range names {
		pos, err := t.ResolveColumn(name)
		if err != nil {
			return nil, err
		}
		out[i] = pos
	}
	return out, nil
}

// ParseRow converts raw tokens into a row matching the schema.
// rowNumber is 1-based and only used for diagnostics.
func (t *Table) ParseRow(tokens []string, rowNumber int) (value.Row, error) {
	if len(tokens) != len(t.Schema.Columns) {
		return nil, &errors.ArityError{Expected: len(t.Schema.Columns), Got: len(tokens), Row: rowNumber}
	}

	row := make(value.Row, len(tokens))
	for i, col := range t.Schema.Columns {
		v, err := value.Parse(tokens[i], col.Kind)
		if err != nil {
			return nil, &errors.InvalidLiteralError{
				Literal: tokens[i],
				Kind:    col.Kind.String(),
				Column:  col.Name,
				Row:     rowNumber,
			}
		}
		row[i] = v
	}
	return row, nil
}

// AppendUnsafe appends a validated row and returns its position.
// IMPORTANT: Must be called while holding the write lock!
func (t *Table) AppendUnsafe(row value.Row) (int, error) {
	if err := t.checkRow(row); err != nil {
		return -1, err
	}
	t.Rows = append(t.Rows, row)
	return len(t.Rows) - 1, nil
}

// checkRow enforces the row shape invariant: one value per column, of the column's kind
func (t *Table) checkRow(row value.Row) error {
	if len(row) != len(t.Schema.Columns) {
		return &errors.ArityError{Expected: len(t.Schema.Columns), Got: len(row)}
	}
	for i, col := range t.Schema.Columns {
		if row[i].Kind() != col.Kind {
			return fmt.Errorf("column %s: expected %s, got %s: %w",
				col.Name, col.Kind, row[i].Kind(), errors.ErrInvalidLiteral)
		}
	}
	return nil
}

// RowCount returns the number of rows
func (t *Table) RowCount() int {
	t.RLock()
	defer t.RUnlock()
	return len(t.Rows)
}
