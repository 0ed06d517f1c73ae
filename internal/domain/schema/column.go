package schema

import (
	"github.com/leengari/minisql/internal/domain/errors"
	"github.com/leengari/minisql/internal/domain/value"
)

// Column is one (name, kind) pair of a table schema
type Column struct {
	Name string
	Kind value.Kind
}

// TableSchema is the ordered, immutable column list of a table
type TableSchema struct {
	TableName string
	Columns   []Column
}

// NewTableSchema validates column names are unique
func NewTableSchema(tableName string, columns []Column) (*TableSchema, error) {
	seen := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		if _, dup := seen[col.Name]; dup {
			return nil, errors.NewMalformed("Duplicate column name %s", col.Name)
		}
		seen[col.Name] = struct{}{}
	}

	cols := make([]Column, len(columns))
	copy(cols, columns)
	return &TableSchema{TableName: tableName, Columns: cols}, nil
}

// ColumnIndex returns the position of the named column
func (s *TableSchema) ColumnIndex(name string) (int, bool) {
	for i := range s.Columns {
		if s.Columns[i].Name == name {
			return i, true
		}
	}
	return -1, false
}

// Names returns the column names in schema order
func (s *TableSchema) Names() []string {
	names := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		names[i] = col.Name
	}
	return names
}
