package predicate

import (
	"github.com/leengari/minisql/internal/domain/errors"
	"github.com/leengari/minisql/internal/domain/schema"
	"github.com/leengari/minisql/internal/domain/value"
)

// Operator is one of the three supported comparison operators
type Operator string

const (
	OpLess    Operator = "<"
	OpGreater Operator = ">"
	OpEqual   Operator = "="
)

// ParseOperator validates an operator token
func ParseOperator(s string) (Operator, error) {
	switch Operator(s) {
	case OpLess, OpGreater, OpEqual:
		return Operator(s), nil
	default:
		return "", &errors.InvalidOperatorError{Operator: s}
	}
}

// Holds reports whether `cell op operand` is true
func (op Operator) Holds(cell, operand value.Value) bool {
	c := cell.Compare(operand)
	switch op {
	case OpLess:
		return c < 0
	case OpGreater:
		return c > 0
	case OpEqual:
		return c == 0
	}
	return false
}

// Condition is an unbound `<column> <op> <literal>` filter as written in a command
type Condition struct {
	Column  string
	Op      string
	Literal string
}

// Predicate is a Condition resolved against a table: the column position is
// known and the literal has been parsed with the column's kind.
type Predicate struct {
	Column  string
	ColPos  int
	Op      Operator
	Operand value.Value
}

// Build validates a condition against the table schema.
// The operator is checked first, then the column, then the literal.
func Build(table *schema.Table, cond Condition) (*Predicate, error) {
	op, err := ParseOperator(cond.Op)
	if err != nil {
		return nil, err
	}

	colPos, err := table.ResolveColumn(cond.Column)
	if err != nil {
		return nil, err
	}

	kind := table.Schema.Columns[colPos].Kind
	operand, err := value.Parse(cond.Literal, kind)
	if err != nil {
		return nil, &errors.InvalidLiteralError{Literal: cond.Literal, Kind: kind.String(), Column: cond.Column}
	}

	return &Predicate{Column: cond.Column, ColPos: colPos, Op: op, Operand: operand}, nil
}

// Matches tests a full row
func (p *Predicate) Matches(row value.Row) bool {
	return p.Op.Holds(row[p.ColPos], p.Operand)
}
