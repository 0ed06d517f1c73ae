package errors

import (
	stderrors "errors"
	"fmt"
)

// Sentinel errors classify every failure a command can produce.
// Typed errors below unwrap to one of these so callers can use errors.Is.
var (
	ErrUnknownTable     = stderrors.New("unknown table")
	ErrTableExists      = stderrors.New("table already exists")
	ErrUnknownColumn    = stderrors.New("unknown column")
	ErrInvalidOperator  = stderrors.New("invalid operator")
	ErrInvalidLiteral   = stderrors.New("invalid literal")
	ErrArityMismatch    = stderrors.New("arity mismatch")
	ErrTypeMismatch     = stderrors.New("type mismatch")
	ErrUnknownIndexKind = stderrors.New("unknown index kind")
	ErrMalformedCommand = stderrors.New("malformed command")
)

// TableNotFoundError is returned when a name does not resolve to a table
type TableNotFoundError struct {
	TableName string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("%s does not name a table in the database", e.TableName)
}

func (e *TableNotFoundError) Unwrap() error { return ErrUnknownTable }

// TableExistsError is returned when CREATE names a table that already exists
type TableExistsError struct {
	TableName string
}

func (e *TableExistsError) Error() string {
	return fmt.Sprintf("Cannot create already existing table %s", e.TableName)
}

func (e *TableExistsError) Unwrap() error { return ErrTableExists }

// ColumnNotFoundError is returned when a column name is not part of a table schema
type ColumnNotFoundError struct {
	TableName  string
	ColumnName string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("%s does not name a column in %s", e.ColumnName, e.TableName)
}

func (e *ColumnNotFoundError) Unwrap() error { return ErrUnknownColumn }

// InvalidOperatorError is returned for comparison operators other than <, > and =
type InvalidOperatorError struct {
	Operator string
}

func (e *InvalidOperatorError) Error() string {
	return fmt.Sprintf("Invalid comparison operator '%s'", e.Operator)
}

func (e *InvalidOperatorError) Unwrap() error { return ErrInvalidOperator }

// InvalidLiteralError describes a token that cannot be parsed as a value of
// the requested kind. Column and Row are filled in by callers that know them
// (Row is 1-based, 0 when unknown).
type InvalidLiteralError struct {
	Literal string
	Kind    string
	Column  string
	Row     int
}

func (e *InvalidLiteralError) Error() string {
	switch {
	case e.Column != "" && e.Row > 0:
		return fmt.Sprintf("Invalid value for column %s in row %d", e.Column, e.Row)
	case e.Column != "":
		return fmt.Sprintf("Invalid value for column %s", e.Column)
	default:
		return fmt.Sprintf("Invalid %s value '%s'", e.Kind, e.Literal)
	}
}

func (e *InvalidLiteralError) Unwrap() error { return ErrInvalidLiteral }

// ArityError is returned when a data row has the wrong number of values
type ArityError struct {
	Expected int
	Got      int
	Row      int // 1-based
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("Expected %d values, but got %d on row %d", e.Expected, e.Got, e.Row)
}

func (e *ArityError) Unwrap() error { return ErrArityMismatch }

// TypeMismatchError is returned when two join columns have different kinds
type TypeMismatchError struct {
	LeftTable   string
	LeftColumn  string
	LeftKind    string
	RightTable  string
	RightColumn string
	RightKind   string
}

func (e *TypeMismatchError) Error() string {
	return "Column types do not match for join columns"
}

func (e *TypeMismatchError) Unwrap() error { return ErrTypeMismatch }

// IndexKindError is returned for index kinds other than hash and bst
type IndexKindError struct {
	Kind string
}

func (e *IndexKindError) Error() string {
	return fmt.Sprintf("Invalid index type '%s'", e.Kind)
}

func (e *IndexKindError) Unwrap() error { return ErrUnknownIndexKind }

// MalformedCommandError is a grammar violation; Reason is shown to the user as is
type MalformedCommandError struct {
	Reason string
}

func (e *MalformedCommandError) Error() string { return e.Reason }

func (e *MalformedCommandError) Unwrap() error { return ErrMalformedCommand }

// NewMalformed builds a MalformedCommandError from a format string
func NewMalformed(format string, args ...any) *MalformedCommandError {
	return &MalformedCommandError{Reason: fmt.Sprintf(format, args...)}
}
