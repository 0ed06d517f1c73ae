package ast

import (
	"bytes"
	"fmt"
	"strconv"
)

// Node is the base interface for all AST nodes
type Node interface {
	TokenLiteral() string
	String() string
}

// Statement represents one command. TokenLiteral is the command word.
type Statement interface {
	Node
	statementNode()
}

// Condition is `<column> <op> <value>` as written; it is validated against
// the table when the command executes
type Condition struct {
	Column   string
	Operator string
	Value    string
}

func (c *Condition) TokenLiteral() string { return c.Operator }
func (c *Condition) String() string {
	return fmt.Sprintf("%s %s %s", c.Column, c.Operator, c.Value)
}

// ColumnDef is one column of a CREATE: a type name and a column name
type ColumnDef struct {
	Name string
	Type string
}

// CreateStatement: CREATE <table> <n> <type>... <name>...
type CreateStatement struct {
	TableName string
	Columns   []ColumnDef
}

func (s *CreateStatement) statementNode()       {}
func (s *CreateStatement) TokenLiteral() string { return "CREATE" }
func (s *CreateStatement) String() string {
	var out bytes.Buffer
	out.WriteString("CREATE ")
	out.WriteString(s.TableName)
	out.WriteString(" ")
	out.WriteString(strconv.Itoa(len(s.Columns)))
	for _, c := range s.Columns {
		out.WriteString(" ")
		out.WriteString(c.Type)
	}
	for _, c := range s.Columns {
		out.WriteString(" ")
		out.WriteString(c.Name)
	}
	return out.String()
}

// RemoveStatement: REMOVE <table>
type RemoveStatement struct {
	TableName string
}

func (s *RemoveStatement) statementNode()       {}
func (s *RemoveStatement) TokenLiteral() string { return "REMOVE" }
func (s *RemoveStatement) String() string       { return "REMOVE " + s.TableName }

// InsertStatement: INSERT INTO <table> <n> ROWS, followed by n data lines
// that are read separately
type InsertStatement struct {
	TableName string
	RowCount  int
}

func (s *InsertStatement) statementNode()       {}
func (s *InsertStatement) TokenLiteral() string { return "INSERT" }
func (s *InsertStatement) String() string {
	return fmt.Sprintf("INSERT INTO %s %d ROWS", s.TableName, s.RowCount)
}

// PrintStatement: PRINT FROM <table> <n> <col>... ALL|WHERE <cond>.
// Where is nil for ALL.
type PrintStatement struct {
	TableName string
	Columns   []string
	Where     *Condition
}

func (s *PrintStatement) statementNode()       {}
func (s *PrintStatement) TokenLiteral() string { return "PRINT" }
func (s *PrintStatement) String() string {
	var out bytes.Buffer
	out.WriteString("PRINT FROM ")
	out.WriteString(s.TableName)
	out.WriteString(" ")
	out.WriteString(strconv.Itoa(len(s.Columns)))
	for _, c := range s.Columns {
		out.WriteString(" ")
		out.WriteString(c)
	}
	if s.Where != nil {
		out.WriteString(" WHERE ")
		out.WriteString(s.Where.String())
	} else {
		out.WriteString(" ALL")
	}
	return out.String()
}

// DeleteStatement: DELETE FROM <table> WHERE <cond>
type DeleteStatement struct {
	TableName string
	Where     *Condition
}

func (s *DeleteStatement) statementNode()       {}
func (s *DeleteStatement) TokenLiteral() string { return "DELETE" }
func (s *DeleteStatement) String() string {
	return fmt.Sprintf("DELETE FROM %s WHERE %s", s.TableName, s.Where)
}

// GenerateStatement: GENERATE FOR <table> <kind> INDEX ON <column>
type GenerateStatement struct {
	TableName string
	IndexKind string
	Column    string
}

func (s *GenerateStatement) statementNode()       {}
func (s *GenerateStatement) TokenLiteral() string { return "GENERATE" }
func (s *GenerateStatement) String() string {
	return fmt.Sprintf("GENERATE FOR %s %s INDEX ON %s", s.TableName, s.IndexKind, s.Column)
}

// JoinColumn is one printed column of a JOIN and the table (1 or 2) it comes from
type JoinColumn struct {
	Name string
	Side int
}

// JoinStatement: JOIN <t1> AND <t2> WHERE <c1> = <c2> AND PRINT <n> (<col> <1|2>)...
type JoinStatement struct {
	LeftTable   string
	RightTable  string
	LeftColumn  string
	RightColumn string
	Columns     []JoinColumn
}

func (s *JoinStatement) statementNode()       {}
func (s *JoinStatement) TokenLiteral() string { return "JOIN" }
func (s *JoinStatement) String() string {
	var out bytes.Buffer
	fmt.Fprintf(&out, "JOIN %s AND %s WHERE %s = %s AND PRINT %d",
		s.LeftTable, s.RightTable, s.LeftColumn, s.RightColumn, len(s.Columns))
	for _, c := range s.Columns {
		fmt.Fprintf(&out, " %s %d", c.Name, c.Side)
	}
	return out.String()
}

// QuitStatement: QUIT
type QuitStatement struct{}

func (s *QuitStatement) statementNode()       {}
func (s *QuitStatement) TokenLiteral() string { return "QUIT" }
func (s *QuitStatement) String() string       { return "QUIT" }

// CommentStatement is a line whose first word starts with #
type CommentStatement struct {
	Text string
}

func (s *CommentStatement) statementNode()       {}
func (s *CommentStatement) TokenLiteral() string { return "#" }
func (s *CommentStatement) String() string       { return s.Text }
