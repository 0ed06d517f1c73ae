package parser

import (
	stderrors "errors"
	"strconv"

	"github.com/leengari/minisql/internal/domain/errors"
	"github.com/leengari/minisql/internal/parser/ast"
	"github.com/leengari/minisql/internal/parser/lexer"
	"github.com/leengari/minisql/internal/planner/predicate"
)

// ErrUnrecognizedCommand is returned when the first word is not a command
var ErrUnrecognizedCommand = stderrors.New("unrecognized command")

// ErrEmptyCommand is returned for a line with no tokens
var ErrEmptyCommand = stderrors.New("empty command")

// Format hints reported when a command does not match its grammar
const (
	createFormat   = "Expected format 'CREATE <table> <numCols> <type1> ... <name1> ...'"
	insertFormat   = "Expected format 'INSERT INTO <table> <numRows>'"
	printFormat    = "Expected format 'PRINT FROM <table> <numCols> <col1> <col2> ... ALL'"
	deleteFormat   = "Expected format 'DELETE FROM <table> WHERE <column> <op> <value>'"
	generateFormat = "Expected format 'GENERATE FOR <table> <hash|bst> INDEX ON <column>'"
)

type Parser struct {
	tokens  []lexer.Token
	curPos  int
	cur     int // index of curTok in tokens
	curTok  lexer.Token
	peekTok lexer.Token
}

func New(tokens []lexer.Token) *Parser {
	p := &Parser{tokens: tokens, curPos: 0, cur: -2}
	// Read two tokens to set curTok and peekTok
	p.nextToken()
	p.nextToken()
	return p
}

// ParseLine tokenizes and parses one command line
func ParseLine(line string) (ast.Statement, error) {
	return New(lexer.Tokenize(line)).Parse()
}

func (p *Parser) nextToken() {
	p.cur++
	p.curTok = p.peekTok
	if p.curPos < len(p.tokens) {
		p.peekTok = p.tokens[p.curPos]
		p.curPos++
	} else {
		p.peekTok = lexer.Token{Type: lexer.EOF}
	}
}

// Command returns the command word the parser was given, or "" for an empty line
func (p *Parser) Command() string {
	if len(p.tokens) == 0 {
		return ""
	}
	return p.tokens[0].Literal
}

func (p *Parser) Parse() (ast.Statement, error) {
	switch p.curTok.Type {
	case lexer.EOF:
		return nil, ErrEmptyCommand
	case lexer.COMMENT:
		return &ast.CommentStatement{Text: p.curTok.Literal}, nil
	case lexer.QUIT:
		return &ast.QuitStatement{}, nil
	case lexer.CREATE:
		return p.parseCreate()
	case lexer.REMOVE:
		return p.parseRemove()
	case lexer.INSERT:
		return p.parseInsert()
	case lexer.PRINT:
		return p.parsePrint()
	case lexer.DELETE:
		return p.parseDelete()
	case lexer.GENERATE:
		return p.parseGenerate()
	case lexer.JOIN:
		return p.parseJoin()
	default:
		return nil, ErrUnrecognizedCommand
	}
}

// word consumes the current token as a name or value; keywords are allowed
func (p *Parser) word() (string, bool) {
	if p.curTok.Type == lexer.EOF {
		return "", false
	}
	lit := p.curTok.Literal
	p.nextToken()
	return lit, true
}

// expect consumes the current token if it has the given type
func (p *Parser) expect(t lexer.TokenType) bool {
	if p.curTok.Type != t {
		return false
	}
	p.nextToken()
	return true
}

// count consumes a positive integer. invalid and nonPositive are the
// diagnostics for a token that is not a number and for n <= 0.
func (p *Parser) count(invalid, nonPositive string) (int, error) {
	lit, ok := p.word()
	if !ok {
		return 0, errors.NewMalformed("%s", invalid)
	}
	n, err := strconv.Atoi(lit)
	if err != nil {
		return 0, errors.NewMalformed("%s", invalid)
	}
	if n <= 0 {
		return 0, errors.NewMalformed("%s", nonPositive)
	}
	return n, nil
}

// remaining returns the number of unread tokens including the current one
func (p *Parser) remaining() int {
	return max(len(p.tokens)-p.cur, 0)
}

func (p *Parser) parseCreate() (*ast.CreateStatement, error) {
	stmt := &ast.CreateStatement{}

	// CREATE
	p.nextToken()

	name, ok := p.word()
	if !ok {
		return nil, errors.NewMalformed(createFormat)
	}
	stmt.TableName = name

	n, err := p.count("Invalid number of columns", "Number of columns must be positive")
	if err != nil {
		return nil, err
	}
	if n > p.remaining()/2 {
		return nil, errors.NewMalformed("Expected %d column types and %d column names", n, n)
	}

	stmt.Columns = make([]ast.ColumnDef, n)
	for i := range stmt.Columns {
		stmt.Columns[i].Type, _ = p.word()
	}
	for i := range stmt.Columns {
		stmt.Columns[i].Name, _ = p.word()
	}
	return stmt, nil
}

func (p *Parser) parseRemove() (*ast.RemoveStatement, error) {
	// REMOVE
	p.nextToken()

	name, ok := p.word()
	if !ok {
		return nil, errors.NewMalformed("Missing table name")
	}
	return &ast.RemoveStatement{TableName: name}, nil
}

func (p *Parser) parseInsert() (*ast.InsertStatement, error) {
	stmt := &ast.InsertStatement{}

	// INSERT
	p.nextToken()

	// INTO
	if !p.expect(lexer.INTO) || p.remaining() < 3 {
		return nil, errors.NewMalformed(insertFormat)
	}

	stmt.TableName, _ = p.word()
	countTok := p.curTok
	p.nextToken()

	// ROWS
	if !p.expect(lexer.ROWS) {
		return nil, errors.NewMalformed(insertFormat)
	}

	n, err := strconv.Atoi(countTok.Literal)
	if err != nil {
		return nil, errors.NewMalformed("Invalid number of rows")
	}
	if n <= 0 {
		return nil, errors.NewMalformed("Number of rows inserted must be positive")
	}
	stmt.RowCount = n
	return stmt, nil
}

func (p *Parser) parsePrint() (*ast.PrintStatement, error) {
	stmt := &ast.PrintStatement{}

	// PRINT
	p.nextToken()

	// FROM
	if !p.expect(lexer.FROM) {
		return nil, errors.NewMalformed(printFormat)
	}
	if p.remaining() < 3 {
		return nil, errors.NewMalformed("Missing table name or column selection")
	}
	stmt.TableName, _ = p.word()

	n, err := p.count("Invalid number of columns", "Number of columns to print must be positive")
	if err != nil {
		return nil, err
	}
	if n > p.remaining()-1 {
		return nil, errors.NewMalformed("Invalid command format")
	}

	stmt.Columns = make([]string, n)
	for i := range stmt.Columns {
		stmt.Columns[i], _ = p.word()
	}

	switch p.curTok.Type {
	case lexer.ALL:
		return stmt, nil
	case lexer.WHERE:
		p.nextToken()
		cond, ok := p.parseCondition()
		if !ok {
			return nil, errors.NewMalformed("Invalid command format")
		}
		stmt.Where = cond
		return stmt, nil
	default:
		return nil, errors.NewMalformed("Invalid command format")
	}
}

func (p *Parser) parseDelete() (*ast.DeleteStatement, error) {
	stmt := &ast.DeleteStatement{}

	// DELETE
	p.nextToken()

	// FROM
	if !p.expect(lexer.FROM) {
		return nil, errors.NewMalformed(deleteFormat)
	}
	name, ok := p.word()
	if !ok {
		return nil, errors.NewMalformed(deleteFormat)
	}
	stmt.TableName = name

	// WHERE
	if !p.expect(lexer.WHERE) {
		return nil, errors.NewMalformed(deleteFormat)
	}
	cond, ok := p.parseCondition()
	if !ok {
		return nil, errors.NewMalformed(deleteFormat)
	}

	// the operator is checked before the table is looked up
	if _, err := predicate.ParseOperator(cond.Operator); err != nil {
		return nil, err
	}
	stmt.Where = cond
	return stmt, nil
}

func (p *Parser) parseGenerate() (*ast.GenerateStatement, error) {
	// GENERATE
	p.nextToken()

	if p.remaining() != 6 || !p.expect(lexer.FOR) {
		return nil, errors.NewMalformed(generateFormat)
	}
	stmt := &ast.GenerateStatement{}
	stmt.TableName, _ = p.word()
	stmt.IndexKind, _ = p.word()

	// INDEX ON
	if !p.expect(lexer.INDEX) || !p.expect(lexer.ON) {
		return nil, errors.NewMalformed(generateFormat)
	}
	stmt.Column, _ = p.word()
	return stmt, nil
}

func (p *Parser) parseJoin() (*ast.JoinStatement, error) {
	stmt := &ast.JoinStatement{}

	// JOIN
	p.nextToken()

	if p.remaining() < 9 {
		return nil, errors.NewMalformed("Invalid command format")
	}
	stmt.LeftTable, _ = p.word()

	// AND
	if !p.expect(lexer.AND) {
		return nil, errors.NewMalformed("Expected 'AND' after first table name")
	}
	stmt.RightTable, _ = p.word()

	// WHERE <c1> = <c2>
	if !p.expect(lexer.WHERE) {
		return nil, errors.NewMalformed("Missing or Incomplete WHERE clause")
	}
	stmt.LeftColumn, _ = p.word()
	op, _ := p.word()
	if op != "=" {
		return nil, errors.NewMalformed("Invalid comparison operator")
	}
	stmt.RightColumn, _ = p.word()

	// AND PRINT <n>
	if !p.expect(lexer.AND) || !p.expect(lexer.PRINT) {
		return nil, errors.NewMalformed("Missing or incomplete PRINT clause")
	}
	n, err := p.count("Invalid number of columns to print", "Number of columns to print must be positive")
	if err != nil {
		return nil, err
	}
	if n > p.remaining()/2 {
		return nil, errors.NewMalformed("Not enough columns to print")
	}

	stmt.Columns = make([]ast.JoinColumn, n)
	for i := range stmt.Columns {
		name, _ := p.word()
		sideLit, _ := p.word()
		side, err := strconv.Atoi(sideLit)
		if err != nil {
			return nil, errors.NewMalformed("Invalid table indicator")
		}
		if side != 1 && side != 2 {
			return nil, errors.NewMalformed("Table indicator must be 1 or 2")
		}
		stmt.Columns[i] = ast.JoinColumn{Name: name, Side: side}
	}
	return stmt, nil
}

// parseCondition reads `<column> <op> <value>`. The operator is not checked here.
func (p *Parser) parseCondition() (*ast.Condition, bool) {
	if p.remaining() < 3 {
		return nil, false
	}
	cond := &ast.Condition{}
	cond.Column, _ = p.word()
	cond.Operator, _ = p.word()
	cond.Value, _ = p.word()
	return cond, true
}
