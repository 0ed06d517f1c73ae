package lexer

import (
	"fmt"
)

type TokenType int

const (
	// Special
	EOF TokenType = iota
	COMMENT   // # ... to end of line, only as the first token
	SEMICOLON // ; ends the command, the rest of the line is dropped

	// Literals
	WORD // table and column names, counts, values, operators

	// Command words
	CREATE
	REMOVE
	INSERT
	PRINT
	DELETE
	GENERATE
	JOIN
	QUIT

	// Keywords
	INTO
	ROWS
	FROM
	ALL
	WHERE
	FOR
	INDEX
	ON
	AND
)

var keywords = map[string]TokenType{
	"CREATE":   CREATE,
	"REMOVE":   REMOVE,
	"INSERT":   INSERT,
	"PRINT":    PRINT,
	"DELETE":   DELETE,
	"GENERATE": GENERATE,
	"JOIN":     JOIN,
	"QUIT":     QUIT,
	"INTO":     INTO,
	"ROWS":     ROWS,
	"FROM":     FROM,
	"ALL":      ALL,
	"WHERE":    WHERE,
	"FOR":      FOR,
	"INDEX":    INDEX,
	"ON":       ON,
	"AND":      AND,
}

var names = map[TokenType]string{
	EOF:       "EOF",
	COMMENT:   "COMMENT",
	SEMICOLON: "SEMICOLON",
	WORD:      "WORD",
}

func (t TokenType) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	for word, tt := range keywords {
		if tt == t {
			return word
		}
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

type Token struct {
	Type    TokenType
	Literal string
	Line    int
	Column  int
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%s, %q)", t.Type, t.Literal)
}

// Lexer splits command text into whitespace separated words.
// Keywords are case sensitive.
type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int
	column       int
	lineStart    bool // no token read yet on the current line
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0, lineStart: true}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition += 1
	l.column++
}

func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	tok := Token{Line: l.line, Column: l.column}
	if l.ch == 0 {
		tok.Type = EOF
		return tok
	}

	first := l.lineStart
	l.lineStart = false

	if first && l.ch == '#' {
		tok.Type = COMMENT
		tok.Literal = l.readLine()
		return tok
	}

	tok.Literal = l.readWord()
	switch {
	case tok.Literal == ";":
		tok.Type = SEMICOLON
	default:
		tok.Type = LookupIdent(tok.Literal)
	}
	return tok
}

func (l *Lexer) skipWhitespace() {
	for isSpace(l.ch) {
		if l.ch == '\n' {
			l.line++
			l.column = 0
			l.lineStart = true
		}
		l.readChar()
	}
}

func (l *Lexer) readWord() string {
	position := l.position
	for l.ch != 0 && !isSpace(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readLine() string {
	position := l.position
	for l.ch != 0 && l.ch != '\n' {
		l.readChar()
	}
	return l.input[position:l.position]
}

func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return WORD
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' || ch == '\v' || ch == '\f'
}

// Tokenize splits one command line. Tokenizing stops at the first `;` token
// or at the end of the first line.
func Tokenize(input string) []Token {
	l := New(input)
	var tokens []Token
	for {
		tok := l.NextToken()
		if tok.Type == EOF || tok.Type == SEMICOLON || tok.Line > 1 {
			break
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// Fields returns the literals of a data line, for INSERT rows.
// Data lines have no comments and no terminator.
func Fields(line string) []string {
	l := New(line)
	l.lineStart = false
	var fields []string
	for {
		tok := l.NextToken()
		if tok.Type == EOF || tok.Line > 1 {
			break
		}
		fields = append(fields, tok.Literal)
	}
	return fields
}
