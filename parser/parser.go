package parser

import (
	"fmt"

	"github.com/ashgrove/lt/lexer"
)

// Parser converts a token stream into a Program via hand-written
// recursive descent with a fixed operator-precedence ladder. It collects
// errors rather than panicking, so a caller can report every syntax
// problem found in one pass; per the language's error-handling policy
// the whole program is still discarded if any error was recorded.
type Parser struct {
	Lex *lexer.Lexer

	CurrToken lexer.Token
	NextToken lexer.Token

	Errors []string
}

// NewParser creates a Parser over src with its two-token lookahead primed.
func NewParser(src string) *Parser {
	par := &Parser{Lex: lexer.NewLexer(src)}
	par.advance()
	par.advance()
	return par
}

func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

func (par *Parser) currIs(t lexer.TokenType) bool { return par.CurrToken.Type == t }
func (par *Parser) nextIs(t lexer.TokenType) bool { return par.NextToken.Type == t }

// expectAdvance requires the next token to have type `expected`; on
// success it advances past it and returns true, else it records an
// error and returns false.
func (par *Parser) expectAdvance(expected lexer.TokenType) bool {
	if !par.nextIs(expected) {
		par.addError("expected %s, got %s", expected, par.NextToken.Type)
		return false
	}
	par.advance()
	return true
}

func (par *Parser) addError(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	par.Errors = append(par.Errors, fmt.Sprintf("[%d:%d] PARSER ERROR: %s", par.CurrToken.Line, par.CurrToken.Column, msg))
}

func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0 || par.Lex.HasErrors()
}

// GetErrors returns lexer errors followed by parser errors, in the order
// a reader would want to see them: what failed to tokenize, then what
// failed to parse.
func (par *Parser) GetErrors() []string {
	errs := make([]string, 0, len(par.Lex.Errors)+len(par.Errors))
	errs = append(errs, par.Lex.Errors...)
	errs = append(errs, par.Errors...)
	return errs
}

// Parse loops until EOF, appending one statement per iteration.
func (par *Parser) Parse() *Program {
	prog := &Program{Statements: make([]Stmt, 0)}
	for !par.currIs(lexer.EOF) {
		stmt := par.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		par.advance()
	}
	return prog
}
