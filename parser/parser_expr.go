package parser

import (
	"strconv"

	"github.com/ashgrove/lt/lexer"
)

// The expression grammar is an explicit 9-level precedence ladder, from
// lowest to highest: or, and, equality, comparison, term, factor, unary,
// call, primary. Each level parses its higher-precedence operand, then
// folds left while the next token is one of its own operators.
//
// parseExpr is the entry point; it is always CurrToken-positioned on the
// first token of the expression and returns with CurrToken on the
// expression's last token.
func (par *Parser) parseExpr() Expr {
	return par.parseOr()
}

func (par *Parser) parseOr() Expr {
	left := par.parseAnd()
	for par.nextIs(lexer.OR) {
		tok := par.NextToken
		par.advance()
		par.advance()
		right := par.parseAnd()
		left = &Binary{base{tok}, left, lexer.OR, right}
	}
	return left
}

func (par *Parser) parseAnd() Expr {
	left := par.parseEquality()
	for par.nextIs(lexer.AND) {
		tok := par.NextToken
		par.advance()
		par.advance()
		right := par.parseEquality()
		left = &Binary{base{tok}, left, lexer.AND, right}
	}
	return left
}

func (par *Parser) parseEquality() Expr {
	left := par.parseComparison()
	for par.nextIs(lexer.EQ) || par.nextIs(lexer.NOT_EQ) {
		op := par.NextToken
		par.advance()
		par.advance()
		right := par.parseComparison()
		left = &Binary{base{op}, left, op.Type, right}
	}
	return left
}

func (par *Parser) parseComparison() Expr {
	left := par.parseTerm()
	for par.nextIs(lexer.LT) || par.nextIs(lexer.LT_EQ) || par.nextIs(lexer.GT) || par.nextIs(lexer.GT_EQ) {
		op := par.NextToken
		par.advance()
		par.advance()
		right := par.parseTerm()
		left = &Binary{base{op}, left, op.Type, right}
	}
	return left
}

func (par *Parser) parseTerm() Expr {
	left := par.parseFactor()
	for par.nextIs(lexer.PLUS) || par.nextIs(lexer.MINUS) {
		op := par.NextToken
		par.advance()
		par.advance()
		right := par.parseFactor()
		left = &Binary{base{op}, left, op.Type, right}
	}
	return left
}

func (par *Parser) parseFactor() Expr {
	left := par.parseUnary()
	for par.nextIs(lexer.STAR) || par.nextIs(lexer.SLASH) {
		op := par.NextToken
		par.advance()
		par.advance()
		right := par.parseUnary()
		left = &Binary{base{op}, left, op.Type, right}
	}
	return left
}

// parseUnary handles prefix `!` and prefix `-`; anything else falls
// through to the call level.
func (par *Parser) parseUnary() Expr {
	if par.currIs(lexer.BANG) || par.currIs(lexer.MINUS) {
		tok := par.CurrToken
		par.advance()
		right := par.parseUnary()
		return &Unary{base{tok}, tok.Type, right}
	}
	return par.parseCall()
}

// parseCall parses a primary expression, then greedily consumes zero or
// more `(args)` argument lists, producing nested Call nodes so that
// `f(a)(b)` parses as Call(Call(f,[a]),[b]). This dedicated level (rather
// than treating `(` as a general postfix inside primary) keeps grouping
// parens and call parens unambiguous and the grammar LL(1).
func (par *Parser) parseCall() Expr {
	expr := par.parsePrimary()
	for par.nextIs(lexer.LPAREN) {
		tok := par.NextToken
		par.advance() // on '('
		args := par.parseArgs()
		expr = &Call{base{tok}, expr, args}
	}
	return expr
}

// parseArgs parses a comma-separated, possibly empty argument list.
// Entered with CurrToken on `(`; returns with CurrToken on `)`. A
// trailing comma is not permitted.
func (par *Parser) parseArgs() []Expr {
	args := make([]Expr, 0)
	if par.nextIs(lexer.RPAREN) {
		par.advance()
		return args
	}
	par.advance()
	args = append(args, par.parseExpr())
	for par.nextIs(lexer.COMMA) {
		par.advance()
		par.advance()
		args = append(args, par.parseExpr())
	}
	par.expectAdvance(lexer.RPAREN)
	return args
}

func (par *Parser) parsePrimary() Expr {
	tok := par.CurrToken
	switch tok.Type {
	case lexer.INT:
		n, err := strconv.ParseInt(tok.Literal, 10, 32)
		if err != nil {
			par.addError("malformed integer literal %q", tok.Literal)
			return &IntLit{base{tok}, 0}
		}
		return &IntLit{base{tok}, int32(n)}
	case lexer.STRING:
		return &StringLit{base{tok}, tok.Literal}
	case lexer.TRUE:
		return &BoolLit{base{tok}, true}
	case lexer.FALSE:
		return &BoolLit{base{tok}, false}
	case lexer.IDENT:
		return &Identifier{base{tok}, tok.Literal}
	case lexer.LPAREN:
		par.advance()
		expr := par.parseExpr()
		if !par.expectAdvance(lexer.RPAREN) {
			return expr
		}
		return expr
	case lexer.FUNC:
		return par.parseFuncLiteral()
	default:
		par.addError("unexpected token %s", tok.Type)
		return &NullLit{base{tok}}
	}
}

// parseFuncLiteral parses an anonymous `func(params) { body }` expression.
func (par *Parser) parseFuncLiteral() Expr {
	tok := par.CurrToken
	if !par.expectAdvance(lexer.LPAREN) {
		return &NullLit{base{tok}}
	}
	params := par.parseParams()
	if !par.expectAdvance(lexer.LBRACE) {
		return &NullLit{base{tok}}
	}
	body := par.parseBlockStatement()
	return &FuncLit{base{tok}, params, body}
}
