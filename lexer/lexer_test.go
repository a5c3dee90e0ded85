package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tokenCase struct {
	Input    string
	Expected []Token
}

func tok(typ TokenType, lit string) Token {
	return Token{Type: typ, Literal: lit}
}

func stripPos(tokens []Token) []Token {
	out := make([]Token, len(tokens))
	for i, t := range tokens {
		out[i] = Token{Type: t.Type, Literal: t.Literal}
	}
	return out
}

func TestConsumeTokens(t *testing.T) {
	tests := []tokenCase{
		{
			Input: `123 + 2 31 - 12`,
			Expected: []Token{
				tok(INT, "123"), tok(PLUS, "+"), tok(INT, "2"),
				tok(INT, "31"), tok(MINUS, "-"), tok(INT, "12"),
			},
		},
		{
			Input: `let x = 10; print x;`,
			Expected: []Token{
				tok(LET, "let"), tok(IDENT, "x"), tok(ASSIGN, "="), tok(INT, "10"), tok(SEMICOLON, ";"),
				tok(PRINT, "print"), tok(IDENT, "x"), tok(SEMICOLON, ";"),
			},
		},
		{
			Input: `a == b != c <= d >= e`,
			Expected: []Token{
				tok(IDENT, "a"), tok(EQ, "=="), tok(IDENT, "b"), tok(NOT_EQ, "!="),
				tok(IDENT, "c"), tok(LT_EQ, "<="), tok(IDENT, "d"), tok(GT_EQ, ">="), tok(IDENT, "e"),
			},
		},
		{
			Input: `func add(a, b) { return a + b; }`,
			Expected: []Token{
				tok(FUNC, "func"), tok(IDENT, "add"), tok(LPAREN, "("), tok(IDENT, "a"),
				tok(COMMA, ","), tok(IDENT, "b"), tok(RPAREN, ")"), tok(LBRACE, "{"),
				tok(RETURN, "return"), tok(IDENT, "a"), tok(PLUS, "+"), tok(IDENT, "b"),
				tok(SEMICOLON, ";"), tok(RBRACE, "}"),
			},
		},
		{
			Input:    `"hello world" 'single'`,
			Expected: []Token{tok(STRING, "hello world"), tok(STRING, "single")},
		},
		{
			Input: `true and false or !true`,
			Expected: []Token{
				tok(TRUE, "true"), tok(AND, "and"), tok(FALSE, "false"),
				tok(OR, "or"), tok(BANG, "!"), tok(TRUE, "true"),
			},
		},
	}

	for _, tt := range tests {
		lex := NewLexer(tt.Input)
		got := lex.ConsumeTokens()
		assert.Equal(t, tt.Expected, stripPos(got))
		assert.False(t, lex.HasErrors())
	}
}

// TestTokenRoundTrip verifies the literal payload of integer and string
// tokens equals the source text exactly, for arbitrary small inputs.
func TestTokenRoundTrip(t *testing.T) {
	for _, n := range []string{"0", "1", "42", "2147483647"} {
		lex := NewLexer(n)
		got := lex.NextToken()
		assert.Equal(t, INT, got.Type)
		assert.Equal(t, n, got.Literal)
	}

	for _, s := range []string{"", "hi", "a b c", "line\nbreak"} {
		lex := NewLexer(`"` + s + `"`)
		got := lex.NextToken()
		assert.Equal(t, STRING, got.Type)
		assert.Equal(t, s, got.Literal)
	}
}

func TestIntegerOverflowIsLexError(t *testing.T) {
	lex := NewLexer("99999999999999999999")
	got := lex.NextToken()
	assert.Equal(t, INVALID, got.Type)
	assert.True(t, lex.HasErrors())
}

func TestUnterminatedStringIsLexError(t *testing.T) {
	lex := NewLexer(`"unterminated`)
	got := lex.NextToken()
	assert.Equal(t, INVALID, got.Type)
	assert.True(t, lex.HasErrors())
}

func TestDivisionIsSingleToken(t *testing.T) {
	lex := NewLexer(`10 / 2`)
	got := lex.ConsumeTokens()
	assert.Equal(t, []Token{tok(INT, "10"), tok(SLASH, "/"), tok(INT, "2")}, stripPos(got))
}
