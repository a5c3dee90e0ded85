package parser

import (
	"testing"

	"github.com/ashgrove/lt/lexer"
	"github.com/stretchr/testify/assert"
)

func parseProgram(t *testing.T, src string) *Program {
	t.Helper()
	p := NewParser(src)
	prog := p.Parse()
	assert.False(t, p.HasErrors(), "unexpected parse errors: %v", p.GetErrors())
	return prog
}

func exprOf(t *testing.T, prog *Program) Expr {
	t.Helper()
	assert.Len(t, prog.Statements, 1)
	stmt, ok := prog.Statements[0].(*ExprStmt)
	assert.True(t, ok, "expected a single ExprStmt, got %T", prog.Statements[0])
	return stmt.Value
}

// TestOperatorPrecedence verifies "a + b * c - d" parses as "((a + (b*c)) - d)".
func TestOperatorPrecedence(t *testing.T) {
	prog := parseProgram(t, "a + b * c - d;")
	expr := exprOf(t, prog)

	outer, ok := expr.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, lexer.MINUS, outer.Op)

	left, ok := outer.Left.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, lexer.PLUS, left.Op)
	assert.Equal(t, "a", left.Left.(*Identifier).Name)

	mul, ok := left.Right.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, lexer.STAR, mul.Op)
	assert.Equal(t, "b", mul.Left.(*Identifier).Name)
	assert.Equal(t, "c", mul.Right.(*Identifier).Name)

	assert.Equal(t, "d", outer.Right.(*Identifier).Name)
}

// TestLeftAssociativity verifies "a - b - c" parses as "((a - b) - c)".
func TestLeftAssociativity(t *testing.T) {
	prog := parseProgram(t, "a - b - c;")
	expr := exprOf(t, prog)

	outer, ok := expr.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, "c", outer.Right.(*Identifier).Name)

	inner, ok := outer.Left.(*Binary)
	assert.True(t, ok)
	assert.Equal(t, "a", inner.Left.(*Identifier).Name)
	assert.Equal(t, "b", inner.Right.(*Identifier).Name)
}

// TestCallChaining verifies "f(a)(b)(c)" parses as Call(Call(Call(f,[a]),[b]),[c]).
func TestCallChaining(t *testing.T) {
	prog := parseProgram(t, "f(a)(b)(c);")
	expr := exprOf(t, prog)

	outer, ok := expr.(*Call)
	assert.True(t, ok)
	assert.Len(t, outer.Args, 1)
	assert.Equal(t, "c", outer.Args[0].(*Identifier).Name)

	mid, ok := outer.Callee.(*Call)
	assert.True(t, ok)
	assert.Equal(t, "b", mid.Args[0].(*Identifier).Name)

	inner, ok := mid.Callee.(*Call)
	assert.True(t, ok)
	assert.Equal(t, "a", inner.Args[0].(*Identifier).Name)
	assert.Equal(t, "f", inner.Callee.(*Identifier).Name)
}

// TestAssignmentVsDeclaration verifies `let` produces a LetStmt while a
// bare `name = expr;` produces an AssignStmt.
func TestAssignmentVsDeclaration(t *testing.T) {
	prog := parseProgram(t, "let x = 1; x = 2;")
	assert.Len(t, prog.Statements, 2)

	letStmt, ok := prog.Statements[0].(*LetStmt)
	assert.True(t, ok)
	assert.Equal(t, "x", letStmt.Name.Name)

	assignStmt, ok := prog.Statements[1].(*AssignStmt)
	assert.True(t, ok)
	assert.Equal(t, "x", assignStmt.Name.Name)
}

// TestForLoopDesugaring verifies the for-loop header desugars to
// Block[init, While(cond, Block[body..., incr])].
func TestForLoopDesugaring(t *testing.T) {
	prog := parseProgram(t, "for (let i = 0; i < 3; i = i + 1) { print i; }")
	assert.Len(t, prog.Statements, 1)

	outer, ok := prog.Statements[0].(*BlockStmt)
	assert.True(t, ok)
	assert.Len(t, outer.Statements, 2)

	_, ok = outer.Statements[0].(*LetStmt)
	assert.True(t, ok)

	whileStmt, ok := outer.Statements[1].(*WhileStmt)
	assert.True(t, ok)

	body, ok := whileStmt.Body.(*BlockStmt)
	assert.True(t, ok)
	assert.Len(t, body.Statements, 2)
	_, ok = body.Statements[0].(*PrintStmt)
	assert.True(t, ok)
	_, ok = body.Statements[1].(*AssignStmt)
	assert.True(t, ok)
}

func TestFunctionDeclarationDesugarsToLet(t *testing.T) {
	prog := parseProgram(t, "func add(a, b) { return a + b; }")
	assert.Len(t, prog.Statements, 1)
	letStmt, ok := prog.Statements[0].(*LetStmt)
	assert.True(t, ok)
	assert.Equal(t, "add", letStmt.Name.Name)
	fn, ok := letStmt.Value.(*FuncLit)
	assert.True(t, ok)
	assert.Len(t, fn.Params, 2)
}

func TestIfElseStatement(t *testing.T) {
	prog := parseProgram(t, `if (true) print "a"; else print "b";`)
	ifStmt, ok := prog.Statements[0].(*IfStmt)
	assert.True(t, ok)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}
