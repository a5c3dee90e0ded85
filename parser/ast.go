// Package parser builds an abstract syntax tree from a Language token
// stream using hand-written recursive descent.
package parser

import "github.com/ashgrove/lt/lexer"

// Node is the common base of every AST node: it carries the token that
// introduced it, useful for error messages anchored to source position.
type Node interface {
	Tok() lexer.Token
}

// Expr is any node that produces a value when evaluated.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that is executed for its effect.
type Stmt interface {
	Node
	stmtNode()
}

type base struct {
	Token lexer.Token
}

func (b base) Tok() lexer.Token { return b.Token }

// ---- expressions ----

type IntLit struct {
	base
	Value int32
}

type StringLit struct {
	base
	Value string
}

type BoolLit struct {
	base
	Value bool
}

type NullLit struct {
	base
}

// Identifier names a binding looked up through the environment chain.
type Identifier struct {
	base
	Name string
}

// Unary is a prefix operator applied to a single operand: `!` or `-`.
type Unary struct {
	base
	Op    lexer.TokenType
	Right Expr
}

// Binary is a left-associative infix operation.
type Binary struct {
	base
	Left  Expr
	Op    lexer.TokenType
	Right Expr
}

// Call is a function invocation. Callee is a general Expr (not just an
// Identifier) so that chained calls `f(a)(b)(c)` parse as nested Call
// nodes: Call(Call(Call(f,[a]),[b]),[c]).
type Call struct {
	base
	Callee Expr
	Args   []Expr
}

// FuncLit is a function literal: parameter names plus a required block
// body. Its closure is not part of the AST — the AST is immutable after
// parsing — it is recorded on the runtime function value each time the
// literal is evaluated, as the frame current at that moment.
type FuncLit struct {
	base
	Params []*Identifier
	Body   *BlockStmt
}

func (*IntLit) exprNode()     {}
func (*StringLit) exprNode()  {}
func (*BoolLit) exprNode()    {}
func (*NullLit) exprNode()    {}
func (*Identifier) exprNode() {}
func (*Unary) exprNode()      {}
func (*Binary) exprNode()     {}
func (*Call) exprNode()       {}
func (*FuncLit) exprNode()    {}

// ---- statements ----

// LetStmt introduces a new binding in the current scope. A function
// declaration `func name(...) {...}` desugars to a LetStmt whose Value
// is a FuncLit.
type LetStmt struct {
	base
	Name  *Identifier
	Value Expr
}

// AssignStmt updates an existing binding found by walking the
// environment chain; it is not a general expression.
type AssignStmt struct {
	base
	Name  *Identifier
	Value Expr
}

type PrintStmt struct {
	base
	Value Expr
}

// ExprStmt evaluates an expression and discards the result.
type ExprStmt struct {
	base
	Value Expr
}

// BlockStmt opens a new child scope; executing it pushes and pops an
// environment frame.
type BlockStmt struct {
	base
	Statements []Stmt
}

type IfStmt struct {
	base
	Cond Expr
	Then Stmt
	Else Stmt // nil when no else clause
}

type WhileStmt struct {
	base
	Cond Expr
	Body Stmt
}

type ReturnStmt struct {
	base
	Value Expr
}

func (*LetStmt) stmtNode()    {}
func (*AssignStmt) stmtNode() {}
func (*PrintStmt) stmtNode()  {}
func (*ExprStmt) stmtNode()   {}
func (*BlockStmt) stmtNode()  {}
func (*IfStmt) stmtNode()     {}
func (*WhileStmt) stmtNode()  {}
func (*ReturnStmt) stmtNode() {}

// Program is the root of a parsed source file: an ordered list of
// top-level statements.
type Program struct {
	Statements []Stmt
}

// Tok satisfies Node so a Program can be passed anywhere a Node is
// expected (error reporting on an empty program has nothing to point
// at, hence the zero Token).
func (p *Program) Tok() lexer.Token {
	if len(p.Statements) > 0 {
		return p.Statements[0].Tok()
	}
	return lexer.Token{}
}
