// Package eval walks a parsed Program and produces runtime objects.Object
// values, threading a single environment.Environment chain through
// statement and expression evaluation.
package eval

import (
	"io"
	"os"

	"github.com/ashgrove/lt/environment"
	"github.com/ashgrove/lt/objects"
	"github.com/ashgrove/lt/parser"
)

// Evaluator holds the mutable state a run of the tree walker needs: the
// current environment frame and the stream `print` writes to.
type Evaluator struct {
	Env *environment.Environment
	Out io.Writer
}

// NewEvaluator returns an Evaluator with a fresh global frame, writing
// print output to os.Stdout.
func NewEvaluator() *Evaluator {
	return &Evaluator{
		Env: environment.NewEnvironment(nil),
		Out: os.Stdout,
	}
}

// SetWriter redirects print output, used by the REPL and by tests that
// want to capture output instead of writing to the terminal.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Out = w
}

// Eval dispatches on the concrete node type and returns the resulting
// Object. It is the single entry point both statement and expression
// evaluation recurse through.
func (e *Evaluator) Eval(node parser.Node) objects.Object {
	switch n := node.(type) {
	case *parser.Program:
		return e.evalProgram(n)
	case *parser.BlockStmt:
		return e.evalBlock(n)
	case *parser.LetStmt:
		return e.evalLetStmt(n)
	case *parser.AssignStmt:
		return e.evalAssignStmt(n)
	case *parser.PrintStmt:
		return e.evalPrintStmt(n)
	case *parser.ExprStmt:
		return e.Eval(n.Value)
	case *parser.IfStmt:
		return e.evalIfStmt(n)
	case *parser.WhileStmt:
		return e.evalWhileStmt(n)
	case *parser.ReturnStmt:
		return e.evalReturnStmt(n)

	case *parser.IntLit:
		return &objects.Integer{Value: n.Value}
	case *parser.StringLit:
		return &objects.String{Value: n.Value}
	case *parser.BoolLit:
		return &objects.Boolean{Value: n.Value}
	case *parser.NullLit:
		return &objects.Null{}
	case *parser.Identifier:
		return e.evalIdentifier(n)
	case *parser.Unary:
		return e.evalUnary(n)
	case *parser.Binary:
		return e.evalBinary(n)
	case *parser.FuncLit:
		return e.evalFuncLit(n)
	case *parser.Call:
		return e.evalCall(n)
	}
	return e.CreateError(node.Tok(), "unhandled node type: %T", node)
}

// evalProgram runs every top-level statement in the global frame, stopping
// at the first error or bare return (a return outside any function body
// simply ends the program with its value, there being no caller frame to
// unwrap it for).
func (e *Evaluator) evalProgram(prog *parser.Program) objects.Object {
	var result objects.Object = &objects.Null{}
	for _, stmt := range prog.Statements {
		result = e.Eval(stmt)
		if objects.IsError(result) {
			return result
		}
		if rv, ok := result.(*objects.ReturnValue); ok {
			return rv.Value
		}
	}
	return result
}
