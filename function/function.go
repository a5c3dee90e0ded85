// Package function holds the runtime function value. It is kept in its
// own package, separate from objects, for the same reason the teacher
// keeps it separate: a Function must reference both parser (its body
// AST) and environment (its closure), so folding it into objects would
// force objects to import environment, which itself imports objects — an
// import cycle.
package function

import (
	"github.com/ashgrove/lt/environment"
	"github.com/ashgrove/lt/objects"
	"github.com/ashgrove/lt/parser"
)

// Function is a first-class function value: an ordered parameter list,
// a required block body, and a closure — the environment frame that was
// current when the function literal was evaluated. The AST node it
// was parsed from (parser.FuncLit) never carries a closure; Function is
// the runtime value that does.
type Function struct {
	Name    string
	Params  []*parser.Identifier
	Body    *parser.BlockStmt
	Closure *environment.Environment
}

func (f *Function) Type() objects.ObjectType { return objects.FunctionType }

// Inspect renders the language's Display form for a function value.
func (f *Function) Inspect() string { return "<func>" }
