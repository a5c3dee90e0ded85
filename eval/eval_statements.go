package eval

import (
	"fmt"

	"github.com/ashgrove/lt/environment"
	"github.com/ashgrove/lt/objects"
	"github.com/ashgrove/lt/parser"
)

// evalBlock always opens a new child frame, runs its statements in order,
// and restores the enclosing frame on the way out — whether the block
// exits normally, via error, or via a return that will keep unwinding.
// This diverges from evaluating statements directly in the caller's
// frame: it's what makes a block's own `let`s invisible once control
// leaves it.
func (e *Evaluator) evalBlock(block *parser.BlockStmt) objects.Object {
	outer := e.Env
	e.Env = environment.NewEnvironment(outer)
	defer func() { e.Env = outer }()

	var result objects.Object = &objects.Null{}
	for _, stmt := range block.Statements {
		result = e.Eval(stmt)
		if objects.IsError(result) || objects.IsReturnValue(result) {
			return result
		}
	}
	return result
}

// evalLetStmt evaluates the initializer and declares it in the current
// frame, always shadowing any outer binding of the same name — no
// redeclaration error is raised.
func (e *Evaluator) evalLetStmt(stmt *parser.LetStmt) objects.Object {
	val := e.Eval(stmt.Value)
	if objects.IsError(val) {
		return val
	}
	e.Env.Declare(stmt.Name.Name, val)
	return val
}

func (e *Evaluator) evalAssignStmt(stmt *parser.AssignStmt) objects.Object {
	val := e.Eval(stmt.Value)
	if objects.IsError(val) {
		return val
	}
	if err := e.Env.Assign(stmt.Name.Name, val); err != nil {
		return e.CreateError(stmt.Name.Tok(), "%s", err.Error())
	}
	return val
}

func (e *Evaluator) evalPrintStmt(stmt *parser.PrintStmt) objects.Object {
	val := e.Eval(stmt.Value)
	if objects.IsError(val) {
		return val
	}
	fmt.Fprintln(e.Out, displayForm(val))
	return val
}

func (e *Evaluator) evalIfStmt(stmt *parser.IfStmt) objects.Object {
	cond := e.Eval(stmt.Cond)
	if objects.IsError(cond) {
		return cond
	}
	b, err := e.coerceBool(stmt.Cond.Tok(), cond)
	if err != nil {
		return err
	}
	if b {
		return e.Eval(stmt.Then)
	}
	if stmt.Else != nil {
		return e.Eval(stmt.Else)
	}
	return &objects.Null{}
}

func (e *Evaluator) evalWhileStmt(stmt *parser.WhileStmt) objects.Object {
	var result objects.Object = &objects.Null{}
	for {
		cond := e.Eval(stmt.Cond)
		if objects.IsError(cond) {
			return cond
		}
		b, err := e.coerceBool(stmt.Cond.Tok(), cond)
		if err != nil {
			return err
		}
		if !b {
			return result
		}
		result = e.Eval(stmt.Body)
		if objects.IsError(result) || objects.IsReturnValue(result) {
			return result
		}
	}
}

func (e *Evaluator) evalReturnStmt(stmt *parser.ReturnStmt) objects.Object {
	val := e.Eval(stmt.Value)
	if objects.IsError(val) {
		return val
	}
	return &objects.ReturnValue{Value: val}
}
