package eval

import (
	"fmt"

	"github.com/ashgrove/lt/function"
	"github.com/ashgrove/lt/lexer"
	"github.com/ashgrove/lt/objects"
	"github.com/ashgrove/lt/parser"
)

func (e *Evaluator) evalIdentifier(n *parser.Identifier) objects.Object {
	val, ok := e.Env.Lookup(n.Name)
	if !ok {
		return e.CreateError(n.Tok(), "undefined variable: %s", n.Name)
	}
	return val
}

// evalFuncLit creates the runtime function value and closes it over the
// frame active right now. Because e.Env is a pointer, a name the function
// refers to but that isn't bound until after this let finishes (the
// recursive self-reference case) is still visible: the Declare that
// follows mutates the very map this Closure points at.
func (e *Evaluator) evalFuncLit(n *parser.FuncLit) objects.Object {
	return &function.Function{
		Params:  n.Params,
		Body:    n.Body,
		Closure: e.Env,
	}
}

// evalUnary implements prefix `!` (boolean negation, after coercion) and
// prefix `-` (arithmetic negation, Num operand required).
func (e *Evaluator) evalUnary(n *parser.Unary) objects.Object {
	right := e.Eval(n.Right)
	if objects.IsError(right) {
		return right
	}
	switch n.Op {
	case lexer.BANG:
		b, err := e.coerceBool(n.Tok(), right)
		if err != nil {
			return err
		}
		return &objects.Boolean{Value: !b}
	case lexer.MINUS:
		i, ok := right.(*objects.Integer)
		if !ok {
			return e.CreateError(n.Tok(), "unary - requires a number, got %s", right.Type())
		}
		return &objects.Integer{Value: -i.Value}
	}
	return e.CreateError(n.Tok(), "unknown unary operator: %s", n.Op)
}

// evalBinary short-circuits `and`/`or` before evaluating the right operand,
// and otherwise evaluates both sides before dispatching on operator and
// operand type.
func (e *Evaluator) evalBinary(n *parser.Binary) objects.Object {
	if n.Op == lexer.AND || n.Op == lexer.OR {
		return e.evalLogical(n)
	}

	left := e.Eval(n.Left)
	if objects.IsError(left) {
		return left
	}
	right := e.Eval(n.Right)
	if objects.IsError(right) {
		return right
	}

	switch {
	case n.Op == lexer.EQ:
		return &objects.Boolean{Value: objectsEqual(left, right)}
	case n.Op == lexer.NOT_EQ:
		return &objects.Boolean{Value: !objectsEqual(left, right)}
	}

	li, lok := left.(*objects.Integer)
	ri, rok := right.(*objects.Integer)
	if lok && rok {
		return e.evalIntegerBinary(n, li, ri)
	}

	if n.Op == lexer.PLUS {
		return &objects.String{Value: displayForm(left) + displayForm(right)}
	}

	return e.CreateError(n.Tok(), "type mismatch: %s %s %s", left.Type(), n.Op, right.Type())
}

func (e *Evaluator) evalLogical(n *parser.Binary) objects.Object {
	left := e.Eval(n.Left)
	if objects.IsError(left) {
		return left
	}
	b, err := e.coerceBool(n.Tok(), left)
	if err != nil {
		return err
	}
	if n.Op == lexer.OR && b {
		return left
	}
	if n.Op == lexer.AND && !b {
		return left
	}
	return e.Eval(n.Right)
}

func (e *Evaluator) evalIntegerBinary(n *parser.Binary, l, r *objects.Integer) objects.Object {
	switch n.Op {
	case lexer.PLUS:
		return &objects.Integer{Value: l.Value + r.Value}
	case lexer.MINUS:
		return &objects.Integer{Value: l.Value - r.Value}
	case lexer.STAR:
		return &objects.Integer{Value: l.Value * r.Value}
	case lexer.SLASH:
		if r.Value == 0 {
			return e.CreateError(n.Tok(), "division by zero")
		}
		return &objects.Integer{Value: l.Value / r.Value}
	case lexer.LT:
		return &objects.Boolean{Value: l.Value < r.Value}
	case lexer.LT_EQ:
		return &objects.Boolean{Value: l.Value <= r.Value}
	case lexer.GT:
		return &objects.Boolean{Value: l.Value > r.Value}
	case lexer.GT_EQ:
		return &objects.Boolean{Value: l.Value >= r.Value}
	}
	return e.CreateError(n.Tok(), "unknown operator for numbers: %s", n.Op)
}

func objectsEqual(a, b objects.Object) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case *objects.Integer:
		return av.Value == b.(*objects.Integer).Value
	case *objects.String:
		return av.Value == b.(*objects.String).Value
	case *objects.Boolean:
		return av.Value == b.(*objects.Boolean).Value
	case *objects.Null:
		return true
	}
	return a == b
}

// coerceBool implements the language's boolean-coercion table: a Boolean
// passes through, a number is truthy iff positive, a string is truthy iff
// nonempty, null is always false, and a function is a type error — the
// one value form excluded from coercion entirely.
func (e *Evaluator) coerceBool(tok lexer.Token, obj objects.Object) (bool, *objects.Error) {
	switch v := obj.(type) {
	case *objects.Boolean:
		return v.Value, nil
	case *objects.Integer:
		return v.Value > 0, nil
	case *objects.String:
		return v.Value != "", nil
	case *objects.Null:
		return false, nil
	default:
		return false, e.CreateError(tok, "cannot coerce %s to a boolean", obj.Type())
	}
}

// displayForm renders obj the way `print` shows it: digits for a number,
// `true`/`false` for a boolean, the string verbatim, `null`, or `<func>`.
func displayForm(obj objects.Object) string {
	switch v := obj.(type) {
	case *objects.Integer:
		return fmt.Sprintf("%d", v.Value)
	case *objects.Boolean:
		if v.Value {
			return "true"
		}
		return "false"
	case *objects.String:
		return v.Value
	case *objects.Null:
		return "null"
	case *function.Function:
		return "<func>"
	case *objects.Error:
		return v.Inspect()
	}
	return obj.Inspect()
}
