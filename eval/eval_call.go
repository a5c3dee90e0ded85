package eval

import (
	"github.com/ashgrove/lt/environment"
	"github.com/ashgrove/lt/function"
	"github.com/ashgrove/lt/objects"
	"github.com/ashgrove/lt/parser"
)

// evalCall evaluates the callee (which may itself be a Call, giving chained
// invocations like `f(a)(b)`), checks arity, binds the arguments in a fresh
// frame parented on the function's closure — not on the caller's current
// frame — and evaluates the body there. Parenting on the closure rather
// than the call site is what makes the function's free variables resolve
// to where it was defined, not to whoever happens to invoke it.
func (e *Evaluator) evalCall(n *parser.Call) objects.Object {
	callee := e.Eval(n.Callee)
	if objects.IsError(callee) {
		return callee
	}
	fn, ok := callee.(*function.Function)
	if !ok {
		return e.CreateError(n.Tok(), "not a function: %s", callee.Type())
	}

	if len(n.Args) != len(fn.Params) {
		return e.CreateError(n.Tok(), "wrong number of arguments: expected %d, got %d", len(fn.Params), len(n.Args))
	}

	args := make([]objects.Object, len(n.Args))
	for i, arg := range n.Args {
		val := e.Eval(arg)
		if objects.IsError(val) {
			return val
		}
		args[i] = val
	}

	callFrame := environment.NewEnvironment(fn.Closure)
	for i, param := range fn.Params {
		callFrame.Declare(param.Name, args[i])
	}

	outer := e.Env
	e.Env = callFrame
	result := e.Eval(fn.Body)
	e.Env = outer

	return objects.UnwrapReturnValue(result)
}
