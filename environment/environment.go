// Package environment implements the linked chain of name→value frames
// the evaluator walks for variable lookup, declaration, and assignment.
package environment

import (
	"fmt"

	"github.com/ashgrove/lt/objects"
)

// Environment is one frame in the scope chain: a local binding map plus
// a pointer to the enclosing frame. Go's ordinary pointer semantics give
// the shared-mutable-parent property the language needs for free — a
// function's Closure field and a still-running block's current frame can
// reference the same Environment, and a mutation through either is
// visible to both, with the garbage collector retiring the frame once
// its last referent drops it.
type Environment struct {
	vars   map[string]objects.Object
	Parent *Environment
}

// NewEnvironment creates a frame whose parent is parent (nil for the
// global/root frame).
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		vars:   make(map[string]objects.Object),
		Parent: parent,
	}
}

// Lookup searches the current frame, then recurses into Parent, until
// the name is found or the chain is exhausted.
func (e *Environment) Lookup(name string) (objects.Object, bool) {
	if val, ok := e.vars[name]; ok {
		return val, true
	}
	if e.Parent != nil {
		return e.Parent.Lookup(name)
	}
	return nil, false
}

// Declare unconditionally binds name to value in the current frame. A
// second Declare of the same name in the same frame shadows the first —
// no redeclaration error is raised.
func (e *Environment) Declare(name string, value objects.Object) {
	e.vars[name] = value
}

// Assign updates an existing binding, searching up the chain for the
// frame that owns it and mutating it there. It fails if name is bound
// nowhere in the chain, matching the language's "assignment requires a
// prior declaration" rule.
func (e *Environment) Assign(name string, value objects.Object) error {
	if _, ok := e.vars[name]; ok {
		e.vars[name] = value
		return nil
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, value)
	}
	return fmt.Errorf("undefined variable: %s", name)
}
