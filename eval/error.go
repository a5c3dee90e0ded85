package eval

import (
	"fmt"

	"github.com/ashgrove/lt/lexer"
	"github.com/ashgrove/lt/objects"
)

// CreateError builds a position-tagged runtime error anchored to tok, the
// same "[line:col] message" shape the lexer and parser use for their own
// diagnostics.
func (e *Evaluator) CreateError(tok lexer.Token, format string, a ...interface{}) *objects.Error {
	msg := fmt.Sprintf(format, a...)
	return &objects.Error{Message: fmt.Sprintf("[%d:%d] %s", tok.Line, tok.Column, msg)}
}
