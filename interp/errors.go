package interp

import (
	"fmt"

	"github.com/akashmaji946/mylang/lexer"
	"github.com/akashmaji946/mylang/value"
)

// RuntimeError is spec.md §7 kind 3: undefined variable/function, bad
// operand type, division by zero, index out of range, missing dict
// key. A call with the wrong number of arguments is not reported:
// extra arguments are ignored and missing parameters stay unbound.
// It carries the source position of the
// node being evaluated so the host can report it the way a Lexical or
// Parse error does.
type RuntimeError struct {
	Line, Column int
	Msg          string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[%d:%d] %s", e.Line, e.Column, e.Msg)
}

func runtimeErrorf(tok lexer.Token, format string, a ...interface{}) error {
	return &RuntimeError{Line: tok.Line, Column: tok.Column, Msg: fmt.Sprintf(format, a...)}
}

// returnSignal is the non-local exit spec.md §4.3.3 describes as "a
// thrown signal carrying a Value": evalStatements' normal
// early-exit-on-error path also catches this, so it unwinds every
// enclosing node up to the nearest Call — and only the nearest Call,
// which type-asserts it back out of the error and never re-wraps it
// (spec.md §9: "caught at call boundary").
type returnSignal struct {
	value value.Value
}

func (r *returnSignal) Error() string { return "return outside of a function call" }
