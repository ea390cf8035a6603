package interp

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/mylang/env"
	"github.com/akashmaji946/mylang/parser"
	"github.com/akashmaji946/mylang/value"
)

// evalPrint evaluates n.Value and writes its String() form plus a
// newline to it.Writer (spec.md §3 Print / §4.3.4).
func (it *Interpreter) evalPrint(n *parser.PrintStmt, e *env.Environment) (value.Value, error) {
	v, err := it.Eval(n.Value, e)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(it.Writer, v.String())
	return &value.Nil{}, nil
}

// evalInput evaluates n.Prompt, writes it to it.Writer without a
// trailing newline, then reads one newline-terminated line from
// it.Reader and returns it as a String with the newline stripped
// (spec.md §3 Input / §4.3.4).
func (it *Interpreter) evalInput(n *parser.InputExpr, e *env.Environment) (value.Value, error) {
	prompt, err := it.Eval(n.Prompt, e)
	if err != nil {
		return nil, err
	}
	fmt.Fprint(it.Writer, prompt.String())

	line, err := it.Reader.ReadString('\n')
	if err != nil && line == "" {
		return nil, runtimeErrorf(n.Token, "input: %s", err)
	}
	return &value.String{Val: strings.TrimRight(line, "\r\n")}, nil
}
