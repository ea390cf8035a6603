/*
Package interp implements mylang's tree-walking evaluator (spec.md
§4.3). It is grounded on the teacher's eval.Evaluator — Writer/Reader
fields for I/O redirection, a dispatch method per AST family split
across files by concern — adapted to the two divergences spec.md
mandates: dynamic scoping with no closures (§4.3.3, §9) and a function
table that holds raw *parser.FuncDefStmt rather than a closure object,
since there is no defining scope to capture.
*/
package interp

import (
	"bufio"
	"fmt"
	"io"

	"github.com/akashmaji946/mylang/env"
	"github.com/akashmaji946/mylang/parser"
	"github.com/akashmaji946/mylang/value"
)

// Interpreter holds the mutable state of one program's execution: the
// global environment frame, the function table, and the I/O handles
// Print/Input read and write through.
type Interpreter struct {
	Global *env.Environment
	Funcs  map[string]*parser.FuncDefStmt
	Writer io.Writer
	Reader *bufio.Reader
}

// New creates an Interpreter wired to the given output writer and
// input reader — the abstract I/O interface spec.md §1 delegates to
// the host.
func New(w io.Writer, r io.Reader) *Interpreter {
	return &Interpreter{
		Global: env.New(nil),
		Funcs:  make(map[string]*parser.FuncDefStmt),
		Writer: w,
		Reader: bufio.NewReader(r),
	}
}

// Run evaluates a whole program in the global frame. A Return signal
// that escapes every call frame terminates the program with its
// carried value (spec.md §3 invariant 4) rather than propagating as an
// error.
func (it *Interpreter) Run(prog *parser.Program) (value.Value, error) {
	result, err := it.evalStatements(prog.Statements, it.Global)
	if err != nil {
		if ret, ok := err.(*returnSignal); ok {
			return ret.value, nil
		}
		return nil, err
	}
	return result, nil
}

// evalStatements runs stmts in order against e, stopping at the first
// error — which includes a returnSignal, so a return anywhere in a
// sequence unwinds the rest of it (spec.md §4.3: "a post-order
// recursion... Return uses a non-local control-flow mechanism").
func (it *Interpreter) evalStatements(stmts []parser.StatementNode, e *env.Environment) (value.Value, error) {
	var result value.Value = &value.Nil{}
	for _, stmt := range stmts {
		v, err := it.Eval(stmt, e)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// Eval is the single exhaustive dispatch on AST node shape spec.md §9
// calls for — a type switch stands in for the teacher's NodeVisitor
// double-dispatch, since mylang's node family is closed and small.
func (it *Interpreter) Eval(node parser.Node, e *env.Environment) (value.Value, error) {
	switch n := node.(type) {
	case *parser.NumberLit:
		return &value.Number{Val: n.Value}, nil
	case *parser.StringLit:
		return &value.String{Val: n.Value}, nil
	case *parser.BoolLit:
		return &value.Bool{Val: n.Value}, nil
	case *parser.VarExpr:
		return it.evalVar(n, e)
	case *parser.UnaryExpr:
		return it.evalUnary(n, e)
	case *parser.BinaryExpr:
		return it.evalBinary(n, e)
	case *parser.AssignStmt:
		return it.evalAssign(n, e)
	case *parser.IndexExpr:
		return it.evalIndexExpr(n, e)
	case *parser.IndexAssignStmt:
		return it.evalIndexAssign(n, e)
	case *parser.RemoveStmt:
		return it.evalRemove(n, e)
	case *parser.ListExpr:
		return it.evalListExpr(n, e)
	case *parser.DictExpr:
		return it.evalDictExpr(n, e)
	case *parser.CallExpr:
		return it.evalCall(n, e)
	case *parser.FuncDefStmt:
		it.Funcs[n.Name] = n
		return &value.Nil{}, nil
	case *parser.ReturnStmt:
		return it.evalReturn(n, e)
	case *parser.IfStmt:
		return it.evalIf(n, e)
	case *parser.WhileStmt:
		return it.evalWhile(n, e)
	case *parser.PrintStmt:
		return it.evalPrint(n, e)
	case *parser.InputExpr:
		return it.evalInput(n, e)
	case *parser.BlockStmt:
		return it.evalStatements(n.Statements, e)
	default:
		return nil, fmt.Errorf("interp: unhandled node type %T", node)
	}
}

func (it *Interpreter) evalVar(n *parser.VarExpr, e *env.Environment) (value.Value, error) {
	v, ok := e.Lookup(n.Name)
	if !ok {
		return nil, runtimeErrorf(n.Token, "undefined variable %q", n.Name)
	}
	return v, nil
}

func (it *Interpreter) evalAssign(n *parser.AssignStmt, e *env.Environment) (value.Value, error) {
	val, err := it.Eval(n.Value, e)
	if err != nil {
		return nil, err
	}
	e.Assign(n.Name, val)
	return &value.Nil{}, nil
}

func (it *Interpreter) evalReturn(n *parser.ReturnStmt, e *env.Environment) (value.Value, error) {
	val, err := it.Eval(n.Value, e)
	if err != nil {
		return nil, err
	}
	return nil, &returnSignal{value: val}
}

func (it *Interpreter) evalIf(n *parser.IfStmt, e *env.Environment) (value.Value, error) {
	cond, err := it.Eval(n.Condition, e)
	if err != nil {
		return nil, err
	}
	if cond.Truthy() {
		return it.evalStatements(n.Then.Statements, e)
	}
	if n.Else != nil {
		return it.evalStatements(n.Else.Statements, e)
	}
	return &value.Nil{}, nil
}

func (it *Interpreter) evalWhile(n *parser.WhileStmt, e *env.Environment) (value.Value, error) {
	for {
		cond, err := it.Eval(n.Condition, e)
		if err != nil {
			return nil, err
		}
		if !cond.Truthy() {
			break
		}
		if _, err := it.evalStatements(n.Body.Statements, e); err != nil {
			return nil, err
		}
	}
	return &value.Nil{}, nil
}

// evalCall implements spec.md §4.3.3's Call steps, including the
// dynamic-scoping divergence: the new frame's parent is e, the
// caller's CURRENT environment — not the environment active when the
// function was defined. There is deliberately no captured defining
// scope here, unlike function.Function.Scp in the teacher.
func (it *Interpreter) evalCall(n *parser.CallExpr, e *env.Environment) (value.Value, error) {
	fn, ok := it.Funcs[n.Name]
	if !ok {
		return nil, runtimeErrorf(n.Token, "undefined function %q", n.Name)
	}

	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := it.Eval(a, e)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	frame := env.New(e)
	for i, param := range fn.Params {
		if i >= len(args) {
			break // fewer args than params: left unbound, spec.md §4.3.3 step 4
		}
		frame.Assign(param, args[i])
	}
	// extra args beyond len(fn.Params) are silently ignored (spec.md §4.3.3 step 4)

	result, err := it.evalStatements(fn.Body.Statements, frame)
	if err != nil {
		if ret, ok := err.(*returnSignal); ok {
			return ret.value, nil
		}
		return nil, err
	}
	return result, nil
}
