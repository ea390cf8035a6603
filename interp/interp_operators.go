package interp

import (
	"github.com/akashmaji946/mylang/env"
	"github.com/akashmaji946/mylang/lexer"
	"github.com/akashmaji946/mylang/parser"
	"github.com/akashmaji946/mylang/value"
)

func (it *Interpreter) evalUnary(n *parser.UnaryExpr, e *env.Environment) (value.Value, error) {
	operand, err := it.Eval(n.Operand, e)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case lexer.NOT:
		return &value.Bool{Val: !operand.Truthy()}, nil
	case lexer.MINUS:
		num, ok := operand.(*value.Number)
		if !ok {
			return nil, runtimeErrorf(n.Token, "unary - requires a number, got %s", operand.GetType())
		}
		return &value.Number{Val: -num.Val}, nil
	default:
		return nil, runtimeErrorf(n.Token, "unsupported unary operator %s", n.Op)
	}
}

// evalBinary handles and/or's short-circuit rule before falling
// through to eager evaluation of both operands for every other
// operator (spec.md §4.3.2).
func (it *Interpreter) evalBinary(n *parser.BinaryExpr, e *env.Environment) (value.Value, error) {
	if n.Op == lexer.AND || n.Op == lexer.OR {
		return it.evalLogical(n, e)
	}

	left, err := it.Eval(n.Left, e)
	if err != nil {
		return nil, err
	}
	right, err := it.Eval(n.Right, e)
	if err != nil {
		return nil, err
	}
	return evalBinaryOp(n.Token, n.Op, left, right)
}

// evalLogical implements short-circuit and/or: the result is the last
// operand actually evaluated, not coerced to boolean (spec.md §4.3.2).
func (it *Interpreter) evalLogical(n *parser.BinaryExpr, e *env.Environment) (value.Value, error) {
	left, err := it.Eval(n.Left, e)
	if err != nil {
		return nil, err
	}
	if n.Op == lexer.OR {
		if left.Truthy() {
			return left, nil
		}
		return it.Eval(n.Right, e)
	}
	// AND
	if !left.Truthy() {
		return left, nil
	}
	return it.Eval(n.Right, e)
}

func evalBinaryOp(tok lexer.Token, op lexer.TokenType, left, right value.Value) (value.Value, error) {
	switch op {
	case lexer.PLUS:
		return evalPlus(tok, left, right)
	case lexer.MINUS:
		return evalArithmetic(tok, left, right, func(a, b float64) float64 { return a - b })
	case lexer.MUL:
		return evalArithmetic(tok, left, right, func(a, b float64) float64 { return a * b })
	case lexer.DIV:
		return evalDivide(tok, left, right)
	case lexer.EQ:
		return &value.Bool{Val: left.Equals(right)}, nil
	case lexer.NE:
		return &value.Bool{Val: !left.Equals(right)}, nil
	case lexer.LT, lexer.LE, lexer.GT, lexer.GE:
		return evalComparison(tok, op, left, right)
	default:
		return nil, runtimeErrorf(tok, "unsupported binary operator %s", op)
	}
}

// evalPlus implements the dual `+` semantics (spec.md §4.3.2): string
// concatenation if either operand is a string, else numeric addition.
// value.Value.String already normalizes integer-valued floats before
// coercion, so "" + 2.0 and "" + 2 render identically.
func evalPlus(tok lexer.Token, left, right value.Value) (value.Value, error) {
	_, leftIsString := left.(*value.String)
	_, rightIsString := right.(*value.String)
	if leftIsString || rightIsString {
		return &value.String{Val: left.String() + right.String()}, nil
	}
	ln, lok := left.(*value.Number)
	rn, rok := right.(*value.Number)
	if !lok || !rok {
		return nil, runtimeErrorf(tok, "+ requires numbers or strings, got %s and %s", left.GetType(), right.GetType())
	}
	return &value.Number{Val: ln.Val + rn.Val}, nil
}

func evalArithmetic(tok lexer.Token, left, right value.Value, op func(a, b float64) float64) (value.Value, error) {
	ln, lok := left.(*value.Number)
	rn, rok := right.(*value.Number)
	if !lok || !rok {
		return nil, runtimeErrorf(tok, "arithmetic requires numbers, got %s and %s", left.GetType(), right.GetType())
	}
	return &value.Number{Val: op(ln.Val, rn.Val)}, nil
}

func evalDivide(tok lexer.Token, left, right value.Value) (value.Value, error) {
	ln, lok := left.(*value.Number)
	rn, rok := right.(*value.Number)
	if !lok || !rok {
		return nil, runtimeErrorf(tok, "/ requires numbers, got %s and %s", left.GetType(), right.GetType())
	}
	if rn.Val == 0 {
		return nil, runtimeErrorf(tok, "division by zero")
	}
	return &value.Number{Val: ln.Val / rn.Val}, nil
}

// evalComparison implements ordered comparisons, defined only for
// number-number and string-string pairs (spec.md §4.3.2).
func evalComparison(tok lexer.Token, op lexer.TokenType, left, right value.Value) (value.Value, error) {
	if ln, ok := left.(*value.Number); ok {
		rn, ok := right.(*value.Number)
		if !ok {
			return nil, runtimeErrorf(tok, "cannot compare number with %s", right.GetType())
		}
		return &value.Bool{Val: compareNumbers(op, ln.Val, rn.Val)}, nil
	}
	if ls, ok := left.(*value.String); ok {
		rs, ok := right.(*value.String)
		if !ok {
			return nil, runtimeErrorf(tok, "cannot compare string with %s", right.GetType())
		}
		return &value.Bool{Val: compareStrings(op, ls.Val, rs.Val)}, nil
	}
	return nil, runtimeErrorf(tok, "ordered comparison requires two numbers or two strings, got %s", left.GetType())
}

func compareNumbers(op lexer.TokenType, a, b float64) bool {
	switch op {
	case lexer.LT:
		return a < b
	case lexer.LE:
		return a <= b
	case lexer.GT:
		return a > b
	default: // GE
		return a >= b
	}
}

func compareStrings(op lexer.TokenType, a, b string) bool {
	switch op {
	case lexer.LT:
		return a < b
	case lexer.LE:
		return a <= b
	case lexer.GT:
		return a > b
	default: // GE
		return a >= b
	}
}
