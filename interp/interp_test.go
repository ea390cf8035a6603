package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/mylang/parser"
	"github.com/akashmaji946/mylang/value"
)

// run parses and evaluates src against a fresh Interpreter, returning
// the final value and anything written via Print.
func run(t *testing.T, src string) (value.Value, string) {
	t.Helper()
	p := parser.New(src)
	prog := p.Parse()
	require.False(t, p.HasErrors(), "parse errors: %v", p.GetErrors())

	var out bytes.Buffer
	it := New(&out, strings.NewReader(""))
	result, err := it.Run(prog)
	require.NoError(t, err)
	return result, out.String()
}

func TestInterp_Arithmetic_PrecedenceAndDualPlus(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`print 1 + 2 * 3;`, "7\n"},
		{`print "x=" + 4.0;`, "x=4\n"},
		{`print 10 - 2 - 3;`, "5\n"},
		{`print 2 * (3 + 4);`, "14\n"},
		{`print 7 / 2;`, "3.5\n"},
	}
	for _, tt := range tests {
		_, out := run(t, tt.input)
		assert.Equal(t, tt.expected, out, tt.input)
	}
}

func TestInterp_DivisionByZero_IsRuntimeError(t *testing.T) {
	p := parser.New(`print 1 / 0;`)
	prog := p.Parse()
	require.False(t, p.HasErrors())

	it := New(&bytes.Buffer{}, strings.NewReader(""))
	_, err := it.Run(prog)
	require.Error(t, err)
	var rerr *RuntimeError
	require.ErrorAs(t, err, &rerr)
}

func TestInterp_ShortCircuit_AndOr_ReturnLastOperand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`print false and 1;`, "false\n"},
		{`print true and 2;`, "2\n"},
		{`print 0 or "fallback";`, "fallback\n"},
		{`print "x" or "y";`, "x\n"},
	}
	for _, tt := range tests {
		_, out := run(t, tt.input)
		assert.Equal(t, tt.expected, out, tt.input)
	}
}

func TestInterp_Comparisons(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`print 1 < 2;`, "true\n"},
		{`print "a" < "b";`, "true\n"},
		{`print 1 == 1.0;`, "true\n"},
		{`print "a" != "b";`, "true\n"},
	}
	for _, tt := range tests {
		_, out := run(t, tt.input)
		assert.Equal(t, tt.expected, out, tt.input)
	}
}

func TestInterp_IfElse(t *testing.T) {
	_, out := run(t, `
		x = 5;
		if (x > 3) {
			print "big";
		} else {
			print "small";
		}
	`)
	assert.Equal(t, "big\n", out)
}

func TestInterp_While(t *testing.T) {
	_, out := run(t, `
		i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterp_FunctionCall_ReturnsSquare(t *testing.T) {
	_, out := run(t, `
		function f(x) { return x * x; }
		print f(5);
	`)
	assert.Equal(t, "25\n", out)
}

func TestInterp_FunctionCall_DynamicScoping_SeesCallerVariable(t *testing.T) {
	// A function body refers to a variable absent at definition time but
	// present in the caller's environment at call time — only possible
	// under dynamic scoping, since there is no captured defining scope.
	_, out := run(t, `
		function reportY() {
			print y;
		}
		function callIt() {
			y = 42;
			reportY();
		}
		callIt();
	`)
	assert.Equal(t, "42\n", out)
}

func TestInterp_FunctionCall_AssignDoesNotMutateCallersVariable(t *testing.T) {
	// The callee reads counter through its parent (the caller's frame),
	// but Assign writes only the current frame, which is the new frame
	// the call pushed — so the caller's binding is unchanged after the
	// call returns.
	_, out := run(t, `
		function bump() {
			counter = counter + 1;
		}
		counter = 10;
		bump();
		print counter;
	`)
	assert.Equal(t, "10\n", out)
}

func TestInterp_ReturnUnwindsNestedBlocks(t *testing.T) {
	_, out := run(t, `
		function firstPositive(n) {
			if (n > 0) {
				return n;
			}
			return 0;
		}
		print firstPositive(7);
		print firstPositive(-3);
	`)
	assert.Equal(t, "7\n0\n", out)
}

func TestInterp_TopLevelReturn_TerminatesProgram(t *testing.T) {
	p := parser.New(`
		print 1;
		return 99;
		print 2;
	`)
	prog := p.Parse()
	require.False(t, p.HasErrors())

	var out bytes.Buffer
	it := New(&out, strings.NewReader(""))
	result, err := it.Run(prog)
	require.NoError(t, err)
	assert.Equal(t, "1\n", out.String())
	num, ok := result.(*value.Number)
	require.True(t, ok)
	assert.Equal(t, float64(99), num.Val)
}

func TestInterp_ListLiteralAndAmend(t *testing.T) {
	_, out := run(t, `
		a = [10, 20, 30];
		amend a[1] to 99;
		print a[1];
	`)
	assert.Equal(t, "99\n", out)
}

func TestInterp_ListOutOfRange_IsRuntimeError(t *testing.T) {
	p := parser.New(`a = [1, 2]; print a[5];`)
	prog := p.Parse()
	require.False(t, p.HasErrors())

	it := New(&bytes.Buffer{}, strings.NewReader(""))
	_, err := it.Run(prog)
	require.Error(t, err)
	var rerr *RuntimeError
	require.ErrorAs(t, err, &rerr)
}

func TestInterp_DictAssignAndRemove(t *testing.T) {
	_, out := run(t, `
		d = {"k": 1};
		amend d["k"] to 2;
		remove d["k"];
		print d == {};
	`)
	assert.Equal(t, "true\n", out)
}

func TestInterp_DictLiteral_DuplicateKeysLastWins(t *testing.T) {
	_, out := run(t, `
		d = {"k": 1, "k": 2};
		print d["k"];
	`)
	assert.Equal(t, "2\n", out)
}

func TestInterp_UndefinedVariable_IsRuntimeError(t *testing.T) {
	p := parser.New(`print missing;`)
	prog := p.Parse()
	require.False(t, p.HasErrors())

	it := New(&bytes.Buffer{}, strings.NewReader(""))
	_, err := it.Run(prog)
	require.Error(t, err)
	var rerr *RuntimeError
	require.ErrorAs(t, err, &rerr)
}

func TestInterp_Input_ReadsLineAndEchoesPrompt(t *testing.T) {
	var out bytes.Buffer
	it := New(&out, strings.NewReader("Ada\n"))

	p := parser.New(`name = input("Name: "); print "hi " + name;`)
	prog := p.Parse()
	require.False(t, p.HasErrors())

	_, err := it.Run(prog)
	require.NoError(t, err)
	assert.Equal(t, "Name: hi Ada\n", out.String())
}
