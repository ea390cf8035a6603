/*
Package parser converts a mylang token stream into an abstract syntax
tree. Node shapes are a closed family discriminated by Go's dynamic
type (spec.md §3/§9): the evaluator dispatches on them with a single
type switch rather than a NodeVisitor, since mylang's grammar is small
and fixed compared to the teacher's growing node family.
*/
package parser

import "github.com/akashmaji946/mylang/lexer"

// Node is the base interface implemented by every AST node.
type Node interface {
	Literal() string
}

// StatementNode marks a node usable where a statement is expected.
// Every ExpressionNode is also a StatementNode (an expression can
// appear as a statement, e.g. a bare function call).
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode marks a node usable where a value-producing
// expression is expected.
type ExpressionNode interface {
	StatementNode
	Expression()
}

// Program is the root of the AST: the whole source file as one block
// of statements.
type Program struct {
	Statements []StatementNode
}

func (p *Program) Literal() string { return "program" }

// NumberLit is a numeric literal (spec.md §3 Num).
type NumberLit struct {
	Token lexer.Token
	Value float64
}

func (n *NumberLit) Literal() string { return n.Token.Literal }
func (n *NumberLit) Statement()      {}
func (n *NumberLit) Expression()     {}

// StringLit is a string literal (spec.md §3 Str).
type StringLit struct {
	Token lexer.Token
	Value string
}

func (n *StringLit) Literal() string { return n.Token.Literal }
func (n *StringLit) Statement()      {}
func (n *StringLit) Expression()     {}

// BoolLit is a boolean literal (spec.md §3 Bool).
type BoolLit struct {
	Token lexer.Token
	Value bool
}

func (n *BoolLit) Literal() string { return n.Token.Literal }
func (n *BoolLit) Statement()      {}
func (n *BoolLit) Expression()     {}

// VarExpr is an identifier reference (spec.md §3 Var).
type VarExpr struct {
	Token lexer.Token
	Name  string
}

func (n *VarExpr) Literal() string { return n.Name }
func (n *VarExpr) Statement()      {}
func (n *VarExpr) Expression()     {}

// UnaryExpr is a prefix operator applied to one operand: `-expr` or
// `!expr` (spec.md §3 UnaryOp).
type UnaryExpr struct {
	Token   lexer.Token
	Op      lexer.TokenType
	Operand ExpressionNode
}

func (n *UnaryExpr) Literal() string { return string(n.Op) }
func (n *UnaryExpr) Statement()      {}
func (n *UnaryExpr) Expression()     {}

// BinaryExpr is an infix operator applied to two operands (spec.md §3
// BinOp). Op is one of +,-,*,/,==,!=,<,<=,>,>=,and,or.
type BinaryExpr struct {
	Token lexer.Token
	Left  ExpressionNode
	Op    lexer.TokenType
	Right ExpressionNode
}

func (n *BinaryExpr) Literal() string { return string(n.Op) }
func (n *BinaryExpr) Statement()      {}
func (n *BinaryExpr) Expression()     {}

// AssignStmt binds or rebinds Name in the current frame (spec.md
// §4.3.1). `define IDENT expr ;` and `IDENT = expr ;` both produce
// this node (spec.md §9 Open Questions).
type AssignStmt struct {
	Token lexer.Token
	Name  string
	Value ExpressionNode
}

func (n *AssignStmt) Literal() string { return n.Name }
func (n *AssignStmt) Statement()      {}

// IndexExpr is element access on a list or dict: `base[index]`
// (spec.md §3 IndexExpr).
type IndexExpr struct {
	Token lexer.Token
	Base  ExpressionNode
	Index ExpressionNode
}

func (n *IndexExpr) Literal() string { return "[]" }
func (n *IndexExpr) Statement()      {}
func (n *IndexExpr) Expression()     {}

// IndexAssignStmt rewrites the element named by Base/Index: `amend
// base[index] to value ;` (spec.md §3 IndexAssign).
type IndexAssignStmt struct {
	Token lexer.Token
	Base  ExpressionNode
	Index ExpressionNode
	Value ExpressionNode
}

func (n *IndexAssignStmt) Literal() string { return "amend" }
func (n *IndexAssignStmt) Statement()      {}

// RemoveStmt deletes the element named by Base/Index: `remove
// base[index] ;` (spec.md §3 Remove).
type RemoveStmt struct {
	Token lexer.Token
	Base  ExpressionNode
	Index ExpressionNode
}

func (n *RemoveStmt) Literal() string { return "remove" }
func (n *RemoveStmt) Statement()      {}

// ListExpr is a list literal: `[item, item, ...]` (spec.md §3 ListExpr).
type ListExpr struct {
	Token    lexer.Token
	Elements []ExpressionNode
}

func (n *ListExpr) Literal() string { return "[]" }
func (n *ListExpr) Statement()      {}
func (n *ListExpr) Expression()     {}

// DictExpr is a dict literal: `{key: value, ...}` (spec.md §3 DictExpr).
// Keys and Values are parallel slices, evaluated left-to-right in
// pairs at runtime.
type DictExpr struct {
	Token  lexer.Token
	Keys   []ExpressionNode
	Values []ExpressionNode
}

func (n *DictExpr) Literal() string { return "{}" }
func (n *DictExpr) Statement()      {}
func (n *DictExpr) Expression()     {}

// CallExpr invokes a user-defined function by name (spec.md §3 Call).
type CallExpr struct {
	Token lexer.Token
	Name  string
	Args  []ExpressionNode
}

func (n *CallExpr) Literal() string { return n.Name }
func (n *CallExpr) Statement()      {}
func (n *CallExpr) Expression()     {}

// FuncDefStmt declares a function, replacing any prior definition of
// the same name in the function table (spec.md §3 FuncDef).
type FuncDefStmt struct {
	Token  lexer.Token
	Name   string
	Params []string
	Body   *BlockStmt
}

func (n *FuncDefStmt) Literal() string { return n.Name }
func (n *FuncDefStmt) Statement()      {}

// ReturnStmt raises the non-local return signal caught at the nearest
// enclosing Call (spec.md §3 Return, §4.3.3).
type ReturnStmt struct {
	Token lexer.Token
	Value ExpressionNode
}

func (n *ReturnStmt) Literal() string { return "return" }
func (n *ReturnStmt) Statement()      {}

// IfStmt is a conditional; Else is nil when there is no else-branch
// (spec.md §3 If).
type IfStmt struct {
	Token     lexer.Token
	Condition ExpressionNode
	Then      *BlockStmt
	Else      *BlockStmt
}

func (n *IfStmt) Literal() string { return "if" }
func (n *IfStmt) Statement()      {}

// WhileStmt repeats Body while Condition is truthy (spec.md §3 While).
type WhileStmt struct {
	Token     lexer.Token
	Condition ExpressionNode
	Body      *BlockStmt
}

func (n *WhileStmt) Literal() string { return "while" }
func (n *WhileStmt) Statement()      {}

// PrintStmt evaluates Value and emits one line (spec.md §3 Print).
type PrintStmt struct {
	Token lexer.Token
	Value ExpressionNode
}

func (n *PrintStmt) Literal() string { return "print" }
func (n *PrintStmt) Statement()      {}

// InputExpr evaluates Prompt, writes it without a trailing newline,
// and yields one line read from standard input (spec.md §3 Input).
// Only reachable from expression position (spec.md §9).
type InputExpr struct {
	Token  lexer.Token
	Prompt ExpressionNode
}

func (n *InputExpr) Literal() string { return "input" }
func (n *InputExpr) Statement()      {}
func (n *InputExpr) Expression()     {}

// BlockStmt is a sequence of statements executed in the current
// environment — no new frame is pushed (spec.md §3 Block, §9).
type BlockStmt struct {
	Token      lexer.Token
	Statements []StatementNode
}

func (n *BlockStmt) Literal() string { return "{}" }
func (n *BlockStmt) Statement()      {}
