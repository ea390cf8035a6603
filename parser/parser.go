/*
Package parser implements a recursive-descent parser for mylang.

The parser converts the lexer's token stream into an AST (see node.go).
mylang's grammar has a small, fixed precedence table (spec.md §4.2), so
unlike the teacher's Pratt parser with per-token parse-function tables,
this parser is written as a classic precedence-climbing chain of
parseX functions, one per precedence level, falling through to a
primary-expression parser at the bottom.
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/mylang/lexer"
)

// Parser holds the two-token lookahead over a lexer's token stream and
// collects errors instead of panicking, so a caller can report every
// problem found before a source file up to the first failure.
type Parser struct {
	Lex       *lexer.Lexer
	CurrToken lexer.Token
	NextToken lexer.Token

	Errors []string
}

// New creates a Parser over src, primed so CurrToken/NextToken are
// both valid.
func New(src string) *Parser {
	par := &Parser{Lex: lexer.New(src)}
	par.advance()
	par.advance()
	return par
}

// advance shifts the lookahead window forward by one token.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// expectNext reports whether NextToken has the expected type, adding a
// parse error if not. It never moves the cursor.
func (par *Parser) expectNext(expected lexer.TokenType) bool {
	if par.NextToken.Type != expected {
		par.addError(fmt.Sprintf("[%d:%d] unexpected token %q, expected %s",
			par.NextToken.Line, par.NextToken.Column, par.NextToken.Literal, expected))
		return false
	}
	return true
}

// expectAdvance checks expectNext and, if it matched, advances past it.
func (par *Parser) expectAdvance(expected lexer.TokenType) bool {
	if !par.expectNext(expected) {
		return false
	}
	par.advance()
	return true
}

func (par *Parser) addError(msg string) {
	par.Errors = append(par.Errors, msg)
}

// HasErrors reports whether any parse error has been collected.
func (par *Parser) HasErrors() bool { return len(par.Errors) > 0 }

// GetErrors returns every error collected so far.
func (par *Parser) GetErrors() []string { return par.Errors }

// consumeOptionalSemicolon advances past a trailing ';' if present.
// spec.md §4.2 treats the semicolon after print/return/define/amend/
// remove/assignment/expression statements as optional syntactic salt.
func (par *Parser) consumeOptionalSemicolon() {
	if par.NextToken.Type == lexer.SEMICOLON {
		par.advance()
	}
}

// Parse consumes the whole token stream, returning the program as a
// flat list of top-level statements. Parsing stops at the first error
// (spec.md §4.2: "no error recovery").
func (par *Parser) Parse() *Program {
	prog := &Program{}
	for par.CurrToken.Type != lexer.EOF {
		if par.HasErrors() {
			break
		}
		stmt := par.parseStatement()
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		par.advance()
	}
	return prog
}

// parseStatement dispatches on the current token per the table in
// spec.md §4.2.
func (par *Parser) parseStatement() StatementNode {
	switch par.CurrToken.Type {
	case lexer.PRINT:
		return par.parsePrintStatement()
	case lexer.IF:
		return par.parseIfStatement()
	case lexer.WHILE:
		return par.parseWhileStatement()
	case lexer.FUNCTION:
		return par.parseFuncDefStatement()
	case lexer.RETURN:
		return par.parseReturnStatement()
	case lexer.LBRACE:
		return par.parseBlock()
	case lexer.DEFINE:
		return par.parseDefineStatement()
	case lexer.AMEND:
		return par.parseAmendStatement()
	case lexer.REMOVE:
		return par.parseRemoveStatement()
	case lexer.IDENT:
		if par.NextToken.Type == lexer.ASSIGN {
			return par.parseAssignStatement()
		}
		return par.parseExpressionStatement()
	case lexer.EOF:
		return nil
	default:
		return par.parseExpressionStatement()
	}
}
