package parser

import (
	"fmt"

	"github.com/akashmaji946/mylang/lexer"
)

// parseExpression enters the precedence ladder at its lowest level
// (spec.md §4.2: or < and < equality < comparison < additive <
// multiplicative < unary < primary).
func (par *Parser) parseExpression() ExpressionNode {
	return par.parseOr()
}

// binaryLevel parses left-associative binary operators at one
// precedence tier: call next() for an operand, then keep consuming
// one of ops followed by another next()-parsed operand.
func (par *Parser) binaryLevel(next func() ExpressionNode, ops ...lexer.TokenType) ExpressionNode {
	left := next()
	for matchesAny(par.NextToken.Type, ops) {
		opTok := par.NextToken
		par.advance() // CurrToken == operator
		op := par.CurrToken.Type
		par.advance() // CurrToken == start of right operand
		right := next()
		left = &BinaryExpr{Token: opTok, Left: left, Op: op, Right: right}
	}
	return left
}

func matchesAny(t lexer.TokenType, ops []lexer.TokenType) bool {
	for _, op := range ops {
		if t == op {
			return true
		}
	}
	return false
}

func (par *Parser) parseOr() ExpressionNode {
	return par.binaryLevel(par.parseAnd, lexer.OR)
}

func (par *Parser) parseAnd() ExpressionNode {
	return par.binaryLevel(par.parseEquality, lexer.AND)
}

func (par *Parser) parseEquality() ExpressionNode {
	return par.binaryLevel(par.parseComparison, lexer.EQ, lexer.NE)
}

func (par *Parser) parseComparison() ExpressionNode {
	return par.binaryLevel(par.parseAdditive, lexer.LT, lexer.LE, lexer.GT, lexer.GE)
}

func (par *Parser) parseAdditive() ExpressionNode {
	return par.binaryLevel(par.parseMultiplicative, lexer.PLUS, lexer.MINUS)
}

func (par *Parser) parseMultiplicative() ExpressionNode {
	return par.binaryLevel(par.parseUnary, lexer.MUL, lexer.DIV)
}

// parseUnary handles the right-associative prefix operators `!` and
// unary `-` (spec.md §4.2 level 7), falling through to primary.
func (par *Parser) parseUnary() ExpressionNode {
	if par.CurrToken.Type == lexer.NOT || par.CurrToken.Type == lexer.MINUS {
		tok := par.CurrToken
		op := par.CurrToken.Type
		par.advance()
		operand := par.parseUnary()
		return &UnaryExpr{Token: tok, Op: op, Operand: operand}
	}
	return par.parsePrimary()
}

// parsePrimary handles spec.md §4.2 level 8: literals, identifiers,
// calls, indexing, input, parenthesized expressions, and list/dict
// literals.
func (par *Parser) parsePrimary() ExpressionNode {
	switch par.CurrToken.Type {
	case lexer.NUMBER:
		tok := par.CurrToken
		return &NumberLit{Token: tok, Value: tok.Num}
	case lexer.STRING:
		tok := par.CurrToken
		return &StringLit{Token: tok, Value: tok.Literal}
	case lexer.BOOLEAN:
		tok := par.CurrToken
		return &BoolLit{Token: tok, Value: tok.Bool}
	case lexer.IDENT:
		return par.parseIdentOrCallOrIndex()
	case lexer.INPUT:
		return par.parseInputExpr()
	case lexer.LPAREN:
		return par.parseParenExpr()
	case lexer.LBRACKET:
		return par.parseListExpr()
	case lexer.LBRACE:
		return par.parseDictExpr()
	default:
		par.addError(fmt.Sprintf("[%d:%d] unexpected token %q in expression",
			par.CurrToken.Line, par.CurrToken.Column, par.CurrToken.Literal))
		return nil
	}
}

// parseIdentOrCallOrIndex disambiguates `IDENT`, `IDENT ( args )`, and
// `IDENT [ expr ]` by looking one token ahead.
func (par *Parser) parseIdentOrCallOrIndex() ExpressionNode {
	tok := par.CurrToken
	switch par.NextToken.Type {
	case lexer.LPAREN:
		par.advance() // CurrToken == '('
		args := par.parseArgList()
		return &CallExpr{Token: tok, Name: tok.Literal, Args: args}
	case lexer.LBRACKET:
		return par.parseIndexTarget()
	default:
		return &VarExpr{Token: tok, Name: tok.Literal}
	}
}

// parseArgList parses `( expr , expr , ... )`. CurrToken on entry is
// LPAREN; on return CurrToken is the matching RPAREN.
func (par *Parser) parseArgList() []ExpressionNode {
	var args []ExpressionNode
	if par.NextToken.Type == lexer.RPAREN {
		par.advance()
		return args
	}
	par.advance()
	args = append(args, par.parseExpression())
	for par.NextToken.Type == lexer.COMMA {
		par.advance()
		par.advance()
		args = append(args, par.parseExpression())
	}
	par.expectAdvance(lexer.RPAREN)
	return args
}

// parseInputExpr: `input ( expr )`
func (par *Parser) parseInputExpr() ExpressionNode {
	tok := par.CurrToken
	if !par.expectAdvance(lexer.LPAREN) {
		return nil
	}
	par.advance()
	prompt := par.parseExpression()
	par.expectAdvance(lexer.RPAREN)
	return &InputExpr{Token: tok, Prompt: prompt}
}

// parseParenExpr: `( expr )`
func (par *Parser) parseParenExpr() ExpressionNode {
	par.advance()
	expr := par.parseExpression()
	par.expectAdvance(lexer.RPAREN)
	return expr
}

// parseListExpr: `[ expr , expr , ... ]`
func (par *Parser) parseListExpr() ExpressionNode {
	tok := par.CurrToken
	list := &ListExpr{Token: tok}
	if par.NextToken.Type == lexer.RBRACKET {
		par.advance()
		return list
	}
	par.advance()
	list.Elements = append(list.Elements, par.parseExpression())
	for par.NextToken.Type == lexer.COMMA {
		par.advance()
		par.advance()
		list.Elements = append(list.Elements, par.parseExpression())
	}
	par.expectAdvance(lexer.RBRACKET)
	return list
}

// parseDictExpr: `{ expr : expr , expr : expr , ... }`, disambiguated
// from a block purely by appearing in expression position (spec.md
// §4.2).
func (par *Parser) parseDictExpr() ExpressionNode {
	tok := par.CurrToken
	dict := &DictExpr{Token: tok}
	if par.NextToken.Type == lexer.RBRACE {
		par.advance()
		return dict
	}
	par.advance()
	if !par.parseDictEntry(dict) {
		return dict
	}
	for par.NextToken.Type == lexer.COMMA {
		par.advance()
		par.advance()
		if !par.parseDictEntry(dict) {
			break
		}
	}
	par.expectAdvance(lexer.RBRACE)
	return dict
}

func (par *Parser) parseDictEntry(dict *DictExpr) bool {
	key := par.parseExpression()
	if !par.expectAdvance(lexer.COLON) {
		return false
	}
	par.advance()
	val := par.parseExpression()
	dict.Keys = append(dict.Keys, key)
	dict.Values = append(dict.Values, val)
	return true
}
