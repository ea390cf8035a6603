package parser

import "github.com/akashmaji946/mylang/lexer"

// parseBlock parses `{ stmt... }`. CurrToken must be LBRACE on entry;
// on return CurrToken is the matching RBRACE. No new frame is implied
// here — block scoping is an evaluator concern (spec.md §4.3.3).
func (par *Parser) parseBlock() *BlockStmt {
	block := &BlockStmt{Token: par.CurrToken}
	par.advance() // past '{'
	for par.CurrToken.Type != lexer.RBRACE && par.CurrToken.Type != lexer.EOF {
		if par.HasErrors() {
			break
		}
		stmt := par.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		par.advance()
	}
	if par.CurrToken.Type != lexer.RBRACE {
		par.addError("unterminated block, expected '}'")
	}
	return block
}

// parsePrintStatement: `print expr ;`
func (par *Parser) parsePrintStatement() StatementNode {
	tok := par.CurrToken
	par.advance()
	val := par.parseExpression()
	par.consumeOptionalSemicolon()
	return &PrintStmt{Token: tok, Value: val}
}

// parseIfStatement: `if ( expr ) block (else block)?`
func (par *Parser) parseIfStatement() StatementNode {
	tok := par.CurrToken
	if !par.expectAdvance(lexer.LPAREN) {
		return nil
	}
	par.advance()
	cond := par.parseExpression()
	if !par.expectAdvance(lexer.RPAREN) {
		return nil
	}
	if !par.expectAdvance(lexer.LBRACE) {
		return nil
	}
	thenBlock := par.parseBlock()

	var elseBlock *BlockStmt
	if par.NextToken.Type == lexer.ELSE {
		par.advance()
		if !par.expectAdvance(lexer.LBRACE) {
			return nil
		}
		elseBlock = par.parseBlock()
	}
	return &IfStmt{Token: tok, Condition: cond, Then: thenBlock, Else: elseBlock}
}

// parseWhileStatement: `while ( expr ) block`
func (par *Parser) parseWhileStatement() StatementNode {
	tok := par.CurrToken
	if !par.expectAdvance(lexer.LPAREN) {
		return nil
	}
	par.advance()
	cond := par.parseExpression()
	if !par.expectAdvance(lexer.RPAREN) {
		return nil
	}
	if !par.expectAdvance(lexer.LBRACE) {
		return nil
	}
	body := par.parseBlock()
	return &WhileStmt{Token: tok, Condition: cond, Body: body}
}

// parseParamList: `( IDENT , IDENT , ... )`, CurrToken on entry is LPAREN.
func (par *Parser) parseParamList() []string {
	var params []string
	if par.NextToken.Type == lexer.RPAREN {
		par.advance()
		return params
	}
	par.advance()
	params = append(params, par.CurrToken.Literal)
	for par.NextToken.Type == lexer.COMMA {
		par.advance()
		par.advance()
		params = append(params, par.CurrToken.Literal)
	}
	par.expectAdvance(lexer.RPAREN)
	return params
}

// parseFuncDefStatement: `function IDENT ( params? ) block`
func (par *Parser) parseFuncDefStatement() StatementNode {
	tok := par.CurrToken
	if !par.expectAdvance(lexer.IDENT) {
		return nil
	}
	name := par.CurrToken.Literal
	if !par.expectAdvance(lexer.LPAREN) {
		return nil
	}
	params := par.parseParamList()
	if !par.expectAdvance(lexer.LBRACE) {
		return nil
	}
	body := par.parseBlock()
	return &FuncDefStmt{Token: tok, Name: name, Params: params, Body: body}
}

// parseReturnStatement: `return expr ;`
func (par *Parser) parseReturnStatement() StatementNode {
	tok := par.CurrToken
	par.advance()
	val := par.parseExpression()
	par.consumeOptionalSemicolon()
	return &ReturnStmt{Token: tok, Value: val}
}

// parseDefineStatement: `define IDENT expr ;`, sugar for assignment
// (spec.md §4.3.1).
func (par *Parser) parseDefineStatement() StatementNode {
	tok := par.CurrToken
	if !par.expectAdvance(lexer.IDENT) {
		return nil
	}
	name := par.CurrToken.Literal
	par.advance()
	val := par.parseExpression()
	par.consumeOptionalSemicolon()
	return &AssignStmt{Token: tok, Name: name, Value: val}
}

// parseAssignStatement: `IDENT = expr ;`
func (par *Parser) parseAssignStatement() StatementNode {
	tok := par.CurrToken
	name := par.CurrToken.Literal
	par.advance() // CurrToken == ASSIGN
	par.advance()
	val := par.parseExpression()
	par.consumeOptionalSemicolon()
	return &AssignStmt{Token: tok, Name: name, Value: val}
}

// parseIndexTarget parses `IDENT [ expr ]`, the shared shape used by
// both amend and remove statements. CurrToken on entry is the base
// IDENT; on return CurrToken is the matching RBRACKET.
func (par *Parser) parseIndexTarget() *IndexExpr {
	baseTok := par.CurrToken
	base := &VarExpr{Token: baseTok, Name: baseTok.Literal}
	if !par.expectAdvance(lexer.LBRACKET) {
		return &IndexExpr{Token: baseTok, Base: base}
	}
	par.advance()
	idx := par.parseExpression()
	par.expectAdvance(lexer.RBRACKET)
	return &IndexExpr{Token: baseTok, Base: base, Index: idx}
}

// parseAmendStatement: `amend indexExpr to expr ;`
func (par *Parser) parseAmendStatement() StatementNode {
	tok := par.CurrToken
	par.advance()
	target := par.parseIndexTarget()
	if !par.expectAdvance(lexer.TO) {
		return nil
	}
	par.advance()
	val := par.parseExpression()
	par.consumeOptionalSemicolon()
	return &IndexAssignStmt{Token: tok, Base: target.Base, Index: target.Index, Value: val}
}

// parseRemoveStatement: `remove indexExpr ;`
func (par *Parser) parseRemoveStatement() StatementNode {
	tok := par.CurrToken
	par.advance()
	target := par.parseIndexTarget()
	par.consumeOptionalSemicolon()
	return &RemoveStmt{Token: tok, Base: target.Base, Index: target.Index}
}

// parseExpressionStatement wraps a bare expression as a statement,
// e.g. a function call used only for its side effects.
func (par *Parser) parseExpressionStatement() StatementNode {
	expr := par.parseExpression()
	par.consumeOptionalSemicolon()
	if expr == nil {
		return nil
	}
	return expr
}
