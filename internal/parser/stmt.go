package parser

import (
	"github.com/ing-lang/ingc/internal/ast"
	"github.com/ing-lang/ingc/internal/token"
)

func (p *Parser) parseBlock() *ast.Block {
	pos := p.pos()
	p.expect(token.LBRACE)
	block := &ast.Block{Pos: pos}
	for p.cur.Type != token.RBRACE && p.cur.Type != token.EOF {
		switch p.cur.Type {
		case token.FN, token.STRUCT:
			block.Definitions = append(block.Definitions, p.parseTopLevelDef(false))
		default:
			block.Statements = append(block.Statements, p.parseStmt())
		}
	}
	p.expect(token.RBRACE)
	return block
}

func (p *Parser) parseStmt() ast.Stmt {
	switch p.cur.Type {
	case token.LET, token.VAR:
		return p.parseVarDeclStmt()
	case token.IF:
		return p.parseIf()
	case token.WHILE:
		return p.parseWhile()
	case token.FOR:
		return p.parseFor()
	case token.RETURN:
		return p.parseReturn()
	case token.BREAK:
		pos := p.pos()
		p.next()
		p.expect(token.SEMI)
		return &ast.Break{Pos: pos}
	case token.CONTINUE:
		pos := p.pos()
		p.next()
		p.expect(token.SEMI)
		return &ast.Continue{Pos: pos}
	case token.LBRACE:
		return p.parseBlock()
	default:
		return p.parseExprOrAssignStmt()
	}
}

func (p *Parser) parseVarDeclStmt() *ast.VarDecl {
	pos := p.pos()
	p.next() // 'let' or 'var'
	nameTok := p.expect(token.IDENT)
	p.expect(token.COLON)
	ty := p.parseType()

	varDef := &ast.VarDef{
		Name: &ast.Reference{Raw: nameTok.Literal, Kind: ast.SymbolVar, Pos: pos},
		Type: ty,
		Pos:  pos,
	}

	var expr *ast.Expression
	if p.accept(token.ASSIGN) {
		expr = p.parseExpr(precLowest)
	}
	p.expect(token.SEMI)
	return &ast.VarDecl{VarDef: varDef, Expr: expr, Pos: pos}
}

func (p *Parser) parseIf() *ast.If {
	pos := p.pos()
	p.expect(token.IF)
	p.noStructLiteral = true
	cond := p.parseExpr(precLowest)
	p.noStructLiteral = false
	then := p.parseBlock()
	var elseBlock *ast.Block
	if p.accept(token.ELSE) {
		if p.cur.Type == token.IF {
			inner := p.parseIf()
			elseBlock = &ast.Block{Statements: []ast.Stmt{inner}, Pos: inner.Pos}
		} else {
			elseBlock = p.parseBlock()
		}
	}
	return &ast.If{Cond: cond, Then: then, Else: elseBlock, Pos: pos}
}

func (p *Parser) parseWhile() *ast.While {
	pos := p.pos()
	p.expect(token.WHILE)
	p.noStructLiteral = true
	cond := p.parseExpr(precLowest)
	p.noStructLiteral = false
	body := p.parseBlock()
	return &ast.While{Cond: cond, Body: body, Pos: pos}
}

func (p *Parser) parseFor() *ast.For {
	pos := p.pos()
	p.expect(token.FOR)
	p.expect(token.LPAREN)

	var init ast.Stmt
	if p.cur.Type == token.LET || p.cur.Type == token.VAR {
		init = p.parseVarDeclStmt()
	} else if p.cur.Type != token.SEMI {
		init = p.parseExprOrAssignStmt()
	} else {
		p.expect(token.SEMI)
	}

	var cond *ast.Expression
	if p.cur.Type != token.SEMI {
		cond = p.parseExpr(precLowest)
	}
	p.expect(token.SEMI)

	var post ast.Stmt
	if p.cur.Type != token.RPAREN {
		post = p.parseExprOrAssignStmtNoSemi()
	}
	p.expect(token.RPAREN)

	body := p.parseBlock()
	return &ast.For{Init: init, Cond: cond, Post: post, Body: body, Pos: pos}
}

func (p *Parser) parseReturn() *ast.Return {
	pos := p.pos()
	p.expect(token.RETURN)
	var expr *ast.Expression
	if p.cur.Type != token.SEMI {
		expr = p.parseExpr(precLowest)
	} else {
		expr = &ast.Expression{Node: &ast.Literal{Kind: ast.LitNull, Pos: pos}, Pos: pos}
	}
	p.expect(token.SEMI)
	return &ast.Return{Expr: expr, Pos: pos}
}

// parseExprOrAssignStmt parses either `namepath = expr;` or `expr;`.
func (p *Parser) parseExprOrAssignStmt() ast.Stmt {
	stmt := p.parseExprOrAssignStmtNoSemi()
	p.expect(token.SEMI)
	return stmt
}

func (p *Parser) parseExprOrAssignStmtNoSemi() ast.Stmt {
	pos := p.pos()
	expr := p.parseExpr(precLowest)
	if p.cur.Type == token.ASSIGN {
		np, ok := asNamePath(expr)
		if !ok {
			p.errorf("left-hand side of assignment must be a variable or field path")
		}
		p.next()
		rhs := p.parseExpr(precLowest)
		return &ast.VarAssign{Target: np, Expr: rhs, Pos: pos}
	}
	return &ast.ExprStmt{Expr: expr, Pos: pos}
}

func asNamePath(e *ast.Expression) (*ast.NamePath, bool) {
	if v, ok := e.Node.(*ast.Variable); ok {
		return v.Path, true
	}
	return nil, false
}
