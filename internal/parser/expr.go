package parser

import (
	"strconv"

	"github.com/ing-lang/ingc/internal/ast"
	"github.com/ing-lang/ingc/internal/token"
)

type precedence int

const (
	precLowest precedence = iota
	precOr
	precAnd
	precEquality
	precRelational
	precAdditive
	precMultiplicative
	precUnary
)

var binPrec = map[token.Type]precedence{
	token.OR:      precOr,
	token.AND:     precAnd,
	token.EQ:      precEquality,
	token.NEQ:     precEquality,
	token.LT:      precRelational,
	token.GT:      precRelational,
	token.LEQ:     precRelational,
	token.GEQ:     precRelational,
	token.PLUS:    precAdditive,
	token.MINUS:   precAdditive,
	token.STAR:    precMultiplicative,
	token.SLASH:   precMultiplicative,
	token.PERCENT: precMultiplicative,
}

var binOps = map[token.Type]ast.BinOp{
	token.PLUS: ast.Add, token.MINUS: ast.Sub, token.STAR: ast.Mul,
	token.SLASH: ast.Div, token.PERCENT: ast.Mod,
	token.EQ: ast.Eq, token.NEQ: ast.Neq,
	token.LT: ast.Lt, token.GT: ast.Gt, token.LEQ: ast.Leq, token.GEQ: ast.Geq,
	token.AND: ast.And, token.OR: ast.Or,
}

func (p *Parser) parseExpr(min precedence) *ast.Expression {
	left := p.parseUnary()
	for {
		prec, ok := binPrec[p.cur.Type]
		if !ok || prec < min {
			break
		}
		op := binOps[p.cur.Type]
		pos := p.pos()
		p.next()
		right := p.parseExpr(prec + 1)
		left = &ast.Expression{
			Node: &ast.BinaryExpr{Op: op, Left: left, Right: right, Pos: pos},
			Pos:  pos,
		}
	}
	return left
}

func (p *Parser) parseUnary() *ast.Expression {
	pos := p.pos()
	switch p.cur.Type {
	case token.MINUS:
		p.next()
		operand := p.parseUnary()
		return &ast.Expression{Node: &ast.UnaryExpr{Op: ast.Neg, Operand: operand, Pos: pos}, Pos: pos}
	case token.NOT:
		p.next()
		operand := p.parseUnary()
		return &ast.Expression{Node: &ast.UnaryExpr{Op: ast.Not, Operand: operand, Pos: pos}, Pos: pos}
	case token.AMP:
		p.next()
		operand := p.parseUnary()
		return &ast.Expression{Node: &ast.UnaryExpr{Op: ast.Ref, Operand: operand, Pos: pos}, Pos: pos}
	case token.STAR:
		p.next()
		operand := p.parseUnary()
		return &ast.Expression{Node: &ast.UnaryExpr{Op: ast.Deref, Operand: operand, Pos: pos}, Pos: pos}
	case token.INC:
		p.next()
		operand := p.parseUnary()
		return &ast.Expression{Node: &ast.UnaryExpr{Op: ast.PreInc, Operand: operand, Pos: pos}, Pos: pos}
	case token.DEC:
		p.next()
		operand := p.parseUnary()
		return &ast.Expression{Node: &ast.UnaryExpr{Op: ast.PreDec, Operand: operand, Pos: pos}, Pos: pos}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() *ast.Expression {
	expr := p.parsePrimary()
	for {
		pos := p.pos()
		switch p.cur.Type {
		case token.INC:
			p.next()
			expr = &ast.Expression{Node: &ast.UnaryExpr{Op: ast.PostInc, Operand: expr, Pos: pos}, Pos: pos}
		case token.DEC:
			p.next()
			expr = &ast.Expression{Node: &ast.UnaryExpr{Op: ast.PostDec, Operand: expr, Pos: pos}, Pos: pos}
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() *ast.Expression {
	pos := p.pos()
	switch p.cur.Type {
	case token.INT:
		lit := p.cur.Literal
		p.next()
		n, _ := strconv.ParseInt(lit, 10, 64)
		return &ast.Expression{Node: &ast.Literal{Kind: ast.LitInt, Value: n, Pos: pos}, Pos: pos}
	case token.DECIMAL:
		lit := p.cur.Literal
		p.next()
		f, _ := strconv.ParseFloat(lit, 64)
		return &ast.Expression{Node: &ast.Literal{Kind: ast.LitDecimal, Value: f, Pos: pos}, Pos: pos}
	case token.STRING:
		lit := p.cur.Literal
		p.next()
		return &ast.Expression{Node: &ast.Literal{Kind: ast.LitString, Value: lit, Pos: pos}, Pos: pos}
	case token.TRUE:
		p.next()
		return &ast.Expression{Node: &ast.Literal{Kind: ast.LitBool, Value: true, Pos: pos}, Pos: pos}
	case token.FALSE:
		p.next()
		return &ast.Expression{Node: &ast.Literal{Kind: ast.LitBool, Value: false, Pos: pos}, Pos: pos}
	case token.NULL:
		p.next()
		return &ast.Expression{Node: &ast.Literal{Kind: ast.LitNull, Pos: pos}, Pos: pos}
	case token.LPAREN:
		p.next()
		saved := p.noStructLiteral
		p.noStructLiteral = false
		inner := p.parseExpr(precLowest)
		p.noStructLiteral = saved
		p.expect(token.RPAREN)
		return inner
	case token.IDENT:
		return p.parseIdentExpr(pos)
	default:
		p.errorf("unexpected token %s in expression", p.cur.Type)
		p.next()
		return &ast.Expression{Node: &ast.Literal{Kind: ast.LitNull, Pos: pos}, Pos: pos}
	}
}

func (p *Parser) parseIdentExpr(pos ast.Pos) *ast.Expression {
	name := p.cur.Literal
	p.next()

	if p.cur.Type == token.LPAREN {
		return p.parseFnCallTail(name, pos)
	}
	if p.cur.Type == token.LBRACE && !p.noStructLiteral {
		return p.parseStructInitTail(name, pos)
	}

	np := &ast.NamePath{Name: &ast.Reference{Raw: name, Kind: ast.SymbolVar, Pos: pos}, Pos: pos}
	for p.cur.Type == token.DOT {
		p.next()
		seg := p.expect(token.IDENT).Literal
		np.Path = append(np.Path, seg)
	}
	return &ast.Expression{Node: &ast.Variable{Path: np, Pos: pos}, Pos: pos}
}

func (p *Parser) parseFnCallTail(name string, pos ast.Pos) *ast.Expression {
	p.expect(token.LPAREN)
	var args []*ast.Expression
	for p.cur.Type != token.RPAREN {
		args = append(args, p.parseExpr(precLowest))
		if !p.accept(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)
	return &ast.Expression{
		Node: &ast.FnCall{Name: &ast.Reference{Raw: name, Kind: ast.SymbolFn, Pos: pos}, Args: args, Pos: pos},
		Pos:  pos,
	}
}

func (p *Parser) parseStructInitTail(name string, pos ast.Pos) *ast.Expression {
	p.expect(token.LBRACE)
	fields := map[string]*ast.Expression{}
	var order []string
	for p.cur.Type != token.RBRACE {
		fieldTok := p.expect(token.IDENT)
		p.expect(token.COLON)
		fields[fieldTok.Literal] = p.parseExpr(precLowest)
		order = append(order, fieldTok.Literal)
		if !p.accept(token.COMMA) {
			break
		}
	}
	p.expect(token.RBRACE)
	return &ast.Expression{
		Node: &ast.StructInit{
			TypeRef:    &ast.Reference{Raw: name, Kind: ast.SymbolStruct, Pos: pos},
			Fields:     fields,
			FieldOrder: order,
			Pos:        pos,
		},
		Pos: pos,
	}
}
