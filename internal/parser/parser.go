// Package parser implements a recursive-descent parser that turns a
// token stream into an *ast.Module. Like internal/lexer, this is the
// external "parser" collaborator spec.md 1/6 treats as out of scope for
// the front-end's hard core; it exists only so the rest of the pipeline
// has real ASTs to consume. Its Pratt-style expression parsing is
// grounded on the shape of the teacher's internal/parser/parser.go
// precedence table, rebuilt for this language's grammar.
package parser

import (
	"fmt"

	"github.com/ing-lang/ingc/internal/ast"
	"github.com/ing-lang/ingc/internal/lexer"
	"github.com/ing-lang/ingc/internal/token"
)

// ParseError is a syntax error produced while parsing a single file.
type ParseError struct {
	File    string
	Line    int
	Column  int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
}

type Parser struct {
	lex  *lexer.Lexer
	file string

	cur  token.Token
	peek token.Token

	noStructLiteral bool
	errors          []error
}

// New creates a Parser over src for diagnostics attributed to file.
func New(src []byte, file string) *Parser {
	p := &Parser{lex: lexer.New(src, file), file: file}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.lex.Next()
}

func (p *Parser) pos() ast.Pos {
	return ast.Pos{File: p.file, Line: p.cur.Line, Column: p.cur.Column}
}

func (p *Parser) errorf(format string, args ...any) {
	p.errors = append(p.errors, &ParseError{
		File: p.file, Line: p.cur.Line, Column: p.cur.Column,
		Message: fmt.Sprintf(format, args...),
	})
}

// Errors returns every syntax error accumulated while parsing.
func (p *Parser) Errors() []error { return p.errors }

func (p *Parser) expect(t token.Type) token.Token {
	tok := p.cur
	if p.cur.Type != t {
		p.errorf("expected %s, got %s (%q)", t, p.cur.Type, p.cur.Literal)
	}
	p.next()
	return tok
}

func (p *Parser) accept(t token.Type) bool {
	if p.cur.Type == t {
		p.next()
		return true
	}
	return false
}

// Parse consumes the whole token stream and returns the module's raw AST
// (module.Path is left empty; the file retriever assigns it once the
// file's location in the package tree is known).
func (p *Parser) Parse() *ast.Module {
	mod := &ast.Module{
		Block: &ast.Block{},
		Pos:   p.pos(),
	}

	for p.cur.Type != token.EOF {
		switch p.cur.Type {
		case token.MOD:
			mod.Imports = append(mod.Imports, p.parseModDecl(false))
		case token.PUB:
			if p.peek.Type == token.MOD {
				p.next()
				mod.Imports = append(mod.Imports, p.parseModDecl(true))
				continue
			}
			p.next() // consume 'pub'
			def := p.parseTopLevelDef(true)
			if def != nil {
				mod.PublicDefinitions = append(mod.PublicDefinitions, def)
			}
		case token.USE:
			mod.Uses = append(mod.Uses, p.parseUse())
		default:
			def := p.parseTopLevelDef(false)
			if def != nil {
				mod.Block.Definitions = append(mod.Block.Definitions, def)
			}
		}
	}

	return mod
}

func (p *Parser) parseModDecl(public bool) *ast.ModuleImport {
	pos := p.pos()
	p.expect(token.MOD)
	name := p.expect(token.IDENT).Literal
	p.expect(token.SEMI)
	return &ast.ModuleImport{Public: public, Name: name, Pos: pos}
}

func (p *Parser) parseUse() *ast.Use {
	pos := p.pos()
	p.expect(token.USE)
	var path []string
	var elements []ast.UseElement

	first := p.expect(token.IDENT).Literal
	path = append(path, first)

	for p.accept(token.DCOLON) {
		if p.cur.Type == token.LBRACE {
			p.next()
			for {
				name := p.expect(token.IDENT).Literal
				elements = append(elements, ast.UseElement{
					OriginName:   name,
					ImportedName: &ast.Reference{Raw: name, Pos: p.pos()},
				})
				if !p.accept(token.COMMA) {
					break
				}
			}
			p.expect(token.RBRACE)
			break
		}
		ident := p.expect(token.IDENT).Literal
		if p.cur.Type == token.DCOLON {
			path = append(path, ident)
			continue
		}
		// Last segment with no trailing braces: it's the imported name.
		elements = append(elements, ast.UseElement{
			OriginName:   ident,
			ImportedName: &ast.Reference{Raw: ident, Pos: p.pos()},
		})
	}
	p.expect(token.SEMI)
	return &ast.Use{Path: path, Elements: elements, Pos: pos}
}

// parseTopLevelDef parses a fn/struct/let definition. pub has already been
// consumed by the caller if present.
func (p *Parser) parseTopLevelDef(public bool) ast.Definition {
	switch p.cur.Type {
	case token.FN:
		return p.parseFnDef(public)
	case token.STRUCT:
		return p.parseStructDef(public)
	case token.LET, token.VAR:
		decl := p.parseVarDeclStmt()
		if public {
			decl.VarDef.Mods = append(decl.VarDef.Mods, "pub")
		}
		return decl
	default:
		p.errorf("expected a definition (fn/struct/let), got %s", p.cur.Type)
		p.next()
		return nil
	}
}

func (p *Parser) parseMods(public bool) ast.Mods {
	if public {
		return ast.Mods{"pub"}
	}
	return nil
}

func (p *Parser) parseFnDef(public bool) *ast.FnDef {
	pos := p.pos()
	p.expect(token.FN)
	nameTok := p.expect(token.IDENT)
	name := &ast.Reference{Raw: nameTok.Literal, Kind: ast.SymbolFn, Pos: pos}

	p.expect(token.LPAREN)
	var args []*ast.VarDef
	for p.cur.Type != token.RPAREN {
		args = append(args, p.parseVarDef())
		if !p.accept(token.COMMA) {
			break
		}
	}
	p.expect(token.RPAREN)

	retType := ast.Type{Kind: ast.Void}
	if p.accept(token.ARROW) {
		retType = p.parseType()
	}

	var body *ast.Block
	if p.cur.Type == token.LBRACE {
		body = p.parseBlock()
	} else {
		p.expect(token.SEMI)
	}

	return &ast.FnDef{
		ReturnType: retType,
		Mods:       p.parseMods(public),
		Name:       name,
		Args:       args,
		Body:       body,
		Pos:        pos,
	}
}

func (p *Parser) parseVarDef() *ast.VarDef {
	pos := p.pos()
	nameTok := p.expect(token.IDENT)
	p.expect(token.COLON)
	ty := p.parseType()
	return &ast.VarDef{
		Name: &ast.Reference{Raw: nameTok.Literal, Kind: ast.SymbolVar, Pos: pos},
		Type: ty,
		Pos:  pos,
	}
}

func (p *Parser) parseType() ast.Type {
	switch p.cur.Type {
	case token.TY_VOID:
		p.next()
		return ast.Type{Kind: ast.Void}
	case token.TY_BOOL:
		p.next()
		return ast.Type{Kind: ast.Bool}
	case token.TY_INT:
		p.next()
		return ast.Type{Kind: ast.Int}
	case token.TY_FLOAT:
		p.next()
		return ast.Type{Kind: ast.Float}
	case token.TY_DOUBLE:
		p.next()
		return ast.Type{Kind: ast.Double}
	case token.TY_STRING:
		p.next()
		return ast.Type{Kind: ast.String}
	case token.IDENT:
		pos := p.pos()
		name := p.cur.Literal
		p.next()
		return ast.Type{Kind: ast.Struct, StructRef: &ast.Reference{Raw: name, Kind: ast.SymbolStruct, Pos: pos}}
	default:
		p.errorf("expected a type, got %s", p.cur.Type)
		p.next()
		return ast.Type{Kind: ast.Void}
	}
}

func (p *Parser) parseStructDef(public bool) *ast.StructDef {
	pos := p.pos()
	p.expect(token.STRUCT)
	nameTok := p.expect(token.IDENT)
	name := &ast.Reference{Raw: nameTok.Literal, Kind: ast.SymbolStruct, Pos: pos}

	p.expect(token.LBRACE)
	fields := map[string]ast.Type{}
	var order []string
	for p.cur.Type != token.RBRACE {
		fieldTok := p.expect(token.IDENT)
		p.expect(token.COLON)
		ty := p.parseType()
		fields[fieldTok.Literal] = ty
		order = append(order, fieldTok.Literal)
		if !p.accept(token.COMMA) {
			break
		}
	}
	p.expect(token.RBRACE)

	return &ast.StructDef{
		Mods:       p.parseMods(public),
		TypeName:   name,
		Fields:     fields,
		FieldOrder: order,
		Pos:        pos,
	}
}
