// Package resolve also implements the resolution walk itself: a pre-order
// traversal of a single ast.Module that binds every definition and fills
// in Reference.ModuleResolved on every use, grounded on the teacher's
// internal/module/loader.go validateModule walk (which validates a module
// body top to bottom) generalized from validation-only to full
// name-resolution.
package resolve

import (
	"fmt"

	"github.com/ing-lang/ingc/internal/ast"
	ingerrors "github.com/ing-lang/ingc/internal/errors"
)

// Resolver resolves one module at a time. A fresh Resolver (and ScopeTable)
// is used per module; shadow indices and scopes never cross module
// boundaries (spec.md 4.C operates strictly module-locally).
type Resolver struct {
	scope    *ScopeTable
	path     string          // module path, used to stamp Report.Path
	imported map[string]bool // raw names brought in by this module's `use` declarations
}

// New creates a Resolver for the module at path.
func New(path string) *Resolver {
	return &Resolver{scope: NewScopeTable(), path: path, imported: map[string]bool{}}
}

// Resolve walks mod, binding every top-level and nested definition and
// filling in ModuleResolved on every Reference it encounters. Top-level
// names (public and private alike) are all bound before any function body
// is walked, so forward references between sibling definitions resolve.
//
// A name introduced by this module's own `use` declarations is deliberately
// left unresolved here (ModuleResolved stays empty): `use` targets are
// qualified by module path, not by lexical scope, so linking them is the
// module merger's job (spec.md 4.D), not the per-module resolver's. A
// lookup failure is only a real UndefinedVariable if the raw name isn't
// one of those imported names either.
func (r *Resolver) Resolve(mod *ast.Module) error {
	for _, use := range mod.Uses {
		for _, elem := range use.Elements {
			r.imported[elem.OriginName] = true
		}
	}

	r.scope.ScopeEnter()
	defer r.scope.ScopeExit()

	all := mod.AllDefinitions()
	for _, def := range all {
		if err := r.bindDefinition(def); err != nil {
			return err
		}
	}
	for _, def := range all {
		if err := r.walkDefinitionBody(def); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) bindDefinition(def ast.Definition) error {
	var kind ast.SymbolKind
	switch def.(type) {
	case *ast.FnDef:
		kind = ast.SymbolFn
	case *ast.StructDef:
		kind = ast.SymbolStruct
	case *ast.VarDecl:
		kind = ast.SymbolVar
	default:
		panic(fmt.Sprintf("resolve: unknown definition kind %T", def))
	}
	name := def.DefName()
	resolved, err := r.scope.ScopeBind(name.Raw, kind)
	if err != nil {
		return r.redefinition(name)
	}
	name.Kind = kind
	name.ModuleResolved = resolved
	return nil
}

func (r *Resolver) walkDefinitionBody(def ast.Definition) error {
	switch d := def.(type) {
	case *ast.FnDef:
		return r.walkFnDef(d)
	case *ast.StructDef:
		return r.walkStructDef(d)
	case *ast.VarDecl:
		return r.walkVarDecl(d)
	default:
		panic(fmt.Sprintf("resolve: unknown definition kind %T", def))
	}
}

func (r *Resolver) walkFnDef(fn *ast.FnDef) error {
	if err := r.resolveType(&fn.ReturnType); err != nil {
		return err
	}
	r.scope.ScopeEnter()
	defer r.scope.ScopeExit()
	for _, arg := range fn.Args {
		if err := r.resolveType(&arg.Type); err != nil {
			return err
		}
		resolved, err := r.scope.ScopeBind(arg.Name.Raw, ast.SymbolVar)
		if err != nil {
			return r.redefinition(arg.Name)
		}
		arg.Name.Kind = ast.SymbolVar
		arg.Name.ModuleResolved = resolved
	}
	if fn.Body != nil {
		return r.walkBlock(fn.Body)
	}
	return nil
}

func (r *Resolver) walkStructDef(sd *ast.StructDef) error {
	for _, name := range sd.FieldOrder {
		t := sd.Fields[name]
		if err := r.resolveType(&t); err != nil {
			return err
		}
		sd.Fields[name] = t
	}
	return nil
}

func (r *Resolver) walkVarDecl(v *ast.VarDecl) error {
	if err := r.resolveType(&v.VarDef.Type); err != nil {
		return err
	}
	if v.Expr != nil {
		if err := r.resolveExpr(v.Expr); err != nil {
			return err
		}
	}
	return nil
}

// walkBlock enters a fresh scope, binds the block's local definitions (in
// forward-reference order, as at the top level), then walks its statements
// in source order.
func (r *Resolver) walkBlock(b *ast.Block) error {
	r.scope.ScopeEnter()
	defer r.scope.ScopeExit()

	for _, def := range b.Definitions {
		if err := r.bindDefinition(def); err != nil {
			return err
		}
	}
	for _, def := range b.Definitions {
		if err := r.walkDefinitionBody(def); err != nil {
			return err
		}
	}
	for _, stmt := range b.Statements {
		if err := r.walkStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (r *Resolver) walkStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		// A local `let` declaration reached as a statement (not part of a
		// block's Definitions list): resolve its initializer in the
		// enclosing scope, then bind the new name so later statements see it.
		if err := r.resolveType(&s.VarDef.Type); err != nil {
			return err
		}
		if s.Expr != nil {
			if err := r.resolveExpr(s.Expr); err != nil {
				return err
			}
		}
		resolved, err := r.scope.ScopeBind(s.VarDef.Name.Raw, ast.SymbolVar)
		if err != nil {
			return r.redefinition(s.VarDef.Name)
		}
		s.VarDef.Name.Kind = ast.SymbolVar
		s.VarDef.Name.ModuleResolved = resolved
		return nil

	case *ast.VarAssign:
		if err := r.resolveNamePath(s.Target); err != nil {
			return err
		}
		return r.resolveExpr(s.Expr)

	case *ast.If:
		if err := r.resolveExpr(s.Cond); err != nil {
			return err
		}
		if err := r.walkBlock(s.Then); err != nil {
			return err
		}
		if s.Else != nil {
			return r.walkBlock(s.Else)
		}
		return nil

	case *ast.While:
		if err := r.resolveExpr(s.Cond); err != nil {
			return err
		}
		return r.walkBlock(s.Body)

	case *ast.For:
		r.scope.ScopeEnter()
		defer r.scope.ScopeExit()
		if s.Init != nil {
			if err := r.walkStmt(s.Init); err != nil {
				return err
			}
		}
		if s.Cond != nil {
			if err := r.resolveExpr(s.Cond); err != nil {
				return err
			}
		}
		if s.Post != nil {
			if err := r.walkStmt(s.Post); err != nil {
				return err
			}
		}
		return r.walkBlock(s.Body)

	case *ast.Return:
		if s.Expr != nil {
			return r.resolveExpr(s.Expr)
		}
		return nil

	case *ast.Break, *ast.Continue:
		return nil

	case *ast.ExprStmt:
		return r.resolveExpr(s.Expr)

	case *ast.Block:
		return r.walkBlock(s)

	default:
		panic(fmt.Sprintf("resolve: unknown statement kind %T", stmt))
	}
}

func (r *Resolver) resolveExpr(e *ast.Expression) error {
	switch n := e.Node.(type) {
	case *ast.Literal:
		if n.Kind == ast.LitCompound {
			for _, fe := range n.CompoundFields {
				if err := r.resolveExpr(fe); err != nil {
					return err
				}
			}
		}
		return nil

	case *ast.Variable:
		return r.resolveNamePath(n.Path)

	case *ast.FnCall:
		n.Name.Kind = ast.SymbolFn
		if resolved, ok := r.scope.ScopeLookup(n.Name.Raw, ast.SymbolFn); ok {
			n.Name.ModuleResolved = resolved
		} else if !r.imported[n.Name.Raw] {
			return r.undefined(n.Name, ast.SymbolFn)
		}
		for _, arg := range n.Args {
			if err := r.resolveExpr(arg); err != nil {
				return err
			}
		}
		return nil

	case *ast.StructInit:
		n.TypeRef.Kind = ast.SymbolStruct
		if resolved, ok := r.scope.ScopeLookup(n.TypeRef.Raw, ast.SymbolStruct); ok {
			n.TypeRef.ModuleResolved = resolved
		} else if !r.imported[n.TypeRef.Raw] {
			return r.undefined(n.TypeRef, ast.SymbolStruct)
		}
		for _, name := range n.FieldOrder {
			if err := r.resolveExpr(n.Fields[name]); err != nil {
				return err
			}
		}
		return nil

	case *ast.UnaryExpr:
		return r.resolveExpr(n.Operand)

	case *ast.BinaryExpr:
		if err := r.resolveExpr(n.Left); err != nil {
			return err
		}
		return r.resolveExpr(n.Right)

	default:
		panic(fmt.Sprintf("resolve: unknown expression kind %T", e.Node))
	}
}

// resolveNamePath resolves the head of np (a variable) against the Var
// namespace; dotted Path segments are left untouched for the type resolver
// to validate against struct field names (invariant 5).
func (r *Resolver) resolveNamePath(np *ast.NamePath) error {
	np.Name.Kind = ast.SymbolVar
	if resolved, ok := r.scope.ScopeLookup(np.Name.Raw, ast.SymbolVar); ok {
		np.Name.ModuleResolved = resolved
		return nil
	}
	if r.imported[np.Name.Raw] {
		return nil
	}
	return r.undefined(np.Name, ast.SymbolVar)
}

// resolveType resolves t's struct reference, if any, against the Struct
// namespace; non-struct kinds need no resolution.
func (r *Resolver) resolveType(t *ast.Type) error {
	if t.Kind != ast.Struct || t.StructRef == nil {
		return nil
	}
	t.StructRef.Kind = ast.SymbolStruct
	if resolved, ok := r.scope.ScopeLookup(t.StructRef.Raw, ast.SymbolStruct); ok {
		t.StructRef.ModuleResolved = resolved
		return nil
	}
	if r.imported[t.StructRef.Raw] {
		return nil
	}
	return r.undefined(t.StructRef, ast.SymbolStruct)
}

func (r *Resolver) undefined(ref *ast.Reference, kind ast.SymbolKind) error {
	rep := ingerrors.New(ingerrors.RES001, ingerrors.PhaseResolve,
		fmt.Sprintf("undefined %s %q", kind.String(), ref.Raw)).
		WithPath(r.path).
		WithData("raw", ref.Raw).
		WithData("kind", kind.String())
	return ingerrors.WrapReport(rep)
}

func (r *Resolver) redefinition(ref *ast.Reference) error {
	rep := ingerrors.New(ingerrors.RES002, ingerrors.PhaseResolve,
		fmt.Sprintf("%q is already defined in this scope", ref.Raw)).
		WithPath(r.path).
		WithData("raw", ref.Raw)
	return ingerrors.WrapReport(rep)
}
