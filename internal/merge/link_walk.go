package merge

import (
	"fmt"

	"github.com/ing-lang/ingc/internal/ast"
	ingerrors "github.com/ing-lang/ingc/internal/errors"
)

// linker walks one module's definition bodies, filling GlobalResolved on
// every reference: local references (ModuleResolved already set by C) are
// matched against local, imported ones (ModuleResolved left empty by C)
// against imported. This mirrors component C's own walk shape but never
// binds anything — by the time D runs every name is already bound, only
// still-open references are linked.
type linker struct {
	path     string
	imported map[string]ast.GlobalName // raw -> GlobalName, this module's `use` elements
}

func (l *linker) linkDefinition(def ast.Definition) error {
	switch d := def.(type) {
	case *ast.FnDef:
		if err := l.linkType(&d.ReturnType); err != nil {
			return err
		}
		for _, arg := range d.Args {
			if err := l.linkType(&arg.Type); err != nil {
				return err
			}
		}
		if d.Body != nil {
			return l.linkBlock(d.Body)
		}
		return nil
	case *ast.StructDef:
		for _, name := range d.FieldOrder {
			t := d.Fields[name]
			if err := l.linkType(&t); err != nil {
				return err
			}
			d.Fields[name] = t
		}
		return nil
	case *ast.VarDecl:
		if err := l.linkType(&d.VarDef.Type); err != nil {
			return err
		}
		if d.Expr != nil {
			return l.linkExpr(d.Expr)
		}
		return nil
	default:
		panic(fmt.Sprintf("merge: unknown definition kind %T", def))
	}
}

// linkType links t's struct reference, if any; non-struct kinds carry no
// reference.
func (l *linker) linkType(t *ast.Type) error {
	if t.Kind != ast.Struct || t.StructRef == nil {
		return nil
	}
	return l.linkReference(t.StructRef)
}

func (l *linker) linkBlock(b *ast.Block) error {
	for _, def := range b.Definitions {
		if err := l.linkDefinition(def); err != nil {
			return err
		}
	}
	for _, stmt := range b.Statements {
		if err := l.linkStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (l *linker) linkStmt(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		if err := l.linkType(&s.VarDef.Type); err != nil {
			return err
		}
		if s.Expr != nil {
			return l.linkExpr(s.Expr)
		}
		return nil
	case *ast.VarAssign:
		if err := l.linkReference(s.Target.Name); err != nil {
			return err
		}
		return l.linkExpr(s.Expr)
	case *ast.If:
		if err := l.linkExpr(s.Cond); err != nil {
			return err
		}
		if err := l.linkBlock(s.Then); err != nil {
			return err
		}
		if s.Else != nil {
			return l.linkBlock(s.Else)
		}
		return nil
	case *ast.While:
		if err := l.linkExpr(s.Cond); err != nil {
			return err
		}
		return l.linkBlock(s.Body)
	case *ast.For:
		if s.Init != nil {
			if err := l.linkStmt(s.Init); err != nil {
				return err
			}
		}
		if s.Cond != nil {
			if err := l.linkExpr(s.Cond); err != nil {
				return err
			}
		}
		if s.Post != nil {
			if err := l.linkStmt(s.Post); err != nil {
				return err
			}
		}
		return l.linkBlock(s.Body)
	case *ast.Return:
		if s.Expr != nil {
			return l.linkExpr(s.Expr)
		}
		return nil
	case *ast.Break, *ast.Continue:
		return nil
	case *ast.ExprStmt:
		return l.linkExpr(s.Expr)
	case *ast.Block:
		return l.linkBlock(s)
	default:
		panic(fmt.Sprintf("merge: unknown statement kind %T", stmt))
	}
}

func (l *linker) linkExpr(e *ast.Expression) error {
	switch n := e.Node.(type) {
	case *ast.Literal:
		if n.Kind == ast.LitCompound {
			for _, fe := range n.CompoundFields {
				if err := l.linkExpr(fe); err != nil {
					return err
				}
			}
		}
		return nil
	case *ast.Variable:
		return l.linkReference(n.Path.Name)
	case *ast.FnCall:
		if err := l.linkReference(n.Name); err != nil {
			return err
		}
		for _, arg := range n.Args {
			if err := l.linkExpr(arg); err != nil {
				return err
			}
		}
		return nil
	case *ast.StructInit:
		if err := l.linkReference(n.TypeRef); err != nil {
			return err
		}
		for _, name := range n.FieldOrder {
			if err := l.linkExpr(n.Fields[name]); err != nil {
				return err
			}
		}
		return nil
	case *ast.UnaryExpr:
		return l.linkExpr(n.Operand)
	case *ast.BinaryExpr:
		if err := l.linkExpr(n.Left); err != nil {
			return err
		}
		return l.linkExpr(n.Right)
	default:
		panic(fmt.Sprintf("merge: unknown expression kind %T", e.Node))
	}
}

// linkReference fills ref.GlobalResolved and, for an import, ref.ModuleResolved
// too. An unqualified in-module reference's global name is always
// {module: l.path, name: ModuleResolved} — the exact formula Hoist uses
// for top-level definitions — since ModuleResolved is already unique
// within the module by construction (component C); no table lookup is
// needed or possible for names that are local to a function body and
// never appear in any DefinitionTable. A reference C left unresolved
// (ModuleResolved empty) is instead an import, linked by raw name.
// ModuleResolved is always shadow index 0 for an imported name (`use`
// targets a single public definition, never a shadowed local one), the
// same "0_"+raw formula component C itself uses for ordinary bindings —
// ground truth: original_source/src/front/mergers/package.rs
// test_import_files expects module_resolved == Some("0_a") on exactly
// this kind of reference (spec.md §3 invariant 1: every linked Reference
// has all three name fields populated). Neither case matching is an
// UnresolvedReference — component C guarantees every reference it leaves
// open matches one of these two sources, so this only fires if C and D
// disagree about which names are imports, a front-end bug rather than a
// user error in well-formed input.
func (l *linker) linkReference(ref *ast.Reference) error {
	if ref.GlobalResolved != nil {
		return nil
	}
	if ref.ModuleResolved != "" {
		g := ast.GlobalName{Module: l.path, Name: ref.ModuleResolved}
		ref.GlobalResolved = &g
		return nil
	}
	if g, ok := l.imported[ref.Raw]; ok {
		g := g
		ref.ModuleResolved = "0_" + ref.Raw
		ref.GlobalResolved = &g
		return nil
	}

	rep := ingerrors.New(ingerrors.RES004, ingerrors.PhaseMerge,
		fmt.Sprintf("unresolved reference %q", ref.Raw)).
		WithPath(l.path).
		WithData("raw", ref.Raw)
	return ingerrors.WrapReport(rep)
}
