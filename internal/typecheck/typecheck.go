// Package typecheck implements the type resolver (component F): a
// two-pass walk over the merged definition table that fills
// Expression.Type everywhere and checks every statement-level type
// constraint spec.md 4.F names. Grounded on the *shape* of the teacher's
// internal/pipeline/pipeline.go staged-artifact approach and
// internal/typedast's "annotate the AST in place" idea; the concrete
// unification/type-class engine of the teacher's real type checker
// (internal/types) is not reused — this front-end's type system has no
// inference and no type classes, just a flat equality check, so only the
// two-pass walking discipline survives (DESIGN.md).
package typecheck

import (
	"fmt"

	"github.com/ing-lang/ingc/internal/ast"
	ingerrors "github.com/ing-lang/ingc/internal/errors"
	"github.com/ing-lang/ingc/internal/merge"
)

// Checker runs the two-pass type resolution walk over a MergedPackage.
type Checker struct {
	pkg *merge.MergedPackage

	// varTypes is spec.md 4.F's single var_types map: function arguments,
	// free-standing VarDecls (top-level and local), and function names
	// themselves (bound to their return type) all share this one map,
	// keyed by GlobalResolved name.
	varTypes map[ast.GlobalName]ast.Type

	// curReturn is the return type of the function whose body Pass 2 is
	// currently walking, consulted by the Return statement check.
	curReturn ast.Type

	// funcDefs mirrors varTypes but keeps the whole FnDef (not just its
	// return type), so call sites can check argument count and types
	// against the callee's declared parameter list.
	funcDefs map[ast.GlobalName]*ast.FnDef
}

// New creates a Checker over pkg.
func New(pkg *merge.MergedPackage) *Checker {
	return &Checker{pkg: pkg, varTypes: map[ast.GlobalName]ast.Type{}, funcDefs: map[ast.GlobalName]*ast.FnDef{}}
}

// Check runs Pass 1 then Pass 2 over every function and every global
// variable initializer in pkg, returning the first type error encountered.
func (c *Checker) Check() error {
	c.collectVariableTypes()
	for _, fn := range c.allFunctions() {
		if err := c.checkFunction(fn); err != nil {
			return err
		}
	}
	for _, vd := range c.allGlobalVars() {
		if err := c.checkStmt(vd, mustResolved(vd.VarDef.Name).Module); err != nil {
			return err
		}
	}
	return nil
}

func (c *Checker) allFunctions() []*ast.FnDef {
	fns := make([]*ast.FnDef, 0, c.pkg.Public.Functions.Len()+c.pkg.Private.Functions.Len())
	for _, k := range c.pkg.Public.Functions.Keys() {
		fn, _ := c.pkg.Public.Functions.Get(k)
		fns = append(fns, fn)
	}
	for _, k := range c.pkg.Private.Functions.Keys() {
		fn, _ := c.pkg.Private.Functions.Get(k)
		fns = append(fns, fn)
	}
	return fns
}

func (c *Checker) allGlobalVars() []*ast.VarDecl {
	vars := make([]*ast.VarDecl, 0, c.pkg.Public.GlobalVars.Len()+c.pkg.Private.GlobalVars.Len())
	for _, k := range c.pkg.Public.GlobalVars.Keys() {
		v, _ := c.pkg.Public.GlobalVars.Get(k)
		vars = append(vars, v)
	}
	for _, k := range c.pkg.Private.GlobalVars.Keys() {
		v, _ := c.pkg.Private.GlobalVars.Get(k)
		vars = append(vars, v)
	}
	return vars
}

// structDef looks up a struct definition by its global name across both
// partitions of the merged table.
func (c *Checker) structDef(g ast.GlobalName) (*ast.StructDef, bool) {
	if sd, ok := c.pkg.Public.Structs.Get(g); ok {
		return sd, true
	}
	return c.pkg.Private.Structs.Get(g)
}

func mustResolved(ref *ast.Reference) ast.GlobalName {
	if ref.GlobalResolved == nil {
		panic(fmt.Sprintf("typecheck: %q reached F without a resolved global name (%s)", ref.Raw, ingerrors.INT002))
	}
	return *ref.GlobalResolved
}

func typeErr(code, path, msg string) error {
	return ingerrors.WrapReport(ingerrors.New(code, ingerrors.PhaseTypecheck, msg).WithPath(path))
}
