package resolve

import (
	"testing"

	"github.com/ing-lang/ingc/internal/ast"
	ingerrors "github.com/ing-lang/ingc/internal/errors"
	"github.com/ing-lang/ingc/internal/parser"
	"github.com/ing-lang/ingc/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseModule(t *testing.T, src string) *ast.Module {
	t.Helper()
	p := parser.New([]byte(src), "main.ing")
	mod := p.Parse()
	require.Empty(t, p.Errors())
	return mod
}

func TestResolveMinimalPackage(t *testing.T) {
	mod := parseModule(t, `fn main() { let x: Int = 1; let y: Int = x; }`)
	r := New("/root")
	require.NoError(t, r.Resolve(mod))

	fn := mod.Block.Definitions[0].(*ast.FnDef)
	assert.Equal(t, "0_main", fn.Name.ModuleResolved)

	decl0 := fn.Body.Statements[0].(*ast.VarDecl)
	assert.Equal(t, "0_x", decl0.VarDef.Name.ModuleResolved)

	decl1 := fn.Body.Statements[1].(*ast.VarDecl)
	ref := decl1.Expr.Node.(*ast.Variable).Path.Name
	assert.Equal(t, "0_x", ref.ModuleResolved)
}

func TestResolveShadowingAcrossBlocks(t *testing.T) {
	mod := parseModule(t, `fn main() {
		let x: Int = 1;
		if x > 0 {
			let x: Bool = true;
		}
		let z: Int = x;
	}`)
	r := New("/root")
	require.NoError(t, r.Resolve(mod))

	fn := mod.Block.Definitions[0].(*ast.FnDef)
	outer := fn.Body.Statements[0].(*ast.VarDecl)
	assert.Equal(t, "0_x", outer.VarDef.Name.ModuleResolved)

	ifStmt := fn.Body.Statements[1].(*ast.If)
	inner := ifStmt.Then.Statements[0].(*ast.VarDecl)
	assert.Equal(t, "1_x", inner.VarDef.Name.ModuleResolved)

	afterIf := fn.Body.Statements[2].(*ast.VarDecl)
	ref := afterIf.Expr.Node.(*ast.Variable).Path.Name
	assert.Equal(t, "0_x", ref.ModuleResolved, "x after the if-block must resolve to the outer binding")
}

func TestResolveForwardReferenceBetweenFunctions(t *testing.T) {
	mod := parseModule(t, `
		fn main() { helper(); }
		fn helper() {}
	`)
	r := New("/root")
	require.NoError(t, r.Resolve(mod))

	mainFn := mod.Block.Definitions[0].(*ast.FnDef)
	call := mainFn.Body.Statements[0].(*ast.ExprStmt).Expr.Node.(*ast.FnCall)
	assert.Equal(t, "0_helper", call.Name.ModuleResolved)
}

func TestResolveUndefinedVariable(t *testing.T) {
	mod := parseModule(t, `fn main() { let y: Int = x; }`)
	r := New("/root")
	err := r.Resolve(mod)
	testutil.RequireReportCode(t, err, ingerrors.RES001)
}

func TestResolveRedefinitionInSameScope(t *testing.T) {
	mod := parseModule(t, `fn main() { let x: Int = 1; let x: Int = 2; }`)
	r := New("/root")
	err := r.Resolve(mod)
	testutil.RequireReportCode(t, err, ingerrors.RES002)
}

func TestResolveStructFieldTypeReference(t *testing.T) {
	mod := parseModule(t, `
		pub struct Point { x: Int, y: Int }
		fn main() {
			let p: Point = Point { x: 1, y: 2 };
		}
	`)
	r := New("/root")
	require.NoError(t, r.Resolve(mod))

	sd := mod.PublicDefinitions[0].(*ast.StructDef)
	assert.Equal(t, "0_Point", sd.TypeName.ModuleResolved)

	fn := mod.Block.Definitions[0].(*ast.FnDef)
	decl := fn.Body.Statements[0].(*ast.VarDecl)
	assert.Equal(t, "0_Point", decl.VarDef.Type.StructRef.ModuleResolved)

	init := decl.Expr.Node.(*ast.StructInit)
	assert.Equal(t, "0_Point", init.TypeRef.ModuleResolved)
}

func TestResolveLeavesImportedCallUnresolvedForMerger(t *testing.T) {
	// `a` is brought in by `use`, not defined locally: the per-module
	// resolver must not raise UndefinedVariable for it, and must leave
	// ModuleResolved empty so the merger (component D) can link it against
	// the use path instead (spec.md 4.D).
	mod := parseModule(t, `use root::test::example::a; fn main() { a(); }`)
	r := New("/root")
	require.NoError(t, r.Resolve(mod))

	fn := mod.Block.Definitions[0].(*ast.FnDef)
	call := fn.Body.Statements[0].(*ast.ExprStmt).Expr.Node.(*ast.FnCall)
	assert.Empty(t, call.Name.ModuleResolved)
	assert.Nil(t, call.Name.GlobalResolved)
}

func TestResolveVarAndStructIndependentNamespaces(t *testing.T) {
	// "Point" the struct and a local variable "Point" live in independent
	// namespaces and must not collide (spec.md 4.C).
	mod := parseModule(t, `
		struct Point { x: Int }
		fn main() {
			let Point: Int = 1;
		}
	`)
	r := New("/root")
	require.NoError(t, r.Resolve(mod))

	sd := mod.Block.Definitions[0].(*ast.StructDef)
	fn := mod.Block.Definitions[1].(*ast.FnDef)
	decl := fn.Body.Statements[0].(*ast.VarDecl)

	assert.NotEqual(t, sd.TypeName.ModuleResolved, decl.VarDef.Name.ModuleResolved)
}
