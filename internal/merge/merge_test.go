package merge

import (
	"testing"

	"github.com/ing-lang/ingc/internal/ast"
	"github.com/ing-lang/ingc/internal/discover"
	ingerrors "github.com/ing-lang/ingc/internal/errors"
	"github.com/ing-lang/ingc/internal/resolve"
	"github.com/ing-lang/ingc/internal/vfs"
	"github.com/ing-lang/ingc/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// discoverAndResolve runs components B then C, the prerequisite pipeline
// merge's tests exercise against real parsed-and-resolved modules rather
// than hand-built ASTs.
func discoverAndResolve(t *testing.T, fs vfs.FileSystem) map[string]*ast.Module {
	t.Helper()
	r := discover.New(fs)
	modules, err := r.Discover("/", discover.DefaultEntryFile)
	require.NoError(t, err)
	for path, mod := range modules {
		require.NoError(t, resolve.New(path).Resolve(mod))
	}
	return modules
}

func TestMergeMinimalPackage(t *testing.T) {
	fs := testutil.Files(t, map[string]string{"main.ing": "fn main() {}"})
	modules := discoverAndResolve(t, fs)

	mp, err := New("example", modules).Merge()
	require.NoError(t, err)

	key := ast.GlobalName{Module: "/root", Name: "0_main"}
	fn, ok := mp.Private.Functions.Get(key)
	require.True(t, ok)
	assert.Equal(t, "main", fn.Name.Raw)
	assert.Equal(t, 1, mp.Private.Functions.Len())
	assert.Equal(t, 0, mp.Public.Functions.Len())
}

func TestMergeTwoFileSubmodule(t *testing.T) {
	fs := testutil.Files(t, map[string]string{
		"main.ing":         "mod test; fn main() {}",
		"test.ing":         "pub mod example;",
		"test/example.ing": "pub fn a() {}",
	})
	modules := discoverAndResolve(t, fs)

	mp, err := New("example", modules).Merge()
	require.NoError(t, err)

	_, ok := mp.Private.Functions.Get(ast.GlobalName{Module: "/root", Name: "0_main"})
	require.True(t, ok)
	_, ok = mp.Public.Functions.Get(ast.GlobalName{Module: "/root/test/example", Name: "0_a"})
	require.True(t, ok)
}

func TestMergeLocalImportLinksCallSite(t *testing.T) {
	fs := testutil.Files(t, map[string]string{
		"main.ing":         "mod test; use root::test::example::a; fn main() { a(); }",
		"test.ing":         "pub mod example;",
		"test/example.ing": "pub fn a() {}",
	})
	modules := discoverAndResolve(t, fs)

	_, err := New("example", modules).Merge()
	require.NoError(t, err)

	main := modules["/root"].Block.Definitions[0].(*ast.FnDef)
	call := main.Body.Statements[0].(*ast.ExprStmt).Expr.Node.(*ast.FnCall)
	require.NotNil(t, call.Name.GlobalResolved)
	assert.Equal(t, ast.GlobalName{Module: "/root/test/example", Name: "0_a"}, *call.Name.GlobalResolved)
	// spec.md §3 invariant 1: every linked Reference has all three name
	// fields populated, including ModuleResolved on an import's call site
	// (ground truth: original_source/src/front/mergers/package.rs
	// test_import_files expects module_resolved == Some("0_a") here).
	assert.Equal(t, "0_a", call.Name.ModuleResolved)
}

func TestMergeOwnPackageNameEquivalentToRoot(t *testing.T) {
	fs := testutil.Files(t, map[string]string{
		"main.ing":         "mod test; use example::test::example::a; fn main() { a(); }",
		"test.ing":         "pub mod example;",
		"test/example.ing": "pub fn a() {}",
	})
	modules := discoverAndResolve(t, fs)

	_, err := New("example", modules).Merge()
	require.NoError(t, err)

	main := modules["/root"].Block.Definitions[0].(*ast.FnDef)
	call := main.Body.Statements[0].(*ast.ExprStmt).Expr.Node.(*ast.FnCall)
	require.NotNil(t, call.Name.GlobalResolved)
	assert.Equal(t, ast.GlobalName{Module: "/root/test/example", Name: "0_a"}, *call.Name.GlobalResolved)
}

func TestMergeCrossPackageImportSynthesizesName(t *testing.T) {
	fs := testutil.Files(t, map[string]string{
		"main.ing": "mod test; use std::test::example::a; fn main() { a(); }",
		"test.ing": "fn helper() {}",
	})
	modules := discoverAndResolve(t, fs)

	mp, err := New("example", modules).Merge()
	require.NoError(t, err)

	main := modules["/root"].Block.Definitions[0].(*ast.FnDef)
	call := main.Body.Statements[0].(*ast.ExprStmt).Expr.Node.(*ast.FnCall)
	require.NotNil(t, call.Name.GlobalResolved)
	assert.Equal(t, ast.GlobalName{Module: "std/test/example", Name: "0_a"}, *call.Name.GlobalResolved)
	assert.Equal(t, "0_a", call.Name.ModuleResolved)

	_, ok := mp.Public.Functions.Get(ast.GlobalName{Module: "std/test/example", Name: "0_a"})
	assert.False(t, ok, "no entry for a foreign module should exist in the merged table")
}

func TestMergeLinksLocalVariableAndStructFieldTypeReferences(t *testing.T) {
	fs := testutil.Files(t, map[string]string{"main.ing": `
		struct Point { x: Int, y: Int }
		fn main() {
			let p: Point = Point { x: 1, y: 2 };
			let q: Point = p;
		}
	`})
	modules := discoverAndResolve(t, fs)

	_, err := New("example", modules).Merge()
	require.NoError(t, err)

	fn := modules["/root"].Block.Definitions[1].(*ast.FnDef)
	decl0 := fn.Body.Statements[0].(*ast.VarDecl)
	require.NotNil(t, decl0.VarDef.Type.StructRef.GlobalResolved)
	assert.Equal(t, ast.GlobalName{Module: "/root", Name: "0_Point"}, *decl0.VarDef.Type.StructRef.GlobalResolved)

	decl1 := fn.Body.Statements[1].(*ast.VarDecl)
	ref := decl1.Expr.Node.(*ast.Variable).Path.Name
	require.NotNil(t, ref.GlobalResolved)
	assert.Equal(t, ast.GlobalName{Module: "/root", Name: "0_p"}, *ref.GlobalResolved)
}

func TestMergeUnresolvedImportReportsSuggestion(t *testing.T) {
	fs := testutil.Files(t, map[string]string{
		"main.ing":         "mod test; use root::test::example::ab; fn main() { ab(); }",
		"test.ing":         "pub mod example;",
		"test/example.ing": "pub fn a() {}",
	})
	modules := discoverAndResolve(t, fs)

	_, err := New("example", modules).Merge()
	require.Error(t, err)

	rep := testutil.RequireReportCode(t, err, ingerrors.RES003)
	require.NotNil(t, rep.Fix)
	assert.Contains(t, rep.Fix.Suggestions, "a")
}
