package typecheck

import (
	"testing"

	"github.com/ing-lang/ingc/internal/discover"
	ingerrors "github.com/ing-lang/ingc/internal/errors"
	"github.com/ing-lang/ingc/internal/merge"
	"github.com/ing-lang/ingc/internal/resolve"
	"github.com/ing-lang/ingc/testutil"
	"github.com/stretchr/testify/require"
)

// buildPackage runs B, C and D over a single-file fixture and returns the
// merged package ready for F.
func buildPackage(t *testing.T, src string) *merge.MergedPackage {
	t.Helper()
	fs := testutil.Files(t, map[string]string{"main.ing": src})
	r := discover.New(fs)
	modules, err := r.Discover("/", discover.DefaultEntryFile)
	require.NoError(t, err)
	for path, mod := range modules {
		require.NoError(t, resolve.New(path).Resolve(mod))
	}
	mp, err := merge.New("example", modules).Merge()
	require.NoError(t, err)
	return mp
}

func TestCheckWellTypedProgram(t *testing.T) {
	mp := buildPackage(t, `
		struct Point { x: Int, y: Int }
		fn dist(p: Point) -> Int {
			let total: Int = p.x + p.y;
			return total;
		}
		fn main() {
			let p: Point = Point { x: 1, y: 2 };
			let d: Int = dist(p);
			if d > 0 {
				let ok: Bool = true;
			}
		}
	`)
	require.NoError(t, New(mp).Check())
}

func TestCheckVarDeclTypeMismatch(t *testing.T) {
	mp := buildPackage(t, `fn main() { let x: Int = true; }`)
	err := New(mp).Check()
	testutil.RequireReportCode(t, err, ingerrors.TC001)
}

func TestCheckBinaryMismatch(t *testing.T) {
	mp := buildPackage(t, `fn main() { let x: Int = 1 + true; }`)
	err := New(mp).Check()
	testutil.RequireReportCode(t, err, ingerrors.TC003)
}

func TestCheckUnaryMismatch(t *testing.T) {
	mp := buildPackage(t, `fn main() { let x: Bool = -true; }`)
	err := New(mp).Check()
	testutil.RequireReportCode(t, err, ingerrors.TC002)
}

func TestCheckBadFieldAccess(t *testing.T) {
	mp := buildPackage(t, `
		struct Point { x: Int, y: Int }
		fn main() {
			let p: Point = Point { x: 1, y: 2 };
			let z: Int = p.zzz;
		}
	`)
	err := New(mp).Check()
	testutil.RequireReportCode(t, err, ingerrors.TC004)
}

func TestCheckReturnMismatch(t *testing.T) {
	mp := buildPackage(t, `fn f() -> Int { return true; }`)
	err := New(mp).Check()
	testutil.RequireReportCode(t, err, ingerrors.TC005)
}

func TestCheckNonBoolCondition(t *testing.T) {
	mp := buildPackage(t, `fn main() { if 1 { } }`)
	err := New(mp).Check()
	testutil.RequireReportCode(t, err, ingerrors.TC006)
}

func TestCheckCallArgCountMismatch(t *testing.T) {
	mp := buildPackage(t, `
		fn add(a: Int, b: Int) -> Int { return a + b; }
		fn main() { let x: Int = add(1); }
	`)
	err := New(mp).Check()
	testutil.RequireReportCode(t, err, ingerrors.TC001)
}

func TestCheckCallArgTypeMismatch(t *testing.T) {
	mp := buildPackage(t, `
		fn add(a: Int, b: Int) -> Int { return a + b; }
		fn main() { let x: Int = add(1, true); }
	`)
	err := New(mp).Check()
	testutil.RequireReportCode(t, err, ingerrors.TC001)
}

func TestCheckNominalStructEquality(t *testing.T) {
	mp := buildPackage(t, `
		struct A { v: Int }
		struct B { v: Int }
		fn takesA(a: A) -> Int { return a.v; }
		fn main() {
			let b: B = B { v: 1 };
		}
	`)
	require.NoError(t, New(mp).Check())
}
