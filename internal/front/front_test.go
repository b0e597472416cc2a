package front

import (
	"testing"

	ingerrors "github.com/ing-lang/ingc/internal/errors"
	"github.com/ing-lang/ingc/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFullPipelineSucceeds(t *testing.T) {
	fs := testutil.Files(t, map[string]string{
		"main.ing": `
			mod geometry;
			use root::geometry::distance;
			fn main() {
				let d: Int = distance();
			}
		`,
		"geometry.ing": `
			pub fn distance() -> Int {
				return 1 + 2;
			}
		`,
	})

	res, err := Run(Config{PackageName: "example"}, Source{FS: fs, Root: "/"})
	require.NoError(t, err)
	require.NotNil(t, res.Program)
	assert.Len(t, res.Program.Modules, 2)
	assert.Equal(t, 2, res.Program.Package.Public.Functions.Len()+res.Program.Package.Private.Functions.Len())
}

func TestRunStopsAtDiscoveryError(t *testing.T) {
	fs := testutil.Files(t, map[string]string{"main.ing": `mod missing; fn main() {}`})

	res, err := Run(Config{PackageName: "example"}, Source{FS: fs, Root: "/"})
	assert.Nil(t, res.Program)
	testutil.RequireReportCode(t, err, ingerrors.DIS001)
}

func TestRunStopsAtTypeError(t *testing.T) {
	fs := testutil.Files(t, map[string]string{"main.ing": `fn main() { let x: Int = true; }`})

	res, err := Run(Config{PackageName: "example"}, Source{FS: fs, Root: "/"})
	assert.Nil(t, res.Program)
	testutil.RequireReportCode(t, err, ingerrors.TC001)
}

func TestRunHonorsConfigEntryFile(t *testing.T) {
	// SPEC_FULL.md §1.3: a manifest's `entry` overrides the default
	// main.ing root file, threaded here via Config.EntryFile.
	fs := testutil.Files(t, map[string]string{"start.ing": `fn main() {}`})

	res, err := Run(Config{PackageName: "example", EntryFile: "start.ing"}, Source{FS: fs, Root: "/"})
	require.NoError(t, err)
	require.NotNil(t, res.Program)
	assert.Len(t, res.Program.Modules, 1)
}

func TestRunDefaultEntryFileIsMainIng(t *testing.T) {
	fs := testutil.Files(t, map[string]string{"start.ing": `fn main() {}`})

	_, err := Run(Config{PackageName: "example"}, Source{FS: fs, Root: "/"})
	testutil.RequireReportCode(t, err, ingerrors.DIS001)
}
