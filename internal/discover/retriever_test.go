package discover

import (
	"testing"

	ingerrors "github.com/ing-lang/ingc/internal/errors"
	"github.com/ing-lang/ingc/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverMinimalPackage(t *testing.T) {
	fs := testutil.Files(t, map[string]string{"main.ing": "fn main() {}"})
	r := New(fs)

	modules, err := r.Discover("/", DefaultEntryFile)
	require.NoError(t, err)
	require.Len(t, modules, 1)

	root, ok := modules["/root"]
	require.True(t, ok)
	assert.Equal(t, "/root", root.Path)
	require.Len(t, root.Block.Definitions, 1)
}

func TestDiscoverTwoFileSubmodule(t *testing.T) {
	fs := testutil.Files(t, map[string]string{
		"main.ing":         "mod test; fn main() {}",
		"test.ing":         "pub mod example;",
		"test/example.ing": "pub fn a() {}",
	})
	r := New(fs)

	modules, err := r.Discover("/", DefaultEntryFile)
	require.NoError(t, err)
	require.Len(t, modules, 3)

	require.Contains(t, modules, "/root")
	require.Contains(t, modules, "/root/test")
	require.Contains(t, modules, "/root/test/example")

	example := modules["/root/test/example"]
	require.Len(t, example.PublicDefinitions, 1)
	assert.Equal(t, "a", example.PublicDefinitions[0].DefName().Raw)
}

func TestDiscoverChildNamespaceNotVisibleWithoutModDeclaration(t *testing.T) {
	// /test/example.ing exists on disk but /test.ing never declares
	// `mod example;`, so it must not be discovered (spec.md 4.B: a module
	// controls the visibility of its child namespace).
	fs := testutil.Files(t, map[string]string{
		"main.ing":         "mod test; fn main() {}",
		"test.ing":         "fn helper() {}",
		"test/example.ing": "pub fn a() {}",
	})
	r := New(fs)

	modules, err := r.Discover("/", DefaultEntryFile)
	require.NoError(t, err)
	assert.Len(t, modules, 2)
	assert.NotContains(t, modules, "/root/test/example")
}

func TestDiscoverMissingModuleFile(t *testing.T) {
	fs := testutil.Files(t, map[string]string{"main.ing": "mod test; fn main() {}"})
	r := New(fs)

	_, err := r.Discover("/", DefaultEntryFile)
	testutil.RequireReportCode(t, err, ingerrors.DIS001)
}

func TestDiscoverDuplicateModuleDeclaration(t *testing.T) {
	fs := testutil.Files(t, map[string]string{
		"main.ing": "mod test; mod test; fn main() {}",
		"test.ing": "fn helper() {}",
	})
	r := New(fs)

	_, err := r.Discover("/", DefaultEntryFile)
	testutil.RequireReportCode(t, err, ingerrors.DIS002)
}

func TestDiscoverParseFailure(t *testing.T) {
	fs := testutil.Files(t, map[string]string{
		"main.ing": "mod test; fn main() {}",
		"test.ing": "fn (",
	})
	r := New(fs)

	_, err := r.Discover("/", DefaultEntryFile)
	testutil.RequireReportCode(t, err, ingerrors.DIS003)
}

func TestDiscoverHonorsCustomEntryFile(t *testing.T) {
	// SPEC_FULL.md §1.3: a manifest's `entry` overrides the default
	// main.ing root file name.
	fs := testutil.Files(t, map[string]string{"start.ing": "fn main() {}"})
	r := New(fs)

	modules, err := r.Discover("/", "start.ing")
	require.NoError(t, err)
	require.Len(t, modules, 1)
	assert.Contains(t, modules, "/root")
}

func TestDependencyGraphAndTopologicalOrder(t *testing.T) {
	fs := testutil.Files(t, map[string]string{
		"main.ing":         "mod test; fn main() {}",
		"test.ing":         "pub mod example;",
		"test/example.ing": "pub fn a() {}",
	})
	r := New(fs)

	_, err := r.Discover("/", DefaultEntryFile)
	require.NoError(t, err)

	graph := r.DependencyGraph()
	assert.Equal(t, []string{"/root/test"}, graph["/root"])
	assert.Equal(t, []string{"/root/test/example"}, graph["/root/test"])

	order, err := r.TopologicalOrder()
	require.NoError(t, err)
	require.Equal(t, []string{"/root", "/root/test", "/root/test/example"}, order)
}

func TestDumpModulesListsEveryModuleAndDefinition(t *testing.T) {
	fs := testutil.Files(t, map[string]string{"main.ing": "fn main() {}"})
	r := New(fs)
	_, err := r.Discover("/", DefaultEntryFile)
	require.NoError(t, err)

	dump := r.DumpModules()
	assert.Contains(t, dump, "module /root")
	assert.Contains(t, dump, "main")
}

func TestDumpModulesIsStableAcrossCalls(t *testing.T) {
	fs := testutil.Files(t, map[string]string{
		"main.ing":         "mod test; fn main() {}",
		"test.ing":         "pub mod example;",
		"test/example.ing": "pub fn a() {}",
	})
	r := New(fs)
	_, err := r.Discover("/", DefaultEntryFile)
	require.NoError(t, err)

	first := r.DumpModules()
	second := r.DumpModules()
	if diff := testutil.DiffStrings(first, second); diff != "" {
		t.Errorf("DumpModules is not stable across repeated calls (-first +second):\n%s", diff)
	}
}
