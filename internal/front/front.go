// Package front orchestrates the whole front-end — discovery (B), per-
// module resolution (C), merge (D), and type resolution (F) — into one
// call, producing a Program ready for a downstream code generator (out
// of scope here, spec.md §1). Grounded on the *shape* of the teacher's
// internal/pipeline/pipeline.go (Config/Source/Result staged-struct
// style, per-phase timings), trimmed to the Check-only mode: this
// front-end never evaluates, so there is no ModeEval equivalent.
package front

import (
	"fmt"
	"sort"
	"time"

	"github.com/ing-lang/ingc/internal/ast"
	"github.com/ing-lang/ingc/internal/discover"
	"github.com/ing-lang/ingc/internal/merge"
	"github.com/ing-lang/ingc/internal/resolve"
	"github.com/ing-lang/ingc/internal/typecheck"
	"github.com/ing-lang/ingc/internal/vfs"
)

// Config controls Run's behavior.
type Config struct {
	// PackageName is used by the merger to recognize `use <PackageName>::...`
	// as equivalent to `use root::...` (spec.md 4.D).
	PackageName string

	// EntryFile is the package root's root file name, e.g. "main.ing".
	// Empty means discover.DefaultEntryFile (SPEC_FULL.md §1.3: a
	// manifest's `entry` overrides this).
	EntryFile string
}

// Source identifies what to compile: a package root directory on fs
// containing the entry file named by Config.EntryFile.
type Source struct {
	FS   vfs.FileSystem
	Root string
}

// Program is the front-end's final artifact: every discovered module
// (now module- and global-resolved, with every Expression annotated) plus
// the merged definition table a downstream code generator consumes.
type Program struct {
	Modules map[string]*ast.Module
	Package *merge.MergedPackage
}

// Result wraps Program with per-phase timings, grounded on the teacher's
// Result.PhaseTimings (spec.md carries no timing requirement itself, but
// the teacher's ambient diagnostics style is kept — SPEC_FULL.md CLI
// surface section).
type Result struct {
	Program      *Program
	PhaseTimings map[string]int64 // milliseconds
}

// Run executes B, C, D, then F in sequence, stopping at the first error.
func Run(cfg Config, src Source) (Result, error) {
	result := Result{PhaseTimings: map[string]int64{}}

	entryFile := cfg.EntryFile
	if entryFile == "" {
		entryFile = discover.DefaultEntryFile
	}

	start := time.Now()
	retriever := discover.New(src.FS)
	modules, err := retriever.Discover(src.Root, entryFile)
	result.PhaseTimings["discover"] = time.Since(start).Milliseconds()
	if err != nil {
		return result, err
	}

	start = time.Now()
	for _, path := range sortedPaths(modules) {
		if err := resolve.New(path).Resolve(modules[path]); err != nil {
			result.PhaseTimings["resolve"] = time.Since(start).Milliseconds()
			return result, err
		}
	}
	result.PhaseTimings["resolve"] = time.Since(start).Milliseconds()

	start = time.Now()
	pkg, err := merge.New(cfg.PackageName, modules).Merge()
	result.PhaseTimings["merge"] = time.Since(start).Milliseconds()
	if err != nil {
		return result, err
	}

	start = time.Now()
	err = typecheck.New(pkg).Check()
	result.PhaseTimings["typecheck"] = time.Since(start).Milliseconds()
	if err != nil {
		return result, err
	}

	result.Program = &Program{Modules: modules, Package: pkg}
	return result, nil
}

func sortedPaths(modules map[string]*ast.Module) []string {
	paths := make([]string, 0, len(modules))
	for p := range modules {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// TotalMillis sums every recorded phase timing, for a one-line summary.
func (r Result) TotalMillis() int64 {
	var total int64
	for _, ms := range r.PhaseTimings {
		total += ms
	}
	return total
}

func (r Result) String() string {
	return fmt.Sprintf("front: discover=%dms resolve=%dms merge=%dms typecheck=%dms total=%dms",
		r.PhaseTimings["discover"], r.PhaseTimings["resolve"], r.PhaseTimings["merge"], r.PhaseTimings["typecheck"], r.TotalMillis())
}
