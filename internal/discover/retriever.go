// Package discover implements the file retriever (component B): starting
// from a package root, it follows `mod`/`pub mod` declarations to discover
// and parse every module of a package, grounded on the teacher's
// internal/module/loader.go Load/loadDependencies traversal (cache plus a
// load-stack), adapted from "load by import path" to "discover files
// reachable from mod declarations."
package discover

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ing-lang/ingc/internal/ast"
	ingerrors "github.com/ing-lang/ingc/internal/errors"
	"github.com/ing-lang/ingc/internal/parser"
	"github.com/ing-lang/ingc/internal/vfs"
)

const rootPath = "/root"

// DefaultEntryFile is the root file name assumed when a package carries no
// ing.yaml manifest, or a manifest with no explicit `entry` (SPEC_FULL.md
// §1.3, manifest.Default).
const DefaultEntryFile = "main.ing"

// Retriever discovers a package's modules and remembers the dependency
// edges it walked, so downstream tooling can ask for a dependency graph or
// a safe compilation order without re-walking the filesystem.
type Retriever struct {
	fs      vfs.FileSystem
	modules map[string]*ast.Module
	edges   map[string][]string // module path -> child module paths, in declaration order
}

// New creates a Retriever over fs.
func New(fs vfs.FileSystem) *Retriever {
	return &Retriever{
		fs:      fs,
		modules: map[string]*ast.Module{},
		edges:   map[string][]string{},
	}
}

// Discover walks fs starting at the package root directory (which must
// contain entryFile — DefaultEntryFile unless a manifest overrides it via
// SPEC_FULL.md §1.3's `entry` field) and returns every module keyed by its
// canonical module path (spec.md 4.B).
func (r *Retriever) Discover(root, entryFile string) (map[string]*ast.Module, error) {
	entryPath := joinDir(root, entryFile)
	mod, err := r.load(entryPath, rootPath)
	if err != nil {
		return nil, err
	}
	r.modules[rootPath] = mod
	if err := r.discoverChildren(mod, rootPath, root); err != nil {
		return nil, err
	}
	return r.modules, nil
}

func (r *Retriever) load(filePath, modPath string) (*ast.Module, error) {
	data, err := r.fs.ReadFile(filePath)
	if err != nil {
		rep := ingerrors.New(ingerrors.DIS001, ingerrors.PhaseDiscovery,
			fmt.Sprintf("module %q has no matching file %q", modPath, filePath)).
			WithPath(modPath).
			WithData("file", filePath).
			WithData("trace", r.trace(modPath))
		return nil, ingerrors.WrapReport(rep)
	}

	p := parser.New(data, filePath)
	mod := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		msgs := make([]string, len(errs))
		for i, e := range errs {
			msgs[i] = e.Error()
		}
		rep := ingerrors.New(ingerrors.DIS003, ingerrors.PhaseDiscovery,
			fmt.Sprintf("failed to parse %q", filePath)).
			WithPath(modPath).
			WithData("file", filePath).
			WithData("errors", msgs).
			WithData("trace", r.trace(modPath))
		return nil, ingerrors.WrapReport(rep)
	}
	mod.Path = modPath
	return mod, nil
}

// discoverChildren processes mod's own `mod`/`pub mod` declarations.
// childDir is the filesystem directory that holds mod's children — the
// package root itself for the root module, or <parent's childDir>/<seg>
// for any other module (spec.md 6: "Subdirectory X/ holds children of
// module X").
func (r *Retriever) discoverChildren(mod *ast.Module, modPath, childDir string) error {
	seen := map[string]bool{}
	for _, imp := range mod.Imports {
		if seen[imp.Name] {
			rep := ingerrors.New(ingerrors.DIS002, ingerrors.PhaseDiscovery,
				fmt.Sprintf("module %q declares %q more than once", modPath, imp.Name)).
				WithPath(modPath).
				WithData("trace", r.trace(modPath))
			return ingerrors.WrapReport(rep)
		}
		seen[imp.Name] = true

		childPath := modPath + "/" + imp.Name
		filePath := joinDir(childDir, imp.Name+".ing")

		r.edges[modPath] = append(r.edges[modPath], childPath)
		child, err := r.load(filePath, childPath)
		if err != nil {
			return err
		}
		r.modules[childPath] = child

		if err := r.discoverChildren(child, childPath, joinDir(childDir, imp.Name)); err != nil {
			return err
		}
	}
	return nil
}

// trace renders the chain of module paths discovered so far that lead to
// modPath, for Report.Data["trace"] (SPEC_FULL.md "Resolution trace").
func (r *Retriever) trace(modPath string) []string {
	var chain []string
	cur := modPath
	for cur != "" {
		chain = append([]string{cur}, chain...)
		parent, ok := r.parentOf(cur)
		if !ok {
			break
		}
		cur = parent
	}
	return chain
}

func (r *Retriever) parentOf(modPath string) (string, bool) {
	for parent, children := range r.edges {
		for _, c := range children {
			if c == modPath {
				return parent, true
			}
		}
	}
	return "", false
}

func joinDir(dir, name string) string {
	if dir == "" || dir == "/" {
		return "/" + name
	}
	return strings.TrimSuffix(dir, "/") + "/" + name
}

// DependencyGraph returns the discovered mod-declaration edges, module
// path to its direct children, in declaration order.
func (r *Retriever) DependencyGraph() map[string][]string {
	out := make(map[string][]string, len(r.edges))
	for k, v := range r.edges {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// TopologicalOrder returns every discovered module path ordered so that a
// module always precedes its children (Kahn's algorithm), grounded on the
// teacher's internal/module/loader.go TopologicalSort.
func (r *Retriever) TopologicalOrder() ([]string, error) {
	indegree := map[string]int{}
	for path := range r.modules {
		indegree[path] = 0
	}
	for _, children := range r.edges {
		for _, c := range children {
			indegree[c]++
		}
	}

	var queue []string
	for path, deg := range indegree {
		if deg == 0 {
			queue = append(queue, path)
		}
	}
	sort.Strings(queue)

	var order []string
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		order = append(order, cur)

		next := append([]string(nil), r.edges[cur]...)
		sort.Strings(next)
		for _, c := range next {
			indegree[c]--
			if indegree[c] == 0 {
				queue = append(queue, c)
				sort.Strings(queue)
			}
		}
	}

	if len(order) != len(r.modules) {
		panic("discover: dependency cycle in discovered modules (mod declarations form a tree and should never cycle)")
	}
	return order, nil
}

// DumpModules writes a human-readable listing of every discovered module
// and its definitions, for the CLI's --dump-modules flag and for test
// failure output (teacher: Loader.DumpModules).
func (r *Retriever) DumpModules() string {
	paths := make([]string, 0, len(r.modules))
	for p := range r.modules {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var b strings.Builder
	for _, p := range paths {
		mod := r.modules[p]
		fmt.Fprintf(&b, "module %s\n", p)
		for _, def := range mod.AllDefinitions() {
			fmt.Fprintf(&b, "  %s\n", def.String())
		}
	}
	return b.String()
}
