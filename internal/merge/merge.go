// Package merge implements the module merger (component D): it combines
// every per-module AST (each already module-resolved by component C) into
// one package-wide pair of definition tables — public and private — keyed
// by GlobalName, and links every remaining unresolved reference, including
// `use` imports and cross-package references. Grounded on the teacher's
// internal/iface/builder.go (export-identity stamping, the shape Hoist
// takes here) and internal/link/module_linker.go BuildGlobalEnv (the
// per-import resolution loop Link takes here).
package merge

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ing-lang/ingc/internal/ast"
	"github.com/ing-lang/ingc/internal/deftable"
	ingerrors "github.com/ing-lang/ingc/internal/errors"
)

// MergedPackage is component D's output: two definition tables — one
// partitioned view per spec.md 4.D invariant 3 ("a definition is listed in
// exactly one of public_definitions or private_definitions").
type MergedPackage struct {
	Public  *deftable.DefinitionTable[ast.GlobalName]
	Private *deftable.DefinitionTable[ast.GlobalName]
}

// rawIndex is a single module's public definitions, indexed by raw (not
// module-resolved) name, for `use` lookups. A `use` element names a
// definition by its raw identifier; kind is not disambiguated at the
// syntax level, so functions are checked first, then structs, then
// globals — the same best-effort order the teacher's suggestModules /
// suggestExports helpers imply for their own unqualified lookups.
type rawIndex struct {
	fn map[string]ast.GlobalName
	st map[string]ast.GlobalName
	vr map[string]ast.GlobalName
}

func newRawIndex() *rawIndex {
	return &rawIndex{fn: map[string]ast.GlobalName{}, st: map[string]ast.GlobalName{}, vr: map[string]ast.GlobalName{}}
}

func (idx *rawIndex) lookup(raw string) (ast.GlobalName, bool) {
	if g, ok := idx.fn[raw]; ok {
		return g, true
	}
	if g, ok := idx.st[raw]; ok {
		return g, true
	}
	if g, ok := idx.vr[raw]; ok {
		return g, true
	}
	return ast.GlobalName{}, false
}

func (idx *rawIndex) names() []string {
	names := make([]string, 0, len(idx.fn)+len(idx.st)+len(idx.vr))
	for n := range idx.fn {
		names = append(names, n)
	}
	for n := range idx.st {
		names = append(names, n)
	}
	for n := range idx.vr {
		names = append(names, n)
	}
	return names
}

// Merger merges one package's worth of already-resolved modules.
type Merger struct {
	packageName string
	modules     map[string]*ast.Module

	merged *MergedPackage

	// publicByModule indexes each module's public definitions by raw name,
	// built during Hoist and consumed during Link.
	publicByModule map[string]*rawIndex
}

// New creates a Merger for packageName over the already module-resolved
// modules (keyed by module path, as produced by internal/discover plus
// internal/resolve).
func New(packageName string, modules map[string]*ast.Module) *Merger {
	return &Merger{
		packageName:    packageName,
		modules:        modules,
		merged:         &MergedPackage{Public: deftable.NewDefinitionTable[ast.GlobalName](), Private: deftable.NewDefinitionTable[ast.GlobalName]()},
		publicByModule: map[string]*rawIndex{},
	}
}

// Merge runs Hoist then Link and returns the resulting MergedPackage.
func (mg *Merger) Merge() (*MergedPackage, error) {
	for _, path := range mg.sortedModulePaths() {
		mg.hoistModule(path, mg.modules[path])
	}
	for _, path := range mg.sortedModulePaths() {
		if err := mg.linkModule(path, mg.modules[path]); err != nil {
			return nil, err
		}
	}
	return mg.merged, nil
}

func (mg *Merger) sortedModulePaths() []string {
	paths := make([]string, 0, len(mg.modules))
	for p := range mg.modules {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// hoistModule installs every definition of mod into the correct partition
// and kind map, stamping GlobalResolved on each definition's own name
// (spec.md 4.D phase 1).
func (mg *Merger) hoistModule(path string, mod *ast.Module) {
	mg.publicByModule[path] = newRawIndex()

	for _, def := range mod.PublicDefinitions {
		mg.install(path, def, true)
	}
	for _, def := range mod.Block.Definitions {
		mg.install(path, def, false)
	}
}

func (mg *Merger) install(path string, def ast.Definition, public bool) {
	name := def.DefName()
	global := ast.GlobalName{Module: path, Name: name.ModuleResolved}
	name.GlobalResolved = &global

	table := mg.merged.Private
	if public {
		table = mg.merged.Public
	}

	switch d := def.(type) {
	case *ast.FnDef:
		// Table.Insert panics on a duplicate key: module-resolved names are
		// already unique per module (component C), so a collision here can
		// only be a bug in the front-end itself (spec.md's
		// InternalMergeConflict, never triggered by valid or invalid user
		// input).
		table.Functions.Insert(global, d)
		if public {
			mg.publicByModule[path].fn[name.Raw] = global
		}
	case *ast.StructDef:
		table.Structs.Insert(global, d)
		if public {
			mg.publicByModule[path].st[name.Raw] = global
		}
	case *ast.VarDecl:
		table.GlobalVars.Insert(global, d)
		if public {
			mg.publicByModule[path].vr[name.Raw] = global
		}
	default:
		panic(fmt.Sprintf("merge: unknown definition kind %T", def))
	}
}

// linkModule fills GlobalResolved on every reference inside mod's bodies
// that C left unresolved (use-imported names) or that C resolved only to a
// local ModuleResolved name (spec.md 4.D phase 2).
func (mg *Merger) linkModule(path string, mod *ast.Module) error {
	importedByRaw := map[string]ast.GlobalName{}
	for _, use := range mod.Uses {
		target, foreign := mg.resolveUsePath(use.Path)
		for i := range use.Elements {
			elem := &use.Elements[i]
			global, err := mg.resolveUseElement(path, use, target, foreign, elem.OriginName)
			if err != nil {
				return err
			}
			elem.ImportedName.GlobalResolved = &global
			importedByRaw[elem.OriginName] = global
		}
	}

	l := &linker{path: path, imported: importedByRaw}
	for _, def := range mod.AllDefinitions() {
		if err := l.linkDefinition(def); err != nil {
			return err
		}
	}
	return nil
}

// DumpDefinitions writes a human-readable listing of every merged
// definition, partitioned public/private, sorted by global name (teacher:
// Loader.DumpModules, generalized here to the merged table rather than
// per-module ASTs — used by SPEC_FULL.md's --dump-defs flag).
func (mp *MergedPackage) DumpDefinitions() string {
	var b strings.Builder
	dumpTable := func(label string, t *deftable.DefinitionTable[ast.GlobalName]) {
		fmt.Fprintf(&b, "%s:\n", label)
		names := make([]string, 0, t.Functions.Len()+t.Structs.Len()+t.GlobalVars.Len())
		byName := map[string]string{}
		for _, k := range t.Functions.Keys() {
			fn, _ := t.Functions.Get(k)
			byName[k.String()] = fn.String()
			names = append(names, k.String())
		}
		for _, k := range t.Structs.Keys() {
			sd, _ := t.Structs.Get(k)
			byName[k.String()] = sd.String()
			names = append(names, k.String())
		}
		for _, k := range t.GlobalVars.Keys() {
			vd, _ := t.GlobalVars.Get(k)
			byName[k.String()] = vd.String()
			names = append(names, k.String())
		}
		sort.Strings(names)
		for _, n := range names {
			fmt.Fprintf(&b, "  %s -> %s\n", n, byName[n])
		}
	}
	dumpTable("public", mp.Public)
	dumpTable("private", mp.Private)
	return b.String()
}

// resolveUsePath applies the own-package-prefix rewriting rule: `use
// <own_pkg>::...` and `use root::...` both mean the local package, and a
// foreign path[0] is kept verbatim as a foreign module prefix (spec.md
// 4.D). It returns the resolved module path and whether it is foreign.
func (mg *Merger) resolveUsePath(path []string) (string, bool) {
	if len(path) == 0 {
		return "", false
	}
	if path[0] == mg.packageName || path[0] == "root" {
		return "/root/" + strings.Join(path[1:], "/"), false
	}
	return strings.Join(path, "/"), true
}

// resolveUseElement resolves one imported name to a GlobalName. Foreign
// package references are never required to exist locally — the merger
// just records the name, synthesizing shadow index 0 (the only index it
// can ever observe without the foreign package's own resolution pass,
// which is out of scope here; spec.md 4.D: "the merger does NOT require
// the target module to be available").
func (mg *Merger) resolveUseElement(fromModule string, use *ast.Use, target string, foreign bool, raw string) (ast.GlobalName, error) {
	if foreign {
		return ast.GlobalName{Module: target, Name: "0_" + raw}, nil
	}

	idx, ok := mg.publicByModule[target]
	if !ok {
		rep := ingerrors.New(ingerrors.RES003, ingerrors.PhaseMerge,
			fmt.Sprintf("module %q has no member %q", target, raw)).
			WithPath(fromModule).
			WithData("target_module", target).
			WithData("name", raw)
		return ast.GlobalName{}, ingerrors.WrapReport(rep)
	}
	global, ok := idx.lookup(raw)
	if !ok {
		rep := ingerrors.New(ingerrors.RES003, ingerrors.PhaseMerge,
			fmt.Sprintf("module %q has no public member %q", target, raw)).
			WithPath(fromModule).
			WithData("target_module", target).
			WithData("name", raw).
			WithSuggestions(suggest(raw, idx.names())...)
		return ast.GlobalName{}, ingerrors.WrapReport(rep)
	}
	return global, nil
}
