package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterh/liner"

	"github.com/ing-lang/ingc/internal/ast"
	"github.com/ing-lang/ingc/internal/front"
	"github.com/ing-lang/ingc/internal/manifest"
	"github.com/ing-lang/ingc/internal/merge"
	"github.com/ing-lang/ingc/internal/vfs"
)

// runExplore implements `ingc explore <pkgdir>`: build the package, then
// let the user browse its merged definitions interactively. Grounded on
// the teacher's internal/repl/repl.go liner wiring (history file in
// os.TempDir(), `:`-prefixed commands; multi-line mode is turned off
// here), repurposed from
// "evaluate an expression" to "look up a resolved definition"
// (SPEC_FULL.md §2).
func runExplore(args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "%s: internal error: %v\n", red("Error"), r)
			code = exitInternal
		}
	}()

	fs := newFlagSet("explore")
	_ = fs.Parse(args)
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: ingc explore <pkgdir>")
		return exitUser
	}
	pkgDir := fs.Arg(0)

	mf, err := manifest.Load(pkgDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: reading manifest: %v\n", red("Error"), err)
		return exitUser
	}

	result, err := front.Run(front.Config{PackageName: mf.Name, EntryFile: mf.Entry + ".ing"}, front.Source{FS: vfs.OS{Root: pkgDir}, Root: "/"})
	if err != nil {
		printBuildError(err, false)
		return exitUser
	}

	newExplorer(result.Program.Package).run(os.Stdout)
	return exitSuccess
}

type explorer struct {
	pkg *merge.MergedPackage
}

func newExplorer(pkg *merge.MergedPackage) *explorer {
	return &explorer{pkg: pkg}
}

func (e *explorer) run(out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(false)

	historyFile := filepath.Join(os.TempDir(), ".ingc_explore_history")
	if f, ferr := os.Open(historyFile); ferr == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	line.SetCompleter(func(prefix string) (c []string) {
		for _, cmd := range []string{":list fn", ":list struct", ":list var", ":help", ":quit"} {
			if strings.HasPrefix(cmd, prefix) {
				c = append(c, cmd)
			}
		}
		return
	})

	fmt.Fprintln(out, bold("ingc explore"))
	fmt.Fprintln(out, "Type a global name (module::name) to inspect it, :list fn|struct|var to browse, :help, :quit.")

	for {
		input, perr := line.Prompt("ingc> ")
		if perr == io.EOF {
			fmt.Fprintln(out, green("\nGoodbye!"))
			break
		}
		if perr != nil {
			fmt.Fprintf(out, "%s: %v\n", red("Error"), perr)
			continue
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if strings.HasPrefix(input, ":") {
			if input == ":quit" || input == ":q" {
				fmt.Fprintln(out, green("Goodbye!"))
				break
			}
			e.handleCommand(input, out)
			continue
		}
		e.lookup(input, out)
	}

	if f, ferr := os.Create(historyFile); ferr == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

func (e *explorer) handleCommand(cmd string, out io.Writer) {
	switch cmd {
	case ":help":
		fmt.Fprintln(out, "Commands:")
		fmt.Fprintln(out, "  :list fn|struct|var    list every definition of that kind")
		fmt.Fprintln(out, "  <module>::<name>       print one definition")
		fmt.Fprintln(out, "  :quit                  exit")
	case ":list fn":
		e.listKind(out, func(t *pkgTables) []string { return t.fn })
	case ":list struct":
		e.listKind(out, func(t *pkgTables) []string { return t.st })
	case ":list var":
		e.listKind(out, func(t *pkgTables) []string { return t.vr })
	default:
		fmt.Fprintf(out, "unknown command %q, try :help\n", cmd)
	}
}

// pkgTables is a one-shot flattening of the merged table's names by kind,
// used only to keep handleCommand's three :list branches uniform.
type pkgTables struct {
	fn, st, vr []string
}

func (e *explorer) names() *pkgTables {
	t := &pkgTables{}
	for _, part := range []bool{true, false} {
		table := e.pkg.Private
		if part {
			table = e.pkg.Public
		}
		for _, k := range table.Functions.Keys() {
			t.fn = append(t.fn, k.String())
		}
		for _, k := range table.Structs.Keys() {
			t.st = append(t.st, k.String())
		}
		for _, k := range table.GlobalVars.Keys() {
			t.vr = append(t.vr, k.String())
		}
	}
	sort.Strings(t.fn)
	sort.Strings(t.st)
	sort.Strings(t.vr)
	return t
}

func (e *explorer) listKind(out io.Writer, pick func(*pkgTables) []string) {
	for _, n := range pick(e.names()) {
		fmt.Fprintf(out, "  %s\n", n)
	}
}

// lookup parses "module::name" and prints the matching definition from
// either partition.
func (e *explorer) lookup(raw string, out io.Writer) {
	idx := strings.LastIndex(raw, "::")
	if idx < 0 {
		fmt.Fprintf(out, "%s: expected module::name\n", red("Error"))
		return
	}
	g := ast.GlobalName{Module: raw[:idx], Name: raw[idx+2:]}

	if fn, ok := e.pkg.Public.Functions.Get(g); ok {
		fmt.Fprintf(out, "pub %s\n", fn.String())
		return
	}
	if fn, ok := e.pkg.Private.Functions.Get(g); ok {
		fmt.Fprintf(out, "%s\n", fn.String())
		return
	}
	if sd, ok := e.pkg.Public.Structs.Get(g); ok {
		fmt.Fprintf(out, "pub %s\n", sd.String())
		return
	}
	if sd, ok := e.pkg.Private.Structs.Get(g); ok {
		fmt.Fprintf(out, "%s\n", sd.String())
		return
	}
	if vd, ok := e.pkg.Public.GlobalVars.Get(g); ok {
		fmt.Fprintf(out, "pub %s\n", vd.String())
		return
	}
	if vd, ok := e.pkg.Private.GlobalVars.Get(g); ok {
		fmt.Fprintf(out, "%s\n", vd.String())
		return
	}
	fmt.Fprintf(out, "%s: no definition named %q\n", red("Error"), raw)
}
