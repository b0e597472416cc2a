package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ing-lang/ingc/internal/discover"
	ingerrors "github.com/ing-lang/ingc/internal/errors"
	"github.com/ing-lang/ingc/internal/front"
	"github.com/ing-lang/ingc/internal/manifest"
	"github.com/ing-lang/ingc/internal/vfs"
)

// runBuild implements `ingc build`, returning a process exit code so main
// stays a thin dispatcher (the recover below turns an internal panic into
// exit code 2 instead of a bare stack trace, per spec.md §7).
func runBuild(args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "%s: internal error: %v\n", red("Error"), r)
			code = exitInternal
		}
	}()

	fs := newFlagSet("build")
	hmasm := fs.Bool("hmasm", false, "emit HMASM assembly instead of packed binary (accepted; only prints a note, not acted on by the front-end)")
	jsonOut := fs.Bool("json", false, "print diagnostics as JSON")
	dumpModules := fs.Bool("dump-modules", false, "print every discovered module and its definitions before checking")
	dumpDefs := fs.Bool("dump-defs", false, "print the merged definition table after a successful build")
	_ = fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: ingc build [--hmasm] [--json] [--dump-modules] [--dump-defs] <pkgdir>")
		return exitUser
	}
	pkgDir := fs.Arg(0)

	mf, err := manifest.Load(pkgDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: reading manifest: %v\n", red("Error"), err)
		return exitUser
	}

	entryFile := mf.Entry + ".ing"

	if *dumpModules {
		r := discover.New(vfs.OS{Root: pkgDir})
		if _, derr := r.Discover("/", entryFile); derr != nil {
			printBuildError(derr, *jsonOut)
			return exitUser
		}
		fmt.Print(r.DumpModules())
	}

	result, err := front.Run(front.Config{PackageName: mf.Name, EntryFile: entryFile}, front.Source{FS: vfs.OS{Root: pkgDir}, Root: "/"})
	if err != nil {
		printBuildError(err, *jsonOut)
		return exitUser
	}

	if *dumpDefs {
		fmt.Print(result.Program.Package.DumpDefinitions())
	}

	if *hmasm {
		fmt.Printf("%s --hmasm accepted; HMASM emission is a downstream code generator concern, out of scope here\n", yellow("Note"))
	}

	fmt.Printf("%s build succeeded (%s)\n", green("✓"), result.String())
	return exitSuccess
}

func printBuildError(err error, asJSON bool) {
	rep, ok := ingerrors.AsReport(err)
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		return
	}
	if asJSON {
		out, jerr := rep.ToJSON(false)
		if jerr != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), jerr)
			return
		}
		fmt.Println(out)
		return
	}
	fmt.Fprintf(os.Stderr, "%s [%s/%s] %s\n", red("Error"), rep.Phase, rep.Code, rep.Message)
	if rep.Path != "" {
		fmt.Fprintf(os.Stderr, "  in %s\n", rep.Path)
	}
	if rep.Fix != nil && len(rep.Fix.Suggestions) > 0 {
		fmt.Fprintf(os.Stderr, "  did you mean: %v?\n", rep.Fix.Suggestions)
	}
	if len(rep.Data) > 0 {
		data, _ := json.Marshal(rep.Data)
		fmt.Fprintf(os.Stderr, "  data: %s\n", data)
	}
}
