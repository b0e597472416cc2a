// Command ingc is the front-end driver: `ingc build` runs discovery
// through type resolution over a package directory and reports the
// result; `ingc explore` opens a liner-backed browser over a
// successfully built package's merged definitions. Grounded on the
// teacher's cmd/ailang/main.go flag/color/subcommand-switch style.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	red    = color.New(color.FgRed).SprintFunc()
	green  = color.New(color.FgGreen).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

// Exit codes (spec.md §6): 0 success, 1 user error (diagnostics printed),
// 2 internal error (a panic recovered at this boundary).
const (
	exitSuccess  = 0
	exitUser     = 1
	exitInternal = 2
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(exitUser)
	}

	switch os.Args[1] {
	case "build":
		os.Exit(runBuild(os.Args[2:]))
	case "explore":
		os.Exit(runExplore(os.Args[2:]))
	case "-h", "--help", "help":
		printHelp()
		os.Exit(exitSuccess)
	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", red("Error"), os.Args[1])
		printHelp()
		os.Exit(exitUser)
	}
}

func printHelp() {
	fmt.Println(bold("ingc - front-end driver for the .ing compiler"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cyan("ingc build [--hmasm] [--json] [--dump-modules] [--dump-defs] <pkgdir>"))
	fmt.Printf("  %s\n", cyan("ingc explore <pkgdir>"))
	fmt.Println()
	fmt.Println("Exit codes: 0 success, 1 user error, 2 internal error.")
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	return fs
}
