// Package manifest parses the optional ing.yaml package manifest
// (SPEC_FULL.md 1.3), grounded on the teacher's yaml-tagged-struct
// convention (internal/eval_harness/spec.go) and its project-root marker
// search (internal/module/resolver.go findProjectRoot).
package manifest

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Manifest describes a package root.
type Manifest struct {
	// Name is the owning package name, used to resolve `use <name>::...`
	// and `use root::...` identically (spec.md 4.D).
	Name string `yaml:"name"`

	// Entry is the root file's module-relative name, default "main".
	Entry string `yaml:"entry"`

	// SearchPaths lists extra package roots (mirrors the teacher's
	// AILANG_PATH search-path handling). It is parsed but not read by any
	// component: a foreign `use` is linked without loading the package.
	SearchPaths []string `yaml:"search_paths"`
}

const fileName = "ing.yaml"

// Load reads ing.yaml from dir. If the file is absent, a default
// Manifest is returned (package name derived from dir's base name, entry
// "main"), matching the teacher's "default module when no declaration"
// fallback — absence of a manifest is never an error.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, fileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(dir), nil
		}
		return nil, err
	}

	m := Default(dir)
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, err
	}
	if m.Entry == "" {
		m.Entry = "main"
	}
	return m, nil
}

// Default builds the fallback manifest for a directory with no ing.yaml.
func Default(dir string) *Manifest {
	return &Manifest{
		Name:  filepath.Base(filepath.Clean(dir)),
		Entry: "main",
	}
}
