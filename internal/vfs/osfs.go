package vfs

import (
	"os"
	"path/filepath"
)

// OS adapts the real filesystem to FileSystem, rooted at Root. This is the
// concrete collaborator the CLI driver hands to the file retriever; the
// front-end's own components never import "os" directly (spec.md 4.A asks
// for discovery to go through the abstract capability).
type OS struct {
	Root string
}

func (o OS) native(p string) string {
	return filepath.Join(o.Root, filepath.FromSlash(p))
}

func (o OS) ReadFile(p string) ([]byte, error) {
	data, err := os.ReadFile(o.native(p))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (o OS) ListDir(p string) ([]string, error) {
	entries, err := os.ReadDir(o.native(p))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}

func (o OS) IsDir(p string) bool {
	info, err := os.Stat(o.native(p))
	return err == nil && info.IsDir()
}
