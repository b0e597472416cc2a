package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	dir := t.TempDir()
	m, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(dir), m.Name)
	assert.Equal(t, "main", m.Entry)
}

func TestLoadParsesYAML(t *testing.T) {
	dir := t.TempDir()
	content := "name: example\nentry: app\nsearch_paths:\n  - /opt/ing/libs\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ing.yaml"), []byte(content), 0o644))

	m, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "example", m.Name)
	assert.Equal(t, "app", m.Entry)
	assert.Equal(t, []string{"/opt/ing/libs"}, m.SearchPaths)
}
