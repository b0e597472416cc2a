package vfs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockReadWrite(t *testing.T) {
	m := NewMock().WriteFile("/main.ing", []byte("fn main() {}"))

	data, err := m.ReadFile("/main.ing")
	require.NoError(t, err)
	assert.Equal(t, "fn main() {}", string(data))

	_, err = m.ReadFile("/missing.ing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMockListDir(t *testing.T) {
	m := NewMock().
		WriteFile("/main.ing", []byte("")).
		WriteFile("/test.ing", []byte("")).
		WriteFile("/test/example.ing", []byte(""))

	names, err := m.ListDir("/")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"main.ing", "test.ing", "test"}, names)

	names, err = m.ListDir("/test")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"example.ing"}, names)
}

func TestMockIsDir(t *testing.T) {
	m := NewMock().WriteFile("/test/example.ing", []byte(""))
	assert.True(t, m.IsDir("/test"))
	assert.False(t, m.IsDir("/test/example.ing"))
	assert.False(t, m.IsDir("/nope"))
}
