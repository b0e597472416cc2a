package deftable

import (
	"testing"

	"github.com/ing-lang/ingc/internal/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableInsertGetKeys(t *testing.T) {
	tbl := New[string, int]()
	tbl.Insert("0_a", 1)
	tbl.Insert("0_b", 2)

	v, ok := tbl.Get("0_a")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = tbl.Get("missing")
	assert.False(t, ok)

	assert.ElementsMatch(t, []string{"0_a", "0_b"}, tbl.Keys())
	assert.Equal(t, 2, tbl.Len())
}

func TestTableDuplicateInsertPanics(t *testing.T) {
	tbl := New[string, int]()
	tbl.Insert("k", 1)
	assert.Panics(t, func() { tbl.Insert("k", 2) })
}

func TestDefinitionTablePartitions(t *testing.T) {
	dt := NewDefinitionTable[ast.GlobalName]()
	key := ast.GlobalName{Module: "/root", Name: "0_main"}
	dt.Functions.Insert(key, &ast.FnDef{Name: &ast.Reference{Raw: "main"}})

	fn, ok := dt.Functions.Get(key)
	require.True(t, ok)
	assert.Equal(t, "main", fn.Name.Raw)

	_, ok = dt.Structs.Get(key)
	assert.False(t, ok)
}
