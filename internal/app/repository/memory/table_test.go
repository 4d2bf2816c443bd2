package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	id   string
	name string
}

func TestTable_RemoveKeepsIndexConsistent(t *testing.T) {
	tbl := newTable(func(r row) string { return r.id })
	for _, id := range []string{"a", "b", "c", "d"} {
		tbl.insert(row{id: id, name: "row " + id})
	}

	removed, ok := tbl.remove("b")
	require.True(t, ok)
	assert.Equal(t, "row b", removed.name)
	assert.False(t, tbl.has("b"))

	for _, id := range []string{"a", "c", "d"} {
		r, ok := tbl.get(id)
		require.True(t, ok, id)
		assert.Equal(t, id, r.id)
	}

	gone := tbl.removeWhere(func(r row) bool { return r.id == "a" || r.id == "d" })
	assert.Len(t, gone, 2)
	assert.Equal(t, 1, tbl.len())

	r, ok := tbl.get("c")
	require.True(t, ok)
	assert.Equal(t, "row c", r.name)

	_, ok = tbl.remove("zz")
	assert.False(t, ok)
}

func TestTable_GetReturnsLiveRow(t *testing.T) {
	tbl := newTable(func(r row) string { return r.id })
	tbl.insert(row{id: "a", name: "before"})

	r, _ := tbl.get("a")
	r.name = "after"

	assert.Equal(t, "after", tbl.rows[0].name)
}
