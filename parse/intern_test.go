package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterner(t *testing.T) {
	table := NewInterner("start", "end")
	assert.Equal(t, 2, table.Len())

	assert.Equal(t, 0, table.ID([]byte("start")))
	assert.Equal(t, 2, table.ID([]byte("A")))
	assert.Equal(t, 3, table.ID([]byte("b")))
	assert.Equal(t, 2, table.ID([]byte("A")))
	assert.Equal(t, 4, table.Len())

	id, found := table.Lookup("end")
	assert.True(t, found)
	assert.Equal(t, 1, id)
	_, found = table.Lookup("c")
	assert.False(t, found)
	assert.Equal(t, 4, table.Len())

	assert.Equal(t, "b", table.Name(3))
	assert.Equal(t, []string{"start", "end", "A", "b"}, table.Names())
}

func TestInterner_CopiesLabels(t *testing.T) {
	table := NewInterner()
	label := []byte("ab")
	table.ID(label)
	label[0] = 'x'

	assert.Equal(t, "ab", table.Name(0))
	_, found := table.Lookup("xb")
	assert.False(t, found)
}

func TestInterner_NamesIsACopy(t *testing.T) {
	table := NewInterner("start", "end")
	names := table.Names()
	names[0] = "changed"
	_ = append(names[:1], "appended")

	assert.Equal(t, "start", table.Name(0))
	assert.Equal(t, "end", table.Name(1))
	id, found := table.Lookup("start")
	assert.True(t, found)
	assert.Equal(t, 0, id)
}

func TestIntern(t *testing.T) {
	table := NewInterner("start", "end")
	cave := Intern(table, TakeWhile(IsAlpha))
	edge := And(cave, Then(Token('-'), cave))
	edges := SepBy(edge, Token('\n'), SliceOf[Pair[int, int]]())

	got, err := Run(edges, []byte("start-A\nA-b\nb-end\nstart-b\n"))
	require.NoError(t, err)
	assert.Equal(t, []Pair[int, int]{{0, 2}, {2, 3}, {3, 1}, {0, 3}}, got)
	assert.Equal(t, []string{"start", "end", "A", "b"}, table.Names())

	// failures don't allocate ids
	_, _, err = cave.Parse([]byte("-x"))
	assert.ErrorIs(t, err, ErrUnexpectedChar)
	assert.Equal(t, 4, table.Len())
}
