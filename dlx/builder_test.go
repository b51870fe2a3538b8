package dlx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// membership is one (row, column) cell of a built fabric.
type membership struct {
	row int
	col int
}

// reachable gathers every (row, column) pair found by walking the header
// circle east from the head and each column circle south from its header.
func reachable(f *fabric) []membership {
	var out []membership
	for h := range f.iterate(east, headNode) {
		for cell := range f.iterate(south, h) {
			out = append(out, membership{
				row: int(f.nodes[cell].row),
				col: int(h - 1),
			})
		}
	}

	return out
}

func TestNewFabric_RoundTrip(t *testing.T) {
	in, err := New(
		[]string{"a", "b", "c", "d"},
		[][]string{
			{"a", "c"},
			{"b", "c", "d"},
			{"d"},
		},
	)
	require.NoError(t, err)

	f := newFabric(in)

	want := []membership{
		{0, 0},         // a: row 0
		{1, 1},         // b: row 1
		{0, 2}, {1, 2}, // c: rows 0, 1
		{1, 3}, {2, 3}, // d: rows 1, 2
	}
	assert.ElementsMatch(t, want, reachable(f))
}

func TestNewFabric_HeaderCircleOrder(t *testing.T) {
	in, err := New([]string{"x", "y", "z"}, nil)
	require.NoError(t, err)

	f := newFabric(in)

	// head → x → y → z → head; headers occupy indices 1..3.
	assert.Equal(t, []int32{1, 2, 3}, collect(f, east, headNode))
	assert.Equal(t, []int32{3, 2, 1}, collect(f, west, headNode))
}

func TestNewFabric_LiveCounts(t *testing.T) {
	in, err := New(
		[]string{"a", "b"},
		[][]string{{"a"}, {"a", "b"}, {"a"}},
	)
	require.NoError(t, err)

	f := newFabric(in)

	assert.Equal(t, int32(3), f.nodes[1].count, "column a holds three cells")
	assert.Equal(t, int32(1), f.nodes[2].count, "column b holds one cell")
}

func TestNewFabric_RowCircleOrder(t *testing.T) {
	in, err := New(
		[]string{"a", "b", "c"},
		[][]string{{"a", "b", "c"}},
	)
	require.NoError(t, err)

	f := newFabric(in)

	// The row's first cell sits just south of header a (index 1); its
	// horizontal circle must visit the b and c cells in given order.
	first := f.nodes[1].south
	require.NotEqual(t, int32(1), first)

	var cols []int32
	for cell := range f.iterate(east, first) {
		cols = append(cols, f.nodes[cell].col)
	}
	assert.Equal(t, []int32{2, 3}, cols, "east walk visits columns b then c")
}

func TestNewFabric_ColumnOrderIsRowOrder(t *testing.T) {
	in, err := New(
		[]string{"a"},
		[][]string{{"a"}, {"a"}, {"a"}},
	)
	require.NoError(t, err)

	f := newFabric(in)

	var rows []int32
	for cell := range f.iterate(south, 1) {
		rows = append(rows, f.nodes[cell].row)
	}
	assert.Equal(t, []int32{0, 1, 2}, rows, "vertical circle keeps top-to-bottom row order")
}

func TestNewFabric_EmptyInstance(t *testing.T) {
	in, err := New(nil, nil)
	require.NoError(t, err)

	f := newFabric(in)

	require.Len(t, f.nodes, 1, "only the head is allocated")
	assert.Equal(t, headNode, f.nodes[headNode].east, "head alone signals the terminal state")
}
