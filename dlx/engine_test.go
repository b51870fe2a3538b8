package dlx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildReference builds the 6×7 fabric used throughout Knuth's paper:
//
//	        c0 c1 c2 c3 c4 c5 c6
//	row 0    .  .  1  .  1  1  .
//	row 1    1  .  .  1  .  .  1
//	row 2    .  1  1  .  .  1  .
//	row 3    1  .  .  1  .  .  .
//	row 4    .  1  .  .  .  .  1
//	row 5    .  .  .  1  1  .  1
func buildReference(t *testing.T) *fabric {
	t.Helper()
	in, err := NewFromMatrix([][]int{
		{0, 0, 1, 0, 1, 1, 0},
		{1, 0, 0, 1, 0, 0, 1},
		{0, 1, 1, 0, 0, 1, 0},
		{1, 0, 0, 1, 0, 0, 0},
		{0, 1, 0, 0, 0, 0, 1},
		{0, 0, 0, 1, 1, 0, 1},
	})
	require.NoError(t, err)

	return newFabric(in)
}

// snapshot copies every node, links and counts included.
func snapshot(f *fabric) []node {
	return append([]node(nil), f.nodes...)
}

func TestCover_RemovesColumnAndIntersectingRows(t *testing.T) {
	f := buildReference(t)

	f.cover(1) // column c0

	// c0's header is bypassed in the header circle.
	assert.Equal(t, []int32{2, 3, 4, 5, 6, 7}, collect(f, east, headNode))

	// Rows 1 and 3 intersect c0; their cells vanish from the other
	// columns' vertical circles, shrinking the live-counts.
	assert.Equal(t, int32(1), f.nodes[4].count, "c3 loses rows 1 and 3")
	assert.Equal(t, int32(2), f.nodes[7].count, "c6 loses row 1")
	assert.Equal(t, int32(2), f.nodes[3].count, "c2 untouched")
}

func TestCoverUncover_RestoresExactState(t *testing.T) {
	f := buildReference(t)
	before := snapshot(f)

	f.cover(1)
	f.uncover(1)

	assert.Equal(t, before, snapshot(f), "single cover/uncover must restore links and counts field-for-field")
}

func TestCoverUncover_NestedReverseOrder(t *testing.T) {
	f := buildReference(t)
	before := snapshot(f)

	// A nested cover sequence mirrored in exact reverse order, the way
	// the search driver always pairs them.
	seq := []int32{1, 4, 7, 2}
	for _, h := range seq {
		f.cover(h)
	}
	for i := len(seq) - 1; i >= 0; i-- {
		f.uncover(seq[i])
	}

	assert.Equal(t, before, snapshot(f))
}

func TestCover_EmptyColumn(t *testing.T) {
	in, err := New([]string{"a", "b"}, [][]string{{"a"}})
	require.NoError(t, err)
	f := newFabric(in)
	before := snapshot(f)

	// Column b has no cells: cover just bypasses the header.
	f.cover(2)
	assert.Equal(t, []int32{1}, collect(f, east, headNode))

	f.uncover(2)
	assert.Equal(t, before, snapshot(f))
}
