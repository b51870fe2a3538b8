package dlx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect walks dir from start and returns the visited indices in order.
func collect(f *fabric, dir direction, start int32) []int32 {
	var out []int32
	for id := range f.iterate(dir, start) {
		out = append(out, id)
	}

	return out
}

func TestNewNode_IsSingletonCircle(t *testing.T) {
	f := &fabric{}
	id := f.newNode(none, none)

	n := f.nodes[id]
	assert.Equal(t, id, n.north)
	assert.Equal(t, id, n.east)
	assert.Equal(t, id, n.south)
	assert.Equal(t, id, n.west)
}

func TestInsertEast_SplicesAfterAnchor(t *testing.T) {
	f := &fabric{}
	a := f.newNode(none, none)
	b := f.newNode(none, none)
	c := f.newNode(none, none)

	// Splice b after a, then c after a: circle reads a → c → b → a.
	f.insertEast(a, b)
	f.insertEast(a, c)

	assert.Equal(t, []int32{c, b}, collect(f, east, a))
	assert.Equal(t, []int32{b, c}, collect(f, west, a), "west walk must mirror east walk")
	// Vertical axis untouched.
	assert.Equal(t, a, f.nodes[a].south)
}

func TestInsertSouth_SplicesAfterAnchor(t *testing.T) {
	f := &fabric{}
	a := f.newNode(none, none)
	b := f.newNode(none, none)
	c := f.newNode(none, none)

	f.insertSouth(a, b)
	f.insertSouth(b, c)

	assert.Equal(t, []int32{b, c}, collect(f, south, a))
	assert.Equal(t, []int32{c, b}, collect(f, north, a))
	// Horizontal axis untouched.
	assert.Equal(t, a, f.nodes[a].east)
}

func TestIterate_ExcludesStart(t *testing.T) {
	f := &fabric{}
	a := f.newNode(none, none)

	assert.Empty(t, collect(f, east, a), "singleton circle yields nothing")
	assert.Empty(t, collect(f, south, a))
}

func TestIterate_EarlyBreak(t *testing.T) {
	f := &fabric{}
	a := f.newNode(none, none)
	prev := a
	for i := 0; i < 5; i++ {
		id := f.newNode(none, none)
		f.insertEast(prev, id)
		prev = id
	}

	var seen int
	for range f.iterate(east, a) {
		seen++
		if seen == 2 {
			break
		}
	}
	assert.Equal(t, 2, seen)
}

func TestTailInsertion_PreservesOrder(t *testing.T) {
	// Tail insertion is what the builder relies on: repeatedly splicing
	// before the anchor (via its west/north neighbor) must append.
	f := &fabric{}
	head := f.newNode(none, none)
	var want []int32
	for i := 0; i < 4; i++ {
		id := f.newNode(none, none)
		f.insertEast(f.nodes[head].west, id)
		want = append(want, id)
	}

	require.Equal(t, want, collect(f, east, head))
}
