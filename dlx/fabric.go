package dlx

import "iter"

// direction names one of the four link axes of a node.
type direction int

const (
	north direction = iota
	east
	south
	west
)

// none marks the absent column/row identity on the head and on headers.
const none int32 = -1

// headNode is the arena index of the sentinel head. It anchors the
// horizontal header circle and is associated with no column; when it is
// its own east neighbor, every column is covered.
const headNode int32 = 0

// node is the atomic structural unit of the fabric: a member of two
// independent circular doubly-linked lists, one horizontal (west↔east)
// and one vertical (north↔south). Links are arena indices, never
// pointers, so relinking during cover/uncover is plain index assignment
// and the whole fabric is released as one unit.
//
// A freshly allocated node is a singleton circle on both axes,
// referencing itself in all four directions.
type node struct {
	north, east, south, west int32

	// col is the arena index of the owning column header; none for the
	// head and for headers themselves.
	col int32

	// row is the original row index this cell came from; none for the
	// head and for headers.
	row int32

	// count, on headers only, is the number of cells currently linked
	// into the header's vertical circle (the column's live-count).
	count int32
}

// fabric is the arena of nodes for one built instance. Index 0 is the
// head, indices 1..C are the column headers in declaration order, and
// cell nodes follow in build order. The fabric is mutated only by
// cover/uncover during one search; no node is ever created or destroyed
// after building, which is what makes reversal exact and cheap.
type fabric struct {
	nodes []node
}

// newNode appends a singleton node to the arena and returns its index.
func (f *fabric) newNode(col, row int32) int32 {
	id := int32(len(f.nodes))
	f.nodes = append(f.nodes, node{
		north: id, east: id, south: id, west: id,
		col: col, row: row,
	})

	return id
}

// insertEast splices b into a's horizontal circle immediately east of a.
// O(1); mutates exactly four link fields; never fails.
func (f *fabric) insertEast(a, b int32) {
	n := f.nodes
	n[b].west = a
	n[b].east = n[a].east
	n[n[a].east].west = b
	n[a].east = b
}

// insertSouth splices b into a's vertical circle immediately south of a.
// O(1); mutates exactly four link fields; never fails.
func (f *fabric) insertSouth(a, b int32) {
	n := f.nodes
	n[b].north = a
	n[b].south = n[a].south
	n[n[a].south].north = b
	n[a].south = b
}

// step returns the neighbor of id in dir.
func (f *fabric) step(dir direction, id int32) int32 {
	switch dir {
	case north:
		return f.nodes[id].north
	case east:
		return f.nodes[id].east
	case south:
		return f.nodes[id].south
	default:
		return f.nodes[id].west
	}
}

// iterate yields the nodes strictly following start in dir, stopping when
// start is revisited (start itself is never yielded). The sequence is
// finite whenever the circle is finite. Mutating the circle being walked
// while ranging is not supported; cover/uncover get away with mutation
// during traversal only because each level walks a different axis than
// the one it unlinks from.
func (f *fabric) iterate(dir direction, start int32) iter.Seq[int32] {
	return func(yield func(int32) bool) {
		for cur := f.step(dir, start); cur != start; cur = f.step(dir, cur) {
			if !yield(cur) {
				return
			}
		}
	}
}
