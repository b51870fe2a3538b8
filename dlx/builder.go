package dlx

// newFabric converts an Instance into the linked fabric: one header per
// declared column linked into the horizontal header circle behind the
// sentinel head, then one cell per (row, column) membership, spliced to
// the tail of its column's vertical circle and the tail of its row's
// horizontal circle. Tail insertion keeps columns in top-to-bottom row
// order and rows in given column order, which fixes the search's
// deterministic tie-breaking.
//
// Complexity: O(C + cells) time and space. Never fails: the Instance was
// validated at construction.
func newFabric(in *Instance) *fabric {
	f := &fabric{nodes: make([]node, 0, 1+len(in.columns)+in.cells)}

	// 1. Sentinel head at index 0.
	f.newNode(none, none)

	// 2. One header per column, appended east of the previous so the
	//    circle reads head → col0 → col1 → … → head.
	prev := headNode
	for range in.columns {
		h := f.newNode(none, none)
		f.insertEast(prev, h)
		prev = h
	}

	// 3. Cells, in row order. header(ci) == ci+1 by construction.
	var first, cell int32
	for ri, row := range in.rows {
		first = none
		for _, ci := range row {
			h := ci + 1
			cell = f.newNode(h, int32(ri))

			// Splice into the column tail (just north of the header).
			f.insertSouth(f.nodes[h].north, cell)
			f.nodes[h].count++

			// Splice into the row tail (just west of the first cell).
			if first == none {
				first = cell
			} else {
				f.insertEast(f.nodes[first].west, cell)
			}
		}
	}

	return f
}
