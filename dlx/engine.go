package dlx

// cover tentatively removes column header h and every row intersecting it
// from future consideration. It unlinks h from the horizontal header
// circle, then, for each cell in h's vertical circle top-to-bottom and
// for each other cell in that cell's row left-to-right, unlinks that cell
// from its own column's vertical circle and decrements the column's
// live-count.
//
// Removed cells keep their own link fields untouched; only their
// neighbors are rewired to bypass them. That is the whole trick: the
// removed cell still remembers exactly where it was, so uncover can put
// it back with two assignments.
//
// O(k) in cells touched; never fails.
func (f *fabric) cover(h int32) {
	n := f.nodes

	// Bypass h in the header circle.
	n[n[h].east].west = n[h].west
	n[n[h].west].east = n[h].east

	for i := n[h].south; i != h; i = n[i].south {
		for j := n[i].east; j != i; j = n[j].east {
			n[n[j].south].north = n[j].north
			n[n[j].north].south = n[j].south
			n[n[j].col].count--
		}
	}
}

// uncover is the exact inverse of cover(h). It must mirror cover in
// reverse at every level: rows bottom-to-top (north instead of south),
// cells right-to-left (west instead of east), relinking each cell into
// its column and restoring the live-count, and only then re-splicing h
// into the header circle. Any deviation from this ordering corrupts the
// circular invariants.
//
// O(k) in cells touched; never fails.
func (f *fabric) uncover(h int32) {
	n := f.nodes

	for i := n[h].north; i != h; i = n[i].north {
		for j := n[i].west; j != i; j = n[j].west {
			n[n[j].col].count++
			n[n[j].south].north = j
			n[n[j].north].south = j
		}
	}

	// Re-link h into the header circle.
	n[n[h].east].west = h
	n[n[h].west].east = h
}
