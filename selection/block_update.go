// SPDX-License-Identifier: MIT

package selection

// UpdateRows renumbers b after |delta| rows were inserted (delta > 0) or
// deleted (delta < 0) starting at row atRow.
//
//   - b entirely above atRow is untouched.
//   - b entirely below the edit shifts by delta.
//   - b straddling an insertion point grows by delta.
//   - b overlapping a deleted range shrinks by the overlap, its top pulled up
//     to atRow if it was deleted; a block losing all rows becomes EmptyBlock.
//
// Returns false when nothing changed (delta == 0, b empty or above atRow).
func (b *Block) UpdateRows(atRow, delta int) bool {
	if b.IsEmpty() {
		return false
	}
	start, size, ok := updateSpan(b.Row, b.Height, atRow, delta)
	if !ok {
		return false
	}
	if size <= 0 {
		*b = EmptyBlock
		return true
	}
	b.Row, b.Height = start, size
	return true
}

// UpdateCols is UpdateRows for columns.
func (b *Block) UpdateCols(atCol, delta int) bool {
	if b.IsEmpty() {
		return false
	}
	start, size, ok := updateSpan(b.Col, b.Width, atCol, delta)
	if !ok {
		return false
	}
	if size <= 0 {
		*b = EmptyBlock
		return true
	}
	b.Col, b.Width = start, size
	return true
}

// updateSpan applies an insert/delete of |delta| lines at index at to the
// 1-D span [start, start+size).
func updateSpan(start, size, at, delta int) (int, int, bool) {
	end := start + size - 1
	if delta == 0 || end < at {
		return start, size, false
	}

	if delta > 0 {
		if start >= at {
			return start + delta, size, true
		}
		return start, size + delta, true
	}

	delEnd := at - delta - 1 // last deleted index
	if start > delEnd {
		return start + delta, size, true
	}
	removed := min(end, delEnd) - max(start, at) + 1
	return min(start, at), size - removed, true
}
