// SPDX-License-Identifier: MIT

package selection

import "slices"

// UpdateRows renumbers every stored block after |delta| rows were inserted
// (delta > 0) or deleted (delta < 0) at atRow. Blocks whose rows were all
// deleted are dropped and the bounding block is recomputed.
// Returns whether any block changed.
func (s *Selection) UpdateRows(atRow, delta int) bool {
	return s.update(func(b *Block) bool { return b.UpdateRows(atRow, delta) })
}

// UpdateCols is UpdateRows for columns.
func (s *Selection) UpdateCols(atCol, delta int) bool {
	return s.update(func(b *Block) bool { return b.UpdateCols(atCol, delta) })
}

func (s *Selection) update(apply func(*Block) bool) bool {
	changed := false
	for i := range s.blocks {
		if apply(&s.blocks[i]) {
			changed = true
		}
	}
	if !changed {
		return false
	}

	s.blocks = slices.DeleteFunc(s.blocks, Block.IsEmpty)
	slices.SortFunc(s.blocks, Block.Compare)
	s.CalculateBounds()
	return true
}
