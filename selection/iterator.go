// SPDX-License-Identifier: MIT

package selection

import "slices"

// traversal describes one visiting order: how blocks are sorted and how a
// cursor moves inside a single block.
type traversal struct {
	compare func(a, b Block) int
	first   Step
	start   func(b Block) Coordinate
	advance func(b Block, c Coordinate) (Coordinate, Step, bool)
}

var forward = traversal{
	compare: Block.Compare,
	first:   StepLeftTop,
	start:   Block.TopLeft,
	advance: func(b Block, c Coordinate) (Coordinate, Step, bool) {
		if c.Col < b.Right() {
			return Coordinate{Row: c.Row, Col: c.Col + 1}, StepNextCol, true
		}
		if c.Row < b.Bottom() {
			return Coordinate{Row: c.Row + 1, Col: b.Col}, StepNextRow, true
		}
		return c, StepEnd, false
	},
}

var reverse = traversal{
	compare: func(a, b Block) int { return b.CompareBottomRight(a) },
	first:   StepRightBottom,
	start:   Block.BottomRight,
	advance: func(b Block, c Coordinate) (Coordinate, Step, bool) {
		if c.Col > b.Col {
			return Coordinate{Row: c.Row, Col: c.Col - 1}, StepNextCol, true
		}
		if c.Row > b.Row {
			return Coordinate{Row: c.Row - 1, Col: b.Right()}, StepNextRow, true
		}
		return c, StepEnd, false
	},
}

// Iterator visits every cell of a snapshot of blocks exactly once, provided
// the blocks are disjoint (as Selection keeps them). It is not restartable;
// build a new one to iterate again.
type Iterator struct {
	blocks  []Block
	walk    traversal
	index   int
	cur     Coordinate
	started bool
}

// NewIterator returns an Iterator over the cells of sel.
func NewIterator(sel *Selection, dir Direction) *Iterator {
	return sel.Iterator(dir)
}

// NewIteratorFromBlocks returns an Iterator over a copy of blocks. Empty
// blocks are skipped. Forward sorts the copy by ascending top-left corner,
// Reverse by descending bottom-right corner.
func NewIteratorFromBlocks(blocks []Block, dir Direction) *Iterator {
	walk := forward
	if dir == Reverse {
		walk = reverse
	}
	snapshot := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		if !b.IsEmpty() {
			snapshot = append(snapshot, b)
		}
	}
	slices.SortFunc(snapshot, walk.compare)
	return &Iterator{blocks: snapshot, walk: walk}
}

// Next returns the next coordinate and how the cursor got there. Once the
// cells are exhausted it keeps returning StepEnd.
func (it *Iterator) Next() (Coordinate, Step) {
	if it.index >= len(it.blocks) {
		return Coordinate{}, StepEnd
	}
	if !it.started {
		it.started = true
		it.cur = it.walk.start(it.blocks[it.index])
		return it.cur, it.walk.first
	}

	if c, step, ok := it.walk.advance(it.blocks[it.index], it.cur); ok {
		it.cur = c
		return c, step
	}

	it.index++
	if it.index >= len(it.blocks) {
		return Coordinate{}, StepEnd
	}
	it.cur = it.walk.start(it.blocks[it.index])
	return it.cur, it.walk.first
}

// IsInSelection reports whether (row, col) lies in any snapshot block.
// It does not move the cursor.
func (it *Iterator) IsInSelection(row, col int) bool {
	for _, b := range it.blocks {
		if b.Contains(row, col) {
			return true
		}
	}
	return false
}

// Collect drains the iterator and returns the remaining coordinates.
func (it *Iterator) Collect() []Coordinate {
	var out []Coordinate
	for {
		c, step := it.Next()
		if step == StepEnd {
			return out
		}
		out = append(out, c)
	}
}
