// SPDX-License-Identifier: MIT

package selection

import "fmt"

// NewBlock returns the Block with top-left (row, col) and the given extent.
// A non-positive height or width yields EmptyBlock.
func NewBlock(row, col, height, width int) Block {
	if height <= 0 || width <= 0 {
		return EmptyBlock
	}
	return Block{Row: row, Col: col, Height: height, Width: width}
}

// BlockFromCorners returns the Block spanning two corner cells given in any
// order, e.g. the start and end cells of a drag gesture.
func BlockFromCorners(a, b Coordinate) Block {
	top, bottom := minmax(a.Row, b.Row)
	left, right := minmax(a.Col, b.Col)
	return Block{Row: top, Col: left, Height: bottom - top + 1, Width: right - left + 1}
}

// Upright normalizes a Block with a negative extent, which counts cells up
// (or left) from its origin, into the equivalent Block with positive extent.
// A zero extent yields EmptyBlock.
func (b Block) Upright() Block {
	if b.Height == 0 || b.Width == 0 {
		return EmptyBlock
	}
	if b.Height < 0 {
		b.Height = -b.Height
		b.Row = b.Row - b.Height + 1
	}
	if b.Width < 0 {
		b.Width = -b.Width
		b.Col = b.Col - b.Width + 1
	}
	return b
}

// IsEmpty reports whether b covers no cells.
func (b Block) IsEmpty() bool { return b.Height <= 0 || b.Width <= 0 }

// Top returns the first row.
func (b Block) Top() int { return b.Row }

// Left returns the first column.
func (b Block) Left() int { return b.Col }

// Bottom returns the last row.
func (b Block) Bottom() int { return b.Row + b.Height - 1 }

// Right returns the last column.
func (b Block) Right() int { return b.Col + b.Width - 1 }

// TopLeft returns the top-left cell.
func (b Block) TopLeft() Coordinate { return Coordinate{Row: b.Row, Col: b.Col} }

// TopRight returns the top-right cell.
func (b Block) TopRight() Coordinate { return Coordinate{Row: b.Row, Col: b.Right()} }

// BottomLeft returns the bottom-left cell.
func (b Block) BottomLeft() Coordinate { return Coordinate{Row: b.Bottom(), Col: b.Col} }

// BottomRight returns the bottom-right cell.
func (b Block) BottomRight() Coordinate { return Coordinate{Row: b.Bottom(), Col: b.Right()} }

// Area returns the number of cells in b, 0 when empty.
func (b Block) Area() int {
	if b.IsEmpty() {
		return 0
	}
	return b.Height * b.Width
}

// Equal reports whether a and b cover the same cells. All empty blocks are equal.
func (b Block) Equal(o Block) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return b.IsEmpty() && o.IsEmpty()
	}
	return b == o
}

// Compare orders blocks by top row, then left column, then height, then width.
// It returns -1, 0 or +1.
func (b Block) Compare(o Block) int {
	if c := cmpInt(b.Row, o.Row); c != 0 {
		return c
	}
	if c := cmpInt(b.Col, o.Col); c != 0 {
		return c
	}
	if c := cmpInt(b.Height, o.Height); c != 0 {
		return c
	}
	return cmpInt(b.Width, o.Width)
}

// CompareBottomRight orders blocks by bottom row, then right column, then
// height, then width.
func (b Block) CompareBottomRight(o Block) int {
	if c := cmpInt(b.Bottom(), o.Bottom()); c != 0 {
		return c
	}
	if c := cmpInt(b.Right(), o.Right()); c != 0 {
		return c
	}
	if c := cmpInt(b.Height, o.Height); c != 0 {
		return c
	}
	return cmpInt(b.Width, o.Width)
}

// Intersect returns the overlapping rectangle of b and o, or EmptyBlock.
func (b Block) Intersect(o Block) Block {
	if b.IsEmpty() || o.IsEmpty() {
		return EmptyBlock
	}
	top, left := max(b.Row, o.Row), max(b.Col, o.Col)
	bottom, right := min(b.Bottom(), o.Bottom()), min(b.Right(), o.Right())
	if bottom < top || right < left {
		return EmptyBlock
	}
	return Block{Row: top, Col: left, Height: bottom - top + 1, Width: right - left + 1}
}

// Union returns the bounding rectangle of both blocks' corners. The origin
// of an empty operand still takes part; use ExpandUnion to ignore it.
// Returns EmptyBlock only when both operands are empty.
func (b Block) Union(o Block) Block {
	if b.IsEmpty() && o.IsEmpty() {
		return EmptyBlock
	}
	top, left := min(b.Row, o.Row), min(b.Col, o.Col)
	bottom, right := max(b.Bottom(), o.Bottom()), max(b.Right(), o.Right())
	return NewBlock(top, left, bottom-top+1, right-left+1)
}

// ExpandUnion is Union with empty operands ignored, suited for folding
// blocks into an accumulator that starts as EmptyBlock.
func (b Block) ExpandUnion(o Block) Block {
	switch {
	case b.IsEmpty():
		if o.IsEmpty() {
			return EmptyBlock
		}
		return o
	case o.IsEmpty():
		return b
	}
	return b.Union(o)
}

// Contains reports whether the cell (row, col) lies in b.
func (b Block) Contains(row, col int) bool {
	return row >= b.Row && row <= b.Bottom() && col >= b.Col && col <= b.Right()
}

// ContainsCoord reports whether c lies in b.
func (b Block) ContainsCoord(c Coordinate) bool { return b.Contains(c.Row, c.Col) }

// ContainsBlock reports whether every cell of o lies in b.
// Empty blocks contain nothing and are contained by nothing.
func (b Block) ContainsBlock(o Block) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	return o.Row >= b.Row && o.Col >= b.Col && o.Bottom() <= b.Bottom() && o.Right() <= b.Right()
}

// Intersects reports whether b and o share at least one cell.
func (b Block) Intersects(o Block) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	return o.Row <= b.Bottom() && o.Bottom() >= b.Row && o.Col <= b.Right() && o.Right() >= b.Col
}

// Touches reports whether b and o overlap or share an edge or a corner.
func (b Block) Touches(o Block) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	return o.Row <= b.Bottom()+1 && o.Bottom() >= b.Row-1 && o.Col <= b.Right()+1 && o.Right() >= b.Col-1
}

// Combine merges o into b when their union is itself a rectangle: one
// contains the other, or they span the same columns with overlapping or
// adjacent rows, or the same rows with overlapping or adjacent columns.
// On success b becomes the union and Combine returns true; otherwise b is
// left unchanged.
func (b *Block) Combine(o Block) bool {
	switch {
	case o.IsEmpty():
		return false
	case b.IsEmpty():
		return false
	case b.ContainsBlock(o):
		return true
	case o.ContainsBlock(*b):
		*b = o
		return true
	}

	// Union corners must each come from b or o, which for two
	// non-nested rectangles means a shared full extent on one axis.
	sameCols := b.Col == o.Col && b.Width == o.Width
	sameRows := b.Row == o.Row && b.Height == o.Height
	switch {
	case sameCols && o.Row <= b.Bottom()+1 && o.Bottom() >= b.Row-1:
		top, bottom := min(b.Row, o.Row), max(b.Bottom(), o.Bottom())
		b.Row, b.Height = top, bottom-top+1
		return true
	case sameRows && o.Col <= b.Right()+1 && o.Right() >= b.Col-1:
		left, right := min(b.Col, o.Col), max(b.Right(), o.Right())
		b.Col, b.Width = left, right-left+1
		return true
	}
	return false
}

// CombineFragments returns the parts of o not covered by b, tagged by the
// side of b they extend from. OverlapNone means b and o are disjoint (all
// of o is new); OverlapAll means b already contains o.
func (b Block) CombineFragments(o Block) (Fragments, Overlap) {
	return o.DeleteFragments(b)
}

// DeleteFragments returns what remains of b after removing its intersection
// with o. OverlapNone means they are disjoint and b is untouched; OverlapAll
// means o covers b and nothing remains.
func (b Block) DeleteFragments(o Block) (Fragments, Overlap) {
	cut := b.Intersect(o)
	if cut.IsEmpty() {
		return Fragments{}, OverlapNone
	}
	if cut == b {
		return Fragments{}, OverlapAll
	}

	var f Fragments
	f.Top = NewBlock(b.Row, b.Col, cut.Row-b.Row, b.Width)
	f.Bottom = NewBlock(cut.Bottom()+1, b.Col, b.Bottom()-cut.Bottom(), b.Width)
	f.Left = NewBlock(cut.Row, b.Col, cut.Height, cut.Col-b.Col)
	f.Right = NewBlock(cut.Row, cut.Right()+1, cut.Height, b.Right()-cut.Right())
	return f, OverlapPartial
}

// Blocks returns the non-empty fragments in Top, Bottom, Left, Right order.
func (f Fragments) Blocks() []Block {
	out := make([]Block, 0, 4)
	for _, b := range [...]Block{f.Top, f.Bottom, f.Left, f.Right} {
		if !b.IsEmpty() {
			out = append(out, b)
		}
	}
	return out
}

func (b Block) String() string {
	if b.IsEmpty() {
		return "[empty]"
	}
	return fmt.Sprintf("[%d,%d %dx%d]", b.Row, b.Col, b.Height, b.Width)
}

func minmax(a, b int) (int, int) {
	if a <= b {
		return a, b
	}
	return b, a
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
