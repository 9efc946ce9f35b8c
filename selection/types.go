// SPDX-License-Identifier: MIT

package selection

// CoordKind classifies a Coordinate as a grid cell or one of the header sentinels.
type CoordKind int

const (
	// KindCell is an ordinary cell: row >= 0 and col >= 0.
	KindCell CoordKind = iota
	// KindRowHeader addresses the header of a row: col == -1.
	KindRowHeader
	// KindColHeader addresses the header of a column: row == -1.
	KindColHeader
	// KindCorner is the top-left corner header: row == -1 and col == -1.
	KindCorner
	// KindInvalid is anything else (negative values other than the sentinels).
	KindInvalid
)

// HeaderIndex is the sentinel row/col value used by header coordinates.
const HeaderIndex = -1

// Coordinate identifies one cell of the grid.
type Coordinate struct {
	Row, Col int
}

// Block is a rectangle of cells given by its top-left corner and extent.
// A Block with Height <= 0 or Width <= 0 is empty; operations that produce
// no area return the canonical empty Block, EmptyBlock.
type Block struct {
	Row, Col      int
	Height, Width int
}

// EmptyBlock is the canonical empty Block.
var EmptyBlock = Block{}

// Overlap tags the result of CombineFragments and DeleteFragments.
type Overlap int

const (
	// OverlapNone means the two blocks do not intersect.
	OverlapNone Overlap = iota
	// OverlapPartial means some fragments are returned.
	OverlapPartial
	// OverlapAll means one block fully covers the other and no fragment remains.
	OverlapAll
)

// Fragments holds up to four leftover rectangles around an intersection.
// Top and Bottom span the full width of the source block; Left and Right
// span only the rows of the intersection. Unused sides are EmptyBlock.
type Fragments struct {
	Top, Bottom, Left, Right Block
}

// Mode tells the owner of a Selection how a plain select gesture treats the
// existing selection. SelectBlock itself behaves the same in both modes.
type Mode int

const (
	// ModeMultiple extends the selection with SelectBlock.
	ModeMultiple Mode = iota
	// ModeSingle starts over with Replace.
	ModeSingle
)

// Direction picks the visiting order of an Iterator.
type Direction int

const (
	// Forward visits blocks by ascending top-left corner and cells left to right,
	// top to bottom.
	Forward Direction = iota
	// Reverse visits blocks by descending bottom-right corner and cells right to
	// left, bottom to top.
	Reverse
)

// Step describes how the Iterator moved to the coordinate it returned.
type Step int

const (
	// StepEnd means the iterator is exhausted; the coordinate is meaningless.
	StepEnd Step = iota
	// StepLeftTop is the first cell of a block in Forward order.
	StepLeftTop
	// StepRightBottom is the first cell of a block in Reverse order.
	StepRightBottom
	// StepNextRow wrapped to a new row within the same block.
	StepNextRow
	// StepNextCol advanced within the current row.
	StepNextCol
)

// String returns the step name.
func (s Step) String() string {
	switch s {
	case StepLeftTop:
		return "LeftTop"
	case StepRightBottom:
		return "RightBottom"
	case StepNextRow:
		return "NextRow"
	case StepNextCol:
		return "NextCol"
	default:
		return "End"
	}
}
