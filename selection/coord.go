// SPDX-License-Identifier: MIT

package selection

import "fmt"

// Kind classifies c as a cell, a row/column header or the corner.
func (c Coordinate) Kind() CoordKind {
	switch {
	case c.Row >= 0 && c.Col >= 0:
		return KindCell
	case c.Row == HeaderIndex && c.Col == HeaderIndex:
		return KindCorner
	case c.Row >= 0 && c.Col == HeaderIndex:
		return KindRowHeader
	case c.Row == HeaderIndex && c.Col >= 0:
		return KindColHeader
	default:
		return KindInvalid
	}
}

// IsCell reports whether c addresses an ordinary grid cell.
func (c Coordinate) IsCell() bool { return c.Kind() == KindCell }

// IsRowHeader reports whether c addresses a row header.
func (c Coordinate) IsRowHeader() bool { return c.Kind() == KindRowHeader }

// IsColHeader reports whether c addresses a column header.
func (c Coordinate) IsColHeader() bool { return c.Kind() == KindColHeader }

// IsCorner reports whether c addresses the corner header.
func (c Coordinate) IsCorner() bool { return c.Kind() == KindCorner }

// Compare orders coordinates row-major: by Row, then Col.
// It returns -1, 0 or +1.
func (c Coordinate) Compare(o Coordinate) int {
	switch {
	case c.Row < o.Row:
		return -1
	case c.Row > o.Row:
		return 1
	case c.Col < o.Col:
		return -1
	case c.Col > o.Col:
		return 1
	}
	return 0
}

// Less reports whether c sorts before o in row-major order.
func (c Coordinate) Less(o Coordinate) bool { return c.Compare(o) < 0 }

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}
