// SPDX-License-Identifier: MIT

package a1

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/gridsel/selection"
)

// ParseCoord parses a single cell ("B3", "$B$3") or a header reference
// ("C:C" for a column header, "3:3" for a row header).
func ParseCoord(ref string) (selection.Coordinate, error) {
	ref = normalize(ref)
	if ref == "" {
		return selection.Coordinate{}, ErrEmptyRef
	}

	if first, second, ok := strings.Cut(ref, ":"); ok {
		if first != second {
			return selection.Coordinate{}, fmt.Errorf("%w: %q is a range, not a header", ErrBadRef, ref)
		}
		if row, err := strconv.Atoi(first); err == nil {
			if row < 1 {
				return selection.Coordinate{}, fmt.Errorf("%w: row %d", ErrBadRef, row)
			}
			return selection.Coordinate{Row: row - 1, Col: selection.HeaderIndex}, nil
		}
		col, err := excelize.ColumnNameToNumber(first)
		if err != nil {
			return selection.Coordinate{}, fmt.Errorf("%w: %q: %v", ErrBadRef, ref, err)
		}
		return selection.Coordinate{Row: selection.HeaderIndex, Col: col - 1}, nil
	}

	col, row, err := excelize.CellNameToCoordinates(ref)
	if err != nil {
		return selection.Coordinate{}, fmt.Errorf("%w: %q: %v", ErrBadRef, ref, err)
	}
	return selection.Coordinate{Row: row - 1, Col: col - 1}, nil
}

// FormatCoord renders c as "B3", or as "C:C" / "3:3" for column and row
// headers. The corner and invalid coordinates return ErrNotACell.
func FormatCoord(c selection.Coordinate) (string, error) {
	switch c.Kind() {
	case selection.KindCell:
		name, err := excelize.CoordinatesToCellName(c.Col+1, c.Row+1)
		if err != nil {
			return "", fmt.Errorf("%w: %v: %v", ErrBadRef, c, err)
		}
		return name, nil
	case selection.KindColHeader:
		name, err := excelize.ColumnNumberToName(c.Col + 1)
		if err != nil {
			return "", fmt.Errorf("%w: %v: %v", ErrBadRef, c, err)
		}
		return name + ":" + name, nil
	case selection.KindRowHeader:
		n := strconv.Itoa(c.Row + 1)
		return n + ":" + n, nil
	}
	return "", fmt.Errorf("%w: %v", ErrNotACell, c)
}

// ParseBlock parses "B2" or "B2:D5". Corners may be given in any order
// and are uprighted.
func ParseBlock(ref string) (selection.Block, error) {
	ref = normalize(ref)
	if ref == "" {
		return selection.EmptyBlock, ErrEmptyRef
	}
	first, second, isRange := strings.Cut(ref, ":")
	if !isRange {
		second = first
	}

	a, err := parseCell(first)
	if err != nil {
		return selection.EmptyBlock, err
	}
	b, err := parseCell(second)
	if err != nil {
		return selection.EmptyBlock, err
	}
	return selection.BlockFromCorners(a, b), nil
}

// FormatBlock renders b as "B2" for a single cell or "B2:D5".
func FormatBlock(b selection.Block) (string, error) {
	if b.IsEmpty() {
		return "", ErrEmptyBlock
	}
	tl, err := formatCell(b.TopLeft())
	if err != nil {
		return "", err
	}
	if b.Height == 1 && b.Width == 1 {
		return tl, nil
	}
	br, err := formatCell(b.BottomRight())
	if err != nil {
		return "", err
	}
	return tl + ":" + br, nil
}

// ParseBlocks parses a list of block references separated by commas,
// semicolons or whitespace, e.g. "A1:B2, D4".
func ParseBlocks(refs string) ([]selection.Block, error) {
	fields := strings.FieldsFunc(refs, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n'
	})
	if len(fields) == 0 {
		return nil, ErrEmptyRef
	}
	out := make([]selection.Block, 0, len(fields))
	for _, f := range fields {
		b, err := ParseBlock(f)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// FormatBlocks renders blocks as a comma-separated reference list.
func FormatBlocks(blocks []selection.Block) (string, error) {
	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		s, err := FormatBlock(b)
		if err != nil {
			return "", err
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ","), nil
}

// FormatSelection renders the stored blocks of s in sorted order.
func FormatSelection(s *selection.Selection) (string, error) {
	return FormatBlocks(s.Blocks())
}

// ParseRow parses a 1-based row number ("3") into a 0-based row index.
func ParseRow(ref string) (int, error) {
	ref = normalize(ref)
	if ref == "" {
		return 0, ErrEmptyRef
	}
	n, err := strconv.Atoi(ref)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: row %q", ErrBadRef, ref)
	}
	return n - 1, nil
}

// ParseCol parses a column name ("C", "AB") into a 0-based column index.
func ParseCol(ref string) (int, error) {
	ref = normalize(ref)
	if ref == "" {
		return 0, ErrEmptyRef
	}
	n, err := excelize.ColumnNameToNumber(ref)
	if err != nil {
		return 0, fmt.Errorf("%w: column %q: %v", ErrBadRef, ref, err)
	}
	return n - 1, nil
}

func parseCell(ref string) (selection.Coordinate, error) {
	c, err := ParseCoord(ref)
	if err != nil {
		return c, err
	}
	if !c.IsCell() {
		return c, fmt.Errorf("%w: %q", ErrNotACell, ref)
	}
	return c, nil
}

func formatCell(c selection.Coordinate) (string, error) {
	if !c.IsCell() {
		return "", fmt.Errorf("%w: %v", ErrNotACell, c)
	}
	return FormatCoord(c)
}

// normalize trims blanks, drops absolute markers and upper-cases the reference.
func normalize(ref string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(ref), "$", ""))
}
