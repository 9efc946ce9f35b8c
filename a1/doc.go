// SPDX-License-Identifier: MIT

// Package a1 converts between spreadsheet A1 references ("B3", "A1:C4",
// "$B$2") and selection Coordinates and Blocks. Rows and columns are
// 0-based in package selection and 1-based in A1 notation.
//
// Header coordinates have their own forms: "C:C" is the header of column C,
// "3:3" the header of row 3.
//
// Errors:
//
//   - ErrEmptyRef: the reference string is blank.
//   - ErrBadRef: the reference cannot be parsed.
//   - ErrEmptyBlock: an empty Block has no A1 form.
//   - ErrNotACell: a header or invalid Coordinate was used where a cell is required.
package a1
