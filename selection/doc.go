// SPDX-License-Identifier: MIT

// Package selection tracks which cells of a (row, column) addressed grid are
// selected, as a sorted set of rectangular Blocks.
//
// What:
//
//   - Coordinate is one cell (or a row/column header sentinel).
//   - Block is an axis-aligned rectangle with set algebra: Intersect, Union,
//     Combine, DeleteFragments and row/column insertion renumbering.
//   - Selection stores the selected region as disjoint Blocks sorted by their
//     top-left corner, plus a cached bounding Block.
//   - Iterator walks every selected cell exactly once, forward or reverse.
//   - Regions groups stored Blocks into connected areas.
//
// Why:
//
//   - Spreadsheet and grid widgets need cheap highlight queries, bulk cell
//     visits (copy, fill, clear) and a selection that survives row/column edits.
//
// Complexity (n = stored blocks):
//
//   - SelectBlock / DeselectBlock: O(n·k) where k is fragments produced (≤ 4 per overlap).
//   - Contains / Index:            O(n) worst case, early break on sorted tops.
//   - Minimize:                    O(n²) per pass, at most n+1 passes.
//   - UpdateRows / UpdateCols:     O(n log n).
//   - Iterator:                    O(n log n) setup, O(1) per cell.
//
// Errors:
//
//   - No operation rejects input; empty Blocks are no-ops.
//   - Minimize panics with an error wrapping ErrNotConverged if pairwise
//     merging fails to converge. That is an internal invariant violation.
//
// A Selection is not safe for concurrent mutation; an Iterator works on its
// own snapshot of the blocks.
package selection
