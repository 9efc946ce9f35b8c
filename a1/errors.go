// SPDX-License-Identifier: MIT

package a1

import "errors"

var (
	// ErrEmptyRef indicates a blank reference string.
	ErrEmptyRef = errors.New("a1: empty reference")
	// ErrBadRef indicates a reference that is not valid A1 notation.
	ErrBadRef = errors.New("a1: invalid reference")
	// ErrEmptyBlock indicates an attempt to format an empty Block.
	ErrEmptyBlock = errors.New("a1: empty block")
	// ErrNotACell indicates a header or invalid Coordinate where a cell is required.
	ErrNotACell = errors.New("a1: coordinate is not a cell")
)
