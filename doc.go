// SPDX-License-Identifier: MIT

// Package gridsel is the selection algebra behind a spreadsheet-style grid:
// which cells are selected, how rectangular regions are added and removed,
// and how the selection follows row and column insertions and deletions.
//
// Everything is organized under a few subpackages:
//
//	selection/ — Coordinate, Block, Selection, Iterator and Regions
//	a1/        — A1-notation references ("B2:D5") for Coordinates and Blocks
//	script/    — YAML replay scripts of selection edits
//	cmd/       — the gridsel command (replay, cells, contains)
//
// Quick ASCII example: selecting A1:E5 and deselecting C3 stores four blocks
//
//	1 1 1 1 1   top strip     A1:E2
//	1 1 1 1 1
//	2 2 . 3 3   left / right  A3:B3, D3:E3
//	4 4 4 4 4   bottom strip  A4:E5
//	4 4 4 4 4
//
//	go get github.com/katalvlaran/gridsel/selection
package gridsel
