// SPDX-License-Identifier: MIT

// Package script replays a YAML description of selection edits against a
// selection.Selection. It is used by the gridsel command and by tests that
// want to express a long edit sequence as data.
//
// Format:
//
//	options:
//	  mode: multiple      # or "single": each select step starts over
//	  combine: true       # minimize after every select/deselect (default true)
//	steps:
//	  - select: "A1:C3"
//	  - deselect: "B2"
//	  - insert_rows: {at: "2", count: 3}
//	  - delete_cols: {at: "B", count: 1}
//	  - minimize: true
//	  - clear: true
//
// Block references use A1 notation (see package a1); rows are 1-based
// numbers and columns are letters.
//
// Errors:
//
//   - ErrNoSteps: the script has no steps.
//   - ErrBadStep: a step sets zero or several operations, or a bad argument.
//   - ErrBadMode: options.mode is neither "multiple" nor "single".
package script
