// SPDX-License-Identifier: MIT

package selection

import "errors"

// ErrNotConverged is the panic payload (wrapped with detail) raised by
// Minimize when pairwise Combine keeps merging past the pass cap.
var ErrNotConverged = errors.New("selection: pairwise Combine failed to converge")

// Panic messages for option constructors (programmer error).
const (
	panicNilLogger = "selection: WithLogger(nil)"
	panicBadMode   = "selection: WithMode: unknown mode"
)
