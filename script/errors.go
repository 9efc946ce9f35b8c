// SPDX-License-Identifier: MIT

package script

import "errors"

var (
	// ErrNoSteps indicates a script without steps.
	ErrNoSteps = errors.New("script: no steps")
	// ErrBadStep indicates a malformed step.
	ErrBadStep = errors.New("script: invalid step")
	// ErrBadMode indicates an unknown selection mode.
	ErrBadMode = errors.New("script: invalid mode")
)
