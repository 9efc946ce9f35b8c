// SPDX-License-Identifier: MIT

package selection

import "log/slog"

// DefaultMode is the selection mode used when no WithMode option is given.
const DefaultMode = ModeMultiple

// Options holds the configuration of a Selection. Fields are set through
// Option values; the zero value is not meaningful, use DefaultOptions.
type Options struct {
	mode   Mode
	logger *slog.Logger
}

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// DefaultOptions returns ModeMultiple and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		mode:   DefaultMode,
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithMode records how a plain select gesture treats an existing selection.
// Panics on an unknown mode.
func WithMode(m Mode) Option {
	if m != ModeMultiple && m != ModeSingle {
		panic(panicBadMode)
	}
	return func(o *Options) {
		o.mode = m
	}
}

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}
	return func(o *Options) {
		o.logger = l
	}
}

// gatherOptions applies opts on top of DefaultOptions.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// Mode reports the configured selection mode.
func (o Options) Mode() Mode { return o.mode }
