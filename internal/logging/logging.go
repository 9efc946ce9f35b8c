// SPDX-License-Identifier: MIT

// Package logging configures log/slog for the gridsel command.
package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var mu sync.Mutex

// Init installs a text logger as the slog default and returns a function
// that closes the log file. The caller must call it once logging is done.
//
// path: log file path, opened in append mode. If empty, logs go to stderr
// and the close function does nothing.
// level: "debug", "info", "warn" or "error". Defaults to "info".
func Init(path string, level string) (*slog.Logger, func() error, error) {
	mu.Lock()
	defer mu.Unlock()

	var w io.Writer = os.Stderr
	closeFn := func() error { return nil }
	if path != "" {
		dir := filepath.Dir(path)
		if dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, nil, err
			}
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, err
		}
		w, closeFn = f, f.Close
	}

	logger := New(w, level)
	slog.SetDefault(logger)
	return logger, closeFn, nil
}

// New returns a text logger writing to w without touching the default.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// ParseLevel maps a level name to slog.Level; unknown names mean Info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
