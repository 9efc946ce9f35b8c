// SPDX-License-Identifier: MIT

// Package cli implements the gridsel command line.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsel/internal/logging"
	"github.com/katalvlaran/gridsel/script"
	"github.com/katalvlaran/gridsel/selection"
)

type rootFlags struct {
	logLevel string
	logFile  string
	logger   *slog.Logger
	closeLog func() error
}

// closeLogFile closes the --log-file handle, if any. Safe to call twice.
func (f *rootFlags) closeLogFile() error {
	if f.closeLog == nil {
		return nil
	}
	err := f.closeLog()
	f.closeLog = nil
	return err
}

// NewRootCmd builds the gridsel command tree.
func NewRootCmd() *cobra.Command {
	root, _ := newRootCmd()
	return root
}

func newRootCmd() (*cobra.Command, *rootFlags) {
	f := &rootFlags{}
	root := &cobra.Command{
		Use:   "gridsel",
		Short: "Replay and inspect grid cell selections",
		Long: `gridsel replays YAML scripts of select, deselect and row/column edits
against a rectangular cell selection and prints the result in A1 notation.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if f.logFile == "" {
				f.logger = logging.New(cmd.ErrOrStderr(), f.logLevel)
				return nil
			}
			l, closeFn, err := logging.Init(f.logFile, f.logLevel)
			if err != nil {
				return err
			}
			f.logger, f.closeLog = l, closeFn
			return nil
		},
	}
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&f.logFile, "log-file", "", "append logs to this file instead of stderr")

	root.AddCommand(newReplayCmd(f), newCellsCmd(f), newContainsCmd(f))
	return root, f
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	root, f := newRootCmd()
	if err := runRoot(root, f); err != nil {
		os.Exit(1)
	}
}

// runRoot executes root, then closes the log file opened for --log-file.
func runRoot(root *cobra.Command, f *rootFlags) error {
	err := root.Execute()
	if cerr := f.closeLogFile(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// replay loads path and runs it against a fresh selection.
func replay(f *rootFlags, path string) (*selection.Selection, script.Report, error) {
	sc, err := script.Load(path)
	if err != nil {
		return nil, script.Report{}, err
	}
	sel, err := sc.NewSelection(f.logger)
	if err != nil {
		return nil, script.Report{}, err
	}
	rep, err := sc.Run(sel, f.logger)
	if err != nil {
		return nil, rep, err
	}
	f.logger.Info("replayed script", "path", path, "steps", len(rep.Steps), "changed", rep.Changed())
	return sel, rep, nil
}
