// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsel/a1"
	"github.com/katalvlaran/gridsel/selection"
)

func newCellsCmd(f *rootFlags) *cobra.Command {
	var reverse bool
	cmd := &cobra.Command{
		Use:   "cells FILE",
		Short: "Replay a script and list every selected cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, _, err := replay(f, args[0])
			if err != nil {
				return err
			}
			dir := selection.Forward
			if reverse {
				dir = selection.Reverse
			}
			out := cmd.OutOrStdout()
			it := sel.Iterator(dir)
			for {
				c, step := it.Next()
				if step == selection.StepEnd {
					return nil
				}
				name, err := a1.FormatCoord(c)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, name)
			}
		},
	}
	cmd.Flags().BoolVar(&reverse, "reverse", false, "visit cells bottom-right first")
	return cmd
}
