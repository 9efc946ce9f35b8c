// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsel/a1"
)

func newReplayCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "replay FILE",
		Short: "Replay a script and print the resulting blocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, _, err := replay(f, args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if sel.IsEmpty() {
				fmt.Fprintln(out, "empty")
				return nil
			}
			blocks, err := a1.FormatSelection(sel)
			if err != nil {
				return err
			}
			bounds, err := a1.FormatBlock(sel.BoundingBlock())
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "blocks:  %s\n", blocks)
			fmt.Fprintf(out, "bounds:  %s\n", bounds)
			fmt.Fprintf(out, "cells:   %d\n", sel.Area())
			fmt.Fprintf(out, "regions: %d\n", len(sel.Regions()))
			return nil
		},
	}
}
