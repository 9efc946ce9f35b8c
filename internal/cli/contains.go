// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridsel/a1"
)

func newContainsCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "contains FILE REF",
		Short: "Replay a script and report whether REF is fully selected",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a1.ParseBlock(args[1])
			if err != nil {
				return err
			}
			sel, _, err := replay(f, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sel.Contains(b))
			return nil
		},
	}
}
