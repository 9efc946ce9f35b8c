// SPDX-License-Identifier: MIT

// Command gridsel replays selection scripts; see internal/cli.
package main

import "github.com/katalvlaran/gridsel/internal/cli"

func main() {
	cli.Execute()
}
