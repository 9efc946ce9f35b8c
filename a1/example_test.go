// SPDX-License-Identifier: MIT

package a1_test

import (
	"fmt"

	"github.com/katalvlaran/gridsel/a1"
	"github.com/katalvlaran/gridsel/selection"
)

// ExampleParseBlock turns a range reference into a Block and back.
func ExampleParseBlock() {
	b, _ := a1.ParseBlock("$D$5:B2")
	fmt.Println(b)

	s := selection.NewSelectionFromBlock(b)
	s.DeselectBlock(selection.NewBlock(2, 2, 1, 1), true)
	ref, _ := a1.FormatSelection(s)
	fmt.Println(ref)

	// Output:
	// [1,1 4x3]
	// B2:D2,B3,D3,B4:D5
}
