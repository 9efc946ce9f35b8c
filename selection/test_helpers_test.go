// SPDX-License-Identifier: MIT

package selection_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsel/selection"
)

// cellSet is the brute-force reference model of a selection.
type cellSet map[selection.Coordinate]bool

// rasterize expands blocks into the set of covered cells.
func rasterize(blocks ...selection.Block) cellSet {
	out := cellSet{}
	for _, b := range blocks {
		for r := b.Top(); r <= b.Bottom(); r++ {
			for c := b.Left(); c <= b.Right(); c++ {
				out[selection.Coordinate{Row: r, Col: c}] = true
			}
		}
	}
	return out
}

func (cs cellSet) add(b selection.Block) {
	for k := range rasterize(b) {
		cs[k] = true
	}
}

func (cs cellSet) remove(b selection.Block) {
	for k := range rasterize(b) {
		delete(cs, k)
	}
}

func (cs cellSet) containsAll(b selection.Block) bool {
	if b.IsEmpty() {
		return false
	}
	for k := range rasterize(b) {
		if !cs[k] {
			return false
		}
	}
	return true
}

func (cs cellSet) intersects(b selection.Block) bool {
	for k := range rasterize(b) {
		if cs[k] {
			return true
		}
	}
	return false
}

// bounds returns the bounding block of the set, or EmptyBlock.
func (cs cellSet) bounds() selection.Block {
	acc := selection.EmptyBlock
	for k := range cs {
		acc = acc.ExpandUnion(selection.NewBlock(k.Row, k.Col, 1, 1))
	}
	return acc
}

// randomBlock returns a non-empty block inside an n×n grid.
func randomBlock(rng *rand.Rand, n int) selection.Block {
	a := selection.Coordinate{Row: rng.Intn(n), Col: rng.Intn(n)}
	b := selection.Coordinate{Row: rng.Intn(n), Col: rng.Intn(n)}
	return selection.BlockFromCorners(a, b)
}

// allBlocks enumerates every non-empty block inside an n×n grid.
func allBlocks(n int) []selection.Block {
	var out []selection.Block
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			for h := 1; r+h <= n; h++ {
				for w := 1; c+w <= n; w++ {
					out = append(out, selection.NewBlock(r, c, h, w))
				}
			}
		}
	}
	return out
}

// requireConsistent checks the structural invariants of s against the
// reference set: same cells, disjoint sorted blocks, exact bounds.
func requireConsistent(t *testing.T, s *selection.Selection, want cellSet) {
	t.Helper()
	blocks := s.Blocks()

	got := rasterize(blocks...)
	require.Equal(t, len(want), len(got), "covered cell count")
	for k := range want {
		require.True(t, got[k], "cell %v missing", k)
	}

	area := 0
	for i, b := range blocks {
		require.False(t, b.IsEmpty(), "stored block %d is empty", i)
		area += b.Area()
		if i > 0 {
			require.LessOrEqual(t, blocks[i-1].Compare(b), 0, "blocks not sorted at %d", i)
		}
	}
	require.Equal(t, len(got), area, "stored blocks overlap")
	require.Equal(t, len(got), s.Area())
	require.True(t, want.bounds().Equal(s.BoundingBlock()), "bounds %v, want %v", s.BoundingBlock(), want.bounds())
}

// requireMinimal checks that no stored pair can still be combined.
func requireMinimal(t *testing.T, s *selection.Selection) {
	t.Helper()
	blocks := s.Blocks()
	for i := range blocks {
		for j := range blocks {
			if i == j {
				continue
			}
			b := blocks[i]
			require.False(t, b.Combine(blocks[j]), "blocks %v and %v still combine", blocks[i], blocks[j])
		}
	}
}
