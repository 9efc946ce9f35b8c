// SPDX-License-Identifier: MIT

package selection

import "slices"

// Region is a connected part of a Selection: stored blocks linked by
// Block.Touches, including diagonal corner contact.
type Region struct {
	// Blocks are the member blocks in stored order.
	Blocks []Block
	// Bounds is the bounding block of the region.
	Bounds Block
}

// Area returns the number of cells in the region.
func (r Region) Area() int {
	n := 0
	for _, b := range r.Blocks {
		n += b.Area()
	}
	return n
}

// Regions groups the stored blocks into connected regions, ordered by the
// first member block in stored order.
//
// Time:   O(n²) touch tests, n = stored blocks.
// Memory: O(n) for visited flags and output.
func (s *Selection) Regions() []Region {
	n := len(s.blocks)
	seen := make([]bool, n)
	var regions []Region

	for i0 := 0; i0 < n; i0++ {
		if seen[i0] {
			continue
		}
		// BFS over the touch relation
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := s.blocks[queue[qi]]
			for v := 0; v < n; v++ {
				if !seen[v] && u.Touches(s.blocks[v]) {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}

		r := Region{Bounds: EmptyBlock}
		slices.Sort(queue)
		for _, idx := range queue {
			r.Blocks = append(r.Blocks, s.blocks[idx])
			r.Bounds = r.Bounds.ExpandUnion(s.blocks[idx])
		}
		regions = append(regions, r)
	}
	return regions
}
