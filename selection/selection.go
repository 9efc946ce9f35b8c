// SPDX-License-Identifier: MIT

package selection

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"
)

// Selection is a set of selected cells stored as pairwise disjoint Blocks
// sorted by Block.Compare, plus their bounding Block.
//
// The union of the stored blocks always equals the selected region. After
// Minimize no two stored blocks can be merged by Block.Combine.
type Selection struct {
	blocks []Block
	bounds Block
	opts   Options
}

// NewSelection returns an empty Selection.
func NewSelection(opts ...Option) *Selection {
	return &Selection{bounds: EmptyBlock, opts: gatherOptions(opts...)}
}

// NewSelectionFromBlock returns a Selection holding b (empty if b is empty).
func NewSelectionFromBlock(b Block, opts ...Option) *Selection {
	s := NewSelection(opts...)
	if !b.IsEmpty() {
		s.blocks = []Block{b}
		s.bounds = b
	}
	return s
}

// Options returns the configuration of s.
func (s *Selection) Options() Options { return s.opts }

// Count returns the number of stored blocks.
func (s *Selection) Count() int { return len(s.blocks) }

// IsEmpty reports whether nothing is selected.
func (s *Selection) IsEmpty() bool { return len(s.blocks) == 0 }

// Block returns the i-th stored block. Panics if i is out of range.
func (s *Selection) Block(i int) Block { return s.blocks[i] }

// Blocks returns a copy of the stored blocks in sorted order.
func (s *Selection) Blocks() []Block { return slices.Clone(s.blocks) }

// BoundingBlock returns the smallest Block containing every selected cell,
// or EmptyBlock.
func (s *Selection) BoundingBlock() Block { return s.bounds }

// Area returns the number of selected cells.
func (s *Selection) Area() int {
	n := 0
	for _, b := range s.blocks {
		n += b.Area()
	}
	return n
}

// Clear deselects everything. Returns false if s was already empty.
func (s *Selection) Clear() bool {
	if len(s.blocks) == 0 {
		return false
	}
	s.blocks = s.blocks[:0]
	s.bounds = EmptyBlock
	return true
}

// Clone returns an independent copy of s sharing its options.
func (s *Selection) Clone() *Selection {
	return &Selection{blocks: slices.Clone(s.blocks), bounds: s.bounds, opts: s.opts}
}

// CalculateBounds recomputes the bounding Block from the stored blocks.
func (s *Selection) CalculateBounds() {
	s.bounds = EmptyBlock
	for _, b := range s.blocks {
		s.bounds = s.bounds.ExpandUnion(b)
	}
}

// FindInsertIndex returns the position at which b keeps the stored blocks
// sorted by Block.Compare.
func (s *Selection) FindInsertIndex(b Block) int {
	return sort.Search(len(s.blocks), func(i int) bool {
		return s.blocks[i].Compare(b) >= 0
	})
}

// FindTopRow returns the index of the first stored block whose top row is
// at least row, or Count() if there is none. Only blocks before that index
// can hold cells in rows above row.
func (s *Selection) FindTopRow(row int) int {
	return sort.Search(len(s.blocks), func(i int) bool {
		return s.blocks[i].Row >= row
	})
}

// SelectBlock adds b to the selection and reports whether any new cell was
// selected. When combineNow is true the stored blocks are minimized
// afterwards; otherwise merging is left to a later Minimize call.
func (s *Selection) SelectBlock(b Block, combineNow bool) bool {
	_, ok := s.SelectBlockAdded(b, combineNow)
	return ok
}

// SelectBlockAdded is SelectBlock that also returns the disjoint pieces of b
// that were newly selected.
func (s *Selection) SelectBlockAdded(b Block, combineNow bool) ([]Block, bool) {
	if b.IsEmpty() {
		return nil, false
	}

	pieces := []Block{b}
	if s.bounds.Intersects(b) {
		pieces = s.carve(b)
		if len(pieces) == 0 {
			return nil, false
		}
	}

	for _, p := range pieces {
		s.insert(p)
		s.bounds = s.bounds.ExpandUnion(p)
	}
	s.opts.logger.Debug("selection: select", "block", b.String(), "added", len(pieces))

	if combineNow {
		s.Minimize()
	}
	return pieces, true
}

// Replace makes b the whole selection, the plain-click gesture of a
// single-region grid. Returns false if the selection already was exactly b.
// An empty b clears the selection.
func (s *Selection) Replace(b Block, combineNow bool) bool {
	if len(s.blocks) == 1 && s.blocks[0] == b {
		return false
	}
	if b.IsEmpty() {
		return s.Clear()
	}
	s.Clear()
	return s.SelectBlock(b, combineNow)
}

// carve splits b into the sub-rectangles not covered by stored blocks.
func (s *Selection) carve(b Block) []Block {
	pieces := []Block{b}
	end := s.FindTopRow(b.Bottom() + 1)
	for i := 0; i < end && len(pieces) > 0; i++ {
		stored := s.blocks[i]
		if !stored.Intersects(b) {
			continue
		}
		next := pieces[:0:0]
		for _, p := range pieces {
			frags, ov := stored.CombineFragments(p)
			switch ov {
			case OverlapNone:
				next = append(next, p)
			case OverlapPartial:
				next = append(next, frags.Blocks()...)
			}
		}
		pieces = next
	}
	return pieces
}

func (s *Selection) insert(b Block) {
	i := s.FindInsertIndex(b)
	s.blocks = slices.Insert(s.blocks, i, b)
}

// DeselectBlock removes b from the selection and reports whether any cell
// was deselected. Stored blocks overlapping b are replaced by their leftover
// fragments.
func (s *Selection) DeselectBlock(b Block, combineNow bool) bool {
	_, ok := s.DeselectBlockRemoved(b, combineNow)
	return ok
}

// DeselectBlockRemoved is DeselectBlock that also returns the rectangles
// that were actually deselected.
func (s *Selection) DeselectBlockRemoved(b Block, combineNow bool) ([]Block, bool) {
	if b.IsEmpty() || !s.bounds.Intersects(b) {
		return nil, false
	}

	var removed, leftovers []Block
	end := s.FindTopRow(b.Bottom() + 1)
	kept := make([]Block, 0, len(s.blocks))
	for i, stored := range s.blocks {
		if i >= end || !stored.Intersects(b) {
			kept = append(kept, stored)
			continue
		}
		removed = append(removed, stored.Intersect(b))
		if frags, ov := stored.DeleteFragments(b); ov == OverlapPartial {
			leftovers = append(leftovers, frags.Blocks()...)
		}
	}
	if len(removed) == 0 {
		return nil, false
	}

	s.blocks = kept
	for _, f := range leftovers {
		s.insert(f)
	}

	bounds := s.bounds
	for _, r := range removed {
		if r.Row == bounds.Row || r.Col == bounds.Col || r.Bottom() == bounds.Bottom() || r.Right() == bounds.Right() {
			s.CalculateBounds()
			break
		}
	}
	s.opts.logger.Debug("selection: deselect", "block", b.String(), "removed", len(removed))

	if combineNow {
		s.Minimize()
	}
	return removed, true
}

// Minimize merges stored blocks pairwise with Block.Combine until a full
// pass finds nothing to merge. Reports whether any merge happened.
//
// Every productive pass removes at least one block, so more than
// Count()+1 passes means Combine is flip-flopping. Minimize then logs and
// panics with an error wrapping ErrNotConverged.
func (s *Selection) Minimize() bool {
	start := len(s.blocks)
	limit := start + 2
	merged := false
	for pass := 0; ; pass++ {
		if pass >= limit {
			err := fmt.Errorf("%w: %d passes over %d blocks", ErrNotConverged, pass, start)
			s.opts.logger.Error("selection: minimize", "err", err, "blocks", len(s.blocks))
			panic(err)
		}
		if !s.minimizePass() {
			break
		}
		merged = true
	}
	if merged {
		slices.SortFunc(s.blocks, Block.Compare)
		s.opts.logger.Debug("selection: minimize", "before", start, "after", len(s.blocks))
	}
	return merged
}

// minimizePass tries Combine on every pair once, dropping absorbed blocks.
func (s *Selection) minimizePass() bool {
	changed := false
	for i := 0; i < len(s.blocks); i++ {
		for j := i + 1; j < len(s.blocks); {
			if s.blocks[i].Combine(s.blocks[j]) {
				s.blocks = slices.Delete(s.blocks, j, j+1)
				changed = true
				continue
			}
			j++
		}
	}
	return changed
}

// Contains reports whether every cell of b is selected. It subtracts
// matching stored blocks from a worklist seeded with b until the worklist
// is empty (contained) or a fragment meets no stored block (not contained).
func (s *Selection) Contains(b Block) bool {
	if b.IsEmpty() || !s.bounds.ContainsBlock(b) {
		return false
	}

	work := []Block{b}
	for len(work) > 0 {
		p := work[len(work)-1]
		work = work[:len(work)-1]

		hit := false
		end := s.FindTopRow(p.Bottom() + 1)
		for i := 0; i < end; i++ {
			if !s.blocks[i].Intersects(p) {
				continue
			}
			if frags, ov := p.DeleteFragments(s.blocks[i]); ov == OverlapPartial {
				work = append(work, frags.Blocks()...)
			}
			hit = true
			break
		}
		if !hit {
			return false
		}
	}
	return true
}

// ContainsCell reports whether the cell (row, col) is selected.
func (s *Selection) ContainsCell(row, col int) bool {
	return s.Index(row, col) >= 0
}

// Index returns the index of the stored block containing (row, col), or -1.
func (s *Selection) Index(row, col int) int {
	if len(s.blocks) == 0 || !s.bounds.Contains(row, col) {
		return -1
	}
	end := s.FindTopRow(row + 1)
	for i := 0; i < end; i++ {
		if s.blocks[i].Contains(row, col) {
			return i
		}
	}
	return -1
}

// IndexBlock returns the index of the stored block containing all of b, or -1.
func (s *Selection) IndexBlock(b Block) int {
	if b.IsEmpty() || !s.bounds.ContainsBlock(b) {
		return -1
	}
	end := s.FindTopRow(b.Row + 1)
	for i := 0; i < end; i++ {
		if s.blocks[i].ContainsBlock(b) {
			return i
		}
	}
	return -1
}

// Intersects reports whether any cell of b is selected.
func (s *Selection) Intersects(b Block) bool {
	if !s.bounds.Intersects(b) {
		return false
	}
	end := s.FindTopRow(b.Bottom() + 1)
	for i := 0; i < end; i++ {
		if s.blocks[i].Intersects(b) {
			return true
		}
	}
	return false
}

// Iterator returns an Iterator over a snapshot of the selected cells.
func (s *Selection) Iterator(dir Direction) *Iterator {
	return NewIteratorFromBlocks(s.blocks, dir)
}

// Logger returns the logger attached to s.
func (s *Selection) Logger() *slog.Logger { return s.opts.logger }
