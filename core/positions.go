package core

import "sort"

// PositionSet is the set of genomic positions at which any of a group of
// reads observes an allele: the "positions of interest" the phasing side
// turns into its column index. It only ever grows.
type PositionSet struct {
	members map[int64]struct{}
}

// NewPositionSet creates an empty position set.
func NewPositionSet() *PositionSet {
	return &PositionSet{members: make(map[int64]struct{})}
}

// Add inserts a single position. Adding a member again has no effect.
func (s *PositionSet) Add(pos int64) {
	s.members[pos] = struct{}{}
}

// AddRead inserts every position the read observes. Duplicate positions
// within or across reads collapse to one member. Works the same whether or
// not the read has been sorted.
func (s *PositionSet) AddRead(r *Read) {
	for pos := range r.Positions() {
		s.members[pos] = struct{}{}
	}
}

// Contains reports whether pos is a member.
func (s *PositionSet) Contains(pos int64) bool {
	_, ok := s.members[pos]
	return ok
}

// Len returns the number of distinct positions.
func (s *PositionSet) Len() int {
	return len(s.members)
}

// Sorted returns the members as a new ascending slice.
func (s *PositionSet) Sorted() []int64 {
	out := make([]int64, 0, len(s.members))
	for pos := range s.members {
		out = append(out, pos)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
