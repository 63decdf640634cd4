package core

import (
	"iter"
	"sort"

	"go.uber.org/zap"
)

// ReadSet owns a collection of reads and allocates their ids. Reads are
// constructed unregistered (ID() == UnsetID); Register stamps the next dense
// id, so a read's id is its index in the set. This is the only place in the
// module that assigns ids.
//
// Like Read, a ReadSet assumes a single writer during loading and read-only
// use afterwards.
type ReadSet struct {
	reads  []*Read
	byName map[string]*Read
	logger *zap.Logger
}

// NewReadSet creates an empty read set.
func NewReadSet() *ReadSet {
	return &ReadSet{
		byName: make(map[string]*Read),
		logger: zap.NewNop(),
	}
}

// SetLogger sets the logger used for registration warnings.
func (s *ReadSet) SetLogger(l *zap.Logger) {
	s.logger = l
}

// Register stamps the read with the next id, records it, and returns the id.
// Registering a read that already carries an id, or a second read with the
// same name, is logged as a warning; the read is still registered and its id
// re-stamped (last write wins).
func (s *ReadSet) Register(r *Read) int {
	if r.ID() != UnsetID {
		s.logger.Warn("registering read that already has an id",
			zap.String("name", r.Name()),
			zap.Int("old_id", r.ID()))
	}
	if _, dup := s.byName[r.Name()]; dup {
		s.logger.Warn("registering duplicate read name",
			zap.String("name", r.Name()))
	}

	id := len(s.reads)
	r.SetID(id)
	s.reads = append(s.reads, r)
	s.byName[r.Name()] = r
	return id
}

// Len returns the number of registered reads.
func (s *ReadSet) Len() int {
	return len(s.reads)
}

// Get returns the read with the given id. Panics if no such id has been
// allocated.
func (s *ReadSet) Get(id int) *Read {
	return s.reads[id]
}

// GetByName returns the most recently registered read with the given name, or
// nil if none.
func (s *ReadSet) GetByName(name string) *Read {
	return s.byName[name]
}

// All yields the registered reads in id order.
func (s *ReadSet) All() iter.Seq[*Read] {
	return func(yield func(*Read) bool) {
		for _, r := range s.reads {
			if !yield(r) {
				return
			}
		}
	}
}

// Positions returns the union of the positions observed by all registered
// reads.
func (s *ReadSet) Positions() *PositionSet {
	ps := NewPositionSet()
	for _, r := range s.reads {
		ps.AddRead(r)
	}
	return ps
}

// SortByFirstPosition reorders the set so reads appear in order of their
// first observed position and re-stamps ids to match the new order. Reads
// without observations sort before all others. Every read must already be
// sorted; ids held by callers from before the call are invalid afterwards.
func (s *ReadSet) SortByFirstPosition() {
	sort.SliceStable(s.reads, func(i, j int) bool {
		ri, rj := s.reads[i], s.reads[j]
		if ri.VariantCount() == 0 || rj.VariantCount() == 0 {
			return ri.VariantCount() < rj.VariantCount()
		}
		return ri.FirstPosition() < rj.FirstPosition()
	})
	for id, r := range s.reads {
		r.SetID(id)
	}
}
