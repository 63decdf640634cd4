package core

import (
	"fmt"
	"iter"
	"sort"
	"strings"
)

// UnsetID is the id a Read reports before it has been registered into a
// ReadSet (or otherwise stamped via SetID).
const UnsetID = -1

// variant is one observation a read makes at a genomic position: the raw base
// call plus the allele interpretation of it.
type variant struct {
	position int64
	base     byte
	entry    Entry
}

// Read holds the allele observations one sequencing read makes at the variant
// sites it overlaps. A read is built up in three phases: construct with name
// and mapping quality, append observations in whatever order the alignment is
// scanned, then SortVariants once loading is done. After that the phasing
// side treats it as read-only.
//
// A Read is not safe for concurrent mutation; the intended discipline is a
// single writer during loading, then any number of readers.
type Read struct {
	name     string
	mapq     int
	id       int
	variants []variant
}

// NewRead creates an empty read with the given name and mapping quality.
// The id starts out as UnsetID until the read is registered.
func NewRead(name string, mappingQuality int) *Read {
	return &Read{
		name: name,
		mapq: mappingQuality,
		id:   UnsetID,
	}
}

// Name returns the originating sequencing-read identifier.
func (r *Read) Name() string {
	return r.name
}

// MappingQuality returns the alignment confidence the read was constructed
// with.
func (r *Read) MappingQuality() int {
	return r.mapq
}

// AddVariant appends an observation at the given position. Sort order is not
// maintained; call SortVariants once all observations are in. Values are
// stored verbatim, validation is the caller's responsibility.
func (r *Read) AddVariant(position int64, base byte, allele, quality int) {
	r.variants = append(r.variants, variant{
		position: position,
		base:     base,
		entry:    NewEntry(allele, quality),
	})
}

// SortVariants orders the observations ascending by position. Observations at
// equal positions may end up in any relative order. Sorting an already-sorted
// read is a no-op; sortedness is never cached, so appending after sorting and
// sorting again behaves as expected.
func (r *Read) SortVariants() {
	sort.Slice(r.variants, func(i, j int) bool {
		return r.variants[i].position < r.variants[j].position
	})
}

// FirstPosition returns the position of the first observation in current
// order. It is meaningful after SortVariants. Panics if the read has no
// observations.
func (r *Read) FirstPosition() int64 {
	if len(r.variants) == 0 {
		panic("core: FirstPosition called on read with no variants")
	}
	return r.variants[0].position
}

// LastPosition returns the position of the last observation in current order.
// Panics if the read has no observations.
func (r *Read) LastPosition() int64 {
	if len(r.variants) == 0 {
		panic("core: LastPosition called on read with no variants")
	}
	return r.variants[len(r.variants)-1].position
}

// SetID stamps the read's identifier. Callers are expected to stamp each read
// exactly once, normally via ReadSet.Register; a repeated call is not an
// error, the last write wins.
func (r *Read) SetID(id int) {
	r.id = id
}

// ID returns the stamped identifier, or UnsetID if the read has not been
// registered.
func (r *Read) ID() int {
	return r.id
}

// VariantCount returns the number of observations, sorted or not.
func (r *Read) VariantCount() int {
	return len(r.variants)
}

// Position returns the position of the i-th observation in current order.
// Panics if i is out of range.
func (r *Read) Position(i int) int64 {
	if i < 0 || i >= len(r.variants) {
		panic(fmt.Sprintf("core: Position index %d out of range [0:%d]", i, len(r.variants)))
	}
	return r.variants[i].position
}

// Entry returns the allele observation at index i in current order. The Entry
// is returned by value; mutating it cannot affect the read. Panics if i is
// out of range.
func (r *Read) Entry(i int) Entry {
	if i < 0 || i >= len(r.variants) {
		panic(fmt.Sprintf("core: Entry index %d out of range [0:%d]", i, len(r.variants)))
	}
	return r.variants[i].entry
}

// Base returns the raw base call at index i in current order. Panics if i is
// out of range.
func (r *Read) Base(i int) byte {
	if i < 0 || i >= len(r.variants) {
		panic(fmt.Sprintf("core: Base index %d out of range [0:%d]", i, len(r.variants)))
	}
	return r.variants[i].base
}

// Positions yields the position of every observation in current order,
// duplicates included. Callers union these into their own set, typically a
// PositionSet, to build the global column index across many reads. The result
// set does not depend on whether SortVariants has run.
func (r *Read) Positions() iter.Seq[int64] {
	return func(yield func(int64) bool) {
		for _, v := range r.variants {
			if !yield(v.position) {
				return
			}
		}
	}
}

// String renders the read for diagnostics. The format is not contractual.
func (r *Read) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (mapq %d, id %d):", r.name, r.mapq, r.id)
	for _, v := range r.variants {
		fmt.Fprintf(&b, " %d:%c(%s)", v.position, v.base, v.entry)
	}
	return b.String()
}
