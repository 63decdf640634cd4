// Package core provides the per-read data structures used by read-based
// haplotype phasing: allele observations, position-sorted reads, the
// positions-of-interest set, and the id-allocating read registry.
package core

import "fmt"

// Entry is a single allele observation: which allele a read supports at a
// variant site, and the Phred-scaled confidence of that call. Entries are
// immutable once constructed.
//
// Neither the allele label nor the quality is range-checked here; the
// acceptable domain is defined by whatever loads the reads, not by this type.
type Entry struct {
	allele  int
	quality int
}

// NewEntry creates an allele observation with the given allele label and
// quality score.
func NewEntry(allele, quality int) Entry {
	return Entry{allele: allele, quality: quality}
}

// Allele returns the allele label (e.g. 0 for reference, 1 for alternate at a
// biallelic site).
func (e Entry) Allele() int {
	return e.allele
}

// Quality returns the Phred-scaled confidence score of the call.
func (e Entry) Quality() int {
	return e.quality
}

func (e Entry) String() string {
	return fmt.Sprintf("%d/q%d", e.allele, e.quality)
}
