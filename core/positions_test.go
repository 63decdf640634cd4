package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionSet_UnionAcrossReads(t *testing.T) {
	r1 := NewRead("r1", 60)
	r1.AddVariant(50, 'T', 1, 20)
	r1.AddVariant(100, 'A', 0, 30)

	r2 := NewRead("r2", 50)
	r2.AddVariant(100, 'A', 0, 25)
	r2.AddVariant(150, 'G', 1, 35)

	set := NewPositionSet()
	set.AddRead(r1)
	set.AddRead(r2)

	require.Equal(t, 3, set.Len())
	assert.Equal(t, []int64{50, 100, 150}, set.Sorted())
	assert.True(t, set.Contains(100))
	assert.False(t, set.Contains(75))
}

func TestPositionSet_OrderIndependent(t *testing.T) {
	build := func(sortFirst bool) *PositionSet {
		r := NewRead("r", 60)
		r.AddVariant(300, 'C', 0, 10)
		r.AddVariant(100, 'A', 1, 10)
		r.AddVariant(200, 'G', 0, 10)
		if sortFirst {
			r.SortVariants()
		}
		s := NewPositionSet()
		s.AddRead(r)
		return s
	}

	// The set is the same whether the read was normalized or not.
	assert.Equal(t, build(true).Sorted(), build(false).Sorted())
}

func TestPositionSet_Monotonic(t *testing.T) {
	set := NewPositionSet()
	set.Add(42)

	r := NewRead("r", 60)
	r.AddVariant(7, 'A', 0, 30)
	set.AddRead(r)
	set.AddRead(r)

	// Repeated adds never remove prior members.
	assert.Equal(t, []int64{7, 42}, set.Sorted())
}

func TestPositionSet_DuplicatePositionsCollapse(t *testing.T) {
	r := NewRead("r", 60)
	r.AddVariant(100, 'A', 0, 30)
	r.AddVariant(100, 'A', 1, 12)

	set := NewPositionSet()
	set.AddRead(r)

	assert.Equal(t, 1, set.Len())
}

func TestPositionSet_Empty(t *testing.T) {
	set := NewPositionSet()
	assert.Equal(t, 0, set.Len())
	assert.Empty(t, set.Sorted())
}
