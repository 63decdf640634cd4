package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestReadSet_RegisterAssignsDenseIDs(t *testing.T) {
	rs := NewReadSet()

	r1 := NewRead("r1", 60)
	r2 := NewRead("r2", 50)
	r3 := NewRead("r3", 40)

	assert.Equal(t, 0, rs.Register(r1))
	assert.Equal(t, 1, rs.Register(r2))
	assert.Equal(t, 2, rs.Register(r3))

	require.Equal(t, 3, rs.Len())
	assert.Same(t, r1, rs.Get(0))
	assert.Same(t, r2, rs.Get(1))
	assert.Same(t, r3, rs.Get(2))
	assert.Equal(t, 1, r2.ID())
}

func TestReadSet_GetByName(t *testing.T) {
	rs := NewReadSet()
	r := NewRead("chr1_read_17", 60)
	rs.Register(r)

	assert.Same(t, r, rs.GetByName("chr1_read_17"))
	assert.Nil(t, rs.GetByName("missing"))
}

func TestReadSet_RegisterWarnings(t *testing.T) {
	obs, logs := observer.New(zap.WarnLevel)
	rs := NewReadSet()
	rs.SetLogger(zap.New(obs))

	r := NewRead("r1", 60)
	rs.Register(r)
	assert.Equal(t, 0, logs.Len())

	// Re-registering an already stamped read warns but still registers.
	rs.Register(r)
	assert.Equal(t, 2, rs.Len())
	assert.Equal(t, 1, r.ID())

	// Same name, different read.
	rs.Register(NewRead("r1", 30))

	warned := logs.All()
	require.NotEmpty(t, warned)
	assert.Equal(t, "registering read that already has an id", warned[0].Message)
}

func TestReadSet_Positions(t *testing.T) {
	rs := NewReadSet()

	r1 := NewRead("r1", 60)
	r1.AddVariant(50, 'T', 1, 20)
	r1.AddVariant(100, 'A', 0, 30)
	rs.Register(r1)

	r2 := NewRead("r2", 50)
	r2.AddVariant(100, 'A', 0, 25)
	r2.AddVariant(150, 'G', 1, 35)
	rs.Register(r2)

	assert.Equal(t, []int64{50, 100, 150}, rs.Positions().Sorted())
}

func TestReadSet_All(t *testing.T) {
	rs := NewReadSet()
	rs.Register(NewRead("a", 1))
	rs.Register(NewRead("b", 2))

	var names []string
	for r := range rs.All() {
		names = append(names, r.Name())
	}
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestReadSet_SortByFirstPosition(t *testing.T) {
	rs := NewReadSet()

	late := NewRead("late", 60)
	late.AddVariant(900, 'A', 0, 30)
	late.SortVariants()

	early := NewRead("early", 60)
	early.AddVariant(10, 'C', 1, 30)
	early.AddVariant(400, 'G', 0, 30)
	early.SortVariants()

	empty := NewRead("empty", 60)

	rs.Register(late)
	rs.Register(early)
	rs.Register(empty)

	rs.SortByFirstPosition()

	// Empty reads first, then ascending by first position; ids re-stamped.
	assert.Same(t, empty, rs.Get(0))
	assert.Same(t, early, rs.Get(1))
	assert.Same(t, late, rs.Get(2))
	assert.Equal(t, 0, empty.ID())
	assert.Equal(t, 1, early.ID())
	assert.Equal(t, 2, late.ID())
}
