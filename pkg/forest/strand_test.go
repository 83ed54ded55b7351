package forest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestStrandQueueLIFO pins the documented, otherwise-underspecified
// scheduling policy: pushes accumulate in order, but PopNext always
// returns the most recently pushed strand.
func TestStrandQueueLIFO(t *testing.T) {
	var q StrandQueue
	a := &Strand{}
	b := &Strand{}
	c := &Strand{}

	q.Push(a)
	q.Push(b)
	q.Push(c)
	assert.Equal(t, 3, q.Len())

	got, ok := q.PopNext()
	assert.True(t, ok)
	assert.Same(t, c, got)

	got, ok = q.PopNext()
	assert.True(t, ok)
	assert.Same(t, b, got)

	got, ok = q.PopNext()
	assert.True(t, ok)
	assert.Same(t, a, got)

	_, ok = q.PopNext()
	assert.False(t, ok)
}

func TestStrandQueueExtendPreservesOrder(t *testing.T) {
	var q StrandQueue
	a := &Strand{}
	b := &Strand{}
	q.Extend([]*Strand{a, b})

	got, ok := q.PopNext()
	assert.True(t, ok)
	assert.Same(t, b, got)

	got, ok = q.PopNext()
	assert.True(t, ok)
	assert.Same(t, a, got)
}

func TestStrandQueueTakeEmptiesQueue(t *testing.T) {
	var q StrandQueue
	q.Push(&Strand{})
	q.Push(&Strand{})

	taken := q.Take()
	assert.Len(t, taken, 2)
	assert.Equal(t, 0, q.Len())
	_, ok := q.PopNext()
	assert.False(t, ok)
}
