package forest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackPushPopIsActive(t *testing.T) {
	s := NewStack()
	assert.True(t, s.IsEmpty())

	d0 := s.Push(TableIndex(1), DFN(0))
	assert.Equal(t, StackIndex(0), d0)
	depth, active := s.IsActive(TableIndex(1))
	assert.True(t, active)
	assert.Equal(t, d0, depth)

	d1 := s.Push(TableIndex(2), DFN(1))
	assert.Equal(t, StackIndex(1), d1)
	assert.Equal(t, 2, s.Len())

	s.Pop()
	assert.Equal(t, 1, s.Len())
	_, active = s.IsActive(TableIndex(2))
	assert.False(t, active)

	s.Pop()
	assert.True(t, s.IsEmpty())
}

func TestDFNAllocatorMonotone(t *testing.T) {
	var a dfnAllocator
	first := a.allocate()
	second := a.allocate()
	third := a.allocate()
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestMinimumsTakeMin(t *testing.T) {
	m := MinimumsMax()
	m.TakeMin(Minimums{Positive: 5, Negative: DFNMax})
	m.TakeMin(Minimums{Positive: 9, Negative: 3})
	assert.Equal(t, DFN(5), m.Positive)
	assert.Equal(t, DFN(3), m.Negative)
	assert.Equal(t, DFN(3), m.MinimumOfPosAndNeg())
}

func TestArenaPushGetSet(t *testing.T) {
	a := NewArena[string]()
	i := a.Push("x")
	assert.Equal(t, 0, i)
	assert.Equal(t, "x", a.Get(i))
	a.Set(i, "y")
	assert.Equal(t, "y", a.Get(i))
	assert.Equal(t, 1, a.Len())
}
