package forest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDelayedLiteralSetDedupesAndSorts(t *testing.T) {
	lits := []DelayedLiteral{
		NegativeDelay{Table: 2},
		CannotProveDelay{},
		NegativeDelay{Table: 2},
		PositiveDelay{Table: 1, CanonicalSubst: "x"},
	}
	set := NewDelayedLiteralSet(lits)
	assert.Len(t, set, 3)

	again := NewDelayedLiteralSet(lits)
	assert.Equal(t, set.fingerprint(), again.fingerprint())
}

func TestAnswerSetPushDeduplicatesAndIndexes(t *testing.T) {
	s := NewAnswerSet()
	assert.Equal(t, AnswerIndex(0), s.NextAnswerIndex())

	idx1, added1 := s.Push(Answer{Subst: "a"})
	assert.True(t, added1)
	assert.Equal(t, AnswerIndex(0), idx1)

	idx2, added2 := s.Push(Answer{Subst: "a"})
	assert.False(t, added2)
	assert.Equal(t, idx1, idx2)

	idx3, added3 := s.Push(Answer{Subst: "b"})
	assert.True(t, added3)
	assert.Equal(t, AnswerIndex(1), idx3)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, AnswerIndex(2), s.NextAnswerIndex())

	got, ok := s.Get(idx3)
	assert.True(t, ok)
	assert.Equal(t, "b", got.Subst)

	_, ok = s.Get(AnswerIndex(99))
	assert.False(t, ok)
}

func TestAnswerIsUnconditional(t *testing.T) {
	bare := Answer{Subst: "x"}
	assert.True(t, bare.IsUnconditional())

	delayed := Answer{Subst: "x", DelayedLiterals: DelayedLiteralSet{CannotProveDelay{}}}
	assert.False(t, delayed.IsUnconditional())

	constrained := Answer{Subst: constrainedSubst{Subst: "x", Constraints: []any{"region"}}}
	assert.False(t, constrained.IsUnconditional())

	emptyConstraints := Answer{Subst: constrainedSubst{Subst: "x"}}
	assert.True(t, emptyConstraints.IsUnconditional())
}
