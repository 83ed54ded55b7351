package forest

import (
	"fmt"

	"github.com/gitrdm/slgkanren/pkg/logic"
)

// AnswerIndex identifies one answer within a table's answer set, in the
// order it was produced.
type AnswerIndex uint32

// Answer is one solution to a table's goal: a substitution together
// with the set of literals whose truth conditions it.
type Answer struct {
	Subst           logic.Subst
	DelayedLiterals DelayedLiteralSet
}

// IsUnconditional reports whether a has no outstanding delayed literals
// and no constraints — it is definitively true. Constraints travel
// folded into Subst (see constrainedSubst in exclause.go): Canonicalize
// is called on the (subst, constraints) pair together, so the
// constraint set survives into the stored answer without a separate
// field the core would otherwise have no way to inspect once an
// InferenceTable value has rebuilt it.
func (a Answer) IsUnconditional() bool {
	if len(a.DelayedLiterals) > 0 {
		return false
	}
	if bundle, ok := a.Subst.(constrainedSubst); ok {
		return len(bundle.Constraints) == 0
	}
	return true
}

// AnswerSet is the deduplicated, insertion-ordered collection of answers
// produced for one table. Invariants: answers are unique by (subst,
// delayed-literal set); NextAnswerIndex equals the number of answers.
type AnswerSet struct {
	answers []Answer
	seen    map[string]AnswerIndex
}

// NewAnswerSet returns an empty answer set.
func NewAnswerSet() *AnswerSet {
	return &AnswerSet{seen: make(map[string]AnswerIndex)}
}

func answerKey(a Answer) string {
	return fmt.Sprintf("%#v|%s", a.Subst, a.DelayedLiterals.fingerprint())
}

// Push inserts answer if it is not already present, returning its index
// and whether it was newly added.
func (s *AnswerSet) Push(answer Answer) (AnswerIndex, bool) {
	k := answerKey(answer)
	if idx, ok := s.seen[k]; ok {
		return idx, false
	}
	idx := AnswerIndex(len(s.answers))
	s.answers = append(s.answers, answer)
	s.seen[k] = idx
	return idx, true
}

// Get returns the answer at idx, if it exists.
func (s *AnswerSet) Get(idx AnswerIndex) (Answer, bool) {
	if int(idx) >= len(s.answers) {
		return Answer{}, false
	}
	return s.answers[idx], true
}

// Len reports how many answers have been produced.
func (s *AnswerSet) Len() int {
	return len(s.answers)
}

// NextAnswerIndex is the index the next pushed answer will receive.
func (s *AnswerSet) NextAnswerIndex() AnswerIndex {
	return AnswerIndex(len(s.answers))
}
