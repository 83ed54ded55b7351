package forest

import "github.com/gitrdm/slgkanren/pkg/logic"

// SelectedSubgoal describes the one subgoal a strand is currently
// pursuing, and how far along it is: which answer of the subgoal table
// it has consumed so far.
type SelectedSubgoal struct {
	SubgoalIndex int
	SubgoalTable TableIndex
	UniverseMap  logic.UniverseMap
	AnswerIndex  AnswerIndex
}

// Strand is one branch of search: an inference-table snapshot, the
// ex-clause it is building, and (once one has been picked) the subgoal
// it is pursuing.
type Strand struct {
	Infer    logic.InferenceTable
	ExClause ExClause
	Selected *SelectedSubgoal
}

// clone returns a copy of s suitable for enqueuing as a sibling strand
// pursuing the next answer of the same subgoal: the inference table is
// deep-cloned (it is mutable, owned machinery) while the ex-clause's
// slices are copied so the two strands never alias each other's state.
func (s *Strand) clone() *Strand {
	var sel *SelectedSubgoal
	if s.Selected != nil {
		copied := *s.Selected
		sel = &copied
	}
	return &Strand{
		Infer:    s.Infer.Clone(),
		ExClause: s.ExClause.clone(),
		Selected: sel,
	}
}

// StrandQueue is a table's pending partial proofs. Pushes are taken in
// insertion order relative to each other, but PopNext always removes the
// most recently pushed strand: a stack, not a FIFO queue. This is a
// fixed, documented choice (spec's strand scheduling is underspecified
// beyond "FIFO of pushes plus a LIFO pop") pinned down by
// strand_test.go rather than left to chance.
type StrandQueue struct {
	strands []*Strand
}

// Push enqueues s.
func (q *StrandQueue) Push(s *Strand) {
	q.strands = append(q.strands, s)
}

// Extend enqueues every strand in ss, preserving their relative order.
func (q *StrandQueue) Extend(ss []*Strand) {
	q.strands = append(q.strands, ss...)
}

// PopNext removes and returns the most recently pushed strand.
func (q *StrandQueue) PopNext() (*Strand, bool) {
	n := len(q.strands)
	if n == 0 {
		return nil, false
	}
	s := q.strands[n-1]
	q.strands = q.strands[:n-1]
	return s, true
}

// Take removes and returns every strand currently queued, leaving the
// queue empty. Used both by the green cut (pursue_answer dropping
// remaining strands after a trivial answer) and by cycle clearing.
func (q *StrandQueue) Take() []*Strand {
	out := q.strands
	q.strands = nil
	return out
}

// Len reports how many strands are queued.
func (q *StrandQueue) Len() int {
	return len(q.strands)
}
