package forest

import (
	"fmt"

	"github.com/gitrdm/slgkanren/pkg/logic"
)

// TableIndex identifies a table in the forest's arena. Stable for the
// lifetime of the query; never reused.
type TableIndex int

// Table is the memoization record for one canonicalized goal: its
// accumulated answers and pending strands. Invariants: the canonical
// goal is never mutated after creation; answers are unique by (subst,
// delayed-literal set); NextAnswerIndex equals the answer count.
type Table struct {
	Goal        logic.UCanonical[any]
	Coinductive bool
	Answers     *AnswerSet
	Strands     StrandQueue
}

func newTable(goal logic.UCanonical[any], coinductive bool) *Table {
	return &Table{
		Goal:        goal,
		Coinductive: coinductive,
		Answers:     NewAnswerSet(),
	}
}

// canonicalKey returns a deterministic string fingerprint for a
// u-canonical goal, used to intern tables. Collaborator term types are
// expected to implement fmt.Stringer for a meaningful key; types that
// don't fall back to Go-syntax formatting, which is still deterministic
// but less readable in logs.
func canonicalKey(goal logic.UCanonical[any]) string {
	if s, ok := goal.Value.(fmt.Stringer); ok {
		return fmt.Sprintf("u%d/%d:%s", goal.Binders.Count, goal.Universes, s.String())
	}
	return fmt.Sprintf("u%d/%d:%#v", goal.Binders.Count, goal.Universes, goal.Value)
}
