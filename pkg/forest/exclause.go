package forest

import (
	"fmt"
	"sort"

	"github.com/gitrdm/slgkanren/pkg/logic"
)

// ExClause is the state of a proof-in-progress: an SLG-style ex-clause
// body threading the substitution being built, collected constraints,
// remaining subgoals, and literals already delayed.
type ExClause struct {
	Subst           logic.Subst
	Constraints     []any
	Subgoals        []logic.Literal
	DelayedLiterals []DelayedLiteral
}

// clone returns a deep-enough copy of ex for enqueuing as a sibling
// strand: the slices are copied so mutating one clause's subgoals never
// mutates another's.
func (ex ExClause) clone() ExClause {
	out := ExClause{Subst: ex.Subst}
	if ex.Constraints != nil {
		out.Constraints = append([]any(nil), ex.Constraints...)
	}
	if ex.Subgoals != nil {
		out.Subgoals = append([]logic.Literal(nil), ex.Subgoals...)
	}
	if ex.DelayedLiterals != nil {
		out.DelayedLiterals = append([]DelayedLiteral(nil), ex.DelayedLiterals...)
	}
	return out
}

// constrainedSubst bundles a substitution with the region/lifetime
// constraints collected alongside it, mirroring the way chalk's own
// ConstrainedSubst threads the two through Canonicalize together: the
// core calls InferenceTable.Canonicalize once on this pair when
// producing an answer (pursueAnswer), so the resulting Answer.Subst
// still carries constraint emptiness forward for the green cut and for
// negative-subgoal unconditionality checks, without a separate field on
// Answer itself.
type constrainedSubst struct {
	Subst       logic.Subst
	Constraints []any
}

// DelayedLiteral is a literal whose truth was not resolved at
// answer-production time; it conditions the answer it's attached to. The
// three variants mirror NFTD's delayed-negation, SLG-FACTOR positive
// import, and floundering-negative cases.
type DelayedLiteral interface {
	isDelayedLiteral()
	key() string
}

// NegativeDelay records that the answer depends on subgoalTable's
// negation, not yet known to hold or fail.
type NegativeDelay struct {
	Table TableIndex
}

func (NegativeDelay) isDelayedLiteral() {}
func (d NegativeDelay) key() string     { return fmt.Sprintf("N:%d", d.Table) }

// PositiveDelay records the SLG FACTOR rule: a positive subgoal answer
// that was itself conditional was imported wholesale rather than
// resolved away.
type PositiveDelay struct {
	Table          TableIndex
	CanonicalSubst any
}

func (PositiveDelay) isDelayedLiteral() {}
func (d PositiveDelay) key() string {
	return fmt.Sprintf("P:%d:%#v", d.Table, d.CanonicalSubst)
}

// CannotProveDelay marks a floundered negative literal: one that could
// not be soundly inverted, or that would overflow truncation if it
// were.
type CannotProveDelay struct{}

func (CannotProveDelay) isDelayedLiteral() {}
func (CannotProveDelay) key() string       { return "C" }

// DelayedLiteralSet is a deduplicated, order-independent collection of
// delayed literals attached to an answer. Two answers are the same
// answer iff their substitutions and delayed-literal sets are equal, so
// the set is kept sorted by a deterministic key for comparison.
type DelayedLiteralSet []DelayedLiteral

// NewDelayedLiteralSet dedupes and sorts lits into canonical order.
func NewDelayedLiteralSet(lits []DelayedLiteral) DelayedLiteralSet {
	seen := make(map[string]DelayedLiteral, len(lits))
	for _, l := range lits {
		seen[l.key()] = l
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make(DelayedLiteralSet, 0, len(keys))
	for _, k := range keys {
		out = append(out, seen[k])
	}
	return out
}

// fingerprint returns a stable string key for set-membership comparison
// against other DelayedLiteralSets.
func (s DelayedLiteralSet) fingerprint() string {
	var b []byte
	for _, l := range s {
		b = append(b, l.key()...)
		b = append(b, ';')
	}
	return string(b)
}
