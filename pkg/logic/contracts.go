package logic

// Subst is an opaque substitution built up by the inference table as a
// proof progresses. The core only ever stores and forwards it.
type Subst any

// InferenceTable is the unification and substitution machinery a
// surface language owns. pkg/forest calls it to canonicalize goals into
// table keys, instantiate fresh variables for quantifiers, and invert
// goals for negative-subgoal handling; it never unifies terms itself.
type InferenceTable interface {
	// Canonicalize abstracts value over the free inference variables it
	// currently contains, returning a Canonical value suitable as (part
	// of) a table key.
	Canonicalize(value any) Canonical[any]

	// UCanonicalize further abstracts a Canonical value over universes,
	// returning the u-canonical form and the UniverseMap needed to map
	// answers for it back into the caller's current universe frame.
	UCanonicalize(canonical Canonical[any]) (UCanonical[any], UniverseMap)

	// InstantiateUniverses replaces the universe placeholders in goal
	// with fresh universes scoped to the current inference table.
	InstantiateUniverses(goal any) any

	// FreshSubst produces a substitution of fresh inference variables,
	// one per variable described by binders.
	FreshSubst(binders Binders) Subst

	// NormalizeDeep fully normalizes value for debug display. It is
	// never on the hot path; implementations may do the simplest thing
	// that is merely correct.
	NormalizeDeep(value any) any

	// Invert turns a goal containing free existentials into one where
	// they are universally quantified instead, as required before a
	// negative literal can be tabled. It reports false if the goal
	// cannot be soundly inverted (free existentials remain), which
	// signals floundering to the caller.
	Invert(goal any) (any, bool)

	// Clone returns an independent copy of the inference table's current
	// state, used whenever a sibling strand must be enqueued.
	Clone() InferenceTable

	// IsTrivialSubstitution reports whether subst, produced for a goal
	// quantified by binders, is the identity substitution: each bound
	// variable mapped to a distinct fresh variable of its own, with no
	// further constraints. An unconditional answer with a trivial
	// substitution can never be refined by another clause, so the core
	// uses this to cut the remaining strands of its table (the green
	// cut) instead of pursuing them to no further effect.
	IsTrivialSubstitution(binders Binders, subst Subst) bool
}

// UniverseMap maps terms canonicalized against one universe frame back
// into another, as returned by InferenceTable.UCanonicalize and consumed
// when mapping a subgoal table's answer back to the caller's universes.
type UniverseMap interface {
	MapFromCanonical(canonical any) any
}

// Program answers global, goal-independent questions about the
// surface-language program being solved.
type Program interface {
	// IsCoinductive reports whether goal's head predicate carries the
	// coinductive attribute: a cyclic dependency on it is interpreted as
	// true rather than as an error.
	IsCoinductive(goal DomainGoal) bool
}

// ClauseSource enumerates the program clauses applicable to a leaf
// domain goal, in a fixed, deterministic order (answer ordering in
// pkg/forest is only deterministic to the extent this order is).
type ClauseSource interface {
	Clauses(goal InEnvironment[DomainGoal]) []ProgramClause
}

// Truncator bounds the size of a canonical value, replacing excessive
// subtrees with fresh existentials when it exceeds maxSize. It reports
// whether the result is an overflow (a strict generalization of value)
// as well as the (possibly generalized) value itself.
type Truncator interface {
	Truncate(infer InferenceTable, maxSize int, value any) (overflow bool, result any)
}
