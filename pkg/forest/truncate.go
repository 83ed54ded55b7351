package forest

import "github.com/gitrdm/slgkanren/pkg/logic"

// abstractPositiveLiteral truncates and canonicalizes a positive
// subgoal into a u-canonical goal suitable for table interning. Positive
// literals are always truncated, never floundered: the resulting
// ex-clause keeps the original selected goal around so that answers
// returned by the (possibly more general) table still get filtered by
// unification against it later, in pursuePositiveSubgoal.
func (f *Forest) abstractPositiveLiteral(infer logic.InferenceTable, subgoal logic.InEnvironment[logic.Goal]) (logic.UCanonical[any], logic.UniverseMap) {
	_, truncated := f.truncator.Truncate(infer, f.config.MaxSize, any(subgoal.Goal))
	canonical := infer.Canonicalize(any(logic.InEnvironment[any]{
		Environment: subgoal.Environment,
		Goal:        truncated,
	}))
	ucanonical, universes := infer.UCanonicalize(canonical)
	return ucanonical, universes
}

// abstractNegativeLiteral inverts, then canonicalizes, a negative
// subgoal. Negative literals must be ground: if inversion cannot turn
// the goal's free existentials into universals, or if the inverted goal
// would still overflow truncation, the subgoal flounders (ok=false)
// rather than being truncated into a more general negative table —
// truncating a negative literal can silently turn a sound refutation
// into an unsound one, so the core aborts instead.
func (f *Forest) abstractNegativeLiteral(infer logic.InferenceTable, subgoal logic.InEnvironment[logic.Goal]) (ucanonical logic.UCanonical[any], universes logic.UniverseMap, ok bool) {
	inverted, invertible := infer.Invert(any(subgoal.Goal))
	if !invertible {
		return logic.UCanonical[any]{}, nil, false
	}
	canonical := infer.Canonicalize(any(logic.InEnvironment[any]{
		Environment: subgoal.Environment,
		Goal:        inverted,
	}))
	overflow, _ := f.truncator.Truncate(infer, f.config.MaxSize, canonical.Value)
	if overflow {
		return logic.UCanonical[any]{}, nil, false
	}
	u, um := infer.UCanonicalize(canonical)
	return u, um, true
}
