package forest

import "github.com/gitrdm/slgkanren/pkg/logic"

// HHSimplifier reduces a hereditary-Harrop goal that is not a bare leaf
// predicate into a single ex-clause expressing "this goal holds iff
// these literals do". It is consulted once per table whose goal is
// compound (And, Not, ForAll, Exists, Implies).
type HHSimplifier interface {
	SimplifyHHGoal(infer logic.InferenceTable, subst logic.Subst, goal logic.InEnvironment[logic.Goal]) logic.Satisfiable[ExClause]
}

// ResolventEngine performs the two unification steps the core itself
// never does: resolving a table's domain goal against a candidate
// program clause's head (NFTD Program Clause Resolution), and threading
// a cached answer's substitution into a strand pursuing that answer
// (NFTD Positive Return).
type ResolventEngine interface {
	// ResolventClause unifies domainGoal with clause's head under subst,
	// producing the initial ex-clause for a strand if the clause could
	// apply at all.
	ResolventClause(infer logic.InferenceTable, domainGoal logic.DomainGoal, subst logic.Subst, clause logic.ProgramClause) logic.Satisfiable[ExClause]

	// ApplyAnswerSubst unifies the selected subgoal's goal (tableGoal, in
	// the subgoal table's own frame) with answerSubst, and threads the
	// resulting unifier into exClause. The resolved subgoal stays in the
	// returned ex-clause's Subgoals; the core removes it afterwards.
	ApplyAnswerSubst(infer logic.InferenceTable, exClause ExClause, subgoal logic.Literal, tableGoal any, answerSubst logic.Subst) logic.Satisfiable[ExClause]
}
