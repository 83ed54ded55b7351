package forest

import "github.com/gitrdm/slgkanren/pkg/logic"

// resolventClause asks the configured ResolventEngine to unify
// domainGoal against clause's head, producing the initial ex-clause for
// a new strand. Satisfiable carries no value on failure, meaning the
// clause simply doesn't apply; that is not floundering and not a
// control signal, just "try the next clause".
func (f *Forest) resolventClause(infer logic.InferenceTable, domainGoal logic.DomainGoal, subst logic.Subst, clause logic.ProgramClause) (ExClause, bool) {
	return f.resolvent.ResolventClause(infer, domainGoal, subst, clause).Get()
}

// applyAnswerSubst asks the configured ResolventEngine to unify the
// selected subgoal against a cached answer's substitution, threading the
// resulting unifier into exClause. Failure here is a genuine unification
// failure (not floundering): the strand that called it dies with
// sfNoSolution.
func (f *Forest) applyAnswerSubst(infer logic.InferenceTable, exClause ExClause, subgoal logic.Literal, tableGoal any, answerSubst logic.Subst) (ExClause, bool) {
	return f.resolvent.ApplyAnswerSubst(infer, exClause, subgoal, tableGoal, answerSubst).Get()
}
