package logictest

import (
	"github.com/gitrdm/slgkanren/pkg/forest"
	"github.com/gitrdm/slgkanren/pkg/logic"
)

// Resolvent is the toy ResolventEngine: it performs the two unification
// steps pkg/forest itself never does, using nothing but term.go's
// syntactic unifier.
type Resolvent struct{}

// ResolventClause instantiates domainGoal (a table's own canonical goal,
// de-canonicalized via subst) and clause (freshened via infer's own
// variable allocator, so its variables are automatically disjoint from
// every other clause's and from the table's own), then unifies them.
func (Resolvent) ResolventClause(inferIface logic.InferenceTable, domainGoal logic.DomainGoal, subst logic.Subst, clause logic.ProgramClause) logic.Satisfiable[forest.ExClause] {
	infer, ok := inferIface.(*Inference)
	if !ok {
		return logic.SatisfiableNo[forest.ExClause]()
	}
	queryPred, ok := domainGoal.(Pred)
	if !ok {
		return logic.SatisfiableNo[forest.ExClause]()
	}
	headPred, ok := clause.Head.(Pred)
	if !ok {
		return logic.SatisfiableNo[forest.ExClause]()
	}

	idx, _ := subst.(IndexSubst)
	queryArg := instantiateCanonTerm(queryPred.Arg, idx)

	assign := infer.freshVars(clauseArity(clause))
	headArg := substTermBound(headPred.Arg, assign)

	newSubst, ok := unifyArgs(queryArg, headArg, infer.subst)
	if !ok {
		return logic.SatisfiableNo[forest.ExClause]()
	}
	infer.subst = newSubst

	subgoals := make([]logic.Literal, len(clause.Conditions))
	for i, cond := range clause.Conditions {
		subgoals[i] = substLiteralBound(cond, assign)
	}
	return logic.SatisfiableYes(forest.ExClause{Subst: newSubst, Subgoals: subgoals})
}

// ApplyAnswerSubst threads a subgoal table's answer back into the
// pursuing strand: tableGoal and answerSubst are both expressed in that
// table's own canonical variable numbering (mapped through the identity
// UniverseMap unchanged), so any of its free variables still unresolved
// in the answer get their own fresh local variable, consistent across
// the one call.
func (Resolvent) ApplyAnswerSubst(inferIface logic.InferenceTable, exClause forest.ExClause, subgoal logic.Literal, tableGoal any, answerSubst logic.Subst) logic.Satisfiable[forest.ExClause] {
	infer, ok := inferIface.(*Inference)
	if !ok {
		return logic.SatisfiableNo[forest.ExClause]()
	}

	tg, ok := tableGoal.(logic.InEnvironment[logic.Goal])
	if !ok {
		return logic.SatisfiableNo[forest.ExClause]()
	}
	leaf, ok := tg.Goal.(logic.LeafGoal)
	if !ok {
		return logic.SatisfiableNo[forest.ExClause]()
	}
	tablePred, ok := leaf.Domain.(Pred)
	if !ok {
		return logic.SatisfiableNo[forest.ExClause]()
	}

	cs, hasSubst := answerSubst.(canonSubstValue)
	fresh := make(map[int]Var)
	resolveCanon := func(t Term) Term {
		if cv, ok := t.(CanonVar); ok && hasSubst {
			if val, ok := bindingFor(cs, cv.Index); ok {
				return instantiateAnswerTerm(val, infer, fresh)
			}
		}
		return instantiateAnswerTerm(t, infer, fresh)
	}

	answerTerm := resolveCanon(tablePred.Arg)

	subPred, ok := literalPred(subgoal)
	if !ok {
		return logic.SatisfiableNo[forest.ExClause]()
	}

	newSubst, ok := unifyArgs(subPred.Arg, answerTerm, infer.subst)
	if !ok {
		return logic.SatisfiableNo[forest.ExClause]()
	}
	infer.subst = newSubst

	return logic.SatisfiableYes(forest.ExClause{
		Subst:           newSubst,
		Constraints:     exClause.Constraints,
		Subgoals:        exClause.Subgoals,
		DelayedLiterals: exClause.DelayedLiterals,
	})
}

func bindingFor(cs canonSubstValue, idx int) (Term, bool) {
	for _, b := range cs.Bindings {
		if b.Index == idx {
			return b.Value, true
		}
	}
	return nil, false
}

func literalPred(l logic.Literal) (Pred, bool) {
	leaf, ok := l.Goal.Goal.(logic.LeafGoal)
	if !ok {
		return Pred{}, false
	}
	pred, ok := leaf.Domain.(Pred)
	return pred, ok
}

// instantiateAnswerTerm turns an answer-side canonical term into one
// expressed in infer's own variable space: a ground term passes through
// unchanged, a still-free canonical variable gets a fresh local variable
// (memoized in fresh so repeated occurrences within one call stay the
// same variable).
func instantiateAnswerTerm(t Term, infer *Inference, fresh map[int]Var) Term {
	switch v := t.(type) {
	case CanonVar:
		if fv, ok := fresh[v.Index]; ok {
			return fv
		}
		nv := infer.freshVar()
		fresh[v.Index] = nv
		return nv
	case Compound:
		return Compound{Tag: v.Tag, Arg: instantiateAnswerTerm(v.Arg, infer, fresh)}
	default:
		return t
	}
}
