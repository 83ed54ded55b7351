package logictest

import (
	"github.com/gitrdm/slgkanren/pkg/forest"
	"github.com/gitrdm/slgkanren/pkg/logic"
)

// Simplifier is the toy HHSimplifier: it reduces the hereditary-Harrop
// connectives (And, Not, ForAll, Exists, Implies; the seed scenarios
// themselves only use Not) to a single ex-clause, one subgoal per
// conjunct.
type Simplifier struct{}

// SimplifyHHGoal implements forest.HHSimplifier.
func (Simplifier) SimplifyHHGoal(inferIface logic.InferenceTable, subst logic.Subst, goal logic.InEnvironment[logic.Goal]) logic.Satisfiable[forest.ExClause] {
	infer, ok := inferIface.(*Inference)
	if !ok {
		return logic.SatisfiableNo[forest.ExClause]()
	}
	idx, _ := subst.(IndexSubst)
	g := instantiateCanonGoal(goal.Goal, idx)
	return simplifyGoal(infer, goal.Environment, g)
}

func simplifyGoal(infer *Inference, env logic.Environment, g logic.Goal) logic.Satisfiable[forest.ExClause] {
	switch v := g.(type) {
	case logic.LeafGoal:
		return logic.SatisfiableYes(forest.ExClause{
			Subst:    infer.subst,
			Subgoals: []logic.Literal{logic.PositiveLiteral(logic.InEnvironment[logic.Goal]{Environment: env, Goal: v})},
		})

	case logic.NotGoal:
		return logic.SatisfiableYes(forest.ExClause{
			Subst:    infer.subst,
			Subgoals: []logic.Literal{logic.NegativeLiteral(logic.InEnvironment[logic.Goal]{Environment: env, Goal: v.Goal})},
		})

	case logic.AndGoal:
		subgoals := make([]logic.Literal, len(v.Goals))
		for i, sub := range v.Goals {
			subgoals[i] = logic.PositiveLiteral(logic.InEnvironment[logic.Goal]{Environment: env, Goal: sub})
		}
		return logic.SatisfiableYes(forest.ExClause{Subst: infer.subst, Subgoals: subgoals})

	case logic.ForAllGoal:
		inner, ok := infer.InstantiateUniverses(v).(logic.Goal)
		if !ok {
			return logic.SatisfiableNo[forest.ExClause]()
		}
		return simplifyGoal(infer, env, inner)

	case logic.ExistsGoal:
		inner, ok := infer.InstantiateUniverses(v).(logic.Goal)
		if !ok {
			return logic.SatisfiableNo[forest.ExClause]()
		}
		return simplifyGoal(infer, env, inner)

	case logic.ImpliesGoal:
		// The antecedent clauses are conjoined as positive subgoals
		// alongside the consequent rather than genuinely extending the
		// environment's hypothetical clause set: an intentional
		// simplification, since no seed scenario needs a clause only
		// visible while proving one particular goal.
		subgoals := make([]logic.Literal, 0, len(v.Clauses)+1)
		for _, c := range v.Clauses {
			subgoals = append(subgoals, logic.PositiveLiteral(logic.InEnvironment[logic.Goal]{
				Environment: env,
				Goal:        logic.LeafGoal{Domain: c.Head},
			}))
			subgoals = append(subgoals, c.Conditions...)
		}
		subgoals = append(subgoals, logic.PositiveLiteral(logic.InEnvironment[logic.Goal]{Environment: env, Goal: v.Goal}))
		return logic.SatisfiableYes(forest.ExClause{Subst: infer.subst, Subgoals: subgoals})

	default:
		return logic.SatisfiableNo[forest.ExClause]()
	}
}
