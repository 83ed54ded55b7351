package logictest

import "github.com/gitrdm/slgkanren/pkg/logic"

// Truncator is the toy logic.Truncator: it bounds a term's Compound
// nesting depth, the only way a term in this package's language can grow
// without bound (Vec<Vec<Vec<...>>> is the only shape that can recurse).
// An overflowing subterm is replaced by a fresh existential variable, the
// same generalization chalk's own truncation performs.
type Truncator struct{}

// Truncate implements logic.Truncator. It recognizes every shape the
// core hands it: a bare Goal, a goal-in-environment, and a substitution
// (ex.Subst, truncated after each answer is threaded into a pursuing
// strand); anything else passes through unexamined.
func (Truncator) Truncate(inferIface logic.InferenceTable, maxSize int, value any) (bool, any) {
	infer, _ := inferIface.(*Inference)

	switch v := value.(type) {
	case logic.InEnvironment[logic.Goal]:
		overflow, g := truncateGoal(infer, maxSize, v.Goal)
		return overflow, logic.InEnvironment[logic.Goal]{Environment: v.Environment, Goal: g}
	case Subst:
		return truncateSubst(infer, maxSize, v)
	case Term:
		overflow, t := truncateTerm(infer, maxSize, v)
		return overflow, t
	case logic.Goal:
		return truncateGoal(infer, maxSize, v)
	default:
		return false, value
	}
}

// termDepth counts Compound nesting: an Atom, Var, Bound or CanonVar is
// depth 0; Compound{Arg} is one more than its Arg's depth.
func termDepth(t Term) int {
	c, ok := t.(Compound)
	if !ok {
		return 0
	}
	return 1 + termDepth(c.Arg)
}

func truncateTerm(infer *Inference, maxSize int, t Term) (bool, Term) {
	if t == nil || termDepth(t) <= maxSize {
		return false, t
	}
	if infer == nil {
		return true, t
	}
	return true, infer.freshVar()
}

func truncateDomainGoal(infer *Inference, maxSize int, d logic.DomainGoal) (bool, logic.DomainGoal) {
	pred, ok := d.(Pred)
	if !ok {
		return false, d
	}
	overflow, arg := truncateTerm(infer, maxSize, pred.Arg)
	return overflow, Pred{Name: pred.Name, Arg: arg}
}

func truncateGoal(infer *Inference, maxSize int, g logic.Goal) (bool, logic.Goal) {
	switch v := g.(type) {
	case logic.LeafGoal:
		overflow, d := truncateDomainGoal(infer, maxSize, v.Domain)
		return overflow, logic.LeafGoal{Domain: d}
	case logic.ForAllGoal:
		overflow, inner := truncateGoal(infer, maxSize, v.Goal)
		return overflow, logic.ForAllGoal{Binders: v.Binders, Goal: inner}
	case logic.ExistsGoal:
		overflow, inner := truncateGoal(infer, maxSize, v.Goal)
		return overflow, logic.ExistsGoal{Binders: v.Binders, Goal: inner}
	case logic.ImpliesGoal:
		overflow, inner := truncateGoal(infer, maxSize, v.Goal)
		return overflow, logic.ImpliesGoal{Clauses: v.Clauses, Goal: inner}
	case logic.AndGoal:
		overflow := false
		goals := make([]logic.Goal, len(v.Goals))
		for i, sub := range v.Goals {
			var o bool
			o, goals[i] = truncateGoal(infer, maxSize, sub)
			overflow = overflow || o
		}
		return overflow, logic.AndGoal{Goals: goals}
	case logic.NotGoal:
		overflow, inner := truncateGoal(infer, maxSize, v.Goal)
		return overflow, logic.NotGoal{Goal: inner}
	default:
		return false, g
	}
}

func truncateSubst(infer *Inference, maxSize int, s Subst) (bool, Subst) {
	overflow := false
	out := make(Subst, len(s))
	for k, v := range s {
		var o bool
		o, out[k] = truncateTerm(infer, maxSize, v)
		overflow = overflow || o
	}
	return overflow, out
}
