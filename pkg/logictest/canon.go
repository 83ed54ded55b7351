package logictest

import "github.com/gitrdm/slgkanren/pkg/logic"

// varNamer assigns sequential canonical indices to concrete Vars in
// first-occurrence order, the same convention logic.Canonical's Binders
// describes: the i-th distinct free variable encountered becomes
// CanonVar{i}.
type varNamer struct {
	indices map[uint64]int
	next    int
}

func newVarNamer() *varNamer {
	return &varNamer{indices: make(map[uint64]int)}
}

func (n *varNamer) indexFor(id uint64) int {
	if i, ok := n.indices[id]; ok {
		return i
	}
	i := n.next
	n.indices[id] = i
	n.next++
	return i
}

// resolveAndCanon walks t through raw to its current binding, then
// replaces any Var it still finds with its canonical placeholder.
func resolveAndCanon(t Term, raw Subst, namer *varNamer) Term {
	if t == nil {
		return nil
	}
	resolved := walk(t, raw)
	switch v := resolved.(type) {
	case Var:
		return CanonVar{Index: namer.indexFor(v.ID)}
	case Compound:
		return Compound{Tag: v.Tag, Arg: resolveAndCanon(v.Arg, raw, namer)}
	default:
		return resolved
	}
}

func canonDomainGoal(d logic.DomainGoal, raw Subst, namer *varNamer) logic.DomainGoal {
	pred, ok := d.(Pred)
	if !ok {
		return d
	}
	return Pred{Name: pred.Name, Arg: resolveAndCanon(pred.Arg, raw, namer)}
}

func canonGoal(g logic.Goal, raw Subst, namer *varNamer) logic.Goal {
	switch v := g.(type) {
	case logic.LeafGoal:
		return logic.LeafGoal{Domain: canonDomainGoal(v.Domain, raw, namer)}
	case logic.ForAllGoal:
		return logic.ForAllGoal{Binders: v.Binders, Goal: canonGoal(v.Goal, raw, namer)}
	case logic.ExistsGoal:
		return logic.ExistsGoal{Binders: v.Binders, Goal: canonGoal(v.Goal, raw, namer)}
	case logic.ImpliesGoal:
		clauses := make([]logic.ProgramClause, len(v.Clauses))
		for i, c := range v.Clauses {
			clauses[i] = canonProgramClause(c, raw, namer)
		}
		return logic.ImpliesGoal{Clauses: clauses, Goal: canonGoal(v.Goal, raw, namer)}
	case logic.AndGoal:
		goals := make([]logic.Goal, len(v.Goals))
		for i, sub := range v.Goals {
			goals[i] = canonGoal(sub, raw, namer)
		}
		return logic.AndGoal{Goals: goals}
	case logic.NotGoal:
		return logic.NotGoal{Goal: canonGoal(v.Goal, raw, namer)}
	default:
		return nil
	}
}

func canonLiteral(l logic.Literal, raw Subst, namer *varNamer) logic.Literal {
	return logic.Literal{
		Polarity: l.Polarity,
		Goal: logic.InEnvironment[logic.Goal]{
			Environment: canonEnvironment(l.Goal.Environment, raw, namer),
			Goal:        canonGoal(l.Goal.Goal, raw, namer),
		},
	}
}

func canonProgramClause(pc logic.ProgramClause, raw Subst, namer *varNamer) logic.ProgramClause {
	conditions := make([]logic.Literal, len(pc.Conditions))
	for i, cond := range pc.Conditions {
		conditions[i] = canonLiteral(cond, raw, namer)
	}
	return logic.ProgramClause{Head: canonDomainGoal(pc.Head, raw, namer), Conditions: conditions}
}

func canonEnvironment(env logic.Environment, raw Subst, namer *varNamer) logic.Environment {
	clauses, ok := env.([]logic.ProgramClause)
	if !ok {
		return env
	}
	out := make([]logic.ProgramClause, len(clauses))
	for i, c := range clauses {
		out[i] = canonProgramClause(c, raw, namer)
	}
	return out
}

// substGoalBound rewrites every Bound{i} reachable through a quantifier
// or clause body into assign[i], the concrete variable instantiation
// picked for that position.
func substGoalBound(g logic.Goal, assign []Var) logic.Goal {
	switch v := g.(type) {
	case logic.LeafGoal:
		return logic.LeafGoal{Domain: substDomainGoalBound(v.Domain, assign)}
	case logic.ForAllGoal:
		return logic.ForAllGoal{Binders: v.Binders, Goal: substGoalBound(v.Goal, assign)}
	case logic.ExistsGoal:
		return logic.ExistsGoal{Binders: v.Binders, Goal: substGoalBound(v.Goal, assign)}
	case logic.ImpliesGoal:
		return logic.ImpliesGoal{Clauses: v.Clauses, Goal: substGoalBound(v.Goal, assign)}
	case logic.AndGoal:
		goals := make([]logic.Goal, len(v.Goals))
		for i, sub := range v.Goals {
			goals[i] = substGoalBound(sub, assign)
		}
		return logic.AndGoal{Goals: goals}
	case logic.NotGoal:
		return logic.NotGoal{Goal: substGoalBound(v.Goal, assign)}
	default:
		return g
	}
}

func substDomainGoalBound(d logic.DomainGoal, assign []Var) logic.DomainGoal {
	pred, ok := d.(Pred)
	if !ok {
		return d
	}
	return Pred{Name: pred.Name, Arg: substTermBound(pred.Arg, assign)}
}

func substTermBound(t Term, assign []Var) Term {
	switch v := t.(type) {
	case Bound:
		if v.Index < 0 || v.Index >= len(assign) {
			return t
		}
		return assign[v.Index]
	case Compound:
		return Compound{Tag: v.Tag, Arg: substTermBound(v.Arg, assign)}
	default:
		return t
	}
}

func substLiteralBound(l logic.Literal, assign []Var) logic.Literal {
	return logic.Literal{
		Polarity: l.Polarity,
		Goal: logic.InEnvironment[logic.Goal]{
			Environment: l.Goal.Environment,
			Goal:        substGoalBound(l.Goal.Goal, assign),
		},
	}
}

// termHasFreeVar reports whether t, resolved through raw, still contains
// an unbound Var anywhere in its (possibly nested Compound) structure.
func termHasFreeVar(t Term, raw Subst) bool {
	if t == nil {
		return false
	}
	switch v := walk(t, raw).(type) {
	case Var:
		return true
	case Compound:
		return termHasFreeVar(v.Arg, raw)
	default:
		return false
	}
}

// hasFreeVar reports whether g, after resolving current bindings in raw,
// still contains an unbound Var: the condition under which a negative
// literal cannot be soundly inverted.
func hasFreeVar(g logic.Goal, raw Subst) bool {
	switch v := g.(type) {
	case logic.LeafGoal:
		pred, ok := v.Domain.(Pred)
		if !ok {
			return false
		}
		return termHasFreeVar(pred.Arg, raw)
	case logic.ForAllGoal:
		return hasFreeVar(v.Goal, raw)
	case logic.ExistsGoal:
		return hasFreeVar(v.Goal, raw)
	case logic.ImpliesGoal:
		return hasFreeVar(v.Goal, raw)
	case logic.AndGoal:
		for _, sub := range v.Goals {
			if hasFreeVar(sub, raw) {
				return true
			}
		}
		return false
	case logic.NotGoal:
		return hasFreeVar(v.Goal, raw)
	default:
		return false
	}
}

// normalizeTerm fully resolves t for debug display.
func normalizeTerm(t Term, raw Subst) Term {
	return walk(t, raw)
}

// termMaxBound returns one past the highest Bound index reachable in t.
func termMaxBound(t Term) int {
	switch v := t.(type) {
	case Bound:
		return v.Index + 1
	case Compound:
		return termMaxBound(v.Arg)
	default:
		return 0
	}
}

func domainGoalMaxBound(d logic.DomainGoal) int {
	pred, ok := d.(Pred)
	if !ok || pred.Arg == nil {
		return 0
	}
	return termMaxBound(pred.Arg)
}

// goalMaxBound returns one past the highest Bound index reachable in g,
// not descending into a nested quantifier's own binder scope (ForAll and
// Exists instantiate their own bound variables independently, via
// InstantiateUniverses, rather than sharing the enclosing clause's).
func goalMaxBound(g logic.Goal) int {
	switch v := g.(type) {
	case logic.LeafGoal:
		return domainGoalMaxBound(v.Domain)
	case logic.AndGoal:
		max := 0
		for _, sub := range v.Goals {
			if m := goalMaxBound(sub); m > max {
				max = m
			}
		}
		return max
	case logic.NotGoal:
		return goalMaxBound(v.Goal)
	case logic.ImpliesGoal:
		return goalMaxBound(v.Goal)
	default:
		return 0
	}
}

// clauseArity returns how many distinct Bound indices a clause's head
// and conditions use: exactly how many fresh variables ResolventClause
// must allocate to instantiate it.
func clauseArity(c logic.ProgramClause) int {
	max := domainGoalMaxBound(c.Head)
	for _, cond := range c.Conditions {
		if m := goalMaxBound(cond.Goal.Goal); m > max {
			max = m
		}
	}
	return max
}

// instantiateCanonTerm replaces a table's canonical placeholders
// (CanonVar{i}) with the concrete variable idx instantiated for binder
// i, the inverse of the canonicalizing walk Canonicalize performs.
func instantiateCanonTerm(t Term, idx IndexSubst) Term {
	switch v := t.(type) {
	case CanonVar:
		if concrete, ok := idx[v.Index]; ok {
			return concrete
		}
		return t
	case Compound:
		return Compound{Tag: v.Tag, Arg: instantiateCanonTerm(v.Arg, idx)}
	default:
		return t
	}
}

func instantiateCanonDomainGoal(d logic.DomainGoal, idx IndexSubst) logic.DomainGoal {
	pred, ok := d.(Pred)
	if !ok {
		return d
	}
	return Pred{Name: pred.Name, Arg: instantiateCanonTerm(pred.Arg, idx)}
}

// instantiateCanonGoal replaces every CanonVar a table's goal was
// canonicalized to with the concrete variable FreshSubst instantiated
// for it, throughout the goal tree. A nested quantifier's own Bound
// placeholders are left untouched here; InstantiateUniverses rewrites
// those independently when SimplifyHHGoal descends into them.
func instantiateCanonGoal(g logic.Goal, idx IndexSubst) logic.Goal {
	switch v := g.(type) {
	case logic.LeafGoal:
		return logic.LeafGoal{Domain: instantiateCanonDomainGoal(v.Domain, idx)}
	case logic.ForAllGoal:
		return logic.ForAllGoal{Binders: v.Binders, Goal: instantiateCanonGoal(v.Goal, idx)}
	case logic.ExistsGoal:
		return logic.ExistsGoal{Binders: v.Binders, Goal: instantiateCanonGoal(v.Goal, idx)}
	case logic.ImpliesGoal:
		return logic.ImpliesGoal{Clauses: v.Clauses, Goal: instantiateCanonGoal(v.Goal, idx)}
	case logic.AndGoal:
		goals := make([]logic.Goal, len(v.Goals))
		for i, sub := range v.Goals {
			goals[i] = instantiateCanonGoal(sub, idx)
		}
		return logic.AndGoal{Goals: goals}
	case logic.NotGoal:
		return logic.NotGoal{Goal: instantiateCanonGoal(v.Goal, idx)}
	default:
		return g
	}
}
