// Package logictest is the reference collaborator implementation that
// drives pkg/forest end to end: a ground-term language, syntactic
// unification without an occurs check, and the Program/ClauseSource/
// HHSimplifier/ResolventEngine/Truncator/InferenceTable glue around it.
// It exists for this repo's own tests and for cmd/slgdemo; it is not a
// general-purpose unifier and makes no attempt to be one.
package logictest

import "fmt"

// Term is the toy term language: an atom, a concrete (already
// instantiated) inference variable, a placeholder bound variable
// occurring inside a not-yet-instantiated quantifier or clause body, a
// canonical placeholder, or a single-argument Compound wrapper. There is
// no general functor system: Pred takes at most one Arg.
type Term interface {
	isTerm()
	String() string
}

// Atom is a ground constant, e.g. the "i32" in "i32: Sized".
type Atom struct {
	Name string
}

func (Atom) isTerm()          {}
func (a Atom) String() string { return a.Name }

// Var is a concrete inference variable, allocated fresh by an
// Inference's own counter. Two Vars are the same variable iff their IDs
// are equal.
type Var struct {
	ID uint64
}

func (Var) isTerm()          {}
func (v Var) String() string { return fmt.Sprintf("_%d", v.ID) }

// Bound is a placeholder for the i-th variable introduced by a quantifier
// (ForAllGoal/ExistsGoal) or the i-th variable of a Program clause
// template. It never appears in a substitution or an ex-clause:
// InstantiateUniverses (for quantifiers) and ResolventClause (for
// clauses returned by Program.Clauses) rewrite it into a concrete Var.
type Bound struct {
	Index int
}

func (Bound) isTerm()          {}
func (b Bound) String() string { return fmt.Sprintf("#%d", b.Index) }

// CanonVar is a canonical placeholder produced by Inference.Canonicalize:
// the i-th free variable encountered during a canonicalizing walk, in
// first-occurrence order. It is what table goals are keyed by, and what
// FreshSubst's index space refers to.
type CanonVar struct {
	Index int
}

func (CanonVar) isTerm()          {}
func (c CanonVar) String() string { return fmt.Sprintf("?%d", c.Index) }

// Compound is the one concession to structured terms: a single-argument
// wrapper such as "Vec<T>" in the trivial-cut seed scenario. It is not a
// general functor system — there is exactly one shape, grounded directly
// in what that scenario needs. Compounds may nest (Vec<Vec<T>>), and
// unification, canonicalization, instantiation and truncation recurse
// through every level of nesting.
type Compound struct {
	Tag string
	Arg Term
}

func (Compound) isTerm() {}
func (c Compound) String() string {
	if c.Arg == nil {
		return c.Tag
	}
	return fmt.Sprintf("%s<%s>", c.Tag, c.Arg.String())
}

// Pred is a single-argument predicate application, the toy language's
// only DomainGoal. Arg is nil for a nullary predicate (e.g. the seed
// scenarios' bare facts P, Q, A, B).
type Pred struct {
	Name string
	Arg  Term
}

func (Pred) IsDomainGoal() {}

func (p Pred) String() string {
	if p.Arg == nil {
		return p.Name
	}
	return fmt.Sprintf("%s(%s)", p.Name, p.Arg.String())
}

// Subst maps concrete Var IDs to the Term they are bound to. It is built
// up functionally: Unify never mutates its input, always returning a
// fresh map so sibling strands sharing an inference-table snapshot never
// alias each other's bindings.
type Subst map[uint64]Term

func (s Subst) clone() Subst {
	out := make(Subst, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// walk follows t through s until it reaches an atom, an unbound
// variable, or a bound variable placeholder (which s never binds).
func walk(t Term, s Subst) Term {
	for {
		v, ok := t.(Var)
		if !ok {
			return t
		}
		bound, ok := s[v.ID]
		if !ok {
			return t
		}
		t = bound
	}
}

// unify attempts to make a and b equal under s, without an occurs check:
// the seed programs are finite and their terms never self-reference, so
// the missing check cannot produce an infinite term in practice, and
// cycle detection at the goal/table level (pkg/forest's own job) is what
// this package exists to exercise.
func unify(a, b Term, s Subst) (Subst, bool) {
	a = walk(a, s)
	b = walk(b, s)

	if av, ok := a.(Var); ok {
		return bind(av, b, s), true
	}
	if bv, ok := b.(Var); ok {
		return bind(bv, a, s), true
	}

	switch at := a.(type) {
	case Atom:
		bt, ok := b.(Atom)
		return s, ok && at.Name == bt.Name
	case Compound:
		bt, ok := b.(Compound)
		if !ok || at.Tag != bt.Tag {
			return s, false
		}
		return unifyArgs(at.Arg, bt.Arg, s)
	default:
		return s, false
	}
}

func bind(v Var, t Term, s Subst) Subst {
	if same, ok := t.(Var); ok && same.ID == v.ID {
		return s
	}
	out := s.clone()
	out[v.ID] = t
	return out
}

// unifyArgs unifies two possibly-nil predicate arguments: both nil
// unifies trivially (a nullary predicate applied to itself), exactly one
// nil never unifies (arity mismatch is a programming error in the
// fixture, not a runtime condition to recover from).
func unifyArgs(a, b Term, s Subst) (Subst, bool) {
	if a == nil && b == nil {
		return s, true
	}
	if a == nil || b == nil {
		return s, false
	}
	return unify(a, b, s)
}
