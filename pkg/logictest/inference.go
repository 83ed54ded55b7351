package logictest

import (
	"reflect"

	"github.com/gitrdm/slgkanren/pkg/logic"
)

// Inference is the toy InferenceTable: a functional substitution plus a
// monotone variable counter. One is created per strand (see pkg/forest's
// newInfer factory); Clone gives a sibling strand its own independent
// copy.
type Inference struct {
	subst     Subst
	nextVar   uint64
	tableVars []Var
}

// NewInference returns an empty inference table.
func NewInference() *Inference {
	return &Inference{subst: make(Subst)}
}

func (in *Inference) freshVar() Var {
	v := Var{ID: in.nextVar}
	in.nextVar++
	return v
}

func (in *Inference) freshVars(n int) []Var {
	out := make([]Var, n)
	for i := range out {
		out[i] = in.freshVar()
	}
	return out
}

// IndexSubst maps a canonical placeholder's index to the concrete
// variable instantiated for it, as returned by FreshSubst.
type IndexSubst map[int]Var

// FreshSubst allocates one fresh variable per binder and records them as
// this inference table's own table variables, in order: later calls to
// Canonicalize on this table's answers walk exactly these variables to
// build the answer's canonical substitution.
func (in *Inference) FreshSubst(binders logic.Binders) logic.Subst {
	vars := in.freshVars(binders.Count)
	in.tableVars = vars
	idx := make(IndexSubst, len(vars))
	for i, v := range vars {
		idx[i] = v
	}
	return idx
}

// InstantiateUniverses instantiates a ForAll/Exists goal's own bound
// variables with fresh concrete variables, rewriting them throughout its
// body. The toy engine does not enforce the universe ordering constraint
// a real rigidity check would (documented simplification: the seed
// programs never rely on it).
func (in *Inference) InstantiateUniverses(goal any) any {
	g, ok := goal.(logic.Goal)
	if !ok {
		return goal
	}
	switch v := g.(type) {
	case logic.ForAllGoal:
		return substGoalBound(v.Goal, in.freshVars(v.Binders.Count))
	case logic.ExistsGoal:
		return substGoalBound(v.Goal, in.freshVars(v.Binders.Count))
	default:
		return g
	}
}

// Invert reports whether goal is ground under the current substitution;
// a negative literal with a free variable cannot be soundly universally
// quantified, so Invert signals floundering (ok=false) rather than
// guessing.
func (in *Inference) Invert(goal any) (any, bool) {
	g, ok := goal.(logic.Goal)
	if !ok {
		return nil, false
	}
	if hasFreeVar(g, in.subst) {
		return nil, false
	}
	return g, true
}

// Clone returns an independent copy sharing no mutable state with in.
func (in *Inference) Clone() logic.InferenceTable {
	return &Inference{
		subst:     in.subst.clone(),
		nextVar:   in.nextVar,
		tableVars: append([]Var(nil), in.tableVars...),
	}
}

// NormalizeDeep fully resolves value for debug display; never on the hot
// path.
func (in *Inference) NormalizeDeep(value any) any {
	switch v := value.(type) {
	case Term:
		return normalizeTerm(v, in.subst)
	case logic.InEnvironment[logic.Goal]:
		return logic.InEnvironment[logic.Goal]{Environment: v.Environment, Goal: canonGoal(v.Goal, in.subst, newVarNamer())}
	case logic.Goal:
		return canonGoal(v, in.subst, newVarNamer())
	default:
		return value
	}
}

// canonValue is the canonical form of a table goal: an environment
// paired with its goal tree, free variables replaced by CanonVar
// placeholders. It is the concrete dynamic type pkg/forest's
// GetOrCreateTableForUCanonicalGoal ultimately interns table keys by; it
// has no String method, so the key is its Go-syntax (%#v) formatting.
type canonValue = logic.InEnvironment[logic.Goal]

// canonBinding is one entry of a canonicalized answer substitution: the
// table's own canonical variable index, and what it resolved to.
type canonBinding struct {
	Index int
	Value Term
}

// canonSubstValue is the canonical form of an answer's (substitution,
// constraints) pair, as produced by canonicalizing the constrainedSubst
// bundle pkg/forest's pursueAnswer threads through Canonicalize.
type canonSubstValue struct {
	Bindings    []canonBinding
	Constraints int
}

func (c canonSubstValue) String() string {
	s := "{"
	for i, b := range c.Bindings {
		if i > 0 {
			s += ","
		}
		s += b.Value.String()
	}
	return s + "}"
}

// Canonicalize abstracts value over its free inference variables. It
// recognizes two shapes: a goal-in-environment (table goals and
// truncated/inverted subgoals), and the constrained-substitution bundle
// pkg/forest canonicalizes when producing an answer. Reflection is used
// for the latter because its concrete type is unexported in pkg/forest
// (by design: ExClause and its substitution bundle are forest-owned, not
// part of the logic IR), and the toy engine has no other way to name it.
func (in *Inference) Canonicalize(value any) logic.Canonical[any] {
	if env, ok := value.(logic.InEnvironment[any]); ok {
		namer := newVarNamer()
		var g logic.Goal
		if goal, ok := env.Goal.(logic.Goal); ok {
			g = canonGoal(goal, in.subst, namer)
		}
		result := canonValue{Environment: canonEnvironment(env.Environment, in.subst, namer), Goal: g}
		return logic.Canonical[any]{Value: result, Binders: logic.Binders{Count: namer.next}}
	}

	if bindings, constraints, ok := asConstrainedSubst(value); ok {
		namer := newVarNamer()
		out := make([]canonBinding, len(in.tableVars))
		for i, v := range in.tableVars {
			out[i] = canonBinding{Index: i, Value: resolveAndCanon(v, bindings, namer)}
		}
		return logic.Canonical[any]{
			Value:   canonSubstValue{Bindings: out, Constraints: len(constraints)},
			Binders: logic.Binders{Count: namer.next},
		}
	}

	return logic.Canonical[any]{Value: value}
}

// asConstrainedSubst extracts the Subst/Constraints fields of a
// constrainedSubst-shaped value by reflection, without being able to
// name its (unexported, forest-owned) concrete type.
func asConstrainedSubst(value any) (Subst, []any, bool) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Struct {
		return nil, nil, false
	}
	substField := rv.FieldByName("Subst")
	consField := rv.FieldByName("Constraints")
	if !substField.IsValid() || !consField.IsValid() {
		return nil, nil, false
	}
	subst, ok := substField.Interface().(logic.Subst)
	if !ok {
		return nil, nil, false
	}
	raw, ok := subst.(Subst)
	if !ok {
		return nil, nil, false
	}
	constraints, _ := consField.Interface().([]any)
	return raw, constraints, true
}

// identityUniverseMap is UCanonicalize's companion: the toy engine never
// distinguishes universes beyond the outermost one, so mapping a
// canonical value back into the caller's frame is the identity.
type identityUniverseMap struct{}

func (identityUniverseMap) MapFromCanonical(canonical any) any { return canonical }

// UCanonicalize further abstracts canonical over universes. The toy
// engine runs everything in a single universe, so this is a thin wrapper
// around Canonical's own fields plus the identity UniverseMap.
func (in *Inference) UCanonicalize(canonical logic.Canonical[any]) (logic.UCanonical[any], logic.UniverseMap) {
	return logic.UCanonical[any]{
		Value:     canonical.Value,
		Binders:   canonical.Binders,
		Universes: 1,
	}, identityUniverseMap{}
}

// IsTrivialSubstitution reports whether subst — a canonicalized answer
// substitution produced by Canonicalize — maps every one of the table's
// own binders back to a distinct canonical variable of its own: the
// identity, modulo renaming. A table with zero binders (a ground query)
// is vacuously trivial.
func (in *Inference) IsTrivialSubstitution(binders logic.Binders, subst logic.Subst) bool {
	if binders.Count == 0 {
		return true
	}
	cs, ok := subst.(canonSubstValue)
	if !ok {
		return false
	}
	if cs.Constraints != 0 {
		return false
	}
	seen := make(map[int]bool, binders.Count)
	for _, b := range cs.Bindings {
		if b.Index >= binders.Count {
			continue
		}
		v, ok := b.Value.(CanonVar)
		if !ok || seen[v.Index] {
			return false
		}
		seen[v.Index] = true
	}
	return len(seen) == binders.Count
}
