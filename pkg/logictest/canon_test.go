package logictest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gitrdm/slgkanren/pkg/logic"
)

func TestClauseArityCountsHighestBound(t *testing.T) {
	clause := logic.ProgramClause{
		Head:       Pred{Name: "Sized", Arg: Compound{Tag: "Vec", Arg: Bound{Index: 0}}},
		Conditions: []logic.Literal{PosLit(Pred{Name: "Sized", Arg: Bound{Index: 2}})},
	}
	assert.Equal(t, 3, clauseArity(clause))
}

func TestClauseArityOfFactIsZero(t *testing.T) {
	clause := logic.ProgramClause{Head: Pred{Name: "P"}}
	assert.Equal(t, 0, clauseArity(clause))
}

func TestSubstTermBoundReplacesBoundPlaceholders(t *testing.T) {
	assign := []Var{{ID: 7}}
	term := Compound{Tag: "Vec", Arg: Bound{Index: 0}}
	got := substTermBound(term, assign)
	assert.Equal(t, Compound{Tag: "Vec", Arg: Var{ID: 7}}, got)
}

func TestInstantiateCanonTermReplacesCanonVar(t *testing.T) {
	idx := IndexSubst{0: Var{ID: 5}}
	got := instantiateCanonTerm(CanonVar{Index: 0}, idx)
	assert.Equal(t, Var{ID: 5}, got)
}

func TestInstantiateCanonTermLeavesGroundTermsAlone(t *testing.T) {
	got := instantiateCanonTerm(Atom{Name: "i32"}, IndexSubst{})
	assert.Equal(t, Atom{Name: "i32"}, got)
}

func TestInstantiateCanonTermRecursesIntoCompound(t *testing.T) {
	idx := IndexSubst{0: Var{ID: 9}}
	term := Compound{Tag: "Vec", Arg: CanonVar{Index: 0}}
	got := instantiateCanonTerm(term, idx)
	assert.Equal(t, Compound{Tag: "Vec", Arg: Var{ID: 9}}, got)
}

func TestCanonicalizeGroundGoalHasNoFreeVars(t *testing.T) {
	in := NewInference()
	goal := logic.InEnvironment[any]{Goal: Leaf(Pred{Name: "Sized", Arg: Atom{Name: "i32"}})}
	canon := in.Canonicalize(goal)
	assert.Equal(t, 0, canon.Binders.Count)
}

func TestCanonicalizeWalksBoundVariables(t *testing.T) {
	in := NewInference()
	v := in.freshVar()
	in.subst[v.ID] = Atom{Name: "i32"}
	goal := logic.InEnvironment[any]{Goal: Leaf(Pred{Name: "Sized", Arg: v})}
	canon := in.Canonicalize(goal)

	value, ok := canon.Value.(canonValue)
	assert.True(t, ok)
	leaf, ok := value.Goal.(logic.LeafGoal)
	assert.True(t, ok)
	pred, ok := leaf.Domain.(Pred)
	assert.True(t, ok)
	assert.Equal(t, Atom{Name: "i32"}, pred.Arg)
}

func TestCanonicalizeAssignsCanonVarToFreeVariable(t *testing.T) {
	in := NewInference()
	v := in.freshVar()
	goal := logic.InEnvironment[any]{Goal: Leaf(Pred{Name: "Sized", Arg: v})}
	canon := in.Canonicalize(goal)
	assert.Equal(t, 1, canon.Binders.Count)

	value := canon.Value.(canonValue)
	leaf := value.Goal.(logic.LeafGoal)
	pred := leaf.Domain.(Pred)
	assert.Equal(t, CanonVar{Index: 0}, pred.Arg)
}
