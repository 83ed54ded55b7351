package logictest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gitrdm/slgkanren/pkg/logic"
	"github.com/gitrdm/slgkanren/pkg/logictest"
)

func TestIsTrivialSubstitutionVacuousForGroundTable(t *testing.T) {
	in := logictest.NewInference()
	assert.True(t, in.IsTrivialSubstitution(logic.Binders{Count: 0}, "anything"))
}

func TestFreshSubstRecordsTableVars(t *testing.T) {
	in := logictest.NewInference()
	subst := in.FreshSubst(logic.Binders{Count: 2})
	idx, ok := subst.(logictest.IndexSubst)
	assert.True(t, ok)
	assert.Len(t, idx, 2)
	assert.NotEqual(t, idx[0], idx[1])
}

func TestCloneIsIndependentOfOriginal(t *testing.T) {
	in := logictest.NewInference()
	in.FreshSubst(logic.Binders{Count: 1})
	clone := in.Clone()

	cloned, ok := clone.(*logictest.Inference)
	assert.True(t, ok)
	assert.NotSame(t, in, cloned)
}

func TestUCanonicalizeSingleUniverse(t *testing.T) {
	in := logictest.NewInference()
	canon := in.Canonicalize(logic.InEnvironment[any]{Goal: logictest.Leaf(logictest.Pred{Name: "P"})})
	ucanon, umap := in.UCanonicalize(canon)
	assert.Equal(t, 1, ucanon.Universes)
	assert.Equal(t, ucanon.Value, umap.MapFromCanonical(ucanon.Value))
}

func TestInvertFlounderesOnFreeVariable(t *testing.T) {
	in := logictest.NewInference()
	v := logictest.Var{ID: 0}
	_, ok := in.Invert(logictest.Leaf(logictest.Pred{Name: "Copy", Arg: v}))
	assert.False(t, ok)
}

func TestInvertSucceedsOnGroundGoal(t *testing.T) {
	in := logictest.NewInference()
	goal := logictest.Leaf(logictest.Pred{Name: "Copy", Arg: logictest.Atom{Name: "i32"}})
	got, ok := in.Invert(goal)
	assert.True(t, ok)
	assert.Equal(t, goal, got)
}
