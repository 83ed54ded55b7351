package logictest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gitrdm/slgkanren/pkg/logic"
	"github.com/gitrdm/slgkanren/pkg/logictest"
)

func TestProgramClausesFiltersByPredicateNameInInsertionOrder(t *testing.T) {
	p := logictest.NewProgram()
	p.AddClause(logictest.Pred{Name: "Sized", Arg: logictest.Compound{Tag: "Vec", Arg: logictest.Bound{Index: 0}}},
		logictest.PosLit(logictest.Pred{Name: "Sized", Arg: logictest.Bound{Index: 0}}))
	p.AddClause(logictest.Pred{Name: "Copy"})
	p.AddClause(logictest.Pred{Name: "Sized", Arg: logictest.Atom{Name: "i32"}})

	got := p.Clauses(logic.InEnvironment[logic.DomainGoal]{Goal: logictest.Pred{Name: "Sized"}})
	assert.Len(t, got, 2)
	assert.Equal(t, logictest.Pred{Name: "Sized", Arg: logictest.Compound{Tag: "Vec", Arg: logictest.Bound{Index: 0}}}, got[0].Head)
	assert.Equal(t, logictest.Pred{Name: "Sized", Arg: logictest.Atom{Name: "i32"}}, got[1].Head)
}

func TestProgramClausesOfUnknownPredicateIsEmpty(t *testing.T) {
	p := logictest.NewProgram()
	p.AddClause(logictest.Pred{Name: "P"})
	got := p.Clauses(logic.InEnvironment[logic.DomainGoal]{Goal: logictest.Pred{Name: "Q"}})
	assert.Empty(t, got)
}

func TestProgramIsCoinductiveOnlyAfterMarked(t *testing.T) {
	p := logictest.NewProgram()
	p.AddClause(logictest.Pred{Name: "WF", Arg: logictest.Atom{Name: "s"}})
	assert.False(t, p.IsCoinductive(logictest.Pred{Name: "WF"}))
	p.MarkCoinductive("WF")
	assert.True(t, p.IsCoinductive(logictest.Pred{Name: "WF"}))
	assert.False(t, p.IsCoinductive(logictest.Pred{Name: "Other"}))
}

func TestQueryAndNotQueryWrapLeafGoal(t *testing.T) {
	pred := logictest.Pred{Name: "P"}
	q := logictest.Query(pred)
	leaf, ok := q.Goal.(logic.LeafGoal)
	assert.True(t, ok)
	assert.Equal(t, pred, leaf.Domain)

	nq := logictest.NotQuery(pred)
	not, ok := nq.Goal.(logic.NotGoal)
	assert.True(t, ok)
	innerLeaf, ok := not.Goal.(logic.LeafGoal)
	assert.True(t, ok)
	assert.Equal(t, pred, innerLeaf.Domain)
}
