package logictest

import "github.com/gitrdm/slgkanren/pkg/logic"

// Scenario bundles a named program and query together, the unit spec.md
// §8's seed scenarios and this package's own tests are both built from.
type Scenario struct {
	Name        string
	Description string
	Program     *Program
	Query       logic.Goal
}

// UnitFactScenario: { P. }, query P. One unconditional answer, then
// NoMoreSolutions.
func UnitFactScenario() Scenario {
	p := NewProgram()
	p.AddClause(Pred{Name: "P"})
	return Scenario{
		Name:        "unit-fact",
		Description: "P. | ?- P.",
		Program:     p,
		Query:       Leaf(Pred{Name: "P"}),
	}
}

// TrivialCutScenario: { forall<T> Vec<T>: Sized :- T: Sized. i32: Sized. },
// query Vec<i32>: Sized. Exactly one trivial answer; the green cut empties
// the table's strand pool once it is produced.
func TrivialCutScenario() Scenario {
	p := NewProgram()
	p.AddClause(
		Pred{Name: "Sized", Arg: Compound{Tag: "Vec", Arg: Bound{Index: 0}}},
		PosLit(Pred{Name: "Sized", Arg: Bound{Index: 0}}),
	)
	p.AddClause(Pred{Name: "Sized", Arg: Atom{Name: "i32"}})
	return Scenario{
		Name:        "trivial-cut",
		Description: "forall<T> Vec<T>: Sized :- T: Sized. i32: Sized. | ?- Vec<i32>: Sized.",
		Program:     p,
		Query:       Leaf(Pred{Name: "Sized", Arg: Compound{Tag: "Vec", Arg: Atom{Name: "i32"}}}),
	}
}

// CoinductiveLoopScenario: { WF(s) :- WF(s). }, WF marked coinductive,
// query WF(s). One unconditional answer.
func CoinductiveLoopScenario() Scenario {
	p := NewProgram()
	p.AddClause(Pred{Name: "WF", Arg: Atom{Name: "s"}}, PosLit(Pred{Name: "WF", Arg: Atom{Name: "s"}}))
	p.MarkCoinductive("WF")
	return Scenario{
		Name:        "coinductive-loop",
		Description: "coinductive WF(s) :- WF(s). | ?- WF(s).",
		Program:     p,
		Query:       Leaf(Pred{Name: "WF", Arg: Atom{Name: "s"}}),
	}
}

// InductiveLoopScenario is CoinductiveLoopScenario's non-coinductive
// twin: the identical program and query, without the coinductive
// attribute, produces NoMoreSolutions instead.
func InductiveLoopScenario() Scenario {
	p := NewProgram()
	p.AddClause(Pred{Name: "WF", Arg: Atom{Name: "s"}}, PosLit(Pred{Name: "WF", Arg: Atom{Name: "s"}}))
	return Scenario{
		Name:        "inductive-loop",
		Description: "WF(s) :- WF(s). (not coinductive) | ?- WF(s).",
		Program:     p,
		Query:       Leaf(Pred{Name: "WF", Arg: Atom{Name: "s"}}),
	}
}

// NegationSucceedsScenario: { Q. }, query not(R) where R has no clauses.
// One unconditional answer.
func NegationSucceedsScenario() Scenario {
	p := NewProgram()
	p.AddClause(Pred{Name: "Q"})
	return Scenario{
		Name:        "negation-succeeds",
		Description: "Q. | ?- not(R). (R has no clauses)",
		Program:     p,
		Query:       logic.NotGoal{Goal: Leaf(Pred{Name: "R"})},
	}
}

// NegationFailsScenario: { Q. }, query not(Q). NoMoreSolutions.
func NegationFailsScenario() Scenario {
	p := NewProgram()
	p.AddClause(Pred{Name: "Q"})
	return Scenario{
		Name:        "negation-fails",
		Description: "Q. | ?- not(Q).",
		Program:     p,
		Query:       logic.NotGoal{Goal: Leaf(Pred{Name: "Q"})},
	}
}

// MutualNegationScenario: { A :- not(B). B :- not(A). }, non-coinductive,
// query A. One conditional answer delayed on not(B); neither A nor B
// ever produces an unconditional answer.
func MutualNegationScenario() Scenario {
	p := NewProgram()
	p.AddClause(Pred{Name: "A"}, NegLit(Pred{Name: "B"}))
	p.AddClause(Pred{Name: "B"}, NegLit(Pred{Name: "A"}))
	return Scenario{
		Name:        "mutual-negation-a",
		Description: "A :- not(B). B :- not(A). | ?- A.",
		Program:     p,
		Query:       Leaf(Pred{Name: "A"}),
	}
}

// MutualNegationBScenario is MutualNegationScenario's query B twin, over
// the same program shape.
func MutualNegationBScenario() Scenario {
	p := NewProgram()
	p.AddClause(Pred{Name: "A"}, NegLit(Pred{Name: "B"}))
	p.AddClause(Pred{Name: "B"}, NegLit(Pred{Name: "A"}))
	return Scenario{
		Name:        "mutual-negation-b",
		Description: "A :- not(B). B :- not(A). | ?- B.",
		Program:     p,
		Query:       Leaf(Pred{Name: "B"}),
	}
}

// FlounderingNegativeScenario: query not(?T: Copy) with ?T genuinely
// free. The program needs no clauses for Copy at all: the subgoal
// flounders before any clause lookup is attempted. The resulting answer
// is conditional on CannotProveDelay.
func FlounderingNegativeScenario() Scenario {
	p := NewProgram()
	infer := NewInference()
	freeVar := infer.freshVar()
	return Scenario{
		Name:        "floundering-negative",
		Description: "(no clauses for Copy) | ?- not(?T: Copy).",
		Program:     p,
		Query:       logic.NotGoal{Goal: Leaf(Pred{Name: "Copy", Arg: freeVar})},
	}
}

// AllScenarios lists every seed scenario, in spec order.
func AllScenarios() []Scenario {
	return []Scenario{
		UnitFactScenario(),
		TrivialCutScenario(),
		CoinductiveLoopScenario(),
		InductiveLoopScenario(),
		NegationSucceedsScenario(),
		NegationFailsScenario(),
		MutualNegationScenario(),
		MutualNegationBScenario(),
		FlounderingNegativeScenario(),
	}
}
