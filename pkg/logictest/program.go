package logictest

import "github.com/gitrdm/slgkanren/pkg/logic"

// Program is a flat, in-memory Horn-clause program: clause templates
// (heads/conditions may still contain Bound placeholders, instantiated
// fresh by the ResolventEngine on each use) plus a coinductive-predicate
// marker set. It satisfies both logic.Program and logic.ClauseSource.
type Program struct {
	clauses     []logic.ProgramClause
	coinductive map[string]bool
}

// NewProgram returns an empty program.
func NewProgram() *Program {
	return &Program{coinductive: make(map[string]bool)}
}

// AddClause appends `head :- conditions` to the program. Pass no
// conditions for a fact.
func (p *Program) AddClause(head Pred, conditions ...logic.Literal) {
	p.clauses = append(p.clauses, logic.ProgramClause{Head: head, Conditions: conditions})
}

// MarkCoinductive declares every Pred named name to be coinductive: a
// cyclic dependency on it is interpreted as true rather than as failure.
func (p *Program) MarkCoinductive(name string) {
	p.coinductive[name] = true
}

// IsCoinductive implements logic.Program.
func (p *Program) IsCoinductive(goal logic.DomainGoal) bool {
	pred, ok := goal.(Pred)
	if !ok {
		return false
	}
	return p.coinductive[pred.Name]
}

// Clauses implements logic.ClauseSource: every clause template whose
// head predicate matches goal's, in the order they were added to the
// program (the only source of answer-ordering determinism this package
// provides).
func (p *Program) Clauses(goal logic.InEnvironment[logic.DomainGoal]) []logic.ProgramClause {
	pred, ok := goal.Goal.(Pred)
	if !ok {
		return nil
	}
	var out []logic.ProgramClause
	for _, c := range p.clauses {
		headPred, ok := c.Head.(Pred)
		if ok && headPred.Name == pred.Name {
			out = append(out, c)
		}
	}
	return out
}

// Leaf wraps pred as a bare leaf Goal.
func Leaf(pred Pred) logic.Goal {
	return logic.LeafGoal{Domain: pred}
}

// PosLit builds a positive literal proving pred.
func PosLit(pred Pred) logic.Literal {
	return logic.PositiveLiteral(logic.InEnvironment[logic.Goal]{Goal: Leaf(pred)})
}

// NegLit builds a negative literal refuting pred.
func NegLit(pred Pred) logic.Literal {
	return logic.NegativeLiteral(logic.InEnvironment[logic.Goal]{Goal: Leaf(pred)})
}

// Query builds the top-level InEnvironment[logic.Goal] pkg/forest needs
// to intern a root table for pred.
func Query(pred Pred) logic.InEnvironment[logic.Goal] {
	return logic.InEnvironment[logic.Goal]{Goal: Leaf(pred)}
}

// NotQuery builds a root query for not(pred).
func NotQuery(pred Pred) logic.InEnvironment[logic.Goal] {
	return logic.InEnvironment[logic.Goal]{Goal: logic.NotGoal{Goal: Leaf(pred)}}
}
