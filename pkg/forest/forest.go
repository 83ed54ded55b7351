package forest

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/gitrdm/slgkanren/pkg/logic"
)

// Forest is the process-wide state for one query evaluation: the
// program (immutable), the table interner, the stack, and the DFN
// counter. Its lifetime is a single top-level query; teardown is
// wholesale — nothing is shared or persisted across Forests.
type Forest struct {
	id uuid.UUID

	config     Config
	program    logic.Program
	clauses    logic.ClauseSource
	simplifier HHSimplifier
	resolvent  ResolventEngine
	truncator  logic.Truncator
	newInfer   func() logic.InferenceTable

	tables   *Arena[*Table]
	interner map[string]TableIndex
	stack    *Stack
	dfn      dfnAllocator
}

// NewForest builds a Forest around the given program and collaborators.
// newInfer must return a fresh, empty inference table each time it is
// called; Forest calls it once per initial strand attempt of a new table
// (once per candidate clause for a leaf goal, once for a compound goal),
// to instantiate that table's own goal independently of whatever
// inference state the caller used to build the query.
func NewForest(program logic.Program, clauses logic.ClauseSource, simplifier HHSimplifier, resolvent ResolventEngine, truncator logic.Truncator, newInfer func() logic.InferenceTable, opts ...Option) *Forest {
	return &Forest{
		id:         uuid.New(),
		config:     newConfig(opts),
		program:    program,
		clauses:    clauses,
		simplifier: simplifier,
		resolvent:  resolvent,
		truncator:  truncator,
		newInfer:   newInfer,
		tables:     NewArena[*Table](),
		interner:   make(map[string]TableIndex),
		stack:      NewStack(),
	}
}

// ID returns the forest's correlation id, useful for tying log lines
// from concurrently-running, independent queries back together; the
// forest itself remains single-threaded internally.
func (f *Forest) ID() uuid.UUID {
	return f.id
}

func (f *Forest) table(idx TableIndex) *Table {
	return f.tables.Get(int(idx))
}

// NextAnswerIndexFor reports the answer index a caller should request
// next for table, i.e. the value the monotone ensure_root_answer
// precondition requires.
func (f *Forest) NextAnswerIndexFor(table TableIndex) AnswerIndex {
	return f.table(table).Answers.NextAnswerIndex()
}

// GetOrCreateTableForUCanonicalGoal interns goal, creating a new table
// (and pushing its initial strands) the first time it is seen.
func (f *Forest) GetOrCreateTableForUCanonicalGoal(goal logic.UCanonical[any]) TableIndex {
	key := canonicalKey(goal)
	if idx, ok := f.interner[key]; ok {
		return idx
	}

	coinductive := f.isCoinductiveGoal(goalValue(goal))
	t := newTable(goal, coinductive)
	idx := TableIndex(f.tables.Push(t))
	f.interner[key] = idx
	f.config.Metrics.TableCreated()
	f.config.Logger.Debug("table created",
		zap.Int("table", int(idx)),
		zap.Bool("coinductive", coinductive),
	)

	f.pushInitialStrands(idx)
	return idx
}

// goalValue extracts the logic.Goal this table answers from its
// u-canonical form, if the collaborator's Canonicalize/UCanonicalize
// round-trip preserved an InEnvironment[logic.Goal] as documented by the
// InferenceTable contract (it only abstracts free variables, never the
// outer shape). Tables created directly from a fully-formed goal (the
// root of a query) always satisfy this; returns nil for a malformed
// collaborator implementation, which simply yields a goal with no
// coinductive attribute and no initial strands rather than panicking.
func goalValue(goal logic.UCanonical[any]) logic.Goal {
	env, ok := goal.Value.(logic.InEnvironment[logic.Goal])
	if !ok {
		return nil
	}
	return env.Goal
}

// isCoinductiveGoal unwraps quantifiers and implications to find the
// leaf domain goal a coinductive attribute could apply to. Compound
// goals without a single leaf (And, Not, or a nil/unrecognized goal) are
// never themselves coinductive — coinduction is a property of predicate
// heads, not of connectives.
func (f *Forest) isCoinductiveGoal(goal logic.Goal) bool {
	switch g := goal.(type) {
	case logic.LeafGoal:
		return f.program.IsCoinductive(g.Domain)
	case logic.ForAllGoal:
		return f.isCoinductiveGoal(g.Goal)
	case logic.ExistsGoal:
		return f.isCoinductiveGoal(g.Goal)
	case logic.ImpliesGoal:
		return f.isCoinductiveGoal(g.Goal)
	default:
		return false
	}
}

// pushInitialStrands implements NFTD's New Subgoal + Program Clause
// Resolution: a leaf domain goal enumerates applicable program clauses
// and gets one strand per clause whose resolvent is satisfiable; any
// other (compound, HH) goal is reduced to a single ex-clause by the
// configured HHSimplifier and gets exactly one strand.
func (f *Forest) pushInitialStrands(idx TableIndex) {
	t := f.table(idx)
	env, ok := t.Goal.Value.(logic.InEnvironment[logic.Goal])
	if !ok {
		return
	}

	if leaf, isLeaf := env.Goal.(logic.LeafGoal); isLeaf {
		domainGoalEnv := logic.InEnvironment[logic.DomainGoal]{
			Environment: env.Environment,
			Goal:        leaf.Domain,
		}
		clauses := f.clauses.Clauses(domainGoalEnv)
		for _, clause := range clauses {
			infer := f.newInfer()
			instEnv, binders, ok := f.instantiateTableGoal(infer, t.Goal)
			if !ok {
				continue
			}
			instLeaf, ok := instEnv.Goal.(logic.LeafGoal)
			if !ok {
				continue
			}
			subst := infer.FreshSubst(binders)
			if ex, satisfiable := f.resolventClause(infer, instLeaf.Domain, subst, clause); satisfiable {
				t.Strands.Push(&Strand{Infer: infer, ExClause: ex})
			}
		}
		return
	}

	infer := f.newInfer()
	instEnv, binders, ok := f.instantiateTableGoal(infer, t.Goal)
	if !ok {
		return
	}
	subst := infer.FreshSubst(binders)
	if ex, satisfiable := f.simplifier.SimplifyHHGoal(infer, subst, instEnv).Get(); satisfiable {
		t.Strands.Push(&Strand{Infer: infer, ExClause: ex})
	}
}

// instantiateTableGoal replaces goal's universe placeholders with fresh
// universes scoped to infer before its existential binders are freshened,
// per NFTD's table-creation step (chalk's push_initial_strands:
// table_goal := infer.instantiate_universes(&table_ref.table_goal)). It
// runs once per strand attempt, ahead of FreshSubst, exactly as chalk
// does — not once per table.
func (f *Forest) instantiateTableGoal(infer logic.InferenceTable, goal logic.UCanonical[any]) (logic.InEnvironment[logic.Goal], logic.Binders, bool) {
	instantiated, ok := infer.InstantiateUniverses(goal).(logic.UCanonical[any])
	if !ok {
		instantiated = goal
	}
	env, ok := instantiated.Value.(logic.InEnvironment[logic.Goal])
	if !ok {
		return logic.InEnvironment[logic.Goal]{}, logic.Binders{}, false
	}
	return env, instantiated.Binders, true
}

// getOrCreateTableForSubgoal abstracts subgoal per its polarity and
// interns (or creates) the table it names. It reports ok=false when a
// negative literal flounders (free existentials that cannot be inverted,
// or truncation overflow on the inverted goal) — that is the only way
// this operation fails; positive literals are always truncatable and
// never flounder.
func (f *Forest) getOrCreateTableForSubgoal(infer logic.InferenceTable, literal logic.Literal) (TableIndex, logic.UniverseMap, bool) {
	var ucanonical logic.UCanonical[any]
	var universes logic.UniverseMap

	if literal.Polarity == logic.Negative {
		abstracted, um, ok := f.abstractNegativeLiteral(infer, literal.Goal)
		if !ok {
			f.config.Metrics.Floundered()
			return 0, nil, false
		}
		ucanonical, universes = abstracted, um
	} else {
		ucanonical, universes = f.abstractPositiveLiteral(infer, literal.Goal)
	}

	return f.GetOrCreateTableForUCanonicalGoal(ucanonical), universes, true
}
