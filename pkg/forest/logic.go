package forest

import (
	"go.uber.org/zap"

	"github.com/gitrdm/slgkanren/pkg/logic"
)

// EnsureRootAnswer is the one externally visible operation: it asks for
// answer of table, recursing and scheduling strands as needed, and
// cooperatively yielding (RootQuantumExceeded) when a quantum's worth of
// work has been done without settling the question. The caller
// re-invokes to make further progress; RootNoMoreSolutions is terminal
// for this (table, answer) pair.
//
// Preconditions: the stack is empty (no EnsureRootAnswer call may nest
// inside another); answer is either already present or equal to the
// table's NextAnswerIndexFor (monotone requests only). Both are enforced
// with a panic, not a returned error: violating either is a caller bug,
// not a condition the evaluator can recover from.
func (f *Forest) EnsureRootAnswer(table TableIndex, answer AnswerIndex) RootOutcome {
	if !f.stack.IsEmpty() {
		panic(contractViolation("forest: EnsureRootAnswer called with a non-empty stack (depth %d)", f.stack.Len()))
	}

	switch r := f.ensureAnswerRecursively(table, answer).(type) {
	case recAnswerAvailable:
		return RootAnswerAvailable
	case recNoMoreSolutions:
		return RootNoMoreSolutions
	case recQuantumExceeded:
		return RootQuantumExceeded
	default:
		panic(contractViolation("forest: EnsureRootAnswer got an unexpected result %T at the root; Coinductive and Cycle must never escape an empty stack", r))
	}
}

// ensureAnswerRecursively is the internal recursive contract behind
// EnsureRootAnswer: it additionally reports Coinductive (a cyclic
// dependency on a coinductive goal, interpreted as true) and Cycle (a
// dependency on a strictly-higher stack frame) to its caller, which only
// ever is another strand pursuit, never the root.
func (f *Forest) ensureAnswerRecursively(table TableIndex, answer AnswerIndex) ensureRecursiveResult {
	t := f.table(table)

	if _, ok := t.Answers.Get(answer); ok {
		return recAnswerAvailable{}
	}
	if next := t.Answers.NextAnswerIndex(); answer != next {
		panic(contractViolation("forest: ensureAnswerRecursively requested answer %d of table %d but its next answer is %d; clients must request answers monotonically", answer, table, next))
	}

	if depth, active := f.stack.IsActive(table); active {
		if f.topOfStackIsCoinductiveFrom(depth) {
			return recCoinductive{}
		}
		return recCycle{Minimums: Minimums{Positive: f.stack.Frame(depth).DFN, Negative: DFNMax}}
	}

	dfn := f.dfn.allocate()
	depth := f.stack.Push(table, dfn)
	ok, fail := f.pursueNextStrand(depth)
	f.stack.Pop()

	if ok {
		return recAnswerAvailable{}
	}
	switch sf := fail.(type) {
	case rsfNoMoreSolutions:
		return recNoMoreSolutions{}
	case rsfQuantumExceeded:
		f.config.Metrics.QuantumYielded()
		return recQuantumExceeded{}
	case rsfCycle:
		return recCycle{Minimums: sf.Minimums}
	default:
		panic(contractViolation("forest: pursueNextStrand returned unrecognized failure %T", fail))
	}
}

// topOfStackIsCoinductiveFrom reports whether every frame from depth to
// the top of the stack answers a coinductive goal.
func (f *Forest) topOfStackIsCoinductiveFrom(depth StackIndex) bool {
	for d := depth; d < StackIndex(f.stack.Len()); d++ {
		if !f.table(f.stack.Frame(d).Table).Coinductive {
			return false
		}
	}
	return true
}

// pursueNextStrand repeatedly pops a strand from the table at depth and
// pursues it, stashing any that cycle against a higher frame, until
// either one produces an answer, the queue yields quantum exhaustion, or
// the queue empties out — at which point any stashed cyclic strands are
// handed to cycle for resolution and scheduling is retried.
func (f *Forest) pursueNextStrand(depth StackIndex) (bool, recursiveSearchFail) {
	tableIdx := f.stack.Frame(depth).Table

	for {
		var cyclicStrands []*Strand
		cyclicMinimums := MinimumsMax()

		for {
			strand, ok := f.table(tableIdx).Strands.PopNext()
			if !ok {
				break
			}

			produced, fail := f.pursueStrandRecursively(depth, strand)
			if produced {
				f.table(tableIdx).Strands.Extend(cyclicStrands)
				return true, nil
			}

			sf, isCycle := fail.(sfCycle)
			if !isCycle {
				f.table(tableIdx).Strands.Extend(cyclicStrands)
				return false, rsfQuantumExceeded{}
			}
			cyclicStrands = append(cyclicStrands, sf.Strand)
			cyclicMinimums.TakeMin(sf.Minimums)
		}

		if len(cyclicStrands) == 0 {
			return false, rsfNoMoreSolutions{}
		}

		fail := f.cycle(depth, cyclicStrands, cyclicMinimums)
		if fail == nil {
			continue
		}
		return false, fail
	}
}

// cycle decides, for a batch of strands that all cycled back to
// somewhere at or above depth, whether the subtree rooted here is now
// closed (no further answers possible), self-contained but pending on
// delayed negative literals (resolved by converting them to delayed
// literals and retrying), or must still propagate further up the stack.
func (f *Forest) cycle(depth StackIndex, strands []*Strand, mins Minimums) recursiveSearchFail {
	frame := f.stack.Frame(depth)

	switch {
	case mins.Positive == frame.DFN && mins.Negative == DFNMax:
		f.clearStrandsAfterCycle(strands)
		f.config.Metrics.CycleResolved()
		return rsfNoMoreSolutions{}

	case mins.Positive >= frame.DFN && mins.Negative >= frame.DFN:
		f.table(frame.Table).Strands.Extend(f.delayStrandsAfterCycle(strands))
		f.config.Metrics.CycleResolved()
		return nil

	default:
		f.table(frame.Table).Strands.Extend(strands)
		return rsfCycle{Minimums: mins}
	}
}

// clearStrandsAfterCycle discards strands and recursively discards every
// strand reachable by following their selected subgoal tables: this
// subtree is closed, so none of them can ever contribute another answer.
func (f *Forest) clearStrandsAfterCycle(strands []*Strand) {
	visited := make(map[TableIndex]bool)
	var walk func([]*Strand)
	walk = func(ss []*Strand) {
		for _, s := range ss {
			if s.Selected == nil || visited[s.Selected.SubgoalTable] {
				continue
			}
			tbl := s.Selected.SubgoalTable
			visited[tbl] = true
			walk(f.table(tbl).Strands.Take())
		}
	}
	walk(strands)
}

// delayStrandsAfterCycle walks the strand graph reachable from strands
// unconditionally, visiting every selected subgoal's table regardless of
// polarity; only the conversion to a delayed literal is gated on
// polarity. A currently-selected negative literal becomes a delayed
// literal, clearing its selected subgoal so pursueStrand will pick a new
// one (or produce an answer) next time the strand is popped. Positive
// selections are traversed the same way but left otherwise untouched:
// only negative edges are what made this cycle self-contained-but-pending
// in the first place, but a positively-selected strand may still lead
// into a table whose own strands need visiting.
func (f *Forest) delayStrandsAfterCycle(strands []*Strand) []*Strand {
	visited := make(map[TableIndex]bool)
	var walk func([]*Strand) []*Strand
	walk = func(ss []*Strand) []*Strand {
		out := make([]*Strand, 0, len(ss))
		for _, s := range ss {
			if s.Selected != nil {
				tbl := s.Selected.SubgoalTable
				literal := s.ExClause.Subgoals[s.Selected.SubgoalIndex]
				if literal.Polarity == logic.Negative {
					ex := removeSubgoal(s.ExClause, s.Selected.SubgoalIndex)
					ex.DelayedLiterals = append(ex.DelayedLiterals, NegativeDelay{Table: tbl})
					s.ExClause = ex
					s.Selected = nil
				}

				if !visited[tbl] {
					visited[tbl] = true
					f.table(tbl).Strands.Extend(walk(f.table(tbl).Strands.Take()))
				}
			}
			out = append(out, s)
		}
		return out
	}
	return walk(strands)
}

// pursueStrandRecursively wraps pursueStrand in the stack-growth seam;
// it is the mutually-recursive edge between strand pursuit and
// ensureAnswerRecursively that, on a host without growable goroutine
// stacks, would need to transfer to a fresh stack segment.
func (f *Forest) pursueStrandRecursively(depth StackIndex, strand *Strand) (bool, strandFail) {
	var ok bool
	var fail strandFail
	maybeGrowStack(func() {
		ok, fail = f.pursueStrand(depth, strand)
	})
	return ok, fail
}

// pursueStrand selects a subgoal if strand doesn't already have one —
// always the last subgoal in the list, a fixed policy carried over
// unchanged from the reference implementation (open question: a better
// selection heuristic is future work, but this is the one seam where it
// would be swapped in) — and dispatches on its polarity once selected.
func (f *Forest) pursueStrand(depth StackIndex, strand *Strand) (bool, strandFail) {
	for strand.Selected == nil {
		if len(strand.ExClause.Subgoals) == 0 {
			return f.pursueAnswer(depth, strand)
		}

		lastIdx := len(strand.ExClause.Subgoals) - 1
		literal := strand.ExClause.Subgoals[lastIdx]

		tableIdx, universes, ok := f.getOrCreateTableForSubgoal(strand.Infer, literal)
		if !ok {
			strand.ExClause = appendCannotProve(removeSubgoal(strand.ExClause, lastIdx))
			continue
		}

		strand.Selected = &SelectedSubgoal{
			SubgoalIndex: lastIdx,
			SubgoalTable: tableIdx,
			UniverseMap:  universes,
			AnswerIndex:  0,
		}
	}

	literal := strand.ExClause.Subgoals[strand.Selected.SubgoalIndex]
	if literal.Polarity == logic.Negative {
		return f.pursueNegativeSubgoal(depth, strand, *strand.Selected)
	}
	return f.pursuePositiveSubgoal(depth, strand, *strand.Selected)
}

// pursueAnswer canonicalizes the ex-clause's substitution and
// constraints together, dedups and sorts its delayed literals, and
// pushes the resulting answer into the table at depth.
//
// Trivial-answer cut ("green cut"): a table that has produced one
// unconditional, unconstrained answer whose substitution is trivial for
// the table's own goal can never usefully produce another — any further
// strand would only ever re-derive facts already implied by this one (a
// classic case is an input-only query like `Vec<i32>: Sized`, where
// every clause that could still fire is subsumed by the answer already
// found). Dropping the remaining strands here is mandatory for
// performance, not merely an optimization: without it, some recursive
// programs never terminate even though they have exactly one answer.
func (f *Forest) pursueAnswer(depth StackIndex, strand *Strand) (bool, strandFail) {
	tableIdx := f.stack.Frame(depth).Table
	t := f.table(tableIdx)

	canonical := strand.Infer.Canonicalize(constrainedSubst{
		Subst:       strand.ExClause.Subst,
		Constraints: strand.ExClause.Constraints,
	})
	delayed := NewDelayedLiteralSet(strand.ExClause.DelayedLiterals)
	answer := Answer{Subst: canonical.Value, DelayedLiterals: delayed}

	if _, added := t.Answers.Push(answer); !added {
		return false, sfNoSolution{}
	}

	conditional := !answer.IsUnconditional()
	f.config.Metrics.AnswerProduced(conditional)
	f.config.Logger.Debug("answer produced",
		zap.Int("table", int(tableIdx)),
		zap.Bool("conditional", conditional),
	)

	if !conditional && strand.Infer.IsTrivialSubstitution(t.Goal.Binders, answer.Subst) {
		t.Strands.Take()
	}

	return true, nil
}

// pursuePositiveSubgoal implements NFTD's Positive Return: wait for an
// answer of the selected subgoal table, enqueue a sibling strand
// pursuing the answer after this one (there may be more), and thread
// the answer's substitution into this strand's ex-clause.
func (f *Forest) pursuePositiveSubgoal(depth StackIndex, strand *Strand, sel SelectedSubgoal) (bool, strandFail) {
	switch r := f.ensureAnswerRecursively(sel.SubgoalTable, sel.AnswerIndex).(type) {
	case recCoinductive:
		tableIdx := f.stack.Frame(depth).Table
		if !f.table(tableIdx).Coinductive || !f.table(sel.SubgoalTable).Coinductive {
			panic(contractViolation("forest: coinductive cycle reached through non-coinductive table (table %d, subgoal table %d)", tableIdx, sel.SubgoalTable))
		}
		strand.ExClause = removeSubgoal(strand.ExClause, sel.SubgoalIndex)
		strand.Selected = nil
		return f.pursueStrand(depth, strand)

	case recNoMoreSolutions:
		return false, sfNoSolution{}

	case recQuantumExceeded:
		f.table(f.stack.Frame(depth).Table).Strands.Push(strand)
		return false, sfQuantumExceeded{}

	case recCycle:
		return false, sfCycle{Strand: strand, Minimums: r.Minimums}
	}

	sibling := strand.clone()
	sibling.Selected = &SelectedSubgoal{
		SubgoalIndex: sel.SubgoalIndex,
		SubgoalTable: sel.SubgoalTable,
		UniverseMap:  sel.UniverseMap,
		AnswerIndex:  sel.AnswerIndex + 1,
	}
	f.table(f.stack.Frame(depth).Table).Strands.Push(sibling)

	answer, _ := f.table(sel.SubgoalTable).Answers.Get(sel.AnswerIndex)
	tableGoal := sel.UniverseMap.MapFromCanonical(f.table(sel.SubgoalTable).Goal.Value)
	answerSubst := sel.UniverseMap.MapFromCanonical(answer.Subst)

	literal := strand.ExClause.Subgoals[sel.SubgoalIndex]
	ex, ok := f.applyAnswerSubst(strand.Infer, strand.ExClause, literal, tableGoal, answerSubst)
	if !ok {
		return false, sfNoSolution{}
	}
	ex = removeSubgoal(ex, sel.SubgoalIndex)

	if len(answer.DelayedLiterals) > 0 {
		// SLG FACTOR: the answer we just imported was itself
		// conditional, so our own answer is conditioned on it too.
		ex.DelayedLiterals = append(ex.DelayedLiterals, PositiveDelay{Table: sel.SubgoalTable, CanonicalSubst: answer.Subst})
	}
	_, truncatedSubst := f.truncator.Truncate(strand.Infer, f.config.MaxSize, ex.Subst)
	ex.Subst = truncatedSubst

	strand.ExClause = ex
	strand.Selected = nil
	return f.pursueStrand(depth, strand)
}

// pursueNegativeSubgoal implements NFTD's Delaying: negation succeeds
// when the subgoal table has no more solutions, fails when it has an
// unconditional one, and delays (records a DelayedLiteral) when the
// subgoal's only answer so far is itself conditional.
func (f *Forest) pursueNegativeSubgoal(depth StackIndex, strand *Strand, sel SelectedSubgoal) (bool, strandFail) {
	var delayed *DelayedLiteral

	switch r := f.ensureAnswerRecursively(sel.SubgoalTable, sel.AnswerIndex).(type) {
	case recAnswerAvailable:
		answer, _ := f.table(sel.SubgoalTable).Answers.Get(sel.AnswerIndex)
		if answer.IsUnconditional() {
			return false, sfNoSolution{}
		}
		d := DelayedLiteral(NegativeDelay{Table: sel.SubgoalTable})
		delayed = &d

	case recCoinductive:
		return false, sfNoSolution{}

	case recCycle:
		dfn := f.stack.Frame(depth).DFN
		return false, sfCycle{
			Strand:   strand,
			Minimums: Minimums{Positive: dfn, Negative: r.Minimums.MinimumOfPosAndNeg()},
		}

	case recNoMoreSolutions:
		delayed = nil

	case recQuantumExceeded:
		f.table(f.stack.Frame(depth).Table).Strands.Push(strand)
		return false, sfQuantumExceeded{}
	}

	ex := removeSubgoal(strand.ExClause, sel.SubgoalIndex)
	if delayed != nil {
		ex.DelayedLiterals = append(ex.DelayedLiterals, *delayed)
	}
	strand.ExClause = ex
	strand.Selected = nil
	return f.pursueStrand(depth, strand)
}

// removeSubgoal returns a copy of ex with the subgoal at idx removed.
func removeSubgoal(ex ExClause, idx int) ExClause {
	out := ex.clone()
	out.Subgoals = append(out.Subgoals[:idx:idx], out.Subgoals[idx+1:]...)
	return out
}
