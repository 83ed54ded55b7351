package forest

import "github.com/pkg/errors"

// RootOutcome is the result of the one externally visible operation,
// EnsureRootAnswer. QuantumExceeded is a cooperative yield: the caller
// may re-invoke to make further progress. NoMoreSolutions is terminal
// for that (table, answer).
type RootOutcome int

const (
	RootAnswerAvailable RootOutcome = iota
	RootNoMoreSolutions
	RootQuantumExceeded
)

func (o RootOutcome) String() string {
	switch o {
	case RootAnswerAvailable:
		return "AnswerAvailable"
	case RootNoMoreSolutions:
		return "NoMoreSolutions"
	case RootQuantumExceeded:
		return "QuantumExceeded"
	default:
		return "unknown"
	}
}

// ensureRecursiveResult is ensureAnswerRecursively's result: a closed
// sum type matched exhaustively at every call site, never an error.
type ensureRecursiveResult interface {
	isEnsureRecursiveResult()
}

type recAnswerAvailable struct{}
type recCoinductive struct{}
type recNoMoreSolutions struct{}
type recQuantumExceeded struct{}
type recCycle struct{ Minimums Minimums }

func (recAnswerAvailable) isEnsureRecursiveResult() {}
func (recCoinductive) isEnsureRecursiveResult()     {}
func (recNoMoreSolutions) isEnsureRecursiveResult() {}
func (recQuantumExceeded) isEnsureRecursiveResult() {}
func (recCycle) isEnsureRecursiveResult()           {}

// recursiveSearchFail is pursueNextStrand's failure channel: a subset of
// ensureRecursiveResult excluding Coinductive, which only ever arises
// from the active-stack check in ensureAnswerRecursively itself.
type recursiveSearchFail interface {
	isRecursiveSearchFail()
}

type rsfNoMoreSolutions struct{}
type rsfQuantumExceeded struct{}
type rsfCycle struct{ Minimums Minimums }

func (rsfNoMoreSolutions) isRecursiveSearchFail() {}
func (rsfQuantumExceeded) isRecursiveSearchFail() {}
func (rsfCycle) isRecursiveSearchFail()           {}

// strandFail is pursueStrand's (and its callees') failure channel.
type strandFail interface {
	isStrandFail()
}

type sfNoSolution struct{}
type sfQuantumExceeded struct{}
type sfCycle struct {
	Strand   *Strand
	Minimums Minimums
}

func (sfNoSolution) isStrandFail()     {}
func (sfQuantumExceeded) isStrandFail() {}
func (sfCycle) isStrandFail()          {}

// contractViolation reports a genuine programming error: a collaborator
// or caller broke a documented precondition (e.g. requesting a
// non-monotone answer index, or ensure_root_answer called with a
// nonempty stack). These are not control signals and are never expected
// to occur when the contracts in pkg/logic are honored; callers that hit
// one have a bug to fix, so the core panics with a wrapped, stack-traced
// error rather than returning one more Result type for every call site
// to thread through.
func contractViolation(format string, args ...any) error {
	return errors.Errorf(format, args...)
}
