package logictest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/slgkanren/pkg/forest"
	"github.com/gitrdm/slgkanren/pkg/logictest"
)

const maxQuanta = 1000

// driveToNoMoreSolutions requests answers 0, 1, 2, ... from table until
// NoMoreSolutions, treating QuantumExceeded as "try again" (the core
// yields one whenever a strand dies without producing an answer, as the
// negation-fails scenario's strand does). It returns how many
// AnswerAvailable outcomes it saw.
func driveToNoMoreSolutions(t *testing.T, f *forest.Forest, table forest.TableIndex) int {
	t.Helper()
	answers := 0
	for i := 0; i < 10; i++ {
		outcome := ensureWithRetry(t, f, table, forest.AnswerIndex(i))
		switch outcome {
		case forest.RootAnswerAvailable:
			answers++
		case forest.RootNoMoreSolutions:
			return answers
		default:
			t.Fatalf("unexpected outcome %s for answer %d", outcome, i)
		}
	}
	t.Fatalf("did not reach NoMoreSolutions within 10 answers")
	return answers
}

func ensureWithRetry(t *testing.T, f *forest.Forest, table forest.TableIndex, answer forest.AnswerIndex) forest.RootOutcome {
	t.Helper()
	for q := 0; q < maxQuanta; q++ {
		outcome := f.EnsureRootAnswer(table, answer)
		if outcome != forest.RootQuantumExceeded {
			return outcome
		}
	}
	t.Fatalf("exceeded %d quanta waiting for answer %d", maxQuanta, answer)
	return forest.RootQuantumExceeded
}

func TestSeedScenarios(t *testing.T) {
	cases := []struct {
		scenario logictest.Scenario
		answers  int
	}{
		{logictest.UnitFactScenario(), 1},
		{logictest.TrivialCutScenario(), 1},
		{logictest.CoinductiveLoopScenario(), 1},
		{logictest.InductiveLoopScenario(), 0},
		{logictest.NegationSucceedsScenario(), 1},
		{logictest.NegationFailsScenario(), 0},
		{logictest.MutualNegationScenario(), 1},
		{logictest.MutualNegationBScenario(), 1},
		{logictest.FlounderingNegativeScenario(), 1},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.scenario.Name, func(t *testing.T) {
			f := logictest.NewDefaultForest(tc.scenario.Program)
			table := logictest.RootTable(f, tc.scenario.Query)

			got := driveToNoMoreSolutions(t, f, table)
			assert.Equal(t, tc.answers, got)
		})
	}
}

// TestEnsureRootAnswerIsIdempotent re-requests an already-produced
// answer index and checks the outcome is unchanged and that the next
// index still reports NoMoreSolutions (spec.md §8's round-trip invariant).
func TestEnsureRootAnswerIsIdempotent(t *testing.T) {
	sc := logictest.UnitFactScenario()
	f := logictest.NewDefaultForest(sc.Program)
	table := logictest.RootTable(f, sc.Query)

	first := ensureWithRetry(t, f, table, 0)
	require.Equal(t, forest.RootAnswerAvailable, first)

	second := ensureWithRetry(t, f, table, 0)
	assert.Equal(t, forest.RootAnswerAvailable, second)

	assert.Equal(t, forest.RootNoMoreSolutions, ensureWithRetry(t, f, table, 1))
}

// TestSameProgramTwoForestsAgree checks spec.md §8's determinism
// invariant: the same program and query run on two independently built
// forests produce the same sequence of outcomes.
func TestSameProgramTwoForestsAgree(t *testing.T) {
	sc := logictest.TrivialCutScenario()

	f1 := logictest.NewDefaultForest(sc.Program)
	table1 := logictest.RootTable(f1, sc.Query)
	got1 := driveToNoMoreSolutions(t, f1, table1)

	sc2 := logictest.TrivialCutScenario()
	f2 := logictest.NewDefaultForest(sc2.Program)
	table2 := logictest.RootTable(f2, sc2.Query)
	got2 := driveToNoMoreSolutions(t, f2, table2)

	assert.Equal(t, got1, got2)
}
