package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gitrdm/slgkanren/pkg/forest"
	"github.com/gitrdm/slgkanren/pkg/logictest"
)

var (
	maxQuanta  int
	maxAnswers int
	verbose    bool
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "Run one (or, with \"all\", every) seed scenario and print its answers",
		Long: `run loads one of spec.md §8's seed scenarios into a fresh Forest and
drives EnsureRootAnswer in a loop, printing each answer it produces.
QuantumExceeded is treated as "try again" up to --max-quanta times, the
caller-side approximation of a timeout the core itself does not provide.

Pass "all" (the default) to run every seed scenario in turn.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRun,
	}
	cmd.Flags().IntVar(&maxQuanta, "max-quanta", 1000, "give up on a query after this many QuantumExceeded yields")
	cmd.Flags().IntVar(&maxAnswers, "max-answers", 10, "stop requesting answers for a query after this many")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "emit structured forest tracing to stderr")
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	name := "all"
	if len(args) == 1 {
		name = args[0]
	}

	scenarios, err := selectScenarios(name)
	if err != nil {
		return err
	}

	logger := zap.NewNop()
	if verbose {
		l, buildErr := zap.NewDevelopment()
		if buildErr != nil {
			return errors.Wrap(buildErr, "building logger")
		}
		logger = l
	}

	for _, sc := range scenarios {
		fmt.Fprintf(cmd.OutOrStdout(), "=== %s ===\n%s\n", sc.Name, sc.Description)
		if err := driveScenario(cmd, sc, logger); err != nil {
			return errors.Wrapf(err, "scenario %q", sc.Name)
		}
		fmt.Fprintln(cmd.OutOrStdout())
	}
	return nil
}

func selectScenarios(name string) ([]logictest.Scenario, error) {
	all := logictest.AllScenarios()
	if name == "all" {
		return all, nil
	}
	for _, sc := range all {
		if sc.Name == name {
			return []logictest.Scenario{sc}, nil
		}
	}
	names := make([]string, len(all))
	for i, sc := range all {
		names[i] = sc.Name
	}
	sort.Strings(names)
	return nil, errors.Errorf("unknown scenario %q; known scenarios: %s", name, strings.Join(names, ", "))
}

func driveScenario(cmd *cobra.Command, sc logictest.Scenario, logger *zap.Logger) error {
	f := logictest.NewDefaultForest(sc.Program, forest.WithLogger(logger))
	table := logictest.RootTable(f, sc.Query)

	for i := 0; i < maxAnswers; i++ {
		answer := forest.AnswerIndex(i)
		quanta := 0
		var outcome forest.RootOutcome
		for {
			outcome = f.EnsureRootAnswer(table, answer)
			if outcome != forest.RootQuantumExceeded {
				break
			}
			quanta++
			if quanta >= maxQuanta {
				return errors.Errorf("exceeded %d quanta waiting for answer %d", maxQuanta, i)
			}
		}

		switch outcome {
		case forest.RootAnswerAvailable:
			fmt.Fprintf(cmd.OutOrStdout(), "  answer %d: %s\n", i, outcome)
		case forest.RootNoMoreSolutions:
			if i == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", outcome)
			}
			return nil
		default:
			return errors.Errorf("unexpected outcome %s for answer %d", outcome, i)
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  (stopped after %d answers)\n", maxAnswers)
	return nil
}
