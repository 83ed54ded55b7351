package logictest

import (
	"github.com/gitrdm/slgkanren/pkg/forest"
	"github.com/gitrdm/slgkanren/pkg/logic"
)

// NewDefaultForest wires program together with this package's
// Simplifier, Resolvent, and Truncator: the whole collaborator set a
// caller needs to drive pkg/forest end to end over the toy term
// language.
func NewDefaultForest(program *Program, opts ...forest.Option) *forest.Forest {
	newInfer := func() logic.InferenceTable { return NewInference() }
	return forest.NewForest(program, program, Simplifier{}, Resolvent{}, Truncator{}, newInfer, opts...)
}

// RootTable interns a root table for goal over a fresh Inference: the
// same canonicalize/u-canonicalize dance pkg/forest performs internally
// for every subgoal, run once here for the query the caller actually
// wants answers to.
func RootTable(f *forest.Forest, goal logic.Goal) forest.TableIndex {
	infer := NewInference()
	canonical := infer.Canonicalize(logic.InEnvironment[any]{Goal: goal})
	ucanonical, _ := infer.UCanonicalize(canonical)
	return f.GetOrCreateTableForUCanonicalGoal(ucanonical)
}
