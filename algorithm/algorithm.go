// Package algorithm defines the step-wise contract shared by solvers and a
// driver that runs a terminating solver under a context.
package algorithm

import (
	"context"
	"fmt"
)

// IterativeAlgorithm improves a solution one step at a time.
type IterativeAlgorithm interface {
	// Step performs one unit of work.
	Step()
	// BestKnownSolution returns a copy of the current solution, or nil when
	// none is known yet.
	BestKnownSolution() []int
}

// TerminatingIterativeAlgorithm is an IterativeAlgorithm that eventually
// reports completion.
type TerminatingIterativeAlgorithm interface {
	IterativeAlgorithm
	IsCompleted() bool
}

// ContextStepper is implemented by algorithms whose steps can be cancelled.
type ContextStepper interface {
	StepContext(ctx context.Context) error
}

// Run steps alg until it completes or ctx is done. On cancellation it
// returns the best solution known so far with the wrapped context error.
func Run(ctx context.Context, alg TerminatingIterativeAlgorithm) ([]int, error) {
	cs, cancellable := alg.(ContextStepper)
	for !alg.IsCompleted() {
		if err := ctx.Err(); err != nil {
			return alg.BestKnownSolution(), fmt.Errorf("algorithm: Run: %w", err)
		}
		if !cancellable {
			alg.Step()
			continue
		}
		if err := cs.StepContext(ctx); err != nil {
			return alg.BestKnownSolution(), fmt.Errorf("algorithm: Run: %w", err)
		}
	}

	return alg.BestKnownSolution(), nil
}

// RunSteps performs at most n steps of alg, stopping early when alg is a
// TerminatingIterativeAlgorithm that completes, and returns the best
// solution known afterwards.
func RunSteps(alg IterativeAlgorithm, n int) []int {
	term, terminating := alg.(TerminatingIterativeAlgorithm)
	for i := 0; i < n; i++ {
		if terminating && term.IsCompleted() {
			break
		}
		alg.Step()
	}

	return alg.BestKnownSolution()
}
