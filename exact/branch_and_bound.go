package exact

import (
	"context"
	"slices"

	"github.com/xosmig/breaking-the-cycle/algorithm"
	"github.com/xosmig/breaking-the-cycle/core"
)

// BranchAndBound adapts the exact solver to the iterative algorithm
// contract. The search is not resumable: one Step runs it to completion.
type BranchAndBound struct {
	g        core.AdjacencyList
	opts     []Option
	stats    Counters
	solution []int
	done     bool
}

var (
	_ algorithm.TerminatingIterativeAlgorithm = (*BranchAndBound)(nil)
	_ algorithm.ContextStepper                = (*BranchAndBound)(nil)
)

// NewBranchAndBound prepares a solver for g. Nothing runs until Step.
func NewBranchAndBound(g core.AdjacencyList, opts ...Option) *BranchAndBound {
	return &BranchAndBound{g: g, opts: opts}
}

// Step runs the search. Without an upper bound a solution always exists;
// failing to find one is a defect and panics.
func (b *BranchAndBound) Step() {
	_ = b.StepContext(context.Background())
}

// StepContext is Step that gives up when ctx is done. A cancelled step
// leaves the algorithm incomplete, so it can be stepped again.
func (b *BranchAndBound) StepContext(ctx context.Context) error {
	if b.done {
		return nil
	}
	sol, ok, err := SolveContext(ctx, b.g, &b.stats, b.opts...)
	if err != nil {
		return err
	}
	if !ok && resolveOptions(b.opts).bound < 0 {
		panic("exact: BranchAndBound found no solution without an upper bound")
	}
	b.solution, b.done = sol, true

	return nil
}

// IsCompleted reports whether the search has finished. With an upper bound
// a finished search may still have no solution.
func (b *BranchAndBound) IsCompleted() bool {
	return b.done
}

// Solved reports whether the finished search found a solution.
func (b *BranchAndBound) Solved() bool {
	return b.done && b.solution != nil
}

// BestKnownSolution returns a copy of the solution, or nil.
func (b *BranchAndBound) BestKnownSolution() []int {
	return slices.Clone(b.solution)
}

// Stats returns the counters accumulated over all steps.
func (b *BranchAndBound) Stats() Counters {
	return b.stats
}
