package exact_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xosmig/breaking-the-cycle/algorithm"
	"github.com/xosmig/breaking-the-cycle/builder"
	"github.com/xosmig/breaking-the-cycle/exact"
)

func TestBranchAndBound_Step(t *testing.T) {
	g := edges([2]int{0, 1}, [2]int{1, 0}, [2]int{2, 2})
	bb := exact.NewBranchAndBound(g)
	assert.False(t, bb.IsCompleted())
	assert.Nil(t, bb.BestKnownSolution())

	bb.Step()
	require.True(t, bb.IsCompleted())
	require.True(t, bb.Solved())
	sol := bb.BestKnownSolution()
	assert.Equal(t, []int{0, 2}, sol)

	// the returned slice is a copy
	sol[0] = 99
	assert.Equal(t, []int{0, 2}, bb.BestKnownSolution())

	// later steps are no-ops
	nodes := bb.Stats().Nodes
	bb.Step()
	assert.Equal(t, nodes, bb.Stats().Nodes)
}

func TestBranchAndBound_Run(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(4), builder.Cycle(5))
	require.NoError(t, err)

	sol, err := algorithm.Run(context.Background(), exact.NewBranchAndBound(g))
	require.NoError(t, err)
	assert.Len(t, sol, 4)
	assert.NoError(t, exact.Verify(g, sol))
}

func TestBranchAndBound_RunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	bb := exact.NewBranchAndBound(edges([2]int{0, 1}, [2]int{1, 0}))

	sol, err := algorithm.Run(ctx, bb)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, sol)
	assert.False(t, bb.IsCompleted())
}

func TestBranchAndBound_InfeasibleBound(t *testing.T) {
	bb := exact.NewBranchAndBound(edges([2]int{0, 0}, [2]int{1, 1}), exact.WithUpperBound(1))
	bb.Step()
	assert.True(t, bb.IsCompleted())
	assert.False(t, bb.Solved())
	assert.Nil(t, bb.BestKnownSolution())
}
