package exact

import "errors"

var (
	// ErrTooManyVertices is the panic value (wrapped) when a graph with more
	// than 64 vertices reaches the fixed-width engine.
	ErrTooManyVertices = errors.New("exact: graph exceeds 64 vertices")

	// ErrNotAcyclic reports that removing a solution leaves a cycle.
	ErrNotAcyclic = errors.New("exact: residual graph has a cycle")

	// ErrInvalidSolution reports an unknown or repeated vertex id in a solution.
	ErrInvalidSolution = errors.New("exact: invalid solution")
)
