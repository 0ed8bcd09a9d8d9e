package pace

import "errors"

var (
	// ErrMalformedHeader indicates a missing or unparsable "n m t" header, or
	// an edge count that disagrees with the adjacency lines.
	ErrMalformedHeader = errors.New("pace: malformed header")

	// ErrMalformedLine indicates an adjacency line with a non-integer token,
	// a repeated edge, or more adjacency lines than vertices.
	ErrMalformedLine = errors.New("pace: malformed line")

	// ErrVertexOutOfRange indicates a vertex id outside [1, n].
	ErrVertexOutOfRange = errors.New("pace: vertex out of range")
)
