// Package builder assembles deterministic directed test graphs on top of
// core.Graph: cycles, paths, complete digraphs, self-loops and seeded G(n,p)
// samples.
//
// Constructors append their vertices after the existing ones, so
//
//	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4), builder.SelfLoops(2))
//
// is the disjoint union of a 4-cycle (ids 0..3) and two looped vertices
// (ids 4, 5), whose minimum feedback vertex set has three vertices.
//
// Stochastic constructors require WithSeed or WithRand; the same seed and the
// same constructor order always produce the same graph.
package builder
