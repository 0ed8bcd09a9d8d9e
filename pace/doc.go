// Package pace reads and writes the PACE 2022 directed feedback vertex set
// formats.
//
// An instance is a METIS-style adjacency list: after optional "%" comment
// lines, a header "n m t" gives the vertex count, the edge count and a zero
// flag; then line i (1-based) lists the heads of the edges leaving vertex i.
// An empty line is a vertex without out-edges. A solution lists one vertex
// per line. Ids are 1-based on disk and 0-based in memory.
//
// Instances may be gzip or zstd compressed; NewReader and Open detect the
// compression from the leading magic bytes.
package pace
