package pace

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/xosmig/breaking-the-cycle/core"
)

// WriteGraph writes g as an instance with 1-based ids.
func WriteGraph(w io.Writer, g core.AdjacencyList) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d 0\n", g.NumVertices(), g.NumEdges())
	var buf []byte
	for u := range g.Vertices() {
		buf = buf[:0]
		for v := range g.OutNeighbors(u) {
			if len(buf) > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendInt(buf, int64(v+1), 10)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return fmt.Errorf("pace: WriteGraph: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("pace: WriteGraph: %w", err)
	}

	return nil
}

// WriteSolution writes one 1-based vertex id per line.
func WriteSolution(w io.Writer, solution []int) error {
	bw := bufio.NewWriter(w)
	for _, v := range solution {
		bw.WriteString(strconv.Itoa(v + 1))
		bw.WriteByte('\n')
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("pace: WriteSolution: %w", err)
	}

	return nil
}
