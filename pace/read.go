package pace

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xosmig/breaking-the-cycle/core"
)

// maxLineBytes bounds a single adjacency line.
const maxLineBytes = 64 << 20

// Read parses an uncompressed instance from r.
func Read(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), maxLineBytes)

	var (
		g      *core.Graph
		n, m   int
		lineNo int
		vertex int // 0-based id owning the next adjacency line
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "%") {
			continue
		}
		if g == nil {
			if line == "" {
				continue
			}
			var err error
			if n, m, err = parseHeader(line); err != nil {
				return nil, fmt.Errorf("pace: line %d: %w", lineNo, err)
			}
			g = core.NewGraph(n)
			continue
		}

		if vertex >= n {
			if line == "" {
				continue
			}
			return nil, fmt.Errorf("pace: line %d: adjacency of vertex %d but n=%d: %w", lineNo, vertex+1, n, ErrMalformedLine)
		}
		for _, tok := range strings.Fields(line) {
			head, err := strconv.Atoi(tok)
			if err != nil {
				return nil, fmt.Errorf("pace: line %d: token %q: %w", lineNo, tok, ErrMalformedLine)
			}
			if head < 1 || head > n {
				return nil, fmt.Errorf("pace: line %d: vertex %d not in [1,%d]: %w", lineNo, head, n, ErrVertexOutOfRange)
			}
			if err = g.AddEdge(vertex, head-1); err != nil {
				if errors.Is(err, core.ErrDuplicateEdge) {
					return nil, fmt.Errorf("pace: line %d: %w: %w", lineNo, ErrMalformedLine, err)
				}
				return nil, fmt.Errorf("pace: line %d: %w", lineNo, err)
			}
		}
		vertex++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pace: read: %w", err)
	}
	if g == nil {
		return nil, fmt.Errorf("pace: no header: %w", ErrMalformedHeader)
	}
	if g.NumEdges() != m {
		return nil, fmt.Errorf("pace: header declares %d edges, found %d: %w", m, g.NumEdges(), ErrMalformedHeader)
	}

	return g, nil
}

// parseHeader parses "n m" or "n m 0".
func parseHeader(line string) (n, m int, err error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || len(fields) > 3 {
		return 0, 0, fmt.Errorf("header %q: %w", line, ErrMalformedHeader)
	}
	if n, err = strconv.Atoi(fields[0]); err != nil || n < 0 {
		return 0, 0, fmt.Errorf("header %q: vertex count: %w", line, ErrMalformedHeader)
	}
	if m, err = strconv.Atoi(fields[1]); err != nil || m < 0 {
		return 0, 0, fmt.Errorf("header %q: edge count: %w", line, ErrMalformedHeader)
	}
	if len(fields) == 3 && fields[2] != "0" {
		return 0, 0, fmt.Errorf("header %q: weighted instances are not supported: %w", line, ErrMalformedHeader)
	}

	return n, m, nil
}

// Decode reads a possibly compressed instance from r.
func Decode(r io.Reader) (*core.Graph, error) {
	rc, err := NewReader(r)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return Read(rc)
}

// Open reads the possibly compressed instance stored at path.
func Open(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pace: Open: %w", err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}
