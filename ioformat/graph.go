package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/c2boost/core"
)

// ReadGraph parses the graph-file format: a "V E" header line, then E
// lines of "u v p pBoost". Node indices are 0-based and must be < V;
// core.Builder.AddEdge validates p/pBoost range and returns
// core.ErrBadProbability/ErrNodeOutOfRange wrapped with the offending
// line number.
func ReadGraph(r io.Reader) (*core.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	if !sc.Scan() {
		return nil, fmt.Errorf("%w: empty file", ErrMalformedHeader)
	}
	header := strings.Fields(sc.Text())
	if len(header) != 2 {
		return nil, fmt.Errorf("%w: expected \"V E\", got %q", ErrMalformedHeader, sc.Text())
	}
	n, err := strconv.Atoi(header[0])
	if err != nil {
		return nil, fmt.Errorf("%w: bad V %q", ErrMalformedHeader, header[0])
	}
	nEdges, err := strconv.Atoi(header[1])
	if err != nil {
		return nil, fmt.Errorf("%w: bad E %q", ErrMalformedHeader, header[1])
	}

	b := core.NewBuilder(n, core.WithMultiEdges())
	for i := 0; i < nEdges; i++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: expected %d edge lines, got %d", ErrTruncated, nEdges, i)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != 4 {
			return nil, fmt.Errorf("%w: line %d: expected \"u v p pBoost\", got %q", ErrMalformedLine, i+2, sc.Text())
		}
		u, errU := strconv.Atoi(fields[0])
		v, errV := strconv.Atoi(fields[1])
		p, errP := strconv.ParseFloat(fields[2], 64)
		pBoost, errPB := strconv.ParseFloat(fields[3], 64)
		if errU != nil || errV != nil || errP != nil || errPB != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, i+2, sc.Text())
		}
		if _, err := b.AddEdge(u, v, p, pBoost); err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedLine, i+2, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ioformat: reading graph file: %w", err)
	}
	return b.Build(), nil
}
