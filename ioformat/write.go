package ioformat

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/c2boost/core"
)

// WriteGraph serializes g in the same "V E" header + "u v p pBoost"
// line format ReadGraph parses.
func WriteGraph(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d %d\n", g.NodeCount(), g.EdgeCount()); err != nil {
		return fmt.Errorf("ioformat: writing graph header: %w", err)
	}
	for e := 0; e < g.EdgeCount(); e++ {
		from, to := g.EdgeEndpoints(e)
		if _, err := fmt.Fprintf(bw, "%d %d %g %g\n", from, to, g.P(e), g.PBoost(e)); err != nil {
			return fmt.Errorf("ioformat: writing graph edge %d: %w", e, err)
		}
	}
	return bw.Flush()
}

// WriteSeedSet serializes seeds in the "Na" + Sa-indices + "Nr" +
// Sr-indices format ReadSeedSet parses.
func WriteSeedSet(w io.Writer, seeds core.SeedSet) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", len(seeds.Sa)); err != nil {
		return fmt.Errorf("ioformat: writing seed header: %w", err)
	}
	for _, a := range seeds.Sa {
		if _, err := fmt.Fprintf(bw, "%d\n", a); err != nil {
			return fmt.Errorf("ioformat: writing Sa: %w", err)
		}
	}
	if _, err := fmt.Fprintf(bw, "%d\n", len(seeds.Sr)); err != nil {
		return fmt.Errorf("ioformat: writing seed header: %w", err)
	}
	for _, r := range seeds.Sr {
		if _, err := fmt.Fprintf(bw, "%d\n", r); err != nil {
			return fmt.Errorf("ioformat: writing Sr: %w", err)
		}
	}
	return bw.Flush()
}
