package collect

import (
	"fmt"

	"github.com/katalvlaran/c2boost/core"
	"github.com/katalvlaran/c2boost/prrsketch"
	"github.com/katalvlaran/c2boost/state"
)

// prrNode is one {node, resulting center state} pair, reused both as a
// sketch's surviving candidate list entry and as a contrib-list entry.
type prrNode struct {
	index         int
	centerStateTo state.NodeState
}

// simplifiedPRR is the memory-light residue of one PRR-sketch: just
// enough to run greedy selection, none of the adjacency it was built
// from.
type simplifiedPRR struct {
	centerState state.NodeState
	items       []prrNode
}

// Collection accumulates every PRR-sketch sampled for PR-IMM, for a
// priority known to be monotone and submodular. Add is safe to call
// from a single goroutine per Collection; merge independently-built
// Collections from worker goroutines with Merge.
type Collection struct {
	n        int
	seeds    core.SeedSet
	priority state.Priority
	lambda   float64

	prrGraph  []simplifiedPRR
	contrib   [][]prrNode // contrib[v] = sketches where boosting v changes the outcome
	totalGain []float64
}

// NewCollection creates an empty Collection over a graph of n nodes.
// lambda is the positive/negative trade-off weight passed to
// state.Gain; priority must be monotone and submodular for Select's
// result to be meaningful (callers should check priority.Satisfies
// beforehand).
func NewCollection(n int, seeds core.SeedSet, priority state.Priority, lambda float64) *Collection {
	return &Collection{
		n:         n,
		seeds:     seeds,
		priority:  priority,
		lambda:    lambda,
		contrib:   make([][]prrNode, n),
		totalGain: make([]float64, n),
	}
}

// Add folds one PRR-sketch's candidate gains into the collection.
// Nodes whose boosting makes no improvement over the sketch's
// unboosted center gain are skipped, and a sketch contributing nothing
// at all is dropped entirely, since most sketches see no improving
// candidate.
func (c *Collection) Add(sk *prrsketch.Sketch) {
	baseGain := state.Gain(sk.CenterState(), c.lambda)
	prrID := len(c.prrGraph)

	var items []prrNode
	for _, v := range sk.Members() {
		to := sk.CenterStateTo(v)
		g := state.Gain(to, c.lambda) - baseGain
		if g <= 0 {
			continue
		}
		items = append(items, prrNode{index: v, centerStateTo: to})
		c.contrib[v] = append(c.contrib[v], prrNode{index: prrID, centerStateTo: to})
		c.totalGain[v] += g
	}
	if len(items) > 0 {
		c.prrGraph = append(c.prrGraph, simplifiedPRR{centerState: sk.CenterState(), items: items})
	}
}

// Merge appends other's sketches into c, shifting sketch indices in
// other's contrib lists by c's prior sketch count. c and other must
// have been built over graphs of the same size; Merge panics
// otherwise, since a size mismatch can only come from wiring two
// unrelated runs together, a programmer error rather than bad input.
func (c *Collection) Merge(other *Collection) {
	if c.n != other.n {
		panic(ErrMismatchedSize)
	}
	offset := len(c.prrGraph)
	c.prrGraph = append(c.prrGraph, other.prrGraph...)
	for v := 0; v < c.n; v++ {
		for _, nd := range other.contrib[v] {
			c.contrib[v] = append(c.contrib[v], prrNode{index: nd.index + offset, centerStateTo: nd.centerStateTo})
		}
		c.totalGain[v] += other.totalGain[v]
	}
}

// NumSketches returns how many sketches this collection retains (after
// dropping zero-gain ones).
func (c *Collection) NumSketches() int { return len(c.prrGraph) }

// Select runs lazy greedy selection of k boosted nodes and returns them
// in selection order along with their summed gain across every
// retained sketch (divide by NumSketches for the per-sketch estimate of
// the objective's increase). Valid only for monotone+submodular
// priorities: submodularity is what lets the lazy deduction below skip
// re-scanning sketches untouched by the newly selected node.
func (c *Collection) Select(k int) ([]int, float64) {
	totalGain := append([]float64(nil), c.totalGain...)
	centerState := make([]state.NodeState, len(c.prrGraph))
	for i, g := range c.prrGraph {
		centerState[i] = g.centerState
	}
	for _, a := range c.seeds.Sa {
		totalGain[a] = halfMin
	}
	for _, r := range c.seeds.Sr {
		totalGain[r] = halfMin
	}

	selected := make([]int, 0, k)
	var result float64
	for i := 0; i < k && i < c.n; i++ {
		v := argmax(totalGain)
		if totalGain[v] <= halfMin {
			break
		}
		selected = append(selected, v)
		result += totalGain[v]
		totalGain[v] = halfMin

		for _, nd := range c.contrib[v] {
			if c.priority.Compare(nd.centerStateTo, centerState[nd.index]) <= 0 {
				// Sketch nd.index was already pushed at least this far
				// by an earlier selection; v adds nothing new here.
				continue
			}
			curGain := state.Gain(nd.centerStateTo, c.lambda) - state.Gain(centerState[nd.index], c.lambda)
			for _, item := range c.prrGraph[nd.index].items {
				totalGain[item.index] -= curGain
			}
			centerState[nd.index] = nd.centerStateTo
		}
	}
	return selected, result
}

// argmax returns the index of the largest value in xs.
func argmax(xs []float64) int {
	best := 0
	for i, v := range xs {
		if v > xs[best] {
			best = i
		}
	}
	return best
}

// NTotalNodes returns the sum of surviving-candidate counts across
// every retained sketch, a memory-footprint signal surfaced by Dump.
func (c *Collection) NTotalNodes() int {
	n := 0
	for _, g := range c.prrGraph {
		n += len(g.items)
	}
	return n
}

// ApproxBytes estimates the collection's memory footprint, grounded in
// greedyselect.h's totalBytesUsed: a fixed header plus the element
// count of every retained slice, times an approximate per-element size.
func (c *Collection) ApproxBytes() int64 {
	bytes := int64(8 + 8) // n, lambda
	for _, g := range c.prrGraph {
		bytes += int64(len(g.items)) * prrNodeSize
	}
	for _, list := range c.contrib {
		bytes += int64(len(list)) * prrNodeSize
	}
	bytes += int64(len(c.totalGain)) * 8
	return bytes
}

// Dump renders sketch count, average/total surviving-node counts, and
// approximate memory used, the way PRRGraphCollection::dump did.
func (c *Collection) Dump() string {
	nNodes := c.NTotalNodes()
	avg := 0.0
	if len(c.prrGraph) > 0 {
		avg = float64(nNodes) / float64(len(c.prrGraph))
	}
	return fmt.Sprintf(
		"Graph size |V| = %d\nPRR-sketches stored = %d\nTotal surviving nodes = %d, %.3f per sketch average\nMemory used = %s",
		c.n, len(c.prrGraph), nNodes, avg, formatBytes(c.ApproxBytes()),
	)
}
