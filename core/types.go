package core

// Neighbor is one entry in a node's adjacency list: the neighbor node
// index and the index of the edge connecting to it, used to look up
// that edge's probabilities in Graph.p / Graph.pBoost.
type Neighbor struct {
	To   int // destination node index
	Edge int // index into Graph.p / Graph.pBoost
}

// Graph is a dense, directed, integer-indexed graph. Nodes are
// 0..NodeCount()-1. It is immutable once returned by Builder.Build,
// and is safe for concurrent read-only use by multiple goroutines
// without any locking.
type Graph struct {
	out [][]Neighbor // out[u] = out-neighbors of u, CSR-style
	in  [][]Neighbor // in[u]  = in-neighbors of u

	p      []float64 // p[edge]      = base activation probability
	pBoost []float64 // pBoost[edge] = boosted activation probability

	edgeFrom []int // edgeFrom[edge] = source node of edge, for diagnostics
	edgeTo   []int // edgeTo[edge]   = destination node of edge
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int { return len(g.out) }

// EdgeCount returns |E|.
func (g *Graph) EdgeCount() int { return len(g.p) }

// OutNeighbors returns u's out-neighbors. The returned slice is owned
// by the graph and must not be mutated.
func (g *Graph) OutNeighbors(u int) []Neighbor { return g.out[u] }

// InNeighbors returns u's in-neighbors (nodes with an edge pointing to
// u). The returned slice is owned by the graph and must not be mutated.
func (g *Graph) InNeighbors(u int) []Neighbor { return g.in[u] }

// P returns the base activation probability of the given edge index.
func (g *Graph) P(edge int) float64 { return g.p[edge] }

// PBoost returns the boosted activation probability of the given edge
// index. Always >= P(edge).
func (g *Graph) PBoost(edge int) float64 { return g.pBoost[edge] }

// EdgeEndpoints returns the (from, to) node indices of an edge, for
// diagnostics and result reporting.
func (g *Graph) EdgeEndpoints(edge int) (from, to int) {
	return g.edgeFrom[edge], g.edgeTo[edge]
}
