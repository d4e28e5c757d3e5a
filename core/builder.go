package core

// GraphOption customizes Builder construction. Option constructors
// validate and panic on meaningless inputs; Builder/Graph methods
// never panic — they return errors.
type GraphOption func(*Builder)

// WithMultiEdges allows parallel edges between the same (from,to) pair.
// Without it, a second AddEdge(from,to) returns ErrDuplicateEdge.
func WithMultiEdges() GraphOption {
	return func(b *Builder) { b.multiEdges = true }
}

// Builder assembles a Graph incrementally, then finalizes it into the
// dense CSR form via Build. Edge probabilities are validated eagerly
// at AddEdge time so construction failures are reported at the call
// site that caused them.
type Builder struct {
	n          int
	multiEdges bool
	seen       map[[2]int]struct{}

	edgeFrom []int
	edgeTo   []int
	p        []float64
	pBoost   []float64
}

// NewBuilder creates a Builder for a graph with n nodes (0..n-1).
// Panics if n <= 0 — a node count is a precondition, not runtime input.
func NewBuilder(n int, opts ...GraphOption) *Builder {
	if n <= 0 {
		panic("core: NewBuilder(n<=0)")
	}
	b := &Builder{n: n, seen: make(map[[2]int]struct{})}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddEdge adds a directed edge from -> to with base probability p and
// boosted probability pBoost. Returns the new edge's index.
func (b *Builder) AddEdge(from, to int, p, pBoost float64) (int, error) {
	if from < 0 || from >= b.n || to < 0 || to >= b.n {
		return 0, ErrNodeOutOfRange
	}
	if p < 0 || p > 1 || pBoost < 0 || pBoost > 1 || pBoost < p {
		return 0, ErrBadProbability
	}
	if !b.multiEdges {
		key := [2]int{from, to}
		if _, dup := b.seen[key]; dup {
			return 0, ErrDuplicateEdge
		}
		b.seen[key] = struct{}{}
	}

	idx := len(b.p)
	b.edgeFrom = append(b.edgeFrom, from)
	b.edgeTo = append(b.edgeTo, to)
	b.p = append(b.p, p)
	b.pBoost = append(b.pBoost, pBoost)
	return idx, nil
}

// Build finalizes the adjacency structure and returns an immutable Graph.
func (b *Builder) Build() *Graph {
	g := &Graph{
		out:      make([][]Neighbor, b.n),
		in:       make([][]Neighbor, b.n),
		p:        b.p,
		pBoost:   b.pBoost,
		edgeFrom: b.edgeFrom,
		edgeTo:   b.edgeTo,
	}
	// Two-pass CSR build: first tally degrees so we allocate each
	// slice exactly once, avoiding the repeated-append growth that
	// would otherwise dominate construction of large graphs.
	outDeg := make([]int, b.n)
	inDeg := make([]int, b.n)
	for i := range b.edgeFrom {
		outDeg[b.edgeFrom[i]]++
		inDeg[b.edgeTo[i]]++
	}
	for u := 0; u < b.n; u++ {
		g.out[u] = make([]Neighbor, 0, outDeg[u])
		g.in[u] = make([]Neighbor, 0, inDeg[u])
	}
	for i := range b.edgeFrom {
		from, to := b.edgeFrom[i], b.edgeTo[i]
		g.out[from] = append(g.out[from], Neighbor{To: to, Edge: i})
		g.in[to] = append(g.in[to], Neighbor{To: from, Edge: i})
	}
	return g
}
