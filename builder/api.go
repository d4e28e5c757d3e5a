package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/c2boost/core"
)

// config holds the resolved settings a Constructor reads: the edge
// probability pair every generated edge carries, and the RNG
// stochastic constructors draw from.
type config struct {
	p, pBoost float64
	rng       *rand.Rand
}

func newConfig(opts ...Option) config {
	cfg := config{p: 0.1, pBoost: 0.3}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Option customizes a BuildGraph call.
type Option func(*config)

// WithProbabilities sets the base/boosted activation probability every
// generated edge carries (default 0.1/0.3). pBoost must be >= p.
func WithProbabilities(p, pBoost float64) Option {
	return func(c *config) { c.p, c.pBoost = p, pBoost }
}

// WithRand supplies the RNG stochastic constructors (RandomSparse) draw
// from; without it they return ErrNeedRandSource.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) { c.rng = rng }
}

// Constructor applies one topology's edges to b under the resolved
// config. Constructors validate parameters early and return sentinel
// errors; they never panic.
type Constructor func(b *core.Builder, cfg config) error

// BuildGraph creates an n-node core.Builder, resolves opts, applies
// every constructor in order, and returns the finalized Graph. The
// first constructor error aborts the build.
func BuildGraph(n int, opts []Option, cons ...Constructor) (*core.Graph, error) {
	cfg := newConfig(opts...)
	b := core.NewBuilder(n, core.WithMultiEdges())
	for i, c := range cons {
		if c == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := c(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	return b.Build(), nil
}
