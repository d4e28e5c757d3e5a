package builder

import (
	"fmt"

	"github.com/katalvlaran/c2boost/core"
)

const (
	minStarNodes  = 2
	minCycleNodes = 3
	minPathNodes  = 2
)

// Star returns a Constructor building a directed star: hub 0 with a
// spoke to and from each of the n-1 leaves 1..n-1.
func Star(n int) Constructor {
	return func(b *core.Builder, cfg config) error {
		if n < minStarNodes {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		for leaf := 1; leaf < n; leaf++ {
			if _, err := b.AddEdge(0, leaf, cfg.p, cfg.pBoost); err != nil {
				return fmt.Errorf("Star: AddEdge(0,%d): %w", leaf, err)
			}
			if _, err := b.AddEdge(leaf, 0, cfg.p, cfg.pBoost); err != nil {
				return fmt.Errorf("Star: AddEdge(%d,0): %w", leaf, err)
			}
		}
		return nil
	}
}

// Cycle returns a Constructor building a directed n-cycle 0->1->...->n-1->0.
func Cycle(n int) Constructor {
	return func(b *core.Builder, cfg config) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			if _, err := b.AddEdge(i, j, cfg.p, cfg.pBoost); err != nil {
				return fmt.Errorf("Cycle: AddEdge(%d,%d): %w", i, j, err)
			}
		}
		return nil
	}
}

// Path returns a Constructor building a directed chain 0->1->...->n-1.
func Path(n int) Constructor {
	return func(b *core.Builder, cfg config) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		for i := 0; i < n-1; i++ {
			if _, err := b.AddEdge(i, i+1, cfg.p, cfg.pBoost); err != nil {
				return fmt.Errorf("Path: AddEdge(%d,%d): %w", i, i+1, err)
			}
		}
		return nil
	}
}

// RandomSparse returns a Constructor building an Erdos-Renyi-like
// directed graph: each ordered pair (i,j), i != j, gets an edge
// independently with probability p. Requires cfg.rng != nil.
func RandomSparse(n int, p float64) Constructor {
	return func(b *core.Builder, cfg config) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse: n=%d < 1: %w", n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%g not in [0,1]: %w", p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("RandomSparse: %w", ErrNeedRandSource)
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.rng.Float64() < p {
					if _, err := b.AddEdge(i, j, cfg.p, cfg.pBoost); err != nil {
						return fmt.Errorf("RandomSparse: AddEdge(%d,%d): %w", i, j, err)
					}
				}
			}
		}
		return nil
	}
}
