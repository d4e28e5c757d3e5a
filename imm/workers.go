package imm

import (
	"math/rand"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/c2boost/collect"
	"github.com/katalvlaran/c2boost/core"
	"github.com/katalvlaran/c2boost/gain"
	"github.com/katalvlaran/c2boost/linkstate"
	"github.com/katalvlaran/c2boost/metrics"
	"github.com/katalvlaran/c2boost/prrsketch"
	"github.com/katalvlaran/c2boost/state"
)

// DefaultWorkers is the worker pool size used when a caller passes
// nThreads <= 0.
const DefaultWorkers = 8

// generatePRSamples draws nSamples PRR-sketches with uniformly random
// centers, fans them out across nThreads worker goroutines (each with
// its own rand.Rand, linkstate.Sampler, and reused prrsketch.Sketch so
// no scratch state is shared), analyzes each with gain.Fast, and
// merges the per-worker collect.Collection results into one.
//
// Valid only for a monotone+submodular priority: a center already at
// Ca can never improve under monotonicity, so those sketches are
// dropped before the (comparatively expensive) gain pass runs at all,
// mirroring makeSketchFast's early return.
func generatePRSamples(
	dst *collect.Collection,
	g *core.Graph, seeds core.SeedSet, priority state.Priority, lambda float64,
	nSamples uint64, nThreads int, rng *rand.Rand,
) {
	if nSamples == 0 {
		return
	}
	if nThreads <= 0 {
		nThreads = DefaultWorkers
	}
	if uint64(nThreads) > nSamples {
		nThreads = int(nSamples)
	}

	collections := make([]*collect.Collection, nThreads)
	var eg errgroup.Group
	for w := 0; w < nThreads; w++ {
		w := w
		first := nSamples * uint64(w) / uint64(nThreads)
		last := nSamples * uint64(w+1) / uint64(nThreads)
		workerSeed := rng.Int63()
		metrics.WorkerPoolActive.Inc()
		eg.Go(func() error {
			defer metrics.WorkerPoolActive.Dec()
			workerRNG := rand.New(rand.NewSource(workerSeed))
			sampler := linkstate.New(g, workerRNG)
			sk := prrsketch.New(g.NodeCount())
			c := collect.NewCollection(g.NodeCount(), seeds, priority, lambda)
			for i := first; i < last; i++ {
				center := workerRNG.Intn(g.NodeCount())
				sampler.Refresh()
				sk.Sample(g, seeds, priority, sampler, center)
				metrics.SketchesGenerated.WithLabelValues("pr-imm").Inc()
				if sk.CenterState() == state.Ca {
					continue
				}
				gain.Fast(sk, priority)
				c.Add(sk)
			}
			collections[w] = c
			return nil
		})
	}
	_ = eg.Wait() // workers never return a non-nil error

	for _, c := range collections {
		dst.Merge(c)
	}
}

// syncCollectionSA wraps collect.CollectionSA with a mutex so several
// worker goroutines can Add to the same collection concurrently,
// mirroring SA_IMM_LB_Static_Process's scoped_lock.
type syncCollectionSA struct {
	mu sync.Mutex
	c  *collect.CollectionSA
}

func (s *syncCollectionSA) Add(center int, nSamples uint64, gains []float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Add(center, int(nSamples), gains)
}

// generateSASamples draws nSamples PRR-sketches at each of the given
// center candidates (rather than one shared random center), analyzing
// every sketch with gain.Slow since the SA regime makes no
// monotonicity/submodularity assumption. Work is partitioned by center
// candidate across nThreads workers; each worker accumulates its own
// per-center gain totals before folding them into prrCollection once
// per center, mirroring SA_IMM_LB_Static_Process.
func generateSASamples(
	g *core.Graph, seeds core.SeedSet, priority state.Priority, lambda float64,
	centers []int, nSamples uint64, nThreads int, rng *rand.Rand,
	prrCollection *syncCollectionSA,
) {
	if nSamples == 0 || len(centers) == 0 {
		return
	}
	if nThreads <= 0 {
		nThreads = DefaultWorkers
	}
	if nThreads > len(centers) {
		nThreads = len(centers)
	}

	var eg errgroup.Group
	for w := 0; w < nThreads; w++ {
		w := w
		first := len(centers) * w / nThreads
		last := len(centers) * (w + 1) / nThreads
		workerSeed := rng.Int63()
		metrics.WorkerPoolActive.Inc()
		eg.Go(func() error {
			defer metrics.WorkerPoolActive.Dec()
			workerRNG := rand.New(rand.NewSource(workerSeed))
			sampler := linkstate.New(g, workerRNG)
			sk := prrsketch.New(g.NodeCount())
			gains := make([]float64, g.NodeCount())

			for i := first; i < last; i++ {
				center := centers[i]
				for j := range gains {
					gains[j] = 0
				}
				for j := uint64(0); j < nSamples; j++ {
					sampler.Refresh()
					sk.Sample(g, seeds, priority, sampler, center)
					metrics.SketchesGenerated.WithLabelValues("sa-imm").Inc()
					gain.Slow(sk, priority)
					base := state.Gain(sk.CenterState(), lambda)
					for _, v := range sk.Members() {
						gains[v] += state.Gain(sk.CenterStateTo(v), lambda) - base
					}
				}
				prrCollection.Add(center, nSamples, gains)
			}
			return nil
		})
	}
	_ = eg.Wait()
}
