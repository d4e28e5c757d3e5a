package imm

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/katalvlaran/c2boost/collect"
	"github.com/katalvlaran/c2boost/core"
	"github.com/katalvlaran/c2boost/metrics"
	"github.com/katalvlaran/c2boost/state"
)

// RunPRStatic runs PR-IMM against a caller-supplied, strictly
// increasing sample-size schedule, reporting a ResultItem at each
// step. priority must be monotone and submodular; callers should check
// priority.Satisfies("M,S") first. Grounded on PR_IMM_Static.
func RunPRStatic(
	g *core.Graph, seeds core.SeedSet, priority state.Priority, lambda float64,
	k int, schedule []uint64, nThreads int, rng *rand.Rand,
) Result {
	coll := collect.NewCollection(g.NodeCount(), seeds, priority, lambda)
	res := Result{Items: make(map[uint64]ResultItem, len(schedule))}

	start := time.Now()
	var last uint64
	for i, target := range schedule {
		metrics.SampleLoopIteration.Set(float64(i))
		generatePRSamples(coll, g, seeds, priority, lambda, target-last, nThreads, rng)
		last = target

		nodes, gainSum := coll.Select(k)
		res.Items[target] = ResultItem{
			BoostedNodes: nodes,
			TotalGain:    gainSum / float64(target) * float64(g.NodeCount()),
			SampleCount:  target,
			TimeUsed:     time.Since(start),
		}
		slog.Debug("pr-imm static schedule step", "samples", target, "boosted", len(nodes))
	}
	metrics.SelectionDuration.WithLabelValues("pr-imm-static").Observe(time.Since(start).Seconds())
	return res
}

// RunPRDynamic runs PR-IMM's adaptive martingale sample-size doubling:
// starting from params.Theta0, it doubles the sample count each round
// (dropping the required-gain threshold by the same factor) until a
// greedy check clears the threshold or the sample limit is hit, then
// falls back to the theoretical theta derived from the observed lower
// bound LB. Grounded on generateSamplesDynamic / PR_IMM_Dynamic.
func RunPRDynamic(
	g *core.Graph, seeds core.SeedSet, priority state.Priority, lambda float64,
	params Params, nThreads int, rng *rand.Rand,
) ResultItem {
	start := time.Now()
	coll := collect.NewCollection(g.NodeCount(), seeds, priority, lambda)

	n := float64(g.NodeCount())
	limit := params.SampleLimit
	if limit == 0 {
		limit = ^uint64(0)
	}

	lb := 1.0
	theta := params.Theta0
	minS := 1 + sqrt2*params.Epsilon
	var prrCount uint64

	log2N := int(params.Log2N)
	for i := 1; i < log2N; i++ {
		metrics.SampleLoopIteration.Set(float64(i))
		theta *= 2.0
		minS /= 2.0

		target := uint64(theta)
		if target > limit {
			target = limit
		}
		nSamples := target - prrCount
		generatePRSamples(coll, g, seeds, priority, lambda, nSamples, nThreads, rng)
		prrCount += nSamples

		if prrCount >= limit {
			slog.Warn("pr-imm: sample limit reached before convergence", "limit", limit)
			metrics.SampleLimitHit.WithLabelValues("pr-imm").Inc()
			break
		}

		_, gainSum := coll.Select(params.K)
		s := gainSum / float64(prrCount)
		if s >= minS {
			lb = s * n / (1 + sqrt2*params.Epsilon)
			break
		}
	}

	if prrCount < limit {
		theta = 2.0 * n * (params.Alpha+params.Beta)*(params.Alpha+params.Beta) / lb / (params.Epsilon * params.Epsilon)
	}
	target := uint64(theta)
	if target > limit {
		target = limit
	}
	if target > prrCount {
		generatePRSamples(coll, g, seeds, priority, lambda, target-prrCount, nThreads, rng)
		prrCount = target
	}

	nodes, gainSum := coll.Select(params.K)
	metrics.SelectionDuration.WithLabelValues("pr-imm-dynamic").Observe(time.Since(start).Seconds())
	return ResultItem{
		BoostedNodes: nodes,
		TotalGain:    gainSum / float64(prrCount) * n,
		SampleCount:  prrCount,
		TimeUsed:     time.Since(start),
	}
}
