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

// SAAlgorithm selects greedy vs random-greedy selection for the SA
// regime's lower-bound pass.
type SAAlgorithm int

const (
	// SAGreedy always picks the single best-remaining node each round.
	SAGreedy SAAlgorithm = iota
	// SARandomGreedy picks uniformly among the k best-remaining nodes
	// each round, trading the (1-1/e) guarantee for 1/e in exchange for
	// robustness against adversarial orderings.
	SARandomGreedy
)

// RunSAStatic runs the SA-IMM / SA-RG-IMM lower-bound pass against a
// caller-supplied, strictly increasing per-center sample-size
// schedule. distLimit bounds which nodes are even considered as
// centers (>= graph size considers every node); gainThreshold drops
// near-zero per-center contributions to bound memory. Grounded on
// SA_IMM_LB_Static / SA_IMM_LB_Static_Process.
func RunSAStatic(
	g *core.Graph, seeds core.SeedSet, priority state.Priority, lambda float64,
	k int, gainThreshold float64, distLimit int, algo SAAlgorithm,
	schedule []uint64, nThreads int, rng *rand.Rand,
) Result {
	centers := candidateCenters(g, seeds, distLimit)
	sa := &syncCollectionSA{c: collect.NewCollectionSA(g.NodeCount(), gainThreshold, seeds)}
	res := Result{Items: make(map[uint64]ResultItem, len(schedule))}

	start := time.Now()
	var last uint64
	nScheduled := len(schedule)
	for i, target := range schedule {
		generateSASamples(g, seeds, priority, lambda, centers, target-last, nThreads, rng, sa)
		last = target

		var nodes []int
		var gainSum float64
		if algo == SARandomGreedy {
			nodes, gainSum = sa.c.RandomSelect(k, rng)
		} else {
			nodes, gainSum = sa.c.Select(k)
		}
		res.Items[target] = ResultItem{
			BoostedNodes: nodes,
			TotalGain:    gainSum,
			SampleCount:  target,
			TimeUsed:     time.Since(start),
		}
		if logPerPercentage(i, nScheduled) {
			slog.Info("sa-imm-lb progress", "percent", 100*(i+1)/nScheduled, "per_center_samples", target)
		}
	}
	metrics.SelectionDuration.WithLabelValues("sa-imm-static").Observe(time.Since(start).Seconds())
	return res
}

// logPerPercentage reports true at roughly every 10% of total steps
// completed, at a fixed 10%-of-total cadence.
func logPerPercentage(i, total int) bool {
	if total <= 0 {
		return false
	}
	step := total / 10
	if step == 0 {
		return true
	}
	return i%step == 0
}

// RunSADynamic runs the lower-bound pass with a single per-center
// sample count theta, rather than a schedule. It runs no doubling loop
// of its own; RunSA passes params.Theta0 as theta. Grounded on
// SA_IMM_LB_Dynamic.
func RunSADynamic(
	g *core.Graph, seeds core.SeedSet, priority state.Priority, lambda float64,
	k int, gainThreshold float64, distLimit int, algo SAAlgorithm,
	theta uint64, nThreads int, rng *rand.Rand,
) ResultItem {
	res := RunSAStatic(g, seeds, priority, lambda, k, gainThreshold, distLimit, algo, []uint64{theta}, nThreads, rng)
	return res.Items[theta]
}

// TwoSidedResult pairs an SA-IMM upper bound (via PR-IMM over
// state.UpperBoundPriority) with its lower bound (via the SA regime
// under the caller's actual priority), the way SA_IMM reports both.
type TwoSidedResult struct {
	UpperBound ResultItem
	LowerBound ResultItem
}

// RunSA runs both halves of SA-IMM: PR-IMM under the monotone+
// submodular upper-bound priority gives an upper bound on the
// objective, and the SA regime under the caller's real (possibly
// non-monotone) priority gives a lower bound. Grounded on SA_IMM.
func RunSA(
	g *core.Graph, seeds core.SeedSet, priority state.Priority, lambda float64,
	params Params, gainThreshold float64, distLimit int, algo SAAlgorithm,
	nThreads int, rng *rand.Rand,
) TwoSidedResult {
	ub := RunPRDynamic(g, seeds, state.UpperBoundPriority(), lambda, params, nThreads, rng)
	lb := RunSADynamic(g, seeds, priority, lambda, params.K, gainThreshold, distLimit, algo, uint64(params.Theta0), nThreads, rng)
	return TwoSidedResult{UpperBound: ub, LowerBound: lb}
}
