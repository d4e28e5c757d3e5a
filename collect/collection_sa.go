package collect

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/c2boost/core"
)

// saRecord is one {node, accumulated value} pair inside CollectionSA's
// per-center and per-boosted-node gain lists.
type saRecord struct {
	index int
	value float64
}

// CollectionSA accumulates SA-IMM / SA-RG-IMM samples, where sketches
// are drawn in batches at each candidate center in turn rather than at
// one uniformly random center per sketch as in PR-IMM. Since no single
// priority is assumed monotone+submodular here, contributions are kept
// per center and only averaged (by how often that center was actually
// sampled) at selection time.
type CollectionSA struct {
	n         int
	threshold float64
	seeds     core.SeedSet

	gainsToCenter [][]saRecord // gainsToCenter[v] sorted by boosted node index, for one center v
	countAsCenter []int
}

// NewCollectionSA creates an empty CollectionSA over a graph of n
// nodes. threshold filters out a boosted node's average contribution
// to a center once it falls below this value, bounding memory use at
// the cost of ignoring vanishingly small effects.
func NewCollectionSA(n int, threshold float64, seeds core.SeedSet) *CollectionSA {
	return &CollectionSA{
		n:             n,
		threshold:     threshold,
		seeds:         seeds,
		gainsToCenter: make([][]saRecord, n),
		countAsCenter: make([]int, n),
	}
}

// Add folds one batch of nSamples sketches centered at center into the
// collection. totalGainsByBoosted[s] is the summed gain node s would
// contribute to center across this batch (0 if s never helped); it
// must have length n.
func (c *CollectionSA) Add(center, nSamples int, totalGainsByBoosted []float64) {
	existing := c.gainsToCenter[center]
	for s, g := range totalGainsByBoosted {
		if g <= 0 {
			continue
		}
		i := sort.Search(len(existing), func(i int) bool { return existing[i].index >= s })
		if i < len(existing) && existing[i].index == s {
			existing[i].value += g
		} else {
			existing = append(existing, saRecord{index: s, value: g})
			sort.Slice(existing, func(i, j int) bool { return existing[i].index < existing[j].index })
		}
	}
	c.gainsToCenter[center] = existing
	c.countAsCenter[center] += nSamples
}

// gainsByBoosted rebuilds, for every candidate boosted node s, the list
// of {center, average gain} pairs whose average (summed gain divided
// by how often that center was sampled) meets the threshold.
func (c *CollectionSA) gainsByBoosted() [][]saRecord {
	out := make([][]saRecord, c.n)
	for v := 0; v < c.n; v++ {
		count := c.countAsCenter[v]
		if count == 0 {
			continue
		}
		for _, rec := range c.gainsToCenter[v] {
			avg := rec.value / float64(count)
			if avg >= c.threshold {
				out[rec.index] = append(out[rec.index], saRecord{index: v, value: avg})
			}
		}
	}
	return out
}

// Select runs greedy selection of k boosted nodes, each round picking
// the single node whose marginal total gain (summed across every
// center, clipped against the best gain any already-selected node
// offers that center) is largest.
func (c *CollectionSA) Select(k int) ([]int, float64) {
	return c.selectCommon(k, nil)
}

// RandomSelect runs random-greedy selection: each round, among the k
// candidates with the largest marginal total gain, one is picked
// uniformly at random via rng. This trades the (1-1/e) greedy
// guarantee for a weaker 1/e bound in exchange for robustness against
// adversarial orderings.
func (c *CollectionSA) RandomSelect(k int, rng *rand.Rand) ([]int, float64) {
	return c.selectCommon(k, rng)
}

func (c *CollectionSA) selectCommon(k int, rng *rand.Rand) ([]int, float64) {
	byBoosted := c.gainsByBoosted()

	selected := make([]int, 0, k)
	excluded := make([]bool, c.n)
	for _, a := range c.seeds.Sa {
		excluded[a] = true
	}
	for _, r := range c.seeds.Sr {
		excluded[r] = true
	}

	maxGainTo := make([]float64, c.n)
	var result float64

	for i := 0; i < k && len(selected) < c.n; i++ {
		totalGainsBy := make([]float64, c.n)
		for s := 0; s < c.n; s++ {
			for _, rec := range byBoosted[s] {
				if d := rec.value - maxGainTo[rec.index]; d > 0 {
					totalGainsBy[s] += d
				}
			}
		}
		for v := range excluded {
			if excluded[v] {
				totalGainsBy[v] = halfMin
			}
		}

		var cur int
		if rng == nil {
			cur = argmax(totalGainsBy)
		} else {
			cur = randomGreedyPick(totalGainsBy, k, rng)
		}
		if totalGainsBy[cur] <= halfMin {
			break
		}

		result += totalGainsBy[cur]
		selected = append(selected, cur)
		excluded[cur] = true
		for _, rec := range byBoosted[cur] {
			if rec.value > maxGainTo[rec.index] {
				maxGainTo[rec.index] = rec.value
			}
		}
	}
	return selected, result
}

// randomGreedyPick picks uniformly among the min(k, number of
// non-excluded candidates) nodes with the largest totalGainsBy value.
func randomGreedyPick(totalGainsBy []float64, k int, rng *rand.Rand) int {
	indices := make([]int, len(totalGainsBy))
	for i := range indices {
		indices[i] = i
	}
	sort.Slice(indices, func(i, j int) bool { return totalGainsBy[indices[i]] > totalGainsBy[indices[j]] })

	nonExcluded := 0
	for _, v := range totalGainsBy {
		if v > halfMin {
			nonExcluded++
		}
	}
	nCandidates := k
	if nonExcluded < nCandidates {
		nCandidates = nonExcluded
	}
	if nCandidates <= 0 {
		return indices[0]
	}
	return indices[rng.Intn(nCandidates)]
}

// NTotalRecords returns the sum of per-center record counts, a
// memory-footprint signal surfaced by Dump.
func (c *CollectionSA) NTotalRecords() int {
	n := 0
	for _, recs := range c.gainsToCenter {
		n += len(recs)
	}
	return n
}

// ApproxBytes estimates the collection's memory footprint: a fixed
// header plus the element count of every retained per-center slice,
// times an approximate per-element size. Grounded in the same
// totalBytesUsed accounting Collection.ApproxBytes uses.
func (c *CollectionSA) ApproxBytes() int64 {
	bytes := int64(8 + 8) // n, threshold
	for _, recs := range c.gainsToCenter {
		bytes += int64(len(recs)) * saRecordSize
	}
	bytes += int64(len(c.countAsCenter)) * 8
	return bytes
}

// Dump renders per-center record count and approximate memory used.
func (c *CollectionSA) Dump() string {
	return fmt.Sprintf(
		"Graph size |V| = %d\nPer-center records stored = %d\nMemory used = %s",
		c.n, c.NTotalRecords(), formatBytes(c.ApproxBytes()),
	)
}
