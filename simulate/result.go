package simulate

import (
	"fmt"

	"github.com/katalvlaran/c2boost/state"
)

// Item tallies one (or one averaged batch of) simulation outcome: the
// summed gain split into its positive and negative components, and how
// many nodes ended in each state.
type Item struct {
	PositiveGain float64
	NegativeGain float64
	TotalGain    float64

	NoneCount    float64
	CaPlusCount  float64
	CaCount      float64
	CrCount      float64
	CrMinusCount float64
}

// add folds one node's final state into the tally.
func (it *Item) add(st state.NodeState, lambda float64) {
	g := state.Gain(st, lambda)
	it.TotalGain += g
	if g > 0 {
		it.PositiveGain += g
	} else {
		it.NegativeGain += g
	}
	switch st {
	case state.CaPlus:
		it.CaPlusCount++
	case state.Ca:
		it.CaCount++
	case state.Cr:
		it.CrCount++
	case state.CrMinus:
		it.CrMinusCount++
	default:
		it.NoneCount++
	}
}

// Plus returns the element-wise sum of it and other.
func (it Item) Plus(other Item) Item {
	return Item{
		PositiveGain: it.PositiveGain + other.PositiveGain,
		NegativeGain: it.NegativeGain + other.NegativeGain,
		TotalGain:    it.TotalGain + other.TotalGain,
		NoneCount:    it.NoneCount + other.NoneCount,
		CaPlusCount:  it.CaPlusCount + other.CaPlusCount,
		CaCount:      it.CaCount + other.CaCount,
		CrCount:      it.CrCount + other.CrCount,
		CrMinusCount: it.CrMinusCount + other.CrMinusCount,
	}
}

// Minus returns the element-wise difference it - other.
func (it Item) Minus(other Item) Item {
	return Item{
		PositiveGain: it.PositiveGain - other.PositiveGain,
		NegativeGain: it.NegativeGain - other.NegativeGain,
		TotalGain:    it.TotalGain - other.TotalGain,
		NoneCount:    it.NoneCount - other.NoneCount,
		CaPlusCount:  it.CaPlusCount - other.CaPlusCount,
		CaCount:      it.CaCount - other.CaCount,
		CrCount:      it.CrCount - other.CrCount,
		CrMinusCount: it.CrMinusCount - other.CrMinusCount,
	}
}

// Scaled returns it with every field divided by n, the way Many
// averages its per-run totals.
func (it Item) Scaled(n int) Item {
	f := 1.0 / float64(n)
	return Item{
		PositiveGain: it.PositiveGain * f,
		NegativeGain: it.NegativeGain * f,
		TotalGain:    it.TotalGain * f,
		NoneCount:    it.NoneCount * f,
		CaPlusCount:  it.CaPlusCount * f,
		CaCount:      it.CaCount * f,
		CrCount:      it.CrCount * f,
		CrMinusCount: it.CrMinusCount * f,
	}
}

// String renders gain and node-state counts/percentages on two lines.
func (it Item) String() string {
	total := it.NoneCount + it.CaPlusCount + it.CaCount + it.CrCount + it.CrMinusCount
	return fmt.Sprintf(
		"gain: (positive, negative, total) = (%.3f, %.3f, %.3f)\n"+
			"node count: (None, Ca+, Ca, Cr, Cr-) = (%.1f, %.1f, %.1f, %.1f, %.1f); "+
			"percentage = (%.2f, %.2f, %.2f, %.2f, %.2f)",
		it.PositiveGain, it.NegativeGain, it.TotalGain,
		it.NoneCount, it.CaPlusCount, it.CaCount, it.CrCount, it.CrMinusCount,
		100*it.NoneCount/total, 100*it.CaPlusCount/total, 100*it.CaCount/total,
		100*it.CrCount/total, 100*it.CrMinusCount/total,
	)
}

// Comparison pairs a with-boosted-set run against a without, plus
// their difference.
type Comparison struct {
	WithBoosted    Item
	WithoutBoosted Item
	Diff           Item
}

func (c Comparison) String() string {
	return fmt.Sprintf("with boosted:\n%s\nwithout boosted:\n%s\ndiff:\n%s", c.WithBoosted, c.WithoutBoosted, c.Diff)
}
