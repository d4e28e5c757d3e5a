package gain

import (
	"github.com/katalvlaran/c2boost/prrsketch"
	"github.com/katalvlaran/c2boost/state"
)

const halfMax = int(^uint(0) >> 2)

// Fast computes centerStateTo for every node in sk, assuming the
// active priority is monotone and submodular. Panics are never used —
// callers that pass a non-monotone/non-submodular priority simply get
// a result that does not match Slow's; validate with
// priority.Satisfies("M,S") before relying on Fast.
func Fast(sk *prrsketch.Sketch, priority state.Priority) {
	center := sk.Center()
	centerState := sk.CenterState()
	for _, v := range sk.Members() {
		sk.SetCenterStateTo(v, centerState)
	}

	// Monotonicity: if the center is already Ca, no boosting of any
	// single node can do better than Ca+ == Ca in gain, so nothing
	// changes. A Cr center first gets the Cr -> Cr- pass; a Cr or None
	// center then gets the Ca+ pass below.
	if centerState == state.Ca {
		return
	}
	if centerState == state.Cr {
		fastCrPass(sk)
	}

	crHigher := priority.Compare(state.Cr, state.CaPlus) > 0
	for _, v := range sk.Members() {
		sk.SetMaxDistP(v, halfMax)
	}

	centerMaxDistP := sk.Dist(center)
	if crHigher && centerState == state.Cr {
		centerMaxDistP--
	}
	sk.SetMaxDistP(center, centerMaxDistP)

	h := newMaxHeap(sk.MaxDistP)
	h.push(center)
	for h.Len() > 0 {
		cur := h.pop()
		for _, e := range sk.InEdges(cur) {
			from := e.To
			if sk.MaxDistP(from) != halfMax {
				continue
			}
			val := sk.MaxDistP(cur) - 1
			fromDeadline := sk.Dist(from)
			if crHigher && sk.State(from) == state.Cr {
				fromDeadline--
			}
			if fromDeadline < val {
				val = fromDeadline
			}
			sk.SetMaxDistP(from, val)
			h.push(from)
		}
	}

	for _, v := range sk.Members() {
		if sk.State(v) == state.Ca && sk.MaxDistP(v) >= sk.Dist(v) {
			sk.SetCenterStateTo(v, state.CaPlus)
		}
	}
}

// fastCrPass handles the case where the center's no-boost state is Cr:
// a Cr node v can flip the center to Cr- only if boosting v lets the
// neutralized message reach the center no later than the original Cr
// message did (dist(v) + distR(v) <= dist(center)).
func fastCrPass(sk *prrsketch.Sketch) {
	center := sk.Center()
	for _, v := range sk.Members() {
		sk.SetDistR(v, halfMax)
	}
	sk.SetDistR(center, 0)

	queue := make([]int, 0, len(sk.Members()))
	queue = append(queue, center)
	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		for _, e := range sk.InEdges(cur) {
			from := e.To
			if e.State == state.Active && sk.DistR(from) == halfMax {
				sk.SetDistR(from, sk.DistR(cur)+1)
				queue = append(queue, from)
			}
		}
	}

	centerDist := sk.Dist(center)
	for _, v := range sk.Members() {
		if sk.State(v) == state.Cr && sk.Dist(v)+sk.DistR(v) <= centerDist {
			sk.SetCenterStateTo(v, state.CrMinus)
		}
	}
}
