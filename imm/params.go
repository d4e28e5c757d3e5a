package imm

import "math"

const (
	sqrt2 = math.Sqrt2
	ln2   = math.Ln2
)

// Params holds the IMM sample-size control knobs and their derived
// quantities, grounded in args.h's AlgorithmArguments::updateValues.
type Params struct {
	N int // graph size |V|
	K int // number of boosted nodes to select

	// Delta is the target approximation ratio 1 - 1/e by default;
	// Ell controls the (1 - n^-Ell) success probability; Epsilon
	// controls the delta-epsilon guarantee's tightness.
	Delta   float64
	Ell     float64
	Epsilon float64

	// EllPrime is Ell tightened by a factor of (1 + ln2/LnN) before
	// it feeds Alpha/Beta/Theta0, compensating for the two-call
	// (PR_IMM then refinement) structure of the adaptive loop.
	EllPrime float64

	// SampleLimit caps total PRR-sketches generated; 0 means no cap
	// (RunPRDynamic then uses the maximum uint64).
	SampleLimit uint64

	// Derived.
	Alpha  float64
	Beta   float64
	Theta0 float64
	LnCnk  float64
	LnN    float64
	Log2N  float64
}

// NewParams derives Alpha/Beta/Theta0/LnCnk/LnN/Log2N from n, k, and
// the delta/ell/epsilon knobs, exactly mirroring updateValues().
func NewParams(n, k int, delta, ell, epsilon float64, sampleLimit uint64) Params {
	p := Params{N: n, K: k, Delta: delta, Ell: ell, Epsilon: epsilon, SampleLimit: sampleLimit}
	p.Log2N = math.Log2(float64(n))
	p.LnN = math.Log(float64(n))

	var lnCnk float64
	for x := n - k + 1; x <= n; x++ {
		lnCnk += math.Log(float64(x))
	}
	for x := 1; x <= k; x++ {
		lnCnk -= math.Log(float64(x))
	}
	p.LnCnk = lnCnk

	// Tightening substitution applied once before the loop: using the
	// raw Ell in Alpha/Beta/Theta0 under-sizes the sample schedule
	// relative to the (1 - n^-Ell) guarantee the loop is meant to give.
	p.EllPrime = p.Ell * (1.0 + ln2/p.LnN)

	p.Alpha = p.Delta * math.Sqrt(p.EllPrime*p.LnN+ln2)
	p.Beta = math.Sqrt(p.Delta * (p.EllPrime*p.LnN + p.LnCnk + ln2))
	p.Theta0 = (1.0 + sqrt2*p.Epsilon/3.0) * (p.LnCnk + p.EllPrime*p.LnN + math.Log(p.Log2N)) / (p.Epsilon * p.Epsilon)
	return p
}
