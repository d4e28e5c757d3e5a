package imm_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/c2boost/imm"
)

func TestNewParams_TightensEllBeforeDeriving(t *testing.T) {
	n, k := 1000, 5
	delta, ell, epsilon := 1-1/math.E, 1.0, 0.3

	p := imm.NewParams(n, k, delta, ell, epsilon, 0)

	wantEllPrime := ell * (1.0 + math.Ln2/p.LnN)
	require.InDelta(t, wantEllPrime, p.EllPrime, 1e-12)
	require.Greater(t, p.EllPrime, p.Ell)

	wantAlpha := delta * math.Sqrt(wantEllPrime*p.LnN+math.Ln2)
	require.InDelta(t, wantAlpha, p.Alpha, 1e-9)

	wantBeta := math.Sqrt(delta * (wantEllPrime*p.LnN + p.LnCnk + math.Ln2))
	require.InDelta(t, wantBeta, p.Beta, 1e-9)

	wantTheta0 := (1.0 + math.Sqrt2*epsilon/3.0) * (p.LnCnk + wantEllPrime*p.LnN + math.Log(p.Log2N)) / (epsilon * epsilon)
	require.InDelta(t, wantTheta0, p.Theta0, 1e-6)
}
