package grid

import (
	"math"

	"github.com/quantgrid/amerioption/internal/domain"
	"github.com/quantgrid/amerioption/internal/engerr"
	"github.com/quantgrid/amerioption/internal/numeric"
	"github.com/quantgrid/amerioption/internal/validate"
)

// Grid is the read-only output of BuildGrid: a strictly increasing
// spatial grid in underlying price and a uniform temporal grid. It is
// exclusively owned by the price() call that built it.
type Grid struct {
	// SpotNodes has config.SpotSteps+1 strictly increasing entries
	// spanning [SMin, SMax], with the strike pinned onto the nearest
	// node (StrikeIndex).
	SpotNodes []float64

	// TimeGrid has config.TimeSteps+1 equally spaced entries from 0 to
	// tau.
	TimeGrid []float64

	// Dt is the uniform per-step time increment, tau / TimeSteps.
	Dt float64

	// StrikeIndex is the SpotNodes index pinned to K exactly.
	StrikeIndex int
}

// newtonIterations bounds the Newton solve for the sinh-transform shape
// parameter; the function is smooth and monotone so convergence is fast.
const newtonIterations = 100

// BuildGrid constructs the spot and time grids for a single price() call.
// S0, K, tau, sigma are validated per spec §4.2; cfg is assumed already
// validated by domain.EngineConfig.Validate.
func BuildGrid(S0, K, tau, sigma float64, cfg domain.EngineConfig) (*Grid, error) {
	const op = "BuildGrid"

	if err := validate.GridInputs(op, S0, K, tau, sigma); err != nil {
		return nil, err
	}

	k := cfg.FarFieldMultiplier
	width := k*sigma*math.Sqrt(tau) + 2
	sMax := K * math.Exp(width)
	sMin := K * math.Exp(-width)

	spotNodes, strikeIdx, err := buildSpotNodes(K, sMin, sMax, cfg.SpotSteps, cfg.GridConcentration)
	if err != nil {
		return nil, err
	}

	nt := cfg.TimeSteps
	dt := tau / float64(nt)
	timeGrid := make([]float64, nt+1)
	for i := 0; i <= nt; i++ {
		timeGrid[i] = float64(i) * dt
	}

	return &Grid{
		SpotNodes:   spotNodes,
		TimeGrid:    timeGrid,
		Dt:          dt,
		StrikeIndex: strikeIdx,
	}, nil
}

// buildSpotNodes implements the Tavella-Randall sinh transform:
// x_i = K + alpha*sinh(c*xi_i + d), xi_i uniform in [0,1], with alpha and
// d solved so that x_0 = sMin and x_n = sMax. K is then pinned onto its
// nearest node.
func buildSpotNodes(K, sMin, sMax float64, spotSteps int, c float64) ([]float64, int, error) {
	const op = "BuildGrid"

	a := sMin - K // < 0
	b := sMax - K // > 0

	d, err := solveShapeParameter(a, b, c)
	if err != nil {
		return nil, 0, err
	}
	alpha := a / math.Sinh(d)

	n := spotSteps
	nodes := make([]float64, n+1)
	for i := 0; i <= n; i++ {
		xi := float64(i) / float64(n)
		nodes[i] = K + alpha*math.Sinh(c*xi+d)
	}
	nodes[0] = sMin
	nodes[n] = sMax

	for i := 1; i <= n; i++ {
		if nodes[i] <= nodes[i-1] {
			return nil, 0, engerr.NewNumericalBreakdown(op, "sinh-transform grid is not strictly increasing; increase spot_steps or reduce grid_concentration")
		}
	}

	strikeIdx := pinStrike(nodes, K)

	for i := 1; i <= n; i++ {
		if nodes[i] <= nodes[i-1] {
			return nil, 0, engerr.NewNumericalBreakdown(op, "pinning the strike broke strict monotonicity; increase spot_steps")
		}
	}

	return nodes, strikeIdx, nil
}

// solveShapeParameter finds d such that b*sinh(d) == a*sinh(c+d), via
// Newton-Raphson starting from d=0. The function is smooth and strictly
// monotone in d for a<0<b, c>0, so this converges in a handful of steps.
func solveShapeParameter(a, b, c float64) (float64, error) {
	const op = "BuildGrid"

	d := 0.0
	for i := 0; i < newtonIterations; i++ {
		f := b*math.Sinh(d) - a*math.Sinh(c+d)
		fPrime := b*math.Cosh(d) - a*math.Cosh(c+d)
		if fPrime == 0 || math.IsNaN(fPrime) || math.IsInf(fPrime, 0) {
			return 0, engerr.NewNumericalBreakdown(op, "sinh-transform shape parameter failed to converge")
		}
		step := f / fPrime
		d -= step
		if math.Abs(step) < 1e-14 {
			break
		}
	}
	if math.IsNaN(d) || math.IsInf(d, 0) {
		return 0, engerr.NewNumericalBreakdown(op, "sinh-transform shape parameter is non-finite")
	}
	return d, nil
}

// pinStrike overwrites whichever node is closest to K with K exactly, so
// the payoff kink always lands on a grid point, then returns its index.
func pinStrike(nodes []float64, K float64) int {
	idx := numeric.BracketIndex(nodes, K)
	pin := idx
	if idx+1 < len(nodes) && math.Abs(nodes[idx+1]-K) < math.Abs(nodes[idx]-K) {
		pin = idx + 1
	}
	nodes[pin] = K
	return pin
}
