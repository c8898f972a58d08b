package pipeline

import (
	"github.com/quantgrid/amerioption/internal/domain"
	"github.com/quantgrid/amerioption/internal/grid"
	"github.com/quantgrid/amerioption/internal/numeric"
	"github.com/quantgrid/amerioption/internal/regime"
	"github.com/quantgrid/amerioption/internal/solver"
)

// Result is the output of a single Solve call: the interpolated price at
// S, the classified regime, and the full grid/value slice a caller can
// reuse for further local differencing (internal/greeks' Delta/Gamma).
type Result struct {
	Price  float64
	Regime domain.RateRegime
	Grid   *grid.Grid
	Values []float64
}

// Solve runs the full C1-C4 pipeline once at a single parameter point
// and interpolates the price at S. It assumes tau > 0; the tau=0
// short-circuit is the caller's responsibility (spec §4.5), since at
// tau=0 there is no grid to build.
func Solve(cfg domain.EngineConfig, S, K, tau, r, q, sigma float64, kind domain.OptionKind) (Result, error) {
	rg, err := regime.Classify(r, q, kind)
	if err != nil {
		return Result{}, err
	}

	g, err := grid.BuildGrid(S, K, tau, sigma, cfg)
	if err != nil {
		return Result{}, err
	}

	V, err := solver.StepBackward(g, solver.Params{Kind: kind, Regime: rg, K: K, R: r, Q: q, Sigma: sigma})
	if err != nil {
		return Result{}, err
	}

	return Result{
		Price:  interpolatePrice(g.SpotNodes, V, S),
		Regime: rg,
		Grid:   g,
		Values: V,
	}, nil
}

// interpolatePrice reads the price at S off the four grid nodes
// bracketing it via Newton divided-difference cubic interpolation (spec
// §4.4.5). nodes has at least 4 entries since SpotSteps >= 20.
func interpolatePrice(nodes, values []float64, S float64) float64 {
	n := len(nodes)
	i0 := numeric.BracketIndex(nodes, S) - 1
	if i0 < 0 {
		i0 = 0
	}
	if i0 > n-4 {
		i0 = n - 4
	}

	var xs, ys [4]float64
	for j := 0; j < 4; j++ {
		xs[j] = nodes[i0+j]
		ys[j] = values[i0+j]
	}
	return numeric.CubicInterp(xs, ys, S)
}
