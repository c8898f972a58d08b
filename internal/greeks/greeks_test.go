package greeks

import (
	"testing"

	"github.com/quantgrid/amerioption/internal/domain"
	"github.com/quantgrid/amerioption/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solveAndExtract(t *testing.T, S, K, tau, r, q, sigma float64, kind domain.OptionKind) (pipeline.Result, Result) {
	t.Helper()
	cfg := domain.DefaultEngineConfig()
	base, err := pipeline.Solve(cfg, S, K, tau, r, q, sigma, kind)
	require.NoError(t, err)

	req := Request{Config: cfg, S: S, K: K, Tau: tau, R: r, Q: q, Sigma: sigma, Kind: kind}
	result, err := Extract(req, base)
	require.NoError(t, err)
	return base, result
}

func TestExtract_CallDeltaInUnitRange(t *testing.T) {
	_, g := solveAndExtract(t, 100, 100, 0.5, 0.05, 0.02, 0.20, domain.Call)
	assert.GreaterOrEqual(t, g.Delta, 0.0)
	assert.LessOrEqual(t, g.Delta, 1.0+1e-6)
}

func TestExtract_PutDeltaInUnitRange(t *testing.T) {
	_, g := solveAndExtract(t, 100, 100, 0.5, 0.05, 0.02, 0.20, domain.Put)
	assert.GreaterOrEqual(t, g.Delta, -1.0-1e-6)
	assert.LessOrEqual(t, g.Delta, 0.0)
}

func TestExtract_GammaAndVegaNonNegative(t *testing.T) {
	_, g := solveAndExtract(t, 100, 100, 0.5, 0.05, 0.02, 0.20, domain.Call)
	assert.GreaterOrEqual(t, g.Gamma, -1e-6)
	assert.GreaterOrEqual(t, g.Vega, -1e-6)
}

func TestExtract_DeepITMCallDeltaNearOne(t *testing.T) {
	_, g := solveAndExtract(t, 180, 100, 0.5, 0.05, 0.02, 0.20, domain.Call)
	assert.Greater(t, g.Delta, 0.9)
}

func TestExtract_DeepOTMCallDeltaNearZero(t *testing.T) {
	_, g := solveAndExtract(t, 40, 100, 0.5, 0.05, 0.02, 0.20, domain.Call)
	assert.Less(t, g.Delta, 0.1)
}

func TestExtract_DoubleBoundaryNegativeRatePut_FiniteGreeks(t *testing.T) {
	base, g := solveAndExtract(t, 100, 100, 0.25, -0.005, -0.01, 0.20, domain.Put)
	assert.Equal(t, domain.DoubleBoundary, base.Regime)
	for _, v := range []float64{g.Delta, g.Gamma, g.Vega, g.Theta, g.Rho} {
		assert.False(t, v != v, "greek must not be NaN")
	}
}

func TestExtract_AtMinimumMaturity_ThetaFallsBackToForwardLeg(t *testing.T) {
	// tau sits exactly at validate.MinTau, so tau-ThetaStep would dip below
	// the grid builder's floor: Extract must shift the differencing window
	// forward to (tau, tau+ThetaStep) instead of erroring.
	cfg := domain.DefaultEngineConfig()
	S, K, tau, r, q, sigma := 100.0, 100.0, 1.0/252.0, 0.05, 0.02, 0.20
	base, err := pipeline.Solve(cfg, S, K, tau, r, q, sigma, domain.Call)
	require.NoError(t, err)

	req := Request{Config: cfg, S: S, K: K, Tau: tau, R: r, Q: q, Sigma: sigma, Kind: domain.Call}
	g, err := Extract(req, base)
	require.NoError(t, err)
	assert.False(t, g.Theta != g.Theta, "theta must not be NaN")

	thetaDirect, err := Theta(req, base.Price)
	require.NoError(t, err)
	assert.InDelta(t, g.Theta, thetaDirect, 1e-9)
}

func TestExtract_JustAboveThetaStepPastMinimum_ThetaUsesBackwardLeg(t *testing.T) {
	// tau - ThetaStep still clears validate.MinTau here, so this exercises
	// the ordinary backward-difference path rather than the fallback.
	cfg := domain.DefaultEngineConfig()
	S, K, r, q, sigma := 100.0, 100.0, 0.05, 0.02, 0.20
	tau := 1.0/252.0 + 2.0/365.0
	base, err := pipeline.Solve(cfg, S, K, tau, r, q, sigma, domain.Call)
	require.NoError(t, err)

	req := Request{Config: cfg, S: S, K: K, Tau: tau, R: r, Q: q, Sigma: sigma, Kind: domain.Call}
	g, err := Extract(req, base)
	require.NoError(t, err)
	assert.False(t, g.Theta != g.Theta, "theta must not be NaN")
}
