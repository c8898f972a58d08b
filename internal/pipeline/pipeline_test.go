package pipeline

import (
	"testing"

	"github.com/quantgrid/amerioption/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolve_ATMCall_PositiveAndAboveIntrinsic(t *testing.T) {
	cfg := domain.DefaultEngineConfig()
	res, err := Solve(cfg, 100, 100, 0.5, 0.05, 0.02, 0.20, domain.Call)
	require.NoError(t, err)

	assert.Equal(t, domain.Standard, res.Regime)
	assert.Greater(t, res.Price, 0.0)
	assert.GreaterOrEqual(t, res.Price, domain.Call.Intrinsic(100, 100)-1e-6)
	assert.Len(t, res.Values, len(res.Grid.SpotNodes))
}

func TestSolve_ClassifiesDoubleBoundary(t *testing.T) {
	cfg := domain.DefaultEngineConfig()
	res, err := Solve(cfg, 100, 100, 0.25, -0.005, -0.01, 0.20, domain.Put)
	require.NoError(t, err)
	assert.Equal(t, domain.DoubleBoundary, res.Regime)
}

func TestSolve_RejectsTauBelowMinimum(t *testing.T) {
	cfg := domain.DefaultEngineConfig()
	_, err := Solve(cfg, 100, 100, 0, 0.05, 0.02, 0.20, domain.Call)
	require.Error(t, err)
}

func TestSolve_RejectsUnrecognisedKind(t *testing.T) {
	cfg := domain.DefaultEngineConfig()
	_, err := Solve(cfg, 100, 100, 0.5, 0.05, 0.02, 0.20, domain.OptionKind(99))
	require.Error(t, err)
}
