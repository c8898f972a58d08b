package grid

import (
	"testing"

	"github.com/quantgrid/amerioption/internal/domain"
	"github.com/quantgrid/amerioption/internal/engerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGrid_Invariants(t *testing.T) {
	cfg := domain.DefaultEngineConfig()
	g, err := BuildGrid(100, 100, 0.5, 0.2, cfg)
	require.NoError(t, err)

	require.Len(t, g.SpotNodes, cfg.SpotSteps+1)
	require.Len(t, g.TimeGrid, cfg.TimeSteps+1)

	for i := 1; i < len(g.SpotNodes); i++ {
		assert.Greater(t, g.SpotNodes[i], g.SpotNodes[i-1], "spot nodes must be strictly increasing at index %d", i)
	}
	for i := 1; i < len(g.TimeGrid); i++ {
		assert.Greater(t, g.TimeGrid[i], g.TimeGrid[i-1])
	}

	assert.Equal(t, 0.0, g.TimeGrid[0])
	assert.InDelta(t, 0.5, g.TimeGrid[len(g.TimeGrid)-1], 1e-9)
	assert.InDelta(t, 0.5/float64(cfg.TimeSteps), g.Dt, 1e-12)

	// strike must be strictly interior.
	assert.Greater(t, g.SpotNodes[len(g.SpotNodes)-1], 100.0)
	assert.Less(t, g.SpotNodes[0], 100.0)

	// the pinned node must equal the strike exactly.
	assert.Equal(t, 100.0, g.SpotNodes[g.StrikeIndex])
}

func TestBuildGrid_StrikeOffCenter(t *testing.T) {
	cfg := domain.DefaultEngineConfig()
	g, err := BuildGrid(150, 100, 0.5, 0.2, cfg)
	require.NoError(t, err)

	assert.Equal(t, 100.0, g.SpotNodes[g.StrikeIndex])
	assert.Greater(t, g.SpotNodes[0], 0.0)
	assert.Greater(t, g.SpotNodes[len(g.SpotNodes)-1], 150.0)
}

func TestBuildGrid_RejectsOutOfRangeSigma(t *testing.T) {
	cfg := domain.DefaultEngineConfig()
	_, err := BuildGrid(100, 100, 0.5, 10.0, cfg)
	require.Error(t, err)
	assert.True(t, engerr.Is(err, engerr.OutOfBounds))
}

func TestBuildGrid_RejectsTauBelowOneTradingDay(t *testing.T) {
	cfg := domain.DefaultEngineConfig()
	_, err := BuildGrid(100, 100, 0.0001, 0.2, cfg)
	require.Error(t, err)
	assert.True(t, engerr.Is(err, engerr.OutOfBounds))
}

func TestBuildGrid_RejectsExtremeMoneyness(t *testing.T) {
	cfg := domain.DefaultEngineConfig()
	_, err := BuildGrid(1, 1000, 0.5, 0.2, cfg)
	require.Error(t, err)
	assert.True(t, engerr.Is(err, engerr.OutOfBounds))
}

func TestBuildGrid_LargerFarFieldMultiplierWidensRange(t *testing.T) {
	narrow := domain.DefaultEngineConfig().WithFarFieldMultiplier(3)
	wide := domain.DefaultEngineConfig().WithFarFieldMultiplier(5)

	gNarrow, err := BuildGrid(100, 100, 0.5, 0.2, narrow)
	require.NoError(t, err)
	gWide, err := BuildGrid(100, 100, 0.5, 0.2, wide)
	require.NoError(t, err)

	assert.Less(t, gWide.SpotNodes[0], gNarrow.SpotNodes[0])
	assert.Greater(t, gWide.SpotNodes[len(gWide.SpotNodes)-1], gNarrow.SpotNodes[len(gNarrow.SpotNodes)-1])
}
