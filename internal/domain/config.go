package domain

import "github.com/quantgrid/amerioption/internal/engerr"

// Sane defaults for EngineConfig. GridConcentration and FarFieldMultiplier
// are heuristics (spec §9 Open Questions) exposed here rather than baked
// into the grid builder, so a caller/test can pin them for reproducibility.
const (
	DefaultTimeSteps          = 200
	DefaultSpotSteps          = 400
	DefaultGridConcentration  = 0.35
	DefaultFarFieldMultiplier = 4.0
)

// EngineConfig is the engine's only mutable-free, shareable state:
// time_steps, spot_steps, and the sinh-transform concentration. It is
// immutable after construction and safe to share across goroutines.
type EngineConfig struct {
	// TimeSteps (N_t) must be >= 10.
	TimeSteps int

	// SpotSteps (N_s) must be >= 20.
	SpotSteps int

	// GridConcentration (c) controls clustering of spot nodes near the
	// strike via the Tavella-Randall sinh transform; must be > 0.
	GridConcentration float64

	// FarFieldMultiplier (k) sets how many sigma*sqrt(tau) widths the
	// spot boundary sits from the strike; must be >= 3 (spec recommends
	// >= 4 for DoubleBoundary regimes so both frontiers stay interior).
	FarFieldMultiplier float64
}

// DefaultEngineConfig returns the reference tuning: N_t=200, N_s=400,
// c=0.35, k=4. Chain With... calls to override individual fields.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		TimeSteps:          DefaultTimeSteps,
		SpotSteps:          DefaultSpotSteps,
		GridConcentration:  DefaultGridConcentration,
		FarFieldMultiplier: DefaultFarFieldMultiplier,
	}
}

func (c EngineConfig) WithTimeSteps(n int) EngineConfig {
	c.TimeSteps = n
	return c
}

func (c EngineConfig) WithSpotSteps(n int) EngineConfig {
	c.SpotSteps = n
	return c
}

func (c EngineConfig) WithGridConcentration(conc float64) EngineConfig {
	c.GridConcentration = conc
	return c
}

func (c EngineConfig) WithFarFieldMultiplier(k float64) EngineConfig {
	c.FarFieldMultiplier = k
	return c
}

// Validate reports whether the config satisfies the invariants of spec
// §3. It never mutates c.
func (c EngineConfig) Validate() error {
	if c.TimeSteps < 10 {
		return engerr.NewOutOfBounds("EngineConfig.Validate", "TimeSteps", c.TimeSteps, "must be >= 10")
	}
	if c.SpotSteps < 20 {
		return engerr.NewOutOfBounds("EngineConfig.Validate", "SpotSteps", c.SpotSteps, "must be >= 20")
	}
	if c.GridConcentration <= 0 {
		return engerr.NewOutOfBounds("EngineConfig.Validate", "GridConcentration", c.GridConcentration, "must be > 0")
	}
	if c.FarFieldMultiplier < 3 {
		return engerr.NewOutOfBounds("EngineConfig.Validate", "FarFieldMultiplier", c.FarFieldMultiplier, "must be >= 3")
	}
	return nil
}
