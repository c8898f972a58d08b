package option

import (
	"github.com/quantgrid/amerioption/internal/blackscholes"
	"github.com/quantgrid/amerioption/internal/domain"
	"github.com/quantgrid/amerioption/internal/greeks"
	"github.com/quantgrid/amerioption/internal/pipeline"
	"github.com/quantgrid/amerioption/internal/regime"
	"github.com/quantgrid/amerioption/internal/validate"
)

// Engine holds only an EngineConfig; it carries no mutable state and is
// safe to share across goroutines. Every method call builds and
// discards its own grid.
type Engine struct {
	cfg domain.EngineConfig
}

// NewEngine validates cfg and returns an Engine bound to it.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Price computes the American price, classified regime, and
// early-exercise premium over the closed-form European price. It leaves
// the Greek fields zero; call PriceWithDetails for those, or one of
// Delta/Gamma/Vega/Theta/Rho for a single sensitivity.
func (e *Engine) Price(S, K, tau, r, q, sigma float64, kind OptionKind) (PricingResult, error) {
	const op = "Price"
	if err := validate.PricingInputs(op, S, K, tau, r, q, sigma, kind); err != nil {
		return PricingResult{}, err
	}

	if tau == 0 {
		rg, err := regime.Classify(r, q, kind)
		if err != nil {
			return PricingResult{}, err
		}
		return PricingResult{
			Price:  kind.Intrinsic(S, K),
			Regime: rg,
			Method: domain.MethodFiniteDifference,
		}, nil
	}

	res, err := pipeline.Solve(e.cfg, S, K, tau, r, q, sigma, kind)
	if err != nil {
		return PricingResult{}, err
	}
	euro, err := blackscholes.Price(S, K, tau, r, q, sigma, kind)
	if err != nil {
		return PricingResult{}, err
	}

	return PricingResult{
		Price:                res.Price,
		Regime:               res.Regime,
		Method:               domain.MethodFiniteDifference,
		EarlyExercisePremium: res.Price - euro,
	}, nil
}

// Delta returns dPrice/dS, read off the base solve's value slice by
// central differencing (no extra solve needed).
func (e *Engine) Delta(S, K, tau, r, q, sigma float64, kind OptionKind) (float64, error) {
	const op = "Delta"
	if err := validate.PricingInputs(op, S, K, tau, r, q, sigma, kind); err != nil {
		return 0, err
	}
	if tau == 0 {
		g, err := blackscholes.EvaluateGreeks(S, K, 0, r, q, sigma, kind)
		if err != nil {
			return 0, err
		}
		return g.Delta, nil
	}

	base, err := pipeline.Solve(e.cfg, S, K, tau, r, q, sigma, kind)
	if err != nil {
		return 0, err
	}
	delta, _ := greeks.LocalDerivatives(base.Grid.SpotNodes, base.Values, S)
	return delta, nil
}

// Gamma returns d^2Price/dS^2, read off the base solve's value slice by
// central differencing (no extra solve needed).
func (e *Engine) Gamma(S, K, tau, r, q, sigma float64, kind OptionKind) (float64, error) {
	const op = "Gamma"
	if err := validate.PricingInputs(op, S, K, tau, r, q, sigma, kind); err != nil {
		return 0, err
	}
	if tau == 0 {
		g, err := blackscholes.EvaluateGreeks(S, K, 0, r, q, sigma, kind)
		if err != nil {
			return 0, err
		}
		return g.Gamma, nil
	}

	base, err := pipeline.Solve(e.cfg, S, K, tau, r, q, sigma, kind)
	if err != nil {
		return 0, err
	}
	_, gamma := greeks.LocalDerivatives(base.Grid.SpotNodes, base.Values, S)
	return gamma, nil
}

// Vega returns dPrice/dSigma via two re-solves at sigma +/- 0.01.
func (e *Engine) Vega(S, K, tau, r, q, sigma float64, kind OptionKind) (float64, error) {
	const op = "Vega"
	if err := validate.PricingInputs(op, S, K, tau, r, q, sigma, kind); err != nil {
		return 0, err
	}
	if tau == 0 {
		g, err := blackscholes.EvaluateGreeks(S, K, 0, r, q, sigma, kind)
		if err != nil {
			return 0, err
		}
		return g.Vega, nil
	}

	return greeks.Vega(greeks.Request{Config: e.cfg, S: S, K: K, Tau: tau, R: r, Q: q, Sigma: sigma, Kind: kind})
}

// Theta returns (V(tau-h)-V(tau))/h, h=1/365, via one re-solve at the
// shortened maturity. When tau-h would fall below the minimum maturity,
// it re-solves at tau+h instead and returns (V(tau)-V(tau+h))/h.
func (e *Engine) Theta(S, K, tau, r, q, sigma float64, kind OptionKind) (float64, error) {
	const op = "Theta"
	if err := validate.PricingInputs(op, S, K, tau, r, q, sigma, kind); err != nil {
		return 0, err
	}
	if tau == 0 {
		g, err := blackscholes.EvaluateGreeks(S, K, 0, r, q, sigma, kind)
		if err != nil {
			return 0, err
		}
		return g.Theta, nil
	}

	base, err := pipeline.Solve(e.cfg, S, K, tau, r, q, sigma, kind)
	if err != nil {
		return 0, err
	}
	req := greeks.Request{Config: e.cfg, S: S, K: K, Tau: tau, R: r, Q: q, Sigma: sigma, Kind: kind}
	return greeks.Theta(req, base.Price)
}

// Rho returns dPrice/dr via two re-solves at r +/- 1e-4.
func (e *Engine) Rho(S, K, tau, r, q, sigma float64, kind OptionKind) (float64, error) {
	const op = "Rho"
	if err := validate.PricingInputs(op, S, K, tau, r, q, sigma, kind); err != nil {
		return 0, err
	}
	if tau == 0 {
		g, err := blackscholes.EvaluateGreeks(S, K, 0, r, q, sigma, kind)
		if err != nil {
			return 0, err
		}
		return g.Rho, nil
	}

	return greeks.Rho(greeks.Request{Config: e.cfg, S: S, K: K, Tau: tau, R: r, Q: q, Sigma: sigma, Kind: kind})
}

// PriceWithDetails computes the price, every Greek, the classified
// regime, and the early-exercise premium in one call. Vega/Theta/Rho's
// five independent re-solves run concurrently (internal/greeks, via
// errgroup); Delta/Gamma come off the same base solve those re-solves
// are differenced against.
func (e *Engine) PriceWithDetails(S, K, tau, r, q, sigma float64, kind OptionKind) (PricingResult, error) {
	const op = "PriceWithDetails"
	if err := validate.PricingInputs(op, S, K, tau, r, q, sigma, kind); err != nil {
		return PricingResult{}, err
	}

	if tau == 0 {
		rg, err := regime.Classify(r, q, kind)
		if err != nil {
			return PricingResult{}, err
		}
		g, err := blackscholes.EvaluateGreeks(S, K, 0, r, q, sigma, kind)
		if err != nil {
			return PricingResult{}, err
		}
		return PricingResult{
			Price:  kind.Intrinsic(S, K),
			Delta:  g.Delta,
			Regime: rg,
			Method: domain.MethodFiniteDifference,
		}, nil
	}

	base, err := pipeline.Solve(e.cfg, S, K, tau, r, q, sigma, kind)
	if err != nil {
		return PricingResult{}, err
	}

	req := greeks.Request{Config: e.cfg, S: S, K: K, Tau: tau, R: r, Q: q, Sigma: sigma, Kind: kind}
	gks, err := greeks.Extract(req, base)
	if err != nil {
		return PricingResult{}, err
	}

	euro, err := blackscholes.Price(S, K, tau, r, q, sigma, kind)
	if err != nil {
		return PricingResult{}, err
	}

	return PricingResult{
		Price:                base.Price,
		Delta:                gks.Delta,
		Gamma:                gks.Gamma,
		Vega:                 gks.Vega,
		Theta:                gks.Theta,
		Rho:                  gks.Rho,
		Regime:               base.Regime,
		Method:               domain.MethodFiniteDifference,
		EarlyExercisePremium: base.Price - euro,
	}, nil
}
