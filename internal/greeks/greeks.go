package greeks

import (
	"context"
	"math"

	"github.com/quantgrid/amerioption/internal/domain"
	"github.com/quantgrid/amerioption/internal/numeric"
	"github.com/quantgrid/amerioption/internal/pipeline"
	"github.com/quantgrid/amerioption/internal/validate"
	"golang.org/x/sync/errgroup"
)

// Bump sizes for the perturbed re-solves (spec §4.5), exported so a
// caller computing a single Greek (rather than the full Extract set)
// perturbs by the same amounts.
const (
	SigmaBump = 0.01
	RateBump  = 1e-4
	ThetaStep = 1.0 / 365.0
)

// Request bundles the contract parameters a Greeks extraction needs to
// re-run the pipeline at perturbed parameter points.
type Request struct {
	Config domain.EngineConfig
	S      float64
	K      float64
	Tau    float64
	R      float64
	Q      float64
	Sigma  float64
	Kind   domain.OptionKind
}

// Result bundles the five sensitivities produced by a single Extract
// call.
type Result struct {
	Delta float64
	Gamma float64
	Vega  float64
	Theta float64
	Rho   float64
}

// Extract computes Delta/Gamma from the already-solved base grid, and
// Vega/Theta/Rho from independent perturbed re-solves fanned out
// concurrently. base must be the result of pipeline.Solve at req's
// unperturbed parameters.
func Extract(req Request, base pipeline.Result) (Result, error) {
	delta, gamma := LocalDerivatives(base.Grid.SpotNodes, base.Values, req.S)

	var sigmaUp, sigmaDown, rUp, rDown, shortMaturity pipeline.Result

	g, _ := errgroup.WithContext(context.Background())
	g.Go(func() error {
		var err error
		sigmaUp, err = pipeline.Solve(req.Config, req.S, req.K, req.Tau, req.R, req.Q, req.Sigma+SigmaBump, req.Kind)
		return err
	})
	g.Go(func() error {
		var err error
		sigmaDown, err = pipeline.Solve(req.Config, req.S, req.K, req.Tau, req.R, req.Q, req.Sigma-SigmaBump, req.Kind)
		return err
	})
	g.Go(func() error {
		var err error
		rUp, err = pipeline.Solve(req.Config, req.S, req.K, req.Tau, req.R+RateBump, req.Q, req.Sigma, req.Kind)
		return err
	})
	g.Go(func() error {
		var err error
		rDown, err = pipeline.Solve(req.Config, req.S, req.K, req.Tau, req.R-RateBump, req.Q, req.Sigma, req.Kind)
		return err
	})
	thetaForward := req.Tau-ThetaStep < validate.MinTau
	g.Go(func() error {
		var err error
		if thetaForward {
			shortMaturity, err = pipeline.Solve(req.Config, req.S, req.K, req.Tau+ThetaStep, req.R, req.Q, req.Sigma, req.Kind)
		} else {
			shortMaturity, err = pipeline.Solve(req.Config, req.S, req.K, req.Tau-ThetaStep, req.R, req.Q, req.Sigma, req.Kind)
		}
		return err
	})

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	theta := (shortMaturity.Price - base.Price) / ThetaStep
	if thetaForward {
		theta = (base.Price - shortMaturity.Price) / ThetaStep
	}

	return Result{
		Delta: delta,
		Gamma: gamma,
		Vega:  (sigmaUp.Price - sigmaDown.Price) / (2 * SigmaBump),
		Theta: theta,
		Rho:   (rUp.Price - rDown.Price) / (2 * RateBump),
	}, nil
}

// LocalDerivatives central-differences the value slice across the three
// nodes bracketing S0, taking the node nearest S0 as the stencil center.
// Exported so a caller needing only Delta or only Gamma (not the full
// Extract set) can read them off an existing base solve for free.
func LocalDerivatives(nodes, values []float64, S float64) (delta, gamma float64) {
	center := numeric.BracketIndex(nodes, S)
	if center+1 <= len(nodes)-1 && math.Abs(nodes[center+1]-S) < math.Abs(nodes[center]-S) {
		center++
	}
	if center < 1 {
		center = 1
	}
	if center > len(nodes)-2 {
		center = len(nodes) - 2
	}

	xm, x0, xp := nodes[center-1], nodes[center], nodes[center+1]
	fm, f0, fp := values[center-1], values[center], values[center+1]

	delta = numeric.CentralFirstDerivative(xm, x0, xp, fm, f0, fp)
	gamma = numeric.CentralSecondDerivative(xm, x0, xp, fm, f0, fp)
	return delta, gamma
}

// Vega re-solves at sigma +/- SigmaBump and centers the difference. For
// a standalone Vega call (not part of a PriceWithDetails call) the two
// re-solves run sequentially; the concurrency is reserved for Extract,
// which has up to five independent re-solves to fan out at once.
func Vega(req Request) (float64, error) {
	up, err := pipeline.Solve(req.Config, req.S, req.K, req.Tau, req.R, req.Q, req.Sigma+SigmaBump, req.Kind)
	if err != nil {
		return 0, err
	}
	down, err := pipeline.Solve(req.Config, req.S, req.K, req.Tau, req.R, req.Q, req.Sigma-SigmaBump, req.Kind)
	if err != nil {
		return 0, err
	}
	return (up.Price - down.Price) / (2 * SigmaBump), nil
}

// Rho re-solves at r +/- RateBump and centers the difference.
func Rho(req Request) (float64, error) {
	up, err := pipeline.Solve(req.Config, req.S, req.K, req.Tau, req.R+RateBump, req.Q, req.Sigma, req.Kind)
	if err != nil {
		return 0, err
	}
	down, err := pipeline.Solve(req.Config, req.S, req.K, req.Tau, req.R-RateBump, req.Q, req.Sigma, req.Kind)
	if err != nil {
		return 0, err
	}
	return (up.Price - down.Price) / (2 * RateBump), nil
}

// Theta re-solves at the shortened maturity tau-ThetaStep and takes the
// one-sided difference against basePrice (spec §4.5 / §11.2: no sign flip
// is applied — the result is dV/dt in calendar time, i.e. -dV/du). When
// tau-ThetaStep would fall below the grid builder's minimum maturity (a
// 1-to-~1.7-day option), the differencing window shifts forward to
// (tau, tau+ThetaStep) instead, preserving the same smaller-tau-minus-
// larger-tau sign convention without ever solving outside validate.MinTau.
func Theta(req Request, basePrice float64) (float64, error) {
	if req.Tau-ThetaStep < validate.MinTau {
		long, err := pipeline.Solve(req.Config, req.S, req.K, req.Tau+ThetaStep, req.R, req.Q, req.Sigma, req.Kind)
		if err != nil {
			return 0, err
		}
		return (basePrice - long.Price) / ThetaStep, nil
	}

	short, err := pipeline.Solve(req.Config, req.S, req.K, req.Tau-ThetaStep, req.R, req.Q, req.Sigma, req.Kind)
	if err != nil {
		return 0, err
	}
	return (short.Price - basePrice) / ThetaStep, nil
}
