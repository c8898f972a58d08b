package solver

import (
	"math"

	"github.com/quantgrid/amerioption/internal/boundary"
	"github.com/quantgrid/amerioption/internal/domain"
	"github.com/quantgrid/amerioption/internal/engerr"
	"github.com/quantgrid/amerioption/internal/grid"
	"github.com/quantgrid/amerioption/internal/numeric"
)

// rannacherSteps is the number of fully-implicit steps applied at the
// start of the sweep to damp the terminal-payoff kink (spec §4.4.1).
const rannacherSteps = 2

// crankNicolsonTheta is the theta weight used after the Rannacher steps.
const crankNicolsonTheta = 0.5

// Params bundles the contract parameters the stepper needs beyond the
// grid itself.
type Params struct {
	Kind   domain.OptionKind
	Regime domain.RateRegime
	K      float64
	R      float64
	Q      float64
	Sigma  float64
}

// StepBackward marches the value grid from the terminal payoff at u=0
// (t=tau) to u=tau (t=0), applying the Bermudan early-exercise
// projection at every interior node after each implicit solve. It
// returns the final value slice, aligned with g.SpotNodes.
func StepBackward(g *grid.Grid, p Params) ([]float64, error) {
	const op = "StepBackward"

	n := len(g.SpotNodes) - 1
	m := n - 1
	if m <= 0 {
		return nil, engerr.NewNumericalBreakdown(op, "grid has no interior nodes")
	}

	coeffs := buildOperatorCoeffs(g.SpotNodes, p.Sigma, p.R, p.Q)
	intrinsic := boundary.TerminalPayoff(p.Kind, g.SpotNodes, p.K)

	V := make([]float64, n+1)
	copy(V, intrinsic)

	sMin, sMax := g.SpotNodes[0], g.SpotNodes[n]
	nt := len(g.TimeGrid) - 1

	subA := make([]float64, m)
	diagB := make([]float64, m)
	supC := make([]float64, m)
	rhs := make([]float64, m)

	for step := 1; step <= nt; step++ {
		uN := g.TimeGrid[step-1]
		uNp1 := g.TimeGrid[step]
		dt := uNp1 - uN

		theta := crankNicolsonTheta
		if step <= rannacherSteps {
			theta = 1.0
		}

		lowN, highN, err := boundary.Values(p.Kind, p.Regime, uN, p.K, sMin, sMax, p.R, p.Q)
		if err != nil {
			return nil, err
		}
		lowNp1, highNp1, err := boundary.Values(p.Kind, p.Regime, uNp1, p.K, sMin, sMax, p.R, p.Q)
		if err != nil {
			return nil, err
		}

		for j := 0; j < m; j++ {
			i := j + 1
			a, b, c := coeffs.sub[i], coeffs.diag[i], coeffs.sup[i]

			left := V[i-1]
			if i == 1 {
				left = lowN
			}
			right := V[i+1]
			if i == n-1 {
				right = highN
			}

			rhs[j] = V[i] + dt*(1-theta)*(a*left+b*V[i]+c*right)

			subA[j] = -dt * theta * a
			diagB[j] = 1 - dt*theta*b
			supC[j] = -dt * theta * c
		}
		// Boundary contributions move to the RHS since V_0 and V_n at
		// level n+1 are known Dirichlet values, not unknowns.
		rhs[0] += dt * theta * coeffs.sub[1] * lowNp1
		rhs[m-1] += dt * theta * coeffs.sup[n-1] * highNp1
		subA[0] = 0
		supC[m-1] = 0

		cont, err := numeric.Thomas(subA, diagB, supC, rhs)
		if err != nil {
			return nil, err
		}

		next := make([]float64, n+1)
		next[0] = lowNp1
		next[n] = highNp1
		for j := 0; j < m; j++ {
			i := j + 1
			v := math.Max(cont[j], intrinsic[i])
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, engerr.NewNumericalBreakdown(op, "continuation value is non-finite after projection")
			}
			next[i] = v
		}
		V = next
	}

	return V, nil
}
