package blackscholes

import (
	"math"

	"github.com/quantgrid/amerioption/internal/domain"
	"github.com/quantgrid/amerioption/internal/engerr"
)

// Greeks bundles the five European sensitivities so a single solve
// produces all of them without recomputing d1/d2.
type Greeks struct {
	Delta float64
	Gamma float64
	Vega  float64
	Theta float64
	Rho   float64
}

// Price evaluates the dividend-adjusted Black-Scholes price. At tau=0 it
// returns the intrinsic payoff directly.
func Price(S, K, tau, r, q, sigma float64, kind domain.OptionKind) (float64, error) {
	if err := validateInputs("blackscholes.Price", S, K, sigma, kind); err != nil {
		return 0, err
	}
	if tau == 0 {
		return kind.Intrinsic(S, K), nil
	}

	d1, d2 := d1d2(S, K, tau, r, q, sigma)
	if kind == domain.Call {
		return S*math.Exp(-q*tau)*cumulativeNormal(d1) - K*math.Exp(-r*tau)*cumulativeNormal(d2), nil
	}
	return K*math.Exp(-r*tau)*cumulativeNormal(-d2) - S*math.Exp(-q*tau)*cumulativeNormal(-d1), nil
}

// EvaluateGreeks evaluates the full Greeks set at once. At tau=0, Delta
// is the sign-of-moneyness indicator and every other Greek is zero.
func EvaluateGreeks(S, K, tau, r, q, sigma float64, kind domain.OptionKind) (Greeks, error) {
	if err := validateInputs("blackscholes.EvaluateGreeks", S, K, sigma, kind); err != nil {
		return Greeks{}, err
	}
	if tau == 0 {
		return Greeks{Delta: expirationDelta(S, K, kind)}, nil
	}

	d1, d2 := d1d2(S, K, tau, r, q, sigma)
	sqrtTau := math.Sqrt(tau)
	discQ := math.Exp(-q * tau)
	discR := math.Exp(-r * tau)
	phi := standardNormal(d1)

	var g Greeks
	if kind == domain.Call {
		g.Delta = discQ * cumulativeNormal(d1)
		g.Rho = K * tau * discR * cumulativeNormal(d2)
		g.Theta = -S*discQ*phi*sigma/(2*sqrtTau) - r*K*discR*cumulativeNormal(d2) + q*S*discQ*cumulativeNormal(d1)
	} else {
		g.Delta = discQ * (cumulativeNormal(d1) - 1)
		g.Rho = -K * tau * discR * cumulativeNormal(-d2)
		g.Theta = -S*discQ*phi*sigma/(2*sqrtTau) + r*K*discR*cumulativeNormal(-d2) - q*S*discQ*cumulativeNormal(-d1)
	}
	g.Gamma = discQ * phi / (S * sigma * sqrtTau)
	g.Vega = S * discQ * phi * sqrtTau

	return g, nil
}

func d1d2(S, K, tau, r, q, sigma float64) (d1, d2 float64) {
	sqrtTau := math.Sqrt(tau)
	d1 = (math.Log(S/K) + (r-q+0.5*sigma*sigma)*tau) / (sigma * sqrtTau)
	d2 = d1 - sigma*sqrtTau
	return d1, d2
}

func expirationDelta(S, K float64, kind domain.OptionKind) float64 {
	if kind == domain.Call {
		if S > K {
			return 1
		}
		return 0
	}
	if S < K {
		return -1
	}
	return 0
}

func validateInputs(op string, S, K, sigma float64, kind domain.OptionKind) error {
	if !kind.Valid() {
		return engerr.NewInvalidParameter(op, "kind", int(kind), "unrecognised option kind")
	}
	if S <= 0 || math.IsNaN(S) || math.IsInf(S, 0) {
		return engerr.NewInvalidParameter(op, "S", S, "must be a positive finite number")
	}
	if K <= 0 || math.IsNaN(K) || math.IsInf(K, 0) {
		return engerr.NewInvalidParameter(op, "K", K, "must be a positive finite number")
	}
	if sigma <= 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return engerr.NewInvalidParameter(op, "sigma", sigma, "must be a positive finite number")
	}
	return nil
}

// cumulativeNormal approximates the standard normal CDF N(x) via the
// Abramowitz-Stegun (1964) rational approximation, accurate to ~7.5e-8.
func cumulativeNormal(x float64) float64 {
	const (
		a1 = 0.31938153
		a2 = -0.356563782
		a3 = 1.781477937
		a4 = -1.821255978
		a5 = 1.330274429
	)

	k := 1.0 / (1.0 + 0.2316419*math.Abs(x))
	w := ((((a5*k+a4)*k+a3)*k+a2)*k + a1) * k

	phi := standardNormal(x)
	if x >= 0 {
		return 1.0 - phi*w
	}
	return phi * w
}

// standardNormal evaluates the standard normal PDF phi(x).
func standardNormal(x float64) float64 {
	return math.Exp(-0.5*x*x) / math.Sqrt(2*math.Pi)
}
