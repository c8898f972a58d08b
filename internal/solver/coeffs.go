package solver

// operatorCoeffs holds the constant tridiagonal coefficients of the
// Black-Scholes operator L[V] = 0.5*sigma^2*S^2*V_SS + (r-q)*S*V_S - r*V
// at every interior spot node, evaluated once per price() call since
// they depend only on S_i, sigma, r, q (spec §4.4.4).
type operatorCoeffs struct {
	sub  []float64 // coefficient of V_{i-1}, index i in [1, n-1]
	diag []float64 // coefficient of V_i
	sup  []float64 // coefficient of V_{i+1}
}

// buildOperatorCoeffs evaluates the three-point non-uniform central
// difference stencils for V_S and V_SS at each interior node and folds
// them into the operator's tridiagonal coefficients. Index 0 and n are
// left zero; they are never read (the boundary is Dirichlet).
func buildOperatorCoeffs(spotNodes []float64, sigma, r, q float64) operatorCoeffs {
	n := len(spotNodes) - 1
	coeffs := operatorCoeffs{
		sub:  make([]float64, n+1),
		diag: make([]float64, n+1),
		sup:  make([]float64, n+1),
	}

	for i := 1; i < n; i++ {
		s := spotNodes[i]
		hm := s - spotNodes[i-1]
		hp := spotNodes[i+1] - s

		// First-derivative stencil coefficients.
		fm := -hp / (hm * (hm + hp))
		f0 := (hp - hm) / (hm * hp)
		fp := hm / (hp * (hm + hp))

		// Second-derivative stencil coefficients.
		sm := 2 / (hm * (hm + hp))
		s0 := -2 / (hm + hp) * (1/hm + 1/hp)
		sp := 2 / (hp * (hm + hp))

		halfSigma2S2 := 0.5 * sigma * sigma * s * s
		driftS := (r - q) * s

		coeffs.sub[i] = halfSigma2S2*sm + driftS*fm
		coeffs.diag[i] = halfSigma2S2*s0 + driftS*f0 - r
		coeffs.sup[i] = halfSigma2S2*sp + driftS*fp
	}

	return coeffs
}
