package numeric

// CentralFirstDerivative evaluates ∂f/∂x at the middle node of a
// three-point non-uniform stencil (xm, x0, xp), given the sampled values
// (fm, f0, fp). Reduces to the familiar (fp-fm)/(2h) formula when
// xp-x0 == x0-xm.
func CentralFirstDerivative(xm, x0, xp, fm, f0, fp float64) float64 {
	hm := x0 - xm
	hp := xp - x0
	return -hp/(hm*(hm+hp))*fm + (hp-hm)/(hm*hp)*f0 + hm/(hp*(hm+hp))*fp
}

// CentralSecondDerivative evaluates ∂²f/∂x² at the middle node of the
// same stencil.
func CentralSecondDerivative(xm, x0, xp, fm, f0, fp float64) float64 {
	hm := x0 - xm
	hp := xp - x0
	return 2 / (hm + hp) * (fm/hm - f0*(1/hm+1/hp) + fp/hp)
}
