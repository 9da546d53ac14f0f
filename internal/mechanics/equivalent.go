// Package mechanics derives scalar equivalent quantities from the symmetric
// tensor components reported at element integration points. Components are
// ordered xx, yy, zz, xy, xz, yz, matching the solver's .dat column layout.
package mechanics

import "math"

// TensorComponents is the number of symmetric tensor components per row.
const TensorComponents = 6

// Mises returns the von Mises equivalent stress for the six stress tensor
// components (sxx, syy, szz, sxy, sxz, syz).
func Mises(c []float64) float64 {
	return equivalent(c)
}

// EffectiveStrain returns the total effective strain for the six strain
// tensor components (exx, eyy, ezz, exy, exz, eyz).
func EffectiveStrain(c []float64) float64 {
	return (2.0 / 3.0) * equivalent(c)
}

func equivalent(c []float64) float64 {
	d1 := c[0] - c[1]
	d2 := c[1] - c[2]
	d3 := c[2] - c[0]
	return math.Sqrt(0.5*(d1*d1+d2*d2+d3*d3) + 3.0*(c[3]*c[3]+c[4]*c[4]+c[5]*c[5]))
}
