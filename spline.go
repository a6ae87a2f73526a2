/*------------------------------------------------------------------------------
* spline.go : cubic spline of admittance
*
*          Copyright (C) 2025 by feng xuebin, All rights reserved.
*
* references :
*     [1] G.Petit and B.Luzum (eds), IERS Technical Note No. 36, IERS
*         Conventions (2010), 2010, software HARDISP (SPLINE, EVAL)
*
* notes  : end slopes are taken from the parabola through the three knots at
*          each end of the span. with three knots or less the second
*          derivatives are zero (piecewise linear).
*
* history : 2025/03/02 1.0  new
*-----------------------------------------------------------------------------*/
package oloadgo

import (
	"fmt"
	"sort"
)

type Spline struct {
	x []float64 /* knots, strictly increasing */
	y []float64 /* values at knots */
	s []float64 /* second derivatives at knots */
}

/* slope of parabola through (0,0),(x1,u1),(x2,u2) at 0 ----------------------*/
func endSlope(u1, x1, u2, x2 float64) float64 {
	return (u1/(x1*x1) - u2/(x2*x2)) / (1.0/x1 - 1.0/x2)
}

/* new spline ------------------------------------------------------------------
* set up cubic spline through knots
* args   : double *x        I   knot abscissas (strictly increasing)
*          double *y        I   knot values
* return : spline, error
*-----------------------------------------------------------------------------*/
func NewSpline(x, y []float64) (*Spline, error) {
	n := len(x)
	if n != len(y) {
		return nil, fmt.Errorf("spline: %d knots, %d values", n, len(y))
	}
	for i := 1; i < n; i++ {
		if x[i] <= x[i-1] {
			return nil, fmt.Errorf("spline: knots not increasing at %d", i)
		}
	}
	sp := &Spline{
		x: append([]float64(nil), x...),
		y: append([]float64(nil), y...),
		s: make([]float64, n),
	}
	if n <= 3 {
		return sp, nil
	}
	var (
		s = sp.s
		a = make([]float64, n)
	)
	q1 := endSlope(y[1]-y[0], x[1]-x[0], y[2]-y[0], x[2]-x[0])
	qn := endSlope(y[n-2]-y[n-1], x[n-2]-x[n-1], y[n-3]-y[n-1], x[n-3]-x[n-1])

	s[0] = 6.0 * ((y[1]-y[0])/(x[1]-x[0]) - q1)
	for i := 1; i < n-1; i++ {
		s[i] = 6.0 * (y[i-1]/(x[i]-x[i-1]) - y[i]*(1.0/(x[i]-x[i-1])+1.0/(x[i+1]-x[i])) +
			y[i+1]/(x[i+1]-x[i]))
	}
	s[n-1] = 6.0 * (qn + (y[n-2]-y[n-1])/(x[n-1]-x[n-2]))

	/* forward elimination */
	a[0] = 2.0 * (x[1] - x[0])
	a[1] = 1.5*(x[1]-x[0]) + 2.0*(x[2]-x[1])
	s[1] -= 0.5 * s[0]
	for i := 2; i < n-1; i++ {
		c := (x[i] - x[i-1]) / a[i-1]
		a[i] = 2.0*(x[i+1]-x[i-1]) - c*(x[i]-x[i-1])
		s[i] -= c * s[i-1]
	}
	c := (x[n-1] - x[n-2]) / a[n-2]
	a[n-1] = (2.0 - c) * (x[n-1] - x[n-2])
	s[n-1] -= c * s[n-2]

	/* back substitution */
	s[n-1] /= a[n-1]
	for i := n - 2; i >= 0; i-- {
		s[i] = (s[i] - (x[i+1]-x[i])*s[i+1]) / a[i]
	}
	return sp, nil
}

/* evaluate spline -------------------------------------------------------------
* args   : double xi        I   abscissa
* return : interpolated value, value of the nearest end knot outside the span
*-----------------------------------------------------------------------------*/
func (sp *Spline) Eval(xi float64) float64 {
	n := len(sp.x)
	if n == 0 {
		return 0.0
	}
	if xi <= sp.x[0] {
		return sp.y[0]
	}
	if xi >= sp.x[n-1] {
		return sp.y[n-1]
	}
	k := sort.SearchFloat64s(sp.x, xi) /* x[k-1] < xi <= x[k] */
	k1, k2 := k-1, k

	dk := sp.x[k2] - sp.x[k1]
	dy := sp.x[k2] - xi
	dy1 := xi - sp.x[k1]
	return (sp.s[k1]*dy*dy*dy+sp.s[k2]*dy1*dy1*dy1)/(6.0*dk) +
		dy1*(sp.y[k2]/dk-sp.s[k2]*dk/6.0) + dy*(sp.y[k1]/dk-sp.s[k1]*dk/6.0)
}

// Len returns the number of knots.
func (sp *Spline) Len() int { return len(sp.x) }
