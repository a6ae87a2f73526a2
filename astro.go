/*------------------------------------------------------------------------------
* astro.go : astronomical arguments of tidal lines
*
*          Copyright (C) 2025 by feng xuebin, All rights reserved.
*
* references :
*     [1] G.Petit and B.Luzum (eds), IERS Technical Note No. 36, IERS
*         Conventions (2010), 2010, chap 5.7 (delaunay arguments)
*     [2] A.T.Doodson, The harmonic development of the tide-generating
*         potential, Proc. R. Soc. Lond. A 100, 305-329, 1921
*
* history : 2025/03/02 1.0  new
*-----------------------------------------------------------------------------*/
package oloadgo

import "math"

/* delaunay arguments (deg) polynomials in julian centuries of tt ------------*/
var fundArgs = [5][5]float64{
	{134.9634025100, 477198.8675605000, 0.0088553333, 0.0000143431, -0.0000000680}, /* l  */
	{357.5291091806, 35999.0502911389, -0.0001536667, 0.0000000378, -0.0000000032}, /* l' */
	{93.2720906200, 483202.0174577222, -0.0035420000, -0.0000002881, 0.0000000012}, /* F  */
	{297.8501954694, 445267.1114469445, -0.0017696111, 0.0000018314, -0.0000000088}, /* D  */
	{125.0445550100, -1934.1362619722, 0.0020756111, 0.0000021394, -0.0000000165}, /* OM */
}

/* doodson arguments -----------------------------------------------------------
* compute doodson arguments (tau,s,h,p,N',ps) at epoch
* args   : gtime_t t        I   epoch (utc)
* return : doodson arguments (deg)
*-----------------------------------------------------------------------------*/
func DoodsonArgs(t Gtime) [6]float64 {
	var (
		f    [5]float64
		args [6]float64
	)
	tc := (Time2Jd(t) - JD2000 + TtUtc(t)/DAYSEC) / 36525.0

	for i := 0; i < 5; i++ {
		c := fundArgs[i]
		f[i] = c[0] + tc*(c[1]+tc*(c[2]+tc*(c[3]+tc*c[4])))
	}
	args[1] = f[2] + f[4]
	args[0] = 360.0*Time2DayFrac(t) - f[3]
	args[2] = args[1] - f[3]
	args[3] = args[1] - f[0]
	args[4] = -f[4]
	args[5] = args[2] - f[1]
	return args
}

/* astronomical argument of tidal line -----------------------------------------
* args   : Doodson n        I   doodson multipliers
*          double *args     I   doodson arguments (deg) by DoodsonArgs()
* return : argument (deg) in [0,360)
*-----------------------------------------------------------------------------*/
func Phase(n Doodson, args [6]float64) float64 {
	var p float64
	for i := 0; i < 6; i++ {
		p += float64(n[i]) * args[i]
	}
	return normDeg(p)
}

func normDeg(a float64) float64 {
	a = math.Mod(a, 360.0)
	if a < 0.0 {
		a += 360.0
	}
	return a
}
