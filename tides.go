/*------------------------------------------------------------------------------
* tides.go : ocean tide loading by 11 constituents
*
*          Copyright (C) 2015-2025 by T.TAKASU, feng xuebin, All rights reserved.
*
* references :
*     [1] D.D.McCarthy, IERS Technical Note 21, IERS Conventions 1996, July 1996
*     [2] D.D.McCarthy and G.Petit, IERS Technical Note 32, IERS Conventions
*         2003, November 2003
*
* history : 2015/05/10 1.0  separated from ppp.c
*           2015/06/11 1.1  fix bug on computing days in tide_oload() (#128)
*           2022/05/31 1.0  rewrite tides.c with golang by fxb
*           2025/03/02 1.1  take station coefficients, return up/west/south,
*                           add synthesizesimple()
*-----------------------------------------------------------------------------*/
package oloadgo

import "math"

/* angular speed (rad/s) and multipliers of (H0,S0,P0,pi/2) of blq waves ---*/
var oloadArgs = [NTIN][5]float64{
	{1.40519e-4, 2.0, -2.0, 0.0, 0.00},  /* M2 */
	{1.45444e-4, 0.0, 0.0, 0.0, 0.00},   /* S2 */
	{1.37880e-4, 2.0, -3.0, 1.0, 0.00},  /* N2 */
	{1.45842e-4, 2.0, 0.0, 0.0, 0.00},   /* K2 */
	{0.72921e-4, 1.0, 0.0, 0.0, 0.25},   /* K1 */
	{0.67598e-4, 1.0, -2.0, 0.0, -0.25}, /* O1 */
	{0.72523e-4, -1.0, 0.0, 0.0, -0.25}, /* P1 */
	{0.64959e-4, 1.0, -3.0, 1.0, -0.25}, /* Q1 */
	{0.53234e-5, 0.0, 2.0, 0.0, 0.00},   /* Mf */
	{0.26392e-5, 0.0, 1.0, -1.0, 0.00},  /* Mm */
	{0.03982e-5, 2.0, 0.0, 0.0, 0.00},   /* Ssa */
}

/* displacement by ocean tide loading (ref [2] 7) ------------------------------
* args   : gtime_t tut      I   epoch (ut)
*          Station *sta     I   station coefficients (blq order of waves)
* return : displacement (up,west,south) (m)
*-----------------------------------------------------------------------------*/
func TideOload(tut Gtime, sta *Station) Displacement {
	var (
		ep1975 = []float64{1975, 1, 1, 0, 0, 0}
		ep     [6]float64
		a      [5]float64
		dp     [NDIR]float64
	)
	Trace(5, "tide_oload:\n")

	/* angular argument: see subroutine arg.f for reference [1] */
	Time2Epoch(tut, ep[:])
	fday := ep[3]*3600.0 + ep[4]*60.0 + ep[5]
	ep[3], ep[4], ep[5] = 0.0, 0.0, 0.0
	days := TimeDiff(Epoch2Time(ep[:]), Epoch2Time(ep1975))/86400.0 + 1.0
	t := (27392.500528 + 1.000000035*days) / 36525.0
	t2 := t * t
	t3 := t2 * t

	a[0] = fday
	a[1] = (279.69668 + 36000.768930485*t + 3.03e-4*t2) * D2R               /* H0 */
	a[2] = (270.434358 + 481267.88314137*t - 0.001133*t2 + 1.9e-6*t3) * D2R /* S0 */
	a[3] = (334.329653 + 4069.0340329577*t - 0.010325*t2 - 1.2e-5*t3) * D2R /* P0 */
	a[4] = 2.0 * PI

	/* displacements by 11 constituents (phase stored as negative lag) */
	for i := 0; i < NTIN; i++ {
		var ang float64
		for j := 0; j < 5; j++ {
			ang += a[j] * oloadArgs[i][j]
		}
		for d := 0; d < NDIR; d++ {
			w := sta.Waves[d][i]
			dp[d] += w.Amp * math.Cos(ang+w.Phase*D2R)
		}
	}
	Trace(5, "tide_oload: u=%.4f w=%.4f s=%.4f\n", dp[DirUp], dp[DirWest], dp[DirSouth])
	return Displacement{Time: tut, U: dp[DirUp], W: dp[DirWest], S: dp[DirSouth]}
}

/* synthesize displacements by 11 constituents ---------------------------------
* series of TideOload() at the request epochs (no admittance interpolation)
*-----------------------------------------------------------------------------*/
func SynthesizeSimple(sta *Station, req SynthesisRequest) ([]Displacement, error) {
	var none [NDIR]*Spectrum
	if err := checkSynthesis(none, req, 1); err != nil {
		return nil, err
	}
	out := make([]Displacement, req.N)
	for n := 0; n < req.N; n++ {
		out[n] = TideOload(TimeAdd(req.Start, float64(n)*req.Interval), sta)
	}
	return out, nil
}
