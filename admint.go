/*------------------------------------------------------------------------------
* admint.go : admittance interpolation of ocean loading
*
*          Copyright (C) 2025 by feng xuebin, All rights reserved.
*
* references :
*     [1] G.Petit and B.Luzum (eds), IERS Technical Note No. 36, IERS
*         Conventions (2010), 2010, chap 7.1.2, software HARDISP (ADMINT)
*     [2] W.E.Farrell, Deformation of the earth by surface loads, Rev. Geophys.
*         Space Phys., 10, 761-797, 1972
*
* notes  : the admittance of a reference wave is its loading amplitude and
*          phase divided by the equilibrium amplitude of the line. real and
*          imaginary parts are splined separately against frequency inside
*          each band (species). long-period lines carry an extra 180 deg and
*          diurnal lines 90 deg of astronomical phase.
*
* history : 2025/03/02 1.0  new
*-----------------------------------------------------------------------------*/
package oloadgo

import (
	"fmt"
	"math"
	"sort"
)

type knot struct {
	freq, re, im float64
}

var bandOffset = [...]float64{180.0, 90.0, 0.0} /* phase offset by species (deg) */

/* interpolate admittance ------------------------------------------------------
* expand reference waves of one direction to the catalog lines
* args   : Catalog *cat     I   constituent catalog
*          ReferenceWave *waves I reference waves (amp (m), phase (deg))
*          gtime_t t        I   start epoch (utc)
* return : expanded spectrum, error
*-----------------------------------------------------------------------------*/
func Interpolate(cat *Catalog, waves []ReferenceWave, t Gtime) (*Spectrum, error) {
	return interpolateArgs(cat, waves, DoodsonArgs(t))
}

func interpolateArgs(cat *Catalog, waves []ReferenceWave, args [6]float64) (*Spectrum, error) {
	var knots [len(Bands)][]knot

	for _, w := range waves {
		i, ok := cat.Lookup(w.Doodson)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownWave, w.Doodson)
		}
		c := cat.Line(i)
		if c.Band == BandNone {
			continue
		}
		a := w.Amp / math.Abs(c.Amp)
		knots[c.Band] = append(knots[c.Band], knot{
			freq: c.Freq,
			re:   a * math.Cos(w.Phase*D2R),
			im:   a * math.Sin(w.Phase*D2R),
		})
	}
	var sre, sim [len(Bands)]*Spline

	for _, b := range Bands {
		k := knots[b]
		switch {
		case len(k) == 0:
			if n := cat.BandLen(b); n > 0 {
				Trace(2, "interpolate: no reference waves in %s band, %d lines dropped\n", b, n)
			}
			continue
		case len(k) < MINKNOTS:
			return nil, fmt.Errorf("%w: %s band has %d reference waves", ErrIllPosed, b, len(k))
		}
		sort.Slice(k, func(i, j int) bool { return k[i].freq < k[j].freq })

		x := make([]float64, len(k))
		re := make([]float64, len(k))
		im := make([]float64, len(k))
		for i := range k {
			x[i], re[i], im[i] = k[i].freq, k[i].re, k[i].im
		}
		var err error
		if sre[b], err = NewSpline(x, re); err != nil {
			return nil, fmt.Errorf("%w: %s band: %v", ErrIllPosed, b, err)
		}
		if sim[b], err = NewSpline(x, im); err != nil {
			return nil, fmt.Errorf("%w: %s band: %v", ErrIllPosed, b, err)
		}
		Trace(4, "interpolate: band=%s knots=%d\n", b, len(k))
	}
	sp := &Spectrum{}

	for i, c := range cat.lines {
		if c.Band == BandNone || sre[c.Band] == nil {
			continue
		}
		re := sre[c.Band].Eval(c.Freq)
		im := sim[c.Band].Eval(c.Freq)
		lag := math.Atan2(im, re) * R2D

		ph := Phase(c.Doodson, args) + bandOffset[c.Band] + lag
		if c.Amp < 0.0 {
			ph += 180.0
		}
		sp.Index = append(sp.Index, i)
		sp.Freq = append(sp.Freq, c.Freq)
		sp.Amp = append(sp.Amp, math.Abs(c.Amp)*math.Hypot(re, im))
		sp.Phase = append(sp.Phase, normDeg(ph))
		sp.Lag = append(sp.Lag, lag)
	}
	Trace(3, "interpolate: catalog=%s lines=%d\n", cat.Version, sp.Len())
	return sp, nil
}
