/*------------------------------------------------------------------------------
* recurs.go : recursive harmonic synthesis
*
*          Copyright (C) 2025 by feng xuebin, All rights reserved.
*
* references :
*     [1] G.Petit and B.Luzum (eds), IERS Technical Note No. 36, IERS
*         Conventions (2010), 2010, software HARDISP (RECURS)
*
* notes  : for each line the rotation (cos(n*w),sin(n*w)) is advanced by
*          angle addition and shared by the three directions. the rotation is
*          recomputed exactly every nl samples to bound round-off growth.
*
* history : 2025/03/02 1.0  new
*-----------------------------------------------------------------------------*/
package oloadgo

import (
	"fmt"
	"math"
)

/* check synthesis inputs ----------------------------------------------------*/
func checkSynthesis(sp [NDIR]*Spectrum, req SynthesisRequest, nl int) error {
	if req.N < 1 {
		return fmt.Errorf("%w: number of samples %d", ErrInvalidRequest, req.N)
	}
	if !(req.Interval > 0.0) || math.IsInf(req.Interval, 0) {
		return fmt.Errorf("%w: sample interval %g", ErrInvalidRequest, req.Interval)
	}
	if nl < 1 {
		return fmt.Errorf("%w: checkpoint interval %d", ErrInvalidRequest, nl)
	}
	for i := 1; i < NDIR; i++ {
		if sp[i].Len() != sp[0].Len() {
			return fmt.Errorf("%w: %d != %d lines", ErrFreqMismatch, sp[i].Len(), sp[0].Len())
		}
		for j := 0; j < sp[0].Len(); j++ {
			if sp[i].Freq[j] != sp[0].Freq[j] {
				return fmt.Errorf("%w: line %d", ErrFreqMismatch, j)
			}
		}
	}
	return nil
}

/* synthesize displacements ----------------------------------------------------
* synthesize displacement series by recursion
* args   : Spectrum *sp[3]  I   expanded spectra (up,west,south)
*          SynthesisRequest req I start epoch, samples and interval
*          int    nl        I   checkpoint interval (samples)
* return : displacements in epoch order, error
*-----------------------------------------------------------------------------*/
func Synthesize(sp [NDIR]*Spectrum, req SynthesisRequest, nl int) ([]Displacement, error) {
	if err := checkSynthesis(sp, req, nl); err != nil {
		return nil, err
	}
	nc := sp[0].Len()
	var (
		omega  = make([]float64, nc)
		cw, sw = make([]float64, nc), make([]float64, nc)
		c, s   = make([]float64, nc), make([]float64, nc)
		a, b   [NDIR][]float64
		out    = make([]Displacement, req.N)
	)
	for k := 0; k < nc; k++ {
		omega[k] = 2.0 * PI * sp[0].Freq[k] * req.Interval / DAYSEC
		cw[k], sw[k] = math.Cos(omega[k]), math.Sin(omega[k])
	}
	for d := 0; d < NDIR; d++ {
		a[d] = make([]float64, nc)
		b[d] = make([]float64, nc)
		for k := 0; k < nc; k++ {
			a[d][k] = sp[d].Amp[k] * math.Cos(sp[d].Phase[k]*D2R)
			b[d][k] = -sp[d].Amp[k] * math.Sin(sp[d].Phase[k]*D2R)
		}
	}
	for n := 0; n < req.N; n++ {
		if n%nl == 0 {
			for k := 0; k < nc; k++ {
				c[k] = math.Cos(float64(n) * omega[k])
				s[k] = math.Sin(float64(n) * omega[k])
			}
		} else {
			for k := 0; k < nc; k++ {
				c[k], s[k] = c[k]*cw[k]-s[k]*sw[k], s[k]*cw[k]+c[k]*sw[k]
			}
		}
		var x [NDIR]float64
		for d := 0; d < NDIR; d++ {
			for k := 0; k < nc; k++ {
				x[d] += a[d][k]*c[k] + b[d][k]*s[k]
			}
		}
		out[n] = Displacement{
			Time: TimeAdd(req.Start, float64(n)*req.Interval),
			U:    x[DirUp],
			W:    x[DirWest],
			S:    x[DirSouth],
		}
	}
	Trace(3, "synthesize: lines=%d samples=%d nl=%d\n", nc, req.N, nl)
	return out, nil
}

/* synthesize displacements (closed form) --------------------------------------
* reference evaluation of each sample by its own cosines
*-----------------------------------------------------------------------------*/
func SynthesizeDirect(sp [NDIR]*Spectrum, req SynthesisRequest) ([]Displacement, error) {
	if err := checkSynthesis(sp, req, 1); err != nil {
		return nil, err
	}
	out := make([]Displacement, req.N)

	for n := 0; n < req.N; n++ {
		var x [NDIR]float64
		for d := 0; d < NDIR; d++ {
			for k := 0; k < sp[d].Len(); k++ {
				w := 2.0 * PI * sp[d].Freq[k] * req.Interval / DAYSEC
				x[d] += sp[d].Amp[k] * math.Cos(sp[d].Phase[k]*D2R+float64(n)*w)
			}
		}
		out[n] = Displacement{
			Time: TimeAdd(req.Start, float64(n)*req.Interval),
			U:    x[DirUp],
			W:    x[DirWest],
			S:    x[DirSouth],
		}
	}
	return out, nil
}
