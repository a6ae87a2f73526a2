/*------------------------------------------------------------------------------
* hardisp.go : ocean loading displacement series
*
*          Copyright (C) 2025 by feng xuebin, All rights reserved.
*
* references :
*     [1] G.Petit and B.Luzum (eds), IERS Technical Note No. 36, IERS
*         Conventions (2010), 2010, chap 7.1.2, software HARDISP
*
* history : 2025/03/02 1.0  new
*-----------------------------------------------------------------------------*/
package oloadgo

import (
	"bufio"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"
)

/* expand station coefficients -------------------------------------------------
* interpolate admittances of up, west and south at start epoch
* args   : Catalog *cat     I   constituent catalog (nil: built-in)
*          Station *sta     I   station coefficients
*          gtime_t t        I   start epoch (utc)
* return : spectra (up,west,south), error
*-----------------------------------------------------------------------------*/
func Expand(cat *Catalog, sta *Station, t Gtime) ([NDIR]*Spectrum, error) {
	var (
		sp  [NDIR]*Spectrum
		g   errgroup.Group
		arg = DoodsonArgs(t)
	)
	if cat == nil {
		cat = DefaultCatalog()
	}
	for d := 0; d < NDIR; d++ {
		d := d
		g.Go(func() error {
			s, err := interpolateArgs(cat, sta.Waves[d][:], arg)
			if err != nil {
				return err
			}
			sp[d] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return sp, err
	}
	for d := 1; d < NDIR; d++ {
		if sp[d].Len() != sp[0].Len() {
			return sp, fmt.Errorf("%w: %d != %d lines", ErrFreqMismatch, sp[d].Len(), sp[0].Len())
		}
	}
	return sp, nil
}

/* ocean loading displacement series -------------------------------------------
* compute displacements by ocean tide loading at equally spaced epochs
* args   : Catalog *cat     I   constituent catalog (nil: built-in)
*          Station *sta     I   station coefficients
*          SynthesisRequest req I start epoch (utc), samples, interval (s)
*          OtlOpt *opt      I   options (mode, checkpoint)
* return : displacements in epoch order, error
* notes  : nothing is returned unless the whole series succeeds
*-----------------------------------------------------------------------------*/
func Hardisp(cat *Catalog, sta *Station, req SynthesisRequest, opt *OtlOpt) ([]Displacement, error) {
	var none [NDIR]*Spectrum

	nl := opt.Checkpoint
	if nl == 0 {
		nl = NL_DEFLT
	}
	if err := checkSynthesis(none, req, nl); err != nil {
		return nil, err
	}
	Tracet(3, "hardisp: sta=%s t=%s n=%d dt=%.1f mode=%d\n", sta.Name, TimeStr(req.Start, 0),
		req.N, req.Interval, opt.Mode)

	if opt.Mode == OTL_SIMPL {
		return SynthesizeSimple(sta, req)
	}
	sp, err := Expand(cat, sta, req.Start)
	if err != nil {
		return nil, err
	}
	out, err := Synthesize(sp, req, nl)
	if err != nil {
		return nil, err
	}
	Tracet(3, "hardisp: lines=%d samples=%d\n", sp[0].Len(), len(out))
	return out, nil
}

/* output displacements --------------------------------------------------------
* write displacement series, one epoch per line
* args   : io.Writer w      I   output
*          Displacement *samples I displacements
*          OtlOpt *opt      I   options (order, time column, decimals)
* return : error
*-----------------------------------------------------------------------------*/
func OutDisp(w io.Writer, samples []Displacement, opt *OtlOpt) error {
	bw := bufio.NewWriter(w)
	dec := opt.Decimals
	if dec <= 0 {
		dec = 6
	}
	for _, s := range samples {
		if opt.OutTime != 0 {
			fmt.Fprintf(bw, "%s ", TimeStr(s.Time, 0))
		}
		a, b := s.S, s.W
		if opt.Order == 1 {
			a, b = s.W, s.S
		}
		if _, err := fmt.Fprintf(bw, "%14.*f%14.*f%14.*f\n", dec, s.U, dec, a, dec, b); err != nil {
			return err
		}
	}
	return bw.Flush()
}
