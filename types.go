/*------------------------------------------------------------------------------
* types.go : oloadgo constants and types
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
* references :
*     [1] G.Petit and B.Luzum (eds), IERS Technical Note No. 36, IERS
*         Conventions (2010), 2010, chap 7.1.2
*     [2] D.E.Cartwright and A.C.Edden, Corrected tables of tidal harmonics,
*         Geophys. J. R. astr. Soc., 33, 253-264, 1973
*
* history : 2022/05/31 1.0  new (gnssgo)
*           2025/03/02 1.1  ocean loading types for hardisp
*-----------------------------------------------------------------------------*/
package oloadgo

import "errors"

const (
	VER_OLOADGO       = "0.1.0" /* library version */
	PATCH_LEVEL       = "001"   /* patch level */
	COPYRIGHT_OLOADGO = "Copyright (C) 2022-2025 Feng Xuebin\nAll rights reserved."

	PI      float64 = 3.1415926535897932 /* pi */
	D2R             = (PI / 180.0)       /* deg to rad */
	R2D             = (180.0 / PI)       /* rad to deg */
	DAYSEC  float64 = 86400.0            /* seconds per day */
	JD2000  float64 = 2451545.0          /* julian date of J2000.0 */
	JD1970  float64 = 2440587.5          /* julian date of 1970/1/1 00:00 */
	TTTAI   float64 = 32.184             /* TT-TAI (s) */
	TAIGPST float64 = 19.0               /* TAI-GPST (s) */

	NTIN      = 11  /* number of BLQ reference waves */
	NDIR      = 3   /* number of displacement directions */
	NL_DEFLT  = 600 /* default checkpoint interval of recursion (samples) */
	MAXLEAPS  = 64  /* max number of leap seconds table */
	MINKNOTS  = 3   /* min reference waves for a band spline */
	OTL_SIMPL = 0   /* ocean loading mode: 11 constituents, direct */
	OTL_HARDI = 1   /* ocean loading mode: admittance interpolation */
)

const (
	DirUp    = 0 /* displacement direction: radial (up) */
	DirWest  = 1 /* displacement direction: west */
	DirSouth = 2 /* displacement direction: south */
)

var (
	ErrIllPosed       = errors.New("ill-posed admittance interpolation")
	ErrInvalidRequest = errors.New("invalid synthesis request")
	ErrFreqMismatch   = errors.New("frequency lists differ between directions")
	ErrUnknownWave    = errors.New("reference wave not in catalog")
	ErrBlqFormat      = errors.New("blq format error")
	ErrCatalogFormat  = errors.New("catalog format error")
	ErrNoStation      = errors.New("station not found")
)

/* tidal band ----------------------------------------------------------------*/
type Band int

const (
	BandNone        Band = -1 /* not interpolated */
	BandLongPeriod  Band = 0  /* species 0 */
	BandDiurnal     Band = 1  /* species 1 */
	BandSemidiurnal Band = 2  /* species 2 */
)

var Bands = [...]Band{BandLongPeriod, BandDiurnal, BandSemidiurnal}

func (b Band) String() string {
	switch b {
	case BandLongPeriod:
		return "long-period"
	case BandDiurnal:
		return "diurnal"
	case BandSemidiurnal:
		return "semidiurnal"
	}
	return "none"
}

type Gtime struct {
	Time uint64 /* time (s) expressed by standard time_t */

	Sec float64 /* fraction of second under 1 s */
}

/* Doodson multipliers of (tau,s,h,p,N',ps) */
type Doodson [6]int

type Constituent struct { /* tidal constituent */
	Doodson Doodson /* Doodson multipliers */
	Amp     float64 /* equilibrium amplitude (signed, Cartwright-Tayler) */
	Freq    float64 /* frequency (cycles/day) */
	Band    Band    /* tidal band */
	Name    string  /* name (optional) */
}

type ReferenceWave struct { /* measured wave of blq table */
	Doodson Doodson /* Doodson multipliers */
	Amp     float64 /* amplitude (m) */
	Phase   float64 /* phase (deg), negative for lag */
}

type Station struct { /* ocean loading coefficients of station */
	Name  string                   /* station name */
	Model string                   /* ocean tide model tag ("$$" header) */
	Lon   float64                  /* longitude (deg), 0 if unknown */
	Lat   float64                  /* latitude (deg), 0 if unknown */
	Waves [NDIR][NTIN]ReferenceWave /* up, west, south */
}

type Spectrum struct { /* expanded spectrum of one direction */
	Index []int     /* catalog index */
	Freq  []float64 /* frequency (cycles/day) */
	Amp   []float64 /* amplitude (m) */
	Phase []float64 /* phase at start epoch (deg) */
	Lag   []float64 /* interpolated admittance phase (deg) */
}

type SynthesisRequest struct {
	Start    Gtime   /* start epoch (utc) */
	N        int     /* number of samples */
	Interval float64 /* sample interval (s) */
}

type Displacement struct {
	Time Gtime   /* epoch (utc) */
	U    float64 /* radial (m) */
	W    float64 /* west (m) */
	S    float64 /* south (m) */
}

type OtlOpt struct { /* ocean loading processing options */
	Mode       int    /* otl mode (OTL_???) */
	Checkpoint int    /* checkpoint interval of recursion (samples) */
	Catalog    string /* catalog file ("": built-in) */
	Order      int    /* output column order (0:u-s-w,1:u-w-s) */
	OutTime    int    /* output time column (0:off,1:on) */
	Decimals   int    /* output decimals */
	TraceLevel int    /* debug trace level */
}

// Len returns the number of constituents in the spectrum.
func (s *Spectrum) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Freq)
}

type FilOpt struct { /* file options */
	Blq     string /* ocean tide loading blq file ("": stdin) */
	Station string /* station name in blq file */
	Trace   string /* debug trace file */
}

type Opt struct { /* option type */
	Name      string   /* option name */
	Format    byte     /* option format (0:int,1:float64,2:string,3:enum) */
	VarInt    *int     /* pointer to option variable */
	VarFloat  *float64 /* pointer to option variable */
	VarString *string  /* pointer to option variable */
	Comment   string   /* option comment/enum labels/unit */
}
