/*------------------------------------------------------------------------------
* catalog.go : tidal constituent catalog
*
*          Copyright (C) 2025 by feng xuebin, All rights reserved.
*
* references :
*     [1] D.E.Cartwright and R.J.Tayler, New computations of the tide-generating
*         potential, Geophys. J. R. astr. Soc., 23, 45-74, 1971
*     [2] D.E.Cartwright and A.C.Edden, Corrected tables of tidal harmonics,
*         Geophys. J. R. astr. Soc., 33, 253-264, 1973
*     [3] G.Petit and B.Luzum (eds), IERS Technical Note No. 36, IERS
*         Conventions (2010), 2010, software HARDISP
*
* notes  : the built-in table holds the major lines of [2] (amplitudes of the
*          tide-generating potential in Doodson normalization). the complete
*          342-line table distributed with HARDISP [3] can be loaded by
*          ReadCatalog() in the same text format:
*
*              # version: <tag>
*              n1 n2 n3 n4 n5 n6 amp [name]
*
* history : 2025/03/02 1.0  new
*-----------------------------------------------------------------------------*/
package oloadgo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
)

/* rates of doodson arguments at J2000.0 (cycles/day) ------------------------*/
const (
	fdl  = 0.0362916471  /* mean anomaly of moon */
	fdlp = 0.0027377786  /* mean anomaly of sun */
	fdf  = 0.0367481951  /* mean argument of latitude of moon */
	fdd  = 0.0338631920  /* mean elongation of moon from sun */
	fdom = -0.0001470938 /* mean longitude of ascending node of moon */
)

var doodsonRates = [6]float64{
	1.0 - fdd,               /* tau: mean lunar time */
	fdf + fdom,              /* s  : mean longitude of moon */
	fdf + fdom - fdd,        /* h  : mean longitude of sun */
	fdf + fdom - fdl,        /* p  : longitude of lunar perigee */
	-fdom,                   /* N' : negative longitude of node */
	fdf + fdom - fdd - fdlp, /* ps : longitude of solar perigee */
}

type Catalog struct {
	Version string        /* table version tag */
	lines   []Constituent /* constituents, table order */
	index   map[Doodson]int
	nband   [len(Bands)]int /* lines per band */
}

/* doodson number to frequency -------------------------------------------------
* frequency of tidal line
* args   : Doodson n        I   doodson multipliers
* return : frequency (cycles/solar day)
*-----------------------------------------------------------------------------*/
func DoodsonFreq(n Doodson) float64 {
	var f float64
	for i := 0; i < 6; i++ {
		f += float64(n[i]) * doodsonRates[i]
	}
	return f
}

/* band of tidal line by species ---------------------------------------------*/
func DoodsonBand(n Doodson) Band {
	switch n[0] {
	case 0:
		return BandLongPeriod
	case 1:
		return BandDiurnal
	case 2:
		return BandSemidiurnal
	}
	return BandNone
}

func (n Doodson) String() string {
	return fmt.Sprintf("%d,%d,%d,%d,%d,%d", n[0], n[1], n[2], n[3], n[4], n[5])
}

/* new catalog -----------------------------------------------------------------
* build catalog from constituent lines
* args   : string version   I   table version tag
*          Constituent *lines I constituents (doodson, amp, name)
* return : catalog, error on duplicated lines or zero amplitudes
*-----------------------------------------------------------------------------*/
func NewCatalog(version string, lines []Constituent) (*Catalog, error) {
	cat := &Catalog{
		Version: version,
		lines:   make([]Constituent, len(lines)),
		index:   make(map[Doodson]int, len(lines)),
	}
	for i, c := range lines {
		if _, ok := cat.index[c.Doodson]; ok {
			return nil, fmt.Errorf("%w: duplicated line %s", ErrCatalogFormat, c.Doodson)
		}
		if c.Amp == 0.0 {
			return nil, fmt.Errorf("%w: zero amplitude %s", ErrCatalogFormat, c.Doodson)
		}
		c.Freq = DoodsonFreq(c.Doodson)
		c.Band = DoodsonBand(c.Doodson)
		cat.lines[i] = c
		cat.index[c.Doodson] = i
		if c.Band != BandNone {
			cat.nband[c.Band]++
		}
	}
	return cat, nil
}

// Lookup returns the table index of the line with multipliers n.
func (cat *Catalog) Lookup(n Doodson) (int, bool) {
	i, ok := cat.index[n]
	return i, ok
}

func (cat *Catalog) Len() int { return len(cat.lines) }

// BandLen returns the number of lines of band b.
func (cat *Catalog) BandLen(b Band) int {
	if b < 0 || int(b) >= len(cat.nband) {
		return 0
	}
	return cat.nband[b]
}

// Line returns the i-th constituent in table order.
func (cat *Catalog) Line(i int) Constituent { return cat.lines[i] }

// Lines returns a copy of the constituents in table order. The catalog is
// shared between goroutines and is never modified after NewCatalog().
func (cat *Catalog) Lines() []Constituent {
	return append([]Constituent(nil), cat.lines...)
}

/* major lines of ref [2] ----------------------------------------------------*/
var cteMajor = []Constituent{
	{Doodson: Doodson{2, 0, 0, 0, 0, 0}, Amp: 0.63192, Name: "M2"},
	{Doodson: Doodson{2, 2, -2, 0, 0, 0}, Amp: 0.29400, Name: "S2"},
	{Doodson: Doodson{2, -1, 0, 1, 0, 0}, Amp: 0.12099, Name: "N2"},
	{Doodson: Doodson{2, 2, 0, 0, 0, 0}, Amp: 0.07996, Name: "K2"},
	{Doodson: Doodson{2, 2, 0, 0, 1, 0}, Amp: 0.02383},
	{Doodson: Doodson{2, 0, 0, 0, -1, 0}, Amp: -0.02358},
	{Doodson: Doodson{2, -1, 2, -1, 0, 0}, Amp: 0.02298, Name: "NU2"},
	{Doodson: Doodson{2, -2, 2, 0, 0, 0}, Amp: 0.01932, Name: "MU2"},
	{Doodson: Doodson{2, 1, 0, -1, 0, 0}, Amp: -0.01787, Name: "L2"},
	{Doodson: Doodson{2, 2, -3, 0, 0, 1}, Amp: 0.01718, Name: "T2"},
	{Doodson: Doodson{2, -2, 0, 2, 0, 0}, Amp: 0.01601, Name: "2N2"},
	{Doodson: Doodson{2, -3, 2, 1, 0, 0}, Amp: 0.00467, Name: "EPS2"},
	{Doodson: Doodson{2, 1, -2, 1, 0, 0}, Amp: -0.00466, Name: "LAM2"},
	{Doodson: Doodson{2, -1, 0, 1, -1, 0}, Amp: -0.00451},
	{Doodson: Doodson{1, 1, 0, 0, 0, 0}, Amp: 0.36878, Name: "K1"},
	{Doodson: Doodson{1, -1, 0, 0, 0, 0}, Amp: -0.26221, Name: "O1"},
	{Doodson: Doodson{1, 1, -2, 0, 0, 0}, Amp: -0.12203, Name: "P1"},
	{Doodson: Doodson{1, -2, 0, 1, 0, 0}, Amp: -0.05020, Name: "Q1"},
	{Doodson: Doodson{1, 1, 0, 0, 1, 0}, Amp: 0.05001},
	{Doodson: Doodson{1, -1, 0, 0, -1, 0}, Amp: -0.04946},
	{Doodson: Doodson{1, 0, 0, 1, 0, 0}, Amp: 0.02062, Name: "M1"},
	{Doodson: Doodson{1, 2, 0, -1, 0, 0}, Amp: 0.02062, Name: "J1"},
	{Doodson: Doodson{1, 3, 0, 0, 0, 0}, Amp: 0.01129, Name: "OO1"},
	{Doodson: Doodson{1, -2, 2, -1, 0, 0}, Amp: -0.00954, Name: "RHO1"},
	{Doodson: Doodson{1, -3, 2, 0, 0, 0}, Amp: -0.00814, Name: "SIG1"},
	{Doodson: Doodson{1, -3, 0, 2, 0, 0}, Amp: -0.00664, Name: "2Q1"},
	{Doodson: Doodson{1, 1, -3, 0, 0, 1}, Amp: -0.00714, Name: "PI1"},
	{Doodson: Doodson{1, 1, 1, 0, 0, -1}, Amp: 0.00295, Name: "PSI1"},
	{Doodson: Doodson{1, 1, 2, 0, 0, 0}, Amp: 0.00525, Name: "PHI1"},
	{Doodson: Doodson{1, 2, -2, 1, 0, 0}, Amp: 0.00395, Name: "THE1"},
	{Doodson: Doodson{1, 3, -2, 0, 0, 0}, Amp: 0.00342, Name: "SO1"},
	{Doodson: Doodson{1, -2, 0, 1, -1, 0}, Amp: -0.00947},
	{Doodson: Doodson{1, 3, 0, 0, 1, 0}, Amp: 0.00723},
	{Doodson: Doodson{0, 2, 0, 0, 0, 0}, Amp: -0.06663, Name: "MF"},
	{Doodson: Doodson{0, 1, 0, -1, 0, 0}, Amp: -0.03518, Name: "MM"},
	{Doodson: Doodson{0, 0, 2, 0, 0, 0}, Amp: -0.03100, Name: "SSA"},
	{Doodson: Doodson{0, 2, 0, 0, 1, 0}, Amp: -0.02762},
	{Doodson: Doodson{0, 3, 0, -1, 0, 0}, Amp: -0.01276, Name: "MTM"},
	{Doodson: Doodson{0, 2, -2, 0, 0, 0}, Amp: -0.00583, Name: "MSF"},
	{Doodson: Doodson{0, 0, 1, 0, 0, -1}, Amp: -0.00492, Name: "SA"},
	{Doodson: Doodson{0, 3, 0, -1, 1, 0}, Amp: -0.00529},
}

const CatalogDefaultVersion = "cte1973-major"

var (
	defaultCatalog     *Catalog
	defaultCatalogOnce sync.Once
)

// DefaultCatalog returns the built-in catalog. It is built once and shared.
func DefaultCatalog() *Catalog {
	defaultCatalogOnce.Do(func() {
		cat, err := NewCatalog(CatalogDefaultVersion, cteMajor)
		if err != nil {
			panic(err)
		}
		defaultCatalog = cat
	})
	return defaultCatalog
}

/* load catalog ----------------------------------------------------------------
* read constituent table
* args   : io.Reader r      I   table text (see header notes)
* return : catalog, error
*-----------------------------------------------------------------------------*/
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var (
		lines   []Constituent
		version string
		n       int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		n++
		buff := strings.TrimSpace(sc.Text())
		if len(buff) == 0 {
			continue
		}
		if buff[0] == '#' {
			if v, ok := strings.CutPrefix(strings.TrimSpace(buff[1:]), "version:"); ok {
				version = strings.TrimSpace(v)
			}
			continue
		}
		fields := strings.Fields(buff)
		if len(fields) < 7 {
			return nil, fmt.Errorf("%w: line %d: too few fields", ErrCatalogFormat, n)
		}
		var c Constituent
		for i := 0; i < 6; i++ {
			v, err := strconv.Atoi(fields[i])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrCatalogFormat, n, err)
			}
			c.Doodson[i] = v
		}
		amp, err := strconv.ParseFloat(fields[6], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrCatalogFormat, n, err)
		}
		c.Amp = amp
		if len(fields) > 7 {
			c.Name = fields[7]
		}
		lines = append(lines, c)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("%w: no constituents", ErrCatalogFormat)
	}
	if version == "" {
		version = fmt.Sprintf("custom-%d", len(lines))
	}
	return NewCatalog(version, lines)
}

/* read catalog file ---------------------------------------------------------*/
func ReadCatalog(file string) (*Catalog, error) {
	fp, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	cat, err := LoadCatalog(fp)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", file, err)
	}
	Trace(3, "readcatalog: file=%s version=%s n=%d\n", file, cat.Version, cat.Len())
	return cat, nil
}

/* write catalog ---------------------------------------------------------------
* write constituent table in the format read by LoadCatalog()
*-----------------------------------------------------------------------------*/
func (cat *Catalog) Write(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "# version: %s\n", cat.Version); err != nil {
		return err
	}
	for _, c := range cat.lines {
		_, err := fmt.Fprintf(w, "%2d %2d %2d %2d %2d %2d %9.6f %s\n", c.Doodson[0], c.Doodson[1],
			c.Doodson[2], c.Doodson[3], c.Doodson[4], c.Doodson[5], c.Amp, c.Name)
		if err != nil {
			return err
		}
	}
	return nil
}
