/*------------------------------------------------------------------------------
* oloadgo unit test driver : ocean loading displacement series
*-----------------------------------------------------------------------------*/
package oloadgo_test

import (
	"bufio"
	"bytes"
	"errors"
	"math"
	"oloadgo"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* read reference output (dU dS dW) */
func readReference(t *testing.T, file string) [][3]float64 {
	var ref [][3]float64
	fp, err := os.Open(file)
	require.NoError(t, err)
	defer fp.Close()

	sc := bufio.NewScanner(fp)
	for sc.Scan() {
		f := strings.Fields(sc.Text())
		if len(f) != 3 {
			continue
		}
		var v [3]float64
		for i := range v {
			v[i], err = strconv.ParseFloat(f[i], 64)
			require.NoError(t, err)
		}
		ref = append(ref, v)
	}
	return ref
}

func onsalaRequest() oloadgo.SynthesisRequest {
	return oloadgo.SynthesisRequest{Start: oloadgo.Epoch2Time(epOnsala), N: 24, Interval: 3600.0}
}

func maxError(out []oloadgo.Displacement, ref [][3]float64) float64 {
	var e float64
	for i := range ref {
		e = math.Max(e, math.Abs(out[i].U-ref[i][0]))
		e = math.Max(e, math.Abs(out[i].S-ref[i][1]))
		e = math.Max(e, math.Abs(out[i].W-ref[i][2]))
	}
	return e
}

/* hardisp(): published series with built-in catalog */
func Test_hardisp(t *testing.T) {
	assert := assert.New(t)
	opt := oloadgo.DefaultOtlOpt()

	for _, c := range []struct {
		sta, ref string
		tol      float64
	}{
		{"ONSALA", "testdata/onsala.out", 3e-4},
		{"REYKJAVIK", "testdata/reykjavik.out", 1e-3},
	} {
		ref := readReference(t, c.ref)
		require.Len(t, ref, 24)
		out, err := oloadgo.Hardisp(nil, readStation(t, c.sta), onsalaRequest(), &opt)
		require.NoError(t, err)
		require.Len(t, out, 24)
		e := maxError(out, ref)
		assert.True(e < c.tol, "%s max error %.6f", c.sta, e)
	}
}

/* hardisp(): full constituent table if supplied */
func Test_hardispfull(t *testing.T) {
	file := os.Getenv("OLOADGO_CATALOG")
	if file == "" {
		file = "testdata/hardisp342.dat"
	}
	if _, err := os.Stat(file); err != nil {
		t.Skipf("full constituent table not available: %s", file)
	}
	cat, err := oloadgo.ReadCatalog(file)
	require.NoError(t, err)

	opt := oloadgo.DefaultOtlOpt()
	out, err := oloadgo.Hardisp(cat, readStation(t, "onsala"), onsalaRequest(), &opt)
	require.NoError(t, err)
	e := maxError(out, readReference(t, "testdata/onsala.out"))
	assert.True(t, e < 1e-6, "max error %.7f", e)
}

/* hardisp(): repeated runs give identical series */
func Test_hardispidem(t *testing.T) {
	assert := assert.New(t)
	opt := oloadgo.DefaultOtlOpt()
	sta := readStation(t, "onsala")
	req := onsalaRequest()
	req.N = 1000
	req.Interval = 900.0

	x, err := oloadgo.Hardisp(nil, sta, req, &opt)
	require.NoError(t, err)
	y, err := oloadgo.Hardisp(nil, sta, req, &opt)
	require.NoError(t, err)
	assert.Equal(x, y)

	opt.Checkpoint = 1
	z, err := oloadgo.Hardisp(nil, sta, req, &opt)
	require.NoError(t, err)
	for i := range x {
		assert.True(math.Abs(x[i].U-z[i].U) < 1e-12)
	}
}

/* hardisp(): simple mode and errors */
func Test_hardispmode(t *testing.T) {
	assert := assert.New(t)
	opt := oloadgo.DefaultOtlOpt()
	opt.Mode = oloadgo.OTL_SIMPL
	sta := readStation(t, "onsala")

	out, err := oloadgo.Hardisp(nil, sta, onsalaRequest(), &opt)
	require.NoError(t, err)
	e := maxError(out, readReference(t, "testdata/onsala.out"))
	assert.True(e < 1.5e-3, "max error %.6f", e)

	opt = oloadgo.DefaultOtlOpt()
	req := onsalaRequest()
	req.N = 0
	_, err = oloadgo.Hardisp(nil, sta, req, &opt)
	assert.True(errors.Is(err, oloadgo.ErrInvalidRequest))

	bad := *sta
	for d := 0; d < oloadgo.NDIR; d++ {
		bad.Waves[d][3].Doodson = oloadgo.Doodson{2, 2, 1, 0, 0, 0}
	}
	_, err = oloadgo.Hardisp(nil, &bad, onsalaRequest(), &opt)
	assert.True(errors.Is(err, oloadgo.ErrUnknownWave))
}

/* outdisp() */
func Test_outdisp(t *testing.T) {
	assert := assert.New(t)
	samples := []oloadgo.Displacement{
		{Time: oloadgo.Epoch2Time(epOnsala), U: 0.003513, W: -0.001513, S: -0.001893},
		{Time: oloadgo.TimeAdd(oloadgo.Epoch2Time(epOnsala), 3600), U: -0.0000004, W: 0.0, S: 1.0},
	}
	opt := oloadgo.DefaultOtlOpt()
	var buff bytes.Buffer
	require.NoError(t, oloadgo.OutDisp(&buff, samples, &opt))
	assert.Equal("      0.003513     -0.001893     -0.001513\n"+
		"     -0.000000      1.000000      0.000000\n", buff.String())

	buff.Reset()
	opt.Order = 1
	opt.OutTime = 1
	opt.Decimals = 4
	require.NoError(t, oloadgo.OutDisp(&buff, samples[:1], &opt))
	assert.Equal("2009/06/25 00:00:00         0.0035       -0.0015       -0.0019\n", buff.String())
}
