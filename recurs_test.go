/*------------------------------------------------------------------------------
* oloadgo unit test driver : recursive harmonic synthesis
*-----------------------------------------------------------------------------*/
package oloadgo_test

import (
	"errors"
	"math"
	"math/rand"
	"oloadgo"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randSpectra(n int, seed int64) [oloadgo.NDIR]*oloadgo.Spectrum {
	var sp [oloadgo.NDIR]*oloadgo.Spectrum
	r := rand.New(rand.NewSource(seed))
	freq := make([]float64, n)
	for k := range freq {
		freq[k] = float64(r.Intn(3)) + r.Float64()*0.1 - 0.05
	}
	for d := range sp {
		sp[d] = &oloadgo.Spectrum{Freq: append([]float64(nil), freq...)}
		for k := 0; k < n; k++ {
			sp[d].Index = append(sp[d].Index, k)
			sp[d].Amp = append(sp[d].Amp, r.Float64()*0.01)
			sp[d].Phase = append(sp[d].Phase, r.Float64()*360.0)
			sp[d].Lag = append(sp[d].Lag, 0.0)
		}
	}
	return sp
}

/* synthesize() against closed form across checkpoints */
func Test_recurs(t *testing.T) {
	assert := assert.New(t)
	sp := randSpectra(40, 1)
	req := oloadgo.SynthesisRequest{
		Start:    oloadgo.Epoch2Time(epOnsala),
		N:        1300,
		Interval: 300.0,
	}
	x, err := oloadgo.Synthesize(sp, req, oloadgo.NL_DEFLT)
	require.NoError(t, err)
	y, err := oloadgo.SynthesizeDirect(sp, req)
	require.NoError(t, err)
	require.Len(t, x, req.N)

	for n := range x {
		assert.True(math.Abs(x[n].U-y[n].U) < 1e-9, "n=%d", n)
		assert.True(math.Abs(x[n].W-y[n].W) < 1e-9, "n=%d", n)
		assert.True(math.Abs(x[n].S-y[n].S) < 1e-9, "n=%d", n)
	}
	for _, n := range []int{599, 600, 601, 1199, 1200, 1201} {
		assert.Equal(oloadgo.TimeAdd(req.Start, float64(n)*req.Interval), x[n].Time)
		assert.True(math.Abs(x[n].U-y[n].U) < 1e-9, "n=%d", n)
	}

	/* checkpoint every sample */
	z, err := oloadgo.Synthesize(sp, req, 1)
	require.NoError(t, err)
	for n := range z {
		assert.True(math.Abs(z[n].U-y[n].U) < 1e-12, "n=%d", n)
	}
}

/* single line: cosine of known phase */
func Test_recursline(t *testing.T) {
	assert := assert.New(t)
	var sp [oloadgo.NDIR]*oloadgo.Spectrum
	for d := range sp {
		sp[d] = &oloadgo.Spectrum{Index: []int{0}, Freq: []float64{2.0}, Amp: []float64{1.0},
			Phase: []float64{90.0 * float64(d)}, Lag: []float64{0}}
	}
	req := oloadgo.SynthesisRequest{Start: oloadgo.Epoch2Time(epOnsala), N: 5, Interval: 10800.0}
	x, err := oloadgo.Synthesize(sp, req, 3)
	require.NoError(t, err)
	for n, v := range x {
		w := float64(n) * PI / 2.0
		assert.True(math.Abs(v.U-math.Cos(w)) < 1e-12, "n=%d", n)
		assert.True(math.Abs(v.W+math.Sin(w)) < 1e-12, "n=%d", n)
		assert.True(math.Abs(v.S+math.Cos(w)) < 1e-12, "n=%d", n)
	}
}

const PI = oloadgo.PI

/* synthesize(): no constituents */
func Test_recurszero(t *testing.T) {
	assert := assert.New(t)
	var sp [oloadgo.NDIR]*oloadgo.Spectrum
	req := oloadgo.SynthesisRequest{Start: oloadgo.Epoch2Time(epOnsala), N: 7, Interval: 60.0}
	x, err := oloadgo.Synthesize(sp, req, oloadgo.NL_DEFLT)
	require.NoError(t, err)
	assert.Len(x, 7)
	for _, v := range x {
		assert.Equal(0.0, v.U)
		assert.Equal(0.0, v.W)
		assert.Equal(0.0, v.S)
	}
}

/* synthesize(): invalid requests */
func Test_recursinvalid(t *testing.T) {
	assert := assert.New(t)
	sp := randSpectra(5, 2)
	t0 := oloadgo.Epoch2Time(epOnsala)

	_, err := oloadgo.Synthesize(sp, oloadgo.SynthesisRequest{Start: t0, N: 0, Interval: 60}, 600)
	assert.True(errors.Is(err, oloadgo.ErrInvalidRequest))
	_, err = oloadgo.Synthesize(sp, oloadgo.SynthesisRequest{Start: t0, N: 10, Interval: 0}, 600)
	assert.True(errors.Is(err, oloadgo.ErrInvalidRequest))
	_, err = oloadgo.Synthesize(sp, oloadgo.SynthesisRequest{Start: t0, N: 10, Interval: math.NaN()}, 600)
	assert.True(errors.Is(err, oloadgo.ErrInvalidRequest))
	_, err = oloadgo.Synthesize(sp, oloadgo.SynthesisRequest{Start: t0, N: 10, Interval: 60}, 0)
	assert.True(errors.Is(err, oloadgo.ErrInvalidRequest))

	sp[oloadgo.DirSouth].Freq[3] += 1e-6
	_, err = oloadgo.Synthesize(sp, oloadgo.SynthesisRequest{Start: t0, N: 10, Interval: 60}, 600)
	assert.True(errors.Is(err, oloadgo.ErrFreqMismatch))

	sp[oloadgo.DirSouth] = nil
	_, err = oloadgo.SynthesizeDirect(sp, oloadgo.SynthesisRequest{Start: t0, N: 10, Interval: 60})
	assert.True(errors.Is(err, oloadgo.ErrFreqMismatch))
}
