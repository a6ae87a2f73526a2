/*------------------------------------------------------------------------------
* oloadgo unit test driver : cubic spline
*-----------------------------------------------------------------------------*/
package oloadgo_test

import (
	"math"
	"oloadgo"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* newspline(), eval() at knots and outside the span */
func Test_splineknots(t *testing.T) {
	assert := assert.New(t)
	x := []float64{0.8932, 0.9295, 1.0027, 1.8960, 1.9323, 2.0000}
	y := []float64{0.12, -0.40, 0.33, 0.05, -0.21, 0.17}

	sp, err := oloadgo.NewSpline(x, y)
	require.NoError(t, err)
	assert.Equal(len(x), sp.Len())
	for i := range x {
		assert.True(math.Abs(sp.Eval(x[i])-y[i]) < 1e-12, "knot %d", i)
	}
	assert.Equal(y[0], sp.Eval(0.5))
	assert.Equal(y[len(y)-1], sp.Eval(2.5))
}

/* quadratic data is reproduced (end slopes from parabolas) */
func Test_splinequad(t *testing.T) {
	assert := assert.New(t)
	f := func(x float64) float64 { return 0.3 - 1.2*x + 0.7*x*x }
	x := []float64{0.0, 0.4, 0.5, 1.1, 1.7, 2.0, 2.9}
	y := make([]float64, len(x))
	for i := range x {
		y[i] = f(x[i])
	}
	sp, err := oloadgo.NewSpline(x, y)
	require.NoError(t, err)
	for xi := 0.0; xi <= 2.9; xi += 0.05 {
		assert.True(math.Abs(sp.Eval(xi)-f(xi)) < 1e-9, "x=%.2f", xi)
	}
}

/* three knots: piecewise linear */
func Test_splinelinear(t *testing.T) {
	assert := assert.New(t)
	sp, err := oloadgo.NewSpline([]float64{1.0, 2.0, 4.0}, []float64{1.0, 3.0, -1.0})
	require.NoError(t, err)
	assert.True(math.Abs(sp.Eval(1.5)-2.0) < 1e-15)
	assert.True(math.Abs(sp.Eval(3.0)-1.0) < 1e-15)
	assert.True(math.Abs(sp.Eval(3.5)-0.0) < 1e-15)

	sp, err = oloadgo.NewSpline(nil, nil)
	require.NoError(t, err)
	assert.Equal(0.0, sp.Eval(1.0))
}

/* invalid knots */
func Test_splineerror(t *testing.T) {
	assert := assert.New(t)
	_, err := oloadgo.NewSpline([]float64{1.0, 1.0, 2.0}, []float64{0, 0, 0})
	assert.Error(err)
	_, err = oloadgo.NewSpline([]float64{2.0, 1.0, 3.0}, []float64{0, 0, 0})
	assert.Error(err)
	_, err = oloadgo.NewSpline([]float64{1.0, 2.0}, []float64{0})
	assert.Error(err)
}
