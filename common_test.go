/*------------------------------------------------------------------------------
* oloadgo unit test driver : time and trace functions
*-----------------------------------------------------------------------------*/
package oloadgo_test

import (
	"math"
	"oloadgo"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* epoch2time(),time2epoch() */
func Test_epoch2time(t *testing.T) {
	var ep0 []float64 = []float64{1980, 1, 6, 0, 0, 0.000000}
	var ep1 []float64 = []float64{2004, 2, 28, 2, 0, 59.999999}
	var ep2 []float64 = []float64{2004, 2, 29, 2, 0, 30.000000}
	var ep3 []float64 = []float64{2099, 12, 31, 23, 59, 59.999999}
	var mday []int = []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	var ep [6]float64
	assert := assert.New(t)
	tm := oloadgo.Epoch2Time(ep0)
	oloadgo.Time2Epoch(tm, ep[:])
	assert.True(ep[0] == 1980 && ep[1] == 1 && ep[2] == 6 && ep[3] == 0 && ep[4] == 0 && ep[5] == 0.0)
	tm = oloadgo.Epoch2Time(ep1)
	oloadgo.Time2Epoch(tm, ep[:])
	assert.True(ep[0] == 2004 && ep[1] == 2 && ep[2] == 28 && ep[3] == 2 && ep[4] == 0 && math.Abs(ep[5]-59.999999) < 1e-14)
	tm = oloadgo.Epoch2Time(ep2)
	oloadgo.Time2Epoch(tm, ep[:])
	assert.True(ep[0] == 2004 && ep[1] == 2 && ep[2] == 29 && ep[3] == 2 && ep[4] == 0 && ep[5] == 30.0)
	tm = oloadgo.Epoch2Time(ep3)
	oloadgo.Time2Epoch(tm, ep[:])
	assert.True(ep[0] == 2099 && ep[1] == 12 && ep[2] == 31 && ep[3] == 23 && ep[4] == 59 && math.Abs(ep[5]-59.999999) < 1e-14)

	for year := 1970; year <= 2099; year++ {
		if year%4 == 0 {
			mday[1] = 29
		} else {
			mday[1] = 28
		}
		for month := 1; month <= 12; month++ {
			for day := 1; day <= mday[month-1]; day++ {
				e := []float64{float64(year), float64(month), float64(day), 0, 0, 0}
				oloadgo.Time2Epoch(oloadgo.Epoch2Time(e), ep[:])
				assert.True(ep[0] == e[0] && ep[1] == e[1] && ep[2] == e[2])
			}
		}
	}
}

/* epoch2time(): seconds since 1970/1/1 and range */
func Test_epoch2timeunix(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(uint64(0), oloadgo.Epoch2Time([]float64{1970, 1, 1, 0, 0, 0}).Time)
	assert.Equal(uint64(951782400), oloadgo.Epoch2Time([]float64{2000, 2, 29, 0, 0, 0}).Time)
	assert.Equal(uint64(1245888000), oloadgo.Epoch2Time([]float64{2009, 6, 25, 0, 0, 0}).Time)
	tm := oloadgo.Epoch2Time([]float64{2009, 6, 25, 1, 10, 45.25})
	assert.Equal(uint64(1245892245), tm.Time)
	assert.Equal(0.25, tm.Sec)
	assert.Equal(oloadgo.Gtime{}, oloadgo.Epoch2Time([]float64{1969, 12, 31, 0, 0, 0}))
	assert.Equal(oloadgo.Gtime{}, oloadgo.Epoch2Time([]float64{2009, 13, 1, 0, 0, 0}))
	assert.Equal("2009/06/25 01:10:45.250", oloadgo.TimeStr(tm, 3))
	assert.Equal("2009/06/25 01:10:45", oloadgo.TimeStr(tm, -1))
}

/* doy2time() */
func Test_doy2time(t *testing.T) {
	var ep [6]float64
	assert := assert.New(t)
	oloadgo.Time2Epoch(oloadgo.Doy2Time(2009, 176), ep[:])
	assert.True(ep[0] == 2009 && ep[1] == 6 && ep[2] == 25 && ep[3] == 0)
	oloadgo.Time2Epoch(oloadgo.Doy2Time(2008, 366), ep[:])
	assert.True(ep[0] == 2008 && ep[1] == 12 && ep[2] == 31)
	assert.Equal(oloadgo.Gtime{}, oloadgo.Doy2Time(2009, 366))
	assert.Equal(oloadgo.Gtime{}, oloadgo.Doy2Time(2009, 0))
	assert.Equal(oloadgo.Gtime{}, oloadgo.Doy2Time(1969, 10))
}

/* timeadd(), timediff() */
func Test_timeadd(t *testing.T) {
	var ep0 []float64 = []float64{2003, 12, 31, 23, 59, 59.000000}
	var ep1 []float64 = []float64{2004, 1, 1, 0, 0, 1.000000}
	var ep [6]float64
	assert := assert.New(t)
	tm := oloadgo.TimeAdd(oloadgo.Epoch2Time(ep0), 3.0)
	oloadgo.Time2Epoch(tm, ep[:])
	assert.True(ep[0] == 2004 && ep[1] == 1 && ep[2] == 1 && ep[3] == 0 && ep[4] == 0 && ep[5] == 2.0)
	tm = oloadgo.TimeAdd(oloadgo.Epoch2Time(ep1), -3.0)
	oloadgo.Time2Epoch(tm, ep[:])
	assert.True(ep[0] == 2003 && ep[1] == 12 && ep[2] == 31 && ep[3] == 23 && ep[4] == 59 && ep[5] == 58.0)
	tm = oloadgo.TimeAdd(oloadgo.Epoch2Time(ep0), 0.25)
	assert.Equal(0.25, tm.Sec)
	assert.Equal(2.0, oloadgo.TimeDiff(oloadgo.Epoch2Time(ep1), oloadgo.Epoch2Time(ep0)))
}

/* time2jd(), ttutc() */
func Test_time2jd(t *testing.T) {
	assert := assert.New(t)
	t0 := oloadgo.Epoch2Time([]float64{2000, 1, 1, 12, 0, 0})
	assert.Equal(oloadgo.JD2000, oloadgo.Time2Jd(t0))
	assert.Equal(0.5, oloadgo.Time2DayFrac(t0))

	assert.InDelta(64.184, oloadgo.TtUtc(t0), 1e-9)
	assert.InDelta(66.184, oloadgo.TtUtc(oloadgo.Epoch2Time(epOnsala)), 1e-9)
	assert.InDelta(69.184, oloadgo.TtUtc(oloadgo.Epoch2Time([]float64{2025, 1, 1, 0, 0, 0})), 1e-9)
}

/* timestr() */
func Test_timestr(t *testing.T) {
	assert := assert.New(t)
	tm := oloadgo.Epoch2Time([]float64{2009, 6, 25, 1, 10, 45.5})
	assert.Equal("2009/06/25 01:10:45.5", oloadgo.TimeStr(tm, 1))
	assert.Equal("2009/06/25 01:10:46", oloadgo.TimeStr(tm, 0))
}

/* traceopen(), trace() */
func Test_trace(t *testing.T) {
	assert := assert.New(t)
	file := filepath.Join(t.TempDir(), "trace.log")
	oloadgo.TraceOpen(file)
	oloadgo.TraceLevel(3)
	oloadgo.Trace(3, "level three %d\n", 3)
	oloadgo.Trace(4, "level four\n")
	oloadgo.Tracet(2, "with tick\n")
	oloadgo.TraceClose()
	oloadgo.TraceLevel(0)

	buff, err := os.ReadFile(file)
	require.NoError(t, err)
	s := string(buff)
	assert.True(strings.Contains(s, "3 level three 3"))
	assert.False(strings.Contains(s, "level four"))
	assert.True(strings.Contains(s, "with tick"))
}
