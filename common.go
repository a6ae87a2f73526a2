/*------------------------------------------------------------------------------
* common.go : oloadgo common functions (time, trace)
*
*          Copyright (C) 2022-2025 by feng xuebin, All rights reserved.
*
* references :
*     [1] IS-GPS-200D, Navstar GPS Space Segment/Navigation User Interfaces,
*         7 March, 2006
*     [2] IERS Bulletin C, leap second announcements
*
* history : 2022/05/31 1.0  rewrite rtkcmn.c with golang by fxb
*           2025/03/02 1.1  keep time and trace functions for hardisp,
*                           add doy2time(), time2jd(), ttutc()
*-----------------------------------------------------------------------------*/
package oloadgo

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"
)

var (
	mdays    = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	doyStart = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}
)

/* days of year, leap year if year%4==0 in 1901-2099 -------------------------*/
func yearDays(year int) int {
	if year%4 == 0 {
		return 366
	}
	return 365
}

/* calendar day/time to time ---------------------------------------------------
* args   : double *ep       I   day/time {year,month,day,hour,min,sec}
* return : time ({0,0} out of 1970-2099)
*-----------------------------------------------------------------------------*/
func Epoch2Time(ep []float64) Gtime {
	year, mon, day := int(ep[0]), int(ep[1]), int(ep[2])
	if year < 1970 || 2099 < year || mon < 1 || 12 < mon {
		return Gtime{}
	}
	days := (year-1970)*365 + (year-1969)/4 + doyStart[mon-1] + day - 1
	if year%4 == 0 && mon >= 3 {
		days++
	}
	sec := math.Floor(ep[5])
	return Gtime{
		Time: uint64(days*86400 + int(ep[3])*3600 + int(ep[4])*60 + int(sec)),
		Sec:  ep[5] - sec,
	}
}

/* time to calendar day/time ---------------------------------------------------
* args   : Gtime  t         I   time
*          double *ep       O   day/time {year,month,day,hour,min,sec}
* return : none
*-----------------------------------------------------------------------------*/
func Time2Epoch(t Gtime, ep []float64) {
	days, sec := int(t.Time/86400), int(t.Time%86400)

	year, day := 1970+days/1461*4, days%1461
	for ; day >= yearDays(year); year++ {
		day -= yearDays(year)
	}
	mon := 0
	for ; mon < 11; mon++ {
		n := mdays[mon]
		if mon == 1 && year%4 == 0 {
			n++
		}
		if day < n {
			break
		}
		day -= n
	}
	ep[0], ep[1], ep[2] = float64(year), float64(mon+1), float64(day+1)
	ep[3], ep[4], ep[5] = float64(sec/3600), float64(sec%3600/60), float64(sec%60)+t.Sec
}

/* day of year to time ---------------------------------------------------------
* convert year and day of year to gtime_t struct at 00:00
* args   : int    year      I   year (1970-2099)
*          int    doy       I   day of year (1-366)
* return : gtime_t struct ({0,0} for invalid day of year)
*-----------------------------------------------------------------------------*/
func Doy2Time(year, doy int) Gtime {
	var ep []float64 = []float64{float64(year), 1, 1, 0, 0, 0}

	ndays := 365
	if year%4 == 0 {
		ndays = 366
	}
	if doy < 1 || ndays < doy {
		return Gtime{}
	}
	t := Epoch2Time(ep)
	if t.Time == 0 && year != 1970 {
		return Gtime{}
	}
	return TimeAdd(t, float64(doy-1)*DAYSEC)
}

/* add time --------------------------------------------------------------------
* add time to gtime_t struct
* args   : gtime_t t        I   gtime_t struct
*          double sec       I   time to add (s)
* return : gtime_t struct (t+sec)
*-----------------------------------------------------------------------------*/
func TimeAdd(t Gtime, sec float64) Gtime {
	t.Sec += sec
	var tt = math.Floor(t.Sec)
	t.Time = uint64(int64(t.Time) + int64(tt))
	t.Sec -= tt
	return t
}

/* time difference -------------------------------------------------------------
* difference between gtime_t structs
* args   : gtime_t t1,t2    I   gtime_t structs
* return : time difference (t1-t2) (s)
*-----------------------------------------------------------------------------*/
func TimeDiff(t1 Gtime, t2 Gtime) float64 {
	return float64(t1.Time) - float64(t2.Time) + t1.Sec - t2.Sec
}

/* time to julian date -------------------------------------------------------*/
func Time2Jd(t Gtime) float64 {
	return JD1970 + (float64(t.Time)+t.Sec)/DAYSEC
}

/* time to fraction of day ---------------------------------------------------*/
func Time2DayFrac(t Gtime) float64 {
	return (float64(t.Time%86400) + t.Sec) / DAYSEC
}

var leaps = [MAXLEAPS + 1][7]float64{ /* leap seconds (y,m,d,h,m,s,utc-gpst) */
	{2017, 1, 1, 0, 0, 0, -18},
	{2015, 7, 1, 0, 0, 0, -17},
	{2012, 7, 1, 0, 0, 0, -16},
	{2009, 1, 1, 0, 0, 0, -15},
	{2006, 1, 1, 0, 0, 0, -14},
	{1999, 1, 1, 0, 0, 0, -13},
	{1997, 7, 1, 0, 0, 0, -12},
	{1996, 1, 1, 0, 0, 0, -11},
	{1994, 7, 1, 0, 0, 0, -10},
	{1993, 7, 1, 0, 0, 0, -9},
	{1992, 7, 1, 0, 0, 0, -8},
	{1991, 1, 1, 0, 0, 0, -7},
	{1990, 1, 1, 0, 0, 0, -6},
	{1988, 1, 1, 0, 0, 0, -5},
	{1985, 7, 1, 0, 0, 0, -4},
	{1983, 7, 1, 0, 0, 0, -3},
	{1982, 7, 1, 0, 0, 0, -2},
	{1981, 7, 1, 0, 0, 0, -1},
}

/* utc to gpstime --------------------------------------------------------------
* convert utc to gpstime considering leap seconds
* args   : gtime_t t        I   time expressed in utc
* return : time expressed in gpstime
* notes  : ignore slight time offset under 100 ns
*-----------------------------------------------------------------------------*/
func Utc2GpsT(t Gtime) Gtime {
	for i := 0; leaps[i][0] > 0; i++ {
		if TimeDiff(t, Epoch2Time(leaps[i][:])) >= 0.0 {
			return TimeAdd(t, -leaps[i][6])
		}
	}
	return t
}

/* tt-utc ----------------------------------------------------------------------
* difference between terrestrial time and utc
* args   : gtime_t t        I   time expressed in utc
* return : tt-utc (s)
* notes  : tai-utc before 1980 is taken as 19 s; the error is negligible for
*          the doodson arguments
*-----------------------------------------------------------------------------*/
func TtUtc(t Gtime) float64 {
	return TTTAI + TAIGPST + TimeDiff(Utc2GpsT(t), t)
}

/* time to string --------------------------------------------------------------
* args   : Gtime  t         I   time
*          int    n         I   number of decimals of seconds (0-12)
* return : time string "yyyy/mm/dd hh:mm:ss.sss"
*-----------------------------------------------------------------------------*/
func TimeStr(t Gtime, n int) string {
	if n < 0 {
		n = 0
	} else if n > 12 {
		n = 12
	}
	if 1.0-t.Sec < 0.5/math.Pow(10.0, float64(n)) {
		t.Time++
		t.Sec = 0.0
	}
	var ep [6]float64
	Time2Epoch(t, ep[:])

	width := n + 3
	if n == 0 {
		width = 2
	}
	return fmt.Sprintf("%04.0f/%02.0f/%02.0f %02.0f:%02.0f:%0*.*f", ep[0], ep[1], ep[2],
		ep[3], ep[4], width, n, ep[5])
}

/* get tick time ---------------------------------------------------------------
* get current tick in ms
* args   : none
* return : current tick in ms
*-----------------------------------------------------------------------------*/
func TickGet() int64 {
	return time.Now().UnixMilli()
}

var (
	fp_trace    *os.File
	file_trace  string
	level_trace int
	tick_trace  int64 = 0 /* tick time at traceopen (ms) */
	lock_trace  sync.Mutex
)

/* debug trace functions -----------------------------------------------------*/
func TraceOpen(file string) {
	lock_trace.Lock()
	defer lock_trace.Unlock()

	if len(file) == 0 {
		fp_trace = os.Stderr
	} else {
		var err error
		fp_trace, err = os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open trace file failed, err:%s\n", err)
			fp_trace = nil
			return
		}
	}
	tick_trace = TickGet()
	file_trace = file
}
func TraceClose() {
	lock_trace.Lock()
	defer lock_trace.Unlock()

	if fp_trace != nil && fp_trace != os.Stderr {
		fp_trace.Close()
	}
	fp_trace = nil
	file_trace = ""
}
func TraceLevel(level int) {
	level_trace = level
}
func Trace(level int, format string, v ...interface{}) {
	/* print error message to stderr */
	if level <= 1 {
		fmt.Fprintf(os.Stderr, format, v...)
	}
	lock_trace.Lock()
	defer lock_trace.Unlock()
	if fp_trace == nil || level > level_trace {
		return
	}
	fmt.Fprintf(fp_trace, "%d ", level)
	fmt.Fprintf(fp_trace, format, v...)
}
func Tracet(level int, format string, v ...interface{}) {
	lock_trace.Lock()
	defer lock_trace.Unlock()
	if fp_trace == nil || level > level_trace {
		return
	}
	fmt.Fprintf(fp_trace, "%d %9.3f: ", level, float64(TickGet()-tick_trace)/1000.0)
	fmt.Fprintf(fp_trace, format, v...)
}
