//---------------------------------------------------------------------------
// plot : chart and export of ocean loading displacement series
//
//          Copyright (C) 2025 by feng xuebin, All rights reserved.
//
// options : plot [-db file][-id run][-b file -s sta -ts ds,ts -n num -ti samp]
//                [-png file][-influx url -token tok -org org -bucket b]
//                [-push url][-x level]
//
//           -db file  sqlite database of stored runs
//           -id run   run id [latest run]
//           -b file   compute the series from blq file instead of database
//           -png file output chart
//           -influx   write series to influxdb
//           -push url push peak metrics to prometheus pushgateway
//           -x level  debug trace level (0:off)
//
// history : 2025/03/05  1.0 new, from solution exporter to influxdb and
//                       prometheus
//---------------------------------------------------------------------------
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"oloadgo"
)

const PROGNAME = "plot"

/* help text -----------------------------------------------------------------*/
var help []string = []string{
	"",
	" usage: plot [option]...",
	"",
	" Read a displacement series from the sqlite database of hardisp/otlbatch or",
	" compute it from blq coefficients, then draw it to a png chart, write it to",
	" influxdb and push its peak values to a prometheus pushgateway.",
	"",
	" -?        print help",
	" -db file  sqlite database of stored runs [otl.db]",
	" -id run   run id in database [latest]",
	" -b file   compute series from blq file [off]",
	" -s sta    station name in blq file [first station]",
	" -ts ds,ts start day/time (ds=y/m/d ts=h:m:s) [2000/1/1,0:0:0]",
	" -n num    number of samples [24]",
	" -ti samp  sample interval (sec) [3600]",
	" -png file output png chart [off]",
	" -size wxh chart size [800x400]",
	" -influx u influxdb server url [off]",
	" -token t  influxdb token []",
	" -org o    influxdb organization [oloadgo]",
	" -bucket b influxdb bucket [otl]",
	" -push u   prometheus pushgateway url [off]",
	" -x level  debug trace level (0:off) [0]"}

func searchHelp(key string) string {
	for _, v := range help {
		if strings.HasPrefix(strings.TrimSpace(v), key+" ") {
			return v
		}
	}
	return "no surported augument"
}

/* show message --------------------------------------------------------------*/
func showmsg(format string, v ...interface{}) {
	fmt.Fprintf(os.Stderr, format, v...)
}

type timeFlag struct {
	time       *oloadgo.Gtime
	configured bool
}

func (f *timeFlag) Set(s string) error {
	var es []float64 = []float64{2000, 1, 1, 0, 0, 0}
	n, _ := fmt.Sscanf(s, "%f/%f/%f,%f:%f:%f", &es[0], &es[1], &es[2], &es[3], &es[4], &es[5])
	if n < 6 {
		return fmt.Errorf("too few argument")
	}
	*(f.time) = oloadgo.Epoch2Time(es)
	f.configured = true
	return nil
}
func (f *timeFlag) String() string {
	return "2000/1/1,0:0:0"
}
func newGtime(p *oloadgo.Gtime) *timeFlag {
	tf := timeFlag{p, false}
	return &tf
}

// source of the series
type source struct {
	dbfile, id   string
	blq, station string
	req          oloadgo.SynthesisRequest
}

/* load series -----------------------------------------------------------------
* args   : source *src      I   database run or blq station
* return : station name, run id, displacements, error
*-----------------------------------------------------------------------------*/
func loadSeries(src *source) (string, string, []oloadgo.Displacement, error) {
	if src.blq != "" {
		sta, err := readStation(src.blq, src.station)
		if err != nil {
			return "", "", nil, err
		}
		opt := oloadgo.DefaultOtlOpt()
		out, err := oloadgo.Hardisp(nil, sta, src.req, &opt)
		return sta.Name, "", out, err
	}
	st, err := oloadgo.OpenStore(src.dbfile)
	if err != nil {
		return "", "", nil, err
	}
	defer st.Close()

	runs, err := st.Runs()
	if err != nil {
		return "", "", nil, err
	}
	for _, r := range runs {
		if src.id == "" || r.ID == src.id {
			out, err := st.LoadSeries(r.ID)
			return r.Station, r.ID, out, err
		}
	}
	if src.id == "" {
		return "", "", nil, fmt.Errorf("no run in %s", src.dbfile)
	}
	return "", "", nil, fmt.Errorf("no run %s in %s", src.id, src.dbfile)
}

func readStation(file, name string) (*oloadgo.Station, error) {
	if name != "" {
		return oloadgo.ReadBlq(file, name)
	}
	fp, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	stas, err := oloadgo.ReadBlqStations(fp)
	if err != nil {
		return nil, err
	}
	if len(stas) == 0 {
		return nil, oloadgo.ErrNoStation
	}
	return &stas[0], nil
}

/* write png chart -----------------------------------------------------------*/
func outChart(file, size, station string, samples []oloadgo.Displacement) error {
	var w, h int
	if n, _ := fmt.Sscanf(size, "%dx%d", &w, &h); n < 2 {
		return fmt.Errorf("invalid chart size: %s", size)
	}
	title := station
	if len(samples) > 0 {
		title = fmt.Sprintf("%s  %s", station, oloadgo.TimeStr(samples[0].Time, 0))
	}
	chart, err := NewChart(w, h, title)
	if err != nil {
		return err
	}
	fp, err := os.Create(file)
	if err != nil {
		return err
	}
	if err = chart.WritePNG(fp, samples); err != nil {
		fp.Close()
		return err
	}
	return fp.Close()
}

func main() {
	var (
		src              = source{dbfile: "otl.db"}
		influx           = InfluxOpt{Org: "oloadgo", Bucket: "otl"}
		pngfile, pushurl string
		size             = "800x400"
		level            int
	)
	src.req.N, src.req.Interval = 24, 3600.0
	src.req.Start = oloadgo.Epoch2Time([]float64{2000, 1, 1, 0, 0, 0})

	flag.StringVar(&src.dbfile, "db", src.dbfile, searchHelp("-db"))
	flag.StringVar(&src.id, "id", "", searchHelp("-id"))
	flag.StringVar(&src.blq, "b", "", searchHelp("-b"))
	flag.StringVar(&src.station, "s", "", searchHelp("-s"))
	flag.Var(newGtime(&src.req.Start), "ts", searchHelp("-ts"))
	flag.IntVar(&src.req.N, "n", src.req.N, searchHelp("-n"))
	flag.Float64Var(&src.req.Interval, "ti", src.req.Interval, searchHelp("-ti"))
	flag.StringVar(&pngfile, "png", "", searchHelp("-png"))
	flag.StringVar(&size, "size", size, searchHelp("-size"))
	flag.StringVar(&influx.Url, "influx", "", searchHelp("-influx"))
	flag.StringVar(&influx.Token, "token", "", searchHelp("-token"))
	flag.StringVar(&influx.Org, "org", influx.Org, searchHelp("-org"))
	flag.StringVar(&influx.Bucket, "bucket", influx.Bucket, searchHelp("-bucket"))
	flag.StringVar(&pushurl, "push", "", searchHelp("-push"))
	flag.IntVar(&level, "x", 0, searchHelp("-x"))

	flag.Parse()

	if pngfile == "" && influx.Url == "" && pushurl == "" {
		for _, h := range help {
			fmt.Printf("%s\n", h)
		}
		return
	}
	if level > 0 {
		oloadgo.TraceOpen(fmt.Sprintf("%s.trace", PROGNAME))
		oloadgo.TraceLevel(level)
		defer oloadgo.TraceClose()
	}
	showmsg("reading series...\n")
	station, run, samples, err := loadSeries(&src)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", PROGNAME, err)
		os.Exit(1)
	}
	showmsg("%s: %d samples\n", station, len(samples))

	var failed bool
	if pngfile != "" {
		if err = outChart(pngfile, size, station, samples); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", PROGNAME, err)
			failed = true
		}
	}
	if influx.Url != "" {
		if err = OutInflux(context.Background(), &influx, station, run, samples); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", PROGNAME, err)
			failed = true
		}
	}
	if pushurl != "" {
		if err = PushMetrics(pushurl, station, samples); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", PROGNAME, err)
			failed = true
		}
	}
	if failed {
		oloadgo.TraceClose()
		os.Exit(1)
	}
}
