/*------------------------------------------------------------------------------
* otlbatch.go : ocean loading displacement series for a list of stations
*
*          Copyright (C) 2025 by feng xuebin, All rights reserved.
*
* history : 2025/03/04  1.0 new
*-----------------------------------------------------------------------------*/

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/dustin/go-humanize"
	"golang.org/x/sync/errgroup"

	"oloadgo"
)

var PROGNAME string = "otlbatch"

/* help text -----------------------------------------------------------------*/
var help []string = []string{
	"",
	" usage: otlbatch [option]... job.yaml",
	"",
	" Compute the ocean loading displacement series listed in the job file and",
	" store them in the sqlite database of the job. Each series may also be",
	" written to an output stream. Example of job file:",
	"",
	"   blq: testdata/stations.blq",
	"   database: otl.db",
	"   mode: hardisp",
	"   series:",
	"     - station: ONSALA",
	"       start: 2009/06/25 00:00:00",
	"       samples: 24",
	"       interval: 1h",
	"       output: onsala.out",
	"",
	" -?        print help",
	" -j n      number of parallel series [ncpu]",
	" -t        output time in the form of yyyy/mm/dd hh:mm:ss [off]",
	" -trace f  debug trace file [otlbatch.trace]",
	" -x level  debug trace level (0:off) [0]"}

func searchHelp(key string) string {
	for _, v := range help {
		if strings.HasPrefix(strings.TrimSpace(v), key+" ") {
			return v
		}
	}
	return "no surported augument"
}

// result of one series
type result struct {
	station *oloadgo.Station
	req     oloadgo.SynthesisRequest
	out     []oloadgo.Displacement
	id      string
	nbyte   int64
}

/* read stations of job ------------------------------------------------------*/
func jobStations(job *Job) (map[string]*oloadgo.Station, error) {
	fp, err := os.Open(job.Blq)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	stas, err := oloadgo.ReadBlqStations(fp)
	if err != nil {
		return nil, err
	}
	m := make(map[string]*oloadgo.Station, len(stas))
	for i := range stas {
		if name := strings.Fields(stas[i].Name); len(name) > 0 {
			m[strings.ToUpper(name[0])] = &stas[i]
		}
	}
	for _, s := range job.Series {
		if _, ok := m[strings.ToUpper(s.Station)]; !ok {
			return nil, fmt.Errorf("%s: %w", s.Station, oloadgo.ErrNoStation)
		}
	}
	return m, nil
}

/* run job ---------------------------------------------------------------------
* series are computed in parallel, then stored and written in job order.
* args   : context ctx      I   context
*          Job    *job      I   job
*          OtlOpt *opt      I   output options (time tag)
*          int    workers   I   number of parallel series (0: ncpu)
* return : results, error
*-----------------------------------------------------------------------------*/
func runJob(ctx context.Context, job *Job, opt *oloadgo.OtlOpt, workers int) ([]result, error) {
	cat := oloadgo.DefaultCatalog()
	if job.Catalog != "" {
		var err error
		if cat, err = oloadgo.ReadCatalog(job.Catalog); err != nil {
			return nil, err
		}
	}
	stas, err := jobStations(job)
	if err != nil {
		return nil, err
	}
	if workers <= 0 {
		workers = job.Workers
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]result, len(job.Series))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range job.Series {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s := &job.Series[i]
			sta := stas[strings.ToUpper(s.Station)]
			req := s.Request()
			out, err := oloadgo.Hardisp(cat, sta, req, opt)
			if err != nil {
				return fmt.Errorf("series %d (%s): %w", i, s.Station, err)
			}
			oloadgo.Trace(3, "runjob: series=%d sta=%s n=%s\n", i, s.Station, humanize.Comma(int64(len(out))))
			results[i] = result{station: sta, req: req, out: out}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	st, err := oloadgo.OpenStore(job.Database)
	if err != nil {
		return nil, err
	}
	defer st.Close()

	for i := range results {
		r := &results[i]
		if r.id, err = st.SaveRun(r.station.Name, cat.Version, opt.Mode, r.req, r.out); err != nil {
			return nil, err
		}
		if path := job.Series[i].Output; path != "" {
			if r.nbyte, err = writeSeries(path, r.out, opt); err != nil {
				return nil, err
			}
		}
	}
	return results, nil
}

func writeSeries(path string, out []oloadgo.Displacement, opt *oloadgo.OtlOpt) (int64, error) {
	stream, err := oloadgo.OpenStream(path)
	if err != nil {
		return 0, err
	}
	defer stream.Close()
	if err = oloadgo.OutDisp(stream, out, opt); err != nil {
		return 0, err
	}
	return stream.Bytes(), nil
}

/* print summary of results --------------------------------------------------*/
func summary(w io.Writer, results []result) {
	var nsample, nbyte int64

	for _, r := range results {
		fmt.Fprintf(w, "%-36s %-12s %s %s samples\n", r.id, r.station.Name,
			oloadgo.TimeStr(r.req.Start, 0), humanize.Comma(int64(len(r.out))))
		nsample += int64(len(r.out))
		nbyte += r.nbyte
	}
	v, unit := humanize.ComputeSI(float64(nsample))
	fmt.Fprintf(w, "%d series, %s%s samples, %s written\n", len(results),
		humanize.Ftoa(v), unit, humanize.Bytes(uint64(nbyte)))
}

func usage() {
	for _, h := range help {
		fmt.Fprintf(os.Stderr, "%s\n", h)
	}
}

/* otlbatch main -------------------------------------------------------------*/
func main() {
	var (
		workers   int
		timef     bool
		level     int
		tracefile = fmt.Sprintf("%s.trace", PROGNAME)
	)
	flag.Usage = usage
	flag.IntVar(&workers, "j", 0, searchHelp("-j"))
	flag.BoolVar(&timef, "t", false, searchHelp("-t"))
	flag.StringVar(&tracefile, "trace", tracefile, searchHelp("-trace"))
	flag.IntVar(&level, "x", 0, searchHelp("-x"))
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	job, err := LoadJob(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", PROGNAME, err)
		os.Exit(1)
	}
	opt := job.Options()
	if timef {
		opt.OutTime = 1
	}
	if level > 0 {
		oloadgo.TraceOpen(tracefile)
		oloadgo.TraceLevel(level)
	}
	results, err := runJob(context.Background(), job, &opt, workers)
	oloadgo.TraceClose()

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", PROGNAME, err)
		os.Exit(1)
	}
	summary(os.Stdout, results)
}
