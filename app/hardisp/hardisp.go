/*------------------------------------------------------------------------------
* hardisp.go : ocean loading displacement series from blq coefficients
*
*          Copyright (C) 2025 by feng xuebin, All rights reserved.
*
* references :
*     [1] G.Petit and B.Luzum (eds), IERS Technical Note No. 36, IERS
*         Conventions (2010), 2010, software HARDISP
*
* history : 2025/03/02  1.0 new
*-----------------------------------------------------------------------------*/

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"oloadgo"
)

var PROGNAME string = "hardisp"

/* help text -----------------------------------------------------------------*/
var help []string = []string{
	"",
	" usage: hardisp [option]... yr [d-of-yr | month day] hr min sec num samp",
	"",
	" Compute the displacements by ocean tide loading at num epochs spaced samp",
	" seconds from the utc date given. The amplitudes and phases of the 11",
	" reference waves are read from standard input in the BLQ format of Scherneck",
	" and Bos (up, west and south amplitudes, then phases, phase lag positive).",
	" The displacements (m) are written to standard output as dU dS dW in the",
	" format 3F14.6. Command line options are as follows ([]:default). With -k",
	" option, the options are input from the configuration file. In this case,",
	" command line options precede options in the configuration file.",
	"",
	" -?        print help",
	" -k file   input options from configuration file [off]",
	" -b file   read blq coefficients from file [stdin]",
	" -s sta    station name in blq file [first station]",
	" -c file   constituent table (n1..n6 amp [name]) [built-in]",
	" -o path   output stream (file path, file://, tcpcli://, serial://) [stdout]",
	" -m mode   otl mode (0:simple 11 waves,1:hardisp) [1]",
	" -n nl     recursion checkpoint interval (samples) [600]",
	" -u        output dU dW dS [dU dS dW]",
	" -t        output time in the form of yyyy/mm/dd hh:mm:ss [off]",
	" -d col    number of decimals [6]",
	" -db file  save the series to sqlite database [off]",
	" -trace f  debug trace file [hardisp.trace]",
	" -x level  debug trace level (0:off) [0]"}

func searchHelp(key string) string {
	for _, v := range help {
		if strings.HasPrefix(strings.TrimSpace(v), key+" ") {
			return v
		}
	}
	return "no surported augument"
}

var mday = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

/* parse date and sampling arguments -------------------------------------------
* args   : char   **args    I   yr [doy | month day] hr min sec num samp
* return : synthesis request, error
*-----------------------------------------------------------------------------*/
func parseArgs(args []string) (oloadgo.SynthesisRequest, error) {
	var (
		req oloadgo.SynthesisRequest
		v   [6]int
		t0  oloadgo.Gtime
	)
	if len(args) != 7 && len(args) != 8 {
		return req, fmt.Errorf("%d arguments", len(args))
	}
	nd := len(args) - 2 /* date/time fields */
	for i := 0; i < nd-1; i++ {
		n, err := strconv.Atoi(args[i])
		if err != nil {
			return req, fmt.Errorf("invalid argument while reading date: %s", args[i])
		}
		v[i] = n
	}
	sec, err := strconv.ParseFloat(args[nd-1], 64)
	if err != nil || sec < 0.0 || sec >= 60.0 {
		return req, fmt.Errorf("invalid second: %s", args[nd-1])
	}
	year := v[0]
	if year < 1970 || 2099 < year {
		return req, fmt.Errorf("year out of range: %d", year)
	}
	var hr, min int
	if nd == 5 {
		ndays := 365
		if year%4 == 0 {
			ndays = 366
		}
		if v[1] < 1 || ndays < v[1] {
			return req, fmt.Errorf("invalid day of year: %d", v[1])
		}
		t0 = oloadgo.Doy2Time(year, v[1])
		hr, min = v[2], v[3]
	} else {
		month, day := v[1], v[2]
		if month < 1 || 12 < month {
			return req, fmt.Errorf("invalid month: %d", month)
		}
		ndays := mday[month-1]
		if month == 2 && year%4 == 0 {
			ndays++
		}
		if day < 1 || ndays < day {
			return req, fmt.Errorf("invalid day of month: %d", day)
		}
		t0 = oloadgo.Epoch2Time([]float64{float64(year), float64(month), float64(day), 0, 0, 0})
		hr, min = v[3], v[4]
	}
	if hr < 0 || 23 < hr || min < 0 || 59 < min {
		return req, fmt.Errorf("invalid time: %02d:%02d", hr, min)
	}
	req.Start = oloadgo.TimeAdd(t0, float64(hr)*3600.0+float64(min)*60.0+sec)

	if req.N, err = strconv.Atoi(args[nd]); err != nil || req.N < 1 {
		return req, fmt.Errorf("invalid number of epochs: %s", args[nd])
	}
	if req.Interval, err = strconv.ParseFloat(args[nd+1], 64); err != nil || !(req.Interval > 0.0) {
		return req, fmt.Errorf("invalid sample interval: %s", args[nd+1])
	}
	return req, nil
}

/* read station coefficients -------------------------------------------------*/
func readStation(file, name string) (*oloadgo.Station, error) {
	if file == "" {
		return oloadgo.ReadBlqRecord(bufio.NewReader(os.Stdin))
	}
	if name != "" {
		return oloadgo.ReadBlq(file, name)
	}
	fp, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return oloadgo.ReadBlqRecord(bufio.NewReader(fp))
}

/* run hardisp -----------------------------------------------------------------
* compute the whole series, then write it. nothing is written on error.
*-----------------------------------------------------------------------------*/
func run(req oloadgo.SynthesisRequest, opt *oloadgo.OtlOpt, fopt *oloadgo.FilOpt, outpath, dbfile string) error {
	var cat *oloadgo.Catalog

	if opt.Catalog != "" {
		var err error
		if cat, err = oloadgo.ReadCatalog(opt.Catalog); err != nil {
			return err
		}
	} else {
		cat = oloadgo.DefaultCatalog()
	}
	sta, err := readStation(fopt.Blq, fopt.Station)
	if err != nil {
		return err
	}
	out, err := oloadgo.Hardisp(cat, sta, req, opt)
	if err != nil {
		return err
	}
	if dbfile != "" {
		st, err := oloadgo.OpenStore(dbfile)
		if err != nil {
			return err
		}
		defer st.Close()
		id, err := st.SaveRun(sta.Name, cat.Version, opt.Mode, req, out)
		if err != nil {
			return err
		}
		oloadgo.Trace(2, "%s: run saved id=%s\n", PROGNAME, id)
	}
	stream, err := oloadgo.OpenStream(outpath)
	if err != nil {
		return err
	}
	defer stream.Close()
	return oloadgo.OutDisp(stream, out, opt)
}

func usage() {
	for _, h := range help {
		fmt.Fprintf(os.Stderr, "%s\n", h)
	}
}

/* hardisp main --------------------------------------------------------------*/
func main() {
	var (
		opt                      = oloadgo.DefaultOtlOpt()
		fopt                     oloadgo.FilOpt
		config, outpath, dbfile  string
		order, timef             bool
		blqfile, station, catlog string
		tracefile                = fmt.Sprintf("%s.trace", PROGNAME)
	)
	flag.Usage = usage
	flag.StringVar(&config, "k", "", searchHelp("-k"))
	flag.StringVar(&blqfile, "b", "", searchHelp("-b"))
	flag.StringVar(&station, "s", "", searchHelp("-s"))
	flag.StringVar(&catlog, "c", "", searchHelp("-c"))
	flag.StringVar(&outpath, "o", "", searchHelp("-o"))
	flag.IntVar(&opt.Mode, "m", opt.Mode, searchHelp("-m"))
	flag.IntVar(&opt.Checkpoint, "n", opt.Checkpoint, searchHelp("-n"))
	flag.BoolVar(&order, "u", false, searchHelp("-u"))
	flag.BoolVar(&timef, "t", false, searchHelp("-t"))
	flag.IntVar(&opt.Decimals, "d", opt.Decimals, searchHelp("-d"))
	flag.StringVar(&dbfile, "db", "", searchHelp("-db"))
	flag.StringVar(&tracefile, "trace", tracefile, searchHelp("-trace"))
	flag.IntVar(&opt.TraceLevel, "x", opt.TraceLevel, searchHelp("-x"))

	flag.Parse()

	if len(config) > 0 {
		oloadgo.ResetSysOpts()
		if err := oloadgo.LoadOpts(config, oloadgo.SysOpts); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", PROGNAME, err)
			os.Exit(1)
		}
		oloadgo.GetSysOpts(&opt, &fopt)
		if fopt.Trace != "" {
			tracefile = fopt.Trace
		}
		flag.Parse() /* command line precedes configuration file */
	}
	if order {
		opt.Order = 1
	}
	if timef {
		opt.OutTime = 1
	}
	if blqfile != "" {
		fopt.Blq = blqfile
	}
	if station != "" {
		fopt.Station = station
	}
	if catlog != "" {
		opt.Catalog = catlog
	}
	req, err := parseArgs(flag.Args())
	if err != nil {
		if flag.NArg() != 7 && flag.NArg() != 8 {
			usage()
		} else {
			fmt.Fprintf(os.Stderr, "%s: %v\n", PROGNAME, err)
		}
		os.Exit(1)
	}
	if opt.TraceLevel > 0 {
		oloadgo.TraceOpen(tracefile)
		oloadgo.TraceLevel(opt.TraceLevel)
	}
	err = run(req, &opt, &fopt, outpath, dbfile)
	oloadgo.TraceClose()

	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", PROGNAME, err)
		os.Exit(1)
	}
}
