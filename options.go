/*------------------------------------------------------------------------------
* options.go : options functions
*
*          Copyright (C) 2010-2025 by T.TAKASU, feng xuebin, All rights reserved.
*
* history : 2010/07/20  1.1  moved from postpos.c
*           2022/05/31  1.0  rewrite options.c with golang by fxb
*           2025/03/02  1.1  ocean loading options, ordered options table,
*                            return errors from loadopts(),saveopts()
*-----------------------------------------------------------------------------*/
package oloadgo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

/* system options buffer -----------------------------------------------------*/
var (
	otlopt_ OtlOpt = DefaultOtlOpt()
	filopt_ FilOpt

	/* system options table ------------------------------------------------------*/
	SWTOPT string = "0:off,1:on"
	OTLOPT string = "0:simple,1:hardisp"
	ORDOPT string = "0:usw,1:uws"
)

var SysOpts = []Opt{
	{"otl-mode", 3, &otlopt_.Mode, nil, nil, OTLOPT},
	{"otl-checkpoint", 0, &otlopt_.Checkpoint, nil, nil, "samples"},
	{"otl-catalog", 2, nil, nil, &otlopt_.Catalog, ""},
	{"out-order", 3, &otlopt_.Order, nil, nil, ORDOPT},
	{"out-time", 3, &otlopt_.OutTime, nil, nil, SWTOPT},
	{"out-decimals", 0, &otlopt_.Decimals, nil, nil, ""},
	{"misc-tracelevel", 0, &otlopt_.TraceLevel, nil, nil, ""},
	{"file-blqfile", 2, nil, nil, &filopt_.Blq, ""},
	{"file-station", 2, nil, nil, &filopt_.Station, ""},
	{"file-tracefile", 2, nil, nil, &filopt_.Trace, ""},
}

/* default ocean loading options ---------------------------------------------*/
func DefaultOtlOpt() OtlOpt {
	return OtlOpt{
		Mode:       OTL_HARDI,
		Checkpoint: NL_DEFLT,
		Order:      0,
		OutTime:    0,
		Decimals:   6,
	}
}

/* discard comment and space characters --------------------------------------*/
func options_chop(buff string) string {
	if idx := strings.Index(buff, "#"); idx >= 0 {
		buff = buff[:idx]
	}
	return strings.TrimSpace(buff)
}

/* enum to string ------------------------------------------------------------*/
func Enum2Str(comment string, val int) string {
	key := fmt.Sprintf("%d", val)
	for _, s := range strings.Split(comment, ",") {
		if k, label, ok := strings.Cut(s, ":"); ok && k == key {
			return label
		}
	}
	return key
}

/* string to enum ------------------------------------------------------------*/
func Str2Enum(str, comment string) (int, bool) {
	for _, s := range strings.Split(comment, ",") {
		k, label, ok := strings.Cut(s, ":")
		if !ok || (label != str && k != str) {
			continue
		}
		v, err := strconv.Atoi(k)
		return v, err == nil
	}
	return 0, false
}

/* search option ---------------------------------------------------------------
* search option record
* args   : char   *name     I  option name
*          opt_t  *opts     I  options table
* return : option record (nil: not found)
*-----------------------------------------------------------------------------*/
func SearchOpt(name string, opts []Opt) *Opt {
	Trace(4, "searchopt: name=%s\n", name)

	for i := range opts {
		if opts[i].Name == name {
			return &opts[i]
		}
	}
	return nil
}

/* string to option value ------------------------------------------------------
* convert string to option value
* args   : char   *str      I  option value string
* return : error
*-----------------------------------------------------------------------------*/
func (opt *Opt) Str2Opt(str string) error {
	var err error
	switch opt.Format {
	case 0:
		*opt.VarInt, err = strconv.Atoi(str)
	case 1:
		*opt.VarFloat, err = strconv.ParseFloat(str, 64)
	case 2:
		*opt.VarString = str
	case 3:
		v, ok := Str2Enum(str, opt.Comment)
		if !ok {
			return fmt.Errorf("%s: invalid value %q (%s)", opt.Name, str, opt.Comment)
		}
		*opt.VarInt = v
	default:
		return fmt.Errorf("%s: invalid format %d", opt.Name, opt.Format)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", opt.Name, err)
	}
	return nil
}

/* option value to string ----------------------------------------------------*/
func (opt *Opt) Opt2Str() string {
	switch opt.Format {
	case 0:
		return fmt.Sprintf("%d", *opt.VarInt)
	case 1:
		return fmt.Sprintf("%.15g", *opt.VarFloat)
	case 2:
		return *opt.VarString
	case 3:
		return Enum2Str(opt.Comment, *opt.VarInt)
	}
	return ""
}

/* option to string (keyword=value # comment) --------------------------------*/
func (opt *Opt) Opt2Buf() string {
	p := fmt.Sprintf("%-18s =%s", opt.Name, opt.Opt2Str())
	if opt.Comment != "" {
		if len(p) < 30 {
			p += strings.Repeat(" ", 30-len(p))
		}
		p += fmt.Sprintf(" # (%s)", opt.Comment)
	}
	return p
}

/* load options ----------------------------------------------------------------
* load options from reader
* args   : io.Reader r      I  options text (keyword = value # comment)
*          opt_t  *opts     IO options table
* return : error (first invalid value)
* notes  : unknown keywords are ignored
*-----------------------------------------------------------------------------*/
func ReadOpts(r io.Reader, opts []Opt) error {
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		buff := options_chop(sc.Text())
		if len(buff) == 0 {
			continue
		}
		index := strings.Index(buff, "=")
		if index < 0 {
			Trace(2, "invalid option %s (line %d)\n", buff, n)
			continue
		}
		name := strings.TrimSpace(buff[:index])
		value := strings.TrimSpace(buff[index+1:])

		opt := SearchOpt(name, opts)
		if opt == nil {
			continue
		}
		if err := opt.Str2Opt(value); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}
	return sc.Err()
}

/* load options from file ----------------------------------------------------*/
func LoadOpts(file string, opts []Opt) error {
	Trace(4, "loadopts: file=%s\n", file)

	fp, err := os.Open(file)
	if err != nil {
		Trace(2, "loadopts: options file open error (%s)\n", file)
		return err
	}
	defer fp.Close()

	if err = ReadOpts(fp, opts); err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	return nil
}

/* save options to file --------------------------------------------------------
* save options to file
* args   : char   *file     I  options file
*          char   *comment  I  header comment ("": no comment)
*          opt_t  *opts     I  options table
* return : error
*-----------------------------------------------------------------------------*/
func SaveOpts(file, comment string, opts []Opt) error {
	Trace(4, "saveopts: file=%s\n", file)

	fp, err := os.Create(file)
	if err != nil {
		Trace(2, "saveopts: options file open error (%s)\n", file)
		return err
	}
	defer fp.Close()

	w := bufio.NewWriter(fp)
	if comment != "" {
		fmt.Fprintf(w, "# %s\n\n", comment)
	}
	for i := range opts {
		fmt.Fprintln(w, opts[i].Opt2Buf())
	}
	return w.Flush()
}

/* reset system options to default -------------------------------------------*/
func ResetSysOpts() {
	Trace(4, "resetsysopts:\n")

	otlopt_ = DefaultOtlOpt()
	filopt_ = FilOpt{}
}

/* get system options --------------------------------------------------------*/
func GetSysOpts(oopt *OtlOpt, fopt *FilOpt) {
	Trace(4, "getsysopts:\n")

	if oopt != nil {
		*oopt = otlopt_
	}
	if fopt != nil {
		*fopt = filopt_
	}
}

/* set system options --------------------------------------------------------*/
func SetSysOpts(oopt *OtlOpt, fopt *FilOpt) {
	Trace(4, "setsysopts:\n")

	ResetSysOpts()
	if oopt != nil {
		otlopt_ = *oopt
	}
	if fopt != nil {
		filopt_ = *fopt
	}
}
