/*------------------------------------------------------------------------------
* blq.go : blq ocean loading coefficients
*
*          Copyright (C) 2007-2025 by T.TAKASU, feng xuebin, All rights reserved.
*
* references :
*     [1] H.-G.Scherneck and M.S.Bos, Ocean tide loading provider,
*         http://holt.oso.chalmers.se/loading/
*
* notes  : a record is a station name line, optional "$$" comment lines and
*          six rows of 11 values in the order M2,S2,N2,K2,K1,O1,P1,Q1,Mf,Mm,
*          Ssa: amplitudes (m) of up, west, south and phases (deg, lag
*          positive) of up, west, south. phases are negated on reading.
*
* history : 2009/04/04 1.0  separated from rtkcmn.c
*           2022/05/31 1.0  rewrite with golang by fxb
*           2025/03/02 1.1  return station coefficients and errors,
*                           read multiple stations, parse lon/lat comments
*-----------------------------------------------------------------------------*/
package oloadgo

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

/* reference waves of blq table ----------------------------------------------*/
var BlqWaves = [NTIN]Doodson{
	{2, 0, 0, 0, 0, 0},  /* M2 */
	{2, 2, -2, 0, 0, 0}, /* S2 */
	{2, -1, 0, 1, 0, 0}, /* N2 */
	{2, 2, 0, 0, 0, 0},  /* K2 */
	{1, 1, 0, 0, 0, 0},  /* K1 */
	{1, -1, 0, 0, 0, 0}, /* O1 */
	{1, 1, -2, 0, 0, 0}, /* P1 */
	{1, -2, 0, 1, 0, 0}, /* Q1 */
	{0, 2, 0, 0, 0, 0},  /* Mf */
	{0, 1, 0, -1, 0, 0}, /* Mm */
	{0, 0, 2, 0, 0, 0},  /* Ssa */
}

var BlqNames = [NTIN]string{"M2", "S2", "N2", "K2", "K1", "O1", "P1", "Q1", "MF", "MM", "SSA"}

/* parse "$$" comment of station block ---------------------------------------*/
func decodeBlqComment(buff string, sta *Station) {
	low := strings.ToLower(buff)
	if i := strings.Index(low, "lon/lat:"); i >= 0 {
		var lon, lat float64
		if n, _ := fmt.Sscanf(buff[i+8:], "%f %f", &lon, &lat); n == 2 {
			sta.Lon, sta.Lat = lon, lat
		}
	}
	if i := strings.Index(low, "model:"); i >= 0 && sta.Model == "" {
		if f := strings.Fields(buff[i+6:]); len(f) > 0 {
			sta.Model = f[0]
		}
	}
}

/* read blq record -------------------------------------------------------------
* read one station block
* args   : bufio.Reader *rd I   blq text
* return : station coefficients, io.EOF if no more record, error
*-----------------------------------------------------------------------------*/
func ReadBlqRecord(rd *bufio.Reader) (*Station, error) {
	var (
		sta   = &Station{}
		v     [NTIN]float64
		n     int
		nline int
	)
	for n < 6 {
		buff, err := rd.ReadString('\n')
		if err != nil && (err != io.EOF || len(buff) == 0) {
			if err == io.EOF {
				if n == 0 && sta.Name == "" {
					return nil, io.EOF
				}
				return nil, fmt.Errorf("%w: record %q ends after %d rows", ErrBlqFormat, sta.Name, n)
			}
			return nil, err
		}
		nline++
		line := strings.TrimSpace(buff)
		if len(line) == 0 {
			continue
		}
		if strings.HasPrefix(line, "$$") {
			decodeBlqComment(line, sta)
			continue
		}
		fields := strings.Fields(line)
		if _, e := strconv.ParseFloat(fields[0], 64); e != nil {
			if n > 0 || sta.Name != "" {
				return nil, fmt.Errorf("%w: line %d: unexpected text %q", ErrBlqFormat, nline, line)
			}
			sta.Name = line
			continue
		}
		if len(fields) != NTIN {
			return nil, fmt.Errorf("%w: line %d: %d values", ErrBlqFormat, nline, len(fields))
		}
		for i := 0; i < NTIN; i++ {
			if v[i], err = strconv.ParseFloat(fields[i], 64); err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrBlqFormat, nline, err)
			}
		}
		for i := 0; i < NTIN; i++ {
			w := &sta.Waves[n%NDIR][i]
			w.Doodson = BlqWaves[i]
			if n < NDIR {
				if v[i] < 0.0 {
					return nil, fmt.Errorf("%w: line %d: negative amplitude", ErrBlqFormat, nline)
				}
				w.Amp = v[i]
			} else {
				w.Phase = -v[i]
			}
		}
		n++
	}
	Trace(4, "readblqrecord: sta=%s lon=%.4f lat=%.4f\n", sta.Name, sta.Lon, sta.Lat)
	return sta, nil
}

/* read all station blocks ---------------------------------------------------*/
func ReadBlqStations(r io.Reader) ([]Station, error) {
	var stas []Station

	rd := bufio.NewReader(r)
	for {
		sta, err := ReadBlqRecord(rd)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		stas = append(stas, *sta)
	}
	return stas, nil
}

/* read blq ocean tide loading parameters --------------------------------------
* read blq ocean tide loading parameters
* args   : char   *file       I   BLQ ocean tide loading parameter file
*          char   *sta        I   station name (case insensitive)
* return : station coefficients, error
*-----------------------------------------------------------------------------*/
func ReadBlq(file, sta string) (*Station, error) {
	fp, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	stas, err := ReadBlqStations(fp)
	if err != nil {
		return nil, fmt.Errorf("blq %s: %w", file, err)
	}
	for i := range stas {
		if strings.EqualFold(blqStationName(stas[i].Name), sta) {
			return &stas[i], nil
		}
	}
	Trace(2, "no otl parameters: sta=%s file=%s\n", sta, file)
	return nil, fmt.Errorf("%w: %s in %s", ErrNoStation, sta, file)
}

/* first token of station line -----------------------------------------------*/
func blqStationName(name string) string {
	if f := strings.Fields(name); len(f) > 0 {
		return f[0]
	}
	return ""
}
