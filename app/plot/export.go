/*------------------------------------------------------------------------------
* export.go : export displacement series to influxdb and prometheus
*
*          Copyright (C) 2025 by feng xuebin, All rights reserved.
*
* history : 2025/03/05  1.0 new
*-----------------------------------------------------------------------------*/
package main

import (
	"context"
	"fmt"
	"math"
	"time"

	influxdb "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"oloadgo"
)

const (
	MEASUREMENT = "otl_displacement"
	PUSHJOB     = "oloadgo_otl"
)

type InfluxOpt struct {
	Url    string
	Token  string
	Org    string
	Bucket string
}

/* gtime to time.Time ----------------------------------------------------------*/
func gtime2Time(t oloadgo.Gtime) time.Time {
	sec, frac := math.Modf(t.Sec)
	return time.Unix(int64(t.Time)+int64(sec), int64(math.Round(frac*1e9))).UTC()
}

/* displacement points ---------------------------------------------------------
* one point per epoch, fields up/west/south (m)
* args   : char   *station  I   station name
*          char   *run      I   run id ("": none)
*          Displacement *samples I displacements
* return : points
*-----------------------------------------------------------------------------*/
func DispPoints(station, run string, samples []oloadgo.Displacement) []*write.Point {
	pts := make([]*write.Point, 0, len(samples))
	for _, s := range samples {
		p := influxdb.NewPointWithMeasurement(MEASUREMENT).
			AddTag("station", station).
			AddField("up", s.U).
			AddField("west", s.W).
			AddField("south", s.S).
			SetTime(gtime2Time(s.Time))
		if run != "" {
			p.AddTag("run", run)
		}
		pts = append(pts, p)
	}
	return pts
}

/* write series to influxdb --------------------------------------------------*/
func OutInflux(ctx context.Context, opt *InfluxOpt, station, run string, samples []oloadgo.Displacement) error {
	client := influxdb.NewClient(opt.Url, opt.Token)
	defer client.Close()

	writeAPI := client.WriteAPIBlocking(opt.Org, opt.Bucket)
	if err := writeAPI.WritePoint(ctx, DispPoints(station, run, samples)...); err != nil {
		return fmt.Errorf("influxdb write: %w", err)
	}
	oloadgo.Trace(3, "outinflux: url=%s sta=%s n=%d\n", opt.Url, station, len(samples))
	return nil
}

/* displacement metrics --------------------------------------------------------
* peak absolute displacement per direction and number of samples. the station
* is not a label here: the pushgateway carries it as grouping key.
*-----------------------------------------------------------------------------*/
func DispMetrics(samples []oloadgo.Displacement) []prometheus.Collector {
	peak := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "oloadgo_displacement_peak_meters",
			Help: "peak absolute ocean loading displacement of the series",
		},
		[]string{"direction"},
	)
	count := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "oloadgo_displacement_samples",
			Help: "number of samples of the series",
		},
	)
	var pu, ps, pw float64
	for _, s := range samples {
		pu = math.Max(pu, math.Abs(s.U))
		ps = math.Max(ps, math.Abs(s.S))
		pw = math.Max(pw, math.Abs(s.W))
	}
	peak.WithLabelValues("up").Set(pu)
	peak.WithLabelValues("south").Set(ps)
	peak.WithLabelValues("west").Set(pw)
	count.Set(float64(len(samples)))
	return []prometheus.Collector{peak, count}
}

/* push metrics to pushgateway -----------------------------------------------*/
func PushMetrics(url, station string, samples []oloadgo.Displacement) error {
	pusher := push.New(url, PUSHJOB).Grouping("station", station)
	for _, c := range DispMetrics(samples) {
		pusher = pusher.Collector(c)
	}
	if err := pusher.Push(); err != nil {
		return fmt.Errorf("could not push metrics to pushgateway: %w", err)
	}
	return nil
}
