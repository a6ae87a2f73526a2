/*------------------------------------------------------------------------------
* job.go : otlbatch job file
*
*          Copyright (C) 2025 by feng xuebin, All rights reserved.
*
* history : 2025/03/04 1.0  new
*-----------------------------------------------------------------------------*/
package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"oloadgo"
)

// Epoch is a utc date in the form yyyy/mm/dd hh:mm:ss.
type Epoch oloadgo.Gtime

func (e *Epoch) UnmarshalYAML(value *yaml.Node) error {
	var ep = []float64{0, 1, 1, 0, 0, 0}
	s := strings.NewReplacer("-", "/", "T", " ").Replace(value.Value)
	n, _ := fmt.Sscanf(s, "%f/%f/%f %f:%f:%f", &ep[0], &ep[1], &ep[2], &ep[3], &ep[4], &ep[5])
	if n < 3 {
		return fmt.Errorf("otlbatch.Epoch: failed to parse: %q", value.Value)
	}
	t := oloadgo.Epoch2Time(ep)
	if t.Time == 0 && ep[0] != 1970 {
		return fmt.Errorf("otlbatch.Epoch: out of range: %q", value.Value)
	}
	*e = Epoch(t)
	return nil
}

func (e Epoch) MarshalYAML() (interface{}, error) {
	return oloadgo.TimeStr(oloadgo.Gtime(e), 0), nil
}

// Interval is a sample interval given as a duration ("1h", "300s").
type Interval time.Duration

func (d *Interval) UnmarshalYAML(value *yaml.Node) error {
	duration, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("otlbatch.Interval: failed to parse: %s", err)
	}
	if duration <= 0 {
		return fmt.Errorf("otlbatch.Interval: must be positive: %s", duration)
	}
	*d = Interval(duration)
	return nil
}

func (d Interval) Seconds() float64 { return time.Duration(d).Seconds() }

type Series struct {
	Station  string   `yaml:"station"`
	Start    Epoch    `yaml:"start"`
	Samples  int      `yaml:"samples"`
	Interval Interval `yaml:"interval"`
	Output   string   `yaml:"output,omitempty"`
}

type Job struct {
	Blq        string   `yaml:"blq"`
	Catalog    string   `yaml:"catalog,omitempty"`
	Database   string   `yaml:"database"`
	Mode       string   `yaml:"mode,omitempty"`
	Checkpoint int      `yaml:"checkpoint,omitempty"`
	Workers    int      `yaml:"workers,omitempty"`
	Series     []Series `yaml:"series"`
}

func (s *Series) Request() oloadgo.SynthesisRequest {
	return oloadgo.SynthesisRequest{
		Start:    oloadgo.Gtime(s.Start),
		N:        s.Samples,
		Interval: s.Interval.Seconds(),
	}
}

// Validate checks the job before any series is computed.
func (j *Job) Validate() error {
	if j.Blq == "" {
		return fmt.Errorf("job: blq file required")
	}
	if j.Database == "" {
		return fmt.Errorf("job: database required")
	}
	if _, ok := oloadgo.Str2Enum(j.mode(), oloadgo.OTLOPT); !ok {
		return fmt.Errorf("job: invalid mode %q (%s)", j.Mode, oloadgo.OTLOPT)
	}
	if j.Checkpoint < 0 {
		return fmt.Errorf("job: invalid checkpoint %d", j.Checkpoint)
	}
	if len(j.Series) == 0 {
		return fmt.Errorf("job: no series")
	}
	for i, s := range j.Series {
		if s.Station == "" {
			return fmt.Errorf("job: series %d: station required", i)
		}
		if s.Samples < 1 {
			return fmt.Errorf("job: series %d: invalid samples %d", i, s.Samples)
		}
		if s.Interval <= 0 {
			return fmt.Errorf("job: series %d: interval required", i)
		}
	}
	return nil
}

func (j *Job) mode() string {
	if j.Mode == "" {
		return "hardisp"
	}
	return j.Mode
}

// Options returns the processing options of the job.
func (j *Job) Options() oloadgo.OtlOpt {
	opt := oloadgo.DefaultOtlOpt()
	opt.Mode, _ = oloadgo.Str2Enum(j.mode(), oloadgo.OTLOPT)
	opt.Catalog = j.Catalog
	if j.Checkpoint > 0 {
		opt.Checkpoint = j.Checkpoint
	}
	return opt
}

func ReadJob(r io.Reader) (*Job, error) {
	var job Job
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&job); err != nil {
		return nil, fmt.Errorf("job: %w", err)
	}
	if err := job.Validate(); err != nil {
		return nil, err
	}
	return &job, nil
}

func LoadJob(file string) (*Job, error) {
	fp, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return ReadJob(fp)
}
