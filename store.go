/*------------------------------------------------------------------------------
* store.go : sqlite store of displacement series
*
*          Copyright (C) 2025 by feng xuebin, All rights reserved.
*
* history : 2025/03/02 1.0  new
*-----------------------------------------------------------------------------*/
package oloadgo

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const storeSchema = `
CREATE TABLE IF NOT EXISTS otl_runs (
	id         TEXT PRIMARY KEY,
	station    TEXT NOT NULL,
	catalog    TEXT NOT NULL,
	mode       INTEGER NOT NULL,
	start_time INTEGER NOT NULL,
	start_frac REAL NOT NULL,
	samples    INTEGER NOT NULL,
	interval   REAL NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS otl_samples (
	run_id TEXT NOT NULL REFERENCES otl_runs(id) ON DELETE CASCADE,
	idx    INTEGER NOT NULL,
	time   INTEGER NOT NULL,
	frac   REAL NOT NULL,
	up     REAL NOT NULL,
	west   REAL NOT NULL,
	south  REAL NOT NULL,
	PRIMARY KEY (run_id, idx)
);
`

type Store struct {
	db *sqlx.DB
}

type RunInfo struct { /* stored run */
	ID        string    `db:"id"`
	Station   string    `db:"station"`
	Catalog   string    `db:"catalog"`
	Mode      int       `db:"mode"`
	StartTime int64     `db:"start_time"`
	StartFrac float64   `db:"start_frac"`
	Samples   int       `db:"samples"`
	Interval  float64   `db:"interval"`
	CreatedAt time.Time `db:"created_at"`
}

type sampleRow struct {
	RunID string  `db:"run_id"`
	Idx   int     `db:"idx"`
	Time  int64   `db:"time"`
	Frac  float64 `db:"frac"`
	Up    float64 `db:"up"`
	West  float64 `db:"west"`
	South float64 `db:"south"`
}

/* open store ------------------------------------------------------------------
* open (create) sqlite database of runs
* args   : char   *path     I   database file (":memory:" for in-memory)
* return : store, error
*-----------------------------------------------------------------------------*/
func OpenStore(path string) (*Store, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening store %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err = db.Exec(storeSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating store schema: %w", err)
	}
	Trace(3, "openstore: path=%s\n", path)
	return &Store{db: db}, nil
}

func (st *Store) Close() error {
	return st.db.Close()
}

/* save run --------------------------------------------------------------------
* save displacement series with its request
* args   : char   *station  I   station name
*          char   *catalog  I   catalog version
*          int    mode      I   otl mode (OTL_???)
*          SynthesisRequest req I request
*          Displacement *samples I displacements
* return : run id, error
*-----------------------------------------------------------------------------*/
func (st *Store) SaveRun(station, catalog string, mode int, req SynthesisRequest,
	samples []Displacement) (string, error) {
	id := uuid.NewString()

	tx, err := st.db.Beginx()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	_, err = tx.NamedExec(`INSERT INTO otl_runs
		(id, station, catalog, mode, start_time, start_frac, samples, interval)
		VALUES (:id, :station, :catalog, :mode, :start_time, :start_frac, :samples, :interval)`,
		&RunInfo{
			ID:        id,
			Station:   station,
			Catalog:   catalog,
			Mode:      mode,
			StartTime: int64(req.Start.Time),
			StartFrac: req.Start.Sec,
			Samples:   len(samples),
			Interval:  req.Interval,
		})
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}
	stmt, err := tx.PrepareNamed(`INSERT INTO otl_samples
		(run_id, idx, time, frac, up, west, south)
		VALUES (:run_id, :idx, :time, :frac, :up, :west, :south)`)
	if err != nil {
		return "", err
	}
	defer stmt.Close()

	for i, s := range samples {
		row := sampleRow{id, i, int64(s.Time.Time), s.Time.Sec, s.U, s.W, s.S}
		if _, err = stmt.Exec(&row); err != nil {
			return "", fmt.Errorf("inserting sample %d: %w", i, err)
		}
	}
	if err = tx.Commit(); err != nil {
		return "", err
	}
	Trace(3, "saverun: id=%s sta=%s n=%d\n", id, station, len(samples))
	return id, nil
}

/* load series of run --------------------------------------------------------*/
func (st *Store) LoadSeries(id string) ([]Displacement, error) {
	var rows []sampleRow

	err := st.db.Select(&rows, `SELECT * FROM otl_samples WHERE run_id = ? ORDER BY idx`, id)
	if err != nil {
		return nil, fmt.Errorf("loading run %s: %w", id, err)
	}
	out := make([]Displacement, len(rows))
	for i, r := range rows {
		out[i] = Displacement{
			Time: Gtime{Time: uint64(r.Time), Sec: r.Frac},
			U:    r.Up,
			W:    r.West,
			S:    r.South,
		}
	}
	return out, nil
}

/* stored runs, newest first -------------------------------------------------*/
func (st *Store) Runs() ([]RunInfo, error) {
	var runs []RunInfo

	err := st.db.Select(&runs, `SELECT * FROM otl_runs ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	return runs, nil
}
