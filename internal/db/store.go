/*
 * Copyright (c) 2023. Anton Starikov -- All Rights Reserved
 *
 * This file is part of HPXDEFAULTS project.
 *
 * HPXDEFAULTS is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as the Free Software Foundation,
 * either version 3 of the License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

// Package db keeps the history of defaulting runs in sqlite.
package db

import (
	"context"
	_ "embed"
	"time"

	"github.com/antst/hpxdefaults/internal/logger"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

//go:embed schema.sql
var schema string

// InMemory opens a private database that lives as long as the Store.
const InMemory = ":memory:"

type Store struct {
	db *sqlx.DB
}

func OpenDatabase(dbFile string) (*Store, error) {
	sqlDB, err := sqlx.Open("sqlite3", dbFile+"?_foreign_keys=on")
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", dbFile)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, errors.Wrapf(err, "ping %s", dbFile)
	}

	if dbFile == InMemory {
		// every connection gets its own in-memory database
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(100)
	}

	if _, err := sqlDB.Exec(schema); err != nil {
		sqlDB.Close()
		return nil, errors.Wrap(err, "create tables")
	}
	logger.L().Debugf("Opened run store `%s`", dbFile)
	return &Store{db: sqlDB}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

type Run struct {
	ID               string    `db:"id"`
	BuildingID       string    `db:"building_id"`
	InputFile        string    `db:"input_file"`
	WeatherWMO       string    `db:"weather_wmo"`
	ERIVersion       string    `db:"eri_version"`
	CreatedAt        time.Time `db:"created_at"`
	HeatingTotal     float64   `db:"heating_total"`
	CoolingSensTotal float64   `db:"cooling_sens_total"`
	CoolingLatTotal  float64   `db:"cooling_lat_total"`
	WarningCount     int       `db:"warning_count"`
}

// Loads is one row of zone_loads or space_loads. ID is the zone or space id.
type Loads struct {
	RunID            string  `db:"run_id"`
	ID               string  `db:"id"`
	HeatingTotal     float64 `db:"heating_total"`
	CoolingSensTotal float64 `db:"cooling_sens_total"`
	CoolingLatTotal  float64 `db:"cooling_lat_total"`
}

type Warning struct {
	RunID   string `db:"run_id"`
	Seq     int    `db:"seq"`
	Entity  string `db:"entity"`
	Message string `db:"message"`
}

// RunRecord is everything stored for one building of one run.
type RunRecord struct {
	Run
	Zones    []Loads
	Spaces   []Loads
	Warnings []Warning
}

// SaveRun writes the record in one transaction. Child rows take the run id
// of the record.
func (s *Store) SaveRun(ctx context.Context, rec *RunRecord) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin")
	}
	defer tx.Rollback()

	if _, err := tx.NamedExecContext(ctx, `INSERT INTO runs
		(id, building_id, input_file, weather_wmo, eri_version, created_at,
		 heating_total, cooling_sens_total, cooling_lat_total, warning_count)
		VALUES (:id, :building_id, :input_file, :weather_wmo, :eri_version, :created_at,
		 :heating_total, :cooling_sens_total, :cooling_lat_total, :warning_count)`, rec.Run); err != nil {
		return errors.Wrapf(err, "insert run %s", rec.ID)
	}

	insertLoads := func(table, column string, rows []Loads) error {
		q := `INSERT INTO ` + table + ` (run_id, ` + column + `, heating_total, cooling_sens_total, cooling_lat_total)
			VALUES (:run_id, :id, :heating_total, :cooling_sens_total, :cooling_lat_total)`
		for _, l := range rows {
			l.RunID = rec.ID
			if _, err := tx.NamedExecContext(ctx, q, l); err != nil {
				return errors.Wrapf(err, "insert %s %s", table, l.ID)
			}
		}
		return nil
	}
	if err := insertLoads("zone_loads", "zone_id", rec.Zones); err != nil {
		return err
	}
	if err := insertLoads("space_loads", "space_id", rec.Spaces); err != nil {
		return err
	}

	for i, w := range rec.Warnings {
		w.RunID = rec.ID
		w.Seq = i
		if _, err := tx.NamedExecContext(ctx, `INSERT INTO warnings (run_id, seq, entity, message)
			VALUES (:run_id, :seq, :entity, :message)`, w); err != nil {
			return errors.Wrapf(err, "insert warning %d", i)
		}
	}

	return errors.Wrap(tx.Commit(), "commit")
}

// LatestRun returns the newest run of the building, or sql.ErrNoRows.
func (s *Store) LatestRun(ctx context.Context, buildingID string) (*Run, error) {
	var r Run
	err := s.db.GetContext(ctx, &r, `SELECT * FROM runs WHERE building_id = ?
		ORDER BY created_at DESC LIMIT 1`, buildingID)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) ZoneLoads(ctx context.Context, runID string) ([]Loads, error) {
	var rows []Loads
	err := s.db.SelectContext(ctx, &rows, `SELECT run_id, zone_id AS id, heating_total,
		cooling_sens_total, cooling_lat_total FROM zone_loads WHERE run_id = ? ORDER BY zone_id`, runID)
	return rows, errors.Wrapf(err, "zone loads of %s", runID)
}

func (s *Store) SpaceLoads(ctx context.Context, runID string) ([]Loads, error) {
	var rows []Loads
	err := s.db.SelectContext(ctx, &rows, `SELECT run_id, space_id AS id, heating_total,
		cooling_sens_total, cooling_lat_total FROM space_loads WHERE run_id = ? ORDER BY space_id`, runID)
	return rows, errors.Wrapf(err, "space loads of %s", runID)
}

func (s *Store) Warnings(ctx context.Context, runID string) ([]Warning, error) {
	var rows []Warning
	err := s.db.SelectContext(ctx, &rows, `SELECT * FROM warnings WHERE run_id = ? ORDER BY seq`, runID)
	return rows, errors.Wrapf(err, "warnings of %s", runID)
}
