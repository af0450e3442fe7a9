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

package db

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	s, err := OpenDatabase(InMemory)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func record(id string, at time.Time) *RunRecord {
	return &RunRecord{
		Run: Run{
			ID:               id,
			BuildingID:       "MyBuilding",
			InputFile:        "house.yaml",
			WeatherWMO:       "725650",
			ERIVersion:       "latest",
			CreatedAt:        at,
			HeatingTotal:     32100,
			CoolingSensTotal: 18200,
			CoolingLatTotal:  1500,
			WarningCount:     2,
		},
		Zones: []Loads{{ID: "Zone1", HeatingTotal: 32100, CoolingSensTotal: 18200, CoolingLatTotal: 1500}},
		Spaces: []Loads{
			{ID: "Space2", HeatingTotal: 12100, CoolingSensTotal: 8200, CoolingLatTotal: 500},
			{ID: "Space1", HeatingTotal: 20000, CoolingSensTotal: 10000, CoolingLatTotal: 1000},
		},
		Warnings: []Warning{
			{Entity: "Refrigerator2", Message: "location defaulted to garage"},
			{Entity: "Zone1", Message: "space areas do not sum to zone area"},
		},
	}
}

func TestSaveRun_RoundTrip(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.SaveRun(ctx, record("run-1", at)))

	r, err := s.LatestRun(ctx, "MyBuilding")
	require.NoError(t, err)
	assert.Equal(t, "run-1", r.ID)
	assert.Equal(t, "725650", r.WeatherWMO)
	assert.InDelta(t, 32100, r.HeatingTotal, 1e-9)
	assert.Equal(t, 2, r.WarningCount)
	assert.True(t, at.Equal(r.CreatedAt))

	zones, err := s.ZoneLoads(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, zones, 1)
	assert.Equal(t, "Zone1", zones[0].ID)
	assert.Equal(t, "run-1", zones[0].RunID)

	spaces, err := s.SpaceLoads(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, spaces, 2)
	assert.Equal(t, "Space1", spaces[0].ID)
	assert.InDelta(t, 8200, spaces[1].CoolingSensTotal, 1e-9)

	ws, err := s.Warnings(ctx, "run-1")
	require.NoError(t, err)
	require.Len(t, ws, 2)
	assert.Equal(t, 0, ws[0].Seq)
	assert.Equal(t, "Refrigerator2", ws[0].Entity)
	assert.Equal(t, 1, ws[1].Seq)
}

func TestLatestRun_NewestWins(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.SaveRun(ctx, record("old", at)))
	require.NoError(t, s.SaveRun(ctx, record("new", at.Add(time.Hour))))

	r, err := s.LatestRun(ctx, "MyBuilding")
	require.NoError(t, err)
	assert.Equal(t, "new", r.ID)

	_, err = s.LatestRun(ctx, "Other")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSaveRun_DuplicateRollsBack(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.SaveRun(ctx, record("run-1", at)))

	dup := record("run-1", at)
	dup.BuildingID = "Other"
	assert.Error(t, s.SaveRun(ctx, dup))

	_, err := s.LatestRun(ctx, "Other")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestSaveRun_DuplicateZoneFails(t *testing.T) {
	s := openTest(t)
	ctx := context.Background()
	rec := record("run-2", time.Now().UTC())
	rec.Zones = append(rec.Zones, rec.Zones[0])
	assert.Error(t, s.SaveRun(ctx, rec))

	zones, err := s.ZoneLoads(ctx, "run-2")
	require.NoError(t, err)
	assert.Empty(t, zones)
}
