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

package lookup

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedule_Embedded(t *testing.T) {
	c := New(nil)
	s, err := c.Schedule("refrigerator")
	require.NoError(t, err)
	assert.Contains(t, s.Weekday, "0.040, 0.039")
	assert.Equal(t, s.Weekday, s.Weekend)
	assert.Contains(t, s.Monthly, "0.837")

	_, err = c.Schedule("spaceship")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCache_ReadsOnce(t *testing.T) {
	c := New(nil)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Schedule("occupants")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, c.Reads())

	_, err := c.ZipCode("80202")
	require.NoError(t, err)
	_, err = c.StationByWMO("725650")
	require.NoError(t, err)
	assert.Equal(t, 2, c.Reads())
}

func TestCache_PathOverride(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "sched.csv")
	require.NoError(t, os.WriteFile(p, []byte("schedule_name,element,value\nfoo,WeekdayScheduleFractions,\"1, 2\"\n"), 0o644))

	c := New(Paths{TableSchedules: p})
	s, err := c.Schedule("foo")
	require.NoError(t, err)
	assert.Equal(t, "1, 2", s.Weekday)
	assert.Empty(t, s.Monthly)

	_, err = New(Paths{TableSchedules: filepath.Join(dir, "missing.csv")}).Schedule("foo")
	assert.Error(t, err)
}

func TestZipCode(t *testing.T) {
	c := New(nil)
	s, err := c.ZipCode("02108-1234")
	require.NoError(t, err)
	assert.Equal(t, "725090", s.WMO)
	assert.Equal(t, "MA", s.State)
	assert.Equal(t, "5A", s.IECCZone)
	assert.InDelta(t, -5, s.UTCOffset, 1e-9)

	_, err = c.ZipCode("00000")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestPanelLoad_Fallback(t *testing.T) {
	c := New(nil)
	pl, exact, err := c.PanelLoad("heat pump water heater", 120)
	require.NoError(t, err)
	assert.True(t, exact)
	assert.InDelta(t, 1000, pl.PowerWatts, 1e-9)

	pl, exact, err = c.PanelLoad("electric clothes dryer", 120)
	require.NoError(t, err)
	assert.False(t, exact)
	assert.Equal(t, 240, pl.Voltage)
	assert.InDelta(t, 5760, pl.PowerWatts, 1e-9)

	_, _, err = c.PanelLoad("flux capacitor", 240)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestEfficiencyByYear(t *testing.T) {
	c := New(nil)
	v, err := c.EfficiencyByYear("central air conditioner", "electricity", "SEER", 2010)
	require.NoError(t, err)
	assert.InDelta(t, 13.0, v, 1e-9)

	v, err = c.EfficiencyByYear("furnace", "natural gas", "AFUE", 1950)
	require.NoError(t, err)
	assert.InDelta(t, 0.65, v, 1e-9)

	v, err = c.EfficiencyByYear("storage water heater", "electricity", "EF", 2020)
	require.NoError(t, err)
	assert.InDelta(t, 0.93, v, 1e-9)

	_, err = c.EfficiencyByYear("storage water heater", "wood", "EF", 2020)
	assert.Error(t, err)
}

func TestMarginalRate(t *testing.T) {
	c := New(nil)
	fr, err := c.MarginalRate("CO", "natural gas")
	require.NoError(t, err)
	assert.InDelta(t, 1.05, fr.MarginalRate, 1e-9)

	fr, err = c.MarginalRate("CO", "fuel oil")
	require.NoError(t, err)
	assert.Equal(t, NationalAverage, fr.State)
	assert.Equal(t, "$/gal", fr.Units)

	_, err = c.MarginalRate("CO", "coal")
	assert.Error(t, err)
}
