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

package weather

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Denver(t *testing.T) {
	w, err := LoadFile("testdata/denver.yaml")
	require.NoError(t, err)
	assert.Equal(t, "725650", w.Header.WMO)
	assert.Equal(t, 0, w.Header.ActualYear)
	assert.Nil(t, w.Header.DST)
	assert.Equal(t, RangeHigh, w.DailyTemperatureRange())
	assert.True(t, w.IsDry())
	assert.Len(t, w.Data.GroundMonthlyTemps, 12)
}

func TestLoad_Rejects(t *testing.T) {
	_, err := Load(strings.NewReader("header: {latitude: 95}\n"))
	assert.Error(t, err)

	_, err = Load(strings.NewReader("data: {min_drybulb: 10, max_drybulb: 5}\n"))
	assert.Error(t, err)

	_, err = Load(strings.NewReader("data: {ground_monthly_temps: [1, 2]}\n"))
	assert.Error(t, err)

	_, err = Load(strings.NewReader("bogus: 1\n"))
	assert.Error(t, err)
}

func TestDailyTemperatureRange(t *testing.T) {
	w := &Weather{}
	w.Design.CoolingDailyRange = 10
	assert.Equal(t, RangeLow, w.DailyTemperatureRange())
	w.Design.CoolingDailyRange = 20
	assert.Equal(t, RangeMedium, w.DailyTemperatureRange())
}
