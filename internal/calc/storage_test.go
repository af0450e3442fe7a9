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

package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatteryCapacity(t *testing.T) {
	assert.Equal(t, 10.0, KwhFromAh(200, 50))
	assert.Equal(t, 5000.0, RatedPowerFromNominal(BatteryNominalKwh))
	assert.Equal(t, 10.0, NominalFromPower(5000))
	assert.Equal(t, 12.35, NominalFromPower(6173))
}

func TestDehumidifierEF(t *testing.T) {
	portable := DehumidifierEF(DehumidifierPortable, 1.5)
	assert.Greater(t, portable, 1.5)
	assert.InDelta(t, 2*portable, DehumidifierEF(DehumidifierPortable, 3.0), 1e-9)

	wholeHome := DehumidifierEF(DehumidifierWholeHome, 1.5)
	assert.Greater(t, wholeHome, 1.5)
	assert.NotEqual(t, portable, wholeHome)
}

func TestCeilingFanMonths(t *testing.T) {
	assert.Equal(t, "", CeilingFanMonths(nil))
	assert.Equal(t, "", CeilingFanMonths([]float64{70, 70}))

	monthly := []float64{30, 33, 40, 48, 57, 67, 73, 71, 62, 50, 38, 30}
	assert.Equal(t, "0, 0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0", CeilingFanMonths(monthly))
}
