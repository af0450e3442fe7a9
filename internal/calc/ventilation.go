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
	"math"

	"github.com/antst/hpxdefaults/internal/hpxml"
)

// Local ventilation and whole house fan references.
const (
	KitchenFanFlowRate  = 100.0
	KitchenFanStartHour = 18
	BathFanFlowRate     = 50.0
	BathFanStartHour    = 7
	LocalFanHours       = 1.0
	LocalFanWattsPerCFM = 0.3

	WholeHouseFanCFMPerSqft  = 2.0
	WholeHouseFanWattsPerCFM = 0.1

	CFISHours           = 8.0
	ContinuousHours     = 24.0
	CFISAirflowFraction = 1.0
)

// MechVentQtot is the ASHRAE 62.2-2019 total required ventilation rate, cfm.
func MechVentQtot(cfa, nbeds float64) float64 {
	return 0.03*cfa + 7.5*(nbeds+1)
}

// MechVentQinf is the effective annual average infiltration rate credited
// against Qtot, cfm. height is the infiltration height in ft and wsf the
// weather station's wind speed factor.
func MechVentQinf(ach50, volume, height, wsf float64) float64 {
	q50 := ach50 * volume / 60.0
	return 0.052 * q50 * wsf * math.Pow(height/8.202, 0.4)
}

// MechVentFlowRate is the fan flow rate that delivers Qtot when it runs
// hours a day. Unbalanced fans get a reduced infiltration credit; aExt is
// the exterior fraction of the unit's boundary.
func MechVentFlowRate(qtot, qinf, aExt float64, balanced bool, hours float64) float64 {
	phi := 1.0
	if !balanced && qtot > 0 {
		phi = qinf / qtot
	}
	qfan := math.Max(0, qtot-phi*qinf*aExt)
	if hours <= 0 {
		return qfan
	}
	return qfan * 24.0 / hours
}

// MechVentWattsPerCFM is the reference fan efficacy by fan type.
func MechVentWattsPerCFM(t hpxml.MechVentType) float64 {
	switch t {
	case hpxml.MechVentBalanced:
		return 0.7
	case hpxml.MechVentERV, hpxml.MechVentHRV:
		return 1.0
	case hpxml.MechVentCFIS:
		return 0.5
	}
	return 0.35
}

// IsBalanced reports fan types that supply and exhaust equal flows.
func IsBalanced(t hpxml.MechVentType) bool {
	return t == hpxml.MechVentBalanced || t == hpxml.MechVentERV || t == hpxml.MechVentHRV
}

// ACH50FromMeasurement converts a blower door or natural infiltration
// measurement to air changes at 50 Pa. ok is false for units it cannot
// convert.
func ACH50FromMeasurement(units hpxml.Units, value, pressure, volume float64) (float64, bool) {
	scale := 1.0
	if pressure > 0 {
		scale = math.Pow(50.0/pressure, infiltrationExponent)
	}
	switch units {
	case hpxml.UnitsACH:
		return value * scale, true
	case hpxml.UnitsCFM:
		if volume <= 0 {
			return 0, false
		}
		return value * 60.0 / volume * scale, true
	case hpxml.UnitsACHNatural:
		return value * 20.0, true
	}
	return 0, false
}
