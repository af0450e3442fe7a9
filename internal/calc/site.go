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

// GroundDiffusivityRatio relates ground diffusivity (ft2/hr) to
// conductivity (Btu/hr-ft-F).
const GroundDiffusivityRatio = 0.0208

var groundConductivities = map[hpxml.SoilType]map[hpxml.MoistureType]float64{
	hpxml.SoilSand:   {hpxml.MoistureDry: 0.2311, hpxml.MoistureWet: 1.3865, hpxml.MoistureMixed: 0.8088},
	hpxml.SoilSilt:   {hpxml.MoistureDry: 0.2889, hpxml.MoistureWet: 1.0977, hpxml.MoistureMixed: 0.6933},
	hpxml.SoilClay:   {hpxml.MoistureDry: 0.2311, hpxml.MoistureWet: 0.9244, hpxml.MoistureMixed: 0.5778},
	hpxml.SoilLoam:   {hpxml.MoistureDry: 1.2133, hpxml.MoistureWet: 1.2133, hpxml.MoistureMixed: 1.2133},
	hpxml.SoilGravel: {hpxml.MoistureDry: 0.2311, hpxml.MoistureWet: 1.0400, hpxml.MoistureMixed: 0.6355},
}

// GroundConductivity returns the soil conductivity in Btu/hr-ft-F. Unknown
// soil is 1.0.
func GroundConductivity(soil hpxml.SoilType, moisture hpxml.MoistureType) float64 {
	if k, ok := groundConductivities[soil][moisture]; ok {
		return k
	}
	return 1.0
}

func GroundDiffusivity(conductivity float64) float64 {
	return Round(conductivity*GroundDiffusivityRatio, 4)
}

// AtmosphericPressure is the standard atmosphere at elevation ft, psia.
func AtmosphericPressure(elevation float64) float64 {
	return 14.696 * math.Pow(1-6.8754e-6*elevation, 5.2559)
}

// SaturationPressure of water vapor over liquid water at tempF, psia
// (ASHRAE Fundamentals, IP form).
func SaturationPressure(tempF float64) float64 {
	const (
		c8  = -1.0440397e+04
		c9  = -1.1294650e+01
		c10 = -2.7022355e-02
		c11 = 1.2890360e-05
		c12 = -2.4780681e-09
		c13 = 6.5459673e+00
	)
	t := tempF + 459.67
	return math.Exp(c8/t + c9 + c10*t + c11*t*t + c12*t*t*t + c13*math.Log(t))
}

// HumidityRatio of moist air at tempF and relative humidity rh, lb/lb.
func HumidityRatio(tempF, rh, pressure float64) float64 {
	pw := rh * SaturationPressure(tempF)
	return 0.621945 * pw / (pressure - pw)
}

// DesignGrainDifference is the outdoor minus indoor humidity ratio at
// cooling design conditions, in grains per lb.
func DesignGrainDifference(outdoorHR, indoorTempF, indoorRH, elevation float64) float64 {
	indoor := HumidityRatio(indoorTempF, indoorRH, AtmosphericPressure(elevation))
	return Round((outdoorHR-indoor)*7000.0, 1)
}

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// DaysInMonth ignores leap years.
func DaysInMonth(month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	return daysInMonth[month-1]
}

const summerShadingTemp = 66.0

// SummerShadingMonths returns the first and last month whose average dry
// bulb exceeds 66F, wrapping around the year on the southern hemisphere.
// Without monthly data summer is May to September.
func SummerShadingMonths(monthly []float64, latitude float64) (begin, end int) {
	if len(monthly) != 12 {
		if latitude < 0 {
			return 11, 3
		}
		return 5, 9
	}
	warm := func(m int) bool { return monthly[(m-1+12)%12] > summerShadingTemp }
	if latitude < 0 {
		// the warm season straddles the new year
		begin, end = 0, 0
		for m := 7; m <= 18; m++ {
			mm := (m-1)%12 + 1
			if warm(mm) {
				if begin == 0 {
					begin = mm
				}
				end = mm
			}
		}
	} else {
		for m := 1; m <= 12; m++ {
			if warm(m) {
				if begin == 0 {
					begin = m
				}
				end = m
			}
		}
	}
	if begin == 0 {
		return 0, 0
	}
	return begin, end
}
