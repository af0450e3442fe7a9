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

	"github.com/pkg/errors"

	"github.com/antst/hpxdefaults/internal/hpxml"
)

const (
	kWToKBtuh          = 3.412141633
	tankHeightFt       = 4.0
	gallonToFt3        = 0.133680556
	HotWaterTempLegacy = 120.0
	HotWaterTemp       = 125.0
)

// WaterHeaterCapacity returns the burner or element capacity in Btu/h of a
// storage water heater sized for the home.
func WaterHeaterCapacity(fuel hpxml.FuelType, nbeds, nWaterHeaters int, nbaths float64) float64 {
	if nWaterHeaters > 1 {
		nbaths /= float64(nWaterHeaters)
	}
	if fuel != hpxml.FuelElectricity {
		switch {
		case nbeds <= 3:
			return 36000
		case nbeds == 4:
			return 38000
		case nbeds == 5:
			return 48000
		}
		return 50000
	}
	kw := 5.5
	switch nbeds {
	case 1:
		kw = 2.5
	case 2:
		kw = 4.5
		if nbaths <= 1.5 {
			kw = 3.5
		}
	case 3:
		if nbaths <= 1.5 {
			kw = 4.5
		}
	}
	return math.Round(kw * kWToKBtuh * 1000)
}

// TankVolume returns the nominal tank volume in gallons.
func TankVolume(fuel hpxml.FuelType, nbeds int, nbaths float64) float64 {
	if fuel != hpxml.FuelElectricity {
		switch {
		case nbeds <= 2:
			return 30
		case nbeds == 3:
			if nbaths <= 1.5 {
				return 30
			}
			return 40
		case nbeds == 4:
			if nbaths <= 2.5 {
				return 40
			}
			return 50
		}
		return 50
	}
	switch {
	case nbeds <= 1:
		return 30
	case nbeds == 2:
		if nbaths <= 1.5 {
			return 30
		}
		return 40
	case nbeds == 3:
		if nbaths <= 1.5 {
			return 40
		}
		return 50
	case nbeds == 4:
		if nbaths <= 2.5 {
			return 50
		}
		return 66
	case nbeds == 5:
		return 66
	}
	return 80
}

// EFFromUEF interprets a uniform energy factor as an energy factor.
func EFFromUEF(t hpxml.WaterHeaterType, fuel hpxml.FuelType, uef float64) (float64, error) {
	if fuel == hpxml.FuelElectricity {
		switch t {
		case hpxml.WaterHeaterStorage:
			return math.Min(2.4029*uef-1.2844, 0.96), nil
		case hpxml.WaterHeaterTankless:
			return uef, nil
		case hpxml.WaterHeaterHeatPump:
			return 1.2101*uef - 0.6052, nil
		}
	} else {
		switch t {
		case hpxml.WaterHeaterStorage:
			return 0.9066*uef + 0.0711, nil
		case hpxml.WaterHeaterTankless:
			return uef, nil
		}
	}
	return 0, errors.Wrapf(ErrNoEntry, "%s %s water heater", fuel, t)
}

// RecoveryEfficiency of a storage water heater with energy factor ef.
func RecoveryEfficiency(fuel hpxml.FuelType, ef float64) float64 {
	if fuel == hpxml.FuelElectricity {
		return 0.98
	}
	if ef >= 0.75 {
		return 0.561*ef + 0.439
	}
	return 0.252*ef + 0.608
}

// UsageBin classifies a first hour rating in gallons.
func UsageBin(firstHourRating float64) hpxml.WaterHeaterUsageBin {
	switch {
	case firstHourRating < 18:
		return hpxml.UsageBinVerySmall
	case firstHourRating < 51:
		return hpxml.UsageBinLow
	case firstHourRating < 75:
		return hpxml.UsageBinMedium
	}
	return hpxml.UsageBinHigh
}

// TanklessPerformanceAdjustment derates tankless heaters for cycling losses.
func TanklessPerformanceAdjustment(hasUEF bool) float64 {
	if hasUEF {
		return 0.94
	}
	return 0.92
}

// HotWaterTemperature depends on the ERI version: 2014A and later use 125F.
func HotWaterTemperature(legacyERI bool) float64 {
	if legacyERI {
		return HotWaterTempLegacy
	}
	return HotWaterTemp
}

// ActualTankVolume converts nominal gallons to actual gallons. Indirect
// tanks pass an empty fuel.
func ActualTankVolume(vol float64, fuel hpxml.FuelType) float64 {
	if fuel == hpxml.FuelElectricity {
		return 0.9 * vol
	}
	return 0.95 * vol
}

// TankSurfaceArea of a 4 ft high cylinder holding act gallons, ft2.
func TankSurfaceArea(act float64) float64 {
	d := 2.0 * math.Sqrt(act*gallonToFt3/(tankHeightFt*math.Pi))
	return 2.0*math.Pi*d*d/4.0 + math.Pi*d*tankHeightFt
}

// IndirectStandbyLoss in F/hr for a combi tank of nominal volume vol.
func IndirectStandbyLoss(vol float64) float64 {
	act := ActualTankVolume(vol, "")
	return Round(2.9721*TankSurfaceArea(act)/act-0.4732, 3)
}

var (
	warmClimateZones = map[string]bool{"1A": true, "1B": true, "1C": true, "2A": true, "2B": true, "2C": true, "3B": true, "3C": true}
)

// WaterHeaterLocations returns the location search order for the IECC zone.
// Warm climates prefer the garage, the rest a basement.
func WaterHeaterLocations(ieccZone string) []hpxml.Location {
	if warmClimateZones[ieccZone] {
		return []hpxml.Location{hpxml.LocationGarage, hpxml.LocationConditionedSpace}
	}
	return []hpxml.Location{hpxml.LocationBasementConditioned, hpxml.LocationBasementUnconditioned, hpxml.LocationConditionedSpace}
}

// ExtraRefrigeratorLocations is the search order of extra refrigerators and freezers.
var ExtraRefrigeratorLocations = []hpxml.Location{
	hpxml.LocationGarage,
	hpxml.LocationBasementUnconditioned,
	hpxml.LocationBasementConditioned,
	hpxml.LocationConditionedSpace,
}

// FirstLocation returns the first location of order present in the building.
func FirstLocation(order []hpxml.Location, has func(hpxml.Location) bool) hpxml.Location {
	for _, l := range order {
		if has(l) {
			return l
		}
	}
	return hpxml.LocationConditionedSpace
}

// StandardPipeLength is the reference hot water piping length in ft.
func StandardPipeLength(hasUncondBasement bool, cfa, ncfl float64) float64 {
	b := 0.0
	if hasUncondBasement {
		b = 1.0
	}
	return 2.0*math.Sqrt(cfa/ncfl) + 10.0*ncfl + 5.0*b
}

// RecircLoopLength is the reference recirculation loop length in ft.
func RecircLoopLength(stdPipeLength float64) float64 {
	return 2.0*stdPipeLength - 20.0
}

const (
	RecircBranchLength = 10.0
	RecircPumpPower    = 50.0
)

// SharedRecircPumpPower is a quarter horsepower pump at 85% motor efficiency, W.
func SharedRecircPumpPower() float64 {
	return 0.25 * 0.746 / 0.85 * 1000.0
}

// SolarStorageVolume is 1.5 gal per ft2 of collector.
func SolarStorageVolume(collectorArea float64) float64 {
	return 1.5 * collectorArea
}
