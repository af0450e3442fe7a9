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

const (
	DefaultCeilingHeight = 8.0
	flueEfficiency       = 0.89
	flueEnergyFactor     = 0.63
)

// VolumeAndCeilingHeight fills whichever of volume and ceiling height is
// unknown. infilVolume is 0 when the infiltration measurement carries none.
// condCrawlVolume is added on top of the above-floor volume.
func VolumeAndCeilingHeight(cfa float64, volume, height *float64, infilVolume, condCrawlVolume float64) (volumeSet, heightSet bool) {
	switch {
	case *volume == 0 && *height == 0:
		*height = DefaultCeilingHeight
		if infilVolume > 0 {
			*height = math.Min(infilVolume/cfa, DefaultCeilingHeight)
		}
		*volume = *height*cfa + condCrawlVolume
		return true, true
	case *volume == 0:
		*volume = *height*cfa + condCrawlVolume
		return true, false
	case *height == 0:
		*height = (*volume - condCrawlVolume) / cfa
		return false, true
	}
	return false, false
}

// CrawlspaceVolume of a conditioned crawlspace from its floor area and the
// mean height of its foundation walls.
func CrawlspaceVolume(floorArea float64, wallHeights []float64) float64 {
	if len(wallHeights) == 0 {
		return 0
	}
	sum := 0.0
	for _, h := range wallHeights {
		sum += h
	}
	return floorArea * sum / float64(len(wallHeights))
}

// HeaterNeedsFlue reports whether a combustion heater inside the conditioned
// space vents through a flue.
func HeaterNeedsFlue(t hpxml.HeatingSystemType, fuel hpxml.FuelType, efficiency float64) bool {
	if fuel == hpxml.FuelElectricity || fuel == "" {
		return false
	}
	switch t {
	case hpxml.HeatingFireplace:
		return true
	case hpxml.HeatingFurnace, hpxml.HeatingBoiler, hpxml.HeatingWallFurnace,
		hpxml.HeatingFloorFurnace, hpxml.HeatingStove, hpxml.HeatingSpaceHeater:
		return efficiency == 0 || efficiency < flueEfficiency
	}
	return false
}

// WaterHeaterNeedsFlue is the water heating counterpart of HeaterNeedsFlue.
func WaterHeaterNeedsFlue(fuel hpxml.FuelType, ef float64) bool {
	if fuel == hpxml.FuelElectricity || fuel == "" {
		return false
	}
	return ef == 0 || ef < flueEnergyFactor
}
