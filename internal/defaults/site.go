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

package defaults

import (
	"fmt"
	"math"

	"github.com/antst/hpxdefaults/internal/calc"
	"github.com/antst/hpxdefaults/internal/hpxml"
)

const defaultIECCYear = 2006

func (e *engine) applySite() error {
	s := &e.b.Site
	return rules{
		constant("soil_type", &s.SoilType, hpxml.SoilUnknown),
		constant("moisture_type", &s.MoistureType, hpxml.MoistureMixed),
		computed("ground_conductivity", &s.GroundConductivity, func() float64 {
			return calc.GroundConductivity(s.SoilType.Val(), s.MoistureType.Val())
		}),
		computed("ground_diffusivity", &s.GroundDiffusivity, func() float64 {
			return calc.GroundDiffusivity(s.GroundConductivity.Val())
		}),
	}.apply("Site")
}

func (e *engine) applyNeighbors() error {
	for i, n := range e.b.Neighbors {
		if err := e.resolveAzimuth(fmt.Sprintf("NeighborBuilding[%d]", i+1), &n.Azimuth, &n.Orientation, e.defaultAzimuth()); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) applyOccupancy() error {
	occ := &e.b.Occupancy
	rs := rules{
		computed("number_of_residents", &occ.NumberOfResidents, func() float64 {
			nbeds := float64(e.b.Construction.NumberOfBedrooms)
			if e.operational() {
				return calc.Round(calc.OccupantsFromBedrooms(e.facility(), nbeds), 2)
			}
			return nbeds
		}),
	}
	rs = append(rs, e.scheduleRules("occupants", colOccupants, &occ.Schedule)...)
	return rs.apply("BuildingOccupancy")
}

func (e *engine) applyConstruction() error {
	c := &e.b.Construction
	err := rules{
		constant("residential_facility_type", &c.ResidentialFacilityType, hpxml.FacilitySingleFamilyDetached),
		constant("number_of_units", &c.NumberOfUnits, 1),
		computed("number_of_bathrooms", &c.NumberOfBathrooms, func() int {
			return calc.DefaultBathrooms(c.NumberOfBedrooms)
		}),
	}.apply("BuildingConstruction")
	if err != nil {
		return err
	}

	infilVolume := 0.0
	for _, m := range e.b.Enclosure.AirInfiltration {
		if v, ok := m.InfiltrationVolume.Get(); ok && !m.InfiltrationVolume.IsDefaulted() {
			infilVolume = v
			break
		}
	}
	volume, height := c.ConditionedBuildingVolume.Or(0), c.AverageCeilingHeight.Or(0)
	volSet, hSet := calc.VolumeAndCeilingHeight(c.ConditionedFloorArea, &volume, &height, infilVolume, e.conditionedCrawlspaceVolume())
	if volSet && !c.ConditionedBuildingVolume.IsSet() {
		c.ConditionedBuildingVolume.Default(volume)
		logDefault("BuildingConstruction", "conditioned_building_volume", volume)
	}
	if hSet && !c.AverageCeilingHeight.IsSet() {
		c.AverageCeilingHeight.Default(height)
		logDefault("BuildingConstruction", "average_ceiling_height", height)
	}
	return nil
}

// conditionedCrawlspaceVolume is the volume of conditioned crawlspaces,
// which lies outside the conditioned floor area.
func (e *engine) conditionedCrawlspaceVolume() float64 {
	area := 0.0
	for _, s := range e.b.Enclosure.Slabs {
		if s.InteriorAdjacentTo == hpxml.LocationCrawlspaceConditioned {
			area += s.Area
		}
	}
	if area == 0 {
		return 0
	}
	var heights []float64
	for _, fw := range e.b.Enclosure.FoundationWalls {
		if fw.InteriorAdjacentTo == hpxml.LocationCrawlspaceConditioned {
			heights = append(heights, fw.Height)
		}
	}
	return calc.CrawlspaceVolume(area, heights)
}

// applyZones attaches the conditioned surfaces of a building without zones
// to the synthetic space, so the sizer can split its loads. The links are
// dropped again with the synthetic zone.
func (e *engine) applyZones() error {
	spaces := e.b.ConditionedSpaces()
	total := 0.0
	for _, sp := range spaces {
		total += sp.FloorArea
	}
	if cfa := e.cfa(); e.synthetic == nil && cfa > 0 && math.Abs(total-cfa) > 1.0 {
		e.diag.warnf(e.b.ID, "conditioned spaces cover %.0f ft2 of %.0f ft2 conditioned floor area", total, cfa)
	}
	if e.synthetic == nil {
		return nil
	}
	space := e.synthetic.Spaces[0]
	attach := func(ref *string, interior hpxml.Location) {
		if *ref == "" && interior.IsConditioned() {
			*ref = space.ID
			e.attached = append(e.attached, ref)
		}
	}
	for _, s := range e.surfaces() {
		attach(&s.AttachedToSpace, s.InteriorAdjacentTo)
	}
	for _, s := range e.b.Enclosure.Slabs {
		attach(&s.AttachedToSpace, s.InteriorAdjacentTo)
	}
	return nil
}

func (e *engine) applyClimateZones() error {
	cz := &e.b.ClimateZones
	err := rules{
		field("weather_station_wmo", &cz.WeatherStationWMO, func() (string, bool, error) {
			if e.station != nil && e.station.WMO != "" {
				return e.station.WMO, true, nil
			}
			return e.w.Header.WMO, e.w.Header.WMO != "", nil
		}),
		field("iecc_zone", &cz.IECCZone, func() (string, bool, error) {
			if e.station != nil && e.station.IECCZone != "" {
				return e.station.IECCZone, true, nil
			}
			wmo, ok := cz.WeatherStationWMO.Get()
			if !ok {
				return "", false, configErrorf("ClimateZoneIECC", "climate_zone", "no weather station to look the zone up by")
			}
			st, err := e.cache.StationByWMO(wmo)
			if err != nil || st.IECCZone == "" {
				return "", false, configErrorf("ClimateZoneIECC", "climate_zone", "no IECC zone for weather station %s", wmo)
			}
			return st.IECCZone, true, nil
		}),
		constant("iecc_year", &cz.IECCYear, defaultIECCYear),
	}.apply("ClimateZoneIECC")
	return err
}
