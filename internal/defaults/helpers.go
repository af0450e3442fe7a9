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
	"github.com/antst/hpxdefaults/internal/calc"
	"github.com/antst/hpxdefaults/internal/hpxml"
	"github.com/antst/hpxdefaults/internal/logger"
)

func (e *engine) cfa() float64 {
	return e.b.Construction.ConditionedFloorArea
}

func (e *engine) facility() hpxml.ResidentialFacilityType {
	return e.b.Construction.ResidentialFacilityType.Or(hpxml.FacilitySingleFamilyDetached)
}

func (e *engine) operational() bool {
	return e.hdr.OccupancyCalculationType.Val() == hpxml.OccupancyCalculationOperational
}

// nbeds is the bedroom count end-use defaults scale with. Operational
// runs derive it from the number of residents.
func (e *engine) nbeds() float64 {
	if e.operational() {
		if n, ok := e.b.Occupancy.NumberOfResidents.Get(); ok {
			return calc.NBedsAdjusted(e.facility(), n)
		}
	}
	return float64(e.b.Construction.NumberOfBedrooms)
}

func (e *engine) nbaths() float64 {
	return float64(e.b.Construction.NumberOfBathrooms.Or(calc.DefaultBathrooms(e.b.Construction.NumberOfBedrooms)))
}

// surfaces lists the opaque surfaces of the enclosure.
func (e *engine) surfaces() []*hpxml.Surface {
	enc := &e.b.Enclosure
	var ss []*hpxml.Surface
	for _, r := range enc.Roofs {
		ss = append(ss, &r.Surface)
	}
	for _, r := range enc.RimJoists {
		ss = append(ss, &r.Surface)
	}
	for _, w := range enc.Walls {
		ss = append(ss, &w.Surface)
	}
	for _, w := range enc.FoundationWalls {
		ss = append(ss, &w.Surface)
	}
	for _, f := range enc.Floors {
		ss = append(ss, &f.Surface)
	}
	return ss
}

// hasLocation reports whether any surface of the enclosure borders l.
func (e *engine) hasLocation(l hpxml.Location) bool {
	if l == hpxml.LocationConditionedSpace {
		return true
	}
	for _, s := range e.surfaces() {
		if s.InteriorAdjacentTo == l || s.ExteriorAdjacentTo == l {
			return true
		}
	}
	for _, s := range e.b.Enclosure.Slabs {
		if s.InteriorAdjacentTo == l {
			return true
		}
	}
	return false
}

func (e *engine) hasHeatPump() bool {
	return len(e.b.Systems.HeatPumps) > 0
}

func (e *engine) hasGSHP() bool {
	for _, hp := range e.b.Systems.HeatPumps {
		if hp.HeatPumpType == hpxml.HeatPumpGroundToAir {
			return true
		}
	}
	return false
}

func (e *engine) hasHeatPumpBackup() bool {
	for _, hp := range e.b.Systems.HeatPumps {
		if hp.BackupType.IsSet() {
			return true
		}
	}
	return false
}

func (e *engine) hasPV() bool {
	return len(e.b.Systems.PVSystems) > 0
}

// usesFuel reports whether any appliance or system of the building burns f.
// Every building uses electricity.
func (e *engine) usesFuel(f hpxml.FuelType) bool {
	if f == hpxml.FuelElectricity {
		return true
	}
	sys := &e.b.Systems
	for _, hs := range sys.HeatingSystems {
		if hs.Fuel == f {
			return true
		}
	}
	for _, cs := range sys.CoolingSystems {
		if cs.IntegratedHeatingFuel.IsSet() && cs.IntegratedHeatingFuel.Val() == f {
			return true
		}
	}
	for _, hp := range sys.HeatPumps {
		if hp.BackupFuel.IsSet() && hp.BackupFuel.Val() == f {
			return true
		}
	}
	for _, wh := range sys.WaterHeating.Systems {
		if wh.FuelType == f {
			return true
		}
	}
	for _, g := range sys.Generators {
		if g.FuelType == f {
			return true
		}
	}
	for _, d := range e.b.Appliances.ClothesDryers {
		if d.FuelType == f {
			return true
		}
	}
	for _, r := range e.b.Appliances.CookingRanges {
		if r.FuelType == f {
			return true
		}
	}
	for _, l := range e.b.MiscLoads.FuelLoads {
		if l.FuelType == f {
			return true
		}
	}
	if f == hpxml.FuelNaturalGas {
		for _, p := range append(append([]*hpxml.Pool(nil), e.b.MiscLoads.Pools...), e.b.MiscLoads.PermanentSpas...) {
			if p.HasHeater() && p.HeaterType == hpxml.PoolHeaterGas {
				return true
			}
		}
	}
	return false
}

// defaultAzimuth is the azimuth given to oriented records that carry
// neither azimuth nor orientation: the primary azimuth of the surfaces
// the user oriented, or 0 when nothing is oriented.
func (e *engine) defaultAzimuth() int {
	if e.azimuths == nil {
		areas := map[int]float64{}
		add := func(az hpxml.Opt[int], area float64) {
			if az.IsSet() && !az.IsDefaulted() {
				areas[calc.SanitizeAzimuth(az.Val())] += area
			}
		}
		enc := &e.b.Enclosure
		for _, r := range enc.Roofs {
			add(r.Azimuth, r.Area.Or(0))
		}
		for _, r := range enc.RimJoists {
			add(r.Azimuth, r.Area.Or(0))
		}
		for _, w := range enc.Walls {
			add(w.Azimuth, w.Area.Or(0))
		}
		for _, w := range enc.FoundationWalls {
			add(w.Azimuth, w.Area.Or(0))
		}
		for _, w := range enc.Windows {
			add(w.Azimuth, w.Area)
		}
		for _, s := range enc.Skylights {
			add(s.Azimuth, s.Area)
		}
		for _, d := range enc.Doors {
			add(d.Azimuth, d.Area)
		}
		e.azimuths = calc.DefaultAzimuths(areas)
	}
	return e.azimuths[0]
}

// resolveAzimuth fills azimuth and orientation of one record and warns
// when the user set both and they disagree.
func (e *engine) resolveAzimuth(id string, az *hpxml.Opt[int], o *hpxml.Opt[hpxml.Orientation], fallback int) error {
	wasAz, wasO := az.IsSet(), o.IsSet()
	mismatch, err := calc.ResolveAzimuth(az, o, fallback)
	if err != nil {
		return configErrorf(id, "orientation", "%v", err)
	}
	if mismatch {
		e.diag.warnf(id, "azimuth %d does not match orientation %s", az.Val(), o.Val())
	}
	if !wasAz && az.IsSet() || !wasO && o.IsSet() {
		logDefault(id, "azimuth", az.Val())
		logDefault(id, "orientation", o.Val())
	}
	return nil
}

func logDefault(id, field string, v interface{}) {
	logger.L().Debugf("%s.%s defaulted to %v", id, field, v)
}
