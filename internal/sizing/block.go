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

package sizing

import (
	"math"

	"github.com/antst/hpxdefaults/internal/hpxml"
	"github.com/antst/hpxdefaults/internal/hvac_perf"
	"github.com/antst/hpxdefaults/internal/logger"
	"github.com/antst/hpxdefaults/internal/weather"
)

const (
	sensibleAirFactor = 1.1  // Btu/h per cfm per deg F
	latentAirFactor   = 0.68 // Btu/h per cfm per grain/lb

	achNaturalDivisor = 20.0
	wallCLTDAdder     = 10.0
	roofCLTDAdder     = 40.0
	bufferFactor      = 0.5
	groundFactor      = 0.5

	windowSolarGain   = 30.0 // Btu/h per ft2 of glass at SHGC 1
	skylightSolarGain = 60.0

	ductLoadFraction = 0.15

	occupantSensible        = 230.0
	occupantLatent          = 200.0
	defaultInternalSensible = 2400.0

	saturationRatio75F    = 0.0188
	slabFFactor           = 0.73
	foundationWallBaseR   = 2.0
	defaultCeilingHeight  = 8.0
	defaultHeatingSetpt   = 70.0
	defaultCoolingSetpt   = 75.0
	defaultHumiditySetpt  = 0.5
	grainsPerHumidityUnit = 7000.0
)

// BlockLoad is a whole-house design load calculation. Envelope,
// infiltration and duct loads are split over the conditioned spaces by
// floor area; internal gains follow the per-space inputs when present.
type BlockLoad struct{}

func NewBlockLoad() *BlockLoad {
	return &BlockLoad{}
}

type conditions struct {
	heatingDesign float64
	htgDT         float64
	clgDT         float64
	grains        float64
}

func designConditions(b *hpxml.Building, w *weather.Weather) conditions {
	mj := b.Header.ManualJ
	c := conditions{heatingDesign: mj.HeatingDesignTemp.Or(w.Design.HeatingDrybulb)}
	c.htgDT = math.Max(0, mj.HeatingSetpoint.Or(defaultHeatingSetpt)-c.heatingDesign)
	c.clgDT = mj.CoolingDesignTemp.Or(w.Design.CoolingDrybulb) - mj.CoolingSetpoint.Or(defaultCoolingSetpt)
	indoor := saturationRatio75F * mj.HumiditySetpoint.Or(defaultHumiditySetpt)
	c.grains = mj.HumidityDifference.Or(math.Max(0, (w.Design.CoolingHumidityRatio-indoor)*grainsPerHumidityUnit))
	return c
}

// adjacency scales the temperature difference across a surface by what lies
// on its exterior side.
func adjacency(l hpxml.Location) float64 {
	switch l {
	case hpxml.LocationOutside, hpxml.LocationManufacturedHomeUnder,
		hpxml.LocationAtticVented, hpxml.LocationAtticUnvented:
		return 1
	case hpxml.LocationGround:
		return groundFactor
	}
	return bufferFactor
}

func isAttic(l hpxml.Location) bool {
	return l == hpxml.LocationAtticVented || l == hpxml.LocationAtticUnvented
}

func boundary(in, ext hpxml.Location) bool {
	return in.IsConditioned() && !ext.IsConditioned()
}

func ua(area, r float64) float64 {
	if area <= 0 {
		return 0
	}
	return area / math.Max(r, 1)
}

func pos(v float64) float64 {
	return math.Max(0, v)
}

func (s *BlockLoad) envelope(b *hpxml.Building, c conditions) loads {
	var l loads
	e := &b.Enclosure

	openings := make(map[string]float64)
	for _, win := range e.Windows {
		openings[win.AttachedToWall] += win.Area
	}
	for _, d := range e.Doors {
		openings[d.AttachedToWall] += d.Area
	}
	for _, sky := range e.Skylights {
		openings[sky.AttachedToRoof] += sky.Area
	}

	opaque := func(sf *hpxml.Surface, r float64, htg, clg component, adder float64) {
		if !boundary(sf.InteriorAdjacentTo, sf.ExteriorAdjacentTo) {
			return
		}
		u := ua(sf.Area.Val()-openings[sf.ID], r)
		f := adjacency(sf.ExteriorAdjacentTo)
		l[htg] += u * c.htgDT * f
		if sf.ExteriorAdjacentTo == hpxml.LocationOutside || isAttic(sf.ExteriorAdjacentTo) {
			l[clg] += u * pos(c.clgDT+adder)
		} else {
			l[clg] += u * pos(c.clgDT) * f
		}
	}
	for _, w := range e.Walls {
		opaque(&w.Surface, w.InsulationR, htgWalls, clgWalls, wallCLTDAdder)
	}
	for _, rj := range e.RimJoists {
		opaque(&rj.Surface, rj.InsulationR, htgWalls, clgWalls, wallCLTDAdder)
	}
	for _, r := range e.Roofs {
		opaque(&r.Surface, r.InsulationR, htgRoofs, clgRoofs, roofCLTDAdder)
	}
	for _, f := range e.Floors {
		if f.IsCeiling() {
			opaque(&f.Surface, f.InsulationR, htgCeilings, clgCeilings, roofCLTDAdder)
		} else {
			opaque(&f.Surface, f.InsulationR, htgFloors, clgFloors, 0)
		}
	}
	for _, fw := range e.FoundationWalls {
		if !boundary(fw.InteriorAdjacentTo, fw.ExteriorAdjacentTo) {
			continue
		}
		area := fw.Area.Or(fw.Length * fw.Height)
		l[htgWalls] += ua(area, fw.InteriorInsulationR+fw.ExteriorInsulationR+foundationWallBaseR) * c.htgDT * groundFactor
	}
	for _, sl := range e.Slabs {
		if !sl.InteriorAdjacentTo.IsConditioned() {
			continue
		}
		f := slabFFactor / (1 + sl.PerimeterInsulation/5)
		l[htgSlabs] += f * sl.ExposedPerimeter * c.htgDT
	}
	for _, win := range e.Windows {
		l[htgWindows] += win.UFactor.Val() * win.Area * c.htgDT
		l[clgWindows] += win.UFactor.Val()*win.Area*pos(c.clgDT) + solar(&win.Fenestration, windowSolarGain)
	}
	for _, sky := range e.Skylights {
		l[htgSkylights] += sky.UFactor.Val() * sky.Area * c.htgDT
		l[clgSkylights] += sky.UFactor.Val()*sky.Area*pos(c.clgDT) + solar(&sky.Fenestration, skylightSolarGain)
	}
	for _, d := range e.Doors {
		u := ua(d.Area, d.RValue)
		l[htgDoors] += u * c.htgDT
		l[clgDoors] += u * pos(c.clgDT+wallCLTDAdder)
	}
	return l
}

func solar(f *hpxml.Fenestration, gain float64) float64 {
	return f.Area * f.SHGC.Val() * gain * f.InteriorFactorSummer.Or(1) * f.ExteriorFactorSummer.Or(1) *
		f.InsectFactorSummer.Or(1)
}

// infiltrationCFM is the natural infiltration airflow at design conditions.
func infiltrationCFM(b *hpxml.Building) float64 {
	volume := b.Construction.ConditionedBuildingVolume.Or(
		b.Construction.ConditionedFloorArea * b.Construction.AverageCeilingHeight.Or(defaultCeilingHeight))
	if volume <= 0 {
		return 0
	}
	for _, m := range b.Enclosure.AirInfiltration {
		if !m.IsQuantitative() {
			continue
		}
		v := m.AirLeakage.Val()
		var achNat float64
		switch m.UnitOfMeasure.Val() {
		case hpxml.UnitsACHNatural:
			achNat = v
		case hpxml.UnitsCFM:
			v = v * 60 / volume
			fallthrough
		case hpxml.UnitsACH:
			achNat = v * math.Pow(50/m.HousePressure.Val(), 0.65) / achNaturalDivisor
		}
		return achNat * volume / 60
	}
	return 0
}

// ventilation returns the whole-building ventilation airflow weighted by
// sensible and total recovery.
func ventilation(b *hpxml.Building) (sensible, latent float64) {
	for _, f := range b.Systems.VentilationFans {
		if !f.UsedForWholeBuilding {
			continue
		}
		cfm, ok := f.FlowRate()
		if !ok {
			continue
		}
		cfm *= f.HoursInOperation.Or(24) / 24
		sensible += cfm * (1 - f.SensibleRecoveryEff.Or(0))
		latent += cfm * (1 - f.TotalRecoveryEff.Or(0))
	}
	return sensible, latent
}

// ductFraction is the share of duct surface area outside conditioned space.
func ductFraction(b *hpxml.Building) float64 {
	var outside, total float64
	for _, d := range b.Systems.HVACDistributions {
		if d.DistributionSystemType != hpxml.DistributionAir {
			continue
		}
		for _, duct := range d.Ducts {
			a := duct.SurfaceArea.Or(duct.FractionArea.Or(0))
			total += a
			if !duct.Location.Val().IsConditioned() {
				outside += a
			}
		}
	}
	if total == 0 {
		return 0
	}
	return outside / total
}

func (s *BlockLoad) shell(b *hpxml.Building, c conditions) loads {
	l := s.envelope(b, c)
	infil := infiltrationCFM(b)
	ventSens, ventLat := ventilation(b)
	l[htgInfilVent] = sensibleAirFactor * (infil + ventSens) * c.htgDT
	l[clgInfilVent] = sensibleAirFactor * (infil + ventSens) * pos(c.clgDT)
	l[latInfilVent] = latentAirFactor * (infil + ventLat) * c.grains

	f := ductFraction(b) * ductLoadFraction
	l[htgDucts] = f * l.sum(htgWalls, htgInfilVent)
	l[clgDucts] = f * l.sum(clgWalls, clgInfilVent)
	l[latDucts] = f * l[latInfilVent]
	return l
}

// Size implements Sizer.
func (s *BlockLoad) Size(b *hpxml.Building, w *weather.Weather, store *hvac_perf.Store) (*Result, error) {
	c := designConditions(b, w)
	shell := s.shell(b, c)

	mj := b.Header.ManualJ
	intSens := mj.InternalLoadsSensible.Or(defaultInternalSensible)
	intLat := mj.InternalLoadsLatent.Or(0)
	occupants := mj.NumberOfOccupants.Or(float64(b.Construction.NumberOfBedrooms + 1))

	var totalArea float64
	for _, sp := range b.ConditionedSpaces() {
		totalArea += sp.FloorArea
	}

	res := &Result{
		Zones:  make(map[string]hpxml.DesignLoads),
		Spaces: make(map[string]hpxml.DesignLoads),
	}
	var building loads
	if totalArea <= 0 {
		building = shell
		building[clgIntGains] = intSens + occupants*occupantSensible
		building[latIntGains] = intLat + occupants*occupantLatent
	}
	for _, z := range b.ConditionedZones() {
		var zone loads
		for _, sp := range z.Spaces {
			share := sp.FloorArea / totalArea
			l := shell.scale(share)
			occ := sp.NumberOfOccupants.Or(occupants * share)
			l[clgIntGains] = sp.InternalLoadsSensible.Or(intSens*share) + occ*occupantSensible
			l[latIntGains] = sp.InternalLoadsLatent.Or(intLat*share) + occ*occupantLatent
			res.Spaces[sp.ID] = l.designLoads()
			zone.add(l)
		}
		res.Zones[z.ID] = zone.designLoads()
		building.add(zone)
	}
	res.Building = building.designLoads()
	b.HVACPlant = &res.Building

	logger.L().Debugf("design loads of %s: heating %v, cooling sensible %v, cooling latent %v",
		b.ID, res.Building.HeatingTotal, res.Building.CoolingSensTotal, res.Building.CoolingLatTotal)

	if err := sizeEquipment(b, res, store, c.heatingDesign); err != nil {
		return nil, err
	}
	return res, nil
}
