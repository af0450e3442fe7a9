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

	"gonum.org/v1/gonum/floats"

	"github.com/antst/hpxdefaults/internal/calc"
	"github.com/antst/hpxdefaults/internal/hpxml"
)

const (
	ductFractionTolerance = 0.001
	ductFractionRounding  = 0.0005
	ductFractionEpsilon   = 1e-9
	rimJoistHeight        = 9.0 / 12.0
	infiltrationPressure  = 50.0
)

// servedFraction is the largest load fraction any system attached to the
// distribution serves.
func (e *engine) servedFraction(distID string) float64 {
	f := 0.0
	sys := &e.b.Systems
	for _, hs := range sys.HeatingSystems {
		if hs.DistributionSystem == distID {
			f = math.Max(f, hs.FractionHeatLoad)
		}
	}
	for _, cs := range sys.CoolingSystems {
		if cs.DistributionSystem == distID {
			f = math.Max(f, cs.FractionCoolLoad)
		}
	}
	for _, hp := range sys.HeatPumps {
		if hp.DistributionSystem == distID {
			f = math.Max(f, math.Max(hp.FractionHeatLoad, hp.FractionCoolLoad))
		}
	}
	return f
}

func (e *engine) applyDistribution() error {
	ncfl := e.b.Construction.NumberOfConditionedFloors
	for _, d := range e.b.Systems.HVACDistributions {
		if d.DistributionSystemType != hpxml.DistributionAir {
			continue
		}
		err := rules{
			constant("air_distribution_type", &d.AirDistributionType, hpxml.AirDistributionRegular),
			computed("conditioned_floor_area_served", &d.ConditionedFloorAreaServed, func() float64 {
				if f := e.servedFraction(d.ID); f > 0 {
					return e.cfa() * f
				}
				return e.cfa()
			}),
			when(func() bool { return len(d.DuctsOfType(hpxml.DuctReturn)) > 0 },
				constant("number_of_return_registers", &d.NumberOfReturnRegisters, calc.ReturnRegisters(ncfl))),
		}.apply(d.ID)
		if err != nil {
			return err
		}
		for _, side := range []hpxml.DuctType{hpxml.DuctSupply, hpxml.DuctReturn} {
			if err := e.applyDucts(d, side); err != nil {
				return err
			}
		}
	}
	return nil
}

// applyDucts fills location and area of the ducts of one side. Ducts
// without any location are split between the primary location and
// conditioned space; otherwise the default area is shared by fraction.
func (e *engine) applyDucts(d *hpxml.HVACDistribution, side hpxml.DuctType) error {
	ducts := d.DuctsOfType(side)
	if len(ducts) == 0 {
		return nil
	}
	primaryArea, secondaryArea := calc.DuctSurfaceArea(side, e.b.Construction.NumberOfFloorsAboveGrade,
		d.ConditionedFloorAreaServed.Val(), d.NumberOfReturnRegisters.Val())

	located := false
	for _, duct := range ducts {
		located = located || duct.Location.IsSet() || duct.SurfaceArea.IsSet()
	}
	if !located {
		primary, secondary, ok := calc.DuctLocations(e.hasLocation)
		n := float64(len(ducts))
		for i, duct := range ducts {
			if !ok {
				// nothing outside conditioned space: all of it goes inside
				duct.Location.Default(secondary)
				duct.SurfaceArea.Default(calc.Round((primaryArea+secondaryArea)/n, 2))
				continue
			}
			duct.Location.Default(primary)
			duct.SurfaceArea.Default(calc.Round(primaryArea/n, 2))
			if secondaryArea <= 0 {
				continue
			}
			extra := &hpxml.Duct{
				ID:          fmt.Sprintf("%s_%s%d_secondary", d.ID, side, i+1),
				DuctType:    side,
				InsulationR: hpxml.Defaulted(0.0),
				Location:    hpxml.Defaulted(secondary),
				SurfaceArea: hpxml.Defaulted(calc.Round(secondaryArea/n, 2)),
			}
			if r, ok := duct.InsulationR.Get(); ok {
				extra.InsulationR = hpxml.Defaulted(r)
			}
			d.Ducts = append(d.Ducts, extra)
		}
		ducts = d.DuctsOfType(side)
	} else {
		total := primaryArea + secondaryArea
		for _, duct := range ducts {
			if !duct.Location.IsSet() {
				return configErrorf(d.ID, "duct_location", "a %s duct has no location while others do", side)
			}
			frac := duct.FractionArea.Or(1.0 / float64(len(ducts)))
			if duct.SurfaceArea.DefaultIfUnset(calc.Round(total*frac, 2)) {
				logDefault(d.ID, "duct_surface_area", duct.SurfaceArea.Val())
			}
		}
	}

	areas := make([]float64, len(ducts))
	for i, duct := range ducts {
		areas[i] = duct.SurfaceArea.Val()
	}
	sideTotal := floats.Sum(areas)
	var defaulted []int
	for i, duct := range ducts {
		if !duct.FractionArea.IsSet() {
			defaulted = append(defaulted, i)
		}
		id := duct.ID
		if id == "" {
			id = fmt.Sprintf("%s.%s[%d]", d.ID, side, i+1)
		}
		err := rules{
			computed("duct_fraction_area", &duct.FractionArea, func() float64 {
				if sideTotal <= 0 {
					return calc.Round(1.0/float64(len(ducts)), 3)
				}
				return calc.Round(areas[i]/sideTotal, 3)
			}),
			constant("duct_surface_area_multiplier", &duct.SurfaceAreaMultiplier, 1.0),
			constant("duct_buried_insulation_level", &duct.BuriedLevel, hpxml.DuctBuriedNone),
			computed("duct_fraction_rectangular", &duct.FractionRectangular, func() float64 {
				return calc.DuctFractionRectangular(side, duct.Shape.Val())
			}),
			fallible("duct_effective_r_value", &duct.EffectiveR, func() (float64, error) {
				r, err := calc.DuctEffectiveR(duct.InsulationR.Or(0), side, duct.BuriedLevel.Val(), duct.FractionRectangular.Val())
				if err != nil {
					return 0, configErrorf(id, "duct_buried_insulation_level", "%v", err)
				}
				return r, nil
			}),
		}.apply(id)
		if err != nil {
			return err
		}
	}
	balanceDuctFractions(ducts, defaulted)
	return checkDuctFractions(d.ID, side, ducts)
}

func sumDuctFractions(ducts []*hpxml.Duct) float64 {
	fracs := make([]float64, len(ducts))
	for i, duct := range ducts {
		fracs[i] = duct.FractionArea.Val()
	}
	return floats.Sum(fracs)
}

// balanceDuctFractions puts the rounding residual of the defaulted
// fractions on the largest of them. A residual larger than rounding can
// produce is left for checkDuctFractions.
func balanceDuctFractions(ducts []*hpxml.Duct, defaulted []int) {
	if len(defaulted) == 0 {
		return
	}
	residual := 1.0 - sumDuctFractions(ducts)
	if math.Abs(residual) > ductFractionRounding*float64(len(defaulted))+ductFractionEpsilon {
		return
	}
	largest := defaulted[0]
	for _, i := range defaulted[1:] {
		if ducts[i].FractionArea.Val() > ducts[largest].FractionArea.Val() {
			largest = i
		}
	}
	ducts[largest].FractionArea.Default(calc.Round(ducts[largest].FractionArea.Val()+residual, 3))
}

// checkDuctFractions requires the area fractions of one side to sum to one.
func checkDuctFractions(id string, side hpxml.DuctType, ducts []*hpxml.Duct) error {
	if sum := sumDuctFractions(ducts); math.Abs(sum-1.0) > ductFractionTolerance+ductFractionEpsilon {
		return configErrorf(id, "duct_fraction_area", "%s duct fractions sum to %.3f, not 1", side, sum)
	}
	return nil
}

// infiltrationMeasurement returns the measurement infiltration defaults are
// written to, adding one when the building has none.
func (e *engine) infiltrationMeasurement() *hpxml.AirInfiltrationMeasurement {
	enc := &e.b.Enclosure
	for _, m := range enc.AirInfiltration {
		if m.IsQuantitative() {
			return m
		}
	}
	if len(enc.AirInfiltration) > 0 {
		return enc.AirInfiltration[0]
	}
	m := &hpxml.AirInfiltrationMeasurement{ID: e.id("AirInfiltrationMeasurement")}
	enc.AirInfiltration = append(enc.AirInfiltration, m)
	return m
}

// infiltrationHeight adds the above-grade part of conditioned basements to
// the height of the above-grade floors.
func (e *engine) infiltrationHeight(volume float64) float64 {
	c := &e.b.Construction
	basementAG := 0.0
	for _, fw := range e.b.Enclosure.FoundationWalls {
		if fw.InteriorAdjacentTo == hpxml.LocationBasementConditioned && fw.IsExterior() {
			basementAG = math.Max(basementAG, fw.Height-fw.DepthBelowGrade)
		}
	}
	rimJoist := false
	for _, r := range e.b.Enclosure.RimJoists {
		if r.InteriorAdjacentTo == hpxml.LocationBasementConditioned && r.IsExterior() {
			rimJoist = true
		}
	}
	return calc.Round(calc.InfiltrationHeight(volume, e.cfa(), c.NumberOfFloorsAboveGrade, false, basementAG, rimJoist), 2)
}

// compartmentalizationRatio is the share of the pressure boundary area of
// a dwelling unit that faces outside rather than other units.
func (e *engine) compartmentalizationRatio() float64 {
	var exterior, total float64
	add := func(interior, exteriorAdj hpxml.Location, area float64) {
		if !interior.IsConditioned() && !exteriorAdj.IsConditioned() {
			return
		}
		total += area
		switch exteriorAdj {
		case hpxml.LocationOtherHousingUnit, hpxml.LocationOtherHeatedSpace,
			hpxml.LocationOtherMultifamilyBuffer, hpxml.LocationOtherNonFreezingSpace:
			return
		}
		exterior += area
	}
	for _, s := range e.surfaces() {
		add(s.InteriorAdjacentTo, s.ExteriorAdjacentTo, s.Area.Or(0))
	}
	for _, s := range e.b.Enclosure.Slabs {
		add(s.InteriorAdjacentTo, hpxml.LocationGround, s.Area)
	}
	if total == 0 {
		return 1.0
	}
	return calc.Round(exterior/total, 4)
}

func foundationTypeOf(l hpxml.Location) (hpxml.FoundationType, bool) {
	switch l {
	case hpxml.LocationBasementConditioned:
		return hpxml.FoundationConditionedBasement, true
	case hpxml.LocationBasementUnconditioned:
		return hpxml.FoundationUnconditionedBasement, true
	case hpxml.LocationCrawlspaceVented:
		return hpxml.FoundationVentedCrawlspace, true
	case hpxml.LocationCrawlspaceUnvented:
		return hpxml.FoundationUnventedCrawlspace, true
	case hpxml.LocationCrawlspaceConditioned:
		return hpxml.FoundationConditionedCrawlspace, true
	case hpxml.LocationManufacturedHomeBelly:
		return hpxml.FoundationBellyAndWing, true
	case hpxml.LocationOtherHousingUnit, hpxml.LocationOtherHeatedSpace,
		hpxml.LocationOtherMultifamilyBuffer, hpxml.LocationOtherNonFreezingSpace:
		return hpxml.FoundationAboveApartment, true
	}
	return "", false
}

// foundationAreas lists the footprint of each foundation type: floors over
// unconditioned space and slabs of conditioned space.
func (e *engine) foundationAreas() []calc.FoundationArea {
	var res []calc.FoundationArea
	for _, f := range e.b.Enclosure.Floors {
		if f.IsCeiling() || !f.InteriorAdjacentTo.IsConditioned() {
			continue
		}
		if t, ok := foundationTypeOf(f.ExteriorAdjacentTo); ok {
			res = append(res, calc.FoundationArea{Type: t, Area: f.Area.Or(0)})
		}
	}
	for _, s := range e.b.Enclosure.Slabs {
		switch s.InteriorAdjacentTo {
		case hpxml.LocationConditionedSpace:
			res = append(res, calc.FoundationArea{Type: hpxml.FoundationSlab, Area: s.Area})
		case hpxml.LocationBasementConditioned, hpxml.LocationCrawlspaceConditioned:
			t, _ := foundationTypeOf(s.InteriorAdjacentTo)
			res = append(res, calc.FoundationArea{Type: t, Area: s.Area})
		}
	}
	return res
}

func (e *engine) ductShares() []calc.DuctShare {
	var res []calc.DuctShare
	for _, d := range e.b.Systems.HVACDistributions {
		frac := e.servedFraction(d.ID)
		for _, duct := range d.DuctsOfType(hpxml.DuctSupply) {
			res = append(res, calc.DuctShare{HVACFraction: frac, DuctFraction: duct.FractionArea.Val(), Location: duct.Location.Val()})
		}
	}
	return res
}

// applyInfiltration fills the infiltration volume, height and exterior area
// fraction, and estimates ACH50 when no leakage was measured.
func (e *engine) applyInfiltration() error {
	if err := e.requirePasses(passAttics, passFoundations, passConstruction, passFoundationWalls, passDistribution); err != nil {
		return err
	}
	c := &e.b.Construction
	quantitative := false
	for _, m := range e.b.Enclosure.AirInfiltration {
		quantitative = quantitative || m.IsQuantitative()
	}
	m := e.infiltrationMeasurement()
	volume := c.ConditionedBuildingVolume.Val()
	rs := rules{
		constant("infiltration_volume", &m.InfiltrationVolume, volume),
		computed("infiltration_height", &m.InfiltrationHeight, func() float64 { return e.infiltrationHeight(m.InfiltrationVolume.Val()) }),
		computed("a_ext", &m.AExt, func() float64 {
			if e.facility() == hpxml.FacilitySingleFamilyDetached || e.facility() == hpxml.FacilityManufacturedHome {
				return 1.0
			}
			return e.compartmentalizationRatio()
		}),
	}
	if !quantitative {
		rs = append(rs,
			constant("unit_of_measure", &m.UnitOfMeasure, hpxml.UnitsACH),
			constant("house_pressure", &m.HousePressure, infiltrationPressure),
			fallible("air_leakage", &m.AirLeakage, func() (float64, error) {
				year, ok := c.YearBuilt.Get()
				if !ok {
					return 0, configErrorf("BuildingConstruction", "year_built", "needed to estimate air leakage")
				}
				ach50, err := calc.DefaultACH50(calc.ACH50Inputs{
					CFA:           e.cfa(),
					NCflAG:        c.NumberOfFloorsAboveGrade,
					CeilingHeight: c.AverageCeilingHeight.Val(),
					Volume:        m.InfiltrationVolume.Val(),
					YearBuilt:     year,
					IECCZone:      e.b.ClimateZones.IECCZone.Val(),
					Foundations:   e.foundationAreas(),
					Ducts:         e.ductShares(),
					Leakiness:     m.LeakinessDescription.Val(),
				})
				if err != nil {
					return 0, configErrorf(m.ID, "air_leakage", "%v", err)
				}
				return calc.Round(ach50, 2), nil
			}))
	}
	return rs.apply(m.ID)
}

// applyHVACLocation puts ducted equipment where most of its supply ducts
// are and everything else in conditioned space.
func (e *engine) applyHVACLocation() error {
	if err := e.requirePasses(passHVAC, passDistribution); err != nil {
		return err
	}
	locate := func(c *hpxml.HVACCommon) error {
		return rules{computed("location", &c.Location, func() hpxml.Location {
			if d := e.distribution(c.DistributionSystem); d != nil {
				best, area := hpxml.LocationConditionedSpace, -1.0
				for _, duct := range d.DuctsOfType(hpxml.DuctSupply) {
					if a := duct.SurfaceArea.Val(); duct.Location.IsSet() && a > area {
						best, area = duct.Location.Val(), a
					}
				}
				return best
			}
			return hpxml.LocationConditionedSpace
		})}.apply(c.ID)
	}
	sys := &e.b.Systems
	for _, hs := range sys.HeatingSystems {
		if err := locate(&hs.HVACCommon); err != nil {
			return err
		}
	}
	for _, cs := range sys.CoolingSystems {
		if err := locate(&cs.HVACCommon); err != nil {
			return err
		}
	}
	for _, hp := range sys.HeatPumps {
		if err := locate(&hp.HVACCommon); err != nil {
			return err
		}
	}
	return nil
}
