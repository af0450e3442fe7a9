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
)

const (
	ventedAtticSLA       = 1.0 / 300.0
	ventedCrawlspaceSLA  = 1.0 / 150.0
	roofEmittance        = 0.90
	sidingEmittance      = 0.90
	radiantBarrierGrade  = 1
	foundationWallThick  = 8.0
	partitionAreaFrac    = 1.0
	partitionFinishThick = 0.5
	furnitureAreaFrac    = 0.4
)

// uniform returns the value the user gave a group of records that must
// agree. Values the engine wrote earlier are ignored.
func uniform[T comparable](entity, name string, vals []*hpxml.Opt[T]) (T, bool, error) {
	var v T
	found := false
	for _, o := range vals {
		if !o.IsSet() || o.IsDefaulted() {
			continue
		}
		if found && o.Val() != v {
			return v, false, configErrorf(entity, name, "records disagree: %v and %v", v, o.Val())
		}
		v, found = o.Val(), true
	}
	return v, found, nil
}

// fillUniform gives every unset value of the group the user's value, or
// def when the user gave none.
func fillUniform[T comparable](entity, name string, vals []*hpxml.Opt[T], def T) error {
	v, ok, err := uniform(entity, name, vals)
	if err != nil {
		return err
	}
	if !ok {
		v = def
	}
	for _, o := range vals {
		if o.DefaultIfUnset(v) {
			logDefault(entity, name, v)
		}
	}
	return nil
}

func (e *engine) attic(t hpxml.AtticType, loc hpxml.Location, id string) []*hpxml.Attic {
	var res []*hpxml.Attic
	for _, a := range e.b.Enclosure.Attics {
		if a.AtticType == t {
			res = append(res, a)
		}
	}
	if len(res) == 0 && e.hasLocation(loc) {
		a := &hpxml.Attic{ID: e.id(id), AtticType: t}
		e.b.Enclosure.Attics = append(e.b.Enclosure.Attics, a)
		res = append(res, a)
	}
	return res
}

func (e *engine) foundation(t hpxml.FoundationType, loc hpxml.Location, id string) []*hpxml.Foundation {
	var res []*hpxml.Foundation
	for _, f := range e.b.Enclosure.Foundations {
		if f.FoundationType == t {
			res = append(res, f)
		}
	}
	if len(res) == 0 && e.hasLocation(loc) {
		f := &hpxml.Foundation{ID: e.id(id), FoundationType: t}
		e.b.Enclosure.Foundations = append(e.b.Enclosure.Foundations, f)
		res = append(res, f)
	}
	return res
}

// applyAttics adds missing attic records for attic locations the surfaces
// reference and makes the ventilation of each attic type uniform.
func (e *engine) applyAttics() error {
	vented := e.attic(hpxml.AtticVented, hpxml.LocationAtticVented, "VentedAttic")
	var slas, achs []*hpxml.Opt[float64]
	for _, a := range vented {
		slas, achs = append(slas, &a.VentedSLA), append(achs, &a.VentedACH)
	}
	_, hasSLA, err := uniform("VentedAttic", "vented_sla", slas)
	if err != nil {
		return err
	}
	_, hasACH, err := uniform("VentedAttic", "vented_ach", achs)
	if err != nil {
		return err
	}
	switch {
	case hasSLA && hasACH:
		return configErrorf("VentedAttic", "ventilation_rate", "attics give both SLA and ACH")
	case hasACH:
		err = fillUniform("VentedAttic", "vented_ach", achs, 0)
	default:
		err = fillUniform("VentedAttic", "vented_sla", slas, ventedAtticSLA)
	}
	if err != nil {
		return err
	}

	var within []*hpxml.Opt[bool]
	for _, a := range e.attic(hpxml.AtticUnvented, hpxml.LocationAtticUnvented, "UnventedAttic") {
		within = append(within, &a.WithinInfiltrationVolume)
	}
	return fillUniform("UnventedAttic", "within_infiltration_volume", within, false)
}

func (e *engine) applyFoundations() error {
	var slas []*hpxml.Opt[float64]
	for _, f := range e.foundation(hpxml.FoundationVentedCrawlspace, hpxml.LocationCrawlspaceVented, "VentedCrawlspace") {
		slas = append(slas, &f.VentedSLA)
	}
	if err := fillUniform("VentedCrawlspace", "vented_sla", slas, ventedCrawlspaceSLA); err != nil {
		return err
	}
	for _, g := range []struct {
		t   hpxml.FoundationType
		loc hpxml.Location
		id  string
	}{
		{hpxml.FoundationUnventedCrawlspace, hpxml.LocationCrawlspaceUnvented, "UnventedCrawlspace"},
		{hpxml.FoundationUnconditionedBasement, hpxml.LocationBasementUnconditioned, "UnconditionedBasement"},
	} {
		var within []*hpxml.Opt[bool]
		for _, f := range e.foundation(g.t, g.loc, g.id) {
			within = append(within, &f.WithinInfiltrationVolume)
		}
		if err := fillUniform(g.id, "within_infiltration_volume", within, false); err != nil {
			return err
		}
	}
	var skirts []*hpxml.Opt[bool]
	for _, f := range e.foundation(hpxml.FoundationBellyAndWing, hpxml.LocationManufacturedHomeBelly, "BellyAndWing") {
		skirts = append(skirts, &f.BellySkirtPresent)
	}
	return fillUniform("BellyAndWing", "belly_skirt_present", skirts, true)
}

func (e *engine) resolveColor(id string, c *hpxml.Opt[hpxml.Color], abs *hpxml.Opt[float64],
	toAbs func(hpxml.Color) (float64, error), toColor func(float64) (hpxml.Color, error)) error {
	wasC, wasA := c.IsSet(), abs.IsSet()
	if err := calc.ResolveColor(c, abs, toAbs, toColor); err != nil {
		return configErrorf(id, "color", "%v", err)
	}
	if !wasC {
		logDefault(id, "color", c.Val())
	}
	if !wasA {
		logDefault(id, "solar_absorptance", abs.Val())
	}
	return nil
}

func wallColor(abs float64) (hpxml.Color, error) {
	return calc.WallColor(abs), nil
}

func finishRules(f *hpxml.Finish, interior hpxml.Location) rules {
	return rules{
		constant("interior_finish_type", &f.Type, calc.InteriorFinishType(interior)),
		when(func() bool { return f.Type.Val() != hpxml.FinishNone },
			computed("interior_finish_thickness", &f.Thickness, func() float64 { return calc.InteriorFinishThickness(f.Type.Val()) })),
	}
}

func (e *engine) applyRoofs() error {
	for _, r := range e.b.Enclosure.Roofs {
		if err := e.resolveAzimuth(r.ID, &r.Azimuth, &r.Orientation, e.defaultAzimuth()); err != nil {
			return err
		}
		rs := rules{
			constant("roof_type", &r.RoofType, hpxml.RoofAsphaltShingles),
			step("roof_color", func() error {
				t := r.RoofType.Val()
				return e.resolveColor(r.ID, &r.Color, &r.SolarAbsorptance,
					func(c hpxml.Color) (float64, error) { return calc.RoofAbsorptance(c, t) },
					func(a float64) (hpxml.Color, error) { return calc.RoofColor(a, t) })
			}),
			constant("emittance", &r.Emittance, roofEmittance),
			constant("radiant_barrier", &r.RadiantBarrier, false),
			when(func() bool { return r.RadiantBarrier.Val() },
				constant("radiant_barrier_grade", &r.RadiantBarrierGrade, radiantBarrierGrade)),
		}
		if err := append(rs, finishRules(&r.Finish, r.InteriorAdjacentTo)...).apply(r.ID); err != nil {
			return err
		}
	}
	return nil
}

// exteriorRules default the cladding of a surface facing outside.
func (e *engine) exteriorRules(id string, siding *hpxml.Opt[hpxml.Siding], c *hpxml.Opt[hpxml.Color], abs, emittance *hpxml.Opt[float64]) rules {
	return rules{
		constant("siding", siding, hpxml.SidingWood),
		step("color", func() error { return e.resolveColor(id, c, abs, calc.WallAbsorptance, wallColor) }),
		constant("emittance", emittance, sidingEmittance),
	}
}

func (e *engine) applyRimJoists() error {
	for _, r := range e.b.Enclosure.RimJoists {
		if !r.IsExterior() {
			continue
		}
		if err := e.resolveAzimuth(r.ID, &r.Azimuth, &r.Orientation, e.defaultAzimuth()); err != nil {
			return err
		}
		if err := e.exteriorRules(r.ID, &r.Siding, &r.Color, &r.SolarAbsorptance, &r.Emittance).apply(r.ID); err != nil {
			return err
		}
	}
	return nil
}

func isAttic(l hpxml.Location) bool {
	return l == hpxml.LocationAtticVented || l == hpxml.LocationAtticUnvented
}

func (e *engine) applyWalls() error {
	for _, w := range e.b.Enclosure.Walls {
		var rs rules
		if w.IsExterior() {
			if err := e.resolveAzimuth(w.ID, &w.Azimuth, &w.Orientation, e.defaultAzimuth()); err != nil {
				return err
			}
			rs = e.exteriorRules(w.ID, &w.Siding, &w.Color, &w.SolarAbsorptance, &w.Emittance)
		}
		if isAttic(w.InteriorAdjacentTo) || isAttic(w.ExteriorAdjacentTo) {
			rs = append(rs, constant("radiant_barrier", &w.RadiantBarrier, false))
		}
		rs = append(rs, finishRules(&w.Finish, w.InteriorAdjacentTo)...)
		if err := rs.apply(w.ID); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) applyFoundationWalls() error {
	for _, fw := range e.b.Enclosure.FoundationWalls {
		if fw.IsExterior() {
			if err := e.resolveAzimuth(fw.ID, &fw.Azimuth, &fw.Orientation, e.defaultAzimuth()); err != nil {
				return err
			}
		}
		rs := rules{
			constant("type", &fw.Type, hpxml.FoundationWallSolidConcrete),
			constant("thickness", &fw.Thickness, foundationWallThick),
			when(func() bool { return fw.Length > 0 && fw.Height > 0 },
				computed("area", &fw.Area, func() float64 { return fw.Length * fw.Height })),
			constant("interior_insulation_distance_to_top", &fw.InteriorInsulationTop, 0.0),
			constant("interior_insulation_distance_to_bottom", &fw.InteriorInsulationBot, fw.Height),
			constant("exterior_insulation_distance_to_top", &fw.ExteriorInsulationTop, 0.0),
			constant("exterior_insulation_distance_to_bottom", &fw.ExteriorInsulationBot, fw.Height),
		}
		if err := append(rs, finishRules(&fw.Finish, fw.InteriorAdjacentTo)...).apply(fw.ID); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) applyFloors() error {
	for _, f := range e.b.Enclosure.Floors {
		ceiling := f.IsCeiling()
		kind := hpxml.FloorIsFloor
		if ceiling {
			kind = hpxml.FloorIsCeiling
		}
		finish := hpxml.FinishNone
		if ceiling {
			finish = calc.InteriorFinishType(f.InteriorAdjacentTo)
		}
		err := rules{
			constant("floor_or_ceiling", &f.FloorOrCeiling, kind),
			constant("interior_finish_type", &f.Finish.Type, finish),
			when(func() bool { return f.Finish.Type.Val() != hpxml.FinishNone },
				computed("interior_finish_thickness", &f.Finish.Thickness, func() float64 {
					return calc.InteriorFinishThickness(f.Finish.Type.Val())
				})),
		}.apply(f.ID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) applySlabs() error {
	for _, s := range e.b.Enclosure.Slabs {
		carpetR, carpetFrac := calc.SlabCarpet(s.InteriorAdjacentTo)
		onGrade := s.InteriorAdjacentTo == hpxml.LocationConditionedSpace || s.InteriorAdjacentTo == hpxml.LocationGarage
		err := rules{
			constant("thickness", &s.Thickness, calc.SlabThickness(s.InteriorAdjacentTo)),
			when(func() bool { return onGrade }, constant("depth_below_grade", &s.DepthBelowGrade, 0.0)),
			constant("carpet_r_value", &s.CarpetR, carpetR),
			constant("carpet_fraction", &s.CarpetFraction, carpetFrac),
		}.apply(s.ID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) wallAzimuth(id string) (int, bool) {
	for _, w := range e.b.Enclosure.Walls {
		if w.ID == id && w.Azimuth.IsSet() {
			return w.Azimuth.Val(), true
		}
	}
	for _, w := range e.b.Enclosure.FoundationWalls {
		if w.ID == id && w.Azimuth.IsSet() {
			return w.Azimuth.Val(), true
		}
	}
	return 0, false
}

func (e *engine) roofAzimuth(id string) (int, bool) {
	for _, r := range e.b.Enclosure.Roofs {
		if r.ID == id && r.Azimuth.IsSet() {
			return r.Azimuth.Val(), true
		}
	}
	return 0, false
}

func (e *engine) applyDoors() error {
	for _, d := range e.b.Enclosure.Doors {
		fallback, ok := e.wallAzimuth(d.AttachedToWall)
		if !ok {
			fallback = e.defaultAzimuth()
		}
		if err := e.resolveAzimuth(d.ID, &d.Azimuth, &d.Orientation, fallback); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) applyPartitionWallMass() error {
	m := &e.b.Enclosure.PartitionWallMass
	return rules{
		constant("area_fraction", &m.AreaFraction, partitionAreaFrac),
		constant("interior_finish_type", &m.Finish.Type, hpxml.FinishGypsumBoard),
		when(func() bool { return m.Finish.Type.Val() != hpxml.FinishNone },
			constant("interior_finish_thickness", &m.Finish.Thickness, partitionFinishThick)),
	}.apply("PartitionWallMass")
}

func (e *engine) applyFurnitureMass() error {
	m := &e.b.Enclosure.FurnitureMass
	return rules{
		constant("area_fraction", &m.AreaFraction, furnitureAreaFrac),
		constant("type", &m.Type, hpxml.FurnitureLightWeight),
	}.apply("FurnitureMass")
}
