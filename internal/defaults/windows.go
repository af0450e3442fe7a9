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

const fractionOperable = 0.67

// fenestrationRules fill the construction, performance and shading of a
// window or skylight.
func (e *engine) fenestrationRules(f *hpxml.Fenestration, skylight bool) rules {
	needsLookup := !f.UFactor.IsSet() || !f.SHGC.IsSet()
	rs := rules{
		when(func() bool { return needsLookup && f.FrameType.IsMetal() },
			field("thermal_break", &f.ThermalBreak, func() (bool, bool, error) {
				v, ok := calc.DefaultThermalBreak(f.GlassLayers)
				return v, ok, nil
			})),
		when(func() bool { return needsLookup },
			constant("glass_type", &f.GlassType, hpxml.GlassClear)),
		when(func() bool { return needsLookup },
			field("gas_fill", &f.GasFill, func() (hpxml.GasFill, bool, error) {
				g, ok := calc.DefaultGasFill(f.GlassLayers)
				return g, ok, nil
			})),
		when(func() bool { return needsLookup }, step("ufactor_shgc", func() error {
			k, err := calc.NewFenestrationKey(f)
			if err != nil {
				return configErrorf(f.ID, "glass_layers", "%v", err)
			}
			u, shgc, err := calc.WindowUFactorSHGC(k, skylight)
			if err != nil {
				return configErrorf(f.ID, "ufactor", "no default for this construction: %v", err)
			}
			if f.UFactor.DefaultIfUnset(u) {
				logDefault(f.ID, "ufactor", u)
			}
			if f.SHGC.DefaultIfUnset(shgc) {
				logDefault(f.ID, "shgc", shgc)
			}
			return nil
		})),
	}
	rs = append(rs, interiorShadingRules(f, skylight)...)
	rs = append(rs, exteriorShadingRules(f)...)
	if f.InsectScreenPresent {
		rs = append(rs, insectScreenRules(f)...)
	}
	return rs
}

func interiorShadingRules(f *hpxml.Fenestration, skylight bool) rules {
	t, ok := f.InteriorShadingType.Get()
	if !ok {
		summer, winter := calc.InteriorShadingSummer, calc.InteriorShadingWinter
		if skylight {
			summer, winter = 1.0, 1.0
		}
		return rules{
			constant("interior_shading_factor_summer", &f.InteriorFactorSummer, summer),
			constant("interior_shading_factor_winter", &f.InteriorFactorWinter, winter),
		}
	}
	season := func(summer bool, cov *hpxml.Opt[float64], pos *hpxml.Opt[hpxml.BlindsPosition], factor *hpxml.Opt[float64], suffix string) rules {
		return rules{
			constant("interior_shading_coverage_"+suffix, cov, calc.DefaultInteriorCoverage(t)),
			when(func() bool { return calc.IsBlinds(t) },
				constant("interior_blinds_"+suffix+"_closed_or_open", pos, calc.DefaultBlindsPosition(summer))),
			fallible("interior_shading_factor_"+suffix, factor, func() (float64, error) {
				return calc.InteriorShadingFactor(t, pos.Val(), f.SHGC.Val(), cov.Val(), summer)
			}),
		}
	}
	return append(season(true, &f.InteriorCoverageSummer, &f.BlindsSummer, &f.InteriorFactorSummer, "summer"),
		season(false, &f.InteriorCoverageWinter, &f.BlindsWinter, &f.InteriorFactorWinter, "winter")...)
}

func exteriorShadingRules(f *hpxml.Fenestration) rules {
	t, ok := f.ExteriorShadingType.Get()
	if !ok {
		return rules{
			constant("exterior_shading_factor_summer", &f.ExteriorFactorSummer, 1.0),
			constant("exterior_shading_factor_winter", &f.ExteriorFactorWinter, 1.0),
		}
	}
	season := func(summer bool, cov, factor *hpxml.Opt[float64], suffix string) rules {
		return rules{
			constant("exterior_shading_coverage_"+suffix, cov, 1.0),
			fallible("exterior_shading_factor_"+suffix, factor, func() (float64, error) {
				v, err := calc.ExteriorShadingFactor(t, summer)
				if err != nil {
					return 0, err
				}
				return calc.Round(calc.ApplyCoverage(v, cov.Val()), 4), nil
			}),
		}
	}
	return append(season(true, &f.ExteriorCoverageSummer, &f.ExteriorFactorSummer, "summer"),
		season(false, &f.ExteriorCoverageWinter, &f.ExteriorFactorWinter, "winter")...)
}

func insectScreenRules(f *hpxml.Fenestration) rules {
	factor := func(cov *hpxml.Opt[float64]) func() float64 {
		return func() float64 {
			v := calc.InsectScreenFactor(f.InsectScreenLocation.Val(), f.SHGC.Val())
			return calc.Round(calc.ApplyCoverage(v, cov.Val()), 4)
		}
	}
	return rules{
		constant("insect_screen_location", &f.InsectScreenLocation, hpxml.InsectScreenExterior),
		constant("insect_screen_coverage_summer", &f.InsectCoverageSummer, 1.0),
		constant("insect_screen_coverage_winter", &f.InsectCoverageWinter, 1.0),
		computed("insect_screen_factor_summer", &f.InsectFactorSummer, factor(&f.InsectCoverageSummer)),
		computed("insect_screen_factor_winter", &f.InsectFactorWinter, factor(&f.InsectCoverageWinter)),
	}
}

func (e *engine) applyWindows() error {
	if err := e.requirePasses(passWalls, passFoundationWalls); err != nil {
		return err
	}
	for _, w := range e.b.Enclosure.Windows {
		fallback, ok := e.wallAzimuth(w.AttachedToWall)
		if !ok {
			fallback = e.defaultAzimuth()
		}
		if err := e.resolveAzimuth(w.ID, &w.Azimuth, &w.Orientation, fallback); err != nil {
			return err
		}
		rs := append(e.fenestrationRules(&w.Fenestration, false),
			constant("fraction_operable", &w.FractionOperable, fractionOperable))
		if err := rs.apply(w.ID); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) applySkylights() error {
	if err := e.requirePasses(passRoofs); err != nil {
		return err
	}
	for _, s := range e.b.Enclosure.Skylights {
		fallback, ok := e.roofAzimuth(s.AttachedToRoof)
		if !ok {
			fallback = e.defaultAzimuth()
		}
		if err := e.resolveAzimuth(s.ID, &s.Azimuth, &s.Orientation, fallback); err != nil {
			return err
		}
		if err := e.fenestrationRules(&s.Fenestration, true).apply(s.ID); err != nil {
			return err
		}
	}
	return nil
}
