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
	"github.com/pkg/errors"

	"github.com/antst/hpxdefaults/internal/hpxml"
)

// Interior shading factors used when no shading type is given.
const (
	InteriorShadingSummer = 0.70
	InteriorShadingWinter = 0.85
)

// shadingCoeffs is a shading factor model c1 - c2*SHGC.
type shadingCoeffs struct{ c1, c2 float64 }

func (c shadingCoeffs) factor(shgc float64) float64 {
	return c.c1 - c.c2*shgc
}

var curtainsShadesCoeffs = map[hpxml.InteriorShadingType]shadingCoeffs{
	hpxml.InteriorShadingLightCurtains:  {0.84, 0.42},
	hpxml.InteriorShadingMediumCurtains: {0.94, 0.37},
	hpxml.InteriorShadingDarkCurtains:   {0.98, 0.25},
	hpxml.InteriorShadingLightShades:    {0.82, 0.52},
	hpxml.InteriorShadingMediumShades:   {0.90, 0.41},
	hpxml.InteriorShadingDarkShades:     {0.98, 0.33},
	hpxml.InteriorShadingNone:           {1.0, 0.0},
}

var blindsCoeffs = map[hpxml.InteriorShadingType]map[hpxml.BlindsPosition]shadingCoeffs{
	hpxml.InteriorShadingLightBlinds: {
		hpxml.BlindsClosed:   {0.78, 0.47},
		hpxml.BlindsHalfOpen: {0.88, 0.38},
		hpxml.BlindsOpen:     {0.99, 0.05},
	},
	hpxml.InteriorShadingMediumBlinds: {
		hpxml.BlindsClosed:   {0.90, 0.41},
		hpxml.BlindsHalfOpen: {0.94, 0.30},
		hpxml.BlindsOpen:     {0.99, 0.05},
	},
	hpxml.InteriorShadingDarkBlinds: {
		hpxml.BlindsClosed:   {0.98, 0.25},
		hpxml.BlindsHalfOpen: {0.98, 0.20},
		hpxml.BlindsOpen:     {0.99, 0.05},
	},
}

// IsBlinds reports interior shading types that have an open/closed position.
func IsBlinds(t hpxml.InteriorShadingType) bool {
	_, ok := blindsCoeffs[t]
	return ok
}

// DefaultBlindsPosition is half open in summer and open in winter.
func DefaultBlindsPosition(summer bool) hpxml.BlindsPosition {
	if summer {
		return hpxml.BlindsHalfOpen
	}
	return hpxml.BlindsOpen
}

// DefaultInteriorCoverage is the fraction of the glazing area covered.
func DefaultInteriorCoverage(t hpxml.InteriorShadingType) float64 {
	if IsBlinds(t) || t == hpxml.InteriorShadingNone {
		return 1.0
	}
	return 0.5
}

// ApplyCoverage blends a shading factor with the unshaded factor 1.0.
func ApplyCoverage(factor, coverage float64) float64 {
	return coverage*factor + (1-coverage)*1.0
}

// InteriorShadingFactor returns the coverage weighted interior shading
// factor. Other shading types fall back to the fixed seasonal factors.
func InteriorShadingFactor(t hpxml.InteriorShadingType, pos hpxml.BlindsPosition, shgc, coverage float64, summer bool) (float64, error) {
	if t == hpxml.InteriorShadingOther {
		if summer {
			return InteriorShadingSummer, nil
		}
		return InteriorShadingWinter, nil
	}
	if c, ok := curtainsShadesCoeffs[t]; ok {
		return Round(ApplyCoverage(c.factor(shgc), coverage), 4), nil
	}
	byPos, ok := blindsCoeffs[t]
	if !ok {
		return 0, errors.Wrapf(ErrNoEntry, "interior shading type %q", t)
	}
	c, ok := byPos[pos]
	if !ok {
		return 0, errors.Wrapf(ErrNoEntry, "blinds position %q", pos)
	}
	return Round(ApplyCoverage(c.factor(shgc), coverage), 4), nil
}

// ExteriorShadingFactor returns the seasonal exterior shading factor before
// coverage is applied. Deciduous trees shade only in summer.
func ExteriorShadingFactor(t hpxml.ExteriorShadingType, summer bool) (float64, error) {
	switch t {
	case hpxml.ExteriorShadingNone, hpxml.ExteriorShadingOther:
		return 1.0, nil
	case hpxml.ExteriorShadingSolarScreens:
		return 0.43, nil
	case hpxml.ExteriorShadingSolarFilm:
		return 0.76, nil
	case hpxml.ExteriorShadingDeciduousTree:
		if summer {
			return 0.5, nil
		}
		return 1.0, nil
	case hpxml.ExteriorShadingEvergreenTree, hpxml.ExteriorShadingBuilding:
		return 0.5, nil
	}
	return 0, errors.Wrapf(ErrNoEntry, "exterior shading type %q", t)
}

// InsectScreenFactor depends on which side of the glazing the screen sits.
func InsectScreenFactor(loc hpxml.InsectScreenLocation, shgc float64) float64 {
	if loc == hpxml.InsectScreenInterior {
		return Round(0.99-0.1*shgc, 4)
	}
	return 0.64
}
