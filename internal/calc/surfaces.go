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

var colorOrder = []hpxml.Color{
	hpxml.ColorDark,
	hpxml.ColorMediumDark,
	hpxml.ColorMedium,
	hpxml.ColorLight,
	hpxml.ColorReflective,
}

// solar absorptance by color, one map per material family
var (
	absShingles  = map[hpxml.Color]float64{hpxml.ColorDark: 0.92, hpxml.ColorMediumDark: 0.89, hpxml.ColorMedium: 0.85, hpxml.ColorLight: 0.75, hpxml.ColorReflective: 0.50}
	absTileMetal = map[hpxml.Color]float64{hpxml.ColorDark: 0.90, hpxml.ColorMediumDark: 0.83, hpxml.ColorMedium: 0.75, hpxml.ColorLight: 0.60, hpxml.ColorReflective: 0.30}
	absConcrete  = map[hpxml.Color]float64{hpxml.ColorDark: 0.90, hpxml.ColorMediumDark: 0.83, hpxml.ColorMedium: 0.75, hpxml.ColorLight: 0.65, hpxml.ColorReflective: 0.50}
	absCoolRoof  = map[hpxml.Color]float64{hpxml.ColorDark: 0.30, hpxml.ColorMediumDark: 0.30, hpxml.ColorMedium: 0.30, hpxml.ColorLight: 0.30, hpxml.ColorReflective: 0.30}
	absWall      = map[hpxml.Color]float64{hpxml.ColorDark: 0.95, hpxml.ColorMediumDark: 0.85, hpxml.ColorMedium: 0.70, hpxml.ColorLight: 0.50, hpxml.ColorReflective: 0.30}
)

func roofAbsorptances(t hpxml.RoofType) (map[hpxml.Color]float64, error) {
	switch t {
	case hpxml.RoofAsphaltShingles, hpxml.RoofWoodShingles, hpxml.RoofShingles, hpxml.RoofEPS:
		return absShingles, nil
	case hpxml.RoofSlateOrTile, hpxml.RoofMetal, hpxml.RoofPlasticRubber:
		return absTileMetal, nil
	case hpxml.RoofConcrete:
		return absConcrete, nil
	case hpxml.RoofCool:
		return absCoolRoof, nil
	}
	return nil, errors.Wrapf(ErrNoEntry, "roof type %q", t)
}

func RoofAbsorptance(c hpxml.Color, t hpxml.RoofType) (float64, error) {
	m, err := roofAbsorptances(t)
	if err != nil {
		return 0, err
	}
	v, ok := m[c]
	if !ok {
		return 0, errors.Wrapf(ErrNoEntry, "roof color %q", c)
	}
	return v, nil
}

// RoofColor returns the color whose absorptance for the roof type is
// nearest to abs.
func RoofColor(abs float64, t hpxml.RoofType) (hpxml.Color, error) {
	m, err := roofAbsorptances(t)
	if err != nil {
		return "", err
	}
	return nearestColor(m, abs), nil
}

func WallAbsorptance(c hpxml.Color) (float64, error) {
	v, ok := absWall[c]
	if !ok {
		return 0, errors.Wrapf(ErrNoEntry, "wall color %q", c)
	}
	return v, nil
}

func WallColor(abs float64) hpxml.Color {
	return nearestColor(absWall, abs)
}

func nearestColor(m map[hpxml.Color]float64, abs float64) hpxml.Color {
	best, diff := colorOrder[0], math.Inf(1)
	for _, c := range colorOrder {
		if d := math.Abs(m[c] - abs); d < diff {
			best, diff = c, d
		}
	}
	return best
}

// ResolveColor fills color and absorptance of a wall-like surface. When
// both are unset the color is medium.
func ResolveColor(c *hpxml.Opt[hpxml.Color], abs *hpxml.Opt[float64],
	toAbs func(hpxml.Color) (float64, error), toColor func(float64) (hpxml.Color, error)) error {
	if !c.IsSet() && !abs.IsSet() {
		c.Default(hpxml.ColorMedium)
	}
	if !c.IsSet() {
		v, err := toColor(abs.Val())
		if err != nil {
			return err
		}
		c.Default(v)
	}
	if !abs.IsSet() {
		v, err := toAbs(c.Val())
		if err != nil {
			return err
		}
		abs.Default(v)
	}
	return nil
}

// InteriorFinishType is gypsum board on surfaces that face finished space.
func InteriorFinishType(interior hpxml.Location) hpxml.InteriorFinish {
	if interior.IsFinished() {
		return hpxml.FinishGypsumBoard
	}
	return hpxml.FinishNone
}

// InteriorFinishThickness is in inches.
func InteriorFinishThickness(f hpxml.InteriorFinish) float64 {
	if f == hpxml.FinishNone {
		return 0
	}
	return 0.5
}

// SlabThickness is in inches. Crawlspace floors are bare earth.
func SlabThickness(interior hpxml.Location) float64 {
	switch interior {
	case hpxml.LocationCrawlspaceVented, hpxml.LocationCrawlspaceUnvented:
		return 0
	}
	return 4
}

// SlabCarpet returns the carpet R-value and fraction of a slab.
func SlabCarpet(interior hpxml.Location) (r, frac float64) {
	if interior.IsConditioned() {
		return 2.0, 0.8
	}
	return 0, 0
}
