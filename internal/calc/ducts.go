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

// Duct physics inputs. Diameters are the assumed average round duct size.
const (
	UninsulatedDuctR = 1.7

	ductFilmInterior = 0.25
	ductFilmExterior = 0.68
	ductRPerInch     = 3.5
	supplyDiameterIn = 6.0
	returnDiameterIn = 14.0
)

// DuctPrimaryLocations is the search order of the primary duct location.
// Ducts go to conditioned space when the building has none of these.
var DuctPrimaryLocations = []hpxml.Location{
	hpxml.LocationBasementConditioned,
	hpxml.LocationBasementUnconditioned,
	hpxml.LocationCrawlspaceConditioned,
	hpxml.LocationCrawlspaceVented,
	hpxml.LocationCrawlspaceUnvented,
	hpxml.LocationAtticVented,
	hpxml.LocationAtticUnvented,
	hpxml.LocationGarage,
}

// DuctLocations returns the primary and secondary duct locations given the
// locations present in the building. ok is false when no primary exists.
func DuctLocations(has func(hpxml.Location) bool) (primary, secondary hpxml.Location, ok bool) {
	for _, l := range DuctPrimaryLocations {
		if has(l) {
			return l, hpxml.LocationConditionedSpace, true
		}
	}
	return "", hpxml.LocationConditionedSpace, false
}

// DuctSurfaceArea returns primary (outside conditioned space) and secondary
// duct areas of one side for the conditioned floor area served.
func DuctSurfaceArea(side hpxml.DuctType, ncflAG, cfaServed float64, nReturns int) (primary, secondary float64) {
	fOut := 0.75
	if ncflAG <= 1 {
		fOut = 1.0
	}
	b := 0.27
	if side == hpxml.DuctReturn {
		b = 0.25
		if nReturns < 6 {
			b = 0.05 * float64(nReturns)
		}
	}
	return b * cfaServed * fOut, b * cfaServed * (1.0 - fOut)
}

// ReturnRegisters is one return register per conditioned floor.
func ReturnRegisters(ncfl float64) int {
	return int(math.Ceil(ncfl))
}

// DuctFractionRectangular defaults by shape, then by side.
func DuctFractionRectangular(side hpxml.DuctType, shape hpxml.DuctShape) float64 {
	switch shape {
	case hpxml.DuctShapeRound, hpxml.DuctShapeOval:
		return 0.0
	case hpxml.DuctShapeRectangular:
		return 1.0
	}
	if side == hpxml.DuctSupply {
		return 0.25
	}
	return 1.0
}

type linearFit struct{ a, b float64 }

var buriedDuctFits = map[hpxml.DuctBuriedLevel]map[hpxml.DuctType]linearFit{
	hpxml.DuctBuriedPartial: {hpxml.DuctSupply: {4.28, 0.65}, hpxml.DuctReturn: {5.60, 0.70}},
	hpxml.DuctBuriedFull:    {hpxml.DuctSupply: {8.55, 0.70}, hpxml.DuctReturn: {10.90, 0.75}},
	hpxml.DuctBuriedDeep:    {hpxml.DuctSupply: {14.10, 0.75}, hpxml.DuctReturn: {17.30, 0.80}},
}

func roundDuctR(rNominal, diameter float64) float64 {
	r1 := diameter / 2.0
	r2 := r1 + rNominal/ductRPerInch
	k := 1.0 / ductRPerInch
	return ductFilmInterior + r1*math.Log(r2/r1)/k + ductFilmExterior*r1/r2
}

func rectDuctR(rNominal float64) float64 {
	return ductFilmInterior + rNominal + ductFilmExterior
}

// DuctEffectiveR returns the effective R-value of a duct with nominal
// insulation rNominal. Unburied ducts blend the round and rectangular
// conductances by fRect; buried ducts use a linear fit per burial level.
func DuctEffectiveR(rNominal float64, side hpxml.DuctType, buried hpxml.DuctBuriedLevel, fRect float64) (float64, error) {
	if buried == "" || buried == hpxml.DuctBuriedNone {
		if rNominal <= 0 {
			return UninsulatedDuctR, nil
		}
		d := supplyDiameterIn
		if side == hpxml.DuctReturn {
			d = returnDiameterIn
		}
		u := fRect/rectDuctR(rNominal) + (1.0-fRect)/roundDuctR(rNominal, d)
		return Round(1.0/u, 2), nil
	}
	fits, ok := buriedDuctFits[buried]
	if !ok {
		return 0, errors.Wrapf(ErrNoEntry, "duct buried level %q", buried)
	}
	f, ok := fits[side]
	if !ok {
		return 0, errors.Wrapf(ErrNoEntry, "duct side %q", side)
	}
	return Round(f.a+f.b*rNominal, 2), nil
}
