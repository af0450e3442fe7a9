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

// Package calc holds the scalar default calculators. Every function is pure:
// it reads its arguments and returns a value, it never touches a Building.
package calc

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/antst/hpxdefaults/internal/hpxml"
)

// ErrNoEntry is returned when a lookup keyed by enumerated inputs has no row.
var ErrNoEntry = errors.New("no table entry")

var orientationAzimuths = map[hpxml.Orientation]int{
	hpxml.OrientationNorth:     0,
	hpxml.OrientationNortheast: 45,
	hpxml.OrientationEast:      90,
	hpxml.OrientationSoutheast: 135,
	hpxml.OrientationSouth:     180,
	hpxml.OrientationSouthwest: 225,
	hpxml.OrientationWest:      270,
	hpxml.OrientationNorthwest: 315,
}

func AzimuthFromOrientation(o hpxml.Orientation) (int, error) {
	az, ok := orientationAzimuths[o]
	if !ok {
		return 0, errors.Wrapf(ErrNoEntry, "orientation %q", o)
	}
	return az, nil
}

// OrientationFromAzimuth bins an azimuth into one of eight 45 degree sectors.
func OrientationFromAzimuth(az int) hpxml.Orientation {
	a := float64(SanitizeAzimuth(az))
	switch {
	case a >= 337.5 || a < 22.5:
		return hpxml.OrientationNorth
	case a < 67.5:
		return hpxml.OrientationNortheast
	case a < 112.5:
		return hpxml.OrientationEast
	case a < 157.5:
		return hpxml.OrientationSoutheast
	case a < 202.5:
		return hpxml.OrientationSouth
	case a < 247.5:
		return hpxml.OrientationSouthwest
	case a < 292.5:
		return hpxml.OrientationWest
	}
	return hpxml.OrientationNorthwest
}

// SanitizeAzimuth folds any integer azimuth into [0, 360).
func SanitizeAzimuth(az int) int {
	az %= 360
	if az < 0 {
		az += 360
	}
	return az
}

// ResolveAzimuth fills whichever of azimuth and orientation is unset.
// When both are unset the azimuth falls back to fallback. It reports a
// mismatch when the user set both and they disagree; user values are kept.
func ResolveAzimuth(az *hpxml.Opt[int], o *hpxml.Opt[hpxml.Orientation], fallback int) (mismatch bool, err error) {
	switch {
	case az.IsSet() && o.IsSet():
		return OrientationFromAzimuth(az.Val()) != o.Val(), nil
	case o.IsSet():
		v, err := AzimuthFromOrientation(o.Val())
		if err != nil {
			return false, err
		}
		az.Default(v)
	case az.IsSet():
		o.Default(OrientationFromAzimuth(az.Val()))
	default:
		az.Default(SanitizeAzimuth(fallback))
		o.Default(OrientationFromAzimuth(az.Val()))
	}
	return false, nil
}

// DefaultAzimuths returns the primary azimuth (the one carrying the most
// surface area, 0 when nothing is oriented) and its three right-angle
// rotations, sorted.
func DefaultAzimuths(areaByAzimuth map[int]float64) []int {
	primary, best := 0, -1.0
	keys := make([]int, 0, len(areaByAzimuth))
	for k := range areaByAzimuth {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		if a := areaByAzimuth[k]; a > best {
			primary, best = k, a
		}
	}
	res := []int{
		SanitizeAzimuth(primary),
		SanitizeAzimuth(primary + 90),
		SanitizeAzimuth(primary + 180),
		SanitizeAzimuth(primary + 270),
	}
	sort.Ints(res)
	return res
}

// Round rounds v to n decimals.
func Round(v float64, n int) float64 {
	p := math.Pow(10, float64(n))
	return math.Round(v*p) / p
}
