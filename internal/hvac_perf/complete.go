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

package hvac_perf

import (
	"math"
	"sort"

	"github.com/pkg/errors"

	"github.com/antst/hpxdefaults/internal/hpxml"
)

// ErrIncompleteGrid is returned when a user map cannot be completed.
var ErrIncompleteGrid = errors.New("incomplete performance data")

// ResolveFractions turns capacity fractions of nominal into absolute
// capacities using the rated capacity of the mode.
func ResolveFractions(data []*hpxml.PerformanceDatum, ratedCapacity float64) {
	for _, d := range data {
		if d.Capacity.IsSet() {
			continue
		}
		if f, ok := d.CapacityFraction.Get(); ok {
			d.Capacity.Default(math.Round(f * ratedCapacity))
		}
	}
}

// CompleteGrid adds a nominal datum at every outdoor temperature that has
// other speeds but no nominal. The nominal values are placed between the
// target's min and max in the same proportion as at the nearest
// temperature that has all of them.
func CompleteGrid(data []*hpxml.PerformanceDatum, ct hpxml.CompressorType) ([]*hpxml.PerformanceDatum, error) {
	byODB := make(map[float64]map[hpxml.CapacityDescription]*hpxml.PerformanceDatum)
	for _, d := range data {
		if !d.Capacity.IsSet() || !d.Efficiency.IsSet() {
			return nil, errors.Wrapf(ErrIncompleteGrid, "%v datum at %.1f F lacks capacity or efficiency", d.CapacityDescription, d.OutdoorTemperature)
		}
		m, ok := byODB[d.OutdoorTemperature]
		if !ok {
			m = make(map[hpxml.CapacityDescription]*hpxml.PerformanceDatum)
			byODB[d.OutdoorTemperature] = m
		}
		m[d.CapacityDescription] = d
	}

	var complete []float64
	for odb, m := range byODB {
		if m[hpxml.CapacityNominal] != nil {
			complete = append(complete, odb)
		}
	}
	sort.Float64s(complete)

	odbs := make([]float64, 0, len(byODB))
	for odb := range byODB {
		odbs = append(odbs, odb)
	}
	sort.Float64s(odbs)

	for _, odb := range odbs {
		m := byODB[odb]
		if m[hpxml.CapacityNominal] != nil {
			continue
		}
		ref, ok := nearest(complete, odb)
		if !ok {
			return nil, errors.Wrapf(ErrIncompleteGrid, "no nominal datum at any temperature")
		}
		d, err := synthesizeNominal(m, byODB[ref], ct)
		if err != nil {
			return nil, errors.WithMessagef(err, "at %.1f F", odb)
		}
		d.OutdoorTemperature = odb
		data = append(data, d)
	}
	return data, nil
}

func nearest(sorted []float64, v float64) (float64, bool) {
	if len(sorted) == 0 {
		return 0, false
	}
	best := sorted[0]
	for _, s := range sorted[1:] {
		if math.Abs(s-v) < math.Abs(best-v) {
			best = s
		}
	}
	return best, true
}

func power(d *hpxml.PerformanceDatum) float64 {
	return d.Capacity.Val() / d.Efficiency.Val()
}

// synthesizeNominal builds the nominal datum of target from ref. Two stage
// equipment scales the minimum linearly. Variable speed interpolates between
// minimum and maximum for both capacity and power.
func synthesizeNominal(target, ref map[hpxml.CapacityDescription]*hpxml.PerformanceDatum, ct hpxml.CompressorType) (*hpxml.PerformanceDatum, error) {
	tMin, rMin := target[hpxml.CapacityMinimum], ref[hpxml.CapacityMinimum]
	rNom := ref[hpxml.CapacityNominal]
	if tMin == nil || rMin == nil {
		return nil, errors.Wrap(ErrIncompleteGrid, "minimum speed datum missing")
	}

	var capacity, pwr float64
	switch ct {
	case hpxml.CompressorTwoStage:
		capacity = tMin.Capacity.Val() * rNom.Capacity.Val() / rMin.Capacity.Val()
		pwr = power(tMin) * power(rNom) / power(rMin)
	case hpxml.CompressorVariableSpeed:
		tMax, rMax := target[hpxml.CapacityMaximum], ref[hpxml.CapacityMaximum]
		if tMax == nil || rMax == nil {
			return nil, errors.Wrap(ErrIncompleteGrid, "maximum speed datum missing")
		}
		fc := span(rNom.Capacity.Val(), rMin.Capacity.Val(), rMax.Capacity.Val())
		fp := span(power(rNom), power(rMin), power(rMax))
		capacity = tMin.Capacity.Val() + fc*(tMax.Capacity.Val()-tMin.Capacity.Val())
		pwr = power(tMin) + fp*(power(tMax)-power(tMin))
	default:
		return nil, errors.Wrapf(ErrIncompleteGrid, "%s equipment needs a nominal datum at every temperature", ct)
	}
	if !finite(capacity) || !finite(pwr) || capacity <= 0 || pwr <= 0 {
		return nil, errors.Wrap(ErrIncompleteGrid, "degenerate neighbor data")
	}
	return &hpxml.PerformanceDatum{
		CapacityDescription: hpxml.CapacityNominal,
		Capacity:            hpxml.Defaulted(math.Round(capacity)),
		Efficiency:          hpxml.Defaulted(roundCOP(capacity / pwr)),
	}, nil
}

// span is the position of v between lo and hi. Equal bounds put v at lo.
func span(v, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	return (v - lo) / (hi - lo)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// NominalAt returns the nominal capacity at odb, interpolating or
// extrapolating linearly between the closest nominal data.
func NominalAt(data []*hpxml.PerformanceDatum, odb float64) (float64, error) {
	var pts []Point
	for _, d := range data {
		if d.CapacityDescription != hpxml.CapacityNominal || !d.Capacity.IsSet() || !d.Efficiency.IsSet() {
			continue
		}
		if d.OutdoorTemperature == odb {
			return d.Capacity.Val(), nil
		}
		pts = append(pts, Point{ODB: d.OutdoorTemperature, Speed: d.CapacityDescription, Capacity: d.Capacity.Val(), COP: d.Efficiency.Val()})
	}
	if len(pts) < 2 {
		return 0, errors.Wrapf(ErrIncompleteGrid, "need two nominal data to reach %.1f F", odb)
	}
	sort.Slice(pts, func(i, j int) bool { return pts[i].ODB < pts[j].ODB })
	a, b := pts[0], pts[1]
	for i := 0; i+1 < len(pts); i++ {
		if odb >= pts[i].ODB {
			a, b = pts[i], pts[i+1]
		}
	}
	p, err := extrapolate(a, b, odb)
	if err != nil {
		return 0, err
	}
	return p.Capacity, nil
}

// ToData converts synthesized points to defaulted document data.
func ToData(pts []Point) []*hpxml.PerformanceDatum {
	res := make([]*hpxml.PerformanceDatum, 0, len(pts))
	for _, p := range pts {
		res = append(res, &hpxml.PerformanceDatum{
			OutdoorTemperature:  p.ODB,
			CapacityDescription: p.Speed,
			Capacity:            hpxml.Defaulted(p.Capacity),
			Efficiency:          hpxml.Defaulted(p.COP),
		})
	}
	sort.SliceStable(res, func(i, j int) bool { return res[i].OutdoorTemperature > res[j].OutdoorTemperature })
	return res
}
