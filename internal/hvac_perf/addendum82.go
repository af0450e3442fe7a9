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

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/interp"

	"github.com/antst/hpxdefaults/internal/hpxml"
)

// Standard rating outdoor temperatures, deg F.
const (
	CoolRatedODB  = 95.0
	CoolSecondODB = 82.0
	HeatRatedODB  = 47.0
	HeatSecondODB = 17.0
	HeatLowODB    = 5.0

	btuhPerWatt = 3.412141633
)

// Point is one (outdoor temperature, speed) cell of a performance map.
// Capacity is net Btu/h, COP is net.
type Point struct {
	ODB      float64
	Speed    hpxml.CapacityDescription
	Capacity float64
	COP      float64
}

// Power returns the input power of p in Btu/h.
func (p Point) Power() float64 {
	return p.Capacity / p.COP
}

// bilinear is a table z[i][j] over the grid xs × ys.
type bilinear struct {
	xs []float64
	ys []float64
	z  [][]float64
}

func (b bilinear) at(x, y float64) (float64, error) {
	col := make([]float64, len(b.xs))
	for i, row := range b.z {
		var pl interp.PiecewiseLinear
		if err := pl.Fit(b.ys, row); err != nil {
			return 0, errors.Wrap(err, "fit table row")
		}
		col[i] = pl.Predict(y)
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(b.xs, col); err != nil {
		return 0, errors.Wrap(err, "fit table column")
	}
	return pl.Predict(x), nil
}

// EER2/SEER2 ratio by (SEER2, capacity ratio 82F/95F).
var coolFullTable = bilinear{
	xs: []float64{13.4, 16.0, 20.0, 24.0},
	ys: []float64{1.04, 1.08, 1.12},
	z: [][]float64{
		{0.84, 0.82, 0.80},
		{0.78, 0.76, 0.74},
		{0.66, 0.64, 0.62},
		{0.58, 0.56, 0.54},
	},
}

// COP47/(HSPF2/3.412) ratio by (HSPF2, capacity ratio 17F/47F).
var heatFullTable = bilinear{
	xs: []float64{6.5, 7.5, 8.5, 10.0},
	ys: []float64{0.55, 0.65, 0.75, 0.85},
	z: [][]float64{
		{1.66, 1.58, 1.51, 1.45},
		{1.62, 1.54, 1.47, 1.41},
		{1.58, 1.50, 1.43, 1.37},
		{1.52, 1.44, 1.37, 1.31},
	},
}

// speedRatios are capacity (q) and EIR (eirr) ratios of one speed relative
// to the full speed at the same outdoor temperature.
type speedRatios struct {
	q, eirr float64
}

type coolingRatios struct {
	qm82full   float64
	eirr82full float64
	speeds     map[hpxml.CapacityDescription]speedRatios
}

type heatingRatios struct {
	qm17a      float64
	eirr17full float64
	eirr5full  float64
	speeds     map[hpxml.CapacityDescription]speedRatios
}

var nominal = speedRatios{1.0, 1.0}

func coolingChain(ct hpxml.CompressorType, ductless bool) coolingRatios {
	switch ct {
	case hpxml.CompressorTwoStage:
		return coolingRatios{1.070, 0.80, map[hpxml.CapacityDescription]speedRatios{
			hpxml.CapacityMinimum: {0.72, 0.91},
			hpxml.CapacityNominal: nominal,
		}}
	case hpxml.CompressorVariableSpeed:
		qmin := 0.40
		if ductless {
			qmin = 0.33
		}
		return coolingRatios{1.060, 0.78, map[hpxml.CapacityDescription]speedRatios{
			hpxml.CapacityMinimum: {qmin, 0.70},
			hpxml.CapacityNominal: nominal,
			hpxml.CapacityMaximum: {1.05, 1.06},
		}}
	}
	return coolingRatios{1.075, 0.80, map[hpxml.CapacityDescription]speedRatios{hpxml.CapacityNominal: nominal}}
}

func heatingChain(ct hpxml.CompressorType, ductless bool) heatingRatios {
	switch ct {
	case hpxml.CompressorTwoStage:
		return heatingRatios{0.32, 1.36, 1.18, map[hpxml.CapacityDescription]speedRatios{
			hpxml.CapacityMinimum: {0.72, 0.87},
			hpxml.CapacityNominal: nominal,
		}}
	case hpxml.CompressorVariableSpeed:
		qa, qmin := 0.39, 0.35
		if ductless {
			qa, qmin = 0.41, 0.30
		}
		return heatingRatios{qa, 1.30, 1.18, map[hpxml.CapacityDescription]speedRatios{
			hpxml.CapacityMinimum: {qmin, 0.75},
			hpxml.CapacityNominal: nominal,
			hpxml.CapacityMaximum: {1.10, 1.07},
		}}
	}
	return heatingRatios{0.30, 1.38, 1.18, map[hpxml.CapacityDescription]speedRatios{hpxml.CapacityNominal: nominal}}
}

// Qm17Full estimates the ratio of full speed heating capacity at 17F to
// the rated 47F capacity from the nameplate HSPF2.
func Qm17Full(hspf2 float64, ct hpxml.CompressorType, ductless bool) float64 {
	q := heatingChain(ct, ductless).qm17a + 0.04*hspf2
	return math.Max(0.4, math.Min(q, 1.1))
}

// Qm5Full extends the 47F to 17F capacity line down to 5F.
func Qm5Full(qm17 float64) float64 {
	return qm17 - (1.0-qm17)*(HeatSecondODB-HeatLowODB)/(HeatRatedODB-HeatSecondODB)
}

// CoolCapacityRatios returns speed capacity ratios, min to max.
func CoolCapacityRatios(ct hpxml.CompressorType, ductless bool) []float64 {
	ch := coolingChain(ct, ductless)
	var res []float64
	for _, s := range Speeds(ct) {
		res = append(res, ch.speeds[s].q)
	}
	return res
}

// HeatCapacityRatios is the heating counterpart of CoolCapacityRatios.
func HeatCapacityRatios(ct hpxml.CompressorType, ductless bool) []float64 {
	ch := heatingChain(ct, ductless)
	var res []float64
	for _, s := range Speeds(ct) {
		res = append(res, ch.speeds[s].q)
	}
	return res
}

// CoolingRating is the nameplate input of CoolingMap. EER2 is 0 when
// not rated.
type CoolingRating struct {
	Capacity   float64
	SEER2      float64
	EER2       float64
	Compressor hpxml.CompressorType
	Ductless   bool
}

// CoolingMap synthesizes the 82F/95F cooling map of every speed.
func CoolingMap(r CoolingRating) ([]Point, error) {
	if r.Capacity <= 0 {
		return nil, errors.New("cooling capacity must be positive")
	}
	ch := coolingChain(r.Compressor, r.Ductless)
	eer2 := r.EER2
	if eer2 <= 0 {
		if r.SEER2 <= 0 {
			return nil, errors.New("SEER2 or EER2 required")
		}
		f, err := coolFullTable.at(r.SEER2, ch.qm82full)
		if err != nil {
			return nil, err
		}
		eer2 = f * r.SEER2
	}
	cop95 := eer2 / btuhPerWatt
	cop82 := cop95 / ch.eirr82full

	var pts []Point
	for _, s := range Speeds(r.Compressor) {
		sr := ch.speeds[s]
		pts = append(pts,
			Point{ODB: CoolSecondODB, Speed: s, Capacity: math.Round(r.Capacity * ch.qm82full * sr.q), COP: roundCOP(cop82 / sr.eirr)},
			Point{ODB: CoolRatedODB, Speed: s, Capacity: math.Round(r.Capacity * sr.q), COP: roundCOP(cop95 / sr.eirr)},
		)
	}
	return pts, nil
}

// HeatingRating is the nameplate input of HeatingMap. Qm17 is the full
// speed 17F/47F capacity ratio, LockoutTemp the compressor cut-off.
type HeatingRating struct {
	Capacity    float64
	HSPF2       float64
	Qm17        float64
	Compressor  hpxml.CompressorType
	Ductless    bool
	LockoutTemp float64
}

// HeatingMap synthesizes the 47F/17F/5F heating map of every speed, plus
// a point at the compressor lockout temperature when it is below 5F.
func HeatingMap(r HeatingRating) ([]Point, error) {
	if r.Capacity <= 0 {
		return nil, errors.New("heating capacity must be positive")
	}
	if r.HSPF2 <= 0 {
		return nil, errors.New("HSPF2 required")
	}
	ch := heatingChain(r.Compressor, r.Ductless)
	qm17 := r.Qm17
	if qm17 <= 0 {
		qm17 = Qm17Full(r.HSPF2, r.Compressor, r.Ductless)
	}
	qm5 := Qm5Full(qm17)
	f, err := heatFullTable.at(r.HSPF2, qm17)
	if err != nil {
		return nil, err
	}
	cop47 := f * r.HSPF2 / btuhPerWatt
	cop17 := cop47 / ch.eirr17full
	cop5 := cop17 / ch.eirr5full

	var pts []Point
	for _, s := range Speeds(r.Compressor) {
		sr := ch.speeds[s]
		p47 := Point{ODB: HeatRatedODB, Speed: s, Capacity: math.Round(r.Capacity * sr.q), COP: roundCOP(cop47 / sr.eirr)}
		p17 := Point{ODB: HeatSecondODB, Speed: s, Capacity: math.Round(r.Capacity * qm17 * sr.q), COP: roundCOP(cop17 / sr.eirr)}
		p5 := Point{ODB: HeatLowODB, Speed: s, Capacity: math.Round(r.Capacity * qm5 * sr.q), COP: roundCOP(cop5 / sr.eirr)}
		pts = append(pts, p5, p17, p47)
		if r.LockoutTemp < HeatLowODB {
			lo, err := extrapolate(p5, p17, r.LockoutTemp)
			if err != nil {
				return nil, err
			}
			pts = append(pts, lo)
		}
	}
	return pts, nil
}

// extrapolate draws the capacity and power lines through a and b out to odb.
func extrapolate(a, b Point, odb float64) (Point, error) {
	if a.ODB == b.ODB {
		return Point{}, errors.Errorf("cannot extrapolate from a single temperature %.1f", a.ODB)
	}
	t := (odb - a.ODB) / (b.ODB - a.ODB)
	capacity := a.Capacity + t*(b.Capacity-a.Capacity)
	power := a.Power() + t*(b.Power()-a.Power())
	if capacity <= 0 || power <= 0 {
		return Point{}, errors.Errorf("non-positive performance at %.1f F", odb)
	}
	return Point{ODB: odb, Speed: a.Speed, Capacity: math.Round(capacity), COP: roundCOP(capacity / power)}, nil
}

func roundCOP(v float64) float64 {
	return math.Round(v*1e4) / 1e4
}
