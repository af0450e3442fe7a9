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

type glassClass int

const (
	glassClassClear glassClass = iota
	glassClassTinted
	glassClassLowEHighGain
	glassClassLowELowGain
)

type gasClass int

const (
	gasClassAir gasClass = iota
	gasClassArgon
)

// FenestrationKey identifies one row of the U-factor/SHGC tables.
type FenestrationKey struct {
	MetalFrame   bool
	ThermalBreak bool
	Panes        int
	Glass        glassClass
	Gas          gasClass
}

type uShgc struct{ u, shgc float64 }

// Rows keyed by the window construction; the second value is the skylight.
var fenestrationTable = map[FenestrationKey][2]uShgc{
	{true, false, 1, glassClassClear, gasClassAir}:           {{1.27, 0.75}, {1.98, 0.75}},
	{false, false, 1, glassClassClear, gasClassAir}:          {{0.89, 0.64}, {1.47, 0.64}},
	{true, false, 1, glassClassTinted, gasClassAir}:          {{1.27, 0.64}, {1.98, 0.64}},
	{false, false, 1, glassClassTinted, gasClassAir}:         {{0.89, 0.54}, {1.47, 0.54}},
	{true, false, 2, glassClassClear, gasClassAir}:           {{0.81, 0.67}, {1.30, 0.67}},
	{true, true, 2, glassClassClear, gasClassAir}:            {{0.60, 0.67}, {1.10, 0.67}},
	{false, false, 2, glassClassClear, gasClassAir}:          {{0.51, 0.56}, {0.84, 0.56}},
	{true, false, 2, glassClassTinted, gasClassAir}:          {{0.81, 0.55}, {1.30, 0.55}},
	{true, true, 2, glassClassTinted, gasClassAir}:           {{0.60, 0.55}, {1.10, 0.55}},
	{false, false, 2, glassClassTinted, gasClassAir}:         {{0.51, 0.46}, {0.84, 0.46}},
	{false, false, 2, glassClassLowEHighGain, gasClassAir}:   {{0.42, 0.52}, {0.74, 0.52}},
	{true, true, 2, glassClassLowEHighGain, gasClassArgon}:   {{0.47, 0.62}, {0.95, 0.62}},
	{false, false, 2, glassClassLowEHighGain, gasClassArgon}: {{0.39, 0.52}, {0.68, 0.52}},
	{true, false, 2, glassClassLowELowGain, gasClassAir}:     {{0.67, 0.37}, {1.17, 0.37}},
	{true, true, 2, glassClassLowELowGain, gasClassAir}:      {{0.47, 0.37}, {0.98, 0.37}},
	{false, false, 2, glassClassLowELowGain, gasClassAir}:    {{0.39, 0.31}, {0.71, 0.31}},
	{false, false, 2, glassClassLowELowGain, gasClassArgon}:  {{0.36, 0.31}, {0.65, 0.31}},
	{false, false, 3, glassClassLowELowGain, gasClassArgon}:  {{0.27, 0.31}, {0.47, 0.31}},
}

func classifyGlass(t hpxml.GlassType) glassClass {
	switch t {
	case hpxml.GlassTinted, hpxml.GlassTintedReflective, hpxml.GlassReflective:
		return glassClassTinted
	case hpxml.GlassLowE, hpxml.GlassLowEHighGain:
		return glassClassLowEHighGain
	case hpxml.GlassLowELowGain:
		return glassClassLowELowGain
	}
	return glassClassClear
}

func classifyGas(g hpxml.GasFill) gasClass {
	if g == hpxml.GasAir || g == "" {
		return gasClassAir
	}
	return gasClassArgon
}

// NewFenestrationKey builds the table key of a window or skylight. Single
// pane windows have no gas and non-metal frames have no thermal break.
func NewFenestrationKey(f *hpxml.Fenestration) (FenestrationKey, error) {
	k := FenestrationKey{MetalFrame: f.FrameType.IsMetal()}
	switch f.GlassLayers {
	case hpxml.GlassSinglePane:
		k.Panes = 1
	case hpxml.GlassDoublePane:
		k.Panes = 2
	case hpxml.GlassTriplePane:
		k.Panes = 3
	default:
		return k, errors.Wrapf(ErrNoEntry, "glass layers %q", f.GlassLayers)
	}
	if k.MetalFrame {
		k.ThermalBreak = f.ThermalBreak.Val()
	}
	k.Glass = classifyGlass(f.GlassType.Or(hpxml.GlassClear))
	if k.Panes > 1 {
		k.Gas = classifyGas(f.GasFill.Or(hpxml.GasAir))
	}
	return k, nil
}

// WindowUFactorSHGC looks up the U-factor and SHGC of a window
// (skylight=false) or skylight. A missing combination is an error.
func WindowUFactorSHGC(k FenestrationKey, skylight bool) (u, shgc float64, err error) {
	row, ok := fenestrationTable[k]
	if !ok {
		return 0, 0, errors.Wrapf(ErrNoEntry, "fenestration %+v", k)
	}
	v := row[0]
	if skylight {
		v = row[1]
	}
	return v.u, v.shgc, nil
}

// DefaultThermalBreak applies to metal frames only: double pane have a
// break, single pane do not. Other layer counts have no default.
func DefaultThermalBreak(layers hpxml.GlassLayers) (bool, bool) {
	switch layers {
	case hpxml.GlassSinglePane:
		return false, true
	case hpxml.GlassDoublePane:
		return true, true
	}
	return false, false
}

// DefaultGasFill is air for double pane and argon for triple pane.
func DefaultGasFill(layers hpxml.GlassLayers) (hpxml.GasFill, bool) {
	switch layers {
	case hpxml.GlassDoublePane:
		return hpxml.GasAir, true
	case hpxml.GlassTriplePane:
		return hpxml.GasArgon, true
	}
	return "", false
}
