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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antst/hpxdefaults/internal/hpxml"
)

func TestOrientationFromAzimuth(t *testing.T) {
	cases := map[int]hpxml.Orientation{
		0:   hpxml.OrientationNorth,
		22:  hpxml.OrientationNorth,
		23:  hpxml.OrientationNortheast,
		180: hpxml.OrientationSouth,
		-90: hpxml.OrientationWest,
		337: hpxml.OrientationNorthwest,
		338: hpxml.OrientationNorth,
		725: hpxml.OrientationNorth,
	}
	for az, want := range cases {
		assert.Equal(t, want, OrientationFromAzimuth(az), "azimuth %d", az)
	}
	assert.Equal(t, 5, SanitizeAzimuth(725))
	assert.Equal(t, 270, SanitizeAzimuth(-90))
}

func TestResolveAzimuth(t *testing.T) {
	az, o := hpxml.Opt[int]{}, hpxml.Some(hpxml.OrientationEast)
	mismatch, err := ResolveAzimuth(&az, &o, 0)
	require.NoError(t, err)
	assert.False(t, mismatch)
	assert.Equal(t, 90, az.Val())
	assert.True(t, az.IsDefaulted())

	az, o = hpxml.Some(10), hpxml.Some(hpxml.OrientationSouth)
	mismatch, err = ResolveAzimuth(&az, &o, 0)
	require.NoError(t, err)
	assert.True(t, mismatch)
	assert.Equal(t, 10, az.Val())

	az, o = hpxml.Opt[int]{}, hpxml.Opt[hpxml.Orientation]{}
	_, err = ResolveAzimuth(&az, &o, 450)
	require.NoError(t, err)
	assert.Equal(t, 90, az.Val())
	assert.Equal(t, hpxml.OrientationEast, o.Val())
}

func TestDefaultAzimuths(t *testing.T) {
	assert.Equal(t, []int{0, 90, 180, 270}, DefaultAzimuths(nil))
	assert.Equal(t, []int{45, 135, 225, 315}, DefaultAzimuths(map[int]float64{135: 200, 0: 50}))
}

func TestWindowUFactorSHGC_DoublePaneAluminum(t *testing.T) {
	f := &hpxml.Fenestration{FrameType: hpxml.FrameAluminum, GlassLayers: hpxml.GlassDoublePane}
	brk, ok := DefaultThermalBreak(f.GlassLayers)
	require.True(t, ok)
	assert.True(t, brk)
	f.ThermalBreak = hpxml.Defaulted(true)

	k, err := NewFenestrationKey(f)
	require.NoError(t, err)
	u, shgc, err := WindowUFactorSHGC(k, false)
	require.NoError(t, err)
	assert.Equal(t, 0.60, u)
	assert.Equal(t, 0.67, shgc)

	u, _, err = WindowUFactorSHGC(k, true)
	require.NoError(t, err)
	assert.Equal(t, 1.10, u)
}

func TestDefaultThermalBreak(t *testing.T) {
	tests := []struct {
		layers hpxml.GlassLayers
		brk    bool
		ok     bool
	}{
		{hpxml.GlassSinglePane, false, true},
		{hpxml.GlassDoublePane, true, true},
		{hpxml.GlassTriplePane, false, false},
		{hpxml.GlassBlock, false, false},
	}
	for _, tt := range tests {
		brk, ok := DefaultThermalBreak(tt.layers)
		assert.Equal(t, tt.brk, brk, tt.layers)
		assert.Equal(t, tt.ok, ok, tt.layers)
	}
}

func TestWindowUFactorSHGC_MissingRow(t *testing.T) {
	f := &hpxml.Fenestration{FrameType: hpxml.FrameWood, GlassLayers: hpxml.GlassTriplePane, GlassType: hpxml.Some(hpxml.GlassClear)}
	k, err := NewFenestrationKey(f)
	require.NoError(t, err)
	_, _, err = WindowUFactorSHGC(k, false)
	assert.ErrorIs(t, err, ErrNoEntry)

	_, err = NewFenestrationKey(&hpxml.Fenestration{GlassLayers: hpxml.GlassBlock})
	assert.ErrorIs(t, err, ErrNoEntry)
}

func TestShadingCoverage(t *testing.T) {
	assert.Equal(t, 1.0, ApplyCoverage(0.5, 0))
	assert.Equal(t, 0.5, ApplyCoverage(0.5, 1))

	f, err := InteriorShadingFactor(hpxml.InteriorShadingLightCurtains, "", 0.5, 1.0, true)
	require.NoError(t, err)
	assert.InDelta(t, 0.63, f, 1e-9)

	f, err = InteriorShadingFactor(hpxml.InteriorShadingLightCurtains, "", 0.5, 0.0, true)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f)

	_, err = InteriorShadingFactor(hpxml.InteriorShadingLightBlinds, "sideways", 0.5, 1.0, true)
	assert.ErrorIs(t, err, ErrNoEntry)

	f, err = ExteriorShadingFactor(hpxml.ExteriorShadingDeciduousTree, false)
	require.NoError(t, err)
	assert.Equal(t, 1.0, f)
}

func TestACH50_SLARoundTrip(t *testing.T) {
	ach := ACH50FromSLA(0.0005, infiltrationExponent, 2000, 16000)
	assert.Greater(t, ach, 0.0)
	assert.InDelta(t, 0.0005, SLAFromACH50(ach, infiltrationExponent, 2000, 16000), 1e-12)
}

func TestDefaultACH50(t *testing.T) {
	in := ACH50Inputs{
		CFA: 2000, NCflAG: 2, CeilingHeight: 8, Volume: 16000,
		YearBuilt: 1985, IECCZone: "4A",
		Foundations: []FoundationArea{{Type: hpxml.FoundationUnconditionedBasement, Area: 1000}},
		Ducts: []DuctShare{
			{HVACFraction: 1.0, DuctFraction: 0.5, Location: hpxml.LocationAtticVented},
		},
	}
	avg, err := DefaultACH50(in)
	require.NoError(t, err)
	assert.Greater(t, avg, 0.0)

	in.Leakiness = hpxml.LeakinessVeryLeaky
	leaky, err := DefaultACH50(in)
	require.NoError(t, err)
	assert.InDelta(t, 2*avg, leaky, 1e-9)

	in.Ducts = append(in.Ducts, DuctShare{HVACFraction: 1.0, DuctFraction: 0.6, Location: hpxml.LocationGarage})
	_, err = DefaultACH50(in)
	assert.Error(t, err)

	in.Ducts = nil
	in.IECCZone = "9Z"
	_, err = DefaultACH50(in)
	assert.ErrorIs(t, err, ErrNoEntry)
}

func TestDuctEffectiveR(t *testing.T) {
	r, err := DuctEffectiveR(0, hpxml.DuctSupply, hpxml.DuctBuriedNone, 0.25)
	require.NoError(t, err)
	assert.Equal(t, UninsulatedDuctR, r)

	r, err = DuctEffectiveR(6, hpxml.DuctSupply, hpxml.DuctBuriedPartial, 0.25)
	require.NoError(t, err)
	assert.InDelta(t, 8.18, r, 1e-9)

	rect, err := DuctEffectiveR(6, hpxml.DuctReturn, "", 1.0)
	require.NoError(t, err)
	assert.InDelta(t, 6.93, rect, 1e-9)
}

func TestDuctSurfaceArea(t *testing.T) {
	p, s := DuctSurfaceArea(hpxml.DuctSupply, 1, 2000, 1)
	assert.InDelta(t, 540, p, 1e-9)
	assert.Zero(t, s)

	p, s = DuctSurfaceArea(hpxml.DuctReturn, 2, 2000, 2)
	assert.InDelta(t, 150, p, 1e-9)
	assert.InDelta(t, 50, s, 1e-9)
	assert.Equal(t, 2, ReturnRegisters(1.5))
}

func TestCompressorType(t *testing.T) {
	ct, ok := CompressorType(true, false, 14)
	assert.True(t, ok)
	assert.Equal(t, hpxml.CompressorSingleStage, ct)
	ct, _ = CompressorType(true, false, 18)
	assert.Equal(t, hpxml.CompressorTwoStage, ct)
	ct, _ = CompressorType(false, true, 14)
	assert.Equal(t, hpxml.CompressorVariableSpeed, ct)
	_, ok = CompressorType(false, false, 14)
	assert.False(t, ok)
}
