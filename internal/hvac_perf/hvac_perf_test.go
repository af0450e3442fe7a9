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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antst/hpxdefaults/internal/hpxml"
	"github.com/antst/hpxdefaults/internal/weather"
)

func TestPrepareHeatPump_Capacity17F(t *testing.T) {
	hp := &hpxml.HeatPump{
		HVACCommon:            hpxml.HVACCommon{ID: "HeatPump1"},
		HeatPumpType:          hpxml.HeatPumpAirToAir,
		HeatingCapacity:       hpxml.Some(24000.0),
		HeatingCapFraction17F: hpxml.Some(0.8),
		CompressorType:        hpxml.Some(hpxml.CompressorSingleStage),
		HSPF2:                 hpxml.Some(7.5),
		FractionHeatLoad:      1.0,
	}
	// the fraction is consumed, then dropped in favor of the capacity
	g := NewGenerator(NewStore(), nil, "")
	require.NoError(t, g.PrepareHeatPump(hp))
	assert.Equal(t, 19200.0, hp.HeatingCapacity17F.Val())
	assert.True(t, hp.HeatingCapacity17F.IsDefaulted())
	assert.False(t, hp.HeatingCapFraction17F.IsSet())

	hp.HeatingCapacity17F.Clear()
	g = NewGenerator(NewStore(), nil, "")
	require.NoError(t, g.PrepareHeatPump(hp))
	qm17 := Qm17Full(7.5, hpxml.CompressorSingleStage, true)
	assert.InDelta(t, 0.6, qm17, 1e-9)
	assert.Equal(t, math.Round(24000*qm17), hp.HeatingCapacity17F.Val())
	assert.False(t, hp.HeatingCapFraction17F.IsSet())

	d, ok := g.Store.Get("HeatPump1")
	require.True(t, ok)
	assert.InDelta(t, qm17, d.Qm17Full, 1e-9)
	assert.InDelta(t, Qm5Full(qm17), d.Qm5Full, 1e-9)
	assert.Equal(t, []float64{1.0}, d.HeatCapacityRatios)
}

func TestPrepareHeatPump_Idempotent(t *testing.T) {
	hp := &hpxml.HeatPump{
		HVACCommon:      hpxml.HVACCommon{ID: "hp"},
		HeatPumpType:    hpxml.HeatPumpMiniSplit,
		HeatingCapacity: hpxml.Some(18000.0),
		CompressorType:  hpxml.Some(hpxml.CompressorVariableSpeed),
		HSPF2:           hpxml.Some(9.0),
	}
	g := NewGenerator(NewStore(), nil, "")
	require.NoError(t, g.PrepareHeatPump(hp))
	first := hp.HeatingCapacity17F.Val()
	require.NoError(t, g.PrepareHeatPump(hp))
	assert.Equal(t, first, hp.HeatingCapacity17F.Val())
}

func TestQm5Full(t *testing.T) {
	assert.InDelta(t, 0.44, Qm5Full(0.6), 1e-9)
	assert.InDelta(t, 1.0, Qm5Full(1.0), 1e-9)
}

func TestCoolingMap(t *testing.T) {
	pts, err := CoolingMap(CoolingRating{Capacity: 36000, SEER2: 13.4, Compressor: hpxml.CompressorSingleStage})
	require.NoError(t, err)
	require.Len(t, pts, 2)
	for _, p := range pts {
		switch p.ODB {
		case CoolRatedODB:
			assert.Equal(t, 36000.0, p.Capacity)
			// EER2/SEER2 of 0.8225 at the 1.075 capacity ratio
			assert.InDelta(t, 0.8225*13.4/btuhPerWatt, p.COP, 1e-3)
		case CoolSecondODB:
			assert.Equal(t, math.Round(36000*1.075), p.Capacity)
		default:
			t.Fatalf("unexpected temperature %v", p.ODB)
		}
	}

	pts, err = CoolingMap(CoolingRating{Capacity: 36000, EER2: 12, Compressor: hpxml.CompressorVariableSpeed})
	require.NoError(t, err)
	assert.Len(t, pts, 6)

	_, err = CoolingMap(CoolingRating{Capacity: 36000, Compressor: hpxml.CompressorSingleStage})
	assert.Error(t, err)
}

func TestHeatingMap_Lockout(t *testing.T) {
	pts, err := HeatingMap(HeatingRating{Capacity: 24000, HSPF2: 7.5, Compressor: hpxml.CompressorTwoStage, LockoutTemp: -5})
	require.NoError(t, err)
	assert.Len(t, pts, 8)

	byODB := map[float64]Point{}
	for _, p := range pts {
		if p.Speed == hpxml.CapacityNominal {
			byODB[p.ODB] = p
		}
	}
	assert.Equal(t, 24000.0, byODB[HeatRatedODB].Capacity)
	assert.Greater(t, byODB[HeatRatedODB].COP, byODB[HeatSecondODB].COP)
	assert.Greater(t, byODB[HeatLowODB].Capacity, byODB[-5].Capacity)
}

func datum(odb float64, speed hpxml.CapacityDescription, capacity, cop float64) *hpxml.PerformanceDatum {
	return &hpxml.PerformanceDatum{
		OutdoorTemperature:  odb,
		CapacityDescription: speed,
		Capacity:            hpxml.Some(capacity),
		Efficiency:          hpxml.Some(cop),
	}
}

func TestCompleteGrid_VariableSpeed(t *testing.T) {
	data := []*hpxml.PerformanceDatum{
		datum(47, hpxml.CapacityMinimum, 6000, 4.0),
		datum(47, hpxml.CapacityNominal, 18000, 3.0),
		datum(47, hpxml.CapacityMaximum, 22000, 2.75),
		datum(17, hpxml.CapacityMinimum, 4000, 3.0),
		datum(17, hpxml.CapacityMaximum, 16000, 2.0),
	}
	out, err := CompleteGrid(data, hpxml.CompressorVariableSpeed)
	require.NoError(t, err)
	require.Len(t, out, 6)

	added := out[5]
	assert.Equal(t, 17.0, added.OutdoorTemperature)
	assert.Equal(t, hpxml.CapacityNominal, added.CapacityDescription)
	assert.True(t, added.Capacity.IsDefaulted())
	// nominal sits 75% of the way from min to max capacity at 47F
	assert.Equal(t, 13000.0, added.Capacity.Val())
}

func TestCompleteGrid_TwoStage(t *testing.T) {
	data := []*hpxml.PerformanceDatum{
		datum(95, hpxml.CapacityMinimum, 24000, 4.0),
		datum(95, hpxml.CapacityNominal, 36000, 3.5),
		datum(82, hpxml.CapacityMinimum, 26000, 4.5),
	}
	out, err := CompleteGrid(data, hpxml.CompressorTwoStage)
	require.NoError(t, err)
	require.Len(t, out, 4)
	assert.Equal(t, 39000.0, out[3].Capacity.Val())

	_, err = CompleteGrid(data[:1], hpxml.CompressorSingleStage)
	assert.ErrorIs(t, err, ErrIncompleteGrid)
}

func TestCompleteGrid_DegenerateReference(t *testing.T) {
	// min and max coincide at the reference temperature
	data := []*hpxml.PerformanceDatum{
		datum(47, hpxml.CapacityMinimum, 6000, 3.0),
		datum(47, hpxml.CapacityNominal, 6000, 3.0),
		datum(47, hpxml.CapacityMaximum, 6000, 3.0),
		datum(17, hpxml.CapacityMinimum, 4000, 3.0),
		datum(17, hpxml.CapacityMaximum, 16000, 2.0),
	}
	out, err := CompleteGrid(data, hpxml.CompressorVariableSpeed)
	require.NoError(t, err)
	require.Len(t, out, 6)
	assert.Equal(t, 4000.0, out[5].Capacity.Val())
	assert.Equal(t, 3.0, out[5].Efficiency.Val())

	data = []*hpxml.PerformanceDatum{
		datum(95, hpxml.CapacityMinimum, 0, 4.0),
		datum(95, hpxml.CapacityNominal, 36000, 3.5),
		datum(82, hpxml.CapacityMinimum, 26000, 4.5),
	}
	_, err = CompleteGrid(data, hpxml.CompressorTwoStage)
	assert.ErrorIs(t, err, ErrIncompleteGrid)
}

func TestResolveFractions(t *testing.T) {
	data := []*hpxml.PerformanceDatum{
		{OutdoorTemperature: 47, CapacityDescription: hpxml.CapacityNominal, CapacityFraction: hpxml.Some(1.0), Efficiency: hpxml.Some(3.2)},
		{OutdoorTemperature: 17, CapacityDescription: hpxml.CapacityNominal, CapacityFraction: hpxml.Some(0.7), Efficiency: hpxml.Some(2.1)},
	}
	ResolveFractions(data, 30000)
	assert.Equal(t, 30000.0, data[0].Capacity.Val())
	assert.Equal(t, 21000.0, data[1].Capacity.Val())

	c5, err := NominalAt(data, 5)
	require.NoError(t, err)
	assert.Equal(t, 17400.0, c5)
}

func TestGSHPCatalog(t *testing.T) {
	c, err := GSHPCatalog("", hpxml.CompressorSingleStage, nil)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.CoolCapFT.At(GSHPCoolRatedIWB, GSHPCoolRatedEWT), 1e-9)
	assert.InDelta(t, 1.0, c.CoolEIRFT.At(GSHPCoolRatedIWB, GSHPCoolRatedEWT), 1e-9)
	assert.InDelta(t, 1.0, c.HeatCapFT.At(GSHPHeatRatedIDB, GSHPHeatRatedEWT), 1e-9)
	assert.InDelta(t, 1.0, c.HeatEIRFT.At(GSHPHeatRatedIDB, GSHPHeatRatedEWT), 1e-9)
	assert.InDelta(t, 1.0, c.CapFFAir.At(1), 1e-9)
	assert.InDelta(t, 1.0, c.EIRFFWater.At(1), 1e-9)

	_, err = GSHPCatalog(hpxml.GSHPModelStandard, hpxml.CompressorVariableSpeed, nil)
	assert.Error(t, err)

	w := &weather.Weather{Design: weather.Design{HeatingDrybulb: 5, CoolingDrybulb: 105}, Data: weather.Statistics{AnnualAvgDrybulb: 55}}
	c, err = GSHPCatalog(hpxml.GSHPModelExperimental, hpxml.CompressorTwoStage, w)
	require.NoError(t, err)
	assert.Equal(t, 90.0, c.DesignCoolEWT)
	assert.Equal(t, 45.0, c.DesignHeatEWT)
	assert.Equal(t, []float64{0.73, 1.0}, c.CapacityRatios)
}
