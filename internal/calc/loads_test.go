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

func TestWaterHeaterCapacity(t *testing.T) {
	assert.Equal(t, 38000.0, WaterHeaterCapacity(hpxml.FuelNaturalGas, 4, 1, 2))
	assert.Equal(t, 36000.0, WaterHeaterCapacity(hpxml.FuelPropane, 1, 1, 1))
	assert.Equal(t, 18767.0, WaterHeaterCapacity(hpxml.FuelElectricity, 3, 1, 2))
	// two heaters split the bathrooms between them
	assert.Equal(t, 15355.0, WaterHeaterCapacity(hpxml.FuelElectricity, 3, 2, 2))
}

func TestTankVolume(t *testing.T) {
	assert.Equal(t, 40.0, TankVolume(hpxml.FuelNaturalGas, 3, 2))
	assert.Equal(t, 30.0, TankVolume(hpxml.FuelNaturalGas, 3, 1))
	assert.Equal(t, 66.0, TankVolume(hpxml.FuelElectricity, 4, 3))
	assert.Equal(t, 80.0, TankVolume(hpxml.FuelElectricity, 6, 3))
}

func TestEFFromUEF(t *testing.T) {
	ef, err := EFFromUEF(hpxml.WaterHeaterStorage, hpxml.FuelElectricity, 0.93)
	require.NoError(t, err)
	assert.InDelta(t, 0.950297, ef, 1e-6)

	ef, err = EFFromUEF(hpxml.WaterHeaterStorage, hpxml.FuelElectricity, 0.99)
	require.NoError(t, err)
	assert.Equal(t, 0.96, ef)

	ef, err = EFFromUEF(hpxml.WaterHeaterTankless, hpxml.FuelNaturalGas, 0.87)
	require.NoError(t, err)
	assert.Equal(t, 0.87, ef)

	_, err = EFFromUEF(hpxml.WaterHeaterHeatPump, hpxml.FuelNaturalGas, 2.0)
	assert.ErrorIs(t, err, ErrNoEntry)
}

func TestRecoveryEfficiencyAndUsageBin(t *testing.T) {
	assert.Equal(t, 0.98, RecoveryEfficiency(hpxml.FuelElectricity, 0.9))
	assert.InDelta(t, 0.7592, RecoveryEfficiency(hpxml.FuelNaturalGas, 0.6), 1e-9)
	assert.InDelta(t, 0.8878, RecoveryEfficiency(hpxml.FuelNaturalGas, 0.8), 1e-9)

	assert.Equal(t, hpxml.UsageBinVerySmall, UsageBin(10))
	assert.Equal(t, hpxml.UsageBinLow, UsageBin(50))
	assert.Equal(t, hpxml.UsageBinMedium, UsageBin(74))
	assert.Equal(t, hpxml.UsageBinHigh, UsageBin(75))
}

func TestIndirectStandbyLoss(t *testing.T) {
	assert.InDelta(t, 0.843, IndirectStandbyLoss(50), 0.002)
}

func TestWaterHeaterLocations(t *testing.T) {
	assert.Equal(t, hpxml.LocationGarage, WaterHeaterLocations("2A")[0])
	assert.Equal(t, hpxml.LocationBasementConditioned, WaterHeaterLocations("5A")[0])
	assert.Equal(t, hpxml.LocationBasementConditioned, WaterHeaterLocations("")[0])

	has := func(l hpxml.Location) bool { return l == hpxml.LocationBasementUnconditioned }
	assert.Equal(t, hpxml.LocationBasementUnconditioned, FirstLocation(WaterHeaterLocations("5A"), has))
	assert.Equal(t, hpxml.LocationConditionedSpace, FirstLocation(WaterHeaterLocations("2A"), has))
}

func TestHotWaterPiping(t *testing.T) {
	std := StandardPipeLength(false, 2000, 2)
	assert.InDelta(t, 83.2456, std, 1e-4)
	assert.InDelta(t, 146.4911, RecircLoopLength(std), 1e-4)
	assert.InDelta(t, 88.2456, StandardPipeLength(true, 2000, 2), 1e-4)
	assert.InDelta(t, 219.4118, SharedRecircPumpPower(), 1e-4)
}

func TestERIAtLeast(t *testing.T) {
	assert.True(t, ERIAtLeast("", "2019A"))
	assert.True(t, ERIAtLeast(ERILatest, "2019A"))
	assert.True(t, ERIAtLeast("2022C", "2019A"))
	assert.True(t, ERIAtLeast("2019ABCD", "2019A"))
	assert.False(t, ERIAtLeast("2014AEG", "2019A"))
	assert.False(t, ERIAtLeast("2006", "2014A"))
}

func TestApplianceReferences(t *testing.T) {
	assert.Equal(t, 1.0, DefaultClothesWasher("2019A").IMEF)
	assert.Equal(t, 0.331, DefaultClothesWasher("2014").IMEF)

	cef, ctl := DefaultDryerCEF("2014", hpxml.FuelNaturalGas)
	assert.Equal(t, 2.32, cef)
	assert.Equal(t, hpxml.DryerControlTimer, ctl)
	cef, ctl = DefaultDryerCEF(ERILatest, hpxml.FuelElectricity)
	assert.Equal(t, 3.01, cef)
	assert.Empty(t, ctl)

	assert.Equal(t, 12, DefaultDishwasher().PlaceSettings)
	assert.Equal(t, 691.0, RefrigeratorKwh(3))
}

func TestMiscLoads(t *testing.T) {
	assert.Equal(t, 1.0, UsageFactor(1920, 3))
	assert.InDelta(t, 2265.7143, PoolPumpKwh(1920, 3), 1e-4)

	v, units, err := PoolHeaterLoad(hpxml.PoolHeaterGas, false, 1920, 3)
	require.NoError(t, err)
	assert.Equal(t, hpxml.UnitsThermPerYear, units)
	assert.InDelta(t, 214.2857, v, 1e-4)

	v, units, err = PoolHeaterLoad(hpxml.PoolHeaterHeatPump, true, 1920, 3)
	require.NoError(t, err)
	assert.Equal(t, hpxml.UnitsKwhPerYear, units)
	assert.InDelta(t, 204.1667, v, 1e-4)

	_, _, err = PoolHeaterLoad(hpxml.PoolHeaterNone, false, 1920, 3)
	assert.ErrorIs(t, err, ErrNoEntry)

	tv, err := PlugLoadDefault(hpxml.PlugLoadTV, 2000, 3)
	require.NoError(t, err)
	assert.Equal(t, LoadFraction{Annual: 620, Sensible: 1}, tv)

	fp, err := FuelLoadDefault(hpxml.FuelLoadFireplace, 1920, 3)
	require.NoError(t, err)
	assert.Equal(t, 0.5, fp.Sensible)
	assert.Equal(t, 0.1, fp.Latent)
}

func TestVolumeAndCeilingHeight(t *testing.T) {
	v, h := 0.0, 0.0
	vs, hs := VolumeAndCeilingHeight(2000, &v, &h, 14000, 0)
	assert.True(t, vs)
	assert.True(t, hs)
	assert.Equal(t, 7.0, h)
	assert.Equal(t, 14000.0, v)

	v, h = 0, 0
	VolumeAndCeilingHeight(2000, &v, &h, 0, 1200)
	assert.Equal(t, 8.0, h)
	assert.Equal(t, 17200.0, v)

	v, h = 18000, 0
	vs, hs = VolumeAndCeilingHeight(2000, &v, &h, 0, 2000)
	assert.False(t, vs)
	assert.True(t, hs)
	assert.Equal(t, 8.0, h)

	assert.Equal(t, 1200.0, CrawlspaceVolume(400, []float64{2, 4}))
	assert.Zero(t, CrawlspaceVolume(400, nil))
}

func TestNeedsFlue(t *testing.T) {
	assert.True(t, HeaterNeedsFlue(hpxml.HeatingFurnace, hpxml.FuelNaturalGas, 0.80))
	assert.False(t, HeaterNeedsFlue(hpxml.HeatingFurnace, hpxml.FuelNaturalGas, 0.95))
	assert.False(t, HeaterNeedsFlue(hpxml.HeatingFurnace, hpxml.FuelElectricity, 0.80))
	assert.True(t, HeaterNeedsFlue(hpxml.HeatingFireplace, hpxml.FuelWood, 0.95))
	assert.True(t, WaterHeaterNeedsFlue(hpxml.FuelPropane, 0.6))
	assert.False(t, WaterHeaterNeedsFlue(hpxml.FuelPropane, 0.8))
}
