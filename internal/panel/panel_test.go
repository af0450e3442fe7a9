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

package panel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antst/hpxdefaults/internal/hpxml"
)

func TestBreakerSpaces(t *testing.T) {
	for _, v := range []int{120, 240} {
		for _, a := range []float64{15, 20, 50} {
			assert.Equal(t, 0, BreakerSpaces(0, v, a))
		}
	}
	assert.Equal(t, 2, BreakerSpaces(5500, 240, 30))
	assert.Equal(t, 8, BreakerSpaces(24000, 240, 30))
	assert.Equal(t, 1, BreakerSpaces(1200, 120, 20))
	assert.Equal(t, 2, BreakerSpaces(3000, 120, 20))
}

func TestSplitCircuit(t *testing.T) {
	c := &hpxml.BranchCircuit{
		ID:               "BC1",
		Voltage:          hpxml.Defaulted(240),
		MaxCurrentRating: hpxml.Defaulted(50.0),
		OccupiedSpaces:   hpxml.Defaulted(5),
		ComponentIDs:     []string{"WH"},
	}
	res := SplitCircuit(c)
	require.Len(t, res, 3)
	assert.Same(t, c, res[0])
	assert.Equal(t, 2, res[0].OccupiedSpaces.Val())
	assert.Equal(t, "BC1_2", res[1].ID)
	assert.Equal(t, 2, res[1].OccupiedSpaces.Val())
	assert.Equal(t, 240, res[1].Voltage.Val())
	assert.Equal(t, "BC1_3", res[2].ID)
	assert.Equal(t, 120, res[2].Voltage.Val())
	assert.Equal(t, 20.0, res[2].MaxCurrentRating.Val())
	assert.Equal(t, 1, res[2].OccupiedSpaces.Val())
	for _, r := range res {
		assert.True(t, r.References("WH"))
	}

	small := &hpxml.BranchCircuit{ID: "BC2", Voltage: hpxml.Some(120), OccupiedSpaces: hpxml.Some(1)}
	assert.Len(t, SplitCircuit(small), 1)
}

func TestDiscountLoad(t *testing.T) {
	assert.Equal(t, 12800.0, DiscountLoad(20000, 8000, 0.4))
	assert.Equal(t, 5000.0, DiscountLoad(5000, 8000, 0.4))
}

func feeder(id string, lt hpxml.PanelLoadType, w float64, isNew bool, components ...string) *hpxml.ServiceFeeder {
	return &hpxml.ServiceFeeder{ID: id, LoadType: lt, PowerRating: hpxml.Some(w), IsNewLoad: hpxml.Some(isNew), ComponentIDs: components}
}

func testPanel() *hpxml.ElectricPanel {
	return &hpxml.ElectricPanel{
		ID:               "Panel",
		Voltage:          hpxml.Some(240),
		MaxCurrentRating: hpxml.Some(200.0),
		ServiceFeeders: []*hpxml.ServiceFeeder{
			feeder("F1", hpxml.PanelLoadHeating, 10000, false, "Furnace"),
			feeder("F2", hpxml.PanelLoadCooling, 3500, false, "AC"),
			feeder("F3", hpxml.PanelLoadWaterHeater, 5500, false, "WH"),
			feeder("F4", hpxml.PanelLoadKitchen, 3000, false),
			feeder("F5", hpxml.PanelLoadLaundry, 1500, false),
		},
		BranchCircuits: []*hpxml.BranchCircuit{
			{ID: "C1", OccupiedSpaces: hpxml.Some(2)},
			{ID: "C2", OccupiedSpaces: hpxml.Some(2)},
			{ID: "C3", OccupiedSpaces: hpxml.Some(1)},
		},
	}
}

func TestCalculate_ExistingLoadsOnly(t *testing.T) {
	p := testPanel()
	skipped := Calculate(p, []hpxml.PanelCalculationType{hpxml.PanelCalc2023LoadBased, hpxml.PanelCalc2023MeterBased}, nil)
	assert.Equal(t, []hpxml.PanelCalculationType{hpxml.PanelCalc2023MeterBased}, skipped)

	require.Len(t, p.Capacities, 1)
	c := p.Capacities[0]
	assert.Equal(t, 14200.0, c.TotalW)
	assert.Equal(t, 59.0, c.TotalA)
	assert.Equal(t, 141.0, c.HeadroomA)

	assert.Equal(t, hpxml.BreakerSpaces{Total: 8, Occupied: 5, Headroom: 3}, p.BreakerSpaces)
	p.RatedTotalSpaces = hpxml.Some(20)
	assert.Equal(t, hpxml.BreakerSpaces{Total: 20, Occupied: 5, Headroom: 15}, Spaces(p))
}

func TestCalculate_NewHVACLoad(t *testing.T) {
	p := testPanel()
	p.ServiceFeeders = append(p.ServiceFeeders, feeder("F6", hpxml.PanelLoadCooling, 4000, true, "HP"))
	assert.Equal(t, 18800.0, LoadBasedW(p, nil))
}

func TestHeatingLoad_Backup(t *testing.T) {
	p := &hpxml.ElectricPanel{ServiceFeeders: []*hpxml.ServiceFeeder{
		feeder("F1", hpxml.PanelLoadHeating, 6000, false, "HP"),
		feeder("F2", hpxml.PanelLoadHeating, 10000, false, "Backup"),
	}}
	pair := Backup{HeatPump: "HP", System: "Backup"}
	assert.Equal(t, 10000.0, heatingLoad(p, []Backup{pair}, all))

	pair.Simultaneous = true
	assert.Equal(t, 16000.0, heatingLoad(p, []Backup{pair}, all))

	pair.Simultaneous = false
	p.ServiceFeeders[1].PowerRating = hpxml.Some(6000.0)
	assert.Equal(t, 6000.0, heatingLoad(p, []Backup{pair}, all))
}

func TestDemands(t *testing.T) {
	er := &hpxml.HeatingSystem{HeatingSystemType: hpxml.HeatingElectricResistance, Fuel: hpxml.FuelElectricity, HeatingCapacity: hpxml.Some(34121.41633)}
	assert.Equal(t, Demand{LoadType: hpxml.PanelLoadHeating, Power: 10000, Voltage: 240}, HeatingSystemDemand(er))

	furnace := &hpxml.HeatingSystem{
		HVACCommon:        hpxml.HVACCommon{DistributionSystem: "HVACDist", FanWattsPerCFM: hpxml.Some(0.375)},
		HeatingSystemType: hpxml.HeatingFurnace,
		Fuel:              hpxml.FuelNaturalGas,
		HeatingCapacity:   hpxml.Some(36000.0),
	}
	assert.Equal(t, Demand{LoadType: hpxml.PanelLoadHeating, Power: 394, Voltage: 120}, HeatingSystemDemand(furnace))

	ac := &hpxml.CoolingSystem{
		HVACCommon:        hpxml.HVACCommon{DistributionSystem: "HVACDist", FanWattsPerCFM: hpxml.Some(0.375)},
		CoolingSystemType: hpxml.CoolingCentralAC,
		CoolingCapacity:   hpxml.Some(36000.0),
	}
	assert.Equal(t, Demand{LoadType: hpxml.PanelLoadCooling, Power: 6289, Voltage: 240}, CoolingSystemDemand(ac))
}

func TestSimultaneousBackup(t *testing.T) {
	hp := &hpxml.HeatPump{BackupSwitchoverTemp: hpxml.Some(30.0)}
	assert.False(t, SimultaneousBackup(hp))

	hp = &hpxml.HeatPump{CompressorLockoutTemp: hpxml.Some(0.0), BackupLockoutTemp: hpxml.Some(40.0)}
	assert.True(t, SimultaneousBackup(hp))
	hp.CompressorLockoutTemp = hpxml.Some(45.0)
	assert.False(t, SimultaneousBackup(hp))
}
