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
	"math"

	"github.com/antst/hpxdefaults/internal/calc"
	"github.com/antst/hpxdefaults/internal/hpxml"
)

// Demand is what one component draws from the panel.
type Demand struct {
	LoadType hpxml.PanelLoadType
	Power    float64
	Voltage  int
}

const (
	heatingCFMPerTon = 350.0
	coolingCFMPerTon = 400.0
)

func resistanceW(capacityBtuh float64) float64 {
	return capacityBtuh / calc.WattToBtuh
}

func blowerW(wattsPerCFM, cfm, capacity, cfmPerTon float64) float64 {
	if cfm <= 0 {
		cfm = calc.RatedAirflow(capacity, cfmPerTon)
	}
	return calc.BlowerPowerWatts(wattsPerCFM, cfm)
}

func compressorW(capacityBtuh float64, voltage int) float64 {
	if capacityBtuh <= 0 {
		return 0
	}
	return calc.DXCoilPowerWatts(capacityBtuh/1000.0, voltage)
}

// HeatingSystemDemand is the heating draw of a heating system. Electric
// equipment draws its full capacity at 240V, fuel fired equipment only its
// blower or pump at 120V.
func HeatingSystemDemand(hs *hpxml.HeatingSystem) Demand {
	capacity := hs.HeatingCapacity.Val()
	d := Demand{LoadType: hpxml.PanelLoadHeating, Voltage: volt120}
	if hs.Fuel == hpxml.FuelElectricity {
		d.Voltage = DefaultPanelVoltage
		d.Power = resistanceW(capacity)
	}
	switch hs.HeatingSystemType {
	case hpxml.HeatingFurnace:
		d.Power += blowerW(hs.FanWattsPerCFM.Val(), hs.HeatingAirflowCFM.Val(), capacity, heatingCFMPerTon)
	case hpxml.HeatingBoiler:
		if hs.Fuel != hpxml.FuelElectricity {
			d.Power += calc.BoilerPumpWatts(hs.ElectricAuxEnergy.Val())
		}
	case hpxml.HeatingWallFurnace, hpxml.HeatingFloorFurnace, hpxml.HeatingStove, hpxml.HeatingSpaceHeater, hpxml.HeatingFireplace:
		d.Power += hs.FanWatts.Val()
	}
	d.Power = math.Round(d.Power)
	return d
}

// CoolingSystemDemand is compressor plus blower. Room units plug into 120V.
func CoolingSystemDemand(cs *hpxml.CoolingSystem) Demand {
	capacity := cs.CoolingCapacity.Val()
	d := Demand{LoadType: hpxml.PanelLoadCooling, Voltage: DefaultPanelVoltage}
	switch cs.CoolingSystemType {
	case hpxml.CoolingRoomAC, hpxml.CoolingPTAC:
		d.Voltage = volt120
		d.Power = compressorW(capacity, volt120)
	case hpxml.CoolingEvaporative:
		d.Voltage = volt120
		d.Power = blowerW(cs.FanWattsPerCFM.Val(), cs.CoolingAirflowCFM.Val(), capacity, coolingCFMPerTon)
	default:
		d.Power = compressorW(capacity, DefaultPanelVoltage)
		if cs.IsDucted() {
			d.Power += blowerW(cs.FanWattsPerCFM.Val(), cs.CoolingAirflowCFM.Val(), capacity, coolingCFMPerTon)
		}
	}
	d.Power = math.Round(d.Power)
	return d
}

// HeatPumpDemands returns the heating and cooling draw of a heat pump. An
// integrated electric backup adds to the heating draw when it may run with
// the compressor, otherwise the larger of the two counts.
func HeatPumpDemands(hp *hpxml.HeatPump, simultaneousBackup bool) (heating, cooling Demand) {
	voltage := DefaultPanelVoltage
	if hp.HeatPumpType == hpxml.HeatPumpPTHP || hp.HeatPumpType == hpxml.HeatPumpRoomReversed {
		voltage = volt120
	}
	htgCap := hp.HeatingCapacity.Val()
	clgCap := hp.CoolingCapacity.Val()

	var pumpW float64
	if hp.HeatPumpType == hpxml.HeatPumpGroundToAir {
		pumpW = calc.GSHPPumpWatts(hp.PumpWattsPerTon.Val(), clgCap, htgCap)
	}
	var htgBlower, clgBlower float64
	if hp.IsDucted() {
		htgBlower = blowerW(hp.FanWattsPerCFM.Val(), hp.HeatingAirflowCFM.Val(), htgCap, heatingCFMPerTon)
		clgBlower = blowerW(hp.FanWattsPerCFM.Val(), hp.CoolingAirflowCFM.Val(), clgCap, coolingCFMPerTon)
	}

	htgW := compressorW(htgCap, voltage) + htgBlower + pumpW
	if hp.BackupType.Val() == hpxml.BackupIntegrated && hp.BackupFuel.Val() == hpxml.FuelElectricity {
		backupW := resistanceW(hp.BackupCapacity.Val())
		if simultaneousBackup {
			htgW += backupW
		} else {
			htgW = math.Max(htgW, backupW+htgBlower)
		}
	}
	heating = Demand{LoadType: hpxml.PanelLoadHeating, Power: math.Round(htgW), Voltage: voltage}
	if hp.FractionCoolLoad > 0 {
		cooling = Demand{LoadType: hpxml.PanelLoadCooling, Power: math.Round(compressorW(clgCap, voltage) + clgBlower + pumpW), Voltage: voltage}
	}
	return heating, cooling
}

// SimultaneousBackup reports heat pumps whose backup may run while the
// compressor runs: those without a switchover temperature whose compressor
// lockout is below the backup lockout.
func SimultaneousBackup(hp *hpxml.HeatPump) bool {
	if hp.BackupSwitchoverTemp.IsSet() {
		return false
	}
	lockout, ok := hp.CompressorLockoutTemp.Get()
	backupLockout, bok := hp.BackupLockoutTemp.Get()
	if !ok || !bok {
		return true
	}
	return lockout < backupLockout
}
