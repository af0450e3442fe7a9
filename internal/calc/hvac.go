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
	"strings"

	"github.com/antst/hpxdefaults/internal/hpxml"
)

const (
	BtuhPerTon = 12000.0
	WattToBtuh = 3.412141633

	PSCWattsPerCFM               = 0.5
	ECMWattsPerCFM               = 0.375
	MiniSplitDuctedWattsPerCFM   = 0.18
	MiniSplitDuctlessWattsPerCFM = 0.07

	GSHPPumpWattsPerTon   = 30.0
	BackupLockoutTemp     = 40.0
	CeilingFanPower       = 42.6
	CeilingFanMediumCFM   = 3000.0
	CeilingFanSetpointOff = 0.5
	StoveFanWatts         = 40.0
	EvaporativeEffective  = 0.72
)

// SEER2Factor returns SEER2/SEER. The same ratio converts EER to EER2.
func SEER2Factor(ducted bool, eq hpxml.EquipmentType, heatPump bool) float64 {
	if !ducted {
		return 1.0
	}
	switch eq {
	case hpxml.EquipmentSDHV:
		return 1.0
	case hpxml.EquipmentSpaceConstrained:
		if heatPump {
			return 0.99
		}
		return 0.97
	}
	return 0.95
}

// HSPF2Factor returns HSPF2/HSPF.
func HSPF2Factor(ducted bool, eq hpxml.EquipmentType) float64 {
	if !ducted {
		return 0.90
	}
	if eq == hpxml.EquipmentPackaged {
		return 0.84
	}
	return 0.85
}

func CEERFromEER(eer float64) float64 {
	return eer / 1.01
}

func EERFromCEER(ceer float64) float64 {
	return ceer * 1.01
}

// CompressorType returns the compressor type implied by the rated SEER of
// central equipment. ok is false for equipment without a compressor choice.
func CompressorType(central, miniSplit bool, seer float64) (hpxml.CompressorType, bool) {
	switch {
	case miniSplit:
		return hpxml.CompressorVariableSpeed, true
	case !central:
		return "", false
	case seer <= 15:
		return hpxml.CompressorSingleStage, true
	case seer <= 21:
		return hpxml.CompressorTwoStage, true
	}
	return hpxml.CompressorVariableSpeed, true
}

// CoolingSHR is the rated sensible heat ratio of a cooling system.
func CoolingSHR(t hpxml.CoolingSystemType, ct hpxml.CompressorType) (float64, bool) {
	switch t {
	case hpxml.CoolingCentralAC:
		if ct == hpxml.CompressorVariableSpeed {
			return 0.78, true
		}
		return 0.73, true
	case hpxml.CoolingRoomAC, hpxml.CoolingPTAC:
		return 0.65, true
	case hpxml.CoolingMiniSplit:
		return 0.73, true
	}
	return 0, false
}

// HeatPumpSHR is the rated sensible heat ratio of a heat pump.
func HeatPumpSHR(t hpxml.HeatPumpType, ct hpxml.CompressorType) (float64, bool) {
	switch t {
	case hpxml.HeatPumpAirToAir:
		switch ct {
		case hpxml.CompressorTwoStage:
			return 0.724, true
		case hpxml.CompressorVariableSpeed:
			return 0.78, true
		}
		return 0.73, true
	case hpxml.HeatPumpMiniSplit:
		return 0.73, true
	case hpxml.HeatPumpGroundToAir:
		return 0.732, true
	case hpxml.HeatPumpPTHP, hpxml.HeatPumpRoomReversed:
		return 0.65, true
	}
	return 0, false
}

// FurnaceWattsPerCFM uses an ECM blower for condensing furnaces.
func FurnaceWattsPerCFM(gravity bool, afue float64) float64 {
	switch {
	case gravity:
		return 0
	case afue > 0.9:
		return ECMWattsPerCFM
	}
	return PSCWattsPerCFM
}

func CentralACWattsPerCFM(seer float64) float64 {
	if seer > 13.5 {
		return ECMWattsPerCFM
	}
	return PSCWattsPerCFM
}

func AirSourceHPWattsPerCFM(hspf float64) float64 {
	if hspf > 8.75 {
		return ECMWattsPerCFM
	}
	return PSCWattsPerCFM
}

func GroundSourceHPWattsPerCFM(cop float64) float64 {
	if cop > 8.75/3.2 {
		return ECMWattsPerCFM
	}
	return PSCWattsPerCFM
}

func MiniSplitWattsPerCFM(ducted bool) float64 {
	if ducted {
		return MiniSplitDuctedWattsPerCFM
	}
	return MiniSplitDuctlessWattsPerCFM
}

// FanMotorType follows the fan efficiency: anything better than PSC is BPM.
func FanMotorType(wattsPerCFM float64) hpxml.FanMotorType {
	if wattsPerCFM < PSCWattsPerCFM {
		return hpxml.FanMotorBPM
	}
	return hpxml.FanMotorPSC
}

// StovePercent is the efficiency of stoves, fireplaces and space heaters.
func StovePercent(fuel hpxml.FuelType) float64 {
	switch fuel {
	case hpxml.FuelElectricity:
		return 1.0
	case hpxml.FuelWood:
		return 0.60
	case hpxml.FuelWoodPellets:
		return 0.78
	}
	return 0.81
}

// BoilerEAE is the annual electric auxiliary energy of an in-unit boiler, kWh.
func BoilerEAE(fuel hpxml.FuelType) float64 {
	switch fuel {
	case hpxml.FuelElectricity:
		return 0
	case hpxml.FuelOil, hpxml.FuelKerosene, hpxml.FuelDiesel:
		return 330
	}
	return 170
}

// CrankcaseHeaterWatts is zero for ductless and room equipment.
func CrankcaseHeaterWatts(ductless bool) float64 {
	if ductless {
		return 0
	}
	return 50
}

// CeilingFanQuantity is one fan per bedroom plus one.
func CeilingFanQuantity(nbeds int) int {
	return nbeds + 1
}

// CeilingFanEfficiency is cfm/W of a medium fan.
func CeilingFanEfficiency() float64 {
	return CeilingFanMediumCFM / CeilingFanPower
}

// Setpoints of a manual thermostat.
const (
	HeatingSetpoint       = 68.0
	CoolingSetpoint       = 78.0
	HeatingSetbackStartHr = 23
	CoolingSetupStartHr   = 9
)

// DXCoilPowerWatts estimates compressor input power from rated output
// capacity in kBtu/h via a minimum circuit ampacity regression.
func DXCoilPowerWatts(capacityKBtuh float64, voltage int) float64 {
	return (0.631*capacityKBtuh + 1.615) * float64(voltage)
}

// BlowerPowerWatts is the air handler power at the given airflow.
func BlowerPowerWatts(wattsPerCFM, cfm float64) float64 {
	return wattsPerCFM * cfm
}

// BoilerPumpWatts derives pump power from the annual auxiliary energy.
func BoilerPumpWatts(eae float64) float64 {
	return eae / 2.08
}

// GSHPPumpWatts uses the cooling capacity when there is one.
func GSHPPumpWatts(wattsPerTon, coolingCap, heatingCap float64) float64 {
	if coolingCap > 1.0 {
		return wattsPerTon * coolingCap / BtuhPerTon
	}
	return wattsPerTon * heatingCap / BtuhPerTon
}

// HeatingInputCapacity is output capacity over efficiency.
func HeatingInputCapacity(capacity, efficiency float64) float64 {
	if efficiency <= 0 {
		return capacity
	}
	return capacity / efficiency
}

// RatedAirflow is cfm at capacity (Btu/h) and cfm per ton.
func RatedAirflow(capacity, cfmPerTon float64) float64 {
	return capacity / BtuhPerTon * cfmPerTon
}

// PVSystemLosses ages the default loss fraction 0.5% per year since manufacture.
func PVSystemLosses(yearManufactured, currentYear int) float64 {
	const def = 0.14
	if yearManufactured <= 0 {
		return def
	}
	age := float64(currentYear - yearManufactured)
	ageLosses := 1.0 - math.Pow(0.995, age)
	return 1.0 - (1.0-def)*(1.0-ageLosses)
}

const PVInverterEfficiency = 0.96

// ceilingFanMonthTemp is the monthly mean dry bulb, F, above which ceiling
// fans run.
const ceilingFanMonthTemp = 63.0

// CeilingFanMonths marks the months warm enough for ceiling fan use. It
// returns "" without twelve monthly temperatures.
func CeilingFanMonths(monthly []float64) string {
	if len(monthly) != 12 {
		return ""
	}
	parts := make([]string, len(monthly))
	for i, t := range monthly {
		parts[i] = "0"
		if t > ceilingFanMonthTemp {
			parts[i] = "1"
		}
	}
	return strings.Join(parts, ", ")
}
