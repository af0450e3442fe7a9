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

package defaults

import (
	"github.com/antst/hpxdefaults/internal/calc"
	"github.com/antst/hpxdefaults/internal/hpxml"
	"github.com/antst/hpxdefaults/internal/hvac_perf"
)

const (
	pilotLightBtuh         = 500.0
	evapCoolerWattsPerCFM  = 0.3
	dualFuelLockoutTemp    = 25.0
	variableSpeedLockout   = -20.0
	compressorLockoutTemp  = 0.0
	geoBoreSpacing         = 16.4
	geoBoreDiameter        = 5.0
	geoPipeDiameter        = 1.25
	geoGroutStandardK      = 0.75
	geoGroutEnhancedK      = 1.2
	geoPipeStandardK       = 0.23
	geoPipeEnhancedK       = 0.40
	geoBoreFeetPerTon      = 150.0
	geoMaxBoreLength       = 500.0
	geoLoopFlowGPMPerTon   = 3.0
	geoMinLoopFlow         = 3.0
	integratedBackupPct    = 1.0
	electricFurnaceAFUE    = 1.0
	electricResistanceFrac = 1.0
)

var afueEquipment = map[hpxml.HeatingSystemType]string{
	hpxml.HeatingFurnace:      "furnace",
	hpxml.HeatingWallFurnace:  "wall furnace",
	hpxml.HeatingFloorFurnace: "floor furnace",
	hpxml.HeatingBoiler:       "boiler",
}

func (e *engine) distribution(id string) *hpxml.HVACDistribution {
	if id == "" {
		return nil
	}
	for _, d := range e.b.Systems.HVACDistributions {
		if d.ID == id {
			return d
		}
	}
	return nil
}

func (e *engine) heatingSystem(id string) *hpxml.HeatingSystem {
	for _, hs := range e.b.Systems.HeatingSystems {
		if hs.ID == id {
			return hs
		}
	}
	return nil
}

// efficiencyByYear looks up the rated efficiency of equipment from its
// installation year. Without a year the efficiency cannot be defaulted.
func (e *engine) efficiencyByYear(id string, year hpxml.Opt[int], equipment string, fuel hpxml.FuelType, metric string) (float64, error) {
	y, ok := year.Get()
	if !ok {
		return 0, configErrorf(id, "year_installed", "%s is unset and no installation year is given", metric)
	}
	f := "*"
	if fuel != "" {
		f = string(fuel)
	}
	v, err := e.cache.EfficiencyByYear(equipment, f, metric, y)
	if err != nil {
		return 0, configErrorf(id, metric, "%v", err)
	}
	return v, nil
}

// ratingPair converts between a rating and its 2023 counterpart with the
// ratio v2/v. Only the missing side is filled.
func ratingPair(name, name2 string, v, v2 *hpxml.Opt[float64], factor func() float64) rules {
	return rules{
		when(func() bool { return v2.IsSet() },
			computed(name, v, func() float64 { return calc.Round(v2.Val()/factor(), 2) })),
		when(func() bool { return v.IsSet() },
			computed(name2, v2, func() float64 { return calc.Round(v.Val()*factor(), 2) })),
	}
}

func requireOneOf(id, name string, a, b *hpxml.Opt[float64]) rule {
	return step(name, func() error {
		if !a.IsSet() && !b.IsSet() {
			return configErrorf(id, name, "efficiency is required")
		}
		return nil
	})
}

func fanMotorRule(c *hpxml.HVACCommon) rule {
	return when(func() bool { return c.FanWattsPerCFM.IsSet() },
		computed("fan_motor_type", &c.FanMotorType, func() hpxml.FanMotorType { return calc.FanMotorType(c.FanWattsPerCFM.Val()) }))
}

// applyHVAC fills equipment efficiencies, compressor and fan properties and
// prepares the derived performance of every system for sizing.
func (e *engine) applyHVAC() error {
	e.gen = hvac_perf.NewGenerator(e.store, e.w, e.hdr.GroundToAirModelType.Or(hpxml.GSHPModelStandard))
	sys := &e.b.Systems
	for _, hs := range sys.HeatingSystems {
		if err := e.heatingRules(hs).apply(hs.ID); err != nil {
			return err
		}
	}
	for _, cs := range sys.CoolingSystems {
		if err := e.coolingRules(cs).apply(cs.ID); err != nil {
			return err
		}
		if err := e.gen.PrepareCooling(cs); err != nil {
			return configErrorf(cs.ID, "performance", "%v", err)
		}
	}
	for _, hp := range sys.HeatPumps {
		if err := e.heatPumpRules(hp).apply(hp.ID); err != nil {
			return err
		}
		if err := e.gen.PrepareHeatPump(hp); err != nil {
			return configErrorf(hp.ID, "heating_capacity_17F", "%v", err)
		}
	}
	return e.applyGeothermalLoops()
}

func (e *engine) heatingRules(hs *hpxml.HeatingSystem) rules {
	electric := hs.Fuel == hpxml.FuelElectricity
	rs := rules{constant("is_shared_system", &hs.IsSharedSystem, false)}

	if eq, ok := afueEquipment[hs.HeatingSystemType]; ok {
		rs = append(rs, when(func() bool { return !hs.Percent.IsSet() },
			fallible("annual_heating_efficiency_afue", &hs.AFUE, func() (float64, error) {
				if electric {
					return electricFurnaceAFUE, nil
				}
				return e.efficiencyByYear(hs.ID, hs.YearInstalled, eq, "", "AFUE")
			})))
	}
	switch hs.HeatingSystemType {
	case hpxml.HeatingElectricResistance:
		rs = append(rs, constant("annual_heating_efficiency_percent", &hs.Percent, electricResistanceFrac))
	case hpxml.HeatingStove, hpxml.HeatingSpaceHeater, hpxml.HeatingFireplace:
		rs = append(rs, when(func() bool { return !hs.AFUE.IsSet() },
			constant("annual_heating_efficiency_percent", &hs.Percent, calc.StovePercent(hs.Fuel))))
	}

	switch hs.HeatingSystemType {
	case hpxml.HeatingFurnace, hpxml.HeatingWallFurnace, hpxml.HeatingFloorFurnace, hpxml.HeatingBoiler,
		hpxml.HeatingStove, hpxml.HeatingFireplace:
		if !electric {
			rs = append(rs,
				constant("pilot_light", &hs.PilotLight, false),
				when(func() bool { return hs.PilotLight.Val() },
					constant("pilot_light_btuh", &hs.PilotLightBtuh, pilotLightBtuh)))
		}
	}

	switch hs.HeatingSystemType {
	case hpxml.HeatingBoiler:
		rs = append(rs, when(func() bool { return !hs.IsSharedSystem.Val() },
			constant("electric_auxiliary_energy", &hs.ElectricAuxEnergy, calc.BoilerEAE(hs.Fuel))))
	case hpxml.HeatingStove:
		rs = append(rs, constant("fan_watts", &hs.FanWatts, calc.StoveFanWatts))
	case hpxml.HeatingWallFurnace, hpxml.HeatingFloorFurnace, hpxml.HeatingSpaceHeater, hpxml.HeatingFireplace:
		rs = append(rs, constant("fan_watts", &hs.FanWatts, 0.0))
	case hpxml.HeatingFurnace:
		d := e.distribution(hs.DistributionSystem)
		gravity := d != nil && d.AirDistributionType.Val() == hpxml.AirDistributionGravity
		rs = append(rs,
			computed("fan_watts_per_cfm", &hs.FanWattsPerCFM, func() float64 { return calc.FurnaceWattsPerCFM(gravity, hs.AFUE.Val()) }),
			fanMotorRule(&hs.HVACCommon),
			constant("airflow_defect_ratio", &hs.AirflowDefectRatio, 0.0))
	}
	return rs
}

func (e *engine) coolingRules(cs *hpxml.CoolingSystem) rules {
	ducted := cs.IsDucted()
	seer2Factor := func() float64 { return calc.SEER2Factor(ducted, cs.EquipmentType.Val(), false) }
	rs := rules{constant("is_shared_system", &cs.IsSharedSystem, false)}

	switch cs.CoolingSystemType {
	case hpxml.CoolingCentralAC:
		rs = append(rs,
			constant("equipment_type", &cs.EquipmentType, hpxml.EquipmentSplit),
			when(func() bool { return !cs.SEER2.IsSet() },
				fallible("annual_cooling_efficiency_seer", &cs.SEER, func() (float64, error) {
					return e.efficiencyByYear(cs.ID, cs.YearInstalled, "central air conditioner", "", "SEER")
				})))
	case hpxml.CoolingMiniSplit:
		rs = append(rs, requireOneOf(cs.ID, "annual_cooling_efficiency_seer", &cs.SEER, &cs.SEER2))
	case hpxml.CoolingRoomAC, hpxml.CoolingPTAC:
		rs = append(rs,
			when(func() bool { return cs.CEER.IsSet() },
				computed("cooling_efficiency_eer", &cs.EER, func() float64 { return calc.Round(calc.EERFromCEER(cs.CEER.Val()), 2) })),
			fallible("cooling_efficiency_eer", &cs.EER, func() (float64, error) {
				return e.efficiencyByYear(cs.ID, cs.YearInstalled, "room air conditioner", "", "EER")
			}),
			computed("cooling_efficiency_ceer", &cs.CEER, func() float64 { return calc.Round(calc.CEERFromEER(cs.EER.Val()), 2) }))
	}
	if cs.CoolingSystemType == hpxml.CoolingCentralAC || cs.CoolingSystemType == hpxml.CoolingMiniSplit {
		rs = append(rs, ratingPair("annual_cooling_efficiency_seer", "annual_cooling_efficiency_seer2", &cs.SEER, &cs.SEER2, seer2Factor)...)
		rs = append(rs, ratingPair("cooling_efficiency_eer", "cooling_efficiency_eer2", &cs.EER, &cs.EER2, seer2Factor)...)
		rs = append(rs,
			constant("charge_defect_ratio", &cs.ChargeDefectRatio, 0.0),
			constant("airflow_defect_ratio", &cs.AirflowDefectRatio, 0.0))
	}

	rs = append(rs,
		field("compressor_type", &cs.CompressorType, func() (hpxml.CompressorType, bool, error) {
			ct, ok := calc.CompressorType(cs.CoolingSystemType == hpxml.CoolingCentralAC,
				cs.CoolingSystemType == hpxml.CoolingMiniSplit, cs.SEER.Val())
			return ct, ok, nil
		}),
		field("cooling_shr", &cs.CoolingSHR, func() (float64, bool, error) {
			shr, ok := calc.CoolingSHR(cs.CoolingSystemType, cs.CompressorType.Val())
			return shr, ok, nil
		}))

	switch cs.CoolingSystemType {
	case hpxml.CoolingCentralAC:
		rs = append(rs, computed("fan_watts_per_cfm", &cs.FanWattsPerCFM, func() float64 {
			if hs := e.heatingSystem(cs.AttachedHeatingSystem); hs != nil && hs.FanWattsPerCFM.IsSet() {
				return hs.FanWattsPerCFM.Val()
			}
			for _, hs := range e.b.Systems.HeatingSystems {
				if ducted && hs.DistributionSystem == cs.DistributionSystem && hs.FanWattsPerCFM.IsSet() {
					return hs.FanWattsPerCFM.Val()
				}
			}
			return calc.CentralACWattsPerCFM(cs.SEER.Val())
		}))
	case hpxml.CoolingMiniSplit:
		rs = append(rs, constant("fan_watts_per_cfm", &cs.FanWattsPerCFM, calc.MiniSplitWattsPerCFM(ducted)))
	case hpxml.CoolingEvaporative:
		rs = append(rs, constant("fan_watts_per_cfm", &cs.FanWattsPerCFM, evapCoolerWattsPerCFM))
	}
	rs = append(rs, fanMotorRule(&cs.HVACCommon))

	if cs.IntegratedHeatingFuel.IsSet() {
		rs = append(rs, when(func() bool { return cs.IntegratedHeatingFuel.Val() == hpxml.FuelElectricity },
			constant("integrated_heating_system_efficiency_percent", &cs.IntegratedHeatingEff, electricResistanceFrac)))
	}
	return rs
}

func (e *engine) heatPumpRules(hp *hpxml.HeatPump) rules {
	ducted := hp.IsDucted()
	seer2Factor := func() float64 { return calc.SEER2Factor(ducted, hp.EquipmentType.Val(), true) }
	hspf2Factor := func() float64 { return calc.HSPF2Factor(ducted, hp.EquipmentType.Val()) }
	rs := rules{constant("is_shared_system", &hp.IsSharedSystem, false)}

	switch hp.HeatPumpType {
	case hpxml.HeatPumpAirToAir:
		rs = append(rs,
			constant("equipment_type", &hp.EquipmentType, hpxml.EquipmentSplit),
			when(func() bool { return !hp.SEER2.IsSet() },
				fallible("annual_cooling_efficiency_seer", &hp.SEER, func() (float64, error) {
					return e.efficiencyByYear(hp.ID, hp.YearInstalled, "air-to-air", "", "SEER")
				})),
			when(func() bool { return !hp.HSPF2.IsSet() },
				fallible("annual_heating_efficiency_hspf", &hp.HSPF, func() (float64, error) {
					return e.efficiencyByYear(hp.ID, hp.YearInstalled, "air-to-air", "", "HSPF")
				})))
	case hpxml.HeatPumpMiniSplit:
		rs = append(rs,
			requireOneOf(hp.ID, "annual_cooling_efficiency_seer", &hp.SEER, &hp.SEER2),
			requireOneOf(hp.ID, "annual_heating_efficiency_hspf", &hp.HSPF, &hp.HSPF2))
	case hpxml.HeatPumpPTHP, hpxml.HeatPumpRoomReversed:
		rs = append(rs, fallible("cooling_efficiency_eer", &hp.EER, func() (float64, error) {
			return e.efficiencyByYear(hp.ID, hp.YearInstalled, "room air conditioner", "", "EER")
		}))
	case hpxml.HeatPumpGroundToAir:
		rs = append(rs, constant("pump_watts_per_ton", &hp.PumpWattsPerTon, calc.GSHPPumpWattsPerTon))
	}
	if hp.HeatPumpType == hpxml.HeatPumpAirToAir || hp.HeatPumpType == hpxml.HeatPumpMiniSplit {
		rs = append(rs, ratingPair("annual_cooling_efficiency_seer", "annual_cooling_efficiency_seer2", &hp.SEER, &hp.SEER2, seer2Factor)...)
		rs = append(rs, ratingPair("cooling_efficiency_eer", "cooling_efficiency_eer2", &hp.EER, &hp.EER2, seer2Factor)...)
		rs = append(rs, ratingPair("annual_heating_efficiency_hspf", "annual_heating_efficiency_hspf2", &hp.HSPF, &hp.HSPF2, hspf2Factor)...)
	}

	rs = append(rs,
		field("compressor_type", &hp.CompressorType, func() (hpxml.CompressorType, bool, error) {
			ct, ok := calc.CompressorType(hp.HeatPumpType == hpxml.HeatPumpAirToAir,
				hp.HeatPumpType == hpxml.HeatPumpMiniSplit, hp.SEER.Val())
			return ct, ok, nil
		}),
		field("cooling_shr", &hp.CoolingSHR, func() (float64, bool, error) {
			shr, ok := calc.HeatPumpSHR(hp.HeatPumpType, hp.CompressorType.Val())
			return shr, ok, nil
		}))

	if hp.IsAirSource() {
		rs = append(rs, when(func() bool { return !hp.BackupSwitchoverTemp.IsSet() },
			computed("compressor_lockout_temp", &hp.CompressorLockoutTemp, func() float64 {
				switch {
				case hp.BackupType.IsSet() && hp.BackupFuel.IsSet() && hp.BackupFuel.Val() != hpxml.FuelElectricity:
					return dualFuelLockoutTemp
				case hp.CompressorType.Val() == hpxml.CompressorVariableSpeed:
					return variableSpeedLockout
				}
				return compressorLockoutTemp
			})))
	}
	if hp.BackupType.IsSet() {
		rs = append(rs, when(func() bool { return !hp.BackupSwitchoverTemp.IsSet() },
			constant("backup_heating_lockout_temp", &hp.BackupLockoutTemp, calc.BackupLockoutTemp)))
	}
	if hp.BackupType.Val() == hpxml.BackupIntegrated && hp.BackupFuel.Val() == hpxml.FuelElectricity {
		rs = append(rs, when(func() bool { return !hp.BackupAFUE.IsSet() },
			constant("backup_heating_efficiency_percent", &hp.BackupPercent, integratedBackupPct)))
	}

	switch hp.HeatPumpType {
	case hpxml.HeatPumpAirToAir, hpxml.HeatPumpMiniSplit, hpxml.HeatPumpGroundToAir:
		rs = append(rs, constant("charge_defect_ratio", &hp.ChargeDefectRatio, 0.0))
		if ducted || hp.HeatPumpType == hpxml.HeatPumpMiniSplit {
			rs = append(rs, constant("airflow_defect_ratio", &hp.AirflowDefectRatio, 0.0))
		}
	}
	switch hp.HeatPumpType {
	case hpxml.HeatPumpAirToAir:
		rs = append(rs, computed("fan_watts_per_cfm", &hp.FanWattsPerCFM, func() float64 { return calc.AirSourceHPWattsPerCFM(hp.HSPF.Val()) }))
	case hpxml.HeatPumpMiniSplit:
		rs = append(rs, constant("fan_watts_per_cfm", &hp.FanWattsPerCFM, calc.MiniSplitWattsPerCFM(ducted)))
	case hpxml.HeatPumpGroundToAir:
		rs = append(rs, computed("fan_watts_per_cfm", &hp.FanWattsPerCFM, func() float64 { return calc.GroundSourceHPWattsPerCFM(hp.COP.Val()) }))
	}
	return append(rs, fanMotorRule(&hp.HVACCommon))
}

// applyGeothermalLoops gives ground-source heat pumps without a loop one
// shared synthesized loop and fills the loop geometry. Bore count, bore
// length and loop flow need capacities and are filled after sizing.
func (e *engine) applyGeothermalLoops() error {
	sys := &e.b.Systems
	var synthetic *hpxml.GeothermalLoop
	for _, hp := range sys.HeatPumps {
		if hp.HeatPumpType != hpxml.HeatPumpGroundToAir || hp.GeothermalLoop != "" {
			continue
		}
		if synthetic == nil {
			synthetic = &hpxml.GeothermalLoop{ID: e.id("GeothermalLoop")}
			sys.GeothermalLoops = append(sys.GeothermalLoops, synthetic)
		}
		hp.GeothermalLoop = synthetic.ID
	}
	for _, l := range sys.GeothermalLoops {
		if err := geothermalLoopRules(l).apply(l.ID); err != nil {
			return err
		}
	}
	return nil
}

func geothermalLoopRules(l *hpxml.GeothermalLoop) rules {
	return rules{
		constant("loop_configuration", &l.LoopConfiguration, hpxml.GeothermalLoopVertical),
		constant("bore_spacing", &l.BoreholesSpacing, geoBoreSpacing),
		constant("bore_diameter", &l.BoreholesDiameter, geoBoreDiameter),
		constant("grout_type", &l.GroutType, hpxml.GroutStandard),
		computed("grout_conductivity", &l.GroutConductivity, func() float64 {
			if l.GroutType.Val() == hpxml.GroutThermallyEnhanced {
				return geoGroutEnhancedK
			}
			return geoGroutStandardK
		}),
		constant("pipe_type", &l.PipeType, hpxml.PipeStandard),
		computed("pipe_conductivity", &l.PipeConductivity, func() float64 {
			if l.PipeType.Val() == hpxml.PipeThermallyEnhanced {
				return geoPipeEnhancedK
			}
			return geoPipeStandardK
		}),
		constant("pipe_diameter", &l.PipeDiameter, geoPipeDiameter),
		computed("shank_spacing", &l.ShankSpacing, func() float64 {
			pipe, bore := l.PipeDiameter.Val(), l.BoreholesDiameter.Val()
			return calc.Round(pipe+(bore-2*pipe)/3, 3)
		}),
		constant("bore_config", &l.BoreConfig, hpxml.BoreholeRectangle),
	}
}

// applyHVACControl fills thermostat setpoints and seasons. Setpoints come
// from schedule files when those carry setpoint columns.
func (e *engine) applyHVACControl() error {
	hasFans := len(e.b.Lighting.CeilingFans) > 0
	for _, c := range e.b.Systems.HVACControls {
		rs := rules{
			when(func() bool { return !c.WeekdayHeatingSetpoints.IsSet() && !e.hasScheduleColumn(colHeatingSetpoint) },
				constant("setpoint_temp_heating_season", &c.HeatingSetpoint, calc.HeatingSetpoint)),
			when(func() bool { return !c.WeekdayCoolingSetpoints.IsSet() && !e.hasScheduleColumn(colCoolingSetpoint) },
				constant("setpoint_temp_cooling_season", &c.CoolingSetpoint, calc.CoolingSetpoint)),
			when(func() bool { return c.HeatingSetbackTemp.IsSet() },
				constant("setback_start_hour_heating", &c.HeatingSetbackStartHour, calc.HeatingSetbackStartHr)),
			when(func() bool { return c.CoolingSetupTemp.IsSet() },
				constant("setup_start_hour_cooling", &c.CoolingSetupStartHour, calc.CoolingSetupStartHr)),
			when(func() bool { return hasFans },
				constant("ceiling_fan_cooling_setpoint_temp_offset", &c.CeilingFanSetpointDelta, calc.CeilingFanSetpointOff)),
		}
		rs = append(rs, seasonRules("heating_season", &c.HeatingSeason)...)
		rs = append(rs, seasonRules("cooling_season", &c.CoolingSeason)...)
		if err := rs.apply(c.ID); err != nil {
			return err
		}
	}
	return nil
}

func seasonRules(name string, s *hpxml.Season) rules {
	return rules{
		constant(name+"_begin_month", &s.BeginMonth, 1),
		constant(name+"_begin_day", &s.BeginDay, 1),
		constant(name+"_end_month", &s.EndMonth, 12),
		constant(name+"_end_day", &s.EndDay, 31),
	}
}
