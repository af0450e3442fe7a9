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

package hpxml

type Systems struct {
	HeatingSystems    []*HeatingSystem    `yaml:"heating_systems,omitempty"`
	CoolingSystems    []*CoolingSystem    `yaml:"cooling_systems,omitempty"`
	HeatPumps         []*HeatPump         `yaml:"heat_pumps,omitempty"`
	GeothermalLoops   []*GeothermalLoop   `yaml:"geothermal_loops,omitempty"`
	HVACControls      []*HVACControl      `yaml:"hvac_controls,omitempty"`
	HVACDistributions []*HVACDistribution `yaml:"hvac_distributions,omitempty"`
	VentilationFans   []*VentilationFan   `yaml:"ventilation_fans,omitempty"`
	WaterHeating      WaterHeating        `yaml:"water_heating,omitempty"`
	SolarThermal      []*SolarThermal     `yaml:"solar_thermal_systems,omitempty"`
	PVSystems         []*PVSystem         `yaml:"pv_systems,omitempty"`
	Inverters         []*Inverter         `yaml:"inverters,omitempty"`
	Generators        []*Generator        `yaml:"generators,omitempty"`
	Batteries         []*Battery          `yaml:"batteries,omitempty"`
	Vehicles          []*Vehicle          `yaml:"vehicles,omitempty"`
	EVChargers        []*EVCharger        `yaml:"electric_vehicle_chargers,omitempty"`
	ElectricPanels    []*ElectricPanel    `yaml:"electric_panels,omitempty"`
}

// HVACCommon holds what heating systems, cooling systems and heat pumps share.
type HVACCommon struct {
	ID                 string            `yaml:"id"`
	DistributionSystem string            `yaml:"distribution_system,omitempty"`
	AttachedToZone     string            `yaml:"attached_to_zone,omitempty"`
	YearInstalled      Opt[int]          `yaml:"year_installed,omitempty"`
	Location           Opt[Location]     `yaml:"location,omitempty"`
	IsSharedSystem     Opt[bool]         `yaml:"is_shared_system,omitempty"`
	FanWattsPerCFM     Opt[float64]      `yaml:"fan_watts_per_cfm,omitempty"`
	FanMotorType       Opt[FanMotorType] `yaml:"fan_motor_type,omitempty"`
	AirflowDefectRatio Opt[float64]      `yaml:"airflow_defect_ratio,omitempty"`
}

// IsDucted reports systems attached to a distribution system.
func (c *HVACCommon) IsDucted() bool {
	return c.DistributionSystem != ""
}

type HeatingSystem struct {
	HVACCommon        `yaml:",inline"`
	HeatingSystemType HeatingSystemType `yaml:"heating_system_type"`
	Fuel              FuelType          `yaml:"heating_system_fuel"`
	HeatingCapacity   Opt[float64]      `yaml:"heating_capacity,omitempty"`
	AFUE              Opt[float64]      `yaml:"annual_heating_efficiency_afue,omitempty"`
	Percent           Opt[float64]      `yaml:"annual_heating_efficiency_percent,omitempty"`
	FractionHeatLoad  float64           `yaml:"fraction_heat_load_served"`
	ElectricAuxEnergy Opt[float64]      `yaml:"electric_auxiliary_energy,omitempty"`
	FanWatts          Opt[float64]      `yaml:"fan_watts,omitempty"`
	PilotLight        Opt[bool]         `yaml:"pilot_light,omitempty"`
	PilotLightBtuh    Opt[float64]      `yaml:"pilot_light_btuh,omitempty"`
	HeatingAirflowCFM Opt[float64]      `yaml:"heating_airflow_cfm,omitempty"`
	SharedLoopWatts   Opt[float64]      `yaml:"shared_loop_watts,omitempty"`
	FanCoilWatts      Opt[float64]      `yaml:"fan_coil_watts,omitempty"`
	UnitsServed       Opt[int]          `yaml:"number_of_units_served,omitempty"`
}

// Efficiency returns AFUE or percent efficiency, whichever is set.
func (h *HeatingSystem) Efficiency() float64 {
	if v, ok := h.AFUE.Get(); ok {
		return v
	}
	return h.Percent.Val()
}

type CoolingSystem struct {
	HVACCommon            `yaml:",inline"`
	CoolingSystemType     CoolingSystemType   `yaml:"cooling_system_type"`
	CoolingCapacity       Opt[float64]        `yaml:"cooling_capacity,omitempty"`
	FractionCoolLoad      float64             `yaml:"fraction_cool_load_served"`
	SEER                  Opt[float64]        `yaml:"annual_cooling_efficiency_seer,omitempty"`
	SEER2                 Opt[float64]        `yaml:"annual_cooling_efficiency_seer2,omitempty"`
	EER                   Opt[float64]        `yaml:"cooling_efficiency_eer,omitempty"`
	EER2                  Opt[float64]        `yaml:"cooling_efficiency_eer2,omitempty"`
	CEER                  Opt[float64]        `yaml:"cooling_efficiency_ceer,omitempty"`
	CompressorType        Opt[CompressorType] `yaml:"compressor_type,omitempty"`
	CoolingSHR            Opt[float64]        `yaml:"cooling_shr,omitempty"`
	ChargeDefectRatio     Opt[float64]        `yaml:"charge_defect_ratio,omitempty"`
	CrankcaseHeaterWatts  Opt[float64]        `yaml:"crankcase_heater_watts,omitempty"`
	EquipmentType         Opt[EquipmentType]  `yaml:"equipment_type,omitempty"`
	CoolingAirflowCFM     Opt[float64]        `yaml:"cooling_airflow_cfm,omitempty"`
	AttachedHeatingSystem string              `yaml:"attached_heating_system,omitempty"`
	IntegratedHeatingFuel Opt[FuelType]       `yaml:"integrated_heating_system_fuel,omitempty"`
	IntegratedHeatingCap  Opt[float64]        `yaml:"integrated_heating_system_capacity,omitempty"`
	IntegratedHeatingEff  Opt[float64]        `yaml:"integrated_heating_system_efficiency_percent,omitempty"`
	CoolingPerformance    []*PerformanceDatum `yaml:"cooling_detailed_performance_data,omitempty"`
}

type HeatPump struct {
	HVACCommon            `yaml:",inline"`
	HeatPumpType          HeatPumpType        `yaml:"heat_pump_type"`
	HeatingCapacity       Opt[float64]        `yaml:"heating_capacity,omitempty"`
	HeatingCapacity17F    Opt[float64]        `yaml:"heating_capacity_17F,omitempty"`
	HeatingCapFraction17F Opt[float64]        `yaml:"heating_capacity_fraction_17F,omitempty"`
	CoolingCapacity       Opt[float64]        `yaml:"cooling_capacity,omitempty"`
	FractionHeatLoad      float64             `yaml:"fraction_heat_load_served"`
	FractionCoolLoad      float64             `yaml:"fraction_cool_load_served"`
	CompressorType        Opt[CompressorType] `yaml:"compressor_type,omitempty"`
	CompressorLockoutTemp Opt[float64]        `yaml:"compressor_lockout_temp,omitempty"`
	SEER                  Opt[float64]        `yaml:"annual_cooling_efficiency_seer,omitempty"`
	SEER2                 Opt[float64]        `yaml:"annual_cooling_efficiency_seer2,omitempty"`
	EER                   Opt[float64]        `yaml:"cooling_efficiency_eer,omitempty"`
	EER2                  Opt[float64]        `yaml:"cooling_efficiency_eer2,omitempty"`
	HSPF                  Opt[float64]        `yaml:"annual_heating_efficiency_hspf,omitempty"`
	HSPF2                 Opt[float64]        `yaml:"annual_heating_efficiency_hspf2,omitempty"`
	COP                   Opt[float64]        `yaml:"heating_efficiency_cop,omitempty"`
	CoolingSHR            Opt[float64]        `yaml:"cooling_shr,omitempty"`
	PumpWattsPerTon       Opt[float64]        `yaml:"pump_watts_per_ton,omitempty"`
	ChargeDefectRatio     Opt[float64]        `yaml:"charge_defect_ratio,omitempty"`
	CrankcaseHeaterWatts  Opt[float64]        `yaml:"crankcase_heater_watts,omitempty"`
	EquipmentType         Opt[EquipmentType]  `yaml:"equipment_type,omitempty"`
	HeatingAirflowCFM     Opt[float64]        `yaml:"heating_airflow_cfm,omitempty"`
	CoolingAirflowCFM     Opt[float64]        `yaml:"cooling_airflow_cfm,omitempty"`
	GeothermalLoop        string              `yaml:"geothermal_loop,omitempty"`

	BackupType           Opt[BackupType] `yaml:"backup_type,omitempty"`
	BackupSystem         string          `yaml:"backup_system,omitempty"`
	BackupFuel           Opt[FuelType]   `yaml:"backup_heating_fuel,omitempty"`
	BackupAFUE           Opt[float64]    `yaml:"backup_annual_heating_efficiency_afue,omitempty"`
	BackupPercent        Opt[float64]    `yaml:"backup_heating_efficiency_percent,omitempty"`
	BackupCapacity       Opt[float64]    `yaml:"backup_heating_capacity,omitempty"`
	BackupLockoutTemp    Opt[float64]    `yaml:"backup_heating_lockout_temp,omitempty"`
	BackupSwitchoverTemp Opt[float64]    `yaml:"backup_heating_switchover_temp,omitempty"`

	HeatingPerformance []*PerformanceDatum `yaml:"heating_detailed_performance_data,omitempty"`
	CoolingPerformance []*PerformanceDatum `yaml:"cooling_detailed_performance_data,omitempty"`
}

// IsAirSource reports heat pumps whose source is outdoor air.
func (hp *HeatPump) IsAirSource() bool {
	switch hp.HeatPumpType {
	case HeatPumpAirToAir, HeatPumpMiniSplit, HeatPumpPTHP, HeatPumpRoomReversed:
		return true
	}
	return false
}

// PerformanceDatum is one point of a capacity/efficiency performance map.
type PerformanceDatum struct {
	OutdoorTemperature  float64             `yaml:"outdoor_temperature"`
	CapacityDescription CapacityDescription `yaml:"capacity_description"`
	Capacity            Opt[float64]        `yaml:"capacity,omitempty"`
	CapacityFraction    Opt[float64]        `yaml:"capacity_fraction_of_nominal,omitempty"`
	Efficiency          Opt[float64]        `yaml:"efficiency_cop,omitempty"`
}

// IsDefaulted reports points synthesized by the engine.
func (d *PerformanceDatum) IsDefaulted() bool {
	return d.Capacity.IsDefaulted() && d.Efficiency.IsDefaulted()
}

type GeothermalLoop struct {
	ID                string                    `yaml:"id"`
	LoopConfiguration Opt[GeothermalLoopConfig] `yaml:"loop_configuration,omitempty"`
	LoopFlow          Opt[float64]              `yaml:"loop_flow,omitempty"`
	BoreholesCount    Opt[int]                  `yaml:"num_bore_holes,omitempty"`
	BoreholesLength   Opt[float64]              `yaml:"bore_length,omitempty"`
	BoreholesSpacing  Opt[float64]              `yaml:"bore_spacing,omitempty"`
	BoreholesDiameter Opt[float64]              `yaml:"bore_diameter,omitempty"`
	GroutType         Opt[GroutType]            `yaml:"grout_type,omitempty"`
	GroutConductivity Opt[float64]              `yaml:"grout_conductivity,omitempty"`
	PipeType          Opt[PipeType]             `yaml:"pipe_type,omitempty"`
	PipeConductivity  Opt[float64]              `yaml:"pipe_conductivity,omitempty"`
	PipeDiameter      Opt[float64]              `yaml:"pipe_diameter,omitempty"`
	ShankSpacing      Opt[float64]              `yaml:"shank_spacing,omitempty"`
	BoreConfig        Opt[BoreholeConfig]       `yaml:"bore_config,omitempty"`
}

// Season is a begin/end date pair.
type Season struct {
	BeginMonth Opt[int] `yaml:"begin_month,omitempty"`
	BeginDay   Opt[int] `yaml:"begin_day,omitempty"`
	EndMonth   Opt[int] `yaml:"end_month,omitempty"`
	EndDay     Opt[int] `yaml:"end_day,omitempty"`
}

// IsComplete reports whether all four fields are set.
func (s *Season) IsComplete() bool {
	return s.BeginMonth.IsSet() && s.BeginDay.IsSet() && s.EndMonth.IsSet() && s.EndDay.IsSet()
}

type HVACControl struct {
	ID                      string       `yaml:"id"`
	HeatingSetpoint         Opt[float64] `yaml:"setpoint_temp_heating_season,omitempty"`
	CoolingSetpoint         Opt[float64] `yaml:"setpoint_temp_cooling_season,omitempty"`
	HeatingSetbackTemp      Opt[float64] `yaml:"setback_temp_heating_season,omitempty"`
	HeatingSetbackHours     Opt[float64] `yaml:"total_setback_hours_per_week_heating,omitempty"`
	HeatingSetbackStartHour Opt[int]     `yaml:"setback_start_hour_heating,omitempty"`
	CoolingSetupTemp        Opt[float64] `yaml:"setup_temp_cooling_season,omitempty"`
	CoolingSetupHours       Opt[float64] `yaml:"total_setup_hours_per_week_cooling,omitempty"`
	CoolingSetupStartHour   Opt[int]     `yaml:"setup_start_hour_cooling,omitempty"`
	WeekdayHeatingSetpoints Opt[string]  `yaml:"weekday_setpoint_temps_heating_season,omitempty"`
	WeekendHeatingSetpoints Opt[string]  `yaml:"weekend_setpoint_temps_heating_season,omitempty"`
	WeekdayCoolingSetpoints Opt[string]  `yaml:"weekday_setpoint_temps_cooling_season,omitempty"`
	WeekendCoolingSetpoints Opt[string]  `yaml:"weekend_setpoint_temps_cooling_season,omitempty"`
	CeilingFanSetpointDelta Opt[float64] `yaml:"ceiling_fan_cooling_setpoint_temp_offset,omitempty"`
	HeatingSeason           Season       `yaml:"heating_season,omitempty"`
	CoolingSeason           Season       `yaml:"cooling_season,omitempty"`
}

type DuctLeakage struct {
	DuctType DuctType `yaml:"duct_type"`
	Units    Units    `yaml:"units"`
	Value    float64  `yaml:"value"`
}

type Duct struct {
	ID                    string               `yaml:"id,omitempty"`
	DuctType              DuctType             `yaml:"duct_type"`
	InsulationR           Opt[float64]         `yaml:"duct_insulation_r_value,omitempty"`
	BuriedLevel           Opt[DuctBuriedLevel] `yaml:"duct_buried_insulation_level,omitempty"`
	EffectiveR            Opt[float64]         `yaml:"duct_effective_r_value,omitempty"`
	Location              Opt[Location]        `yaml:"duct_location,omitempty"`
	SurfaceArea           Opt[float64]         `yaml:"duct_surface_area,omitempty"`
	FractionArea          Opt[float64]         `yaml:"duct_fraction_area,omitempty"`
	SurfaceAreaMultiplier Opt[float64]         `yaml:"duct_surface_area_multiplier,omitempty"`
	Shape                 Opt[DuctShape]       `yaml:"duct_shape,omitempty"`
	FractionRectangular   Opt[float64]         `yaml:"duct_fraction_rectangular,omitempty"`
}

type HVACDistribution struct {
	ID                         string                   `yaml:"id"`
	DistributionSystemType     DistributionSystemType   `yaml:"distribution_system_type"`
	AirDistributionType        Opt[AirDistributionType] `yaml:"air_distribution_type,omitempty"`
	ConditionedFloorAreaServed Opt[float64]             `yaml:"conditioned_floor_area_served,omitempty"`
	NumberOfReturnRegisters    Opt[int]                 `yaml:"number_of_return_registers,omitempty"`
	AnnualHeatingDSE           Opt[float64]             `yaml:"annual_heating_dse,omitempty"`
	AnnualCoolingDSE           Opt[float64]             `yaml:"annual_cooling_dse,omitempty"`
	BlowerFanHeatBtuh          Opt[float64]             `yaml:"manualj_blower_fan_heat_btuh,omitempty"`
	DuctLeakages               []*DuctLeakage           `yaml:"duct_leakage_measurements,omitempty"`
	Ducts                      []*Duct                  `yaml:"ducts,omitempty"`
}

// DuctsOfType returns the ducts with the given type.
func (d *HVACDistribution) DuctsOfType(t DuctType) []*Duct {
	var ds []*Duct
	for _, duct := range d.Ducts {
		if duct.DuctType == t {
			ds = append(ds, duct)
		}
	}
	return ds
}
