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

type VentilationFan struct {
	ID                       string                   `yaml:"id"`
	FanType                  Opt[MechVentType]        `yaml:"fan_type,omitempty"`
	Quantity                 Opt[int]                 `yaml:"count,omitempty"`
	RatedFlowRate            Opt[float64]             `yaml:"rated_flow_rate,omitempty"`
	TestedFlowRate           Opt[float64]             `yaml:"tested_flow_rate,omitempty"`
	CalculatedFlowRate       Opt[float64]             `yaml:"calculated_flow_rate,omitempty"`
	DeliveredVentilation     Opt[float64]             `yaml:"delivered_ventilation,omitempty"`
	HoursInOperation         Opt[float64]             `yaml:"hours_in_operation,omitempty"`
	FanPower                 Opt[float64]             `yaml:"fan_power,omitempty"`
	FanLocation              Location                 `yaml:"fan_location,omitempty"`
	StartHour                Opt[int]                 `yaml:"start_hour,omitempty"`
	IsSharedSystem           Opt[bool]                `yaml:"is_shared_system,omitempty"`
	UsedForWholeBuilding     bool                     `yaml:"used_for_whole_building_ventilation,omitempty"`
	UsedForLocal             bool                     `yaml:"used_for_local_ventilation,omitempty"`
	UsedForSeasonalCooling   bool                     `yaml:"used_for_seasonal_cooling_load_reduction,omitempty"`
	SensibleRecoveryEff      Opt[float64]             `yaml:"sensible_recovery_efficiency,omitempty"`
	TotalRecoveryEff         Opt[float64]             `yaml:"total_recovery_efficiency,omitempty"`
	CFISAddlRuntimeMode      Opt[CFISAddlRuntimeMode] `yaml:"cfis_addtl_runtime_operating_mode,omitempty"`
	CFISAirflowFraction      Opt[float64]             `yaml:"cfis_vent_mode_airflow_fraction,omitempty"`
	CFISHasOutdoorAirControl Opt[bool]                `yaml:"cfis_has_outdoor_air_control,omitempty"`
	CFISSupplementalFanPower Opt[float64]             `yaml:"cfis_supplemental_fan_power,omitempty"`
	CFISBlowerFanPower       Opt[float64]             `yaml:"cfis_blower_fan_power_watts_per_cfm,omitempty"`
	AttachedToDistribution   string                   `yaml:"attached_to_hvac_distribution_system,omitempty"`
}

// FlowRate returns the best available flow rate, tested first.
func (f *VentilationFan) FlowRate() (float64, bool) {
	for _, o := range []Opt[float64]{f.TestedFlowRate, f.DeliveredVentilation, f.CalculatedFlowRate, f.RatedFlowRate} {
		if v, ok := o.Get(); ok {
			return v, true
		}
	}
	return 0, false
}

func (f *VentilationFan) HasFlowRate() bool {
	_, ok := f.FlowRate()
	return ok
}

type WaterHeating struct {
	Systems                 []*WaterHeatingSystem   `yaml:"water_heating_systems,omitempty"`
	Distributions           []*HotWaterDistribution `yaml:"hot_water_distributions,omitempty"`
	Fixtures                []*WaterFixture         `yaml:"water_fixtures,omitempty"`
	FixturesUsageMultiplier Opt[float64]            `yaml:"water_fixtures_usage_multiplier,omitempty"`
	FixturesSchedule        Schedule                `yaml:"water_fixtures_schedule,omitempty"`
}

type WaterHeatingSystem struct {
	ID                    string                   `yaml:"id"`
	WaterHeaterType       WaterHeaterType          `yaml:"water_heater_type"`
	FuelType              FuelType                 `yaml:"fuel_type,omitempty"`
	Location              Opt[Location]            `yaml:"location,omitempty"`
	IsSharedSystem        Opt[bool]                `yaml:"is_shared_system,omitempty"`
	YearInstalled         Opt[int]                 `yaml:"year_installed,omitempty"`
	TankVolume            Opt[float64]             `yaml:"tank_volume,omitempty"`
	HeatingCapacity       Opt[float64]             `yaml:"heating_capacity,omitempty"`
	EnergyFactor          Opt[float64]             `yaml:"energy_factor,omitempty"`
	UniformEnergyFactor   Opt[float64]             `yaml:"uniform_energy_factor,omitempty"`
	FirstHourRating       Opt[float64]             `yaml:"first_hour_rating,omitempty"`
	UsageBin              Opt[WaterHeaterUsageBin] `yaml:"usage_bin,omitempty"`
	RecoveryEfficiency    Opt[float64]             `yaml:"recovery_efficiency,omitempty"`
	StandbyLoss           Opt[float64]             `yaml:"standby_loss_value,omitempty"`
	Temperature           Opt[float64]             `yaml:"hot_water_temperature,omitempty"`
	PerformanceAdjustment Opt[float64]             `yaml:"performance_adjustment,omitempty"`
	TankModelType         Opt[TankModelType]       `yaml:"tank_model_type,omitempty"`
	OperatingMode         Opt[HPWHOperatingMode]   `yaml:"hpwh_operating_mode,omitempty"`
	FractionDHWLoad       float64                  `yaml:"fraction_dhw_load_served"`
	RelatedHVACSystem     string                   `yaml:"related_hvac_system,omitempty"`
}

type HotWaterDistribution struct {
	ID                       string                   `yaml:"id"`
	SystemType               HotWaterDistributionType `yaml:"system_type"`
	PipeR                    Opt[float64]             `yaml:"pipe_r_value,omitempty"`
	StandardPipingLength     Opt[float64]             `yaml:"standard_piping_length,omitempty"`
	RecirculationControl     RecirculationControl     `yaml:"recirculation_control_type,omitempty"`
	RecircPipingLength       Opt[float64]             `yaml:"recirculation_piping_length,omitempty"`
	RecircBranchPipingLength Opt[float64]             `yaml:"recirculation_branch_piping_length,omitempty"`
	RecircPumpPower          Opt[float64]             `yaml:"recirculation_pump_power,omitempty"`
	HasSharedRecirculation   bool                     `yaml:"has_shared_recirculation,omitempty"`
	SharedRecircPumpPower    Opt[float64]             `yaml:"shared_recirculation_pump_power,omitempty"`
}

type WaterFixture struct {
	ID          string       `yaml:"id"`
	FixtureType string       `yaml:"water_fixture_type"`
	LowFlow     bool         `yaml:"low_flow,omitempty"`
	FlowRate    Opt[float64] `yaml:"flow_rate,omitempty"`
	Count       Opt[int]     `yaml:"count,omitempty"`
}

type SolarThermal struct {
	ID                   string           `yaml:"id"`
	SystemType           string           `yaml:"system_type"`
	CollectorArea        Opt[float64]     `yaml:"collector_area,omitempty"`
	CollectorAzimuth     Opt[int]         `yaml:"collector_azimuth,omitempty"`
	CollectorOrientation Opt[Orientation] `yaml:"collector_orientation,omitempty"`
	CollectorTilt        float64          `yaml:"collector_tilt,omitempty"`
	StorageVolume        Opt[float64]     `yaml:"storage_volume,omitempty"`
	SolarFraction        Opt[float64]     `yaml:"solar_fraction,omitempty"`
	WaterHeatingSystem   string           `yaml:"water_heating_system,omitempty"`
}

type PVSystem struct {
	ID                      string            `yaml:"id"`
	Location                Opt[PVLocation]   `yaml:"location,omitempty"`
	ModuleType              Opt[PVModuleType] `yaml:"module_type,omitempty"`
	Tracking                Opt[PVTracking]   `yaml:"tracking,omitempty"`
	ArrayAzimuth            Opt[int]          `yaml:"array_azimuth,omitempty"`
	ArrayOrientation        Opt[Orientation]  `yaml:"array_orientation,omitempty"`
	ArrayTilt               float64           `yaml:"array_tilt"`
	MaxPowerOutput          float64           `yaml:"max_power_output"`
	SystemLossesFraction    Opt[float64]      `yaml:"system_losses_fraction,omitempty"`
	YearModulesManufactured Opt[int]          `yaml:"year_modules_manufactured,omitempty"`
	IsSharedSystem          Opt[bool]         `yaml:"is_shared_system,omitempty"`
	Inverter                string            `yaml:"inverter,omitempty"`
}

type Inverter struct {
	ID         string       `yaml:"id"`
	Efficiency Opt[float64] `yaml:"inverter_efficiency,omitempty"`
}

type Generator struct {
	ID                    string    `yaml:"id"`
	FuelType              FuelType  `yaml:"fuel_type"`
	AnnualConsumptionKBtu float64   `yaml:"annual_consumption_kbtu"`
	AnnualOutputKwh       float64   `yaml:"annual_output_kwh"`
	IsSharedSystem        Opt[bool] `yaml:"is_shared_system,omitempty"`
}

// BatteryCapacity holds the capacity fields batteries and vehicles share.
type BatteryCapacity struct {
	LifetimeModel       Opt[BatteryLifetimeModel] `yaml:"lifetime_model,omitempty"`
	NominalCapacityKwh  Opt[float64]              `yaml:"nominal_capacity_kwh,omitempty"`
	NominalCapacityAh   Opt[float64]              `yaml:"nominal_capacity_ah,omitempty"`
	UsableCapacityKwh   Opt[float64]              `yaml:"usable_capacity_kwh,omitempty"`
	UsableCapacityAh    Opt[float64]              `yaml:"usable_capacity_ah,omitempty"`
	NominalVoltage      Opt[float64]              `yaml:"nominal_voltage,omitempty"`
	RoundTripEfficiency Opt[float64]              `yaml:"round_trip_efficiency,omitempty"`
}

type Battery struct {
	ID               string        `yaml:"id"`
	Location         Opt[Location] `yaml:"location,omitempty"`
	RatedPowerOutput Opt[float64]  `yaml:"rated_power_output,omitempty"`
	IsSharedSystem   Opt[bool]     `yaml:"is_shared_system,omitempty"`
	BatteryCapacity  `yaml:",inline"`
}

type Vehicle struct {
	ID                  string       `yaml:"id"`
	VehicleType         string       `yaml:"vehicle_type"`
	MilesPerYear        Opt[float64] `yaml:"miles_per_year,omitempty"`
	HoursPerWeek        Opt[float64] `yaml:"hours_per_week,omitempty"`
	FuelEconomyKwhMile  Opt[float64] `yaml:"fuel_economy_combined_kwh_per_mile,omitempty"`
	FractionChargedHome Opt[float64] `yaml:"fraction_charged_home,omitempty"`
	EVCharger           string       `yaml:"ev_charger,omitempty"`
	BatteryCapacity     `yaml:",inline"`
}

type EVCharger struct {
	ID            string        `yaml:"id"`
	Location      Opt[Location] `yaml:"location,omitempty"`
	ChargingLevel Opt[int]      `yaml:"charging_level,omitempty"`
	ChargingPower Opt[float64]  `yaml:"charging_power,omitempty"`
}
