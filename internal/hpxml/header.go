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

// Header holds settings shared by every Building of a Document.
type Header struct {
	ERICalculationVersion    Opt[string]                   `yaml:"eri_calculation_version,omitempty"`
	OccupancyCalculationType Opt[OccupancyCalculationType] `yaml:"occupancy_calculation_type,omitempty"`
	Timestep                 Opt[int]                      `yaml:"timestep,omitempty"`
	SimBeginMonth            Opt[int]                      `yaml:"sim_begin_month,omitempty"`
	SimBeginDay              Opt[int]                      `yaml:"sim_begin_day,omitempty"`
	SimEndMonth              Opt[int]                      `yaml:"sim_end_month,omitempty"`
	SimEndDay                Opt[int]                      `yaml:"sim_end_day,omitempty"`
	SimCalendarYear          Opt[int]                      `yaml:"sim_calendar_year,omitempty"`
	TemperatureCapacitance   Opt[float64]                  `yaml:"temperature_capacitance_multiplier,omitempty"`
	GroundToAirModelType     Opt[GSHPModelType]            `yaml:"ground_to_air_heat_pump_model_type,omitempty"`

	EmissionsScenarios   []*EmissionsScenario   `yaml:"emissions_scenarios,omitempty"`
	UtilityBillScenarios []*UtilityBillScenario `yaml:"utility_bill_scenarios,omitempty"`

	PanelCalculationTypes []PanelCalculationType `yaml:"service_feeders_load_calculation_types,omitempty"`
}

// FuelFactor is a (units, value) pair of an emissions scenario.
type FuelFactor struct {
	Units Opt[Units]   `yaml:"units,omitempty"`
	Value Opt[float64] `yaml:"value,omitempty"`
}

type EmissionsScenario struct {
	Name          string        `yaml:"name"`
	EmissionsType EmissionsType `yaml:"emissions_type"`

	ElecUnits                Opt[Units]   `yaml:"elec_units,omitempty"`
	ElecValue                Opt[float64] `yaml:"elec_value,omitempty"`
	ElecScheduleFilePath     Opt[string]  `yaml:"elec_schedule_filepath,omitempty"`
	ElecScheduleHeaderRows   Opt[int]     `yaml:"elec_schedule_number_of_header_rows,omitempty"`
	ElecScheduleColumnNumber Opt[int]     `yaml:"elec_schedule_column_number,omitempty"`

	NaturalGas  FuelFactor `yaml:"natural_gas,omitempty"`
	Propane     FuelFactor `yaml:"propane,omitempty"`
	FuelOil     FuelFactor `yaml:"fuel_oil,omitempty"`
	Coal        FuelFactor `yaml:"coal,omitempty"`
	Wood        FuelFactor `yaml:"wood,omitempty"`
	WoodPellets FuelFactor `yaml:"wood_pellets,omitempty"`
}

// FuelRate is the fixed and marginal price of one fuel in a bill scenario.
type FuelRate struct {
	FixedCharge  Opt[float64] `yaml:"fixed_charge,omitempty"`
	MarginalRate Opt[float64] `yaml:"marginal_rate,omitempty"`
}

type UtilityBillScenario struct {
	Name string `yaml:"name"`

	Electricity FuelRate `yaml:"electricity,omitempty"`
	NaturalGas  FuelRate `yaml:"natural_gas,omitempty"`
	Propane     FuelRate `yaml:"propane,omitempty"`
	FuelOil     FuelRate `yaml:"fuel_oil,omitempty"`
	Coal        FuelRate `yaml:"coal,omitempty"`
	Wood        FuelRate `yaml:"wood,omitempty"`
	WoodPellets FuelRate `yaml:"wood_pellets,omitempty"`

	PVCompensationType          Opt[PVCompensationType]     `yaml:"pv_compensation_type,omitempty"`
	PVSellbackRateType          Opt[ExcessSellbackRateType] `yaml:"pv_net_metering_annual_excess_sellback_rate_type,omitempty"`
	PVSellbackRate              Opt[float64]                `yaml:"pv_net_metering_annual_excess_sellback_rate,omitempty"`
	PVFeedInTariffRate          Opt[float64]                `yaml:"pv_feed_in_tariff_rate,omitempty"`
	PVMonthlyGridConnectionFee  Opt[float64]                `yaml:"pv_monthly_grid_connection_fee_dollars,omitempty"`
	PVMonthlyGridConnectionFeeW Opt[float64]                `yaml:"pv_monthly_grid_connection_fee_dollars_per_kw,omitempty"`
}
