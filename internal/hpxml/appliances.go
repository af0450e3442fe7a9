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

type Appliances struct {
	ClothesWashers []*ClothesWasher `yaml:"clothes_washers,omitempty"`
	ClothesDryers  []*ClothesDryer  `yaml:"clothes_dryers,omitempty"`
	Dishwashers    []*Dishwasher    `yaml:"dishwashers,omitempty"`
	Refrigerators  []*Refrigerator  `yaml:"refrigerators,omitempty"`
	Freezers       []*Freezer       `yaml:"freezers,omitempty"`
	Dehumidifiers  []*Dehumidifier  `yaml:"dehumidifiers,omitempty"`
	CookingRanges  []*CookingRange  `yaml:"cooking_ranges,omitempty"`
	Ovens          []*Oven          `yaml:"ovens,omitempty"`
}

// ApplianceCommon holds what every plug-in appliance shares.
type ApplianceCommon struct {
	ID              string        `yaml:"id"`
	Location        Opt[Location] `yaml:"location,omitempty"`
	UsageMultiplier Opt[float64]  `yaml:"usage_multiplier,omitempty"`
	Schedule        `yaml:",inline"`
}

// EnergyGuideLabel holds the label inputs of washers and dishwashers.
type EnergyGuideLabel struct {
	RatedAnnualKwh     Opt[float64] `yaml:"rated_annual_kwh,omitempty"`
	LabelElectricRate  Opt[float64] `yaml:"label_electric_rate,omitempty"`
	LabelGasRate       Opt[float64] `yaml:"label_gas_rate,omitempty"`
	LabelAnnualGasCost Opt[float64] `yaml:"label_annual_gas_cost,omitempty"`
	LabelUsage         Opt[float64] `yaml:"label_usage,omitempty"`
}

type ClothesWasher struct {
	ApplianceCommon   `yaml:",inline"`
	EnergyGuideLabel  `yaml:",inline"`
	IsSharedAppliance Opt[bool]    `yaml:"is_shared_appliance,omitempty"`
	IMEF              Opt[float64] `yaml:"integrated_modified_energy_factor,omitempty"`
	MEF               Opt[float64] `yaml:"modified_energy_factor,omitempty"`
	Capacity          Opt[float64] `yaml:"capacity,omitempty"`
}

type ClothesDryer struct {
	ApplianceCommon   `yaml:",inline"`
	FuelType          FuelType              `yaml:"fuel_type"`
	DryingMethod      Opt[DryingMethod]     `yaml:"drying_method,omitempty"`
	IsSharedAppliance Opt[bool]             `yaml:"is_shared_appliance,omitempty"`
	CEF               Opt[float64]          `yaml:"combined_energy_factor,omitempty"`
	EF                Opt[float64]          `yaml:"energy_factor,omitempty"`
	ControlType       Opt[DryerControlType] `yaml:"control_type,omitempty"`
	IsVented          Opt[bool]             `yaml:"is_vented,omitempty"`
	VentedFlowRate    Opt[float64]          `yaml:"vented_flow_rate,omitempty"`
}

type Dishwasher struct {
	ApplianceCommon      `yaml:",inline"`
	EnergyGuideLabel     `yaml:",inline"`
	IsSharedAppliance    Opt[bool]    `yaml:"is_shared_appliance,omitempty"`
	EnergyFactor         Opt[float64] `yaml:"energy_factor,omitempty"`
	PlaceSettingCapacity Opt[int]     `yaml:"place_setting_capacity,omitempty"`
}

type Refrigerator struct {
	ApplianceCommon  `yaml:",inline"`
	RatedAnnualKwh   Opt[float64] `yaml:"rated_annual_kwh,omitempty"`
	PrimaryIndicator Opt[bool]    `yaml:"primary_indicator,omitempty"`
}

type Freezer struct {
	ApplianceCommon `yaml:",inline"`
	RatedAnnualKwh Opt[float64] `yaml:"rated_annual_kwh,omitempty"`
}

type Dehumidifier struct {
	ID                 string       `yaml:"id"`
	Type               string       `yaml:"type"`
	Location           Location     `yaml:"location"`
	Capacity           float64      `yaml:"capacity"`
	EnergyFactor       Opt[float64] `yaml:"energy_factor,omitempty"`
	IntegratedEF       Opt[float64] `yaml:"integrated_energy_factor,omitempty"`
	RHSetpoint         float64      `yaml:"rh_setpoint"`
	FractionLoadServed float64      `yaml:"fraction_served"`
}

type CookingRange struct {
	ApplianceCommon `yaml:",inline"`
	FuelType    FuelType  `yaml:"fuel_type"`
	IsInduction Opt[bool] `yaml:"is_induction,omitempty"`
}

type Oven struct {
	ID           string    `yaml:"id"`
	IsConvection Opt[bool] `yaml:"is_convection,omitempty"`
}
