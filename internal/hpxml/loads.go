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

type Lighting struct {
	Groups      []*LightingGroup `yaml:"lighting_groups,omitempty"`
	CeilingFans []*CeilingFan    `yaml:"ceiling_fans,omitempty"`

	InteriorUsageMultiplier Opt[float64] `yaml:"interior_usage_multiplier,omitempty"`
	GarageUsageMultiplier   Opt[float64] `yaml:"garage_usage_multiplier,omitempty"`
	ExteriorUsageMultiplier Opt[float64] `yaml:"exterior_usage_multiplier,omitempty"`
	InteriorSchedule        Schedule     `yaml:"interior_schedule,omitempty"`
	GarageSchedule          Schedule     `yaml:"garage_schedule,omitempty"`
	ExteriorSchedule        Schedule     `yaml:"exterior_schedule,omitempty"`

	HolidayExists    bool         `yaml:"holiday_exists,omitempty"`
	HolidayKwhPerDay Opt[float64] `yaml:"holiday_kwh_per_day,omitempty"`
	HolidayPeriod    Season       `yaml:"holiday_period,omitempty"`
	HolidaySchedule  Schedule     `yaml:"holiday_schedule,omitempty"`
}

type LightingGroup struct {
	ID              string       `yaml:"id"`
	Location        Location     `yaml:"location"`
	LightingType    LightingType `yaml:"lighting_type"`
	FractionOfUnits Opt[float64] `yaml:"fraction_of_units_in_location,omitempty"`
}

type CeilingFan struct {
	ID         string       `yaml:"id"`
	Efficiency Opt[float64] `yaml:"efficiency,omitempty"`
	Quantity   Opt[int]     `yaml:"count,omitempty"`
	Schedule   `yaml:",inline"`
}

type MiscLoads struct {
	Pools         []*Pool     `yaml:"pools,omitempty"`
	PermanentSpas []*Pool     `yaml:"permanent_spas,omitempty"`
	PlugLoads     []*PlugLoad `yaml:"plug_loads,omitempty"`
	FuelLoads     []*FuelLoad `yaml:"fuel_loads,omitempty"`
}

// Pool models both pools and permanent spas.
type Pool struct {
	ID                    string         `yaml:"id"`
	Type                  string         `yaml:"type,omitempty"`
	PumpType              string         `yaml:"pump_type,omitempty"`
	PumpKwhPerYear        Opt[float64]   `yaml:"pump_kwh_per_year,omitempty"`
	PumpUsageMultiplier   Opt[float64]   `yaml:"pump_usage_multiplier,omitempty"`
	PumpSchedule          Schedule       `yaml:"pump_schedule,omitempty"`
	HeaterType            PoolHeaterType `yaml:"heater_type,omitempty"`
	HeaterLoadUnits       Opt[Units]     `yaml:"heater_load_units,omitempty"`
	HeaterLoadValue       Opt[float64]   `yaml:"heater_load_value,omitempty"`
	HeaterUsageMultiplier Opt[float64]   `yaml:"heater_usage_multiplier,omitempty"`
	HeaterSchedule        Schedule       `yaml:"heater_schedule,omitempty"`
}

// None is the type of an absent pool, pump or heater.
const None = "none"

func (p *Pool) HasPump() bool {
	return p.Type != None && p.PumpType != None
}

func (p *Pool) HasHeater() bool {
	return p.Type != None && p.HeaterType != "" && p.HeaterType != PoolHeaterNone
}

type PlugLoad struct {
	ID              string       `yaml:"id"`
	PlugLoadType    PlugLoadType `yaml:"plug_load_type"`
	KwhPerYear      Opt[float64] `yaml:"kwh_per_year,omitempty"`
	FracSensible    Opt[float64] `yaml:"frac_sensible,omitempty"`
	FracLatent      Opt[float64] `yaml:"frac_latent,omitempty"`
	UsageMultiplier Opt[float64] `yaml:"usage_multiplier,omitempty"`
	Schedule        `yaml:",inline"`
}

type FuelLoad struct {
	ID              string       `yaml:"id"`
	FuelLoadType    FuelLoadType `yaml:"fuel_load_type"`
	FuelType        FuelType     `yaml:"fuel_type"`
	ThermPerYear    Opt[float64] `yaml:"therm_per_year,omitempty"`
	FracSensible    Opt[float64] `yaml:"frac_sensible,omitempty"`
	FracLatent      Opt[float64] `yaml:"frac_latent,omitempty"`
	UsageMultiplier Opt[float64] `yaml:"usage_multiplier,omitempty"`
	Schedule        `yaml:",inline"`
}
