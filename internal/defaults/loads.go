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
	"github.com/pkg/errors"

	"github.com/antst/hpxdefaults/internal/calc"
	"github.com/antst/hpxdefaults/internal/hpxml"
)

const (
	loadUsageMult = 1.0

	holidayBeginMonth = 11
	holidayBeginDay   = 24
	holidayEndMonth   = 1
	holidayEndDay     = 6
)

var (
	plugLoadSchedules = map[hpxml.PlugLoadType]string{
		hpxml.PlugLoadOther:      "plug_loads_other",
		hpxml.PlugLoadTV:         "plug_loads_tv",
		hpxml.PlugLoadEVCharging: "plug_loads_vehicle",
		hpxml.PlugLoadWellPump:   "plug_loads_well_pump",
	}
	fuelLoadSchedules = map[hpxml.FuelLoadType]string{
		hpxml.FuelLoadGrill:     "fuel_loads_grill",
		hpxml.FuelLoadLighting:  "fuel_loads_lighting",
		hpxml.FuelLoadFireplace: "fuel_loads_fireplace",
	}
)

// applyLighting fills lighting multipliers and schedules. Garage lighting
// only gets a schedule when the building has a garage.
func (e *engine) applyLighting() error {
	l := &e.b.Lighting
	if len(l.Groups) == 0 {
		return nil
	}
	if err := checkLightingFractions(l.Groups); err != nil {
		return err
	}
	rs := rules{
		constant("interior_usage_multiplier", &l.InteriorUsageMultiplier, loadUsageMult),
		constant("garage_usage_multiplier", &l.GarageUsageMultiplier, loadUsageMult),
		constant("exterior_usage_multiplier", &l.ExteriorUsageMultiplier, loadUsageMult),
	}
	rs = append(rs, e.scheduleRules("lighting_interior", "lighting_interior", &l.InteriorSchedule)...)
	if e.hasLocation(hpxml.LocationGarage) {
		rs = append(rs, e.scheduleRules("lighting_garage", "lighting_garage", &l.GarageSchedule)...)
	}
	rs = append(rs, e.scheduleRules("lighting_exterior", "lighting_exterior", &l.ExteriorSchedule)...)
	if l.HolidayExists {
		rs = append(rs,
			computed("holiday_kwh_per_day", &l.HolidayKwhPerDay, func() float64 { return calc.HolidayLightingKwhPerDay(e.facility()) }),
			constant("holiday_period_begin_month", &l.HolidayPeriod.BeginMonth, holidayBeginMonth),
			constant("holiday_period_begin_day", &l.HolidayPeriod.BeginDay, holidayBeginDay),
			constant("holiday_period_end_month", &l.HolidayPeriod.EndMonth, holidayEndMonth),
			constant("holiday_period_end_day", &l.HolidayPeriod.EndDay, holidayEndDay),
		)
		rs = append(rs, e.scheduleRules("lighting_exterior_holiday", "lighting_exterior_holiday", &l.HolidaySchedule)...)
	}
	return rs.apply("Lighting")
}

// checkLightingFractions rejects locations whose lighting types cover more
// than all fixtures.
func checkLightingFractions(groups []*hpxml.LightingGroup) error {
	sums := map[hpxml.Location]float64{}
	for _, g := range groups {
		sums[g.Location] += g.FractionOfUnits.Val()
	}
	for _, g := range groups {
		if sums[g.Location] > 1+ductFractionTolerance {
			return configErrorf(g.ID, "fraction_of_units_in_location",
				"lighting fractions in %s sum to %g, want at most 1", g.Location, sums[g.Location])
		}
	}
	return nil
}

func (e *engine) applyCeilingFans() error {
	nbeds := e.b.Construction.NumberOfBedrooms
	for _, f := range e.b.Lighting.CeilingFans {
		rs := rules{
			computed("efficiency", &f.Efficiency, calc.CeilingFanEfficiency),
			constant("count", &f.Quantity, calc.CeilingFanQuantity(nbeds)),
			when(func() bool { return !e.hasScheduleColumn("ceiling_fan") },
				field("monthly_multipliers", &f.MonthlyMultipliers, func() (string, bool, error) {
					m := calc.CeilingFanMonths(e.w.Data.MonthlyAvgDrybulbs)
					return m, m != "", nil
				})),
		}
		rs = append(rs, e.scheduleRules("ceiling_fan", "ceiling_fan", &f.Schedule)...)
		if err := rs.apply(f.ID); err != nil {
			return err
		}
	}
	return nil
}

// applyPools fills pump and heater loads of pools and permanent spas.
// A pool whose type is none is skipped.
func (e *engine) applyPools() error {
	cfa, nbeds := e.cfa(), e.nbeds()
	apply := func(p *hpxml.Pool, spa bool) error {
		pump, heater, pumpKwh := "pool_pump", "pool_heater", calc.PoolPumpKwh
		if spa {
			pump, heater, pumpKwh = "permanent_spa_pump", "permanent_spa_heater", calc.SpaPumpKwh
		}
		var rs rules
		if p.HasPump() {
			rs = append(rs,
				computed("pump_kwh_per_year", &p.PumpKwhPerYear, func() float64 { return pumpKwh(cfa, nbeds) }),
				constant("pump_usage_multiplier", &p.PumpUsageMultiplier, loadUsageMult),
			)
			rs = append(rs, e.scheduleRules(pump, pump, &p.PumpSchedule)...)
		}
		if p.HasHeater() {
			rs = append(rs,
				step("heater_load_value", func() error {
					if p.HeaterLoadValue.IsSet() {
						return nil
					}
					v, units, err := calc.PoolHeaterLoad(p.HeaterType, spa, cfa, nbeds)
					if err != nil {
						return configErrorf(p.ID, "heater_type", "%v", err)
					}
					p.HeaterLoadValue.Default(v)
					p.HeaterLoadUnits.Default(units)
					logDefault(p.ID, "heater_load_value", v)
					return nil
				}),
				constant("heater_usage_multiplier", &p.HeaterUsageMultiplier, loadUsageMult),
			)
			rs = append(rs, e.scheduleRules(heater, heater, &p.HeaterSchedule)...)
		}
		return rs.apply(p.ID)
	}
	for _, p := range e.b.MiscLoads.Pools {
		if err := apply(p, false); err != nil {
			return err
		}
	}
	for _, p := range e.b.MiscLoads.PermanentSpas {
		if err := apply(p, true); err != nil {
			return err
		}
	}
	return nil
}

// applyPlugLoads fills the reference energy of known plug load types.
// Other types only get a usage multiplier.
func (e *engine) applyPlugLoads() error {
	for _, pl := range e.b.MiscLoads.PlugLoads {
		rs := rules{constant("usage_multiplier", &pl.UsageMultiplier, loadUsageMult)}
		ref, err := calc.PlugLoadDefault(pl.PlugLoadType, e.cfa(), e.nbeds())
		switch {
		case errors.Is(err, calc.ErrNoEntry):
		case err != nil:
			return err
		default:
			rs = append(rs, loadFractionRules("kwh_per_year", &pl.KwhPerYear, &pl.FracSensible, &pl.FracLatent, ref)...)
			name := plugLoadSchedules[pl.PlugLoadType]
			rs = append(rs, e.scheduleRules(name, name, &pl.Schedule)...)
		}
		if err := rs.apply(pl.ID); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) applyFuelLoads() error {
	for _, fl := range e.b.MiscLoads.FuelLoads {
		rs := rules{constant("usage_multiplier", &fl.UsageMultiplier, loadUsageMult)}
		ref, err := calc.FuelLoadDefault(fl.FuelLoadType, e.cfa(), e.nbeds())
		switch {
		case errors.Is(err, calc.ErrNoEntry):
		case err != nil:
			return err
		default:
			rs = append(rs, loadFractionRules("therm_per_year", &fl.ThermPerYear, &fl.FracSensible, &fl.FracLatent, ref)...)
			name := fuelLoadSchedules[fl.FuelLoadType]
			rs = append(rs, e.scheduleRules(name, name, &fl.Schedule)...)
		}
		if err := rs.apply(fl.ID); err != nil {
			return err
		}
	}
	return nil
}

func loadFractionRules(name string, annual, sens, lat *hpxml.Opt[float64], ref calc.LoadFraction) rules {
	return rules{
		constant(name, annual, ref.Annual),
		constant("frac_sensible", sens, ref.Sensible),
		constant("frac_latent", lat, ref.Latent),
	}
}
