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
)

func (e *engine) inverter(id string) *hpxml.Inverter {
	for _, inv := range e.b.Systems.Inverters {
		if inv.ID == id {
			return inv
		}
	}
	return nil
}

// applyPV fills PV arrays. A system without an inverter is wired to a
// synthesized one, shared by every such system of the building.
func (e *engine) applyPV() error {
	sys := &e.b.Systems
	year := e.hdr.SimCalendarYear.Val()
	var synthesized *hpxml.Inverter
	for _, pv := range sys.PVSystems {
		if err := e.resolveAzimuth(pv.ID, &pv.ArrayAzimuth, &pv.ArrayOrientation, e.defaultAzimuth()); err != nil {
			return err
		}
		err := rules{
			constant("is_shared_system", &pv.IsSharedSystem, false),
			constant("location", &pv.Location, hpxml.PVRoof),
			constant("tracking", &pv.Tracking, hpxml.PVTrackingFixed),
			constant("module_type", &pv.ModuleType, hpxml.PVModuleStandard),
			computed("system_losses_fraction", &pv.SystemLossesFraction, func() float64 {
				return calc.PVSystemLosses(pv.YearModulesManufactured.Or(0), year)
			}),
		}.apply(pv.ID)
		if err != nil {
			return err
		}
		switch {
		case pv.Inverter == "":
			if synthesized == nil {
				synthesized = &hpxml.Inverter{ID: e.id("Inverter")}
				sys.Inverters = append(sys.Inverters, synthesized)
				logDefault(pv.ID, "inverter", synthesized.ID)
			}
			pv.Inverter = synthesized.ID
		case e.inverter(pv.Inverter) == nil:
			return configErrorf(pv.ID, "inverter", "inverter %q not found", pv.Inverter)
		}
	}
	for _, inv := range sys.Inverters {
		if err := (rules{constant("inverter_efficiency", &inv.Efficiency, calc.PVInverterEfficiency)}).apply(inv.ID); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) applyGenerators() error {
	for _, g := range e.b.Systems.Generators {
		if err := (rules{constant("is_shared_system", &g.IsSharedSystem, false)}).apply(g.ID); err != nil {
			return err
		}
	}
	return nil
}

// storageLocation puts batteries and chargers in the garage when there is
// one.
func (e *engine) storageLocation() hpxml.Location {
	if e.hasLocation(hpxml.LocationGarage) {
		return hpxml.LocationGarage
	}
	return hpxml.LocationOutside
}

// capacityRules resolves nominal and usable capacity from whichever of
// them is known. power is the rated output, W, when the record has one.
func capacityRules(id string, c *hpxml.BatteryCapacity, power *hpxml.Opt[float64], usable, nominalKwh float64) rules {
	return rules{
		constant("lifetime_model", &c.LifetimeModel, hpxml.BatteryLifetimeNone),
		constant("nominal_voltage", &c.NominalVoltage, calc.BatteryNominalVoltage),
		step("nominal_capacity", func() error {
			if c.NominalCapacityKwh.IsSet() || c.NominalCapacityAh.IsSet() {
				return nil
			}
			switch {
			case c.UsableCapacityKwh.IsSet():
				c.NominalCapacityKwh.Default(calc.Round(c.UsableCapacityKwh.Val()/usable, 2))
			case c.UsableCapacityAh.IsSet():
				c.NominalCapacityAh.Default(calc.Round(c.UsableCapacityAh.Val()/usable, 2))
				logDefault(id, "nominal_capacity_ah", c.NominalCapacityAh.Val())
				return nil
			case power != nil && power.IsSet():
				c.NominalCapacityKwh.Default(calc.NominalFromPower(power.Val()))
			default:
				c.NominalCapacityKwh.Default(nominalKwh)
			}
			logDefault(id, "nominal_capacity_kwh", c.NominalCapacityKwh.Val())
			return nil
		}),
		step("usable_capacity", func() error {
			if c.UsableCapacityKwh.IsSet() || c.UsableCapacityAh.IsSet() {
				return nil
			}
			if kwh, ok := c.NominalCapacityKwh.Get(); ok {
				c.UsableCapacityKwh.Default(calc.Round(kwh*usable, 2))
				logDefault(id, "usable_capacity_kwh", c.UsableCapacityKwh.Val())
			} else {
				c.UsableCapacityAh.Default(calc.Round(c.NominalCapacityAh.Val()*usable, 2))
				logDefault(id, "usable_capacity_ah", c.UsableCapacityAh.Val())
			}
			return nil
		}),
		constant("round_trip_efficiency", &c.RoundTripEfficiency, calc.BatteryRoundTrip),
	}
}

func (e *engine) applyBatteries() error {
	for _, b := range e.b.Systems.Batteries {
		rs := rules{constant("is_shared_system", &b.IsSharedSystem, false), constant("location", &b.Location, e.storageLocation())}
		rs = append(rs, capacityRules(b.ID, &b.BatteryCapacity, &b.RatedPowerOutput, calc.BatteryUsableFraction, calc.BatteryNominalKwh)...)
		rs = append(rs, computed("rated_power_output", &b.RatedPowerOutput, func() float64 {
			kwh, ok := b.NominalCapacityKwh.Get()
			if !ok {
				kwh = calc.KwhFromAh(b.NominalCapacityAh.Val(), b.NominalVoltage.Val())
			}
			return calc.RatedPowerFromNominal(kwh)
		}))
		if err := rs.apply(b.ID); err != nil {
			return err
		}
	}
	return nil
}

// applyVehicles fills electric vehicles and the chargers they use.
func (e *engine) applyVehicles() error {
	sys := &e.b.Systems
	chargers := map[string]bool{}
	for _, c := range sys.EVChargers {
		chargers[c.ID] = true
		err := rules{
			constant("location", &c.Location, e.storageLocation()),
			constant("charging_level", &c.ChargingLevel, calc.EVChargingLevel),
			constant("charging_power", &c.ChargingPower, calc.EVChargingPower),
		}.apply(c.ID)
		if err != nil {
			return err
		}
	}
	for _, v := range sys.Vehicles {
		if v.EVCharger != "" && !chargers[v.EVCharger] {
			return configErrorf(v.ID, "ev_charger", "charger %q not found", v.EVCharger)
		}
		rs := rules{
			constant("miles_per_year", &v.MilesPerYear, calc.EVMilesPerYear),
			constant("hours_per_week", &v.HoursPerWeek, calc.EVHoursPerWeek),
			constant("fuel_economy_combined_kwh_per_mile", &v.FuelEconomyKwhMile, calc.EVFuelEconomy),
			constant("fraction_charged_home", &v.FractionChargedHome, calc.EVFractionChargedHome),
		}
		rs = append(rs, capacityRules(v.ID, &v.BatteryCapacity, nil, calc.EVUsableFraction, calc.EVNominalKwh)...)
		if err := rs.apply(v.ID); err != nil {
			return err
		}
	}
	return nil
}
