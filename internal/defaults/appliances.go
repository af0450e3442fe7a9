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

const applianceUsageMult = 1.0

// applianceRules fills what every plug-in appliance shares. name is both
// the default schedule and the detailed schedule column.
func (e *engine) applianceRules(a *hpxml.ApplianceCommon, name string, loc hpxml.Location) rules {
	rs := rules{
		constant("location", &a.Location, loc),
		constant("usage_multiplier", &a.UsageMultiplier, applianceUsageMult),
	}
	return append(rs, e.scheduleRules(name, name, &a.Schedule)...)
}

func (e *engine) applyAppliances() error {
	if err := e.requirePasses(passConstruction, passFoundations); err != nil {
		return err
	}
	ap := &e.b.Appliances
	steps := []func(*hpxml.Appliances) error{
		e.applyClothesWashers,
		e.applyClothesDryers,
		e.applyDishwashers,
		e.applyRefrigerators,
		e.applyFreezers,
		e.applyDehumidifiers,
		e.applyCooking,
	}
	for _, fn := range steps {
		if err := fn(ap); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) applyClothesWashers(ap *hpxml.Appliances) error {
	label := calc.DefaultClothesWasher(e.eri)
	for _, w := range ap.ClothesWashers {
		noLabel := func() bool { return !w.RatedAnnualKwh.IsSet() }
		rs := rules{
			constant("is_shared_appliance", &w.IsSharedAppliance, false),
			when(func() bool { return w.MEF.IsSet() },
				computed("integrated_modified_energy_factor", &w.IMEF, func() float64 { return calc.IMEFFromMEF(w.MEF.Val()) })),
			when(noLabel, constant("integrated_modified_energy_factor", &w.IMEF, label.IMEF)),
			when(noLabel, constant("label_electric_rate", &w.LabelElectricRate, label.ElecRate)),
			when(noLabel, constant("label_gas_rate", &w.LabelGasRate, label.GasRate)),
			when(noLabel, constant("label_annual_gas_cost", &w.LabelAnnualGasCost, label.AnnualGas)),
			when(noLabel, constant("capacity", &w.Capacity, label.Capacity)),
			when(noLabel, constant("label_usage", &w.LabelUsage, label.LabelUsage)),
			constant("rated_annual_kwh", &w.RatedAnnualKwh, label.RatedKwh),
		}
		rs = append(rs, e.applianceRules(&w.ApplianceCommon, "clothes_washer", hpxml.LocationConditionedSpace)...)
		if err := rs.apply(w.ID); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) applyClothesDryers(ap *hpxml.Appliances) error {
	for _, d := range ap.ClothesDryers {
		cef, control := calc.DefaultDryerCEF(e.eri, d.FuelType)
		rs := rules{
			constant("is_shared_appliance", &d.IsSharedAppliance, false),
			field("combined_energy_factor", &d.CEF, func() (float64, bool, error) {
				if ef, ok := d.EF.Get(); ok {
					return calc.CEFFromEF(ef), true, nil
				}
				return cef, true, nil
			}),
			constant("control_type", &d.ControlType, control),
			constant("is_vented", &d.IsVented, true),
			when(func() bool { return d.IsVented.Val() },
				constant("vented_flow_rate", &d.VentedFlowRate, calc.DryerVentedFlowRate)),
		}
		rs = append(rs, e.applianceRules(&d.ApplianceCommon, "clothes_dryer", hpxml.LocationConditionedSpace)...)
		if err := rs.apply(d.ID); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) applyDishwashers(ap *hpxml.Appliances) error {
	label := calc.DefaultDishwasher()
	for _, d := range ap.Dishwashers {
		noLabel := func() bool { return !d.PlaceSettingCapacity.IsSet() }
		rs := rules{
			constant("is_shared_appliance", &d.IsSharedAppliance, false),
			when(func() bool { return d.EnergyFactor.IsSet() },
				computed("rated_annual_kwh", &d.RatedAnnualKwh, func() float64 { return calc.RatedKwhFromEF(d.EnergyFactor.Val()) })),
			when(noLabel, constant("rated_annual_kwh", &d.RatedAnnualKwh, label.RatedKwh)),
			when(noLabel, constant("label_electric_rate", &d.LabelElectricRate, label.ElecRate)),
			when(noLabel, constant("label_gas_rate", &d.LabelGasRate, label.GasRate)),
			when(noLabel, constant("label_annual_gas_cost", &d.LabelAnnualGasCost, label.AnnualGas)),
			when(noLabel, constant("label_usage", &d.LabelUsage, label.LabelUsage)),
			constant("place_setting_capacity", &d.PlaceSettingCapacity, label.PlaceSettings),
		}
		rs = append(rs, e.applianceRules(&d.ApplianceCommon, "dishwasher", hpxml.LocationConditionedSpace)...)
		if err := rs.apply(d.ID); err != nil {
			return err
		}
	}
	return nil
}

// applyRefrigerators marks a lone refrigerator primary. Every other one
// is an extra refrigerator placed like a freezer.
func (e *engine) applyRefrigerators(ap *hpxml.Appliances) error {
	if len(ap.Refrigerators) == 1 {
		r := ap.Refrigerators[0]
		if err := (rules{constant("primary_indicator", &r.PrimaryIndicator, true)}).apply(r.ID); err != nil {
			return err
		}
	}
	primary := 0
	for _, r := range ap.Refrigerators {
		if r.PrimaryIndicator.Val() {
			primary++
		}
	}
	if len(ap.Refrigerators) > 0 && primary != 1 {
		return configErrorf(ap.Refrigerators[0].ID, "primary_indicator",
			"%d refrigerators designated as the primary, want exactly one", primary)
	}

	extra := calc.FirstLocation(calc.ExtraRefrigeratorLocations, e.hasLocation)
	for _, r := range ap.Refrigerators {
		var rs rules
		if r.PrimaryIndicator.Val() {
			rs = rules{constant("rated_annual_kwh", &r.RatedAnnualKwh, calc.RefrigeratorKwh(e.nbeds()))}
			rs = append(rs, e.applianceRules(&r.ApplianceCommon, "refrigerator", hpxml.LocationConditionedSpace)...)
		} else {
			rs = rules{constant("rated_annual_kwh", &r.RatedAnnualKwh, calc.ExtraRefrigeratorKwh)}
			rs = append(rs, e.applianceRules(&r.ApplianceCommon, "extra_refrigerator", extra)...)
		}
		if err := rs.apply(r.ID); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) applyFreezers(ap *hpxml.Appliances) error {
	loc := calc.FirstLocation(calc.ExtraRefrigeratorLocations, e.hasLocation)
	for _, f := range ap.Freezers {
		rs := rules{constant("rated_annual_kwh", &f.RatedAnnualKwh, calc.FreezerKwh)}
		rs = append(rs, e.applianceRules(&f.ApplianceCommon, "freezer", loc)...)
		if err := rs.apply(f.ID); err != nil {
			return err
		}
	}
	return nil
}

// applyDehumidifiers converts integrated energy factors. All dehumidifiers
// share one setpoint and together serve at most the whole load.
func (e *engine) applyDehumidifiers(ap *hpxml.Appliances) error {
	if len(ap.Dehumidifiers) == 0 {
		return nil
	}
	var served float64
	setpoint := ap.Dehumidifiers[0].RHSetpoint
	for _, d := range ap.Dehumidifiers {
		if d.RHSetpoint != setpoint {
			return configErrorf(d.ID, "rh_setpoint", "all dehumidifiers must share one setpoint, got %g and %g", setpoint, d.RHSetpoint)
		}
		served += d.FractionLoadServed
		err := rules{
			when(func() bool { return d.IntegratedEF.IsSet() },
				computed("energy_factor", &d.EnergyFactor, func() float64 { return calc.DehumidifierEF(d.Type, d.IntegratedEF.Val()) })),
		}.apply(d.ID)
		if err != nil {
			return err
		}
	}
	if served > 1+ductFractionTolerance {
		return configErrorf(ap.Dehumidifiers[0].ID, "fraction_served", "dehumidifiers serve %g of the load, want at most 1", served)
	}
	return nil
}

func (e *engine) applyCooking(ap *hpxml.Appliances) error {
	for _, c := range ap.CookingRanges {
		rs := rules{constant("is_induction", &c.IsInduction, false)}
		rs = append(rs, e.applianceRules(&c.ApplianceCommon, "cooking_range", hpxml.LocationConditionedSpace)...)
		if err := rs.apply(c.ID); err != nil {
			return err
		}
	}
	for _, o := range ap.Ovens {
		if err := (rules{constant("is_convection", &o.IsConvection, false)}).apply(o.ID); err != nil {
			return err
		}
	}
	return nil
}
