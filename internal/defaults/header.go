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
	"fmt"
	"math"

	"github.com/antst/hpxdefaults/internal/calc"
	"github.com/antst/hpxdefaults/internal/hpxml"
	"github.com/antst/hpxdefaults/internal/lookup"
)

const (
	defaultCalendarYear  = 2007
	defaultTimestep      = 60
	defaultNatVentDays   = 3
	dstBeginMonth        = 3
	dstBeginDay          = 12
	dstEndMonth          = 11
	dstEndDay            = 5
	manualJHeatingSetpt  = 70.0
	manualJCoolingSetpt  = 75.0
	manualJHumiditySetpt = 0.5
	manualJDryHumidity   = 0.45
	manualJInternalSens  = 2400.0
	manualJInternalLat   = 0.0
	fixedChargeElecGas   = 12.0
	solidFuelRate        = 0.015
	pvSellbackRate       = 0.03
	pvFeedInTariffRate   = 0.12
)

// fossilEmissionFactors are lb/MBtu for natural gas, propane and fuel oil.
var fossilEmissionFactors = map[hpxml.EmissionsType][3]float64{
	hpxml.EmissionsCO2e: {147.3, 177.8, 195.9},
	hpxml.EmissionsNOx:  {0.0922, 0.1421, 0.1300},
	hpxml.EmissionsSO2:  {0.0006, 0.0002, 0.0015},
}

func (e *engine) applyHeader() error {
	h := e.hdr
	return rules{
		constant("timestep", &h.Timestep, defaultTimestep),
		constant("sim_begin_month", &h.SimBeginMonth, 1),
		constant("sim_begin_day", &h.SimBeginDay, 1),
		constant("sim_end_month", &h.SimEndMonth, 12),
		constant("sim_end_day", &h.SimEndDay, 31),
		step("sim_calendar_year", e.calendarYear),
		constant("temperature_capacitance_multiplier", &h.TemperatureCapacitance, 1.0),
		constant("occupancy_calculation_type", &h.OccupancyCalculationType, hpxml.OccupancyCalculationAsset),
		when(e.hasGSHP, constant("ground_to_air_heat_pump_model_type", &h.GroundToAirModelType, hpxml.GSHPModelStandard)),
	}.apply("Header")
}

// calendarYear takes the year of an actual meteorological year weather
// file over any other value.
func (e *engine) calendarYear() error {
	y := &e.hdr.SimCalendarYear
	actual := e.w.Header.ActualYear
	if actual <= 0 {
		if y.DefaultIfUnset(defaultCalendarYear) {
			logDefault("Header", "sim_calendar_year", defaultCalendarYear)
		}
		return nil
	}
	if v, ok := y.Get(); ok && v == actual {
		return nil
	} else if ok {
		e.diag.warnf("Header", "sim_calendar_year %d overridden by weather file year %d", v, actual)
	}
	y.Default(actual)
	logDefault("Header", "sim_calendar_year", actual)
	return nil
}

// applyLocation resolves the weather station of the building and fills
// the location of the building header from it.
func (e *engine) applyLocation() error {
	bh := &e.b.Header
	if zip, ok := bh.ZipCode.Get(); ok {
		st, err := e.cache.ZipCode(zip)
		if err != nil {
			return configErrorf("BuildingHeader", "zip_code", "no weather station for ZIP code %s", zip)
		}
		e.station = &st
	}
	wh := e.w.Header
	str := func(fromStation func(*lookup.Station) string, fromWeather string) func() (string, bool, error) {
		return func() (string, bool, error) {
			if e.station != nil {
				if v := fromStation(e.station); v != "" {
					return v, true, nil
				}
			}
			return fromWeather, fromWeather != "", nil
		}
	}
	num := func(fromStation func(*lookup.Station) float64, fromWeather float64) func() float64 {
		return func() float64 {
			if e.station != nil {
				return fromStation(e.station)
			}
			return fromWeather
		}
	}
	site := &e.b.Site
	return rules{
		field("state_code", &bh.StateCode, str(func(s *lookup.Station) string { return s.State }, wh.State)),
		field("city", &bh.City, str(func(s *lookup.Station) string { return s.City }, wh.City)),
		computed("latitude", &bh.Latitude, num(func(s *lookup.Station) float64 { return s.Latitude }, wh.Latitude)),
		computed("longitude", &bh.Longitude, num(func(s *lookup.Station) float64 { return s.Longitude }, wh.Longitude)),
		computed("time_zone_utc_offset", &bh.TimeZoneOffset, num(func(s *lookup.Station) float64 { return s.UTCOffset }, wh.TimeZone)),
		constant("elevation", &bh.Elevation, wh.Elevation),
		constant("site_type", &site.SiteType, hpxml.SiteSuburban),
		constant("shielding_of_home", &site.Shielding, hpxml.ShieldingNormal),
	}.apply(e.b.ID)
}

func (e *engine) applyScenarios() error {
	for _, s := range e.hdr.EmissionsScenarios {
		if err := e.emissionsRules(s).apply(fmt.Sprintf("EmissionsScenario[%s]", s.Name)); err != nil {
			return err
		}
	}
	for _, s := range e.hdr.UtilityBillScenarios {
		if err := e.billRules(s).apply(fmt.Sprintf("UtilityBillScenario[%s]", s.Name)); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) emissionsRules(s *hpxml.EmissionsScenario) rules {
	hasFile := func() bool { return s.ElecScheduleFilePath.IsSet() }
	rs := rules{
		when(hasFile, constant("elec_schedule_header_rows", &s.ElecScheduleHeaderRows, 0)),
		when(hasFile, constant("elec_schedule_column_number", &s.ElecScheduleColumnNumber, 1)),
	}
	factors, ok := fossilEmissionFactors[s.EmissionsType]
	if !ok {
		return rs
	}
	for i, ff := range []*hpxml.FuelFactor{&s.NaturalGas, &s.Propane, &s.FuelOil} {
		ff, v := ff, factors[i]
		bothUnset := func() bool { return !ff.Units.IsSet() && !ff.Value.IsSet() }
		name := [...]string{"natural_gas", "propane", "fuel_oil"}[i]
		rs = append(rs,
			when(bothUnset, constant(name+"_value", &ff.Value, v)),
			when(func() bool { return ff.Value.IsDefaulted() }, constant(name+"_units", &ff.Units, hpxml.UnitsLbPerMBtu)),
		)
	}
	return rs
}

func (e *engine) billRules(s *hpxml.UtilityBillScenario) rules {
	state := e.b.Header.StateCode.Or(lookup.NationalAverage)
	marginal := func(f hpxml.FuelType) func() (float64, error) {
		return func() (float64, error) {
			fr, err := e.cache.MarginalRate(state, string(f))
			if err != nil {
				return 0, configErrorf("UtilityBillScenario", "marginal_rate", "no rate for %s: %v", f, err)
			}
			return fr.MarginalRate, nil
		}
	}
	var rs rules
	rate := func(name string, f hpxml.FuelType, r *hpxml.FuelRate, fixed float64, marginalRule rule) {
		uses := func() bool { return e.usesFuel(f) }
		rs = append(rs,
			when(uses, constant(name+"_fixed_charge", &r.FixedCharge, fixed)),
			when(uses, marginalRule),
		)
	}
	rate("electricity", hpxml.FuelElectricity, &s.Electricity, fixedChargeElecGas,
		fallible("electricity_marginal_rate", &s.Electricity.MarginalRate, marginal(hpxml.FuelElectricity)))
	rate("natural_gas", hpxml.FuelNaturalGas, &s.NaturalGas, fixedChargeElecGas,
		fallible("natural_gas_marginal_rate", &s.NaturalGas.MarginalRate, marginal(hpxml.FuelNaturalGas)))
	rate("propane", hpxml.FuelPropane, &s.Propane, 0,
		fallible("propane_marginal_rate", &s.Propane.MarginalRate, marginal(hpxml.FuelPropane)))
	rate("fuel_oil", hpxml.FuelOil, &s.FuelOil, 0,
		fallible("fuel_oil_marginal_rate", &s.FuelOil.MarginalRate, marginal(hpxml.FuelOil)))
	rate("coal", hpxml.FuelCoal, &s.Coal, 0, constant("coal_marginal_rate", &s.Coal.MarginalRate, solidFuelRate))
	rate("wood", hpxml.FuelWood, &s.Wood, 0, constant("wood_marginal_rate", &s.Wood.MarginalRate, solidFuelRate))
	rate("wood_pellets", hpxml.FuelWoodPellets, &s.WoodPellets, 0,
		constant("wood_pellets_marginal_rate", &s.WoodPellets.MarginalRate, solidFuelRate))

	compensation := func(t hpxml.PVCompensationType) func() bool {
		return func() bool { return e.hasPV() && s.PVCompensationType.Val() == t }
	}
	rs = append(rs,
		when(e.hasPV, constant("pv_compensation_type", &s.PVCompensationType, hpxml.PVNetMetering)),
		when(compensation(hpxml.PVNetMetering),
			constant("pv_net_metering_annual_excess_sellback_rate_type", &s.PVSellbackRateType, hpxml.SellbackUserSpecified)),
		when(func() bool {
			return compensation(hpxml.PVNetMetering)() && s.PVSellbackRateType.Val() == hpxml.SellbackUserSpecified
		}, constant("pv_net_metering_annual_excess_sellback_rate", &s.PVSellbackRate, pvSellbackRate)),
		when(compensation(hpxml.PVFeedInTariff),
			constant("pv_feed_in_tariff_rate", &s.PVFeedInTariffRate, pvFeedInTariffRate)),
		when(func() bool { return e.hasPV() && !s.PVMonthlyGridConnectionFeeW.IsSet() },
			constant("pv_monthly_grid_connection_fee_dollars", &s.PVMonthlyGridConnectionFee, 0.0)),
	)
	return rs
}

func (e *engine) applyBuildingHeader() error {
	if err := e.requirePasses(passLocation); err != nil {
		return err
	}
	bh := &e.b.Header
	begin, bDay, end, eDay := dstBeginMonth, dstBeginDay, dstEndMonth, dstEndDay
	if dst := e.w.Header.DST; dst != nil {
		begin, bDay, end, eDay = dst.BeginMonth, dst.BeginDay, dst.EndMonth, dst.EndDay
	}
	dstOn := func() bool { return bh.DSTEnabled.Val() }
	shadeBegin, shadeEnd := calc.SummerShadingMonths(e.w.Data.MonthlyAvgDrybulbs, bh.Latitude.Val())
	hasSummer := func() bool { return shadeBegin > 0 }

	err := rules{
		constant("dst_enabled", &bh.DSTEnabled, true),
		when(dstOn, constant("dst_begin_month", &bh.DSTBeginMonth, begin)),
		when(dstOn, constant("dst_begin_day", &bh.DSTBeginDay, bDay)),
		when(dstOn, constant("dst_end_month", &bh.DSTEndMonth, end)),
		when(dstOn, constant("dst_end_day", &bh.DSTEndDay, eDay)),
		constant("natural_ventilation_availability_days_per_week", &bh.NaturalVentilationDaysPerWeek, defaultNatVentDays),
		constant("allow_increased_fixed_capacities", &bh.AllowIncreasedFixedCapacities, false),
		when(hasSummer, constant("shading_summer_begin_month", &bh.ShadingSummerBeginMonth, shadeBegin)),
		when(hasSummer, constant("shading_summer_begin_day", &bh.ShadingSummerBeginDay, 1)),
		when(hasSummer, constant("shading_summer_end_month", &bh.ShadingSummerEndMonth, shadeEnd)),
		when(hasSummer, constant("shading_summer_end_day", &bh.ShadingSummerEndDay, calc.DaysInMonth(shadeEnd))),
		when(e.hasHeatPump, constant("heat_pump_sizing_methodology", &bh.HeatPumpSizingMethodology, hpxml.HeatPumpSizingHERS)),
		when(e.hasHeatPumpBackup, constant("heat_pump_backup_sizing_methodology", &bh.HeatPumpBackupSizing, hpxml.HeatPumpBackupEmergency)),
	}.apply(e.b.ID)
	if err != nil {
		return err
	}
	return e.applyManualJ()
}

func (e *engine) applyManualJ() error {
	mj := &e.b.Header.ManualJ
	humidity := manualJHumiditySetpt
	if e.w.IsDry() {
		humidity = manualJDryHumidity
	}
	method := "default table"
	for _, m := range e.b.Enclosure.AirInfiltration {
		if m.IsQuantitative() {
			method = "blower door"
		}
	}
	err := rules{
		constant("heating_design_temperature", &mj.HeatingDesignTemp, e.w.Design.HeatingDrybulb),
		constant("cooling_design_temperature", &mj.CoolingDesignTemp, e.w.Design.CoolingDrybulb),
		constant("daily_temperature_range", &mj.DailyTempRange, e.w.DailyTemperatureRange()),
		constant("heating_setpoint", &mj.HeatingSetpoint, manualJHeatingSetpt),
		constant("cooling_setpoint", &mj.CoolingSetpoint, manualJCoolingSetpt),
		constant("humidity_setpoint", &mj.HumiditySetpoint, humidity),
		computed("humidity_difference", &mj.HumidityDifference, func() float64 {
			return calc.DesignGrainDifference(e.w.Design.CoolingHumidityRatio, mj.CoolingSetpoint.Val(),
				mj.HumiditySetpoint.Val(), e.b.Header.Elevation.Or(e.w.Header.Elevation))
		}),
		constant("infiltration_shielding_class", &mj.InfiltrationShielding, e.b.Site.Shielding.Val()),
		constant("infiltration_method", &mj.InfiltrationMethod, method),
	}.apply("ManualJInputs")
	if err != nil {
		return err
	}
	e.distributeToSpaces("internal_loads_sensible", &mj.InternalLoadsSensible, manualJInternalSens,
		func(s *hpxml.Space) *hpxml.Opt[float64] { return &s.InternalLoadsSensible })
	e.distributeToSpaces("internal_loads_latent", &mj.InternalLoadsLatent, manualJInternalLat,
		func(s *hpxml.Space) *hpxml.Opt[float64] { return &s.InternalLoadsLatent })
	e.distributeToSpaces("num_occupants", &mj.NumberOfOccupants, float64(e.b.Construction.NumberOfBedrooms+1),
		func(s *hpxml.Space) *hpxml.Opt[float64] { return &s.NumberOfOccupants })
	return nil
}

// distributeToSpaces defaults a building level Manual J value and splits
// what the user did not assign to spaces over the remaining conditioned
// spaces by floor area. When the spaces do not add up to the building
// value afterwards, the building value becomes their sum.
func (e *engine) distributeToSpaces(name string, total *hpxml.Opt[float64], def float64, of func(*hpxml.Space) *hpxml.Opt[float64]) {
	spaces := e.b.ConditionedSpaces()
	var assigned, openArea float64
	for _, sp := range spaces {
		if v, ok := of(sp).Get(); ok {
			assigned += v
		} else {
			openArea += sp.FloorArea
		}
	}
	if !total.IsSet() {
		if openArea == 0 && len(spaces) > 0 {
			total.Default(assigned)
		} else {
			total.Default(def)
		}
		logDefault("ManualJInputs", name, total.Val())
	}
	rest := math.Max(0, total.Val()-assigned)
	sum := assigned
	for _, sp := range spaces {
		o := of(sp)
		if o.IsSet() || openArea <= 0 {
			continue
		}
		v := rest * sp.FloorArea / openArea
		o.Default(v)
		sum += v
		logDefault(sp.ID, "manualj_"+name, v)
	}
	if len(spaces) > 0 && math.Abs(sum-total.Val()) > 0.01 {
		e.diag.warnf("ManualJInputs", "%s %v does not match the sum over conditioned spaces %v", name, total.Val(), sum)
		total.Default(sum)
	}
}
