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

const (
	hotWaterPipeR       = 0.0
	lowFlowFixtureGPM   = 2.0
	fixtureGPM          = 2.5
	fixturesUsageMult   = 1.0
	legacyHotWaterERI   = "2014A"
	storageHeaterMetric = "EF"
)

// energyFactor returns EF, converting from UEF when only that is given.
func energyFactor(wh *hpxml.WaterHeatingSystem) (float64, error) {
	if ef, ok := wh.EnergyFactor.Get(); ok {
		return ef, nil
	}
	if uef, ok := wh.UniformEnergyFactor.Get(); ok {
		return calc.EFFromUEF(wh.WaterHeaterType, wh.FuelType, uef)
	}
	return 0, nil
}

func (e *engine) applyWaterHeaters() error {
	if err := e.requirePasses(passClimateZones, passConstruction); err != nil {
		return err
	}
	systems := e.b.Systems.WaterHeating.Systems
	nbeds := e.b.Construction.NumberOfBedrooms
	nbaths := e.nbaths()
	legacy := !calc.ERIAtLeast(e.eri, legacyHotWaterERI)
	location := calc.FirstLocation(calc.WaterHeaterLocations(e.b.ClimateZones.IECCZone.Val()), e.hasLocation)

	for _, wh := range systems {
		rs := rules{
			constant("is_shared_system", &wh.IsSharedSystem, false),
			when(func() bool { return !e.hasScheduleColumn(colWaterHeaterTemp) },
				constant("hot_water_temperature", &wh.Temperature, calc.HotWaterTemperature(legacy))),
			constant("location", &wh.Location, location),
		}
		switch wh.WaterHeaterType {
		case hpxml.WaterHeaterStorage:
			rs = append(rs,
				constant("heating_capacity", &wh.HeatingCapacity, calc.WaterHeaterCapacity(wh.FuelType, nbeds, len(systems), nbaths)),
				constant("tank_volume", &wh.TankVolume, calc.TankVolume(wh.FuelType, nbeds, nbaths)),
				when(func() bool { return !wh.UniformEnergyFactor.IsSet() },
					fallible("energy_factor", &wh.EnergyFactor, func() (float64, error) {
						return e.efficiencyByYear(wh.ID, wh.YearInstalled, "storage water heater", wh.FuelType, storageHeaterMetric)
					})),
				fallible("recovery_efficiency", &wh.RecoveryEfficiency, func() (float64, error) {
					ef, err := energyFactor(wh)
					if err != nil {
						return 0, configErrorf(wh.ID, "uniform_energy_factor", "%v", err)
					}
					return calc.Round(calc.RecoveryEfficiency(wh.FuelType, ef), 3), nil
				}),
				constant("tank_model_type", &wh.TankModelType, hpxml.TankModelMixed))
		case hpxml.WaterHeaterTankless:
			rs = append(rs, constant("performance_adjustment", &wh.PerformanceAdjustment,
				calc.TanklessPerformanceAdjustment(wh.UniformEnergyFactor.IsSet())))
		case hpxml.WaterHeaterHeatPump:
			rs = append(rs, constant("hpwh_operating_mode", &wh.OperatingMode, hpxml.HPWHModeHybridAuto))
		case hpxml.WaterHeaterCombiStorage:
			rs = append(rs, when(func() bool { return wh.TankVolume.IsSet() },
				computed("standby_loss_value", &wh.StandbyLoss, func() float64 { return calc.IndirectStandbyLoss(wh.TankVolume.Val()) })))
		}
		if wh.WaterHeaterType == hpxml.WaterHeaterStorage || wh.WaterHeaterType == hpxml.WaterHeaterHeatPump {
			rs = append(rs, when(func() bool { return wh.UniformEnergyFactor.IsSet() },
				computed("usage_bin", &wh.UsageBin, func() hpxml.WaterHeaterUsageBin {
					if fhr, ok := wh.FirstHourRating.Get(); ok {
						return calc.UsageBin(fhr)
					}
					return hpxml.UsageBinMedium
				})))
		}
		if err := rs.apply(wh.ID); err != nil {
			return err
		}
	}
	return nil
}

// applyFlue flags a flue or chimney in conditioned space when a combustion
// heater or water heater there needs one.
func (e *engine) applyFlue() error {
	if err := e.requirePasses(passHVACLocation, passWaterHeaters); err != nil {
		return err
	}
	c := &e.b.Construction
	return rules{
		fallible("has_flue_or_chimney_in_conditioned_space", &c.HasFlueOrChimney, func() (bool, error) {
			for _, hs := range e.b.Systems.HeatingSystems {
				if hs.Location.Val().IsConditioned() && calc.HeaterNeedsFlue(hs.HeatingSystemType, hs.Fuel, hs.Efficiency()) {
					return true, nil
				}
			}
			for _, wh := range e.b.Systems.WaterHeating.Systems {
				if !wh.Location.Val().IsConditioned() {
					continue
				}
				ef, err := energyFactor(wh)
				if err != nil {
					return false, configErrorf(wh.ID, "uniform_energy_factor", "%v", err)
				}
				if calc.WaterHeaterNeedsFlue(wh.FuelType, ef) {
					return true, nil
				}
			}
			return false, nil
		}),
	}.apply("BuildingConstruction")
}

func (e *engine) applyHotWaterDistribution() error {
	c := &e.b.Construction
	for _, d := range e.b.Systems.WaterHeating.Distributions {
		std := calc.Round(calc.StandardPipeLength(e.hasLocation(hpxml.LocationBasementUnconditioned), e.cfa(), c.NumberOfConditionedFloors), 2)
		rs := rules{constant("pipe_r_value", &d.PipeR, hotWaterPipeR)}
		switch d.SystemType {
		case hpxml.HotWaterStandard:
			rs = append(rs, constant("standard_piping_length", &d.StandardPipingLength, std))
		case hpxml.HotWaterRecirculation:
			rs = append(rs,
				constant("recirculation_piping_length", &d.RecircPipingLength, calc.Round(calc.RecircLoopLength(std), 2)),
				constant("recirculation_branch_piping_length", &d.RecircBranchPipingLength, calc.RecircBranchLength),
				constant("recirculation_pump_power", &d.RecircPumpPower, calc.RecircPumpPower))
		}
		if d.HasSharedRecirculation {
			rs = append(rs, constant("shared_recirculation_pump_power", &d.SharedRecircPumpPower, calc.Round(calc.SharedRecircPumpPower(), 1)))
		}
		if err := rs.apply(d.ID); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) applyWaterFixtures() error {
	wh := &e.b.Systems.WaterHeating
	if len(wh.Fixtures) == 0 {
		return nil
	}
	rs := rules{constant("water_fixtures_usage_multiplier", &wh.FixturesUsageMultiplier, fixturesUsageMult)}
	rs = append(rs, e.scheduleRules("water_fixtures", colHotWater, &wh.FixturesSchedule)...)
	if err := rs.apply("WaterHeating"); err != nil {
		return err
	}
	for _, f := range wh.Fixtures {
		gpm := fixtureGPM
		if f.LowFlow {
			gpm = lowFlowFixtureGPM
		}
		if err := (rules{constant("flow_rate", &f.FlowRate, gpm)}).apply(f.ID); err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) applySolarThermal() error {
	for _, s := range e.b.Systems.SolarThermal {
		if !s.CollectorArea.IsSet() {
			continue
		}
		if err := e.resolveAzimuth(s.ID, &s.CollectorAzimuth, &s.CollectorOrientation, e.defaultAzimuth()); err != nil {
			return err
		}
		err := rules{
			computed("storage_volume", &s.StorageVolume, func() float64 { return calc.SolarStorageVolume(s.CollectorArea.Val()) }),
		}.apply(s.ID)
		if err != nil {
			return err
		}
	}
	return nil
}
