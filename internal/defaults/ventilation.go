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

// infiltrationCredit is the infiltration flow credited against the required
// ventilation rate, from the first measurement that converts to ACH50.
func (e *engine) infiltrationCredit() float64 {
	for _, m := range e.b.Enclosure.AirInfiltration {
		if !m.IsQuantitative() {
			continue
		}
		volume := m.InfiltrationVolume.Or(e.b.Construction.ConditionedBuildingVolume.Val())
		ach50, ok := calc.ACH50FromMeasurement(m.UnitOfMeasure.Val(), m.AirLeakage.Val(), m.HousePressure.Val(), volume)
		if !ok {
			continue
		}
		height := m.InfiltrationHeight.Or(e.infiltrationHeight(volume))
		return calc.MechVentQinf(ach50, volume, height, e.w.Data.WSF)
	}
	return 0
}

func (e *engine) aExt() float64 {
	for _, m := range e.b.Enclosure.AirInfiltration {
		if v, ok := m.AExt.Get(); ok {
			return v
		}
	}
	return 1.0
}

func (e *engine) applyVentilationFans() error {
	if err := e.requirePasses(passInfiltration, passConstruction); err != nil {
		return err
	}
	for _, f := range e.b.Systems.VentilationFans {
		var rs rules
		switch {
		case f.UsedForWholeBuilding:
			rs = e.wholeBuildingFanRules(f)
		case f.UsedForLocal && f.FanLocation == hpxml.LocationKitchen:
			rs = localFanRules(f, 1, calc.KitchenFanFlowRate, calc.KitchenFanStartHour)
		case f.UsedForLocal && f.FanLocation == hpxml.LocationBath:
			rs = localFanRules(f, int(e.nbaths()), calc.BathFanFlowRate, calc.BathFanStartHour)
		case f.UsedForSeasonalCooling:
			rs = rules{
				computed("rated_flow_rate", &f.RatedFlowRate, func() float64 { return e.cfa() * calc.WholeHouseFanCFMPerSqft }),
				computed("fan_power", &f.FanPower, func() float64 {
					v, _ := f.FlowRate()
					return calc.Round(v*calc.WholeHouseFanWattsPerCFM, 1)
				}),
			}
		}
		if err := rs.apply(f.ID); err != nil {
			return err
		}
	}
	return nil
}

// wholeBuildingFanRules size a ventilation fan to the ASHRAE 62.2 rate,
// less the infiltration credit, for the hours it runs.
func (e *engine) wholeBuildingFanRules(f *hpxml.VentilationFan) rules {
	t := f.FanType.Val()
	rs := rules{
		constant("is_shared_system", &f.IsSharedSystem, false),
		computed("hours_in_operation", &f.HoursInOperation, func() float64 {
			if t == hpxml.MechVentCFIS {
				return calc.CFISHours
			}
			return calc.ContinuousHours
		}),
		when(func() bool { return !f.HasFlowRate() },
			computed("rated_flow_rate", &f.RatedFlowRate, func() float64 {
				qtot := calc.MechVentQtot(e.cfa(), e.nbeds())
				q := calc.MechVentFlowRate(qtot, e.infiltrationCredit(), e.aExt(), calc.IsBalanced(t), f.HoursInOperation.Val())
				return calc.Round(q, 1)
			})),
		computed("fan_power", &f.FanPower, func() float64 {
			v, _ := f.FlowRate()
			return calc.Round(v*calc.MechVentWattsPerCFM(t), 1)
		}),
	}
	if t == hpxml.MechVentCFIS {
		rs = append(rs,
			constant("cfis_addtl_runtime_operating_mode", &f.CFISAddlRuntimeMode, hpxml.CFISModeAirHandler),
			constant("cfis_vent_mode_airflow_fraction", &f.CFISAirflowFraction, calc.CFISAirflowFraction),
			constant("cfis_has_outdoor_air_control", &f.CFISHasOutdoorAirControl, true))
	}
	return rs
}

func localFanRules(f *hpxml.VentilationFan, quantity int, flow float64, start int) rules {
	return rules{
		constant("count", &f.Quantity, quantity),
		constant("rated_flow_rate", &f.RatedFlowRate, flow),
		constant("hours_in_operation", &f.HoursInOperation, calc.LocalFanHours),
		computed("fan_power", &f.FanPower, func() float64 {
			v, _ := f.FlowRate()
			return calc.Round(v*calc.LocalFanWattsPerCFM, 1)
		}),
		constant("start_hour", &f.StartHour, start),
	}
}
