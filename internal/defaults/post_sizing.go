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
	"math"

	"github.com/pkg/errors"

	"github.com/antst/hpxdefaults/internal/calc"
	"github.com/antst/hpxdefaults/internal/hpxml"
)

// applySizing computes design loads of the fully defaulted building and
// autosizes every HVAC capacity and airflow still unset.
func (e *engine) applySizing() error {
	if err := e.requirePasses(passHVAC, passDistribution, passInfiltration, passVentilation); err != nil {
		return err
	}
	res, err := e.sizer.Size(e.b, e.w, e.store)
	if err != nil {
		return errors.Wrap(err, "size hvac")
	}
	e.sized = res
	return nil
}

// applyPerformance completes the performance maps of sized compressors and
// sizes the geothermal loops.
func (e *engine) applyPerformance() error {
	if err := e.requirePasses(passSizing); err != nil {
		return err
	}
	sys := &e.b.Systems
	for _, cs := range sys.CoolingSystems {
		if err := e.gen.FinalizeCooling(cs); err != nil {
			return errors.WithMessagef(err, "cooling system %s", cs.ID)
		}
	}
	for _, hp := range sys.HeatPumps {
		if err := e.applyCapacity17F(hp); err != nil {
			return err
		}
		if err := e.gen.FinalizeHeatPump(hp); err != nil {
			return errors.WithMessagef(err, "heat pump %s", hp.ID)
		}
	}
	return e.sizeGeothermalLoops()
}

// applyCapacity17F derives the 17F heating capacity of a sized heat pump
// from its capacity retention. A 17F capacity always replaces a 17F fraction.
func (e *engine) applyCapacity17F(hp *hpxml.HeatPump) error {
	d, ok := e.store.Get(hp.ID)
	err := rules{
		when(func() bool { return ok && d.Qm17Full > 0 && hp.HeatingCapacity.IsSet() },
			computed("heating_capacity_17F", &hp.HeatingCapacity17F, func() float64 {
				return math.Round(hp.HeatingCapacity.Val() * d.Qm17Full)
			})),
	}.apply(hp.ID)
	if err != nil {
		return err
	}
	if hp.HeatingCapacity17F.IsSet() {
		hp.HeatingCapFraction17F.Clear()
	}
	return nil
}

// sizeGeothermalLoops lays out bores for the larger of the heating and
// cooling capacity of the heat pumps on each loop.
func (e *engine) sizeGeothermalLoops() error {
	tons := map[string]float64{}
	for _, hp := range e.b.Systems.HeatPumps {
		if hp.GeothermalLoop == "" {
			continue
		}
		capacity := math.Max(hp.HeatingCapacity.Or(0), hp.CoolingCapacity.Or(0))
		tons[hp.GeothermalLoop] += capacity / calc.BtuhPerTon
	}
	for _, l := range e.b.Systems.GeothermalLoops {
		t := tons[l.ID]
		if t <= 0 {
			continue
		}
		total := t * geoBoreFeetPerTon
		err := rules{
			computed("num_bore_holes", &l.BoreholesCount, func() int {
				return int(math.Max(1, math.Ceil(total/geoMaxBoreLength)))
			}),
			computed("bore_length", &l.BoreholesLength, func() float64 {
				return calc.Round(total/float64(l.BoreholesCount.Val()), 1)
			}),
			computed("loop_flow", &l.LoopFlow, func() float64 {
				return calc.Round(math.Max(geoMinLoopFlow, t*geoLoopFlowGPMPerTon), 1)
			}),
		}.apply(l.ID)
		if err != nil {
			return err
		}
	}
	return nil
}

// blowerWattsPerCFM is the fan power of the air handler serving
// distribution id.
func (e *engine) blowerWattsPerCFM(id string) (float64, bool) {
	sys := &e.b.Systems
	var commons []*hpxml.HVACCommon
	for _, hp := range sys.HeatPumps {
		commons = append(commons, &hp.HVACCommon)
	}
	for _, hs := range sys.HeatingSystems {
		commons = append(commons, &hs.HVACCommon)
	}
	for _, cs := range sys.CoolingSystems {
		commons = append(commons, &cs.HVACCommon)
	}
	for _, c := range commons {
		if c.DistributionSystem == id && c.FanWattsPerCFM.IsSet() {
			return c.FanWattsPerCFM.Val(), true
		}
	}
	return 0, false
}

// applyCFIS gives central fan integrated supply fans the blower power of
// the air handler they run.
func (e *engine) applyCFIS() error {
	if err := e.requirePasses(passSizing); err != nil {
		return err
	}
	for _, f := range e.b.Systems.VentilationFans {
		if !f.UsedForWholeBuilding || f.FanType.Val() != hpxml.MechVentCFIS {
			continue
		}
		if e.distribution(f.AttachedToDistribution) == nil {
			return configErrorf(f.ID, "attached_to_hvac_distribution_system",
				"distribution %q not found", f.AttachedToDistribution)
		}
		err := rules{
			field("cfis_blower_fan_power_watts_per_cfm", &f.CFISBlowerFanPower, func() (float64, bool, error) {
				v, ok := e.blowerWattsPerCFM(f.AttachedToDistribution)
				return v, ok, nil
			}),
		}.apply(f.ID)
		if err != nil {
			return err
		}
	}
	return nil
}

func (e *engine) applyCrankcase() error {
	if err := e.requirePasses(passSizing); err != nil {
		return err
	}
	sys := &e.b.Systems
	for _, cs := range sys.CoolingSystems {
		switch cs.CoolingSystemType {
		case hpxml.CoolingEvaporative, hpxml.CoolingChiller, hpxml.CoolingCoolingTower:
			continue
		}
		room := cs.CoolingSystemType == hpxml.CoolingRoomAC || cs.CoolingSystemType == hpxml.CoolingPTAC
		err := rules{
			constant("crankcase_heater_watts", &cs.CrankcaseHeaterWatts, calc.CrankcaseHeaterWatts(room || !cs.IsDucted())),
		}.apply(cs.ID)
		if err != nil {
			return err
		}
	}
	for _, hp := range sys.HeatPumps {
		if !hp.IsAirSource() {
			continue
		}
		room := hp.HeatPumpType == hpxml.HeatPumpPTHP || hp.HeatPumpType == hpxml.HeatPumpRoomReversed
		err := rules{
			constant("crankcase_heater_watts", &hp.CrankcaseHeaterWatts, calc.CrankcaseHeaterWatts(room || !hp.IsDucted())),
		}.apply(hp.ID)
		if err != nil {
			return err
		}
	}
	return nil
}
