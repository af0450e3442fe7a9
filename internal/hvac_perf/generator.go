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

package hvac_perf

import (
	"math"

	"github.com/pkg/errors"

	"github.com/antst/hpxdefaults/internal/calc"
	"github.com/antst/hpxdefaults/internal/hpxml"
	"github.com/antst/hpxdefaults/internal/logger"
	"github.com/antst/hpxdefaults/internal/weather"
)

const (
	ratedCFMPerTon = 400.0
	pscFanRated    = 0.365
	bpmFanRated    = 0.14
)

// Generator fills detailed performance data of HVAC equipment and records
// the derived values in Store. Prepare runs before sizing, Finalize after
// capacities are known.
type Generator struct {
	Store     *Store
	Weather   *weather.Weather
	GSHPModel hpxml.GSHPModelType
}

func NewGenerator(store *Store, w *weather.Weather, model hpxml.GSHPModelType) *Generator {
	return &Generator{Store: store, Weather: w, GSHPModel: model}
}

func cd(ct hpxml.CompressorType) float64 {
	if ct == hpxml.CompressorVariableSpeed {
		return 0.25
	}
	return 0.08
}

func fanPowerRated(seer float64, miniSplit, ducted bool) float64 {
	switch {
	case miniSplit:
		return calc.MiniSplitWattsPerCFM(ducted)
	case seer <= 15:
		return pscFanRated
	}
	return bpmFanRated
}

func hasCoolingMap(t hpxml.CoolingSystemType) bool {
	return t == hpxml.CoolingCentralAC || t == hpxml.CoolingMiniSplit
}

func hasHeatPumpMap(t hpxml.HeatPumpType) bool {
	return t == hpxml.HeatPumpAirToAir || t == hpxml.HeatPumpMiniSplit
}

// PrepareCooling records the derived values of a cooling system.
func (g *Generator) PrepareCooling(cs *hpxml.CoolingSystem) error {
	d := g.Store.For(cs.ID)
	if cs.CoolingSystemType == hpxml.CoolingEvaporative {
		d.Effectiveness = calc.EvaporativeEffective
		return nil
	}
	ct := cs.CompressorType.Or(hpxml.CompressorSingleStage)
	ductless := !cs.IsDucted()
	d.NumSpeeds = NumSpeeds(ct)
	d.CoolCapacityRatios = CoolCapacityRatios(ct, ductless)
	d.CoolRatedCFMPerTon = ratedCFMPerTon
	d.CoolCD = cd(ct)
	d.CoolRatedSHRGross = cs.CoolingSHR.Or(0)
	if hasCoolingMap(cs.CoolingSystemType) {
		d.FanPowerRated = fanPowerRated(cs.SEER.Or(cs.SEER2.Or(0)), cs.CoolingSystemType == hpxml.CoolingMiniSplit, cs.IsDucted())
	}
	return nil
}

// PrepareHeatPump records the derived values of a heat pump and resolves
// its 17F heating capacity. A 17F capacity always replaces a 17F fraction.
func (g *Generator) PrepareHeatPump(hp *hpxml.HeatPump) error {
	d := g.Store.For(hp.ID)
	ct := hp.CompressorType.Or(hpxml.CompressorSingleStage)
	ductless := !hp.IsDucted()
	d.NumSpeeds = NumSpeeds(ct)
	d.CoolRatedCFMPerTon = ratedCFMPerTon
	d.HeatRatedCFMPerTon = ratedCFMPerTon
	d.CoolCD, d.HeatCD = cd(ct), cd(ct)
	d.CoolRatedSHRGross = hp.CoolingSHR.Or(0)
	d.HeatMinTemp = hp.CompressorLockoutTemp.Or(0)

	switch {
	case hp.HeatPumpType == hpxml.HeatPumpGroundToAir:
		curves, err := GSHPCatalog(g.GSHPModel, ct, g.Weather)
		if err != nil {
			return err
		}
		d.GSHP = curves
		d.CoolCapacityRatios = curves.CapacityRatios
		d.HeatCapacityRatios = curves.CapacityRatios
		return nil
	case !hasHeatPumpMap(hp.HeatPumpType):
		d.CoolCapacityRatios = []float64{1.0}
		d.HeatCapacityRatios = []float64{1.0}
		return nil
	}

	d.CoolCapacityRatios = CoolCapacityRatios(ct, ductless)
	d.HeatCapacityRatios = HeatCapacityRatios(ct, ductless)
	d.FanPowerRated = fanPowerRated(hp.SEER.Or(hp.SEER2.Or(0)), hp.HeatPumpType == hpxml.HeatPumpMiniSplit, hp.IsDucted())

	qm17, err := g.qm17(hp, ct, ductless)
	if err != nil {
		return err
	}
	d.Qm17Full = qm17
	d.Qm5Full = Qm5Full(qm17)

	if capacity, ok := hp.HeatingCapacity.Get(); ok && !hp.HeatingCapacity17F.IsSet() {
		hp.HeatingCapacity17F.Default(math.Round(capacity * qm17))
		logger.L().Debugf("%s.heating_capacity_17F defaulted to %v", hp.ID, hp.HeatingCapacity17F.Val())
	}
	if hp.HeatingCapacity17F.IsSet() {
		hp.HeatingCapFraction17F.Clear()
	}
	return nil
}

// qm17 picks the 17F/47F capacity ratio from, in order, the user's 17F
// capacity, the 17F fraction, a detailed heating map and the HSPF2 fit.
func (g *Generator) qm17(hp *hpxml.HeatPump, ct hpxml.CompressorType, ductless bool) (float64, error) {
	if c17, ok := hp.HeatingCapacity17F.Get(); ok {
		if c47 := hp.HeatingCapacity.Or(0); c47 > 0 {
			return c17 / c47, nil
		}
	}
	if f, ok := hp.HeatingCapFraction17F.Get(); ok {
		return f, nil
	}
	if len(hp.HeatingPerformance) > 0 {
		c17, err := NominalAt(hp.HeatingPerformance, HeatSecondODB)
		if err == nil {
			c47, err := NominalAt(hp.HeatingPerformance, HeatRatedODB)
			if err == nil && c47 > 0 {
				return c17 / c47, nil
			}
		}
	}
	hspf2 := hp.HSPF2.Or(0)
	if hspf2 <= 0 {
		return 0, errors.Errorf("heat pump %s has no HSPF2", hp.ID)
	}
	return Qm17Full(hspf2, ct, ductless), nil
}

// FinalizeCooling synthesizes or completes the cooling map of a sized system.
func (g *Generator) FinalizeCooling(cs *hpxml.CoolingSystem) error {
	if !hasCoolingMap(cs.CoolingSystemType) {
		return nil
	}
	data, err := g.coolingData(cs.ID, cs.CoolingPerformance, CoolingRating{
		Capacity:   cs.CoolingCapacity.Or(0),
		SEER2:      cs.SEER2.Or(0),
		EER2:       cs.EER2.Or(0),
		Compressor: cs.CompressorType.Or(hpxml.CompressorSingleStage),
		Ductless:   !cs.IsDucted(),
	})
	if err != nil {
		return err
	}
	cs.CoolingPerformance = data
	return nil
}

// FinalizeHeatPump synthesizes or completes both maps of a sized heat pump.
func (g *Generator) FinalizeHeatPump(hp *hpxml.HeatPump) error {
	if !hasHeatPumpMap(hp.HeatPumpType) {
		return nil
	}
	ct := hp.CompressorType.Or(hpxml.CompressorSingleStage)
	if hp.FractionCoolLoad > 0 || len(hp.CoolingPerformance) > 0 {
		data, err := g.coolingData(hp.ID, hp.CoolingPerformance, CoolingRating{
			Capacity:   hp.CoolingCapacity.Or(0),
			SEER2:      hp.SEER2.Or(0),
			EER2:       hp.EER2.Or(0),
			Compressor: ct,
			Ductless:   !hp.IsDucted(),
		})
		if err != nil {
			return err
		}
		hp.CoolingPerformance = data
	}

	capacity := hp.HeatingCapacity.Or(0)
	if capacity <= 0 {
		return nil
	}
	if len(hp.HeatingPerformance) > 0 {
		ResolveFractions(hp.HeatingPerformance, capacity)
		data, err := CompleteGrid(hp.HeatingPerformance, ct)
		if err != nil {
			return errors.WithMessagef(err, "heat pump %s heating", hp.ID)
		}
		hp.HeatingPerformance = data
		return nil
	}
	d := g.Store.For(hp.ID)
	pts, err := HeatingMap(HeatingRating{
		Capacity:    capacity,
		HSPF2:       hp.HSPF2.Or(0),
		Qm17:        d.Qm17Full,
		Compressor:  ct,
		Ductless:    !hp.IsDucted(),
		LockoutTemp: d.HeatMinTemp,
	})
	if err != nil {
		return errors.WithMessagef(err, "heat pump %s heating", hp.ID)
	}
	hp.HeatingPerformance = ToData(pts)
	return nil
}

func (g *Generator) coolingData(id string, user []*hpxml.PerformanceDatum, r CoolingRating) ([]*hpxml.PerformanceDatum, error) {
	if len(user) > 0 {
		ResolveFractions(user, r.Capacity)
		data, err := CompleteGrid(user, r.Compressor)
		if err != nil {
			return nil, errors.WithMessagef(err, "%s cooling", id)
		}
		return data, nil
	}
	if r.Capacity <= 0 {
		return nil, nil
	}
	pts, err := CoolingMap(r)
	if err != nil {
		return nil, errors.WithMessagef(err, "%s cooling", id)
	}
	return ToData(pts), nil
}
