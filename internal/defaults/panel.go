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

	"github.com/antst/hpxdefaults/internal/hpxml"
	"github.com/antst/hpxdefaults/internal/panel"
)

const lightingVAPerSqft = 3.0

// component is one electric load wired to a panel. spaces is the breaker
// occupancy from the load table, 0 when it follows from power.
type component struct {
	id      string
	demands []panel.Demand
	spaces  int
}

func (c component) circuitDemand() panel.Demand {
	var d panel.Demand
	for _, x := range c.demands {
		if x.Power > d.Power {
			d = x
		}
	}
	return d
}

// tableLoad looks up a fixed panel load at the voltage of the circuit the
// component is wired to, or at voltage when no circuit sets one. Without a
// row at that voltage only the power rating of another row is used.
func (e *engine) tableLoad(entity, name string, lt hpxml.PanelLoadType, voltage int) (component, error) {
	voltage = e.circuitVoltage(entity, voltage)
	pl, exact, err := e.cache.PanelLoad(name, voltage)
	if err != nil {
		return component{}, configErrorf(entity, "panel_load", "%v", err)
	}
	if !exact {
		e.diag.warnf(entity, "no %s panel load at %dV, using the %.0f W of the %dV row", name, voltage, pl.PowerWatts, pl.Voltage)
		return component{
			id:      entity,
			demands: []panel.Demand{{LoadType: lt, Power: pl.PowerWatts, Voltage: voltage}},
		}, nil
	}
	return component{
		id:      entity,
		demands: []panel.Demand{{LoadType: lt, Power: pl.PowerWatts, Voltage: pl.Voltage}},
		spaces:  pl.BreakerSpaces,
	}, nil
}

// circuitVoltage is the voltage of the first branch circuit wired to id
// that has one, else fallback.
func (e *engine) circuitVoltage(id string, fallback int) int {
	for _, p := range e.b.Systems.ElectricPanels {
		for _, bc := range p.BranchCircuits {
			if v, ok := bc.Voltage.Get(); ok && bc.References(id) {
				return v
			}
		}
	}
	return fallback
}

// components lists every electric load of the building in a fixed order.
func (e *engine) components() ([]component, error) {
	sys := &e.b.Systems
	var cs []component
	add := func(c component, err error) error {
		if err != nil {
			return err
		}
		cs = append(cs, c)
		return nil
	}

	for _, hs := range sys.HeatingSystems {
		cs = append(cs, component{id: hs.ID, demands: []panel.Demand{panel.HeatingSystemDemand(hs)}})
	}
	for _, c := range sys.CoolingSystems {
		cs = append(cs, component{id: c.ID, demands: []panel.Demand{panel.CoolingSystemDemand(c)}})
	}
	for _, hp := range sys.HeatPumps {
		htg, clg := panel.HeatPumpDemands(hp, panel.SimultaneousBackup(hp))
		c := component{id: hp.ID, demands: []panel.Demand{htg}}
		if clg.Power > 0 {
			c.demands = append(c.demands, clg)
		}
		cs = append(cs, c)
	}
	for _, wh := range sys.WaterHeating.Systems {
		if wh.FuelType != hpxml.FuelElectricity {
			continue
		}
		name := "electric storage water heater"
		switch wh.WaterHeaterType {
		case hpxml.WaterHeaterTankless:
			name = "electric tankless water heater"
		case hpxml.WaterHeaterHeatPump:
			name = "heat pump water heater"
		case hpxml.WaterHeaterCombiStorage, hpxml.WaterHeaterCombiTankless:
			continue
		}
		if err := add(e.tableLoad(wh.ID, name, hpxml.PanelLoadWaterHeater, panel.DefaultPanelVoltage)); err != nil {
			return nil, err
		}
	}

	ap := &e.b.Appliances
	for _, d := range ap.ClothesDryers {
		if d.FuelType != hpxml.FuelElectricity {
			continue
		}
		name := "electric clothes dryer"
		if d.DryingMethod.Val() == hpxml.DryingHeatPump {
			name = "heat pump clothes dryer"
		}
		if err := add(e.tableLoad(d.ID, name, hpxml.PanelLoadClothesDryer, panel.DefaultPanelVoltage)); err != nil {
			return nil, err
		}
	}
	for _, d := range ap.Dishwashers {
		if err := add(e.tableLoad(d.ID, "dishwasher", hpxml.PanelLoadDishwasher, 120)); err != nil {
			return nil, err
		}
	}
	for _, r := range ap.CookingRanges {
		if r.FuelType != hpxml.FuelElectricity {
			continue
		}
		name := "electric range/oven"
		if r.IsInduction.Val() {
			name = "induction range/oven"
		}
		if err := add(e.tableLoad(r.ID, name, hpxml.PanelLoadRangeOven, panel.DefaultPanelVoltage)); err != nil {
			return nil, err
		}
	}

	for _, f := range sys.VentilationFans {
		w := f.FanPower.Or(0) * float64(f.Quantity.Or(1))
		if w <= 0 {
			continue
		}
		cs = append(cs, component{id: f.ID, demands: []panel.Demand{{LoadType: hpxml.PanelLoadMechVent, Power: math.Round(w), Voltage: 120}}})
	}

	pools := func(ps []*hpxml.Pool, heater, pump string, heaterLT, pumpLT hpxml.PanelLoadType) error {
		for _, p := range ps {
			if p.HasHeater() && p.HeaterType != hpxml.PoolHeaterGas {
				if err := add(e.tableLoad(p.ID, heater, heaterLT, panel.DefaultPanelVoltage)); err != nil {
					return err
				}
			}
			if p.HasPump() {
				if err := add(e.tableLoad(p.ID, pump, pumpLT, panel.DefaultPanelVoltage)); err != nil {
					return err
				}
			}
		}
		return nil
	}
	if err := pools(e.b.MiscLoads.Pools, "pool heater", "pool pump", hpxml.PanelLoadPoolHeater, hpxml.PanelLoadPoolPump); err != nil {
		return nil, err
	}
	if err := pools(e.b.MiscLoads.PermanentSpas, "permanent spa heater", "permanent spa pump", hpxml.PanelLoadPermanentSpaHeater, hpxml.PanelLoadPermanentSpaPump); err != nil {
		return nil, err
	}
	for _, pl := range e.b.MiscLoads.PlugLoads {
		if pl.PlugLoadType != hpxml.PlugLoadWellPump {
			continue
		}
		if err := add(e.tableLoad(pl.ID, "well pump", hpxml.PanelLoadWellPump, panel.DefaultPanelVoltage)); err != nil {
			return nil, err
		}
	}
	for _, c := range sys.EVChargers {
		name, voltage := "electric vehicle charging level 2", panel.DefaultPanelVoltage
		if c.ChargingLevel.Val() == 1 {
			name, voltage = "electric vehicle charging level 1", 120
		}
		if err := add(e.tableLoad(c.ID, name, hpxml.PanelLoadEVCharging, voltage)); err != nil {
			return nil, err
		}
	}
	return cs, nil
}

// mergeSpaces combines the breaker occupancy of the components of a
// circuit. Fixed loads keep their table value.
func mergeSpaces(cs []component, voltage int, amps float64) int {
	var power float64
	spaces := 0
	for _, c := range cs {
		if c.spaces > 0 {
			spaces += c.spaces
			continue
		}
		power += c.circuitDemand().Power
	}
	return spaces + panel.BreakerSpaces(power, voltage, amps)
}

func hasFeeder(p *hpxml.ElectricPanel, id string, lt hpxml.PanelLoadType) bool {
	for _, f := range p.ServiceFeeders {
		if f.LoadType == lt && f.References(id) {
			return true
		}
	}
	return false
}

func hasFeederType(p *hpxml.ElectricPanel, lt hpxml.PanelLoadType) bool {
	for _, f := range p.ServiceFeeders {
		if f.LoadType == lt {
			return true
		}
	}
	return false
}

// applyPanels wires every electric load of the building to the first panel
// that lacks it, fills the feeders and circuits, then computes the panel
// capacities. It runs on final autosized capacities.
func (e *engine) applyPanels() error {
	if err := e.requirePasses(passSizing, passAppliances, passVehicles); err != nil {
		return err
	}
	panels := e.b.Systems.ElectricPanels
	if len(panels) == 0 {
		return nil
	}
	if len(e.hdr.PanelCalculationTypes) == 0 {
		e.hdr.PanelCalculationTypes = []hpxml.PanelCalculationType{hpxml.PanelCalc2023LoadBased}
		logDefault("Header", "service_feeders_load_calculation_types", e.hdr.PanelCalculationTypes)
	}
	comps, err := e.components()
	if err != nil {
		return err
	}
	byID := map[string]component{}
	for _, c := range comps {
		byID[c.id] = c
	}

	for i, p := range panels {
		err := rules{
			constant("voltage", &p.Voltage, panel.DefaultPanelVoltage),
			constant("max_current_rating", &p.MaxCurrentRating, panel.DefaultPanelMaxAmps),
			when(func() bool { return !p.RatedTotalSpaces.IsSet() },
				constant("headroom_spaces", &p.HeadroomSpaces, panel.DefaultHeadroomSpaces)),
		}.apply(p.ID)
		if err != nil {
			return err
		}
		if i == 0 {
			if err := e.wirePanel(p, comps); err != nil {
				return err
			}
		}
		if err := e.fillFeeders(p, byID); err != nil {
			return err
		}
		if err := e.fillCircuits(p, byID); err != nil {
			return err
		}
		if skipped := panel.Calculate(p, e.hdr.PanelCalculationTypes, e.panelBackups()); len(skipped) > 0 {
			e.diag.warnf(p.ID, "skipped capacity calculations %v, they need simulated peak demand", skipped)
		}
	}
	return nil
}

// wirePanel synthesizes the feeders and circuits of components and house
// loads the panel does not list yet.
func (e *engine) wirePanel(p *hpxml.ElectricPanel, comps []component) error {
	n := len(p.ServiceFeeders)
	feeder := func(lt hpxml.PanelLoadType, ids ...string) *hpxml.ServiceFeeder {
		n++
		f := &hpxml.ServiceFeeder{ID: fmt.Sprintf("%s_ServiceFeeder%d", p.ID, n), LoadType: lt, ComponentIDs: ids}
		p.ServiceFeeders = append(p.ServiceFeeders, f)
		logDefault(p.ID, "service_feeder", f.ID)
		return f
	}
	for _, c := range comps {
		for _, d := range c.demands {
			if !hasFeeder(p, c.id, d.LoadType) {
				feeder(d.LoadType, c.id)
			}
		}
		if len(p.CircuitsFor(c.id)) == 0 {
			d := c.circuitDemand()
			bc := &hpxml.BranchCircuit{
				ID:           fmt.Sprintf("%s_BranchCircuit_%s", p.ID, c.id),
				Voltage:      hpxml.Defaulted(d.Voltage),
				ComponentIDs: []string{c.id},
			}
			p.BranchCircuits = append(p.BranchCircuits, bc)
			logDefault(p.ID, "branch_circuit", bc.ID)
		}
	}

	if !hasFeederType(p, hpxml.PanelLoadLighting) {
		f := feeder(hpxml.PanelLoadLighting)
		f.PowerRating.Default(math.Round(lightingVAPerSqft * e.cfa()))
	}
	for _, house := range []struct {
		name string
		lt   hpxml.PanelLoadType
	}{{"kitchen", hpxml.PanelLoadKitchen}, {"laundry", hpxml.PanelLoadLaundry}} {
		if hasFeederType(p, house.lt) {
			continue
		}
		c, err := e.tableLoad(p.ID, house.name, house.lt, 120)
		if err != nil {
			return err
		}
		d := c.demands[0]
		f := feeder(house.lt)
		f.PowerRating.Default(d.Power)
		p.BranchCircuits = append(p.BranchCircuits, &hpxml.BranchCircuit{
			ID:               fmt.Sprintf("%s_BranchCircuit_%s", p.ID, house.name),
			Voltage:          hpxml.Defaulted(d.Voltage),
			MaxCurrentRating: hpxml.Defaulted(panel.DefaultMaxCurrent(d.Voltage)),
			OccupiedSpaces:   hpxml.Defaulted(c.spaces),
		})
	}
	return nil
}

// fillFeeders rates each feeder at the demand of the components it serves.
func (e *engine) fillFeeders(p *hpxml.ElectricPanel, byID map[string]component) error {
	for _, f := range p.ServiceFeeders {
		err := rules{
			field("power", &f.PowerRating, func() (float64, bool, error) {
				var w float64
				for _, id := range f.ComponentIDs {
					c, ok := byID[id]
					if !ok {
						e.diag.warnf(f.ID, "component %q draws no power from the panel", id)
						continue
					}
					for _, d := range c.demands {
						if d.LoadType == f.LoadType {
							w += d.Power
						}
					}
				}
				return w, true, nil
			}),
			constant("is_new_load", &f.IsNewLoad, false),
		}.apply(f.ID)
		if err != nil {
			return err
		}
	}
	return nil
}

// fillCircuits sizes each branch circuit and splits those that need more
// breaker spaces than one breaker at their voltage provides.
func (e *engine) fillCircuits(p *hpxml.ElectricPanel, byID map[string]component) error {
	var circuits []*hpxml.BranchCircuit
	for _, bc := range p.BranchCircuits {
		var cs []component
		for _, id := range bc.ComponentIDs {
			if c, ok := byID[id]; ok {
				cs = append(cs, c)
			}
		}
		err := rules{
			constant("voltage", &bc.Voltage, 120),
			computed("max_current_rating", &bc.MaxCurrentRating, func() float64 { return panel.DefaultMaxCurrent(bc.Voltage.Val()) }),
			computed("occupied_spaces", &bc.OccupiedSpaces, func() int {
				return mergeSpaces(cs, bc.Voltage.Val(), bc.MaxCurrentRating.Val())
			}),
		}.apply(bc.ID)
		if err != nil {
			return err
		}
		circuits = append(circuits, panel.SplitCircuit(bc)...)
	}
	p.BranchCircuits = circuits
	return nil
}

func (e *engine) panelBackups() []panel.Backup {
	var bs []panel.Backup
	for _, hp := range e.b.Systems.HeatPumps {
		if hp.BackupSystem == "" {
			continue
		}
		bs = append(bs, panel.Backup{HeatPump: hp.ID, System: hp.BackupSystem, Simultaneous: panel.SimultaneousBackup(hp)})
	}
	return bs
}
