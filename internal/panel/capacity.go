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

package panel

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/antst/hpxdefaults/internal/hpxml"
)

// NEC 220.83: the first 8 kVA of non-HVAC load at 100%, the rest at 40%.
const (
	demandThreshold = 8000.0
	demandFactor    = 0.4
)

// Backup pairs a heat pump with the heating system backing it up.
// Simultaneous backups may run together with the compressor.
type Backup struct {
	HeatPump     string
	System       string
	Simultaneous bool
}

func DiscountLoad(load, threshold, factor float64) float64 {
	return math.Min(threshold, load) + factor*math.Max(0, load-threshold)
}

type feederFilter func(f *hpxml.ServiceFeeder) bool

func all(*hpxml.ServiceFeeder) bool { return true }

func newLoads(f *hpxml.ServiceFeeder) bool { return f.IsNewLoad.Val() }

func existingLoads(f *hpxml.ServiceFeeder) bool { return !f.IsNewLoad.Val() }

func sumPower(p *hpxml.ElectricPanel, keep feederFilter) float64 {
	var ws []float64
	for _, f := range p.ServiceFeeders {
		if keep(f) {
			ws = append(ws, f.PowerRating.Val())
		}
	}
	return floats.Sum(ws)
}

func feederPower(p *hpxml.ElectricPanel, id string) float64 {
	if f := p.FeederFor(id); f != nil {
		return f.PowerRating.Val()
	}
	return 0
}

// counts reports whether a heating feeder adds to the heating load. Of a
// heat pump and a backup that cannot run together only the larger counts,
// the heat pump on a tie.
func counts(p *hpxml.ElectricPanel, f *hpxml.ServiceFeeder, backups []Backup) bool {
	w := f.PowerRating.Val()
	for _, b := range backups {
		if b.Simultaneous || (f.References(b.HeatPump) && f.References(b.System)) {
			continue
		}
		switch {
		case f.References(b.HeatPump):
			if feederPower(p, b.System) > w {
				return false
			}
		case f.References(b.System):
			if feederPower(p, b.HeatPump) >= w {
				return false
			}
		}
	}
	return true
}

// heatingLoad sums the heating feeders selected by keep.
func heatingLoad(p *hpxml.ElectricPanel, backups []Backup, keep feederFilter) float64 {
	var ws []float64
	for _, f := range p.ServiceFeeders {
		if f.LoadType != hpxml.PanelLoadHeating || !keep(f) || !counts(p, f, backups) {
			continue
		}
		ws = append(ws, f.PowerRating.Val())
	}
	return floats.Sum(ws)
}

func coolingLoad(p *hpxml.ElectricPanel, keep feederFilter) float64 {
	return sumPower(p, func(f *hpxml.ServiceFeeder) bool {
		return f.LoadType == hpxml.PanelLoadCooling && keep(f)
	})
}

// LoadBasedW is the NEC 220.83 service load of the panel in W. Without new
// HVAC loads every feeder is summed and discounted (part A); otherwise the
// larger of heating and cooling is added to the discounted rest (part B).
func LoadBasedW(p *hpxml.ElectricPanel, backups []Backup) float64 {
	htgNew := heatingLoad(p, backups, newLoads)
	clgNew := coolingLoad(p, newLoads)
	if htgNew+clgNew == 0 {
		return DiscountLoad(sumPower(p, all), demandThreshold, demandFactor)
	}
	htg := heatingLoad(p, backups, existingLoads) + htgNew
	clg := coolingLoad(p, existingLoads) + clgNew
	other := sumPower(p, func(f *hpxml.ServiceFeeder) bool { return !f.LoadType.IsHVAC() })
	return math.Max(htg, clg) + DiscountLoad(other, demandThreshold, demandFactor)
}

// IsLoadBased reports calculation types this package can evaluate. Meter
// based types need simulated peak demand.
func IsLoadBased(t hpxml.PanelCalculationType) bool {
	return strings.Contains(string(t), "Load-Based")
}

// Calculate fills the capacities and breaker space totals of a panel whose
// voltage, rating, feeders and circuits are final. It returns the types it
// skipped.
func Calculate(p *hpxml.ElectricPanel, types []hpxml.PanelCalculationType, backups []Backup) []hpxml.PanelCalculationType {
	var skipped []hpxml.PanelCalculationType
	p.Capacities = nil
	voltage := float64(p.Voltage.Or(DefaultPanelVoltage))
	for _, t := range types {
		if !IsLoadBased(t) {
			skipped = append(skipped, t)
			continue
		}
		w := LoadBasedW(p, backups)
		a := w / voltage
		p.Capacities = append(p.Capacities, &hpxml.PanelCapacity{
			Type:      t,
			TotalW:    math.Round(w*10) / 10,
			TotalA:    math.Round(a),
			HeadroomA: math.Round(p.MaxCurrentRating.Or(DefaultPanelMaxAmps) - a),
		})
	}
	p.BreakerSpaces = Spaces(p)
	return skipped
}

// Spaces totals the breaker slots of a panel.
func Spaces(p *hpxml.ElectricPanel) hpxml.BreakerSpaces {
	occupied := 0
	for _, c := range p.BranchCircuits {
		occupied += c.OccupiedSpaces.Val()
	}
	total, ok := p.RatedTotalSpaces.Get()
	if !ok {
		total = occupied + p.HeadroomSpaces.Or(DefaultHeadroomSpaces)
	}
	return hpxml.BreakerSpaces{Total: total, Occupied: occupied, Headroom: total - occupied}
}
