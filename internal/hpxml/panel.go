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

package hpxml

import "slices"

type PanelCalculationType string

const (
	PanelCalc2023LoadBased  PanelCalculationType = "2023 Existing Dwelling Load-Based"
	PanelCalc2023MeterBased PanelCalculationType = "2023 Existing Dwelling Meter-Based"
)

type PanelLoadType string

const (
	PanelLoadHeating            PanelLoadType = "heating"
	PanelLoadCooling            PanelLoadType = "cooling"
	PanelLoadWaterHeater        PanelLoadType = "hot water"
	PanelLoadClothesDryer       PanelLoadType = "clothes dryer"
	PanelLoadDishwasher         PanelLoadType = "dishwasher"
	PanelLoadRangeOven          PanelLoadType = "range/oven"
	PanelLoadMechVent           PanelLoadType = "mech vent"
	PanelLoadPermanentSpaHeater PanelLoadType = "permanent spa heater"
	PanelLoadPermanentSpaPump   PanelLoadType = "permanent spa pump"
	PanelLoadPoolHeater         PanelLoadType = "pool heater"
	PanelLoadPoolPump           PanelLoadType = "pool pump"
	PanelLoadWellPump           PanelLoadType = "well pump"
	PanelLoadEVCharging         PanelLoadType = "electric vehicle charging"
	PanelLoadLighting           PanelLoadType = "lighting"
	PanelLoadKitchen            PanelLoadType = "kitchen"
	PanelLoadLaundry            PanelLoadType = "laundry"
	PanelLoadOther              PanelLoadType = "other"
)

// IsHVAC reports whether the load is heating or cooling. Those are combined
// with max() instead of summed by the load-based capacity calculation.
func (t PanelLoadType) IsHVAC() bool {
	return t == PanelLoadHeating || t == PanelLoadCooling
}

type ElectricPanel struct {
	ID               string           `yaml:"id"`
	Voltage          Opt[int]         `yaml:"voltage,omitempty"`
	MaxCurrentRating Opt[float64]     `yaml:"max_current_rating,omitempty"`
	HeadroomSpaces   Opt[int]         `yaml:"headroom_spaces,omitempty"`
	RatedTotalSpaces Opt[int]         `yaml:"rated_total_spaces,omitempty"`
	ServiceFeeders   []*ServiceFeeder `yaml:"service_feeders,omitempty"`
	BranchCircuits   []*BranchCircuit `yaml:"branch_circuits,omitempty"`

	Capacities    []*PanelCapacity `yaml:"capacities,omitempty"`
	BreakerSpaces BreakerSpaces    `yaml:"breaker_spaces,omitempty"`
}

// PanelCapacity is the result of one load calculation type.
type PanelCapacity struct {
	Type      PanelCalculationType `yaml:"type"`
	TotalW    float64              `yaml:"total_w"`
	TotalA    float64              `yaml:"total_a"`
	HeadroomA float64              `yaml:"headroom_a"`
}

type BreakerSpaces struct {
	Total    int `yaml:"total,omitempty"`
	Occupied int `yaml:"occupied,omitempty"`
	Headroom int `yaml:"headroom,omitempty"`
}

type ServiceFeeder struct {
	ID           string        `yaml:"id"`
	LoadType     PanelLoadType `yaml:"type"`
	PowerRating  Opt[float64]  `yaml:"power,omitempty"`
	IsNewLoad    Opt[bool]     `yaml:"is_new_load,omitempty"`
	ComponentIDs []string      `yaml:"components,omitempty"`
}

type BranchCircuit struct {
	ID               string       `yaml:"id"`
	Voltage          Opt[int]     `yaml:"voltage,omitempty"`
	MaxCurrentRating Opt[float64] `yaml:"max_current_rating,omitempty"`
	OccupiedSpaces   Opt[int]     `yaml:"occupied_spaces,omitempty"`
	ComponentIDs     []string     `yaml:"components,omitempty"`
}

// References reports whether id is one of the wired components.
func (f *ServiceFeeder) References(id string) bool {
	return slices.Contains(f.ComponentIDs, id)
}

func (c *BranchCircuit) References(id string) bool {
	return slices.Contains(c.ComponentIDs, id)
}

// FeederFor returns the first service feeder wired to the component.
func (p *ElectricPanel) FeederFor(id string) *ServiceFeeder {
	for _, f := range p.ServiceFeeders {
		if f.References(id) {
			return f
		}
	}
	return nil
}

func (p *ElectricPanel) CircuitsFor(id string) []*BranchCircuit {
	var res []*BranchCircuit
	for _, c := range p.BranchCircuits {
		if c.References(id) {
			res = append(res, c)
		}
	}
	return res
}
