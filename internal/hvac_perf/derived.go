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

// Package hvac_perf derives detailed compressor performance maps from
// nameplate ratings and keeps the derived values the sizing step needs.
package hvac_perf

import (
	"github.com/antst/hpxdefaults/internal/hpxml"
)

// Derived holds the performance values computed for one HVAC entity. They
// are never written to the building document.
type Derived struct {
	NumSpeeds int

	// Capacity ratios of each speed relative to nominal, ordered min to max.
	CoolCapacityRatios []float64
	HeatCapacityRatios []float64

	CoolRatedCFMPerTon float64
	HeatRatedCFMPerTon float64
	FanPowerRated      float64
	CoolCD             float64
	HeatCD             float64
	CoolRatedSHRGross  float64

	// Ratio of heating capacity at 17F and 5F to the 47F capacity.
	Qm17Full float64
	Qm5Full  float64

	// Lowest outdoor temperature the compressor runs at, deg F.
	HeatMinTemp float64

	Effectiveness float64

	GSHP *GSHPCurves
}

// Store maps entity ids to their derived performance.
type Store struct {
	m map[string]*Derived
}

func NewStore() *Store {
	return &Store{m: make(map[string]*Derived)}
}

// For returns the entry of id, creating it when absent.
func (s *Store) For(id string) *Derived {
	d, ok := s.m[id]
	if !ok {
		d = &Derived{}
		s.m[id] = d
	}
	return d
}

// Get returns the entry of id if the generator produced one.
func (s *Store) Get(id string) (*Derived, bool) {
	d, ok := s.m[id]
	return d, ok
}

func (s *Store) Len() int {
	return len(s.m)
}

// NumSpeeds is the number of compressor speeds modeled for a compressor type.
func NumSpeeds(ct hpxml.CompressorType) int {
	switch ct {
	case hpxml.CompressorTwoStage:
		return 2
	case hpxml.CompressorVariableSpeed:
		return 3
	}
	return 1
}

// Speeds lists the capacity descriptions of a compressor type, min to max.
func Speeds(ct hpxml.CompressorType) []hpxml.CapacityDescription {
	switch ct {
	case hpxml.CompressorTwoStage:
		return []hpxml.CapacityDescription{hpxml.CapacityMinimum, hpxml.CapacityNominal}
	case hpxml.CompressorVariableSpeed:
		return []hpxml.CapacityDescription{hpxml.CapacityMinimum, hpxml.CapacityNominal, hpxml.CapacityMaximum}
	}
	return []hpxml.CapacityDescription{hpxml.CapacityNominal}
}
