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

// Package panel models the electric panel: breaker occupancy of branch
// circuits and the NEC 220.83 load-based service capacity.
package panel

import (
	"fmt"
	"math"

	"github.com/antst/hpxdefaults/internal/hpxml"
)

const (
	DefaultPanelVoltage   = 240
	DefaultPanelMaxAmps   = 200.0
	DefaultHeadroomSpaces = 3

	volt120 = 120
)

// DefaultMaxCurrent is the breaker rating of a branch circuit at voltage.
func DefaultMaxCurrent(voltage int) float64 {
	if voltage >= 240 {
		return 50.0
	}
	return 20.0
}

// SpacesPerCircuit is the number of breaker slots one circuit at voltage takes.
func SpacesPerCircuit(voltage int) int {
	if voltage <= volt120 {
		return 1
	}
	return voltage / volt120
}

// BreakerSpaces is the number of slots needed to deliver power (W) at
// voltage through breakers rated maxAmps. Components without power take
// no space.
func BreakerSpaces(power float64, voltage int, maxAmps float64) int {
	if power <= 0 || voltage <= 0 || maxAmps <= 0 {
		return 0
	}
	circuits := int(math.Ceil(power / float64(voltage) / maxAmps))
	return circuits * SpacesPerCircuit(voltage)
}

// SplitCircuit breaks a circuit occupying more slots than one breaker at its
// voltage allows into several circuits. Full breakers keep the voltage and
// rating of c, a leftover slot becomes its own 120V/20A circuit. c itself
// is trimmed and returned first.
func SplitCircuit(c *hpxml.BranchCircuit) []*hpxml.BranchCircuit {
	res := []*hpxml.BranchCircuit{c}
	voltage := c.Voltage.Or(volt120)
	per := SpacesPerCircuit(voltage)
	spaces := c.OccupiedSpaces.Val()
	if spaces <= per {
		return res
	}

	defaulted := c.OccupiedSpaces.IsDefaulted()
	setSpaces := func(bc *hpxml.BranchCircuit, n int) {
		if defaulted {
			bc.OccupiedSpaces.Default(n)
		} else {
			bc.OccupiedSpaces.Set(n)
		}
	}
	setSpaces(c, per)

	full, rest := spaces/per, spaces%per
	for i := 1; i < full; i++ {
		extra := &hpxml.BranchCircuit{
			ID:               fmt.Sprintf("%s_%d", c.ID, i+1),
			Voltage:          hpxml.Defaulted(voltage),
			MaxCurrentRating: hpxml.Defaulted(c.MaxCurrentRating.Or(DefaultMaxCurrent(voltage))),
			ComponentIDs:     append([]string(nil), c.ComponentIDs...),
		}
		setSpaces(extra, per)
		res = append(res, extra)
	}
	if rest > 0 {
		res = append(res, &hpxml.BranchCircuit{
			ID:               fmt.Sprintf("%s_%d", c.ID, full+1),
			Voltage:          hpxml.Defaulted(volt120),
			MaxCurrentRating: hpxml.Defaulted(DefaultMaxCurrent(volt120)),
			OccupiedSpaces:   hpxml.Defaulted(rest),
			ComponentIDs:     append([]string(nil), c.ComponentIDs...),
		})
	}
	return res
}
