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

package sizing

import (
	"math"

	"github.com/antst/hpxdefaults/internal/hpxml"
)

type component int

const (
	htgWalls component = iota
	htgCeilings
	htgRoofs
	htgFloors
	htgSlabs
	htgWindows
	htgSkylights
	htgDoors
	htgInfilVent
	htgDucts
	clgWalls
	clgCeilings
	clgRoofs
	clgFloors
	clgWindows
	clgSkylights
	clgDoors
	clgInfilVent
	clgDucts
	clgIntGains
	latDucts
	latInfilVent
	latIntGains
	nComponents
)

// loads is an unrounded design load breakdown.
type loads [nComponents]float64

func (l loads) scale(f float64) loads {
	for i := range l {
		l[i] *= f
	}
	return l
}

func (l *loads) add(o loads) {
	for i := range l {
		l[i] += o[i]
	}
}

func (l loads) sum(from, to component) float64 {
	var s float64
	for c := from; c <= to; c++ {
		s += l[c]
	}
	return s
}

func (l loads) heating() float64 {
	return l.sum(htgWalls, htgDucts)
}

func (l loads) coolingSensible() float64 {
	return l.sum(clgWalls, clgIntGains)
}

func (l loads) coolingLatent() float64 {
	return l.sum(latDucts, latIntGains)
}

// designLoads rounds every component to whole Btu/h; totals are the sums of
// the rounded components.
func (l loads) designLoads() hpxml.DesignLoads {
	var r loads
	for i, v := range l {
		r[i] = math.Round(v)
	}
	return hpxml.DesignLoads{
		HeatingTotal:       r.heating(),
		HeatingWalls:       r[htgWalls],
		HeatingCeilings:    r[htgCeilings],
		HeatingRoofs:       r[htgRoofs],
		HeatingFloors:      r[htgFloors],
		HeatingSlabs:       r[htgSlabs],
		HeatingWindows:     r[htgWindows],
		HeatingSkylights:   r[htgSkylights],
		HeatingDoors:       r[htgDoors],
		HeatingInfilVent:   r[htgInfilVent],
		HeatingDucts:       r[htgDucts],
		CoolingSensTotal:   r.coolingSensible(),
		CoolingSensWalls:   r[clgWalls],
		CoolingSensCeiling: r[clgCeilings],
		CoolingSensRoofs:   r[clgRoofs],
		CoolingSensFloors:  r[clgFloors],
		CoolingSensWindows: r[clgWindows],
		CoolingSensSkylite: r[clgSkylights],
		CoolingSensDoors:   r[clgDoors],
		CoolingSensInfil:   r[clgInfilVent],
		CoolingSensDucts:   r[clgDucts],
		CoolingSensIntGain: r[clgIntGains],
		CoolingLatTotal:    r.coolingLatent(),
		CoolingLatDucts:    r[latDucts],
		CoolingLatInfil:    r[latInfilVent],
		CoolingLatIntGain:  r[latIntGains],
	}
}
