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

// Package sizing computes design loads and autosizes HVAC equipment of a
// fully defaulted Building.
package sizing

import (
	"github.com/antst/hpxdefaults/internal/hpxml"
	"github.com/antst/hpxdefaults/internal/hvac_perf"
	"github.com/antst/hpxdefaults/internal/weather"
)

// Result holds the design loads of every conditioned zone and space, keyed
// by id.
type Result struct {
	Building hpxml.DesignLoads
	Zones    map[string]hpxml.DesignLoads
	Spaces   map[string]hpxml.DesignLoads
}

// Sizer computes design loads and fills the unset capacities and airflows of
// the HVAC equipment. Derived performance data of each system is read from
// the store.
type Sizer interface {
	Size(b *hpxml.Building, w *weather.Weather, store *hvac_perf.Store) (*Result, error)
}

// SizerFunc adapts a function to the Sizer interface.
type SizerFunc func(b *hpxml.Building, w *weather.Weather, store *hvac_perf.Store) (*Result, error)

func (f SizerFunc) Size(b *hpxml.Building, w *weather.Weather, store *hvac_perf.Store) (*Result, error) {
	return f(b, w, store)
}
