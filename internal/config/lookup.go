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

package config

import "github.com/antst/hpxdefaults/internal/lookup"

// LookupConfig replaces embedded lookup tables with CSV files on disk.
// Empty paths keep the embedded table.
type LookupConfig struct {
	Schedules  string `yaml:"schedules,omitempty"`
	ZipCodes   string `yaml:"zipcodes,omitempty"`
	PanelLoads string `yaml:"panel_loads,omitempty"`
	Efficiency string `yaml:"efficiency_by_year,omitempty"`
	FuelRates  string `yaml:"fuel_rates,omitempty"`
}

func (c *LookupConfig) Paths() lookup.Paths {
	p := lookup.Paths{}
	add := func(t lookup.Table, path string) {
		if path != "" {
			p[t] = path
		}
	}
	add(lookup.TableSchedules, c.Schedules)
	add(lookup.TableZipCodes, c.ZipCodes)
	add(lookup.TablePanelLoads, c.PanelLoads)
	add(lookup.TableEfficiency, c.Efficiency)
	add(lookup.TableFuelRates, c.FuelRates)
	return p
}
