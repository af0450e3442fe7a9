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

package lookup

import (
	"strconv"

	"github.com/pkg/errors"
)

// PanelLoad is the rated power and breaker occupancy of one load at one voltage.
type PanelLoad struct {
	Name          string
	Voltage       int
	PowerWatts    float64
	BreakerSpaces int
}

type panelLoads map[string][]PanelLoad

func parsePanelLoads(rows []map[string]string) (interface{}, error) {
	res := panelLoads{}
	for _, r := range rows {
		pl := PanelLoad{Name: r["load_name"]}
		var err error
		if pl.Voltage, err = strconv.Atoi(r["voltage"]); err != nil {
			return nil, errors.Wrapf(err, "panel load %s voltage", pl.Name)
		}
		if pl.PowerWatts, err = strconv.ParseFloat(r["power_watts"], 64); err != nil {
			return nil, errors.Wrapf(err, "panel load %s power", pl.Name)
		}
		if pl.BreakerSpaces, err = strconv.Atoi(r["breaker_spaces"]); err != nil {
			return nil, errors.Wrapf(err, "panel load %s breaker spaces", pl.Name)
		}
		res[pl.Name] = append(res[pl.Name], pl)
	}
	return res, nil
}

// PanelLoad returns the row for (name, voltage). When the voltage is missing
// but the load exists at another voltage, that row is returned with exact=false.
func (c *Cache) PanelLoad(name string, voltage int) (pl PanelLoad, exact bool, err error) {
	v, err := c.get(TablePanelLoads, parsePanelLoads)
	if err != nil {
		return PanelLoad{}, false, err
	}
	rows := v.(panelLoads)[name]
	if len(rows) == 0 {
		return PanelLoad{}, false, errors.Wrapf(ErrNotFound, "panel load %s", name)
	}
	for _, r := range rows {
		if r.Voltage == voltage {
			return r, true, nil
		}
	}
	return rows[0], false, nil
}
