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

// NationalAverage is the state code of the fallback fuel rate rows.
const NationalAverage = "US"

type FuelRate struct {
	State        string
	Fuel         string
	Units        string
	MarginalRate float64
}

type fuelRates map[[2]string]FuelRate

func parseFuelRates(rows []map[string]string) (interface{}, error) {
	res := fuelRates{}
	for _, r := range rows {
		fr := FuelRate{State: r["state"], Fuel: r["fuel"], Units: r["units"]}
		var err error
		if fr.MarginalRate, err = strconv.ParseFloat(r["marginal_rate"], 64); err != nil {
			return nil, errors.Wrapf(err, "fuel rate %s/%s", fr.State, fr.Fuel)
		}
		res[[2]string{fr.State, fr.Fuel}] = fr
	}
	return res, nil
}

// MarginalRate returns the state rate of a fuel, falling back to the national
// average when the state has no row.
func (c *Cache) MarginalRate(state, fuel string) (FuelRate, error) {
	v, err := c.get(TableFuelRates, parseFuelRates)
	if err != nil {
		return FuelRate{}, err
	}
	tbl := v.(fuelRates)
	if fr, ok := tbl[[2]string{state, fuel}]; ok {
		return fr, nil
	}
	if fr, ok := tbl[[2]string{NationalAverage, fuel}]; ok {
		return fr, nil
	}
	return FuelRate{}, errors.Wrapf(ErrNotFound, "marginal rate of %s", fuel)
}
