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
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

type efficiencyPoint struct {
	year  int
	value float64
}

type efficiencyKey struct {
	equipment, fuel, metric string
}

type efficiencies map[efficiencyKey][]efficiencyPoint

func parseEfficiencies(rows []map[string]string) (interface{}, error) {
	res := efficiencies{}
	for _, r := range rows {
		k := efficiencyKey{r["equipment"], r["fuel"], r["metric"]}
		year, err := strconv.Atoi(r["year"])
		if err != nil {
			return nil, errors.Wrapf(err, "efficiency %v year", k)
		}
		val, err := strconv.ParseFloat(r["value"], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "efficiency %v value", k)
		}
		res[k] = append(res[k], efficiencyPoint{year, val})
	}
	for _, pts := range res {
		sort.Slice(pts, func(i, j int) bool { return pts[i].year < pts[j].year })
	}
	return res, nil
}

// EfficiencyByYear returns the rated efficiency of equipment installed in year:
// the value of the latest table year not after it, or the oldest value for
// years before the table starts. A fuel specific row wins over the "*" row.
func (c *Cache) EfficiencyByYear(equipment, fuel, metric string, year int) (float64, error) {
	v, err := c.get(TableEfficiency, parseEfficiencies)
	if err != nil {
		return 0, err
	}
	tbl := v.(efficiencies)
	pts, ok := tbl[efficiencyKey{equipment, fuel, metric}]
	if !ok {
		pts, ok = tbl[efficiencyKey{equipment, "*", metric}]
	}
	if !ok {
		return 0, errors.Wrapf(ErrNotFound, "efficiency of %s/%s %s", equipment, fuel, metric)
	}
	res := pts[0].value
	for _, p := range pts {
		if p.year > year {
			break
		}
		res = p.value
	}
	return res, nil
}
