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
	"github.com/pkg/errors"
)

// Schedule element names.
const (
	WeekdayFractions   = "WeekdayScheduleFractions"
	WeekendFractions   = "WeekendScheduleFractions"
	MonthlyMultipliers = "MonthlyScheduleMultipliers"
)

// ScheduleShape is the default shape of one load. Empty strings mean the
// table has no value for that element.
type ScheduleShape struct {
	Weekday string
	Weekend string
	Monthly string
}

type schedules map[string]*ScheduleShape

func parseSchedules(rows []map[string]string) (interface{}, error) {
	res := schedules{}
	for _, r := range rows {
		name := r["schedule_name"]
		s := res[name]
		if s == nil {
			s = &ScheduleShape{}
			res[name] = s
		}
		switch r["element"] {
		case WeekdayFractions:
			s.Weekday = r["value"]
		case WeekendFractions:
			s.Weekend = r["value"]
		case MonthlyMultipliers:
			s.Monthly = r["value"]
		default:
			return nil, errors.Errorf("schedule %s: unknown element %q", name, r["element"])
		}
	}
	return res, nil
}

// LoadSchedules reads the schedules table so later calls are served from memory.
func (c *Cache) LoadSchedules() error {
	_, err := c.get(TableSchedules, parseSchedules)
	return err
}

func (c *Cache) Schedule(name string) (ScheduleShape, error) {
	v, err := c.get(TableSchedules, parseSchedules)
	if err != nil {
		return ScheduleShape{}, err
	}
	s, ok := v.(schedules)[name]
	if !ok {
		return ScheduleShape{}, errors.Wrapf(ErrNotFound, "schedule %s", name)
	}
	return *s, nil
}
