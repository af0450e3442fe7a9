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

package defaults

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/antst/hpxdefaults/internal/hpxml"
	"github.com/antst/hpxdefaults/internal/lookup"
)

// Detailed schedule columns that replace defaults outside the lookup tables.
const (
	colOccupants       = "occupants"
	colHeatingSetpoint = "heating_setpoint"
	colCoolingSetpoint = "cooling_setpoint"
	colWaterHeaterTemp = "water_heater_setpoint"
	colHotWater        = "hot_water_fixtures"
)

// ScheduleFile describes the detailed schedules supplied with a building.
// A column it includes replaces the default weekday, weekend and monthly
// fractions of that end use.
type ScheduleFile interface {
	IncludesColName(name string) bool
}

// ScheduleColumns is a ScheduleFile known only by its column names.
type ScheduleColumns []string

func (c ScheduleColumns) IncludesColName(name string) bool {
	for _, col := range c {
		if col == name {
			return true
		}
	}
	return false
}

// LoadScheduleColumns reads a yaml list of column names.
func LoadScheduleColumns(path string) (ScheduleColumns, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read schedule columns %s", path)
	}
	var cols ScheduleColumns
	if err := yaml.Unmarshal(data, &cols); err != nil {
		return nil, errors.Wrapf(err, "parse schedule columns %s", path)
	}
	return cols, nil
}

func (e *engine) hasScheduleColumn(col string) bool {
	return e.sched != nil && e.sched.IncludesColName(col)
}

// scheduleRules defaults the fractions of s from the named default
// schedule unless the detailed schedules include col. Elements the table
// leaves empty stay unset.
func (e *engine) scheduleRules(name, col string, s *hpxml.Schedule) rules {
	if e.hasScheduleColumn(col) {
		return nil
	}
	part := func(pick func(lookup.ScheduleShape) string) func() (string, bool, error) {
		return func() (string, bool, error) {
			sh, err := e.cache.Schedule(name)
			if err != nil {
				return "", false, configErrorf(name, "schedule", "no default schedule: %v", err)
			}
			v := pick(sh)
			return v, v != "", nil
		}
	}
	return rules{
		field(name+"_weekday_fractions", &s.WeekdayFractions, part(func(sh lookup.ScheduleShape) string { return sh.Weekday })),
		field(name+"_weekend_fractions", &s.WeekendFractions, part(func(sh lookup.ScheduleShape) string { return sh.Weekend })),
		field(name+"_monthly_multipliers", &s.MonthlyMultipliers, part(func(sh lookup.ScheduleShape) string { return sh.Monthly })),
	}
}
