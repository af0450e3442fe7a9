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
	"fmt"

	"github.com/antst/hpxdefaults/internal/logger"
)

// Warning is a non-fatal finding of a defaulting run.
type Warning struct {
	Entity  string `json:"entity"`
	Message string `json:"message"`
}

// Diagnostics collects the warnings of one building.
type Diagnostics struct {
	Warnings []Warning
}

func (d *Diagnostics) warnf(entity, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	d.Warnings = append(d.Warnings, Warning{Entity: entity, Message: msg})
	logger.L().Warnf("%s: %s", entity, msg)
}

func (d *Diagnostics) Len() int {
	return len(d.Warnings)
}
