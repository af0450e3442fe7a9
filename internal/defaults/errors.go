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

	"github.com/pkg/errors"
)

// ErrPassOrder is returned when a pass runs before a pass it reads from.
var ErrPassOrder = errors.New("defaulting pass out of order")

// ConfigurationError reports an input the engine cannot default around:
// a missing required value, a conflict between records or a lookup miss.
type ConfigurationError struct {
	Entity string
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Entity, e.Reason)
	}
	return fmt.Sprintf("%s.%s: %s", e.Entity, e.Field, e.Reason)
}

func configErrorf(entity, field, format string, args ...interface{}) error {
	return errors.WithStack(&ConfigurationError{Entity: entity, Field: field, Reason: fmt.Sprintf(format, args...)})
}

// IsConfigurationError reports whether err is caused by bad input rather
// than by a failure of the engine.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
