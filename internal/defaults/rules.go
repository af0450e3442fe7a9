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
	"github.com/pkg/errors"

	"github.com/antst/hpxdefaults/internal/hpxml"
	"github.com/antst/hpxdefaults/internal/logger"
)

// rule fills one field of one record. apply reports the value it wrote, or
// false when the field was already set or the rule does not apply.
type rule struct {
	field string
	apply func() (interface{}, bool, error)
}

type rules []rule

// apply runs every rule in order, so later rules see values written by
// earlier ones.
func (rs rules) apply(id string) error {
	for _, r := range rs {
		v, ok, err := r.apply()
		if err != nil {
			return errors.WithMessagef(err, "%s.%s", id, r.field)
		}
		if ok {
			logger.L().Debugf("%s.%s defaulted to %v", id, r.field, v)
		}
	}
	return nil
}

// field defaults o from value when o is unset. value may decline by
// returning false.
func field[T any](name string, o *hpxml.Opt[T], value func() (T, bool, error)) rule {
	return rule{field: name, apply: func() (interface{}, bool, error) {
		if o.IsSet() {
			return nil, false, nil
		}
		v, ok, err := value()
		if err != nil || !ok {
			return nil, false, err
		}
		o.Default(v)
		return v, true, nil
	}}
}

func computed[T any](name string, o *hpxml.Opt[T], value func() T) rule {
	return field(name, o, func() (T, bool, error) { return value(), true, nil })
}

func fallible[T any](name string, o *hpxml.Opt[T], value func() (T, error)) rule {
	return field(name, o, func() (T, bool, error) {
		v, err := value()
		return v, err == nil, err
	})
}

func constant[T any](name string, o *hpxml.Opt[T], v T) rule {
	return field(name, o, func() (T, bool, error) { return v, true, nil })
}

// when guards r with a condition evaluated at apply time.
func when(cond func() bool, r rule) rule {
	return rule{field: r.field, apply: func() (interface{}, bool, error) {
		if !cond() {
			return nil, false, nil
		}
		return r.apply()
	}}
}

// step runs fn for its side effects. Fields fn writes log themselves.
func step(name string, fn func() error) rule {
	return rule{field: name, apply: func() (interface{}, bool, error) {
		return nil, false, fn()
	}}
}
