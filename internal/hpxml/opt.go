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

package hpxml

import (
	"gopkg.in/yaml.v3"
)

// SoftwareTag marks a value that was supplied by the engine, not by the user.
// It is the yaml counterpart of dataSource="software".
const SoftwareTag = "!software"

// Opt is an optional, defaultable field. The value and the is-defaulted flag
// are only ever written together.
type Opt[T any] struct {
	v         T
	ok        bool
	defaulted bool
}

// Some returns a user supplied value.
func Some[T any](v T) Opt[T] {
	return Opt[T]{v: v, ok: true}
}

// Defaulted returns an engine supplied value.
func Defaulted[T any](v T) Opt[T] {
	return Opt[T]{v: v, ok: true, defaulted: true}
}

func (o Opt[T]) IsSet() bool {
	return o.ok
}

func (o Opt[T]) IsDefaulted() bool {
	return o.ok && o.defaulted
}

func (o Opt[T]) Get() (T, bool) {
	return o.v, o.ok
}

// Val returns the value, or the zero value of T when unset.
func (o Opt[T]) Val() T {
	return o.v
}

func (o Opt[T]) Or(def T) T {
	if o.ok {
		return o.v
	}
	return def
}

// Set stores a user value.
func (o *Opt[T]) Set(v T) {
	o.v, o.ok, o.defaulted = v, true, false
}

// Default stores an engine value and marks it as defaulted.
func (o *Opt[T]) Default(v T) {
	o.v, o.ok, o.defaulted = v, true, true
}

// DefaultIfUnset applies v only when nothing is set and reports whether it did.
func (o *Opt[T]) DefaultIfUnset(v T) bool {
	if o.ok {
		return false
	}
	o.Default(v)
	return true
}

func (o *Opt[T]) Clear() {
	var zero T
	o.v, o.ok, o.defaulted = zero, false, false
}

// IsZero lets yaml omitempty drop unset fields.
func (o Opt[T]) IsZero() bool {
	return !o.ok
}

func (o Opt[T]) MarshalYAML() (interface{}, error) {
	if !o.ok {
		return nil, nil
	}
	n := &yaml.Node{}
	if err := n.Encode(o.v); err != nil {
		return nil, err
	}
	if o.defaulted && n.Kind == yaml.ScalarNode {
		n.Tag = SoftwareTag
	}
	return n, nil
}

func (o *Opt[T]) UnmarshalYAML(n *yaml.Node) error {
	c := *n
	defaulted := false
	if c.Tag == SoftwareTag {
		c.Tag = ""
		c.Style &^= yaml.TaggedStyle
		defaulted = true
	}
	if c.Kind == yaml.ScalarNode && c.ShortTag() == "!!null" {
		o.Clear()
		return nil
	}

	var v T
	if err := c.Decode(&v); err != nil {
		return err
	}
	o.v, o.ok, o.defaulted = v, true, defaulted
	return nil
}
