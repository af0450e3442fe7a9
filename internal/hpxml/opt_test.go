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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type optHolder struct {
	A Opt[float64] `yaml:"a,omitempty"`
	B Opt[string]  `yaml:"b,omitempty"`
	C Opt[bool]    `yaml:"c,omitempty"`
}

func TestOpt_DefaultIfUnset(t *testing.T) {
	var o Opt[int]
	assert.False(t, o.IsSet())
	assert.True(t, o.DefaultIfUnset(3))
	assert.True(t, o.IsDefaulted())
	assert.Equal(t, 3, o.Val())

	assert.False(t, o.DefaultIfUnset(4))
	assert.Equal(t, 3, o.Val())

	o.Set(5)
	assert.False(t, o.IsDefaulted())
	assert.Equal(t, 5, o.Or(9))

	o.Clear()
	assert.False(t, o.IsSet())
	assert.False(t, o.IsDefaulted())
	assert.Equal(t, 9, o.Or(9))
}

func TestOpt_MarshalTagsDefaultedValues(t *testing.T) {
	h := optHolder{A: Defaulted(0.9), B: Some("x")}
	out, err := yaml.Marshal(&h)
	require.NoError(t, err)
	assert.Contains(t, string(out), "a: !software 0.9")
	assert.Contains(t, string(out), "b: x")
	assert.NotContains(t, string(out), "c:")
}

func TestOpt_UnmarshalRestoresFlag(t *testing.T) {
	var h optHolder
	require.NoError(t, yaml.Unmarshal([]byte("a: !software 0.9\nb: x\nc: true\n"), &h))
	assert.True(t, h.A.IsDefaulted())
	assert.InDelta(t, 0.9, h.A.Val(), 1e-9)
	assert.True(t, h.B.IsSet())
	assert.False(t, h.B.IsDefaulted())
	assert.True(t, h.C.Val())
}

func TestOpt_NullClears(t *testing.T) {
	h := optHolder{A: Some(1.0)}
	require.NoError(t, yaml.Unmarshal([]byte("a: null\n"), &h))
	assert.False(t, h.A.IsSet())
}

func TestOpt_RoundTrip(t *testing.T) {
	h := optHolder{A: Defaulted(2.5), B: Defaulted("medium"), C: Some(false)}
	out, err := yaml.Marshal(&h)
	require.NoError(t, err)

	var back optHolder
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, h, back)
}
