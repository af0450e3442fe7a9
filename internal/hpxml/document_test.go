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
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallDoc = `
header:
  timestep: !software 60
buildings:
  - id: MyBuilding
    building_header: {}
    site:
      site_type: suburban
    building_occupancy: {}
    building_construction:
      number_of_conditioned_floors: 2
      number_of_conditioned_floors_above_grade: 1
      number_of_bedrooms: 3
      conditioned_floor_area: 2700
    climate_and_risk_zones: {}
    enclosure:
      roofs:
        - id: Roof1
          interior_adjacent_to: attic - vented
          exterior_adjacent_to: outside
          area: 1500
          pitch: 6
          emittance: !software 0.9
          insulation_assembly_r_value: 2.3
    systems:
      electric_panels:
        - id: Panel
          service_feeders:
            - id: Feeder1
              type: cooling
              power: !software 3542
              components: [CoolingSystem1]
    appliances:
      cooking_ranges:
        - id: Range
          fuel_type: electricity
    lighting: {}
    misc_loads: {}
`

func TestLoad_SmallDocument(t *testing.T) {
	doc, err := Load(strings.NewReader(smallDoc))
	require.NoError(t, err)
	require.Len(t, doc.Buildings, 1)

	b := doc.Buildings[0]
	assert.True(t, doc.Header.Timestep.IsDefaulted())
	assert.Equal(t, SiteSuburban, b.Site.SiteType.Val())
	assert.False(t, b.Site.SiteType.IsDefaulted())

	roof := b.Enclosure.Roofs[0]
	assert.Equal(t, LocationAtticVented, roof.InteriorAdjacentTo)
	assert.True(t, roof.Emittance.IsDefaulted())
	assert.False(t, roof.Area.IsDefaulted())

	panel := b.Systems.ElectricPanels[0]
	require.NotNil(t, panel.FeederFor("CoolingSystem1"))
	assert.Nil(t, panel.FeederFor("HeatPump1"))
	assert.True(t, panel.ServiceFeeders[0].PowerRating.IsDefaulted())

	assert.False(t, b.Appliances.CookingRanges[0].IsInduction.IsSet())
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	_, err := Load(strings.NewReader("header: {}\nbuildings:\n  - id: B\n    bogus: 1\n"))
	assert.Error(t, err)
}

func TestLoad_RequiresBuildings(t *testing.T) {
	_, err := Load(strings.NewReader("header: {}\n"))
	assert.Error(t, err)
}

func TestSave_RoundTrip(t *testing.T) {
	doc, err := Load(strings.NewReader(smallDoc))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, doc.Save(&buf))
	assert.Contains(t, buf.String(), "emittance: !software 0.9")

	back, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, doc, back)
}

func TestSyntheticZone(t *testing.T) {
	b := &Building{Zones: []*Zone{NewSyntheticZone("ConditionedZone", 1200)}}
	require.Len(t, b.ConditionedSpaces(), 1)
	assert.True(t, b.Zones[0].IsSynthetic())
	assert.True(t, b.ConditionedSpaces()[0].IsSynthetic())
	assert.InDelta(t, 1200, b.ConditionedSpaces()[0].FloorArea, 1e-9)
}

func TestDesignLoads_ComponentSums(t *testing.T) {
	d := DesignLoads{HeatingWalls: 1000, HeatingDucts: 500, CoolingSensWindows: 300, CoolingSensIntGain: 200, CoolingLatInfil: 50}
	assert.InDelta(t, 1500, d.HeatingComponentSum(), 1e-9)
	assert.InDelta(t, 500, d.CoolingSensComponentSum(), 1e-9)
	assert.InDelta(t, 50, d.CoolingLatComponentSum(), 1e-9)
}
