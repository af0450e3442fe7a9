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

package internal

import (
	"bytes"
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/antst/hpxdefaults/internal/config"
	"github.com/antst/hpxdefaults/internal/db"
	"github.com/antst/hpxdefaults/internal/hpxml"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doneToken struct{}

func (doneToken) Wait() bool                     { return true }
func (doneToken) WaitTimeout(time.Duration) bool { return true }
func (doneToken) Error() error                   { return nil }

func (doneToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

type recordingClient struct {
	mu           sync.Mutex
	topics       []string
	disconnected bool
}

func (c *recordingClient) SafeDisconnect(uint) { c.disconnected = true }

func (c *recordingClient) SafePublish(topic string, _ byte, _ bool, _ interface{}) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.topics = append(c.topics, topic)
	return doneToken{}
}

func (c *recordingClient) SafeSubscribe(string, byte, mqtt.MessageHandler) mqtt.Token {
	return doneToken{}
}

func (c *recordingClient) SafeUnsubscribe(...string) mqtt.Token { return doneToken{} }

// ranch is a 1200 ft2 slab-on-grade house heated by a ducted gas furnace.
func ranch(id string) *hpxml.Building {
	b := &hpxml.Building{ID: id}
	b.Construction = hpxml.BuildingConstruction{
		YearBuilt:                 hpxml.Some(2001),
		NumberOfConditionedFloors: 1,
		NumberOfFloorsAboveGrade:  1,
		NumberOfBedrooms:          2,
		ConditionedFloorArea:      1200,
	}
	wall := func(id string, az int) *hpxml.Wall {
		return &hpxml.Wall{
			Surface: hpxml.Surface{
				ID:                 id,
				InteriorAdjacentTo: hpxml.LocationConditionedSpace,
				ExteriorAdjacentTo: hpxml.LocationOutside,
				Area:               hpxml.Some(350.0),
				Azimuth:            hpxml.Some(az),
			},
			WallType:    hpxml.WallWoodStud,
			InsulationR: 13,
		}
	}
	b.Enclosure.Walls = []*hpxml.Wall{wall(id+"Wall1", 180), wall(id+"Wall2", 0)}
	b.Enclosure.Roofs = []*hpxml.Roof{{
		Surface: hpxml.Surface{
			ID:                 id + "Roof1",
			InteriorAdjacentTo: hpxml.LocationAtticVented,
			ExteriorAdjacentTo: hpxml.LocationOutside,
			Area:               hpxml.Some(1350.0),
			Azimuth:            hpxml.Some(180),
		},
		Pitch:       6,
		InsulationR: 2.3,
	}}
	b.Enclosure.Floors = []*hpxml.Floor{{
		Surface: hpxml.Surface{
			ID:                 id + "Ceiling1",
			InteriorAdjacentTo: hpxml.LocationConditionedSpace,
			ExteriorAdjacentTo: hpxml.LocationAtticVented,
			Area:               hpxml.Some(1200.0),
		},
		InsulationR: 38,
	}}
	b.Enclosure.Slabs = []*hpxml.Slab{{
		ID:                 id + "Slab1",
		InteriorAdjacentTo: hpxml.LocationConditionedSpace,
		Area:               1200,
		ExposedPerimeter:   140,
	}}
	b.Systems.HVACDistributions = []*hpxml.HVACDistribution{{
		ID:                     id + "HVACDistribution1",
		DistributionSystemType: hpxml.DistributionAir,
		Ducts: []*hpxml.Duct{
			{DuctType: hpxml.DuctSupply, InsulationR: hpxml.Some(6.0)},
			{DuctType: hpxml.DuctReturn, InsulationR: hpxml.Some(6.0)},
		},
	}}
	b.Systems.HeatingSystems = []*hpxml.HeatingSystem{{
		HVACCommon:        hpxml.HVACCommon{ID: id + "HeatingSystem1", DistributionSystem: id + "HVACDistribution1"},
		HeatingSystemType: hpxml.HeatingFurnace,
		Fuel:              hpxml.FuelNaturalGas,
		AFUE:              hpxml.Some(0.95),
		FractionHeatLoad:  1,
	}}
	return b
}

func testConfig(t *testing.T, buildings ...*hpxml.Building) *config.Config {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "in.yaml")
	doc := &hpxml.Document{Buildings: buildings}
	require.NoError(t, doc.SaveFile(in))

	cfg := &config.Config{
		DBFile:  db.InMemory,
		Input:   in,
		Weather: "weather/testdata/denver.yaml",
		Output:  filepath.Join(dir, "out.yaml"),
	}
	cfg.FillDefaults()
	return cfg
}

func testController(t *testing.T, cfg *config.Config) *RunController {
	t.Helper()
	store, err := db.OpenDatabase(cfg.DBFile)
	require.NoError(t, err)
	c, err := newRunController(cfg, store)
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestRunController_StoresAndWrites(t *testing.T) {
	cfg := testConfig(t, ranch("MyBuilding"))
	c := testController(t, cfg)
	ctx := context.Background()
	require.NoError(t, c.Run(ctx))

	out, err := hpxml.LoadFile(cfg.Output)
	require.NoError(t, err)
	require.Len(t, out.Buildings, 1)
	hs := out.Buildings[0].Systems.HeatingSystems[0]
	assert.True(t, hs.HeatingCapacity.IsDefaulted())
	assert.Greater(t, hs.HeatingCapacity.Val(), 0.0)

	run, err := c.store.LatestRun(ctx, "MyBuilding")
	require.NoError(t, err)
	assert.Equal(t, "725650", run.WeatherWMO)
	assert.Equal(t, cfg.Input, run.InputFile)
	assert.Greater(t, run.HeatingTotal, 0.0)
	assert.Len(t, run.ID, 36)
}

func TestRunController_MultiUnitPublishes(t *testing.T) {
	cfg := testConfig(t, ranch("Unit1"), ranch("Unit2"))
	cfg.MQTTConfig.Topic = "test"
	c := testController(t, cfg)
	client := &recordingClient{}
	c.attachMQTT(client)

	ctx := context.Background()
	require.NoError(t, c.Run(ctx))

	for _, id := range []string{"Unit1", "Unit2"} {
		_, err := c.store.LatestRun(ctx, id)
		assert.NoError(t, err, id)
		assert.Contains(t, client.topics, "test/"+id+"/loads")
	}

	c.Close()
	assert.True(t, client.disconnected)
	c.mqtt = nil
	c.store = nil
}

func TestRunController_Stdout(t *testing.T) {
	cfg := testConfig(t, ranch("MyBuilding"))
	cfg.Output = "-"
	c := testController(t, cfg)
	var buf bytes.Buffer
	c.stdout = &buf

	require.NoError(t, c.Run(context.Background()))
	assert.Contains(t, buf.String(), "!software")
}

func TestRunController_Errors(t *testing.T) {
	cfg := testConfig(t, ranch("MyBuilding"))
	cfg.Weather = ""
	assert.Error(t, testController(t, cfg).Run(context.Background()))

	cfg = testConfig(t, ranch("MyBuilding"))
	cfg.Weather = "weather/testdata/missing.yaml"
	assert.Error(t, testController(t, cfg).Run(context.Background()))

	cfg = testConfig(t, ranch("MyBuilding"))
	cfg.Engine.Sizer = "manualj"
	store, err := db.OpenDatabase(db.InMemory)
	require.NoError(t, err)
	defer store.Close()
	_, err = newRunController(cfg, store)
	assert.Error(t, err)
}
