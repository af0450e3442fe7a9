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

package safe_mqtt

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/antst/hpxdefaults/internal/defaults"
	"github.com/antst/hpxdefaults/internal/hpxml"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeToken struct {
	err     error
	timeout bool
}

func (t *fakeToken) Wait() bool                     { return !t.timeout }
func (t *fakeToken) WaitTimeout(time.Duration) bool { return !t.timeout }
func (t *fakeToken) Error() error                   { return t.err }

func (t *fakeToken) Done() <-chan struct{} {
	ch := make(chan struct{})
	if !t.timeout {
		close(ch)
	}
	return ch
}

type published struct {
	topic    string
	qos      byte
	retained bool
	payload  []byte
}

type fakeClient struct {
	mu    sync.Mutex
	msgs  []published
	token *fakeToken
}

func (c *fakeClient) SafeDisconnect(uint) {}

func (c *fakeClient) SafePublish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, published{topic, qos, retained, payload.([]byte)})
	if c.token != nil {
		return c.token
	}
	return &fakeToken{}
}

func (c *fakeClient) SafeSubscribe(string, byte, mqtt.MessageHandler) mqtt.Token {
	return &fakeToken{}
}

func (c *fakeClient) SafeUnsubscribe(...string) mqtt.Token {
	return &fakeToken{}
}

func testBuilding() (*hpxml.Building, *defaults.Result) {
	b := &hpxml.Building{ID: "MyBuilding"}
	b.Systems.ElectricPanels = []*hpxml.ElectricPanel{{
		ID:               "Panel1",
		Voltage:          hpxml.Some(240),
		MaxCurrentRating: hpxml.Defaulted(200.0),
		Capacities: []*hpxml.PanelCapacity{{
			Type:      hpxml.PanelCalc2023LoadBased,
			TotalW:    9762,
			TotalA:    40.7,
			HeadroomA: 159.3,
		}},
		BreakerSpaces: hpxml.BreakerSpaces{Total: 12, Occupied: 9, Headroom: 3},
	}}
	res := &defaults.Result{
		BuildingID: "MyBuilding",
		Building:   hpxml.DesignLoads{HeatingTotal: 30000, CoolingSensTotal: 20000, CoolingLatTotal: 1000},
		ZoneLoads: map[string]hpxml.DesignLoads{
			"Zone2": {HeatingTotal: 10000},
			"Zone1": {HeatingTotal: 20000, CoolingSensTotal: 20000},
		},
		Diagnostics: defaults.Diagnostics{Warnings: []defaults.Warning{{Entity: "Zone1", Message: "x"}}},
	}
	return b, res
}

func TestLoadPublisher_Topics(t *testing.T) {
	c := &fakeClient{}
	p := NewLoadPublisher(c, "hpx", 1)
	b, res := testBuilding()
	require.NoError(t, p.Publish("run-1", b, res))

	require.Len(t, c.msgs, 4)
	topics := []string{}
	for _, m := range c.msgs {
		topics = append(topics, m.topic)
		assert.True(t, m.retained)
		assert.Equal(t, byte(1), m.qos)
	}
	assert.Equal(t, []string{
		"hpx/MyBuilding/loads",
		"hpx/MyBuilding/zones/Zone1",
		"hpx/MyBuilding/zones/Zone2",
		"hpx/MyBuilding/panels/Panel1",
	}, topics)

	var total LoadsMessage
	require.NoError(t, json.Unmarshal(c.msgs[0].payload, &total))
	assert.Equal(t, "run-1", total.RunID)
	assert.Empty(t, total.ZoneID)
	assert.InDelta(t, 30000, total.Heating, 1e-9)
	assert.Equal(t, 1, total.Warnings)

	var zone LoadsMessage
	require.NoError(t, json.Unmarshal(c.msgs[1].payload, &zone))
	assert.Equal(t, "Zone1", zone.ZoneID)
	assert.InDelta(t, 20000, zone.CoolingSensible, 1e-9)

	var panel PanelMessage
	require.NoError(t, json.Unmarshal(c.msgs[3].payload, &panel))
	assert.Equal(t, 240, panel.Voltage)
	assert.InDelta(t, 200, panel.MaxCurrentRating, 1e-9)
	assert.Equal(t, 3, panel.SpacesHeadroom)
	require.Len(t, panel.Capacities, 1)
	assert.Equal(t, string(hpxml.PanelCalc2023LoadBased), panel.Capacities[0].Type)
}

func TestLoadPublisher_Errors(t *testing.T) {
	b, res := testBuilding()

	c := &fakeClient{token: &fakeToken{err: errors.New("not connected")}}
	err := NewLoadPublisher(c, "hpx", 0).Publish("run-1", b, res)
	assert.ErrorContains(t, err, "not connected")
	assert.Len(t, c.msgs, 1)

	c = &fakeClient{token: &fakeToken{timeout: true}}
	err = NewLoadPublisher(c, "hpx", 0).Publish("run-1", b, res)
	assert.ErrorContains(t, err, "timed out")
}
