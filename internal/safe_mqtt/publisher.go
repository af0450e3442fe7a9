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
	"sort"
	"time"

	"github.com/antst/hpxdefaults/internal/defaults"
	"github.com/antst/hpxdefaults/internal/hpxml"
	"github.com/antst/hpxdefaults/internal/logger"

	"github.com/pkg/errors"
)

const publishTimeout = 5 * time.Second

type LoadsMessage struct {
	RunID           string  `json:"run_id"`
	BuildingID      string  `json:"building_id"`
	ZoneID          string  `json:"zone_id,omitempty"`
	Heating         float64 `json:"heating_btuh"`
	CoolingSensible float64 `json:"cooling_sensible_btuh"`
	CoolingLatent   float64 `json:"cooling_latent_btuh"`
	Warnings        int     `json:"warnings,omitempty"`
}

type CapacityMessage struct {
	Type      string  `json:"type"`
	TotalW    float64 `json:"total_w"`
	TotalA    float64 `json:"total_a"`
	HeadroomA float64 `json:"headroom_a"`
}

type PanelMessage struct {
	RunID            string            `json:"run_id"`
	BuildingID       string            `json:"building_id"`
	PanelID          string            `json:"panel_id"`
	Voltage          int               `json:"voltage"`
	MaxCurrentRating float64           `json:"max_current_rating"`
	Capacities       []CapacityMessage `json:"capacities"`
	SpacesTotal      int               `json:"breaker_spaces_total"`
	SpacesOccupied   int               `json:"breaker_spaces_occupied"`
	SpacesHeadroom   int               `json:"breaker_spaces_headroom"`
}

// LoadPublisher sends the design loads and panel summaries of a defaulted
// building as retained JSON messages:
//
//	<topic>/<building>/loads
//	<topic>/<building>/zones/<zone>
//	<topic>/<building>/panels/<panel>
type LoadPublisher struct {
	client  MqttClient
	topic   string
	qos     byte
	timeout time.Duration
}

func NewLoadPublisher(client MqttClient, topic string, qos byte) *LoadPublisher {
	return &LoadPublisher{client: client, topic: topic, qos: qos, timeout: publishTimeout}
}

func (p *LoadPublisher) Publish(runID string, b *hpxml.Building, res *defaults.Result) error {
	base := p.topic + "/" + b.ID
	msg := loadsMessage(runID, b.ID, "", res.Building)
	msg.Warnings = res.Diagnostics.Len()
	if err := p.send(base+"/loads", msg); err != nil {
		return err
	}

	zones := make([]string, 0, len(res.ZoneLoads))
	for id := range res.ZoneLoads {
		zones = append(zones, id)
	}
	sort.Strings(zones)
	for _, id := range zones {
		if err := p.send(base+"/zones/"+id, loadsMessage(runID, b.ID, id, res.ZoneLoads[id])); err != nil {
			return err
		}
	}

	for _, panel := range b.Systems.ElectricPanels {
		if err := p.send(base+"/panels/"+panel.ID, panelMessage(runID, b.ID, panel)); err != nil {
			return err
		}
	}
	logger.L().Infof("Published design loads of %s to %s", b.ID, base)
	return nil
}

func (p *LoadPublisher) send(topic string, v interface{}) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "marshal %s", topic)
	}
	logger.L().Debugf("MQTT %s: %s", topic, payload)
	token := p.client.SafePublish(topic, p.qos, true, payload)
	if !token.WaitTimeout(p.timeout) {
		return errors.Errorf("publish %s: timed out after %v", topic, p.timeout)
	}
	return errors.Wrapf(token.Error(), "publish %s", topic)
}

func loadsMessage(runID, buildingID, zoneID string, l hpxml.DesignLoads) LoadsMessage {
	return LoadsMessage{
		RunID:           runID,
		BuildingID:      buildingID,
		ZoneID:          zoneID,
		Heating:         l.HeatingTotal,
		CoolingSensible: l.CoolingSensTotal,
		CoolingLatent:   l.CoolingLatTotal,
	}
}

func panelMessage(runID, buildingID string, p *hpxml.ElectricPanel) PanelMessage {
	m := PanelMessage{
		RunID:            runID,
		BuildingID:       buildingID,
		PanelID:          p.ID,
		Voltage:          p.Voltage.Val(),
		MaxCurrentRating: p.MaxCurrentRating.Val(),
		Capacities:       []CapacityMessage{},
		SpacesTotal:      p.BreakerSpaces.Total,
		SpacesOccupied:   p.BreakerSpaces.Occupied,
		SpacesHeadroom:   p.BreakerSpaces.Headroom,
	}
	for _, c := range p.Capacities {
		m.Capacities = append(m.Capacities, CapacityMessage{
			Type:      string(c.Type),
			TotalW:    c.TotalW,
			TotalA:    c.TotalA,
			HeadroomA: c.HeadroomA,
		})
	}
	return m
}
