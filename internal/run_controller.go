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
	"context"
	"io"
	"os"
	"time"

	"github.com/antst/hpxdefaults/internal/calc"
	"github.com/antst/hpxdefaults/internal/config"
	"github.com/antst/hpxdefaults/internal/db"
	"github.com/antst/hpxdefaults/internal/defaults"
	"github.com/antst/hpxdefaults/internal/hpxml"
	"github.com/antst/hpxdefaults/internal/logger"
	"github.com/antst/hpxdefaults/internal/lookup"
	"github.com/antst/hpxdefaults/internal/safe_mqtt"
	"github.com/antst/hpxdefaults/internal/sizing"
	"github.com/antst/hpxdefaults/internal/weather"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const disconnectQuiesce = 250

// RunController defaults one building document: it reads the document and
// the weather, applies the engine, writes the defaulted document and records
// the design loads of every building.
type RunController struct {
	cfg       *config.Config
	store     *db.Store
	mqtt      safe_mqtt.MqttClient
	publisher *safe_mqtt.LoadPublisher
	cache     *lookup.Cache
	sizer     sizing.Sizer
	stdout    io.Writer
	now       func() time.Time
}

func NewRunController(cfg *config.Config) (*RunController, error) {
	store, err := db.OpenDatabase(cfg.DBFile)
	if err != nil {
		return nil, err
	}
	c, err := newRunController(cfg, store)
	if err != nil {
		store.Close()
		return nil, err
	}

	if *cfg.MQTTConfig.Enabled {
		client, err := safe_mqtt.InitMQTTClient(cfg.MQTTConfig.URL, "hpxdefaults-"+uuid.New().String())
		if err != nil {
			store.Close()
			return nil, err
		}
		c.attachMQTT(client)
	}
	return c, nil
}

func newRunController(cfg *config.Config, store *db.Store) (*RunController, error) {
	if err := cfg.Engine.Validate(); err != nil {
		return nil, err
	}
	c := &RunController{
		cfg:    cfg,
		store:  store,
		cache:  lookup.New(cfg.Lookup.Paths()),
		stdout: os.Stdout,
		now:    func() time.Time { return time.Now().UTC() },
	}
	switch cfg.Engine.Sizer {
	case config.SizerBlockLoad:
		c.sizer = sizing.NewBlockLoad()
	}
	return c, nil
}

func (c *RunController) attachMQTT(client safe_mqtt.MqttClient) {
	c.mqtt = client
	c.publisher = safe_mqtt.NewLoadPublisher(client, c.cfg.MQTTConfig.Topic, *c.cfg.MQTTConfig.QoS)
}

func (c *RunController) Close() {
	if c.mqtt != nil {
		c.mqtt.SafeDisconnect(disconnectQuiesce)
	}
	if c.store != nil {
		if err := c.store.Close(); err != nil {
			logger.L().Warnf("Closing run store: %v", err)
		}
	}
}

func (c *RunController) Run(ctx context.Context) error {
	if err := c.cfg.Validate(); err != nil {
		return err
	}

	doc, err := hpxml.LoadFile(c.cfg.Input)
	if err != nil {
		return err
	}
	w, err := weather.LoadFile(c.cfg.Weather)
	if err != nil {
		return err
	}

	opts := defaults.Options{
		ERIVersion: c.cfg.Engine.ERIVersion,
		Sizer:      c.sizer,
		Cache:      c.cache,
	}
	if c.cfg.Schedules != "" {
		cols, err := defaults.LoadScheduleColumns(c.cfg.Schedules)
		if err != nil {
			return err
		}
		opts.Schedules = cols
	}

	results, err := defaults.ApplyDocument(doc, w, opts)
	if err != nil {
		return err
	}
	if err := c.writeOutput(doc); err != nil {
		return err
	}

	eri := opts.ERIVersion
	if eri == "" {
		eri = doc.Header.ERICalculationVersion.Or(calc.ERILatest)
	}
	for i, res := range results {
		runID := uuid.New().String()
		if err := c.store.SaveRun(ctx, c.record(runID, eri, w, res)); err != nil {
			return errors.WithMessagef(err, "store run of %s", res.BuildingID)
		}
		logger.L().Infof("Run %s: %s heating %.0f Btuh, sensible cooling %.0f Btuh, %d warnings",
			runID, res.BuildingID, res.Building.HeatingTotal, res.Building.CoolingSensTotal, res.Diagnostics.Len())

		if c.publisher == nil {
			continue
		}
		if err := c.publisher.Publish(runID, doc.Buildings[i], res); err != nil {
			// the run is stored; a broker outage does not fail it
			logger.L().Errorf("Publishing %s: %v", res.BuildingID, err)
		}
	}
	return nil
}

func (c *RunController) writeOutput(doc *hpxml.Document) error {
	if c.cfg.Output == "-" {
		return doc.Save(c.stdout)
	}
	if err := doc.SaveFile(c.cfg.Output); err != nil {
		return err
	}
	logger.L().Infof("Wrote defaulted document to `%s`", c.cfg.Output)
	return nil
}

func (c *RunController) record(runID, eri string, w *weather.Weather, res *defaults.Result) *db.RunRecord {
	rec := &db.RunRecord{
		Run: db.Run{
			ID:               runID,
			BuildingID:       res.BuildingID,
			InputFile:        c.cfg.Input,
			WeatherWMO:       w.Header.WMO,
			ERIVersion:       eri,
			CreatedAt:        c.now(),
			HeatingTotal:     res.Building.HeatingTotal,
			CoolingSensTotal: res.Building.CoolingSensTotal,
			CoolingLatTotal:  res.Building.CoolingLatTotal,
			WarningCount:     res.Diagnostics.Len(),
		},
	}
	for id, l := range res.ZoneLoads {
		rec.Zones = append(rec.Zones, dbLoads(id, l))
	}
	for id, l := range res.SpaceLoads {
		rec.Spaces = append(rec.Spaces, dbLoads(id, l))
	}
	for _, wr := range res.Diagnostics.Warnings {
		rec.Warnings = append(rec.Warnings, db.Warning{Entity: wr.Entity, Message: wr.Message})
	}
	return rec
}

func dbLoads(id string, l hpxml.DesignLoads) db.Loads {
	return db.Loads{
		ID:               id,
		HeatingTotal:     l.HeatingTotal,
		CoolingSensTotal: l.CoolingSensTotal,
		CoolingLatTotal:  l.CoolingLatTotal,
	}
}
