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

package weather

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Weather is a resolved weather file: header, design conditions and the
// statistics the defaulting engine reads.
type Weather struct {
	Header Header     `yaml:"header"`
	Design Design     `yaml:"design"`
	Data   Statistics `yaml:"data"`
}

type Header struct {
	City       string  `yaml:"city"`
	State      string  `yaml:"state"`
	WMO        string  `yaml:"wmo"`
	Latitude   float64 `yaml:"latitude"`
	Longitude  float64 `yaml:"longitude"`
	TimeZone   float64 `yaml:"time_zone"`
	Elevation  float64 `yaml:"elevation"`
	ActualYear int     `yaml:"actual_year,omitempty"`
	DST        *DST    `yaml:"dst,omitempty"`
}

// DST is the daylight saving period stated by the weather file.
type DST struct {
	BeginMonth int `yaml:"begin_month"`
	BeginDay   int `yaml:"begin_day"`
	EndMonth   int `yaml:"end_month"`
	EndDay     int `yaml:"end_day"`
}

type Design struct {
	HeatingDrybulb       float64 `yaml:"heating_drybulb"`
	CoolingDrybulb       float64 `yaml:"cooling_drybulb"`
	CoolingDailyRange    float64 `yaml:"cooling_daily_range"`
	CoolingHumidityRatio float64 `yaml:"cooling_humidity_ratio"`
}

type Statistics struct {
	AnnualAvgDrybulb   float64   `yaml:"annual_avg_drybulb"`
	MinDrybulb         float64   `yaml:"min_drybulb"`
	MaxDrybulb         float64   `yaml:"max_drybulb"`
	MonthlyAvgDrybulbs []float64 `yaml:"monthly_avg_drybulbs,omitempty"`
	HDD65              float64   `yaml:"hdd65,omitempty"`
	CDD65              float64   `yaml:"cdd65,omitempty"`
	WSF                float64   `yaml:"wsf"`
	GroundMonthlyTemps []float64 `yaml:"ground_monthly_temps,omitempty"`
}

// Daily temperature range classes of the design load calculation.
const (
	RangeLow    = "low"
	RangeMedium = "medium"
	RangeHigh   = "high"
)

// DailyTemperatureRange classifies the cooling design daily range (deg F).
func (w *Weather) DailyTemperatureRange() string {
	switch dr := w.Design.CoolingDailyRange; {
	case dr < 16:
		return RangeLow
	case dr > 25:
		return RangeHigh
	}
	return RangeMedium
}

// IsDry reports climates whose cooling design humidity ratio is low enough
// for a relaxed humidity setpoint.
func (w *Weather) IsDry() bool {
	return w.Design.CoolingHumidityRatio < 0.01
}

func Load(r io.Reader) (*Weather, error) {
	var w Weather
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&w); err != nil {
		return nil, errors.Wrap(err, "decode weather")
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return &w, nil
}

func LoadFile(path string) (*Weather, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	return Load(f)
}

func (w *Weather) Validate() error {
	if w.Header.Latitude < -90 || w.Header.Latitude > 90 {
		return errors.Errorf("weather latitude %v out of range", w.Header.Latitude)
	}
	if w.Header.Longitude < -180 || w.Header.Longitude > 180 {
		return errors.Errorf("weather longitude %v out of range", w.Header.Longitude)
	}
	if w.Data.MinDrybulb > w.Data.MaxDrybulb {
		return errors.Errorf("weather min drybulb %v above max %v", w.Data.MinDrybulb, w.Data.MaxDrybulb)
	}
	if n := len(w.Data.MonthlyAvgDrybulbs); n != 0 && n != 12 {
		return errors.Errorf("weather has %d monthly drybulbs, want 12", n)
	}
	if n := len(w.Data.GroundMonthlyTemps); n != 0 && n != 12 {
		return errors.Errorf("weather has %d monthly ground temperatures, want 12", n)
	}
	return nil
}
