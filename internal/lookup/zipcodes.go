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

package lookup

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Station is one row of the ZIP code table.
type Station struct {
	ZipCode   string
	WMO       string
	Name      string
	Latitude  float64
	Longitude float64
	UTCOffset float64
	State     string
	City      string
	IECCZone  string
}

type stations struct {
	byZip map[string]*Station
	byWMO map[string]*Station
}

func parseStations(rows []map[string]string) (interface{}, error) {
	res := stations{byZip: map[string]*Station{}, byWMO: map[string]*Station{}}
	for _, r := range rows {
		s := &Station{
			ZipCode:  r["zipcode"],
			WMO:      r["station_wmo"],
			Name:     r["station_name"],
			State:    r["state"],
			City:     r["city"],
			IECCZone: r["iecc_zone"],
		}
		var err error
		if s.Latitude, err = strconv.ParseFloat(r["latitude"], 64); err != nil {
			return nil, errors.Wrapf(err, "zipcode %s latitude", s.ZipCode)
		}
		if s.Longitude, err = strconv.ParseFloat(r["longitude"], 64); err != nil {
			return nil, errors.Wrapf(err, "zipcode %s longitude", s.ZipCode)
		}
		if s.UTCOffset, err = strconv.ParseFloat(r["utc_offset"], 64); err != nil {
			return nil, errors.Wrapf(err, "zipcode %s utc_offset", s.ZipCode)
		}
		res.byZip[s.ZipCode] = s
		if _, ok := res.byWMO[s.WMO]; !ok {
			res.byWMO[s.WMO] = s
		}
	}
	return res, nil
}

// ZipCode resolves a 5 digit ZIP code. ZIP+4 codes are truncated.
func (c *Cache) ZipCode(zip string) (Station, error) {
	v, err := c.get(TableZipCodes, parseStations)
	if err != nil {
		return Station{}, err
	}
	zip = strings.TrimSpace(zip)
	if len(zip) > 5 {
		zip = zip[:5]
	}
	s, ok := v.(stations).byZip[zip]
	if !ok {
		return Station{}, errors.Wrapf(ErrNotFound, "zip code %s", zip)
	}
	return *s, nil
}

// StationByWMO returns the first table row for the weather station.
func (c *Cache) StationByWMO(wmo string) (Station, error) {
	v, err := c.get(TableZipCodes, parseStations)
	if err != nil {
		return Station{}, err
	}
	s, ok := v.(stations).byWMO[wmo]
	if !ok {
		return Station{}, errors.Wrapf(ErrNotFound, "weather station %s", wmo)
	}
	return *s, nil
}
