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
	"embed"
	"encoding/csv"
	"io"
	"os"
	"path"
	"sync"

	"github.com/antst/hpxdefaults/internal/logger"
	"github.com/pkg/errors"
)

//go:embed data/*.csv
var embedded embed.FS

type Table string

const (
	TableSchedules  Table = "schedules"
	TableZipCodes   Table = "zipcodes"
	TablePanelLoads Table = "panel_loads"
	TableEfficiency Table = "efficiency_by_year"
	TableFuelRates  Table = "fuel_rates"
)

// ErrNotFound is returned when a table has no row for the requested key.
var ErrNotFound = errors.New("lookup key not found")

// Paths replaces embedded tables with files on disk.
type Paths map[Table]string

// Cache reads every lookup table at most once. It is safe for concurrent use;
// tables are immutable after the first read.
type Cache struct {
	paths Paths

	mu     sync.Mutex
	loaded map[string]interface{}
	reads  int
}

func New(paths Paths) *Cache {
	return &Cache{paths: paths, loaded: map[string]interface{}{}}
}

// source identifies the file a table is read from. Two tables backed by the
// same file share one cache entry.
func (c *Cache) source(t Table) string {
	if p, ok := c.paths[t]; ok && p != "" {
		return p
	}
	return "embedded:" + string(t)
}

func (c *Cache) open(t Table) (io.ReadCloser, error) {
	if p, ok := c.paths[t]; ok && p != "" {
		return os.Open(p)
	}
	return embedded.Open(path.Join("data", string(t)+".csv"))
}

// get returns the parsed table, parsing it on first use.
func (c *Cache) get(t Table, parse func(rows []map[string]string) (interface{}, error)) (interface{}, error) {
	key := c.source(t)

	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.loaded[key]; ok {
		return v, nil
	}

	f, err := c.open(t)
	if err != nil {
		return nil, errors.Wrapf(err, "open lookup table %s", t)
	}
	defer f.Close()
	rows, err := readRows(f)
	if err != nil {
		return nil, errors.Wrapf(err, "read lookup table %s", key)
	}
	v, err := parse(rows)
	if err != nil {
		return nil, errors.Wrapf(err, "parse lookup table %s", key)
	}
	c.loaded[key] = v
	c.reads++
	logger.L().Debugf("lookup table %s loaded from %s: %d rows", t, key, len(rows))
	return v, nil
}

// Reads reports how many table files have been parsed so far.
func (c *Cache) Reads() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reads
}

func readRows(r io.Reader) ([]map[string]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	header, err := cr.Read()
	if err != nil {
		return nil, err
	}
	var rows []map[string]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		row := make(map[string]string, len(header))
		for i, h := range header {
			row[h] = rec[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}
