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

package config

import "fmt"

const SizerBlockLoad = "block"

type EngineConfig struct {
	// ERIVersion overrides the calculation version of the document header.
	ERIVersion string `yaml:"eri_version,omitempty"`
	Sizer      string `yaml:"sizer"`
}

func NewEngineConfig() *EngineConfig {
	cfg := &EngineConfig{}
	cfg.FillDefaults()
	return cfg
}

func (c *EngineConfig) FillDefaults() {
	if c.Sizer == "" {
		c.Sizer = SizerBlockLoad
	}
}

func (c *EngineConfig) Validate() error {
	switch c.Sizer {
	case SizerBlockLoad:
		return nil
	default:
		return fmt.Errorf("unknown sizer %q", c.Sizer)
	}
}
