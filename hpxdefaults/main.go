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

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/antst/hpxdefaults/internal"
	"github.com/antst/hpxdefaults/internal/config"
	"github.com/antst/hpxdefaults/internal/defaults"
	"github.com/antst/hpxdefaults/internal/logger"

	"github.com/joho/godotenv"
)

// Build version, overridden with flag during build.
var version = "devel"

func main() {
	os.Exit(run())
}

func run() int {
	defer logger.Close()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.L().Warnf("Reading .env: %v", err)
	}
	logger.L().Infof("HPXML defaults engine, version: %+v", version)

	cfg := config.Get()
	c, err := internal.NewRunController(cfg)
	if err != nil {
		logger.L().Errorf("Startup: %v", err)
		return 1
	}
	defer c.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := c.Run(ctx); err != nil {
		if defaults.IsConfigurationError(err) {
			logger.L().Errorf("Invalid building description: %v", err)
			return 2
		}
		logger.L().Errorf("Run failed: %v", err)
		return 1
	}
	return 0
}
