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

package logger

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	mu       sync.RWMutex
	logger   *zap.SugaredLogger
	dlevel   = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	encoding = "console"
)

func init() {
	if err := build(encoding); err != nil {
		panic(err)
	}
	L().Debugf("Logger initialized")
}

func build(enc string) error {
	ecfg := zap.NewDevelopmentEncoderConfig()
	if enc == "json" {
		ecfg = zap.NewProductionEncoderConfig()
	}
	cfg := zap.Config{
		Level:            dlevel,
		Encoding:         enc,
		EncoderConfig:    ecfg,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		// NOTE: set this false to enable stack trace
		DisableStacktrace: true,
	}

	l, err := cfg.Build()
	if err != nil {
		return err
	}
	mu.Lock()
	logger = l.Sugar()
	encoding = enc
	mu.Unlock()
	return nil
}

func L() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	if logger == nil {
		panic("Logger is not initialized")
	}
	return logger
}

func Close() {
	if err := L().Sync(); err != nil {
		L().Error(errors.WithMessage(err, "failed to close logger"))
	}
}

func SetLogLevel(level zapcore.Level) {
	dlevel.SetLevel(level)
}

// SetEncoding switches between "console" and "json" output.
func SetEncoding(enc string) error {
	switch enc {
	case "console", "json":
	default:
		return errors.Errorf("unknown log encoding %q", enc)
	}
	mu.RLock()
	same := enc == encoding
	mu.RUnlock()
	if same {
		return nil
	}
	return errors.WithMessage(build(enc), "failed to rebuild logger")
}
