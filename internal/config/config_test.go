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

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/antst/hpxdefaults/internal/lookup"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestReadFile_MissingFileKeepsDefaults(t *testing.T) {
	cfg := defConfig()
	require.NoError(t, readFile(cfg, filepath.Join(t.TempDir(), "nope.yaml")))
	assert.Equal(t, defaultDBFile, cfg.DBFile)
	assert.Equal(t, defaultMQTTURL, cfg.MQTTConfig.URL)
	assert.False(t, *cfg.MQTTConfig.Enabled)
	assert.Equal(t, SizerBlockLoad, cfg.Engine.Sizer)
}

func TestReadFile_Sections(t *testing.T) {
	p := writeConfig(t, `
log_level: debug
log_encoding: json
db_file: /var/lib/hpx/runs.db
mqtt:
  url: tcp://broker:1883
  enabled: true
lookup:
  zipcodes: /data/zip.csv
engine:
  eri_version: 2019A
`)
	cfg := defConfig()
	require.NoError(t, readFile(cfg, p))
	cfg.FillDefaults()

	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogEncoding)
	assert.Equal(t, "/var/lib/hpx/runs.db", cfg.DBFile)
	assert.Equal(t, "tcp://broker:1883", cfg.MQTTConfig.URL)
	assert.Equal(t, defaultTopic, cfg.MQTTConfig.Topic)
	assert.True(t, *cfg.MQTTConfig.Enabled)
	assert.Equal(t, byte(1), *cfg.MQTTConfig.QoS)
	assert.Equal(t, "2019A", cfg.Engine.ERIVersion)
	assert.Equal(t, SizerBlockLoad, cfg.Engine.Sizer)
	assert.Equal(t, lookup.Paths{lookup.TableZipCodes: "/data/zip.csv"}, cfg.Lookup.Paths())
}

func TestReadFile_BadYaml(t *testing.T) {
	p := writeConfig(t, "mqtt: [1, 2")
	assert.Error(t, readFile(defConfig(), p))
}

func TestFillDefaults_NilSections(t *testing.T) {
	cfg := &Config{}
	cfg.FillDefaults()
	require.NotNil(t, cfg.MQTTConfig)
	require.NotNil(t, cfg.Lookup)
	require.NotNil(t, cfg.Engine)
	assert.Equal(t, defaultLogEncoding, cfg.LogEncoding)
	assert.Equal(t, defaultOutputFile, cfg.Output)
	assert.Empty(t, cfg.Lookup.Paths())
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvDBFile:   "/tmp/env.db",
		EnvMQTTURL:  "tcp://env:1883",
		EnvLogLevel: "warn",
	}
	lookupEnv := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	cfg := defConfig()
	require.NoError(t, applyEnv(cfg, lookupEnv))
	assert.Equal(t, "/tmp/env.db", cfg.DBFile)
	assert.Equal(t, "tcp://env:1883", cfg.MQTTConfig.URL)
	assert.Equal(t, zapcore.WarnLevel, cfg.LogLevel)

	env[EnvLogLevel] = "loud"
	assert.Error(t, applyEnv(cfg, lookupEnv))
}

func TestValidate(t *testing.T) {
	cfg := defConfig()
	assert.Error(t, cfg.Validate())

	cfg.Input = "in.yaml"
	cfg.Weather = "w.yaml"
	assert.NoError(t, cfg.Validate())

	cfg.Engine.Sizer = "manualj"
	assert.Error(t, cfg.Validate())
}

func TestGetPTR(t *testing.T) {
	p := GetPTR(2.5)
	q := GetPTR(2.5)
	assert.Equal(t, 2.5, *p)
	assert.NotSame(t, p, q)
}
