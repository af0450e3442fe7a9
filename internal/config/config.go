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
	"fmt"
	"io"
	"log"
	"os"

	"github.com/antst/hpxdefaults/internal/logger"

	"github.com/pborman/getopt/v2"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	defaultMQTTURL     = "tcp://127.0.0.1:1883"
	defaultTopic       = "hpxdefaults/loads"
	defaultDBFile      = "hpxdefaults.db"
	defaultConfigFile  = "config.yaml"
	defaultLogEncoding = "console"
	defaultOutputFile  = "-"
)

// Environment variables read after the config file and before the flags.
const (
	EnvDBFile   = "HPXDEFAULTS_DB_FILE"
	EnvMQTTURL  = "HPXDEFAULTS_MQTT_URL"
	EnvLogLevel = "HPXDEFAULTS_LOG_LEVEL"
)

type Config struct {
	LogLevel    zapcore.Level `yaml:"log_level"`
	LogEncoding string        `yaml:"log_encoding"`
	DBFile      string        `yaml:"db_file"`
	MQTTConfig  *MQTTConfig   `yaml:"mqtt"`
	Lookup      *LookupConfig `yaml:"lookup"`
	Engine      *EngineConfig `yaml:"engine"`

	// Per run. Usually given on the command line.
	Input     string `yaml:"input,omitempty"`
	Weather   string `yaml:"weather,omitempty"`
	Output    string `yaml:"output,omitempty"`
	Schedules string `yaml:"schedules,omitempty"`
}

func GetPTR[T any](v T) *T {
	return &v
}

func defConfig() *Config {
	return &Config{
		LogLevel:    zapcore.InfoLevel,
		LogEncoding: defaultLogEncoding,
		DBFile:      defaultDBFile,
		MQTTConfig:  NewMQTTConfig(),
		Lookup:      &LookupConfig{},
		Engine:      NewEngineConfig(),
		Output:      defaultOutputFile,
	}
}

func prettyPrint(cfg *Config) {
	d, err := yaml.Marshal(cfg)
	if err != nil {
		logger.L().Error("Failed to marshal config for pretty print", err)
		return
	}
	logger.L().Debugf("--- Config ---\n%s\n\n", string(d))
}

func (cfg *Config) FillDefaults() {
	if cfg.MQTTConfig == nil {
		cfg.MQTTConfig = NewMQTTConfig()
	}
	cfg.MQTTConfig.FillDefaults()
	if cfg.Lookup == nil {
		cfg.Lookup = &LookupConfig{}
	}
	if cfg.Engine == nil {
		cfg.Engine = NewEngineConfig()
	}
	cfg.Engine.FillDefaults()

	if cfg.LogEncoding == "" {
		cfg.LogEncoding = defaultLogEncoding
	}
	if cfg.Output == "" {
		cfg.Output = defaultOutputFile
	}
}

// Validate checks what FillDefaults cannot repair.
func (cfg *Config) Validate() error {
	if cfg.Input == "" {
		return fmt.Errorf("no input document, use --input")
	}
	if cfg.Weather == "" {
		return fmt.Errorf("no weather file, use --weather")
	}
	return cfg.Engine.Validate()
}

func Get() *Config {
	cfg := defConfig()
	logLevel := getopt.StringLong("log-level", 'l', "", "log levels: debug, info, warn, error, dpanic, panic, fatal")
	configFile := getopt.StringLong("config", 'c', defaultConfigFile, "config file pathname")
	dbFile := getopt.StringLong("db", 'd', "", "DB file pathname")
	input := getopt.StringLong("input", 'i', "", "building document pathname")
	weatherFile := getopt.StringLong("weather", 'w', "", "weather file pathname")
	output := getopt.StringLong("output", 'o', "", "defaulted document pathname, - for stdout")
	schedules := getopt.StringLong("schedules", 's', "", "detailed schedule columns pathname")
	noPublish := getopt.BoolLong("no-publish", 0, "do not publish design loads over MQTT")

	getopt.Parse()

	if err := readFile(cfg, *configFile); err != nil {
		log.Panicf("GetConfig: %v", err)
	}
	logger.L().Infof("Using config file `%v`", *configFile)

	if err := applyEnv(cfg, os.LookupEnv); err != nil {
		logger.L().Errorf("Environment: %v", err)
	}

	overrideString(&cfg.DBFile, *dbFile)
	overrideString(&cfg.Input, *input)
	overrideString(&cfg.Weather, *weatherFile)
	overrideString(&cfg.Output, *output)
	overrideString(&cfg.Schedules, *schedules)
	logger.L().Infof("Using DB file `%v`", cfg.DBFile)

	cfg.FillDefaults()
	if *noPublish {
		cfg.MQTTConfig.Enabled = GetPTR(false)
	}

	if *logLevel != "" {
		if err := cfg.LogLevel.Set(*logLevel); err != nil {
			logger.L().Errorf("Wrong log level `%v`: %v", *logLevel, err)
		}
	}
	logger.SetLogLevel(cfg.LogLevel)
	if err := logger.SetEncoding(cfg.LogEncoding); err != nil {
		logger.L().Errorf("Wrong log encoding `%v`: %v", cfg.LogEncoding, err)
	}

	prettyPrint(cfg)

	return cfg
}

func overrideString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// applyEnv takes the lookup function as a parameter so tests do not touch
// the process environment.
func applyEnv(cfg *Config, lookupEnv func(string) (string, bool)) error {
	if v, ok := lookupEnv(EnvDBFile); ok && v != "" {
		cfg.DBFile = v
	}
	if v, ok := lookupEnv(EnvMQTTURL); ok && v != "" {
		if cfg.MQTTConfig == nil {
			cfg.MQTTConfig = NewMQTTConfig()
		}
		cfg.MQTTConfig.URL = v
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		if err := cfg.LogLevel.Set(v); err != nil {
			return fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}
	return nil
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	return err == nil && !info.IsDir()
}

func readFile(cfg *Config, configFileName string) error {
	if !fileExists(configFileName) {
		return nil
	}

	f, err := os.Open(configFileName)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil && err != io.EOF {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	return nil
}
