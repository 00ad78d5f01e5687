// Copyright 2026 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// config holds the settings of a run. The YAML keys match the flag names.
type config struct {
	Echo            bool  `yaml:"echo"`
	Verbosity       int32 `yaml:"verbosity"`
	InitialCapacity int   `yaml:"initial-capacity"`
	RedactableLogs  bool  `yaml:"redactable-logs"`
}

// loadConfig decodes the YAML config file at path into c. Keys that do not
// correspond to a setting are rejected.
func loadConfig(path string, c *config) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening config file")
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrapf(err, "parsing config file %s", path)
	}
	return nil
}

// resolveConfig computes the settings of a run: the flag defaults, then the
// config file if one was given, then every flag set explicitly on the
// command line.
func resolveConfig(flags *pflag.FlagSet, fromFlags config, configPath string) (config, error) {
	c := fromFlags
	if configPath != "" {
		if err := loadConfig(configPath, &c); err != nil {
			return config{}, err
		}
		overrideFromFlags(flags, fromFlags, &c)
	}
	if c.InitialCapacity < 0 {
		return config{}, errors.Newf("%s must be non-negative, got %d", initialCapacityFlag, c.InitialCapacity)
	}
	return c, nil
}

// overrideFromFlags copies into c the settings given explicitly on the
// command line.
func overrideFromFlags(flags *pflag.FlagSet, fromFlags config, c *config) {
	if flags.Changed(echoFlag) {
		c.Echo = fromFlags.Echo
	}
	if flags.Changed(verbosityFlag) {
		c.Verbosity = fromFlags.Verbosity
	}
	if flags.Changed(initialCapacityFlag) {
		c.InitialCapacity = fromFlags.InitialCapacity
	}
	if flags.Changed(redactableLogsFlag) {
		c.RedactableLogs = fromFlags.RedactableLogs
	}
}
