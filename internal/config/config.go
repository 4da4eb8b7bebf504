// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/go-settings-builder/internal/source"

// StructuredConfig is the configuration of the settings builder tool itself,
// not of the settings it builds. It is populated by merging command-line
// flags, environment variables, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - json: member name in the JSON config file.
type StructuredConfig struct {
	// Settings says where the settings sources are and in which order they
	// are applied.
	Settings Settings `envPrefix:"SETTINGS_" json:"settings"`

	// Log holds output settings of the tool's own logger.
	Log Log `envPrefix:"LOG_" json:"log"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// Settings locates the settings sources.
type Settings struct {
	// File is the path of the JSON settings file. A missing file is skipped.
	// Env: SETTINGS_FILE
	File string `env:"FILE" json:"file"`

	// Resource is the name of the embedded JSON resource, matched by suffix.
	// Env: SETTINGS_RESOURCE
	Resource string `env:"RESOURCE" json:"resource"`

	// Section is the first key segment environment variables must carry to
	// be considered, e.g. "Cheese" for Cheese__Name. Empty means all.
	// Env: SETTINGS_SECTION
	Section string `env:"SECTION" json:"section"`

	// Order lists the source kinds ("file", "resource", "env") in the order
	// they are applied. Later sources win.
	// Env: SETTINGS_ORDER (comma separated)
	Order []string `env:"ORDER" envSeparator:"," json:"order"`
}

// Log holds logger settings.
type Log struct {
	// Level is a zerolog level name such as "debug" or "warn".
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" json:"level"`
}

// Defaults returns the configuration used for every field no other source
// sets.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		Settings: Settings{
			File:     "folder/settings.json",
			Resource: "embedded-settings.json",
			Section:  "Cheese",
			Order:    defaultOrder(),
		},
		Log: Log{Level: "info"},
	}
}

func defaultOrder() []string {
	order := make([]string, 0, len(source.DefaultOrder))
	for _, kind := range source.DefaultOrder {
		order = append(order, string(kind))
	}
	return order
}

// GetStructuredConfig loads, merges, and validates the tool configuration.
// For every field the first source that sets it wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func GetStructuredConfig(flags *Flags) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(flags).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
