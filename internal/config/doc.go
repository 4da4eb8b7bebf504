// Package config provides loading, merging, and validation of the settings
// builder's own configuration: where the settings sources live, the order
// they are applied in, and the log level.
//
// Configuration is assembled from multiple sources; for every field the first
// source that sets it wins:
//  1. Command-line flags
//  2. Environment variables
//  3. JSON config file
//  4. Defaults
//
// The main entry point is [GetStructuredConfig].
package config
