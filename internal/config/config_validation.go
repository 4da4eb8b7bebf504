// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-settings-builder/internal/logger"
	"github.com/MKhiriev/go-settings-builder/internal/source"
)

// validate checks that the final merged [StructuredConfig] can be used to
// build settings.
func (cfg *StructuredConfig) validate() error {
	if _, err := cfg.Settings.SourceOrder(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSettingsConfigs, err)
	}

	if _, err := cfg.Log.ZerologLevel(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}

// SourceOrder parses Order into source kinds.
func (s Settings) SourceOrder() ([]source.Kind, error) {
	return source.ParseOrder(s.Order)
}

func (l Log) ZerologLevel() (zerolog.Level, error) {
	return logger.ParseLevel(l.Level)
}
