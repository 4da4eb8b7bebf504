// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/MKhiriev/go-settings-builder/internal/logger"
	"github.com/MKhiriev/go-settings-builder/internal/settings"
)

// Source is one layer of the settings pipeline. Load merges the layer onto
// base and returns the merged value.
type Source[T any] interface {
	Name() string
	Load(ctx context.Context, base *T) (*T, error)
}

// JSONFile loads a JSON settings file from a path. A blank path, a missing
// file and a blank file leave the settings unchanged.
type JSONFile[T any] struct {
	descriptor *settings.Descriptor[T]
	path       string
	files      FileReader
}

// NewJSONFile returns a source reading path through files.
func NewJSONFile[T any](d *settings.Descriptor[T], path string, files FileReader) *JSONFile[T] {
	return &JSONFile[T]{descriptor: d, path: path, files: files}
}

func (s *JSONFile[T]) Name() string {
	return "file " + s.path
}

func (s *JSONFile[T]) Load(ctx context.Context, base *T) (*T, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(s.path) == "" {
		log.Debug().Msg("no settings file configured, skipping")
		return base, nil
	}

	text, err := s.files.ReadFileText(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Str("path", s.path).Msg("settings file not found, skipping")
		return base, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading settings file: %w", err)
	}

	return overrideFromJSON(s.descriptor, base, text)
}

// EmbeddedResource loads a JSON resource packaged with the binary. A missing
// or blank resource leaves the settings unchanged.
type EmbeddedResource[T any] struct {
	descriptor *settings.Descriptor[T]
	name       string
	resources  ResourceReader
}

// NewEmbeddedResource returns a source reading the resource name.
func NewEmbeddedResource[T any](d *settings.Descriptor[T], name string, resources ResourceReader) *EmbeddedResource[T] {
	return &EmbeddedResource[T]{descriptor: d, name: name, resources: resources}
}

func (s *EmbeddedResource[T]) Name() string {
	return "resource " + s.name
}

func (s *EmbeddedResource[T]) Load(ctx context.Context, base *T) (*T, error) {
	text, err := s.resources.ReadResourceText(s.name)
	if errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Debug().Str("resource", s.name).Msg("settings resource not found, skipping")
		return base, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading settings resource: %w", err)
	}

	return overrideFromJSON(s.descriptor, base, text)
}

func overrideFromJSON[T any](d *settings.Descriptor[T], base *T, text string) (*T, error) {
	candidate, err := d.DecodeJSON(text)
	if err != nil {
		return nil, fmt.Errorf("error decoding json settings: %w", err)
	}

	return d.Override(base, candidate), nil
}

// Env loads settings from environment variables named by their path, e.g.
// "Cheese:Origin:Location" or "Cheese__Flavours__0". When section is set,
// only variables whose first segment equals it are considered.
type Env[T any] struct {
	descriptor *settings.Descriptor[T]
	env        Environment
	section    string
}

// NewEnv returns a source over env restricted to section.
func NewEnv[T any](d *settings.Descriptor[T], env Environment, section string) *Env[T] {
	return &Env[T]{descriptor: d, env: env, section: section}
}

func (s *Env[T]) Name() string {
	if s.section == "" {
		return "env"
	}
	return "env " + s.section
}

func (s *Env[T]) Load(ctx context.Context, base *T) (*T, error) {
	vars := settings.FilterPrefix(s.env.Environ(), s.section)
	logger.FromContext(ctx).Debug().Int("variables", len(vars)).Str("section", s.section).Msg("shaping environment variables")

	candidate, err := s.descriptor.Shape(vars)
	if err != nil {
		return nil, fmt.Errorf("error shaping environment settings: %w", err)
	}

	return s.descriptor.Override(base, candidate), nil
}
