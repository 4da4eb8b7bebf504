package source

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-settings-builder/internal/logger"
	"github.com/MKhiriev/go-settings-builder/internal/settings"
)

// Kind names a type of settings source in a declared order.
type Kind string

const (
	KindFile     Kind = "file"
	KindResource Kind = "resource"
	KindEnv      Kind = "env"
)

// DefaultOrder applies the embedded resource first, so it holds defaults,
// then the file, then the environment.
var DefaultOrder = []Kind{KindResource, KindFile, KindEnv}

// ParseOrder parses a declared source order such as ["file", "env"]. Names
// are case-insensitive; unknown and repeated names are rejected.
func ParseOrder(names []string) ([]Kind, error) {
	order := make([]Kind, 0, len(names))
	seen := make(map[Kind]bool, len(names))
	for _, name := range names {
		kind := Kind(strings.ToLower(strings.TrimSpace(name)))
		switch kind {
		case KindFile, KindResource, KindEnv:
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
		}
		if seen[kind] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSource, name)
		}
		seen[kind] = true
		order = append(order, kind)
	}
	return order, nil
}

// Inputs holds the collaborators and parameters of every source kind, used
// by [Builder.WithOrder].
type Inputs struct {
	FilePath string
	Files    FileReader

	ResourceName string
	Resources    ResourceReader

	Section string
	Env     Environment
}

// Builder assembles a settings value by applying sources in the order they
// were added. Later sources override earlier ones.
type Builder[T any] struct {
	descriptor *settings.Descriptor[T]
	sources    []Source[T]
	err        error
}

// NewBuilder returns an empty builder for the settings type described by d.
func NewBuilder[T any](d *settings.Descriptor[T]) *Builder[T] {
	return &Builder[T]{
		descriptor: d,
		sources:    make([]Source[T], 0, 3),
	}
}

// With appends src to the pipeline.
func (b *Builder[T]) With(src Source[T]) *Builder[T] {
	b.sources = append(b.sources, src)
	return b
}

func (b *Builder[T]) WithJSONFile(path string, files FileReader) *Builder[T] {
	return b.With(NewJSONFile(b.descriptor, path, files))
}

func (b *Builder[T]) WithEmbeddedResource(name string, resources ResourceReader) *Builder[T] {
	return b.With(NewEmbeddedResource(b.descriptor, name, resources))
}

func (b *Builder[T]) WithEnvironment(env Environment, section string) *Builder[T] {
	return b.With(NewEnv(b.descriptor, env, section))
}

// WithOrder appends one source per kind of order, built from in.
func (b *Builder[T]) WithOrder(order []Kind, in Inputs) *Builder[T] {
	for _, kind := range order {
		switch kind {
		case KindFile:
			b.WithJSONFile(in.FilePath, in.Files)
		case KindResource:
			b.WithEmbeddedResource(in.ResourceName, in.Resources)
		case KindEnv:
			b.WithEnvironment(in.Env, in.Section)
		default:
			b.err = errors.Join(b.err, fmt.Errorf("%w: %q", ErrUnknownSource, kind))
		}
	}
	return b
}

// Build applies every source over a zero value and returns the result. The
// first failing source aborts the build.
func (b *Builder[T]) Build(ctx context.Context) (*T, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building settings: %w", b.err)
	}

	l := logger.FromContext(ctx).GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("load_id", newLoadID())
	})
	ctx = l.WithContext(ctx)

	cfg := b.descriptor.New()
	for _, src := range b.sources {
		next, err := src.Load(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("error loading settings from %s: %w", src.Name(), err)
		}
		cfg = next
		l.Debug().Str("source", src.Name()).Msg("settings source applied")
	}

	return cfg, nil
}

func newLoadID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}
