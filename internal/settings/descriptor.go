// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

import (
	"fmt"
	"slices"
	"strings"
)

// Kind is the declared type-kind of a settings field. It selects the merge and
// coercion behaviour applied to the field.
type Kind int

const (
	KindScalar Kind = iota
	KindEnum
	KindCollection
	KindNested
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindEnum:
		return "enum"
	case KindCollection:
		return "collection"
	case KindNested:
		return "nested"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Field describes one field of a settings type. Fields are created with the
// generic constructors ([String], [Enum], [Strings], [Nested], ...) which bind
// the accessors to a concrete struct type.
type Field struct {
	Name string
	Kind Kind
	// Nested is the schema of the field's type for KindNested fields.
	Nested *Schema

	isSet  func(obj any) bool
	assign func(dst, src any)
	decode func(obj any, path string, raw []string) error
	encode func(obj any) (any, bool)

	// nested objects only
	child    func(obj any) any
	ensure   func(obj any) any
	setChild func(obj, child any)
}

// Schema is the type-erased field table of a settings type.
type Schema struct {
	name   string
	newFn  func() any
	fields []Field
	index  map[string]int
}

// Name returns the name the schema was described with.
func (s *Schema) Name() string {
	return s.name
}

// Fields returns the fields in declaration order.
func (s *Schema) Fields() []Field {
	return slices.Clone(s.fields)
}

// Lookup finds a field by name, ignoring case.
func (s *Schema) Lookup(name string) (Field, bool) {
	i, ok := s.index[strings.ToLower(name)]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Descriptor is the field table of the settings type T.
type Descriptor[T any] struct {
	schema *Schema
}

// Describe builds the descriptor of T from its field table. All fields must
// have been created for T. Describe panics if two fields share a name,
// ignoring case, since such a table cannot be matched case-insensitively.
func Describe[T any](name string, fields ...Field) *Descriptor[T] {
	s := &Schema{
		name:   name,
		newFn:  func() any { return new(T) },
		fields: fields,
		index:  make(map[string]int, len(fields)),
	}

	for i, f := range fields {
		key := strings.ToLower(f.Name)
		if _, dup := s.index[key]; dup {
			panic(fmt.Sprintf("settings: duplicate field %q in %s", f.Name, name))
		}
		s.index[key] = i
	}

	return &Descriptor[T]{schema: s}
}

// Schema returns the type-erased field table.
func (d *Descriptor[T]) Schema() *Schema {
	return d.schema
}

// New returns a zero value of T with every field absent.
func (d *Descriptor[T]) New() *T {
	return new(T)
}

// Scalar describes a pointer field holding a single value decoded by c.
func Scalar[T, V any](name string, ref func(*T) **V, c Codec[V]) Field {
	return leaf(name, KindScalar, ref, c)
}

// String describes a *string field.
func String[T any](name string, ref func(*T) **string) Field {
	return Scalar(name, ref, StringCodec)
}

// Float describes a *float64 field.
func Float[T any](name string, ref func(*T) **float64) Field {
	return Scalar(name, ref, FloatCodec)
}

// Int describes a *int field.
func Int[T any](name string, ref func(*T) **int) Field {
	return Scalar(name, ref, IntCodec)
}

// Bool describes a *bool field.
func Bool[T any](name string, ref func(*T) **bool) Field {
	return Scalar(name, ref, BoolCodec)
}

// Enum describes a pointer field holding an enumeration whose members are
// numbered in the order of names. See [EnumCodec].
func Enum[T any, E ordinal](name string, ref func(*T) **E, names ...string) Field {
	return leaf(name, KindEnum, ref, EnumCodec[E](names...))
}

func leaf[T, V any](name string, kind Kind, ref func(*T) **V, c Codec[V]) Field {
	return Field{
		Name: name,
		Kind: kind,
		isSet: func(obj any) bool {
			return *ref(obj.(*T)) != nil
		},
		assign: func(dst, src any) {
			v := *ref(src.(*T))
			if v == nil {
				return
			}
			cp := *v
			*ref(dst.(*T)) = &cp
		},
		decode: func(obj any, path string, raw []string) error {
			v, err := c.Parse(raw[0])
			if err != nil {
				return &CoercionError{Path: path, Value: raw[0], Kind: kind, Err: err}
			}
			*ref(obj.(*T)) = &v
			return nil
		},
		encode: func(obj any) (any, bool) {
			v := *ref(obj.(*T))
			if v == nil {
				return nil, false
			}
			return c.Format(*v), true
		},
	}
}

// Collection describes a slice field whose elements are decoded by c. A nil
// slice is absence; a non-nil empty slice is an explicit empty collection.
func Collection[T, V any](name string, ref func(*T) *[]V, c Codec[V]) Field {
	return Field{
		Name: name,
		Kind: KindCollection,
		isSet: func(obj any) bool {
			return *ref(obj.(*T)) != nil
		},
		assign: func(dst, src any) {
			v := *ref(src.(*T))
			if v == nil {
				return
			}
			*ref(dst.(*T)) = slices.Clone(v)
		},
		decode: func(obj any, path string, raw []string) error {
			items := make([]V, 0, len(raw))
			for i, r := range raw {
				v, err := c.Parse(r)
				if err != nil {
					return &CoercionError{Path: fmt.Sprintf("%s[%d]", path, i), Value: r, Kind: KindCollection, Err: err}
				}
				items = append(items, v)
			}
			*ref(obj.(*T)) = items
			return nil
		},
		encode: func(obj any) (any, bool) {
			v := *ref(obj.(*T))
			if v == nil {
				return nil, false
			}
			out := make([]any, 0, len(v))
			for _, item := range v {
				out = append(out, c.Format(item))
			}
			return out, true
		},
	}
}

// Strings describes a []string field.
func Strings[T any](name string, ref func(*T) *[]string) Field {
	return Collection(name, ref, StringCodec)
}

// Nested describes a pointer field holding another settings object described
// by d.
func Nested[T, N any](name string, ref func(*T) **N, d *Descriptor[N]) Field {
	return Field{
		Name:   name,
		Kind:   KindNested,
		Nested: d.schema,
		isSet: func(obj any) bool {
			return *ref(obj.(*T)) != nil
		},
		child: func(obj any) any {
			v := *ref(obj.(*T))
			if v == nil {
				return nil
			}
			return v
		},
		ensure: func(obj any) any {
			p := ref(obj.(*T))
			if *p == nil {
				*p = d.New()
			}
			return *p
		},
		setChild: func(obj, child any) {
			*ref(obj.(*T)) = child.(*N)
		},
	}
}
