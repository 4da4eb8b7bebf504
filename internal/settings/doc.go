// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package settings implements the layered settings engine: field descriptor
// tables, value coercion, the environment path mapper and the override
// (deep-merge) algorithm.
//
// A settings type is described once with [Describe]. Every field of the type
// is a pointer (scalars, enums, nested objects) or a slice (collections) so
// that "not specified by this source" (nil) can be told apart from a present
// zero or empty value:
//
//	type Origin struct {
//	    Name     *string
//	    Location *string
//	}
//
//	var OriginDescriptor = settings.Describe[Origin]("Origin",
//	    settings.String("Name", func(o *Origin) **string { return &o.Name }),
//	    settings.String("Location", func(o *Origin) **string { return &o.Location }),
//	)
//
// The descriptor then decodes candidates from JSON ([Descriptor.DecodeJSON]) or
// from a flat environment map ([Descriptor.Shape]) and merges them onto a
// running value with [Descriptor.Override]. The last applied non-nil value of
// every leaf wins; collections are replaced wholesale.
package settings
