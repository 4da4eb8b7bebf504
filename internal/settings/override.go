// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package settings

// Override merges candidate onto base and returns the merged value.
//
// For every field of T:
//   - scalar, enum and collection fields take the candidate's value when it
//     is non-nil; a present empty string, zero number or empty slice is an
//     override, only nil is "not specified". Collections are replaced
//     wholesale, never concatenated;
//   - nested fields present on the candidate are merged recursively onto the
//     base's nested value, or onto a fresh zero value if the base has none.
//     A nested field absent on the candidate leaves the base's value as is.
//
// base is mutated in place. If candidate is nil, base is returned unchanged;
// if base is nil, the candidate is merged onto a fresh zero value. Applying the
// same candidate twice yields the same result as applying it once.
func (d *Descriptor[T]) Override(base, candidate *T) *T {
	if candidate == nil {
		return base
	}
	if base == nil {
		base = d.New()
	}

	d.schema.override(base, candidate)
	return base
}

func (s *Schema) override(base, candidate any) {
	for _, f := range s.fields {
		if f.Kind != KindNested {
			if f.isSet(candidate) {
				f.assign(base, candidate)
			}
			continue
		}

		c := f.child(candidate)
		if c == nil {
			continue
		}
		f.Nested.override(f.ensure(base), c)
	}
}
