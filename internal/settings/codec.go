package settings

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Codec converts between the raw text of a source and a typed field value.
type Codec[V any] struct {
	// Parse decodes raw text. Errors are wrapped into a [CoercionError] by
	// the caller.
	Parse func(raw string) (V, error)
	// Format returns the JSON-encodable representation of v.
	Format func(v V) any
}

// Built-in codecs for the common scalar kinds.
var (
	StringCodec = Codec[string]{
		Parse:  func(raw string) (string, error) { return raw, nil },
		Format: func(v string) any { return v },
	}

	// FloatCodec rejects NaN and infinities, including overflowing literals
	// such as 1e400.
	FloatCodec = Codec[float64]{
		Parse: func(raw string) (float64, error) {
			f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil {
				return 0, err
			}
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return 0, ErrNotFinite
			}
			return f, nil
		},
		Format: func(v float64) any { return v },
	}

	IntCodec = Codec[int]{
		Parse: func(raw string) (int, error) {
			return strconv.Atoi(strings.TrimSpace(raw))
		},
		Format: func(v int) any { return v },
	}

	BoolCodec = Codec[bool]{
		Parse: func(raw string) (bool, error) {
			return strconv.ParseBool(strings.TrimSpace(raw))
		},
		Format: func(v bool) any { return v },
	}

	// DurationCodec accepts time.ParseDuration text such as "1h30m".
	DurationCodec = Codec[time.Duration]{
		Parse: func(raw string) (time.Duration, error) {
			return time.ParseDuration(strings.TrimSpace(raw))
		},
		Format: func(v time.Duration) any { return v.String() },
	}
)

// ordinal is the underlying type of an enumeration.
type ordinal interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32
}

// EnumCodec returns a codec for an enumeration whose members are numbered
// 0..len(names)-1 in the order of names.
//
// Parse accepts either the member name, compared case-insensitively, or the
// member ordinal as decimal text. Both forms yield the same value. Format
// always emits the name.
func EnumCodec[E ordinal](names ...string) Codec[E] {
	return Codec[E]{
		Parse: func(raw string) (E, error) {
			raw = strings.TrimSpace(raw)
			for i, name := range names {
				if strings.EqualFold(name, raw) {
					return E(i), nil
				}
			}

			n, err := strconv.Atoi(raw)
			if err == nil && n >= 0 && n < len(names) {
				return E(n), nil
			}

			var zero E
			return zero, fmt.Errorf("%w: expected one of %s or 0..%d", ErrUnknownEnum, strings.Join(names, ", "), len(names)-1)
		},
		Format: func(v E) any {
			if i := int(v); i >= 0 && i < len(names) {
				return names[i]
			}
			return int(v)
		},
	}
}
