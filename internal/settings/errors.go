package settings

import (
	"errors"
	"fmt"
)

var (
	// ErrCoercion is matched by every [CoercionError].
	ErrCoercion = errors.New("value coercion failed")
	// ErrShape is matched by every [ShapeError].
	ErrShape = errors.New("malformed settings path")

	// ErrTypeMismatch means the source value has the wrong structure for the
	// field, e.g. a JSON object given for a scalar field.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrNullElement means a collection contained a JSON null element.
	ErrNullElement = errors.New("null collection element")
	// ErrUnknownEnum means the text is neither a member name nor a member ordinal.
	ErrUnknownEnum = errors.New("unknown enum value")
	// ErrNotFinite means a number parsed to NaN or an infinity.
	ErrNotFinite = errors.New("number is not finite")
	// ErrMalformedJSON means the JSON text could not be parsed at all.
	ErrMalformedJSON = errors.New("malformed json")

	// ErrInvalidIndex means the segment after a collection field is not a
	// non-negative decimal index.
	ErrInvalidIndex = errors.New("invalid collection index")
	// ErrSparseCollection means collection indices are not contiguous from 0.
	ErrSparseCollection = errors.New("collection indices are not contiguous from 0")
	// ErrConflictingKeys means two keys resolve to the same leaf.
	ErrConflictingKeys = errors.New("conflicting keys for the same field")
)

// CoercionError reports a raw value that cannot be converted into the kind of
// the field it targets.
type CoercionError struct {
	// Path is the dotted field path, e.g. "Cheese.Price" or "Cheese.Flavours[1]".
	Path string
	// Value is the offending raw value.
	Value string
	// Kind is the declared kind of the target field.
	Kind Kind
	Err  error
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("cannot coerce %q into %s field %s: %v", e.Value, e.Kind, e.Path, e.Err)
}

func (e *CoercionError) Unwrap() []error {
	return []error{ErrCoercion, e.Err}
}

// ShapeError reports a flat key that cannot be placed into the settings tree.
type ShapeError struct {
	// Key is the flat key (or collection path) that failed.
	Key string
	Err error
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("cannot shape key %q: %v", e.Key, e.Err)
}

func (e *ShapeError) Unwrap() []error {
	return []error{ErrShape, e.Err}
}
