package source

import "errors"

var (
	// ErrUnknownSource indicates a source kind other than file, resource or env.
	ErrUnknownSource = errors.New("unknown settings source")
	// ErrDuplicateSource indicates a source kind declared twice in one order.
	ErrDuplicateSource = errors.New("duplicate settings source")
)
