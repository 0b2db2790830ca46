package query

import "errors"

var (
	// ErrNotFound is returned when no entity has the requested sourcedId.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidQueryParameter is returned for out-of-range limit or offset values.
	ErrInvalidQueryParameter = errors.New("invalid query parameter")
)
