package sources

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable indicates a transport failure or a non-success
	// status while talking to a source system.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrMalformedPayload indicates a source answered, but its body could not
	// be decoded into the expected raw record shape.
	ErrMalformedPayload = errors.New("malformed payload")
)

// unavailable wraps err as ErrSourceUnavailable with source and endpoint context.
func unavailable(source, endpoint string, err error) error {
	return fmt.Errorf("%s %s: %w: %v", source, endpoint, ErrSourceUnavailable, err)
}

// Malformed wraps a decode or shape problem as ErrMalformedPayload.
func Malformed(source, endpoint string, format string, args ...any) error {
	return fmt.Errorf("%s %s: %w: %s", source, endpoint, ErrMalformedPayload, fmt.Sprintf(format, args...))
}
