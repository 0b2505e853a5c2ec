package model

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Callers distinguish them with errors.Is; structural
// errors halt the stream and are wrapped in a *DecodeError carrying the
// byte offset at which they were detected.
var (
	// ErrTruncated means the buffer is shorter than a structural
	// requirement (header, definition body, or field run).
	ErrTruncated = errors.New("fit: truncated input")

	// ErrMalformedHeader means the file header's magic or CRC did not
	// validate, or header_size is implausible.
	ErrMalformedHeader = errors.New("fit: malformed header")

	// ErrMalformedDefinition means a definition record declared an
	// unknown base-type code or a field size that isn't a multiple of
	// the base type's element size.
	ErrMalformedDefinition = errors.New("fit: malformed definition record")

	// ErrUnknownLocalMessageType means a data record referenced a local
	// message type slot with no prior definition.
	ErrUnknownLocalMessageType = errors.New("fit: unknown local message type")

	// ErrFileCRCMismatch means the trailing file CRC did not match the
	// CRC computed over the header and record stream.
	ErrFileCRCMismatch = errors.New("fit: file crc mismatch")

	// ErrSchemaError means a profile schema loader invariant was
	// violated. Build-time only; never returned by the runtime decoder.
	ErrSchemaError = errors.New("fit: profile schema error")
)

// DecodeError wraps a structural decode error with the byte offset at
// which it was detected, so callers can report precisely where a stream
// stopped being trustworthy.
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("fit: at offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// WrapAt is a small constructor used throughout the parser package.
func WrapAt(offset int, err error) error {
	if err == nil {
		return nil
	}
	return &DecodeError{Offset: offset, Err: err}
}
