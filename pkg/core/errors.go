package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrMalformedLine      = errors.New("malformed line")
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	ErrMalformedQuantity  = errors.New("malformed quantity")
	ErrInvalidRange       = errors.New("invalid range: day count must not be negative")
	ErrInvalidFilter      = errors.New("invalid category filter")
	ErrStoreIO            = errors.New("store i/o failure")
	ErrEmptyCategory      = errors.New("empty category")
	ErrEmptyValue         = errors.New("empty value")
	ErrInvalidValue       = errors.New("invalid value")
	ErrReadOnly           = errors.New("journal is in read-only mode")

	// ErrNotCommitted means the entry was written to the journal but
	// recording it in version control failed.
	ErrNotCommitted = errors.New("entry stored but not committed")
)

// LineError reports the journal line that aborted a load.
type LineError struct {
	Line int // 1-based line number in the file
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
