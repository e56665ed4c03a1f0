package chunks

import (
	"errors"
	"fmt"
)

var (
	// ErrEndOfInput signals that a Source has no more records. It is a
	// control signal and never wrapped in an EncodeError.
	ErrEndOfInput = errors.New("end of input")
	// ErrClosed is returned when writing to a closed Writer.
	ErrClosed = errors.New("writer closed")
	// ErrUnknownChunk is returned by New and Lookup for unknown surface names.
	ErrUnknownChunk = errors.New("unknown chunk")
	// ErrInvalidArgument is returned by New when an argument cannot be
	// coerced to the declared field type.
	ErrInvalidArgument = errors.New("invalid argument")
)

// EncodeError reports a record the codec rejected.
type EncodeError struct {
	// Chunk is the surface name of the rejected record.
	Chunk string
	Err   error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("failed to encode %s: %v", e.Chunk, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

func argError(chunk, field string, err error) error {
	return fmt.Errorf("%s: argument %q: %w: %w", chunk, field, ErrInvalidArgument, err)
}
