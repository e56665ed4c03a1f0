package chunks

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"teehistorian-gen/wire"
)

// DefaultVersion is the header "version" of new writers.
const DefaultVersion = "2"

// Source yields records one at a time. Next returns ErrEndOfInput once the
// input is exhausted.
type Source interface {
	Next() (Chunk, error)
}

// Writer assembles a teehistorian stream: the JSON header followed by
// encoded records. Close appends the end-of-stream record.
type Writer struct {
	headers *Map
	body    []byte
	count   int
	closed  bool
}

// NewWriter returns a writer with the default header.
func NewWriter() *Writer {
	w := &Writer{}
	w.Reset()

	return w
}

// SetHeader sets a header field.
func (w *Writer) SetHeader(key, value string) error {
	if w.closed {
		return ErrClosed
	}

	w.headers.Set(key, value)

	return nil
}

// Header returns a header field.
func (w *Writer) Header(key string) (string, bool) {
	v, ok := w.headers.Get(key)
	if !ok {
		return "", false
	}

	s, ok := v.(string)

	return s, ok
}

// Write encodes c and appends it to the stream.
func (w *Writer) Write(c Chunk) error {
	if w.closed {
		return ErrClosed
	}

	body, err := appendChunk(w.body, c)
	if err != nil {
		return err
	}

	w.body = body
	w.count++

	return nil
}

// WriteAll writes every record, stopping at the first failure.
func (w *Writer) WriteAll(cs ...Chunk) error {
	for i, c := range cs {
		if err := w.Write(c); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}

	return nil
}

// WriteFrom drains src into the stream and returns the number of records
// written. Reaching the end of src is not an error.
func (w *Writer) WriteFrom(src Source) (int, error) {
	n := 0

	for {
		c, err := src.Next()
		if errors.Is(err, ErrEndOfInput) {
			return n, nil
		}

		if err != nil {
			return n, fmt.Errorf("reading record %d: %w", n, err)
		}

		if err := w.Write(c); err != nil {
			return n, err
		}

		n++
	}
}

// Close appends the end-of-stream record. Closing twice is a no-op.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}

	if err := w.Write(NewEos()); err != nil {
		return err
	}

	w.closed = true

	return nil
}

// Closed reports whether Close was called.
func (w *Writer) Closed() bool {
	return w.closed
}

// Len returns the number of records written.
func (w *Writer) Len() int {
	return w.count
}

// Size returns the size of the encoded records, header excluded.
func (w *Writer) Size() int {
	return len(w.body)
}

// IsEmpty reports whether no record was written.
func (w *Writer) IsEmpty() bool {
	return w.count == 0
}

// Reset returns the writer to its initial state: no records, open, and
// only the default header.
func (w *Writer) Reset() {
	w.headers = NewMap(4)
	w.headers.Set("version", DefaultVersion)
	w.body = w.body[:0]
	w.count = 0
	w.closed = false
}

// Bytes returns the complete stream: file magic, header and records.
func (w *Writer) Bytes() ([]byte, error) {
	header, err := json.Marshal(w.headers)
	if err != nil {
		return nil, fmt.Errorf("encoding header: %w", err)
	}

	out, err := wire.AppendHeader(make([]byte, 0, 17+len(header)+len(w.body)), header)
	if err != nil {
		return nil, fmt.Errorf("encoding header: %w", err)
	}

	return append(out, w.body...), nil
}

// WriteTo writes the complete stream to dst.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	data, err := w.Bytes()
	if err != nil {
		return 0, err
	}

	n, err := dst.Write(data)

	return int64(n), err
}

// Save writes the complete stream to path.
func (w *Writer) Save(path string) error {
	data, err := w.Bytes()
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}

	return nil
}
