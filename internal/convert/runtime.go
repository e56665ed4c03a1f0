package convert

import (
	"unsafe"

	"github.com/google/uuid"
)

// StringBytes returns the bytes of s without copying. The result must not
// be modified.
func StringBytes(s string) []byte {
	if s == "" {
		return nil
	}

	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Borrow returns a view of vals sharing its backing array.
func Borrow[T any](vals []T) []T {
	return vals[:len(vals):len(vals)]
}

// Identifier parses s as a UUID. Unparsable text yields the zero UUID.
func Identifier(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}

	return id
}

// SingleArgToken wraps the bytes of s as a one-element argument list.
// The text is not split on whitespace or any other delimiter.
func SingleArgToken(s string) [][]byte {
	return [][]byte{StringBytes(s)}
}

// Bounded returns exactly n values: extra values are dropped and missing
// values are zero.
func Bounded(vals []int32, n int) []int32 {
	res := make([]int32, n)
	copy(res, vals)

	return res
}
