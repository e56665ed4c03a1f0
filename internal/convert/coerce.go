package convert

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cast"
)

// Int32 coerces a host value to int32. Values outside the int32 range are
// an error, never truncated.
func Int32(v any) (int32, error) {
	if outOfInt32Range(v) {
		return 0, fmt.Errorf("expected integer: %v out of int32 range", v)
	}

	n, err := cast.ToInt64E(v)
	if err != nil {
		return 0, fmt.Errorf("expected integer: %w", err)
	}

	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("expected integer: %d out of int32 range", n)
	}

	return int32(n), nil
}

// outOfInt32Range catches the kinds int64 conversion would wrap.
func outOfInt32Range(v any) bool {
	switch n := v.(type) {
	case uint:
		return uint64(n) > math.MaxInt32
	case uint64:
		return n > math.MaxInt32
	case float32:
		return n < math.MinInt32 || n > math.MaxInt32
	case float64:
		return n < math.MinInt32 || n > math.MaxInt32
	}

	return false
}

// Float64 coerces a host value to float64.
func Float64(v any) (float64, error) {
	res, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("expected float: %w", err)
	}

	return res, nil
}

// Bool coerces a host value to bool.
func Bool(v any) (bool, error) {
	res, err := cast.ToBoolE(v)
	if err != nil {
		return false, fmt.Errorf("expected boolean: %w", err)
	}

	return res, nil
}

// Text coerces a host value to string. Byte slices are taken as text.
func Text(v any) (string, error) {
	res, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("expected text: %w", err)
	}

	return res, nil
}

// Bytes coerces a host value to a byte slice. Strings are copied, integer
// lists are taken element-wise and must fit in a byte.
func Bytes(v any) ([]byte, error) {
	switch b := v.(type) {
	case []byte:
		return b, nil
	case string:
		return []byte(b), nil
	case nil:
		return nil, nil
	}

	ints, err := cast.ToIntSliceE(v)
	if err != nil {
		return nil, fmt.Errorf("expected bytes: %w", err)
	}

	res := make([]byte, len(ints))
	for i, n := range ints {
		if n < 0 || n > 0xff {
			return nil, fmt.Errorf("expected bytes: element %d out of range: %d", i, n)
		}

		res[i] = byte(n)
	}

	return res, nil
}

// Int32s coerces a host value to a list of int32. Every element goes
// through Int32. Text is split at spaces and commas, so "1 2 3" and "1,2,3"
// are both lists.
func Int32s(v any) ([]int32, error) {
	switch l := v.(type) {
	case nil:
		return nil, nil
	case []int32:
		return l, nil
	case string:
		v = strings.FieldsFunc(l, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("expected integer list: unable to cast %#v of type %T to []int32", v, v)
	}

	res := make([]int32, rv.Len())
	for i := range res {
		n, err := Int32(rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("expected integer list: element %d: %w", i, err)
		}

		res[i] = n
	}

	return res, nil
}

// UUID coerces a host value to a UUID. Unlike Identifier, unparsable text
// is an error.
func UUID(v any) (uuid.UUID, error) {
	if id, ok := v.(uuid.UUID); ok {
		return id, nil
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return uuid.Nil, fmt.Errorf("expected identifier: %w", err)
	}

	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, fmt.Errorf("expected identifier: %w", err)
	}

	return id, nil
}
