package wire

import "errors"

// ErrShortInput is returned by UnpackInt when the input ends inside a number.
var ErrShortInput = errors.New("wire: short input")

// maxIntBytes is the longest packing of a 32-bit integer.
const maxIntBytes = 5

// PackInt appends v in the teeworlds variable-length integer format.
//
// The first byte holds an extend bit, a sign bit and the low six value bits;
// each following byte holds an extend bit and seven value bits. Negative
// numbers are stored as their one's complement.
func PackInt(dst []byte, v int32) []byte {
	b := byte(uint32(v)>>25) & 0x40
	v ^= v >> 31

	u := uint32(v)
	b |= byte(u & 0x3f)
	u >>= 6

	for u != 0 {
		dst = append(dst, b|0x80)
		b = byte(u & 0x7f)
		u >>= 7
	}

	return append(dst, b)
}

// UnpackInt reads one packed integer and returns it with the number of bytes consumed.
func UnpackInt(src []byte) (int32, int, error) {
	if len(src) == 0 {
		return 0, 0, ErrShortInput
	}

	sign := src[0] >> 6 & 1
	u := uint32(src[0] & 0x3f)
	n := 1

	for shift := uint(6); src[n-1]&0x80 != 0; shift += 7 {
		if n >= len(src) || n >= maxIntBytes {
			return 0, n, ErrShortInput
		}

		u |= uint32(src[n]&0x7f) << shift
		n++
	}

	v := int32(u)
	if sign != 0 {
		v = ^v
	}

	return v, n, nil
}
