package spinel

import (
	"errors"
	"fmt"
)

// MaxPackedUint is the largest value a packed unsigned integer may carry
// (three 7-bit groups).
const MaxPackedUint = 1<<21 - 1

var ErrShortBuffer = errors.New("spinel: short buffer")

// AppendPackedUint appends v in the Spinel packed encoding: little-endian
// 7-bit groups, high bit set on every byte but the last.
func AppendPackedUint(dst []byte, v uint32) ([]byte, error) {
	if v > MaxPackedUint {
		return dst, fmt.Errorf("spinel: packed uint %d out of range", v)
	}
	for v >= 0x80 {
		dst = append(dst, byte(v&0x7f)|0x80)
		v >>= 7
	}
	return append(dst, byte(v)), nil
}

// ReadPackedUint decodes a packed unsigned integer from the front of b and
// returns the value and the number of bytes consumed.
func ReadPackedUint(b []byte) (uint32, int, error) {
	var v uint32
	for i := 0; i < len(b); i++ {
		if i == 3 {
			return 0, 0, fmt.Errorf("spinel: packed uint too long")
		}
		v |= uint32(b[i]&0x7f) << (7 * i)
		if b[i]&0x80 == 0 {
			return v, i + 1, nil
		}
	}
	return 0, 0, ErrShortBuffer
}
