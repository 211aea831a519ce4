package conv

import "math"

// EncodeInt64 writes the minimal decimal representation of v into dst,
// followed by a NUL terminator, and returns the number of characters
// written excluding the terminator. If dst cannot hold the digits plus
// the terminator, nothing is written and 0 is returned; no valid
// encoding has length 0, so the zero return is unambiguous.
//
// The digits are placed back to front, two per division via digitPairs,
// so the function performs no allocation and roughly half the divisions
// of a digit-at-a-time loop.
func EncodeInt64(dst []byte, v int64) int {
	var value uint64
	negative := false
	if v < 0 {
		if v != math.MinInt64 {
			value = uint64(-v)
		} else {
			value = uint64(math.MaxInt64) + 1
		}
		negative = true
	} else {
		value = uint64(v)
	}

	length := int(Digits10(value))
	if negative {
		length++
	}
	if length >= len(dst) {
		return 0
	}

	next := length
	dst[next] = 0
	next--
	for value >= 100 {
		i := (value % 100) * 2
		value /= 100
		dst[next] = digitPairs[i+1]
		dst[next-1] = digitPairs[i]
		next -= 2
	}

	if value < 10 {
		dst[next] = byte('0' + value)
	} else {
		i := value * 2
		dst[next] = digitPairs[i+1]
		dst[next-1] = digitPairs[i]
	}

	if negative {
		dst[0] = '-'
	}
	return length
}
