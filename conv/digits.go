package conv

import "math"

// Digits10 returns the number of characters needed to print v in radix 10
// with no leading zeros, counting 1 for zero itself. Values below 10^12
// resolve in at most four comparisons; larger values recurse exactly once
// on v/10^12.
func Digits10(v uint64) uint32 {
	if v < 10 {
		return 1
	}
	if v < 100 {
		return 2
	}
	if v < 1000 {
		return 3
	}
	if v < 1000000000000 {
		if v < 100000000 {
			if v < 1000000 {
				if v < 10000 {
					return 4
				}
				if v < 100000 {
					return 5
				}
				return 6
			}
			if v < 10000000 {
				return 7
			}
			return 8
		}
		if v < 10000000000 {
			if v < 1000000000 {
				return 9
			}
			return 10
		}
		if v < 100000000000 {
			return 11
		}
		return 12
	}
	return 12 + Digits10(v/1000000000000)
}

// SignedDigits10 is Digits10 for signed values, counting one extra
// character for the minus sign of negatives.
func SignedDigits10(v int64) uint32 {
	if v < 0 {
		// The magnitude of MinInt64 does not fit int64, so it cannot be
		// formed by negation.
		uv := uint64(math.MaxInt64) + 1
		if v != math.MinInt64 {
			uv = uint64(-v)
		}
		return Digits10(uv) + 1
	}
	return Digits10(uint64(v))
}
