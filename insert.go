package listpack

import (
	"math"

	"github.com/run-mojo/listpack/lperror"
)

// Placement selects where Insert puts the new element relative to the
// target position.
type Placement int

const (
	Before Placement = iota
	After
	Replace
)

// Append adds ele as the new last element. A run of canonical decimal
// text is packed with the smallest fitting integer encoding; any other
// run is stored as a string.
func (lp *Listpack) Append(ele []byte) error {
	if ele == nil {
		ele = []byte{}
	}
	_, err := lp.insert(ele, int(lp.totalBytes())-1, Before)
	return err
}

// Insert places ele relative to the element at position p, per the
// placement. It returns the position of the inserted (or replacing)
// element, which supersedes p and any other previously obtained
// position. Inserting Before or After the terminator appends.
func (lp *Listpack) Insert(ele []byte, p int, where Placement) (int, error) {
	if ele == nil {
		ele = []byte{}
	}
	if p < headerSize || p >= int(lp.totalBytes()) {
		return 0, lp.invalidPosition(p)
	}
	return lp.insert(ele, p, where)
}

// Delete removes the element at position p. It returns the position of
// the element that took its place, or -1 when the deleted element was
// the last one.
func (lp *Listpack) Delete(p int) (int, error) {
	if p < headerSize || encodedSizeAt(lp.buf, p) == 0 {
		return 0, lp.invalidPosition(p)
	}
	return lp.insert(nil, p, Replace)
}

// insert is the single writer every mutation funnels through. A nil ele
// with a Replace placement deletes the target entry.
func (lp *Listpack) insert(ele []byte, p int, where Placement) (int, error) {
	oldBytes := int(lp.totalBytes())
	eofOff := oldBytes - 1

	// After becomes Before whatever follows the target; at the tail
	// that is the terminator, which appends.
	if where == After {
		if p != eofOff {
			p = lp.skip(p)
		}
		where = Before
	}

	var replaced int
	if where == Replace {
		es := encodedSizeAt(lp.buf, p)
		if es == 0 {
			return 0, lp.invalidPosition(p)
		}
		replaced = es + backlenSize(uint64(es))
	}

	var encSize, backSize int
	var intVal int64
	var asInt bool
	if ele != nil {
		if uint64(len(ele)) >= math.MaxUint32 {
			return 0, lperror.New(lperror.ElementTooLarge, len(ele))
		}
		intVal, asInt = stringToInt64(ele)
		if asInt {
			encSize = intEncodedSize(intVal)
		} else {
			encSize = strEncodedSize(len(ele))
		}
		backSize = backlenSize(uint64(encSize))
	}

	newBytes := oldBytes + encSize + backSize - replaced
	if uint64(newBytes) > maxTotalBytes {
		return 0, lperror.New(lperror.ListpackTooLarge, newBytes)
	}

	// Grow before shifting the tail right; shrink only after shifting
	// it left.
	if newBytes > oldBytes {
		lp.buf = lp.alloc.Realloc(lp.buf, newBytes)
	}
	tail := p + replaced
	copy(lp.buf[p+encSize+backSize:newBytes], lp.buf[tail:oldBytes])
	if newBytes < oldBytes {
		lp.buf = lp.alloc.Realloc(lp.buf, newBytes)
	}

	if ele != nil {
		var n int
		if asInt {
			n = encodeIntElement(lp.buf[p:], intVal)
		} else {
			n = encodeStrElement(lp.buf[p:], ele)
		}
		encodeBacklen(lp.buf[p+n:], uint64(n))
	}

	num := lp.numElements()
	if num != numEleUnknown {
		switch {
		case ele == nil:
			lp.setNumElements(num - 1)
		case where == Before:
			// Saturating into the unknown sentinel is intended; a
			// later Length() recounts.
			lp.setNumElements(num + 1)
		}
	}
	lp.setTotalBytes(uint32(newBytes))

	if ele == nil && lp.buf[p] == eofByte {
		return -1, nil
	}
	return p, nil
}

// intEncodedSize returns the tag-plus-payload size of the smallest
// integer encoding that fits v.
func intEncodedSize(v int64) int {
	switch {
	case v >= 0 && v <= 127:
		return 1
	case v >= -4096 && v <= 4095:
		return 2
	case v >= math.MinInt16 && v <= math.MaxInt16:
		return 3
	case v >= -8388608 && v <= 8388607:
		return 4
	case v >= math.MinInt32 && v <= math.MaxInt32:
		return 5
	default:
		return 9
	}
}

func strEncodedSize(l int) int {
	if l < 64 {
		return 1 + l
	}
	if l < 4096 {
		return 2 + l
	}
	return 5 + l
}

// encodeIntElement writes the smallest integer encoding of v at the
// start of dst and returns its size. Negative values below the 64 bit
// tier are stored as their two's complement within the tier's width.
func encodeIntElement(dst []byte, v int64) int {
	switch {
	case v >= 0 && v <= 127:
		dst[0] = byte(v)
		return 1
	case v >= -4096 && v <= 4095:
		if v < 0 {
			v = (1 << 13) + v
		}
		dst[0] = byte(v>>8) | enc13BitInt
		dst[1] = byte(v)
		return 2
	case v >= math.MinInt16 && v <= math.MaxInt16:
		if v < 0 {
			v = (1 << 16) + v
		}
		dst[0] = enc16BitInt
		dst[1] = byte(v)
		dst[2] = byte(v >> 8)
		return 3
	case v >= -8388608 && v <= 8388607:
		if v < 0 {
			v = (1 << 24) + v
		}
		dst[0] = enc24BitInt
		dst[1] = byte(v)
		dst[2] = byte(v >> 8)
		dst[3] = byte(v >> 16)
		return 4
	case v >= math.MinInt32 && v <= math.MaxInt32:
		if v < 0 {
			v = (1 << 32) + v
		}
		dst[0] = enc32BitInt
		dst[1] = byte(v)
		dst[2] = byte(v >> 8)
		dst[3] = byte(v >> 16)
		dst[4] = byte(v >> 24)
		return 5
	default:
		uv := uint64(v)
		dst[0] = enc64BitInt
		dst[1] = byte(uv)
		dst[2] = byte(uv >> 8)
		dst[3] = byte(uv >> 16)
		dst[4] = byte(uv >> 24)
		dst[5] = byte(uv >> 32)
		dst[6] = byte(uv >> 40)
		dst[7] = byte(uv >> 48)
		dst[8] = byte(uv >> 56)
		return 9
	}
}

func encodeStrElement(dst []byte, ele []byte) int {
	size := len(ele)
	if size < 64 {
		dst[0] = byte(size) | enc6BitStr
		copy(dst[1:], ele)
		return 1 + size
	}
	if size < 4096 {
		dst[0] = byte(size>>8) | enc12BitStr
		dst[1] = byte(size)
		copy(dst[2:], ele)
		return 2 + size
	}
	dst[0] = enc32BitStr
	dst[1] = byte(size)
	dst[2] = byte(size >> 8)
	dst[3] = byte(size >> 16)
	dst[4] = byte(size >> 24)
	copy(dst[5:], ele)
	return 5 + size
}

// stringToInt64 parses canonical decimal text: an optional minus
// followed by digits with no leading zeros, within int64 range.
// Anything else stays a string element, which is what keeps the
// round-trip through decimal text lossless.
func stringToInt64(s []byte) (int64, bool) {
	if len(s) == 0 || len(s) > 20 {
		return 0, false
	}

	i := 0
	negative := false
	if s[0] == '-' {
		negative = true
		i++
		if i == len(s) {
			return 0, false
		}
	}

	if s[i] == '0' {
		if negative || len(s)-i != 1 {
			return 0, false
		}
		return 0, true
	}
	if s[i] < '1' || s[i] > '9' {
		return 0, false
	}

	v := uint64(s[i] - '0')
	i++
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		if v > math.MaxUint64/10 {
			return 0, false
		}
		v *= 10
		d := uint64(s[i] - '0')
		if v+d < v {
			return 0, false
		}
		v += d
	}

	if negative {
		if v > uint64(math.MaxInt64)+1 {
			return 0, false
		}
		if v == uint64(math.MaxInt64)+1 {
			return math.MinInt64, true
		}
		return -int64(v), true
	}
	if v > math.MaxInt64 {
		return 0, false
	}
	return int64(v), true
}
