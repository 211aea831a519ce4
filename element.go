package listpack

import (
	"encoding/binary"
	"math"

	"github.com/run-mojo/listpack/conv"
)

// Element encodings. The first byte of an entry selects one of nine
// forms; integers are little endian except where the tag byte itself
// carries high bits.
const (
	enc7BitUint     = 0x00 // 0xxxxxxx, values 0..127
	enc7BitUintMask = 0x80

	enc6BitStr     = 0x80 // 10xxxxxx, length in the tag
	enc6BitStrMask = 0xC0

	enc13BitInt     = 0xC0 // 110xxxxx + 1 byte
	enc13BitIntMask = 0xE0

	enc12BitStr     = 0xE0 // 1110xxxx + 1 byte length
	enc12BitStrMask = 0xF0

	enc32BitStr = 0xF0 // + 4 byte length
	enc16BitInt = 0xF1 // + 2 bytes
	enc24BitInt = 0xF2 // + 3 bytes
	enc32BitInt = 0xF3 // + 4 bytes
	enc64BitInt = 0xF4 // + 8 bytes
)

// maxBacklenSize is the largest reverse-length suffix: 5 bytes of 7 bit
// chunks cover entries up to 2^34-1 bytes.
const maxBacklenSize = 5

// Value is one decoded element: either a 64 bit integer or a byte run.
type Value struct {
	ival  int64
	str   []byte
	isInt bool
}

func intValue(v int64) Value {
	return Value{ival: v, isInt: true}
}

func strValue(s []byte) Value {
	return Value{str: s}
}

// IsInt reports whether the element was packed with an integer
// encoding.
func (v Value) IsInt() bool {
	return v.isInt
}

// Int64 returns the integer form, if the element has one.
func (v Value) Int64() (int64, bool) {
	return v.ival, v.isInt
}

// Bytes returns the element's byte run. String elements alias the
// listpack buffer and are only valid until the next structural change;
// integer elements are rendered as decimal text into buf, which needs
// at least 21 bytes. If buf is too small for the rendered digits plus
// their terminator, buf is left untouched and a zero-length slice is
// returned; callers that cannot rule out a short buffer should check
// IsInt, since an empty string element also yields a zero-length run.
func (v Value) Bytes(buf []byte) []byte {
	if !v.isInt {
		return v.str
	}
	n := conv.EncodeInt64(buf, v.ival)
	return buf[:n]
}

func (v Value) String() string {
	if !v.isInt {
		return string(v.str)
	}
	var buf [intBufSize]byte
	n := conv.EncodeInt64(buf[:], v.ival)
	return string(buf[:n])
}

// Get decodes the element at position p.
func (lp *Listpack) Get(p int) (Value, error) {
	buf := lp.buf
	if p < headerSize || p >= int(lp.totalBytes())-1 {
		return Value{}, lp.invalidPosition(p)
	}

	c := buf[p]
	var uval, negstart, negmax uint64
	switch {
	case c&enc7BitUintMask == enc7BitUint:
		uval = uint64(c & 0x7F)
		negstart = math.MaxUint64
		negmax = 0
	case c&enc6BitStrMask == enc6BitStr:
		l := int(c & 0x3F)
		return strValue(buf[p+1 : p+1+l]), nil
	case c&enc13BitIntMask == enc13BitInt:
		uval = uint64(c&0x1F)<<8 | uint64(buf[p+1])
		negstart = 1 << 12
		negmax = 8191
	case c&enc12BitStrMask == enc12BitStr:
		l := int(c&0x0F)<<8 | int(buf[p+1])
		return strValue(buf[p+2 : p+2+l]), nil
	case c == enc16BitInt:
		uval = uint64(binary.LittleEndian.Uint16(buf[p+1:]))
		negstart = 1 << 15
		negmax = math.MaxUint16
	case c == enc24BitInt:
		uval = uint64(buf[p+1]) | uint64(buf[p+2])<<8 | uint64(buf[p+3])<<16
		negstart = 1 << 23
		negmax = math.MaxUint32 >> 8
	case c == enc32BitInt:
		uval = uint64(binary.LittleEndian.Uint32(buf[p+1:]))
		negstart = 1 << 31
		negmax = math.MaxUint32
	case c == enc64BitInt:
		uval = binary.LittleEndian.Uint64(buf[p+1:])
		negstart = 1 << 63
		negmax = math.MaxUint64
	case c == enc32BitStr:
		l := int(binary.LittleEndian.Uint32(buf[p+1:]))
		return strValue(buf[p+5 : p+5+l]), nil
	default:
		return Value{}, lp.invalidPosition(p)
	}

	// Two's complement conversion, in three steps to stay inside
	// defined behavior for the 64 bit boundary values.
	if uval >= negstart {
		uval = negmax - uval
		return intValue(-int64(uval) - 1), nil
	}
	return intValue(int64(uval)), nil
}

// First returns the position of the first element.
func (lp *Listpack) First() (int, bool) {
	if lp.buf[headerSize] == eofByte {
		return 0, false
	}
	return headerSize, true
}

// Last returns the position of the last element.
func (lp *Listpack) Last() (int, bool) {
	return lp.Prev(int(lp.totalBytes()) - 1)
}

// Next returns the position of the element after p.
func (lp *Listpack) Next(p int) (int, bool) {
	p = lp.skip(p)
	if lp.buf[p] == eofByte {
		return 0, false
	}
	return p, true
}

// Prev returns the position of the element before p.
func (lp *Listpack) Prev(p int) (int, bool) {
	if p <= headerSize {
		return 0, false
	}
	prevlen := decodeBacklen(lp.buf, p-1)
	prevlen += uint64(backlenSize(prevlen))
	return p - int(prevlen), true
}

// Seek returns the position of the element at the given index. Negative
// indexes count from the tail, -1 being the last element. The scan
// direction is chosen by which end is closer when the element count is
// known.
func (lp *Listpack) Seek(index int) (int, bool) {
	forward := true

	numele := int(lp.numElements())
	if numele != numEleUnknown {
		if index < 0 {
			index = numele + index
		}
		if index < 0 || index >= numele {
			return 0, false
		}
		if index > numele/2 {
			forward = false
			// Reverse scanning expects a negative index.
			index = index - numele
		}
	} else if index < 0 {
		forward = false
	}

	if forward {
		p, ok := lp.First()
		for ok && index > 0 {
			p, ok = lp.Next(p)
			index--
		}
		return p, ok
	}
	p, ok := lp.Last()
	for ok && index < -1 {
		p, ok = lp.Prev(p)
		index++
	}
	return p, ok
}

// skip returns the offset just past the entry at p, which is either the
// next entry or the terminator.
func (lp *Listpack) skip(p int) int {
	entrylen := encodedSizeAt(lp.buf, p)
	return p + entrylen + backlenSize(uint64(entrylen))
}

// encodedSizeAt returns the tag-plus-payload size of the entry starting
// at p, excluding its backlen, or 0 if the byte at p does not begin a
// valid element or the entry header overruns the buffer.
func encodedSizeAt(buf []byte, p int) int {
	if p < 0 || p >= len(buf) {
		return 0
	}
	c := buf[p]
	switch {
	case c&enc7BitUintMask == enc7BitUint:
		return 1
	case c&enc6BitStrMask == enc6BitStr:
		return 1 + int(c&0x3F)
	case c&enc13BitIntMask == enc13BitInt:
		return 2
	case c&enc12BitStrMask == enc12BitStr:
		if p+1 >= len(buf) {
			return 0
		}
		return 2 + int(c&0x0F)<<8 + int(buf[p+1])
	case c == enc16BitInt:
		return 3
	case c == enc24BitInt:
		return 4
	case c == enc32BitInt:
		return 5
	case c == enc64BitInt:
		return 9
	case c == enc32BitStr:
		if p+5 > len(buf) {
			return 0
		}
		return 5 + int(binary.LittleEndian.Uint32(buf[p+1:]))
	}
	return 0
}

// backlenSize returns how many bytes the reverse length of an entry of
// size l occupies.
func backlenSize(l uint64) int {
	switch {
	case l <= 127:
		return 1
	case l < 16383:
		return 2
	case l < 2097151:
		return 3
	case l < 268435455:
		return 4
	default:
		return 5
	}
}

// encodeBacklen writes the reverse length of an entry of size l at the
// start of buf and returns the number of bytes written. The most
// significant 7 bit chunk comes first; every chunk but the first
// carries a continuation bit so the value can be read right to left.
func encodeBacklen(buf []byte, l uint64) int {
	switch {
	case l <= 127:
		buf[0] = byte(l)
		return 1
	case l < 16383:
		buf[0] = byte(l >> 7)
		buf[1] = byte(l&127) | 128
		return 2
	case l < 2097151:
		buf[0] = byte(l >> 14)
		buf[1] = byte(l>>7&127) | 128
		buf[2] = byte(l&127) | 128
		return 3
	case l < 268435455:
		buf[0] = byte(l >> 21)
		buf[1] = byte(l>>14&127) | 128
		buf[2] = byte(l>>7&127) | 128
		buf[3] = byte(l&127) | 128
		return 4
	default:
		buf[0] = byte(l >> 28)
		buf[1] = byte(l>>21&127) | 128
		buf[2] = byte(l>>14&127) | 128
		buf[3] = byte(l>>7&127) | 128
		buf[4] = byte(l&127) | 128
		return 5
	}
}

// decodeBacklen reads a reverse length ending at buf[p], walking
// backwards while the continuation bit is set.
func decodeBacklen(buf []byte, p int) uint64 {
	var val, shift uint64
	for {
		val |= uint64(buf[p]&127) << shift
		if buf[p]&128 == 0 {
			return val
		}
		shift += 7
		p--
		if shift > 28 || p < 0 {
			return math.MaxUint64
		}
	}
}
