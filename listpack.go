// Package listpack implements a compact, variable-length sequential
// container encoded into a single chunk of memory:
//
//	<tot-bytes> <num-elements> <element-1> ... <element-N> <0xFF>
//
// tot-bytes is a 32 bit little endian count of the whole allocation,
// terminator included. num-elements is a 16 bit little endian element
// count; 65535 means the count is unknown and must be recomputed by a
// scan. Every element carries a reverse-readable length after its data
// so the pack can be traversed in both directions.
//
// Elements are byte runs. A run holding canonical decimal text is
// packed into one of the native fixed-width integer encodings; anything
// else is stored as a string blob. Positions are byte offsets into the
// pack and are invalidated by structural changes, except where an
// operation hands back the updated position.
package listpack

import (
	"encoding/binary"
	"math"

	"github.com/run-mojo/listpack/lperror"
)

const (
	headerSize    = 6
	numEleUnknown = math.MaxUint16

	// compared through uint64 so the bound stays exact on 32 bit
	// platforms, where it does not fit int
	maxTotalBytes uint64 = math.MaxUint32

	// sign plus up to 20 digits; room for the encoder's terminator
	intBufSize = 21

	eofByte = 0xFF
)

type Listpack struct {
	buf   []byte
	alloc Allocator
}

// New returns an empty listpack backed by the Go heap.
func New() *Listpack {
	return NewWithAllocator(HeapAllocator{})
}

// NewWithAllocator returns an empty listpack whose buffer management is
// delegated to a.
func NewWithAllocator(a Allocator) *Listpack {
	lp := &Listpack{buf: a.Alloc(headerSize + 1), alloc: a}
	lp.setTotalBytes(headerSize + 1)
	lp.setNumElements(0)
	lp.buf[headerSize] = eofByte
	return lp
}

// FromBytes wraps a serialized listpack, first checking its integrity.
// The bytes are copied into a fresh allocation.
func FromBytes(data []byte) (*Listpack, error) {
	return FromBytesWithAllocator(data, HeapAllocator{})
}

func FromBytesWithAllocator(data []byte, a Allocator) (*Listpack, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	buf := a.Alloc(len(data))
	copy(buf, data)
	return &Listpack{buf: buf, alloc: a}, nil
}

// Bytes returns the serialized form. The slice aliases the listpack's
// buffer and is only valid until the next structural change.
func (lp *Listpack) Bytes() []byte {
	return lp.buf[:lp.totalBytes()]
}

// TotalBytes returns the size of the encoded listpack, header and
// terminator included.
func (lp *Listpack) TotalBytes() int {
	return int(lp.totalBytes())
}

// Length returns the number of elements. The cached header count is
// used when known; otherwise the pack is scanned and the cache
// refreshed when the count fits the header field again.
func (lp *Listpack) Length() int {
	num := lp.numElements()
	if num != numEleUnknown {
		return int(num)
	}

	count := 0
	for p, ok := lp.First(); ok; p, ok = lp.Next(p) {
		count++
	}
	if count < numEleUnknown {
		lp.setNumElements(uint16(count))
	}
	return count
}

// Free releases the buffer back to the allocator. The listpack must not
// be used afterwards.
func (lp *Listpack) Free() {
	lp.alloc.Free(lp.buf)
	lp.buf = nil
}

func (lp *Listpack) totalBytes() uint32 {
	return binary.LittleEndian.Uint32(lp.buf[0:4])
}

func (lp *Listpack) setTotalBytes(v uint32) {
	binary.LittleEndian.PutUint32(lp.buf[0:4], v)
}

func (lp *Listpack) numElements() uint16 {
	return binary.LittleEndian.Uint16(lp.buf[4:6])
}

func (lp *Listpack) setNumElements(v uint16) {
	binary.LittleEndian.PutUint16(lp.buf[4:6], v)
}

func (lp *Listpack) invalidPosition(p int) lperror.Error {
	return lperror.New(lperror.InvalidPosition, p)
}
