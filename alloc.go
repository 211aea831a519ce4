package listpack

// Allocator controls how listpack buffers are obtained, grown, and
// released. The capability is handed to the container at construction,
// so no global state is involved and embedding systems (arenas,
// mmap-backed regions) can substitute their own policy per listpack.
type Allocator interface {
	Alloc(size int) []byte
	Realloc(buf []byte, size int) []byte
	Free(buf []byte)
}

// HeapAllocator is the default Allocator, backed by the Go heap.
type HeapAllocator struct{}

func (HeapAllocator) Alloc(size int) []byte {
	return make([]byte, size)
}

func (HeapAllocator) Realloc(buf []byte, size int) []byte {
	if size <= cap(buf) {
		return buf[:size]
	}
	grown := make([]byte, size)
	copy(grown, buf)
	return grown
}

func (HeapAllocator) Free(buf []byte) {}
