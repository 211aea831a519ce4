package listpack_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/run-mojo/listpack"
)

// countingAllocator records every allocation call so tests can assert
// the container routes all buffer management through it.
type countingAllocator struct {
	allocs   int
	reallocs int
	frees    int
}

func (a *countingAllocator) Alloc(size int) []byte {
	a.allocs++
	return make([]byte, size)
}

func (a *countingAllocator) Realloc(buf []byte, size int) []byte {
	a.reallocs++
	if size <= cap(buf) {
		return buf[:size]
	}
	grown := make([]byte, size)
	copy(grown, buf)
	return grown
}

func (a *countingAllocator) Free(buf []byte) {
	a.frees++
}

var _ = Describe("Allocator", func() {
	It("should route every buffer operation through the configured allocator", func() {
		alloc := &countingAllocator{}
		lp := listpack.NewWithAllocator(alloc)
		Expect(alloc.allocs).To(Equal(1))

		mustAppend(lp, "one", "two", "three")
		Expect(alloc.reallocs).To(Equal(3))

		p, _ := lp.First()
		_, err := lp.Delete(p)
		Expect(err).ToNot(HaveOccurred())
		Expect(alloc.reallocs).To(Equal(4))

		lp.Free()
		Expect(alloc.frees).To(Equal(1))
	})

	It("should behave identically under the default heap allocator", func() {
		def := listpack.New()
		custom := listpack.NewWithAllocator(&countingAllocator{})
		mustAppend(def, "a", "bb", "ccc")
		mustAppend(custom, "a", "bb", "ccc")
		Expect(custom.Bytes()).To(Equal(def.Bytes()))
	})
})
