package conv_test

import (
	"math"
	"math/rand"
	"strconv"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	. "github.com/run-mojo/listpack/conv"
)

// division-loop reference for cross-checking the comparison tree
func referenceDigits(v uint64) uint32 {
	var n uint32 = 1
	for v >= 10 {
		v /= 10
		n++
	}
	return n
}

var _ = Describe("Digit count functions", func() {
	Context("Digits10", func() {
		It("should count zero as one digit", func() {
			Expect(Digits10(0)).To(Equal(uint32(1)))
		})
		It("should count digits around every power of ten", func() {
			pow := uint64(1)
			for exp := 1; exp <= 19; exp++ {
				pow *= 10
				Expect(Digits10(pow - 1)).To(Equal(uint32(exp)), "below 10^%d", exp)
				Expect(Digits10(pow)).To(Equal(uint32(exp + 1)), "at 10^%d", exp)
			}
		})
		It("should count the largest uint64", func() {
			Expect(Digits10(math.MaxUint64)).To(Equal(uint32(20)))
		})
		It("should match the division-loop reference for random values", func() {
			r := rand.New(rand.NewSource(time.Now().UnixNano()))
			for i := 0; i < 100000; i++ {
				v := r.Uint64()
				Expect(Digits10(v)).To(Equal(referenceDigits(v)))
			}
		})
		It("should match the length of the printed form", func() {
			r := rand.New(rand.NewSource(time.Now().UnixNano()))
			for i := 0; i < 100000; i++ {
				v := r.Uint64()
				Expect(Digits10(v)).To(Equal(uint32(len(strconv.FormatUint(v, 10)))))
			}
		})
	})

	Context("SignedDigits10", func() {
		It("should not count a sign for non-negative values", func() {
			Expect(SignedDigits10(0)).To(Equal(uint32(1)))
			Expect(SignedDigits10(7)).To(Equal(uint32(1)))
			Expect(SignedDigits10(math.MaxInt64)).To(Equal(uint32(19)))
		})
		It("should count the sign for negative values", func() {
			Expect(SignedDigits10(-1)).To(Equal(uint32(2)))
			Expect(SignedDigits10(-99)).To(Equal(uint32(3)))
			Expect(SignedDigits10(-100)).To(Equal(uint32(4)))
		})
		It("should handle the smallest int64 without overflow", func() {
			Expect(SignedDigits10(math.MinInt64)).To(Equal(uint32(20)))
			Expect(SignedDigits10(math.MinInt64 + 1)).To(Equal(uint32(20)))
		})
		It("should equal the unsigned count of the magnitude plus the sign", func() {
			r := rand.New(rand.NewSource(time.Now().UnixNano()))
			for i := 0; i < 100000; i++ {
				v := int64(r.Uint64())
				expected := uint32(len(strconv.FormatInt(v, 10)))
				Expect(SignedDigits10(v)).To(Equal(expected))
			}
		})
	})
})
