package listpack_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/run-mojo/listpack"
	"github.com/run-mojo/listpack/lperror"
)

var _ = Describe("Insert", func() {
	var lp *listpack.Listpack

	BeforeEach(func() {
		lp = listpack.New()
		mustAppend(lp, "a", "c")
	})

	Context("Before", func() {
		It("should insert ahead of the target", func() {
			p, ok := lp.Seek(1)
			Expect(ok).To(BeTrue())
			newp, err := lp.Insert([]byte("b"), p, listpack.Before)
			Expect(err).ToNot(HaveOccurred())
			Expect(elementStrings(lp)).To(Equal([]string{"a", "b", "c"}))

			v, err := lp.Get(newp)
			Expect(err).ToNot(HaveOccurred())
			Expect(v.String()).To(Equal("b"))
		})
		It("should insert at the head", func() {
			p, _ := lp.First()
			_, err := lp.Insert([]byte("start"), p, listpack.Before)
			Expect(err).ToNot(HaveOccurred())
			Expect(elementStrings(lp)).To(Equal([]string{"start", "a", "c"}))
		})
	})

	Context("After", func() {
		It("should insert behind the target", func() {
			p, _ := lp.First()
			newp, err := lp.Insert([]byte("b"), p, listpack.After)
			Expect(err).ToNot(HaveOccurred())
			Expect(elementStrings(lp)).To(Equal([]string{"a", "b", "c"}))

			v, err := lp.Get(newp)
			Expect(err).ToNot(HaveOccurred())
			Expect(v.String()).To(Equal("b"))
		})
		It("should append when the target is the last element", func() {
			p, _ := lp.Last()
			_, err := lp.Insert([]byte("z"), p, listpack.After)
			Expect(err).ToNot(HaveOccurred())
			Expect(elementStrings(lp)).To(Equal([]string{"a", "c", "z"}))
		})
	})

	Context("Replace", func() {
		It("should swap the element in place", func() {
			p, _ := lp.First()
			newp, err := lp.Insert([]byte("A"), p, listpack.Replace)
			Expect(err).ToNot(HaveOccurred())
			Expect(newp).To(Equal(p))
			Expect(elementStrings(lp)).To(Equal([]string{"A", "c"}))
			Expect(lp.Length()).To(Equal(2))
		})
		It("should grow the pack when the replacement is larger", func() {
			p, _ := lp.First()
			_, err := lp.Insert([]byte("a much longer replacement element"), p, listpack.Replace)
			Expect(err).ToNot(HaveOccurred())
			Expect(elementStrings(lp)).To(Equal(
				[]string{"a much longer replacement element", "c"}))
			Expect(lp.Validate()).To(Succeed())
		})
		It("should shrink the pack when the replacement is smaller", func() {
			p, _ := lp.First()
			_, err := lp.Insert([]byte("a much longer replacement element"), p, listpack.Replace)
			Expect(err).ToNot(HaveOccurred())
			before := lp.TotalBytes()

			p, _ = lp.First()
			_, err = lp.Insert([]byte("s"), p, listpack.Replace)
			Expect(err).ToNot(HaveOccurred())
			Expect(lp.TotalBytes()).To(BeNumerically("<", before))
			Expect(elementStrings(lp)).To(Equal([]string{"s", "c"}))
			Expect(lp.Validate()).To(Succeed())
		})
		It("should refuse to replace the terminator", func() {
			_, err := lp.Insert([]byte("x"), lp.TotalBytes()-1, listpack.Replace)
			Expect(err).To(HaveOccurred())
			coded, ok := err.(lperror.Error)
			Expect(ok).To(BeTrue())
			Expect(coded.GetCode()).To(Equal(lperror.InvalidPosition))
		})
	})

	Context("position bounds", func() {
		It("should reject positions outside the pack", func() {
			_, err := lp.Insert([]byte("x"), 0, listpack.Before)
			Expect(err).To(HaveOccurred())
			_, err = lp.Insert([]byte("x"), lp.TotalBytes(), listpack.Before)
			Expect(err).To(HaveOccurred())
		})
	})

	Context("Delete", func() {
		It("should remove a middle element and return the follower", func() {
			mustAppend(lp, "d")
			p, _ := lp.Seek(1)
			newp, err := lp.Delete(p)
			Expect(err).ToNot(HaveOccurred())
			Expect(elementStrings(lp)).To(Equal([]string{"a", "d"}))
			Expect(lp.Length()).To(Equal(2))

			v, err := lp.Get(newp)
			Expect(err).ToNot(HaveOccurred())
			Expect(v.String()).To(Equal("d"))
		})
		It("should signal when the last element was removed", func() {
			p, _ := lp.Last()
			newp, err := lp.Delete(p)
			Expect(err).ToNot(HaveOccurred())
			Expect(newp).To(Equal(-1))
			Expect(elementStrings(lp)).To(Equal([]string{"a"}))
		})
		It("should empty the pack one element at a time", func() {
			for lp.Length() > 0 {
				p, ok := lp.First()
				Expect(ok).To(BeTrue())
				_, err := lp.Delete(p)
				Expect(err).ToNot(HaveOccurred())
			}
			Expect(lp.TotalBytes()).To(Equal(7))
			Expect(lp.Validate()).To(Succeed())
		})
		It("should reject the terminator position", func() {
			_, err := lp.Delete(lp.TotalBytes() - 1)
			Expect(err).To(HaveOccurred())
		})
	})
})
