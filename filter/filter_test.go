package filter_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/smsprefetch/filter"
	"github.com/sarchlab/smsprefetch/region"
)

var _ = Describe("FT", func() {
	It("tracks a first-touch region", func() {
		f := filter.New(32)

		f.Insert(0, 0x1000, 0x2)

		p, ok := f.Check(0, 0x1000)
		Expect(ok).To(BeTrue())
		Expect(p).To(Equal(region.Pattern(0x2)))
	})

	It("leaves the entry untouched on a repeat access to the same block", func() {
		f := filter.New(32)
		f.Insert(0, 0x1000, 0x2)

		promote, _ := f.Update(0, 0x1000, 0x2)
		Expect(promote).To(BeFalse())

		p, ok := f.Check(0, 0x1000)
		Expect(ok).To(BeTrue())
		Expect(p).To(Equal(region.Pattern(0x2)))
	})

	It("signals promotion and invalidates itself on a new block", func() {
		f := filter.New(32)
		f.Insert(0, 0x1000, 0x2)

		promote, merged := f.Update(0, 0x1000, 0x8)
		Expect(promote).To(BeTrue())
		Expect(merged).To(Equal(region.Pattern(0xA)))

		_, ok := f.Check(0, 0x1000)
		Expect(ok).To(BeFalse())
	})

	It("evicts LRU beyond capacity 32 and restarts tracking on the next access", func() {
		f := filter.New(32)

		for i := 0; i < 33; i++ {
			f.Insert(0, uint64(i)*0x1000, 0x1)
		}

		Expect(f.Len()).To(Equal(32))

		_, ok := f.Check(0, 0x0)
		Expect(ok).To(BeFalse())

		f.Insert(0, 0x0, 0x4)
		p, ok := f.Check(0, 0x0)
		Expect(ok).To(BeTrue())
		Expect(p).To(Equal(region.Pattern(0x4)))
	})
})
