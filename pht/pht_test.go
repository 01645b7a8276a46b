package pht_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/smsprefetch/pht"
	"github.com/sarchlab/smsprefetch/region"
)

var geo = region.Geometry{RegionSize: 2048, LineSize: 64}

var _ = Describe("PHT", func() {
	It("returns 0 on a cold lookup", func() {
		p := pht.New(geo, 4096, 4)
		Expect(p.Lookup(0, 0x1000)).To(Equal(region.Pattern(0)))
	})

	It("stores and looks up a pattern written through from AT", func() {
		p := pht.New(geo, 4096, 4)

		p.Insert(0, 0x1000, 0xA)

		Expect(p.Check(0, 0x1000)).To(BeTrue())
		Expect(p.Lookup(0, 0x1000)).To(Equal(region.Pattern(0xA)))
	})

	It("leaves exactly 4 valid entries when 5 keys conflict in one set", func() {
		p := pht.New(geo, 1, 4)

		keys := []uint64{
			0x1000, 0x2000, 0x3000, 0x4000, 0x5000,
		}
		for _, k := range keys {
			p.Insert(0, k, 0x1)
		}

		Expect(p.Len()).To(Equal(4))
		Expect(p.Check(0, 0x1000)).To(BeFalse(), "the LRU key should be evicted")
	})

	It("ORs patterns across every matching way in a set", func() {
		p := pht.New(geo, 1, 4)
		p.Insert(1, 0x1000, 0x3)
		p.Insert(2, 0x1000, 0xC)

		Expect(p.Lookup(0, 0x1000)).To(Equal(region.Pattern(0xF)))
	})
})
