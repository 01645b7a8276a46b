package accumulation_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/smsprefetch/accumulation"
	"github.com/sarchlab/smsprefetch/pht"
	"github.com/sarchlab/smsprefetch/region"
)

var geo = region.Geometry{RegionSize: 2048, LineSize: 64}

var _ = Describe("AT", func() {
	It("holds the merged pattern handed in at promotion", func() {
		a := accumulation.New(64)
		a.Insert(0, 0x1000, 0xA)

		p, ok := a.Check(0, 0x1000)
		Expect(ok).To(BeTrue())
		Expect(p).To(Equal(region.Pattern(0xA)))
	})

	It("overwrites the pattern when a new block is touched", func() {
		a := accumulation.New(64)
		a.Insert(0, 0x1000, 0xA)

		a.Update(0, 0x1000, 0x10)

		p, _ := a.Check(0, 0x1000)
		Expect(p).To(Equal(region.Pattern(0x1A)))
	})

	It("no-ops on a repeat block", func() {
		a := accumulation.New(64)
		a.Insert(0, 0x1000, 0xA)

		a.Update(0, 0x1000, 0x2)

		p, _ := a.Check(0, 0x1000)
		Expect(p).To(Equal(region.Pattern(0xA)))
	})

	It("transfers its pattern to the PHT and invalidates itself", func() {
		a := accumulation.New(64)
		p := pht.New(geo, 4096, 4)

		a.Insert(0, 0x1000, 0xA)

		ok, _ := a.Transfer(0, 0x1000, p)
		Expect(ok).To(BeTrue())

		_, stillThere := a.Check(0, 0x1000)
		Expect(stillThere).To(BeFalse())

		Expect(p.Lookup(0, 0x1000)).To(Equal(region.Pattern(0xA)))
	})

	It("reports failure transferring an untracked key", func() {
		a := accumulation.New(64)
		p := pht.New(geo, 4096, 4)

		ok, _ := a.Transfer(0, 0x9000, p)
		Expect(ok).To(BeFalse())
	})
})
