package agt_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/smsprefetch/accumulation"
	"github.com/sarchlab/smsprefetch/agt"
	"github.com/sarchlab/smsprefetch/filter"
	"github.com/sarchlab/smsprefetch/pht"
	"github.com/sarchlab/smsprefetch/region"
)

var geo = region.Geometry{RegionSize: 2048, LineSize: 64}

func newAGT() (*agt.AGT, *pht.PHT) {
	g := agt.New(filter.New(32), accumulation.New(64))
	p := pht.New(geo, 4096, 4)

	return g, p
}

var _ = Describe("AGT", func() {
	It("reports present when FT holds the key", func() {
		g, _ := newAGT()
		g.FT.Insert(0, 0x1000, 0x2)

		Expect(g.Check(0, 0x1000)).To(BeTrue())
	})

	It("reports present when AT holds the key", func() {
		g, _ := newAGT()
		g.AT.Insert(0, 0x1000, 0xA)

		Expect(g.Check(0, 0x1000)).To(BeTrue())
	})

	It("reports absent when neither holds the key", func() {
		g, _ := newAGT()
		Expect(g.Check(0, 0x1000)).To(BeFalse())
	})

	It("never has a key present in both FT and AT", func() {
		g, _ := newAGT()
		g.FT.Insert(0, 0x1000, 0x2)
		g.AT.Insert(0, 0x2000, 0xA)

		_, inFT := g.FT.Check(0, 0x2000)
		_, inAT := g.AT.Check(0, 0x1000)
		Expect(inFT).To(BeFalse())
		Expect(inAT).To(BeFalse())
	})

	It("deleting an AT-tracked region writes through to PHT", func() {
		g, p := newAGT()
		g.AT.Insert(0, 0x1000, 0xA)

		transferred, _ := g.Delete(0, 0x1000, p)
		Expect(transferred).To(BeTrue())

		Expect(g.Check(0, 0x1000)).To(BeFalse())
		Expect(p.Lookup(0, 0x1000)).To(Equal(region.Pattern(0xA)))
	})

	It("deleting an FT-only region simply invalidates it", func() {
		g, p := newAGT()
		g.FT.Insert(0, 0x1000, 0x2)

		transferred, _ := g.Delete(0, 0x1000, p)
		Expect(transferred).To(BeFalse())

		Expect(g.Check(0, 0x1000)).To(BeFalse())
		Expect(p.Lookup(0, 0x1000)).To(Equal(region.Pattern(0)))
	})
})
