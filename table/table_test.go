package table_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/smsprefetch/region"
	"github.com/sarchlab/smsprefetch/table"
)

var _ = Describe("Table", func() {
	It("reports absent on a miss", func() {
		tb := table.New(1, 4)

		_, ok := tb.Check(0, 0x1000)
		Expect(ok).To(BeFalse())
	})

	It("stores and returns an inserted pattern", func() {
		tb := table.New(1, 4)

		outcome := tb.Insert(0, 0x1000, 0x2)
		Expect(outcome).To(Equal(table.NoEviction))

		p, ok := tb.Check(0, 0x1000)
		Expect(ok).To(BeTrue())
		Expect(*p).To(Equal(region.Pattern(0x2)))
	})

	It("keeps entries for different pids disjoint", func() {
		tb := table.New(1, 4)

		tb.Insert(1, 0x1000, 0x2)

		_, ok := tb.Check(2, 0x1000)
		Expect(ok).To(BeFalse())
	})

	It("evicts the LRU way when a set is full", func() {
		tb := table.New(1, 2)

		tb.Insert(0, 0x1000, 0x1)
		tb.Insert(0, 0x2000, 0x1)

		// Touch 0x1000 so 0x2000 becomes the LRU way.
		tb.Check(0, 0x1000)

		outcome := tb.Insert(0, 0x3000, 0x1)
		Expect(outcome).To(Equal(table.EvictedSame))

		_, ok := tb.Check(0, 0x2000)
		Expect(ok).To(BeFalse())

		_, ok = tb.Check(0, 0x1000)
		Expect(ok).To(BeTrue())

		_, ok = tb.Check(0, 0x3000)
		Expect(ok).To(BeTrue())
	})

	It("reports EvictedDifferent when the displaced pattern differs", func() {
		tb := table.New(1, 1)

		tb.Insert(0, 0x1000, 0x2)
		outcome := tb.Insert(0, 0x2000, 0x4)

		Expect(outcome).To(Equal(table.EvictedDifferent))
	})

	It("re-enters a fresh key after eviction as if never seen", func() {
		tb := table.New(1, 1)

		tb.Insert(0, 0x1000, 0x2)
		tb.Insert(0, 0x2000, 0x4)

		_, ok := tb.Check(0, 0x1000)
		Expect(ok).To(BeFalse())

		tb.Insert(0, 0x1000, 0x8)
		p, ok := tb.Check(0, 0x1000)
		Expect(ok).To(BeTrue())
		Expect(*p).To(Equal(region.Pattern(0x8)))
	})

	It("invalidate is a no-op on an absent key", func() {
		tb := table.New(1, 2)
		Expect(func() { tb.Invalidate(0, 0x1000) }).NotTo(Panic())
	})

	It("invalidate removes an entry so it can be reinserted", func() {
		tb := table.New(1, 2)

		tb.Insert(0, 0x1000, 0x2)
		tb.Invalidate(0, 0x1000)

		_, ok := tb.Check(0, 0x1000)
		Expect(ok).To(BeFalse())
	})

	It("supports multiple sets via a custom index function", func() {
		tb := table.New(4, 2)
		tb.IndexFunc = func(key uint64) int { return int(key) % 4 }

		tb.Insert(0, 0, 0x1)
		tb.Insert(0, 4, 0x2)

		_, ok := tb.Check(0, 0)
		Expect(ok).To(BeTrue())
		_, ok = tb.Check(0, 4)
		Expect(ok).To(BeTrue())
	})

	It("leaves exactly numWays valid entries when 5 keys map to one set of 4", func() {
		tb := table.New(1, 4)

		keys := []uint64{0x1000, 0x2000, 0x3000, 0x4000, 0x5000}
		for _, k := range keys {
			tb.Insert(0, k, 0x1)
		}

		Expect(tb.Len()).To(Equal(4))

		_, ok := tb.Check(0, 0x1000)
		Expect(ok).To(BeFalse(), "the LRU key should have been evicted")
	})

	It("MatchingWays returns every valid pattern in the set with that key", func() {
		tb := table.New(1, 4)
		tb.IndexFunc = func(uint64) int { return 0 }

		tb.Insert(1, 0x1000, 0x3)
		tb.Insert(2, 0x1000, 0xC)

		patterns := tb.MatchingWays(0x1000)
		Expect(patterns).To(ConsistOf(region.Pattern(0x3), region.Pattern(0xC)))
	})
})
