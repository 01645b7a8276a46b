package sms_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/akita/v4/mem/vm"

	"github.com/sarchlab/smsprefetch/dcache"
	"github.com/sarchlab/smsprefetch/sms"
)

var _ = Describe("Engine against a mock DCache", func() {
	var (
		mockCtrl *gomock.Controller
		cache    *dcache.MockDCache
		e        *sms.Engine
		ctx      context.Context
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		cache = dcache.NewMockDCache(mockCtrl)
		e = sms.NewEngine(cache)
		ctx = context.Background()
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("streams exactly the learned pattern's blocks through Insert, and bounds an induced eviction to depth 1", func() {
		// Learn pattern 0xA (blocks 1 and 3) for region 0x1000, the way
		// scenario 3 in engine_test.go does, then end the generation.
		e.OnDCacheAccess(ctx, 1, 0, 0x1040)
		e.OnDCacheAccess(ctx, 1, 0, 0x10C0)
		e.OnDCacheInsert(ctx, 1, 0, 0x1080)

		// A trigger access from a different pid against the now-learned
		// region should stream exactly two prefetch inserts: block 1 and
		// block 3, in ascending order, each marked IsPrefetch. The second
		// induces an eviction of an address in an untracked region, which
		// must be handled without emitting any further Insert call - the
		// recursion bound spec.md §9 requires.
		gomock.InOrder(
			cache.EXPECT().
				Insert(vm.PID(2), uint64(0x1040), dcache.Line{Valid: true, IsPrefetch: true}).
				Return(uint64(0), false),
			cache.EXPECT().
				Insert(vm.PID(2), uint64(0x10C0), dcache.Line{Valid: true, IsPrefetch: true}).
				Return(uint64(0x9000), true),
		)

		e.OnDCacheAccess(ctx, 2, 0, 0x1000)
	})
})
