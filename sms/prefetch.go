package sms

import (
	"github.com/sarchlab/akita/v4/mem/vm"

	"github.com/sarchlab/smsprefetch/dcache"
	"github.com/sarchlab/smsprefetch/region"
)

// prefetch decomposes merged into block addresses and injects a prefetch
// insert for each, in ascending block order (spec.md §4.7). There is no
// queuing or credit logic here: a single trigger access may emit up to B
// prefetch inserts back-to-back, each synchronously, on the caller's
// goroutine.
func (e *Engine) prefetch(pid vm.PID, regionBase uint64, merged region.Pattern) {
	for _, k := range merged.Bits() {
		addr := e.geo.BlockAddr(regionBase, k)

		evictedAddr, evicted := e.cache.Insert(pid, addr, dcache.Line{
			Valid:      true,
			IsPrefetch: true,
		})
		if !evicted {
			continue
		}

		// A prefetch's own eviction may end another region's generation.
		// That transfer never emits further prefetches: recursion bottoms
		// out at handleEviction, bounding depth to 1 (spec.md §9).
		e.handleEviction(pid, evictedAddr)
	}
}
