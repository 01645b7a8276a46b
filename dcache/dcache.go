// Package dcache defines the data-cache interface SMS is driven against
// and prefetches into — the "underlying set-associative cache container"
// spec.md §6.2 leaves as an external, black-box ADT — and supplies one
// concrete, LRU-replaced implementation adapted from the teacher's cache
// tag array so the core is independently testable.
package dcache

import "github.com/sarchlab/akita/v4/mem/vm"

// Line is the metadata a DCache keeps per resident line. IsPrefetch marks
// a line SMS injected rather than one fetched on a genuine demand access,
// so a host simulator can account prefetches separately.
type Line struct {
	Valid      bool
	IsPrefetch bool
}

// DCache is the black-box L1 data cache SMS observes and injects
// prefetches into. LineSize and OffsetMask describe the cache's own
// geometry (spec.md §3); Access and Insert are the two operations the
// event handlers (spec.md §4.8) and the prefetch emitter (spec.md §4.7)
// need.
type DCache interface {
	// LineSize returns the size, in bytes, of one cache line.
	LineSize() uint64

	// OffsetMask returns the mask selecting a line's in-block offset bits.
	OffsetMask() uint64

	// Access looks up addr, returning the resident Line and true on a hit.
	Access(pid vm.PID, addr uint64) (Line, bool)

	// Insert installs line at addr, evicting an LRU line if its set is
	// full. evicted is the evicted line's address and evictedOK reports
	// whether an eviction occurred.
	Insert(pid vm.PID, addr uint64, line Line) (evicted uint64, evictedOK bool)
}
