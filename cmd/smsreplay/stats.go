package main

import (
	"github.com/sarchlab/akita/v4/mem/vm"

	"github.com/sarchlab/smsprefetch/dcache"
)

// countingCache wraps a dcache.DCache and tallies the counters a coverage
// and accuracy report needs: how many lines were fetched on demand versus
// prefetched, and how many prefetched lines were later actually touched
// before being evicted.
type countingCache struct {
	dcache.DCache

	demandInserts   uint64
	prefetchInserts uint64
	prefetchHits    uint64
	demandAccesses  uint64
	demandHits      uint64
}

func newCountingCache(inner dcache.DCache) *countingCache {
	return &countingCache{DCache: inner}
}

// Access records a demand hit/miss and, on a hit against a still-marked
// prefetch line, credits the prefetch with a use before the flag is
// cleared. A prefetched line only pays off the first time it is
// re-touched; the flag is not restored on eviction, so a line can never
// be double-counted.
func (c *countingCache) Access(pid vm.PID, addr uint64) (dcache.Line, bool) {
	c.demandAccesses++

	line, ok := c.DCache.Access(pid, addr)
	if !ok {
		return line, ok
	}

	c.demandHits++

	if line.IsPrefetch {
		c.prefetchHits++
		line.IsPrefetch = false
		c.DCache.Insert(pid, addr, line)
	}

	return line, ok
}

func (c *countingCache) Insert(pid vm.PID, addr uint64, line dcache.Line) (uint64, bool) {
	if line.IsPrefetch {
		c.prefetchInserts++
	} else {
		c.demandInserts++
	}

	return c.DCache.Insert(pid, addr, line)
}

// report is the end-of-run summary printed to stdout and, optionally,
// logged to SQLite.
type report struct {
	RunID string

	Accesses         uint64
	DemandHits       uint64
	DemandMisses     uint64
	PrefetchesIssued uint64
	PrefetchHits     uint64

	FilterTableLen       int
	AccumulationTableLen int
	PatternHistoryLen    int

	DiagCounts map[string]uint64
}

// coverage is the fraction of demand misses that a prefetch had already
// covered: prefetch hits over (demand misses + prefetch hits), the
// standard would-have-missed-otherwise definition.
func (r report) coverage() float64 {
	denom := r.DemandMisses + r.PrefetchHits
	if denom == 0 {
		return 0
	}

	return float64(r.PrefetchHits) / float64(denom)
}

// accuracy is the fraction of issued prefetches that were used before
// eviction.
func (r report) accuracy() float64 {
	if r.PrefetchesIssued == 0 {
		return 0
	}

	return float64(r.PrefetchHits) / float64(r.PrefetchesIssued)
}
