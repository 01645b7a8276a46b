package main

import (
	"context"
	"io"

	"github.com/sarchlab/smsprefetch/dcache"
	"github.com/sarchlab/smsprefetch/diag"
	"github.com/sarchlab/smsprefetch/sms"
)

// run drives every access in trace through a demand cache access, an
// SMS access notification, and, on a demand miss, a demand insert and the
// matching SMS insert notification. OnDCacheInsert fires here only for
// demand inserts; evictions caused by the prefetch inserts sms.Engine
// issues through the same cache are handled inside the engine itself.
func run(cfg sms.Config, dcacheBytes uint64, dcacheWays int, accesses []access) report {
	base := dcache.NewSetAssociative(dcacheBytes, cfg.DCacheLineSize, dcacheWays)
	cache := newCountingCache(base)

	counters := diag.NewCounters()

	engine := sms.MakeBuilder().
		WithRegionSize(cfg.RegionSize).
		WithDCacheLineSize(cfg.DCacheLineSize).
		WithFilterTableSize(cfg.FilterTableSize).
		WithAccumulationTableSize(cfg.AccumulationTableSize).
		WithPHTEntries(cfg.PHTEntries).
		WithPHTAssociativity(cfg.PHTAssociativity).
		WithIndexScheme(cfg.Index).
		Build(cache)

	engine.AcceptHook(counters)

	ctx := context.Background()

	for _, a := range accesses {
		_, hit := cache.Access(a.pid, a.addr)

		engine.OnDCacheAccess(ctx, a.pid, a.pc, a.addr)

		if hit {
			continue
		}

		evictedAddr, evicted := cache.Insert(a.pid, a.addr, dcache.Line{Valid: true})

		insertAddr := evictedAddr
		if !evicted {
			insertAddr = 0
		}

		engine.OnDCacheInsert(ctx, a.pid, a.addr, insertAddr)
	}

	diagCounts := make(map[string]uint64, len(counters.Snapshot()))
	for event, n := range counters.Snapshot() {
		diagCounts[string(event)] = n
	}

	return report{
		RunID:                newRunID(),
		Accesses:             cache.demandAccesses,
		DemandHits:           cache.demandHits,
		DemandMisses:         cache.demandAccesses - cache.demandHits,
		PrefetchesIssued:     cache.prefetchInserts,
		PrefetchHits:         cache.prefetchHits,
		FilterTableLen:       engine.FilterTableLen(),
		AccumulationTableLen: engine.AccumulationTableLen(),
		PatternHistoryLen:    engine.PatternHistoryLen(),
		DiagCounts:           diagCounts,
	}
}

// runFromTrace reads a trace from r and replays it.
func runFromTrace(r io.Reader, cfg sms.Config, dcacheBytes uint64, dcacheWays int) (report, error) {
	accesses, err := readTrace(r)
	if err != nil {
		return report{}, err
	}

	return run(cfg, dcacheBytes, dcacheWays, accesses), nil
}
