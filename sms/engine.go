package sms

import (
	"context"

	"github.com/sarchlab/akita/v4/mem/vm"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/smsprefetch/agt"
	"github.com/sarchlab/smsprefetch/dcache"
	"github.com/sarchlab/smsprefetch/diag"
	"github.com/sarchlab/smsprefetch/pht"
	"github.com/sarchlab/smsprefetch/region"
)

// Engine is the SMS state object of spec.md §4.8: the single owned object
// passed by exclusive reference to both event handlers. It embeds
// sim.HookableBase purely so diagnostics (and any other observer) can
// watch it; Engine itself has no clock and no ports, per spec.md §5.
type Engine struct {
	sim.HookableBase

	cfg   Config
	geo   region.Geometry
	cache dcache.DCache
	agt   *agt.AGT
	pht   *pht.PHT
}

// NewEngine is a convenience equivalent to
// MakeBuilder().Build(cache) for callers who only want the defaults.
func NewEngine(cache dcache.DCache) *Engine {
	return MakeBuilder().Build(cache)
}

func (e *Engine) emit(event diag.Event) {
	e.InvokeHook(sim.HookCtx{
		Domain: e,
		Pos:    diag.HookPosDiagEvent,
		Item:   event,
	})
}

// Name satisfies the minimal identity a Hookable domain is expected to
// offer in the teacher's hooking idiom (hooking.HookCtx.Domain); an SMS
// Engine has no component name of its own, so it reports a fixed one.
func (e *Engine) Name() string {
	return "SMS"
}

// OnDCacheAccess is the entry point invoked on every L1D access
// (spec.md §4.8, §6.1).
func (e *Engine) OnDCacheAccess(_ context.Context, pid vm.PID, pc, lineAddr uint64) {
	_ = pc // unused by the region-base indexing scheme; see Config.Index.

	key := e.geo.Base(lineAddr)

	bit, ok := e.geo.Bit(lineAddr)
	if !ok {
		e.emit(diag.EventBlockIndexOverLimit)
		return
	}

	if e.agt.Check(pid, key) {
		e.accessPresent(pid, key, bit)
		return
	}

	e.triggerAccess(pid, key, bit)
}

// accessPresent routes an access to a region already tracked in the AGT:
// to AT-update logic if it is in AT, or to FT-update (which may promote
// to AT) if it is in FT.
func (e *Engine) accessPresent(pid vm.PID, key uint64, bit region.Pattern) {
	if _, ok := e.agt.AT.Check(pid, key); ok {
		e.agt.AT.Update(pid, key, bit)
		return
	}

	promote, merged := e.agt.FT.Update(pid, key, bit)
	if promote {
		e.agt.AT.Insert(pid, key, merged)
	}
}

// triggerAccess handles a trigger access: a region not currently tracked
// in the AGT. It looks the region up in the PHT, streams any hit, and
// begins tracking the region in FT.
func (e *Engine) triggerAccess(pid vm.PID, key uint64, bit region.Pattern) {
	merged := e.pht.Lookup(pid, key)
	if merged != 0 {
		e.prefetch(pid, key, merged)
	}

	e.agt.FT.Insert(pid, key, bit)
}

// OnDCacheInsert is the entry point invoked after every L1D insert
// (spec.md §4.8, §6.1). replLineAddr == 0 denotes no eviction.
func (e *Engine) OnDCacheInsert(_ context.Context, pid vm.PID, _, replLineAddr uint64) {
	if replLineAddr == 0 {
		return
	}

	e.handleEviction(pid, replLineAddr)
}

// handleEviction ends the generation of the region that just lost a line
// from the data cache: the region's AT pattern, if any, is written
// through to the PHT, and the region's AGT entries are invalidated. It is
// shared by genuine demand-miss evictions (via OnDCacheInsert) and by the
// prefetch emitter's own injected evictions, and never itself emits
// prefetches — this is what bounds the emitter's recursion to depth 1
// (spec.md §9).
func (e *Engine) handleEviction(pid vm.PID, evictedAddr uint64) {
	key := e.geo.Base(evictedAddr)

	if !e.agt.Check(pid, key) {
		return
	}

	transferred, evict := e.agt.Delete(pid, key, e.pht)
	if transferred {
		e.emit(diag.EventATTransferSucceeded)

		switch evict {
		case pht.SameEntryEvicted:
			e.emit(diag.EventPHTSameEntryEvicted)
		case pht.DifferentEntryEvicted:
			e.emit(diag.EventPHTDifferentEntryEvicted)
		case pht.NoEntryEvicted:
			e.emit(diag.EventPHTNoEntryEvicted)
		}

		return
	}

	e.emit(diag.EventATTransferFailed)
}
