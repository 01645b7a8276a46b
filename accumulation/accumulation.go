// Package accumulation implements the Accumulation Table (AT): regions
// seen at least twice in the current generation, accumulating the
// generation's access pattern until the generation ends.
package accumulation

import (
	"github.com/sarchlab/akita/v4/mem/vm"

	"github.com/sarchlab/smsprefetch/pht"
	"github.com/sarchlab/smsprefetch/region"
	"github.com/sarchlab/smsprefetch/table"
)

// AT is the Accumulation Table. Capacity 64, one set, LRU on capacity
// conflict, by default.
type AT struct {
	t *table.Table
}

// New builds an AT with the given capacity.
func New(capacity int) *AT {
	return &AT{t: table.New(1, capacity)}
}

// Check returns the pattern tracked for key, if any.
func (a *AT) Check(pid vm.PID, key uint64) (region.Pattern, bool) {
	p, ok := a.t.Check(pid, key)
	if !ok {
		return 0, false
	}

	return *p, true
}

// Insert is called only from FT promotion: pattern is the FT's stored
// pattern OR'd with the bit that triggered promotion.
func (a *AT) Insert(pid vm.PID, key uint64, pattern region.Pattern) table.EvictOutcome {
	return a.t.Insert(pid, key, pattern)
}

// Update applies a newly observed bit to key's AT entry, overwriting the
// stored pattern if the bit is new and leaving it untouched (besides
// recency) otherwise.
func (a *AT) Update(pid vm.PID, key uint64, newBit region.Pattern) {
	p, ok := a.t.Check(pid, key)
	if !ok {
		return
	}

	if region.AddsNewBit(newBit, *p) {
		*p |= newBit
	}
}

// Invalidate removes key's entry, if present.
func (a *AT) Invalidate(pid vm.PID, key uint64) {
	a.t.Invalidate(pid, key)
}

// Len returns the number of regions currently tracked.
func (a *AT) Len() int {
	return a.t.Len()
}

// Transfer writes key's AT pattern through to p, keyed by the same region
// base, and invalidates the AT entry. It reports whether a transfer
// occurred (false if key was not tracked in AT, the
// accumulation_table_transfer_failed diagnostic case) along with the
// PHT's own eviction diagnostic.
func (a *AT) Transfer(pid vm.PID, key uint64, p *pht.PHT) (transferred bool, evict pht.EvictOutcome) {
	pattern, ok := a.Check(pid, key)
	if !ok {
		return false, pht.NoEntryEvicted
	}

	evict = p.Insert(pid, key, pattern)
	a.Invalidate(pid, key)

	return true, evict
}
