// Package filter implements the Filter Table (FT): the first stop for a
// region seen exactly once in the current generation.
package filter

import (
	"github.com/sarchlab/akita/v4/mem/vm"

	"github.com/sarchlab/smsprefetch/region"
	"github.com/sarchlab/smsprefetch/table"
)

// FT is the Filter Table. Capacity 32, one set (directly addressed), LRU
// on capacity conflict, by default.
type FT struct {
	t *table.Table
}

// New builds an FT with the given capacity.
func New(capacity int) *FT {
	return &FT{t: table.New(1, capacity)}
}

// Check returns the pattern tracked for key, if any.
func (f *FT) Check(pid vm.PID, key uint64) (region.Pattern, bool) {
	p, ok := f.t.Check(pid, key)
	if !ok {
		return 0, false
	}

	return *p, true
}

// Insert unconditionally inserts pattern for key. The caller must have
// already verified key's absence from both FT and AT.
func (f *FT) Insert(pid vm.PID, key uint64, pattern region.Pattern) table.EvictOutcome {
	return f.t.Insert(pid, key, pattern)
}

// Invalidate removes key's entry, if present.
func (f *FT) Invalidate(pid vm.PID, key uint64) {
	f.t.Invalidate(pid, key)
}

// Update applies a newly observed bit to key's FT entry. If the bit is
// already set (a repeat access to the same block), the entry is left
// untouched and needsPromotion is false. Otherwise the region has now been
// touched at two distinct blocks — needsPromotion is true, merged is the
// OR of the stored and new bit, and the FT entry is invalidated so the
// caller can hand merged to the Accumulation Table.
func (f *FT) Update(pid vm.PID, key uint64, newBit region.Pattern) (needsPromotion bool, merged region.Pattern) {
	current, ok := f.Check(pid, key)
	if !ok {
		return false, 0
	}

	if !region.AddsNewBit(newBit, current) {
		return false, current
	}

	merged = newBit | current
	f.Invalidate(pid, key)

	return true, merged
}

// Len returns the number of regions currently tracked.
func (f *FT) Len() int {
	return f.t.Len()
}
