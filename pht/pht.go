// Package pht implements the Pattern History Table: the long-term,
// set-associative store of learned per-region access patterns that
// survives across generations.
package pht

import (
	"github.com/sarchlab/akita/v4/mem/vm"

	"github.com/sarchlab/smsprefetch/region"
	"github.com/sarchlab/smsprefetch/table"
)

// EvictOutcome mirrors table.EvictOutcome, renamed to the PHT's own
// diagnostic vocabulary (spec §7): pattern_history_table_{same,different,
// no}_entry_evicted.
type EvictOutcome int

const (
	// NoEntryEvicted means the set had room.
	NoEntryEvicted EvictOutcome = iota
	// SameEntryEvicted means the evicted entry held the same pattern.
	SameEntryEvicted
	// DifferentEntryEvicted means the evicted entry held a different
	// pattern.
	DifferentEntryEvicted
)

// PHT is the Pattern History Table: 16384 entries, 4-way set-associative,
// 4096 sets by default, LRU replacement, keyed by region base.
type PHT struct {
	geo region.Geometry
	t   *table.Table
}

// New builds a PHT with the given number of sets and ways. numSets*numWays
// is the PHT's total entry capacity (16384 by default: 4096 sets * 4 ways).
func New(geo region.Geometry, numSets, numWays int) *PHT {
	p := &PHT{
		geo: geo,
		t:   table.New(numSets, numWays),
	}

	p.t.IndexFunc = func(key uint64) int {
		return int((key / geo.RegionSize) % uint64(numSets))
	}

	return p
}

// Check reports whether key is present, without merging across ways or
// affecting recency beyond the underlying table's own bookkeeping.
func (p *PHT) Check(pid vm.PID, key uint64) bool {
	_, ok := p.t.Check(pid, key)
	return ok
}

// Insert writes pattern at key, evicting the LRU way of the target set if
// full, and reports the diagnostic eviction category.
func (p *PHT) Insert(pid vm.PID, key uint64, pattern region.Pattern) EvictOutcome {
	switch p.t.Insert(pid, key, pattern) {
	case table.EvictedSame:
		return SameEntryEvicted
	case table.EvictedDifferent:
		return DifferentEntryEvicted
	default:
		return NoEntryEvicted
	}
}

// Lookup returns the OR of the patterns of every valid way in key's set
// whose key matches, regardless of which pid wrote it: unlike
// Check/Insert, Lookup does not scope the merge to pid (DESIGN.md's
// "pht.Lookup's cross-way OR" note). With region-base keying (the scheme
// this module wires up) at most one way ever matches; the OR is a
// defensive generalization that keeps a PC-indexed variant, where several
// ways in one set can share a triggering PC's set index but differ in
// region base, mergeable without further changes (spec §4.5, §9).
func (p *PHT) Lookup(pid vm.PID, key uint64) region.Pattern {
	var merged region.Pattern

	for _, pat := range p.t.MatchingWays(key) {
		merged |= pat
	}

	_ = pid // unused: Lookup merges across pids by design, see above.

	return merged
}

// Len returns the number of valid entries in the table.
func (p *PHT) Len() int {
	return p.t.Len()
}
