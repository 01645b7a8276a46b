// Package agt implements the Active Generation Table façade: the logical
// union of the Filter Table and the Accumulation Table, and the operation
// that ends a region's generation.
package agt

import (
	"github.com/sarchlab/akita/v4/mem/vm"

	"github.com/sarchlab/smsprefetch/accumulation"
	"github.com/sarchlab/smsprefetch/filter"
	"github.com/sarchlab/smsprefetch/pht"
)

// AGT unifies a Filter Table and an Accumulation Table. A region key is
// present in at most one of the two at any time (invariant 1).
type AGT struct {
	FT *filter.FT
	AT *accumulation.AT
}

// New builds an AGT over the given FT and AT.
func New(ft *filter.FT, at *accumulation.AT) *AGT {
	return &AGT{FT: ft, AT: at}
}

// Check reports whether key is tracked in either table.
func (g *AGT) Check(pid vm.PID, key uint64) bool {
	if _, ok := g.FT.Check(pid, key); ok {
		return true
	}

	_, ok := g.AT.Check(pid, key)

	return ok
}

// Delete ends key's generation: if key is tracked in AT, its pattern is
// written through to p and the AT entry invalidated; otherwise any FT
// entry for key is simply invalidated. Reports whether an AT transfer
// occurred (the accumulation_table_transfer_{succeeded,failed} diagnostic)
// and the PHT's own eviction diagnostic when a transfer did occur.
func (g *AGT) Delete(pid vm.PID, key uint64, p *pht.PHT) (transferred bool, evict pht.EvictOutcome) {
	if _, ok := g.AT.Check(pid, key); ok {
		return g.AT.Transfer(pid, key, p)
	}

	g.FT.Invalidate(pid, key)

	return false, pht.NoEntryEvicted
}
