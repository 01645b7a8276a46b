package sms

import (
	"github.com/sarchlab/akita/v4/mem/vm"

	"github.com/sarchlab/smsprefetch/region"
)

// FilterTableCheck reports the pattern tracked in the Filter Table for
// addr's region, if any. Exposed for introspection (tests, stats
// reporting); the event handlers never need it.
func (e *Engine) FilterTableCheck(pid vm.PID, addr uint64) (region.Pattern, bool) {
	return e.agt.FT.Check(pid, e.geo.Base(addr))
}

// AccumulationTableCheck reports the pattern tracked in the Accumulation
// Table for addr's region, if any.
func (e *Engine) AccumulationTableCheck(pid vm.PID, addr uint64) (region.Pattern, bool) {
	return e.agt.AT.Check(pid, e.geo.Base(addr))
}

// PatternHistoryLookup reports the merged pattern the PHT holds for
// addr's region, 0 if none.
func (e *Engine) PatternHistoryLookup(pid vm.PID, addr uint64) region.Pattern {
	return e.pht.Lookup(pid, e.geo.Base(addr))
}

// FilterTableLen returns the number of regions currently tracked in FT.
func (e *Engine) FilterTableLen() int {
	return e.agt.FT.Len()
}

// AccumulationTableLen returns the number of regions currently tracked in
// AT.
func (e *Engine) AccumulationTableLen() int {
	return e.agt.AT.Len()
}

// PatternHistoryLen returns the number of regions currently tracked in
// the PHT.
func (e *Engine) PatternHistoryLen() int {
	return e.pht.Len()
}
