// Package diag implements the SMS core's fail-silent diagnostic event
// counters (spec.md §7) as a sim.Hook, in the style of the teacher's
// instrumentation/tracing.TagCountTracer: every operational anomaly is
// counted rather than surfaced as an error, and the counts are read out
// after the fact by whatever is observing the engine (a test, or the
// smsreplay CLI's end-of-run report).
package diag

import (
	"sync"

	"github.com/sarchlab/akita/v4/sim"
)

// Event names the diagnostic events spec.md §7 defines.
type Event string

// The diagnostic events named in spec.md §7.
const (
	EventBlockIndexOverLimit      Event = "access_pattern_block_index_over_spatial_pattern_limit"
	EventPHTSameEntryEvicted      Event = "pattern_history_table_same_entry_evicted"
	EventPHTDifferentEntryEvicted Event = "pattern_history_table_different_entry_evicted"
	EventPHTNoEntryEvicted        Event = "pattern_history_table_no_entry_evicted"
	EventATTransferSucceeded      Event = "accumulation_table_transfer_succeeded"
	EventATTransferFailed         Event = "accumulation_table_transfer_failed"
)

// HookPosDiagEvent is the hook position an Engine invokes at every
// diagnostic event. The Item carried in the HookCtx is an Event.
var HookPosDiagEvent = &sim.HookPos{Name: "SMSDiagEvent"}

// Counters is a sim.Hook that counts, by name, every diagnostic event
// raised by an Engine it is registered on.
type Counters struct {
	lock   sync.Mutex
	counts map[Event]uint64
}

// NewCounters creates an empty Counters hook.
func NewCounters() *Counters {
	return &Counters{counts: make(map[Event]uint64)}
}

// Func implements sim.Hook. It counts ctx.Item as an Event if ctx.Pos is
// HookPosDiagEvent, and otherwise ignores ctx.
func (c *Counters) Func(ctx sim.HookCtx) {
	if ctx.Pos != HookPosDiagEvent {
		return
	}

	event, ok := ctx.Item.(Event)
	if !ok {
		return
	}

	c.lock.Lock()
	c.counts[event]++
	c.lock.Unlock()
}

// Count returns the number of times event has been recorded.
func (c *Counters) Count(event Event) uint64 {
	c.lock.Lock()
	defer c.lock.Unlock()

	return c.counts[event]
}

// Snapshot returns a copy of every recorded count.
func (c *Counters) Snapshot() map[Event]uint64 {
	c.lock.Lock()
	defer c.lock.Unlock()

	out := make(map[Event]uint64, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}

	return out
}
