// Package sms ties the Filter Table, Accumulation Table, Pattern History
// Table, AGT façade, and prefetch emitter together into the two event
// handlers a host simulator drives: OnDCacheAccess and OnDCacheInsert
// (spec.md §4.8).
package sms

import "github.com/sarchlab/smsprefetch/region"

// IndexScheme selects how table keys are derived (spec.md §9).
type IndexScheme int

const (
	// IndexSchemeRegionBase keys every table by the region base address
	// alone. This is the only scheme this module fully wires up: it is
	// what spec.md's invariants and round-trip property are written
	// against, and it lets generation-end be computed purely from the
	// evicted address with no side channel back to a triggering PC.
	IndexSchemeRegionBase IndexScheme = iota

	// IndexSchemePCOffset would key by the triggering PC combined with
	// the region's offset bits, as the original SMS paper advocates for
	// higher accuracy at the cost of needing the PC available at
	// eviction time. spec.md §9 documents this as an open alternative;
	// it is not implemented here — selecting it panics at Build time so
	// the gap is visible rather than silently falling back to scheme (a).
	IndexSchemePCOffset
)

// Config holds the SMS tunables of spec.md §6.3. DefaultConfig returns a
// Config holding the spec's defaults; zero-value fields of a Config are not
// filled in, and Build panics on a zero size or capacity.
type Config struct {
	// RegionSize is the PHT line size / spatial region size, in bytes.
	RegionSize uint64
	// DCacheLineSize is the data cache's own block size, in bytes.
	DCacheLineSize uint64

	// FilterTableSize is the FT's entry capacity.
	FilterTableSize int
	// AccumulationTableSize is the AT's entry capacity.
	AccumulationTableSize int

	// PHTEntries is the PHT's total entry capacity.
	PHTEntries int
	// PHTAssociativity is the PHT's way count.
	PHTAssociativity int

	// Index selects the table-keying scheme (spec.md §9).
	Index IndexScheme
}

// DefaultConfig returns the spec.md §6.3 default configuration:
// region_size=2048, dcache_line_size=64, filter_table_size=32,
// accumulation_table_size=64, pht_entries=16384, pht_assoc=4.
func DefaultConfig() Config {
	return Config{
		RegionSize:            2048,
		DCacheLineSize:        64,
		FilterTableSize:       32,
		AccumulationTableSize: 64,
		PHTEntries:            16384,
		PHTAssociativity:      4,
		Index:                 IndexSchemeRegionBase,
	}
}

func (c Config) geometry() region.Geometry {
	return region.Geometry{RegionSize: c.RegionSize, LineSize: c.DCacheLineSize}
}

func (c Config) phtSets() int {
	return c.PHTEntries / c.PHTAssociativity
}

func (c Config) validate() {
	if c.RegionSize == 0 || c.DCacheLineSize == 0 {
		panic("sms: RegionSize and DCacheLineSize must be positive")
	}

	if c.RegionSize%c.DCacheLineSize != 0 {
		panic("sms: RegionSize must be an integer multiple of DCacheLineSize")
	}

	if c.geometry().Blocks() > region.MaxBlocks {
		panic("sms: region_size/dcache_line_size exceeds the pattern bitmap width")
	}

	if c.FilterTableSize <= 0 || c.AccumulationTableSize <= 0 {
		panic("sms: FilterTableSize and AccumulationTableSize must be positive")
	}

	if c.PHTAssociativity <= 0 || c.PHTEntries%c.PHTAssociativity != 0 {
		panic("sms: PHTEntries must be an integer multiple of PHTAssociativity")
	}

	if c.Index == IndexSchemePCOffset {
		panic("sms: IndexSchemePCOffset is not implemented; see SPEC_FULL.md §9")
	}
}
