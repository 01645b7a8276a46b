package sms

import (
	"github.com/sarchlab/smsprefetch/accumulation"
	"github.com/sarchlab/smsprefetch/agt"
	"github.com/sarchlab/smsprefetch/dcache"
	"github.com/sarchlab/smsprefetch/filter"
	"github.com/sarchlab/smsprefetch/pht"
)

// Builder builds Engines, in the teacher's fluent With*-then-Build idiom
// (mem/cache/builder.go's Builder).
type Builder struct {
	cfg Config
}

// MakeBuilder creates a new Builder seeded with DefaultConfig.
func MakeBuilder() Builder {
	return Builder{cfg: DefaultConfig()}
}

// WithRegionSize sets the spatial region size, in bytes.
func (b Builder) WithRegionSize(size uint64) Builder {
	b.cfg.RegionSize = size
	return b
}

// WithDCacheLineSize sets the data cache's line size, in bytes.
func (b Builder) WithDCacheLineSize(size uint64) Builder {
	b.cfg.DCacheLineSize = size
	return b
}

// WithFilterTableSize sets the FT's entry capacity.
func (b Builder) WithFilterTableSize(size int) Builder {
	b.cfg.FilterTableSize = size
	return b
}

// WithAccumulationTableSize sets the AT's entry capacity.
func (b Builder) WithAccumulationTableSize(size int) Builder {
	b.cfg.AccumulationTableSize = size
	return b
}

// WithPHTEntries sets the PHT's total entry capacity.
func (b Builder) WithPHTEntries(entries int) Builder {
	b.cfg.PHTEntries = entries
	return b
}

// WithPHTAssociativity sets the PHT's way count.
func (b Builder) WithPHTAssociativity(ways int) Builder {
	b.cfg.PHTAssociativity = ways
	return b
}

// WithIndexScheme sets the table-keying scheme.
func (b Builder) WithIndexScheme(scheme IndexScheme) Builder {
	b.cfg.Index = scheme
	return b
}

// Build constructs an Engine driving cache. It panics if the accumulated
// configuration is internally inconsistent (e.g. RegionSize not a
// multiple of DCacheLineSize), mirroring the teacher's
// mustBeFullSets-style panic on a misconfigured builder — an init-time
// program-logic error, not one of the operational anomalies spec.md §7
// requires to fail silently.
func (b Builder) Build(cache dcache.DCache) *Engine {
	b.cfg.validate()

	geo := b.cfg.geometry()

	e := &Engine{
		cfg:   b.cfg,
		geo:   geo,
		cache: cache,
		agt: agt.New(
			filter.New(b.cfg.FilterTableSize),
			accumulation.New(b.cfg.AccumulationTableSize),
		),
		pht: pht.New(geo, b.cfg.phtSets(), b.cfg.PHTAssociativity),
	}

	return e
}
