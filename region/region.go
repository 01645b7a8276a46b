// Package region implements the spatial-region address arithmetic that
// every other SMS table builds on: deriving a region's base address, the
// index of the block an address falls into within its region, and the
// single bit of an AccessPattern that block corresponds to.
package region

// Pattern is a bitmap of the blocks touched within a region during one
// generation. Bit k set means block k has been touched.
type Pattern uint64

// MaxBlocks is the width, in bits, of a Pattern. Regions wider than this
// many blocks cannot be fully represented and trigger the over-limit
// diagnostic instead of silently wrapping.
const MaxBlocks = 64

// Geometry describes how addresses decompose into regions and blocks.
// RegionSize must be a power of two and an integer multiple of LineSize.
type Geometry struct {
	// RegionSize is the size, in bytes, of one spatial region (the PHT
	// line size).
	RegionSize uint64

	// LineSize is the size, in bytes, of one data-cache line (one block).
	LineSize uint64
}

// OffsetMask returns the mask selecting the low, in-region bits of an
// address.
func (g Geometry) OffsetMask() uint64 {
	return g.RegionSize - 1
}

// Blocks returns the number of blocks per region, B in spec terms.
func (g Geometry) Blocks() int {
	return int(g.RegionSize / g.LineSize)
}

// Base returns the region base address of addr: addr with its in-region
// offset bits cleared.
func (g Geometry) Base(addr uint64) uint64 {
	return addr &^ g.OffsetMask()
}

// BlockIndex returns the index, within its region, of the block addr falls
// into.
func (g Geometry) BlockIndex(addr uint64) int {
	return int((addr & g.OffsetMask()) / g.LineSize)
}

// Bit returns the Pattern bit for addr's block, and whether the block
// index was in range. Every address decodes to a block index below
// Blocks(): the offset mask confines BlockIndex to [0, Blocks()) by
// construction. A false ok therefore only arises from a region wider in
// blocks than a Pattern can represent (RegionSize/LineSize > MaxBlocks, a
// structural misconfiguration Config.validate rejects when Builder.Build
// runs) — the caller should count it as the
// access_pattern_block_index_over_spatial_pattern_limit diagnostic event
// rather than act on it.
func (g Geometry) Bit(addr uint64) (bit Pattern, ok bool) {
	idx := g.BlockIndex(addr)
	if idx < 0 || idx >= g.Blocks() || idx >= MaxBlocks {
		return 0, false
	}

	return 1 << uint(idx), true
}

// BlockAddr returns the address of block k of the region based at base.
func (g Geometry) BlockAddr(base uint64, k int) uint64 {
	return base + uint64(k)*g.LineSize
}

// Bits returns the indices of every set bit in p, in ascending order.
func (p Pattern) Bits() []int {
	var out []int

	for k := 0; k < MaxBlocks; k++ {
		if p&(1<<uint(k)) != 0 {
			out = append(out, k)
		}
	}

	return out
}

// PopCount returns the number of blocks touched.
func (p Pattern) PopCount() int {
	count := 0

	for v := p; v != 0; v &= v - 1 {
		count++
	}

	return count
}

// Contains reports whether every bit set in other is also set in p.
func (p Pattern) Contains(other Pattern) bool {
	return other&p == other
}

// AddsNewBit reports whether OR-ing bit into p would set a bit p does not
// already have.
func AddsNewBit(bit, p Pattern) bool {
	return bit|p != p
}
