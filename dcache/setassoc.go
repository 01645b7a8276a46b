package dcache

import "github.com/sarchlab/akita/v4/mem/vm"

// block is one way of one set, adapted from the teacher's
// mem/cache/internal/tagging.Block: a tag plus the per-line metadata this
// package tracks.
type block struct {
	valid bool
	pid   vm.PID
	tag   uint64
	line  Line
}

// set is a list of blocks where a given line may be stored, plus its LRU
// order, adapted from tagging.Set/Set.LRUQueue.
type set struct {
	blocks   []block
	lruQueue []int
}

// SetAssociative is a reference, in-memory, LRU-replaced set-associative
// DCache implementation, adapted from the teacher's
// mem/cache/internal/tagging tag array and its LRUVictimFinder.
type SetAssociative struct {
	lineSize uint64
	numSets  int
	numWays  int
	sets     []set
}

// NewSetAssociative builds a SetAssociative cache of the given total byte
// size, line size, and way associativity.
func NewSetAssociative(byteSize, lineSize uint64, numWays int) *SetAssociative {
	if lineSize == 0 || numWays <= 0 {
		panic("dcache: lineSize and numWays must be positive")
	}

	setSize := lineSize * uint64(numWays)
	if byteSize%setSize != 0 {
		panic("dcache: cache must divide into an integer number of sets")
	}

	numSets := int(byteSize / setSize)

	c := &SetAssociative{
		lineSize: lineSize,
		numSets:  numSets,
		numWays:  numWays,
		sets:     make([]set, numSets),
	}

	for i := range c.sets {
		c.sets[i].blocks = make([]block, numWays)

		order := make([]int, numWays)
		for w := range order {
			order[w] = w
		}

		c.sets[i].lruQueue = order
	}

	return c
}

// LineSize returns the cache's line size.
func (c *SetAssociative) LineSize() uint64 {
	return c.lineSize
}

// OffsetMask returns the mask selecting a line's in-block offset bits.
func (c *SetAssociative) OffsetMask() uint64 {
	return c.lineSize - 1
}

func (c *SetAssociative) getSet(addr uint64) (*set, uint64) {
	lineAddr := addr &^ c.OffsetMask()
	setIdx := (lineAddr / c.lineSize) % uint64(c.numSets)

	return &c.sets[setIdx], lineAddr
}

func (c *SetAssociative) findWay(s *set, pid vm.PID, lineAddr uint64) (int, bool) {
	for w, b := range s.blocks {
		if b.valid && b.pid == pid && b.tag == lineAddr {
			return w, true
		}
	}

	return 0, false
}

func (c *SetAssociative) touch(s *set, w int) {
	order := s.lruQueue

	for i, ww := range order {
		if ww == w {
			order = append(order[:i], order[i+1:]...)
			break
		}
	}

	s.lruQueue = append(order, w)
}

// Access looks up addr, returning the resident line's metadata on a hit.
func (c *SetAssociative) Access(pid vm.PID, addr uint64) (Line, bool) {
	s, lineAddr := c.getSet(addr)

	w, ok := c.findWay(s, pid, lineAddr)
	if !ok {
		return Line{}, false
	}

	c.touch(s, w)

	return s.blocks[w].line, true
}

// Insert installs line at addr, evicting the LRU way of the target set if
// full.
func (c *SetAssociative) Insert(pid vm.PID, addr uint64, line Line) (evicted uint64, evictedOK bool) {
	s, lineAddr := c.getSet(addr)

	if w, ok := c.findWay(s, pid, lineAddr); ok {
		s.blocks[w].line = line
		c.touch(s, w)

		return 0, false
	}

	for w, b := range s.blocks {
		if !b.valid {
			s.blocks[w] = block{valid: true, pid: pid, tag: lineAddr, line: line}
			c.touch(s, w)

			return 0, false
		}
	}

	victim := s.lruQueue[0]
	old := s.blocks[victim]

	s.blocks[victim] = block{valid: true, pid: pid, tag: lineAddr, line: line}
	c.touch(s, victim)

	return old.tag, true
}
