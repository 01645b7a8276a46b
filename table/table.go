// Package table implements the set-associative, LRU-replaced (PID, key) ->
// AccessPattern table shared by the Filter Table, Accumulation Table, and
// Pattern History Table. It does not know which of the three tables it is
// backing; associativity, capacity, and indexing are all supplied by the
// caller at construction time.
package table

import (
	"github.com/sarchlab/akita/v4/mem/vm"

	"github.com/sarchlab/smsprefetch/region"
)

// EvictOutcome categorizes what, if anything, an Insert displaced. It is a
// diagnostic-only signal; FT/AT/PHT callers never act on the displaced
// pattern itself.
type EvictOutcome int

const (
	// NoEviction means the table had room; nothing was displaced.
	NoEviction EvictOutcome = iota
	// EvictedSame means the displaced entry held the same pattern being
	// inserted.
	EvictedSame
	// EvictedDifferent means the displaced entry held a different pattern.
	EvictedDifferent
)

// entry is one way of one set.
type entry struct {
	valid   bool
	pid     vm.PID
	key     uint64
	pattern region.Pattern
}

// Table is a fixed-capacity, set-associative, LRU-replaced store of
// AccessPatterns keyed by (PID, key). Sets are indexed by IndexFunc; a
// single-set table (associativity == capacity) is used for FT and AT, and
// a multi-set table for the PHT.
type Table struct {
	numSets int
	numWays int

	// IndexFunc derives the set index for a key. Defaults to key % numSets
	// when nil.
	IndexFunc func(key uint64) int

	sets [][]entry
	// lru[s] lists way indices of set s from least to most recently used.
	lru [][]int
}

// New creates a Table with the given number of sets and ways per set.
// Total capacity is numSets*numWays.
func New(numSets, numWays int) *Table {
	if numSets <= 0 || numWays <= 0 {
		panic("table: numSets and numWays must be positive")
	}

	t := &Table{
		numSets: numSets,
		numWays: numWays,
		sets:    make([][]entry, numSets),
		lru:     make([][]int, numSets),
	}

	for s := 0; s < numSets; s++ {
		t.sets[s] = make([]entry, numWays)

		order := make([]int, numWays)
		for w := range order {
			order[w] = w
		}

		t.lru[s] = order
	}

	return t
}

func (t *Table) setIndex(key uint64) int {
	if t.IndexFunc != nil {
		return t.IndexFunc(key)
	}

	return int(key % uint64(t.numSets))
}

func (t *Table) findWay(setIdx int, pid vm.PID, key uint64) (int, bool) {
	for w, e := range t.sets[setIdx] {
		if e.valid && e.pid == pid && e.key == key {
			return w, true
		}
	}

	return 0, false
}

// touch moves way w of set s to the most-recently-used end of the LRU
// order.
func (t *Table) touch(s, w int) {
	order := t.lru[s]

	for i, ww := range order {
		if ww == w {
			order = append(order[:i], order[i+1:]...)
			break
		}
	}

	t.lru[s] = append(order, w)
}

// Check returns the pattern stored for (pid, key), if present, and updates
// recency. The returned pointer aliases the table's internal storage; the
// caller may mutate it in place to update the pattern without a separate
// Insert.
func (t *Table) Check(pid vm.PID, key uint64) (*region.Pattern, bool) {
	s := t.setIndex(key)

	w, ok := t.findWay(s, pid, key)
	if !ok {
		return nil, false
	}

	t.touch(s, w)

	return &t.sets[s][w].pattern, true
}

// Insert stores pattern for (pid, key), evicting the LRU way of the target
// set if it is full. If (pid, key) is already present, its pattern and
// recency are simply updated.
func (t *Table) Insert(pid vm.PID, key uint64, pattern region.Pattern) EvictOutcome {
	s := t.setIndex(key)

	if w, ok := t.findWay(s, pid, key); ok {
		t.sets[s][w].pattern = pattern
		t.touch(s, w)

		return NoEviction
	}

	for w, e := range t.sets[s] {
		if !e.valid {
			t.sets[s][w] = entry{valid: true, pid: pid, key: key, pattern: pattern}
			t.touch(s, w)

			return NoEviction
		}
	}

	victim := t.lru[s][0]
	old := t.sets[s][victim]

	t.sets[s][victim] = entry{valid: true, pid: pid, key: key, pattern: pattern}
	t.touch(s, victim)

	if old.pattern == pattern {
		return EvictedSame
	}

	return EvictedDifferent
}

// Invalidate marks the entry for (pid, key) invalid. It is a no-op if the
// key is absent.
func (t *Table) Invalidate(pid vm.PID, key uint64) {
	s := t.setIndex(key)

	w, ok := t.findWay(s, pid, key)
	if !ok {
		return
	}

	t.sets[s][w] = entry{}
}

// Len returns the number of valid entries across every set.
func (t *Table) Len() int {
	n := 0

	for _, set := range t.sets {
		for _, e := range set {
			if e.valid {
				n++
			}
		}
	}

	return n
}

// MatchingWays returns the pattern of every valid entry across the target
// set whose key equals the given key, regardless of pid. This backs the
// PHT's cross-way OR lookup (spec §4.5); with region-base keying at most
// one way ever matches, but the merge is defined generally so a
// PC-indexed variant can reuse it unchanged.
func (t *Table) MatchingWays(key uint64) []region.Pattern {
	s := t.setIndex(key)

	var out []region.Pattern

	for _, e := range t.sets[s] {
		if e.valid && e.key == key {
			out = append(out, e.pattern)
		}
	}

	return out
}
