// Package counter provides occurrence counters built from one shared tally and
// two independent behaviours: a tolerant query that reports zero for unseen
// keys, and a totalizing insert that keeps the number of insertions.
package counter

import (
	"maps"
	"slices"
)

// Tally maps each key to the number of times it was recorded.
type Tally[K comparable] struct {
	counts map[K]int
}

func newTally[K comparable]() *Tally[K] {
	return &Tally[K]{counts: make(map[K]int)}
}

func (t *Tally[K]) record(item K) {
	t.counts[item]++
}

func (t *Tally[K]) lookup(item K) (int, bool) {
	n, ok := t.counts[item]
	return n, ok
}

// Len returns the number of distinct keys recorded.
func (t *Tally[K]) Len() int {
	return len(t.counts)
}

// Snapshot returns a copy of the per-key counts.
func (t *Tally[K]) Snapshot() map[K]int {
	return maps.Clone(t.counts)
}

// Keys returns the recorded keys ordered by cmp.
func (t *Tally[K]) Keys(cmp func(a, b K) int) []K {
	return slices.SortedFunc(maps.Keys(t.counts), cmp)
}
