package counter

import (
	"fmt"

	"github.com/palemoky/baralho/internal/apperrors"
)

// strictQuery fails for keys that were never recorded.
type strictQuery[K comparable] struct {
	tally *Tally[K]
}

// Count returns the count for item or apperrors.ErrKeyNotFound.
func (q strictQuery[K]) Count(item K) (int, error) {
	n, ok := q.tally.lookup(item)
	if !ok {
		return 0, fmt.Errorf("count %v: %w", item, apperrors.ErrKeyNotFound)
	}
	return n, nil
}

// tolerantQuery reports zero for keys that were never recorded.
type tolerantQuery[K comparable] struct {
	tally *Tally[K]
}

// Count returns the count for item, zero when unseen. It never fails.
func (q tolerantQuery[K]) Count(item K) (int, error) {
	n, _ := q.tally.lookup(item)
	return n, nil
}

// plainInsert records an occurrence.
type plainInsert[K comparable] struct {
	tally *Tally[K]
}

// Include records one occurrence of item.
func (p plainInsert[K]) Include(item K) {
	p.tally.record(item)
}

// totalizingInsert records an occurrence and counts every insertion.
type totalizingInsert[K comparable] struct {
	tally *Tally[K]
	total int
}

// Include records one occurrence of item and increments the total.
func (p *totalizingInsert[K]) Include(item K) {
	p.tally.record(item)
	p.total++
}

// Total returns the number of Include calls since construction.
func (p *totalizingInsert[K]) Total() int {
	return p.total
}
