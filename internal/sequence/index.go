// Package sequence implements the indexing protocol shared by every
// sequence-like container in the module: negative positions count from the
// end, single positions are bounds-checked and ranges are clamped.
package sequence

import (
	"fmt"
	"math"

	"github.com/palemoky/baralho/internal/apperrors"
)

// End stands for an omitted stop bound, as in s[-3:].
const End = math.MaxInt

// Normalize converts a possibly negative position into an absolute one for a
// sequence of length n. Positions outside [0, n) after conversion fail with
// apperrors.ErrOutOfRange.
func Normalize(n, i int) (int, error) {
	pos := i
	if pos < 0 {
		pos += n
	}
	if pos < 0 || pos >= n {
		return 0, fmt.Errorf("position %d for length %d: %w", i, n, apperrors.ErrOutOfRange)
	}
	return pos, nil
}

// Clamp normalizes both bounds of the half-open range [start, stop) and clamps
// them into [0, n]. An inverted range collapses to an empty one at start.
func Clamp(n, start, stop int) (int, int) {
	lo, hi := clampBound(n, start), clampBound(n, stop)
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func clampBound(n, i int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
	}
	return min(i, n)
}
