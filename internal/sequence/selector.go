package sequence

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/palemoky/baralho/internal/apperrors"
)

// Selector is a parsed index or range expression such as "0", "-1", ":3"
// or "-3:". Steps are not supported.
type Selector struct {
	Start  int
	Stop   int
	Single bool
}

// Point selects the single element at i.
func Point(i int) Selector {
	return Selector{Start: i, Single: true}
}

// Span selects the half-open range [start, stop).
func Span(start, stop int) Selector {
	return Selector{Start: start, Stop: stop}
}

// ParseSelector parses an expression, optionally wrapped in brackets.
func ParseSelector(expr string) (Selector, error) {
	body := strings.TrimSpace(expr)
	if strings.HasPrefix(body, "[") && strings.HasSuffix(body, "]") {
		body = strings.TrimSpace(body[1 : len(body)-1])
	}
	if body == "" {
		return Selector{}, fmt.Errorf("empty expression: %w", apperrors.ErrInvalidSelector)
	}

	before, after, isRange := strings.Cut(body, ":")
	if !isRange {
		i, err := parseBound(body, 0)
		if err != nil {
			return Selector{}, err
		}
		return Point(i), nil
	}
	if strings.Contains(after, ":") {
		return Selector{}, fmt.Errorf("step in %q is not supported: %w", expr, apperrors.ErrInvalidSelector)
	}

	start, err := parseBound(before, 0)
	if err != nil {
		return Selector{}, err
	}
	stop, err := parseBound(after, End)
	if err != nil {
		return Selector{}, err
	}
	return Span(start, stop), nil
}

func parseBound(s string, omitted int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return omitted, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bound %q: %w", s, apperrors.ErrInvalidSelector)
	}
	return n, nil
}

func (sel Selector) String() string {
	if sel.Single {
		return strconv.Itoa(sel.Start)
	}
	var sb strings.Builder
	if sel.Start != 0 {
		sb.WriteString(strconv.Itoa(sel.Start))
	}
	sb.WriteByte(':')
	if sel.Stop != End {
		sb.WriteString(strconv.Itoa(sel.Stop))
	}
	return sb.String()
}

// Apply evaluates sel against s. A single position yields one element and may
// fail with apperrors.ErrOutOfRange; a range never fails.
func Apply[T any](s Indexed[T], sel Selector) ([]T, error) {
	if !sel.Single {
		return Slice(s, sel.Start, sel.Stop), nil
	}
	v, err := Get(s, sel.Start)
	if err != nil {
		return nil, err
	}
	return []T{v}, nil
}
