package sequence

import "iter"

// Indexed is the minimal surface a container exposes to take part in the
// protocol. At and Put receive positions already normalized by the caller.
type Indexed[T any] interface {
	Len() int
	At(i int) T
	Put(i int, v T)
}

// Get returns the element at i, counting from the end when i is negative.
func Get[T any](s Indexed[T], i int) (T, error) {
	pos, err := Normalize(s.Len(), i)
	if err != nil {
		var zero T
		return zero, err
	}
	return s.At(pos), nil
}

// Slice returns a new slice holding the elements in [start, stop). Bounds are
// clamped and never produce an error.
func Slice[T any](s Indexed[T], start, stop int) []T {
	lo, hi := Clamp(s.Len(), start, stop)
	out := make([]T, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, s.At(i))
	}
	return out
}

// Set replaces the element at i. The length of s is unchanged.
func Set[T any](s Indexed[T], i int, v T) error {
	pos, err := Normalize(s.Len(), i)
	if err != nil {
		return err
	}
	s.Put(pos, v)
	return nil
}

// List is a slice-backed sequence. The zero value is an empty list.
type List[T any] struct {
	items []T
}

// Of builds a list holding a copy of items.
func Of[T any](items ...T) *List[T] {
	l := &List[T]{items: make([]T, len(items))}
	copy(l.items, items)
	return l
}

// Runes builds a character sequence from s.
func Runes(s string) *List[rune] {
	return &List[rune]{items: []rune(s)}
}

// Range builds the numeric sequence 0..n-1.
func Range(n int) *List[int] {
	l := &List[int]{items: make([]int, max(n, 0))}
	for i := range l.items {
		l.items[i] = i
	}
	return l
}

func (l *List[T]) Len() int       { return len(l.items) }
func (l *List[T]) At(i int) T     { return l.items[i] }
func (l *List[T]) Put(i int, v T) { l.items[i] = v }

// Get returns the element at i; see the package level Get.
func (l *List[T]) Get(i int) (T, error) {
	return Get[T](l, i)
}

// Slice returns the elements in [start, stop); see the package level Slice.
func (l *List[T]) Slice(start, stop int) []T {
	return Slice[T](l, start, stop)
}

// Set replaces the element at i; see the package level Set.
func (l *List[T]) Set(i int, v T) error {
	return Set[T](l, i, v)
}

// Values returns a copy of the elements.
func (l *List[T]) Values() []T {
	return Slice[T](l, 0, End)
}

// All iterates over positions and elements in order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range l.items {
			if !yield(i, v) {
				return
			}
		}
	}
}
