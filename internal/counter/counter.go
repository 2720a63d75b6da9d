package counter

// Interface is the surface shared by every counter.
type Interface[K comparable] interface {
	Include(item K)
	Count(item K) (int, error)
	Len() int
	Snapshot() map[K]int
}

// Totalizer is implemented by counters that track the number of insertions.
type Totalizer interface {
	Total() int
}

// Counter fails when asked about a key it never saw.
type Counter[K comparable] struct {
	*Tally[K]
	strictQuery[K]
	plainInsert[K]
}

// TolerantCounter answers zero for keys it never saw.
type TolerantCounter[K comparable] struct {
	*Tally[K]
	tolerantQuery[K]
	plainInsert[K]
}

// TotalizingCounter is a Counter that also counts every insertion.
type TotalizingCounter[K comparable] struct {
	*Tally[K]
	strictQuery[K]
	totalizingInsert[K]
}

// TolerantTotalizingCounter answers zero for unseen keys and counts every
// insertion.
type TolerantTotalizingCounter[K comparable] struct {
	*Tally[K]
	tolerantQuery[K]
	totalizingInsert[K]
}

var (
	_ Interface[string] = (*Counter[string])(nil)
	_ Interface[string] = (*TolerantCounter[string])(nil)
	_ Interface[string] = (*TotalizingCounter[string])(nil)
	_ Interface[string] = (*TolerantTotalizingCounter[string])(nil)

	_ Totalizer = (*TotalizingCounter[string])(nil)
	_ Totalizer = (*TolerantTotalizingCounter[string])(nil)
)

// New returns an empty strict counter.
func New[K comparable]() *Counter[K] {
	t := newTally[K]()
	return &Counter[K]{Tally: t, strictQuery: strictQuery[K]{t}, plainInsert: plainInsert[K]{t}}
}

// NewTolerant returns an empty tolerant counter.
func NewTolerant[K comparable]() *TolerantCounter[K] {
	t := newTally[K]()
	return &TolerantCounter[K]{Tally: t, tolerantQuery: tolerantQuery[K]{t}, plainInsert: plainInsert[K]{t}}
}

// NewTotalizing returns an empty strict counter that tracks its total.
func NewTotalizing[K comparable]() *TotalizingCounter[K] {
	t := newTally[K]()
	return &TotalizingCounter[K]{Tally: t, strictQuery: strictQuery[K]{t}, totalizingInsert: totalizingInsert[K]{tally: t}}
}

// NewTolerantTotalizing returns an empty tolerant counter that tracks its
// total.
func NewTolerantTotalizing[K comparable]() *TolerantTotalizingCounter[K] {
	t := newTally[K]()
	return &TolerantTotalizingCounter[K]{Tally: t, tolerantQuery: tolerantQuery[K]{t}, totalizingInsert: totalizingInsert[K]{tally: t}}
}

// Variant selects one of the four counters.
type Variant struct {
	Tolerant   bool
	Totalizing bool
}

func (v Variant) String() string {
	switch {
	case v.Tolerant && v.Totalizing:
		return "tolerant totalizing"
	case v.Tolerant:
		return "tolerant"
	case v.Totalizing:
		return "totalizing"
	default:
		return "strict"
	}
}

// NewVariant returns an empty counter of the requested variant. Totalizing
// variants also implement Totalizer.
func NewVariant[K comparable](v Variant) Interface[K] {
	switch {
	case v.Tolerant && v.Totalizing:
		return NewTolerantTotalizing[K]()
	case v.Tolerant:
		return NewTolerant[K]()
	case v.Totalizing:
		return NewTotalizing[K]()
	default:
		return New[K]()
	}
}

// IncludeAll records every item in order.
func IncludeAll[K comparable](c interface{ Include(K) }, items ...K) {
	for _, item := range items {
		c.Include(item)
	}
}
